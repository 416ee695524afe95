package db

import "github.com/redis/go-redis/v9"

// NewRedis creates a redis client. The connection is established lazily on
// first use.
func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
