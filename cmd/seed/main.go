package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"rental/internal/auth"
	"rental/internal/config"
	"rental/internal/db"
	apperrors "rental/internal/errors"
	"rental/internal/logger"
	"rental/internal/repository"
	"rental/internal/service"
)

// sampleUsers are the accounts a fresh database is seeded with.
var sampleUsers = []service.RegisterInput{
	{Name: "Admin User", Email: "admin@rental.com", Phone: "1234567890", Password: "admin123", Role: "admin"},
	{Name: "Regular User", Email: "user@rental.com", Phone: "0987654321", Password: "user123", Role: "user"},
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogPretty)
	log.Info().Msg("starting seed script")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, db.PoolConfig{
		MaxOpenConns: cfg.MySQLMaxOpenConns,
		MaxIdleConns: cfg.MySQLMaxIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.Migrate(gormDB, false); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient := db.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer redisClient.Close()

	authService := service.NewAuthService(
		repository.NewUserRepository(gormDB),
		auth.NewBcryptHasher(cfg.BcryptCost),
		auth.NewJWTService(cfg.JWTSecret),
		auth.NewTokenStore(redisClient),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, skipped := 0, 0
	for _, in := range sampleUsers {
		user, err := authService.Register(ctx, in)
		if errors.Is(err, apperrors.ErrEmailTaken) {
			log.Info().Str("email", in.Email).Msg("user already exists, skipping")
			skipped++
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("email", in.Email).Msg("failed to seed user")
		}
		log.Info().Uint("user_id", user.ID).Str("email", user.Email).Str("role", string(user.Role)).Msg("user seeded")
		created++
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed completed")
}
