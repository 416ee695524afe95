package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultBcryptCost = 10

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	MySQLDSN          string
	MySQLMaxOpenConns int
	MySQLMaxIdleConns int
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	JWTSecret         string
	BcryptCost        int
	LogLevel          string
	LogPretty         bool
	CORSAllowOrigins  []string
	SwaggerHost       string
	ResetDB           bool
}

// Load builds Config from environment with sensible defaults. Values from a
// .env file in the working directory are applied first when the file exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "root:@tcp(localhost:3306)/rental_db?charset=utf8mb4&parseTime=True&loc=Local"),
		MySQLMaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 10),
		MySQLMaxIdleConns: getEnvInt("MYSQL_MAX_IDLE_CONNS", 10),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		BcryptCost:        getEnvInt("BCRYPT_COST", defaultBcryptCost),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogPretty:         getEnvBool("LOG_PRETTY", false),
		CORSAllowOrigins:  getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
		ResetDB:           getEnvBool("RESET_DB", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
