package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("RESET_DB", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 10, cfg.MySQLMaxOpenConns)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.ResetDB)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, https://rental.example.com,")
	t.Setenv("RESET_DB", "true")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"http://localhost:5173", "https://rental.example.com"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.ResetDB)
	assert.Equal(t, 0, cfg.RedisDB)
}
