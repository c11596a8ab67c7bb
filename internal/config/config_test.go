package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "SERVER_PORT",
		"REDIS_ADDR", "REDIS_PASSWORD", "STORE_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Contains(t, cfg.DBUrl, "postgres://")
	assert.Equal(t, "changeme", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_TIMEOUT_SECONDS", "2")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv("STORE_TIMEOUT_SECONDS", "zero")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
}
