package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 15*time.Minute, cfg.Redis.TTL)
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 2*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.Origins())
}

func TestNewWithoutDotEnvFile(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Chdir(t.TempDir())

	_, err := New()
	assert.NoError(t, err)
}

func TestTokenDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, (&Token{Duration: "2h"}).TokenDuration())
	assert.Equal(t, 24*time.Hour, (&Token{Duration: "soon"}).TokenDuration())
	assert.Equal(t, 24*time.Hour, (&Token{Duration: "-1h"}).TokenDuration())
}
