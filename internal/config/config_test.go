package config

import (
	"embed"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"authforms/internal/secrets"
)

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/authforms")
	t.Setenv("REDIS_URL", "")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_EXPIRATION", "30s")
	t.Setenv("METRICS_ENABLED", "true")

	cfg := NewConfigFromEnvironment(secrets.New(), nil, nil, embed.FS{})

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.DisableLogColors)
	assert.False(t, cfg.EnableStackTrace)
	assert.Equal(t, "postgres://localhost/authforms", cfg.DatabaseUrl)
	assert.Empty(t, cfg.RedisUrl)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Second, cfg.RateLimitExpiration)
	assert.True(t, cfg.MetricsEnabled)
}

func TestNewConfigFromEnvironmentDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_MAX", "lots")
	t.Setenv("RATE_LIMIT_EXPIRATION", "")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := NewConfigFromEnvironment(secrets.New(), nil, nil, embed.FS{})

	assert.Equal(t, "3000", cfg.Port)
	assert.False(t, cfg.CookieSecure)
	assert.True(t, cfg.EnableStackTrace)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitExpiration)
	assert.False(t, cfg.MetricsEnabled)
}

func TestRegisterTimeout(t *testing.T) {
	t.Setenv("REGISTER_TIMEOUT", "")
	assert.Zero(t, RegisterTimeout())

	t.Setenv("REGISTER_TIMEOUT", "5s")
	assert.Equal(t, 5*time.Second, RegisterTimeout())
}
