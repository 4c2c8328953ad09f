package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"NODE_ENV", "PORT", "DOMAIN", "REDIS_URL", "SESSION_SECRET", "CORS_ORIGIN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "", cfg.Domain)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "secret-key", cfg.SessionSecret)
	assert.Equal(t, "http://localhost:4200", cfg.CORSOrigin)
	assert.False(t, cfg.IsProduction())
}

func TestLoadProduction(t *testing.T) {
	t.Setenv("NODE_ENV", "production")
	t.Setenv("DOMAIN", "api.example.com")
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "api.example.com", cfg.Domain)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
}
