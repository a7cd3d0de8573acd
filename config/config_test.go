package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "chirper")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "localhost:3306")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "chirper", cfg.DBName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.FeOrigins)
	assert.Equal(t, 100, cfg.FeedPageSize)
	assert.Equal(t, 20, cfg.RateLimitPerWindow)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FE_ORIGINS", "https://chirper.app;https://staging.chirper.app")
	t.Setenv("RATE_LIMIT_PER_WINDOW", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://chirper.app", "https://staging.chirper.app"}, cfg.FeOrigins)
	assert.Equal(t, 5, cfg.RateLimitPerWindow)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("PORT", "")

	_, err := Load()
	assert.Error(t, err)
}
