package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
	assert.Equal(t, 50, cfg.MinResumeChars)
	assert.Equal(t, 20*time.Second, cfg.AITimeout)
	assert.Equal(t, 4000, cfg.AIResumePrefix)
	assert.Equal(t, 1000, cfg.AIJobPrefix)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.IsProd())
	assert.False(t, cfg.AIEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("RATE_LIMIT_PER_MIN", "5")
	t.Setenv("TIKA_URL", "http://tika:9998")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, 5, cfg.RateLimitPerMin)
	assert.Equal(t, "http://tika:9998", cfg.TikaURL)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.Load")
}
