package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "classic", cfg.Generator.DefaultPreset)
	assert.Equal(t, 128, cfg.Generator.CacheSize)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GENERATOR_DEFAULT_PRESET", "moonRich")
	t.Setenv("GENERATOR_BATCH_WORKERS", "8")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_SECOND", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Logging.JSONFormat)
	assert.Equal(t, "moonRich", cfg.Generator.DefaultPreset)
	assert.Equal(t, 8, cfg.Generator.BatchWorkers)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
}

func TestValidateRejectsBadGeneratorSettings(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"GENERATOR_CACHE_SIZE", "0"},
		{"GENERATOR_MAX_BATCH_SYSTEMS", "-1"},
		{"GENERATOR_BATCH_WORKERS", "0"},
		{"RATE_LIMIT_REQUESTS_PER_SECOND", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateRequiresPort(t *testing.T) {
	cfg, err := load()
	require.NoError(t, err)

	cfg.Server.Port = ""
	assert.EqualError(t, cfg.validate(), "SERVER_PORT is required")
}
