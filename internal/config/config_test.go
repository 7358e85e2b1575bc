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

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.Equal(t, "US", cfg.DomesticCountry)
	assert.Equal(t, 2000.0, cfg.HighValueThreshold)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("TRACKING_ENDPOINT", "http://tracker.local/beacon")
	t.Setenv("HIGH_VALUE_THRESHOLD", "3500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, 30*time.Second, cfg.RedisTTL)
	assert.Equal(t, "http://tracker.local/beacon", cfg.TrackingEndpoint)
	assert.Equal(t, 3500.0, cfg.HighValueThreshold)
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("REDIS_TTL", "-5s")
	t.Setenv("PROVIDER_TIMEOUT", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.Equal(t, 2*time.Second, cfg.ProviderTimeout)
}
