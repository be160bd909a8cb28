package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, 4002, cfg.Port)
	assert.Equal(t, ":4002", cfg.Addr())
	assert.Equal(t, "vehicles_us.csv", cfg.DataSource)
	assert.Equal(t, "vehicles_us", cfg.DataTable)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.True(t, cfg.CacheWarm)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DASHBOARD_PORT", "9000")
	t.Setenv("DASHBOARD_DATA_SOURCE", "https://example.com/vehicles_us.csv")
	t.Setenv("DASHBOARD_LOCALE", "es")
	t.Setenv("DASHBOARD_REDIS_ADDR", "localhost:6379")
	t.Setenv("DASHBOARD_CACHE_TTL", "1h")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "https://example.com/vehicles_us.csv", cfg.DataSource)
	assert.Equal(t, "es", cfg.Locale)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoadDotenvDoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DASHBOARD_LOG_LEVEL=debug\nDASHBOARD_RATE_LIMIT=7\n"), 0o644))
	t.Setenv("DASHBOARD_RATE_LIMIT", "42")
	t.Cleanup(func() { os.Unsetenv("DASHBOARD_LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 42, cfg.RateLimit)
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]string{
		"DASHBOARD_PORT":       "70000",
		"DASHBOARD_LOG_LEVEL":  "verbose",
		"DASHBOARD_LOG_FORMAT": "xml",
		"DASHBOARD_CACHE_TTL":  "0s",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
			assert.Error(t, err)
		})
	}

	t.Run("unparseable", func(t *testing.T) {
		t.Setenv("DASHBOARD_PORT", "eighty")
		_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
		assert.Error(t, err)
	})
}
