package appconfig

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GENDS_HTTP_ADDR", "GENDS_LOG_LEVEL", "GENDS_DEFAULT_SEED"} {
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.HasDefaultSeed)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENDS_LOG_LEVEL", "verbose")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadParsesDefaultSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENDS_DEFAULT_SEED", "42")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.HasDefaultSeed)
	assert.EqualValues(t, 42, cfg.DefaultSeed)
}

func TestLoadOverridesHTTPAddr(t *testing.T) {
	clearEnv(t)
	t.Setenv("GENDS_HTTP_ADDR", ":9090")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}
