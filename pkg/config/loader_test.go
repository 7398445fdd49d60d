package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httpkit/pkg/config"
)

type cookieConfig struct {
	Name   string        `env:"TEST_COOKIE_NAME" envDefault:"sid"`
	TTL    time.Duration `env:"TEST_COOKIE_TTL" envDefault:"30m"`
	Secure bool          `env:"TEST_COOKIE_SECURE"`
}

type requiredConfig struct {
	Secrets []string `env:"TEST_REQUIRED_SECRETS,required" envSeparator:","`
}

type envFileConfig struct {
	Value    string `env:"TEST_FILE_VALUE"`
	Priority string `env:"TEST_FILE_PRIORITY"`
	Quoted   string `env:"TEST_FILE_QUOTED"`
}

func TestLoad_DefaultsAndCache(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_COOKIE_SECURE", "true")

	var cfg cookieConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "sid", cfg.Name)
	assert.Equal(t, 30*time.Minute, cfg.TTL)
	assert.True(t, cfg.Secure)

	t.Setenv("TEST_COOKIE_NAME", "changed")
	var again cookieConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "sid", again.Name, "served from cache")

	require.NoError(t, config.ForceReload(&again))
	assert.Equal(t, "changed", again.Name)

	var third cookieConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "changed", third.Name, "reload replaces the cached copy")
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	require.ErrorIs(t, config.Load[cookieConfig](nil), config.ErrNilPointer)
	require.ErrorIs(t, config.ForceReload[cookieConfig](nil), config.ErrNilPointer)

	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("TEST_REQUIRED_SECRETS", "a,b")
	require.NoError(t, config.Load(&cfg), "failed parses are not cached")
	assert.Equal(t, []string{"a", "b"}, cfg.Secrets)

	t.Setenv("TEST_COOKIE_TTL", "soon")
	config.ResetCache()
	var bad cookieConfig
	require.ErrorIs(t, config.Load(&bad), config.ErrParsingConfig)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()

	dir := t.TempDir()
	base := filepath.Join(dir, ".env.base")
	override := filepath.Join(dir, ".env.override")
	require.NoError(t, os.WriteFile(base, []byte("TEST_FILE_VALUE=base\nTEST_FILE_PRIORITY=base\nTEST_FILE_QUOTED=\"quoted value\"\n"), 0o600))
	require.NoError(t, os.WriteFile(override, []byte("TEST_FILE_VALUE=override\n"), 0o600))

	// Registered through t.Setenv so the variables are restored after the test.
	t.Setenv("TEST_FILE_PRIORITY", "process")
	t.Setenv("TEST_FILE_VALUE", "")
	t.Setenv("TEST_FILE_QUOTED", "")
	require.NoError(t, os.Unsetenv("TEST_FILE_VALUE"))
	require.NoError(t, os.Unsetenv("TEST_FILE_QUOTED"))

	require.NoError(t, config.LoadEnv(base, override))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "override", cfg.Value)
	assert.Equal(t, "process", cfg.Priority)
	assert.Equal(t, "quoted value", cfg.Quoted)

	require.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(dir, "missing.env")) })
	assert.NotPanics(t, func() { config.MustLoadEnv() })
}
