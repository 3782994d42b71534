package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.LogRotation.MaxSizeMB)
	assert.True(t, cfg.LogRotation.Compress)
}

func TestLoadDefaults(t *testing.T) {
	// Point XDG_CONFIG_HOME at an empty dir so no real config is picked up.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "habitual")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	content := "tick_interval: 1s\nlog_level: debug\nlog_rotation:\n  max_size_mb: 42\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 42, cfg.LogRotation.MaxSizeMB)
	// Untouched keys keep defaults.
	assert.Equal(t, 3, cfg.LogRotation.MaxBackups)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HABITUAL_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestHabitualDBEnvWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HABITUAL_DB", "/tmp/override.db")

	cfg, err := Load()
	require.NoError(t, err)

	path, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", path)
}

func TestResolveDBPathDefault(t *testing.T) {
	cfg := Default()

	path, err := cfg.ResolveDBPath()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".habitual", "habitual.db"), path)
}
