package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.AuthToken)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	cfg.AuthToken = "tok123"
	cfg.CT0 = "csrf456"
	cfg.Timeout = 60
	require.NoError(t, Save(cfg))

	loaded := Load()
	assert.Equal(t, "tok123", loaded.AuthToken)
	assert.Equal(t, "csrf456", loaded.CT0)
	assert.Equal(t, 60, loaded.Timeout)
	assert.Equal(t, DefaultUserAgent, loaded.UserAgent)
}

func TestLoadIgnoresCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appName, configFile), []byte("{not json"), 0o600))

	cfg := Load()
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/xtid/config.json", FilePath())
}
