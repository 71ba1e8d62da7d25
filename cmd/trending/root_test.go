package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waddenn/trending/internal/config"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--category", "tv", "--delay", "2s"}))

	cfg := config.Default()
	cfg.TMDB.APIKey = "from-file"
	cfg.TMDB.BaseURL = "https://example.test/3"

	var opts rootOptions
	opts.category, _ = cmd.Flags().GetString("category")
	opts.delay, _ = cmd.Flags().GetDuration("delay")
	applyFlags(cmd, cfg, opts)

	assert.Equal(t, "tv", cfg.TMDB.Category)
	assert.Equal(t, 2*time.Second, cfg.UI.LoadingDelay.Duration)
	assert.Equal(t, "from-file", cfg.TMDB.APIKey)
	assert.Equal(t, "https://example.test/3", cfg.TMDB.BaseURL)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
}

func TestApplyFlags_Debug(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--debug"}))

	cfg := config.Default()
	applyFlags(cmd, cfg, rootOptions{debug: true})
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestRootCmd_MissingAPIKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing TMDB API key")
	assert.Contains(t, err.Error(), "Usage: trending --api-key KEY")
}

func TestRootCmd_UnknownCategory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--api-key", "k", "--category", "person"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "person"`)
}

func TestRootCmd_SaveSkipsInvalidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(config.EnvAPIKey, "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--api-key", "saved-key", "--category", "bogus", "--save"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "bogus"`)
	assert.NotContains(t, out.String(), "Configuration saved")

	_, err = os.Stat(filepath.Join(home, "trending", "config.toml"))
	assert.True(t, os.IsNotExist(err), "invalid config must not be written")
}

func TestPrepareConfig_SaveWritesValidConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(config.EnvAPIKey, "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.ParseFlags([]string{"--api-key", "saved-key", "--category", "tv", "--save"}))

	opts := rootOptions{apiKey: "saved-key", category: "tv", save: true}
	cfg, err := prepareConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "tv", cfg.TMDB.Category)
	assert.Contains(t, out.String(), "Configuration saved")

	saved, err := config.LoadFile(filepath.Join(home, "trending", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "saved-key", saved.TMDB.APIKey)
	assert.Equal(t, "tv", saved.TMDB.Category)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
