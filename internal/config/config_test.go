package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tmdb]
api_key = "abc"
category = "tv"
timeout = "3s"

[ui]
loading_delay = "1500ms"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.TMDB.APIKey)
	assert.Equal(t, "tv", cfg.TMDB.Category)
	assert.Equal(t, 3*time.Second, cfg.TMDB.Timeout.Duration)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.LoadingDelay.Duration)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, float64(DefaultRateLimit), cfg.TMDB.RateLimit)
}

func TestLoadFile_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nloading_delay = \"soon\"\n"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.TMDB.APIKey = "key"
	cfg.UI.LoadingDelay = Duration{2 * time.Second}

	require.NoError(t, SaveFile(path, cfg))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveFile_ReportsErrors(t *testing.T) {
	err := SaveFile(filepath.Join(t.TempDir(), "missing", "config.toml"), Default())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveFile(path, Default()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "file is flushed and closed before returning")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.TMDB.APIKey = "from-file"

	cfg.ApplyEnv(func(string) (string, bool) { return "", false })
	assert.Equal(t, "from-file", cfg.TMDB.APIKey)

	cfg.ApplyEnv(func(k string) (string, bool) {
		if k == EnvAPIKey {
			return "from-env", true
		}
		return "", false
	})
	assert.Equal(t, "from-env", cfg.TMDB.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.TMDB.APIKey = "key"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults with key", func(*Config) {}, false},
		{"missing key", func(c *Config) { c.TMDB.APIKey = "" }, true},
		{"tv category", func(c *Config) { c.TMDB.Category = "tv" }, false},
		{"person category", func(c *Config) { c.TMDB.Category = "person" }, true},
		{"zero rate", func(c *Config) { c.TMDB.RateLimit = 0 }, true},
		{"zero burst", func(c *Config) { c.TMDB.Burst = 0 }, true},
		{"negative delay", func(c *Config) { c.UI.LoadingDelay = Duration{-time.Second} }, true},
		{"zero delay", func(c *Config) { c.UI.LoadingDelay = Duration{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogFile_Explicit(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/tmp/x.log"
	path, err := cfg.LogFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.log", path)
}
