package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	appDir   = "trending"
	fileName = "config.toml"

	EnvAPIKey = "TMDB_API_KEY"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultCategory     = "movie"
	DefaultTimeout      = 10 * time.Second
	DefaultRateLimit    = 4
	DefaultBurst        = 5
	DefaultLoadingDelay = 8 * time.Second
	DefaultLogLevel     = "info"
)

// Categories that have both a trending list and a credits endpoint.
var Categories = []string{"movie", "tv"}

// Duration is a time.Duration that reads and writes as a TOML string ("8s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type TMDBConfig struct {
	APIKey    string   `toml:"api_key"`
	BaseURL   string   `toml:"base_url"`
	Category  string   `toml:"category"`
	Timeout   Duration `toml:"timeout"`
	RateLimit float64  `toml:"rate_limit"`
	Burst     int      `toml:"burst"`
}

type UIConfig struct {
	LoadingDelay Duration `toml:"loading_delay"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type Config struct {
	TMDB TMDBConfig `toml:"tmdb"`
	UI   UIConfig   `toml:"ui"`
	Log  LogConfig  `toml:"log"`
}

// Default returns a config with every field set except the API key.
func Default() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:   DefaultBaseURL,
			Category:  DefaultCategory,
			Timeout:   Duration{DefaultTimeout},
			RateLimit: DefaultRateLimit,
			Burst:     DefaultBurst,
		},
		UI:  UIConfig{LoadingDelay: Duration{DefaultLoadingDelay}},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func CacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads config.toml from the user config dir, then applies .env and
// environment overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFile(filepath.Join(dir, fileName))
	if err != nil {
		return nil, err
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFile decodes path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides the API key from the environment.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvAPIKey); ok && v != "" {
		c.TMDB.APIKey = v
	}
}

func (c *Config) Validate() error {
	if c.TMDB.APIKey == "" {
		return errors.New("missing TMDB API key")
	}
	if c.TMDB.BaseURL == "" {
		return errors.New("missing TMDB base URL")
	}
	valid := false
	for _, cat := range Categories {
		if c.TMDB.Category == cat {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown category %q (want one of %v)", c.TMDB.Category, Categories)
	}
	if c.TMDB.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be > 0, got %v", c.TMDB.RateLimit)
	}
	if c.TMDB.Burst < 1 {
		return fmt.Errorf("burst must be >= 1, got %d", c.TMDB.Burst)
	}
	if c.UI.LoadingDelay.Duration < 0 {
		return fmt.Errorf("loading_delay must be >= 0, got %s", c.UI.LoadingDelay)
	}
	return nil
}

// LogFile returns the configured log path, defaulting into the cache dir.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "trending.log"), nil
}

func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return SaveFile(filepath.Join(dir, fileName), cfg)
}

func SaveFile(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
