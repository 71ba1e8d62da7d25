package main

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Waddenn/trending/internal/appinfo"
	"github.com/Waddenn/trending/internal/config"
	"github.com/Waddenn/trending/internal/logging"
	"github.com/Waddenn/trending/internal/tmdb"
	"github.com/Waddenn/trending/internal/tui"
	"github.com/Waddenn/trending/internal/tui/trending"
)

type rootOptions struct {
	apiKey   string
	category string
	baseURL  string
	delay    time.Duration
	logLevel string
	debug    bool
	save     bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	info := appinfo.Default()

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Browse this week's trending movies and series from TMDB",
		Long: `Shows the titles trending on The Movie Database this week as a grid of
cards. Selecting a card opens its details with the top-billed cast.

The API key is read from --api-key, the TMDB_API_KEY environment variable
(a .env file in the working directory is honoured) or config.toml.`,
		Example: `  # Trending movies, key from the environment
  TMDB_API_KEY=... trending

  # Trending series, remembering the key for next time
  trending --category tv --api-key KEY --save`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := prepareConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTUI(cmd, cfg, info)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.apiKey, "api-key", "", "TMDB API key (v3)")
	f.StringVarP(&opts.category, "category", "c", config.DefaultCategory, "trending category: movie or tv")
	f.StringVar(&opts.baseURL, "base-url", config.DefaultBaseURL, "TMDB API base URL")
	f.DurationVar(&opts.delay, "delay", config.DefaultLoadingDelay, "how long the loading skeletons stay after the list arrives")
	f.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	f.BoolVar(&opts.debug, "debug", false, "shorthand for --log-level debug")
	f.BoolVar(&opts.save, "save", false, "write the resulting configuration to config.toml")

	return cmd
}

// prepareConfig loads the config, applies flags and validates the result.
// With --save, only a valid config is written back.
func prepareConfig(cmd *cobra.Command, opts rootOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg, opts)

	if err := cfg.Validate(); err != nil {
		return nil, usageError(err)
	}

	if opts.save {
		if err := config.Save(cfg); err != nil {
			cmd.PrintErrf("Warning: failed to save config: %v\n", err)
		} else {
			dir, _ := config.ConfigDir()
			cmd.Printf("✅ Configuration saved to %s/config.toml\n", dir)
		}
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags the user actually set, so file and
// environment values survive when a flag is left at its default.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts rootOptions) {
	f := cmd.Flags()
	if f.Changed("api-key") {
		cfg.TMDB.APIKey = opts.apiKey
	}
	if f.Changed("category") {
		cfg.TMDB.Category = opts.category
	}
	if f.Changed("base-url") {
		cfg.TMDB.BaseURL = opts.baseURL
	}
	if f.Changed("delay") {
		cfg.UI.LoadingDelay = config.Duration{Duration: opts.delay}
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}
}

func usageError(err error) error {
	return errors.New(err.Error() + `
Usage: trending --api-key KEY [--category movie|tv]
   or export ` + config.EnvAPIKey + `
   or set api_key under [tmdb] in ~/.config/trending/config.toml`)
}

func runTUI(cmd *cobra.Command, cfg *config.Config, info appinfo.Info) error {
	logPath, err := cfg.LogFile()
	if err != nil {
		return fmt.Errorf("resolving log file: %w", err)
	}
	logger, closer, err := logging.New(logPath, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closer.Close()

	logger.Info().
		Str("version", info.Version).
		Str("category", cfg.TMDB.Category).
		Dur("loading_delay", cfg.UI.LoadingDelay.Duration).
		Msg("starting")

	client := tmdb.New(tmdb.Options{
		APIURL:    cfg.TMDB.BaseURL,
		APIKey:    cfg.TMDB.APIKey,
		UserAgent: info.UserAgent,
		Timeout:   cfg.TMDB.Timeout.Duration,
		RateLimit: cfg.TMDB.RateLimit,
		Burst:     cfg.TMDB.Burst,
		Logger:    logging.Component(logger, "tmdb"),
	})

	err = tui.Start(cmd.Context(), client, trending.Options{
		Category:     cfg.TMDB.Category,
		LoadingDelay: cfg.UI.LoadingDelay.Duration,
		Logger:       logging.Component(logger, "tui"),
	})
	if errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil {
		logger.Info().Msg("interrupted")
		return nil
	}
	if err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		return err
	}
	logger.Info().Msg("bye")
	return nil
}
