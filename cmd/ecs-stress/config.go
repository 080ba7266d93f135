package main

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config controls a stress run. Values come from ECS_STRESS_* environment
// variables and can be overridden by command-line flags.
type Config struct {
	// Duration is how long the simulation loop runs.
	Duration time.Duration `env:"DURATION" envDefault:"10s"`

	// Entities is the number of entities created before the loop starts.
	Entities int `env:"ENTITIES" envDefault:"10000"`

	// ChurnRate is the fraction of entities destroyed and respawned per frame.
	ChurnRate float64 `env:"CHURN_RATE" envDefault:"0.01"`

	// EagerCleanup frees component values when an entity is destroyed.
	EagerCleanup bool `env:"EAGER_CLEANUP" envDefault:"false"`

	// Seed makes the component mix reproducible.
	Seed uint64 `env:"SEED" envDefault:"1"`

	GCPauseMetrics bool `env:"GC_PAUSE_METRICS" envDefault:"false"`

	// Profile is one of "none", "cpu" or "mem".
	Profile     string `env:"PROFILE" envDefault:"none"`
	ProfilePath string `env:"PROFILE_PATH" envDefault:"."`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"pretty"`
}

const envPrefix = "ECS_STRESS_"

func loadConfig() (Config, error) {
	cfg := Config{}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, eris.Wrap(err, "failed to parse stress config")
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Duration <= 0 {
		return eris.Errorf("duration must be positive, got %s", cfg.Duration)
	}
	if cfg.Entities < 0 {
		return eris.Errorf("entity count must not be negative, got %d", cfg.Entities)
	}
	if cfg.ChurnRate < 0 || cfg.ChurnRate > 1 {
		return eris.New("churn rate must be between 0.0 and 1.0")
	}

	switch cfg.Profile {
	case profileNone, profileCPU, profileMem:
	default:
		return eris.Errorf("invalid profile mode: %s (must be 'none', 'cpu' or 'mem')", cfg.Profile)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return eris.Errorf("invalid log level: %s (must be 'debug', 'info', 'warn', or 'error')", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "json", "pretty":
	default:
		return eris.Errorf("invalid log format: %s (must be 'json' or 'pretty')", cfg.LogFormat)
	}

	return nil
}

func (cfg *Config) logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogFormat == "pretty" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
