// Package config loads settings for the quasirand demonstration driver.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrUnknownPrecision is returned when precision is neither float32 nor float64.
var ErrUnknownPrecision = errors.New("config: precision must be float32 or float64")

// Supported precisions.
const (
	PrecisionFloat32 = "float32"
	PrecisionFloat64 = "float64"
)

// Config holds all driver configuration
type Config struct {
	Dimension int     // Coordinates per point
	Seed      float64 // Sequence offset in [0.0, 1.0)
	Count     int     // Points printed by stepping
	Index     uint64  // Point printed by direct evaluation
	Precision string  // float32 or float64
	Integrate int     // Samples for the integration demo (0 = skip)
	Placement bool    // Run the placement demo (2-D only)
	Log       LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string // debug, info, warn, error
	TimeFormat string // Go time layout for the tint handler
	NoColor    bool
}

// SlogLevel parses Level. Call after Load, which has already validated it.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads configuration from command-line args, environment and an optional file.
//
// Priority (highest to lowest):
// 1. Command-line flags (e.g., --dim 3)
// 2. Environment variables with QUASIRAND_ prefix (e.g., QUASIRAND_LOG_LEVEL)
// 3. quasirand.{yaml,toml,json} in the working directory, or --config
// 4. Built-in defaults
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("quasirand")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("QUASIRAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg := &Config{
		Dimension: v.GetInt("dimension"),
		Seed:      v.GetFloat64("seed"),
		Count:     v.GetInt("count"),
		Index:     v.GetUint64("index"),
		Precision: strings.ToLower(v.GetString("precision")),
		Integrate: v.GetInt("integrate"),
		Placement: v.GetBool("placement"),
		Log: LogConfig{
			Level:      v.GetString("log.level"),
			TimeFormat: v.GetString("log.time_format"),
			NoColor:    v.GetBool("log.no_color"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// flagKeys maps viper keys to the flags that override them.
var flagKeys = map[string]string{
	"dimension":       "dim",
	"seed":            "seed",
	"count":           "count",
	"index":           "index",
	"precision":       "precision",
	"integrate":       "integrate",
	"placement":       "placement",
	"log.level":       "log-level",
	"log.time_format": "log-time-format",
	"log.no_color":    "no-color",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("quasirand", pflag.ContinueOnError)

	fs.String("config", "", "Path to a configuration file.")
	fs.Int("dim", 2, "Number of dimensions of the generated points.")
	fs.Float64("seed", 0.5, "Sequence seed in [0.0, 1.0).")
	fs.Int("count", 100, "Number of points to print by stepping.")
	fs.Uint64("index", 500, "Index of the point printed by direct evaluation.")
	fs.String("precision", PrecisionFloat64, "Floating-point precision: float32 or float64.")
	fs.Int("integrate", 0, "Estimate the integral of the coordinate product with this many points (0 = skip).")
	fs.Bool("placement", false, "Scatter sites over a noise density field (requires --dim 2).")
	fs.String("log-level", "info", "Log level: debug, info, warn, error.")
	fs.String("log-time-format", "15:04:05", "Time layout of log lines.")
	fs.Bool("no-color", false, "Disable coloured log output.")

	return fs
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Dimension < 1 {
		return fmt.Errorf("dimension must be at least 1, got %d", c.Dimension)
	}
	if !(0 <= c.Seed && c.Seed < 1) {
		return fmt.Errorf("seed must be in [0.0, 1.0), got %v", c.Seed)
	}
	if c.Count < 0 {
		return fmt.Errorf("count cannot be negative, got %d", c.Count)
	}
	if c.Integrate < 0 {
		return fmt.Errorf("integrate cannot be negative, got %d", c.Integrate)
	}
	if c.Precision != PrecisionFloat32 && c.Precision != PrecisionFloat64 {
		return fmt.Errorf("%w, got %q", ErrUnknownPrecision, c.Precision)
	}
	if c.Placement && c.Dimension != 2 {
		return fmt.Errorf("placement requires dimension 2, got %d", c.Dimension)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
