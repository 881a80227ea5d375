package config

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/villagegame/internal/model"
)

// LogConfig controls logger construction
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // Empty means log to stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Config holds the rules of a session plus ambient settings
type Config struct {
	Rows       int `mapstructure:"rows"`
	Columns    int `mapstructure:"columns"`
	BuildLimit int `mapstructure:"build_limit"`

	// Limits caps how many cells of a type may be built. A placement is refused
	// once the board already holds more than the cap. Negative removes the cap.
	Limits map[model.CellType]int `mapstructure:"limits"`

	Log LogConfig `mapstructure:"log"`
}

// DefaultConfig returns the standard 6x6 game
func DefaultConfig() Config {
	return Config{
		Rows:       6,
		Columns:    6,
		BuildLimit: 20,
		Limits: map[model.CellType]int{
			model.CellHouse: 15,
			model.CellPark:  10,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Limit returns the cap for t and whether one applies
func (c Config) Limit(t model.CellType) (int, bool) {
	limit, ok := c.Limits[t]
	if !ok || limit < 0 {
		return 0, false
	}
	return limit, true
}

// Validate checks the config for values a session cannot run with
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", model.ErrInvalidConfig, c.Rows)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("%w: columns must be positive, got %d", model.ErrInvalidConfig, c.Columns)
	}
	if c.BuildLimit <= 0 {
		return fmt.Errorf("%w: build_limit must be positive, got %d", model.ErrInvalidConfig, c.BuildLimit)
	}
	for t := range c.Limits {
		if !t.Valid() || t == model.CellNone {
			return fmt.Errorf("%w: cannot limit %s", model.ErrInvalidConfig, t)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error", optionally with an offset like "info+2")
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", model.ErrInvalidConfig, c.Level)
	}
	return level, nil
}
