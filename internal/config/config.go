// Package config loads and validates tempo configuration.
//
// Configuration comes from three layers, highest precedence first:
// environment variables (TEMPO_* prefix), the optional global config file
// (~/.tempo/config.yaml), and built-in defaults.
package config

import (
	"time"

	"github.com/mrz1836/tempo/internal/constants"
	"github.com/mrz1836/tempo/internal/errors"
)

// Output format values.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// Config holds all tempo configuration.
type Config struct {
	// Output configures how results are rendered.
	Output OutputConfig `mapstructure:"output"`
	// Timer configures wait behavior.
	Timer TimerConfig `mapstructure:"timer"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	// Format selects the output format: "text" or "json".
	Format string `mapstructure:"format"`
}

// TimerConfig configures wait behavior.
type TimerConfig struct {
	// Tick is the interval between debug-level progress log entries
	// while a wait is in flight.
	Tick time.Duration `mapstructure:"tick"`
}

// DefaultConfig returns a new Config with sensible default values.
// These defaults are the base layer that config files and environment
// variables override.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: OutputText,
		},
		Timer: TimerConfig{
			Tick: constants.DefaultTick,
		},
	}
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// Validate checks a Config for invalid values.
// All validation errors are sentinel-based and checkable with errors.Is().
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if !IsValidOutputFormat(cfg.Output.Format) {
		return errors.Wrapf(errors.ErrInvalidOutputFormat, "%q must be one of %v", cfg.Output.Format, ValidOutputFormats())
	}

	if cfg.Timer.Tick <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidTimer, "tick %s must be positive", cfg.Timer.Tick)
	}

	return nil
}
