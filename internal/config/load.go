package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/tempo/internal/constants"
	"github.com/mrz1836/tempo/internal/errors"
)

// newViperInstance creates a new Viper instance with standard tempo
// configuration: defaults, TEMPO_ environment prefix, and key replacer so
// that e.g. TEMPO_OUTPUT_FORMAT maps to output.format.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("TEMPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers the built-in default values on a Viper instance.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("timer.tick", defaults.Timer.Tick)
}

// viperDecoderOption returns the decode hook used when unmarshaling config.
// The duration hook lets config files express timer.tick as "500ms" or "2s".
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected and not an error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (TEMPO_* prefix)
//  2. Global config (~/.tempo/config.yaml)
//  3. Built-in defaults
//
// The function returns an error only for actual configuration problems,
// not for a missing config file.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("output.format", cfg.Output.Format).
		Dur("timer.tick", cfg.Timer.Tick).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file (~/.tempo/config.yaml).
// Returns nil if the file doesn't exist or the home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	path, ok := globalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if isConfigNotFoundError(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	return nil
}

// globalConfigPathIfExists returns the global config file path and whether it
// exists. The tempo home directory can be overridden with TEMPO_HOME.
func globalConfigPathIfExists() (string, bool) {
	home, err := tempoHome()
	if err != nil {
		return "", false
	}

	path := filepath.Join(home, constants.ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// tempoHome returns the tempo home directory path.
// If the TEMPO_HOME environment variable is set, it is used directly.
// Otherwise it defaults to ~/.tempo.
func tempoHome() (string, error) {
	if home := os.Getenv("TEMPO_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}

	return filepath.Join(userHome, constants.TempoHome), nil
}
