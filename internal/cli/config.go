// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. DUNIT_PRECISION=4.
	EnvPrefix = "DUNIT"

	keyLogLevel  = "log_level"
	keyPrecision = "precision"
)

// Config holds the CLI settings after flags, environment and file are merged.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Precision is the significant digits printed by convert; -1 prints the
	// shortest exact representation.
	Precision int `mapstructure:"precision"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{LogLevel: "warn", Precision: -1}
}

// newViper prepares a viper instance with defaults and environment binding.
func newViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault(keyLogLevel, d.LogLevel)
	v.SetDefault(keyPrecision, d.Precision)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the optional config file into v and decodes the result.
// The file format follows its extension (toml, yaml, json).
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("log_level %q: %w", cfg.LogLevel, err)
	}
	if cfg.Precision < -1 {
		return Config{}, fmt.Errorf("precision %d: must be >= -1", cfg.Precision)
	}
	return cfg, nil
}
