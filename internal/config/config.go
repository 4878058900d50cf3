// Package config loads dephub-semver settings from a config file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "dephub-semver"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = ".dephub-semver"
	// EnvPrefix prefixes environment variable overrides (e.g. DEPHUB_SEMVER_LOG_LEVEL).
	EnvPrefix = "DEPHUB_SEMVER"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the application settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// Format is the command output format: text, json or yaml.
	Format string `mapstructure:"format"`
	// IncludePrerelease makes prerelease versions eligible as latest/update candidates.
	IncludePrerelease bool `mapstructure:"include_prerelease"`
	// Concurrency limits parallel release lookups, 0 means one per CPU.
	Concurrency int `mapstructure:"concurrency"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "warn",
		Format:            FormatText,
		IncludePrerelease: false,
		Concurrency:       0,
	}
}

// Load reads configuration from path, or when path is empty from
// '.dephub-semver.{yaml,toml,json}' in the working directory, falling back to
// '$XDG_CONFIG_HOME/dephub-semver/config.yaml' (or .toml, .json).
// Environment variables override file values.
// A missing default config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("include_prerelease", defaults.IncludePrerelease)
	v.SetDefault("concurrency", defaults.Concurrency)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %q: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(".")
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			err = readUserConfig(v)
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readUserConfig reads 'config.{yaml,toml,...}' from the dephub-semver
// directory below os.UserConfigDir(), if one exists.
func readUserConfig(v *viper.Viper) error {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	for _, ext := range viper.SupportedExts {
		path := filepath.Join(dir, AppName, "config."+ext)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			return v.ReadInConfig()
		}
	}
	return nil
}

// Validate checks that every setting holds a supported value.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	return nil
}
