// Package config loads and validates the mapty configuration
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Geolocation   GeolocationConfig  `mapstructure:"geolocation"`
		Log           LogConfig          `mapstructure:"log"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		System        SystemConfig       `mapstructure:"-"`
		Map           MapConfig          `mapstructure:"map"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// MapConfig holds map rendering settings.
	MapConfig struct {
		Zoom    int  `mapstructure:"zoom"`
		Animate bool `mapstructure:"animate"`
	}

	// GeolocationConfig selects and configures the position provider.
	GeolocationConfig struct {
		Provider  Provider      `mapstructure:"provider"`
		Token     string        `mapstructure:"token"`
		Latitude  float64       `mapstructure:"latitude"`
		Longitude float64       `mapstructure:"longitude"`
		Timeout   time.Duration `mapstructure:"timeout"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		// Cmd is executed after each saved workout
		Cmd string `mapstructure:"cmd"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds the resolved file locations. It is never read from
	// or written to the config file.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error

	// Provider names a geolocation provider.
	Provider string
)

const Version = "v0.3.0"

const (
	ProviderIPInfo Provider = "ipinfo"
	ProviderStatic Provider = "static"
	ProviderNone   Provider = "none"
)

var Providers = []Provider{ProviderIPInfo, ProviderStatic, ProviderNone}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}

// WithSystemPaths records the resolved file locations.
func WithSystemPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}
