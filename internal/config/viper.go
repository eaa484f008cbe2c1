package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "MAPTY"

const (
	keyMapZoom          = "map.zoom"
	keyMapAnimate       = "map.animate"
	keyProvider         = "geolocation.provider"
	keyToken            = "geolocation.token"
	keyLatitude         = "geolocation.latitude"
	keyLongitude        = "geolocation.longitude"
	keyTimeout          = "geolocation.timeout"
	keyDarkTheme        = "display.dark_theme"
	keyNotifications    = "notifications.enabled"
	keySessionCmd       = "settings.cmd"
	keyLogLevel         = "log.level"
	defaultZoom         = 13
	defaultGeoTimeout   = "10s"
	defaultLogLevel     = "info"
	defaultProviderName = string(ProviderIPInfo)
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, creating it with default values if it does not exist.
// Any key can be overridden with a MAPTY_ prefixed environment variable
// (e.g. MAPTY_MAP_ZOOM).
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// environment overrides are bound after the file is written so
		// that they are never persisted
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		return v.Unmarshal(c)
	}
}

// setupViper configures Viper with defaults and any values already present
// in c (e.g. from the first-run prompt).
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyMapZoom, defaultZoom)
	v.SetDefault(keyMapAnimate, true)
	v.SetDefault(keyProvider, defaultProviderName)
	v.SetDefault(keyToken, "")
	v.SetDefault(keyLatitude, 0.0)
	v.SetDefault(keyLongitude, 0.0)
	v.SetDefault(keyTimeout, defaultGeoTimeout)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyNotifications, false)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyLogLevel, defaultLogLevel)

	if c.Geolocation.Provider != "" {
		v.Set(keyProvider, string(c.Geolocation.Provider))
		v.Set(keyLatitude, c.Geolocation.Latitude)
		v.Set(keyLongitude, c.Geolocation.Longitude)
	}

	if c.Map.Zoom != 0 {
		v.Set(keyMapZoom, c.Map.Zoom)
	}
}
