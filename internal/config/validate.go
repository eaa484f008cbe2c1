package config

import (
	"slices"

	"github.com/ayoisaiah/mapty/internal/logging"
)

const (
	minZoom = 1
	maxZoom = 18
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Map.Zoom < minZoom || c.Map.Zoom > maxZoom {
		return errInvalidZoom.Fmt(minZoom, maxZoom, c.Map.Zoom)
	}

	if err := c.validateGeolocation(); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateGeolocation() error {
	g := c.Geolocation

	if !slices.Contains(Providers, g.Provider) {
		return errUnknownProvider.Fmt(g.Provider, Providers)
	}

	if g.Latitude < -90 || g.Latitude > 90 {
		return errInvalidLatitude.Fmt(g.Latitude)
	}

	if g.Longitude < -180 || g.Longitude > 180 {
		return errInvalidLongitude.Fmt(g.Longitude)
	}

	if g.Provider == ProviderIPInfo && g.Timeout <= 0 {
		return errInvalidTimeout.Fmt(g.Timeout)
	}

	return nil
}
