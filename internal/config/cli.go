package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Provider     string
	Latitude     float64
	Longitude    float64
	Zoom         int
	HasLatitude  bool
	HasLongitude bool
	NoAnimate    bool
}

// WithCLIConfig returns an Option that applies global command-line flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Provider:     ctx.String("provider"),
			Latitude:     ctx.Float64("latitude"),
			Longitude:    ctx.Float64("longitude"),
			Zoom:         ctx.Int("zoom"),
			HasLatitude:  ctx.IsSet("latitude"),
			HasLongitude: ctx.IsSet("longitude"),
			NoAnimate:    ctx.Bool("no-animate"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config. Passing a position
// implies the static provider unless another one is named explicitly.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.HasLatitude || opts.HasLongitude {
		c.Geolocation.Provider = ProviderStatic
	}

	if opts.HasLatitude {
		c.Geolocation.Latitude = opts.Latitude
	}

	if opts.HasLongitude {
		c.Geolocation.Longitude = opts.Longitude
	}

	if opts.Provider != "" {
		c.Geolocation.Provider = Provider(opts.Provider)
	}

	if opts.Zoom > 0 {
		c.Map.Zoom = opts.Zoom
	}

	if opts.NoAnimate {
		c.Map.Animate = false
	}
}
