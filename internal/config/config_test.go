package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Map: config.MapConfig{
			Zoom:    13,
			Animate: true,
		},
		Geolocation: config.GeolocationConfig{
			Provider: config.ProviderIPInfo,
			Timeout:  10 * time.Second,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, configPath)

	// the written file must load back to the same values
	again, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	want := &config.Config{
		Map: config.MapConfig{
			Zoom:    15,
			Animate: false,
		},
		Geolocation: config.GeolocationConfig{
			Provider:  config.ProviderStatic,
			Latitude:  51.5072,
			Longitude: -0.1276,
			Timeout:   3 * time.Second,
		},
		Display: config.DisplayConfig{
			DarkTheme: false,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Settings: config.SettingsConfig{
			Cmd: `notify-send "saved"`,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestViperEnvOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	t.Setenv("MAPTY_MAP_ZOOM", "16")
	t.Setenv("MAPTY_GEOLOCATION_TOKEN", "secret")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Map.Zoom)
	assert.Equal(t, "secret", cfg.Geolocation.Token)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret", "env values must not be persisted")
}

func newCLIContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("mapty", flag.ContinueOnError)
	_ = f.String("provider", "", "")
	_ = f.Float64("latitude", 0, "")
	_ = f.Float64("longitude", 0, "")
	_ = f.Int("zoom", 0, "")
	_ = f.Bool("no-animate", false, "")

	for k, v := range flags {
		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestCLIConfig(t *testing.T) {
	testCases := []struct {
		Name  string
		Flags map[string]string
		Check func(t *testing.T, cfg *config.Config)
	}{
		{
			Name:  "position implies the static provider",
			Flags: map[string]string{"latitude": "10", "longitude": "-20"},
			Check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.ProviderStatic, cfg.Geolocation.Provider)
				assert.InDelta(t, 10.0, cfg.Geolocation.Latitude, 1e-9)
				assert.InDelta(t, -20.0, cfg.Geolocation.Longitude, 1e-9)
			},
		},
		{
			Name:  "explicit provider wins",
			Flags: map[string]string{"latitude": "10", "provider": "none"},
			Check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.ProviderNone, cfg.Geolocation.Provider)
			},
		},
		{
			Name:  "zoom and animation",
			Flags: map[string]string{"zoom": "9", "no-animate": "true"},
			Check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 9, cfg.Map.Zoom)
				assert.False(t, cfg.Map.Animate)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			cfg, err := config.New(
				config.WithViperConfig(configPath),
				config.WithCLIConfig(newCLIContext(t, tc.Flags)),
			)
			require.NoError(t, err)

			tc.Check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Name   string
		Modify func(c *config.Config)
	}{
		{
			Name:   "zoom too small",
			Modify: func(c *config.Config) { c.Map.Zoom = 0 },
		},
		{
			Name:   "zoom too large",
			Modify: func(c *config.Config) { c.Map.Zoom = 19 },
		},
		{
			Name: "unknown provider",
			Modify: func(c *config.Config) {
				c.Geolocation.Provider = "gps"
			},
		},
		{
			Name:   "latitude out of range",
			Modify: func(c *config.Config) { c.Geolocation.Latitude = 91 },
		},
		{
			Name:   "longitude out of range",
			Modify: func(c *config.Config) { c.Geolocation.Longitude = -181 },
		},
		{
			Name:   "non-positive timeout",
			Modify: func(c *config.Config) { c.Geolocation.Timeout = 0 },
		},
		{
			Name:   "unknown log level",
			Modify: func(c *config.Config) { c.Log.Level = "chatty" },
		},
	}

	require.NoError(t, defaultConfig().Validate())

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.Modify(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}
