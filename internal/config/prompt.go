package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███╗   ███╗ █████╗ ██████╗ ████████╗██╗   ██╗
████╗ ████║██╔══██╗██╔══██╗╚══██╔══╝╚██╗ ██╔╝
██╔████╔██║███████║██████╔╝   ██║    ╚████╔╝
██║╚██╔╝██║██╔══██║██╔═══╝    ██║     ╚██╔╝
██║ ╚═╝ ██║██║  ██║██║        ██║      ██║
╚═╝     ╚═╝╚═╝  ╚═╝╚═╝        ╚═╝      ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Provider  Provider
	Latitude  string
	Longitude string
	Zoom      int
}

// WithPromptConfig returns an Option that configures settings via interactive
// prompts. It only runs when the config file does not exist yet and stdin is
// a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

func validateCoordinate(limit float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.New("enter a number")
		}

		if f < -limit || f > limit {
			return fmt.Errorf("must be between %v and %v", -limit, limit)
		}

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Latitude:  "0",
		Longitude: "0",
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure mapty for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'mapty edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Provider]().
				Title("How should mapty find your position?").
				Options(
					huh.NewOption("From my IP address (ipinfo.io)", ProviderIPInfo).
						Selected(true),
					huh.NewOption("A fixed position I choose", ProviderStatic),
					huh.NewOption("Don't locate me (list only)", ProviderNone),
				).
				Value(&opts.Provider),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Latitude").
				Value(&opts.Latitude).
				Validate(validateCoordinate(90)),
			huh.NewInput().
				Title("Longitude").
				Value(&opts.Longitude).
				Validate(validateCoordinate(180)),
		).WithHideFunc(func() bool {
			return opts.Provider != ProviderStatic
		}),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Default map zoom").
				Options(
					huh.NewOption("City (11)", 11),
					huh.NewOption("Neighbourhood (13)", 13).Selected(true),
					huh.NewOption("Streets (15)", 15),
				).
				Value(&opts.Zoom),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Geolocation.Provider = opts.Provider
	c.Map.Zoom = opts.Zoom

	if opts.Provider != ProviderStatic {
		return nil
	}

	lat, err := strconv.ParseFloat(opts.Latitude, 64)
	if err != nil {
		return err
	}

	lng, err := strconv.ParseFloat(opts.Longitude, 64)
	if err != nil {
		return err
	}

	c.Geolocation.Latitude = lat
	c.Geolocation.Longitude = lng

	return nil
}
