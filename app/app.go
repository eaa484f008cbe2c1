// Package app defines the mapty command-line application
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/internal/config"
)

// Get retrieves the mapty app instance.
func Get() *cli.App {
	maptyApp := &cli.App{
		Name: "mapty",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		mapty is a workout tracker for the command-line. Pick a spot on the map,
		record a run or a ride, and find it again later.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Record a workout at your current position without opening the map",
				Action: addAction,
				Flags: []cli.Flag{
					kindFlag,
					distanceFlag,
					durationFlag,
					cadenceFlag,
					elevationFlag,
					dryRunFlag,
				},
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List saved workouts",
				Action:  listAction,
				Flags: []cli.Flag{
					jsonFlag,
					sinceFlag,
					untilFlag,
					sortFlag,
				},
			},
			{
				Name:      "show",
				Usage:     "Show a saved workout and its position",
				ArgsUsage: "<id>",
				Action:    showAction,
			},
			{
				Name:   "export",
				Usage:  "Export saved workouts as GPX waypoints",
				Action: exportAction,
				Flags: []cli.Flag{
					outputFlag,
				},
			},
			{
				Name:   "stats",
				Usage:  "Summarise saved workouts",
				Action: statsAction,
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
				},
			},
			{
				Name:   "reset",
				Usage:  "Delete all saved workouts",
				Action: resetAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			providerFlag,
			latitudeFlag,
			longitudeFlag,
			zoomFlag,
			noAnimateFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return maptyApp
}
