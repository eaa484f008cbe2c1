package app

import (
	"github.com/urfave/cli/v2"
)

var (
	providerFlag = &cli.StringFlag{
		Name:    "provider",
		Aliases: []string{"p"},
		Usage:   "Geolocation provider: ipinfo, static, or none",
	}

	latitudeFlag = &cli.Float64Flag{
		Name:    "latitude",
		Aliases: []string{"lat"},
		Usage:   "Use a fixed latitude instead of locating you",
	}

	longitudeFlag = &cli.Float64Flag{
		Name:    "longitude",
		Aliases: []string{"lng"},
		Usage:   "Use a fixed longitude instead of locating you",
	}

	zoomFlag = &cli.IntFlag{
		Name:    "zoom",
		Aliases: []string{"z"},
		Usage:   "Map zoom level between 1 and 18 (default: 13)",
	}

	noAnimateFlag = &cli.BoolFlag{
		Name:  "no-animate",
		Usage: "Jump to workouts instead of animating the map",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	kindFlag = &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "Workout kind: running or cycling",
		Value:   "running",
	}

	distanceFlag = &cli.StringFlag{
		Name:    "distance",
		Aliases: []string{"d"},
		Usage:   "Distance in kilometres",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"t"},
		Usage:   "Duration in minutes",
	}

	cadenceFlag = &cli.StringFlag{
		Name:    "cadence",
		Aliases: []string{"c"},
		Usage:   "Cadence in steps per minute (running)",
	}

	elevationFlag = &cli.StringFlag{
		Name:    "elevation",
		Aliases: []string{"e"},
		Usage:   "Elevation gain in metres (cycling)",
	}

	dryRunFlag = &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Validate and print the workout without saving it",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the workouts as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:    "since",
		Aliases: []string{"s"},
		Usage:   "Only workouts on or after this date (e.g. '2 weeks ago', '2026-04-01')",
	}

	untilFlag = &cli.StringFlag{
		Name:    "until",
		Aliases: []string{"u"},
		Usage:   "Only workouts on or before this date",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort by date, label, or distance",
		Value: sortDate,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write to a file instead of standard output",
	}
)
