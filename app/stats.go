package app

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/stats"
)

// statsAction handles the stats command and prints totals for the workouts
// within the requested period.
func statsAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	f, err := newFilter(ctx, time.Now())
	if err != nil {
		return err
	}

	workouts, err := loadWorkouts(e, ctx)
	if err != nil {
		return err
	}

	stats.Show(config.Stdout, f.apply(workouts))

	return nil
}
