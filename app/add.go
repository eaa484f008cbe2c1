package app

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/hook"
	"github.com/ayoisaiah/mapty/report"
	"github.com/ayoisaiah/mapty/session"
	"github.com/ayoisaiah/mapty/store"
	"github.com/ayoisaiah/mapty/workout"
)

// addAction records a workout at the position fix without the interactive
// map. It goes through the same session controller as the map does.
func addAction(ctx *cli.Context) error {
	e, err := setup(ctx)
	if err != nil {
		return err
	}

	db, err := e.openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	var (
		st session.Store = db
		h  session.Hook  = hook.New(e.cfg, e.logger)
	)

	if ctx.Bool("dry-run") {
		data, err := db.Load(ctx.Context)
		if err != nil && !errors.Is(err, store.ErrNoData) {
			return err
		}

		st, h = store.NewMemory(data), nil
	}

	form := &flagForm{
		values: session.FormValues{
			Kind:      workout.Kind(ctx.String("kind")),
			Distance:  ctx.String("distance"),
			Duration:  ctx.String("duration"),
			Cadence:   ctx.String("cadence"),
			Elevation: ctx.String("elevation"),
		},
	}

	hl := newHeadless(e, e.locator(), st, form, h)

	if err := hl.start(ctx.Context); err != nil {
		return err
	}

	hl.m.click()

	if err := hl.ctrl.HandleSubmit(ctx.Context); err != nil {
		return err
	}

	workouts := hl.ctrl.Workouts()
	w := workouts[len(workouts)-1]

	printWorkoutsTable(config.Stdout, []*workout.Workout{w})

	if ctx.Bool("dry-run") {
		pterm.Info.Println("dry run: the workout was not saved")
		return nil
	}

	report.WorkoutSaved(w)

	fmt.Fprintln(config.Stdout, w.ID)

	return nil
}
