package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/geo"
	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/ui"
	"github.com/ayoisaiah/mapty/session"
	"github.com/ayoisaiah/mapty/workout"
)

// showAction recalls a saved workout the way selecting it in the list does,
// and prints where the map ends up.
func showAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingID
	}

	e, err := setup(ctx)
	if err != nil {
		return err
	}

	db, err := e.openStore()
	if err != nil {
		return err
	}

	defer db.Close()

	// the fix is irrelevant since the map moves to the workout
	hl := newHeadless(e, geo.Static{}, db, &flagForm{}, nil)

	if err := hl.start(ctx.Context); err != nil {
		return err
	}

	if !hl.ctrl.HandleListActivate(id) {
		return session.ErrLookupMiss.Fmt(id)
	}

	var found *workout.Workout

	for _, w := range hl.ctrl.Workouts() {
		if w.ID == id {
			found = w
		}
	}

	printWorkoutsTable(config.Stdout, []*workout.Workout{found})

	fmt.Fprintf(
		config.Stdout,
		"%s %s\n",
		found.Kind.Icon(),
		ui.Highlight("map centred on "+hl.m.center.String()),
	)

	return nil
}
