package app

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/mapty/internal/apperr"
	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/timeutil"
	"github.com/ayoisaiah/mapty/internal/ui"
	"github.com/ayoisaiah/mapty/store"
	"github.com/ayoisaiah/mapty/workout"
)

const (
	noWorkoutsMsg = "No workouts found"

	sortDate     = "date"
	sortLabel    = "label"
	sortDistance = "distance"
)

var (
	errInvalidSort = &apperr.Error{
		Message: "invalid sort order %q: use date, label, or distance",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to parse date %q",
	}
)

// filter holds the list constraints given on the command-line.
type filter struct {
	since time.Time
	until time.Time
	sort  string
}

func newFilter(ctx *cli.Context, now time.Time) (filter, error) {
	f := filter{
		sort: strings.ToLower(ctx.String("sort")),
	}

	if f.sort == "" {
		f.sort = sortDate
	}

	if !slices.Contains([]string{sortDate, sortLabel, sortDistance}, f.sort) {
		return f, errInvalidSort.Fmt(f.sort)
	}

	if s := ctx.String("since"); s != "" {
		t, err := timeutil.FromStr(s, now)
		if err != nil {
			return f, errInvalidDate.Fmt(s).Wrap(err)
		}

		f.since = timeutil.RoundToStart(t)
	}

	if s := ctx.String("until"); s != "" {
		t, err := timeutil.FromStr(s, now)
		if err != nil {
			return f, errInvalidDate.Fmt(s).Wrap(err)
		}

		f.until = timeutil.RoundToEnd(t)
	}

	return f, nil
}

// apply returns the workouts that match f in the requested order. The
// input is not modified.
func (f filter) apply(workouts []*workout.Workout) []*workout.Workout {
	result := make([]*workout.Workout, 0, len(workouts))

	for _, w := range workouts {
		if !f.since.IsZero() && w.CreatedAt.Before(f.since) {
			continue
		}

		if !f.until.IsZero() && w.CreatedAt.After(f.until) {
			continue
		}

		result = append(result, w)
	}

	switch f.sort {
	case sortLabel:
		slices.SortStableFunc(result, func(a, b *workout.Workout) int {
			switch {
			case natural.Less(a.Label, b.Label):
				return -1
			case natural.Less(b.Label, a.Label):
				return 1
			}

			return 0
		})
	case sortDistance:
		slices.SortStableFunc(result, func(a, b *workout.Workout) int {
			switch {
			case a.Distance > b.Distance:
				return -1
			case a.Distance < b.Distance:
				return 1
			}

			return 0
		})
	}

	return result
}

// loadWorkouts reads the saved collection from the database.
func loadWorkouts(e *env, ctx *cli.Context) ([]*workout.Workout, error) {
	db, err := e.openStore()
	if err != nil {
		return nil, err
	}

	defer db.Close()

	data, err := db.Load(ctx.Context)
	if errors.Is(err, store.ErrNoData) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return workout.Decode(data)
}

// listAction handles the list command and prints a table of the saved
// workouts.
func listAction(ctx *cli.Context) error {
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

	workouts = f.apply(workouts)

	if ctx.Bool("json") {
		b, err := workout.Encode(workouts)
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(workouts) == 0 {
		pterm.Info.Println(noWorkoutsMsg)
		return nil
	}

	printWorkoutsTable(config.Stdout, workouts)

	return nil
}

// printWorkoutsTable prints a workout table to the command-line.
func printWorkoutsTable(w io.Writer, workouts []*workout.Workout) {
	tableBody := make([][]string, 0, len(workouts)+1)

	tableBody = append(tableBody, []string{
		"#", "ID", "DATE", "WORKOUT", "DISTANCE", "DURATION", "PACE/SPEED", "CADENCE/ELEV", "POSITION",
	})

	for i, wk := range workouts {
		details := wk.Details()

		kindText := ui.Green(wk.Kind.Title())
		if wk.Kind == workout.Cycling {
			kindText = ui.Yellow(wk.Kind.Title())
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			wk.ID,
			wk.CreatedAt.Format(timeutil.DateFormat),
			kindText,
		}

		for _, d := range details {
			row = append(row, d.Value+" "+d.Unit)
		}

		row = append(row, ui.Blue(wk.Coords.String()))

		tableBody = append(tableBody, row)
	}

	ui.PrintTable(tableBody, w)
}
