// Package report prints command outcomes for the user
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mapty/workout"
)

// WorkoutSaved confirms that w was saved.
func WorkoutSaved(w *workout.Workout) {
	pterm.Success.Printfln("%s %s saved", w.Kind.Icon(), w.Label)
}

func Error(err error) {
	pterm.Error.Println(err)
}

func Quit(err error) {
	Error(err)
	os.Exit(1)
}
