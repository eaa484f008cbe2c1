package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mapty/workout"
)

func TestListNewestFirst(t *testing.T) {
	l := &workoutList{}

	first := workout.NewRunning(workout.NewCoords(1, 1), 5, 25, 180, workout.WithID("a"))
	second := workout.NewCycling(workout.NewCoords(2, 2), 20, 60, 100, workout.WithID("b"))

	l.AppendEntry(first)
	l.AppendEntry(second)

	assert.Equal(t, "b", l.current().ID)

	l.move(5)
	assert.Equal(t, "a", l.current().ID)

	view := l.View(newStyles(), 20, true)
	assert.Contains(t, view, first.Label)
	assert.Contains(t, view, "20.0")

	l.Clear()
	assert.Nil(t, l.current())
}

func TestFormToggle(t *testing.T) {
	f := newWorkoutForm()
	f.Show()
	f.FocusDistance()

	assert.Equal(t, []int{fieldDistance, fieldDuration, fieldCadence}, f.fields())

	f.moveFocus(2)
	assert.Equal(t, fieldCadence, f.focus)

	f.ToggleKindFields()
	assert.Equal(t, fieldElevation, f.focus)
	assert.Equal(t, []int{fieldDistance, fieldDuration, fieldElevation}, f.fields())

	f.ToggleKindFields()
	assert.Equal(t, []int{fieldDistance, fieldDuration, fieldCadence}, f.fields())

	f.inputs[fieldDistance].SetValue("7")
	assert.Equal(t, "7", f.Values().Distance)

	f.Clear()
	assert.Empty(t, f.Values().Distance)
}
