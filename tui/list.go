package tui

import (
	"strings"

	"github.com/ayoisaiah/mapty/workout"
)

// linesPerEntry is the height of a rendered list entry, including the gap.
const linesPerEntry = 3

// workoutList shows the collection newest first.
type workoutList struct {
	entries  []*workout.Workout
	selected int
}

func (l *workoutList) AppendEntry(w *workout.Workout) {
	l.entries = append([]*workout.Workout{w}, l.entries...)
	l.selected = 0
}

func (l *workoutList) Clear() {
	l.entries = nil
	l.selected = 0
}

func (l *workoutList) move(delta int) {
	if len(l.entries) == 0 {
		return
	}

	l.selected = max(0, min(len(l.entries)-1, l.selected+delta))
}

func (l *workoutList) current() *workout.Workout {
	if len(l.entries) == 0 {
		return nil
	}

	return l.entries[l.selected]
}

func (l *workoutList) View(st styles, height int, focused bool) string {
	if len(l.entries) == 0 {
		return st.muted.Render("No workouts yet.\nPick a spot on the map to add one.")
	}

	capacity := max(1, height/linesPerEntry)
	start := max(0, l.selected-capacity+1)
	end := min(len(l.entries), start+capacity)

	var b strings.Builder

	for i := start; i < end; i++ {
		w := l.entries[i]

		title := st.kind(w.Kind).Render("▌") + " " + w.Label
		if focused && i == l.selected {
			title = st.kind(w.Kind).Render("▌") + " " + st.selected.Render(w.Label)
		}

		b.WriteString(title + "\n")

		details := w.Details()

		parts := make([]string, 0, len(details))
		for _, d := range details {
			parts = append(parts, d.Icon+" "+d.Value+" "+st.muted.Render(d.Unit))
		}

		b.WriteString("  " + strings.Join(parts, "  ") + "\n")

		if i < end-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
