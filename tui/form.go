package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/mapty/session"
	"github.com/ayoisaiah/mapty/workout"
)

const (
	fieldDistance = iota
	fieldDuration
	fieldCadence
	fieldElevation
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Distance",
	"Duration",
	"Cadence",
	"Elev Gain",
}

var fieldPlaceholders = [fieldCount]string{
	"km",
	"min",
	"step/min",
	"meters",
}

// workoutForm collects the values of a new workout. Only one of the cadence
// and elevation fields is visible at a time.
type workoutForm struct {
	inputs        [fieldCount]textinput.Model
	kind          workout.Kind
	focus         int
	visible       bool
	showElevation bool
}

func newWorkoutForm() *workoutForm {
	f := &workoutForm{
		kind: workout.Running,
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 12
		f.inputs[i] = ti
	}

	return f
}

func (f *workoutForm) Values() session.FormValues {
	return session.FormValues{
		Kind:      f.kind,
		Distance:  f.inputs[fieldDistance].Value(),
		Duration:  f.inputs[fieldDuration].Value(),
		Cadence:   f.inputs[fieldCadence].Value(),
		Elevation: f.inputs[fieldElevation].Value(),
	}
}

func (f *workoutForm) Show() {
	f.visible = true
}

func (f *workoutForm) Hide() {
	f.visible = false

	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *workoutForm) Clear() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
}

func (f *workoutForm) FocusDistance() {
	f.focusField(fieldDistance)
}

func (f *workoutForm) ToggleKindFields() {
	f.showElevation = !f.showElevation

	switch f.focus {
	case fieldCadence:
		f.focusField(fieldElevation)
	case fieldElevation:
		f.focusField(fieldCadence)
	}
}

// cycleKind selects the next workout kind.
func (f *workoutForm) cycleKind() {
	if f.kind == workout.Running {
		f.kind = workout.Cycling
		return
	}

	f.kind = workout.Running
}

// fields lists the visible fields in display order.
func (f *workoutForm) fields() []int {
	if f.showElevation {
		return []int{fieldDistance, fieldDuration, fieldElevation}
	}

	return []int{fieldDistance, fieldDuration, fieldCadence}
}

func (f *workoutForm) focusField(field int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}

	f.focus = field
	f.inputs[field].Focus()
}

// moveFocus focuses the next or previous visible field, wrapping around.
func (f *workoutForm) moveFocus(delta int) {
	fields := f.fields()

	pos := 0

	for i, field := range fields {
		if field == f.focus {
			pos = i
		}
	}

	pos = (pos + delta + len(fields)) % len(fields)

	f.focusField(fields[pos])
}

func (f *workoutForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	return cmd
}

func (f *workoutForm) View(st styles) string {
	var b strings.Builder

	b.WriteString(st.fieldLabel.Render("Type"))
	b.WriteString(st.kind(f.kind).Render(f.kind.Icon() + " " + f.kind.Title()))
	b.WriteString(st.muted.Render("  ctrl+t"))

	for _, field := range f.fields() {
		b.WriteString("\n")
		b.WriteString(st.fieldLabel.Render(fieldLabels[field]))
		b.WriteString(f.inputs[field].View())
	}

	return st.form.Render(b.String())
}
