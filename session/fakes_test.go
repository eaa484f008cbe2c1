package session

import (
	"context"

	"github.com/ayoisaiah/mapty/workout"
)

type fakeLocator struct {
	err    error
	coords workout.Coords
}

func (l *fakeLocator) Locate(_ context.Context) (workout.Coords, error) {
	return l.coords, l.err
}

type marker struct {
	Label  string
	Kind   workout.Kind
	Coords workout.Coords
}

type fakeMap struct {
	onClick   func(workout.Coords)
	center    workout.Coords
	markers   []marker
	recenters int
	animated  bool
}

func (m *fakeMap) OnClick(handler func(workout.Coords)) {
	m.onClick = handler
}

func (m *fakeMap) PlaceMarker(coords workout.Coords, label string, kind workout.Kind) {
	m.markers = append(m.markers, marker{Coords: coords, Label: label, Kind: kind})
}

func (m *fakeMap) Recenter(coords workout.Coords, animate bool) {
	m.center = coords
	m.animated = animate
	m.recenters++
}

type fakeRenderer struct {
	err   error
	m     *fakeMap
	zoom  int
	calls int
}

func (r *fakeRenderer) Initialize(center workout.Coords, zoom int) (Map, error) {
	r.calls++

	if r.err != nil {
		return nil, r.err
	}

	r.zoom = zoom
	r.m = &fakeMap{center: center}

	return r.m, nil
}

type fakeList struct {
	ids []string
}

func (l *fakeList) AppendEntry(w *workout.Workout) {
	l.ids = append(l.ids, w.ID)
}

func (l *fakeList) Clear() {
	l.ids = nil
}

type fakeForm struct {
	values   FormValues
	visible  bool
	focused  int
	cleared  int
	toggles  int
	elevShow bool
}

func (f *fakeForm) Values() FormValues {
	return f.values
}

func (f *fakeForm) Show() {
	f.visible = true
}

func (f *fakeForm) Hide() {
	f.visible = false
}

func (f *fakeForm) Clear() {
	f.values = FormValues{Kind: f.values.Kind}
	f.cleared++
}

func (f *fakeForm) FocusDistance() {
	f.focused++
}

func (f *fakeForm) ToggleKindFields() {
	f.toggles++
	f.elevShow = !f.elevShow
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(msg string) {
	n.messages = append(n.messages, msg)
}

type fakeHook struct {
	saved []string
}

func (h *fakeHook) AfterSave(_ context.Context, w *workout.Workout) {
	h.saved = append(h.saved, w.ID)
}
