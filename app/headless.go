package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/session"
	"github.com/ayoisaiah/mapty/workout"
)

// printMap is a map that exists only as a record of what would be drawn.
type printMap struct {
	onClick func(workout.Coords)
	out     io.Writer
	markers int
	center  workout.Coords
	verbose bool
}

func (m *printMap) Initialize(center workout.Coords, _ int) (session.Map, error) {
	m.center = center
	return m, nil
}

func (m *printMap) OnClick(handler func(workout.Coords)) {
	m.onClick = handler
}

func (m *printMap) PlaceMarker(coords workout.Coords, label string, kind workout.Kind) {
	m.markers++

	if m.verbose {
		fmt.Fprintf(m.out, "%s %s at %s\n", kind.Icon(), label, coords)
	}
}

func (m *printMap) Recenter(coords workout.Coords, _ bool) {
	m.center = coords
}

// click selects the current map centre.
func (m *printMap) click() {
	if m.onClick != nil {
		m.onClick(m.center)
	}
}

// flagForm is a form whose values come from command-line flags.
type flagForm struct {
	values session.FormValues
}

func (f *flagForm) Values() session.FormValues {
	return f.values
}

func (f *flagForm) Show()             {}
func (f *flagForm) Hide()             {}
func (f *flagForm) Clear()            {}
func (f *flagForm) FocusDistance()    {}
func (f *flagForm) ToggleKindFields() {}

type nopList struct{}

func (nopList) AppendEntry(*workout.Workout) {}
func (nopList) Clear()                       {}

type ptermNotifier struct{}

func (ptermNotifier) Notify(msg string) {
	pterm.Warning.Println(msg)
}

// headless bundles the collaborators of a controller driven by a command
// instead of the interactive map.
type headless struct {
	ctrl *session.Controller
	m    *printMap
}

func newHeadless(
	e *env,
	locator session.Locator,
	st session.Store,
	form session.Form,
	h session.Hook,
) *headless {
	m := &printMap{out: config.Stdout}

	ctrl := session.New(session.Deps{
		Locator:  locator,
		Renderer: m,
		List:     nopList{},
		Store:    st,
		Form:     form,
		Notifier: ptermNotifier{},
		Hook:     h,
		Logger:   e.logger,
	},
		session.WithZoom(e.cfg.Map.Zoom),
		session.WithAnimate(false),
	)

	return &headless{ctrl: ctrl, m: m}
}

// start loads the collection and waits for the position fix.
func (h *headless) start(ctx context.Context) error {
	fix := h.ctrl.Start(ctx)

	return h.ctrl.HandleFix(ctx, fix())
}
