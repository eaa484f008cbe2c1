// Package session implements the workout session state machine. The
// controller is driven by a single event loop and reaches the outside world
// only through the collaborator interfaces.
package session

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/ayoisaiah/mapty/internal/logging"
	"github.com/ayoisaiah/mapty/store"
	"github.com/ayoisaiah/mapty/workout"
)

// State is a session lifecycle state.
type State int

const (
	Uninitialized State = iota
	AwaitingFix
	MapReady
	FormOpen
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case AwaitingFix:
		return "awaiting fix"
	case MapReady:
		return "map ready"
	case FormOpen:
		return "form open"
	}

	return "unknown"
}

const defaultZoom = 13

// FixResult is the outcome of a geolocation request.
type FixResult struct {
	Err    error
	Coords workout.Coords
}

// FixRequest performs the one-shot geolocation request. It blocks, so the
// caller runs it off the event loop and feeds the result to HandleFix.
type FixRequest func() FixResult

// Deps holds the collaborators of a Controller. Hook and Logger are
// optional.
type Deps struct {
	Locator  Locator
	Renderer Renderer
	List     List
	Store    Store
	Form     Form
	Notifier Notifier
	Hook     Hook
	Logger   *slog.Logger
}

// Option customises a Controller.
type Option func(*Controller)

// WithZoom sets the zoom level used when the map is created.
func WithZoom(zoom int) Option {
	return func(c *Controller) {
		c.zoom = zoom
	}
}

// WithAnimate controls whether recentering the map is animated.
func WithAnimate(animate bool) Option {
	return func(c *Controller) {
		c.animate = animate
	}
}

// WithClock replaces the time source used for new workouts.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithIDFunc replaces the workout id generator.
func WithIDFunc(newID func(time.Time) string) Option {
	return func(c *Controller) {
		c.newID = newID
	}
}

// Controller owns the workout collection, the pending map selection and the
// map handle.
type Controller struct {
	deps     Deps
	logger   *slog.Logger
	mapView  Map
	pending  *workout.Coords
	now      func() time.Time
	newID    func(time.Time) string
	workouts []*workout.Workout
	state    State
	zoom     int
	animate  bool
}

// New creates a controller in the Uninitialized state.
func New(deps Deps, opts ...Option) *Controller {
	c := &Controller{
		deps:    deps,
		logger:  deps.Logger,
		zoom:    defaultZoom,
		animate: true,
		now:     time.Now,
		newID:   workout.NewID,
	}

	if c.logger == nil {
		c.logger = logging.Discard()
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Workouts returns a copy of the collection in insertion order.
func (c *Controller) Workouts() []*workout.Workout {
	return slices.Clone(c.workouts)
}

// Pending returns the pending map selection, if any.
func (c *Controller) Pending() (workout.Coords, bool) {
	if c.pending == nil {
		return workout.Coords{}, false
	}

	return *c.pending, true
}

// Start restores the saved collection into the list and returns the
// geolocation request. It returns nil if the session was already started.
func (c *Controller) Start(ctx context.Context) FixRequest {
	if c.state != Uninitialized {
		c.logger.Warn("session already started", slog.String("state", c.state.String()))
		return nil
	}

	c.workouts = c.load(ctx)

	for _, w := range c.workouts {
		c.deps.List.AppendEntry(w)
	}

	c.state = AwaitingFix

	c.logger.Info(
		"session started",
		slog.Int("workouts", len(c.workouts)),
	)

	locator := c.deps.Locator

	return func() FixResult {
		coords, err := locator.Locate(ctx)
		return FixResult{Coords: coords, Err: err}
	}
}

// load reads the saved collection. A missing or unreadable collection
// yields an empty one.
func (c *Controller) load(ctx context.Context) []*workout.Workout {
	data, err := c.deps.Store.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoData) {
			c.logger.Error(
				"loading workouts",
				slog.Any("error", ErrPersistenceRead.Wrap(err)),
			)
		}

		return nil
	}

	workouts, err := workout.Decode(data)
	if err != nil {
		c.logger.Error(
			"decoding workouts",
			slog.Any("error", ErrPersistenceRead.Wrap(err)),
		)

		return nil
	}

	return workouts
}

// HandleFix consumes the result of the geolocation request. On success the
// map is created around the fix and every saved workout gets a marker.
func (c *Controller) HandleFix(_ context.Context, res FixResult) error {
	if c.state != AwaitingFix {
		c.logger.Debug("ignoring fix", slog.String("state", c.state.String()))
		return nil
	}

	if res.Err != nil {
		c.logger.Warn("geolocation failed", slog.Any("error", res.Err))
		c.deps.Notifier.Notify(msgNoPosition)

		return ErrGeolocationUnavailable.Wrap(res.Err)
	}

	m, err := c.deps.Renderer.Initialize(res.Coords, c.zoom)
	if err != nil {
		c.logger.Error("initialising map", slog.Any("error", err))
		c.deps.Notifier.Notify(msgMapUnavailable)

		return errMapInit.Wrap(err)
	}

	c.mapView = m
	c.mapView.OnClick(c.HandleMapClick)

	for _, w := range c.workouts {
		c.mapView.PlaceMarker(w.Coords, w.Label, w.Kind)
	}

	c.state = MapReady

	c.logger.Info("map ready", slog.String("center", res.Coords.String()))

	return nil
}

// HandleMapClick records the clicked position and opens the form. Clicking
// again while the form is open replaces the selection.
func (c *Controller) HandleMapClick(coords workout.Coords) {
	switch c.state {
	case MapReady:
		c.pending = &coords
		c.deps.Form.Show()
		c.deps.Form.FocusDistance()
		c.state = FormOpen
	case FormOpen:
		c.pending = &coords
		c.deps.Form.FocusDistance()
	default:
		c.logger.Debug("ignoring map click", slog.String("state", c.state.String()))
	}
}

// HandleKindChange swaps the kind-specific form fields.
func (c *Controller) HandleKindChange() {
	c.deps.Form.ToggleKindFields()
}

// HandleSubmit validates the form and records a new workout at the pending
// selection. Nothing changes unless the workout was saved.
func (c *Controller) HandleSubmit(ctx context.Context) error {
	if c.state != FormOpen || c.pending == nil {
		c.logger.Debug("ignoring submit", slog.String("state", c.state.String()))
		return nil
	}

	p := parseForm(c.deps.Form.Values())
	if !p.valid() {
		c.deps.Notifier.Notify(msgInvalidInput)
		return ErrInvalidWorkoutInput
	}

	w := c.build(p, *c.pending)

	next := append(slices.Clone(c.workouts), w)

	data, err := workout.Encode(next)
	if err == nil {
		err = c.deps.Store.Save(ctx, data)
	}

	if err != nil {
		c.logger.Error("saving workouts", slog.Any("error", err))
		c.deps.Notifier.Notify(msgSaveFailed)

		return ErrSaveWorkouts.Wrap(err)
	}

	c.workouts = next

	c.mapView.PlaceMarker(w.Coords, w.Label, w.Kind)
	c.deps.List.AppendEntry(w)
	c.deps.Form.Clear()
	c.deps.Form.Hide()

	c.pending = nil
	c.state = MapReady

	c.logger.Info(
		"workout saved",
		slog.String("id", w.ID),
		slog.String("kind", string(w.Kind)),
	)

	if c.deps.Hook != nil {
		c.deps.Hook.AfterSave(ctx, w)
	}

	return nil
}

func (c *Controller) build(p parsedForm, coords workout.Coords) *workout.Workout {
	createdAt := c.now()

	id := c.newID(createdAt)
	for c.find(id) != nil {
		c.logger.Warn("workout id collision", slog.String("id", id))
		id = c.newID(createdAt)
	}

	opts := []workout.Option{
		workout.WithTime(createdAt),
		workout.WithID(id),
	}

	if p.kind == workout.Cycling {
		return workout.NewCycling(coords, p.distance, p.duration, p.elevation, opts...)
	}

	return workout.NewRunning(coords, p.distance, p.duration, p.cadence, opts...)
}

// HandleCancel abandons the form and drops the pending selection.
func (c *Controller) HandleCancel() {
	if c.state != FormOpen {
		return
	}

	c.deps.Form.Clear()
	c.deps.Form.Hide()

	c.pending = nil
	c.state = MapReady
}

func (c *Controller) find(id string) *workout.Workout {
	for _, w := range c.workouts {
		if w.ID == id {
			return w
		}
	}

	return nil
}

// HandleListActivate recenters the map on the workout with the given id. It
// reports whether the map moved.
func (c *Controller) HandleListActivate(id string) bool {
	w := c.find(id)
	if w == nil {
		c.logger.Debug("list activation", slog.Any("error", ErrLookupMiss.Fmt(id)))
		return false
	}

	if c.mapView == nil {
		return false
	}

	c.mapView.Recenter(w.Coords, c.animate)

	return true
}

// Reset deletes the saved collection, empties the session and starts it
// again.
func (c *Controller) Reset(ctx context.Context) (FixRequest, error) {
	if err := c.deps.Store.Clear(ctx); err != nil {
		return nil, errClearWorkouts.Wrap(err)
	}

	c.workouts = nil
	c.pending = nil
	c.mapView = nil

	c.deps.List.Clear()
	c.deps.Form.Clear()
	c.deps.Form.Hide()

	c.state = Uninitialized

	c.logger.Info("session reset")

	return c.Start(ctx), nil
}
