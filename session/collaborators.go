package session

import (
	"context"

	"github.com/ayoisaiah/mapty/workout"
)

// Locator obtains the user's current position.
type Locator interface {
	Locate(ctx context.Context) (workout.Coords, error)
}

// Renderer creates the interactive map.
type Renderer interface {
	Initialize(center workout.Coords, zoom int) (Map, error)
}

// Map is a map handle returned by a Renderer.
type Map interface {
	OnClick(handler func(workout.Coords))
	PlaceMarker(coords workout.Coords, label string, kind workout.Kind)
	Recenter(coords workout.Coords, animate bool)
}

// List displays the collection, one entry per workout.
type List interface {
	AppendEntry(w *workout.Workout)
	Clear()
}

// Store persists the encoded collection. Load returns store.ErrNoData when
// nothing was saved before.
type Store interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}

// FormValues holds the raw, unparsed contents of the workout form.
type FormValues struct {
	Kind      workout.Kind
	Distance  string
	Duration  string
	Cadence   string
	Elevation string
}

// Form is the workout entry form.
type Form interface {
	Values() FormValues
	Show()
	Hide()
	Clear()
	FocusDistance()
	// ToggleKindFields swaps the cadence and elevation fields
	ToggleKindFields()
}

// Notifier shows a message that the user has to acknowledge.
type Notifier interface {
	Notify(msg string)
}

// Hook runs side effects after a workout has been saved.
type Hook interface {
	AfterSave(ctx context.Context, w *workout.Workout)
}
