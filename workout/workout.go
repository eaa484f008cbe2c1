// Package workout defines geolocated running and cycling workouts
package workout

import (
	"fmt"
	"strconv"
	"time"
)

// Kind discriminates between the workout variants.
type Kind string

const (
	Running Kind = "running"
	Cycling Kind = "cycling"
)

// Kinds lists the supported workout kinds in display order.
var Kinds = []Kind{Running, Cycling}

// Title returns the capitalised kind name.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}

	s := string(k)

	first := s[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}

	return string(first) + s[1:]
}

// Icon returns the marker icon for the kind.
func (k Kind) Icon() string {
	if k == Cycling {
		return "🚴‍♀️"
	}

	return "🏃‍♂️"
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == Running || k == Cycling
}

// Coords is a latitude and longitude pair.
type Coords [2]float64

// NewCoords creates a Coords value.
func NewCoords(lat, lng float64) Coords {
	return Coords{lat, lng}
}

func (c Coords) Lat() float64 {
	return c[0]
}

func (c Coords) Lng() float64 {
	return c[1]
}

func (c Coords) String() string {
	return fmt.Sprintf("%.5f, %.5f", c[0], c[1])
}

// RunningMetrics holds the fields specific to a running workout.
type RunningMetrics struct {
	// Cadence is measured in steps per minute
	Cadence float64 `json:"cadence"`
	// Pace is measured in minutes per kilometre
	Pace float64 `json:"pace"`
}

// CyclingMetrics holds the fields specific to a cycling workout.
type CyclingMetrics struct {
	// ElevationGain is measured in metres
	ElevationGain float64 `json:"elevation_gain"`
	// Speed is measured in kilometres per hour
	Speed float64 `json:"speed"`
}

// Workout is a single recorded workout. Exactly one of the embedded metrics
// is set, and it always matches Kind.
type Workout struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Kind      Kind      `json:"kind"`
	Label     string    `json:"label"`
	Coords    Coords    `json:"coords"`
	Distance  float64   `json:"distance"` // km
	Duration  float64   `json:"duration"` // min
	*RunningMetrics
	*CyclingMetrics
}

// Option customises a workout at construction time.
type Option func(*Workout)

// WithTime sets the creation time of the workout.
func WithTime(t time.Time) Option {
	return func(w *Workout) {
		w.CreatedAt = t
	}
}

// WithID sets the identifier of the workout.
func WithID(id string) Option {
	return func(w *Workout) {
		w.ID = id
	}
}

func newWorkout(
	kind Kind,
	coords Coords,
	distance, duration float64,
	opts ...Option,
) *Workout {
	w := &Workout{
		Kind:     kind,
		Coords:   coords,
		Distance: distance,
		Duration: duration,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}

	if w.ID == "" {
		w.ID = NewID(w.CreatedAt)
	}

	w.Label = Label(kind, w.CreatedAt)

	return w
}

// NewRunning creates a running workout and computes its pace.
func NewRunning(
	coords Coords,
	distance, duration, cadence float64,
	opts ...Option,
) *Workout {
	w := newWorkout(Running, coords, distance, duration, opts...)

	w.RunningMetrics = &RunningMetrics{
		Cadence: cadence,
		Pace:    duration / distance,
	}

	return w
}

// NewCycling creates a cycling workout and computes its speed.
func NewCycling(
	coords Coords,
	distance, duration, elevationGain float64,
	opts ...Option,
) *Workout {
	w := newWorkout(Cycling, coords, distance, duration, opts...)

	w.CyclingMetrics = &CyclingMetrics{
		ElevationGain: elevationGain,
		Speed:         distance / (duration / 60),
	}

	return w
}

// Metric returns the derived metric of the workout and its unit.
func (w *Workout) Metric() (value float64, unit string) {
	switch w.Kind {
	case Running:
		return w.RunningMetrics.Pace, "min/km"
	case Cycling:
		return w.CyclingMetrics.Speed, "km/h"
	}

	return 0, ""
}

// Detail is a single displayable value of a workout.
type Detail struct {
	Icon  string
	Value string
	Unit  string
}

// Details returns the values shown for a workout in a list. The derived
// metric and cadence are rounded to one decimal place.
func (w *Workout) Details() []Detail {
	details := []Detail{
		{Icon: w.Kind.Icon(), Value: formatRaw(w.Distance), Unit: "km"},
		{Icon: "⏱", Value: formatRaw(w.Duration), Unit: "min"},
	}

	metric, unit := w.Metric()

	details = append(details, Detail{
		Icon:  "⚡️",
		Value: strconv.FormatFloat(metric, 'f', 1, 64),
		Unit:  unit,
	})

	switch w.Kind {
	case Running:
		details = append(details, Detail{
			Icon:  "🦶🏼",
			Value: strconv.FormatFloat(w.RunningMetrics.Cadence, 'f', 1, 64),
			Unit:  "spm",
		})
	case Cycling:
		details = append(details, Detail{
			Icon:  "⛰",
			Value: formatRaw(w.CyclingMetrics.ElevationGain),
			Unit:  "m",
		})
	}

	return details
}

func formatRaw(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
