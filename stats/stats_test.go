package stats

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mapty/workout"
)

func testWorkouts() []*workout.Workout {
	// April 13, 2026 is a Monday
	at := func(d int) workout.Option {
		return workout.WithTime(time.Date(2026, time.April, d, 8, 0, 0, 0, time.UTC))
	}

	return []*workout.Workout{
		workout.NewRunning(workout.NewCoords(0, 0), 5, 25, 180, at(13)),
		workout.NewRunning(workout.NewCoords(0, 0), 10, 55, 170, at(14)),
		workout.NewCycling(workout.NewCoords(0, 0), 30, 90, 250, at(14)),
	}
}

func TestCompute(t *testing.T) {
	s := Compute(testWorkouts())

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 45.0, s.Distance, 1e-9)
	assert.InDelta(t, 170.0, s.Duration, 1e-9)

	run := s.Kinds[workout.Running]
	assert.Equal(t, 2, run.Count)
	assert.InDelta(t, 80.0/15.0, run.Metric(workout.Running), 1e-9)
	assert.InDelta(t, 350.0, run.Cadence, 1e-9)

	ride := s.Kinds[workout.Cycling]
	assert.Equal(t, 1, ride.Count)
	assert.InDelta(t, 20.0, ride.Metric(workout.Cycling), 1e-9)
	assert.InDelta(t, 250.0, ride.Elevation, 1e-9)

	assert.InDelta(t, 5.0, s.Weekly[int(time.Monday)], 1e-9)
	assert.InDelta(t, 40.0, s.Weekly[int(time.Tuesday)], 1e-9)
	assert.InDelta(t, 0.0, s.Weekly[int(time.Sunday)], 1e-9)
	assert.InDelta(t, 45.0, s.Monthly[int(time.April)], 1e-9)

	assert.Equal(t, 13, s.Start.Day())
	assert.Equal(t, 14, s.End.Day())
}

func TestKindMetricEmpty(t *testing.T) {
	k := &KindSummary{}
	assert.Zero(t, k.Metric(workout.Running))
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer

	Show(&buf, testWorkouts())

	out := buf.String()
	assert.Contains(t, out, "April 13, 2026")
	assert.Contains(t, out, "45.0 km")
	assert.Contains(t, out, "20.0 km/h")
	assert.Contains(t, out, "Tuesday")
}
