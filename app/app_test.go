package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/ayoisaiah/mapty/internal/config"
	"github.com/ayoisaiah/mapty/internal/osutil"
	"github.com/ayoisaiah/mapty/internal/testutil"
	"github.com/ayoisaiah/mapty/session"
	"github.com/ayoisaiah/mapty/workout"
)

const testConfig = `geolocation:
    provider: static
    latitude: 10
    longitude: 10
`

// setupApp isolates the app in a temporary XDG tree with a static position
// and captures standard output.
func setupApp(t *testing.T) (dir string, out *bytes.Buffer) {
	t.Helper()

	dir = testutil.SetupXDG(t)

	configDir := filepath.Join(dir, "config", "mapty")
	require.NoError(t, os.MkdirAll(configDir, osutil.DirPermission))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "config.yml"),
		[]byte(testConfig),
		osutil.FilePermission,
	))

	out = &bytes.Buffer{}

	origStdout, origStdin := config.Stdout, config.Stdin
	config.Stdout = out

	t.Cleanup(func() {
		config.Stdout, config.Stdin = origStdout, origStdin
	})

	return dir, out
}

func runApp(t *testing.T, out *bytes.Buffer, args ...string) error {
	t.Helper()

	out.Reset()

	return Get().Run(append([]string{"mapty", "--no-color"}, args...))
}

func listJSON(t *testing.T, out *bytes.Buffer, args ...string) []*workout.Workout {
	t.Helper()

	require.NoError(t, runApp(t, out, append([]string{"list", "--json"}, args...)...))

	workouts, err := workout.Decode(bytes.TrimSpace(out.Bytes()))
	require.NoError(t, err)

	return workouts
}

func addRun(t *testing.T, out *bytes.Buffer) string {
	t.Helper()

	require.NoError(t, runApp(t, out,
		"add", "--kind", "running", "--distance", "5", "--duration", "25", "--cadence", "180",
	))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")

	return strings.TrimSpace(lines[len(lines)-1])
}

func TestAddAndList(t *testing.T) {
	_, out := setupApp(t)

	assert.Empty(t, listJSON(t, out))

	id := addRun(t, out)

	require.NoError(t, runApp(t, out,
		"add", "--kind", "cycling", "--distance", "20", "--duration", "60", "--elevation", "100",
	))

	workouts := listJSON(t, out)
	require.Len(t, workouts, 2)

	assert.Equal(t, id, workouts[0].ID)
	assert.Equal(t, workout.Running, workouts[0].Kind)
	assert.InDelta(t, 5.0, workouts[0].Pace, 1e-9)
	assert.Equal(t, workout.NewCoords(10, 10), workouts[0].Coords)

	assert.Equal(t, workout.Cycling, workouts[1].Kind)
	assert.InDelta(t, 20.0, workouts[1].Speed, 1e-9)

	sorted := listJSON(t, out, "--sort", "distance")
	assert.Equal(t, workout.Cycling, sorted[0].Kind)

	assert.Empty(t, listJSON(t, out, "--until", "2000-01-01"))
}

func TestAddInvalid(t *testing.T) {
	_, out := setupApp(t)

	err := runApp(t, out,
		"add", "--kind", "running", "--distance", "5", "--duration", "0", "--cadence", "180",
	)
	require.ErrorIs(t, err, session.ErrInvalidWorkoutInput)

	assert.Empty(t, listJSON(t, out))
}

func TestAddDryRun(t *testing.T) {
	_, out := setupApp(t)

	require.NoError(t, runApp(t, out,
		"add", "--dry-run", "--kind", "running", "--distance", "5", "--duration", "25", "--cadence", "180",
	))

	assert.Empty(t, listJSON(t, out))
}

func TestShow(t *testing.T) {
	_, out := setupApp(t)

	id := addRun(t, out)

	require.NoError(t, runApp(t, out, "show", id))
	assert.Contains(t, out.String(), "map centred on 10.00000, 10.00000")

	err := runApp(t, out, "show", "missing")
	assert.ErrorIs(t, err, session.ErrLookupMiss)

	assert.ErrorIs(t, runApp(t, out, "show"), errMissingID)
}

func TestExport(t *testing.T) {
	dir, out := setupApp(t)

	addRun(t, out)

	output := filepath.Join(dir, "workouts.gpx")

	require.NoError(t, runApp(t, out, "export", "--output", output))

	g, err := gpx.ParseFile(output)
	require.NoError(t, err)
	require.Len(t, g.Waypoints, 1)
	assert.Equal(t, "running", g.Waypoints[0].Type)
}

func TestReset(t *testing.T) {
	_, out := setupApp(t)

	addRun(t, out)
	addRun(t, out)

	config.Stdin = strings.NewReader("\n")

	require.NoError(t, runApp(t, out, "reset"))

	assert.Empty(t, listJSON(t, out))
}

func TestStats(t *testing.T) {
	_, out := setupApp(t)

	addRun(t, out)
	addRun(t, out)

	require.NoError(t, runApp(t, out, "stats"))

	assert.Contains(t, out.String(), "10.0 km")
	assert.Contains(t, out.String(), "5.0 min/km")
}

func TestInvalidSort(t *testing.T) {
	_, out := setupApp(t)

	err := runApp(t, out, "list", "--sort", "speed")
	assert.ErrorIs(t, err, errInvalidSort)
}

func TestFilterApply(t *testing.T) {
	day := func(d int) workout.Option {
		return workout.WithTime(time.Date(2026, time.April, d, 12, 0, 0, 0, time.UTC))
	}

	workouts := []*workout.Workout{
		workout.NewRunning(workout.NewCoords(0, 0), 3, 20, 170, day(10), workout.WithID("a")),
		workout.NewCycling(workout.NewCoords(0, 0), 40, 90, 10, day(2), workout.WithID("b")),
		workout.NewRunning(workout.NewCoords(0, 0), 10, 50, 175, day(21), workout.WithID("c")),
	}

	ids := func(ws []*workout.Workout) []string {
		out := make([]string, 0, len(ws))
		for _, w := range ws {
			out = append(out, w.ID)
		}

		return out
	}

	testCases := []struct {
		Name   string
		Filter filter
		Want   []string
	}{
		{
			Name:   "insertion order",
			Filter: filter{sort: sortDate},
			Want:   []string{"a", "b", "c"},
		},
		{
			Name:   "natural label order",
			Filter: filter{sort: sortLabel},
			Want:   []string{"b", "a", "c"},
		},
		{
			Name:   "longest first",
			Filter: filter{sort: sortDistance},
			Want:   []string{"b", "c", "a"},
		},
		{
			Name: "date range",
			Filter: filter{
				sort:  sortDate,
				since: time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC),
				until: time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
			},
			Want: []string{"a"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, ids(tc.Filter.apply(workouts)))
		})
	}
}
