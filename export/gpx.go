// Package export writes the workout collection in interchange formats
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/ayoisaiah/mapty/workout"
)

const gpxVersion = "1.1"

// GPX returns the workouts as GPX waypoints, one per workout in
// collection order.
func GPX(workouts []*workout.Workout) *gpx.GPX {
	g := &gpx.GPX{
		Version: gpxVersion,
		Creator: "mapty",
		Name:    "mapty workouts",
	}

	for _, w := range workouts {
		g.Waypoints = append(g.Waypoints, gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  w.Coords.Lat(),
				Longitude: w.Coords.Lng(),
			},
			Timestamp:   w.CreatedAt,
			Name:        w.Label,
			Description: describe(w),
			Comment:     w.ID,
			Type:        string(w.Kind),
		})
	}

	return g
}

// describe joins the display details of w into one line.
func describe(w *workout.Workout) string {
	details := w.Details()

	parts := make([]string, 0, len(details))
	for _, d := range details {
		parts = append(parts, d.Value+" "+d.Unit)
	}

	return strings.Join(parts, ", ")
}

// WriteGPX encodes the workouts as an indented GPX 1.1 document.
func WriteGPX(out io.Writer, workouts []*workout.Workout) error {
	b, err := GPX(workouts).ToXml(gpx.ToXmlParams{
		Version: gpxVersion,
		Indent:  true,
	})
	if err != nil {
		return fmt.Errorf("encoding gpx: %w", err)
	}

	_, err = out.Write(b)

	return err
}
