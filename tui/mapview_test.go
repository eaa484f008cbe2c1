package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/mapty/workout"
)

func TestProjectionRoundTrip(t *testing.T) {
	m := newMapView(workout.NewCoords(51.5, -0.12), 13, 40, 20)

	for _, cell := range [][2]int{{0, 0}, {20, 10}, {39, 19}, {7, 3}} {
		col, row, ok := m.toCell(m.toCoords(cell[0], cell[1]))

		assert.True(t, ok)
		assert.Equal(t, cell, [2]int{col, row})
	}
}

func TestCursorStartsAtCenter(t *testing.T) {
	center := workout.NewCoords(10, 10)
	m := newMapView(center, 13, 40, 20)

	assert.Equal(t, center, m.cursor())
}

func TestMoveCursorPans(t *testing.T) {
	m := newMapView(workout.NewCoords(10, 10), 13, 3, 3)

	m.moveCursor(-1, 0)
	assert.Equal(t, 0, m.cursorCol)
	assert.InDelta(t, 10.0, m.center.Lng(), 1e-12)

	m.moveCursor(-1, 0)
	assert.Equal(t, 0, m.cursorCol)
	assert.InDelta(t, 10-m.lngStep(), m.center.Lng(), 1e-12)
}

func TestNormalizeLng(t *testing.T) {
	assert.InDelta(t, -170.0, normalizeLng(190), 1e-9)
	assert.InDelta(t, 170.0, normalizeLng(-190), 1e-9)
	assert.InDelta(t, 0.0, normalizeLng(360), 1e-9)
}

func TestRecenterWithoutAnimation(t *testing.T) {
	m := newMapView(workout.NewCoords(10, 10), 13, 40, 20)

	m.Recenter(workout.NewCoords(5, 5), false)

	assert.False(t, m.animating)
	assert.Equal(t, workout.NewCoords(5, 5), m.center)
	assert.False(t, m.step())
}

func TestMarkersAndClick(t *testing.T) {
	m := newMapView(workout.NewCoords(10, 10), 13, 40, 20)

	var clicked []workout.Coords

	m.OnClick(func(c workout.Coords) {
		clicked = append(clicked, c)
	})

	m.click()
	assert.Equal(t, []workout.Coords{workout.NewCoords(10, 10)}, clicked)

	m.PlaceMarker(workout.NewCoords(10, 10), "Cycling on April 14", workout.Cycling)

	mk, ok := m.markerAt(m.cursorCol, m.cursorRow)
	assert.True(t, ok)
	assert.Equal(t, "Cycling on April 14", mk.label)
	assert.Contains(t, m.View(newStyles()), "Cycling on April 14")

	m.setZoom(40)
	assert.Equal(t, maxZoom, m.zoom)
}
