package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"

	"github.com/ayoisaiah/mapty/workout"
)

const (
	minZoom = 1
	maxZoom = 18

	animationFPS = 60
	// maxFrames bounds an animation to about two seconds
	maxFrames = 2 * animationFPS
)

type marker struct {
	label  string
	kind   workout.Kind
	coords workout.Coords
}

// mapView is a character grid projected around a centre point. Each column
// spans lngStep degrees and each row twice that, since terminal cells are
// roughly twice as tall as they are wide.
type mapView struct {
	onClick   func(workout.Coords)
	markers   []marker
	spring    harmonica.Spring
	center    workout.Coords
	target    workout.Coords
	vel       [2]float64
	width     int
	height    int
	cursorCol int
	cursorRow int
	zoom      int
	frames    int
	animating bool
}

func newMapView(center workout.Coords, zoom, width, height int) *mapView {
	m := &mapView{
		center: center,
		target: center,
		zoom:   zoom,
		spring: harmonica.NewSpring(harmonica.FPS(animationFPS), 6.0, 1.0),
	}

	m.resize(width, height)
	m.cursorCol, m.cursorRow = m.width/2, m.height/2

	return m
}

func (m *mapView) resize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 1)
	m.cursorCol = min(m.cursorCol, m.width-1)
	m.cursorRow = min(m.cursorRow, m.height-1)
}

func (m *mapView) lngStep() float64 {
	return 360 / math.Pow(2, float64(m.zoom+5))
}

func (m *mapView) latStep() float64 {
	return 2 * m.lngStep()
}

func normalizeLng(lng float64) float64 {
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}

	return lng - 180
}

func clampLat(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

// toCoords returns the position under a grid cell.
func (m *mapView) toCoords(col, row int) workout.Coords {
	lat := m.center.Lat() + float64(m.height/2-row)*m.latStep()
	lng := m.center.Lng() + float64(col-m.width/2)*m.lngStep()

	return workout.NewCoords(clampLat(lat), normalizeLng(lng))
}

// toCell returns the grid cell containing c and whether it is visible.
func (m *mapView) toCell(c workout.Coords) (col, row int, ok bool) {
	dLng := normalizeLng(c.Lng() - m.center.Lng())

	col = m.width/2 + int(math.Round(dLng/m.lngStep()))
	row = m.height/2 - int(math.Round((c.Lat()-m.center.Lat())/m.latStep()))

	ok = col >= 0 && col < m.width && row >= 0 && row < m.height

	return col, row, ok
}

func (m *mapView) cursor() workout.Coords {
	return m.toCoords(m.cursorCol, m.cursorRow)
}

// moveCursor moves the cursor and pans the map when it would leave the grid.
func (m *mapView) moveCursor(dCol, dRow int) {
	col, row := m.cursorCol+dCol, m.cursorRow+dRow

	lat, lng := m.center.Lat(), m.center.Lng()

	switch {
	case col < 0:
		lng -= m.lngStep()
		col = 0
	case col >= m.width:
		lng += m.lngStep()
		col = m.width - 1
	}

	switch {
	case row < 0:
		lat += m.latStep()
		row = 0
	case row >= m.height:
		lat -= m.latStep()
		row = m.height - 1
	}

	m.center = workout.NewCoords(clampLat(lat), normalizeLng(lng))
	m.target = m.center
	m.cursorCol, m.cursorRow = col, row
}

func (m *mapView) setZoom(zoom int) {
	m.zoom = max(minZoom, min(maxZoom, zoom))
}

func (m *mapView) click() {
	if m.onClick != nil {
		m.onClick(m.cursor())
	}
}

func (m *mapView) OnClick(handler func(workout.Coords)) {
	m.onClick = handler
}

func (m *mapView) PlaceMarker(coords workout.Coords, label string, kind workout.Kind) {
	m.markers = append(m.markers, marker{coords: coords, label: label, kind: kind})
}

// Recenter moves the map to coords, either at once or by animating towards
// it over the following frames.
func (m *mapView) Recenter(coords workout.Coords, animate bool) {
	m.target = coords
	m.cursorCol, m.cursorRow = m.width/2, m.height/2

	if !animate {
		m.center = coords
		m.vel = [2]float64{}
		m.animating = false

		return
	}

	m.frames = 0
	m.animating = true
}

// step advances the animation by one frame and reports whether it is still
// running.
func (m *mapView) step() bool {
	if !m.animating {
		return false
	}

	m.frames++

	for i := range m.center {
		m.center[i], m.vel[i] = m.spring.Update(m.center[i], m.vel[i], m.target[i])
	}

	if m.frames >= maxFrames || m.settled() {
		m.center = m.target
		m.vel = [2]float64{}
		m.animating = false
	}

	return m.animating
}

func (m *mapView) settled() bool {
	eps := m.lngStep() / 4

	for i := range m.center {
		if math.Abs(m.center[i]-m.target[i]) > eps || math.Abs(m.vel[i]) > eps {
			return false
		}
	}

	return true
}

// markerAt returns the most recently placed marker in the given cell.
func (m *mapView) markerAt(col, row int) (marker, bool) {
	for i := len(m.markers) - 1; i >= 0; i-- {
		c, r, ok := m.toCell(m.markers[i].coords)
		if ok && c == col && r == row {
			return m.markers[i], true
		}
	}

	return marker{}, false
}

func (m *mapView) View(st styles) string {
	cells := make(map[[2]int]marker, len(m.markers))

	for _, mk := range m.markers {
		if col, row, ok := m.toCell(mk.coords); ok {
			cells[[2]int{col, row}] = mk
		}
	}

	var b strings.Builder

	for row := range m.height {
		for col := range m.width {
			mk, hasMarker := cells[[2]int{col, row}]

			switch {
			case col == m.cursorCol && row == m.cursorRow:
				glyph := "+"
				if hasMarker {
					glyph = "◉"
				}

				b.WriteString(st.cursor.Render(glyph))
			case hasMarker:
				b.WriteString(st.kind(mk.kind).Render("●"))
			case col%4 == 0 && row%2 == 0:
				b.WriteString(st.grid.Render("·"))
			default:
				b.WriteByte(' ')
			}
		}

		b.WriteByte('\n')
	}

	b.WriteString(m.popup(st))

	return b.String()
}

// popup describes the marker under the cursor, or the cursor position.
func (m *mapView) popup(st styles) string {
	if mk, ok := m.markerAt(m.cursorCol, m.cursorRow); ok {
		return st.popup.
			BorderForeground(kindColor(mk.kind)).
			Render(mk.kind.Icon() + " " + mk.label)
	}

	return st.muted.Render(fmt.Sprintf("%s  zoom %d", m.cursor(), m.zoom))
}
