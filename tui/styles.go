package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/mapty/workout"
)

var (
	colorBrand   = lipgloss.AdaptiveColor{Light: "#2d3439", Dark: "#ececec"}
	colorRunning = lipgloss.Color("#00c46a")
	colorCycling = lipgloss.Color("#ffb545")
	colorMuted   = lipgloss.AdaptiveColor{Light: "#aaaaaa", Dark: "#5f6b72"}
	colorPanel   = lipgloss.AdaptiveColor{Light: "#d6dee0", Dark: "#42484d"}
)

type styles struct {
	title      lipgloss.Style
	pane       lipgloss.Style
	activePane lipgloss.Style
	grid       lipgloss.Style
	cursor     lipgloss.Style
	muted      lipgloss.Style
	popup      lipgloss.Style
	notice     lipgloss.Style
	fieldLabel lipgloss.Style
	selected   lipgloss.Style
	form       lipgloss.Style
}

func newStyles() styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPanel).
		Padding(0, 1)

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand).
			MarginBottom(1),
		pane:       pane,
		activePane: pane.BorderForeground(colorRunning),
		grid:       lipgloss.NewStyle().Foreground(colorPanel),
		cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBrand),
		muted: lipgloss.NewStyle().Foreground(colorMuted),
		popup: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true),
		notice: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorCycling).
			Padding(1, 3),
		fieldLabel: lipgloss.NewStyle().Width(10),
		selected:   lipgloss.NewStyle().Bold(true),
		form: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPanel).
			Padding(0, 1).
			MarginBottom(1),
	}
}

// kindColor returns the accent colour of a workout kind.
func kindColor(kind workout.Kind) lipgloss.Color {
	if kind == workout.Cycling {
		return colorCycling
	}

	return colorRunning
}

func (s styles) kind(kind workout.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(kindColor(kind))
}
