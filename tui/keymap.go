package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	submit     key.Binding
	activate   key.Binding
	ack        key.Binding
	switchPane key.Binding
	nextField  key.Binding
	prevField  key.Binding
	zoomIn     key.Binding
	zoomOut    key.Binding
	cancel     key.Binding
	toggleKind key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add workout here"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show on map"),
	),
	ack: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter", "ok"),
	),
	switchPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	nextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	prevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	zoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	zoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	toggleKind: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "running/cycling"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keymap) mapHelp() []key.Binding {
	return []key.Binding{k.enter, k.zoomIn, k.zoomOut, k.switchPane, k.quit}
}

func (k keymap) listHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.activate, k.switchPane, k.quit}
}

func (k keymap) formHelp() []key.Binding {
	return []key.Binding{k.submit, k.nextField, k.toggleKind, k.cancel}
}

func (k keymap) noticeHelp() []key.Binding {
	return []key.Binding{k.ack}
}
