// Package tui is the interactive terminal front end: a map pane, a workout
// list and the workout form, driven by a bubbletea program.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/mapty/session"
	"github.com/ayoisaiah/mapty/workout"
)

const (
	sidebarWidth  = 46
	defaultWidth  = 100
	defaultHeight = 30
	chromeHeight  = 6
)

type pane int

const (
	mapPane pane = iota
	listPane
)

type (
	fixMsg   session.FixResult
	frameMsg struct{}
)

// Options configures the terminal front end.
type Options struct {
	Zoom    int
	Animate bool
}

// Deps holds the collaborators that live outside the terminal.
type Deps struct {
	Locator session.Locator
	Store   session.Store
	Hook    session.Hook
	Logger  *slog.Logger
}

// Model is the bubbletea model. It renders the map, list, form and notices
// that the session controller drives.
type Model struct {
	ctx       context.Context
	ctrl      *session.Controller
	logger    *slog.Logger
	mapView   *mapView
	list      *workoutList
	form      *workoutForm
	notice    string
	help      help.Model
	styles    styles
	keys      keymap
	pane      pane
	width     int
	height    int
	hook      session.Hook
	saved     *savedQueue
	ticking   bool
	fixFailed bool
}

// savedQueue collects saved workouts so that the after-save hook runs as a
// command instead of inside Update.
type savedQueue struct {
	workouts []*workout.Workout
}

func (q *savedQueue) AfterSave(_ context.Context, w *workout.Workout) {
	q.workouts = append(q.workouts, w)
}

// New creates the model and its session controller.
func New(ctx context.Context, deps Deps, opts Options) *Model {
	m := &Model{
		ctx:    ctx,
		logger: deps.Logger,
		list:   &workoutList{},
		form:   newWorkoutForm(),
		help:   help.New(),
		styles: newStyles(),
		keys:   defaultKeymap,
		width:  defaultWidth,
		height: defaultHeight,
		hook:   deps.Hook,
	}

	var h session.Hook

	if deps.Hook != nil {
		m.saved = &savedQueue{}
		h = m.saved
	}

	m.ctrl = session.New(session.Deps{
		Locator:  deps.Locator,
		Renderer: m,
		List:     m.list,
		Store:    deps.Store,
		Form:     m.form,
		Notifier: m,
		Hook:     h,
		Logger:   deps.Logger,
	}, session.WithZoom(opts.Zoom), session.WithAnimate(opts.Animate))

	if m.logger == nil {
		m.logger = slog.Default()
	}

	return m
}

// Run starts the bubbletea program and blocks until the user quits.
func Run(ctx context.Context, m *Model) error {
	_, err := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()

	return err
}

func (m *Model) mapSize() (width, height int) {
	return max(m.width-sidebarWidth-4, 10), max(m.height-chromeHeight, 5)
}

// Initialize creates the map pane.
func (m *Model) Initialize(center workout.Coords, zoom int) (session.Map, error) {
	w, h := m.mapSize()

	m.mapView = newMapView(center, zoom, w, h)

	return m.mapView, nil
}

// Notify shows a notice that swallows input until it is acknowledged.
func (m *Model) Notify(msg string) {
	m.notice = msg
}

func fixCmd(fix session.FixRequest) tea.Cmd {
	if fix == nil {
		return nil
	}

	return func() tea.Msg {
		return fixMsg(fix())
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/animationFPS, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// hookCmd runs the after-save hook for the workouts saved since the last
// call.
func (m *Model) hookCmd() tea.Cmd {
	if m.saved == nil || len(m.saved.workouts) == 0 {
		return nil
	}

	saved := m.saved.workouts
	m.saved.workouts = nil

	ctx, hook := m.ctx, m.hook

	return func() tea.Msg {
		for _, w := range saved {
			hook.AfterSave(ctx, w)
		}

		return nil
	}
}

func (m *Model) Init() tea.Cmd {
	return fixCmd(m.ctrl.Start(m.ctx))
}

// animate schedules the next frame while the map is moving.
func (m *Model) animate() tea.Cmd {
	if m.ticking || m.mapView == nil || !m.mapView.animating {
		return nil
	}

	m.ticking = true

	return frameCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameMsg); !ok && m.logger.Enabled(m.ctx, slog.LevelDebug) {
		m.logger.Debug("update", slog.String("msg", spew.Sdump(msg)))
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case fixMsg:
		err := m.ctrl.HandleFix(m.ctx, session.FixResult(msg))
		if err != nil {
			m.fixFailed = true
			m.pane = listPane
		}

	case frameMsg:
		m.ticking = false

		if m.mapView != nil {
			m.mapView.step()
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

		if m.mapView != nil {
			m.mapView.resize(m.mapSize())
		}

	case tea.KeyMsg:
		var quit bool

		cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
	}

	return m, tea.Batch(cmd, m.animate())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return nil, true
	}

	if m.notice != "" {
		if key.Matches(msg, m.keys.ack) {
			m.notice = ""
		}

		return nil, false
	}

	if m.form.visible {
		return m.handleFormKey(msg), false
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return nil, true
	case key.Matches(msg, m.keys.switchPane):
		if m.pane == listPane && m.mapView != nil {
			m.pane = mapPane
		} else {
			m.pane = listPane
		}

		return nil, false
	}

	if m.pane == listPane {
		m.handleListKey(msg)
	} else {
		m.handleMapKey(msg)
	}

	return nil, false
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.ctrl.HandleCancel()
	case key.Matches(msg, m.keys.submit):
		if err := m.ctrl.HandleSubmit(m.ctx); err != nil {
			m.logger.Info("workout not saved", slog.Any("error", err))
		}

		return m.hookCmd()
	case key.Matches(msg, m.keys.toggleKind):
		m.form.cycleKind()
		m.ctrl.HandleKindChange()
	case key.Matches(msg, m.keys.nextField):
		m.form.moveFocus(1)
	case key.Matches(msg, m.keys.prevField):
		m.form.moveFocus(-1)
	default:
		return m.form.update(msg)
	}

	return nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.up):
		m.list.move(-1)
	case key.Matches(msg, m.keys.down):
		m.list.move(1)
	case key.Matches(msg, m.keys.activate):
		if w := m.list.current(); w != nil {
			if m.ctrl.HandleListActivate(w.ID) {
				m.pane = mapPane
			}
		}
	}
}

func (m *Model) handleMapKey(msg tea.KeyMsg) {
	if m.mapView == nil {
		return
	}

	switch {
	case key.Matches(msg, m.keys.up):
		m.mapView.moveCursor(0, -1)
	case key.Matches(msg, m.keys.down):
		m.mapView.moveCursor(0, 1)
	case key.Matches(msg, m.keys.left):
		m.mapView.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.right):
		m.mapView.moveCursor(1, 0)
	case key.Matches(msg, m.keys.zoomIn):
		m.mapView.setZoom(m.mapView.zoom + 1)
	case key.Matches(msg, m.keys.zoomOut):
		m.mapView.setZoom(m.mapView.zoom - 1)
	case key.Matches(msg, m.keys.enter):
		m.mapView.click()
	}
}

func (m *Model) View() string {
	if m.notice != "" {
		box := m.styles.notice.Render(
			m.notice + "\n\n" + m.help.ShortHelpView(m.keys.noticeHelp()),
		)

		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	_, mapHeight := m.mapSize()

	var sidebar strings.Builder

	sidebar.WriteString(m.styles.title.Render("🗺  mapty"))
	sidebar.WriteString("\n")

	listHeight := mapHeight

	if m.form.visible {
		formView := m.form.View(m.styles)
		sidebar.WriteString(formView + "\n")
		listHeight -= lipgloss.Height(formView)
	}

	sidebar.WriteString(m.list.View(m.styles, listHeight, m.pane == listPane && !m.form.visible))

	listStyle, mapStyle := m.styles.pane, m.styles.pane
	if m.pane == listPane || m.form.visible {
		listStyle = m.styles.activePane
	} else {
		mapStyle = m.styles.activePane
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listStyle.Width(sidebarWidth).Render(sidebar.String()),
		mapStyle.Render(m.mapPaneView()),
	)

	return body + "\n" + m.help.ShortHelpView(m.helpBindings())
}

func (m *Model) mapPaneView() string {
	if m.mapView != nil {
		return m.mapView.View(m.styles)
	}

	w, h := m.mapSize()

	msg := "Locating you..."
	if m.fixFailed {
		msg = "Map unavailable: your position is unknown"
	}

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.styles.muted.Render(msg))
}

func (m *Model) helpBindings() []key.Binding {
	switch {
	case m.form.visible:
		return m.keys.formHelp()
	case m.pane == listPane:
		return m.keys.listHelp()
	}

	return m.keys.mapHelp()
}

// Workouts returns the collection shown in the list.
func (m *Model) Workouts() []*workout.Workout {
	return m.ctrl.Workouts()
}
