package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/engine"
	"github.com/vovakirdan/tui-raycast/internal/registry"
)

// activeRun tracks the loop currently running in a session so its run can
// be recorded exactly once, whether it ends by quitting or by disconnect.
type activeRun struct {
	mu     sync.Mutex
	loop   *engine.Loop
	record func(engine.Stats)
}

func (a *activeRun) start(l *engine.Loop) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loop = l
}

// finish records the active loop, if any, and forgets it.
func (a *activeRun) finish() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loop == nil {
		return
	}
	if a.record != nil {
		a.record(a.loop.Stats())
	}
	a.loop = nil
}

// SessionModel manages the full session flow: preset picker -> raycaster -> preset picker.
// This is the top-level model used for SSH sessions and `play --menu`.
type SessionModel struct {
	base     engine.Options
	term     Options
	menu     MenuModel
	game     *Model
	active   *activeRun
	cols     int
	rows     int
	status   string
	quitting bool
}

// NewSessionModel creates a session model. base is the template for every
// loop; the chosen preset is applied on top of it. record, if not nil,
// receives the stats of every finished loop.
func NewSessionModel(base engine.Options, term Options, width, height int, record func(engine.Stats)) SessionModel {
	return SessionModel{
		base:   base,
		term:   term,
		menu:   NewMenuModel(width, height),
		active: &activeRun{record: record},
		cols:   width,
		rows:   height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cols, m.rows = wsm.Width, wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a finished loop
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(selected.PresetID)
	}

	return m, cmd
}

// startGame creates a loop with the given preset.
func (m SessionModel) startGame(presetID string) (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.cols, m.rows)

	preset, err := registry.Get(presetID)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	opts := m.base
	preset.Apply(&opts)
	opts.Dims = core.Dims{W: core.Max(m.cols, 1), H: core.Max(m.rows-1, 1) * 2}

	game := NewModel(opts, m.term)
	if m.cols > 0 && m.rows > 0 {
		next, _ := game.Update(tea.WindowSizeMsg{Width: m.cols, Height: m.rows})
		game = next.(Model)
	}

	m.game = &game
	m.status = ""
	m.active.start(game.loop)
	return m, game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	game, ok := newModel.(Model)
	if !ok {
		return m, cmd
	}
	m.game = &game

	// A stopped loop returns to the menu instead of quitting the program
	if game.Done() {
		m.active.finish()
		if err := game.Err(); err != nil {
			m.status = err.Error()
		}
		m.game = nil
		m.menu = NewMenuModel(m.cols, m.rows)
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	if m.status != "" {
		return m.menu.View() + "\n" + centerText(m.status, m.cols)
	}
	return m.menu.View()
}

// InGame reports whether a loop is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// RunSession runs the preset picker and raycaster until the user quits.
func RunSession(base engine.Options, term Options, width, height int, record func(engine.Stats)) error {
	model := NewSessionModel(base, term, width, height, record)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	// Flush a loop cut short by a program error
	model.active.finish()
	return err
}
