package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/engine"
	"github.com/vovakirdan/tui-raycast/internal/platform/headless"
)

// Options tunes the terminal platform.
type Options struct {
	TickRate      int                // Ticks per second
	Nudge         int                // Virtual cursor pixels per a/d press
	MouseGain     int                // Virtual cursor pixels per column of mouse motion
	ShowHUD       bool               // Show the status line at start
	ScreenshotDir string             // Where ctrl+s writes PNGs; "~" is expanded, empty disables
	Renderer      *lipgloss.Renderer // nil uses stdout's renderer
}

// DefaultOptions returns the terminal defaults.
func DefaultOptions() Options {
	return Options{
		TickRate:      30,
		Nudge:         40,
		MouseGain:     8,
		ShowHUD:       true,
		ScreenshotDir: "~/.raycast/screenshots",
	}
}

// Model is the Bubble Tea model that drives one frame loop.
type Model struct {
	loop     *engine.Loop
	term     *terminal
	keys     *KeyMapper
	help     help.Model
	hudStyle lipgloss.Style
	opts     Options

	cols, rows int // Terminal size in cells
	mouseX     int
	mouseSeen  bool
	status     string
	quitting   bool
	err        error
}

// NewModel creates a model running a loop with the given options. The frame
// is resized to the terminal on the first WindowSizeMsg.
func NewModel(loopOpts engine.Options, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultOptions().TickRate
	}

	presenter := NewPresenter(opts.Renderer)
	term := newTerminal(loopOpts.Dims.W, presenter)

	return Model{
		loop:     engine.New(term, loopOpts),
		term:     term,
		keys:     NewKeyMapper(DefaultKeyMap()),
		help:     help.New(),
		hudStyle: presenter.renderer.NewStyle().Foreground(lipgloss.Color("245")),
		opts:     opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.applySize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		// The loop observes the request at the start of the next tick
		m.term.quit = true
		return m, nil
	}

	switch action {
	case core.ActionForward, core.ActionBackward:
		m.term.input.Set(action)
	case core.ActionTurnLeft:
		m.term.nudge(-m.opts.Nudge)
	case core.ActionTurnRight:
		m.term.nudge(m.opts.Nudge)
	case core.ActionToggleHUD:
		m.opts.ShowHUD = !m.opts.ShowHUD
		m.applySize()
	}
	return m, nil
}

// handleMouse turns horizontal mouse motion into virtual cursor motion.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if m.mouseSeen {
		m.term.nudge((msg.X - m.mouseX) * m.opts.MouseGain)
	}
	m.mouseX, m.mouseSeen = msg.X, true
	return m, nil
}

// handleTick advances the frame loop.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.loop.Tick(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if m.loop.State() == engine.Stopped {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.TickRate)
}

// applySize fits the frame to the terminal, leaving a row for the HUD.
func (m *Model) applySize() {
	if m.cols <= 0 || m.rows <= 0 {
		return
	}
	rows := m.rows
	if m.opts.ShowHUD {
		rows--
	}
	rows = core.Max(rows, 1)

	m.loop.Resize(core.Dims{W: m.cols, H: rows * 2})
	m.term.resize(m.cols)
}

// saveScreenshot writes the current frame as PNG.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		m.status = "screenshots disabled"
		return
	}
	if dir[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("raycast_%s.png", timestamp))

	if err := headless.SavePNG(path, m.loop.Frame()); err != nil {
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + filepath.Base(path)
}

// View renders the last presented frame and the HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.opts.ShowHUD {
		return m.term.view
	}
	return m.term.view + "\n" + m.hud()
}

// hud renders the single status line.
func (m Model) hud() string {
	line := m.loop.Player().String()
	if m.status != "" {
		line += "  " + m.status
	}
	line += "  " + m.help.ShortHelpView(m.keys.Keys().ShortHelp())

	style := m.hudStyle
	if m.cols > 0 {
		style = style.MaxWidth(m.cols)
	}
	return style.Render(line)
}

// Stats returns the loop's run statistics.
func (m Model) Stats() engine.Stats {
	return m.loop.Stats()
}

// Done reports whether the loop has stopped.
func (m Model) Done() bool {
	return m.quitting
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the loop stops.
func Run(loopOpts engine.Options, opts Options) (engine.Stats, error) {
	model := NewModel(loopOpts, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Motion events without a pressed button
	)

	final, err := p.Run()
	if err != nil {
		return model.Stats(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.Stats(), fm.Err()
	}
	return model.Stats(), nil
}
