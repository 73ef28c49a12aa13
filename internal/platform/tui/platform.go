package tui

import (
	"context"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// terminal adapts Bubble Tea messages to the frame loop's platform contract.
// Terminals report key presses but not releases and cannot warp the mouse,
// so held keys are approximated by presses accumulated between ticks and the
// cursor is a virtual column that the loop recenters after every tick.
type terminal struct {
	width     int
	input     core.InputFrame
	cursorX   int
	quit      bool
	presenter *Presenter
	view      string
	last      *core.Frame
}

func newTerminal(width int, presenter *Presenter) *terminal {
	return &terminal{
		width:     width,
		input:     core.NewInputFrame(),
		cursorX:   width / 2,
		presenter: presenter,
	}
}

// PollQuit reports whether a quit key was pressed.
func (t *terminal) PollQuit() bool {
	return t.quit
}

// Input returns the presses since the last tick and clears them.
func (t *terminal) Input() core.InputSnapshot {
	in := t.input.Snapshot(t.cursorX)
	t.input.Clear()
	return in
}

// CenterCursor resets the virtual cursor.
func (t *terminal) CenterCursor() {
	t.cursorX = t.width / 2
}

// Present renders f to text for the next View call.
func (t *terminal) Present(f *core.Frame) error {
	t.view = t.presenter.Render(f)
	t.last = f
	return nil
}

// WaitNextTick is unused; Bubble Tea schedules ticks.
func (t *terminal) WaitNextTick(ctx context.Context) error {
	return ctx.Err()
}

// nudge moves the virtual cursor by dx pixels.
func (t *terminal) nudge(dx int) {
	t.cursorX += dx
}

// resize changes the width the cursor is centered on.
func (t *terminal) resize(width int) {
	t.width = width
	t.cursorX = width / 2
}
