// Package window runs the raycaster in a desktop window with ebiten.
// Keys are sampled as held state once per tick, and the mouse is captured so
// horizontal motion turns the view without the cursor leaving the window.
package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/engine"
)

// Options tunes the window platform.
type Options struct {
	Title         string
	TickRate      int  // Updates per second
	Scale         int  // Window pixels per frame pixel
	CaptureCursor bool // Hide and lock the cursor to the window
}

// DefaultOptions returns the classic demo window.
func DefaultOptions() Options {
	return Options{
		Title:         "Raycaster",
		TickRate:      30,
		Scale:         1,
		CaptureCursor: true,
	}
}

// Window adapts ebiten's game loop to the frame loop's platform contract.
//
// A captured cursor reports unbounded positions, so the window tracks an
// anchor: Input reports the motion since the anchor as an offset from the
// screen center, and CenterCursor moves the anchor to the latest position.
type Window struct {
	input InputManager
	loop  *engine.Loop
	dims  core.Dims
	frame *core.Frame

	anchorX int
	cursorX int
	primed  bool
}

// New creates a window running a loop with the given options.
func New(loopOpts engine.Options, in InputManager) *Window {
	if in == nil {
		in = EbitenInputManager{}
	}
	w := &Window{input: in}
	w.loop = engine.New(w, loopOpts)
	w.dims = w.loop.Dims()
	return w
}

// Loop returns the frame loop the window drives.
func (w *Window) Loop() *engine.Loop {
	return w.loop
}

// PollQuit reports a window close request or a quit key.
func (w *Window) PollQuit() bool {
	return w.input.IsClosing() || anyPressed(w.input, quitKeys)
}

// Input samples held keys and the cursor motion since the last recenter.
func (w *Window) Input() core.InputSnapshot {
	x, _ := w.input.CursorPosition()
	if !w.primed {
		// The first sample only establishes the anchor
		w.anchorX, w.primed = x, true
	}
	w.cursorX = x

	return core.InputSnapshot{
		Forward:  anyPressed(w.input, forwardKeys),
		Backward: anyPressed(w.input, backwardKeys),
		CursorX:  w.dims.HalfW() + (x - w.anchorX),
	}
}

// CenterCursor latches the current position as the new rest point.
func (w *Window) CenterCursor() {
	w.anchorX = w.cursorX
}

// Present keeps f for the next Draw.
func (w *Window) Present(f *core.Frame) error {
	w.frame = f
	return nil
}

// WaitNextTick is unused; ebiten schedules updates.
func (w *Window) WaitNextTick(ctx context.Context) error {
	return ctx.Err()
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if err := w.loop.Tick(); err != nil {
		return err
	}
	if w.loop.State() == engine.Stopped {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		return
	}
	b := screen.Bounds()
	if b.Dx() != w.frame.Width() || b.Dy() != w.frame.Height() {
		return
	}
	screen.WritePixels(w.frame.Pix())
}

// Layout implements ebiten.Game. The frame size is fixed.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.dims.W, w.dims.H
}

// Run opens the window and blocks until the loop stops.
func Run(loopOpts engine.Options, opts Options) (engine.Stats, error) {
	w := New(loopOpts, EbitenInputManager{})

	scale := core.Max(opts.Scale, 1)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w.dims.W*scale, w.dims.H*scale)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowClosingHandled(true)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	if opts.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	if err := ebiten.RunGame(w); err != nil {
		return w.loop.Stats(), fmt.Errorf("window: %w", err)
	}
	return w.loop.Stats(), nil
}
