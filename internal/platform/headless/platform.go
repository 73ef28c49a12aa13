// Package headless is a scripted platform with no display. Each tick consumes
// one input snapshot from the script; when the script runs out the platform
// asks to quit. The last presented frame is kept for inspection or export.
package headless

import (
	"context"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// Platform replays a fixed input script.
type Platform struct {
	width  int
	script []core.InputSnapshot
	next   int
	quit   bool

	last      *core.Frame
	presented int
	centered  int
}

// New creates a platform for a screen w pixels wide that replays script.
func New(w int, script []core.InputSnapshot) *Platform {
	return &Platform{width: w, script: script}
}

// PollQuit reports true once the script is exhausted or Quit was called.
func (p *Platform) PollQuit() bool {
	return p.quit || p.next >= len(p.script)
}

// Input returns the next scripted snapshot, or an idle one past the end.
func (p *Platform) Input() core.InputSnapshot {
	if p.next >= len(p.script) {
		return core.Idle(p.width)
	}
	in := p.script[p.next]
	p.next++
	return in
}

// CenterCursor only counts calls; scripted cursors are absolute.
func (p *Platform) CenterCursor() {
	p.centered++
}

// Present keeps a copy of f.
func (p *Platform) Present(f *core.Frame) error {
	if p.last == nil {
		p.last = core.NewFrame(f.Width(), f.Height())
	}
	p.last.CopyFrom(f)
	p.presented++
	return nil
}

// WaitNextTick does not sleep.
func (p *Platform) WaitNextTick(ctx context.Context) error {
	return ctx.Err()
}

// Quit makes the next PollQuit report true.
func (p *Platform) Quit() {
	p.quit = true
}

// Last returns a copy of the last presented frame, or nil.
func (p *Platform) Last() *core.Frame { return p.last }

// Presented returns how many frames were presented.
func (p *Platform) Presented() int { return p.presented }

// Centered returns how many times the cursor was recentered.
func (p *Platform) Centered() int { return p.centered }

// Remaining returns how many scripted inputs are left.
func (p *Platform) Remaining() int { return len(p.script) - p.next }
