// Package engine drives the raycaster one tick at a time: it samples a
// platform's input, moves the player, renders a frame and hands it back to
// the platform for presentation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/movement"
	"github.com/vovakirdan/tui-raycast/internal/raycast"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// State is the loop's lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Platform is everything the loop needs from a windowing or terminal backend.
//
// Pacing belongs to the platform's own scheduler: the terminal is driven by
// Bubble Tea tick messages and the window by ebiten's TPS, so their
// WaitNextTick only reports ctx.Err(). Only Run calls WaitNextTick.
type Platform interface {
	// PollQuit drains pending events and reports whether a quit was requested.
	PollQuit() bool
	// Input returns the held keys and cursor position for this tick.
	Input() core.InputSnapshot
	// CenterCursor moves the cursor back to the horizontal screen center.
	CenterCursor()
	// Present displays a finished frame. The frame is reused next tick.
	Present(f *core.Frame) error
	// WaitNextTick blocks until the next tick is due or ctx is done.
	// Platforms that schedule ticks themselves return immediately.
	WaitNextTick(ctx context.Context) error
}

// Stats summarizes a run.
type Stats struct {
	Ticks    int
	Distance float64 // Cells walked
	Turned   float64 // Absolute radians turned
	Started  time.Time
}

// Duration returns the wall-clock time since the loop was created.
func (s Stats) Duration() time.Duration {
	if s.Started.IsZero() {
		return 0
	}
	return time.Since(s.Started)
}

// Loop owns the player and the frame buffer of one session.
type Loop struct {
	platform Platform
	opts     Options
	logger   *log.Logger

	player world.Player
	frame  *core.Frame
	state  State
	stats  Stats
}

// New creates a running loop. A nil Grid uses the default map.
func New(p Platform, opts Options) *Loop {
	if opts.Grid == nil {
		opts.Grid = world.DefaultGrid()
	}
	if !opts.Dims.Valid() {
		opts.Dims = core.DefaultConfig().Dims()
	}
	opts.Move.ScreenW = opts.Dims.W

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Loop{
		platform: p,
		opts:     opts,
		logger:   logger,
		player:   opts.Start,
		frame:    core.NewFrame(opts.Dims.W, opts.Dims.H),
		state:    Running,
		stats:    Stats{Started: time.Now()},
	}
}

// Tick advances the loop by one frame.
//
// Order: drain events, stop on quit, sample input, move, recenter the
// cursor, render, present. A stopped loop ignores further ticks.
func (l *Loop) Tick() error {
	if l.state == Stopped {
		return nil
	}

	if l.platform.PollQuit() {
		l.Stop()
		return nil
	}

	in := l.platform.Input()
	next := movement.Move(l.opts.Grid, l.player, in, l.opts.Move)
	l.platform.CenterCursor()

	l.stats.Distance += math.Hypot(next.X-l.player.X, next.Y-l.player.Y)
	l.stats.Turned += math.Abs(next.Angle - l.player.Angle)
	l.player = next

	raycast.Render(l.frame, l.opts.Dims, l.opts.Grid, l.player, l.opts.Render)

	if err := l.platform.Present(l.frame); err != nil {
		l.Stop()
		return fmt.Errorf("engine: present: %w", err)
	}

	l.stats.Ticks++
	return nil
}

// Run ticks until the platform asks to quit or ctx is done.
// Cancellation is treated like a quit request and is not an error.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("loop started", "width", l.opts.Dims.W, "height", l.opts.Dims.H)
	defer func() {
		l.logger.Debug("loop stopped", "ticks", l.stats.Ticks, "distance", l.stats.Distance)
	}()

	for {
		if ctx.Err() != nil {
			l.Stop()
			return nil
		}
		if err := l.Tick(); err != nil {
			return err
		}
		if l.state == Stopped {
			return nil
		}
		if err := l.platform.WaitNextTick(ctx); err != nil {
			l.Stop()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("engine: wait: %w", err)
		}
	}
}

// Stop moves the loop to Stopped. It is idempotent.
func (l *Loop) Stop() {
	l.state = Stopped
}

// Resize changes the frame dimensions. The cursor rest position follows the
// new width. Invalid dimensions are ignored.
func (l *Loop) Resize(d core.Dims) {
	if !d.Valid() || d == l.opts.Dims {
		return
	}
	l.opts.Dims = d
	l.opts.Move.ScreenW = d.W
	l.frame.Resize(d.W, d.H)
	l.logger.Debug("resized", "width", d.W, "height", d.H)
}

func (l *Loop) State() State         { return l.state }
func (l *Loop) Player() world.Player { return l.player }
func (l *Loop) Stats() Stats         { return l.stats }
func (l *Loop) Dims() core.Dims      { return l.opts.Dims }
func (l *Loop) Grid() *world.Grid    { return l.opts.Grid }

// Frame returns the most recently rendered frame.
func (l *Loop) Frame() *core.Frame { return l.frame }
