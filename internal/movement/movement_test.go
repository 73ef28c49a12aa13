package movement

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

const screenW = 800

func params() Params {
	return DefaultParams(screenW)
}

func TestForwardFromStart(t *testing.T) {
	g := world.DefaultGrid()
	in := core.Idle(screenW)
	in.Forward = true

	p := Move(g, world.DefaultStart, in, params())

	if p.X != 8.0 {
		t.Errorf("X = %v, expected 8.0", p.X)
	}
	if p.Y != 8.0+DefaultSpeed {
		t.Errorf("Y = %v, expected %v", p.Y, 8.0+DefaultSpeed)
	}
	if p.Angle != 0 {
		t.Errorf("forward should not turn, angle = %v", p.Angle)
	}
}

func TestBackward(t *testing.T) {
	g := world.DefaultGrid()
	in := core.Idle(screenW)
	in.Backward = true

	tests := []struct {
		name  string
		start world.Player
		wantY float64
	}{
		// Cell (5, 5) behind the player is open
		{"open", world.Player{X: 5.5, Y: 5.5}, 5.4},
		// From the start, row 7 column 8 is a wall
		{"blocked", world.DefaultStart, 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Move(g, tt.start, in, params())
			if p.X != tt.start.X || math.Abs(p.Y-tt.wantY) > 1e-12 {
				t.Errorf("position = (%v, %v), expected (%v, %v)", p.X, p.Y, tt.start.X, tt.wantY)
			}
			if p.Angle != tt.start.Angle {
				t.Errorf("backward should not turn, angle = %v", p.Angle)
			}
		})
	}
}

func TestForwardAndBackwardCancel(t *testing.T) {
	g := world.DefaultGrid()
	in := core.Idle(screenW)
	in.Forward = true
	in.Backward = true

	p := Move(g, world.DefaultStart, in, params())
	if math.Abs(p.X-8) > 1e-12 || math.Abs(p.Y-8) > 1e-12 {
		t.Errorf("position = (%v, %v), expected back at (8, 8)", p.X, p.Y)
	}
}

func TestWallBlocksForward(t *testing.T) {
	g := world.DefaultGrid()

	// Row 1 facing north (decreasing rows) into the border wall.
	start := world.Player{X: 5.5, Y: 1.05, Angle: math.Pi}
	in := core.Idle(screenW)
	in.Forward = true

	p := Move(g, start, in, params())
	if p != start {
		t.Errorf("step into border should be rejected, got %+v", p)
	}

	// Repeated presses never change the position once the destination is a wall.
	for i := 0; i < 50; i++ {
		p = Move(g, p, in, params())
	}
	if p.X != start.X || p.Y != start.Y {
		t.Errorf("position drifted to (%v, %v)", p.X, p.Y)
	}
}

func TestWalkUntilWall(t *testing.T) {
	g := world.DefaultGrid()

	// Column 8 from row 8 heading south: row 9 is open, row 10 is a wall.
	p := world.DefaultStart
	in := core.Idle(screenW)
	in.Forward = true

	var prev world.Player
	for i := 0; i < 200; i++ {
		prev = p
		p = Move(g, p, in, params())
	}
	if p != prev {
		t.Fatal("player should have come to rest against the wall")
	}
	col, row := p.Cell()
	if g.IsWall(col, row) {
		t.Errorf("player ended inside a wall cell (%d, %d)", col, row)
	}
	if row != 9 {
		t.Errorf("player stopped in row %d, expected 9", row)
	}
}

func TestTurnOnlyChangesHeading(t *testing.T) {
	g := world.DefaultGrid()
	in := core.InputSnapshot{CursorX: screenW/2 + 40}

	p := Move(g, world.DefaultStart, in, params())
	if p.X != 8.0 || p.Y != 8.0 {
		t.Errorf("turning moved the player to (%v, %v)", p.X, p.Y)
	}
	want := 40 * DefaultSensitivity
	if math.Abs(p.Angle-want) > 1e-12 {
		t.Errorf("Angle = %v, expected %v", p.Angle, want)
	}

	// Left of center turns the other way
	in.CursorX = screenW/2 - 40
	p = Move(g, world.DefaultStart, in, params())
	if math.Abs(p.Angle+want) > 1e-12 {
		t.Errorf("Angle = %v, expected %v", p.Angle, -want)
	}
}

func TestIdleIsIdentity(t *testing.T) {
	g := world.DefaultGrid()
	starts := []world.Player{
		world.DefaultStart,
		{X: 1.5, Y: 1.5, Angle: 2.3},
		{X: 14.2, Y: 3.7, Angle: -1},
	}

	for _, s := range starts {
		if got := Move(g, s, core.Idle(screenW), params()); got != s {
			t.Errorf("idle input changed %+v to %+v", s, got)
		}
	}
}

func TestOddScreenWidthCenter(t *testing.T) {
	g := world.DefaultGrid()
	p := Move(g, world.DefaultStart, core.InputSnapshot{CursorX: 400}, DefaultParams(801))
	if p.Angle != 0 {
		t.Errorf("cursor at 801/2 should not turn, angle = %v", p.Angle)
	}
}
