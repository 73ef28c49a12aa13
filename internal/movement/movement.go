// Package movement implements the player controller: walking along the
// heading with destination-cell collision, and turning from the cursor offset.
package movement

import (
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// Default tuning, matching the classic demo at 30 ticks per second.
const (
	DefaultSpeed       = 0.1         // Cells per tick
	DefaultSensitivity = 0.05 * 0.01 // Radians per pixel of cursor offset
)

// Params tunes the controller.
type Params struct {
	Speed       float64 // Cells moved per tick while a key is held
	Sensitivity float64 // Radians turned per pixel of cursor offset from center
	ScreenW     int     // Screen width; its half is the cursor rest position
}

// DefaultParams returns the classic tuning for a screen w pixels wide.
func DefaultParams(w int) Params {
	return Params{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		ScreenW:     w,
	}
}

// Move returns the player state after one tick of input.
//
// Forward and backward each propose a step of Speed along the heading and
// are resolved independently, forward first. A step is taken only when the
// destination cell is open; otherwise the position is left untouched for
// that step. Only the destination cell is checked, so a Speed close to a
// cell width can cut through wall corners.
//
// Turning adds the cursor's offset from the screen center times Sensitivity.
func Move(g *world.Grid, p world.Player, in core.InputSnapshot, params Params) world.Player {
	if in.Forward {
		p = step(g, p, params.Speed)
	}
	if in.Backward {
		p = step(g, p, -params.Speed)
	}

	if delta := in.CursorDelta(params.ScreenW); delta != 0 {
		p.Angle += float64(delta) * params.Sensitivity
	}
	return p
}

// step moves p by dist along its heading unless the destination is a wall.
func step(g *world.Grid, p world.Player, dist float64) world.Player {
	dx, dy := p.Dir()
	nx := p.X + dx*dist
	ny := p.Y + dy*dist
	if g.SolidAt(nx, ny) {
		return p
	}
	p.X, p.Y = nx, ny
	return p
}
