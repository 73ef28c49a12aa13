package world

import (
	"fmt"
	"math"
)

// Player is the viewer's position in cell units and heading in radians,
// measured clockwise from north. Heading 0 looks toward increasing rows.
type Player struct {
	X     float64
	Y     float64
	Angle float64
}

// Dir returns the unit vector the player faces.
func (p Player) Dir() (dx, dy float64) {
	return math.Sin(p.Angle), math.Cos(p.Angle)
}

// Cell returns the grid cell the player stands in.
func (p Player) Cell() (col, row int) {
	return CellOf(p.X, p.Y)
}

// Arrow returns a map glyph pointing along the player's heading.
func (p Player) Arrow() rune {
	dx, dy := p.Dir()
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return '>'
		}
		return '<'
	}
	if dy > 0 {
		return 'v'
	}
	return '^'
}

// String formats the state for HUDs and logs.
func (p Player) String() string {
	deg := math.Mod(p.Angle*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return fmt.Sprintf("x=%.2f y=%.2f heading=%.0f°", p.X, p.Y, deg)
}
