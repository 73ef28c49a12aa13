package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// WallHeight returns the projected height in rows of a wall at distance for
// a screen h rows tall.
func WallHeight(h int, distance float64) int {
	return int(math.Floor(float64(h) / (distance + heightBias)))
}

// WallSpan returns the rows [top, bottom) covered by a wall slice of the
// given height, centered on the horizon and clipped to the screen.
func WallSpan(h, height int) (top, bottom int) {
	half := h / 2
	top = half - height/2
	bottom = half + height/2
	return core.Clamp(top, 0, h), core.Clamp(bottom, 0, h)
}

// Shade maps a distance to a brightness in [0, 255], darkening linearly
// until depth.
func Shade(distance, depth float64) uint8 {
	if depth <= 0 || math.IsNaN(distance) {
		return 0
	}
	v := 255 - math.Floor(distance*255/depth)
	return uint8(core.ClampF(v, 0, 255))
}

// WallColor returns the warm gray used for a wall slice of the given shade.
func WallColor(shade uint8) core.RGB {
	return core.RGB{R: shade, G: shade, B: shade / 2}
}

// SkyGradient returns one color per row for the top half rows of the screen,
// blending from top to bottom by row fraction.
func SkyGradient(half int, top, bottom core.RGB) []core.RGB {
	if half <= 0 {
		return nil
	}
	rows := make([]core.RGB, half)
	for y := range rows {
		rows[y] = top.Lerp(bottom, float64(y)/float64(half))
	}
	return rows
}

// FloorDepth estimates how far away the floor seen at row y is, for a
// screen h rows tall. Rows at or above the horizon have no floor depth.
func FloorDepth(y, h int) (float64, bool) {
	den := 2*y - h
	if den <= 0 {
		return 0, false
	}
	return float64(h) / float64(den), true
}

// FloorRamp returns the floor color for every row of a screen h rows tall.
// Rows with no defined floor depth get the ground color.
func FloorRamp(h int, p Params) []core.RGB {
	rows := make([]core.RGB, h)
	for y := range rows {
		d, ok := FloorDepth(y, h)
		if !ok {
			rows[y] = p.Ground
			continue
		}
		rows[y] = core.Gray(Shade(d, p.Depth))
	}
	return rows
}
