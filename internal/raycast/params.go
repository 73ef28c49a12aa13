// Package raycast renders a first-person view of a tile grid by marching one
// ray per screen column and projecting the distance to a wall slice.
package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// Defaults for the classic demo.
const (
	DefaultFOV   = math.Pi / 3
	DefaultDepth = 16.0
	DefaultStep  = 0.1

	// heightBias keeps the projected height finite when a wall is touched.
	heightBias = 0.1
)

// Default palette.
var (
	DefaultSkyTop    = core.RGB{R: 135, G: 206, B: 235}
	DefaultSkyBottom = core.RGB{R: 110, G: 150, B: 200}
	DefaultGround    = core.RGB{R: 50, G: 50, B: 50}
)

// Params tunes the renderer.
type Params struct {
	FOV       float64  // Horizontal field of view in radians
	Depth     float64  // Maximum ray length in cells
	Step      float64  // Ray march increment in cells
	SkyTop    core.RGB // Sky color at the top row
	SkyBottom core.RGB // Sky color just above the horizon
	Ground    core.RGB // Flat ground color below the horizon
}

// DefaultParams returns the classic renderer settings.
func DefaultParams() Params {
	return Params{
		FOV:       DefaultFOV,
		Depth:     DefaultDepth,
		Step:      DefaultStep,
		SkyTop:    DefaultSkyTop,
		SkyBottom: DefaultSkyBottom,
		Ground:    DefaultGround,
	}
}
