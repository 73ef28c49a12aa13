package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycast/internal/world"
)

// Hit is the outcome of marching a single ray.
type Hit struct {
	Distance float64 // Distance marched; exactly the max depth when nothing was hit
	Hit      bool    // Whether the ray stopped in a wall cell
	X, Y     float64 // Last sampled point
}

// RayAngle returns the angle of the ray for screen column x of w.
// Column 0 looks fov/2 to the left of the heading.
func RayAngle(heading, fov float64, x, w int) float64 {
	return heading - fov/2 + (float64(x)/float64(w))*fov
}

// Cast marches from (ox, oy) along angle in increments of step until it
// samples a wall cell or covers depth. The distance is advanced before each
// sample, so the origin cell itself is never tested.
func Cast(g *world.Grid, ox, oy, angle, depth, step float64) Hit {
	if step <= 0 {
		step = DefaultStep
	}
	dx, dy := math.Sin(angle), math.Cos(angle)

	var h Hit
	for h.Distance < depth {
		h.Distance += step
		h.X = ox + dx*h.Distance
		h.Y = oy + dy*h.Distance
		if g.SolidAt(h.X, h.Y) {
			h.Hit = true
			return h
		}
	}

	h.Distance = depth
	return h
}
