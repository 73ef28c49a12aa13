package raycast

import (
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// Canvas receives the 1-pixel-wide spans the renderer produces.
// Spans are half-open and may extend past the canvas; implementations clip.
type Canvas interface {
	HLine(x0, x1, y int, c core.RGB)
	VLine(x, y0, y1 int, c core.RGB)
}

// Column describes the wall slice drawn for one screen column.
type Column struct {
	Angle  float64
	Hit    Hit
	Height int      // Projected height before clipping
	Top    int      // First wall row (clipped)
	Bottom int      // One past the last wall row (clipped); floor starts here
	Color  core.RGB // Wall color
}

// CastColumn marches the ray for screen column x and projects it.
func CastColumn(g *world.Grid, p world.Player, x int, dims core.Dims, params Params) Column {
	angle := RayAngle(p.Angle, params.FOV, x, dims.W)
	hit := Cast(g, p.X, p.Y, angle, params.Depth, params.Step)
	height := WallHeight(dims.H, hit.Distance)
	top, bottom := WallSpan(dims.H, height)

	return Column{
		Angle:  angle,
		Hit:    hit,
		Height: height,
		Top:    top,
		Bottom: bottom,
		Color:  WallColor(Shade(hit.Distance, params.Depth)),
	}
}

// Render draws a full view of g from p onto dst.
//
// Order: sky gradient over the top half, flat ground over the bottom half,
// then per column the wall slice followed by depth-shaded floor from the
// wall's bottom edge to the last row.
func Render(dst Canvas, dims core.Dims, g *world.Grid, p world.Player, params Params) {
	half := dims.HalfH()

	for y, c := range SkyGradient(half, params.SkyTop, params.SkyBottom) {
		dst.HLine(0, dims.W, y, c)
	}
	for y := half; y < dims.H; y++ {
		dst.HLine(0, dims.W, y, params.Ground)
	}

	floor := FloorRamp(dims.H, params)
	for x := 0; x < dims.W; x++ {
		col := CastColumn(g, p, x, dims, params)
		dst.VLine(x, col.Top, col.Bottom, col.Color)
		for y := col.Bottom; y < dims.H; y++ {
			dst.VLine(x, y, y+1, floor[y])
		}
	}
}

// RenderFrame renders into a new frame of the given size.
func RenderFrame(g *world.Grid, p world.Player, dims core.Dims, params Params) *core.Frame {
	f := core.NewFrame(dims.W, dims.H)
	Render(f, dims, g, p, params)
	return f
}
