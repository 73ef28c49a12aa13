package raycast

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-raycast/internal/world"
)

// openGrid returns a size x size room with only its border walled.
func openGrid(t *testing.T, size int) *world.Grid {
	t.Helper()
	rows := make([]string, size)
	for r := range rows {
		if r == 0 || r == size-1 {
			rows[r] = strings.Repeat("#", size)
			continue
		}
		rows[r] = "#" + strings.Repeat(".", size-2) + "#"
	}
	g, err := world.ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

func TestRayAngleWithinFOV(t *testing.T) {
	headings := []float64{0, 1.3, -2.7, 10 * math.Pi}
	widths := []int{1, 7, 80, 800}

	for _, th := range headings {
		for _, w := range widths {
			for x := 0; x < w; x++ {
				a := RayAngle(th, DefaultFOV, x, w)
				if a < th-DefaultFOV/2-1e-12 || a > th+DefaultFOV/2+1e-12 {
					t.Fatalf("RayAngle(%v, fov, %d, %d) = %v outside [%v, %v]",
						th, x, w, a, th-DefaultFOV/2, th+DefaultFOV/2)
				}
			}
		}
	}

	if a := RayAngle(0, DefaultFOV, 0, 800); a != -DefaultFOV/2 {
		t.Errorf("column 0 angle = %v, expected %v", a, -DefaultFOV/2)
	}
	if a := RayAngle(0, DefaultFOV, 400, 800); math.Abs(a) > 1e-15 {
		t.Errorf("center column angle = %v, expected 0", a)
	}
}

func TestCastHitsAreWalls(t *testing.T) {
	g := world.DefaultGrid()
	p := world.DefaultStart

	for i := 0; i < 360; i++ {
		angle := float64(i) * math.Pi / 180
		h := Cast(g, p.X, p.Y, angle, DefaultDepth, DefaultStep)
		if !h.Hit {
			// Every direction reaches a wall well inside 16 cells on this map
			t.Fatalf("angle %d degrees: no hit", i)
		}
		if !g.IsWall(world.CellOf(h.X, h.Y)) {
			t.Errorf("angle %d degrees: hit point (%v, %v) is not in a wall", i, h.X, h.Y)
		}
		if h.Distance <= 0 || h.Distance > DefaultDepth+DefaultStep {
			t.Errorf("angle %d degrees: distance %v out of range", i, h.Distance)
		}
	}
}

func TestCastKnownDistance(t *testing.T) {
	g := world.DefaultGrid()

	// From (8, 8) heading south: rows 9 open, row 10 walled at column 8.
	h := Cast(g, 8, 8, 0, DefaultDepth, DefaultStep)
	if !h.Hit {
		t.Fatal("expected a hit")
	}
	if math.Abs(h.Distance-2.0) > 1e-9 {
		t.Errorf("Distance = %v, expected 2.0", h.Distance)
	}
}

func TestCastMissIsExactlyDepth(t *testing.T) {
	g := openGrid(t, 40)

	for i := 0; i < 16; i++ {
		angle := float64(i) * math.Pi / 8
		h := Cast(g, 20, 20, angle, DefaultDepth, DefaultStep)
		if h.Hit {
			t.Fatalf("angle %v: unexpected hit at %v", angle, h.Distance)
		}
		if h.Distance != DefaultDepth {
			t.Errorf("angle %v: Distance = %v, expected exactly %v", angle, h.Distance, DefaultDepth)
		}
	}
}

func TestCastNonPositiveStepFallsBack(t *testing.T) {
	g := world.DefaultGrid()
	h := Cast(g, 8, 8, 0, DefaultDepth, 0)
	if !h.Hit {
		t.Error("zero step should fall back to the default step and still hit")
	}
}
