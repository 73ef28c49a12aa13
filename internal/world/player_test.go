package world

import (
	"math"
	"strings"
	"testing"
)

func TestPlayerDir(t *testing.T) {
	dx, dy := Player{Angle: 0}.Dir()
	if dx != 0 || dy != 1 {
		t.Errorf("Dir() at 0 = (%v, %v), expected (0, 1)", dx, dy)
	}

	dx, dy = Player{Angle: math.Pi / 2}.Dir()
	if math.Abs(dx-1) > 1e-12 || math.Abs(dy) > 1e-12 {
		t.Errorf("Dir() at pi/2 = (%v, %v), expected (1, 0)", dx, dy)
	}
}

func TestPlayerArrow(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, 'v'},
		{math.Pi / 2, '>'},
		{math.Pi, '^'},
		{-math.Pi / 2, '<'},
	}
	for _, tc := range tests {
		if got := (Player{Angle: tc.angle}).Arrow(); got != tc.want {
			t.Errorf("Arrow() at %v = %q, expected %q", tc.angle, got, tc.want)
		}
	}
}

func TestPlayerString(t *testing.T) {
	s := Player{X: 8, Y: 8.1, Angle: -math.Pi / 2}.String()
	if !strings.Contains(s, "x=8.00") || !strings.Contains(s, "y=8.10") || !strings.Contains(s, "heading=270") {
		t.Errorf("String() = %q", s)
	}
}
