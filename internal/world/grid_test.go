package world

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()

	if g.Width() != 16 || g.Height() != 16 {
		t.Fatalf("dimensions = %dx%d, expected 16x16", g.Width(), g.Height())
	}

	// Layout round-trips
	if strings.Join(g.Rows(), "") != DefaultLayout {
		t.Error("Rows() should reproduce DefaultLayout")
	}

	// Spot checks against the layout
	tests := []struct {
		col, row int
		wall     bool
	}{
		{0, 0, true},
		{8, 8, false},
		{7, 8, true}, // "#......#......." row 8
		{7, 2, true}, // "#......##......#"
		{8, 2, true},
		{9, 2, false},
		{3, 3, true}, // "#..####........#"
		{8, 9, false},
		{15, 15, true},
	}
	for _, tc := range tests {
		if got := g.IsWall(tc.col, tc.row); got != tc.wall {
			t.Errorf("IsWall(%d, %d) = %v, expected %v", tc.col, tc.row, got, tc.wall)
		}
	}
}

func TestIsWallFailsClosed(t *testing.T) {
	g := DefaultGrid()

	outside := [][2]int{{-1, 5}, {5, -1}, {16, 5}, {5, 16}, {-100, -100}, {1000, 3}}
	for _, c := range outside {
		if !g.IsWall(c[0], c[1]) {
			t.Errorf("IsWall(%d, %d) should be true outside the grid", c[0], c[1])
		}
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	g := DefaultGrid()

	defer func() {
		if recover() == nil {
			t.Error("At outside the grid should panic")
		}
	}()
	g.At(16, 0)
}

func TestBorderIsWall(t *testing.T) {
	g := DefaultGrid()
	for c := 0; c < g.Width(); c++ {
		if g.At(c, 0) != Wall || g.At(c, g.Height()-1) != Wall {
			t.Errorf("border column %d is open", c)
		}
	}
	for r := 0; r < g.Height(); r++ {
		if g.At(0, r) != Wall || g.At(g.Width()-1, r) != Wall {
			t.Errorf("border row %d is open", r)
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, ErrBadMap},
		{"ragged", []string{"###", "#.", "###"}, ErrBadMap},
		{"unknown char", []string{"###", "#x#", "###"}, ErrBadMap},
		{"open top", []string{"#.#", "#.#", "###"}, ErrOpenBorder},
		{"open side", []string{"###", "..#", "###"}, ErrOpenBorder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGrid(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseGrid() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestParseLayoutSizeMismatch(t *testing.T) {
	if _, err := ParseLayout("#########", 3, 4); !errors.Is(err, ErrBadMap) {
		t.Errorf("expected ErrBadMap, got %v", err)
	}
	g, err := ParseLayout("#########", 3, 3)
	if err != nil {
		t.Fatalf("ParseLayout() failed: %v", err)
	}
	if !g.IsWall(1, 1) {
		t.Error("solid 3x3 should be all walls")
	}
}

func TestCellOfTruncates(t *testing.T) {
	tests := []struct {
		x, y     float64
		col, row int
	}{
		{8.0, 8.0, 8, 8},
		{8.99, 8.1, 8, 8},
		{1.0, 0.999, 1, 0},
		{0.5, 15.5, 0, 15},
	}
	for _, tc := range tests {
		col, row := CellOf(tc.x, tc.y)
		if col != tc.col || row != tc.row {
			t.Errorf("CellOf(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
		}
	}
}

func TestSolidAt(t *testing.T) {
	g := DefaultGrid()
	if g.SolidAt(8.5, 8.5) {
		t.Error("(8.5, 8.5) is open floor")
	}
	if !g.SolidAt(7.5, 8.5) {
		t.Error("(7.5, 8.5) is inside a wall")
	}
	if !g.SolidAt(20, 3) {
		t.Error("points outside the grid are solid")
	}
}

func TestOverview(t *testing.T) {
	g := DefaultGrid()
	out := Overview(g, DefaultStart)
	rows := strings.Split(out, "\n")

	if len(rows) != 16 {
		t.Fatalf("Overview has %d rows, expected 16", len(rows))
	}
	// Heading 0 faces increasing rows
	if rows[8][8] != 'v' {
		t.Errorf("player marker = %q, expected 'v'", rows[8][8])
	}
}
