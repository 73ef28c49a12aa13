// Package world holds the immutable tile grid and the player state that the
// movement controller and the renderer share.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// Tile is a single grid cell.
type Tile uint8

const (
	Empty Tile = iota
	Wall
)

// Map layout characters.
const (
	WallChar  = '#'
	EmptyChar = '.'
)

var (
	// ErrBadMap is returned when a layout is empty, ragged or uses unknown characters.
	ErrBadMap = errors.New("world: malformed map")

	// ErrOpenBorder is returned when a border cell is not a wall.
	ErrOpenBorder = errors.New("world: map border must be walls")
)

// Grid is a fixed-size rectangle of tiles indexed by (col, row).
// It is never modified after construction.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// ParseGrid builds a grid from one string per row.
// Every row must have the same length and the outer ring must be walls.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadMap)
	}

	g := &Grid{
		width:  len(rows[0]),
		height: len(rows),
		tiles:  make([]Tile, 0, len(rows)*len(rows[0])),
	}

	for r, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrBadMap, r, len(row), g.width)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case WallChar:
				g.tiles = append(g.tiles, Wall)
			case EmptyChar:
				g.tiles = append(g.tiles, Empty)
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrBadMap, row[c], c, r)
			}
		}
	}

	if err := g.checkBorder(); err != nil {
		return nil, err
	}
	return g, nil
}

// ParseLayout builds a grid from a flat row-major string of width*height cells.
func ParseLayout(layout string, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || len(layout) != width*height {
		return nil, fmt.Errorf("%w: layout has %d cells, expected %dx%d", ErrBadMap, len(layout), width, height)
	}
	rows := make([]string, height)
	for r := range rows {
		rows[r] = layout[r*width : (r+1)*width]
	}
	return ParseGrid(rows)
}

// checkBorder requires every cell on the outer ring to be a wall.
func (g *Grid) checkBorder() error {
	for c := 0; c < g.width; c++ {
		if g.At(c, 0) != Wall || g.At(c, g.height-1) != Wall {
			return fmt.Errorf("%w: open cell in column %d", ErrOpenBorder, c)
		}
	}
	for r := 0; r < g.height; r++ {
		if g.At(0, r) != Wall || g.At(g.width-1, r) != Wall {
			return fmt.Errorf("%w: open cell in row %d", ErrOpenBorder, r)
		}
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// At returns the tile at (col, row).
// Indexing outside the grid is a logic error and panics; use IsWall for
// queries that may fall outside.
func (g *Grid) At(col, row int) Tile {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("world: cell (%d, %d) outside %dx%d grid", col, row, g.width, g.height))
	}
	return g.tiles[row*g.width+col]
}

// IsWall reports whether (col, row) blocks movement and rays.
// Out-of-range cells count as walls.
func (g *Grid) IsWall(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}
	return g.tiles[row*g.width+col] == Wall
}

// SolidAt reports whether the world point (x, y) lies in a wall cell.
func (g *Grid) SolidAt(x, y float64) bool {
	return g.IsWall(CellOf(x, y))
}

// CellOf converts a world position to the cell containing it.
// Both the ray marcher and the collision check go through here so they
// always agree on which cell a point belongs to. Conversion truncates
// toward zero.
func CellOf(x, y float64) (col, row int) {
	return int(x), int(y)
}

// Rows returns the layout as one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		sb.Reset()
		for c := 0; c < g.width; c++ {
			if g.tiles[r*g.width+c] == Wall {
				sb.WriteByte(WallChar)
			} else {
				sb.WriteByte(EmptyChar)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// String returns the layout with rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
