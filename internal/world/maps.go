package world

import "strings"

// DefaultLayout is the built-in 16x16 map, row-major.
const DefaultLayout = "" +
	"################" +
	"#..............#" +
	"#......##......#" +
	"#..####........#" +
	"#..#...........#" +
	"#..#....##.....#" +
	"#..............#" +
	"#......###.....#" +
	"#......#.......#" +
	"#..............#" +
	"#......##......#" +
	"#..............#" +
	"#..............#" +
	"#......#.......#" +
	"#..............#" +
	"################"

// Default map dimensions.
const (
	DefaultWidth  = 16
	DefaultHeight = 16
)

// DefaultStart is where the player spawns on the default map.
var DefaultStart = Player{X: 8.0, Y: 8.0, Angle: 0}

// DefaultGrid returns the built-in map.
func DefaultGrid() *Grid {
	g, err := ParseLayout(DefaultLayout, DefaultWidth, DefaultHeight)
	if err != nil {
		panic(err)
	}
	return g
}

// Overview draws the grid as ASCII with the player marked by a heading arrow.
func Overview(g *Grid, p Player) string {
	rows := g.Rows()
	col, row := p.Cell()
	if g.InBounds(col, row) {
		line := []rune(rows[row])
		line[col] = p.Arrow()
		rows[row] = string(line)
	}

	return strings.Join(rows, "\n")
}
