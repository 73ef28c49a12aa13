package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycast/internal/core"
)

// halfBlock draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const halfBlock = "▀"

const maxCachedStyles = 4096

// Presenter converts frames into styled terminal text, two pixel rows per
// terminal row.
type Presenter struct {
	renderer *lipgloss.Renderer
	styles   map[cellColors]lipgloss.Style
}

type cellColors struct {
	top, bottom core.RGB
}

// NewPresenter creates a presenter for r. A nil renderer uses the default
// one bound to stdout; SSH sessions pass their own.
func NewPresenter(r *lipgloss.Renderer) *Presenter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Presenter{
		renderer: r,
		styles:   make(map[cellColors]lipgloss.Style),
	}
}

// style returns the cached style for a cell color pair.
func (p *Presenter) style(c cellColors) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle().
		Foreground(lipgloss.Color(c.top.Hex())).
		Background(lipgloss.Color(c.bottom.Hex()))
	if len(p.styles) >= maxCachedStyles {
		clear(p.styles)
	}
	p.styles[c] = s
	return s
}

// Render converts f to text. Groups adjacent cells with the same colors to
// minimize ANSI escape sequences. An odd last row is paired with black.
func (p *Presenter) Render(f *core.Frame) string {
	w, h := f.Width(), f.Height()
	rows := (h + 1) / 2

	var sb strings.Builder
	sb.Grow(w*rows*4 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		y := row * 2

		x := 0
		for x < w {
			start := p.cell(f, x, y)
			n := 0
			for x < w && p.cell(f, x, y) == start {
				n++
				x++
			}
			sb.WriteString(p.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

func (p *Presenter) cell(f *core.Frame, x, y int) cellColors {
	// Get returns black past the last row
	return cellColors{top: f.Get(x, y), bottom: f.Get(x, y+1)}
}
