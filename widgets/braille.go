package widgets

import (
	"github.com/odvcencio/whisker/backend"
	"github.com/odvcencio/whisker/runtime"
)

const brailleBase = 0x2800

// Dot bit offsets within a braille cell, indexed by [x%2][y%4].
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleGrid accumulates dots at double column and quadruple row
// resolution, then renders them as braille characters. Charts and
// canvases plot into one grid per frame.
type brailleGrid struct {
	width  int // cells
	height int // cells
	cells  []rune
	colors []backend.Color
}

func newBrailleGrid(width, height int) *brailleGrid {
	return &brailleGrid{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
		colors: make([]backend.Color, width*height),
	}
}

// DotWidth returns the grid width in dots.
func (g *brailleGrid) DotWidth() int { return g.width * 2 }

// DotHeight returns the grid height in dots.
func (g *brailleGrid) DotHeight() int { return g.height * 4 }

// Plot sets the dot at (x, y) in dot coordinates.
func (g *brailleGrid) Plot(x, y int, color backend.Color) {
	if x < 0 || y < 0 || x >= g.DotWidth() || y >= g.DotHeight() {
		return
	}
	idx := (y/4)*g.width + x/2
	g.cells[idx] |= brailleDots[x%2][y%4]
	g.colors[idx] = color
}

// Line plots a straight dot line between two points.
func (g *brailleGrid) Line(x0, y0, x1, y1 int, color backend.Color) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.Plot(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Flush draws the accumulated cells into the area.
func (g *brailleGrid) Flush(sub *runtime.SubBuffer, bg backend.Color) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := y*g.width + x
			if g.cells[idx] == 0 {
				continue
			}
			style := backend.DefaultStyle().Foreground(g.colors[idx]).Background(bg)
			sub.Set(x, y, brailleBase+g.cells[idx], style)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
