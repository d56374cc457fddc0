package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas is a fixed-size grid of styled cells that renders to one
// string per frame. Plotting outside the grid is silently dropped, so
// callers never need their own bounds checks.
type Canvas struct {
	width  int
	height int
	cells  []string
}

// NewCanvas creates a blank canvas of the given cell dimensions.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([]string, width*height)
	for i := range cells {
		cells[i] = " "
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Set plots a single styled rune. Out-of-bounds positions are ignored.
func (c *Canvas) Set(x, y int, ch rune, style lipgloss.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = style.Render(string(ch))
}

// SetString plots a horizontal styled label starting at (x, y),
// clipping at the canvas edge.
func (c *Canvas) SetString(x, y int, s string, style lipgloss.Style) {
	for i, ch := range s {
		c.Set(x+i, y, ch, style)
	}
}

// String assembles the canvas into newline-joined rows.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			b.WriteString(c.cells[y*c.width+x])
		}
	}
	return b.String()
}
