package tui

import (
	"math"

	"ringdial/dial"
)

// headerRows and footerRows are the fixed chrome around the ring.
const (
	headerRows = 2
	footerRows = 2
)

// ringLayout places the ring's bounding box inside the terminal.
// Character cells are roughly twice as tall as they are wide, so the
// box is kept twice as wide as it is tall and the ring renders as an
// ellipse that looks round on screen. The dial.Mapper normalizes each
// axis by its own radius, so the distortion never reaches the engine.
type ringLayout struct {
	left   int
	top    int
	width  int
	height int
}

func newRingLayout(termWidth, termHeight int) ringLayout {
	h := termHeight - headerRows - footerRows
	if h < 7 {
		h = 7
	}
	w := 2 * h
	if w > termWidth-2 {
		w = termWidth - 2
		if w < 14 {
			w = 14
		}
		h = w / 2
	}

	return ringLayout{
		left:   (termWidth - w) / 2,
		top:    headerRows,
		width:  w,
		height: h,
	}
}

// bounds returns the ring's bounding rect in terminal-cell space.
func (l ringLayout) bounds() dial.Rect {
	return dial.Rect{
		X: float64(l.left),
		Y: float64(l.top),
		W: float64(l.width - 1),
		H: float64(l.height - 1),
	}
}

// mapper returns the coordinate mapper for pointer events over this
// layout.
func (l ringLayout) mapper() dial.Mapper {
	return dial.NewMapper(l.bounds())
}

// cellAt projects a minute onto the layout at a fraction of the full
// ring radius (1.0 is the bounding box edge) and returns canvas-local
// cell coordinates.
func (l ringLayout) cellAt(m dial.Minute, scale float64) (int, int) {
	a := m.Angle()
	rx := float64(l.width-1) / 2 * scale
	ry := float64(l.height-1) / 2 * scale
	cx := float64(l.width-1) / 2
	cy := float64(l.height-1) / 2
	x := int(math.Round(cx + rx*math.Cos(a)))
	y := int(math.Round(cy + ry*math.Sin(a)))
	return x, y
}

// cellForPoint maps an engine-space point (ring center at the origin,
// ringRadius units) to canvas-local cell coordinates.
func (l ringLayout) cellForPoint(p dial.Point, ringRadius float64) (int, int) {
	cx := float64(l.width-1) / 2
	cy := float64(l.height-1) / 2
	x := int(math.Round(cx + p.X/ringRadius*cx))
	y := int(math.Round(cy + p.Y/ringRadius*cy))
	return x, y
}
