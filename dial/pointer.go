package dial

import "math"

// Rect is the ring's bounding rectangle in some external coordinate
// space (pixels, terminal cells). It is the only place that space is
// known; everything past the Mapper works in angles and minutes.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Mapper converts pointer positions in the rect's coordinate space
// into ring angles and clock minutes. A non-square rect is treated as
// an elliptical projection of the ring, so cell- or pixel-aspect
// distortion cancels out of the recovered angle.
type Mapper struct {
	cx float64
	cy float64
	rx float64
	ry float64
}

// NewMapper builds a Mapper for a ring drawn inside bounds.
func NewMapper(bounds Rect) Mapper {
	return Mapper{
		cx: bounds.X + bounds.W/2,
		cy: bounds.Y + bounds.H/2,
		rx: bounds.W / 2,
		ry: bounds.H / 2,
	}
}

// Angle returns the raw pointer angle (atan2 frame, zero at the
// positive x-axis) for a position in the rect's coordinate space.
func (m Mapper) Angle(px, py float64) float64 {
	dx := px - m.cx
	dy := py - m.cy
	if m.rx > 0 {
		dx /= m.rx
	}
	if m.ry > 0 {
		dy /= m.ry
	}
	return math.Atan2(dy, dx)
}

// Minute returns the clock minute under a pointer position.
func (m Mapper) Minute(px, py float64) Minute {
	return MinuteAtAngle(m.Angle(px, py))
}

// Radius returns the pointer's distance from the ring center in ring
// units, where 1.0 is the rect's edge. Renderers use it for hit bands.
func (m Mapper) Radius(px, py float64) float64 {
	dx := px - m.cx
	dy := py - m.cy
	if m.rx > 0 {
		dx /= m.rx
	}
	if m.ry > 0 {
		dy /= m.ry
	}
	return math.Hypot(dx, dy)
}
