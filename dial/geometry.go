package dial

import "math"

// Point is a position in the ring's coordinate space, with the ring
// center at the origin and y growing downward (screen convention).
type Point struct {
	X float64
	Y float64
}

// PointAt projects a minute onto a circle of the given radius.
func PointAt(m Minute, radius float64) Point {
	a := m.Angle()
	return Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
}

// Snapshot is the derived geometry for an interval: everything a
// renderer needs without doing trigonometry itself. It is recomputed
// from (start, end) and must not be mutated by consumers.
type Snapshot struct {
	Start    Minute
	End      Minute
	StartPos Point
	EndPos   Point
	LargeArc bool // clockwise span from start to end exceeds half a turn
	Duration int  // minutes
}

// Geometry computes the snapshot for an interval. Pure; safe to call
// on every read.
func Geometry(start, end Minute, opts Options) Snapshot {
	return Snapshot{
		Start:    start,
		End:      end,
		StartPos: PointAt(start, opts.ArcRadius),
		EndPos:   PointAt(end, opts.ArcRadius),
		LargeArc: Span(start, end) > MinutesPerDay/2,
		Duration: Span(start, end),
	}
}
