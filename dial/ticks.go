package dial

// Tick is a single interior mark on the ring: a radial segment at the
// angle of its minute. The full tick list is derived from (start, end)
// and is regenerated whenever the interval changes.
type Tick struct {
	Minute Minute
	Inner  Point
	Outer  Point
}

// Ticks generates the evenly spaced marks inside the interval, keeping
// TickMargin minutes clear of each handle. Intervals too short to fit
// any marks between the margins yield an empty list.
//
// The loop is additionally capped at one full turn of steps so a
// malformed configuration can never spin forever; with the duration
// invariant intact the cumulative-offset bound always fires first.
func Ticks(start, end Minute, opts Options) []Tick {
	if opts.TickSpacing <= 0 {
		return nil
	}
	d := Span(start, end)
	if d <= 2*opts.TickMargin {
		return nil
	}

	limit := Span(start, end.Add(-opts.TickMargin))
	maxSteps := (MinutesPerDay + opts.TickSpacing - 1) / opts.TickSpacing

	inner := opts.ArcRadius - opts.TickLength/2
	outer := opts.ArcRadius + opts.TickLength/2

	var ticks []Tick
	m := start.Add(opts.TickMargin)
	for offset, steps := opts.TickMargin, 0; offset <= limit && steps < maxSteps; steps++ {
		ticks = append(ticks, Tick{
			Minute: m,
			Inner:  PointAt(m, inner),
			Outer:  PointAt(m, outer),
		})
		m = m.Add(opts.TickSpacing)
		offset += opts.TickSpacing
	}
	return ticks
}
