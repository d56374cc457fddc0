package dial

// Options carries the fixed configuration of the ring: geometry radii,
// duration limits, and tick layout. Zero values are not usable; start
// from DefaultOptions and override fields as needed.
type Options struct {
	RingRadius  float64 // radius of the outer ring outline
	ArcRadius   float64 // radius the selection arc and handles sit on
	MinDuration int     // minimum interval length in minutes
	MaxDuration int     // maximum interval length in minutes
	TickSpacing int     // minutes between interior tick marks
	TickMargin  int     // minutes kept tick-free next to each handle
	TickLength  float64 // radial length of a tick mark
}

// DefaultOptions returns the reference configuration: a 60..1200 minute
// interval with 15-minute ticks kept 30 minutes clear of the handles.
func DefaultOptions() Options {
	return Options{
		RingRadius:  120,
		ArcRadius:   100,
		MinDuration: 60,
		MaxDuration: 1200,
		TickSpacing: 15,
		TickMargin:  30,
		TickLength:  8,
	}
}

// clampDuration forces d into the configured duration range.
func (o Options) clampDuration(d int) int {
	if d < o.MinDuration {
		return o.MinDuration
	}
	if d > o.MaxDuration {
		return o.MaxDuration
	}
	return d
}
