package dial

// Moved tags which endpoint a candidate interval update came from. The
// clamp needs it to know which endpoint to pull back when the duration
// leaves the configured range.
type Moved int

const (
	MovedNone Moved = iota // whole-interval translation, duration locked
	MovedStart
	MovedEnd
)

// Clamp restores the duration invariant on a candidate (start, end)
// pair. If the clockwise span falls below MinDuration or above
// MaxDuration, the endpoint that was just moved is pulled back to the
// exact limit while the anchored endpoint stays where it is. In-range
// pairs pass through unchanged, as do translations (MovedNone), whose
// duration is locked by construction.
func Clamp(start, end Minute, moved Moved, opts Options) (Minute, Minute) {
	if moved == MovedNone {
		return start, end
	}

	d := Span(start, end)
	if d >= opts.MinDuration && d <= opts.MaxDuration {
		return start, end
	}

	limit := opts.clampDuration(d)
	switch moved {
	case MovedStart:
		start = end.Add(-limit)
	case MovedEnd:
		end = start.Add(limit)
	}
	return start, end
}
