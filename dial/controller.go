package dial

import (
	"math"

	"github.com/google/uuid"
)

// Target identifies which draggable element a pointer-down landed on.
// Hit-testing happens in the rendering collaborator, which knows where
// things are drawn; the controller only cares about the outcome.
type Target int

const (
	TargetNone Target = iota
	TargetStartHandle
	TargetEndHandle
	TargetArcBody
)

// State is the drag state machine's current mode.
type State int

const (
	Idle State = iota
	DraggingStart
	DraggingEnd
	DraggingArc
)

// Controller owns the authoritative (start, end) pair and the drag
// state machine that mutates it. All methods must be called from a
// single goroutine, in pointer-event arrival order.
type Controller struct {
	opts Options

	start Minute
	end   Minute

	state   State
	session string // uuid of the active gesture, "" when idle

	// Arc-translation reference, captured once at pointer-down and
	// read-only for the rest of the gesture.
	refAngle       float64
	refStart       Minute
	lockedDuration int
}

// NewController creates a controller over an initial interval. The
// interval is clamped end-first so a degenerate configuration cannot
// seed an out-of-range state.
func NewController(start, end Minute, opts Options) *Controller {
	start, end = Clamp(start, end, MovedEnd, opts)
	return &Controller{opts: opts, start: start, end: end}
}

// Start returns the interval's start minute.
func (c *Controller) Start() Minute { return c.start }

// End returns the interval's end minute.
func (c *Controller) End() Minute { return c.end }

// Duration returns the interval's clockwise length in minutes.
func (c *Controller) Duration() int { return Span(c.start, c.end) }

// State returns the drag state machine's current mode.
func (c *Controller) State() State { return c.state }

// Session returns the active gesture's id, or "" when idle. The id is
// stable for the lifetime of one gesture, so log lines carrying it can
// be correlated.
func (c *Controller) Session() string { return c.session }

// Options returns the controller's fixed configuration.
func (c *Controller) Options() Options { return c.opts }

// Snapshot returns the derived geometry for the current interval.
func (c *Controller) Snapshot() Snapshot {
	return Geometry(c.start, c.end, c.opts)
}

// Ticks returns the interior tick marks for the current interval.
func (c *Controller) Ticks() []Tick {
	return Ticks(c.start, c.end, c.opts)
}

// SetInterval replaces the interval outside of any gesture. While a
// gesture is active the call is ignored; the gesture owns the pair.
func (c *Controller) SetInterval(start, end Minute) {
	if c.state != Idle {
		return
	}
	c.start, c.end = Clamp(start, end, MovedEnd, c.opts)
}

// PointerDown begins a gesture on the given target. The angle is the
// raw pointer angle from the Mapper. A down while another gesture is
// active is rejected, as is a down on nothing. Reports whether a
// gesture actually began.
//
// A down on a handle already implies a target time, so the handle
// snaps to the pointer immediately rather than on the first move.
func (c *Controller) PointerDown(target Target, angle float64) bool {
	if c.state != Idle {
		return false
	}

	switch target {
	case TargetStartHandle:
		c.state = DraggingStart
	case TargetEndHandle:
		c.state = DraggingEnd
	case TargetArcBody:
		c.state = DraggingArc
		c.refAngle = angle
		c.refStart = c.start
		c.lockedDuration = c.opts.clampDuration(Span(c.start, c.end))
	default:
		return false
	}

	c.session = uuid.NewString()
	if c.state == DraggingStart || c.state == DraggingEnd {
		c.PointerMove(angle)
	}
	return true
}

// PointerMove updates the interval from a new pointer angle. A no-op
// when idle, so stray moves after a gesture ended are harmless.
func (c *Controller) PointerMove(angle float64) {
	switch c.state {
	case DraggingStart:
		c.start, c.end = Clamp(MinuteAtAngle(angle), c.end, MovedStart, c.opts)
	case DraggingEnd:
		c.start, c.end = Clamp(c.start, MinuteAtAngle(angle), MovedEnd, c.opts)
	case DraggingArc:
		// Each move recomputes from the captured reference, so there
		// is no accumulated drift across a long gesture.
		delta := wrapSigned(angle - c.refAngle)
		shift := int(math.Round(delta / (2 * math.Pi) * MinutesPerDay))
		c.start = c.refStart.Add(shift)
		c.end = c.start.Add(c.lockedDuration)
	}
}

// PointerUp ends the active gesture and discards its reference state.
func (c *Controller) PointerUp() {
	c.state = Idle
	c.session = ""
	c.refAngle = 0
	c.refStart = 0
	c.lockedDuration = 0
}

// PointerCancel is treated identically to PointerUp: every move is a
// complete recomputation, so there is nothing to roll back.
func (c *Controller) PointerCancel() {
	c.PointerUp()
}

// wrapSigned wraps an angular difference into (-pi, pi], so a pointer
// crossing the top of the ring reads as a small signed rotation rather
// than a long-way-around jump.
func wrapSigned(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
