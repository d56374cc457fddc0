package dial

import (
	"fmt"
	"math"
	"regexp"
)

// MinutesPerDay is the length of the clock cycle in minutes.
const MinutesPerDay = 1440

// Minute is a clock time expressed as minutes since midnight,
// always normalized into [0, MinutesPerDay).
type Minute int

// Normalize wraps any minute count into [0, MinutesPerDay) using
// floored modulo, so Normalize(-10) == 1430.
func Normalize(m int) Minute {
	return Minute(((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay)
}

// Add returns the minute delta steps clockwise from m, wrapping as needed.
func (m Minute) Add(delta int) Minute {
	return Normalize(int(m) + delta)
}

// Angle returns the ring angle for m in radians. Minute 0 sits at the
// top of the ring and minutes advance clockwise, so the zero reference
// of the raw trigonometric frame (positive x-axis) is rotated by -90°.
func (m Minute) Angle() float64 {
	return float64(m)/MinutesPerDay*2*math.Pi - math.Pi/2
}

// MinuteAtAngle is the inverse of Angle. The raw angle (as produced by
// atan2, zero at the positive x-axis) is rotated back into the clock
// frame and re-wrapped before dividing, then the result is normalized.
func MinuteAtAngle(angle float64) Minute {
	a := math.Mod(angle+math.Pi/2, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return Normalize(int(math.Round(a / (2 * math.Pi) * MinutesPerDay)))
}

// Span returns the clockwise distance from start to end in minutes,
// always in [0, MinutesPerDay). Zero means the endpoints coincide.
func Span(start, end Minute) int {
	return int(Normalize(int(end) - int(start)))
}

// Clock formats m as zero-padded 24-hour "HH:MM".
func (m Minute) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60%24, int(m)%60)
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseClock parses an "HH:MM" string into a Minute.
func ParseClock(value string) (Minute, error) {
	matches := clockPattern.FindStringSubmatch(value)
	if matches == nil {
		return 0, fmt.Errorf("invalid time format: %s", value)
	}

	var h, m int
	fmt.Sscanf(matches[1], "%d", &h)
	fmt.Sscanf(matches[2], "%d", &m)

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time value: %s", value)
	}

	return Minute(h*60 + m), nil
}
