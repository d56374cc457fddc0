package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected Minute
	}{
		{name: "should pass through in-range values", input: 75, expected: 75},
		{name: "should wrap negative values upward", input: -10, expected: 1430},
		{name: "should wrap a full cycle to zero", input: 1440, expected: 0},
		{name: "should wrap multiple cycles", input: 5000, expected: 680},
		{name: "should wrap negative full cycles to zero", input: -2880, expected: 0},
		{name: "should keep the last minute of the day", input: 1439, expected: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for m := -3000; m <= 3000; m++ {
		n := Normalize(m)
		assert.GreaterOrEqual(t, int(n), 0)
		assert.Less(t, int(n), MinutesPerDay)
		assert.Equal(t, n, Normalize(int(n)))
	}
}

func TestAngle(t *testing.T) {
	// Minute 0 sits at the top of the ring, a quarter turn behind the
	// positive x-axis.
	assert.InDelta(t, -math.Pi/2, Minute(0).Angle(), 1e-9)
	assert.InDelta(t, 0, Minute(360).Angle(), 1e-9)
	assert.InDelta(t, math.Pi/2, Minute(720).Angle(), 1e-9)
	assert.InDelta(t, math.Pi, Minute(1080).Angle(), 1e-9)
}

func TestMinuteAtAngleRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		assert.Equal(t, Minute(m), MinuteAtAngle(Minute(m).Angle()), "minute %d", m)
	}
}

func TestMinuteAtAngleWrapsRawAngles(t *testing.T) {
	// atan2 yields angles in (-pi, pi]; both signs must land on the
	// same clock face.
	assert.Equal(t, Minute(1080), MinuteAtAngle(math.Pi))
	assert.Equal(t, Minute(0), MinuteAtAngle(-math.Pi/2))
	assert.Equal(t, Minute(360), MinuteAtAngle(0.0))
	assert.Equal(t, Minute(360), MinuteAtAngle(4*math.Pi))
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name     string
		start    Minute
		end      Minute
		expected int
	}{
		{name: "should measure a span across midnight", start: 1380, end: 480, expected: 540},
		{name: "should measure the reverse span as the complement", start: 480, end: 1380, expected: 900},
		{name: "should read zero for coincident endpoints", start: 300, end: 300, expected: 0},
		{name: "should handle start just before end", start: 0, end: 1439, expected: 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Span(tt.start, tt.end))
		})
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "01:15", Minute(75).Clock())
	assert.Equal(t, "00:00", Minute(0).Clock())
	assert.Equal(t, "23:59", Minute(1439).Clock())
	assert.Equal(t, "12:00", Minute(720).Clock())
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("23:00")
	require.NoError(t, err)
	assert.Equal(t, Minute(1380), m)

	m, err = ParseClock("8:05")
	require.NoError(t, err)
	assert.Equal(t, Minute(485), m)

	for _, bad := range []string{"", "24:00", "12:60", "noon", "12", "12:5"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseClockRoundTrip(t *testing.T) {
	for _, m := range []Minute{0, 75, 480, 720, 1380, 1439} {
		parsed, err := ParseClock(m.Clock())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
