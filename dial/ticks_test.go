package dial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicksAcrossMidnight(t *testing.T) {
	opts := DefaultOptions()

	// 23:00 -> 08:00, duration 540. Marks run 23:30 .. 07:30 at
	// 15-minute spacing, wrapping through midnight.
	ticks := Ticks(1380, 480, opts)
	require.NotEmpty(t, ticks)

	assert.Equal(t, Minute(1410), ticks[0].Minute, "first mark at 23:30")
	assert.Equal(t, Minute(450), ticks[len(ticks)-1].Minute, "last mark at 07:30")
	assert.Len(t, ticks, 33)

	for i := 1; i < len(ticks); i++ {
		assert.Equal(t, ticks[i-1].Minute.Add(opts.TickSpacing), ticks[i].Minute)
	}

	// The wrap itself: a mark lands exactly on midnight.
	found := false
	for _, tick := range ticks {
		if tick.Minute == 0 {
			found = true
		}
	}
	assert.True(t, found, "expected a mark at 00:00")
}

func TestTicksShortIntervalIsEmpty(t *testing.T) {
	opts := DefaultOptions()

	assert.Empty(t, Ticks(1380, 1425, opts), "23:00-23:45 is too short for interior marks")
	assert.Empty(t, Ticks(1380, 0, opts), "a minimum-length interval leaves no room between margins")
	assert.Empty(t, Ticks(300, 300, opts), "coincident endpoints read as zero duration")
}

func TestTicksGeometry(t *testing.T) {
	opts := DefaultOptions()

	for _, tick := range Ticks(1380, 480, opts) {
		assert.InDelta(t, opts.ArcRadius-opts.TickLength/2, math.Hypot(tick.Inner.X, tick.Inner.Y), 1e-9)
		assert.InDelta(t, opts.ArcRadius+opts.TickLength/2, math.Hypot(tick.Outer.X, tick.Outer.Y), 1e-9)
	}
}

func TestTicksIterationCap(t *testing.T) {
	opts := DefaultOptions()
	opts.TickMargin = 0

	// With no margins a full-length interval wants a mark on every
	// spacing boundary; the one-turn cap keeps the list finite.
	ticks := Ticks(0, 1439, opts)
	assert.LessOrEqual(t, len(ticks), MinutesPerDay/opts.TickSpacing)

	opts.TickSpacing = 0
	assert.Nil(t, Ticks(0, 720, opts), "non-positive spacing yields nothing")
}
