package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ringdial/config"
	"ringdial/dial"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), zap.NewNop())
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

// screenCellFor returns the terminal cell a minute's handle occupies.
func screenCellFor(m Model, minute dial.Minute) (int, int) {
	arcScale := m.opts.ArcRadius / m.opts.RingRadius
	x, y := m.layout.cellAt(minute, arcScale)
	return m.layout.left + x, m.layout.top + y
}

func press(m Model, x, y int) Model {
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return updated.(Model)
}

func motion(m Model, x, y int) Model {
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	return updated.(Model)
}

func release(m Model, x, y int) Model {
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return updated.(Model)
}

func TestHitTestResolvesTargets(t *testing.T) {
	m := newTestModel(t)

	x, y := screenCellFor(m, m.ctrl.Start())
	assert.Equal(t, dial.TargetStartHandle, m.hitTest(x, y))

	x, y = screenCellFor(m, m.ctrl.End())
	assert.Equal(t, dial.TargetEndHandle, m.hitTest(x, y))

	mid := m.ctrl.Start().Add(m.ctrl.Duration() / 2)
	x, y = screenCellFor(m, mid)
	assert.Equal(t, dial.TargetArcBody, m.hitTest(x, y))

	assert.Equal(t, dial.TargetNone, m.hitTest(0, 0), "a corner press misses the ring")

	// The unselected side of the ring is not draggable.
	outside := m.ctrl.End().Add(dial.Span(m.ctrl.End(), m.ctrl.Start()) / 2)
	x, y = screenCellFor(m, outside)
	assert.Equal(t, dial.TargetNone, m.hitTest(x, y))
}

func TestMouseDragMovesEndHandle(t *testing.T) {
	m := newTestModel(t)

	x, y := screenCellFor(m, m.ctrl.End())
	m = press(m, x, y)
	assert.Equal(t, dial.DraggingEnd, m.ctrl.State())

	x, y = screenCellFor(m, 600)
	m = motion(m, x, y)
	assert.LessOrEqual(t, cyclicDistance(m.ctrl.End(), 600), 25,
		"end handle follows the pointer within cell quantization")
	assert.Equal(t, dial.Minute(1380), m.ctrl.Start(), "start handle stays anchored")

	m = release(m, x, y)
	assert.Equal(t, dial.Idle, m.ctrl.State())
}

func TestMouseDragSlidesArc(t *testing.T) {
	m := newTestModel(t)
	duration := m.ctrl.Duration()

	mid := m.ctrl.Start().Add(duration / 2)
	x, y := screenCellFor(m, mid)
	m = press(m, x, y)
	require.Equal(t, dial.DraggingArc, m.ctrl.State())

	x, y = screenCellFor(m, mid.Add(180))
	m = motion(m, x, y)
	assert.Equal(t, duration, m.ctrl.Duration(), "translation preserves duration exactly")
	assert.LessOrEqual(t, cyclicDistance(m.ctrl.Start(), dial.Minute(1380).Add(180)), 25)

	m = release(m, x, y)
	assert.Equal(t, dial.Idle, m.ctrl.State())
}

func TestMotionWithoutGestureIsIgnored(t *testing.T) {
	m := newTestModel(t)
	start, end := m.ctrl.Start(), m.ctrl.End()

	m = motion(m, 40, 12)
	assert.Equal(t, start, m.ctrl.Start())
	assert.Equal(t, end, m.ctrl.End())
}

func TestBlurCancelsGesture(t *testing.T) {
	m := newTestModel(t)

	x, y := screenCellFor(m, m.ctrl.End())
	m = press(m, x, y)
	require.NotEqual(t, dial.Idle, m.ctrl.State())

	updated, _ := m.Update(tea.BlurMsg{})
	m = updated.(Model)
	assert.Equal(t, dial.Idle, m.ctrl.State())
}

func TestResetKeyRestoresInitialInterval(t *testing.T) {
	m := newTestModel(t)

	x, y := screenCellFor(m, m.ctrl.End())
	m = press(m, x, y)
	x, y = screenCellFor(m, 600)
	m = motion(m, x, y)
	m = release(m, x, y)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	assert.Equal(t, m.initialStart, m.ctrl.Start())
	assert.Equal(t, m.initialEnd, m.ctrl.End())
}

func TestViewRendersInterval(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "23:00")
	assert.Contains(t, view, "07:00")
	assert.Contains(t, view, "8h00m")
}
