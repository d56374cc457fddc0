package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ringdial/dial"
	"ringdial/tui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Top,
		TitleStyle.Render("ringdial"))
	readout := components.RenderReadout(
		m.ctrl.Start().Clock(), m.ctrl.End().Clock(), m.ctrl.Duration(),
		m.width, ReadoutLabelStyle, ReadoutValueStyle)

	ring := m.renderRing()
	footer := FooterStyle.Width(m.width).Render(
		"drag handles to move an end, drag the arc to slide the window  [r] reset  [q] quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, readout, ring, footer)
}

// renderRing draws one frame of the ring: outline first, then the
// selected arc, interior ticks, and handles on top.
func (m Model) renderRing() string {
	l := m.layout
	canvas := components.NewCanvas(l.width, l.height)

	arcScale := 1.0
	if m.opts.RingRadius > 0 {
		arcScale = m.opts.ArcRadius / m.opts.RingRadius
	}

	// Ring outline with a mark on every hour.
	for mi := 0; mi < dial.MinutesPerDay; mi += 4 {
		x, y := l.cellAt(dial.Minute(mi), 1.0)
		canvas.Set(x, y, '·', RingStyle)
	}
	for mi := 0; mi < dial.MinutesPerDay; mi += 60 {
		x, y := l.cellAt(dial.Minute(mi), 1.0)
		canvas.Set(x, y, '+', HourMarkStyle)
	}
	for _, hour := range []struct {
		minute int
		label  string
	}{{0, "00"}, {360, "06"}, {720, "12"}, {1080, "18"}} {
		x, y := l.cellAt(dial.Minute(hour.minute), 0.6)
		canvas.SetString(x-len(hour.label)/2, y, hour.label, HourLabelStyle)
	}

	// Selected arc.
	start := m.ctrl.Start()
	for off := 0; off <= m.ctrl.Duration(); off += 2 {
		x, y := l.cellAt(start.Add(off), arcScale)
		canvas.Set(x, y, '█', ArcStyle)
	}

	// Interior ticks straddle the arc radius.
	for _, tick := range m.ctrl.Ticks() {
		x, y := l.cellForPoint(tick.Inner, m.opts.RingRadius)
		canvas.Set(x, y, '·', TickStyle)
		x, y = l.cellForPoint(tick.Outer, m.opts.RingRadius)
		canvas.Set(x, y, '·', TickStyle)
	}

	// Handles last so they stay visible on top of the arc.
	snap := m.ctrl.Snapshot()
	x, y := l.cellForPoint(snap.StartPos, m.opts.RingRadius)
	canvas.Set(x, y, '◉', HandleStartStyle)
	x, y = l.cellForPoint(snap.EndPos, m.opts.RingRadius)
	canvas.Set(x, y, '◉', HandleEndStyle)

	// Shift the canvas to the layout's screen position so drawing and
	// hit-testing agree on coordinates.
	indent := ""
	if l.left > 0 {
		indent = strings.Repeat(" ", l.left)
	}
	lines := strings.Split(canvas.String(), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
