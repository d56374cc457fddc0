package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// FormatMinutes formats a minute count as "XhYYm".
func FormatMinutes(d int) string {
	return fmt.Sprintf("%dh%02dm", d/60, d%60)
}

// RenderReadout renders the selected interval line: both clock times
// and the duration, centered in the given width.
func RenderReadout(start, end string, duration int, width int, labelStyle, valueStyle lipgloss.Style) string {
	line := valueStyle.Render(start) +
		labelStyle.Render(" → ") +
		valueStyle.Render(end) +
		labelStyle.Render("  (") +
		valueStyle.Render(FormatMinutes(duration)) +
		labelStyle.Render(")")
	return lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Top, line)
}
