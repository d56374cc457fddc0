package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dc4e4"))

	RingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	HourMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	ArcStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8aadf4"))
	TickStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5b6078"))

	HandleStartStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6da95"))
	HandleEndStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ed8796"))

	ReadoutLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ReadoutValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f4dbd6"))

	HourLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	FooterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5555"))
)
