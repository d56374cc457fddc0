package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ringdial/config"
)

// Launch runs the interactive dial until the user quits. Mouse motion
// reporting is enabled for the whole screen so a gesture keeps
// receiving moves even after the pointer leaves the element it
// started on, and focus reporting turns a lost terminal focus into a
// pointer-cancel.
func Launch(cfg config.Config, logger *zap.Logger) error {
	m, err := NewModel(cfg, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	return err
}
