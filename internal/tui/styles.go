package tui

import (
	"github.com/charmbracelet/lipgloss"

	"hijrical/internal/tui/theme"
)

// Cell styles for the picker grids. Month cells are 3 wide ("29 "),
// year/decade cells wider to fit month names and 4-digit years.
var (
	pickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Align(lipgloss.Center)

	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TextMuted).
			Width(3).
			Align(lipgloss.Center)

	dayCellStyle      = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Foreground(theme.Text)
	outsideCellStyle  = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Foreground(theme.TextMuted)
	weekendCellStyle  = dayCellStyle.Foreground(theme.Secondary)
	todayCellStyle    = dayCellStyle.Bold(true).Foreground(theme.Success)
	specialCellStyle  = dayCellStyle.Foreground(theme.Accent)
	blackoutCellStyle = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Foreground(theme.Danger)
	selectedCellStyle = dayCellStyle.Bold(true).Foreground(theme.Warning)
	inRangeCellStyle  = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Foreground(theme.TextBright).Background(theme.Surface)
	cursorCellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Bold(true).Foreground(theme.TextBright).Background(theme.Primary)

	wideCellStyle     = lipgloss.NewStyle().Width(17).Align(lipgloss.Center).Foreground(theme.Text)
	wideOutsideStyle  = lipgloss.NewStyle().Width(17).Align(lipgloss.Center).Foreground(theme.TextMuted)
	wideSelectedStyle = lipgloss.NewStyle().Width(17).Align(lipgloss.Center).Bold(true).Foreground(theme.Warning)
	wideCursorStyle   = lipgloss.NewStyle().Width(17).Align(lipgloss.Center).Bold(true).Foreground(theme.TextBright).Background(theme.Primary)

	statusKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	statusTextStyle = lipgloss.NewStyle().Foreground(theme.TextMuted)

	HelpStyle = lipgloss.NewStyle().Foreground(theme.TextMuted)

	entryTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)
	entryExamplesStyle = lipgloss.NewStyle().Foreground(theme.TextMuted).Italic(true)
	entryErrorStyle    = lipgloss.NewStyle().Foreground(theme.Danger)
)
