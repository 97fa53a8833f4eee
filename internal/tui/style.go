package tui

import (
	"github.com/charmbracelet/lipgloss"

	"dailyeat/internal/calendar"
)

// Color palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray     = "#353b52"
	colorWhite    = "#ffffff"
	colorGreen    = "#acfab4"
	colorGreenDim = "#b4c4b4"
	colorRed      = "#e61f44"
	colorRedDim   = "#d06178"
	colorPurple   = "#b9a3eb"
	colorBlue     = "#89ddff"

	cellWidth = 5
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorBlue)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 2).Align(lipgloss.Center)
	weekdayStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorPurple)).
			Width(cellWidth).Align(lipgloss.Center)
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).Align(lipgloss.Center)
	todayStyle = lipgloss.NewStyle().
			Width(cellWidth).Align(lipgloss.Center).
			Underline(true).Bold(true)
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue))
	textRedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed))
	footerStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGray))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorPurple)).
			Padding(0, 1)
)

// statusColor picks the day-number color for a calendar cell.
func statusColor(s calendar.Status) lipgloss.Color {
	switch s {
	case calendar.StatusHit:
		return lipgloss.Color(colorGreen)
	case calendar.StatusMiss:
		return lipgloss.Color(colorRedDim)
	default:
		return lipgloss.Color(colorGreenDim)
	}
}

func levelColor(l calendar.Level) lipgloss.Color {
	if l == calendar.LevelComfortable {
		return lipgloss.Color(colorGreen)
	}
	return lipgloss.Color(colorRed)
}
