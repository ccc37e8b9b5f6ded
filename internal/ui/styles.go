package ui

import "github.com/charmbracelet/lipgloss"

// Terminal palette. Mirrors the window palette without pulling in raylib.
const (
	hexDeep   = "#0c1f3a"
	hexSky    = "#7dd3fc"
	hexSea    = "#0369a1"
	hexFoam   = "#e0f2fe"
	hexHull   = "#92400e"
	hexCoral  = "#fb7185"
	hexKelp   = "#34d399"
	hexSand   = "#fcd34d"
	hexInk    = "#e2e8f0"
	hexMuted  = "#94a3b8"
	hexDanger = "#f87171"
	hexLine   = "#cbd5e1"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexSky))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(hexMuted))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexInk))
	kelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(hexKelp))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(hexSand))
	dangerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexDanger))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(hexMuted))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(hexLine))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(hexCoral))
	answerStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hexInk)).
			Background(lipgloss.Color(hexDeep)).
			Padding(0, 1)
)

// timerStyle goes sand at twenty seconds and red at ten.
func timerStyle(secs int) lipgloss.Style {
	switch {
	case secs <= 10:
		return dangerStyle
	case secs <= 20:
		return warnStyle
	default:
		return kelpStyle
	}
}
