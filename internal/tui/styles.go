package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/kikaportals/internal/database/repository"
)

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorWarning lipgloss.Color = "#f9e2af"
	colorError   lipgloss.Color = "#f38ba8"
	colorMantle  lipgloss.Color = "#181825"
	colorSurface lipgloss.Color = "#313244"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	brandStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	menuActiveStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	menuInactiveStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 1)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)

	heroStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 4).
			Align(lipgloss.Center)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(colorAccent)

	accentStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	hintStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	keyStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 2)
	buttonFocusStyle = buttonStyle.Background(colorAccent).Foreground(colorMantle)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle).
			Padding(0, 1)
)

func badgeStyle(tone repository.Tone) lipgloss.Style {
	base := lipgloss.NewStyle().Foreground(colorMantle).Padding(0, 1)
	switch tone {
	case repository.ToneWarning:
		return base.Background(colorWarning)
	case repository.ToneSuccess:
		return base.Background(colorSuccess)
	case repository.ToneDanger:
		return base.Background(colorError)
	default:
		return base.Background(colorBorder).Foreground(colorText)
	}
}
