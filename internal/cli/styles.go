package cli

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("81")
	mutedColor  = lipgloss.Color("243")
	warnColor   = lipgloss.Color("214")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	typeStyle  = lipgloss.NewStyle().Foreground(accentColor)
	boundStyle = lipgloss.NewStyle().Foreground(mutedColor)
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("156"))
	hitStyle   = lipgloss.NewStyle().Foreground(warnColor).Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)
