package terminal

import "github.com/charmbracelet/lipgloss"

var (
	headingColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}
	okColor      = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(headingColor).Bold(true)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	pathStyle    = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(warnColor)
	okStyle      = lipgloss.NewStyle().Foreground(okColor)
	indentStyle  = lipgloss.NewStyle().PaddingLeft(2)
	messageStyle = lipgloss.NewStyle().Foreground(headingColor)
)

func severityStyle(sev string) lipgloss.Style {
	switch sev {
	case "error", "2":
		return errorStyle
	case "warn", "1":
		return warnStyle
	default:
		return mutedStyle
	}
}
