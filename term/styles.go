package term

import "github.com/charmbracelet/lipgloss"

var (
	loaderTextStyle = lipgloss.NewStyle().Bold(true)
	spinnerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	headingStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	hintStyle       = lipgloss.NewStyle().Faint(true)
)
