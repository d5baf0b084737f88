// Package term renders the shell and its loader on a terminal.
package term

import tea "github.com/charmbracelet/bubbletea"

// Component defines the contract for the pages of the terminal shell.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}
