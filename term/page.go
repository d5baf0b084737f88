package term

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// textPage is a static page: a heading and an optional line below it.
type textPage struct {
	heading string
	body    string

	width, height int
}

func (p *textPage) Init() tea.Cmd { return nil }

func (p *textPage) Update(tea.Msg) (Component, tea.Cmd) { return p, nil }

func (p *textPage) SetSize(width, height int) {
	p.width, p.height = width, height
}

func (p *textPage) View() string {
	lines := []string{headingStyle.Render(p.heading)}
	if p.body != "" {
		lines = append(lines, "", p.body)
	}
	return place(p.width, p.height, lipgloss.JoinVertical(lipgloss.Center, lines...))
}
