package term

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"frontend/loading"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Routes(t *testing.T) {
	home := New("/", loading.Config{})
	require.IsType(t, &loaderPage{}, home.page)

	about := New("/about", loading.Config{})
	require.IsType(t, &textPage{}, about.page)
	require.Contains(t, about.View(), "About")
	require.NotContains(t, about.View(), "Loading")

	missing := New("/missing", loading.Config{})
	require.Contains(t, missing.View(), "Not Found")
	require.Contains(t, missing.View(), "/missing")
}

func TestModel_Navigate(t *testing.T) {
	m := New("/", loading.Config{})
	first := m.page.(*loaderPage)

	_, cmd := m.Update(key("a"))
	require.Nil(t, cmd)
	require.Equal(t, "/about", m.Path())

	_, cmd = m.Update(key("h"))
	require.NotNil(t, cmd)
	require.Equal(t, "/", m.Path())

	second := m.page.(*loaderPage)
	require.NotEqual(t, first.id, second.id)

	// Staying on the same page keeps the running loader.
	_, cmd = m.Update(key("h"))
	require.Nil(t, cmd)
	require.Same(t, second, m.page)
}

func TestModel_Quit(t *testing.T) {
	m := New("/about", loading.Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CentersPage(t *testing.T) {
	m := New("/about", loading.Config{})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 11)
	// Heading sits on the middle row of the 10-line body.
	require.Contains(t, lines[4]+lines[5], "About")
	require.Contains(t, lines[10], "q quit")
}
