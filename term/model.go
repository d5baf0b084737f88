package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"frontend/loading"
	"frontend/logger"
	"frontend/route"
)

const helpText = "h home • a about • q quit"

// Model is the terminal shell. It shows the page routed for its path.
type Model struct {
	path   string
	page   Component
	config loading.Config
	now    func() time.Time

	width, height int
}

func New(path string, cfg loading.Config) *Model {
	m := &Model{config: cfg, now: time.Now}
	m.load(path)
	return m
}

// Path is the current location.
func (m *Model) Path() string { return m.path }

func (m *Model) load(path string) {
	m.path = path
	switch route.Resolve(path) {
	case route.Home:
		m.page = newLoaderPage(m.config, m.now())
	case route.About:
		m.page = &textPage{heading: "About"}
	default:
		logger.Warn("NotFound: no route for %s", path)
		m.page = &textPage{heading: "Not Found", body: "Nothing lives at " + path}
	}
	m.page.SetSize(m.width, m.bodyHeight())
}

// navigate swaps the page. The old page's timers stop with it.
func (m *Model) navigate(path string) tea.Cmd {
	if path == m.path {
		return nil
	}
	m.load(path)
	return m.page.Init()
}

func (m *Model) bodyHeight() int {
	if m.height <= 1 {
		return m.height
	}
	return m.height - 1
}

func (m *Model) Init() tea.Cmd {
	return m.page.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "h":
			return m, m.navigate("/")
		case "a":
			return m, m.navigate("/about")
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.page.SetSize(m.width, m.bodyHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.page.View(),
		hintStyle.Render(helpText),
	)
}
