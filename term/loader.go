package term

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"frontend/loading"
	"frontend/logger"
	"frontend/sequence"
)

const (
	tickInterval = loading.TypeSpeed
	cursorBlink  = 500 * time.Millisecond
)

// loaderIDs tells apart tick chains of successive loader pages.
var loaderIDs int

type tickMsg struct {
	id int
	t  time.Time
}

// loaderPage is the terminal Loader: a spinner that loops for as long as
// the page is shown and the text cycle below it.
type loaderPage struct {
	id      int
	spinner spinner.Model
	script  sequence.Script
	start   time.Time
	frame   sequence.Frame
	elapsed time.Duration
	logged  bool

	width, height int
}

func newLoaderPage(cfg loading.Config, start time.Time) *loaderPage {
	loaderIDs++

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	script := cfg.Script(loading.TypeSpeed, nil)
	return &loaderPage{
		id:      loaderIDs,
		spinner: s,
		script:  script,
		start:   start,
		frame:   script.At(0),
	}
}

func (p *loaderPage) tick() tea.Cmd {
	id := p.id
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{id: id, t: t}
	})
}

func (p *loaderPage) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, p.tick())
}

func (p *loaderPage) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Ticks of a page that is no longer shown stop here.
		if msg.id != p.id {
			return p, nil
		}
		p.advance(msg.t.Sub(p.start))
		return p, p.tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *loaderPage) advance(elapsed time.Duration) {
	p.elapsed = elapsed
	p.frame = p.script.At(elapsed)
	if p.frame.Pass > 0 && !p.logged {
		p.logged = true
		logger.Info("Sequence completed")
	}
}

func (p *loaderPage) SetSize(width, height int) {
	p.width, p.height = width, height
}

func (p *loaderPage) text() string {
	cursor := " "
	if (p.elapsed/cursorBlink)%2 == 0 {
		cursor = "▌"
	}
	return p.frame.Visible + cursor
}

func (p *loaderPage) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		p.spinner.View(),
		"",
		loaderTextStyle.Render(p.text()),
	)
	return place(p.width, p.height, content)
}

// place centers content in the full terminal, like the web page's
// full-viewport flex container.
func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
