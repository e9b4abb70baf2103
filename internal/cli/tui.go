package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// panStep is how many columns a single left/right keypress pans.
const panStep = 4

// chartLoadFunc reloads the chart from disk and returns its display name
// and the rendered rune canvas.
type chartLoadFunc func() (name, content string, err error)

// chartReloadedMsg carries the result of a reload triggered with "r".
type chartReloadedMsg struct {
	name    string
	content string
	err     error
}

// chartViewModel is the bubbletea model for the view command. The
// viewport handles vertical scrolling; horizontal panning works by
// cutting columns off the canvas before handing it to the viewport.
type chartViewModel struct {
	name      string
	path      string
	content   string   // full rune canvas
	lines     []string // content split into lines
	xOffset   int
	width     int
	ready     bool
	status    string
	statusErr bool
	load      chartLoadFunc
	vp        viewport.Model
}

// newChartViewModel creates the view model for a laid-out chart.
func newChartViewModel(name, path, content string, load chartLoadFunc) chartViewModel {
	if name == "" {
		name = path
	}
	return chartViewModel{
		name:    name,
		path:    path,
		content: content,
		lines:   strings.Split(content, "\n"),
		load:    load,
	}
}

func (m chartViewModel) Init() tea.Cmd {
	return nil
}

func (m chartViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.xOffset > 0 {
				m.xOffset -= panStep
				if m.xOffset < 0 {
					m.xOffset = 0
				}
				m.vp.SetContent(m.visibleContent())
			}
			return m, nil
		case "right", "l":
			if m.xOffset+m.width < m.maxLineWidth() {
				m.xOffset += panStep
				m.vp.SetContent(m.visibleContent())
			}
			return m, nil
		case "g":
			m.vp.GotoTop()
			return m, nil
		case "G":
			m.vp.GotoBottom()
			return m, nil
		case "r":
			return m, m.reloadCmd()
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		vpHeight := msg.Height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		m.width = msg.Width
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}
		m.vp.SetContent(m.visibleContent())
		return m, nil

	case chartReloadedMsg:
		if msg.err != nil {
			m.status, m.statusErr = fmt.Sprintf("reload failed: %v", msg.err), true
			return m, nil
		}
		if msg.name != "" {
			m.name = msg.name
		}
		m.status, m.statusErr = "reloaded "+m.path, false
		m.content = msg.content
		m.lines = strings.Split(msg.content, "\n")
		if m.ready {
			m.vp.SetContent(m.visibleContent())
		}
		return m, nil
	}

	// Up/down, paging, and j/k go to the viewport's own key handling.
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m chartViewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.vp.View() + "\n" + m.footerView()
}

func (m chartViewModel) headerView() string {
	return StyleTitle.Render(m.name) + "  " +
		StyleDim.Render("←→↑↓/hjkl pan · g/G top/bottom · r reload · q quit")
}

func (m chartViewModel) footerView() string {
	line := "  " + StyleDim.Render("col") + " " +
		StyleNumber.Render(fmt.Sprintf("%d", m.xOffset)) + "  " +
		StyleHighlight.Render(fmt.Sprintf("%3.0f%%", m.vp.ScrollPercent()*100))
	if m.status != "" {
		style := StyleSuccess
		if m.statusErr {
			style = StyleWarning
		}
		line += "  " + style.Render(m.status)
	}
	return line
}

// visibleContent returns the canvas with the first xOffset columns cut
// off, implementing horizontal panning.
func (m chartViewModel) visibleContent() string {
	if m.xOffset == 0 {
		return m.content
	}
	out := make([]string, len(m.lines))
	for i, line := range m.lines {
		r := []rune(line)
		if m.xOffset < len(r) {
			out[i] = string(r[m.xOffset:])
		}
	}
	return strings.Join(out, "\n")
}

// maxLineWidth returns the widest line of the canvas in runes.
func (m chartViewModel) maxLineWidth() int {
	w := 0
	for _, line := range m.lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w
}

// reloadCmd re-reads the chart off the event loop and reports the result.
func (m chartViewModel) reloadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		name, content, err := load()
		return chartReloadedMsg{name: name, content: content, err: err}
	}
}
