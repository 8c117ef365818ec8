package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/napi-runtime/napi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// pageSize is how many operations the list shows at once.
const pageSize = 20

type modelState int

const (
	stateBrowse modelState = iota
	stateDetail
)

type interactiveModel struct {
	api      *napi.API
	library  string
	probes   []probe
	visible  []probe
	filter   textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel(api *napi.API, library string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter by export or shape"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()

	m := &interactiveModel{
		api:     api,
		library: library,
		filter:  ti,
		state:   stateBrowse,
	}
	return m
}

type probedMsg struct {
	probes []probe
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.probe)
}

func (m *interactiveModel) probe() tea.Msg {
	return probedMsg{probes: probeAll(m.api)}
}

func (m *interactiveModel) applyFilter() {
	m.visible = m.visible[:0]
	for _, p := range m.probes {
		if p.matches(m.filter.Value()) {
			m.visible = append(m.visible, p)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}
			return m, nil

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
				return m, nil
			}
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.applyFilter()
				return m, nil
			}
			return m, tea.Quit
		}

	case probedMsg:
		m.probes = msg.probes
		m.applyFilter()
		return m, nil
	}

	if m.state != stateBrowse {
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *interactiveModel) View() string {
	if m.probes == nil {
		return "Resolving operations..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Node-API Probe"))
	b.WriteString(" ")
	b.WriteString(m.library)
	b.WriteString(fmt.Sprintf("  %d/%d resolved", resolvedCount(m.probes), len(m.probes)))
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		start := 0
		if m.selected >= pageSize {
			start = m.selected - pageSize + 1
		}
		end := min(start+pageSize, len(m.visible))
		for i := start; i < end; i++ {
			line := m.formatProbe(m.visible[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no operation matches"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter details • esc clear/quit"))

	case stateDetail:
		p := m.visible[m.selected]
		sig := p.method.Signature()
		b.WriteString(fmt.Sprintf("%s\n\n", funcStyle.Render(p.method.Export())))
		b.WriteString(fmt.Sprintf("  name       %s\n", p.method))
		b.WriteString(fmt.Sprintf("  shape      %s\n", typeStyle.Render(sig.Shape())))
		b.WriteString(fmt.Sprintf("  signature  %s\n", typeStyle.Render(sig.String())))
		b.WriteString(fmt.Sprintf("  values     %d\n", sig.Values()))
		b.WriteString(fmt.Sprintf("  outs       %d\n", sig.Outs()))
		b.WriteString("  address    ")
		if p.ok() {
			b.WriteString(resultStyle.Render(p.state()))
		} else {
			b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %v", p.state(), p.err)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatProbe(p probe) string {
	state := resultStyle.Render(p.state())
	if !p.ok() {
		state = errorStyle.Render(p.state())
	}
	return fmt.Sprintf("%s %s %s",
		funcStyle.Render(fmt.Sprintf("%-44s", p.method.Export())),
		typeStyle.Render(fmt.Sprintf("%-7s", p.method.Signature().Shape())),
		state)
}

func runInteractive(api *napi.API, library string) error {
	p := tea.NewProgram(newInteractiveModel(api, library), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
