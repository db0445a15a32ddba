package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/remote-mount/manifest"
	"github.com/wippyai/remote-mount/typegen"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorState int

const (
	stateSections inspectorState = iota
	stateDetail
	stateCheckVersion
	stateShowResult
)

type section struct {
	title string
	lines []string
}

type inspectorModel struct {
	err      error
	doc      *manifest.Document
	outDir   string
	sections []section
	input    textinput.Model
	result   string
	selected int
	state    inspectorState
}

type generatedMsg struct {
	err  error
	path string
}

func newInspectorModel(doc *manifest.Document, outDir string) *inspectorModel {
	return &inspectorModel{
		doc:      doc,
		outDir:   outDir,
		sections: buildSections(doc),
		state:    stateSections,
	}
}

func buildSections(doc *manifest.Document) []section {
	var props []string
	names := make([]string, 0, len(doc.Props))
	for name := range doc.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spec := doc.Props[name]
		line := nameStyle.Render(name) + ": " + typeStyle.Render(spec.Type)
		if spec.Required {
			line += " (required)"
		}
		if spec.Description != "" {
			line += "  " + helpStyle.Render(spec.Description)
		}
		props = append(props, line)
	}

	var events []string
	for _, name := range doc.EventNames() {
		spec := doc.Events[name]
		fields := make([]string, 0, len(spec.Payload))
		for field := range spec.Payload {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for i, field := range fields {
			fields[i] = field + ": " + typeStyle.Render(spec.Payload[field].Type)
		}
		events = append(events, nameStyle.Render(name)+"{"+strings.Join(fields, ", ")+"}")
	}

	var caps []string
	for _, name := range doc.Capabilities {
		caps = append(caps, nameStyle.Render(name))
	}

	var host []string
	if doc.Host != nil && doc.Host.ContractRange != "" {
		host = append(host, "contract range: "+typeStyle.Render(doc.Host.ContractRange))
	}

	return []section{
		{title: fmt.Sprintf("Props (%d)", len(props)), lines: props},
		{title: fmt.Sprintf("Events (%d)", len(events)), lines: events},
		{title: fmt.Sprintf("Capabilities (%d)", len(caps)), lines: caps},
		{title: "Host requirements", lines: host},
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateCheckVersion {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateSections
				return m, nil
			case "enter":
				m.result = m.checkVersion(m.input.Value())
				m.state = stateShowResult
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSections && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSections && m.selected < len(m.sections)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSections:
				m.state = stateDetail
			case stateDetail, stateShowResult:
				m.state = stateSections
				m.result = ""
				m.err = nil
			}

		case "c":
			if m.state == stateSections {
				ti := textinput.New()
				ti.Placeholder = "1.2.3"
				ti.Prompt = "host contract version: "
				ti.Width = 24
				ti.Focus()
				m.input = ti
				m.state = stateCheckVersion
			}

		case "g":
			if m.state == stateSections {
				return m, m.generateTypes
			}

		case "esc":
			if m.state != stateSections {
				m.state = stateSections
				m.result = ""
				m.err = nil
			}
		}

	case generatedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.result = "Wrote " + msg.path
		}
		m.state = stateShowResult
	}

	return m, nil
}

func (m *inspectorModel) checkVersion(hostVersion string) string {
	if m.doc.Host == nil || m.doc.Host.ContractRange == "" {
		return "manifest declares no host contract range; any host is accepted"
	}
	if manifest.ResolveCompatibility(m.doc.Host.ContractRange, hostVersion) {
		return okStyle.Render(fmt.Sprintf("host %s satisfies %s", hostVersion, m.doc.Host.ContractRange))
	}
	return errorStyle.Render(fmt.Sprintf("host %s does NOT satisfy %s", hostVersion, m.doc.Host.ContractRange))
}

func (m *inspectorModel) generateTypes() tea.Msg {
	path, err := typegen.WriteFile(m.doc, m.outDir, "", typegen.Options{})
	return generatedMsg{path: path, err: err}
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Manifest Inspector"))
	b.WriteString(fmt.Sprintf(" %s@%s <%s>\n\n", m.doc.Name, m.doc.Version, m.doc.TagName))

	switch m.state {
	case stateSections:
		for i, s := range m.sections {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + s.title))
			} else {
				b.WriteString(cursor + s.title)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • c check version • g generate types • q quit"))

	case stateDetail:
		s := m.sections[m.selected]
		b.WriteString(s.title + "\n\n")
		if len(s.lines) == 0 {
			b.WriteString(helpStyle.Render("(none)"))
			b.WriteString("\n")
		}
		for _, line := range s.lines {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))

	case stateCheckVersion:
		b.WriteString("Check host compatibility against ")
		if m.doc.Host != nil {
			b.WriteString(typeStyle.Render(m.doc.Host.ContractRange))
		}
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter check • esc back"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.result)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
	}

	return b.String()
}

func runInteractive(doc *manifest.Document, outDir string) error {
	p := tea.NewProgram(newInspectorModel(doc, outDir), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
