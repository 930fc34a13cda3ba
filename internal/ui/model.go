package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/signalk-terminal/internal/dashboard"
	"github.com/ngmaloney/signalk-terminal/internal/widget"
)

// Dashboard is the part of dashboard.Controller the UI reads
type Dashboard interface {
	Snapshots() []widget.Snapshot
	Toggle(i int) bool
	Updates() <-chan dashboard.Update
}

// Model represents the application's state
type Model struct {
	dashboard Dashboard
	host      string
	width     int
	height    int

	widgets []widget.Snapshot
	stopped bool

	spinner spinner.Model
	keys    keyMap
	help    help.Model
}

// NewModel creates a new application model for a running dashboard
func NewModel(d Dashboard, host string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		dashboard: d,
		host:      host,
		widgets:   d.Snapshots(),
		spinner:   s,
		keys:      newKeyMap(),
		help:      help.New(),
	}
}

// Init starts the spinner and listens for widget updates
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForUpdate(m.dashboard.Updates()))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case widgetUpdatedMsg:
		m.widgets = m.dashboard.Snapshots()
		return m, waitForUpdate(m.dashboard.Updates())

	case updatesClosedMsg:
		m.stopped = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			n, _ := strconv.Atoi(msg.String())
			if m.dashboard.Toggle(n - 1) {
				m.widgets = m.dashboard.Snapshots()
			}
			return m, nil
		}
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	header := headerStyle.Render(fmt.Sprintf("⚓ SignalK Terminal · %s", m.host))
	sections = append(sections, header)

	var panes []string
	var hidden []string
	for i, w := range m.widgets {
		if !w.Visible {
			hidden = append(hidden, fmt.Sprintf("%d %s", i+1, w.Title))
			continue
		}
		panes = append(panes, m.renderWidgetPane(i, w, paneWidth))
	}

	if len(panes) == 0 {
		sections = append(sections, mutedStyle.Render("All widgets hidden"))
	} else {
		sections = append(sections, m.layoutPanes(panes))
	}

	if len(hidden) > 0 {
		sections = append(sections, mutedStyle.Render("Hidden: "+strings.Join(hidden, ", ")))
	}
	if m.stopped {
		sections = append(sections, failedStyle.Render("✗ Polling stopped"))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// layoutPanes wraps panes into rows that fit the terminal width
func (m Model) layoutPanes(panes []string) string {
	perRow := m.width / (paneWidth + 1)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(panes); start += perRow {
		end := min(start+perRow, len(panes))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panes[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
