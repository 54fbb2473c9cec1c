// Package tui provides an interactive browse view over a directory of goal
// documents.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goalworks/goalpost/pkg/goal"
)

// Loader produces the current set of goal documents plus any per-document
// load failures. The TUI calls it on startup, on manual reload, and when the
// watcher reports a file change.
type Loader func() ([]*goal.Document, []error)

// Model is the bubbletea model for the browse view.
type Model struct {
	load   Loader
	keys   KeyMap
	docs   []*goal.Document
	errs   []error
	cursor int
	width  int
	height int
}

// FileChangedMsg is sent by the watcher when a goal file changes on disk.
type FileChangedMsg struct{}

type reloadedMsg struct {
	docs []*goal.Document
	errs []error
}

// NewModel creates a browse model backed by the given loader.
func NewModel(load Loader) Model {
	return Model{load: load, keys: DefaultKeyMap()}
}

func (m Model) Init() tea.Cmd {
	return m.reload()
}

func (m Model) reload() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		docs, errs := load()
		return reloadedMsg{docs: docs, errs: errs}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case reloadedMsg:
		m.docs = msg.docs
		m.errs = msg.errs
		if m.cursor >= len(m.docs) {
			m.cursor = len(m.docs) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

	case FileChangedMsg:
		return m, m.reload()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.docs)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Reload):
			return m, m.reload()
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("goalpost"))
	b.WriteString(FooterStyle.Render(fmt.Sprintf("  %d goals", len(m.docs))))
	b.WriteString("\n\n")

	if len(m.docs) == 0 {
		b.WriteString(FooterStyle.Render("no goal documents loaded"))
		b.WriteString("\n")
	}

	for i, d := range m.docs {
		line := fmt.Sprintf("%s %s", statusIcon(d), d.Metadata.ShortTitle)
		if i == m.cursor {
			line = SelectedStyle.Render("> " + line)
		} else {
			line = "  " + statusStyle(d).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.docs) > 0 && m.cursor < len(m.docs) {
		b.WriteString("\n")
		b.WriteString(PanelBorderStyle.Render(m.detailView(m.docs[m.cursor])))
		b.WriteString("\n")
	}

	for _, err := range m.errs {
		b.WriteString(ErrorStyle.Render("! " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("↑/↓ move · r reload · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) detailView(d *goal.Document) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(DetailLabelStyle.Render(label))
		b.WriteString(DetailValueStyle.Render(value))
		b.WriteString("\n")
	}

	row("Title", d.Metadata.Title)
	row("Point of contact", d.Metadata.PointOfContact)
	row("Status", statusText(d))
	if d.Metadata.TrackingIssue != nil {
		row("Tracking issue", d.Metadata.TrackingIssue.URL())
	}
	if len(d.TaskOwners) > 0 {
		row("Task owners", strings.Join(d.TaskOwners, ", "))
	}

	if len(d.TeamAsks) > 0 {
		b.WriteString(DetailLabelStyle.Render("Team asks"))
		b.WriteString("\n")
		for i := range d.TeamAsks {
			ask := &d.TeamAsks[i]
			b.WriteString(DetailValueStyle.Render(
				fmt.Sprintf("  %s → %s", ask.AskDescription, strings.Join(ask.TeamNames(), ", "))))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func statusIcon(d *goal.Document) string {
	icon := IconProposed
	switch d.Metadata.Status.Acceptance {
	case goal.Accepted:
		icon = IconAccepted
	case goal.NotAccepted:
		icon = IconNotAccepted
	}
	if d.Metadata.Status.IsFlagship {
		icon += IconFlagship
	}
	return icon
}

func statusStyle(d *goal.Document) lipgloss.Style {
	switch d.Metadata.Status.Acceptance {
	case goal.Accepted:
		return AcceptedStyle
	case goal.NotAccepted:
		return NotAcceptedStyle
	default:
		return ProposedStyle
	}
}

func statusText(d *goal.Document) string {
	s := d.Metadata.Status
	text := s.Acceptance.String()
	if s.IsFlagship {
		text += " (flagship)"
	}
	if s.IsInvited {
		text += " (invited)"
	}
	return text
}
