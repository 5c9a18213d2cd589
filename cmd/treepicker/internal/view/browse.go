package view

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/treepicker/cmd/treepicker/internal/session"
	tperrors "github.com/go-drift/treepicker/pkg/errors"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Close  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/close")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Toggle, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Open, k.Close, k.Toggle}, {k.Up, k.Down, k.Quit}}
}

// Model is the bubbletea model behind `treepicker browse`.
type Model struct {
	session *session.Session
	styles  Styles
	keys    keyMap
	help    help.Model
	cursor  int
	status  string

	quitting bool
}

// NewModel returns a browse model for s.
func NewModel(s *session.Session, st Styles) Model {
	return Model{
		session: s,
		styles:  st,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// Session returns the session the model drives.
func (m Model) Session() *session.Session {
	return m.session
}

// Cursor returns the highlighted row index.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles one message. A panic inside the picker is reported to the
// error handler and the message is dropped, leaving the model as it was.
func (m Model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	next = m
	defer tperrors.Recover("view.Update")

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.session.Picker
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		if p.IsOpen() {
			p.Dismiss()
		} else {
			p.Open()
		}
		m.status = ""
	case key.Matches(msg, m.keys.Close):
		p.Dismiss()
	case !p.IsOpen():
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(p.Rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		rows := p.Rows()
		if m.cursor < 0 || m.cursor >= len(rows) {
			return m, nil
		}
		row := rows[m.cursor]
		if !p.Toggle(row.Node) {
			m.status = row.Label + " cannot be selected"
		} else {
			m.status = ""
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	p := m.session.Picker
	var sb strings.Builder
	sb.WriteString(RenderSummary(p.Title(), p.Summary(), m.styles))
	sb.WriteString("\n\n")
	if p.IsOpen() {
		sb.WriteString(RenderRows(p.Rows(), m.cursor, m.styles))
		sb.WriteString("\n")
	}
	if m.status != "" {
		sb.WriteString(m.styles.Disabled.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
