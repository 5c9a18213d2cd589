package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/treepicker/cmd/treepicker/internal/config"
	"github.com/go-drift/treepicker/cmd/treepicker/internal/session"
	"github.com/go-drift/treepicker/cmd/treepicker/internal/treefile"
	tperrors "github.com/go-drift/treepicker/pkg/errors"
	"github.com/go-drift/treepicker/pkg/selection"
	"github.com/go-drift/treepicker/pkg/tree"
)

const countries = `version: v1.0.0
nodes:
  - id: uk
    label: United Kingdom
    children:
      - {id: london, label: London}
      - {id: birmingham, label: Birmingham}
`

func newSession(t *testing.T, mode config.Mode, policy selection.Policy, initial ...string) *session.Session {
	t.Helper()
	doc, err := treefile.Parse("countries.yaml", []byte(countries), 0)
	require.NoError(t, err)
	s, err := session.New(doc, &config.Resolved{Mode: mode, Policy: policy, MaxDepth: tree.DefaultMaxDepth}, initial)
	require.NoError(t, err)
	return s
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func TestRenderRows(t *testing.T) {
	s := newSession(t, config.ModeMulti, selection.LeafOnly, "birmingham")
	got := RenderRows(s.Picker.Rows(), 1, PlainStyles())
	want := strings.Join([]string{
		"      United Kingdom/",
		">   [ ] London",
		"    [x] Birmingham",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestMark(t *testing.T) {
	s := newSession(t, config.ModeOptional, selection.LeafOnly, "uk")
	rows := s.Picker.Rows()
	assert.Equal(t, "[*]", Mark(rows[0]), "externally selected region")
	assert.Equal(t, "[ ]", Mark(rows[1]))
}

func TestRenderSummary(t *testing.T) {
	assert.Equal(t, "Cities: London", RenderSummary("Cities", "London", PlainStyles()))
}

func TestBrowseOpenToggleClose(t *testing.T) {
	s := newSession(t, config.ModeMulti, selection.Cascading)
	m := NewModel(s, PlainStyles())

	assert.NotContains(t, m.View(), "London", "rows are hidden while closed")

	m = apply(t, m, runes("j"))
	assert.Equal(t, 0, m.Cursor(), "navigation is ignored while closed")

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, s.Picker.IsOpen())
	assert.Contains(t, m.View(), "London")

	m = apply(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"birmingham", "london", "uk"}, s.Values())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("x"))
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, []string{"birmingham", "uk"}, s.Values())
	assert.True(t, s.Picker.IsOpen(), "multi picker stays open")

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, s.Picker.IsOpen())
}

func TestBrowseRejectedToggleShowsStatus(t *testing.T) {
	s := newSession(t, config.ModeSingle, selection.LeafOnly)
	m := NewModel(s, PlainStyles())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Contains(t, m.View(), "United Kingdom cannot be selected")
	assert.Equal(t, []string{"london"}, s.Values())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last row")
	assert.Equal(t, []string{"birmingham"}, s.Values())
	assert.False(t, s.Picker.IsOpen(), "single picker closes after a selection")
}

func TestBrowseQuit(t *testing.T) {
	m := NewModel(newSession(t, config.ModeMulti, selection.AllNodes), PlainStyles())
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "", next.View())
}

type explodingPicker struct {
	session.Picker
}

func (explodingPicker) Toggle(*treefile.Node) bool { panic("toggle exploded") }

type panicRecorder struct {
	panics []*tperrors.PanicError
}

func (r *panicRecorder) HandleError(*tperrors.PickerError)    {}
func (r *panicRecorder) HandlePanic(err *tperrors.PanicError) { r.panics = append(r.panics, err) }

func TestBrowseRecoversPickerPanic(t *testing.T) {
	rec := &panicRecorder{}
	old := tperrors.DefaultHandler
	tperrors.SetHandler(rec)
	t.Cleanup(func() { tperrors.SetHandler(old) })

	s := newSession(t, config.ModeMulti, selection.AllNodes)
	s.Picker = explodingPicker{s.Picker}
	m := NewModel(s, PlainStyles())

	require.NotPanics(t, func() {
		m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeySpace})
	})
	require.Len(t, rec.panics, 1)
	assert.Equal(t, "view.Update", rec.panics[0].Op)
	assert.Equal(t, "toggle exploded", rec.panics[0].Value)
	assert.Empty(t, s.Values())

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor(), "the model keeps working after a recovered panic")
}
