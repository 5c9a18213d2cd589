// Package view renders pickers in the terminal.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/treepicker/cmd/treepicker/internal/treefile"
	"github.com/go-drift/treepicker/pkg/picker"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8C8FA1", Dark: "#6C7086"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
)

// Styles controls how rows are drawn.
type Styles struct {
	Title      lipgloss.Style
	Summary    lipgloss.Style
	Row        lipgloss.Style
	Selected   lipgloss.Style
	Disabled   lipgloss.Style
	Cursor     lipgloss.Style
	Help       lipgloss.Style
	IndentUnit string
}

// DefaultStyles returns the colored terminal styles.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Summary:    lipgloss.NewStyle().Italic(true),
		Row:        lipgloss.NewStyle(),
		Selected:   lipgloss.NewStyle().Foreground(colorGreen),
		Disabled:   lipgloss.NewStyle().Foreground(colorMuted),
		Cursor:     lipgloss.NewStyle().Bold(true),
		Help:       lipgloss.NewStyle().Foreground(colorMuted),
		IndentUnit: "  ",
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:      plain,
		Summary:    plain,
		Row:        plain,
		Selected:   plain,
		Disabled:   plain,
		Cursor:     plain,
		Help:       plain,
		IndentUnit: "  ",
	}
}

// Mark returns the checkbox for a row: "[x]" selected, "[ ]" selectable,
// "[*]" selected but not selectable (set from outside), "   " otherwise.
func Mark(row picker.Row[*treefile.Node]) string {
	switch {
	case row.Selectable && row.Selected:
		return "[x]"
	case row.Selectable:
		return "[ ]"
	case row.Selected:
		return "[*]"
	default:
		return "   "
	}
}

// RenderRows draws rows one per line. cursor is the highlighted row index;
// pass -1 for none.
func RenderRows(rows []picker.Row[*treefile.Node], cursor int, st Styles) string {
	var sb strings.Builder
	for i, row := range rows {
		prefix := "  "
		if i == cursor {
			prefix = st.Cursor.Render(">") + " "
		}
		text := strings.Repeat(st.IndentUnit, row.Depth) + Mark(row) + " " + row.Label
		if !row.Leaf {
			text += "/"
		}
		style := st.Row
		switch {
		case row.Selected:
			style = st.Selected
		case !row.Selectable:
			style = st.Disabled
		}
		sb.WriteString(prefix)
		sb.WriteString(style.Render(text))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSummary draws the picker heading and its current selection.
func RenderSummary(title, summary string, st Styles) string {
	return st.Title.Render(title) + ": " + st.Summary.Render(summary)
}
