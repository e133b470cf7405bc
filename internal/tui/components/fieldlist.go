package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FieldEntry is one editable row.
type FieldEntry struct {
	Label string
	Value string
	// Dim marks rows that have no effect with the current settings.
	Dim bool
}

// FieldList renders editable rows with a cursor.
type FieldList struct {
	entries []FieldEntry
	cursor  int

	LabelWidth int
	Cursor     lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
}

// NewFieldList constructs a field list. The cursor is clamped to the rows.
func NewFieldList(entries []FieldEntry, cursor int) FieldList {
	if cursor >= len(entries) {
		cursor = len(entries) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return FieldList{
		entries:    entries,
		cursor:     cursor,
		LabelWidth: 16,
		Cursor:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Normal:     lipgloss.NewStyle(),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Entries returns a copy of the rows.
func (f FieldList) Entries() []FieldEntry {
	clone := make([]FieldEntry, len(f.entries))
	copy(clone, f.entries)
	return clone
}

// View renders one row per line.
func (f FieldList) View() string {
	lines := make([]string, 0, len(f.entries))
	label := lipgloss.NewStyle().Width(f.LabelWidth)
	for i, entry := range f.entries {
		marker := "  "
		style := f.Normal
		if entry.Dim {
			style = f.Muted
		}
		if i == f.cursor {
			marker = "> "
			style = f.Cursor
		}
		lines = append(lines, style.Render(marker+label.Render(entry.Label)+entry.Value))
	}
	return strings.Join(lines, "\n")
}
