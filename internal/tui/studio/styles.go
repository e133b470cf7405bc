package studio

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// cssColor converts a hex color to a terminal color. Other CSS colors have no
// terminal equivalent.
func cssColor(value string) (lipgloss.TerminalColor, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return lipgloss.NoColor{}, false
	}
	switch len(value) {
	case 4, 7:
		if _, err := strconv.ParseUint(value[1:], 16, 32); err != nil {
			return lipgloss.NoColor{}, false
		}
		return lipgloss.Color(value), true
	}
	return lipgloss.NoColor{}, false
}

// columns maps a CSS pixel width onto terminal columns.
func columns(width string) int {
	px, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(width), "px"))
	if err != nil || px <= 0 {
		return 38
	}
	return min(max(px/10, 24), 72)
}
