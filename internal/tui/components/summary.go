package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/toastlab/pkg/diff"
)

// SummaryData describes the state of the session for the status panel.
type SummaryData struct {
	Theme   string
	Policy  string
	Version uint64
	Edited  bool
	// Stats compares the working stylesheet with the catalog copy.
	Stats     diff.Stats
	LastError string
}

// Summary renders a textual session summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	lines := []string{fmt.Sprintf("Theme: %s (%s)", s.data.Theme, s.data.Policy)}

	switch {
	case s.data.Edited && s.data.Stats.Changed():
		lines = append(lines, fmt.Sprintf("Stylesheet: +%d -%d lines vs preset", s.data.Stats.Added, s.data.Stats.Removed))
	case s.data.Edited:
		lines = append(lines, "Stylesheet: edited")
	default:
		lines = append(lines, "Stylesheet: matches preset")
	}
	lines = append(lines, fmt.Sprintf("Revision: %d", s.data.Version))

	if s.data.LastError != "" {
		lines = append(lines, "✗ "+s.data.LastError)
	}
	return strings.Join(lines, "\n")
}
