package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts the lines a diff adds and removes.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether the diff contains any modification.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified renders a line-oriented unified diff between two stylesheet revisions.
// Returns an empty string if the content is identical. Output carries no
// timestamps so two runs over the same input are byte-identical.
func Unified(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}

	diffs := lineDiffs(before, after)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// Summarize returns line counts for the changes between two revisions.
func Summarize(before, after string) Stats {
	var stats Stats
	if before == after {
		return stats
	}
	for _, d := range lineDiffs(before, after) {
		n := len(splitLines(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			stats.Removed += n
		case diffmatchpatch.DiffInsert:
			stats.Added += n
		}
	}
	return stats
}

func lineDiffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lineArray)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func countLines(text string) int {
	return len(splitLines(text))
}
