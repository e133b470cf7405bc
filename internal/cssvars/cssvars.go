// Package cssvars reads and rewrites custom properties inside the base and dark
// scope blocks of a theme stylesheet.
//
// Only the first top-level block of each scope is considered. A scope block
// without a closing brace is readable but is never written to.
package cssvars

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/toastlab/internal/css"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
)

const (
	// Prefix is shared by every variable the studio owns.
	Prefix = "--tl-"

	BaseSelector = ":root"
	DarkSelector = ".dark"
)

// Variable names.
const (
	Background  = "--tl-bg"
	Border      = "--tl-border"
	Foreground  = "--tl-fg"
	Muted       = "--tl-muted"
	Primary     = "--tl-primary"
	Radius      = "--tl-radius"
	BorderWidth = "--tl-border-width"
	Shadow      = "--tl-shadow"
	Width       = "--tl-width"
	Padding     = "--tl-padding"
	FontSize    = "--tl-font-size"
	Duration    = "--tl-duration"
	Gap         = "--tl-gap"
	Offset      = "--tl-offset"
	LoaderInset = "--tl-loader-inset"
	LoaderBG    = "--tl-loader-bg"
)

var colorKeys = map[string]bool{
	Background: true,
	Border:     true,
	Foreground: true,
	Muted:      true,
	Primary:    true,
}

// IsColorKey reports whether name is written per preview mode rather than globally.
func IsColorKey(name string) bool {
	return colorKeys[name]
}

// Get returns the value of name, looking in the dark scope first when mode is
// dark and falling back to the base scope. It returns "" when neither scope
// declares the variable.
func Get(src, name string, mode toast.PreviewMode) string {
	sheet := css.ParseSheet(src)
	if mode == toast.Dark {
		if value, ok := lookup(sheet, DarkSelector, name); ok {
			return value
		}
	}
	if value, ok := lookup(sheet, BaseSelector, name); ok {
		return value
	}
	return ""
}

// Scopes lists every custom property declared in the base and dark scopes.
func Scopes(src string) (base, dark map[string]string) {
	sheet := css.ParseSheet(src)
	return collect(sheet, BaseSelector), collect(sheet, DarkSelector)
}

// Set writes updates into src. Global variables always go to the base scope;
// color variables go to the scope matching mode. Existing declarations are
// replaced in place and missing ones are appended before the block's closing
// brace. Writes aimed at a missing or unclosed scope are dropped, as are
// updates whose name or value would break the surrounding block.
func Set(src string, updates map[string]string, mode toast.PreviewMode) string {
	if len(updates) == 0 {
		return src
	}

	trimmed := make(map[string]string, len(updates))
	names := make([]string, 0, len(updates))
	for name, value := range updates {
		value = strings.TrimSpace(value)
		if validName(name) && validValue(value) {
			trimmed[name] = value
			names = append(names, name)
		}
	}
	sort.Strings(names)
	updates = trimmed

	var base, dark []string
	for _, name := range names {
		if IsColorKey(name) && mode == toast.Dark {
			dark = append(dark, name)
			continue
		}
		base = append(base, name)
	}

	out := writeScope(src, BaseSelector, base, updates)
	return writeScope(out, DarkSelector, dark, updates)
}

func lookup(sheet css.Sheet, selector, name string) (string, bool) {
	rule, ok := sheet.FindRule(selector)
	if !ok {
		return "", false
	}

	value, found := "", false
	for _, entry := range css.Declarations(rule.Body) {
		if entry.Decl != nil && entry.Decl.Property == name {
			value = sheet.Source[entry.Decl.ValueStart:entry.Decl.ValueEnd]
			found = true
		}
	}
	return value, found
}

func collect(sheet css.Sheet, selector string) map[string]string {
	vars := make(map[string]string)
	rule, ok := sheet.FindRule(selector)
	if !ok {
		return vars
	}
	for _, entry := range css.Declarations(rule.Body) {
		if entry.Decl != nil && strings.HasPrefix(entry.Decl.Property, css.CustomPropertyPrefix) {
			vars[entry.Decl.Property] = sheet.Source[entry.Decl.ValueStart:entry.Decl.ValueEnd]
		}
	}
	return vars
}

type edit struct {
	start, end int
	text       string
}

func writeScope(src, selector string, names []string, updates map[string]string) string {
	if len(names) == 0 {
		return src
	}

	sheet := css.ParseSheet(src)
	rule, ok := sheet.FindRule(selector)
	if !ok || !rule.Closed() {
		return src
	}

	entries := css.Declarations(rule.Body)
	var edits []edit
	var missing []string
	for _, name := range names {
		replaced := false
		for _, entry := range entries {
			if entry.Decl == nil || entry.Decl.Property != name {
				continue
			}
			edits = append(edits, edit{start: entry.Decl.ValueStart, end: entry.Decl.ValueEnd, text: updates[name]})
			replaced = true
		}
		if !replaced {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		edits = append(edits, appendEdits(src, rule, entries, missing, updates)...)
	}

	// Apply back to front so earlier offsets stay valid. Ties keep list order,
	// which puts appended lines after a terminating semicolon at the same spot.
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start > edits[j].start })
	out := src
	for _, e := range edits {
		out = out[:e.start] + e.text + out[e.end:]
	}
	return out
}

func appendEdits(src string, rule css.Item, entries []css.BodyEntry, names []string, updates map[string]string) []edit {
	var lines strings.Builder
	for _, name := range names {
		lines.WriteString("  ")
		lines.WriteString(name)
		lines.WriteString(": ")
		lines.WriteString(updates[name])
		lines.WriteString(";\n")
	}

	pos := rule.Close
	for pos > rule.Open+1 && (src[pos-1] == ' ' || src[pos-1] == '\t') {
		pos--
	}
	text := lines.String()
	if src[pos-1] != '\n' {
		text = "\n" + text
	}

	edits := []edit{{start: pos, end: pos, text: text}}

	var last *css.Declaration
	for _, entry := range entries {
		if entry.Decl != nil {
			last = entry.Decl
		}
	}
	if last != nil && !last.Terminated {
		edits = append(edits, edit{start: last.ValueEnd, end: last.ValueEnd, text: ";"})
	}
	return edits
}

func validName(name string) bool {
	if !strings.HasPrefix(name, css.CustomPropertyPrefix) || len(name) == len(css.CustomPropertyPrefix) {
		return false
	}
	return !strings.ContainsAny(name, " \t\r\n;:{}()\"'/")
}

// validValue rejects values that would end the declaration or the block early.
func validValue(value string) bool {
	depth := 0
	for _, tok := range css.Tokenize(value) {
		switch tok.Kind {
		case css.OpenParen, css.OpenBracket:
			depth++
		case css.CloseParen, css.CloseBracket:
			depth--
			if depth < 0 {
				return false
			}
		case css.OpenBrace, css.CloseBrace, css.Raw:
			return false
		case css.Semicolon:
			if depth == 0 {
				return false
			}
		case css.String:
			if !strings.HasSuffix(tok.Text, tok.Text[:1]) || len(tok.Text) < 2 {
				return false
			}
		case css.Comment:
			if !strings.HasSuffix(tok.Text, "*/") || len(tok.Text) < 4 {
				return false
			}
		}
	}
	return depth == 0
}
