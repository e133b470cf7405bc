package css

import "strings"

// Important is the forced priority marker appended to exported declarations.
const Important = "!important"

// CustomPropertyPrefix marks declarations that never receive Important.
const CustomPropertyPrefix = "--"

type entryKind int

const (
	entryProperty entryKind = iota
	entryComment
	entryNested
)

type bodyEntry struct {
	kind entryKind
	text string
}

type ruleGroup struct {
	selector string
	entries  []bodyEntry
	values   map[string]string
	seen     map[string]bool
}

type outputItem struct {
	verbatim string
	group    *ruleGroup
}

// Canonicalize merges repeated selectors into one block per selector, keeps the
// last value written for each property and marks every non-custom declaration
// with Important. Comments and at-rule blocks such as @keyframes are copied
// through unchanged in their original order. The result is a fixed point:
// canonicalizing it again returns it unchanged.
func Canonicalize(src string) string {
	sheet := ParseSheet(src)

	var items []outputItem
	groups := make(map[string]*ruleGroup)

	for _, it := range sheet.Items {
		switch it.Type {
		case CommentItem, AtRuleItem:
			text := it.Text
			if it.End == len(src) {
				// An unterminated item swallows the trailing newline added below.
				text = strings.TrimRight(text, " \t\r\n")
			}
			items = append(items, outputItem{verbatim: text})
		case RuleItem:
			for _, c := range it.PreludeComments {
				items = append(items, outputItem{verbatim: c})
			}
			if it.Selector == "" {
				continue
			}
			group, ok := groups[it.Selector]
			if !ok {
				group = &ruleGroup{
					selector: it.Selector,
					values:   make(map[string]string),
					seen:     make(map[string]bool),
				}
				groups[it.Selector] = group
				items = append(items, outputItem{group: group})
			}
			group.merge(Declarations(it.Body))
		}
	}

	if len(items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.group == nil {
			parts = append(parts, item.verbatim)
			continue
		}
		parts = append(parts, item.group.render())
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func (g *ruleGroup) merge(entries []BodyEntry) {
	for _, e := range entries {
		switch {
		case e.Decl != nil:
			for _, c := range e.Decl.Comments {
				g.add(entryComment, c)
			}
			value, ok := normalizeValue(e.Decl.Property, e.Decl.Value)
			if !ok {
				continue
			}
			if !g.seen["p:"+e.Decl.Property] {
				g.seen["p:"+e.Decl.Property] = true
				g.entries = append(g.entries, bodyEntry{kind: entryProperty, text: e.Decl.Property})
			}
			g.values[e.Decl.Property] = value
		case e.Nested != "":
			g.add(entryNested, e.Nested)
		case e.Comment != "":
			g.add(entryComment, e.Comment)
		}
	}
}

func (g *ruleGroup) add(kind entryKind, text string) {
	key := "c:" + text
	if kind == entryNested {
		key = "n:" + text
	}
	if g.seen[key] {
		return
	}
	g.seen[key] = true
	g.entries = append(g.entries, bodyEntry{kind: kind, text: text})
}

func (g *ruleGroup) render() string {
	var b strings.Builder
	b.WriteString(g.selector)
	b.WriteString(" {\n")
	for _, e := range g.entries {
		b.WriteString("  ")
		switch e.kind {
		case entryProperty:
			b.WriteString(e.text)
			b.WriteString(": ")
			b.WriteString(g.values[e.text])
			b.WriteString(";")
		default:
			b.WriteString(e.text)
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// normalizeValue strips every trailing priority marker and re-applies one unless
// the property is a custom property. Empty values are only kept for custom
// properties.
func normalizeValue(property, value string) (string, bool) {
	value = StripImportant(value)
	custom := strings.HasPrefix(property, CustomPropertyPrefix)
	if value == "" && !custom {
		return "", false
	}
	if custom {
		return value, true
	}
	return value + " " + Important, true
}

// StripImportant removes every "!important" marker at the end of a
// declaration value, ignoring case and whitespace between "!" and the keyword.
// Trailing comments do not hide a marker; they are kept after the value.
func StripImportant(value string) string {
	var tail []string
	for {
		value = strings.TrimSpace(value)
		if stripped, ok := trimImportant(value); ok {
			value = stripped
			continue
		}
		if rest, comment, ok := trimComment(value); ok {
			value = rest
			tail = append([]string{comment}, tail...)
			continue
		}
		break
	}
	if len(tail) == 0 {
		return value
	}
	if value == "" {
		return strings.Join(tail, " ")
	}
	return value + " " + strings.Join(tail, " ")
}

func trimImportant(value string) (string, bool) {
	bang := strings.LastIndexByte(value, '!')
	if bang < 0 || !strings.EqualFold(strings.TrimSpace(value[bang+1:]), "important") {
		return value, false
	}
	return value[:bang], true
}

func trimComment(value string) (string, string, bool) {
	if !strings.HasSuffix(value, "*/") {
		return value, "", false
	}
	open := strings.LastIndex(value[:len(value)-2], "/*")
	if open < 0 {
		return value, "", false
	}
	return value[:open], value[open:], true
}
