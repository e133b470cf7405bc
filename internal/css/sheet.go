package css

import "strings"

// ItemType identifies a top-level stylesheet item.
type ItemType int

const (
	// RuleItem is a "selector { declarations }" block.
	RuleItem ItemType = iota
	// CommentItem is a top-level comment.
	CommentItem
	// AtRuleItem is an at-rule kept verbatim, including any nested block.
	AtRuleItem
	// StrayItem is text that does not form a rule, such as a dangling "}".
	StrayItem
)

// Item is one top-level piece of a stylesheet.
type Item struct {
	Type ItemType
	// Selector is the compacted prelude of a rule.
	Selector string
	// Body holds the tokens between the braces of a rule.
	Body []Token
	// Text is the verbatim source of the item.
	Text string
	// Start and End delimit the item in the source.
	Start, End int
	// Open and Close are the offsets of a rule's braces. Close is -1 when the
	// block runs to the end of the input without a closing brace.
	Open, Close int
	// PreludeComments are comments found between the selector and the brace.
	PreludeComments []string
}

// Closed reports whether a rule block has a closing brace.
func (it Item) Closed() bool {
	return it.Close >= 0
}

// Sheet is the top-level structure of a stylesheet.
type Sheet struct {
	Source string
	Items  []Item
}

// ParseSheet splits src into top-level items. Nested braces, parentheses and
// strings are respected; unbalanced input is handled best-effort: an unclosed
// block extends to the end of the input.
func ParseSheet(src string) Sheet {
	tokens := Tokenize(src)
	sheet := Sheet{Source: src}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case Whitespace:
			i++
		case Comment:
			sheet.Items = append(sheet.Items, Item{
				Type: CommentItem, Text: tok.Text, Start: tok.Offset, End: tok.End(), Open: -1, Close: -1,
			})
			i++
		case AtKeyword:
			end := skipAtRule(tokens, i)
			sheet.Items = append(sheet.Items, span(src, tokens, i, end, AtRuleItem))
			i = end
		case CloseBrace, Semicolon:
			sheet.Items = append(sheet.Items, span(src, tokens, i, i+1, StrayItem))
			i++
		default:
			next, item := parseRule(src, tokens, i)
			sheet.Items = append(sheet.Items, item)
			i = next
		}
	}
	return sheet
}

// Rules returns the rule items of the sheet in source order.
func (s Sheet) Rules() []Item {
	var rules []Item
	for _, it := range s.Items {
		if it.Type == RuleItem {
			rules = append(rules, it)
		}
	}
	return rules
}

// FindRule returns the first top-level rule whose selector equals selector.
func (s Sheet) FindRule(selector string) (Item, bool) {
	for _, it := range s.Items {
		if it.Type == RuleItem && it.Selector == selector {
			return it, true
		}
	}
	return Item{}, false
}

func parseRule(src string, tokens []Token, start int) (int, Item) {
	i := start
	for i < len(tokens) && tokens[i].Kind != OpenBrace {
		if tokens[i].Kind == Semicolon || tokens[i].Kind == CloseBrace {
			// A prelude that never opens a block.
			return i, span(src, tokens, start, i, StrayItem)
		}
		i++
	}
	if i >= len(tokens) {
		return i, span(src, tokens, start, i, StrayItem)
	}

	open := i
	closeIdx := matchBrace(tokens, open)
	selector, comments := splitComments(tokens[start:open])
	item := Item{
		Type:            RuleItem,
		Selector:        Compact(selector),
		Start:           tokens[start].Offset,
		Open:            tokens[open].Offset,
		Close:           -1,
		PreludeComments: comments,
	}
	next := len(tokens)
	if closeIdx >= 0 {
		item.Body = tokens[open+1 : closeIdx]
		item.Close = tokens[closeIdx].Offset
		item.End = tokens[closeIdx].End()
		next = closeIdx + 1
	} else {
		item.Body = tokens[open+1:]
		item.End = len(src)
	}
	item.Text = src[item.Start:item.End]
	return next, item
}

// matchBrace returns the index of the brace closing tokens[open], or -1.
func matchBrace(tokens []Token, open int) int {
	depth := 0
	for j := open; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case OpenBrace:
			depth++
		case CloseBrace:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// skipAtRule returns the index just past the at-rule starting at tokens[start]:
// either its terminating semicolon or the end of its block.
func skipAtRule(tokens []Token, start int) int {
	for j := start + 1; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case Semicolon:
			return j + 1
		case OpenBrace:
			if closeIdx := matchBrace(tokens, j); closeIdx >= 0 {
				return closeIdx + 1
			}
			return len(tokens)
		}
	}
	return len(tokens)
}

func span(src string, tokens []Token, from, to int, typ ItemType) Item {
	start := tokens[from].Offset
	end := len(src)
	if to < len(tokens) {
		end = tokens[to].Offset
	}
	return Item{Type: typ, Text: src[start:end], Start: start, End: end, Open: -1, Close: -1}
}

func splitComments(tokens []Token) ([]Token, []string) {
	out := make([]Token, 0, len(tokens))
	var comments []string
	for _, t := range tokens {
		if t.Kind == Comment {
			comments = append(comments, t.Text)
			continue
		}
		out = append(out, t)
	}
	return out, comments
}

// Declaration is a "property: value" pair inside a rule body. ValueStart and
// ValueEnd delimit the trimmed value in the source.
type Declaration struct {
	Property   string
	Value      string
	ValueStart int
	ValueEnd   int
	// Comments lists comments that appeared before the property name.
	Comments []string
	// Terminated reports whether the declaration ends with a semicolon.
	Terminated bool
}

// BodyEntry is a declaration, a free-standing comment or a nested block in a
// rule body. Exactly one field is set.
type BodyEntry struct {
	Comment string
	Decl    *Declaration
	Nested  string
}

// Declarations splits a rule body on top-level semicolons. Segments without a
// colon, and segments with an empty property name, are skipped. Comments that
// are not followed by a declaration in the same segment become comment entries;
// nested blocks are returned verbatim.
func Declarations(body []Token) []BodyEntry {
	var entries []BodyEntry
	for _, seg := range splitSegments(body) {
		if seg.nested {
			if text := strings.TrimSpace(Join(seg.tokens)); text != "" {
				entries = append(entries, BodyEntry{Nested: text})
			}
			continue
		}
		entries = append(entries, parseSegment(seg.tokens, seg.terminated)...)
	}
	return entries
}

type segment struct {
	tokens     []Token
	terminated bool
	nested     bool
}

func splitSegments(body []Token) []segment {
	var segs []segment
	depth := 0
	start := 0
	for i, t := range body {
		switch t.Kind {
		case OpenParen, OpenBracket, OpenBrace:
			depth++
		case CloseParen, CloseBracket:
			if depth > 0 {
				depth--
			}
		case CloseBrace:
			if depth > 0 {
				depth--
			}
			if depth == 0 && hasKind(body[start:i], OpenBrace) {
				segs = append(segs, segment{tokens: body[start : i+1], nested: true})
				start = i + 1
			}
		case Semicolon:
			if depth == 0 {
				segs = append(segs, segment{tokens: body[start:i], terminated: true})
				start = i + 1
			}
		}
	}
	if start < len(body) {
		segs = append(segs, segment{tokens: body[start:], nested: hasKind(body[start:], OpenBrace)})
	}
	return segs
}

func hasKind(tokens []Token, kind Kind) bool {
	for _, t := range tokens {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

func parseSegment(tokens []Token, terminated bool) []BodyEntry {
	colon := -1
	depth := 0
	for i, t := range tokens {
		switch t.Kind {
		case OpenParen, OpenBracket, OpenBrace:
			depth++
		case CloseParen, CloseBracket, CloseBrace:
			if depth > 0 {
				depth--
			}
		case Colon:
			if depth == 0 && colon < 0 {
				colon = i
			}
		}
		if colon >= 0 {
			break
		}
	}

	var comments []string
	var nameTokens []Token
	limit := len(tokens)
	if colon >= 0 {
		limit = colon
	}
	for _, t := range tokens[:limit] {
		if t.Kind == Comment {
			comments = append(comments, t.Text)
			continue
		}
		nameTokens = append(nameTokens, t)
	}

	name := Compact(nameTokens)
	if colon < 0 || name == "" {
		entries := make([]BodyEntry, 0, len(comments))
		for _, c := range comments {
			entries = append(entries, BodyEntry{Comment: c})
		}
		return entries
	}

	valueTokens := trimWhitespace(tokens[colon+1:])
	decl := &Declaration{
		Property:   name,
		Value:      Compact(valueTokens),
		Comments:   comments,
		Terminated: terminated,
	}
	if len(valueTokens) > 0 {
		decl.ValueStart = valueTokens[0].Offset
		decl.ValueEnd = valueTokens[len(valueTokens)-1].End()
	} else {
		decl.ValueStart = tokens[colon].End()
		decl.ValueEnd = decl.ValueStart
	}
	return []BodyEntry{{Decl: decl}}
}

func trimWhitespace(tokens []Token) []Token {
	start, end := 0, len(tokens)
	for start < end && tokens[start].Kind == Whitespace {
		start++
	}
	for end > start && tokens[end-1].Kind == Whitespace {
		end--
	}
	return tokens[start:end]
}
