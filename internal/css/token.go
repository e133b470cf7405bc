// Package css holds the stylesheet tokenizer, the top-level sheet parser and
// the merge/override engine used to produce exported stylesheets.
package css

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// Kind classifies a token for the structural parser. Only the distinctions the
// parser needs are kept; everything else is Other.
type Kind int

const (
	Other Kind = iota
	Whitespace
	Comment
	AtKeyword
	String
	Ident
	Colon
	Semicolon
	Delim
	OpenBrace
	CloseBrace
	// OpenParen covers both "(" and function tokens such as "rgb(".
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	// Raw holds bytes the lexer refused to consume.
	Raw
)

// Token is a lossless slice of the source text.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Text)
}

// Tokenize splits src into tokens whose concatenated texts reproduce src exactly.
func Tokenize(src string) []Token {
	if src == "" {
		return nil
	}

	lexer := tcss.NewLexer(parse.NewInputString(src))
	tokens := make([]Token, 0, len(src)/4)
	offset := 0
	for offset < len(src) {
		tt, data := lexer.Next()
		if tt == tcss.ErrorToken || len(data) == 0 {
			break
		}
		text := string(data)
		tokens = append(tokens, Token{Kind: classify(tt, text), Text: text, Offset: offset})
		offset += len(text)
	}
	if offset < len(src) {
		tokens = append(tokens, Token{Kind: Raw, Text: src[offset:], Offset: offset})
	}
	return tokens
}

func classify(tt tcss.TokenType, text string) Kind {
	switch tt {
	case tcss.WhitespaceToken:
		return Whitespace
	case tcss.CommentToken:
		return Comment
	case tcss.AtKeywordToken:
		return AtKeyword
	case tcss.StringToken, tcss.BadStringToken:
		return String
	case tcss.IdentToken:
		return Ident
	case tcss.ColonToken:
		return Colon
	case tcss.SemicolonToken:
		return Semicolon
	case tcss.DelimToken:
		return Delim
	case tcss.LeftBraceToken:
		return OpenBrace
	case tcss.RightBraceToken:
		return CloseBrace
	case tcss.LeftParenthesisToken, tcss.FunctionToken:
		return OpenParen
	case tcss.RightParenthesisToken:
		return CloseParen
	case tcss.LeftBracketToken:
		return OpenBracket
	case tcss.RightBracketToken:
		return CloseBracket
	}
	if strings.HasPrefix(text, "/*") {
		return Comment
	}
	return Other
}

// Join concatenates the texts of tokens.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Compact concatenates tokens with every whitespace run collapsed to a single
// space and trims both ends. Strings and comments are left untouched.
func Compact(tokens []Token) string {
	var b strings.Builder
	pendingSpace := false
	for _, t := range tokens {
		if t.Kind == Whitespace {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
