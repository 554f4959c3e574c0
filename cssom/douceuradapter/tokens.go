package douceuradapter

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// tokens is a token stream with one token lookahead. Comments are removed
// on creation; whitespace tokens are kept, as they are significant in
// selectors.
type tokens struct {
	toks []*scanner.Token
	pos  int
}

func tokenize(text string) (*tokens, error) {
	s := scanner.New(text)
	ts := &tokens{}
	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenEOF:
			return ts, nil
		case scanner.TokenError:
			return nil, syntaxError("%s at %d:%d", t.Value, t.Line, t.Column)
		case scanner.TokenComment, scanner.TokenBOM:
			continue
		}
		ts.toks = append(ts.toks, t)
	}
}

// peek returns the current token or nil at the end of the stream.
func (ts *tokens) peek() *scanner.Token {
	if ts.pos >= len(ts.toks) {
		return nil
	}
	return ts.toks[ts.pos]
}

// next returns the current token and advances.
func (ts *tokens) next() *scanner.Token {
	t := ts.peek()
	if t != nil {
		ts.pos++
	}
	return t
}

// skipSpace skips whitespace and tells if there was any.
func (ts *tokens) skipSpace() bool {
	skipped := false
	for t := ts.peek(); t != nil && t.Type == scanner.TokenS; t = ts.peek() {
		ts.pos++
		skipped = true
	}
	return skipped
}

func (ts *tokens) atEnd() bool {
	return ts.peek() == nil
}

// isChar tests for a delimiter token.
func isChar(t *scanner.Token, c string) bool {
	return t != nil && t.Type == scanner.TokenChar && t.Value == c
}

func isIdent(t *scanner.Token, name string) bool {
	return t != nil && t.Type == scanner.TokenIdent && strings.EqualFold(t.Value, name)
}

// unquote removes the quotes of a string token and resolves escaped
// characters.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
