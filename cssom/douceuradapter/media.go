package douceuradapter

import (
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cascade/cssom"
)

// ParseMediaQueries converts a comma-separated list of media queries, e.g.
// "screen and (min-width: 600px), print". An empty text results in an empty
// list.
func ParseMediaQueries(text string) ([]*cssom.MediaQuery, error) {
	ts, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	var queries []*cssom.MediaQuery
	ts.skipSpace()
	for !ts.atEnd() {
		q, err := mediaQuery(ts)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
		ts.skipSpace()
		if t := ts.next(); t != nil && !isChar(t, ",") {
			return nil, syntaxError("media query: unexpected %q", t.Value)
		}
		ts.skipSpace()
	}
	return queries, nil
}

func mediaQuery(ts *tokens) (*cssom.MediaQuery, error) {
	q := &cssom.MediaQuery{}
	if isIdent(ts.peek(), "not") {
		q.Negated = true
		ts.next()
		ts.skipSpace()
	} else if isIdent(ts.peek(), "only") {
		ts.next()
		ts.skipSpace()
	}
	if t := ts.peek(); t != nil && t.Type == scanner.TokenIdent && !isIdent(t, "and") {
		q.Type = strings.ToLower(t.Value)
		ts.next()
		ts.skipSpace()
	}
	for t := ts.peek(); t != nil && !isChar(t, ","); t = ts.peek() {
		switch {
		case isIdent(t, "and"):
			ts.next()
		case isChar(t, "("):
			ts.next()
			e, err := mediaExpression(ts)
			if err != nil {
				return nil, err
			}
			q.Expressions = append(q.Expressions, e)
		default:
			return nil, syntaxError("media query: unexpected %q", t.Value)
		}
		ts.skipSpace()
	}
	if q.Type == "" && len(q.Expressions) == 0 {
		return nil, syntaxError("empty media query")
	}
	return q, nil
}

// mediaExpression reads "feature)" or "feature: value)".
func mediaExpression(ts *tokens) (cssom.MediaExpression, error) {
	var e cssom.MediaExpression
	ts.skipSpace()
	f := ts.next()
	if f == nil || f.Type != scanner.TokenIdent {
		return e, syntaxError("media feature expected")
	}
	e.Feature = strings.ToLower(f.Value)
	ts.skipSpace()
	t := ts.next()
	if isChar(t, ")") {
		return e, nil
	}
	if !isChar(t, ":") {
		return e, syntaxError("media feature %s: ':' expected", e.Feature)
	}
	terms, err := parseTerms(ts, true)
	if err != nil {
		return e, err
	}
	if len(terms) != 1 {
		return e, syntaxError("media feature %s: single value expected", e.Feature)
	}
	e.Value = terms[0]
	return e, nil
}
