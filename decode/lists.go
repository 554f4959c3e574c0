package decode

import (
	"strings"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/style"
)

// spaceSeparated is true if none of the terms carries a separator.
func spaceSeparated(terms []cssom.Term) bool {
	for _, t := range terms {
		if t.Operator() != cssom.OpNone {
			return false
		}
	}
	return true
}

var textDecorations = kw("underline", "overline", "line-through", "blink")

// decodeTextDecoration decodes "none" or a set of decoration lines, e.g.
// "underline overline". Every line may occur once.
func decodeTextDecoration(d *cssom.Declaration, out *Assignments) bool {
	if d.Len() == 1 && genericTermIdent(d.Terms[0], d.Property, none, true, out) {
		return true
	}
	if !spaceSeparated(d.Terms) {
		return false
	}
	seen := make(map[string]bool, d.Len())
	items := make([]cssom.Term, d.Len())
	for i, t := range d.Terms {
		id, ok := identOf(t)
		if !ok || !textDecorations.has(id) || seen[id] {
			return false
		}
		seen[id] = true
		items[i] = NewPropertyValue(style.Property(id), nil)
	}
	out.Set(d.Property, style.ValueList, cssom.NewList(items...))
	return true
}

var contentFunctions = kw("counter", "counters", "attr")
var contentQuotes = kw("open-quote", "close-quote", "no-open-quote", "no-close-quote")

// decodeContent decodes generated content: "normal", "none", or a sequence of
// strings, URIs, quotes and counter/attr functions.
func decodeContent(d *cssom.Declaration, out *Assignments) bool {
	if d.Len() == 1 && genericTermIdent(d.Terms[0], d.Property, kw("normal", "none"), true, out) {
		return true
	}
	if !spaceSeparated(d.Terms) {
		return false
	}
	items := make([]cssom.Term, d.Len())
	for i, t := range d.Terms {
		switch v := t.(type) {
		case cssom.String:
			items[i] = NewPropertyValue(style.ValueString, v)
		case cssom.URI:
			items[i] = NewPropertyValue(style.ValueURI, v)
		case cssom.Function:
			if !contentFunctions.has(v.Name) || len(v.Args) == 0 {
				return false
			}
			items[i] = NewPropertyValue(style.Property(v.Name), v)
		case cssom.Ident:
			id := strings.ToLower(v.Name)
			if !contentQuotes.has(id) {
				return false
			}
			items[i] = NewPropertyValue(style.Property(id), nil)
		default:
			return false
		}
	}
	out.Set(d.Property, style.ValueList, cssom.NewList(items...))
	return true
}

// decodeQuotes decodes "none" or pairs of open/close quote strings.
func decodeQuotes(d *cssom.Declaration, out *Assignments) bool {
	if d.Len() == 1 && genericTermIdent(d.Terms[0], d.Property, none, true, out) {
		return true
	}
	if d.Len()%2 != 0 || !spaceSeparated(d.Terms) {
		return false
	}
	items := make([]cssom.Term, d.Len())
	for i, t := range d.Terms {
		s, ok := t.(cssom.String)
		if !ok {
			return false
		}
		items[i] = cssom.NewString(s.Text)
	}
	out.Set(d.Property, style.ValueList, cssom.NewList(items...))
	return true
}

// decodeCounters creates a decoder for counter-reset and counter-increment:
// "none" or a sequence of counter names, each optionally followed by an
// integer. Missing integers default to dflt. Every counter results in a list
// item with the counter name as marker.
func decodeCounters(dflt int) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		if d.Len() == 1 && genericTermIdent(d.Terms[0], d.Property, none, true, out) {
			return true
		}
		if !spaceSeparated(d.Terms) {
			return false
		}
		var items []cssom.Term
		for i := 0; i < d.Len(); i++ {
			id, ok := d.Terms[i].(cssom.Ident)
			if !ok || isCSSWide(strings.ToLower(id.Name)) || strings.EqualFold(id.Name, "none") {
				return false
			}
			n := dflt
			if i+1 < d.Len() {
				if v, ok := d.Terms[i+1].(cssom.Integer); ok {
					n = v.Number
					i++
				}
			}
			items = append(items, NewPropertyValue(style.Property(id.Name), cssom.NewInteger(n)))
		}
		out.Set(d.Property, style.ValueList, cssom.NewList(items...))
		return true
	}
}
