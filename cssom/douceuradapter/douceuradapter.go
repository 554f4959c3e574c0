package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/cssom"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrSyntax is wrapped by all errors reporting CSS we cannot convert.
var ErrSyntax = errors.New("CSS syntax error")

func syntaxError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}

// Parse creates a stylesheet of a given origin from CSS text.
//
// If douceur cannot parse the text, Parse returns a nil stylesheet and the
// parser's error. Otherwise the stylesheet is returned together with the
// problems found while converting rules (combined with multierr), which
// are non-fatal: offending selectors, declarations and rules are skipped.
func Parse(origin cssom.Origin, text string) (*cssom.StyleSheet, error) {
	doc, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing stylesheet: %w", err)
	}
	return Wrap(origin, doc)
}

// Wrap converts a douceur stylesheet. See Parse for the handling of errors.
func Wrap(origin cssom.Origin, doc *css.Stylesheet) (*cssom.StyleSheet, error) {
	sheet := cssom.NewStyleSheet(origin)
	var errs error
	for _, r := range doc.Rules {
		switch {
		case r.Kind == css.QualifiedRule:
			rs, err := convertRuleSet(r)
			errs = multierr.Append(errs, err)
			if rs != nil {
				sheet.Add(rs)
			}
		case strings.EqualFold(r.Name, "@media"):
			rm, err := convertMedia(r)
			errs = multierr.Append(errs, err)
			if rm != nil {
				sheet.Add(rm)
			}
		default:
			tracer().Debugf("skipping at-rule %s", r.Name)
		}
	}
	return sheet, errs
}

// convertRuleSet converts a qualified rule. It returns nil if none of the
// rule's selectors can be converted.
func convertRuleSet(r *css.Rule) (*cssom.RuleSet, error) {
	var errs error
	rs := &cssom.RuleSet{}
	for _, s := range r.Selectors {
		sel, err := ParseSelector(s)
		if err != nil {
			tracer().Debugf("skipping selector: %v", err)
			errs = multierr.Append(errs, err)
			continue
		}
		rs.Selectors = append(rs.Selectors, sel)
	}
	if len(rs.Selectors) == 0 {
		return nil, errs
	}
	decls, err := convertDeclarations(r.Declarations)
	rs.Declarations = decls
	return rs, multierr.Append(errs, err)
}

func convertDeclarations(ds []*css.Declaration) ([]*cssom.Declaration, error) {
	var errs error
	decls := make([]*cssom.Declaration, 0, len(ds))
	for _, d := range ds {
		terms, err := ParseValue(d.Value)
		if err != nil {
			err = fmt.Errorf("property %s: %w", d.Property, err)
			tracer().Debugf("skipping declaration: %v", err)
			errs = multierr.Append(errs, err)
			continue
		}
		decls = append(decls, cssom.NewDeclaration(d.Property, d.Important, terms...))
	}
	return decls, errs
}

func convertMedia(r *css.Rule) (*cssom.RuleMedia, error) {
	queries, err := ParseMediaQueries(r.Prelude)
	if err != nil {
		return nil, err
	}
	var errs error
	rm := &cssom.RuleMedia{Queries: queries}
	for _, inner := range r.Rules {
		if inner.Kind != css.QualifiedRule {
			tracer().Debugf("skipping %s nested in @media", inner.Name)
			continue
		}
		rs, err := convertRuleSet(inner)
		errs = multierr.Append(errs, err)
		if rs != nil {
			rm.Rules = append(rm.Rules, rs)
		}
	}
	return rm, errs
}

// ParseDeclarations converts a declaration block without braces, e.g. the
// value of a style attribute.
func ParseDeclarations(text string) ([]*cssom.Declaration, error) {
	// douceur drops a final declaration not terminated by ';' or '}'
	if text = strings.TrimSpace(text); text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	ds, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("parsing declarations: %w", err)
	}
	return convertDeclarations(ds)
}

// --- HTML documents --------------------------------------------------------

// ExtractStyleElements searches an HTML parse tree for embedded <style>
// elements and returns their content as author stylesheets, in document
// order. A media attribute of a style element guards its rules with the
// attribute's media queries.
//
// Style elements which cannot be parsed are left out; problems are
// returned combined with multierr.
func ExtractStyleElements(htmldoc *html.Node) ([]*cssom.StyleSheet, error) {
	var sheets []*cssom.StyleSheet
	var errs error
	var visit func(h *html.Node)
	visit = func(h *html.Node) {
		if h.Type == html.ElementNode && h.DataAtom == atom.Style {
			sheet, err := styleElement(h)
			errs = multierr.Append(errs, err)
			if sheet != nil {
				sheets = append(sheets, sheet)
			}
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			visit(ch)
		}
	}
	if htmldoc != nil {
		visit(htmldoc)
	}
	return sheets, errs
}

func styleElement(h *html.Node) (*cssom.StyleSheet, error) {
	var text strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			text.WriteString(ch.Data)
		}
	}
	sheet, err := Parse(cssom.OriginAuthor, text.String())
	if sheet == nil {
		return nil, err
	}
	for _, a := range h.Attr {
		if a.Namespace != "" || !strings.EqualFold(a.Key, "media") {
			continue
		}
		queries, qerr := ParseMediaQueries(a.Val)
		if qerr != nil {
			return nil, multierr.Append(err, qerr)
		}
		sheet = guard(sheet, queries)
	}
	return sheet, err
}

// guard puts the rules of a stylesheet under media queries. Top-level
// rule-sets are moved into a media block, media blocks get the queries as
// their outer guard.
func guard(sheet *cssom.StyleSheet, queries []*cssom.MediaQuery) *cssom.StyleSheet {
	guarded := cssom.NewStyleSheet(sheet.Origin)
	for _, r := range sheet.Rules {
		switch rule := r.(type) {
		case *cssom.RuleSet:
			guarded.Add(&cssom.RuleMedia{Queries: queries, Rules: []*cssom.RuleSet{rule}})
		case *cssom.RuleMedia:
			inner := *rule
			inner.Outer = queries
			guarded.Add(&inner)
		default:
			guarded.Add(r)
		}
	}
	return guarded
}
