package douceuradapter

import (
	"image/color"
	"strings"
	"testing"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

func TestParseSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	for _, test := range []struct {
		in, out string
		spec    cssom.Specificity
	}{
		{"p", "p", cssom.Specificity{0, 0, 1}},
		{"*", "*", cssom.Specificity{0, 0, 0}},
		{"div#main.note", "div#main.note", cssom.Specificity{1, 1, 1}},
		{"ul > li + li", "ul > li + li", cssom.Specificity{0, 0, 3}},
		{"h1 ~ p  em", "h1 ~ p em", cssom.Specificity{0, 0, 3}},
		{"a[href^='http']", `a[href^="http"]`, cssom.Specificity{0, 1, 1}},
		{"li:first-child", "li:first-child", cssom.Specificity{0, 1, 1}},
		{"p::first-line", "p::first-line", cssom.Specificity{0, 0, 2}},
	} {
		sel, err := ParseSelector(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.out, sel.String(), test.in)
		assert.Equal(t, test.spec, sel.Specificity(), test.in)
	}
}

func TestParseSelectorParts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	sel, err := ParseSelector("ol > LI.Item:nth-child(2n+1)::before")
	require.NoError(t, err)
	require.Len(t, sel.Steps, 2)
	assert.Equal(t, cssom.Child, sel.Steps[1].Combinator)
	key := sel.Last()
	assert.Equal(t, "li", key.ElementName())
	assert.Equal(t, "Item", key.ClassName())
	assert.Equal(t, cssom.PseudoBefore, sel.PseudoElement())
	var nth cssom.PseudoClass
	for _, p := range key.Parts {
		if pc, ok := p.(cssom.PseudoClass); ok {
			nth = pc
		}
	}
	assert.Equal(t, "nth-child", nth.Name)
	assert.Equal(t, 2, nth.A)
	assert.Equal(t, 1, nth.B)
	//
	sel, err = ParseSelector("p:after")
	require.NoError(t, err)
	assert.Equal(t, cssom.PseudoAfter, sel.PseudoElement())
}

func TestInvalidSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	for _, in := range []string{"", "p >", "a[href", "p:nth-child(x)", "li::no-such-thing", "#"} {
		_, err := ParseSelector(in)
		assert.ErrorIs(t, err, ErrSyntax, in)
	}
}

func TestParseValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	terms, err := ParseValue(`bold 12px/1.5 "Gill Sans", serif`)
	require.NoError(t, err)
	require.Len(t, terms, 5)
	assert.Equal(t, cssom.NewIdent("bold"), terms[0])
	assert.Equal(t, cssom.NewLength(12, cssom.UnitPX), terms[1])
	assert.Equal(t, cssom.OpSlash, terms[2].Operator())
	assert.Equal(t, 1.5, terms[2].Value())
	assert.Equal(t, "Gill Sans", terms[3].Value())
	assert.Equal(t, cssom.OpComma, terms[4].Operator())
	//
	terms, err = ParseValue("-2em 50% 0 #f00 url('a.png') rgb(0, 128, 255)")
	require.NoError(t, err)
	require.Len(t, terms, 6)
	assert.Equal(t, cssom.NewLength(-2, cssom.UnitEM), terms[0])
	assert.Equal(t, cssom.NewPercent(50), terms[1])
	assert.Equal(t, cssom.NewInteger(0), terms[2])
	assert.Equal(t, cssom.NewColor(color.RGBA{R: 255, A: 255}), terms[3])
	assert.Equal(t, cssom.NewURI("a.png"), terms[4])
	fn, ok := terms[5].(cssom.Function)
	require.True(t, ok)
	assert.Equal(t, "rgb", fn.Name)
	require.Len(t, fn.Args, 3)
	assert.Equal(t, cssom.OpComma, fn.Args[2].Operator())
	//
	for _, in := range []string{"", "12zz", "rgb(1, 2", "#ggg", "1px )"} {
		_, err = ParseValue(in)
		assert.ErrorIs(t, err, ErrSyntax, in)
	}
}

func TestParseMediaQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	qs, err := ParseMediaQueries("screen and (min-width: 600px), not print, (color)")
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, "screen", qs[0].Type)
	require.Len(t, qs[0].Expressions, 1)
	assert.Equal(t, "min-width", qs[0].Expressions[0].Feature)
	assert.Equal(t, cssom.NewLength(600, cssom.UnitPX), qs[0].Expressions[0].Value)
	assert.True(t, qs[1].Negated)
	assert.Equal(t, "print", qs[1].Type)
	assert.Equal(t, "", qs[2].Type)
	assert.Nil(t, qs[2].Expressions[0].Value)
	//
	screen := cssom.NewMedia("screen")
	assert.True(t, cssom.MatchesQueries(screen, qs[1:2]))
	qs, err = ParseMediaQueries("print")
	require.NoError(t, err)
	assert.False(t, cssom.MatchesQueries(screen, qs))
	//
	qs, err = ParseMediaQueries("")
	require.NoError(t, err)
	assert.Empty(t, qs)
	_, err = ParseMediaQueries("screen and (min-width 600px)")
	assert.ErrorIs(t, err, ErrSyntax)
}

const sampleCSS = `
@import url("other.css");
body { margin: 0; color: black }
p.note, p:hover, p:nosuchclass { color: red !important; width: 12zz }
@media print {
  p { display: none }
}
@font-face { font-family: x }
`

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	sheet, err := Parse(cssom.OriginAuthor, sampleCSS)
	require.NotNil(t, sheet)
	assert.Equal(t, cssom.OriginAuthor, sheet.Origin)
	require.Len(t, sheet.Rules, 3)
	//
	body := sheet.Rules[0].(*cssom.RuleSet)
	require.Len(t, body.Declarations, 2)
	assert.Equal(t, "margin", body.Declarations[0].Property)
	//
	note := sheet.Rules[1].(*cssom.RuleSet)
	assert.Len(t, note.Selectors, 2, "unknown pseudo-class skipped")
	require.Len(t, note.Declarations, 1, "invalid width skipped")
	assert.True(t, note.Declarations[0].Important)
	//
	media := sheet.Rules[2].(*cssom.RuleMedia)
	assert.Equal(t, "print", media.Queries[0].Type)
	assert.Len(t, media.Rules, 1)
	//
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	decls, err := ParseDeclarations("margin: 1px 2px; COLOR: red")
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "color", decls[1].Property)
	assert.Equal(t, 2, decls[0].Len())
}

const sampleHTML = `<html><head>
<style>p { color: red }</style>
<style media="print">h1 { display: none } @media screen { h2 { color: blue } }</style>
</head><body><style>div { margin: 0 }</style><p>Hello</p></body></html>`

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(sampleHTML))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 3)
	_, ok := sheets[0].Rules[0].(*cssom.RuleSet)
	assert.True(t, ok)
	guarded, ok := sheets[1].Rules[0].(*cssom.RuleMedia)
	require.True(t, ok, "rules of <style media=print> are guarded")
	assert.Equal(t, "print", guarded.Queries[0].Type)
	inner, ok := sheets[1].Rules[1].(*cssom.RuleMedia)
	require.True(t, ok)
	assert.Equal(t, "screen", inner.Queries[0].Type)
	require.Len(t, inner.Outer, 1, "nested media blocks keep the element's guard")
	assert.Equal(t, "print", inner.Outer[0].Type)
	assert.False(t, inner.Applies(cssom.NewMedia("screen")))
	assert.True(t, guarded.Applies(cssom.NewMedia("print")))
	assert.False(t, guarded.Applies(cssom.NewMedia("screen")))
	assert.Equal(t, "div { margin: 0; }", sheets[2].Rules[0].String())
}
