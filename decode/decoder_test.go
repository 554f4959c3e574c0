package decode

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decl(prop string, terms ...cssom.Term) *cssom.Declaration {
	return cssom.NewDeclaration(prop, false, terms...)
}

func px(n float64) cssom.Term {
	return cssom.NewLength(n, cssom.UnitPX)
}

func id(name string) cssom.Term {
	return cssom.NewIdent(name)
}

func comma(t cssom.Term) cssom.Term {
	return t.WithOperator(cssom.OpComma)
}

var red = cssom.NewColor(color.RGBA{R: 255, A: 255})

func TestMarginExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	tests := []struct {
		terms  []cssom.Term
		result [4]string // top, right, bottom, left
	}{
		{[]cssom.Term{px(1)}, [4]string{"1px", "1px", "1px", "1px"}},
		{[]cssom.Term{px(1), px(2)}, [4]string{"1px", "2px", "1px", "2px"}},
		{[]cssom.Term{px(1), px(2), px(3)}, [4]string{"1px", "2px", "3px", "2px"}},
		{[]cssom.Term{px(1), px(2), px(3), px(4)}, [4]string{"1px", "2px", "3px", "4px"}},
	}
	for i, test := range tests {
		a, err := dec.Decode(decl("margin", test.terms...))
		require.NoError(t, err, "test #%d", i)
		assert.Equal(t, 4, a.Len())
		for k, name := range edgeNames("margin", "") {
			assert.Equal(t, style.ValueLength, a.Property(name))
			assert.Equal(t, test.result[k], a.Value(name).String(), "test #%d, %s", i, name)
		}
	}
	a, err := dec.Decode(decl("margin", px(0), id("auto")))
	require.NoError(t, err)
	assert.Equal(t, style.Property("auto"), a.Property("margin-right"))
	assert.Nil(t, a.Value("margin-right"))
	_, err = dec.Decode(decl("margin", px(1), px(2), px(3), px(4), px(5)))
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestBorderOrderIndependence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	orders := [][]cssom.Term{
		{px(1), id("solid"), id("red")},
		{id("red"), px(1), id("solid")},
		{id("solid"), id("red"), px(1)},
	}
	var first *Assignments
	for i, terms := range orders {
		a, err := dec.Decode(decl("border", terms...))
		require.NoError(t, err, "order #%d", i)
		assert.Equal(t, 12, a.Len())
		for _, dir := range fourDirs {
			assert.Equal(t, style.ValueLength, a.Property(p("border", "width", dir)))
			assert.Equal(t, style.Property("solid"), a.Property(p("border", "style", dir)))
			assert.Equal(t, style.ValueColor, a.Property(p("border", "color", dir)))
			assert.True(t, cssom.TermsEqual(red, a.Value(p("border", "color", dir))))
		}
		if first == nil {
			first = a
			continue
		}
		for _, name := range first.Names() {
			assert.Equal(t, first.Property(name), a.Property(name))
			assert.True(t, cssom.TermsEqual(first.Value(name), a.Value(name)), name)
		}
	}
}

func TestBorderShorthandResets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	a, err := dec.Decode(decl("border-left", id("dashed")))
	require.NoError(t, err)
	assert.Equal(t, style.Property("dashed"), a.Property("border-left-style"))
	assert.Equal(t, style.Initial, a.Property("border-left-width"))
	assert.Equal(t, style.Initial, a.Property("border-left-color"))
	assert.False(t, a.Has("border-top-style"))
	//
	_, err = dec.Decode(decl("border", id("solid"), id("dashed")))
	assert.Error(t, err, "style given twice")
	//
	a, err = dec.Decode(decl("border", id("inherit")))
	require.NoError(t, err)
	assert.Equal(t, 12, a.Len())
	for _, name := range a.Names() {
		assert.Equal(t, style.Inherit, a.Property(name), name)
	}
	_, err = dec.Decode(decl("border", id("inherit"), id("red")))
	assert.Error(t, err, "CSS-wide keywords cannot be mixed")
	//
	a, err = dec.Decode(decl("border-top-style", id("groove")))
	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, style.Property("groove"), a.Property("border-top-style"))
	_, err = dec.Decode(decl("border-top-style", px(1)))
	assert.Error(t, err)
}

func TestFontShorthand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	a, err := dec.Decode(decl("font",
		id("italic"), id("bold"), px(12), cssom.NewNumber(1.5).WithOperator(cssom.OpSlash),
		id("Times"), id("New"), id("Roman"), comma(id("serif"))))
	require.NoError(t, err)
	assert.Equal(t, style.Property("italic"), a.Property("font-style"))
	assert.Equal(t, style.Initial, a.Property("font-variant"))
	assert.Equal(t, style.Property("bold"), a.Property("font-weight"))
	assert.Equal(t, style.ValueLength, a.Property("font-size"))
	assert.Equal(t, style.ValueNumber, a.Property("line-height"))
	assert.True(t, cssom.TermsEqual(cssom.NewNumber(1.5), a.Value("line-height")))
	assert.Equal(t, style.ValueList, a.Property("font-family"))
	families := cssom.NewList(
		NewPropertyValue(style.ValueString, cssom.NewString("Times New Roman")),
		comma(NewPropertyValue("serif", cssom.NewIdent("serif"))),
	)
	assert.True(t, cssom.TermsEqual(families, a.Value("font-family")), a.Value("font-family").String())
	//
	a, err = dec.Decode(decl("font", px(10), id("monospace")))
	require.NoError(t, err)
	assert.Equal(t, style.Initial, a.Property("line-height"))
	assert.Equal(t, style.Initial, a.Property("font-weight"))
}

func TestFontShorthandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	invalid := [][]cssom.Term{
		{id("bold"), px(12)},      // no family
		{id("bold"), id("serif")}, // no size
		{px(12), id("serif"), cssom.NewNumber(1.5).WithOperator(cssom.OpSlash)}, // line-height after family
		{cssom.NewNumber(1.5).WithOperator(cssom.OpSlash), px(12), id("serif")},
		{px(12), cssom.NewNumber(1.5), id("serif")}, // missing slash
		{px(12), id("inherit")},
	}
	for i, terms := range invalid {
		a, err := dec.Decode(decl("font", terms...))
		assert.Error(t, err, "test #%d", i)
		assert.Nil(t, a)
	}
}

func TestFontFamilyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	a, err := dec.Decode(decl("font-family",
		cssom.NewString("Gill Sans"), comma(id("Helvetica")), id("Neue"), comma(id("sans-serif"))))
	require.NoError(t, err)
	list, ok := a.Value("font-family").(cssom.List)
	require.True(t, ok)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, `"Gill Sans", "Helvetica Neue", sans-serif`, list.String())
	//
	_, err = dec.Decode(decl("font-family", cssom.NewString("A"), cssom.NewString("B")))
	assert.Error(t, err, "strings have to be comma-separated")
	_, err = dec.Decode(decl("font-family", px(3)))
	assert.Error(t, err)
}

func TestBackgroundLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	a, err := dec.Decode(decl("background",
		cssom.NewURI("a.png"), id("no-repeat"),
		comma(cssom.NewURI("b.png")), id("red")))
	require.NoError(t, err)
	images := cssom.NewList(
		NewPropertyValue(style.ValueURI, cssom.NewURI("a.png")),
		comma(NewPropertyValue(style.ValueURI, cssom.NewURI("b.png"))),
	)
	assert.True(t, cssom.TermsEqual(images, a.Value("background-image")), a.Value("background-image").String())
	repeats := cssom.NewList(
		NewPropertyValue("no-repeat", nil),
		comma(NewPropertyValue(style.Initial, nil)),
	)
	assert.True(t, cssom.TermsEqual(repeats, a.Value("background-repeat")), a.Value("background-repeat").String())
	assert.Equal(t, style.ValueColor, a.Property("background-color"))
	assert.True(t, cssom.TermsEqual(red, a.Value("background-color")))
	//
	_, err = dec.Decode(decl("background", id("red"), comma(cssom.NewURI("b.png"))))
	assert.Error(t, err, "color only in final layer")
	//
	a, err = dec.Decode(decl("background", cssom.NewURI("c.png")))
	require.NoError(t, err)
	assert.Equal(t, style.Initial, a.Property("background-color"))
	assert.Equal(t, style.ValueList, a.Property("background-attachment"))
}

func TestBackgroundImageList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	a, err := dec.Decode(decl("background-image", cssom.NewURI("a.png"), comma(id("none"))))
	require.NoError(t, err)
	assert.Equal(t, "url(a.png), none", a.Value("background-image").String())
	_, err = dec.Decode(decl("background-image", cssom.NewURI("a.png"), id("none")))
	assert.Error(t, err, "missing comma")
	a, err = dec.Decode(decl("background-repeat", id("inherit")))
	require.NoError(t, err)
	assert.Equal(t, style.Inherit, a.Property("background-repeat"))
}

func TestValueRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	_, err := dec.Decode(decl("padding-top", px(-1)))
	assert.Error(t, err)
	_, err = dec.Decode(decl("width", px(-1)))
	assert.Error(t, err)
	_, err = dec.Decode(decl("font-weight", cssom.NewInteger(0)))
	assert.Error(t, err)
	a, err := dec.Decode(decl("font-weight", cssom.NewInteger(700)))
	require.NoError(t, err)
	assert.Equal(t, style.ValueInteger, a.Property("font-weight"))
	a, err = dec.Decode(decl("opacity", cssom.NewNumber(-0.5)))
	require.NoError(t, err)
	assert.True(t, cssom.TermsEqual(cssom.NewNumber(0), a.Value("opacity")))
	a, err = dec.Decode(decl("margin-left", px(-3)))
	require.NoError(t, err)
	assert.Equal(t, "-3px", a.Value("margin-left").String())
	a, err = dec.Decode(decl("width", cssom.NewInteger(0)))
	require.NoError(t, err, "unitless zero is a length")
	assert.Equal(t, style.ValueLength, a.Property("width"))
	_, err = dec.Decode(decl("width", cssom.NewInteger(5)))
	assert.Error(t, err)
}

func TestColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	for _, term := range []cssom.Term{
		id("red"),
		id("RED"),
		red,
		cssom.NewFunction("rgb", cssom.NewInteger(255), comma(cssom.NewInteger(0)), comma(cssom.NewInteger(0))),
		cssom.NewFunction("rgba", cssom.NewPercent(100), comma(cssom.NewInteger(0)),
			comma(cssom.NewInteger(0)), comma(cssom.NewInteger(1))),
	} {
		a, err := dec.Decode(decl("color", term))
		require.NoError(t, err, term.String())
		assert.True(t, cssom.TermsEqual(red, a.Value("color")), "%s → %v", term, a.Value("color"))
	}
	a, err := dec.Decode(decl("background-color", id("transparent")))
	require.NoError(t, err)
	assert.Equal(t, "#00000000", a.Value("background-color").String())
	_, err = dec.Decode(decl("color", id("no-such-color")))
	assert.Error(t, err)
}

func TestGeneratedContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	a, err := dec.Decode(decl("counter-reset", id("chapter"), id("section"), cssom.NewInteger(2)))
	require.NoError(t, err)
	counters := cssom.NewList(
		NewPropertyValue("chapter", cssom.NewInteger(0)),
		NewPropertyValue("section", cssom.NewInteger(2)),
	)
	assert.True(t, cssom.TermsEqual(counters, a.Value("counter-reset")))
	a, err = dec.Decode(decl("counter-increment", id("chapter")))
	require.NoError(t, err)
	assert.Equal(t, "1", a.Value("counter-increment").String())
	//
	a, err = dec.Decode(decl("content", cssom.NewString("§ "),
		cssom.NewFunction("counter", id("chapter")), id("open-quote")))
	require.NoError(t, err)
	assert.Equal(t, 3, a.Value("content").(cssom.List).Len())
	_, err = dec.Decode(decl("content", id("bogus")))
	assert.Error(t, err)
	//
	_, err = dec.Decode(decl("quotes", cssom.NewString("«")))
	assert.Error(t, err, "quotes come in pairs")
	a, err = dec.Decode(decl("text-decoration", id("underline"), id("overline")))
	require.NoError(t, err)
	assert.Equal(t, "underline overline", a.Value("text-decoration").String())
	_, err = dec.Decode(decl("text-decoration", id("underline"), id("underline")))
	assert.Error(t, err)
}

func TestNoPartialResults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := NewDecoder()
	a, err := dec.Decode(decl("margin", px(1), id("foo")))
	assert.Nil(t, a)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	a, err = dec.Decode(decl("border", px(1), id("solid"), id("nonsense")))
	assert.Nil(t, a)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	_, err = dec.Decode(decl("margin"))
	assert.True(t, errors.Is(err, ErrInvalidValue), "no terms")
	_, err = dec.Decode(decl("frobnication", px(1)))
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestCaseInsensitiveProperty(t *testing.T) {
	dec := Default()
	d := &cssom.Declaration{Property: "Margin-Top", Terms: []cssom.Term{px(2)}}
	a, err := dec.Decode(d)
	require.NoError(t, err)
	assert.True(t, a.Has("margin-top"))
	assert.True(t, dec.Supports("MARGIN"))
}

func TestCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.decode")
	defer teardown()
	//
	dec := Default()
	for _, name := range style.DefaultTable().Names() {
		assert.True(t, dec.Supports(name), "no decoder for %s", name)
	}
	// every longhand set by a shorthand has metadata
	for _, name := range dec.Names() {
		if style.DefaultTable().IsSupported(name) {
			continue
		}
		t.Logf("shorthand %s", name)
	}
}
