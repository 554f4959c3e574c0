package nodedata

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/decode"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var factories = map[string]Factory{
	"quadruple": NewQuadruple,
	"multimap":  NewMultiMap,
}

var red = cssom.NewColor(color.RGBA{R: 255, A: 255})
var black = cssom.NewColor(color.RGBA{A: 255})

func decl(prop string, terms ...cssom.Term) *cssom.Declaration {
	return cssom.NewDeclaration(prop, false, terms...)
}

func TestPushOverwrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.nodedata")
	defer teardown()
	//
	for kind, factory := range factories {
		nd := factory(decode.Default(), style.DefaultTable())
		first := decl("margin", cssom.NewLength(1, cssom.UnitPX))
		second := decl("margin-top", cssom.NewLength(2, cssom.UnitPX))
		require.NoError(t, nd.Push(first), kind)
		require.NoError(t, nd.Push(second), kind)
		assert.Equal(t, "2px", nd.Value("margin-top", false).String(), kind)
		assert.Equal(t, "1px", nd.Value("margin-left", false).String(), kind)
		assert.Same(t, second, nd.SourceDeclaration("margin-top"), kind)
		assert.Same(t, first, nd.SourceDeclaration("margin-left"), kind)
		assert.Len(t, nd.PropertyNames(), 4, kind)
		//
		err := nd.Push(decl("margin-top", cssom.NewIdent("bogus")))
		assert.True(t, errors.Is(err, decode.ErrInvalidValue), kind)
		assert.Equal(t, "2px", nd.Value("margin-top", false).String(), "dropped declaration keeps value (%s)", kind)
	}
}

func TestInheritColor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.nodedata")
	defer teardown()
	//
	for kind, factory := range factories {
		meta := style.DefaultTable()
		parent := factory(decode.Default(), meta)
		require.NoError(t, parent.Push(decl("color", cssom.NewIdent("red"))))
		require.NoError(t, parent.Push(decl("margin-top", cssom.NewLength(5, cssom.UnitPX))))
		parent.Concretize()
		child := factory(decode.Default(), meta)
		child.InheritFrom(parent)
		child.Concretize()
		assert.Equal(t, style.NullStyle, child.Property("color", false), kind)
		assert.Equal(t, style.ValueColor, child.Property("color", true), kind)
		assert.True(t, cssom.TermsEqual(red, child.Value("color", true)), kind)
		assert.Equal(t, style.NullStyle, child.Property("margin-top", true), "margins are not inherited (%s)", kind)
		grandchild := factory(decode.Default(), meta)
		grandchild.InheritFrom(child)
		grandchild.Concretize()
		assert.True(t, cssom.TermsEqual(red, grandchild.Value("color", true)), kind)
	}
}

func TestExplicitInherit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.nodedata")
	defer teardown()
	//
	for kind, factory := range factories {
		meta := style.DefaultTable()
		parent := factory(decode.Default(), meta)
		require.NoError(t, parent.Push(decl("margin-top", cssom.NewLength(5, cssom.UnitPX))))
		parent.Concretize()
		child := factory(decode.Default(), meta)
		require.NoError(t, child.Push(decl("margin-top", cssom.NewIdent("inherit"))))
		require.NoError(t, child.Push(decl("color", cssom.NewIdent("inherit"))))
		require.NoError(t, child.Push(decl("padding-top", cssom.NewIdent("unset"))))
		child.InheritFrom(parent)
		child.Concretize()
		assert.Equal(t, "5px", child.Value("margin-top", false).String(), kind)
		// no color on parent: default from the table
		assert.Equal(t, style.ValueColor, child.Property("color", false), kind)
		assert.True(t, cssom.TermsEqual(black, child.Value("color", false)), kind)
		// unset on a non-inherited property: default
		assert.Equal(t, "0px", child.Value("padding-top", false).String(), kind)
	}
}

func TestInitialAndUnset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.nodedata")
	defer teardown()
	//
	for kind, factory := range factories {
		meta := style.DefaultTable()
		parent := factory(decode.Default(), meta)
		require.NoError(t, parent.Push(decl("color", cssom.NewIdent("red"))))
		require.NoError(t, parent.Push(decl("font-style", cssom.NewIdent("italic"))))
		parent.Concretize()
		child := factory(decode.Default(), meta)
		require.NoError(t, child.Push(decl("color", cssom.NewIdent("initial"))))
		require.NoError(t, child.Push(decl("font-style", cssom.NewIdent("unset"))))
		require.NoError(t, child.Push(decl("border-left", cssom.NewIdent("dashed"))))
		child.InheritFrom(parent)
		child.Concretize()
		assert.True(t, cssom.TermsEqual(black, child.Value("color", true)), kind)
		assert.Equal(t, style.Property("italic"), child.Property("font-style", false), kind)
		assert.Equal(t, style.Property("medium"), child.Property("border-left-width", false), kind)
		for _, name := range child.PropertyNames() {
			assert.False(t, child.Property(name, true).IsKeyword(), "%s: %s", kind, name)
		}
	}
}

func TestInheritMismatchPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.nodedata")
	defer teardown()
	//
	parent := NewMultiMap(decode.Default(), style.DefaultTable())
	child := NewQuadruple(decode.Default(), style.DefaultTable())
	assert.Panics(t, func() { child.InheritFrom(parent) })
	assert.Panics(t, func() { parent.InheritFrom(child) })
	assert.NotPanics(t, func() { child.InheritFrom(nil) })
}

func TestLookup(t *testing.T) {
	meta := style.DefaultTable()
	nd := NewQuadruple(decode.Default(), meta)
	p, v := Lookup(nd, meta, "display")
	assert.Equal(t, style.Property("inline"), p)
	assert.Nil(t, v)
	require.NoError(t, nd.Push(decl("display", cssom.NewIdent("block"))))
	p, _ = Lookup(nd, meta, "display")
	assert.Equal(t, style.Property("block"), p)
	p, _ = Lookup(nil, meta, "display")
	assert.Equal(t, style.Property("inline"), p)
}
