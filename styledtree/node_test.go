package styledtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/decode"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/htmlnode"
	"github.com/npillmayer/cascade/nodedata"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styles(t *testing.T, decls ...*cssom.Declaration) nodedata.NodeData {
	nd := nodedata.NewQuadruple(decode.Default(), style.DefaultTable())
	for _, d := range decls {
		require.NoError(t, nd.Push(d))
	}
	nd.Concretize()
	return nd
}

func elements(t *testing.T) (dom.Node, dom.Node, dom.Node) {
	doc, err := htmlnode.Parse(strings.NewReader(`<div><span>text</span></div>`))
	require.NoError(t, err)
	div := htmlnode.FindElement(doc, "div")
	span := htmlnode.FindElement(doc, "span")
	require.NotNil(t, span)
	return doc, div, span
}

func TestPayloadIsNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	_, div, _ := elements(t)
	n := NewNodeForDOMNode(div)
	assert.Same(t, n.Payload, Node(n))
	assert.Equal(t, div, Node(n).DOMNode())
	assert.Nil(t, Node(nil))
}

func TestCascadingPropertyValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	_, div, span := elements(t)
	meta := style.DefaultTable()
	parent := NewNodeForDOMNode(div)
	Node(parent).SetStyles(styles(t,
		cssom.NewDeclaration("color", false, cssom.NewIdent("red")),
		cssom.NewDeclaration("margin-top", false, cssom.NewLength(3, cssom.UnitPX)),
	))
	child := NewNodeForDOMNode(span)
	parent.AddChild(child)
	//
	p, v := Node(child).GetPropertyValue("color", meta)
	assert.Equal(t, style.ValueColor, p)
	assert.Equal(t, "#ff0000", v.String())
	_, v = Node(child).GetPropertyValue("margin-top", meta)
	assert.Equal(t, "0px", v.String(), "margins are not inherited")
	_, v = Node(parent).GetPropertyValue("margin-top", meta)
	assert.Equal(t, "3px", v.String())
}

func TestPseudoStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	_, div, _ := elements(t)
	sn := Node(NewNodeForDOMNode(div))
	assert.Empty(t, sn.Pseudos())
	after := styles(t, cssom.NewDeclaration("content", false, cssom.NewString(".")))
	before := styles(t, cssom.NewDeclaration("content", false, cssom.NewString("»")))
	sn.SetPseudoStyles(cssom.PseudoBefore, before)
	sn.SetPseudoStyles(cssom.PseudoAfter, after)
	assert.Equal(t, []cssom.PseudoElement{cssom.PseudoAfter, cssom.PseudoBefore}, sn.Pseudos())
	assert.Same(t, before, sn.PseudoStyles(cssom.PseudoBefore))
	own := styles(t)
	sn.SetPseudoStyles(cssom.PseudoNone, own)
	assert.Same(t, own, sn.Styles())
	assert.Same(t, own, sn.PseudoStyles(cssom.PseudoNone))
}

func TestDisplayMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc, div, span := elements(t)
	assert.Equal(t, style.BlockMode|style.InnerBlockMode, Node(NewNodeForDOMNode(div)).DisplayMode())
	assert.Equal(t, style.InlineMode|style.InnerInlineMode, Node(NewNodeForDOMNode(span)).DisplayMode())
	assert.Equal(t, style.NoMode, Node(NewNodeForDOMNode(doc)).DisplayMode())
	//
	sn := Node(NewNodeForDOMNode(span))
	sn.SetStyles(styles(t, cssom.NewDeclaration("display", false, cssom.NewIdent("flex"))))
	assert.Equal(t, style.BlockMode|style.FlexMode, sn.DisplayMode())
}

func TestPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	_, div, span := elements(t)
	meta := style.DefaultTable()
	static := Node(NewNodeForDOMNode(div)).Position(meta)
	assert.NotNil(t, static.Match().IsKind(style.Static()), "default position is static")
	sn := Node(NewNodeForDOMNode(span))
	sn.SetStyles(styles(t,
		cssom.NewDeclaration("position", false, cssom.NewIdent("absolute")),
		cssom.NewDeclaration("left", false, cssom.NewPercent(10)),
	))
	pos := sn.Position(meta)
	require.True(t, pos.IsAbsolute())
	offsets := pos.Offsets()
	require.Len(t, offsets, 4)
	assert.True(t, offsets[style.Top].Dim.IsAuto())
	assert.True(t, offsets[style.Left].Dim.IsPercent())
}
