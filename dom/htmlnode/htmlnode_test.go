package htmlnode

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<html><body>
<div ID="top" class=" a  b ">text<!-- c --><MyTag Data-X="1"></MyTag></div>
</body></html>`

func TestNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	assert.False(t, doc.IsElement())
	assert.Nil(t, doc.Parent())
	body := Body(doc)
	require.NotNil(t, body)
	div := FindElement(doc, "div")
	require.NotNil(t, div)
	assert.Equal(t, body, div.Parent(), "wrappers compare equal")
	assert.Equal(t, body, dom.ParentElement(div))
	assert.Equal(t, doc, dom.Root(div))
	//
	text := div.FirstChild()
	assert.False(t, text.IsElement())
	assert.Equal(t, "", text.TagName())
	comment := text.NextSibling()
	mytag := div.LastChild()
	assert.Equal(t, comment, mytag.PrevSibling())
	assert.Nil(t, mytag.NextSibling())
	assert.Equal(t, "mytag", mytag.TagName())
	assert.Nil(t, Wrap(nil))
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	div := FindElement(doc, "div")
	assert.Equal(t, "top", div.ID())
	assert.Equal(t, []string{"a", "b"}, div.Classes())
	v, ok := dom.Attribute(FindElement(doc, "mytag"), "data-x")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	_, ok = dom.Attribute(div, "lang")
	assert.False(t, ok)
	assert.Nil(t, FindElement(doc, "span"))
}

func TestUnwrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	h := HTMLNode(doc)
	require.NotNil(t, h)
	assert.Equal(t, html.DocumentNode, h.Type)
	assert.Equal(t, doc, Wrap(h))
	assert.Equal(t, "#document", doc.(Node).String())
	assert.Equal(t, "<div>", FindElement(doc, "div").(Node).String())
}
