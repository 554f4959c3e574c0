package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cascade"
	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/cssom/douceuradapter"
	"github.com/npillmayer/cascade/dom/htmlnode"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var myhtml = `
<html><head></head><body>
  <div id="main" class="note">
    <p>Hello <span>World</span></p>
  </div>
</body></html>
`

var mycss = `
div.note { margin-top: 4px; color: red }
p::before { content: "»" }
span { display: block }
`

func buildStyledTree(t *testing.T) *StyledTree {
	doc, err := htmlnode.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	sheet, err := douceuradapter.Parse(cssom.OriginAuthor, mycss)
	require.NoError(t, err)
	root, err := cascade.NewAnalyzer([]*cssom.StyleSheet{sheet}).StyledTree(doc)
	require.NoError(t, err)
	return root
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	out := Dump(buildStyledTree(t))
	t.Logf("\n%s", out)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "#document", lines[0])
	assert.Contains(t, out, "div#main.note ▩")
	assert.Contains(t, out, "body ▩")
	assert.Contains(t, out, "span ▩")
	assert.Contains(t, out, "before")
	assert.Equal(t, "<empty>\n", Dump(nil))
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(buildStyledTree(t), &buf, []string{style.PGMargins}))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="div#main.note ▩"`)
	assert.Contains(t, dot, "margin-top:</td><td>4px")
	assert.Contains(t, dot, "node00001 -> node00002")
}

func TestPropertyGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	root := buildStyledTree(t)
	assert.Nil(t, PropertyGroups(nil, defaultGroups))
	div, ok := root.Child(0) // html
	require.True(t, ok)
	for depth := 0; depth < 2; depth++ { // body, div
		ch, ok := div.Child(div.ChildCount() - 1)
		require.True(t, ok)
		div = ch
	}
	require.Equal(t, "div", div.Payload.DOMNode().TagName())
	pgs := PropertyGroups(div.Payload.Styles(), []string{style.PGMargins, style.PGColor, style.PGDisplay})
	require.Len(t, pgs, 2)
	assert.Equal(t, style.PGMargins, pgs[0].Name())
	v, ok := pgs[0].Get("margin-top")
	assert.True(t, ok)
	assert.Equal(t, "4px", v)
	assert.Equal(t, style.PGColor, pgs[1].Name())
}
