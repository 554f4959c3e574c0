package cascade

import (
	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/nodedata"
	"github.com/npillmayer/cascade/traverse"
)

// DirectAnalyzer computes the styles of single elements, on demand. Nothing
// is inherited: the resulting NodeData holds the element's own values,
// with CSS-wide keywords resolved against the defaults.
//
// This is useful for clients which style a few elements only, e.g. to
// query the display mode of an element before building boxes for it.
type DirectAnalyzer struct {
	analyzer *Analyzer
}

// NewDirectAnalyzer classifies stylesheets for a media context. media
// overrides a WithMedia option.
func NewDirectAnalyzer(sheets []*cssom.StyleSheet, media cssom.MediaSpec, opts ...Option) *DirectAnalyzer {
	opts = append(opts, WithMedia(media))
	return &DirectAnalyzer{analyzer: NewAnalyzer(sheets, opts...)}
}

// Index returns the rule index the analyzer matches against.
func (da *DirectAnalyzer) Index() *RuleIndex {
	return da.analyzer.index
}

// ElementStyle computes the style of an element or of one of its
// pseudo-elements. It returns nil if node is not an element.
func (da *DirectAnalyzer) ElementStyle(node dom.Node, pseudo cssom.PseudoElement) nodedata.NodeData {
	if !dom.IsElement(node) {
		return nil
	}
	dm := NewDeclarationMap()
	da.analyzer.assignNode(dm, node, traverse.NewElementWalker(dom.Root(node)))
	return da.analyzer.compute(dm.Declarations(node, pseudo), nil)
}
