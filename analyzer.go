package cascade

import (
	"errors"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/nodedata"
	"github.com/npillmayer/cascade/styledtree"
	"github.com/npillmayer/cascade/traverse"
	"github.com/npillmayer/cascade/tree"
)

// ErrNoRoot is returned if an analysis is started without a root node.
var ErrNoRoot = errors.New("cannot analyze a document without a root node")

// Analyzer computes the styles of the elements of a document tree from a set
// of stylesheets. It holds the rule index for its media context; the index
// is built when the analyzer is created and rebuilt by Reclassify only.
//
// An analyzer may be used for several documents, also concurrently. It is not
// safe for concurrent use while Reclassify runs.
type Analyzer struct {
	sheets []*cssom.StyleSheet
	index  *RuleIndex
	conf   config
}

// NewAnalyzer creates an analyzer for stylesheets. Stylesheets are expected
// in the order they appear for the document; source order counts across all
// of them.
func NewAnalyzer(sheets []*cssom.StyleSheet, opts ...Option) *Analyzer {
	a := &Analyzer{sheets: sheets, conf: defaultConfig()}
	for _, opt := range opts {
		opt(&a.conf)
	}
	a.conf.resolveDefaults()
	a.index = Classify(a.conf.media, sheets...)
	return a
}

// Index returns the rule index the analyzer matches against.
func (a *Analyzer) Index() *RuleIndex {
	return a.index
}

// Reclassify rebuilds the rule index for another media context.
func (a *Analyzer) Reclassify(media cssom.MediaSpec) {
	WithMedia(media)(&a.conf)
	a.index = Classify(a.conf.media, a.sheets...)
}

// AssignDeclarations collects the declarations of matching rules for every
// element of the subtree at root. The lists for nodes and for each of their
// pseudo-elements are sorted into cascade order, winning declarations last.
//
// Selectors may reach outside of the subtree: combinators are matched in the
// whole document root belongs to.
func (a *Analyzer) AssignDeclarations(root dom.Node) (*DeclarationMap, error) {
	if root == nil {
		return nil, ErrNoRoot
	}
	decls := NewDeclarationMap()
	matchCursor := traverse.NewElementWalker(dom.Root(root))
	collect := func(dm *DeclarationMap, n dom.Node, _ traverse.TreeCursor) {
		a.assignNode(dm, n, matchCursor)
	}
	traverse.NewTraversal(traverse.NewElementWalker(root), collect).ListTraversal(decls)
	tracer().Debugf("assigned declarations to %d elements", decls.Len())
	return decls, nil
}

func (a *Analyzer) assignNode(dm *DeclarationMap, n dom.Node, cursor traverse.TreeCursor) {
	matched := false
	for _, rule := range a.index.candidates(n, !a.conf.duplicates) {
		if !MatchSelector(cursor, rule.Selector, n, a.conf.cond) {
			continue
		}
		pe := rule.Selector.PseudoElement()
		if pe != cssom.PseudoNone && !a.conf.pseudos {
			continue
		}
		dm.push(n, pe, assign(rule)...)
		matched = true
	}
	if matched {
		dm.sort(n)
	}
}

// EvaluateDOM computes the styles of the elements of the subtree at root from
// assigned declarations. Elements are visited parents first; every element
// inherits from the computed style of its parent element, pseudo-elements from
// the computed style of their element. Declarations which cannot be decoded
// are dropped.
func (a *Analyzer) EvaluateDOM(root dom.Node, decls *DeclarationMap) (*StyleMap, error) {
	if root == nil {
		return nil, ErrNoRoot
	}
	if decls == nil {
		decls = NewDeclarationMap()
	}
	styles := NewStyleMap()
	evaluate := func(sm *StyleMap, n dom.Node, _ traverse.TreeCursor) {
		var parent nodedata.NodeData
		if p := dom.ParentElement(n); p != nil {
			parent = sm.Style(p)
		}
		nd := a.compute(decls.Declarations(n, cssom.PseudoNone), parent)
		sm.Put(n, cssom.PseudoNone, nd)
		for _, pe := range decls.Pseudos(n) {
			sm.Put(n, pe, a.compute(decls.Declarations(n, pe), nd))
		}
	}
	traverse.NewTraversal(traverse.NewElementWalker(root), evaluate).LevelTraversal(styles)
	return styles, nil
}

// compute builds the concretized NodeData from sorted declarations. parent
// may be nil.
func (a *Analyzer) compute(decls []AssignedDeclaration, parent nodedata.NodeData) nodedata.NodeData {
	nd := a.conf.factory(a.conf.decoder, a.conf.meta)
	for _, ad := range decls {
		if err := nd.Push(ad.Declaration); err != nil {
			tracer().Debugf("%s: %v", ad, err)
		}
	}
	if parent != nil {
		nd.InheritFrom(parent)
	}
	nd.Concretize()
	return nd
}

// Analyze assigns declarations to the elements of the subtree at root and
// computes their styles.
func (a *Analyzer) Analyze(root dom.Node) (*StyleMap, error) {
	decls, err := a.AssignDeclarations(root)
	if err != nil {
		return nil, err
	}
	return a.EvaluateDOM(root, decls)
}

// StyledTree analyzes the subtree at root and returns a styled tree mirroring
// its elements. If root is not an element (e.g., a document node), the styled
// root is created for it without styles.
func (a *Analyzer) StyledTree(root dom.Node) (*tree.Node[*styledtree.StyNode], error) {
	styles, err := a.Analyze(root)
	if err != nil {
		return nil, err
	}
	return buildStyledTree(root, styles), nil
}

func buildStyledTree(root dom.Node, styles *StyleMap) *tree.Node[*styledtree.StyNode] {
	cursor := traverse.NewElementWalker(root)
	var build func(n dom.Node) *tree.Node[*styledtree.StyNode]
	build = func(n dom.Node) *tree.Node[*styledtree.StyNode] {
		sn := styledtree.NewNodeForDOMNode(n)
		styledtree.Node(sn).SetStyles(styles.Style(n))
		for _, pe := range styles.Pseudos(n) {
			styledtree.Node(sn).SetPseudoStyles(pe, styles.PseudoStyle(n, pe))
		}
		cursor.SetCurrent(n)
		for ch := cursor.FirstChild(); ch != nil; ch = cursor.NextSibling() {
			cp := cursor.Checkpoint()
			sn.AddChild(build(ch))
			cursor.Restore(cp)
		}
		return sn
	}
	return build(root)
}
