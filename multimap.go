package cascade

import (
	"sort"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/nodedata"
)

// MultiMap maps (node, pseudo-element) to values. Entries for nodes
// themselves are kept in a map of their own; maps for pseudo-elements are
// created only for nodes which have pseudo-element entries.
type MultiMap[D any] struct {
	main   map[dom.Node]D
	pseudo map[dom.Node]map[cssom.PseudoElement]D
}

// NewMultiMap creates an empty map.
func NewMultiMap[D any]() *MultiMap[D] {
	return &MultiMap[D]{main: make(map[dom.Node]D)}
}

// Get returns the value for a node (pe = PseudoNone) or one of its
// pseudo-elements.
func (m *MultiMap[D]) Get(n dom.Node, pe cssom.PseudoElement) (D, bool) {
	if pe == cssom.PseudoNone {
		d, ok := m.main[n]
		return d, ok
	}
	var d D
	pm, ok := m.pseudo[n]
	if !ok {
		return d, false
	}
	d, ok = pm[pe]
	return d, ok
}

// Put sets the value for a node or one of its pseudo-elements.
func (m *MultiMap[D]) Put(n dom.Node, pe cssom.PseudoElement, d D) {
	if pe == cssom.PseudoNone {
		m.main[n] = d
		return
	}
	if m.pseudo == nil {
		m.pseudo = make(map[dom.Node]map[cssom.PseudoElement]D)
	}
	pm, ok := m.pseudo[n]
	if !ok {
		pm = make(map[cssom.PseudoElement]D)
		m.pseudo[n] = pm
	}
	pm[pe] = d
}

// Update replaces the value for (n, pe) by f(old value).
func (m *MultiMap[D]) Update(n dom.Node, pe cssom.PseudoElement, f func(D) D) {
	d, _ := m.Get(n, pe)
	m.Put(n, pe, f(d))
}

// Pseudos returns the pseudo-elements with entries for a node, sorted.
func (m *MultiMap[D]) Pseudos(n dom.Node) []cssom.PseudoElement {
	pm := m.pseudo[n]
	pes := make([]cssom.PseudoElement, 0, len(pm))
	for pe := range pm {
		pes = append(pes, pe)
	}
	sort.Slice(pes, func(i, j int) bool { return pes[i] < pes[j] })
	return pes
}

// Len returns the number of nodes with an entry for the node itself.
func (m *MultiMap[D]) Len() int {
	return len(m.main)
}

// Each calls f for every node with an entry for the node itself, in no
// particular order.
func (m *MultiMap[D]) Each(f func(n dom.Node, d D)) {
	for n, d := range m.main {
		f(n, d)
	}
}

// DeclarationMap holds the cascade-ordered declarations of nodes and their
// pseudo-elements.
type DeclarationMap struct {
	*MultiMap[[]AssignedDeclaration]
}

// NewDeclarationMap creates an empty declaration map.
func NewDeclarationMap() *DeclarationMap {
	return &DeclarationMap{NewMultiMap[[]AssignedDeclaration]()}
}

// Declarations returns the declarations for a node or pseudo-element.
func (dm *DeclarationMap) Declarations(n dom.Node, pe cssom.PseudoElement) []AssignedDeclaration {
	decls, _ := dm.Get(n, pe)
	return decls
}

func (dm *DeclarationMap) push(n dom.Node, pe cssom.PseudoElement, decls ...AssignedDeclaration) {
	dm.Update(n, pe, func(old []AssignedDeclaration) []AssignedDeclaration {
		return append(old, decls...)
	})
}

func (dm *DeclarationMap) sort(n dom.Node) {
	if decls, ok := dm.Get(n, cssom.PseudoNone); ok {
		SortDeclarations(decls)
	}
	for _, pe := range dm.Pseudos(n) {
		decls, _ := dm.Get(n, pe)
		SortDeclarations(decls)
	}
}

// StyleMap holds the computed styles of nodes and their pseudo-elements.
type StyleMap struct {
	*MultiMap[nodedata.NodeData]
}

// NewStyleMap creates an empty style map.
func NewStyleMap() *StyleMap {
	return &StyleMap{NewMultiMap[nodedata.NodeData]()}
}

// Style returns the style of a node, or nil.
func (sm *StyleMap) Style(n dom.Node) nodedata.NodeData {
	nd, _ := sm.Get(n, cssom.PseudoNone)
	return nd
}

// PseudoStyle returns the style of a pseudo-element of a node, or nil.
func (sm *StyleMap) PseudoStyle(n dom.Node, pe cssom.PseudoElement) nodedata.NodeData {
	nd, _ := sm.Get(n, pe)
	return nd
}
