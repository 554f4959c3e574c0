package traverse

import (
	"errors"

	"github.com/npillmayer/cascade/dom"
)

// ErrInvalidFilter is returned if a cursor is created without a filter.
var ErrInvalidFilter = errors.New("filter may not be nil")

// Filter decides which nodes are visible to a cursor.
type Filter func(dom.Node) bool

// ShowElements lets only element nodes pass.
func ShowElements(n dom.Node) bool {
	return n.IsElement()
}

// ShowAll lets every node pass.
func ShowAll(dom.Node) bool {
	return true
}

// TreeCursor is a positioned, filtered view of a subtree.
//
// Every navigation method moves the cursor to the node returned. If there is no
// such node, nil is returned and the cursor does not move. Navigation never
// leaves the subtree at Root.
type TreeCursor interface {
	Root() dom.Node
	Current() dom.Node
	SetCurrent(dom.Node)
	Accept(dom.Node) bool // does a node pass the filter?
	Parent() dom.Node
	FirstChild() dom.Node
	LastChild() dom.Node
	PreviousSibling() dom.Node
	NextSibling() dom.Node
	PreviousNode() dom.Node // previous node in document order
	NextNode() dom.Node     // next node in document order
	Checkpoint() Checkpoint
	Restore(Checkpoint)
}

// Checkpoint is a saved cursor position.
type Checkpoint struct {
	node dom.Node
}

// Walker is the default TreeCursor implementation.
type Walker struct {
	root    dom.Node
	current dom.Node
	filter  Filter
}

// NewWalker creates a cursor for the subtree at root, positioned at root.
func NewWalker(root dom.Node, filter Filter) (*Walker, error) {
	if filter == nil {
		return nil, ErrInvalidFilter
	}
	return &Walker{root: root, current: root, filter: filter}, nil
}

// NewElementWalker creates a cursor which sees element nodes only.
func NewElementWalker(root dom.Node) *Walker {
	return &Walker{root: root, current: root, filter: ShowElements}
}

func (w *Walker) Root() dom.Node    { return w.root }
func (w *Walker) Current() dom.Node { return w.current }

// SetCurrent moves the cursor to n. n should be part of the subtree at root.
func (w *Walker) SetCurrent(n dom.Node) {
	if n != nil {
		w.current = n
	}
}

// Accept applies the filter.
func (w *Walker) Accept(n dom.Node) bool {
	return n != nil && w.filter(n)
}

// Checkpoint saves the cursor position.
func (w *Walker) Checkpoint() Checkpoint {
	return Checkpoint{node: w.current}
}

// Restore resets the cursor to a saved position.
func (w *Walker) Restore(cp Checkpoint) {
	if cp.node != nil {
		w.current = cp.node
	}
}

func (w *Walker) moveTo(n dom.Node) dom.Node {
	if n != nil {
		w.current = n
	}
	return n
}

// Parent moves to the nearest accepted ancestor within the subtree.
func (w *Walker) Parent() dom.Node {
	if w.current == w.root {
		return nil
	}
	for p := w.current.Parent(); p != nil; p = p.Parent() {
		if w.Accept(p) {
			return w.moveTo(p)
		}
		if p == w.root {
			break
		}
	}
	return nil
}

// FirstChild moves to the first accepted child.
func (w *Walker) FirstChild() dom.Node {
	return w.moveTo(w.firstChild(w.current))
}

// LastChild moves to the last accepted child.
func (w *Walker) LastChild() dom.Node {
	for ch := w.current.LastChild(); ch != nil; ch = ch.PrevSibling() {
		if w.Accept(ch) {
			return w.moveTo(ch)
		}
	}
	return nil
}

// NextSibling moves to the next accepted sibling.
func (w *Walker) NextSibling() dom.Node {
	if w.current == w.root {
		return nil
	}
	return w.moveTo(w.nextSibling(w.current))
}

// PreviousSibling moves to the previous accepted sibling.
func (w *Walker) PreviousSibling() dom.Node {
	if w.current == w.root {
		return nil
	}
	for sib := w.current.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
		if w.Accept(sib) {
			return w.moveTo(sib)
		}
	}
	return nil
}

// NextNode moves to the next accepted node in document order (pre-order).
func (w *Walker) NextNode() dom.Node {
	if ch := w.firstChild(w.current); ch != nil {
		return w.moveTo(ch)
	}
	for n := w.current; n != nil && n != w.root; n = n.Parent() {
		if sib := w.nextSibling(n); sib != nil {
			return w.moveTo(sib)
		}
	}
	return nil
}

// PreviousNode moves to the previous accepted node in document order: the
// deepest last descendant of the previous sibling, or the parent.
func (w *Walker) PreviousNode() dom.Node {
	if w.current == w.root {
		return nil
	}
	cp := w.Checkpoint()
	if sib := w.PreviousSibling(); sib != nil {
		for w.LastChild() != nil {
		}
		return w.current
	}
	w.Restore(cp)
	return w.Parent()
}

func (w *Walker) firstChild(n dom.Node) dom.Node {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if w.Accept(ch) {
			return ch
		}
	}
	return nil
}

func (w *Walker) nextSibling(n dom.Node) dom.Node {
	for sib := n.NextSibling(); sib != nil; sib = sib.NextSibling() {
		if w.Accept(sib) {
			return sib
		}
	}
	return nil
}

var _ TreeCursor = &Walker{}
