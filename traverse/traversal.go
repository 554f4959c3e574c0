package traverse

import "github.com/npillmayer/cascade/dom"

// Processor is called for every node of a traversal. It receives the
// traversal's result value, the current node and the cursor, which it may
// borrow; the cursor is reset after the call.
type Processor[R any] func(result R, current dom.Node, cursor TreeCursor)

// Traversal visits the accepted nodes of a cursor's subtree.
type Traversal[R any] struct {
	cursor  TreeCursor
	process Processor[R]
}

// NewTraversal creates a traversal over a cursor's subtree.
func NewTraversal[R any](cursor TreeCursor, process Processor[R]) *Traversal[R] {
	return &Traversal[R]{cursor: cursor, process: process}
}

// ListTraversal visits nodes as a flat list in document order. The root is
// visited if it is accepted by the cursor's filter.
func (t *Traversal[R]) ListTraversal(result R) {
	c := t.cursor
	root := c.Root()
	c.SetCurrent(root)
	if c.Accept(root) {
		t.visit(result, root)
	}
	for current := c.NextNode(); current != nil; current = c.NextNode() {
		t.visit(result, current)
	}
	c.SetCurrent(root)
}

// LevelTraversal visits nodes in pre-order, level by level: a node is always
// processed before its children, so processors may rely on results already
// computed for the parent.
func (t *Traversal[R]) LevelTraversal(result R) {
	c := t.cursor
	root := c.Root()
	c.SetCurrent(root)
	if c.Accept(root) {
		t.visit(result, root)
	}
	t.levels(result, root)
	c.SetCurrent(root)
}

func (t *Traversal[R]) levels(result R, n dom.Node) {
	c := t.cursor
	c.SetCurrent(n)
	for ch := c.FirstChild(); ch != nil; ch = c.NextSibling() {
		t.visit(result, ch)
		t.levels(result, ch)
		c.SetCurrent(ch)
	}
}

// visit processes a node and resets the cursor to it afterwards.
func (t *Traversal[R]) visit(result R, n dom.Node) {
	checkpoint := t.cursor.Checkpoint()
	t.process(result, n, t.cursor)
	t.cursor.Restore(checkpoint)
}
