package tree

import "errors"

// ErrEmptyTree is returned by walks starting at a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by a TopDown action to skip the subtree below
// a node.
var SkipChildren = errors.New("skip children")

// Action is called for nodes of a walk. It receives the node, its parent
// (nil for the start node) and its position among the parent's children.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// Predicate tests a node.
type Predicate[T comparable] func(n *Node[T]) bool

// NodeIsLeaf is a predicate matching nodes without children.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool {
		return n.ChildCount() == 0
	}
}

// TopDown calls action for every node of the subtree at start, parents
// before their children, children in order. A walk stops at the first
// error an action returns, except for SkipChildren.
func TopDown[T comparable](start *Node[T], action Action[T]) error {
	if start == nil {
		return ErrEmptyTree
	}
	return topDown(start, nil, 0, action)
}

func topDown[T comparable](n, parent *Node[T], pos int, action Action[T]) error {
	if err := action(n, parent, pos); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for i, ch := range n.Children() {
		if err := topDown(ch, n, i, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp calls action for every node of the subtree at start, children
// before their parents.
func BottomUp[T comparable](start *Node[T], action Action[T]) error {
	if start == nil {
		return ErrEmptyTree
	}
	return bottomUp(start, nil, 0, action)
}

func bottomUp[T comparable](n, parent *Node[T], pos int, action Action[T]) error {
	for i, ch := range n.Children() {
		if err := bottomUp(ch, n, i, action); err != nil {
			return err
		}
	}
	return action(n, parent, pos)
}

// Find returns the nodes of the subtree at start which satisfy a predicate,
// in pre-order.
func Find[T comparable](start *Node[T], pred Predicate[T]) []*Node[T] {
	var found []*Node[T]
	_ = TopDown(start, func(n, _ *Node[T], _ int) error {
		if pred(n) {
			found = append(found, n)
		}
		return nil
	})
	tracer().Debugf("found %d nodes", len(found))
	return found
}

// Depth returns the number of ancestors of a node.
func (node *Node[T]) Depth() int {
	d := 0
	for p := node.parent; p != nil; p = p.parent {
		d++
	}
	return d
}
