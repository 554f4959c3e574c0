package tree

import (
	"fmt"
	"sync"
)

// Node is a tree node carrying a payload. Nodes are appended to their parent
// and never move afterwards.
type Node[T comparable] struct {
	Payload  T
	parent   *Node[T]
	children children[T]
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends ch to the children of node and makes node its parent.
// It returns node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.append(node, ch)
	}
	return node
}

// Parent returns the parent node or nil for the root of the tree.
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of children of node.
func (node *Node[T]) ChildCount() int {
	node.children.RLock()
	defer node.children.RUnlock()
	return len(node.children.nodes)
}

// Child returns the child at position i, if present.
func (node *Node[T]) Child(i int) (*Node[T], bool) {
	node.children.RLock()
	defer node.children.RUnlock()
	if i < 0 || i >= len(node.children.nodes) {
		return nil, false
	}
	return node.children.nodes[i], true
}

// Children returns a copy of the children of node, in order.
func (node *Node[T]) Children() []*Node[T] {
	node.children.RLock()
	defer node.children.RUnlock()
	return append([]*Node[T](nil), node.children.nodes...)
}

// children is a mutex-protected list of child nodes.
type children[T comparable] struct {
	sync.RWMutex
	nodes []*Node[T]
}

func (chs *children[T]) append(parent, ch *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	chs.nodes = append(chs.nodes, ch)
	ch.parent = parent
}
