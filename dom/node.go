package dom

// Node is an element-like node of a document tree.
// Navigation methods return nil if there is no such node.
type Node interface {
	IsElement() bool   // is this an element node?
	Parent() Node      // parent node or nil for the document root
	FirstChild() Node  // first child node of any kind
	LastChild() Node   // last child node of any kind
	NextSibling() Node // next sibling of any kind
	PrevSibling() Node // previous sibling of any kind
	TagName() string   // tag name of an element, "" otherwise
	ID() string        // value of the id attribute or ""
	Classes() []string // classes from the class attribute
}

// AttributeNode is a node which gives access to its attributes.
type AttributeNode interface {
	Node
	Attribute(name string) (string, bool)
}

// Attribute returns an attribute of a node, if the node exposes its
// attributes.
func Attribute(n Node, name string) (string, bool) {
	if an, ok := n.(AttributeNode); ok {
		return an.Attribute(name)
	}
	tracer().Debugf("node %s does not expose attributes", n.TagName())
	return "", false
}

// IsElement is a nil-safe predicate for element nodes.
func IsElement(n Node) bool {
	return n != nil && n.IsElement()
}

// ParentElement returns the nearest ancestor which is an element, or nil.
func ParentElement(n Node) Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.IsElement() {
			return p
		}
	}
	return nil
}

// Root returns the topmost ancestor of n (which may be n itself).
func Root(n Node) Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		n = p
	}
	return n
}
