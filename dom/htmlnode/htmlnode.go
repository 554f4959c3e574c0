/*
Package htmlnode adapts HTML parse trees of golang.org/x/net/html to interface
dom.Node.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmlnode

import (
	"io"
	"strings"

	"github.com/npillmayer/cascade/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node wraps an HTML node. Node values are comparable: two wrappers of the
// same *html.Node are equal.
type Node struct {
	h *html.Node
}

// Wrap adapts an HTML node. A nil node results in a nil dom.Node.
func Wrap(h *html.Node) dom.Node {
	if h == nil {
		return nil
	}
	return Node{h: h}
}

// Parse parses an HTML document and returns its document node.
func Parse(r io.Reader) (dom.Node, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return Wrap(h), nil
}

// HTMLNode returns the wrapped HTML node.
func (n Node) HTMLNode() *html.Node {
	return n.h
}

// HTMLNode unwraps a dom.Node created by this package. It returns nil for
// other implementations.
func HTMLNode(n dom.Node) *html.Node {
	if hn, ok := n.(Node); ok {
		return hn.h
	}
	return nil
}

func (n Node) IsElement() bool       { return n.h.Type == html.ElementNode }
func (n Node) Parent() dom.Node      { return Wrap(n.h.Parent) }
func (n Node) FirstChild() dom.Node  { return Wrap(n.h.FirstChild) }
func (n Node) LastChild() dom.Node   { return Wrap(n.h.LastChild) }
func (n Node) NextSibling() dom.Node { return Wrap(n.h.NextSibling) }
func (n Node) PrevSibling() dom.Node { return Wrap(n.h.PrevSibling) }

// TagName returns the lower-case tag name of an element.
func (n Node) TagName() string {
	if n.h.Type != html.ElementNode {
		return ""
	}
	if n.h.DataAtom != 0 {
		return n.h.DataAtom.String()
	}
	return strings.ToLower(n.h.Data)
}

// ID returns the value of the id attribute.
func (n Node) ID() string {
	id, _ := n.Attribute("id")
	return id
}

// Classes returns the whitespace-separated entries of the class attribute.
func (n Node) Classes() []string {
	cl, ok := n.Attribute("class")
	if !ok {
		return nil
	}
	return strings.Fields(cl)
}

// Attribute returns the value of an attribute. Attribute names are matched
// case-insensitively.
func (n Node) Attribute(name string) (string, bool) {
	for _, a := range n.h.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func (n Node) String() string {
	switch n.h.Type {
	case html.ElementNode:
		return "<" + n.TagName() + ">"
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	}
	return "#node"
}

// FindElement searches the subtree at n in document order for the first
// element with a given tag.
func FindElement(n dom.Node, tag string) dom.Node {
	if n == nil {
		return nil
	}
	if n.IsElement() && n.TagName() == tag {
		return n
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if r := FindElement(ch, tag); r != nil {
			return r
		}
	}
	return nil
}

// Body returns the <body> element of a document.
func Body(doc dom.Node) dom.Node {
	return FindElement(doc, atom.Body.String())
}

var _ dom.AttributeNode = Node{}
