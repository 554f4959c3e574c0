package styledtree

import (
	"sort"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/nodedata"
	"github.com/npillmayer/cascade/style"
	"github.com/npillmayer/cascade/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             dom.Node
	computedStyles      nodedata.NodeData
	pseudoStyles        map[cssom.PseudoElement]nodedata.NodeData
}

// NewNodeForDOMNode creates a new styled node linked to a DOM node.
func NewNodeForDOMNode(n dom.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.domNode = n
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// DOMNode gets the DOM node corresponding to this styled node.
func (sn *StyNode) DOMNode() dom.Node {
	return sn.domNode
}

// Styles returns the computed styles of the node, or nil.
func (sn *StyNode) Styles() nodedata.NodeData {
	return sn.computedStyles
}

// SetStyles sets the computed styles of a styled node.
func (sn *StyNode) SetStyles(styles nodedata.NodeData) {
	sn.computedStyles = styles
}

// PseudoStyles returns the computed styles of a pseudo-element, or nil.
func (sn *StyNode) PseudoStyles(pe cssom.PseudoElement) nodedata.NodeData {
	if pe == cssom.PseudoNone {
		return sn.computedStyles
	}
	return sn.pseudoStyles[pe]
}

// SetPseudoStyles sets the computed styles of a pseudo-element.
func (sn *StyNode) SetPseudoStyles(pe cssom.PseudoElement, styles nodedata.NodeData) {
	if pe == cssom.PseudoNone {
		sn.computedStyles = styles
		return
	}
	if sn.pseudoStyles == nil {
		sn.pseudoStyles = make(map[cssom.PseudoElement]nodedata.NodeData)
	}
	sn.pseudoStyles[pe] = styles
}

// Pseudos returns the pseudo-elements styles have been set for, sorted.
func (sn *StyNode) Pseudos() []cssom.PseudoElement {
	pes := make([]cssom.PseudoElement, 0, len(sn.pseudoStyles))
	for pe := range sn.pseudoStyles {
		pes = append(pes, pe)
	}
	sort.Slice(pes, func(i, j int) bool { return pes[i] < pes[j] })
	return pes
}

// GetPropertyValue returns the marker and value of a property. If the node
// has no value for it, inheritable properties cascade up the styled tree;
// as a last resort the default of the metadata table is used.
func (sn *StyNode) GetPropertyValue(key string, meta style.Metadata) (style.Property, cssom.Term) {
	if sn.computedStyles != nil {
		if p := sn.computedStyles.Property(key, true); !p.IsEmpty() {
			return p, sn.computedStyles.Value(key, true)
		}
	}
	if meta.IsInheritable(key) {
		tracer().Debugf("styling: cascading for key %s", key)
		for p := Node(sn.Parent()); p != nil; p = Node(p.Parent()) {
			if p.computedStyles == nil {
				continue
			}
			if prop := p.computedStyles.Property(key, true); !prop.IsEmpty() {
				return prop, p.computedStyles.Value(key, true)
			}
		}
	}
	return nodedata.Lookup(nil, meta, key)
}

// DisplayMode returns the display mode of the node. An element without a
// `display` value of its own gets the default display of its tag.
func (sn *StyNode) DisplayMode() style.DisplayMode {
	var display style.Property
	if sn.computedStyles != nil {
		display = sn.computedStyles.Property("display", false)
	}
	if display.IsEmpty() || display.IsKeyword() {
		if !dom.IsElement(sn.domNode) {
			return style.NoMode
		}
		display = style.DisplayForTag(sn.domNode.TagName())
	}
	mode, err := style.DisplayModeOf(display)
	if err != nil {
		tracer().Infof("styled node %s: %v", sn.domNode.TagName(), err)
	}
	return mode
}

// Position returns the position of the node together with its offsets.
// Offsets which cannot be interpreted as dimensions are left auto.
func (sn *StyNode) Position(meta style.Metadata) style.PositionT {
	p, _ := sn.GetPropertyValue("position", meta)
	pos := style.PositionOf(p)
	for dir, name := range style.OffsetProperties {
		prop, value := sn.GetPropertyValue(name, meta)
		var err error
		if pos, err = pos.WithOffset(style.PosDir(dir), prop, value); err != nil {
			tracer().Infof("styled node %s: %v", sn.domNode.TagName(), err)
		}
	}
	return pos
}
