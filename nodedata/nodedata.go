package nodedata

import (
	"fmt"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/decode"
	"github.com/npillmayer/cascade/style"
)

// NodeData is a typed property store for a node or pseudo-element.
type NodeData interface {
	// Push decodes a declaration and records its assignments as own values.
	Push(d *cssom.Declaration) error
	// InheritFrom copies inheritable (or explicitly inherited) values of parent.
	InheritFrom(parent NodeData)
	// Concretize resolves CSS-wide keywords.
	Concretize()
	// Property returns the marker for a property, or style.NullStyle.
	Property(name string, includeInherited bool) style.Property
	// Value returns the value term for a property, or nil.
	Value(name string, includeInherited bool) cssom.Term
	// SourceDeclaration returns the declaration an own value stems from.
	SourceDeclaration(name string) *cssom.Declaration
	// PropertyNames returns the names of all own and inherited properties, sorted.
	PropertyNames() []string
}

// Factory creates empty NodeData instances. NewQuadruple and NewMultiMap are
// factories.
type Factory func(*decode.Decoder, style.Metadata) NodeData

var _ Factory = NewQuadruple
var _ Factory = NewMultiMap

// Lookup returns the resolved marker and value of a property: the own value,
// the inherited value, or the default value from the metadata table.
func Lookup(nd NodeData, meta style.Metadata, name string) (style.Property, cssom.Term) {
	if nd != nil {
		if p := nd.Property(name, true); !p.IsEmpty() {
			return p, nd.Value(name, true)
		}
	}
	v, _ := meta.DefaultValue(name)
	return meta.DefaultProperty(name), v
}

// concrete resolves a CSS-wide keyword p for property name, given the
// inherited marker and value. It returns false if p is not a keyword.
func concrete(meta style.Metadata, name string, p style.Property,
	inh style.Property, inhValue cssom.Term) (style.Property, cssom.Term, bool) {
	//
	if !p.IsKeyword() {
		return p, nil, false
	}
	inherit := p.IsInherit() || (p.IsUnset() && meta.IsInheritable(name))
	if inherit && !inh.IsEmpty() && !inh.IsKeyword() {
		return inh, inhValue, true
	}
	v, _ := meta.DefaultValue(name)
	return meta.DefaultProperty(name), v, true
}

// inherits tells if a property is copied from a parent, given the child's
// own marker.
func inherits(meta style.Metadata, name string, own style.Property) bool {
	return own.IsInherit() || meta.IsInheritable(name)
}

func mismatch(child, parent NodeData) string {
	return fmt.Sprintf("nodedata: cannot inherit from %T into %T", parent, child)
}

// decodeInto decodes a declaration and calls set for every assignment.
func decodeInto(dec *decode.Decoder, d *cssom.Declaration,
	set func(name string, p style.Property, v cssom.Term)) error {
	//
	a, err := dec.Decode(d)
	if err != nil {
		tracer().Debugf("dropping declaration: %v", err)
		return err
	}
	for _, name := range a.Names() {
		set(name, a.Property(name), a.Value(name))
	}
	return nil
}
