package nodedata

import (
	"sort"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/decode"
	"github.com/npillmayer/cascade/style"
)

// quad is the entry for a property: own and inherited marker and value.
// The declaration is the provenance of the own value.
type quad struct {
	own            style.Property
	ownValue       cssom.Term
	inherited      style.Property
	inheritedValue cssom.Term
	source         *cssom.Declaration
}

// Quadruple is a NodeData keeping a single map of entries.
type Quadruple struct {
	dec   *decode.Decoder
	meta  style.Metadata
	props map[string]*quad
}

// NewQuadruple creates an empty NodeData backed by a single map.
func NewQuadruple(dec *decode.Decoder, meta style.Metadata) NodeData {
	return &Quadruple{
		dec:   dec,
		meta:  meta,
		props: make(map[string]*quad),
	}
}

func (q *Quadruple) entry(name string) *quad {
	e, ok := q.props[name]
	if !ok {
		e = &quad{}
		q.props[name] = e
	}
	return e
}

// Push decodes a declaration. Invalid or unsupported declarations are
// dropped and the error is returned.
func (q *Quadruple) Push(d *cssom.Declaration) error {
	return decodeInto(q.dec, d, func(name string, p style.Property, v cssom.Term) {
		e := q.entry(name)
		e.own, e.ownValue, e.source = p, v, d
	})
}

// InheritFrom panics if parent is not a *Quadruple.
func (q *Quadruple) InheritFrom(parent NodeData) {
	if parent == nil {
		return
	}
	par, ok := parent.(*Quadruple)
	if !ok {
		panic(mismatch(q, parent))
	}
	for name, pe := range par.props {
		p, v := pe.own, pe.ownValue
		if p.IsEmpty() {
			p, v = pe.inherited, pe.inheritedValue
		}
		if p.IsEmpty() {
			continue
		}
		var own style.Property
		if e, ok := q.props[name]; ok {
			own = e.own
		}
		if inherits(q.meta, name, own) {
			e := q.entry(name)
			e.inherited, e.inheritedValue = p, v
		}
	}
}

func (q *Quadruple) Concretize() {
	for name, e := range q.props {
		if p, v, ok := concrete(q.meta, name, e.own, e.inherited, e.inheritedValue); ok {
			e.own, e.ownValue = p, v
		}
		if e.inherited.IsKeyword() {
			v, _ := q.meta.DefaultValue(name)
			e.inherited, e.inheritedValue = q.meta.DefaultProperty(name), v
		}
	}
}

func (q *Quadruple) Property(name string, includeInherited bool) style.Property {
	e, ok := q.props[name]
	if !ok {
		return style.NullStyle
	}
	if e.own.IsEmpty() && includeInherited {
		return e.inherited
	}
	return e.own
}

func (q *Quadruple) Value(name string, includeInherited bool) cssom.Term {
	e, ok := q.props[name]
	if !ok {
		return nil
	}
	if e.own.IsEmpty() && includeInherited {
		return e.inheritedValue
	}
	return e.ownValue
}

func (q *Quadruple) SourceDeclaration(name string) *cssom.Declaration {
	if e, ok := q.props[name]; ok {
		return e.source
	}
	return nil
}

func (q *Quadruple) PropertyNames() []string {
	names := make([]string, 0, len(q.props))
	for name := range q.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ NodeData = &Quadruple{}
