package nodedata

import (
	"sort"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/decode"
	"github.com/npillmayer/cascade/style"
)

// MultiMap is a NodeData keeping a map per slot. Lookups of own values do not
// touch the inherited slots.
type MultiMap struct {
	dec             *decode.Decoder
	meta            style.Metadata
	own             map[string]style.Property
	ownValues       map[string]cssom.Term
	inherited       map[string]style.Property
	inheritedValues map[string]cssom.Term
	sources         map[string]*cssom.Declaration
}

// NewMultiMap creates an empty NodeData backed by separate maps.
func NewMultiMap(dec *decode.Decoder, meta style.Metadata) NodeData {
	return &MultiMap{
		dec:             dec,
		meta:            meta,
		own:             make(map[string]style.Property),
		ownValues:       make(map[string]cssom.Term),
		inherited:       make(map[string]style.Property),
		inheritedValues: make(map[string]cssom.Term),
		sources:         make(map[string]*cssom.Declaration),
	}
}

func setOrDelete(m map[string]cssom.Term, name string, v cssom.Term) {
	if v == nil {
		delete(m, name)
		return
	}
	m[name] = v
}

func (mm *MultiMap) Push(d *cssom.Declaration) error {
	return decodeInto(mm.dec, d, func(name string, p style.Property, v cssom.Term) {
		mm.own[name] = p
		setOrDelete(mm.ownValues, name, v)
		mm.sources[name] = d
	})
}

// InheritFrom panics if parent is not a *MultiMap.
func (mm *MultiMap) InheritFrom(parent NodeData) {
	if parent == nil {
		return
	}
	par, ok := parent.(*MultiMap)
	if !ok {
		panic(mismatch(mm, parent))
	}
	copyFrom := func(name string, p style.Property, v cssom.Term) {
		if p.IsEmpty() || !inherits(mm.meta, name, mm.own[name]) {
			return
		}
		mm.inherited[name] = p
		setOrDelete(mm.inheritedValues, name, v)
	}
	for name, p := range par.inherited {
		if _, ok := par.own[name]; !ok {
			copyFrom(name, p, par.inheritedValues[name])
		}
	}
	for name, p := range par.own {
		copyFrom(name, p, par.ownValues[name])
	}
}

func (mm *MultiMap) Concretize() {
	for name, p := range mm.own {
		if c, v, ok := concrete(mm.meta, name, p, mm.inherited[name], mm.inheritedValues[name]); ok {
			mm.own[name] = c
			setOrDelete(mm.ownValues, name, v)
		}
	}
	for name, p := range mm.inherited {
		if p.IsKeyword() {
			v, _ := mm.meta.DefaultValue(name)
			mm.inherited[name] = mm.meta.DefaultProperty(name)
			setOrDelete(mm.inheritedValues, name, v)
		}
	}
}

func (mm *MultiMap) Property(name string, includeInherited bool) style.Property {
	if p, ok := mm.own[name]; ok && !p.IsEmpty() {
		return p
	}
	if includeInherited {
		return mm.inherited[name]
	}
	return style.NullStyle
}

func (mm *MultiMap) Value(name string, includeInherited bool) cssom.Term {
	if p, ok := mm.own[name]; ok && !p.IsEmpty() {
		return mm.ownValues[name]
	}
	if includeInherited {
		return mm.inheritedValues[name]
	}
	return nil
}

func (mm *MultiMap) SourceDeclaration(name string) *cssom.Declaration {
	return mm.sources[name]
}

func (mm *MultiMap) PropertyNames() []string {
	names := make([]string, 0, len(mm.own)+len(mm.inherited))
	for name := range mm.own {
		names = append(names, name)
	}
	for name := range mm.inherited {
		if _, ok := mm.own[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

var _ NodeData = &MultiMap{}
