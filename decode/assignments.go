package decode

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/style"
)

// Assignments is the result of decoding a declaration: for every property,
// a marker and an optional value term. Assignments keep the order in which
// properties were first set.
type Assignments struct {
	names  []string
	props  map[string]style.Property
	values map[string]cssom.Term
}

// NewAssignments creates an empty set of assignments.
func NewAssignments() *Assignments {
	return &Assignments{
		props:  make(map[string]style.Property),
		values: make(map[string]cssom.Term),
	}
}

// Set assigns a marker and value to a property. A nil value clears a value set
// earlier.
func (a *Assignments) Set(name string, p style.Property, value cssom.Term) {
	if _, ok := a.props[name]; !ok {
		a.names = append(a.names, name)
	}
	a.props[name] = p
	if value == nil {
		delete(a.values, name)
	} else {
		a.values[name] = value
	}
}

// Property returns the marker for a property or style.NullStyle.
func (a *Assignments) Property(name string) style.Property {
	return a.props[name]
}

// Value returns the value term for a property or nil.
func (a *Assignments) Value(name string) cssom.Term {
	return a.values[name]
}

// Has is true if a property is assigned.
func (a *Assignments) Has(name string) bool {
	_, ok := a.props[name]
	return ok
}

// Names returns the assigned properties in assignment order.
func (a *Assignments) Names() []string {
	return a.names
}

// Len returns the number of assigned properties.
func (a *Assignments) Len() int {
	return len(a.names)
}

func (a *Assignments) merge(other *Assignments) {
	for _, name := range other.names {
		a.Set(name, other.props[name], other.values[name])
	}
}

func (a *Assignments) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range a.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name + ":" + string(a.props[name]))
		if v := a.values[name]; v != nil {
			b.WriteString("=" + v.String())
		}
	}
	b.WriteString("}")
	return b.String()
}

// --- Property values as list items -----------------------------------------

// PropertyValue is a list item of a list-valued property, e.g. one layer of
// background-image. It is a term holding a marker and the marker's value.
type PropertyValue struct {
	Property style.Property
	Term     cssom.Term
	op       cssom.Operator
}

// NewPropertyValue creates a list item.
func NewPropertyValue(p style.Property, value cssom.Term) PropertyValue {
	return PropertyValue{Property: p, Term: value}
}

func (pv PropertyValue) Value() any               { return pv.Term }
func (pv PropertyValue) Operator() cssom.Operator { return pv.op }

func (pv PropertyValue) WithOperator(op cssom.Operator) cssom.Term {
	pv.op = op
	return pv
}

func (pv PropertyValue) String() string {
	if pv.Term != nil {
		return pv.Term.String()
	}
	return string(pv.Property)
}

// Equals compares two list items, including their operators.
func (pv PropertyValue) Equals(other cssom.Term) bool {
	o, ok := other.(PropertyValue)
	if !ok || pv.Property != o.Property || pv.op != o.op {
		return false
	}
	return cssom.TermsEqual(pv.Term, o.Term)
}

// GoString helps debugging test failures.
func (pv PropertyValue) GoString() string {
	return fmt.Sprintf("PropertyValue{%s, %v, %s}", pv.Property, pv.Term, pv.op)
}

var _ cssom.Term = PropertyValue{}
