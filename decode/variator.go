package decode

import (
	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/style"
)

// AllVariants addresses every variant of a Variator, e.g. for inheritance.
const AllVariants = -1

// Variant is one component of a shorthand property.
//
// Decode is called with the terms of the shorthand and the index of the term
// to decode. It may consume further terms by advancing *i to the last term
// consumed. Decode must write to out only on success.
//
// Variants without a Condition are tried only for terms not preceded by a
// separator. A Condition is responsible for checking separators itself.
type Variant struct {
	Name      string
	Decode    func(terms []cssom.Term, i *int, out *Assignments) bool
	Condition func(v *Variator, i int) bool
}

// Variator decodes shorthand properties whose components may appear in any
// order. Each variant may be used at most once; for every term the first
// variant accepting it wins.
//
// A Variator holds state for one decoding run and must not be shared between
// goroutines.
type Variator struct {
	variants []Variant
	passed   []bool
	passedAt []int
	terms    []cssom.Term
}

// NewVariator creates a variator from a list of variants. The order of the
// variants is the order in which they are tried.
func NewVariator(variants ...Variant) *Variator {
	return &Variator{
		variants: variants,
		passed:   make([]bool, len(variants)),
		passedAt: make([]int, len(variants)),
	}
}

// Names returns the properties set by the variants.
func (v *Variator) Names() []string {
	names := make([]string, len(v.variants))
	for i, vr := range v.variants {
		names[i] = vr.Name
	}
	return names
}

// AssignTerms sets the terms to decode and resets the variants.
func (v *Variator) AssignTerms(terms ...cssom.Term) {
	v.terms = terms
	for i := range v.passed {
		v.passed[i] = false
		v.passedAt[i] = -1
	}
}

// AssignTermsFromDeclaration sets the terms of a declaration.
func (v *Variator) AssignTermsFromDeclaration(d *cssom.Declaration) {
	v.AssignTerms(d.Terms...)
}

// Terms returns the terms currently decoded.
func (v *Variator) Terms() []cssom.Term {
	return v.terms
}

// Passed is true if a variant has accepted a term.
func (v *Variator) Passed(variant int) bool {
	return v.passed[variant]
}

// PassedAt returns the index of the (first) term a variant accepted, or -1.
func (v *Variator) PassedAt(variant int) int {
	return v.passedAt[variant]
}

// checkInherit handles a CSS-wide keyword for one variant or all of them.
// Variants set this way count as passed.
func (v *Variator) checkInherit(variant int, t cssom.Term, out *Assignments) bool {
	id, ok := identOf(t)
	if !ok || !isCSSWide(id) {
		return false
	}
	if variant == AllVariants {
		for k, vr := range v.variants {
			out.Set(vr.Name, style.Property(id), nil)
			v.passed[k], v.passedAt[k] = true, 0
		}
	} else {
		out.Set(v.variants[variant].Name, style.Property(id), nil)
		v.passed[variant], v.passedAt[variant] = true, 0
	}
	return true
}

// Vary decodes the terms. A single CSS-wide keyword is set for all variants.
// Vary fails if any term is not accepted by any remaining variant.
func (v *Variator) Vary(out *Assignments) bool {
	if len(v.terms) == 1 && v.checkInherit(AllVariants, v.terms[0], out) {
		return true
	}
	return v.vary(out)
}

func (v *Variator) vary(out *Assignments) bool {
	for i := 0; i < len(v.terms); i++ {
		passed := false
		for k, vr := range v.variants {
			if v.passed[k] {
				continue
			}
			if vr.Condition != nil {
				if !vr.Condition(v, i) {
					continue
				}
			} else if v.terms[i].Operator() != cssom.OpNone {
				continue
			}
			start := i
			if vr.Decode(v.terms, &i, out) {
				v.passed[k], v.passedAt[k] = true, start
				passed = true
				break
			}
			i = start
		}
		if !passed {
			tracer().Debugf("variator: no variant accepts term %v", v.terms[i])
			return false
		}
	}
	return true
}

// AssignDefaults sets every variant which has not accepted a term to
// "initial". Shorthands reset the components they omit.
func (v *Variator) AssignDefaults(out *Assignments) {
	for k, vr := range v.variants {
		if !v.passed[k] {
			out.Set(vr.Name, style.Initial, nil)
		}
	}
}

// TryOneTermVariant decodes a single-term declaration with one variant, e.g.
// border-top-style with the style variant of a border variator.
func (v *Variator) TryOneTermVariant(variant int, d *cssom.Declaration, out *Assignments) bool {
	if d.Len() != 1 {
		return false
	}
	if v.checkInherit(variant, d.Terms[0], out) {
		return true
	}
	v.AssignTerms(d.Terms[0].WithOperator(cssom.OpNone))
	i := 0
	return v.variants[variant].Decode(v.terms, &i, out)
}

// TryMultiTermVariant decodes all of terms with one variant.
func (v *Variator) TryMultiTermVariant(variant int, out *Assignments, terms ...cssom.Term) bool {
	if len(terms) == 1 && v.checkInherit(variant, terms[0], out) {
		return true
	}
	v.AssignTerms(terms...)
	for i := 0; i < len(v.terms); i++ {
		if !v.variants[variant].Decode(v.terms, &i, out) {
			return false
		}
	}
	return true
}

// TryListOfOneTermVariant decodes a comma-separated list where every item is
// a single term, decoded by one variant. The result is a list of
// PropertyValue items.
func (v *Variator) TryListOfOneTermVariant(variant int, d *cssom.Declaration, out *Assignments) bool {
	if d.Len() == 1 && v.checkInherit(variant, d.Terms[0], out) {
		return true
	}
	name := v.variants[variant].Name
	items := make([]cssom.Term, 0, d.Len())
	for k, t := range d.Terms {
		if (k == 0 && t.Operator() != cssom.OpNone) || (k > 0 && t.Operator() != cssom.OpComma) {
			return false
		}
		tmp := NewAssignments()
		v.AssignTerms(t.WithOperator(cssom.OpNone))
		i := 0
		if !v.variants[variant].Decode(v.terms, &i, tmp) {
			return false
		}
		items = append(items, listItem(tmp, name, k))
	}
	out.Set(name, style.ValueList, cssom.NewList(items...))
	return true
}

// TryListOfMultiTermVariant decodes a comma-separated list where every item
// may consist of several terms, decoded by one variant.
func (v *Variator) TryListOfMultiTermVariant(variant int, d *cssom.Declaration, out *Assignments) bool {
	if d.Len() == 1 && v.checkInherit(variant, d.Terms[0], out) {
		return true
	}
	name := v.variants[variant].Name
	groups := splitList(d.Terms)
	items := make([]cssom.Term, 0, len(groups))
	for k, group := range groups {
		tmp := NewAssignments()
		v.AssignTerms(group...)
		for i := 0; i < len(group); i++ {
			if !v.variants[variant].Decode(v.terms, &i, tmp) {
				return false
			}
		}
		if !tmp.Has(name) {
			return false
		}
		items = append(items, listItem(tmp, name, k))
	}
	out.Set(name, style.ValueList, cssom.NewList(items...))
	return true
}

// VaryList decodes a comma-separated list of shorthand groups, e.g. the layers
// of background. Every group is decoded by a full Vary pass. Every variant
// results in a list with one item per group; variants omitted from a group get
// an "initial" item. Variants listed in singles are not list-valued: they may
// occur in the final group only.
func (v *Variator) VaryList(d *cssom.Declaration, out *Assignments, singles ...int) bool {
	if d.Len() == 1 && v.checkInherit(AllVariants, d.Terms[0], out) {
		return true
	}
	isSingle := make([]bool, len(v.variants))
	for _, s := range singles {
		isSingle[s] = true
	}
	groups := splitList(d.Terms)
	lists := make([][]cssom.Term, len(v.variants))
	result := NewAssignments()
	for g, group := range groups {
		last := g == len(groups)-1
		tmp := NewAssignments()
		v.AssignTerms(group...)
		if !v.vary(tmp) {
			return false
		}
		for k, vr := range v.variants {
			if isSingle[k] {
				if v.passed[k] {
					if !last {
						tracer().Debugf("variator: %s only allowed in final group", vr.Name)
						return false
					}
					result.Set(vr.Name, tmp.Property(vr.Name), tmp.Value(vr.Name))
				}
				continue
			}
			if !v.passed[k] {
				tmp.Set(vr.Name, style.Initial, nil)
			}
			lists[k] = append(lists[k], listItem(tmp, vr.Name, g))
		}
	}
	for k, vr := range v.variants {
		if isSingle[k] {
			if !result.Has(vr.Name) {
				result.Set(vr.Name, style.Initial, nil)
			}
			continue
		}
		result.Set(vr.Name, style.ValueList, cssom.NewList(lists[k]...))
	}
	out.merge(result)
	return true
}

// listItem wraps the assignment for name into a list item; items after the
// first are comma-separated.
func listItem(a *Assignments, name string, index int) cssom.Term {
	var item cssom.Term = NewPropertyValue(a.Property(name), a.Value(name))
	if index > 0 {
		item = item.WithOperator(cssom.OpComma)
	}
	return item
}

// splitList splits terms into groups at comma separators. The first term of
// every group is stripped of its separator.
func splitList(terms []cssom.Term) [][]cssom.Term {
	var groups [][]cssom.Term
	var group []cssom.Term
	for i, t := range terms {
		if i > 0 && t.Operator() == cssom.OpComma {
			groups = append(groups, group)
			group = nil
		}
		if len(group) == 0 {
			t = t.WithOperator(cssom.OpNone)
		}
		group = append(group, t)
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}
	return groups
}
