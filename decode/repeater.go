package decode

import (
	"github.com/npillmayer/cascade/cssom"
)

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// edgeNames returns the four edge properties of a box property, e.g.
// "border-top-width" … "border-left-width" for ("border", "width").
func edgeNames(prefix, suffix string) []string {
	names := make([]string, 4)
	for i, dir := range fourDirs {
		names[i] = p(prefix, suffix, dir)
	}
	return names
}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// Repeater distributes up to four values onto a fixed list of properties.
// Operation decodes one term into the i-th property.
type Repeater struct {
	Names     []string
	Operation func(i int, name string, t cssom.Term, out *Assignments) bool
}

// NewRepeater creates a repeater for the four edges of a box property.
func NewRepeater(prefix, suffix string, op func(int, string, cssom.Term, *Assignments) bool) *Repeater {
	return &Repeater{Names: edgeNames(prefix, suffix), Operation: op}
}

// RepeatOverFourTermDeclaration expands the one to four terms of a declaration
// onto four edges, following the CSS box-edge rules:
//
//	1 value:  all edges
//	2 values: top/bottom, right/left
//	3 values: top, right/left, bottom
//	4 values: top, right, bottom, left
//
// A single CSS-wide keyword is set for all edges. Terms have to be separated
// by whitespace.
func (r *Repeater) RepeatOverFourTermDeclaration(d *cssom.Declaration, out *Assignments) bool {
	if genericInherit(d, out, r.Names...) {
		return true
	}
	if len(r.Names) > 4 {
		return false
	}
	for i, t := range d.Terms {
		if i > 0 && t.Operator() != cssom.OpNone {
			return false
		}
	}
	var terms [4]cssom.Term
	switch d.Len() {
	case 1:
		t := d.Terms[0]
		terms = [4]cssom.Term{t, t, t, t}
	case 2:
		terms = [4]cssom.Term{d.Terms[0], d.Terms[1], d.Terms[0], d.Terms[1]}
	case 3:
		terms = [4]cssom.Term{d.Terms[0], d.Terms[1], d.Terms[2], d.Terms[1]}
	case 4:
		terms = [4]cssom.Term{d.Terms[0], d.Terms[1], d.Terms[2], d.Terms[3]}
	default:
		tracer().Debugf("repeater: %d terms for %s", d.Len(), d.Property)
		return false
	}
	return r.Repeat(terms[:len(r.Names)], out)
}

// Repeat decodes term i into property i.
func (r *Repeater) Repeat(terms []cssom.Term, out *Assignments) bool {
	if len(terms) != len(r.Names) {
		return false
	}
	for i, name := range r.Names {
		if !r.Operation(i, name, terms[i], out) {
			return false
		}
	}
	return true
}
