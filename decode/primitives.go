package decode

import (
	"image/color"
	"math"
	"strings"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/style"
	"golang.org/x/image/colornames"
)

// ValueRange restricts numeric values.
type ValueRange uint8

// Value ranges for numeric primitives.
const (
	AllowAll         ValueRange = iota // any value
	DisallowNegative                   // negative values are invalid
	TruncateNegative                   // negative values are replaced by zero
	DisallowZero                       // zero and negative values are invalid
)

// checkRange applies a value range to a number and returns the (possibly
// truncated) number.
func checkRange(f float64, rng ValueRange) (float64, bool) {
	switch rng {
	case DisallowNegative:
		return f, f >= 0
	case TruncateNegative:
		return math.Max(f, 0), true
	case DisallowZero:
		return f, f > 0
	}
	return f, true
}

// keywords is a set of identifiers valid for a property.
type keywords map[string]struct{}

func kw(idents ...string) keywords {
	set := make(keywords, len(idents))
	for _, id := range idents {
		set[id] = struct{}{}
	}
	return set
}

func (k keywords) has(id string) bool {
	_, ok := k[id]
	return ok
}

func (k keywords) with(idents ...string) keywords {
	set := make(keywords, len(k)+len(idents))
	for id := range k {
		set[id] = struct{}{}
	}
	for _, id := range idents {
		set[id] = struct{}{}
	}
	return set
}

func isCSSWide(id string) bool {
	return id == "inherit" || id == "initial" || id == "unset"
}

// identOf returns the lower-case name of an identifier term.
func identOf(t cssom.Term) (string, bool) {
	if id, ok := t.(cssom.Ident); ok {
		return strings.ToLower(id.Name), true
	}
	return "", false
}

// --- Term primitives -------------------------------------------------------
//
// Term primitives decode a single term into a property. They ignore the term's
// operator (callers check separators) and store values without operator.
// They write to out only on success.

// genericTermIdent accepts one of the keywords. CSS-wide keywords are accepted
// iff wide is set.
func genericTermIdent(t cssom.Term, name string, allowed keywords, wide bool, out *Assignments) bool {
	id, ok := identOf(t)
	if !ok {
		return false
	}
	if isCSSWide(id) {
		if !wide {
			return false
		}
		out.Set(name, style.Property(id), nil)
		return true
	}
	if allowed.has(id) {
		out.Set(name, style.Property(id), nil)
		return true
	}
	return false
}

// genericTermColor accepts colors in any notation.
func genericTermColor(t cssom.Term, name string, out *Assignments) bool {
	c, ok := colorOf(t)
	if !ok {
		return false
	}
	out.Set(name, style.ValueColor, cssom.NewColor(c))
	return true
}

// genericTermLength accepts lengths within a value range. A unitless zero is
// a valid length.
func genericTermLength(t cssom.Term, name string, rng ValueRange, out *Assignments) bool {
	var l cssom.Length
	switch v := t.(type) {
	case cssom.Length:
		l = cssom.NewLength(v.Number, v.Unit)
	case cssom.Integer:
		if v.Number != 0 {
			return false
		}
		l = cssom.NewLength(0, cssom.UnitNone)
	case cssom.Number:
		if v.Number != 0 {
			return false
		}
		l = cssom.NewLength(0, cssom.UnitNone)
	default:
		return false
	}
	n, ok := checkRange(l.Number, rng)
	if !ok {
		return false
	}
	l.Number = n
	out.Set(name, style.ValueLength, l)
	return true
}

// genericTermPercent accepts percentages within a value range.
func genericTermPercent(t cssom.Term, name string, rng ValueRange, out *Assignments) bool {
	p, ok := t.(cssom.Percent)
	if !ok {
		return false
	}
	n, ok := checkRange(p.Number, rng)
	if !ok {
		return false
	}
	out.Set(name, style.ValuePercent, cssom.NewPercent(n))
	return true
}

// genericTermNumber accepts numbers (and integers) within a value range.
func genericTermNumber(t cssom.Term, name string, rng ValueRange, out *Assignments) bool {
	var f float64
	switch v := t.(type) {
	case cssom.Number:
		f = v.Number
	case cssom.Integer:
		f = float64(v.Number)
	default:
		return false
	}
	n, ok := checkRange(f, rng)
	if !ok {
		return false
	}
	out.Set(name, style.ValueNumber, cssom.NewNumber(n))
	return true
}

// genericTermInteger accepts integers within a value range.
func genericTermInteger(t cssom.Term, name string, rng ValueRange, out *Assignments) bool {
	i, ok := t.(cssom.Integer)
	if !ok {
		return false
	}
	n, ok := checkRange(float64(i.Number), rng)
	if !ok {
		return false
	}
	out.Set(name, style.ValueInteger, cssom.NewInteger(int(n)))
	return true
}

// genericTermURI accepts url(…) terms.
func genericTermURI(t cssom.Term, name string, out *Assignments) bool {
	u, ok := t.(cssom.URI)
	if !ok {
		return false
	}
	out.Set(name, style.ValueURI, cssom.NewURI(u.Location))
	return true
}

// --- Declaration primitives ------------------------------------------------
//
// Declaration primitives decode declarations consisting of a single term.
// The property name is taken from the declaration.

// genericInherit handles a single CSS-wide keyword for a set of properties.
func genericInherit(d *cssom.Declaration, out *Assignments, names ...string) bool {
	if d.Len() != 1 {
		return false
	}
	id, ok := identOf(d.Terms[0])
	if !ok || !isCSSWide(id) {
		return false
	}
	for _, name := range names {
		out.Set(name, style.Property(id), nil)
	}
	return true
}

func genericOneIdent(allowed keywords) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		return d.Len() == 1 && genericTermIdent(d.Terms[0], d.Property, allowed, true, out)
	}
}

func genericOneIdentOrColor(allowed keywords) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		if d.Len() != 1 {
			return false
		}
		t := d.Terms[0]
		return genericTermIdent(t, d.Property, allowed, true, out) ||
			genericTermColor(t, d.Property, out)
	}
}

func genericOneIdentOrLength(allowed keywords, rng ValueRange) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		if d.Len() != 1 {
			return false
		}
		t := d.Terms[0]
		return genericTermIdent(t, d.Property, allowed, true, out) ||
			genericTermLength(t, d.Property, rng, out)
	}
}

func genericOneIdentOrLengthOrPercent(allowed keywords, rng ValueRange) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		if d.Len() != 1 {
			return false
		}
		t := d.Terms[0]
		return genericTermIdent(t, d.Property, allowed, true, out) ||
			genericTermLength(t, d.Property, rng, out) ||
			genericTermPercent(t, d.Property, rng, out)
	}
}

func genericOneIdentOrInteger(allowed keywords, rng ValueRange) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		if d.Len() != 1 {
			return false
		}
		t := d.Terms[0]
		return genericTermIdent(t, d.Property, allowed, true, out) ||
			genericTermInteger(t, d.Property, rng, out)
	}
}

func genericOneIdentOrNumber(allowed keywords, rng ValueRange) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		if d.Len() != 1 {
			return false
		}
		t := d.Terms[0]
		return genericTermIdent(t, d.Property, allowed, true, out) ||
			genericTermNumber(t, d.Property, rng, out)
	}
}

func genericOneIdentOrURI(allowed keywords) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		if d.Len() != 1 {
			return false
		}
		t := d.Terms[0]
		return genericTermIdent(t, d.Property, allowed, true, out) ||
			genericTermURI(t, d.Property, out)
	}
}

// --- Colors ----------------------------------------------------------------

// colorOf interprets a term as a color: hash notation, a color name,
// "transparent", or rgb()/rgba().
func colorOf(t cssom.Term) (color.RGBA, bool) {
	switch v := t.(type) {
	case cssom.Color:
		return v.Color, true
	case cssom.Ident:
		name := strings.ToLower(v.Name)
		if name == "transparent" {
			return color.RGBA{}, true
		}
		c, ok := colornames.Map[name]
		return c, ok
	case cssom.Function:
		if v.Name == "rgb" || v.Name == "rgba" {
			return rgbFunction(v.Args)
		}
	}
	return color.RGBA{}, false
}

func rgbFunction(args []cssom.Term) (color.RGBA, bool) {
	if len(args) != 3 && len(args) != 4 {
		return color.RGBA{}, false
	}
	var comp [4]uint8
	comp[3] = 0xff
	for i, arg := range args {
		var f float64
		switch a := arg.(type) {
		case cssom.Integer:
			f = float64(a.Number)
		case cssom.Number:
			f = a.Number
		case cssom.Percent:
			f = a.Number * 255 / 100
		default:
			return color.RGBA{}, false
		}
		if _, pc := arg.(cssom.Percent); i == 3 && !pc {
			f *= 255 // alpha in [0…1]
		}
		comp[i] = uint8(math.Round(math.Min(math.Max(f, 0), 255)))
	}
	return color.RGBA{R: comp[0], G: comp[1], B: comp[2], A: comp[3]}, true
}
