package cssom

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Operator is the separator which precedes a term within a value.
// "12px/1.5" holds two terms, the second one with operator OpSlash.
type Operator uint8

// Separators between terms. Juxtaposition (whitespace) is OpNone.
const (
	OpNone Operator = iota
	OpComma
	OpSlash
)

func (op Operator) prefix() string {
	switch op {
	case OpComma:
		return ", "
	case OpSlash:
		return "/"
	}
	return ""
}

func (op Operator) String() string {
	switch op {
	case OpComma:
		return "comma"
	case OpSlash:
		return "slash"
	}
	return "none"
}

// Term is a single component of a declaration value.
// Terms are immutable; WithOperator returns a modified copy.
type Term interface {
	Value() any                 // the Go value carried by the term
	Operator() Operator         // separator preceding the term
	WithOperator(Operator) Term // copy of the term with a different operator
	String() string             // CSS notation, without operator
}

// Ident is an identifier term, e.g. "solid" or "inherit".
type Ident struct {
	Name string
	op   Operator
}

// Number is a real number term without unit.
type Number struct {
	Number float64
	op     Operator
}

// Integer is an integer term without unit.
type Integer struct {
	Number int
	op     Operator
}

// Length is a number with a length unit. Unitless zeros are Lengths with an
// empty unit.
type Length struct {
	Number float64
	Unit   Unit
	op     Operator
}

// Percent is a percentage term; 50% is represented as Number=50.
type Percent struct {
	Number float64
	op     Operator
}

// Color is an RGBA color term.
type Color struct {
	Color color.RGBA
	op    Operator
}

// String is a quoted string term. Text is unquoted.
type String struct {
	Text string
	op   Operator
}

// URI is a url(…) term.
type URI struct {
	Location string
	op       Operator
}

// Function is a functional notation, e.g. rgb(0, 0, 255) or counter(x).
type Function struct {
	Name string
	Args []Term
	op   Operator
}

// List is an ordered list value. Items carry their own operators.
type List struct {
	Items []Term
	op    Operator
}

// --- Constructors ----------------------------------------------------------

// NewIdent creates an identifier term.
func NewIdent(name string) Ident { return Ident{Name: name} }

// NewNumber creates a number term.
func NewNumber(n float64) Number { return Number{Number: n} }

// NewInteger creates an integer term.
func NewInteger(n int) Integer { return Integer{Number: n} }

// NewLength creates a length term.
func NewLength(n float64, unit Unit) Length { return Length{Number: n, Unit: unit} }

// NewPercent creates a percentage term.
func NewPercent(n float64) Percent { return Percent{Number: n} }

// NewColor creates a color term.
func NewColor(c color.RGBA) Color { return Color{Color: c} }

// NewString creates a string term from unquoted text.
func NewString(s string) String { return String{Text: s} }

// NewURI creates a URI term.
func NewURI(loc string) URI { return URI{Location: loc} }

// NewFunction creates a function term.
func NewFunction(name string, args ...Term) Function {
	return Function{Name: strings.ToLower(name), Args: args}
}

// NewList creates a list term.
func NewList(items ...Term) List { return List{Items: items} }

// --- Term implementations --------------------------------------------------

func (t Ident) Value() any                      { return t.Name }
func (t Ident) Operator() Operator              { return t.op }
func (t Ident) WithOperator(op Operator) Term   { t.op = op; return t }
func (t Ident) String() string                  { return t.Name }
func (t Number) Value() any                     { return t.Number }
func (t Number) Operator() Operator             { return t.op }
func (t Number) WithOperator(op Operator) Term  { t.op = op; return t }
func (t Number) String() string                 { return formatFloat(t.Number) }
func (t Integer) Value() any                    { return t.Number }
func (t Integer) Operator() Operator            { return t.op }
func (t Integer) WithOperator(op Operator) Term { t.op = op; return t }
func (t Integer) String() string                { return strconv.Itoa(t.Number) }
func (t Length) Value() any                     { return t.Number }
func (t Length) Operator() Operator             { return t.op }
func (t Length) WithOperator(op Operator) Term  { t.op = op; return t }
func (t Length) String() string                 { return formatFloat(t.Number) + string(t.Unit) }
func (t Percent) Value() any                    { return t.Number }
func (t Percent) Operator() Operator            { return t.op }
func (t Percent) WithOperator(op Operator) Term { t.op = op; return t }
func (t Percent) String() string                { return formatFloat(t.Number) + "%" }
func (t Color) Value() any                      { return t.Color }
func (t Color) Operator() Operator              { return t.op }
func (t Color) WithOperator(op Operator) Term   { t.op = op; return t }
func (t String) Value() any                     { return t.Text }
func (t String) Operator() Operator             { return t.op }
func (t String) WithOperator(op Operator) Term  { t.op = op; return t }
func (t String) String() string                 { return strconv.Quote(t.Text) }
func (t URI) Value() any                        { return t.Location }
func (t URI) Operator() Operator                { return t.op }
func (t URI) WithOperator(op Operator) Term     { t.op = op; return t }
func (t URI) String() string                    { return "url(" + t.Location + ")" }

func (t Color) String() string {
	c := t.Color
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (t Function) Value() any                    { return t.Args }
func (t Function) Operator() Operator            { return t.op }
func (t Function) WithOperator(op Operator) Term { t.op = op; return t }

func (t Function) String() string {
	return t.Name + "(" + joinTerms(t.Args) + ")"
}

func (t List) Value() any                    { return t.Items }
func (t List) Operator() Operator            { return t.op }
func (t List) WithOperator(op Operator) Term { t.op = op; return t }
func (t List) String() string                { return joinTerms(t.Items) }

// Len returns the number of items in a list.
func (t List) Len() int { return len(t.Items) }

// joinTerms writes terms in CSS notation, using each term's operator as
// separator.
func joinTerms(terms []Term) string {
	var b strings.Builder
	for i, t := range terms {
		if i > 0 {
			if t.Operator() == OpNone {
				b.WriteByte(' ')
			} else {
				b.WriteString(t.Operator().prefix())
			}
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// JoinTerms formats a sequence of terms in CSS notation.
func JoinTerms(terms []Term) string {
	return joinTerms(terms)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// TermsEqual compares two terms, including their operators.
// Lists and functions are compared item by item.
func TermsEqual(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Operator() != b.Operator() {
		return false
	}
	switch ta := a.(type) {
	case List:
		tb, ok := b.(List)
		return ok && termSlicesEqual(ta.Items, tb.Items)
	case Function:
		tb, ok := b.(Function)
		return ok && ta.Name == tb.Name && termSlicesEqual(ta.Args, tb.Args)
	case Ident, Number, Integer, Length, Percent, Color, String, URI:
		return a == b
	}
	if eq, ok := a.(interface{ Equals(Term) bool }); ok {
		return eq.Equals(b)
	}
	return false
}

func termSlicesEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !TermsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

var _ Term = Ident{}
var _ Term = Number{}
var _ Term = Integer{}
var _ Term = Length{}
var _ Term = Percent{}
var _ Term = Color{}
var _ Term = String{}
var _ Term = URI{}
var _ Term = Function{}
var _ Term = List{}
