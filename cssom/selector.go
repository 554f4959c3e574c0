package cssom

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Combinator relates a compound selector to the one before it.
type Combinator uint8

// Combinators between selector steps.
const (
	CombinatorNone Combinator = iota // first step of a combined selector
	Descendant                       // "a b"
	Child                            // "a > b"
	Adjacent                         // "a + b"
	Preceding                        // "a ~ b", general sibling
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return " > "
	case Adjacent:
		return " + "
	case Preceding:
		return " ~ "
	}
	return ""
}

// SelectorPart is a simple selector, i.e. one condition of a compound
// selector. Implementations are ElementName, ElementID, ElementClass,
// ElementAttribute, PseudoClass and PseudoElement.
type SelectorPart interface {
	String() string
	specificity() Specificity
}

// Wildcard is the element name of the universal selector.
const Wildcard = "*"

// ElementName selects by tag name. Name "*" selects every element.
type ElementName struct {
	Name string
}

// ElementID selects by id attribute.
type ElementID struct {
	ID string
}

// ElementClass selects by one class of the class attribute.
type ElementClass struct {
	Class string
}

// AttributeOp is the operator of an attribute selector.
type AttributeOp uint8

// Attribute operators.
const (
	AttrExists    AttributeOp = iota // [a]
	AttrEquals                       // [a=v]
	AttrIncludes                     // [a~=v]
	AttrDash                         // [a|=v]
	AttrPrefix                       // [a^=v]
	AttrSuffix                       // [a$=v]
	AttrSubstring                    // [a*=v]
)

var attrOpStrings = [...]string{"", "=", "~=", "|=", "^=", "$=", "*="}

func (op AttributeOp) String() string {
	if int(op) < len(attrOpStrings) {
		return attrOpStrings[op]
	}
	return "?"
}

// ElementAttribute selects by the presence or value of an attribute.
type ElementAttribute struct {
	Name  string
	Op    AttributeOp
	Value string
}

// PseudoClass is a structural or dynamic pseudo-class, e.g. :first-child or
// :hover. Functional pseudo-classes of the nth-family carry their argument
// as A·n+B.
type PseudoClass struct {
	Name string
	Arg  string // raw argument of functional pseudo-classes
	A, B int    // nth argument
}

// PseudoElement is the type of a pseudo-element, e.g. ::before.
// The zero value PseudoNone denotes the element itself.
type PseudoElement string

// Pseudo-elements.
const (
	PseudoNone        PseudoElement = ""
	PseudoBefore      PseudoElement = "before"
	PseudoAfter       PseudoElement = "after"
	PseudoFirstLine   PseudoElement = "first-line"
	PseudoFirstLetter PseudoElement = "first-letter"
	PseudoMarker      PseudoElement = "marker"
	PseudoSelection   PseudoElement = "selection"
)

func (s ElementName) String() string { return s.Name }
func (s ElementID) String() string   { return "#" + s.ID }
func (s ElementClass) String() string {
	return "." + s.Class
}

func (s ElementAttribute) String() string {
	if s.Op == AttrExists {
		return "[" + s.Name + "]"
	}
	return fmt.Sprintf("[%s%s%q]", s.Name, s.Op, s.Value)
}

func (s PseudoClass) String() string {
	if s.Arg != "" {
		return ":" + s.Name + "(" + s.Arg + ")"
	}
	return ":" + s.Name
}

func (p PseudoElement) String() string {
	if p == PseudoNone {
		return ""
	}
	return "::" + string(p)
}

func (s ElementName) specificity() Specificity {
	if s.Name == Wildcard {
		return Specificity{}
	}
	return Specificity{0, 0, 1}
}

func (ElementID) specificity() Specificity        { return Specificity{1, 0, 0} }
func (ElementClass) specificity() Specificity     { return Specificity{0, 1, 0} }
func (ElementAttribute) specificity() Specificity { return Specificity{0, 1, 0} }
func (PseudoClass) specificity() Specificity      { return Specificity{0, 1, 0} }

func (p PseudoElement) specificity() Specificity {
	if p == PseudoNone {
		return Specificity{}
	}
	return Specificity{0, 0, 1}
}

// --- Compound selectors ----------------------------------------------------

// Selector is a compound selector, i.e. one step of a combined selector.
type Selector struct {
	Combinator Combinator // relation to the preceding step
	Parts      []SelectorPart
}

// NewSelector creates a compound selector step.
func NewSelector(c Combinator, parts ...SelectorPart) *Selector {
	return &Selector{Combinator: c, Parts: parts}
}

// ElementName returns the tag name selected by this step, or "" if the step
// does not restrict the tag.
func (s *Selector) ElementName() string {
	for _, p := range s.Parts {
		if e, ok := p.(ElementName); ok {
			return e.Name
		}
	}
	return ""
}

// IDName returns the id selected by this step, or "".
func (s *Selector) IDName() string {
	for _, p := range s.Parts {
		if id, ok := p.(ElementID); ok {
			return id.ID
		}
	}
	return ""
}

// ClassName returns the first class selected by this step, or "".
func (s *Selector) ClassName() string {
	for _, p := range s.Parts {
		if c, ok := p.(ElementClass); ok {
			return c.Class
		}
	}
	return ""
}

// PseudoElement returns the pseudo-element of this step, if any.
func (s *Selector) PseudoElement() PseudoElement {
	for _, p := range s.Parts {
		if pe, ok := p.(PseudoElement); ok {
			return pe
		}
	}
	return PseudoNone
}

func (s *Selector) String() string {
	var b strings.Builder
	for _, p := range s.Parts {
		b.WriteString(p.String())
	}
	return b.String()
}

// --- Combined selectors ----------------------------------------------------

// CombinedSelector is a sequence of compound selectors joined by combinators.
type CombinedSelector struct {
	Steps []*Selector
	once  sync.Once
	spec  Specificity
}

// NewCombinedSelector creates a combined selector from its steps.
// The combinator of the first step is ignored.
func NewCombinedSelector(steps ...*Selector) *CombinedSelector {
	return &CombinedSelector{Steps: steps}
}

// Last returns the key selector, or nil for an empty selector.
func (cs *CombinedSelector) Last() *Selector {
	if len(cs.Steps) == 0 {
		return nil
	}
	return cs.Steps[len(cs.Steps)-1]
}

// IsEmpty is true if the key selector does not contain any parts.
func (cs *CombinedSelector) IsEmpty() bool {
	last := cs.Last()
	return last == nil || len(last.Parts) == 0
}

// PseudoElement returns the pseudo-element the combined selector selects,
// if any. Only the key selector may carry a pseudo-element.
func (cs *CombinedSelector) PseudoElement() PseudoElement {
	if last := cs.Last(); last != nil {
		return last.PseudoElement()
	}
	return PseudoNone
}

// Specificity returns the selector's specificity. It is computed on first
// use and cached.
func (cs *CombinedSelector) Specificity() Specificity {
	cs.once.Do(func() {
		var sp Specificity
		for _, step := range cs.Steps {
			for _, p := range step.Parts {
				sp = sp.Add(p.specificity())
			}
		}
		cs.spec = sp
	})
	return cs.spec
}

func (cs *CombinedSelector) String() string {
	var b strings.Builder
	for i, step := range cs.Steps {
		if i > 0 {
			b.WriteString(step.Combinator.String())
		}
		b.WriteString(step.String())
	}
	return b.String()
}

// --- Specificity -----------------------------------------------------------

// Specificity is the (ids, classes, elements) triple of a selector.
type Specificity [3]int

// Add sums two specificities component-wise.
func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

// Compare compares lexicographically and returns -1, 0 or +1.
func (s Specificity) Compare(o Specificity) int {
	for i := 0; i < 3; i++ {
		if s[i] < o[i] {
			return -1
		} else if s[i] > o[i] {
			return 1
		}
	}
	return 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// --- nth arguments ---------------------------------------------------------

// ParseNth parses the argument of an nth-pseudo-class ("odd", "even", "3",
// "2n+1", "-n+3", …) into the coefficients of A·n+B.
func ParseNth(arg string) (a, b int, ok bool) {
	s := strings.ToLower(strings.ReplaceAll(arg, " ", ""))
	switch s {
	case "odd":
		return 2, 1, true
	case "even":
		return 2, 0, true
	case "":
		return 0, 0, false
	}
	i := strings.IndexByte(s, 'n')
	if i < 0 {
		b, ok = atoi(s)
		return 0, b, ok
	}
	switch s[:i] {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		if a, ok = atoi(s[:i]); !ok {
			return 0, 0, false
		}
	}
	if rest := s[i+1:]; rest != "" {
		if rest[0] != '+' && rest[0] != '-' {
			return 0, 0, false
		}
		if b, ok = atoi(rest); !ok {
			return 0, 0, false
		}
	}
	return a, b, true
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// MatchesNth is true if a 1-based position is A·n+B for some n ≥ 0.
func (s PseudoClass) MatchesNth(pos int) bool {
	if s.A == 0 {
		return pos == s.B
	}
	d := pos - s.B
	return d%s.A == 0 && d/s.A >= 0
}
