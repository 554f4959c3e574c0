package cssom

import (
	"fmt"
	"strings"
)

// Origin is the source of a stylesheet. Origins take part in the cascade,
// together with the importance of declarations.
type Origin uint8

// Origins of stylesheets.
const (
	OriginAgent  Origin = iota // user agent default styles
	OriginUser                 // user preferences
	OriginAuthor               // the document's styles
)

func (o Origin) String() string {
	switch o {
	case OriginAgent:
		return "agent"
	case OriginUser:
		return "user"
	}
	return "author"
}

// StyleSheet is a list of rules from a single origin.
//
// In order to de-couple CSS parsers from the cascade, stylesheets are plain
// data. Clients either construct them directly or use an adapter, e.g.
// package douceuradapter.
type StyleSheet struct {
	Origin Origin
	Rules  []Rule
}

// NewStyleSheet creates an empty stylesheet for an origin.
func NewStyleSheet(origin Origin) *StyleSheet {
	return &StyleSheet{Origin: origin}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return len(sheet.Rules) == 0
}

// AppendRules appends rules from another stylesheet. The origin of sheet
// is kept.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}

// Add appends rules to a stylesheet and returns the stylesheet.
func (sheet *StyleSheet) Add(rules ...Rule) *StyleSheet {
	sheet.Rules = append(sheet.Rules, rules...)
	return sheet
}

// Rule is the type stylesheets consist of. It is either a *RuleSet or a
// *RuleMedia.
type Rule interface {
	String() string
	isRule()
}

// RuleSet is a list of selectors together with a block of declarations.
type RuleSet struct {
	Selectors    []*CombinedSelector
	Declarations []*Declaration
}

// NewRuleSet creates a rule-set for a single selector.
func NewRuleSet(sel *CombinedSelector, decls ...*Declaration) *RuleSet {
	return &RuleSet{Selectors: []*CombinedSelector{sel}, Declarations: decls}
}

func (rs *RuleSet) isRule() {}

func (rs *RuleSet) String() string {
	var b strings.Builder
	for i, s := range rs.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString(" {")
	for _, d := range rs.Declarations {
		b.WriteString(" ")
		b.WriteString(d.String())
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

// RuleMedia is a block of rule-sets guarded by a list of media queries.
// Outer holds the queries of an enclosing guard, e.g. the media attribute of
// a <style> element; if present, it has to match as well.
type RuleMedia struct {
	Queries []*MediaQuery
	Outer   []*MediaQuery
	Rules   []*RuleSet
}

// Applies is true if the media block applies in a media context.
func (rm *RuleMedia) Applies(spec MediaSpec) bool {
	if !MatchesQueries(spec, rm.Queries) {
		return false
	}
	return len(rm.Outer) == 0 || MatchesQueries(spec, rm.Outer)
}

func (rm *RuleMedia) isRule() {}

func (rm *RuleMedia) String() string {
	qs := make([]string, len(rm.Queries))
	for i, q := range rm.Queries {
		qs[i] = q.String()
	}
	return fmt.Sprintf("@media %s { %d rules }", strings.Join(qs, ", "), len(rm.Rules))
}

var _ Rule = &RuleSet{}
var _ Rule = &RuleMedia{}

// --- Declarations ----------------------------------------------------------

// Declaration is a property together with its value terms,
// e.g. "margin: 0 auto !important".
type Declaration struct {
	Property  string
	Terms     []Term
	Important bool
}

// NewDeclaration creates a declaration. The property name is lower-cased.
func NewDeclaration(property string, important bool, terms ...Term) *Declaration {
	return &Declaration{
		Property:  strings.ToLower(strings.TrimSpace(property)),
		Terms:     terms,
		Important: important,
	}
}

// Len returns the number of terms.
func (d *Declaration) Len() int {
	return len(d.Terms)
}

// Term returns the i-th term or nil.
func (d *Declaration) Term(i int) Term {
	if i < 0 || i >= len(d.Terms) {
		return nil
	}
	return d.Terms[i]
}

func (d *Declaration) String() string {
	s := d.Property + ": " + joinTerms(d.Terms)
	if d.Important {
		s += " !important"
	}
	return s
}
