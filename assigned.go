package cascade

import (
	"fmt"
	"sort"

	"github.com/npillmayer/cascade/cssom"
)

// AssignedDeclaration is a declaration of a rule-set whose selector matched a
// node, together with what is needed to put it into cascade order.
type AssignedDeclaration struct {
	Declaration *cssom.Declaration
	Specificity cssom.Specificity
	Origin      cssom.Origin
	Order       int // source order of the selector
	Index       int // position of the declaration within its rule-set
}

// Precedence classes of the cascade, lowest first.
const (
	PrecedenceAgent = iota + 1
	PrecedenceUser
	PrecedenceAuthor
	PrecedenceAuthorImportant
	PrecedenceUserImportant
)

// Precedence returns the cascade precedence class of a declaration, derived
// from its origin and importance. Important user-agent declarations do not
// gain precedence.
func (ad AssignedDeclaration) Precedence() int {
	switch ad.Origin {
	case cssom.OriginUser:
		if ad.Declaration.Important {
			return PrecedenceUserImportant
		}
		return PrecedenceUser
	case cssom.OriginAuthor:
		if ad.Declaration.Important {
			return PrecedenceAuthorImportant
		}
		return PrecedenceAuthor
	}
	return PrecedenceAgent
}

// Compare puts two declarations into cascade order, returning -1, 0 or +1.
// Declarations comparing greater win. Order is by precedence class, then by
// specificity, then by source order of the selector, then by position within
// the rule-set.
func (ad AssignedDeclaration) Compare(other AssignedDeclaration) int {
	if p, q := ad.Precedence(), other.Precedence(); p != q {
		return compareInts(p, q)
	}
	if c := ad.Specificity.Compare(other.Specificity); c != 0 {
		return c
	}
	if ad.Order != other.Order {
		return compareInts(ad.Order, other.Order)
	}
	return compareInts(ad.Index, other.Index)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (ad AssignedDeclaration) String() string {
	return fmt.Sprintf("[%d %s #%d.%d] %s", ad.Precedence(), ad.Specificity, ad.Order, ad.Index,
		ad.Declaration)
}

// SortDeclarations sorts declarations into cascade order, winning declarations
// last.
func SortDeclarations(decls []AssignedDeclaration) {
	sort.SliceStable(decls, func(i, j int) bool {
		return decls[i].Compare(decls[j]) < 0
	})
}

// assign creates assigned declarations for the declarations of a rule which
// matched a node.
func assign(rule OrderedRule) []AssignedDeclaration {
	decls := make([]AssignedDeclaration, len(rule.Rule.Declarations))
	spec := rule.Selector.Specificity()
	for i, d := range rule.Rule.Declarations {
		decls[i] = AssignedDeclaration{
			Declaration: d,
			Specificity: spec,
			Origin:      rule.Origin,
			Order:       rule.Order,
			Index:       i,
		}
	}
	return decls
}
