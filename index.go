package cascade

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/dom"
	"go.uber.org/multierr"
)

// OrderedRule is a rule-set together with one of its selectors and the
// position of this selector in source order, counted across all stylesheets.
type OrderedRule struct {
	Rule     *cssom.RuleSet
	Selector *cssom.CombinedSelector
	Origin   cssom.Origin
	Order    int
}

func (or OrderedRule) String() string {
	return fmt.Sprintf("#%d %s (%s)", or.Order, or.Selector, or.Origin)
}

// RuleIndex holds the rule-sets of a set of stylesheets, partitioned by the
// key selector: rules selecting by id, by class, by element name, and all
// others. A RuleIndex is immutable after Classify returns.
type RuleIndex struct {
	ids      map[string][]OrderedRule
	classes  map[string][]OrderedRule
	elements map[string][]OrderedRule
	other    []OrderedRule
	count    int
	media    cssom.MediaSpec
	warnings error
}

func newRuleIndex(media cssom.MediaSpec) *RuleIndex {
	return &RuleIndex{
		ids:      make(map[string][]OrderedRule),
		classes:  make(map[string][]OrderedRule),
		elements: make(map[string][]OrderedRule),
		media:    media,
	}
}

// Classify indexes the rule-sets of stylesheets for a media context. Rule-sets
// guarded by media queries are included iff one of the queries matches. A nil
// media context is treated as medium "all".
//
// Selectors without a key selector cannot be classified; they are skipped and
// reported by Warnings.
func Classify(media cssom.MediaSpec, sheets ...*cssom.StyleSheet) *RuleIndex {
	if media == nil {
		media = cssom.NewMedia("all")
	}
	ri := newRuleIndex(media)
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, rule := range sheet.Rules {
			switch r := rule.(type) {
			case *cssom.RuleSet:
				ri.classifyRuleSet(r, sheet.Origin)
			case *cssom.RuleMedia:
				if !r.Applies(media) {
					tracer().Debugf("skipping %s", r)
					continue
				}
				for _, rs := range r.Rules {
					ri.classifyRuleSet(rs, sheet.Origin)
				}
			}
		}
	}
	tracer().Debugf("classified %d selectors", ri.count)
	return ri
}

func (ri *RuleIndex) classifyRuleSet(rs *cssom.RuleSet, origin cssom.Origin) {
	for _, sel := range rs.Selectors {
		if sel == nil || sel.IsEmpty() {
			err := fmt.Errorf("cannot classify empty selector in %s", rs)
			tracer().Debugf("%v", err)
			ri.warnings = multierr.Append(ri.warnings, err)
			continue
		}
		ri.count++
		or := OrderedRule{Rule: rs, Selector: sel, Origin: origin, Order: ri.count}
		key := sel.Last()
		registered := false
		if id := key.IDName(); id != "" {
			k := strings.ToLower(id)
			ri.ids[k] = append(ri.ids[k], or)
			registered = true
		}
		if class := key.ClassName(); class != "" {
			k := strings.ToLower(class)
			ri.classes[k] = append(ri.classes[k], or)
			registered = true
		}
		if tag := key.ElementName(); tag != "" {
			if tag == cssom.Wildcard {
				ri.other = append(ri.other, or)
			} else {
				k := strings.ToLower(tag)
				ri.elements[k] = append(ri.elements[k], or)
			}
			registered = true
		}
		if !registered {
			ri.other = append(ri.other, or)
		}
	}
}

// Len returns the number of classified selectors.
func (ri *RuleIndex) Len() int {
	return ri.count
}

// Media returns the media context the rules have been classified for.
func (ri *RuleIndex) Media() cssom.MediaSpec {
	return ri.media
}

// Warnings returns the problems found during classification, combined into a
// single error, or nil. Use multierr.Errors to get the individual problems.
func (ri *RuleIndex) Warnings() error {
	return ri.warnings
}

// Candidates returns the rules which may select a node, sorted by origin,
// specificity and source order. Rules registered in more than one partition
// are returned once.
func (ri *RuleIndex) Candidates(n dom.Node) []OrderedRule {
	return ri.candidates(n, true)
}

func (ri *RuleIndex) candidates(n dom.Node, dedup bool) []OrderedRule {
	if !dom.IsElement(n) {
		return nil
	}
	// Keys are lowercased, so candidates are a superset; MatchSelector
	// compares ids and classes exactly.
	var cands []OrderedRule
	for _, class := range n.Classes() {
		cands = append(cands, ri.classes[strings.ToLower(class)]...)
	}
	if id := n.ID(); id != "" {
		cands = append(cands, ri.ids[strings.ToLower(id)]...)
	}
	cands = append(cands, ri.elements[strings.ToLower(n.TagName())]...)
	cands = append(cands, ri.other...)
	if dedup {
		cands = dedupByOrder(cands)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return compareRules(cands[i], cands[j]) < 0
	})
	return cands
}

func dedupByOrder(rules []OrderedRule) []OrderedRule {
	seen := make(map[int]struct{}, len(rules))
	unique := rules[:0]
	for _, r := range rules {
		if _, ok := seen[r.Order]; ok {
			continue
		}
		seen[r.Order] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

func compareRules(a, b OrderedRule) int {
	if a.Origin != b.Origin {
		return compareInts(int(a.Origin), int(b.Origin))
	}
	if c := a.Selector.Specificity().Compare(b.Selector.Specificity()); c != 0 {
		return c
	}
	return compareInts(a.Order, b.Order)
}
