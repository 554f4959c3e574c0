package cascade

import (
	"strings"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/traverse"
)

// MatchCondition restricts the nodes a selector step may match. The cursor's
// filter decides which nodes are visible at all; a condition may narrow this
// down further.
type MatchCondition func(dom.Node) bool

// ConditionOnElements lets selector steps match element nodes only.
func ConditionOnElements(n dom.Node) bool {
	return dom.IsElement(n)
}

// MatchSelector checks if a combined selector selects node. Navigation to
// ancestors and siblings uses cursor, which is restored to its position before
// MatchSelector returns. A nil condition is ConditionOnElements.
//
// Descendant and general sibling combinators backtrack: if a step matches an
// ancestor (or sibling) but the steps to its left fail from there, matching
// continues with the next ancestor (sibling).
func MatchSelector(cursor traverse.TreeCursor, sel *cssom.CombinedSelector, node dom.Node,
	cond MatchCondition) bool {
	//
	if sel == nil || sel.IsEmpty() || node == nil {
		return false
	}
	if cond == nil {
		cond = ConditionOnElements
	}
	checkpoint := cursor.Checkpoint()
	defer cursor.Restore(checkpoint)
	if !cond(node) || !matchCompound(sel.Last(), node) {
		return false
	}
	m := matcher{cursor: cursor, steps: sel.Steps, cond: cond}
	return m.matchFrom(len(sel.Steps)-1, node)
}

type matcher struct {
	cursor traverse.TreeCursor
	steps  []*cssom.Selector
	cond   MatchCondition
}

// matchFrom continues matching left of step k, which has matched node n.
func (m matcher) matchFrom(k int, n dom.Node) bool {
	if k == 0 {
		return true
	}
	prev := m.steps[k-1]
	switch m.steps[k].Combinator {
	case cssom.Child:
		p := m.parent(n)
		return p != nil && matchCompound(prev, p) && m.matchFrom(k-1, p)
	case cssom.Adjacent:
		sib := m.prevSibling(n)
		return sib != nil && matchCompound(prev, sib) && m.matchFrom(k-1, sib)
	case cssom.Preceding:
		for sib := m.prevSibling(n); sib != nil; sib = m.prevSibling(sib) {
			if matchCompound(prev, sib) && m.matchFrom(k-1, sib) {
				return true
			}
		}
		return false
	}
	// descendant
	for a := m.parent(n); a != nil; a = m.parent(a) {
		if matchCompound(prev, a) && m.matchFrom(k-1, a) {
			return true
		}
	}
	return false
}

// parent returns the nearest ancestor of n visible to the cursor and
// satisfying the match condition.
func (m matcher) parent(n dom.Node) dom.Node {
	m.cursor.SetCurrent(n)
	for p := m.cursor.Parent(); p != nil; p = m.cursor.Parent() {
		if m.cond(p) {
			return p
		}
	}
	return nil
}

// prevSibling returns the nearest preceding sibling of n visible to the cursor
// and satisfying the match condition.
func (m matcher) prevSibling(n dom.Node) dom.Node {
	m.cursor.SetCurrent(n)
	for sib := m.cursor.PreviousSibling(); sib != nil; sib = m.cursor.PreviousSibling() {
		if m.cond(sib) {
			return sib
		}
	}
	return nil
}

// --- Compound selectors ----------------------------------------------------

// matchCompound checks all parts of a compound selector against a node.
func matchCompound(step *cssom.Selector, n dom.Node) bool {
	for _, part := range step.Parts {
		if !matchPart(part, n) {
			return false
		}
	}
	return true
}

func matchPart(part cssom.SelectorPart, n dom.Node) bool {
	switch p := part.(type) {
	case cssom.ElementName:
		return p.Name == cssom.Wildcard || strings.EqualFold(p.Name, n.TagName())
	case cssom.ElementID:
		return p.ID == n.ID()
	case cssom.ElementClass:
		for _, class := range n.Classes() {
			if class == p.Class {
				return true
			}
		}
		return false
	case cssom.ElementAttribute:
		return matchAttribute(p, n)
	case cssom.PseudoClass:
		return matchPseudoClass(p, n)
	case cssom.PseudoElement:
		return true // selects a part of n, handled by the caller
	}
	tracer().Errorf("unknown selector part %T", part)
	return false
}

func matchAttribute(sel cssom.ElementAttribute, n dom.Node) bool {
	v, ok := dom.Attribute(n, sel.Name)
	if !ok {
		return false
	}
	switch sel.Op {
	case cssom.AttrExists:
		return true
	case cssom.AttrEquals:
		return v == sel.Value
	case cssom.AttrIncludes:
		for _, w := range strings.Fields(v) {
			if w == sel.Value {
				return true
			}
		}
		return false
	case cssom.AttrDash:
		return v == sel.Value || strings.HasPrefix(v, sel.Value+"-")
	case cssom.AttrPrefix:
		return sel.Value != "" && strings.HasPrefix(v, sel.Value)
	case cssom.AttrSuffix:
		return sel.Value != "" && strings.HasSuffix(v, sel.Value)
	case cssom.AttrSubstring:
		return sel.Value != "" && strings.Contains(v, sel.Value)
	}
	return false
}

// --- Pseudo-classes --------------------------------------------------------

// matchPseudoClass checks structural pseudo-classes. Dynamic pseudo-classes
// (:hover, :focus, …) depend on user interaction and never match.
func matchPseudoClass(pc cssom.PseudoClass, n dom.Node) bool {
	switch strings.ToLower(pc.Name) {
	case "root":
		return dom.ParentElement(n) == nil
	case "empty":
		return n.FirstChild() == nil
	case "first-child":
		return position(n, false, false) == 1
	case "last-child":
		return position(n, true, false) == 1
	case "only-child":
		return position(n, false, false) == 1 && position(n, true, false) == 1
	case "first-of-type":
		return position(n, false, true) == 1
	case "last-of-type":
		return position(n, true, true) == 1
	case "only-of-type":
		return position(n, false, true) == 1 && position(n, true, true) == 1
	case "nth-child":
		return pc.MatchesNth(position(n, false, false))
	case "nth-last-child":
		return pc.MatchesNth(position(n, true, false))
	case "nth-of-type":
		return pc.MatchesNth(position(n, false, true))
	case "nth-last-of-type":
		return pc.MatchesNth(position(n, true, true))
	}
	tracer().Debugf("pseudo-class :%s does not match statically", pc.Name)
	return false
}

// position returns the 1-based position of n among its element siblings,
// counted from the front or from the back, optionally counting elements of
// the same type only.
func position(n dom.Node, fromBack, sameType bool) int {
	pos := 1
	next := func(s dom.Node) dom.Node { return s.PrevSibling() }
	if fromBack {
		next = func(s dom.Node) dom.Node { return s.NextSibling() }
	}
	for sib := next(n); sib != nil; sib = next(sib) {
		if !sib.IsElement() {
			continue
		}
		if sameType && !strings.EqualFold(sib.TagName(), n.TagName()) {
			continue
		}
		pos++
	}
	return pos
}
