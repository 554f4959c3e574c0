package cssom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	tests := []struct {
		sel  *CombinedSelector
		spec Specificity
	}{
		{NewCombinedSelector(NewSelector(CombinatorNone, ElementName{Wildcard})), Specificity{0, 0, 0}},
		{NewCombinedSelector(NewSelector(CombinatorNone, ElementName{"p"})), Specificity{0, 0, 1}},
		{NewCombinedSelector( // div.note > p:first-child::before
			NewSelector(CombinatorNone, ElementName{"div"}, ElementClass{"note"}),
			NewSelector(Child, ElementName{"p"}, PseudoClass{Name: "first-child"}, PseudoBefore),
		), Specificity{0, 2, 3}},
		{NewCombinedSelector( // #main a[href]
			NewSelector(CombinatorNone, ElementID{"main"}),
			NewSelector(Descendant, ElementName{"a"}, ElementAttribute{Name: "href"}),
		), Specificity{1, 1, 1}},
	}
	for i, test := range tests {
		if sp := test.sel.Specificity(); sp != test.spec {
			t.Errorf("%d: expected specificity of %q to be %v, is %v", i, test.sel, test.spec, sp)
		}
	}
}

func TestSpecificityCompare(t *testing.T) {
	if (Specificity{1, 0, 0}).Compare(Specificity{0, 12, 12}) != 1 {
		t.Errorf("expected one id to beat any number of classes")
	}
	if (Specificity{0, 1, 2}).Compare(Specificity{0, 1, 2}) != 0 {
		t.Errorf("expected equal specificities to compare as 0")
	}
	if (Specificity{0, 0, 1}).Compare(Specificity{0, 1, 0}) != -1 {
		t.Errorf("expected class to beat element")
	}
}

func TestSelectorAccessors(t *testing.T) {
	step := NewSelector(Adjacent, ElementName{"li"}, ElementClass{"a"}, ElementClass{"b"},
		ElementID{"x"}, PseudoAfter)
	cs := NewCombinedSelector(NewSelector(CombinatorNone, ElementName{"ul"}), step)
	if cs.Last() != step {
		t.Fatalf("expected key selector to be last step")
	}
	if step.ElementName() != "li" || step.IDName() != "x" || step.ClassName() != "a" {
		t.Errorf("unexpected accessors: %q %q %q", step.ElementName(), step.IDName(), step.ClassName())
	}
	if cs.PseudoElement() != PseudoAfter {
		t.Errorf("expected pseudo-element ::after, is %q", cs.PseudoElement())
	}
	if s := cs.String(); s != "ul + li.a.b#x::after" {
		t.Errorf("unexpected selector string %q", s)
	}
	empty := NewCombinedSelector(NewSelector(CombinatorNone))
	if !empty.IsEmpty() {
		t.Errorf("expected selector without parts to be empty")
	}
}
