package cssom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMediaType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	screen := NewMedia("screen")
	printQuery := &MediaQuery{Type: "print"}
	if screen.Matches(printQuery) {
		t.Errorf("expected @media print not to match screen")
	}
	if !screen.Matches(&MediaQuery{Type: "screen"}) {
		t.Errorf("expected @media screen to match screen")
	}
	if !screen.Matches(&MediaQuery{Type: "all"}) {
		t.Errorf("expected @media all to match screen")
	}
	if !screen.Matches(&MediaQuery{Negated: true, Type: "print"}) {
		t.Errorf("expected @media not print to match screen")
	}
	if !MatchesQueries(screen, nil) {
		t.Errorf("expected empty query list to match")
	}
	if !MatchesQueries(screen, []*MediaQuery{printQuery, {Type: "screen"}}) {
		t.Errorf("expected 'print, screen' to match screen")
	}
}

func TestMediaFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	m := &Media{Type: "screen", Width: 800, Height: 600, Color: 8}
	tests := []struct {
		q     *MediaQuery
		match bool
	}{
		{&MediaQuery{Type: "screen", Expressions: []MediaExpression{{"min-width", NewLength(600, UnitPX)}}}, true},
		{&MediaQuery{Type: "screen", Expressions: []MediaExpression{{"min-width", NewLength(1000, UnitPX)}}}, false},
		{&MediaQuery{Expressions: []MediaExpression{{"max-width", NewLength(50, UnitEM)}}}, true},
		{&MediaQuery{Expressions: []MediaExpression{{"orientation", NewIdent("landscape")}}}, true},
		{&MediaQuery{Expressions: []MediaExpression{{"orientation", NewIdent("portrait")}}}, false},
		{&MediaQuery{Expressions: []MediaExpression{{"color", nil}}}, true},
		{&MediaQuery{Expressions: []MediaExpression{{"min-color", NewInteger(10)}}}, false},
		{&MediaQuery{Expressions: []MediaExpression{{"resolution", NewInteger(10)}}}, false},
	}
	for i, test := range tests {
		if m.Matches(test.q) != test.match {
			t.Errorf("%d: expected %q to match=%v", i, test.q, test.match)
		}
	}
}

func TestOuterMediaGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	screen, paged := NewMedia("screen"), NewMedia("print")
	rm := &RuleMedia{
		Queries: []*MediaQuery{{Type: "all"}},
		Outer:   []*MediaQuery{{Type: "print"}},
	}
	if rm.Applies(screen) {
		t.Errorf("expected outer guard 'print' to exclude screen")
	}
	if !rm.Applies(paged) {
		t.Errorf("expected media block to apply under print")
	}
	rm.Queries = []*MediaQuery{{Type: "screen"}}
	if rm.Applies(screen) || rm.Applies(paged) {
		t.Errorf("expected 'screen' inside 'print' to apply nowhere")
	}
	rm.Outer = nil
	if !rm.Applies(screen) {
		t.Errorf("expected media block without outer guard to apply under screen")
	}
}
