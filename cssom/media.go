package cssom

import (
	"strings"
)

// MediaQuery is a single media query, e.g. "not screen and (min-width: 600px)".
// An empty Type means "all".
type MediaQuery struct {
	Negated     bool
	Type        string
	Expressions []MediaExpression
}

// MediaExpression is a feature test of a media query. Value is nil for
// features tested in boolean context, e.g. "(color)".
type MediaExpression struct {
	Feature string
	Value   Term
}

func (q *MediaQuery) String() string {
	var parts []string
	if q.Negated {
		parts = append(parts, "not")
	}
	if q.Type != "" || len(q.Expressions) == 0 {
		t := q.Type
		if t == "" {
			t = "all"
		}
		parts = append(parts, t)
	}
	for _, e := range q.Expressions {
		if len(parts) > 0 {
			parts = append(parts, "and")
		}
		if e.Value == nil {
			parts = append(parts, "("+e.Feature+")")
		} else {
			parts = append(parts, "("+e.Feature+": "+e.Value.String()+")")
		}
	}
	return strings.Join(parts, " ")
}

// MediaSpec is a media context rules are evaluated in.
type MediaSpec interface {
	Matches(*MediaQuery) bool // does a query match the context?
	MatchesEmpty() bool       // does a media block without queries apply?
}

// MatchesQueries is true if any of the queries matches the media context.
// An empty query list applies iff spec.MatchesEmpty().
func MatchesQueries(spec MediaSpec, queries []*MediaQuery) bool {
	if len(queries) == 0 {
		return spec.MatchesEmpty()
	}
	for _, q := range queries {
		if spec.Matches(q) {
			return true
		}
	}
	return false
}

// Media is a concrete media context: a medium type plus viewport properties.
// Width and Height are in CSS pixels, Color is the number of bits per color
// component (0 for monochrome devices).
type Media struct {
	Type   string
	Width  float64
	Height float64
	Color  int
}

// Default viewport of a media context.
const (
	DefaultViewportWidth  = 1100
	DefaultViewportHeight = 850
	DefaultColorDepth     = 8
	defaultFontSize       = 16
)

// NewMedia creates a media context for a medium type with a default
// viewport.
func NewMedia(typ string) *Media {
	return &Media{
		Type:   strings.ToLower(typ),
		Width:  DefaultViewportWidth,
		Height: DefaultViewportHeight,
		Color:  DefaultColorDepth,
	}
}

// Matches checks a query against the media context. Type "all" (or no type)
// matches every medium. Unknown features never match.
func (m *Media) Matches(q *MediaQuery) bool {
	if q == nil {
		return false
	}
	ok := m.matchesType(q.Type)
	if ok {
		for _, e := range q.Expressions {
			if !m.matchesExpression(e) {
				ok = false
				break
			}
		}
	}
	if q.Negated {
		ok = !ok
	}
	tracer().Debugf("media query %q vs %s: %v", q.String(), m.Type, ok)
	return ok
}

// MatchesEmpty is always true: media blocks without queries apply to all media.
func (m *Media) MatchesEmpty() bool {
	return true
}

func (m *Media) matchesType(t string) bool {
	t = strings.ToLower(t)
	return t == "" || t == "all" || t == m.Type || m.Type == "all"
}

func (m *Media) matchesExpression(e MediaExpression) bool {
	feature := strings.ToLower(e.Feature)
	switch feature {
	case "width", "min-width", "max-width":
		return compareFeature(feature, m.Width, e.Value)
	case "height", "min-height", "max-height":
		return compareFeature(feature, m.Height, e.Value)
	case "color", "min-color", "max-color":
		if e.Value == nil {
			return m.Color > 0
		}
		n, ok := e.Value.(Integer)
		if !ok {
			return false
		}
		switch feature {
		case "min-color":
			return m.Color >= n.Number
		case "max-color":
			return m.Color <= n.Number
		}
		return m.Color == n.Number
	case "orientation":
		id, ok := e.Value.(Ident)
		if !ok {
			return false
		}
		switch strings.ToLower(id.Name) {
		case "portrait":
			return m.Height >= m.Width
		case "landscape":
			return m.Width > m.Height
		}
	}
	return false
}

func compareFeature(feature string, actual float64, value Term) bool {
	if value == nil {
		return actual > 0
	}
	var px float64
	switch v := value.(type) {
	case Length:
		p, ok := v.Pixels(defaultFontSize)
		if !ok {
			return false
		}
		px = p
	case Integer:
		if v.Number != 0 {
			return false
		}
	default:
		return false
	}
	switch {
	case strings.HasPrefix(feature, "min-"):
		return actual >= px
	case strings.HasPrefix(feature, "max-"):
		return actual <= px
	}
	return actual == px
}

var _ MediaSpec = &Media{}
