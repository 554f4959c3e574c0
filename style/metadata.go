package style

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/cascade/cssom"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ErrMetadata is returned for malformed property metadata.
var ErrMetadata = errors.New("malformed property metadata")

// Metadata tells which properties are supported and inherited, and what their
// initial values are.
type Metadata interface {
	IsSupported(name string) bool
	IsInheritable(name string) bool
	DefaultValue(name string) (cssom.Term, bool)
	DefaultProperty(name string) Property
}

// Table is a Metadata implementation loaded from YAML.
//
// Every top-level key of the YAML document is a property name:
//
//	margin-top:
//	  group: Margins
//	  property: length
//	  value: { length: 0, unit: px }
//	color:
//	  inherited: true
//	  group: Color
//	  property: color
//	  value: { color: "#000000" }
type Table struct {
	entries map[string]*entry
}

type entry struct {
	Inherited bool       `yaml:"inherited"`
	Group     string     `yaml:"group"`
	Property  Property   `yaml:"property"`
	Value     *valueSpec `yaml:"value"`
	term      cssom.Term
}

// valueSpec is the YAML form of a default value term. Exactly one of the
// fields is expected to be set.
type valueSpec struct {
	Length  *float64    `yaml:"length"`
	Unit    string      `yaml:"unit"`
	Percent *float64    `yaml:"percent"`
	Number  *float64    `yaml:"number"`
	Integer *int        `yaml:"integer"`
	Color   string      `yaml:"color"`
	Ident   string      `yaml:"ident"`
	String  *string     `yaml:"string"`
	List    []valueSpec `yaml:"list"`
}

// LoadTable reads property metadata from a YAML document.
func LoadTable(data []byte) (*Table, error) {
	var entries map[string]*entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadata, err)
	}
	t := &Table{entries: make(map[string]*entry, len(entries))}
	for name, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("%w: property %q without entry", ErrMetadata, name)
		}
		if e.Property.IsEmpty() {
			return nil, fmt.Errorf("%w: property %q without default", ErrMetadata, name)
		}
		if e.Value != nil {
			term, err := e.Value.term()
			if err != nil {
				return nil, fmt.Errorf("%w: property %q: %v", ErrMetadata, name, err)
			}
			e.term = term
		} else if e.Property.CarriesValue() {
			return nil, fmt.Errorf("%w: property %q needs a default value for %q",
				ErrMetadata, name, e.Property)
		}
		if e.Group == "" {
			e.Group = PGX
		}
		t.entries[strings.ToLower(name)] = e
	}
	return t, nil
}

func (v *valueSpec) term() (cssom.Term, error) {
	switch {
	case v.Length != nil:
		u := cssom.Unit(strings.ToLower(v.Unit))
		if _, ok := cssom.ParseUnit(v.Unit); !ok && u != cssom.UnitNone {
			return nil, fmt.Errorf("unknown unit %q", v.Unit)
		}
		return cssom.NewLength(*v.Length, u), nil
	case v.Percent != nil:
		return cssom.NewPercent(*v.Percent), nil
	case v.Number != nil:
		return cssom.NewNumber(*v.Number), nil
	case v.Integer != nil:
		return cssom.NewInteger(*v.Integer), nil
	case v.Color != "":
		c, ok := parseColor(v.Color)
		if !ok {
			return nil, fmt.Errorf("cannot parse color %q", v.Color)
		}
		return cssom.NewColor(c), nil
	case v.Ident != "":
		return cssom.NewIdent(v.Ident), nil
	case v.String != nil:
		return cssom.NewString(*v.String), nil
	case len(v.List) > 0:
		items := make([]cssom.Term, len(v.List))
		for i := range v.List {
			t, err := v.List[i].term()
			if err != nil {
				return nil, err
			}
			if i > 0 {
				t = t.WithOperator(cssom.OpComma)
			}
			items[i] = t
		}
		return cssom.NewList(items...), nil
	}
	return nil, errors.New("empty value")
}

func parseColor(s string) (color.RGBA, bool) {
	if strings.HasPrefix(s, "#") {
		return cssom.ParseHexColor(s)
	}
	if strings.EqualFold(s, "transparent") {
		return color.RGBA{}, true
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	return c, ok
}

// IsSupported is true for properties listed in the table.
func (t *Table) IsSupported(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// IsInheritable is true for inherited properties.
func (t *Table) IsInheritable(name string) bool {
	if e, ok := t.entries[name]; ok {
		return e.Inherited
	}
	return false
}

// DefaultProperty returns the initial marker of a property, or NullStyle for
// unknown properties.
func (t *Table) DefaultProperty(name string) Property {
	if e, ok := t.entries[name]; ok {
		return e.Property
	}
	tracer().Infof("no default for property %s", name)
	return NullStyle
}

// DefaultValue returns the initial value term of a property, if the initial
// value is not a keyword.
func (t *Table) DefaultValue(name string) (cssom.Term, bool) {
	if e, ok := t.entries[name]; ok && e.term != nil {
		return e.term, true
	}
	return nil, false
}

// Group returns the property group name for a property, e.g.
//
//	Group("margin-top") => "Margins"
//
// Unknown properties belong to group "X".
func (t *Table) Group(name string) string {
	if e, ok := t.entries[name]; ok {
		return e.Group
	}
	return PGX
}

// Names returns all property names of the table, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ Metadata = &Table{}

//go:embed defaults.yaml
var defaultsYAML []byte

var defaultTable struct {
	sync.Once
	t *Table
}

// DefaultTable returns the shared table of CSS initial values.
func DefaultTable() *Table {
	defaultTable.Do(func() {
		t, err := LoadTable(defaultsYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded property table: %v", err))
		}
		defaultTable.t = t
	})
	return defaultTable.t
}
