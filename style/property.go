package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a marker for a decoded CSS property. For example, with
//
//	border-top-style: solid
//
// a property marker of "solid" is set, whereas with
//
//	margin-top: 3px
//
// the marker is ValueLength and the value term carries 3px.
type Property string

// NullStyle is an empty property marker: the property is not set.
const NullStyle Property = ""

// CSS-wide keywords.
const (
	Inherit Property = "inherit"
	Initial Property = "initial"
	Unset   Property = "unset"
)

// Markers for properties whose value is carried by a term.
const (
	ValueLength  Property = "length"
	ValuePercent Property = "percentage"
	ValueColor   Property = "color"
	ValueNumber  Property = "number"
	ValueInteger Property = "integer"
	ValueList    Property = "list-values"
	ValueURI     Property = "uri"
	ValueString  Property = "string"
)

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == Initial
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == Inherit
}

// IsUnset denotes if a property is of inheritence-type "unset"
func (p Property) IsUnset() bool {
	return p == Unset
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsKeyword is true for CSS-wide keywords.
func (p Property) IsKeyword() bool {
	return p == Inherit || p == Initial || p == Unset
}

// CarriesValue is true for markers whose value is held by a term.
func (p Property) CarriesValue() bool {
	switch p {
	case ValueLength, ValuePercent, ValueColor, ValueNumber, ValueInteger,
		ValueList, ValueURI, ValueString:
		return true
	}
	return false
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value string
}

// --- CSS Property Groups ----------------------------------------------

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins    = "Margins"
	PGPadding    = "Padding"
	PGBorder     = "Border"
	PGDimension  = "Dimension"
	PGDisplay    = "Display"
	PGColor      = "Color"
	PGText       = "Text"
	PGFont       = "Font"
	PGList       = "List"
	PGBackground = "Background"
	PGGenerated  = "Generated"
	PGOutline    = "Outline"
	PGX          = "X"
)

// PropertyGroup is a collection of propertes sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups; the group of a property is part of its metadata.
type PropertyGroup struct {
	name      string
	propsDict map[string]string
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	v, ok := pg.propsDict[key]
	return ok && v != ""
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (string, bool) {
	v, ok := pg.propsDict[key]
	return v, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pg *PropertyGroup) Set(key string, value string) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]string)
	}
	pg.propsDict[strings.ToLower(key)] = value
}

// Len returns the number of properties in the group.
func (pg *PropertyGroup) Len() int {
	return len(pg.propsDict)
}
