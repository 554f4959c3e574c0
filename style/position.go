package style

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascade/cssom"
)

// positionKind is an enum type for the CSS position property.
type positionKind uint16

// Enum values for type positionKind
const (
	positionUnset    positionKind = iota
	positionStatic                // CSS static (default)
	positionRelative              // CSS relative
	positionAbsolute              // CSS absolute
	positionFixed                 // CSS fixed
	positionSticky                // CSS sticky
)

var positionNames = map[positionKind]string{
	positionUnset:    "unset",
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	positionSticky:   "sticky",
}

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    positionKind
}

/*
type PositionT
	= Unset
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
	| Sticky top right bottom left
*/

// PositionOffset is one of the offset properties of a positioned box.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

// Directions of position offsets, in the order of the offset properties.
const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// OffsetProperties are the names of the offset properties, indexed by PosDir.
var OffsetProperties = [4]string{"top", "right", "bottom", "left"}

// NormalizeOffsets normalizes offsets into a 4-way slice, ordered by PosDir.
// Missing offsets are auto, invalid directions are dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i] = PositionOffset{Dim: Auto(), Dir: i}
	}
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[o.Dir] = o
		}
	}
	return norm
}

// Static creates a CSS position of value `static`. Static boxes ignore
// offsets.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

// Sticky creates a CSS position of value `sticky`, given optional offsets.
func Sticky(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionSticky, offsets: NormalizeOffsets(offsets)}
}

// PositionOf returns a position from the marker of property `position`.
// It never returns an error; illegal input results in an unset position.
func PositionOf(p Property) PositionT {
	switch Property(strings.ToLower(string(p))) {
	case "static":
		return Static()
	case "relative":
		return Relative(nil)
	case "absolute":
		return Absolute(nil)
	case "fixed":
		return Fixed(nil)
	case "sticky":
		return Sticky(nil)
	}
	return PositionT{}
}

// WithOffset returns a copy of p with an offset set from a decoded offset
// property. Static and unset positions are returned unchanged.
func (p PositionT) WithOffset(dir PosDir, prop Property, value cssom.Term) (PositionT, error) {
	if p.kind == positionUnset || p.kind == positionStatic || dir > Left {
		return p, nil
	}
	d, err := DimenOf(prop, value)
	if err != nil {
		return p, fmt.Errorf("offset %s: %w", OffsetProperties[dir], err)
	}
	offsets := NormalizeOffsets(p.offsets)
	offsets[dir].Dim = d
	p.offsets = offsets
	return p, nil
}

// Offsets returns the offsets of a positioned box, ordered by PosDir, or nil
// for static and unset positions.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

func (p PositionT) String() string {
	if len(p.offsets) == 0 {
		return positionNames[p.kind]
	}
	var b strings.Builder
	b.WriteString(positionNames[p.kind])
	for _, o := range p.offsets {
		b.WriteString(" " + o.Dim.String())
	}
	return b.String()
}

// --- Pattern matching ------------------------------------------------------

// Match starts a type switch on p's kind.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher is part of pattern matching for PositionT types.
type PMatcher struct {
	pos PositionT
}

// IsKind matches if p is of the same kind as the position to match.
func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

func (m *PMatcher) offsets(kind positionKind, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != kind {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.offsets(positionRelative, o)
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.offsets(positionAbsolute, o)
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.offsets(positionFixed, o)
}

// PositionPatterns holds one value per position kind, for PMatchExpr.OneOf.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Relative T
	Absolute T
	Fixed    T
	Default  T
}

// PositionPattern starts an expression match on p.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to
// be instantiated using PositionPattern only.
type PMatchExpr[T any] struct {
	pos PositionT
}

func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionUnset:
		return patterns.Unset
	case positionStatic:
		return patterns.Static
	case positionRelative:
		return patterns.Relative
	case positionAbsolute:
		return patterns.Absolute
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

func (m *PMatchExpr[T]) With(o *[]PositionOffset) *PMatchExpr[T] {
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

func (m *PMatchExpr[T]) Const(x T) T {
	return x
}

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsPositioned is true for every position but static and unset.
func (p PositionT) IsPositioned() bool {
	return p.kind > positionStatic
}

// IsRelative returns true if p is a relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p is an absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p is a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}
