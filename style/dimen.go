package style

import (
	"fmt"
	"math"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenUnset uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	dimenNone     uint32 = 0x0005
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

var relativeUnits = map[cssom.Unit]uint32{
	cssom.UnitEM:   dimenEM,
	cssom.UnitEX:   dimenEX,
	cssom.UnitCH:   dimenCH,
	cssom.UnitREM:  dimenREM,
	cssom.UnitVW:   dimenVW,
	cssom.UnitVH:   dimenVH,
	cssom.UnitVMIN: dimenVMIN,
	cssom.UnitVMAX: dimenVMAX,
}

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	value float64 // percentage or factor of a relative unit
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| None
	| JustDimen dimen
	| Percentage float
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func InheritDimen() DimenT {
	return DimenT{flags: dimenInherit}
}

func InitialDimen() DimenT {
	return DimenT{flags: dimenInitial}
}

// NoDimen is the dimension for keyword "none", e.g. for max-width.
func NoDimen() DimenT {
	return DimenT{flags: dimenNone}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
// 50% is Percentage(50).
func Percentage(n float64) DimenT {
	return DimenT{value: n, flags: dimenPercent}
}

// RelativeDimen creates a dimension relative to a font or viewport unit.
func RelativeDimen(x float64, unit cssom.Unit) DimenT {
	if f, ok := relativeUnits[unit]; ok {
		return DimenT{value: x, flags: f}
	}
	return DimenT{}
}

// Pixels converts CSS pixels to design units. CSS pixels are 1/96 in,
// design units are based on TeX points of 1/72.27 in.
func Pixels(px float64) dimen.DU {
	return dimen.DU(math.Round(px * 72.27 / 96 * float64(dimen.PT)))
}

// borderWidths are the widths of the border width keywords, in px.
var borderWidths = map[Property]float64{
	"thin":   1,
	"medium": 3,
	"thick":  5,
}

// DimenOf interprets a decoded property as a dimension.
func DimenOf(p Property, value cssom.Term) (DimenT, error) {
	switch p {
	case "auto":
		return Auto(), nil
	case Inherit:
		return InheritDimen(), nil
	case Initial:
		return InitialDimen(), nil
	case "none":
		return NoDimen(), nil
	case "min-content":
		return DimenT{flags: DimenContentMin}, nil
	case "max-content":
		return DimenT{flags: DimenContentMax}, nil
	case "fit-content":
		return DimenT{flags: DimenContentFit}, nil
	case ValueLength:
		l, ok := value.(cssom.Length)
		if !ok {
			return DimenT{}, fmt.Errorf("length marker with value %v", value)
		}
		if l.Unit.IsAbsolute() {
			px, _ := l.Pixels(0)
			return JustDimen(Pixels(px)), nil
		}
		if d := RelativeDimen(l.Number, l.Unit); d.flags != dimenUnset {
			return d, nil
		}
		return DimenT{}, fmt.Errorf("unsupported unit %q", l.Unit)
	case ValuePercent:
		pc, ok := value.(cssom.Percent)
		if !ok {
			return DimenT{}, fmt.Errorf("percentage marker with value %v", value)
		}
		return Percentage(pc.Number), nil
	}
	if px, ok := borderWidths[p]; ok {
		return JustDimen(Pixels(px)), nil
	}
	return DimenT{}, fmt.Errorf("property %q is not a dimension", p)
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsAuto is true for dimension "auto".
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsNone is true for dimension "none".
func (d DimenT) IsNone() bool {
	return d.flags&kindMask == dimenNone
}

// IsPercent is true for %-relative dimensions.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

// IsRelative is true for dimensions relative to a font or the viewport.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0 && !d.IsPercent()
}

// Unwrap returns the fixed value of an absolute dimension, 0 otherwise.
func (d DimenT) Unwrap() dimen.DU {
	if d.IsAbsolute() {
		return d.d
	}
	return 0
}

// Value returns the percentage or the factor of a relative unit.
func (d DimenT) Value() float64 {
	return d.value
}

// Resolve computes a fixed value, given the font size and the size of the
// containing block (for percentages). Viewport-relative dimensions cannot be
// resolved and return false.
func (d DimenT) Resolve(fontSize, container dimen.DU) (dimen.DU, bool) {
	switch {
	case d.IsAbsolute():
		return d.d, true
	case d.IsPercent():
		return dimen.DU(math.Round(float64(container) * d.value / 100)), true
	}
	switch d.flags & relativeMask {
	case dimenEM, dimenREM:
		return dimen.DU(math.Round(float64(fontSize) * d.value)), true
	case dimenEX, dimenCH:
		return dimen.DU(math.Round(float64(fontSize) * d.value / 2)), true
	}
	return 0, false
}

func (d DimenT) String() string {
	switch {
	case d.IsAbsolute():
		return fmt.Sprintf("%v", d.d)
	case d.IsAuto():
		return "auto"
	case d.IsNone():
		return "none"
	case d.IsPercent():
		return fmt.Sprintf("%g%%", d.value)
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	}
	for u, f := range relativeUnits {
		if d.flags&relativeMask == f {
			return fmt.Sprintf("%g%s", d.value, u)
		}
	}
	return "unset"
}

// ---------------------------------------------------------------------------

// Match starts a type switch on the kind of a dimension:
//
//	switch m := d.Match(); m {
//	case m.Just(&du):
//	  …
//	case m.IsKind(style.Auto()):
//	  …
//	}
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask > 0) && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if m.dimen.IsPercent() != d.IsPercent() {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.value
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results of a match expression, per kind of
// dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	if m.dimen.IsPercent() {
		return patterns.Percent
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
