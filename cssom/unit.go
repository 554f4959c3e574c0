package cssom

import "strings"

// Unit is a CSS length unit, e.g. "px" or "em".
type Unit string

// Length units known to the object model.
const (
	UnitNone Unit = ""
	UnitPX   Unit = "px"
	UnitPT   Unit = "pt"
	UnitPC   Unit = "pc"
	UnitIN   Unit = "in"
	UnitCM   Unit = "cm"
	UnitMM   Unit = "mm"
	UnitQ    Unit = "q"
	UnitEM   Unit = "em"
	UnitEX   Unit = "ex"
	UnitCH   Unit = "ch"
	UnitREM  Unit = "rem"
	UnitVW   Unit = "vw"
	UnitVH   Unit = "vh"
	UnitVMIN Unit = "vmin"
	UnitVMAX Unit = "vmax"
)

// CSS reference pixels per absolute unit.
var pixelsPer = map[Unit]float64{
	UnitNone: 1,
	UnitPX:   1,
	UnitPT:   96.0 / 72.0,
	UnitPC:   16,
	UnitIN:   96,
	UnitCM:   96.0 / 2.54,
	UnitMM:   96.0 / 25.4,
	UnitQ:    96.0 / 101.6,
}

// ParseUnit returns the unit for a unit suffix, or false if the suffix is not a
// length unit.
func ParseUnit(s string) (Unit, bool) {
	u := Unit(strings.ToLower(s))
	switch u {
	case UnitPX, UnitPT, UnitPC, UnitIN, UnitCM, UnitMM, UnitQ, UnitEM, UnitEX,
		UnitCH, UnitREM, UnitVW, UnitVH, UnitVMIN, UnitVMAX:
		return u, true
	}
	return UnitNone, false
}

// IsAbsolute is true for units with a fixed physical size (including px).
func (u Unit) IsAbsolute() bool {
	_, ok := pixelsPer[u]
	return ok
}

// IsFontRelative is true for em, ex, ch and rem.
func (u Unit) IsFontRelative() bool {
	return u == UnitEM || u == UnitEX || u == UnitCH || u == UnitREM
}

// IsViewportRelative is true for vw, vh, vmin and vmax.
func (u Unit) IsViewportRelative() bool {
	return u == UnitVW || u == UnitVH || u == UnitVMIN || u == UnitVMAX
}

// Pixels converts a length to CSS reference pixels. Font-relative units are
// resolved against fontSize (in px); ex and ch count as half an em.
// Viewport units cannot be converted without a viewport and return false.
func (t Length) Pixels(fontSize float64) (float64, bool) {
	if f, ok := pixelsPer[t.Unit]; ok {
		return t.Number * f, true
	}
	switch t.Unit {
	case UnitEM, UnitREM:
		return t.Number * fontSize, true
	case UnitEX, UnitCH:
		return t.Number * fontSize / 2, true
	}
	return 0, false
}
