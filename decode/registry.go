package decode

import (
	"github.com/npillmayer/cascade/cssom"
)

// Keyword sets of single-value properties.
var (
	displayKeywords = kw("inline", "block", "list-item", "inline-block", "table",
		"inline-table", "table-row-group", "table-header-group", "table-footer-group",
		"table-row", "table-column-group", "table-column", "table-cell",
		"table-caption", "none", "flex", "inline-flex", "grid", "inline-grid", "flow-root")
	positionKeywords   = kw("static", "relative", "absolute", "fixed", "sticky")
	floatKeywords      = kw("left", "right", "none")
	clearKeywords      = kw("none", "left", "right", "both")
	visibilityKeywords = kw("visible", "hidden", "collapse")
	overflowKeywords   = kw("visible", "hidden", "scroll", "auto")
	borderWidths       = kw("thin", "medium", "thick")
	borderStyles       = kw("none", "hidden", "dotted", "dashed", "solid", "double",
		"groove", "ridge", "inset", "outset")
	fontSizes = kw("xx-small", "x-small", "small", "medium", "large", "x-large",
		"xx-large", "larger", "smaller")
	fontStyles     = kw("normal", "italic", "oblique")
	fontVariants   = kw("normal", "small-caps")
	fontWeights    = kw("normal", "bold", "bolder", "lighter")
	textAligns     = kw("left", "right", "center", "justify", "start", "end")
	textTransforms = kw("none", "capitalize", "uppercase", "lowercase")
	whiteSpaces    = kw("normal", "pre", "nowrap", "pre-wrap", "pre-line", "break-spaces")
	directions     = kw("ltr", "rtl")
	listStyleTypes = kw("disc", "circle", "square", "decimal", "decimal-leading-zero",
		"lower-roman", "upper-roman", "lower-alpha", "upper-alpha", "lower-latin",
		"upper-latin", "lower-greek", "none")
	listStylePositions = kw("inside", "outside")
	outlineStyles      = borderStyles.with("auto")
	none               = kw("none")
	auto               = kw("auto")
	normal             = kw("normal")
	currentColor       = kw("currentcolor")
)

// registry creates the table of decoders, keyed by property name.
func registry() map[string]decodeFunc {
	r := map[string]decodeFunc{
		"color":               genericOneIdentOrColor(currentColor),
		"background-color":    genericOneIdentOrColor(currentColor),
		"display":             genericOneIdent(displayKeywords),
		"position":            genericOneIdent(positionKeywords),
		"float":               genericOneIdent(floatKeywords),
		"clear":               genericOneIdent(clearKeywords),
		"visibility":          genericOneIdent(visibilityKeywords),
		"overflow":            genericOneIdent(overflowKeywords),
		"z-index":             genericOneIdentOrInteger(auto, AllowAll),
		"opacity":             genericOneIdentOrNumber(nil, TruncateNegative),
		"width":               genericOneIdentOrLengthOrPercent(auto, DisallowNegative),
		"height":              genericOneIdentOrLengthOrPercent(auto, DisallowNegative),
		"min-width":           genericOneIdentOrLengthOrPercent(auto, DisallowNegative),
		"min-height":          genericOneIdentOrLengthOrPercent(auto, DisallowNegative),
		"max-width":           genericOneIdentOrLengthOrPercent(none, DisallowNegative),
		"max-height":          genericOneIdentOrLengthOrPercent(none, DisallowNegative),
		"font-size":           genericOneIdentOrLengthOrPercent(fontSizes, DisallowNegative),
		"font-style":          genericOneIdent(fontStyles),
		"font-variant":        genericOneIdent(fontVariants),
		"font-weight":         genericOneIdentOrInteger(fontWeights, DisallowZero),
		"line-height":         decodeLineHeight,
		"text-align":          genericOneIdent(textAligns),
		"text-indent":         genericOneIdentOrLengthOrPercent(nil, AllowAll),
		"text-transform":      genericOneIdent(textTransforms),
		"white-space":         genericOneIdent(whiteSpaces),
		"direction":           genericOneIdent(directions),
		"letter-spacing":      genericOneIdentOrLength(normal, AllowAll),
		"word-spacing":        genericOneIdentOrLength(normal, AllowAll),
		"list-style-type":     genericOneIdent(listStyleTypes),
		"list-style-position": genericOneIdent(listStylePositions),
		"list-style-image":    genericOneIdentOrURI(none),
		"outline-width":       genericOneIdentOrLength(borderWidths, DisallowNegative),
		"outline-style":       genericOneIdent(outlineStyles),
		"outline-color":       genericOneIdentOrColor(kw("invert")),
		"text-decoration":     decodeTextDecoration,
		"content":             decodeContent,
		"quotes":              decodeQuotes,
		"counter-reset":       decodeCounters(0),
		"counter-increment":   decodeCounters(1),
		// shorthands
		"margin":       repeat("margin", "", identT(auto), lengthT(AllowAll), percentT(AllowAll)),
		"padding":      repeat("padding", "", lengthT(DisallowNegative), percentT(DisallowNegative)),
		"border-width": repeat("border", "width", identT(borderWidths), lengthT(DisallowNegative)),
		"border-style": repeat("border", "style", identT(borderStyles)),
		"border-color": repeat("border", "color", identT(currentColor), colorT),
		"border":       decodeBorder,
		"outline":      shorthand(outlineVariator),
		"list-style":   shorthand(listStyleVariator),
		"font":         decodeFont,
		"background":   decodeBackground,
		// lists
		"font-family":           decodeFontFamily,
		"background-image":      backgroundList(bgImage),
		"background-repeat":     backgroundList(bgRepeat),
		"background-attachment": backgroundList(bgAttachment),
	}
	for _, name := range edgeNames("margin", "") {
		r[name] = genericOneIdentOrLengthOrPercent(auto, AllowAll)
	}
	for _, name := range edgeNames("padding", "") {
		r[name] = genericOneIdentOrLengthOrPercent(nil, DisallowNegative)
	}
	for _, name := range fourDirs {
		r[name] = genericOneIdentOrLengthOrPercent(auto, AllowAll)
	}
	for _, dir := range fourDirs {
		r["border-"+dir] = decodeBorderSide(dir)
		r[p("border", "width", dir)] = borderSideComponent(dir, bsWidth)
		r[p("border", "style", dir)] = borderSideComponent(dir, bsStyle)
		r[p("border", "color", dir)] = borderSideComponent(dir, bsColor)
	}
	return r
}

func decodeLineHeight(d *cssom.Declaration, out *Assignments) bool {
	return d.Len() == 1 && (genericTermIdent(d.Terms[0], d.Property, normal, true, out) ||
		lineHeightT(d.Terms[0], d.Property, out))
}

// --- Term decoders for shorthand components -------------------------------

// termFunc decodes a single term into property name.
type termFunc func(t cssom.Term, name string, out *Assignments) bool

// identT accepts keywords, but no CSS-wide keyword: these cannot be mixed
// with other values.
func identT(allowed keywords) termFunc {
	return func(t cssom.Term, name string, out *Assignments) bool {
		return genericTermIdent(t, name, allowed, false, out)
	}
}

func colorT(t cssom.Term, name string, out *Assignments) bool {
	return genericTermColor(t, name, out)
}

func lengthT(rng ValueRange) termFunc {
	return func(t cssom.Term, name string, out *Assignments) bool {
		return genericTermLength(t, name, rng, out)
	}
}

func percentT(rng ValueRange) termFunc {
	return func(t cssom.Term, name string, out *Assignments) bool {
		return genericTermPercent(t, name, rng, out)
	}
}

func integerT(rng ValueRange) termFunc {
	return func(t cssom.Term, name string, out *Assignments) bool {
		return genericTermInteger(t, name, rng, out)
	}
}

func uriT(t cssom.Term, name string, out *Assignments) bool {
	return genericTermURI(t, name, out)
}

func lineHeightT(t cssom.Term, name string, out *Assignments) bool {
	return genericTermNumber(t, name, DisallowNegative, out) ||
		genericTermLength(t, name, DisallowNegative, out) ||
		genericTermPercent(t, name, DisallowNegative, out)
}

// anyOf combines term decoders; the first one to accept a term wins.
func anyOf(fns ...termFunc) termFunc {
	return func(t cssom.Term, name string, out *Assignments) bool {
		for _, fn := range fns {
			if fn(t, name, out) {
				return true
			}
		}
		return false
	}
}

// variant creates a single-term variant.
func variant(name string, fns ...termFunc) Variant {
	fn := anyOf(fns...)
	return Variant{
		Name: name,
		Decode: func(terms []cssom.Term, i *int, out *Assignments) bool {
			return fn(terms[*i], name, out)
		},
	}
}

// repeat creates a Repeater-based decoder for a four-edge shorthand.
func repeat(prefix, suffix string, fns ...termFunc) decodeFunc {
	fn := anyOf(fns...)
	r := NewRepeater(prefix, suffix, func(_ int, name string, t cssom.Term, out *Assignments) bool {
		return fn(t, name, out)
	})
	return r.RepeatOverFourTermDeclaration
}

// shorthand creates a Variator-based decoder. Components not given are reset
// to their initial value. Variators carry state, so every call builds a new
// one.
func shorthand(build func() *Variator) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		v := build()
		v.AssignTermsFromDeclaration(d)
		if !v.Vary(out) {
			return false
		}
		v.AssignDefaults(out)
		return true
	}
}
