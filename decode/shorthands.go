package decode

import (
	"strings"

	"github.com/npillmayer/cascade/cssom"
	"github.com/npillmayer/cascade/style"
)

// --- Borders ---------------------------------------------------------------

// Variants of a border side.
const (
	bsWidth = iota
	bsStyle
	bsColor
)

var borderSuffixes = [3]string{"width", "style", "color"}

func borderSideVariator(dir string) *Variator {
	return NewVariator(
		variant(p("border", "width", dir), identT(borderWidths), lengthT(DisallowNegative)),
		variant(p("border", "style", dir), identT(borderStyles)),
		variant(p("border", "color", dir), identT(currentColor), colorT),
	)
}

func decodeBorderSide(dir string) decodeFunc {
	return shorthand(func() *Variator { return borderSideVariator(dir) })
}

// borderSideComponent decodes a border longhand, e.g. border-top-style,
// with the corresponding variant of the border side.
func borderSideComponent(dir string, component int) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		return borderSideVariator(dir).TryOneTermVariant(component, d, out)
	}
}

// decodeBorder decodes "border" as a top side and copies the result to all
// four sides.
func decodeBorder(d *cssom.Declaration, out *Assignments) bool {
	top := NewAssignments()
	if !decodeBorderSide("top")(d, top) {
		return false
	}
	for _, dir := range fourDirs {
		for _, suffix := range borderSuffixes {
			src := p("border", suffix, "top")
			out.Set(p("border", suffix, dir), top.Property(src), top.Value(src))
		}
	}
	return true
}

// --- Outline and list-style ------------------------------------------------

func outlineVariator() *Variator {
	return NewVariator(
		variant("outline-color", identT(kw("invert")), colorT),
		variant("outline-style", identT(outlineStyles)),
		variant("outline-width", identT(borderWidths), lengthT(DisallowNegative)),
	)
}

func listStyleVariator() *Variator {
	return NewVariator(
		variant("list-style-type", identT(listStyleTypes)),
		variant("list-style-position", identT(listStylePositions)),
		variant("list-style-image", identT(none), uriT),
	)
}

// --- Font ------------------------------------------------------------------

// Variants of the font shorthand.
const (
	fStyle = iota
	fVariant
	fWeight
	fSize
	fLineHeight
	fFamily
)

// beforeSize restricts a font variant to the terms before the font size.
func beforeSize(v *Variator, i int) bool {
	return !v.Passed(fSize) && v.Terms()[i].Operator() == cssom.OpNone
}

func fontVariator() *Variator {
	fstyle := variant("font-style", identT(fontStyles))
	fstyle.Condition = beforeSize
	fvariant := variant("font-variant", identT(fontVariants))
	fvariant.Condition = beforeSize
	weight := Variant{
		Name: "font-weight",
		Decode: func(terms []cssom.Term, i *int, out *Assignments) bool {
			return anyOf(identT(fontWeights), integerT(DisallowZero))(terms[*i], "font-weight", out)
		},
		Condition: beforeSize,
	}
	size := Variant{
		Name: "font-size",
		Decode: func(terms []cssom.Term, i *int, out *Assignments) bool {
			return anyOf(identT(fontSizes), lengthT(DisallowNegative), percentT(DisallowNegative))(
				terms[*i], "font-size", out)
		},
	}
	lineHeight := Variant{
		Name: "line-height",
		Decode: func(terms []cssom.Term, i *int, out *Assignments) bool {
			return anyOf(identT(normal), lineHeightT)(terms[*i], "line-height", out)
		},
		// line-height only directly after the font size, as in "12pt/1.2"
		Condition: func(v *Variator, i int) bool {
			return v.Passed(fSize) && v.PassedAt(fSize) == i-1 &&
				v.Terms()[i].Operator() == cssom.OpSlash
		},
	}
	family := Variant{
		Name:   "font-family",
		Decode: decodeFamilyRest,
		Condition: func(v *Variator, i int) bool {
			return v.Passed(fSize) && v.Terms()[i].Operator() == cssom.OpNone
		},
	}
	return NewVariator(fstyle, fvariant, weight, size, lineHeight, family)
}

// decodeFont decodes the font shorthand. Font size and family are required.
func decodeFont(d *cssom.Declaration, out *Assignments) bool {
	v := fontVariator()
	v.AssignTermsFromDeclaration(d)
	tmp := NewAssignments()
	if !v.Vary(tmp) || !v.Passed(fSize) || !v.Passed(fFamily) {
		return false
	}
	v.AssignDefaults(tmp)
	out.merge(tmp)
	return true
}

// decodeFamilyRest consumes all remaining terms as a list of font families.
func decodeFamilyRest(terms []cssom.Term, i *int, out *Assignments) bool {
	if id, ok := identOf(terms[*i]); ok && isCSSWide(id) {
		return false
	}
	d := &cssom.Declaration{Property: "font-family", Terms: terms[*i:]}
	if !decodeFontFamily(d, out) {
		return false
	}
	*i = len(terms) - 1
	return true
}

var genericFamilies = kw("serif", "sans-serif", "monospace", "cursive", "fantasy", "system-ui")

func familyVariator() *Variator {
	return NewVariator(Variant{Name: "font-family", Decode: decodeFamilyItem})
}

// decodeFamilyItem decodes one comma-group of a font family list: a quoted
// name, a generic family, or a run of identifiers forming a name.
func decodeFamilyItem(terms []cssom.Term, i *int, out *Assignments) bool {
	rest := terms[*i:]
	for k, t := range rest {
		if k > 0 && t.Operator() != cssom.OpNone {
			return false
		}
	}
	if s, ok := rest[0].(cssom.String); ok {
		if len(rest) > 1 {
			return false
		}
		out.Set("font-family", style.ValueString, cssom.NewString(s.Text))
		*i = len(terms) - 1
		return true
	}
	names := make([]string, len(rest))
	for k, t := range rest {
		id, ok := t.(cssom.Ident)
		if !ok {
			return false
		}
		names[k] = id.Name
	}
	if len(names) == 1 && genericFamilies.has(strings.ToLower(names[0])) {
		g := strings.ToLower(names[0])
		out.Set("font-family", style.Property(g), cssom.NewIdent(g))
	} else {
		out.Set("font-family", style.ValueString, cssom.NewString(strings.Join(names, " ")))
	}
	*i = len(terms) - 1
	return true
}

func decodeFontFamily(d *cssom.Declaration, out *Assignments) bool {
	return familyVariator().TryListOfMultiTermVariant(0, d, out)
}

// --- Background ------------------------------------------------------------

// Variants of the background shorthand.
const (
	bgImage = iota
	bgRepeat
	bgAttachment
	bgColor
)

func backgroundVariator() *Variator {
	return NewVariator(
		variant("background-image", identT(none), uriT),
		variant("background-repeat", identT(kw("repeat", "repeat-x", "repeat-y",
			"no-repeat", "space", "round"))),
		variant("background-attachment", identT(kw("scroll", "fixed", "local"))),
		variant("background-color", identT(currentColor), colorT),
	)
}

// decodeBackground decodes the layers of the background shorthand. The
// background color is allowed in the final layer only.
func decodeBackground(d *cssom.Declaration, out *Assignments) bool {
	return backgroundVariator().VaryList(d, out, bgColor)
}

// backgroundList decodes a list-valued background longhand.
func backgroundList(component int) decodeFunc {
	return func(d *cssom.Declaration, out *Assignments) bool {
		return backgroundVariator().TryListOfOneTermVariant(component, d, out)
	}
}
