/*
Package decode turns declarations into typed property assignments.

A declaration like

	border: 1px solid red

is decoded into assignments for all twelve border longhands, e.g.
border-top-width → (length, 1px), border-top-style → (solid, nil),
border-top-color → (color, #ff0000). Every property has a decode routine,
registered in a table built once per Decoder. Routines are composed from a small
set of primitives (one identifier, one color, one length within a value range,
…) and two frameworks for shorthands:

Repeater distributes one to four values onto four edge properties, following
the usual CSS box-edge rules (margin, padding, border-width, …).

Variator decodes shorthands whose components may appear in any order (border,
font, background, …). Every component ("variant") is tried against every term;
the first variant accepting a term wins and may not be used again. Variants may
impose positional conditions, e.g. a line-height is only accepted directly after
a font-size, separated by a slash. Variators also decode comma-separated lists,
per group of terms.

Decoding either succeeds as a whole or fails as a whole: a failing declaration
never produces partial assignments.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package decode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.decode'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.decode")
}
