/*
Package cssom holds the object model the cascade operates on: stylesheets with
an origin, rule-sets and media blocks, combined selectors with their
specificity, declarations and their value terms.

# Status

The model is deliberately independent of any CSS parser. Clients construct
stylesheets either directly or through an adapter (see package douceuradapter),
which delegates parsing of CSS text to a third-party library.

# Selectors

A CombinedSelector is a sequence of compound selectors (steps). Every step
carries the combinator which relates it to the step before it; the first step
has CombinatorNone. The last step is the key selector, i.e. the one which is
tested against a candidate node first.

	div.note > p:first-child::before

is modelled as two steps, "div.note" and "p:first-child::before", the second
one with combinator Child.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
