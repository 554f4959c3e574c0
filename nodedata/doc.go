/*
Package nodedata holds the computed style of a single node (or one of its
pseudo-elements).

A NodeData goes through a fixed lifecycle:

	created empty → Push(decl)… → InheritFrom(parent) → Concretize()

Declarations are pushed in cascade order; later pushes for a property
overwrite earlier ones. InheritFrom copies the parent's values for all
inheritable properties, and for properties explicitly set to "inherit".
Concretize finally resolves the CSS-wide keywords "inherit", "initial" and
"unset", using the inherited values and the default values of a metadata
table. After Concretize a NodeData is not mutated any more.

There are two implementations with identical semantics: Quadruple keeps a
single map of (own, inherited) entries and is space-optimized, MultiMap keeps
separate maps per slot and is faster for lookups. Clients choose one with a
Factory. Inheriting between different implementations is a programming error
and panics.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package nodedata

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.nodedata'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.nodedata")
}
