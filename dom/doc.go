/*
Package dom defines the view of a markup tree the cascade works on.

# Status

Early draft—API may change frequently. Please stay patient.

# Overview

The cascade does not care about the concrete representation of a document
tree. It needs to navigate between parents, children and siblings, to tell
elements from other kinds of nodes, and to read an element's tag, id and
classes. Interface Node captures exactly this. Attribute selectors additionally
need access to arbitrary attributes, which is available from nodes implementing
AttributeNode.

Node handles have to be comparable and identity-stable: two handles for the
same node must compare equal, as nodes are used as map keys. A ready-made
adapter for HTML parse trees of golang.org/x/net/html lives in package
htmlnode.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
