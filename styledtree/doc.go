/*
Package styledtree is a straightforward implementation of a styled document
tree.

# Overview

A styled tree mirrors the element structure of a document. Every node
links to its DOM node and carries the computed styles of the element and
of its pseudo-elements. cascade.Analyzer.StyledTree creates a styled tree
from a document and a set of stylesheets.

Styled nodes build on the generic tree.Node type: a *tree.Node[*StyNode]
has the styled node as its payload, and Node gets it back.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
