/*
Package tree implements a generic tree of mutable nodes, each carrying a
payload. The cascade package uses it for styled trees, which mirror the
element structure of a document and carry the computed styles of their
nodes.

Children are kept in mutex-protected slices, so building a tree from
several goroutines is safe. Walking a tree is synchronous: TopDown and
BottomUp call an action for every node, Find collects the nodes satisfying
a predicate.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.tree")
}
