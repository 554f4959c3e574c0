/*
Package traverse provides a filtered cursor over a dom.Node tree and two
traversal strategies built on it.

A TreeCursor is positioned at one node at a time. Navigation moves the cursor
and returns the node it moved to, or returns nil and leaves the cursor where it
was. Nodes rejected by the cursor's filter are skipped together with their
subtrees; for the usual element filter this means text and comment nodes are
invisible.

Algorithms which borrow the cursor, e.g. the selector matcher, take a
Checkpoint before moving it and restore it before they return. Traversals rely
on this: after processing a node they reset the cursor to the checkpoint and
advance from there.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package traverse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.traverse'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.traverse")
}
