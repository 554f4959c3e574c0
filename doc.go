/*
Package cascade resolves which CSS declarations apply to which nodes of a
document tree, and computes the resulting styles.

# Status

Early draft—API may change frequently. Please stay patient.

# Overview

Clients hand over stylesheets which are already parsed into package cssom's
data model (package douceuradapter converts CSS text), and a tree of
dom.Node. Styling proceeds in three steps:

■ Classify indexes all rule-sets of a set of stylesheets by the key (rightmost)
selector of their selectors, for a given media context. Rules guarded by a
non-matching media query are left out. The resulting RuleIndex is read-only
and may be shared.

■ AssignDeclarations looks up the candidate rules for every element, sorts them
into cascade order, matches their selectors against the element and collects
the declarations of matching rules, per element and pseudo-element. Cascade
order is by origin and importance, then by specificity, then by source order.

■ EvaluateDOM decodes the declarations of every element into a
nodedata.NodeData, inheriting from the parent element's style, and resolves
the keywords "inherit", "initial" and "unset".

Analyzer bundles these steps:

	analyzer := cascade.NewAnalyzer(sheets, cascade.WithMedia(cssom.NewMedia("print")))
	styles, err := analyzer.Analyze(root)
	…
	color := styles.Style(node).Property("color", true)

DirectAnalyzer computes the style of single elements, without inheritance.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.engine")
}
