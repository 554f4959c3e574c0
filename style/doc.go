/*
Package style holds the vocabulary of resolved style values: property markers,
property metadata and typed helpers for dimensions and display modes.

# Overview

Decoding a declaration produces, for every affected property, a marker of type
Property together with an optional value term. The marker is either a keyword
of the property (e.g. "solid" for border-top-style), a CSS-wide keyword
("inherit", "initial", "unset"), or a value kind ("length", "color", …)
telling that the actual value is carried by the term.

Property metadata (which properties are inherited, what their initial values
are) is provided by interface Metadata. Table is a YAML-backed implementation;
DefaultTable returns a table with the CSS 2.1 initial values.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.style'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}
