/*
Package douceuradapter creates stylesheets of the CSS object model from CSS
text.

# Overview

Stylesheets are parsed with https://github.com/aymerick/douceur, which splits
them into rules, selector lists and raw declaration values. Selectors and
values are then tokenized with the scanner of https://github.com/gorilla/css
(douceur uses the same scanner internally) and converted into cssom types.

Every selector is validated with https://github.com/andybalholm/cascadia
before it is converted. Selectors cascadia does not accept are skipped, as are
declarations with values we cannot tokenize and at-rules other than @media.
Skipped pieces are traced and reported as non-fatal errors.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}
