/*
Package cssom provides the style-sheet registry snapshot serialization
resolves class names against.

Overview

A CSS-in-JS engine generates class names at runtime and inserts one rule per
generated class into a style sheet it owns. Snapshot serialization only ever
reads from this registry: it looks up the CSS text for a selector and, for
composite rules, enumerates the registry's selectors.

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
Type Sheet is the in-memory implementation used by engines and tests, and
Global is the process-wide sheet engines insert their rules into.
Sheets may also be built from CSS text (see package douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cssnap.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssnap.style")
}
