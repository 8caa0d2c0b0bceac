/*
Package cssnap makes snapshots of styled UI output readable and deterministic.

Overview

CSS-in-JS engines attach generated class names like "css-1x2y3z" to rendered
elements. The names are opaque and change whenever a style changes, or even
between runs, which makes snapshot tests both brittle and hard to review.
A Serializer replaces every generated class token in a snapshot with the
token and the CSS it stands for:

   <div
     class="css-1x2y3z { color: red; }"
   >
     Hello
   </div>

Serializing a value is a single pass through a small pipeline:

   value → nodes (GetNodes) → class tokens (GetSelectors)
         → style bundle (GetStylesAndAllSelectors) → printed text
         → substituted text (ReplaceSelectors)

Styles are resolved against a style-sheet registry (package dom/style/cssom).
Trees may be HTML parse trees, etree elements, or test-renderer JSON trees
(see package dom and its sub-packages).

Serializer implements pretty.Plugin and is meant to be registered with the
pretty printer, in front of the plugins for tree shapes:

   s := cssnap.New(sheet)
   out := pretty.Format(node, pretty.Options{Plugins: s.Plugins()})

While a value is being printed, its nodes are remembered by the serializer.
The printer re-offers nested nodes to the plugins, and the serializer will
refuse them, leaving them to the tree-shape plugins. Nodes are never
modified.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssnap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssnap'
func tracer() tracing.Trace {
	return tracing.Select("cssnap")
}
