/*
Package dom defines the capability interface every rendered tree has to offer
for snapshot serialization.

Overview

Snapshot tests see rendered output in different shapes: DOM trees produced by
an HTML parser, XML/XHTML elements, or JSON trees emitted by a test renderer.
The serializer does not care about the concrete shape. It needs to know a
node's kind and tag, read its class attribute, enumerate its children and
walk upwards to its parent. Interface TreeNode captures exactly this, and
sub-packages provide adapters for every concrete shape:

   htmlnode     golang.org/x/net/html nodes
   xmlnode      github.com/beevik/etree elements
   testtree     test-renderer JSON trees

Package adapt dispatches from arbitrary values to the matching adapter.

In a fully object oriented programming language we would subclass a common
node type for every shape, but in Go we resort to small adapter types which
wrap the foreign node and implement TreeNode.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cssnap.dom'
func tracer() tracing.Trace {
	return tracing.Select("cssnap.dom")
}
