/*
Package testtree implements the JSON trees emitted by component test renderers.

Overview

A test renderer does not produce a DOM but a JSON description of the rendered
component tree:

   {
     "$$typeof": "react.test.json",
     "type": "div",
     "props": { "className": "css-1x2y3z" },
     "children": [ "hello", { "type": "span", ... } ]
   }

Every element object carries the well-known marker in field "$$typeof".
Children are either element objects or plain strings. A top-level array
denotes a fragment of several elements.

Nodes are built on top of the general purpose tree type of package tree,
the same way as other node types of this module: a Node embeds a
tree.Node whose payload references the Node itself.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package testtree

import (
	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/cssnap/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssnap.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cssnap.dom")
}

// Marker is the value of field "$$typeof" identifying a test-renderer element.
const Marker = "react.test.json"

// Node is a node of a test-renderer tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             dom.Kind
	typ              string     // element type, e.g. "div"
	props            []dom.Attr // props in JSON order
	text             string     // for text nodes
	marker           string     // "$$typeof"
}

func newNode(kind dom.Kind) *Node {
	n := &Node{kind: kind}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// New creates an element node of a given type, carrying the test-renderer
// marker.
func New(typ string, props ...dom.Attr) *Node {
	n := newNode(dom.Element)
	n.typ = typ
	n.props = props
	n.marker = Marker
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	n := newNode(dom.Text)
	n.text = text
	return n
}

// NewFragment creates a container for several top-level elements.
func NewFragment(children ...any) *Node {
	return newNode(dom.Fragment).Append(children...)
}

// Append adds children to n. Strings are converted to text nodes, nodes are
// attached as they are; anything else is ignored. Append returns n.
func (n *Node) Append(children ...any) *Node {
	for _, ch := range children {
		switch c := ch.(type) {
		case string:
			n.AddChild(&NewText(c).Node)
		case *Node:
			if c != nil {
				n.AddChild(&c.Node)
			}
		default:
			tracer().Debugf("test tree: ignoring child of type %T", ch)
		}
	}
	return n
}

// Type returns the element type, e.g. "div".
func (n *Node) Type() string {
	return n.typ
}

// Prop returns the value of a prop.
func (n *Node) Prop(key string) (any, bool) {
	for _, p := range n.props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// HasMarker is true for element nodes carrying the test-renderer marker.
func (n *Node) HasMarker() bool {
	return n != nil && n.marker == Marker
}

// Kind is part of interface dom.TreeNode.
func (n *Node) Kind() dom.Kind {
	return n.kind
}

// Tag is part of interface dom.TreeNode.
func (n *Node) Tag() string {
	return n.typ
}

// ClassAttribute is part of interface dom.TreeNode. Test renderers carry
// classes in prop "className".
func (n *Node) ClassAttribute() (string, bool) {
	for _, key := range []string{"className", "class"} {
		if v, ok := n.Prop(key); ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// Attributes is part of interface dom.TreeNode.
func (n *Node) Attributes() []dom.Attr {
	return n.props
}

// Children is part of interface dom.TreeNode.
func (n *Node) Children() []dom.TreeNode {
	chs := n.Node.Children()
	if len(chs) == 0 {
		return nil
	}
	children := make([]dom.TreeNode, len(chs))
	for i, ch := range chs {
		children[i] = ch.Payload
	}
	return children
}

// Parent is part of interface dom.TreeNode.
func (n *Node) Parent() dom.TreeNode {
	p := n.Node.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// Text is part of interface dom.TreeNode.
func (n *Node) Text() string {
	return n.text
}

// Identity is part of interface dom.TreeNode.
func (n *Node) Identity() any {
	if n == nil {
		return nil
	}
	return n
}

var _ dom.TreeNode = &Node{}
