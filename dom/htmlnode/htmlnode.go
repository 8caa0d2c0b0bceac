/*
Package htmlnode adapts golang.org/x/net/html parse trees to dom.TreeNode.

It also offers the small set of DOM-like capabilities the snapshot serializer
needs outside of traversal: parsing a string into a detached container
element ("innerHTML") and cloning a node through its markup ("outerHTML"),
which guarantees that a caller's tree is never mutated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmlnode

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cssnap.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cssnap.dom")
}

// Node wraps an *html.Node.
type Node struct {
	h *html.Node
}

// Wrap creates a dom.TreeNode for an HTML node. A nil node results in nil.
func Wrap(h *html.Node) dom.TreeNode {
	if h == nil {
		return nil
	}
	return Node{h: h}
}

// HTMLNode returns the wrapped HTML node.
func (n Node) HTMLNode() *html.Node {
	return n.h
}

// Kind is part of interface dom.TreeNode.
func (n Node) Kind() dom.Kind {
	switch n.h.Type {
	case html.ElementNode:
		return dom.Element
	case html.TextNode:
		return dom.Text
	case html.CommentNode:
		return dom.Comment
	case html.DocumentNode:
		return dom.Document
	}
	return dom.Unknown
}

// Tag is part of interface dom.TreeNode.
func (n Node) Tag() string {
	if n.h.Type != html.ElementNode {
		return ""
	}
	return n.h.Data
}

// ClassAttribute is part of interface dom.TreeNode.
func (n Node) ClassAttribute() (string, bool) {
	return Attr(n.h, "class")
}

// Attributes is part of interface dom.TreeNode.
func (n Node) Attributes() []dom.Attr {
	if len(n.h.Attr) == 0 {
		return nil
	}
	attrs := make([]dom.Attr, 0, len(n.h.Attr))
	for _, a := range n.h.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		attrs = append(attrs, dom.Attr{Key: key, Value: a.Val})
	}
	return attrs
}

// Children is part of interface dom.TreeNode.
func (n Node) Children() []dom.TreeNode {
	var children []dom.TreeNode
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, Node{h: ch})
	}
	return children
}

// Parent is part of interface dom.TreeNode.
func (n Node) Parent() dom.TreeNode {
	return Wrap(n.h.Parent)
}

// Text is part of interface dom.TreeNode.
func (n Node) Text() string {
	switch n.h.Type {
	case html.TextNode, html.CommentNode:
		return n.h.Data
	}
	return ""
}

// Identity is part of interface dom.TreeNode.
func (n Node) Identity() any {
	if n.h == nil {
		return nil
	}
	return n.h
}

var _ dom.TreeNode = Node{}

// Attr returns the value of attribute key of an element node.
func Attr(h *html.Node, key string) (string, bool) {
	if h == nil || h.Type != html.ElementNode {
		return "", false
	}
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// --- DOM-like capabilities -------------------------------------------------

// NewContainer creates a detached <div> element.
func NewContainer() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Div.String(),
		DataAtom: atom.Div,
	}
}

// SetInnerHTML replaces the children of container with the nodes parsed from
// markup. Parsing happens in the context of the container element.
func SetInnerHTML(container *html.Node, markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), container)
	if err != nil {
		return fmt.Errorf("cannot parse HTML fragment: %w", err)
	}
	for ch := container.FirstChild; ch != nil; {
		next := ch.NextSibling
		container.RemoveChild(ch)
		ch = next
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	tracer().Debugf("container <%s> now has %d top-level nodes", container.Data, len(nodes))
	return nil
}

// OuterHTML renders a node, including itself, as markup.
func OuterHTML(h *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, h); err != nil {
		return "", fmt.Errorf("cannot render HTML node: %w", err)
	}
	return buf.String(), nil
}

// FirstElementChild returns the first child of h which is an element.
func FirstElementChild(h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return ch
		}
	}
	return nil
}

// ElementChildren returns all children of h which are elements.
func ElementChildren(h *html.Node) []*html.Node {
	if h == nil {
		return nil
	}
	var elems []*html.Node
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			elems = append(elems, ch)
		}
	}
	return elems
}
