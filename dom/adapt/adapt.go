/*
Package adapt converts values of the supported tree shapes to dom.TreeNode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package adapt

import (
	"github.com/beevik/etree"
	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/cssnap/dom/htmlnode"
	"github.com/npillmayer/cssnap/dom/testtree"
	"github.com/npillmayer/cssnap/dom/xmlnode"
	"golang.org/x/net/html"
)

// Node wraps v into a dom.TreeNode, if v is of a supported shape:
// *html.Node, *etree.Element, *testtree.Node or any other dom.TreeNode.
// Nil values of any of these types are rejected.
func Node(v any) (dom.TreeNode, bool) {
	switch n := v.(type) {
	case nil:
		return nil, false
	case *html.Node:
		if n == nil {
			return nil, false
		}
		return htmlnode.Wrap(n), true
	case *etree.Element:
		if n == nil {
			return nil, false
		}
		return xmlnode.Wrap(n), true
	case *etree.Document:
		if n == nil || n.Root() == nil {
			return nil, false
		}
		return xmlnode.Wrap(n.Root()), true
	case *testtree.Node:
		if n == nil {
			return nil, false
		}
		return n, true
	case dom.TreeNode:
		if dom.IsNil(n) {
			return nil, false
		}
		return n, true
	}
	return nil, false
}

// Nodes converts a collection of nodes. It accepts []dom.TreeNode,
// []*html.Node and []*etree.Element.
func Nodes(v any) ([]dom.TreeNode, bool) {
	switch c := v.(type) {
	case []dom.TreeNode:
		return c, true
	case []*html.Node:
		nodes := make([]dom.TreeNode, 0, len(c))
		for _, h := range c {
			if h != nil {
				nodes = append(nodes, htmlnode.Wrap(h))
			}
		}
		return nodes, true
	case []*etree.Element:
		nodes := make([]dom.TreeNode, 0, len(c))
		for _, el := range c {
			if el != nil {
				nodes = append(nodes, xmlnode.Wrap(el))
			}
		}
		return nodes, true
	}
	return nil, false
}
