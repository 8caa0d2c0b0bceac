/*
Package xmlnode adapts github.com/beevik/etree elements to dom.TreeNode.

XHTML output of renderers and templating engines is often handled as XML.
Elements keep their parent link in etree, so the ancestor checks of the
serializer work the same way as for HTML parse trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package xmlnode

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/npillmayer/cssnap/dom"
)

// Element wraps an *etree.Element.
type Element struct {
	el *etree.Element
}

// Wrap creates a dom.TreeNode for an XML element. A nil element results in nil.
func Wrap(el *etree.Element) dom.TreeNode {
	if el == nil {
		return nil
	}
	return Element{el: el}
}

// XMLElement returns the wrapped element.
func (e Element) XMLElement() *etree.Element {
	return e.el
}

// Kind is part of interface dom.TreeNode.
// etree keeps a tag-less element as the parent of a document's root element;
// it is reported as the document.
func (e Element) Kind() dom.Kind {
	if e.el.Tag == "" && e.el.Parent() == nil {
		return dom.Document
	}
	return dom.Element
}

// Tag is part of interface dom.TreeNode.
func (e Element) Tag() string {
	return e.el.FullTag()
}

// ClassAttribute is part of interface dom.TreeNode.
func (e Element) ClassAttribute() (string, bool) {
	if a := e.el.SelectAttr("class"); a != nil {
		return a.Value, true
	}
	return "", false
}

// Attributes is part of interface dom.TreeNode.
func (e Element) Attributes() []dom.Attr {
	if len(e.el.Attr) == 0 {
		return nil
	}
	attrs := make([]dom.Attr, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		attrs = append(attrs, dom.Attr{Key: a.FullKey(), Value: a.Value})
	}
	return attrs
}

// Children is part of interface dom.TreeNode.
func (e Element) Children() []dom.TreeNode {
	var children []dom.TreeNode
	for _, tok := range e.el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			children = append(children, Element{el: t})
		case *etree.CharData:
			children = append(children, charData{cd: t, parent: e.el})
		case *etree.Comment:
			children = append(children, comment{c: t, parent: e.el})
		}
	}
	return children
}

// Parent is part of interface dom.TreeNode.
func (e Element) Parent() dom.TreeNode {
	return Wrap(e.el.Parent())
}

// Text is part of interface dom.TreeNode.
func (e Element) Text() string {
	return ""
}

// Identity is part of interface dom.TreeNode.
func (e Element) Identity() any {
	if e.el == nil {
		return nil
	}
	return e.el
}

var _ dom.TreeNode = Element{}

// --- Leaf tokens -----------------------------------------------------------

type charData struct {
	cd     *etree.CharData
	parent *etree.Element
}

func (c charData) Kind() dom.Kind                 { return dom.Text }
func (c charData) Tag() string                    { return "" }
func (c charData) ClassAttribute() (string, bool) { return "", false }
func (c charData) Attributes() []dom.Attr         { return nil }
func (c charData) Children() []dom.TreeNode       { return nil }
func (c charData) Parent() dom.TreeNode           { return Wrap(c.parent) }
func (c charData) Text() string                   { return c.cd.Data }
func (c charData) Identity() any                  { return c.cd }

type comment struct {
	c      *etree.Comment
	parent *etree.Element
}

func (c comment) Kind() dom.Kind                 { return dom.Comment }
func (c comment) Tag() string                    { return "" }
func (c comment) ClassAttribute() (string, bool) { return "", false }
func (c comment) Attributes() []dom.Attr         { return nil }
func (c comment) Children() []dom.TreeNode       { return nil }
func (c comment) Parent() dom.TreeNode           { return Wrap(c.parent) }
func (c comment) Text() string                   { return c.c.Data }
func (c comment) Identity() any                  { return c.c }

// --- Documents -------------------------------------------------------------

// Parse reads an XML document from a string and returns its root element.
func Parse(s string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("cannot parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("XML document has no root element")
	}
	return root, nil
}

// Detach returns a deep copy of an element, leaving the original untouched.
// The copy has no parent.
func Detach(el *etree.Element) *etree.Element {
	if el == nil {
		return nil
	}
	return el.Copy()
}
