package dom

import "strings"

// Kind is the type of a tree node.
type Kind uint8

// Kinds of nodes. Only elements carry attributes and may have children;
// documents and fragments are containers without a tag.
const (
	Unknown Kind = iota
	Element
	Text
	Comment
	Document
	Fragment
)

func (k Kind) String() string {
	switch k {
	case Element:
		return "element"
	case Text:
		return "text"
	case Comment:
		return "comment"
	case Document:
		return "document"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

// Attr is a single attribute of an element node.
type Attr struct {
	Key   string
	Value any // string for markup; test-renderer props may carry other values
}

// TreeNode is the capability interface of a node in a rendered tree.
//
// Parent is a non-owning back-reference; it is nil for the root of a tree.
// Identity returns the underlying foreign node (usually a pointer), which is
// stable across repeated wrapping of the same node and may be used as a map key.
type TreeNode interface {
	Kind() Kind
	Tag() string                    // element name, empty for non-elements
	ClassAttribute() (string, bool) // space-separated class tokens, if present
	Attributes() []Attr             // attributes in source order
	Children() []TreeNode           // all child nodes, including text
	Parent() TreeNode               // parent node or nil
	Text() string                   // character data of text and comment nodes
	Identity() any                  // underlying node
}

// ElementChildren returns the element children of n.
func ElementChildren(n TreeNode) []TreeNode {
	if n == nil {
		return nil
	}
	var elems []TreeNode
	for _, ch := range n.Children() {
		if ch.Kind() == Element {
			elems = append(elems, ch)
		}
	}
	return elems
}

// ClassTokens splits the class attribute of n into its tokens.
func ClassTokens(n TreeNode) []string {
	if n == nil {
		return nil
	}
	if cls, ok := n.ClassAttribute(); ok {
		return strings.Fields(cls)
	}
	return nil
}

// IsNil checks for a nil interface as well as a typed nil inside an interface.
func IsNil(n TreeNode) bool {
	if n == nil {
		return true
	}
	return n.Identity() == nil
}
