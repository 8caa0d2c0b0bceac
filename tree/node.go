package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

// Node is the base type our trees are built of. Each node carries a payload
// of type parameter T and keeps a back-reference to its parent.
//
// Node sub-types embed a Node and set the payload to reference themselves
// (see package dom/testtree). The parent link is non-owning: it is used for
// upward navigation only.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children in document order
	Payload  T          // nodes may carry a payload of arbitrary type
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. The child is connected to this node as its
// parent. It returns the parent node to allow for chaining.
// A child already attached elsewhere is detached first.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	node.children = append(node.children, ch)
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	if node == nil {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}
