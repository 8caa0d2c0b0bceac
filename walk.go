package cssnap

import (
	"sync"

	"github.com/npillmayer/cssnap/dom"
)

// GetNodes returns root followed by all of its element descendants, in
// pre-order. Text and comment nodes are left out, as they never carry a
// class attribute. A nil root results in an empty sequence.
func GetNodes(root dom.TreeNode) []dom.TreeNode {
	if dom.IsNil(root) {
		return nil
	}
	var nodes []dom.TreeNode
	var walk func(dom.TreeNode)
	walk = func(n dom.TreeNode) {
		nodes = append(nodes, n)
		for _, ch := range dom.ElementChildren(n) {
			walk(ch)
		}
	}
	walk(root)
	return nodes
}

// Marks is a set of nodes currently taking part in a serialization pass.
// Nodes are identified by dom.TreeNode.Identity. Marking is counted, so
// nested passes over overlapping trees release correctly.
//
// The zero value is ready to use. Marks is safe for concurrent use.
type Marks struct {
	mx  sync.Mutex
	set map[any]int
}

// MarkNodes adds nodes to the set.
func (m *Marks) MarkNodes(nodes []dom.TreeNode) {
	m.mx.Lock()
	defer m.mx.Unlock()
	if m.set == nil {
		m.set = make(map[any]int)
	}
	for _, n := range nodes {
		if id := identity(n); id != nil {
			m.set[id]++
		}
	}
}

// Release removes nodes from the set, reverting a call to MarkNodes.
func (m *Marks) Release(nodes []dom.TreeNode) {
	m.mx.Lock()
	defer m.mx.Unlock()
	for _, n := range nodes {
		id := identity(n)
		if id == nil {
			continue
		}
		if c := m.set[id]; c > 1 {
			m.set[id] = c - 1
		} else {
			delete(m.set, id)
		}
	}
}

// IsMarked checks n itself.
func (m *Marks) IsMarked(n dom.TreeNode) bool {
	id := identity(n)
	if id == nil {
		return false
	}
	m.mx.Lock()
	defer m.mx.Unlock()
	return m.set[id] > 0
}

// IsBeingSerialized walks from n up the parent chain and reports whether
// n or any of its ancestors is marked.
func (m *Marks) IsBeingSerialized(n dom.TreeNode) bool {
	for !dom.IsNil(n) {
		if m.IsMarked(n) {
			return true
		}
		n = n.Parent()
	}
	return false
}

// Len returns the number of marked nodes.
func (m *Marks) Len() int {
	m.mx.Lock()
	defer m.mx.Unlock()
	return len(m.set)
}

func identity(n dom.TreeNode) any {
	if n == nil {
		return nil
	}
	return n.Identity()
}
