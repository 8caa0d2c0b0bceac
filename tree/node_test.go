package tree

import (
	"testing"
)

func node[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func TestNodeAddChild(t *testing.T) {
	root := node("root")
	a, b := node("a"), node("b")
	root.AddChild(a).AddChild(b).AddChild(nil)
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	if root.IndexOfChild(b) != 1 || root.IndexOfChild(root) != -1 {
		t.Errorf("unexpected child indices in %v", root)
	}
	if a.Parent() != root || root.Parent() != nil {
		t.Error("parent links are broken")
	}
	var nilNode *Node[string]
	if nilNode.Parent() != nil || nilNode.ChildCount() != 0 || nilNode.Children() != nil {
		t.Error("expected nil node to have no relatives")
	}
}

func TestNodeIsolate(t *testing.T) {
	root := node(0)
	a, b := node(1), node(2)
	root.AddChild(a).AddChild(b)
	a.Isolate()
	if a.Parent() != nil || root.ChildCount() != 1 || root.IndexOfChild(b) != 0 {
		t.Errorf("expected a to be isolated, root is %v", root)
	}
	other := node(3)
	other.AddChild(b)
	if root.ChildCount() != 0 || b.Parent() != other {
		t.Error("expected b to have moved to other")
	}
}

func TestNodeChildrenIsCopy(t *testing.T) {
	root := node("r")
	root.AddChild(node("x"))
	chs := root.Children()
	chs[0] = nil
	if root.Children()[0] == nil {
		t.Error("expected Children() to return a copy")
	}
}
