package cssnap

import (
	"sync"
	"testing"

	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/cssnap/dom/domdbg"
	"github.com/npillmayer/cssnap/dom/htmlnode"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

var myhtml = `<section class="css-root">
  <p class="css-a plain">Hello <b class="css-b">you</b></p>
  <span class="css-a css-a-b">!</span>
</section>`

func parseFirst(t *testing.T, markup string) *html.Node {
	t.Helper()
	div := htmlnode.NewContainer()
	if err := htmlnode.SetInnerHTML(div, markup); err != nil {
		t.Fatal(err)
	}
	return htmlnode.FirstElementChild(div)
}

func TestGetNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap")
	defer teardown()
	//
	root := htmlnode.Wrap(parseFirst(t, myhtml))
	t.Logf("tree =\n%s", domdbg.Dump(root))
	nodes := GetNodes(root)
	tags := make([]string, len(nodes))
	for i, n := range nodes {
		tags[i] = n.Tag()
	}
	expected := []string{"section", "p", "b", "span"}
	if len(tags) != len(expected) {
		t.Fatalf("expected nodes %v, have %v", expected, tags)
	}
	for i := range expected {
		if tags[i] != expected[i] {
			t.Errorf("expected node #%d to be <%s>, is <%s>", i, expected[i], tags[i])
		}
	}
	if GetNodes(nil) != nil {
		t.Error("expected nil root to have no nodes")
	}
}

func TestGetSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap")
	defer teardown()
	//
	nodes := GetNodes(htmlnode.Wrap(parseFirst(t, myhtml)))
	sels := GetSelectors(nodes, nil)
	expected := []string{"css-root", "css-a", "css-b", "css-a-b"}
	if len(sels) != len(expected) {
		t.Fatalf("expected selectors %v, have %v", expected, sels)
	}
	for i := range expected {
		if sels[i] != expected[i] {
			t.Errorf("expected selector #%d to be %s, is %s", i, expected[i], sels[i])
		}
	}
}

func TestMarks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap")
	defer teardown()
	//
	section := parseFirst(t, myhtml)
	root := htmlnode.Wrap(section)
	nodes := GetNodes(root)
	var marks Marks
	b := dom.ElementChildren(dom.ElementChildren(root)[0])[0]
	if marks.IsBeingSerialized(b) {
		t.Error("did not expect <b> to be marked before marking")
	}
	marks.MarkNodes(nodes[:1])
	marks.MarkNodes(nodes[:1])
	if marks.IsMarked(b) {
		t.Error("did not expect <b> itself to be marked")
	}
	if !marks.IsBeingSerialized(b) {
		t.Error("expected <b> to be inside a marked tree")
	}
	// re-wrapping yields the same identity
	if !marks.IsMarked(htmlnode.Wrap(section)) {
		t.Error("expected re-wrapped root to be marked")
	}
	marks.Release(nodes[:1])
	if !marks.IsMarked(root) {
		t.Error("expected root to stay marked until its last release")
	}
	marks.Release(nodes[:1])
	if marks.Len() != 0 {
		t.Errorf("expected marks to be empty, have %d", marks.Len())
	}
	marks.MarkNodes([]dom.TreeNode{nil})
	if marks.Len() != 0 || marks.IsMarked(nil) {
		t.Error("expected nil nodes to be ignored")
	}
}

func TestMarksConcurrent(t *testing.T) {
	nodes := GetNodes(htmlnode.Wrap(parseFirst(t, myhtml)))
	var marks Marks
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			marks.MarkNodes(nodes)
			marks.IsBeingSerialized(nodes[len(nodes)-1])
			marks.Release(nodes)
		}()
	}
	wg.Wait()
	if marks.Len() != 0 {
		t.Errorf("expected all marks to be released, %d left", marks.Len())
	}
}
