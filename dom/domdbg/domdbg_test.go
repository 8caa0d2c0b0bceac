package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cssnap/dom/htmlnode"
	"github.com/npillmayer/cssnap/dom/testtree"
)

func TestDump(t *testing.T) {
	div := htmlnode.NewContainer()
	if err := htmlnode.SetInnerHTML(div, `<p class="css-a b">Hello <b>you</b></p>`); err != nil {
		t.Fatal(err)
	}
	s := Dump(htmlnode.Wrap(div))
	t.Logf("tree =\n%s", s)
	for _, part := range []string{"<div>", "<p> .css-a.b", "<b>", "text Hello"} {
		if !strings.Contains(s, part) {
			t.Errorf("expected dump to contain %q, doesn't", part)
		}
	}
	if Dump(nil) != "<nil>" {
		t.Error("expected nil tree to be dumped as <nil>")
	}
}

func TestGraphViz(t *testing.T) {
	n := testtree.New("div").Append("text", testtree.New("span"))
	var buf bytes.Buffer
	if err := ToGraphViz(n, &buf, func(s string) bool { return strings.HasPrefix(s, "css-") }); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, is\n%s", dot)
	}
	if strings.Count(dot, "->") != 2 {
		t.Errorf("expected 2 edges, is\n%s", dot)
	}
}
