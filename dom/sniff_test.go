package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLooksLikeHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap.dom")
	defer teardown()
	//
	tt := []struct {
		input string
		html  bool
	}{
		{`<div class="css-a">hi</div>`, true},
		{`<DIV>`, true},
		{`<br/>`, true},
		{`text </p>`, true},
		{`<!DOCTYPE html><html></html>`, true},
		{`<!-- css-a -->`, true},
		{`<span`, false},
		{`<span class="css-a"`, false},
		{`<span class="css-a"\n>`, true},
		{`Snapshot Diff: <b>`, true},
		{`a < b and c > d`, false},
		{`<notatag>`, false},
		{`<divx>`, false},
		{`plain text`, false},
		{``, false},
		{`<`, false},
	}
	for _, tc := range tt {
		if LooksLikeHTML(tc.input) != tc.html {
			t.Errorf("expected LooksLikeHTML(%q) to be %v, isn't", tc.input, tc.html)
		}
	}
}

func TestKindString(t *testing.T) {
	if Element.String() != "element" || Kind(99).String() != "unknown" {
		t.Errorf("unexpected kind names %q, %q", Element, Kind(99))
	}
}

func TestNilTreeNode(t *testing.T) {
	if !IsNil(nil) {
		t.Error("expected nil interface to be nil")
	}
	if ClassTokens(nil) != nil || ElementChildren(nil) != nil {
		t.Error("expected helpers to accept nil nodes")
	}
}
