package selector

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPrefixMatcher(t *testing.T) {
	m := Default()
	for tok, expected := range map[string]bool{
		"css-1x2y3z": true,
		"css-":       false,
		"css":        false,
		"emotion-0":  false,
		"xcss-a":     false,
	} {
		if m.Match(tok) != expected {
			t.Errorf("expected Match(%q) to be %v, isn't", tok, expected)
		}
	}
}

func TestPatternMatcher(t *testing.T) {
	m, err := Pattern(`(css|emotion)-[0-9a-z]+`)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, m.Match("emotion-0"))
	assert.True(t, m.Match("css-abc"))
	assert.False(t, m.Match("my-emotion-0"), "pattern must match the whole token")
	assert.False(t, PatternMatcher{}.Match("css-a"), "zero matcher must not match")
	_, err = Pattern(`(`)
	assert.Error(t, err)
}

func TestContainsToken(t *testing.T) {
	m := Default()
	assert.True(t, ContainsToken(`<div class="css-a">`, m))
	assert.True(t, ContainsToken(`css-a`, m))
	assert.False(t, ContainsToken(`<div class="xcss-a">`, m))
	assert.False(t, ContainsToken(`<div class="css-">`, m))
	assert.False(t, ContainsToken(`css-a`, nil))
}

func TestClassNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap.style")
	defer teardown()
	//
	names := ClassNames(".css-a:hover > .css-b.css-a")
	assert.Equal(t, []string{"css-a", "css-b"}, names)
	assert.Empty(t, ClassNames("div > p"))
	assert.Equal(t, []string{"css-x"}, ClassNames("@media (min-width: 420px) .css-x"))
}

func TestIsBareClass(t *testing.T) {
	tok, ok := IsBareClass(".css-a")
	assert.True(t, ok)
	assert.Equal(t, "css-a", tok)
	tok, ok = IsBareClass("css-a")
	assert.True(t, ok)
	assert.Equal(t, "css-a", tok)
	for _, sel := range []string{".css-a:hover", ".css-a .css-b", ".", ""} {
		if _, ok := IsBareClass(sel); ok {
			t.Errorf("expected %q not to be a bare class, is", sel)
		}
	}
}

func TestSplitGroup(t *testing.T) {
	sels := SplitGroup(" a, .b > c ,:is(.x, .y), [data-v=\"1,2\"]")
	assert.Equal(t, []string{"a", ".b > c", ":is(.x, .y)", `[data-v="1,2"]`}, sels)
	assert.Empty(t, SplitGroup(" , "))
}

func TestParseDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap.style")
	defer teardown()
	//
	decls := ParseDeclarations("COLOR: red;margin:0   auto; --Main-Color: #fff; width: 1px !important")
	if len(decls) != 4 {
		t.Fatalf("expected 4 declarations, have %d: %v", len(decls), decls)
	}
	assert.Equal(t, Declaration{Property: "color", Value: "red"}, decls[0])
	assert.Equal(t, "margin: 0 auto;", decls[1].String())
	assert.Equal(t, "--Main-Color", decls[2].Property)
	assert.True(t, decls[3].Important)
	assert.Equal(t, "width: 1px !important;", decls[3].String())
}

func TestNormalizeDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap.style")
	defer teardown()
	//
	tt := []struct {
		name, input, output string
	}{
		{"single", "color: red;", "color: red;"},
		{"no trailing semicolon", "color:red", "color: red;"},
		{"multi-line", "\n  color: red;\n  padding: 4px 8px;\n", "color: red; padding: 4px 8px;"},
		{"empty", "   ", ""},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if out := NormalizeDeclarations(tc.input); out != tc.output {
				t.Errorf("expected %q, is %q", tc.output, out)
			}
		})
	}
}
