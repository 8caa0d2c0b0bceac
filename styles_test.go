package cssnap

import (
	"testing"

	"github.com/npillmayer/cssnap/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func sheetOf(rules ...string) *cssom.Sheet {
	sheet := cssom.NewSheet()
	for i := 0; i+1 < len(rules); i += 2 {
		sheet.Insert(rules[i], rules[i+1])
	}
	return sheet
}

func TestResolveBareTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap")
	defer teardown()
	//
	sheet := sheetOf(
		".css-a", "color: red;",
		"css-b", "color: blue;", // registries may key by the bare token
		".css-c", "   ",
	)
	bundle := GetStylesAndAllSelectors([]string{"css-a", "css-b", "css-c", "css-dd"}, sheet, nil)
	assert.Equal(t, map[string]string{"css-a": "color: red;", "css-b": "color: blue;"}, bundle.Styles)
	assert.Equal(t, []string{"css-dd", "css-a", "css-b", "css-c"}, bundle.AllSelectors)
	assert.False(t, bundle.Empty())
}

func TestResolveWithEmptySheet(t *testing.T) {
	bundle := GetStylesAndAllSelectors([]string{"css-a"}, cssom.NewSheet(), nil)
	assert.True(t, bundle.Empty())
	assert.Equal(t, []string{"css-a"}, bundle.AllSelectors)
	bundle = GetStylesAndAllSelectors([]string{"css-a"}, nil, nil)
	assert.True(t, bundle.Empty())
}

func TestProbeKeySpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap")
	defer teardown()
	//
	sheet := sheetOf(
		".css-a", "color: red;",
		".css-a:hover", "color: blue;",
		".css-a > .css-b", "margin: 0;",
		".css-a .css-other", "margin: 1px;",
		"div", "display: block;",
		"@media (min-width: 420px) .css-b", "color: green;",
	)
	composites := ProbeKeySpace([]string{"css-a", "css-b"}, sheet)
	assert.Equal(t, []string{".css-a:hover", ".css-a > .css-b", "@media (min-width: 420px) .css-b"}, composites)
	bundle := GetStylesAndAllSelectors([]string{"css-a", "css-b"}, sheet, ProbeKeySpace)
	assert.Equal(t, []string{
		".css-a > .css-b",
		"@media (min-width: 420px) .css-b",
		".css-a:hover",
		"css-a",
		"css-b",
	}, bundle.AllSelectors)
	assert.Len(t, bundle.Styles, 4)
}

func TestProbePairs(t *testing.T) {
	sheet := sheetOf(
		".css-a > .css-b", "margin: 0;",
		".css-b.css-a", "padding: 0;",
		".css-a:hover", "color: blue;",
	)
	composites := ProbePairs([]string{"css-a", "css-b"}, sheet)
	assert.Equal(t, []string{".css-a > .css-b", ".css-b.css-a"}, composites)
	assert.Nil(t, ProbePairs([]string{"css-a"}, nil))
}

func TestOrderComposites(t *testing.T) {
	ordered := orderComposites([]string{".a:hover", ".a.b", ".a .b > .c", ".b:focus-visible"})
	assert.Equal(t, []string{".a .b > .c", ".a.b", ".b:focus-visible", ".a:hover"}, ordered)
}
