package testtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const myjson = `{
  "$$typeof": "react.test.json",
  "type": "div",
  "props": { "className": "css-a css-b", "tabIndex": 2, "hidden": false, "style": {"color": "red"}, "x": null },
  "children": [
    "Hello",
    { "$$typeof": "react.test.json", "type": "span", "props": {}, "children": null }
  ]
}`

func TestParseElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap.dom")
	defer teardown()
	//
	n, err := Parse([]byte(myjson))
	require.NoError(t, err)
	assert.True(t, n.HasMarker())
	assert.Equal(t, "div", n.Type())
	assert.Equal(t, []string{"css-a", "css-b"}, dom.ClassTokens(n))
	v, ok := n.Prop("tabIndex")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)
	v, _ = n.Prop("hidden")
	assert.Equal(t, false, v)
	v, _ = n.Prop("style")
	assert.Equal(t, RawJSON(`{"color": "red"}`), v)
	v, ok = n.Prop("x")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Len(t, n.Attributes(), 5)
	children := n.Children()
	require.Len(t, children, 2)
	assert.Equal(t, dom.Text, children[0].Kind())
	assert.Equal(t, "Hello", children[0].Text())
	assert.Equal(t, "span", children[1].Tag())
	assert.Same(t, n, children[1].Parent())
	assert.Nil(t, n.Parent())
}

func TestParseFragment(t *testing.T) {
	n, err := Parse([]byte(`[{"$$typeof":"react.test.json","type":"a"},{"$$typeof":"react.test.json","type":"b"}]`))
	require.NoError(t, err)
	assert.Equal(t, dom.Fragment, n.Kind())
	assert.False(t, n.HasMarker())
	assert.Len(t, dom.ElementChildren(n), 2)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{"type": "div"`))
	assert.Error(t, err)
	_, err = Parse([]byte(`{"type": "div"}`))
	assert.True(t, errors.Is(err, ErrNotTestJSON), "expected marker to be required, error is %v", err)
	_, err = Parse([]byte(`[{"$$typeof":"react.test.json","type":"a"}, 42]`))
	assert.True(t, errors.Is(err, ErrNotTestJSON))
	_, err = Parse([]byte(`"text"`))
	assert.Equal(t, ErrNotTestJSON, err)
}

func TestBuildTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssnap.dom")
	defer teardown()
	//
	span := New("span")
	div := New("div", dom.Attr{Key: "class", Value: "css-x"}).Append("text", span, 42)
	cls, ok := div.ClassAttribute()
	assert.True(t, ok)
	assert.Equal(t, "css-x", cls)
	assert.Len(t, div.Children(), 2, "non-node children are ignored")
	assert.Same(t, div, span.Parent())
	// re-appending moves the child
	other := New("p").Append(span)
	assert.Len(t, div.Children(), 1)
	assert.Same(t, other, span.Parent())
	var nilNode *Node
	assert.Nil(t, nilNode.Identity())
	assert.True(t, dom.IsNil(nilNode))
}
