package testtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cssnap/dom"
	"github.com/tidwall/gjson"
)

// ErrNotTestJSON is returned if a JSON value does not describe a test-renderer tree.
var ErrNotTestJSON = errors.New("not a test-renderer JSON tree")

// Parse decodes a test-renderer JSON tree. The input may be a single element
// object or an array of elements (resulting in a fragment node).
func Parse(data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("cannot parse test tree: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	switch {
	case root.IsArray():
		frag := NewFragment()
		var err error
		root.ForEach(func(_, value gjson.Result) bool {
			var ch *Node
			if ch, err = parseElement(value); err != nil {
				return false
			}
			frag.Append(ch)
			return true
		})
		if err != nil {
			return nil, err
		}
		return frag, nil
	case root.IsObject():
		return parseElement(root)
	}
	return nil, ErrNotTestJSON
}

func parseElement(obj gjson.Result) (*Node, error) {
	if !obj.IsObject() {
		return nil, fmt.Errorf("%w: expected object, got %s", ErrNotTestJSON, obj.Type)
	}
	var marker, typ string
	var props []dom.Attr
	var children gjson.Result
	obj.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "$$typeof":
			marker = value.String()
		case "type":
			typ = value.String()
		case "props":
			props = parseProps(value)
		case "children":
			children = value
		}
		return true
	})
	if marker != Marker {
		return nil, fmt.Errorf("%w: element %q has marker %q", ErrNotTestJSON, typ, marker)
	}
	n := New(typ, props...)
	if !children.IsArray() {
		return n, nil
	}
	var err error
	children.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			n.Append(value.String())
			return true
		}
		var ch *Node
		if ch, err = parseElement(value); err != nil {
			return false
		}
		n.Append(ch)
		return true
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func parseProps(obj gjson.Result) []dom.Attr {
	if !obj.IsObject() {
		return nil
	}
	var props []dom.Attr
	obj.ForEach(func(key, value gjson.Result) bool {
		props = append(props, dom.Attr{Key: key.String(), Value: propValue(value)})
		return true
	})
	return props
}

// propValue converts JSON values to strings, float64, bool or nil.
// Objects and arrays are kept as their raw JSON text.
func propValue(v gjson.Result) any {
	switch v.Type {
	case gjson.String:
		return v.String()
	case gjson.Number:
		return v.Float()
	case gjson.True, gjson.False:
		return v.Bool()
	case gjson.Null:
		return nil
	}
	return RawJSON(v.Raw)
}

// RawJSON is a prop value which is a JSON object or array.
type RawJSON string
