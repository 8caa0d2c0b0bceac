package pretty

import (
	"sort"
	"strings"

	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/cssnap/dom/adapt"
	"github.com/npillmayer/cssnap/dom/testtree"
)

// Plugins for tree shapes. DOMElement prints HTML and XML nodes,
// TestComponent prints test-renderer trees, DOMCollection prints slices of
// nodes.
var (
	DOMElement    Plugin = Element{}
	TestComponent Plugin = Element{Components: true}
	DOMCollection Plugin = Collection{}
)

const defaultIndent = 2

// Element prints tree nodes as indented markup:
//
//     <div
//       class="css-1x2y3z"
//     >
//       Hello
//     </div>
//
// Attributes are sorted by name, one per line. Text is trimmed and
// whitespace-only text nodes are left out.
type Element struct {
	IndentWidth int  // defaults to 2
	Components  bool // print test-renderer nodes instead of markup nodes
}

func (e Element) indent() string {
	if e.IndentWidth <= 0 {
		return strings.Repeat(" ", defaultIndent)
	}
	return strings.Repeat(" ", e.IndentWidth)
}

// Test is part of interface Plugin.
func (e Element) Test(v any) bool {
	n, ok := adapt.Node(v)
	if !ok {
		return false
	}
	_, isComponent := n.(*testtree.Node)
	return isComponent == e.Components
}

// Print is part of interface Plugin.
func (e Element) Print(v any, printer Printer) string {
	n, ok := adapt.Node(v)
	if !ok {
		return formatValue(v)
	}
	switch n.Kind() {
	case dom.Text:
		return strings.TrimSpace(n.Text())
	case dom.Comment:
		return "<!--" + n.Text() + "-->"
	case dom.Element:
		return e.printElement(n, printer)
	}
	return strings.Join(printChildren(n, printer), "\n")
}

func (e Element) printElement(n dom.TreeNode, printer Printer) string {
	indent := e.indent()
	var b strings.Builder
	b.WriteString("<" + n.Tag())
	attrs := n.Attributes()
	if len(attrs) > 0 {
		sorted := make([]dom.Attr, len(attrs))
		copy(sorted, attrs)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
		lines := make([]string, len(sorted))
		for i, a := range sorted {
			lines[i] = a.Key + "=" + attrValue(a.Value, printer)
		}
		b.WriteString("\n" + Indent(strings.Join(lines, "\n"), indent) + "\n")
	}
	children := printChildren(n, printer)
	if len(children) == 0 {
		if len(attrs) > 0 {
			b.WriteString("/>")
		} else {
			b.WriteString(" />")
		}
		return b.String()
	}
	b.WriteString(">\n")
	b.WriteString(Indent(strings.Join(children, "\n"), indent))
	b.WriteString("\n</" + n.Tag() + ">")
	return b.String()
}

func attrValue(v any, printer Printer) string {
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	if raw, ok := v.(testtree.RawJSON); ok {
		return "{" + string(raw) + "}"
	}
	return "{" + printer(v) + "}"
}

// printChildren renders all children of n which are not whitespace-only text.
func printChildren(n dom.TreeNode, printer Printer) []string {
	var out []string
	for _, ch := range n.Children() {
		if ch.Kind() == dom.Text && strings.TrimSpace(ch.Text()) == "" {
			continue
		}
		out = append(out, printer(ch))
	}
	return out
}

// Collection prints a slice of nodes:
//
//     NodeList [
//       <div />,
//       <span />,
//     ]
type Collection struct {
	IndentWidth int // defaults to 2
}

// Test is part of interface Plugin.
func (c Collection) Test(v any) bool {
	_, ok := adapt.Nodes(v)
	return ok
}

// Print is part of interface Plugin.
func (c Collection) Print(v any, printer Printer) string {
	nodes, _ := adapt.Nodes(v)
	if len(nodes) == 0 {
		return "NodeList []"
	}
	indent := Element{IndentWidth: c.IndentWidth}.indent()
	var b strings.Builder
	b.WriteString("NodeList [\n")
	for _, n := range nodes {
		b.WriteString(Indent(printer(n), indent) + ",\n")
	}
	b.WriteString("]")
	tracer().Debugf("printed collection of %d nodes", len(nodes))
	return b.String()
}
