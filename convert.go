package cssnap

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/beevik/etree"
	"github.com/npillmayer/cssnap/dom/htmlnode"
	"github.com/npillmayer/cssnap/dom/xmlnode"
	"github.com/npillmayer/cssnap/pretty"
	"golang.org/x/net/html"
)

// Extractor selects the node to print from the detached container built by
// FromDOMNode.
type Extractor func(root *html.Node) *html.Node

// FirstChild extracts the first element child of root.
func FirstChild(root *html.Node) *html.Node {
	return htmlnode.FirstElementChild(root)
}

// Compose chains extractors from left to right. Extraction stops as soon as
// an extractor yields nil.
func Compose(extractors ...Extractor) Extractor {
	return func(root *html.Node) *html.Node {
		n := root
		for _, ex := range extractors {
			if n == nil {
				return nil
			}
			n = ex(n)
		}
		return n
	}
}

// Select creates an extractor which returns the first descendant of the
// container matching a CSS selector.
func Select(sel string) (Extractor, error) {
	compiled, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", sel, err)
	}
	return func(root *html.Node) *html.Node {
		if root == nil {
			return nil
		}
		for ch := root.FirstChild; ch != nil; ch = ch.NextSibling {
			if m := compiled.MatchFirst(ch); m != nil {
				return m
			}
		}
		return nil
	}, nil
}

// FromDOMNode renders a DOM node with its generated classes substituted.
//
// The node is copied into a fresh, detached <div> container through its
// markup; n itself is never touched. extract selects the node to print from
// the container and defaults to FirstChild, i.e. the copy of n.
// If extract yields nil, the result is empty.
//
// Rendering or re-parsing a broken tree panics, failing the calling test.
func (s *Serializer) FromDOMNode(n *html.Node, extract ...Extractor) string {
	if n == nil {
		return ""
	}
	ex := Extractor(FirstChild)
	if len(extract) > 0 && extract[0] != nil {
		ex = extract[0]
	}
	markup, err := htmlnode.OuterHTML(n)
	if err != nil {
		panic(err)
	}
	root := htmlnode.NewContainer()
	if err := htmlnode.SetInnerHTML(root, markup); err != nil {
		panic(err)
	}
	nodes := GetNodes(htmlnode.Wrap(root))
	bundle := GetStylesAndAllSelectors(GetSelectors(nodes, s.matcher), s.sheet(), s.probe)
	target := ex(root)
	if target == nil {
		tracer().Debugf("extractor did not select a node")
		return ""
	}
	printed := pretty.Format(target, pretty.Options{Plugins: []pretty.Plugin{
		pretty.Element{IndentWidth: s.indent},
		pretty.Collection{IndentWidth: s.indent},
	}})
	return ReplaceSelectors(bundle.AllSelectors, bundle.Styles, printed)
}

// FromHTMLString renders the first element of a string of markup with its
// generated classes substituted.
//
// The markup is parsed into a detached container, which FromDOMNode copies
// once more into a container of its own; the element is therefore found two
// levels down.
func (s *Serializer) FromHTMLString(markup string) string {
	div := htmlnode.NewContainer()
	if err := htmlnode.SetInnerHTML(div, markup); err != nil {
		panic(err)
	}
	return s.FromDOMNode(div, Compose(FirstChild, FirstChild))
}

// FromXMLElement renders an etree element with its generated classes
// substituted. The element is copied first; el itself is never touched.
func (s *Serializer) FromXMLElement(el *etree.Element) string {
	if el == nil {
		return ""
	}
	cp := xmlnode.Detach(el)
	nodes := GetNodes(xmlnode.Wrap(cp))
	bundle := GetStylesAndAllSelectors(GetSelectors(nodes, s.matcher), s.sheet(), s.probe)
	printed := pretty.Format(cp, pretty.Options{Plugins: []pretty.Plugin{
		pretty.Element{IndentWidth: s.indent},
	}})
	return ReplaceSelectors(bundle.AllSelectors, bundle.Styles, printed)
}

// FromHTMLString renders markup using the Default serializer.
func FromHTMLString(markup string) string {
	return Default.FromHTMLString(markup)
}

// FromDOMNode renders a DOM node using the Default serializer.
func FromDOMNode(n *html.Node, extract ...Extractor) string {
	return Default.FromDOMNode(n, extract...)
}
