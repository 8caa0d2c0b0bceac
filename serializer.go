package cssnap

import (
	"strings"

	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/cssnap/dom/adapt"
	"github.com/npillmayer/cssnap/dom/style/cssom"
	"github.com/npillmayer/cssnap/dom/style/selector"
	"github.com/npillmayer/cssnap/dom/testtree"
	"github.com/npillmayer/cssnap/pretty"
)

// Serializer substitutes generated class names in snapshots with their CSS.
// It implements pretty.Plugin.
type Serializer struct {
	source  func() cssom.StyleSheet
	matcher selector.Matcher
	probe   CompositeProbe
	indent  int
	marks   Marks
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithMatcher sets the predicate recognizing generated class tokens.
// The default matches tokens with prefix "css-".
func WithMatcher(m selector.Matcher) Option {
	return func(s *Serializer) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithProbe sets the strategy for finding composite selectors.
// The default is ProbeKeySpace.
func WithProbe(p CompositeProbe) Option {
	return func(s *Serializer) {
		if p != nil {
			s.probe = p
		}
	}
}

// WithIndent sets the indentation width of the tree-shape plugins the
// serializer uses for its own printing.
func WithIndent(n int) Option {
	return func(s *Serializer) {
		s.indent = n
	}
}

// New creates a serializer resolving styles against sheet.
func New(sheet cssom.StyleSheet, opts ...Option) *Serializer {
	return NewWithSource(func() cssom.StyleSheet { return sheet }, opts...)
}

// NewWithSource creates a serializer which asks source for the style sheet
// every time it resolves styles. This allows the registry of a CSS-in-JS
// engine to be replaced, e.g. in tests.
func NewWithSource(source func() cssom.StyleSheet, opts ...Option) *Serializer {
	s := &Serializer{
		source:  source,
		matcher: selector.Default(),
		probe:   ProbeKeySpace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default is a serializer bound to the global style sheet, cssom.Global.
var Default = NewWithSource(cssom.Global)

// Matcher returns the predicate recognizing generated class tokens.
func (s *Serializer) Matcher() selector.Matcher {
	return s.matcher
}

func (s *Serializer) sheet() cssom.StyleSheet {
	if s.source == nil {
		return nil
	}
	return s.source()
}

// Test is part of interface pretty.Plugin. It is true for
//
//   - strings of HTML markup referencing at least one generated class,
//   - test-renderer elements not currently being serialized,
//   - DOM elements which are not part of a tree currently being serialized.
//
// Test does not have side effects.
func (s *Serializer) Test(v any) bool {
	if str, ok := v.(string); ok {
		return s.isMarkupWithGeneratedClasses(str)
	}
	n, ok := adapt.Node(v)
	if !ok {
		return false
	}
	if tn, ok := n.(*testtree.Node); ok {
		return tn.HasMarker() && !s.marks.IsMarked(tn)
	}
	if n.Kind() != dom.Element {
		return false
	}
	return !s.marks.IsBeingSerialized(n)
}

// isMarkupWithGeneratedClasses checks strings. Plain text which happens to
// contain something tag-like ("Snapshot Diff: <b>") has to start with '<'
// to count as markup.
func (s *Serializer) isMarkupWithGeneratedClasses(str string) bool {
	return strings.HasPrefix(str, "<") &&
		dom.LooksLikeHTML(str) &&
		selector.ContainsToken(str, s.matcher)
}

// Print is part of interface pretty.Plugin.
//
// Strings are handled by FromHTMLString. For trees, Print collects the
// generated class tokens and resolves them, then calls printer for the
// default rendering and substitutes the tokens in its output. While printer
// runs, the nodes of v are marked as being serialized, so that Test refuses
// them when the printer offers them to the plugins again. The marks are
// removed before Print returns.
func (s *Serializer) Print(v any, printer pretty.Printer) string {
	if str, ok := v.(string); ok {
		return s.FromHTMLString(str)
	}
	root, ok := adapt.Node(v)
	if !ok {
		return printer(v)
	}
	nodes := GetNodes(root)
	s.marks.MarkNodes(nodes)
	selectors := GetSelectors(nodes, s.matcher)
	bundle := GetStylesAndAllSelectors(selectors, s.sheet(), s.probe)
	printed := func() string {
		defer s.marks.Release(nodes)
		return printer(v)
	}()
	tracer().P("nodes", len(nodes)).Debugf("printed value of type %T", v)
	if bundle.Empty() {
		return printed
	}
	return ReplaceSelectors(bundle.AllSelectors, bundle.Styles, printed)
}

var _ pretty.Plugin = &Serializer{}

// Plugins returns the serializer followed by the plugins for all supported
// tree shapes, ready to be used with pretty.Format.
func (s *Serializer) Plugins() []pretty.Plugin {
	return []pretty.Plugin{
		s,
		pretty.Element{IndentWidth: s.indent},
		pretty.Element{IndentWidth: s.indent, Components: true},
		pretty.Collection{IndentWidth: s.indent},
	}
}

// Snapshot renders v with the serializer and all tree-shape plugins.
func (s *Serializer) Snapshot(v any) string {
	return pretty.Format(v, pretty.Options{Plugins: s.Plugins()})
}
