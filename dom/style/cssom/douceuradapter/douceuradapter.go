/*
Package douceuradapter builds cssom style sheets from CSS text.

Parsing is done by github.com/aymerick/douceur. Every selector of a selector
list becomes a rule of its own. Rules nested in at-rules (@media, @supports,
@keyframes) are keyed by the at-rule and its prelude followed by the
selector, e.g. "@media (min-width: 420px) .css-1x2y3z".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cssnap/dom/style/cssom"
	"github.com/npillmayer/cssnap/dom/style/selector"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cssnap.style'.
func tracer() tracing.Trace {
	return tracing.Select("cssnap.style")
}

// Parse parses CSS text into a style sheet.
func Parse(cssText string) (*cssom.Sheet, error) {
	stylesheet, err := parser.Parse(cssText)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style sheet: %w", err)
	}
	return Wrap(stylesheet), nil
}

// Wrap converts a douceur.css.Stylesheet into a cssom.Sheet.
func Wrap(stylesheet *css.Stylesheet) *cssom.Sheet {
	sheet := cssom.NewSheet()
	if stylesheet == nil {
		return sheet
	}
	for _, r := range stylesheet.Rules {
		insertRule(sheet, r, "")
	}
	tracer().Debugf("wrapped style sheet with %d rules", sheet.Len())
	return sheet
}

func insertRule(sheet *cssom.Sheet, r *css.Rule, scope string) {
	if r.Kind == css.AtRule {
		atScope := strings.TrimSpace(r.Name + " " + r.Prelude)
		if scope != "" {
			atScope = scope + " " + atScope
		}
		if len(r.Declarations) > 0 { // e.g. @font-face
			sheet.Insert(atScope, declarationText(r.Declarations))
		}
		for _, nested := range r.Rules {
			insertRule(sheet, nested, atScope)
		}
		return
	}
	sels := r.Selectors
	if len(sels) == 0 {
		sels = selector.SplitGroup(r.Prelude)
	}
	block := declarationText(r.Declarations)
	for _, sel := range sels {
		if scope != "" {
			sel = scope + " " + sel
		}
		sheet.Insert(sel, block)
	}
}

func declarationText(decls []*css.Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, selector.Declaration{
			Property:  d.Property,
			Value:     d.Value,
			Important: d.Important,
		}.String())
	}
	return strings.Join(parts, " ")
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) ([]*cssom.Sheet, error) {
	var sheets []*cssom.Sheet
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		css, err := extractStyles(findElement(a, htmldoc))
		if err != nil {
			return sheets, err
		}
		sheets = append(sheets, css...)
	}
	return sheets, nil
}

func extractStyles(h *html.Node) ([]*cssom.Sheet, error) {
	if h == nil {
		return nil, nil
	}
	var sheets []*cssom.Sheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := Parse(ch.FirstChild.Data)
		if err != nil {
			return sheets, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
