package cssnap

import (
	"sort"
	"strings"

	"github.com/npillmayer/cssnap/dom/style/cssom"
	"github.com/npillmayer/cssnap/dom/style/selector"
)

// Bundle is the result of resolving a set of class tokens against a style
// sheet.
//
// Styles maps every resolved selector to its CSS text. AllSelectors lists
// every selector considered, resolved or not, from the most specific to the
// least specific one: composite selectors first, then bare class tokens.
// Substitution relies on this order.
type Bundle struct {
	Styles       map[string]string
	AllSelectors []string
}

// Empty is true if no selector has been resolved.
func (b Bundle) Empty() bool {
	return len(b.Styles) == 0
}

// CompositeProbe finds the composite selectors of a style sheet which apply
// to a set of class tokens, e.g. ".css-a:hover" or ".css-a > .css-b".
// How a registry encodes combined selectors depends on the CSS-in-JS engine,
// therefore the strategy is pluggable.
type CompositeProbe func(tokens []string, sheet cssom.StyleSheet) []string

// ProbeKeySpace scans all selectors of the style sheet. A selector is a
// composite for tokens if it is not a plain class selector, references at
// least one class, and every class it references is one of tokens.
func ProbeKeySpace(tokens []string, sheet cssom.StyleSheet) []string {
	if len(tokens) == 0 || sheet == nil {
		return nil
	}
	known := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		known[t] = true
	}
	var composites []string
	for _, sel := range sheet.Selectors() {
		if _, bare := selector.IsBareClass(sel); bare {
			continue
		}
		names := selector.ClassNames(sel)
		if len(names) == 0 {
			continue
		}
		all := true
		for _, name := range names {
			if !known[name] {
				all = false
				break
			}
		}
		if all {
			composites = append(composites, sel)
		}
	}
	return composites
}

// combinators are the ways ProbePairs joins two class selectors.
var combinators = []string{"", " ", " > ", " + ", " ~ "}

// ProbePairs asks the style sheet for rules combining any two of the tokens:
// ".a.b", ".a .b", ".a > .b", ".a + .b" and ".a ~ .b". It is meant for
// registries which cannot enumerate their selectors cheaply.
func ProbePairs(tokens []string, sheet cssom.StyleSheet) []string {
	if sheet == nil {
		return nil
	}
	var composites []string
	for _, a := range tokens {
		for _, b := range tokens {
			if a == b {
				continue
			}
			for _, comb := range combinators {
				sel := "." + a + comb + "." + b
				if _, ok := sheet.Lookup(sel); ok {
					composites = append(composites, sel)
				}
			}
		}
	}
	return composites
}

// GetStylesAndAllSelectors resolves class tokens against a style sheet.
//
// A token t is looked up as ".t" and, failing that, as "t". Composite
// selectors are found with probe; a nil probe means ProbeKeySpace.
// Selectors without CSS text are not part of the bundle's styles.
func GetStylesAndAllSelectors(tokens []string, sheet cssom.StyleSheet, probe CompositeProbe) Bundle {
	bundle := Bundle{Styles: make(map[string]string)}
	if sheet == nil || sheet.Empty() || len(tokens) == 0 {
		bundle.AllSelectors = orderTokens(tokens)
		return bundle
	}
	if probe == nil {
		probe = ProbeKeySpace
	}
	for _, t := range tokens {
		if css, ok := lookupToken(sheet, t); ok {
			bundle.Styles[t] = css
		}
	}
	composites := dedupe(probe(tokens, sheet))
	for _, sel := range composites {
		if css, ok := sheet.Lookup(sel); ok && strings.TrimSpace(css) != "" {
			bundle.Styles[sel] = css
		}
	}
	bundle.AllSelectors = append(orderComposites(composites), orderTokens(tokens)...)
	tracer().Debugf("resolved %d of %d selectors", len(bundle.Styles), len(bundle.AllSelectors))
	return bundle
}

func lookupToken(sheet cssom.StyleSheet, token string) (string, bool) {
	for _, key := range []string{"." + token, token} {
		if css, ok := sheet.Lookup(key); ok && strings.TrimSpace(css) != "" {
			return css, true
		}
	}
	return "", false
}

// orderComposites sorts composite selectors by the number of classes they
// reference, then by length, both descending. Ties keep their order.
func orderComposites(sels []string) []string {
	type ranked struct {
		sel     string
		classes int
	}
	rs := make([]ranked, len(sels))
	for i, sel := range sels {
		rs[i] = ranked{sel: sel, classes: len(selector.ClassNames(sel))}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].classes != rs[j].classes {
			return rs[i].classes > rs[j].classes
		}
		return len(rs[i].sel) > len(rs[j].sel)
	})
	ordered := make([]string, len(rs))
	for i, r := range rs {
		ordered[i] = r.sel
	}
	return ordered
}

// orderTokens sorts bare tokens by length, longest first. Ties keep their
// order.
func orderTokens(tokens []string) []string {
	ordered := make([]string, len(tokens))
	copy(ordered, tokens)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	return ordered
}

func dedupe(sels []string) []string {
	seen := make(map[string]bool, len(sels))
	out := sels[:0:0]
	for _, s := range sels {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
