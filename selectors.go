package cssnap

import (
	"github.com/npillmayer/cssnap/dom"
	"github.com/npillmayer/cssnap/dom/style/selector"
)

// GetSelectors collects the class tokens of nodes accepted by matcher.
// Tokens are returned without duplicates, in order of first appearance.
// A nil matcher accepts class names with the default prefix "css-".
func GetSelectors(nodes []dom.TreeNode, matcher selector.Matcher) []string {
	if matcher == nil {
		matcher = selector.Default()
	}
	var selectors []string
	seen := make(map[string]bool)
	for _, n := range nodes {
		for _, tok := range dom.ClassTokens(n) {
			if seen[tok] || !matcher.Match(tok) {
				continue
			}
			seen[tok] = true
			selectors = append(selectors, tok)
		}
	}
	return selectors
}
