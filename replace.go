package cssnap

import (
	"strings"

	"github.com/npillmayer/cssnap/dom/style/selector"
)

// ReplaceSelectors substitutes every whole-token occurrence of a resolved
// selector in text with the selector followed by its CSS:
//
//     class="css-1x2y3z"   →   class="css-1x2y3z { color: red; }"
//
// Selectors are tried in the order of allSelectors, so a selector has to
// precede every selector it contains. Text is scanned once, from left to
// right; inserted CSS is never scanned again. An occurrence only counts if it
// is not part of a longer token: "css-a" does not match inside "css-a-b".
//
// Resolved composite selectors which do not occur in text (rules like
// ".css-a:hover") are appended after an empty line, one per line, provided
// every class they name occurs in text as a token. Bare class tokens are never
// appended: a token missing from text belongs to nodes which have not been
// printed. If styles is empty, text is returned unchanged.
func ReplaceSelectors(allSelectors []string, styles map[string]string, text string) string {
	if len(styles) == 0 {
		return text
	}
	var resolved []string
	byFirst := make(map[byte][]string)
	for _, sel := range allSelectors {
		if _, ok := styles[sel]; !ok || sel == "" {
			continue
		}
		resolved = append(resolved, sel)
		byFirst[sel[0]] = append(byFirst[sel[0]], sel)
	}
	used := make(map[string]bool, len(resolved))
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if sel := matchAt(text, i, byFirst[text[i]]); sel != "" {
			b.WriteString(render(sel, styles[sel]))
			used[sel] = true
			i += len(sel)
			continue
		}
		b.WriteByte(text[i])
		i++
	}
	var rest []string
	for _, sel := range resolved {
		if used[sel] {
			continue
		}
		if _, bare := selector.IsBareClass(sel); !bare && namesOccur(text, sel) {
			rest = append(rest, render(sel, styles[sel]))
		}
	}
	if len(rest) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(rest, "\n"))
	}
	tracer().Debugf("substituted %d selectors, appended %d", len(used), len(rest))
	return b.String()
}

// matchAt returns the first of candidates occurring as a whole token at
// position i of text, or "".
func matchAt(text string, i int, candidates []string) string {
	for _, sel := range candidates {
		if !strings.HasPrefix(text[i:], sel) {
			continue
		}
		if selector.IsTokenByte(sel[0]) && i > 0 && selector.IsTokenByte(text[i-1]) {
			continue
		}
		end := i + len(sel)
		if selector.IsTokenByte(sel[len(sel)-1]) && end < len(text) && selector.IsTokenByte(text[end]) {
			continue
		}
		return sel
	}
	return ""
}

// namesOccur is true if every class named by composite sel occurs in text as a
// whole token.
func namesOccur(text, sel string) bool {
	for _, name := range selector.ClassNames(sel) {
		found := false
		for i := strings.Index(text, name); i >= 0; {
			if matchAt(text, i, []string{name}) != "" {
				found = true
				break
			}
			next := strings.Index(text[i+1:], name)
			if next < 0 {
				break
			}
			i += 1 + next
		}
		if !found {
			return false
		}
	}
	return true
}

func render(sel, css string) string {
	return sel + " { " + selector.NormalizeDeclarations(css) + " }"
}
