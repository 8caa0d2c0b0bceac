package selector

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ClassNames returns the class names referenced by a selector, in order of
// appearance and without duplicates. For
//
//     .css-a:hover > .css-b.css-a
//
// the result is [css-a css-b].
func ClassNames(sel string) []string {
	l := css.NewLexer(parse.NewInputString(sel))
	var names []string
	seen := make(map[string]bool)
	afterDot := false
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break
		}
		if afterDot && tt == css.IdentToken {
			name := string(data)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		afterDot = tt == css.DelimToken && len(data) == 1 && data[0] == '.'
	}
	return names
}

// IsBareClass is true if sel is nothing but a single class selector, either
// written with a leading dot (".css-a") or as the bare token itself.
func IsBareClass(sel string) (string, bool) {
	tok := strings.TrimPrefix(sel, ".")
	if tok == "" {
		return "", false
	}
	for i := 0; i < len(tok); i++ {
		if !IsTokenByte(tok[i]) {
			return "", false
		}
	}
	return tok, true
}

// SplitGroup splits a selector list ("a, .b > c") into its selectors.
// Commas nested in parentheses or brackets (":is(.a, .b)") do not split.
func SplitGroup(prelude string) []string {
	var sels []string
	depth, start := 0, 0
	for i := 0; i < len(prelude); i++ {
		switch prelude[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				if s := strings.TrimSpace(prelude[start:i]); s != "" {
					sels = append(sels, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(prelude[start:]); s != "" {
		sels = append(sels, s)
	}
	return sels
}
