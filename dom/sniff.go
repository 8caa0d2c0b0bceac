package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// LooksLikeHTML is a heuristic predicate telling if a string contains HTML
// markup. It looks for an opening or closing tag whose name is a known HTML
// element (as listed by package atom), for a doctype declaration or for a
// comment. A tag has to be closed by '>' somewhere after its name; "<div" at
// the end of the input is not markup.
//
// It does not validate anything. Text like "a <b> c" does look like HTML.
func LooksLikeHTML(s string) bool {
	for i := strings.IndexByte(s, '<'); i >= 0 && i < len(s); {
		rest := s[i+1:]
		if hasPrefixFold(rest, "!doctype") || strings.HasPrefix(rest, "!--") {
			return true
		}
		rest = strings.TrimPrefix(rest, "/")
		name := tagName(rest)
		if name != "" && atom.Lookup([]byte(strings.ToLower(name))) != 0 {
			after := rest[len(name):]
			if after != "" && terminatesTag(after[0]) && strings.IndexByte(after, '>') >= 0 {
				tracer().Debugf("markup detected: <%s>", name)
				return true
			}
		}
		next := strings.IndexByte(rest, '<')
		if next < 0 {
			break
		}
		i = len(s) - len(rest) + next
	}
	return false
}

func tagName(s string) string {
	n := 0
	for n < len(s) {
		c := s[n]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || (n > 0 && ('0' <= c && c <= '9' || c == '-')) {
			n++
			continue
		}
		break
	}
	return s[:n]
}

func terminatesTag(c byte) bool {
	return c == '>' || c == '/' || c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
