package selector

import (
	"regexp"
	"strings"
)

// Matcher decides whether a class token has been issued by a CSS-in-JS engine.
//
// Engines differ in their naming schemes ("css-1x2y3z", "emotion-0", "sc-bdVaJa"),
// so the serializer is configured with a Matcher instead of a fixed convention.
type Matcher interface {
	Match(token string) bool
}

// MatcherFunc adapts an ordinary function to interface Matcher.
type MatcherFunc func(token string) bool

// Match is part of interface Matcher.
func (f MatcherFunc) Match(token string) bool {
	return f(token)
}

// DefaultPrefix is the class name prefix of the default matcher.
const DefaultPrefix = "css-"

// PrefixMatcher matches tokens starting with a given prefix. The prefix
// alone is not a generated token.
type PrefixMatcher string

// Match is part of interface Matcher.
func (p PrefixMatcher) Match(token string) bool {
	return len(token) > len(p) && strings.HasPrefix(token, string(p))
}

// PatternMatcher matches tokens against a regular expression. The expression
// has to match the complete token.
type PatternMatcher struct {
	re *regexp.Regexp
}

// Pattern creates a PatternMatcher. Anchors are added to the expression.
func Pattern(expr string) (PatternMatcher, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return PatternMatcher{}, err
	}
	return PatternMatcher{re: re}, nil
}

// Match is part of interface Matcher.
func (p PatternMatcher) Match(token string) bool {
	return p.re != nil && p.re.MatchString(token)
}

// Default returns the matcher for class names with prefix "css-".
func Default() Matcher {
	return PrefixMatcher(DefaultPrefix)
}

// ContainsToken reports whether text contains at least one token accepted
// by m. Tokens are maximal runs of token bytes (see IsTokenByte).
func ContainsToken(text string, m Matcher) bool {
	if m == nil {
		return false
	}
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && IsTokenByte(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if m.Match(text[start:i]) {
				return true
			}
			start = -1
		}
	}
	return false
}

// IsTokenByte is true for bytes which may be part of a class token:
// ASCII letters and digits, '-', '_', and all bytes of multi-byte UTF-8
// sequences.
func IsTokenByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '_' || c >= 0x80
}
