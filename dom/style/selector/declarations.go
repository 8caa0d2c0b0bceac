package selector

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a single "property: value" pair of a declaration block.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return d.Property + ": " + d.Value + " !important;"
	}
	return d.Property + ": " + d.Value + ";"
}

// ParseDeclarations parses the content of a declaration block (without
// braces), e.g. "color: red; margin:0 auto". Malformed declarations are
// skipped.
func ParseDeclarations(block string) []Declaration {
	p := css.NewParser(parse.NewInputString(block), true)
	var decls []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() != nil {
				return decls
			}
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value, important := joinValues(p.Values())
			prop := string(data)
			if gt == css.DeclarationGrammar {
				prop = strings.ToLower(prop)
			}
			decls = append(decls, Declaration{
				Property:  prop,
				Value:     value,
				Important: important,
			})
		}
	}
}

// joinValues builds the raw value string of a declaration, collapsing
// whitespace and splitting off a trailing "!important".
func joinValues(tokens []css.Token) (string, bool) {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.Write(t.Data)
	}
	value := strings.TrimSpace(b.String())
	lower := strings.ToLower(value)
	if i := strings.LastIndex(lower, "!"); i >= 0 && strings.TrimSpace(lower[i+1:]) == "important" {
		return strings.TrimSpace(value[:i]), true
	}
	return value, false
}

// NormalizeDeclarations renders a declaration block on a single line, every
// declaration as "property: value;", separated by one space. If the block
// does not contain any parseable declaration, whitespace is collapsed and the
// text is returned otherwise unchanged.
func NormalizeDeclarations(block string) string {
	decls := ParseDeclarations(block)
	if len(decls) == 0 {
		return strings.Join(strings.Fields(block), " ")
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	tracer().Debugf("normalized %d declarations", len(decls))
	return strings.Join(parts, " ")
}
