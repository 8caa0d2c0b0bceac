package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients of the serializer will hand in the registry of their CSS-in-JS
// engine, either as a Sheet or by providing a concrete implementation of
// this interface.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet)                // append rules from another stylesheet
	Empty() bool                           // does this stylesheet contain any rules?
	Rules() []Rule                         // all the rules of a stylesheet
	Lookup(selector string) (string, bool) // CSS text of the rule for a selector
	Selectors() []string                   // selectors of all rules, in insertion order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string        // the selector of the rule
	CSSText() string         // the declaration block, without braces
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}
