package cssom

import (
	"sync"

	"github.com/npillmayer/cssnap/dom/style/selector"
)

// Sheet is an in-memory style sheet keyed by selector. Inserting a rule for a
// selector already present replaces its CSS text but keeps its position.
//
// A Sheet is safe for concurrent use.
type Sheet struct {
	mx    sync.RWMutex
	order []string
	rules map[string]string
}

// NewSheet creates an empty style sheet.
func NewSheet() *Sheet {
	return &Sheet{rules: make(map[string]string)}
}

// Insert adds a rule. cssText is the declaration block without braces.
func (s *Sheet) Insert(sel, cssText string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.rules == nil {
		s.rules = make(map[string]string)
	}
	if _, ok := s.rules[sel]; !ok {
		s.order = append(s.order, sel)
	}
	s.rules[sel] = cssText
	tracer().P("selector", sel).Debugf("inserted rule")
}

// Flush removes all rules.
func (s *Sheet) Flush() {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.order = nil
	s.rules = make(map[string]string)
}

// Len returns the number of rules.
func (s *Sheet) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.order)
}

// Empty is part of interface StyleSheet.
func (s *Sheet) Empty() bool {
	return s.Len() == 0
}

// Lookup is part of interface StyleSheet.
func (s *Sheet) Lookup(sel string) (string, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	css, ok := s.rules[sel]
	return css, ok
}

// Selectors is part of interface StyleSheet.
func (s *Sheet) Selectors() []string {
	s.mx.RLock()
	defer s.mx.RUnlock()
	sels := make([]string, len(s.order))
	copy(sels, s.order)
	return sels
}

// Rules is part of interface StyleSheet.
func (s *Sheet) Rules() []Rule {
	s.mx.RLock()
	defer s.mx.RUnlock()
	rules := make([]Rule, len(s.order))
	for i, sel := range s.order {
		rules[i] = textRule{sel: sel, css: s.rules[sel]}
	}
	return rules
}

// AppendRules appends rules from another stylesheet. Rules of other win
// over rules with the same selector.
func (s *Sheet) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	for _, r := range other.Rules() {
		s.Insert(r.Selector(), r.CSSText())
	}
}

var _ StyleSheet = &Sheet{}

// --- Global registry -------------------------------------------------------

var global = NewSheet()

// Global returns the process-wide style sheet. CSS-in-JS engines insert the
// rules of the classes they generate here.
func Global() StyleSheet {
	return global
}

// InsertGlobal adds a rule to the global style sheet.
func InsertGlobal(sel, cssText string) {
	global.Insert(sel, cssText)
}

// FlushGlobal removes all rules from the global style sheet.
func FlushGlobal() {
	global.Flush()
}

// --- Rules -----------------------------------------------------------------

// textRule is a rule kept as a selector and raw declaration text.
type textRule struct {
	sel string
	css string
}

// NewRule creates a rule from a selector and a declaration block.
func NewRule(sel, cssText string) Rule {
	return textRule{sel: sel, css: cssText}
}

func (r textRule) Selector() string { return r.sel }
func (r textRule) CSSText() string  { return r.css }

func (r textRule) Properties() []string {
	decls := selector.ParseDeclarations(r.css)
	props := make([]string, 0, len(decls))
	for _, d := range decls {
		props = append(props, d.Property)
	}
	return props
}

func (r textRule) Value(key string) string {
	for _, d := range selector.ParseDeclarations(r.css) {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

func (r textRule) IsImportant(key string) bool {
	for _, d := range selector.ParseDeclarations(r.css) {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ Rule = textRule{}
