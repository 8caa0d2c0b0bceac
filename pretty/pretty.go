/*
Package pretty renders values into indented, human-readable text for
snapshots.

Overview

Format asks each of a list of plugins, in order, whether it wants to print a
value. The first plugin whose Test returns true prints it. Plugins render
nested values by calling back into the printer they are handed, so every
nested value is offered to the plugins again:

   s := pretty.Format(node, pretty.Options{
       Plugins: []pretty.Plugin{mySerializer, pretty.DOMElement, pretty.DOMCollection},
   })

Values no plugin claims are printed with package fmt.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssnap.pretty'.
func tracer() tracing.Trace {
	return tracing.Select("cssnap.pretty")
}

// Printer renders a value to text, consulting the plugins it has been
// configured with.
type Printer func(v any) string

// Plugin is the contract for custom serialization of values.
//
// Test must be free of side effects. Print renders v; it may call printer
// for nested values. Output of printer starts at column 0; plugins indent it
// as needed.
type Plugin interface {
	Test(v any) bool
	Print(v any, printer Printer) string
}

// Options configure Format.
type Options struct {
	Plugins []Plugin
}

// Format renders v.
func Format(v any, opts Options) string {
	var printer Printer
	printer = func(v any) string {
		for _, p := range opts.Plugins {
			if p != nil && p.Test(v) {
				return p.Print(v, printer)
			}
		}
		return formatValue(v)
	}
	return printer(v)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}

// Indent prefixes every non-empty line of s with indent.
func Indent(s, indent string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}
