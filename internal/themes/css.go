// SPDX-License-Identifier: MIT
package themes

import "strings"

// DefaultSelector is the rule selector used when none is given
const DefaultSelector = ":root"

// Declarations joins variables into "name: value;" declarations separated by a space
func Declarations(vars []Var) string {
	decls := make([]string, len(vars))
	for i, v := range vars {
		decls[i] = v.Declaration()
	}
	return strings.Join(decls, " ")
}

// Rule wraps declarations in a single rule block
func Rule(selector, declarations string) string {
	if selector == "" {
		selector = DefaultSelector
	}
	if declarations == "" {
		return selector + " { }"
	}
	return selector + " { " + declarations + " }"
}

// GenerateCSS flattens a theme into one rule block, e.g.
// ":root { --pte-colors-primary: #000000; }"
func GenerateCSS(t *Theme, selector, prefix string) string {
	return Rule(selector, Declarations(Flatten(t, prefix)))
}
