// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPrefix is shared by every component that names variables
const DefaultPrefix = "pte"

// ErrUnknownPath is returned when a dotted path does not reach a terminal of a theme
var ErrUnknownPath = errors.New("unknown theme path")

type nameOptions struct {
	prefix string
	raw    bool
}

// NameOption customises VarName
type NameOption func(*nameOptions)

// WithPrefix overrides DefaultPrefix. An empty prefix keeps the default.
func WithPrefix(prefix string) NameOption {
	return func(o *nameOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

// WithRaw returns the bare "--name" instead of "var(--name)" when raw is true
func WithRaw(raw bool) NameOption {
	return func(o *nameOptions) {
		o.raw = raw
	}
}

// VarName derives the CSS variable for a dotted theme path.
//
//	VarName("colors.backgroundPrimary")                     // var(--pte-colors-backgroundPrimary)
//	VarName("colors.backgroundPrimary", WithPrefix("foo"))  // var(--foo-colors-backgroundPrimary)
//	VarName("colors.backgroundPrimary", WithRaw(true))      // --pte-colors-backgroundPrimary
//
// The path is not checked against any theme; see ValidatePath.
func VarName(path string, opts ...NameOption) string {
	o := nameOptions{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}
	name := "--" + o.prefix + "-" + strings.ReplaceAll(path, ".", "-")
	if o.raw {
		return name
	}
	return Ref(name)
}

// Ref wraps a bare variable name in var()
func Ref(name string) string {
	return "var(" + name + ")"
}

// Unref strips a var() wrapper, returning the input unchanged when there is none
func Unref(expr string) string {
	if strings.HasPrefix(expr, "var(") && strings.HasSuffix(expr, ")") {
		return expr[len("var(") : len(expr)-1]
	}
	return expr
}

// Paths lists the dotted path of every terminal in traversal order
func Paths(t *Theme) []string {
	var paths []string
	collectPaths(t, "", &paths)
	return paths
}

func collectPaths(t *Theme, base string, out *[]string) {
	t.Each(func(key string, v Value) {
		path := key
		if base != "" {
			path = base + "." + key
		}
		if v.IsNested() {
			collectPaths(v.nested, path, out)
			return
		}
		*out = append(*out, path)
	})
}

// ValidatePath checks that path walks from the root of t to a terminal
func ValidatePath(t *Theme, path string) error {
	v, ok := t.Get(path)
	if !ok || v.IsNested() {
		return fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return nil
}

// ValidateSubset checks that every terminal of partial exists in t
func ValidateSubset(t, partial *Theme) error {
	for _, path := range Paths(partial) {
		if err := ValidatePath(t, path); err != nil {
			return err
		}
	}
	return nil
}
