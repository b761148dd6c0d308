// SPDX-License-Identifier: MIT
package inject

import (
	"fmt"

	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/themes"
)

// ReadOptions select the variable prefix and the element to read from
type ReadOptions struct {
	Prefix   string
	Selector string // empty reads from the root element
}

// Read returns the current computed value of the variable for path.
// An unset variable reads as "" without error.
func Read(env dom.Environment, path string, opts ReadOptions) (string, error) {
	doc, err := dom.Acquire(env)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}

	var el dom.Element
	if opts.Selector != "" {
		el = doc.QuerySelector(opts.Selector)
		if el == nil {
			return "", fmt.Errorf("read %q: %w: selector %q matched nothing", path, dom.ErrLookup, opts.Selector)
		}
	} else {
		el = doc.Root()
		if el == nil {
			return "", fmt.Errorf("read %q: %w: document has no root element", path, dom.ErrEnvironment)
		}
	}

	name := themes.VarName(path, themes.WithPrefix(opts.Prefix), themes.WithRaw(true))
	return doc.ComputedStyle(el).GetPropertyValue(name), nil
}
