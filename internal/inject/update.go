// SPDX-License-Identifier: MIT
package inject

import (
	"fmt"

	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/themes"
)

// Update sets each variable of a partial theme as an inline property of the
// document's root element. Nothing is merged: only the given values are
// written, and the managed style block is left alone.
func Update(env dom.Environment, partial *themes.Theme, opts Options) error {
	opts = opts.withDefaults()

	doc, err := dom.Acquire(env)
	if err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("update theme: %w: document has no root element", dom.ErrEnvironment)
	}

	style := root.Style()
	for _, v := range themes.Flatten(partial, opts.Prefix) {
		style.SetProperty(v.Name, v.Value)
	}
	return nil
}
