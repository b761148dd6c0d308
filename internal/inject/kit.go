// SPDX-License-Identifier: MIT
package inject

import (
	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/themes"
)

// Kit binds a theme to its naming options. Paths handed to a Kit are
// checked against the bound theme, so a typo fails instead of producing a
// dangling variable.
type Kit struct {
	theme *themes.Theme
	opts  Options
}

// NewKit binds theme and opts. A nil theme binds the default theme.
func NewKit(theme *themes.Theme, opts Options) *Kit {
	if theme == nil {
		theme = themes.DefaultTheme()
	}
	return &Kit{theme: theme, opts: opts.withDefaults()}
}

// Theme returns the bound theme
func (k *Kit) Theme() *themes.Theme { return k.theme }

// Options returns the resolved options
func (k *Kit) Options() Options { return k.opts }

// Var returns "var(--prefix-path)" for a valid path
func (k *Kit) Var(path string) (string, error) {
	if err := themes.ValidatePath(k.theme, path); err != nil {
		return "", err
	}
	return themes.VarName(path, themes.WithPrefix(k.opts.Prefix)), nil
}

// Name returns the bare "--prefix-path" for a valid path
func (k *Kit) Name(path string) (string, error) {
	if err := themes.ValidatePath(k.theme, path); err != nil {
		return "", err
	}
	return themes.VarName(path, themes.WithPrefix(k.opts.Prefix), themes.WithRaw(true)), nil
}

// Get reads the live value of a valid path; selector may be empty
func (k *Kit) Get(env dom.Environment, path, selector string) (string, error) {
	if err := themes.ValidatePath(k.theme, path); err != nil {
		return "", err
	}
	return Read(env, path, ReadOptions{Prefix: k.opts.Prefix, Selector: selector})
}

// Update applies a partial theme whose paths all exist in the bound theme
func (k *Kit) Update(env dom.Environment, partial *themes.Theme) error {
	if err := themes.ValidateSubset(k.theme, partial); err != nil {
		return err
	}
	return Update(env, partial, k.opts)
}

// Inject writes the bound theme as the managed style block
func (k *Kit) Inject(env dom.Environment) error {
	return Inject(env, k.theme, k.opts)
}

// Script returns the bootstrap script for the bound theme
func (k *Kit) Script() string {
	return GenerateScript(k.theme, k.opts)
}

// CSS returns the rule text for the bound theme
func (k *Kit) CSS() string {
	return CSS(k.theme, k.opts)
}
