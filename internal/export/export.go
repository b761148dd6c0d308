// SPDX-License-Identifier: MIT

// Package export writes flattened themes to static CSS files at build time.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/thatcatcamp/pte/internal/themes"
)

// DefaultOutput is where the CLI writes when no output is given
const DefaultOutput = "./public/pte.css"

// ErrIO is returned when the destination cannot be written
var ErrIO = errors.New("failed to write CSS file")

// Options select the rule selector and variable prefix
type Options struct {
	Selector string // default ":root"
	Prefix   string // default "pte"
}

// Render returns the file content: the same rule the injector writes, plus a trailing newline
func Render(theme *themes.Theme, opts Options) []byte {
	return []byte(themes.GenerateCSS(theme, opts.Selector, opts.Prefix) + "\n")
}

// ToFile writes the theme as a static stylesheet at output. The parent
// directory must already exist; failures are returned, never retried.
func ToFile(ctx context.Context, fs afero.Fs, theme *themes.Theme, output string, opts Options) error {
	if output == "" {
		output = DefaultOutput
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := afero.WriteFile(fs, output, Render(theme, opts), 0644); err != nil {
		return fmt.Errorf("%w %q: %w", ErrIO, output, err)
	}
	return nil
}
