// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/pte/internal/config"
	"github.com/thatcatcamp/pte/internal/inject"
	"github.com/thatcatcamp/pte/internal/themes"
)

// themeFlags selects where a command's theme comes from
type themeFlags struct {
	palette string
	dark    bool
}

func (f *themeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.palette, "palette", "", "use a built-in palette instead of a theme file")
	cmd.Flags().BoolVar(&f.dark, "dark", false, "dark variant of --palette")
}

// load resolves "<theme-file> [named-export]", --palette, or the
// theme.file / theme.export settings, in that order of precedence
func (f *themeFlags) load(a *app, args []string) (*themes.Theme, error) {
	if f.palette != "" {
		if len(args) > 0 {
			return nil, errors.New("give either a theme file or --palette, not both")
		}
		return themes.FromPalette(f.palette, f.dark)
	}

	path, export := f.file(args)
	if path == "" {
		return nil, errors.New("no theme file given (pass one, set theme.file, or use --palette)")
	}

	return themes.LoadFile(a.fs, path, export)
}

// file returns the theme file and named export from args or config
func (f *themeFlags) file(args []string) (path, export string) {
	path, export = config.GetString("theme.file"), config.GetString("theme.export")
	if len(args) > 0 {
		path, export = args[0], ""
	}
	if len(args) > 1 {
		export = args[1]
	}
	return path, export
}

// injectFlags are the naming options shared by every command that emits CSS
type injectFlags struct {
	prefix   string
	selector string
	id       string
}

func (f *injectFlags) register(cmd *cobra.Command, withID bool) {
	cmd.Flags().StringVar(&f.prefix, "prefix", themes.DefaultPrefix, "variable prefix")
	cmd.Flags().StringVarP(&f.selector, "selector", "s", themes.DefaultSelector, "selector of the generated rule")
	if withID {
		cmd.Flags().StringVar(&f.id, "id", inject.DefaultStyleID, "id of the managed style element")
	}
}

// options prefers explicit flags, then config, then the built-in defaults
func (f *injectFlags) options(cmd *cobra.Command) inject.Options {
	pick := func(flag, key, value string) string {
		if cmd.Flags().Changed(flag) {
			return value
		}
		if v := config.GetString(key); v != "" {
			return v
		}
		return value
	}
	return inject.Options{
		Prefix:   pick("prefix", "theme.prefix", f.prefix),
		Selector: pick("selector", "theme.selector", f.selector),
		ID:       pick("id", "theme.style_id", f.id),
	}
}

const themeArgs = "<theme-file> [named-export]"

var maxThemeArgs = cobra.MaximumNArgs(2)
