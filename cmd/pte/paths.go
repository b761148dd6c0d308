// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/pte/internal/themes"
)

func newPathsCmd(a *app) *cobra.Command {
	var (
		source  themeFlags
		naming  injectFlags
		goConst bool
		pkg     string
	)

	cmd := &cobra.Command{
		Use:   "paths " + themeArgs,
		Short: "List the variables a theme produces",
		Long: `List every theme path with its variable name and value, or with --go
emit Go constants for the paths so code can address them without typos.`,
		Args: maxThemeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := source.load(a, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if goConst {
				src, err := themes.GeneratePathConstants(theme, pkg)
				if err != nil {
					return err
				}
				_, err = out.Write(src)
				return err
			}

			prefix := naming.options(cmd).Prefix
			vars := themes.Flatten(theme, prefix)
			paths := themes.Paths(theme)

			width := 0
			for _, v := range vars {
				width = max(width, len(v.Name))
			}
			for i, v := range vars {
				pad := strings.Repeat(" ", width-len(v.Name))
				fmt.Fprintf(out, "%s %s%s  %s  %s\n",
					swatch(v.Value), styleName.Render(v.Name), pad, styleValue.Render(v.Value), paths[i])
			}
			return nil
		},
	}

	source.register(cmd)
	naming.register(cmd, false)
	cmd.Flags().BoolVar(&goConst, "go", false, "emit Go path constants instead of a listing")
	cmd.Flags().StringVar(&pkg, "package", "theme", "package name for --go output")
	return cmd
}

func newPalettesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the built-in palettes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleHeading.Render("Palettes (use with --palette name [--dark])"))
			for _, p := range themes.ListPalettes() {
				fmt.Fprintf(out, "%s%s %-12s %s %s\n",
					swatch(p.Primary), swatch(p.Secondary), p.Name,
					styleValue.Render(p.Primary), styleValue.Render(p.Secondary))
			}
		},
	}
}
