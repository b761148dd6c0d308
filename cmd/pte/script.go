// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/pte/internal/inject"
)

func newScriptCmd(a *app) *cobra.Command {
	var (
		source themeFlags
		naming injectFlags
		tag    bool
	)

	cmd := &cobra.Command{
		Use:   "script " + themeArgs,
		Short: "Print the bootstrap script for server-rendered pages",
		Long: `Print a self-executing script that creates or refreshes the managed
style block when it runs in the page. Embed it in the document head so the
theme applies before first paint.`,
		Args: maxThemeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := source.load(a, args)
			if err != nil {
				return err
			}

			opts := naming.options(cmd)
			if tag {
				fmt.Fprintln(cmd.OutOrStdout(), inject.ScriptTag(theme, opts))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), inject.GenerateScript(theme, opts))
			}
			return nil
		},
	}

	source.register(cmd)
	naming.register(cmd, true)
	cmd.Flags().BoolVar(&tag, "tag", false, "wrap the script in a <script> element")
	return cmd
}
