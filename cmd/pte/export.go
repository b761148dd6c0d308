// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/pte/internal/config"
	"github.com/thatcatcamp/pte/internal/export"
	"go.uber.org/zap"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		source themeFlags
		naming injectFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export " + themeArgs,
		Short: "Write a theme to a static CSS file",
		Long: `Flatten a theme into CSS custom properties and write them as a single
rule to a stylesheet, ready to be linked from a static site.`,
		Args: maxThemeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			theme, err := source.load(a, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("output") {
				if v := config.GetString("export.output"); v != "" {
					output = v
				}
			}
			opts := naming.options(cmd)

			err = export.ToFile(cmd.Context(), a.fs, theme, output, export.Options{
				Selector: opts.Selector,
				Prefix:   opts.Prefix,
			})
			if err != nil {
				return err
			}

			elapsed := time.Since(start)
			a.logger.Debug("theme exported", zap.String("output", output), zap.Duration("elapsed", elapsed))
			fmt.Fprintf(cmd.OutOrStdout(), "✅  Exported theme to %q in %dms\n", output, elapsed.Milliseconds())
			return nil
		},
	}

	source.register(cmd)
	naming.register(cmd, false)
	cmd.Flags().StringVarP(&output, "output", "o", export.DefaultOutput, "output file, its directory must exist")
	return cmd
}
