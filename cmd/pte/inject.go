// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/inject"
	"go.uber.org/zap"
)

func newInjectCmd(a *app) *cobra.Command {
	var (
		source   themeFlags
		naming   injectFlags
		htmlPath string
	)

	cmd := &cobra.Command{
		Use:   "inject " + themeArgs + " --html <page.html>",
		Short: "Write the theme block into an HTML file in place",
		Long: `Parse an HTML file, create or overwrite its managed style block with the
theme, and write the file back. Running it twice leaves one block.`,
		Args: maxThemeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if htmlPath == "" {
				return errors.New("--html is required")
			}

			theme, err := source.load(a, args)
			if err != nil {
				return err
			}

			f, err := a.fs.Open(htmlPath)
			if err != nil {
				return fmt.Errorf("failed to open %q: %w", htmlPath, err)
			}
			doc, err := dom.ParseHTML(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("failed to parse %q: %w", htmlPath, err)
			}

			opts := naming.options(cmd)
			if err := inject.Inject(doc, theme, opts); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := doc.Render(&buf); err != nil {
				return fmt.Errorf("failed to render %q: %w", htmlPath, err)
			}
			if err := afero.WriteFile(a.fs, htmlPath, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write %q: %w", htmlPath, err)
			}

			a.logger.Debug("theme injected", zap.String("file", htmlPath), zap.String("id", opts.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "✅  Injected theme into %q (#%s)\n", htmlPath, opts.ID)
			return nil
		},
	}

	source.register(cmd)
	naming.register(cmd, true)
	cmd.Flags().StringVar(&htmlPath, "html", "", "HTML file to update in place")
	return cmd
}
