// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/pte/internal/config"
	"github.com/thatcatcamp/pte/internal/middleware"
	"github.com/thatcatcamp/pte/internal/server"
	"github.com/thatcatcamp/pte/internal/themes"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		source themeFlags
		naming injectFlags
		port   string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "serve " + themeArgs,
		Short: "Run the local preview server",
		Long: `Serve the theme as /pte.css and /pte.js, a swatch page on / and the
variable listing on /vars. With --watch the theme file is reloaded on save.`,
		Args: maxThemeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := source.load(a, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("port") {
				port = config.GetString("server.http_port")
			}
			if !cmd.Flags().Changed("watch") {
				watch = config.GetBool("server.watch")
			}

			srv := server.New(theme, server.Options{
				Inject:     naming.options(cmd),
				AllowedIPs: middleware.ParseAllowlist(config.GetString("server.allowed_ips")),
				Logger:     a.logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watch {
				if source.palette != "" {
					return errors.New("--watch needs a theme file, not --palette")
				}
				path, export := source.file(args)
				reload := func() error {
					t, err := themes.LoadFile(a.fs, path, export)
					if err != nil {
						return err
					}
					srv.SetTheme(t)
					return nil
				}
				go func() {
					if err := server.Watch(ctx, path, reload, a.logger); err != nil {
						a.logger.Error("watcher stopped", zap.Error(err))
					}
				}()
			}

			addr := "127.0.0.1:" + port
			fmt.Fprintf(cmd.OutOrStdout(), "Previewing theme on http://%s\n", addr)
			if err := srv.Run(ctx, addr); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	source.register(cmd)
	naming.register(cmd, true)
	cmd.Flags().StringVarP(&port, "port", "p", "8080", "port to listen on")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the theme file when it changes")
	return cmd
}
