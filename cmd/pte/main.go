// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/pte/internal/config"
	"github.com/thatcatcamp/pte/internal/logging"
	"go.uber.org/zap"
)

// app carries what every command shares
type app struct {
	fs         afero.Fs
	configPath string
	logger     *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pte",
		Short: "pte - typed theme engine built on CSS custom properties",
		Long: `pte turns a nested theme (YAML, JSON or TOML) into CSS custom properties.

It exports static stylesheets at build time, emits a bootstrap script for
server-rendered pages, injects the theme block into HTML files and runs a
local preview server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", a.configPath, "config file (default $PTE_CONFIG or ~/.pte/config.yaml)")

	root.AddCommand(
		newExportCmd(a),
		newScriptCmd(a),
		newInjectCmd(a),
		newPathsCmd(a),
		newPalettesCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)
	return root
}

// init loads the config file and builds the logger from it
func (a *app) init() error {
	if a.configPath == "" {
		a.configPath = config.DefaultPath()
	}
	if err := config.InitConfig(a.configPath); err != nil {
		return err
	}

	logger, err := logging.New(config.GetString("log.level"), config.GetString("log.format"))
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func main() {
	a := &app{fs: afero.NewOsFs()}
	err := newRootCmd(a).Execute()
	if a.logger != nil {
		a.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
