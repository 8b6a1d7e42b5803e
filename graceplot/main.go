// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command graceplot writes, reads and renders Grace project files.
//
// Usage:
//
//	graceplot plot [flags] data-file...
//	graceplot extract [flags] file.agr
//	graceplot render [flags] file.agr output-file
//	graceplot colors
//	graceplot config show|path
//
// Data files hold whitespace-separated numeric columns: x, y, then
// any extra columns of the dataset type. Settings are read from
// $GRACEPLOT_CONFIG or ~/.graceplot.toml.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/aclements/go-grace/config"
	"github.com/aclements/go-grace/internal/logger"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "graceplot",
		Short: "Write, read and render Grace project files",
		Long: `graceplot writes Grace (xmgrace) project files from numeric data,
extracts the data blocks of existing project files and renders project
files with gracebat.

Examples:
  graceplot plot -o fit.agr data.txt model.txt
  graceplot plot --type xydy --title Errors -o err.agr err.txt
  graceplot extract --format yaml fit.agr
  graceplot render fit.agr fit.png`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "read settings from `file`")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log `level` (debug, info, warn, error); overrides the config file")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "log in JSON")

	root.AddCommand(
		newPlotCmd(a),
		newExtractCmd(a),
		newRenderCmd(a),
		newColorsCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the configuration and starts the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logJSON {
		cfg.LogJSON = true
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogJSON); err != nil {
		return errors.Wrap(err, "--log-level")
	}
	a.cfg = cfg
	return nil
}

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "graceplot: %v\n", err)
		for _, h := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", h)
		}
		os.Exit(1)
	}
}
