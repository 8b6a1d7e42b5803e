// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "render [flags] file.agr output-file",
		Short: "Render a project file with gracebat",
		Long: `render runs gracebat to draw a project file. The output device
follows from the extension of output-file, such as png, eps or
svg. The renderer binary and extra arguments come from the
[gracebat] section of the config file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.cfg.Renderer()
			if err != nil {
				return err
			}
			r.DryRun = dryRun
			r.Stdout = cmd.OutOrStdout()

			doc, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return r.Render(ctx, doc, args[1])
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the gracebat command instead of running it")
	return cmd
}
