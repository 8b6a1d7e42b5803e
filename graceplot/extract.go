// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/grace"
)

func newExtractCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "extract [flags] file.agr",
		Short: "Print the data blocks of a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := grace.ExtractFile(args[0])
			if err != nil {
				return err
			}
			return printExtraction(cmd.OutOrStdout(), x, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output `format`: table or yaml")
	return cmd
}

// A block is the YAML form of one extracted data block.
type block struct {
	Legend  string   `yaml:"legend,omitempty"`
	Type    string   `yaml:"type"`
	Columns []column `yaml:"columns"`
}

type column struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values,flow"`
}

func printExtraction(w io.Writer, x *grace.Extraction, format string) error {
	switch format {
	case "table":
		var buf bytes.Buffer
		for i, t := range x.Tables {
			if i > 0 {
				fmt.Fprintln(&buf)
			}
			fmt.Fprintf(&buf, "# %d %s", i, x.Types[i])
			if x.Legends[i] != "" {
				fmt.Fprintf(&buf, " %q", x.Legends[i])
			}
			fmt.Fprintln(&buf)
			if err := table.Fprint(&buf, t); err != nil {
				return err
			}
		}
		_, err := w.Write(buf.Bytes())
		return err

	case "yaml":
		blocks := make([]block, len(x.Tables))
		for i, t := range x.Tables {
			b := block{Legend: x.Legends[i], Type: x.Types[i]}
			for _, name := range t.Columns() {
				b.Columns = append(b.Columns, column{name, t.MustColumn(name).([]float64)})
			}
			blocks[i] = b
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(blocks); err != nil {
			return err
		}
		return enc.Close()
	}
	return agr.Errorf(agr.ErrConfig, "unknown format %q (want table or yaml)", format)
}
