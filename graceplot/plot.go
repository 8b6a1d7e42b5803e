// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/data"
	"github.com/aclements/go-grace/grace"
	"github.com/aclements/go-grace/internal/logger"
)

type plotFlags struct {
	out      string
	datatype string
	title    string
	subtitle string
	xlabel   string
	ylabel   string
	noLegend bool
	stack    bool
	tight    bool
	sets     []string
	render   string
}

func newPlotCmd(a *app) *cobra.Command {
	var f plotFlags
	cmd := &cobra.Command{
		Use:   "plot [flags] data-file...",
		Short: "Write a project file plotting numeric data files",
		Long: `plot reads each data file as one dataset and writes a project file.

The first two columns of a data file are x and y. With --type, the
remaining columns are the extra columns of that dataset type, in order;
xydy takes x, y, dy and xydxdy takes x, y, dx, dy. Without --type a file
must have exactly two columns. "-" reads standard input.

--set applies a dataset option to every dataset. Values are parsed as
YAML scalars, so "lw=2" sets a number and "color=red" a name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.plot(cmd.InOrStdin(), args, &f)
			if err != nil {
				return err
			}
			if f.render != "" {
				var doc bytes.Buffer
				if _, err := p.WriteTo(&doc); err != nil {
					return err
				}
				r, err := a.cfg.Renderer()
				if err != nil {
					return err
				}
				r.Stdout = cmd.OutOrStdout()
				if err := r.Render(cmd.Context(), &doc, f.render); err != nil {
					return err
				}
			}
			if f.out == "" || f.out == "-" {
				if f.render != "" {
					return nil
				}
				_, err := p.WriteTo(cmd.OutOrStdout())
				return err
			}
			return p.WriteFile(f.out)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.out, "output", "o", "", "write the project file to `file` (default: stdout)")
	fl.StringVar(&f.datatype, "type", "", "dataset `type` of every data file (xy, xydy, xydxdy, ...)")
	fl.StringVar(&f.title, "title", "", "graph title")
	fl.StringVar(&f.subtitle, "subtitle", "", "graph subtitle")
	fl.StringVar(&f.xlabel, "xlabel", "", "x axis label")
	fl.StringVar(&f.ylabel, "ylabel", "", "y axis label")
	fl.BoolVar(&f.noLegend, "no-legend", false, "do not label datasets with their file names")
	fl.BoolVar(&f.stack, "stack", false, "plot each data file in its own graph, stacked vertically")
	fl.BoolVar(&f.tight, "tight", false, "fit the axes to the data")
	fl.StringArrayVarP(&f.sets, "set", "s", nil, "dataset option `key=value` (repeatable)")
	fl.StringVar(&f.render, "render", "", "also render the project to `file` with gracebat")
	return cmd
}

// plot builds the document for the data files in paths.
func (a *app) plot(stdin io.Reader, paths []string, f *plotFlags) (*grace.Plot, error) {
	sets, err := parseSets(f.sets)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.PlotOptions()
	if err != nil {
		return nil, err
	}
	var p *grace.Plot
	if f.stack && len(paths) > 1 {
		p, err = grace.Subplots(opts, len(paths), 1)
	} else {
		p, err = grace.New(opts)
	}
	if err != nil {
		return nil, err
	}

	for i, path := range paths {
		t, err := readData(stdin, path)
		if err != nil {
			return nil, err
		}
		x, y, extras, err := columns(t, f.datatype)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
		o := grace.Options{}
		if f.datatype != "" {
			o["datatype"] = f.datatype
		}
		for k, v := range extras {
			o[k] = v
		}
		if !f.noLegend && path != "-" {
			o["label"] = filepath.Base(path)
		}
		for k, v := range sets {
			o[k] = v
		}
		g := p.Graphs()[0]
		if f.stack && len(paths) > 1 {
			g = p.Graphs()[i]
		}
		if _, err := g.Plot(x, y, o); err != nil {
			return nil, errors.Wrapf(err, "%s", path)
		}
		logger.Logger.Infow("plotted", "file", path, "graph", g.Index(), "points", len(x))
	}

	if f.title != "" {
		if err := p.Title(0, f.title, nil); err != nil {
			return nil, err
		}
	}
	if f.subtitle != "" {
		if err := p.Subtitle(0, f.subtitle, nil); err != nil {
			return nil, err
		}
	}
	if f.xlabel != "" {
		if err := p.XLabel(f.xlabel, nil); err != nil {
			return nil, err
		}
	}
	if f.ylabel != "" {
		if err := p.YLabel(f.ylabel, nil); err != nil {
			return nil, err
		}
	}
	if f.tight {
		if err := p.TightGraph(5, 5, 1, 1); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func readData(stdin io.Reader, path string) (*table.Table, error) {
	if path == "-" {
		return data.ReadTable(stdin)
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	t, err := data.ReadTable(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return t, nil
}

// columns assigns the columns of t to x, y and the extra columns of
// datatype.
func columns(t *table.Table, datatype string) (x, y []float64, extras map[string][]float64, err error) {
	names := []string{"x", "y"}
	if datatype != "" {
		dt, err := data.LookupDatatype(datatype)
		if err != nil {
			return nil, nil, nil, err
		}
		names = dt.Columns()
	}
	if n := len(t.Columns()); n != len(names) {
		err := agr.Errorf(agr.ErrConfig, "got %d columns, want %d (%s)", n, len(names), strings.Join(names, ", "))
		if datatype == "" && n > 2 {
			err = errors.WithHint(err, "use --type to name the extra columns")
		}
		return nil, nil, nil, err
	}
	extras = make(map[string][]float64)
	for i, name := range names {
		col := t.MustColumn(data.ColumnName(i)).([]float64)
		switch name {
		case "x":
			x = col
		case "y":
			y = col
		default:
			extras[name] = col
		}
	}
	return x, y, extras, nil
}

// parseSets parses key=value options. Values are YAML scalars.
func parseSets(sets []string) (grace.Options, error) {
	o := grace.Options{}
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return nil, agr.Errorf(agr.ErrConfig, "--set %q: want key=value", s)
		}
		var val interface{}
		if err := yaml.Unmarshal([]byte(v), &val); err != nil {
			return nil, agr.Errorf(agr.ErrConfig, "--set %q: %v", s, err)
		}
		if val == nil {
			val = v
		}
		o[k] = val
	}
	return o, nil
}
