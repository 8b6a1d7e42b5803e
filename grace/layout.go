// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"strconv"
	"strings"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/internal/logger"
)

// DefaultGap is the default space between neighboring graphs, in
// view coordinates.
const DefaultGap = 0.02

// A Grid describes a regular arrangement of graphs on the page. Graphs
// in one column share a width and graphs in one row share a height.
type Grid struct {
	Rows, Cols int

	// HGap and VGap are the gaps between columns and between rows.
	// A nil slice uses DefaultGap, a single value is used for
	// every gap, and otherwise there must be Cols-1 (or Rows-1)
	// values.
	HGap, VGap []float64

	// WidthRatios and HeightRatios divide the available width and
	// height among columns and rows, such as "2:1". Empty means
	// equal division.
	WidthRatios, HeightRatios string
}

// Layout returns the view rectangle of every graph of g over the
// default canvas, row by row from the top left. Each rectangle is
// xmin, ymin, xmax, ymax.
func Layout(g Grid) ([][4]float64, error) {
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil, agr.Errorf(agr.ErrConfig, "layout: no graphs in a %dx%d grid", g.Rows, g.Cols)
	}
	hgap, err := gaps("hgap", g.HGap, g.Cols-1)
	if err != nil {
		return nil, err
	}
	vgap, err := gaps("vgap", g.VGap, g.Rows-1)
	if err != nil {
		return nil, err
	}

	xmin, ymin, xmax, ymax := canvas[0], canvas[1], canvas[2], canvas[3]
	width := xmax - xmin - sum(hgap)
	height := ymax - ymin - sum(vgap)
	if width <= 0 || height <= 0 {
		return nil, agr.Errorf(agr.ErrConfig, "layout: gaps leave no room for graphs")
	}
	ws, err := shares("width ratios", g.WidthRatios, g.Cols, width)
	if err != nil {
		return nil, err
	}
	hs, err := shares("height ratios", g.HeightRatios, g.Rows, height)
	if err != nil {
		return nil, err
	}

	views := make([][4]float64, 0, g.Rows*g.Cols)
	top := ymax
	for row := 0; row < g.Rows; row++ {
		left := xmin
		for col := 0; col < g.Cols; col++ {
			v := [4]float64{left, top - hs[row], left + ws[col], top}
			logger.Logger.Debugw("layout", "graph", len(views), "view", v)
			views = append(views, v)
			left += ws[col]
			if col < len(hgap) {
				left += hgap[col]
			}
		}
		top -= hs[row]
		if row < len(vgap) {
			top -= vgap[row]
		}
	}
	return views, nil
}

func gaps(name string, gs []float64, n int) ([]float64, error) {
	switch {
	case gs == nil:
		gs = []float64{DefaultGap}
	case len(gs) == n:
		return gs, nil
	case len(gs) != 1:
		return nil, agr.Errorf(agr.ErrConfig, "layout: %d %s values for %d gaps", len(gs), name, n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = gs[0]
	}
	return out, nil
}

// shares splits total among n parts by the colon-separated ratios.
func shares(name, ratios string, n int, total float64) ([]float64, error) {
	out := make([]float64, n)
	if ratios == "" {
		for i := range out {
			out[i] = total / float64(n)
		}
		return out, nil
	}
	fields := strings.Split(ratios, ":")
	if len(fields) != n {
		return nil, agr.Errorf(agr.ErrConfig, "layout: %s %q has %d parts, want %d", name, ratios, len(fields), n)
	}
	rs := make([]float64, n)
	for i, f := range fields {
		r, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || !(r > 0) {
			return nil, agr.Errorf(agr.ErrConfig, "layout: bad %s %q", name, ratios)
		}
		rs[i] = r
	}
	s := sum(rs)
	for i, r := range rs {
		out[i] = r * total / s
	}
	return out, nil
}

func sum(xs []float64) float64 {
	t := 0.0
	for _, x := range xs {
		t += x
	}
	return t
}
