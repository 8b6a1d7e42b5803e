// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-grace/agr"
)

func testGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := newGraph(0, agr.NewPalette(), nil)
	require.NoError(t, err)
	return g
}

func TestColorCascade(t *testing.T) {
	g := testGraph(t)
	ds, err := g.Plot([]float64{0, 1}, []float64{1, 0}, Options{"color": "red", "sc": "blue"})
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Symbol.Int("color"))
	assert.Equal(t, 2, ds.Symbol.Int("fill_color"))
	assert.Equal(t, 2, ds.Line.Int("color"))
	assert.Equal(t, 2, ds.Fill.Int("color"))
	assert.Equal(t, 2, ds.Annotation.Int("color"))
	assert.Equal(t, 2, ds.Errorbar.Int("color"))
}

func TestDatasetRouting(t *testing.T) {
	g := testGraph(t)
	ds, err := g.Plot([]int{0, 1}, []int{1, 0}, Options{
		"label":    "a",
		"symbol":   "circle",
		"ssize":    0.5,
		"lw":       2,
		"ls":       "dashed",
		"errorbar": false,
		"dy":       []float64{0.1, 0.2},
	})
	require.NoError(t, err)
	assert.Equal(t, "a", ds.Label())
	assert.Equal(t, "xydy", ds.Record().Datatype().Name)
	assert.Equal(t, "xydy", ds.Str("type"))
	assert.Equal(t, 1, ds.Symbol.Int("symbol_comment"))
	assert.Equal(t, 0.5, ds.Symbol.Float("size"))
	assert.Equal(t, 2.0, ds.Line.Float("linewidth"))
	assert.Equal(t, 3, ds.Line.Int("linestyle"))
	assert.Equal(t, agr.SwitchOff, ds.Errorbar.Int("errorbar_switch"))

	assert.Contains(t, ds.Export(), "s0 line linewidth 2.0")
	assert.Contains(t, ds.Export(), "s0 errorbar off")
}

func TestDatasetErrors(t *testing.T) {
	g := testGraph(t)
	x, y := []float64{0, 1}, []float64{1, 0}

	_, err := g.Plot(x, y, Options{"colour": "red"})
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)
	assert.Contains(t, err.Error(), "colour")

	_, err = g.Plot(x, y, Options{"sc": "no-such-color"})
	assert.True(t, errors.Is(err, agr.ErrLookup), "got %v", err)

	_, err = g.Plot(x, []float64{1}, nil)
	assert.True(t, errors.Is(err, agr.ErrType), "got %v", err)

	_, err = g.Plot(x, y, Options{"label": "x^{2"})
	assert.True(t, errors.Is(err, agr.ErrMarkup), "got %v", err)

	_, err = g.Plot(x, y, Options{"label": `say "hi"`})
	assert.True(t, errors.Is(err, agr.ErrMarkup), "got %v", err)
	err = g.SetTitle(`a "quoted" title`, nil)
	assert.True(t, errors.Is(err, agr.ErrMarkup), "got %v", err)
	assert.Equal(t, "", g.Title())

	assert.Equal(t, 0, g.Len())
}

func TestDatasetSetAtomic(t *testing.T) {
	g := testGraph(t)
	ds, err := g.Plot([]float64{0, 1}, []float64{1, 0}, nil)
	require.NoError(t, err)

	err = ds.Set(Options{"lc": "red", "sc": "no-such-color"})
	require.Error(t, err)
	assert.Equal(t, 1, ds.Line.Int("color"))

	err = ds.Set(Options{"dy": []float64{1, 1}})
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)

	require.NoError(t, ds.Set(Options{"lc": "red", "sc": "blue"}))
	assert.Equal(t, 2, ds.Line.Int("color"))
	assert.Equal(t, 4, ds.Symbol.Int("color"))
}

func TestPlotBands(t *testing.T) {
	g := testGraph(t)
	_, err := g.Plot([]float64{0}, []float64{0}, nil)
	require.NoError(t, err)
	dss, err := g.PlotBands([]float64{0, 1}, [][]float64{{0, 1}, {1, 2}, {2, 3}}, Options{
		"label": "bands",
		"color": "blue",
		"dy":    [][]float64{{0.1, 0.1}, {0.2, 0.2}, {0.3, 0.3}},
	})
	require.NoError(t, err)
	require.Len(t, dss, 3)
	assert.Equal(t, 4, g.Len())
	for i, ds := range dss {
		assert.Equal(t, i+1, ds.Index())
		assert.Equal(t, 4, ds.Line.Int("color"))
		assert.Equal(t, "xydy", ds.Record().Datatype().Name)
	}
	assert.Equal(t, "bands", dss[0].Label())
	assert.Equal(t, "", dss[1].Label())
	assert.Equal(t, []float64{0.3, 0.3}, dss[2].Record().Column("dy"))

	_, err = g.PlotBands([]float64{0, 1}, [][]float64{{0, 1}}, Options{"dy": []float64{1, 1}})
	assert.True(t, errors.Is(err, agr.ErrType), "got %v", err)
}

func TestLegendLoc(t *testing.T) {
	r := [4]float64{0, 0, 1, 1}
	for _, test := range []struct {
		tok  string
		want []float64
	}{
		{"upper left", []float64{0.2, 0.9}},
		{"lower right", []float64{0.7, 0.1}},
		{"bottom center", []float64{0.4, 0.1}},
		{"middle right", []float64{0.7, 0.5}},
		{"center", []float64{0.4, 0.5}},
	} {
		got, err := legendLoc(test.tok, r)
		require.NoError(t, err, test.tok)
		assert.InDeltaSlice(t, test.want, got, 1e-9, test.tok)
	}
	for _, tok := range []string{"upper", "left", "somewhere"} {
		_, err := legendLoc(tok, r)
		assert.True(t, errors.Is(err, agr.ErrConfig), "%q: got %v", tok, err)
	}
}

func TestSetLegend(t *testing.T) {
	g := testGraph(t)
	require.NoError(t, g.SetLim(Options{"xmin": 0, "ymin": 0, "xmax": 10, "ymax": 10}))
	require.NoError(t, g.SetLegend(Options{"loc": "upper left", "loctype": "world"}))
	assert.InDeltaSlice(t, []float64{2, 9}, g.Legend().Floats("legend_location"), 1e-9)
	assert.Equal(t, "world", g.Legend().Str("loctype"))

	// Against the view.
	require.NoError(t, g.SetView(Options{"xmin": 0, "ymin": 0, "xmax": 1, "ymax": 1}))
	require.NoError(t, g.SetLegend(Options{"loc": "lower right", "loctype": "view"}))
	assert.InDeltaSlice(t, []float64{0.7, 0.1}, g.Legend().Floats("legend_location"), 1e-9)

	require.NoError(t, g.SetLegend(Options{"loc": []float64{0.5, 0.6}}))
	assert.Equal(t, []float64{0.5, 0.6}, g.Legend().Floats("legend_location"))

	require.NoError(t, g.SetLegendBox(Options{"color": "red"}))
	assert.Contains(t, g.Legend().Export(), "legend box color 2")
}

func TestTickSpec(t *testing.T) {
	g := testGraph(t)
	require.NoError(t, g.X().SetSpec([]float64{0, 1, 2}, []string{"a", "b", "c"}, 1))
	lines := g.X().Tick.Export()
	assert.Contains(t, lines, "tick spec type both")
	assert.Equal(t, []string{
		"tick spec 3",
		"tick major 0, 0.000",
		"tick minor 1, 1.000",
		"tick major 2, 2.000",
		`ticklabel 0, "a"`,
		`ticklabel 2, "c"`,
	}, lines[len(lines)-6:])
	assert.Contains(t, g.X().Export(), "xaxis tick spec 3")

	require.NoError(t, g.Y().SetSpec([]float64{0.5}, nil))
	lines = g.Y().Tick.Export()
	assert.Equal(t, []string{"tick spec type ticks", "tick spec 1", "tick major 0, 0.500"}, lines[len(lines)-3:])

	err := g.X().SetSpec([]float64{0, 1}, []string{"a"})
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)
	err = g.X().SetSpec([]float64{0, 1}, nil, 2)
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)
}

func TestAxes(t *testing.T) {
	g := testGraph(t)
	altx, err := g.Axis("altx")
	require.NoError(t, err)
	assert.Equal(t, []string{"altxaxis off"}, altx.Export())

	_, err = g.Axis("z")
	assert.True(t, errors.Is(err, agr.ErrLookup), "got %v", err)

	require.NoError(t, g.SetAxis("alty", Options{"switch": "on"}))
	alty, _ := g.Axis("alty")
	assert.Contains(t, alty.Export(), "altyaxis tick on")

	require.NoError(t, g.SetXLabel("Energy", Options{"charsize": 2}))
	assert.Contains(t, g.X().Export(), `xaxis label "Energy"`)
	assert.Contains(t, g.X().Export(), "xaxis label char size 2.000000")

	require.NoError(t, g.X().SetMajor(Options{"major": 0.25, "grid": true}))
	assert.Contains(t, g.X().Export(), "xaxis tick major 0.25")
	assert.Contains(t, g.X().Export(), "xaxis tick major grid on")
	require.NoError(t, g.X().SetPlace(Options{"place": "out"}))
	assert.Contains(t, g.X().Export(), "xaxis tick place out")

	require.NoError(t, g.SetAxes("y", Options{"scale": "Logarithmic"}))
	assert.Contains(t, g.yaxes.Export(), "yaxes scale Logarithmic")
}

func TestDrawnObjects(t *testing.T) {
	g := testGraph(t)

	s, err := g.Text("hi", [2]float64{0.5, 0.25}, Options{"color": "blue"})
	require.NoError(t, err)
	lines := s.Export()
	assert.Equal(t, "with string", lines[0])
	assert.Contains(t, lines, "    string g0")
	assert.Contains(t, lines, "    string color 4")
	assert.Contains(t, lines, `    string def "hi"`)
	assert.NotEqual(t, "string def", lines[len(lines)-1])

	c, err := g.Circle([2]float64{0.5, 0.5}, 0.2, 0, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.4, 0.6, 0.6, 0.4}, c.Floats("ellipse_location"), 1e-9)
	assert.Equal(t, "ellipse def", c.Export()[len(c.Export())-1])

	h, err := g.AxHLine(0.5, Options{"xmin": "25", "color": "red"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 1, 0.5}, h.Floats("line_location"), 1e-9)
	assert.Equal(t, 2, h.Int("color"))

	v, err := g.AxVLine(0.3, Options{"ymax": 0.5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.3, 0, 0.3, 0.5}, v.Floats("line_location"), 1e-9)

	a, err := g.Arrow([2]float64{0, 0}, [2]float64{1, 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Int("arrow"))

	assert.Len(t, g.Objects(), 5)

	_, err = g.AxHLine(0.5, Options{"loctype": "page"})
	assert.True(t, errors.Is(err, agr.ErrLookup), "got %v", err)
	_, err = g.AxHLine(0.5, Options{"xmin": "a lot"})
	assert.True(t, errors.Is(err, agr.ErrType), "got %v", err)
}

func TestTightGraph(t *testing.T) {
	g := testGraph(t)
	assert.Equal(t, 0.0, g.XMin())
	assert.Equal(t, 1.0, g.XMax())

	_, err := g.Plot([]float64{1, 2, 3}, []float64{-2, 4, 10}, nil)
	require.NoError(t, err)
	require.NoError(t, g.TightGraph(5, 5, 1.1, 1.1))
	lim := g.Limits()
	assert.InDeltaSlice(t, []float64{0.9, -2.2, 3.3, 11}, lim[:], 1e-9)
	assert.InDelta(t, 0.5, g.X().Tick.Float("major"), 1e-12)
	assert.InDelta(t, 5, g.Y().Tick.Float("major"), 1e-12)

	// Explicit ticks are kept.
	require.NoError(t, g.X().SetMajor(Options{"major": 0.25}))
	require.NoError(t, g.TightGraph(5, 5, 1.1, 1.1))
	assert.Equal(t, 0.25, g.X().Tick.Float("major"))
}

func TestMajorStep(t *testing.T) {
	for _, test := range []struct {
		lo, hi float64
		n      int
		want   float64
	}{
		{0, 10, 5, 5},
		{0, 1, 5, 0.5},
		{0, 100, 3, 50},
		{-3, 3, 4, 2},
		{1, 1, 5, 0},
	} {
		assert.InDelta(t, test.want, majorStep(test.lo, test.hi, test.n), 1e-12, "%+v", test)
	}
}
