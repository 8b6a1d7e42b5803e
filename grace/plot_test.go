// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-grace/agr"
)

var fixedTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestPlot(t *testing.T, opts Options) *Plot {
	t.Helper()
	o := Options{"time": fixedTime}
	for k, v := range opts {
		o[k] = v
	}
	p, err := New(o)
	require.NoError(t, err)
	return p
}

func TestDocumentDefaults(t *testing.T) {
	p := newTestPlot(t, nil)
	lines := p.Export()
	assert.Equal(t, []string{
		"# Grace project file",
		"#",
		"@version 50122",
		"@link page off",
		"@reference date 0",
		"@date wrap off",
		"@date wrap year 1950",
		"@background color 0",
		"@page size 792, 612",
		"@page scroll 5%",
		"@page inout 5%",
		"@page background fill on",
	}, lines[:12])
	for _, want := range []string{
		`@map color 2 to (255, 0, 0), "red"`,
		"@default linewidth 1.5",
		`@default sformat "%.8g"`,
		"@timestamp off",
		`@timestamp def "Sat Jan  1 00:00:00 2000"`,
		"@link r0 to g0",
		"@r0 off",
		"@g0 hidden false",
		"@with g0",
		"@    world 0.000000, 0.000000, 1.000000, 1.000000",
		"@    view 0.150000, 0.100000, 1.200000, 0.850000",
		"@    znorm 1",
		"@    xaxes scale Normal",
		"@    xaxis on",
		"@    xaxis tick major 1",
		"@    altxaxis off",
		"@    altyaxis off",
		"@    legend on",
		"@    legend box color 1",
		"@    frame type 0",
	} {
		assert.Contains(t, lines, want)
	}
	assert.Equal(t, 1, p.Len())
}

func TestDataSection(t *testing.T) {
	p := newTestPlot(t, nil)
	_, err := p.Plot([]int{0, 1, 2}, []int{3, 2, 1}, Options{"label": "a"})
	require.NoError(t, err)
	lines := p.Export()
	assert.Equal(t, []string{"@target G0.S0", "@type xy", "0 3", "1 2", "2 1", "&"}, lines[len(lines)-6:])
	assert.Contains(t, lines, `@    s0 legend "a"`)

	p = newTestPlot(t, Options{"dformat": "%.2f"})
	_, err = p.Plot([]float64{0.5}, []float64{1.25}, nil)
	require.NoError(t, err)
	lines = p.Export()
	assert.Equal(t, "0.50 1.25", lines[len(lines)-2])

	_, err = New(Options{"dformat": "%q"})
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)
}

func TestExportIdempotent(t *testing.T) {
	p := newTestPlot(t, nil)
	_, err := p.Plot([]float64{0, 1}, []float64{1, 0}, Options{"color": "red", "dy": []float64{0.1, 0.1}})
	require.NoError(t, err)
	assert.Equal(t, p.String(), p.String())

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, p.String()+"\n", buf.String())

	path := filepath.Join(t.TempDir(), "out.agr")
	require.NoError(t, p.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(b))
}

func TestDocumentOptions(t *testing.T) {
	p := newTestPlot(t, Options{"description": "test plot", "bc": "red", "lw": 2.5, "background": false})
	lines := p.Export()
	assert.Equal(t, "@background color 2", lines[7])
	assert.Equal(t, `@description "test plot"`, lines[8])
	assert.Contains(t, lines, "@default linewidth 2.5")
	assert.Contains(t, lines, "@page background fill off")

	_, err := New(Options{"bogus": 1})
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)
	_, err = New(Options{"rows": "two"})
	assert.True(t, errors.Is(err, agr.ErrType), "got %v", err)
	_, err = New(Options{"palette": "standard"})
	assert.True(t, errors.Is(err, agr.ErrType), "got %v", err)
	_, err = New(Options{"description": `a "quoted" plot`})
	assert.True(t, errors.Is(err, agr.ErrMarkup), "got %v", err)

	p = newTestPlot(t, Options{"rows": 2, "vgap": 0, "heigh_ratios": "1:3"})
	g, err := p.Graph(0)
	require.NoError(t, err)
	v := g.View()
	assert.InDelta(t, 0.75/4, v[3]-v[1], 1e-9)
}

func TestSubplots(t *testing.T) {
	for _, test := range []struct {
		shape []int
		n     int
	}{
		{nil, 1},
		{[]int{32}, 6},
		{[]int{5}, 5},
		{[]int{3, 4}, 12},
	} {
		p, err := Subplots(Options{"time": fixedTime}, test.shape...)
		require.NoError(t, err, "%v", test.shape)
		assert.Equal(t, test.n, p.Len(), "%v", test.shape)
		for i, g := range p.Graphs() {
			assert.Equal(t, i, g.Index())
		}
	}

	p, err := Subplots(nil, 32)
	require.NoError(t, err)
	g0, _ := p.Graph(0)
	g1, _ := p.Graph(1)
	assert.Less(t, g0.View()[2], g1.View()[0], "graph 1 is right of graph 0")

	for _, shape := range [][]int{{100}, {0}, {1, 2, 3}} {
		_, err := Subplots(nil, shape...)
		assert.True(t, errors.Is(err, agr.ErrConfig), "%v: got %v", shape, err)
	}
	_, err = Subplots(Options{"rows": 2}, 2)
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)
}

func TestDocumentSetters(t *testing.T) {
	p, err := Subplots(Options{"time": fixedTime}, 2)
	require.NoError(t, err)

	_, err = p.Graph(2)
	assert.True(t, errors.Is(err, agr.ErrLookup), "got %v", err)
	assert.True(t, errors.Is(p.Title(2, "t", nil), agr.ErrLookup))

	require.NoError(t, p.Title(1, "Bands", Options{"fontsize": 2}))
	g1, _ := p.Graph(1)
	assert.Equal(t, "Bands", g1.Title())
	require.NoError(t, p.Subtitle(0, "sub", nil))

	require.NoError(t, p.XLabel("k", nil))
	require.NoError(t, p.YLabel("E", nil))
	require.NoError(t, p.SetXLim(-1, 1))
	require.NoError(t, p.SetYAxis(Options{"offset": []float64{0.1, 0}}))
	for _, g := range p.Graphs() {
		assert.Contains(t, g.X().Export(), `xaxis label "k"`)
		assert.Contains(t, g.Y().Export(), `yaxis label "E"`)
		lim := g.Limits()
		assert.Equal(t, [2]float64{-1, 1}, [2]float64{lim[0], lim[2]})
	}

	require.NoError(t, p.SetDefault(Options{"font": "Times-Roman"}))
	require.NoError(t, p.SetPage(Options{"size": []int{600, 400}}))
	require.NoError(t, p.SetTimeStamp(Options{"switch": true}))
	require.NoError(t, p.SetRegion(1, Options{"switch": "on", "link": 1}))
	assert.True(t, errors.Is(p.SetRegion(1, Options{"link": 5}), agr.ErrLookup))
	assert.True(t, errors.Is(p.SetRegion(7, nil), agr.ErrLookup))

	c, err := p.AddColor(10, 20, 30, "mine")
	require.NoError(t, err)
	assert.Equal(t, 16, c)
	ds, err := p.Plot([]float64{0}, []float64{0}, Options{"lc": "mine"})
	require.NoError(t, err)
	assert.Equal(t, 16, ds.Line.Int("color"))

	out := p.String()
	for _, want := range []string{
		`@map color 16 to (10, 20, 30), "mine"`,
		"@page size 600, 400",
		"@timestamp on",
		"@link r1 to g1",
		"@r1 on",
		`@    subtitle "sub"`,
		"@    title size 2.000000",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasPrefix(out, "# Grace project file\n#\n@version 50122\n"))
}
