// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grace builds Grace (xmgrace) project files.
//
// A Plot is a document of one or more graphs laid out on a page. Each
// Graph holds datasets, axes, a legend and drawn objects. Every part
// is configured with Options, keyword maps such as
// Options{"color": "red", "lw": 2}, and is rendered as the "@" lines
// of the project file. The data blocks follow the header.
//
//	p, err := grace.New(grace.Options{"rows": 1, "cols": 2})
//	g, err := p.Graph(0)
//	_, err = g.Plot([]float64{0, 1, 2}, []float64{3, 2, 1}, grace.Options{"label": "a"})
//	err = p.WriteFile("out.agr")
package grace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/internal/logger"
)

// DefaultDataFormat formats data section values. %v gives the
// shortest representation that reads back as the same float64.
const DefaultDataFormat = "%v"

// SetLogger directs the package's debug logging to l. A nil l
// discards it.
func SetLogger(l *zap.Logger) { logger.Set(l) }

// A Plot is a Grace project: page setup, defaults, the color and font
// maps, regions and graphs.
type Plot struct {
	pal         *agr.Palette
	description string
	background  int
	dataFormat  string

	page      *Entity
	def       *Entity
	timestamp *Entity
	regions   [5]*Region
	graphs    []*Graph
}

// plotKeys are the options of New. Layout and document options are
// handled directly; the rest go to the page and the defaults.
var plotKeys = []keyword{
	{"rows", "", nil}, {"cols", "", nil},
	{"hgap", "", nil}, {"vgap", "", nil},
	{"width_ratios", "", nil}, {"height_ratios", "", nil}, {"heigh_ratios", "", nil},
	{"bc", "", nil}, {"background", "", nil},
	{"description", "", nil}, {"palette", "", nil}, {"dformat", "", nil}, {"time", "", nil},
}

// New returns a document. Its options are:
//
//   - rows, cols, hgap, vgap, width_ratios and height_ratios lay out
//     the graphs (see Grid). heigh_ratios is accepted for
//     height_ratios.
//   - bc is the background color and background switches the page
//     background fill.
//   - lw, ls, color, pattern, font, charsize, symbolsize and sformat
//     set the document defaults.
//   - description is the project description.
//   - palette is the *agr.Palette to use instead of a new standard
//     one.
//   - dformat formats values in the data section. The default is
//     DefaultDataFormat.
//   - time is the time.Time shown by the timestamp. The default is
//     the construction time.
func New(opts Options) (*Plot, error) {
	groups, err := split("Plot", opts, plotKeys, defaultKeys)
	if err != nil {
		return nil, err
	}
	o := groups[0]

	p := &Plot{pal: agr.NewPalette(), dataFormat: DefaultDataFormat}
	if v := o["palette"]; v != nil {
		pal, ok := v.(*agr.Palette)
		if !ok {
			return nil, agr.Errorf(agr.ErrType, "Plot option palette: want *agr.Palette, got %T", v)
		}
		p.pal = pal
	}
	if v := o["dformat"]; v != nil {
		f, ok := v.(string)
		if !ok {
			return nil, agr.Errorf(agr.ErrType, "Plot option dformat: want a string, got %T", v)
		}
		if err := checkDataFormat(f); err != nil {
			return nil, err
		}
		p.dataFormat = f
	}
	if v := o["description"]; v != nil {
		s, ok := v.(string)
		if !ok {
			return nil, agr.Errorf(agr.ErrType, "Plot option description: want a string, got %T", v)
		}
		if err := agr.CheckString(s); err != nil {
			return nil, errors.Wrap(err, "Plot option description")
		}
		p.description = s
	}
	if v := o["bc"]; v != nil {
		if p.background, err = p.pal.Code(v); err != nil {
			return nil, errors.Wrap(err, "Plot option bc")
		}
	}
	now := time.Now()
	if v := o["time"]; v != nil {
		t, ok := v.(time.Time)
		if !ok {
			return nil, agr.Errorf(agr.ErrType, "Plot option time: want a time.Time, got %T", v)
		}
		now = t
	}

	if p.page, err = newEntity("Page", pageSchema(), agr.NoAffix, pageKeys, p.pal, Options{"bgfill": o["background"]}); err != nil {
		return nil, err
	}
	if p.def, err = newEntity("Default", defaultSchema(), agr.NoAffix, defaultKeys, p.pal, groups[1]); err != nil {
		return nil, err
	}
	p.timestamp = mustEntity("TimeStamp", timeStampSchema(now.Format(timeStampLayout)), agr.NoAffix, timeStampKeys, p.pal, nil)
	for i := range p.regions {
		p.regions[i] = newRegion(i, p.pal)
	}

	grid, err := gridOf(o)
	if err != nil {
		return nil, err
	}
	views, err := Layout(grid)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		if _, err := p.AddGraph(Options{"xmin": v[0], "ymin": v[1], "xmax": v[2], "ymax": v[3]}); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// checkDataFormat rejects formats that fmt cannot apply to a float64.
func checkDataFormat(f string) error {
	s := fmt.Sprintf(f, 1.5)
	if strings.Contains(s, "%!") {
		return agr.Errorf(agr.ErrConfig, "bad data format %q: gives %q", f, s)
	}
	return nil
}

func gridOf(o Options) (Grid, error) {
	g := Grid{Rows: 1, Cols: 1}
	var err error
	if v := o["rows"]; v != nil {
		if g.Rows, err = toInt("rows", v); err != nil {
			return g, err
		}
	}
	if v := o["cols"]; v != nil {
		if g.Cols, err = toInt("cols", v); err != nil {
			return g, err
		}
	}
	if g.HGap, err = toGaps("hgap", o["hgap"]); err != nil {
		return g, err
	}
	if g.VGap, err = toGaps("vgap", o["vgap"]); err != nil {
		return g, err
	}
	if g.WidthRatios, err = toRatios("width_ratios", o["width_ratios"]); err != nil {
		return g, err
	}
	hr := o["height_ratios"]
	if hr == nil {
		hr = o["heigh_ratios"]
	}
	if g.HeightRatios, err = toRatios("height_ratios", hr); err != nil {
		return g, err
	}
	return g, nil
}

func toInt(name string, v interface{}) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, agr.Errorf(agr.ErrType, "Plot option %s: want an integer, got %v (%T)", name, v, v)
}

func toGaps(name string, v interface{}) ([]float64, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		return v, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return nil, agr.Errorf(agr.ErrType, "Plot option %s: %v", name, err)
	}
	return []float64{f}, nil
}

func toRatios(name string, v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", agr.Errorf(agr.ErrType, "Plot option %s: want a string such as \"2:1\", got %T", name, v)
	}
	return s, nil
}

// Subplots returns a document with a grid of graphs given by shape:
//
//   - no shape is a single graph;
//   - one number s between 10 and 100 is s/10 rows by s%10 columns,
//     so 32 is 3 rows by 2 columns;
//   - one number s between 0 and 10 is s rows in one column;
//   - two numbers are rows and columns.
//
// opts are the options of New except rows and cols.
func Subplots(opts Options, shape ...int) (*Plot, error) {
	rows, cols := 1, 1
	switch len(shape) {
	case 0:
	case 1:
		s := shape[0]
		switch {
		case 10 < s && s < 100:
			rows, cols = s/10, s%10
		case 0 < s && s < 10:
			rows = s
		default:
			return nil, agr.Errorf(agr.ErrConfig, "unsupported subplot shape %d", s)
		}
	case 2:
		rows, cols = shape[0], shape[1]
	default:
		return nil, agr.Errorf(agr.ErrConfig, "unsupported subplot shape %v", shape)
	}
	if opts["rows"] != nil || opts["cols"] != nil {
		return nil, agr.Errorf(agr.ErrConfig, "subplot shape and the rows or cols options are both given")
	}
	o := Options{"rows": rows, "cols": cols}
	for k, v := range opts {
		o[k] = v
	}
	return New(o)
}

// Palette returns the document's color palette.
func (p *Plot) Palette() *agr.Palette { return p.pal }

// AddColor adds a color to the palette and returns its code.
func (p *Plot) AddColor(r, g, b int, name string) (int, error) {
	return p.pal.Add(r, g, b, name)
}

// Len returns the number of graphs.
func (p *Plot) Len() int { return len(p.graphs) }

// Graphs returns the graphs in order.
func (p *Plot) Graphs() []*Graph { return p.graphs }

// Graph returns graph i.
func (p *Plot) Graph(i int) (*Graph, error) {
	if i < 0 || i >= len(p.graphs) {
		return nil, agr.Errorf(agr.ErrLookup, "no graph G%d (have %d)", i, len(p.graphs))
	}
	return p.graphs[i], nil
}

// AddGraph adds a graph placed at the view given by the xmin, ymin,
// xmax and ymax options. Missing bounds keep the default view.
func (p *Plot) AddGraph(view Options) (*Graph, error) {
	g, err := newGraph(len(p.graphs), p.pal, nil)
	if err != nil {
		return nil, err
	}
	if err := g.SetView(view); err != nil {
		return nil, err
	}
	p.graphs = append(p.graphs, g)
	return g, nil
}

// Plot adds a dataset to the first graph. See Graph.Plot.
func (p *Plot) Plot(x, y interface{}, opts Options) (*Dataset, error) {
	g, err := p.Graph(0)
	if err != nil {
		return nil, err
	}
	return g.Plot(x, y, opts)
}

// Title sets the title of graph ig. See Graph.SetTitle.
func (p *Plot) Title(ig int, s string, opts Options) error {
	g, err := p.Graph(ig)
	if err != nil {
		return err
	}
	return g.SetTitle(s, opts)
}

// Subtitle sets the subtitle of graph ig.
func (p *Plot) Subtitle(ig int, s string, opts Options) error {
	g, err := p.Graph(ig)
	if err != nil {
		return err
	}
	return g.SetSubtitle(s, opts)
}

// each applies f to every graph, stopping at the first error.
func (p *Plot) each(f func(g *Graph) error) error {
	for _, g := range p.graphs {
		if err := f(g); err != nil {
			return errors.Wrapf(err, "graph %d", g.index)
		}
	}
	return nil
}

// XLabel sets the x label of every graph.
func (p *Plot) XLabel(s string, opts Options) error {
	return p.each(func(g *Graph) error { return g.SetXLabel(s, opts) })
}

// YLabel sets the y label of every graph.
func (p *Plot) YLabel(s string, opts Options) error {
	return p.each(func(g *Graph) error { return g.SetYLabel(s, opts) })
}

// SetXAxis applies axis options to the x axis of every graph.
func (p *Plot) SetXAxis(opts Options) error {
	return p.each(func(g *Graph) error { return g.SetAxis("x", opts) })
}

// SetYAxis applies axis options to the y axis of every graph.
func (p *Plot) SetYAxis(opts Options) error {
	return p.each(func(g *Graph) error { return g.SetAxis("y", opts) })
}

// SetXLim sets the x range of every graph.
func (p *Plot) SetXLim(min, max float64) error {
	return p.each(func(g *Graph) error { return g.SetXLim(min, max) })
}

// SetYLim sets the y range of every graph.
func (p *Plot) SetYLim(min, max float64) error {
	return p.each(func(g *Graph) error { return g.SetYLim(min, max) })
}

// TightGraph fits every graph to its data. See Graph.TightGraph.
func (p *Plot) TightGraph(nxticks, nyticks int, xscale, yscale float64) error {
	return p.each(func(g *Graph) error { return g.TightGraph(nxticks, nyticks, xscale, yscale) })
}

// SetDefault applies document default options: lw, ls, color,
// pattern, font, charsize, symbolsize and sformat.
func (p *Plot) SetDefault(opts Options) error { return p.def.Set(opts) }

// SetPage applies page options: size, scroll, inout and bgfill.
func (p *Plot) SetPage(opts Options) error { return p.page.Set(opts) }

// SetTimeStamp applies timestamp options: switch, color, rot, font,
// charsize and def.
func (p *Plot) SetTimeStamp(opts Options) error { return p.timestamp.Set(opts) }

// Region returns region i, 0 through 4.
func (p *Plot) Region(i int) (*Region, error) {
	if i < 0 || i >= len(p.regions) {
		return nil, agr.Errorf(agr.ErrLookup, "no region r%d", i)
	}
	return p.regions[i], nil
}

// SetRegion applies region options to region i. The link option
// attaches the region to a graph.
func (p *Plot) SetRegion(i int, opts Options) error {
	r, err := p.Region(i)
	if err != nil {
		return err
	}
	o := make(Options, len(opts))
	link := -1
	for k, v := range opts {
		if k != "link" {
			o[k] = v
			continue
		}
		if link, err = toInt("link", v); err != nil {
			return err
		}
		if _, err := p.Graph(link); err != nil {
			return err
		}
	}
	if err := r.Set(o); err != nil {
		return err
	}
	if link >= 0 {
		r.Link(link)
	}
	return nil
}

// Export returns the lines of the project file.
func (p *Plot) Export() []string {
	head := []string{
		"version 50122",
		"link page off",
		"reference date 0",
		"date wrap off",
		"date wrap year 1950",
		fmt.Sprintf("background color %d", p.background),
	}
	if p.description != "" {
		head = append(head, fmt.Sprintf("description \"%s\"", p.description))
	}
	parts := []agr.Exporter{p.page, agr.FontMap{}, p.pal, p.def, p.timestamp}
	for _, r := range p.regions {
		parts = append(parts, r)
	}
	for _, g := range p.graphs {
		parts = append(parts, g)
	}
	for _, g := range p.graphs {
		parts = append(parts, g.objects...)
	}
	head = append(head, agr.Prefixed("", parts...)...)

	lines := []string{"# Grace project file", "#"}
	for _, l := range head {
		lines = append(lines, "@"+l)
	}
	for _, g := range p.graphs {
		lines = append(lines, g.exportData(p.dataFormat)...)
	}
	return lines
}

func (p *Plot) String() string {
	return strings.Join(p.Export(), "\n")
}

// WriteTo writes the project file to w.
func (p *Plot) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String()+"\n")
	return int64(n), err
}

// WriteFile writes the project file to path.
func (p *Plot) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
