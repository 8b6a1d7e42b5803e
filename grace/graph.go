// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/data"
	"github.com/aclements/go-grace/internal/logger"
)

// A Graph is one plotting area of a document: its world and view
// rectangles, title, axes, legend, frame, datasets and drawn objects.
type Graph struct {
	*Entity
	index int
	pal   *agr.Palette

	world      *Entity
	stackWorld *Entity
	znorm      *Entity
	view       *Entity
	title      *Entity
	subtitle   *Entity
	xaxes      *Entity
	yaxes      *Entity
	axes       map[string]*Axis
	legend     *Legend
	frame      *Entity

	datasets []*Dataset
	objects  []agr.Exporter
}

// graphOptions are the options of a new graph beyond graphKeys.
var graphOptions = []keyword{
	{"xmin", "", nil}, {"ymin", "", nil}, {"xmax", "", nil}, {"ymax", "", nil},
	{"title", "", nil}, {"subtitle", "", nil},
	{"tsize", "", nil}, {"stsize", "", nil}, {"tc", "", nil}, {"stc", "", nil},
}

var limitKeys = []keyword{
	{"xmin", "", nil}, {"ymin", "", nil}, {"xmax", "", nil}, {"ymax", "", nil},
}

func newGraph(index int, pal *agr.Palette, opts Options) (*Graph, error) {
	groups, err := split("Graph", opts, graphKeys, graphOptions)
	if err != nil {
		return nil, err
	}
	e, err := newEntity("Graph", graphSchema(), agr.Index(index), graphKeys, pal, groups[0])
	if err != nil {
		return nil, err
	}
	ext := groups[1]
	g := &Graph{
		Entity:     e,
		index:      index,
		pal:        pal,
		world:      mustEntity("World", worldSchema(), agr.NoAffix, nil, pal, nil),
		stackWorld: mustEntity("StackWorld", stackWorldSchema(), agr.NoAffix, nil, pal, nil),
		znorm:      mustEntity("Znorm", znormSchema(), agr.NoAffix, nil, pal, nil),
		view:       mustEntity("View", viewSchema(), agr.NoAffix, nil, pal, nil),
		xaxes:      mustEntity("Axes", axesSchema("xaxes"), agr.NoAffix, axesKeys, pal, nil),
		yaxes:      mustEntity("Axes", axesSchema("yaxes"), agr.NoAffix, axesKeys, pal, nil),
		axes:       make(map[string]*Axis),
		legend:     newLegend(pal),
		frame:      mustEntity("Frame", frameSchema(), agr.NoAffix, frameKeys, pal, nil),
	}
	g.title, err = newEntity("Title", titleSchema("title"), agr.NoAffix, titleKeys("title"), pal,
		Options{"title": ext["title"], "fontsize": ext["tsize"], "color": ext["tc"]})
	if err != nil {
		return nil, err
	}
	g.subtitle, err = newEntity("SubTitle", titleSchema("subtitle"), agr.NoAffix, titleKeys("subtitle"), pal,
		Options{"subtitle": ext["subtitle"], "fontsize": ext["stsize"], "color": ext["stc"]})
	if err != nil {
		return nil, err
	}
	for _, name := range axisNames {
		var o Options
		if strings.HasPrefix(name, "alt") {
			o = Options{"switch": agr.SwitchOff}
		}
		if g.axes[name], err = newAxis(name, pal, o); err != nil {
			return nil, err
		}
	}
	if err := g.SetLim(Options{"xmin": ext["xmin"], "ymin": ext["ymin"], "xmax": ext["xmax"], "ymax": ext["ymax"]}); err != nil {
		return nil, err
	}
	return g, nil
}

// Index returns the graph number within its document.
func (g *Graph) Index() int { return g.index }

// Len returns the number of datasets.
func (g *Graph) Len() int { return len(g.datasets) }

// Datasets returns the datasets in plotting order.
func (g *Graph) Datasets() []*Dataset { return g.datasets }

// Dataset returns dataset i.
func (g *Graph) Dataset(i int) (*Dataset, error) {
	if i < 0 || i >= len(g.datasets) {
		return nil, agr.Errorf(agr.ErrLookup, "graph %d has no dataset %d (have %d)", g.index, i, len(g.datasets))
	}
	return g.datasets[i], nil
}

// Objects returns the drawn objects attached to the graph.
func (g *Graph) Objects() []agr.Exporter { return g.objects }

// Plot adds a dataset of y against x. See Dataset for the options.
func (g *Graph) Plot(x, y interface{}, opts Options) (*Dataset, error) {
	ds, err := newDataset(len(g.datasets), x, y, g.pal, opts)
	if err != nil {
		return nil, err
	}
	g.datasets = append(g.datasets, ds)
	logger.Logger.Debugw("plot", "graph", g.index, "dataset", ds.index, "datatype", ds.rec.Datatype().Name, "points", ds.rec.Len())
	return ds, nil
}

// PlotBands adds one dataset per series in ys, all against x. The
// label option applies to the first dataset only. Extra column
// options (dx, dy and so on) must hold one column per series.
func (g *Graph) PlotBands(x interface{}, ys [][]float64, opts Options) ([]*Dataset, error) {
	if len(ys) == 0 {
		return nil, agr.Errorf(agr.ErrConfig, "no bands to plot")
	}
	extras := make(map[string][][]float64)
	for _, name := range data.ExtraNames {
		v, ok := opts[name]
		if !ok || v == nil {
			continue
		}
		cols, ok := v.([][]float64)
		if !ok || len(cols) != len(ys) {
			return nil, agr.Errorf(agr.ErrType, "band option %s: want %d columns as [][]float64, got %T", name, len(ys), v)
		}
		extras[name] = cols
	}

	// Build every dataset before adding any.
	dss := make([]*Dataset, len(ys))
	for i, y := range ys {
		o := make(Options, len(opts))
		for k, v := range opts {
			if k == "label" && i > 0 {
				continue
			}
			o[k] = v
		}
		for name, cols := range extras {
			o[name] = cols[i]
		}
		ds, err := newDataset(len(g.datasets)+i, x, y, g.pal, o)
		if err != nil {
			return nil, err
		}
		dss[i] = ds
	}
	g.datasets = append(g.datasets, dss...)
	return dss, nil
}

// Set applies graph options: hidden, gt, stacked, barhgap, fp, fpt,
// fpxy, fpform and fpprec.
func (g *Graph) Set(opts Options) error { return g.Entity.Set(opts) }

// Limits returns the world rectangle as xmin, ymin, xmax, ymax.
func (g *Graph) Limits() [4]float64 { return rect(g.world.Floats("world_location")) }

// View returns the view rectangle as xmin, ymin, xmax, ymax.
func (g *Graph) View() [4]float64 { return rect(g.view.Floats("view_location")) }

func rect(fs []float64) [4]float64 {
	var r [4]float64
	copy(r[:], fs)
	return r
}

// SetLim changes the world rectangle. opts may contain xmin, ymin,
// xmax and ymax; missing bounds are unchanged.
func (g *Graph) SetLim(opts Options) error {
	r, err := bounds("Graph limits", g.Limits(), opts)
	if err != nil {
		return err
	}
	return g.world.Object.Set(map[string]interface{}{"world_location": r[:]})
}

// SetXLim sets the x range of the world.
func (g *Graph) SetXLim(min, max float64) error {
	return g.SetLim(Options{"xmin": min, "xmax": max})
}

// SetYLim sets the y range of the world.
func (g *Graph) SetYLim(min, max float64) error {
	return g.SetLim(Options{"ymin": min, "ymax": max})
}

// SetView places the graph on the page. opts may contain xmin, ymin,
// xmax and ymax; missing bounds are unchanged.
func (g *Graph) SetView(opts Options) error {
	r, err := bounds("Graph view", g.View(), opts)
	if err != nil {
		return err
	}
	logger.Logger.Debugw("set view", "graph", g.index, "view", r)
	return g.view.Object.Set(map[string]interface{}{"view_location": r[:]})
}

func bounds(kind string, r [4]float64, opts Options) ([4]float64, error) {
	if err := checkKeys(kind, limitKeys, opts); err != nil {
		return r, err
	}
	for i, kw := range limitKeys {
		v := opts[kw.key]
		if v == nil {
			continue
		}
		f, err := toFloat(v)
		if err != nil {
			return r, agr.Errorf(agr.ErrType, "%s %s: %v", kind, kw.key, err)
		}
		r[i] = f
	}
	return r, nil
}

func toFloat(v interface{}) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("want a number, got %v (%T)", v, v)
}

// SetTitle sets the title text, if s is not empty, and the title
// options font, fontsize and color.
func (g *Graph) SetTitle(s string, opts Options) error {
	return setText(g.title, "title", s, opts)
}

// Title returns the encoded title text.
func (g *Graph) Title() string { return g.title.Str("title_comment") }

// SetSubtitle is like SetTitle for the subtitle.
func (g *Graph) SetSubtitle(s string, opts Options) error {
	return setText(g.subtitle, "subtitle", s, opts)
}

// Subtitle returns the encoded subtitle text.
func (g *Graph) Subtitle() string { return g.subtitle.Str("subtitle_comment") }

func setText(e *Entity, key, s string, opts Options) error {
	o := make(Options, len(opts)+1)
	for k, v := range opts {
		o[k] = v
	}
	if s != "" {
		o[key] = s
	}
	return e.Set(o)
}

// Axis returns the named axis: x, y, altx or alty.
func (g *Graph) Axis(name string) (*Axis, error) {
	a, ok := g.axes[name]
	if !ok {
		return nil, agr.Errorf(agr.ErrLookup, "unknown axis %q (want one of %s)", name, strings.Join(axisNames, ", "))
	}
	return a, nil
}

// SetAxis applies axis options to the named axis.
func (g *Graph) SetAxis(name string, opts Options) error {
	a, err := g.Axis(name)
	if err != nil {
		return err
	}
	return a.Set(opts)
}

// X returns the x axis.
func (g *Graph) X() *Axis { return g.axes["x"] }

// Y returns the y axis.
func (g *Graph) Y() *Axis { return g.axes["y"] }

// SetAxes sets the scale and inversion of the x or y axes.
func (g *Graph) SetAxes(name string, opts Options) error {
	switch name {
	case "x":
		return g.xaxes.Set(opts)
	case "y":
		return g.yaxes.Set(opts)
	}
	return agr.Errorf(agr.ErrLookup, "unknown axes %q (want x or y)", name)
}

// SetXLabel sets the x axis label.
func (g *Graph) SetXLabel(s string, opts Options) error { return g.X().SetLabel(s, opts) }

// SetYLabel sets the y axis label.
func (g *Graph) SetYLabel(s string, opts Options) error { return g.Y().SetLabel(s, opts) }

// Legend returns the legend.
func (g *Graph) Legend() *Legend { return g.legend }

// SetLegend applies legend options. The loc option may be an explicit
// [x, y] location or a token such as "upper left", "lower right" or
// "middle center", which is resolved against the world rectangle if
// loctype is "world" and against the view otherwise.
func (g *Graph) SetLegend(opts Options) error {
	tok, ok := opts["loc"].(string)
	if !ok {
		return g.legend.Set(opts)
	}
	r := g.View()
	if lt, _ := opts["loctype"].(string); lt == "world" {
		r = g.Limits()
	}
	loc, err := legendLoc(tok, r)
	if err != nil {
		return err
	}
	o := make(Options, len(opts))
	for k, v := range opts {
		o[k] = v
	}
	o["loc"] = loc
	return g.legend.Set(o)
}

// legendLoc resolves a location token inside r. Horizontal tokens end
// the string and vertical tokens start it. "center" alone is the
// middle of r.
func legendLoc(tok string, r [4]float64) ([]float64, error) {
	xmin, ymin, xmax, ymax := r[0], r[1], r[2], r[3]
	if tok == "center" {
		tok = "middle center"
	}
	x, y := math.NaN(), math.NaN()
	switch {
	case strings.HasSuffix(tok, "left"):
		x = 0.8*xmin + 0.2*xmax
	case strings.HasSuffix(tok, "right"):
		x = 0.3*xmin + 0.7*xmax
	case strings.HasSuffix(tok, "center"):
		x = 0.6*xmin + 0.4*xmax
	}
	switch {
	case strings.HasPrefix(tok, "lower"), strings.HasPrefix(tok, "bottom"):
		y = 0.9*ymin + 0.1*ymax
	case strings.HasPrefix(tok, "upper"), strings.HasPrefix(tok, "top"):
		y = 0.1*ymin + 0.9*ymax
	case strings.HasPrefix(tok, "middle"):
		y = 0.5*ymin + 0.5*ymax
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return nil, agr.Errorf(agr.ErrConfig, "invalid legend location %q", tok)
	}
	return []float64{x, y}, nil
}

// SetLegendBox applies box options to the legend box.
func (g *Graph) SetLegendBox(opts Options) error { return g.legend.Box.Set(opts) }

// SetFrame applies frame options.
func (g *Graph) SetFrame(opts Options) error { return g.frame.Set(opts) }

// Drawn objects.

func (g *Graph) draw(kind string, s *agr.Schema, keys []keyword, def bool, attrs map[string]interface{}, opts Options) (*Drawing, error) {
	e, err := newEntity(kind, s, agr.NoAffix, keys, g.pal, opts)
	if err != nil {
		return nil, err
	}
	attrs[s.Marker()+"_comment"] = fmt.Sprintf("g%d", g.index)
	if err := e.Object.Set(attrs); err != nil {
		return nil, err
	}
	d := &Drawing{Entity: e, def: def}
	g.objects = append(g.objects, d)
	return d, nil
}

// Text draws s at xy. Options are loctype, color, just, charsize, rot
// and font.
func (g *Graph) Text(s string, xy [2]float64, opts Options) (*Drawing, error) {
	o := make(Options, len(opts)+2)
	for k, v := range opts {
		o[k] = v
	}
	o["s"], o["xy"] = s, xy[:]
	return g.draw("DrawString", drawStringSchema(), drawStringKeys, false, map[string]interface{}{}, o)
}

// Circle draws an ellipse centered at xy. If height is 0 it is chosen
// to make the ellipse round in the rectangle named by loctype, which
// defaults to world.
func (g *Graph) Circle(xy [2]float64, width, height float64, opts Options) (*Drawing, error) {
	lt := "world"
	if s, ok := opts["loctype"].(string); ok {
		lt = s
	}
	if height == 0 {
		r, err := g.extent(lt)
		if err != nil {
			return nil, err
		}
		height = width / (r[2] - r[0]) * (r[3] - r[1])
	}
	loc := []float64{xy[0] - width/2, xy[1] + height/2, xy[0] + width/2, xy[1] - height/2}
	return g.draw("DrawEllipse", drawEllipseSchema(), drawEllipseKeys, true,
		map[string]interface{}{"ellipse_location": loc}, opts)
}

func (g *Graph) extent(loctype string) ([4]float64, error) {
	switch loctype {
	case "world":
		return g.Limits(), nil
	case "view":
		return g.View(), nil
	}
	return [4]float64{}, agr.Errorf(agr.ErrLookup, "unknown location type %q (want world or view)", loctype)
}

// AxHLine draws a horizontal line at y. The xmin and xmax options
// give its ends, either as coordinates or as strings holding a
// percentage of the width of the rectangle named by loctype
// (default world). Missing ends span the whole width. Other options
// are those of AxLine.
func (g *Graph) AxHLine(y float64, opts Options) (*Drawing, error) {
	return g.axLine(y, "xmin", "xmax", 0, opts)
}

// AxVLine draws a vertical line at x. See AxHLine.
func (g *Graph) AxVLine(x float64, opts Options) (*Drawing, error) {
	return g.axLine(x, "ymin", "ymax", 1, opts)
}

func (g *Graph) axLine(at float64, lo, hi string, dim int, opts Options) (*Drawing, error) {
	o := Options{"loctype": "world"}
	for k, v := range opts {
		if k != lo && k != hi {
			o[k] = v
		}
	}
	lt, _ := o["loctype"].(string)
	r, err := g.extent(lt)
	if err != nil {
		return nil, err
	}
	start, end := r[dim], r[dim+2]
	pos := func(v interface{}, def float64) (float64, error) {
		switch v := v.(type) {
		case nil:
			return def, nil
		case string:
			pct, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0, agr.Errorf(agr.ErrType, "bad percentage %q", v)
			}
			return start + pct/100*(end-start), nil
		}
		return toFloat(v)
	}
	a, err := pos(opts[lo], start)
	if err != nil {
		return nil, agr.Errorf(agr.ErrType, "line option %s: %v", lo, err)
	}
	b, err := pos(opts[hi], end)
	if err != nil {
		return nil, agr.Errorf(agr.ErrType, "line option %s: %v", hi, err)
	}
	if dim == 0 {
		return g.AxLine([2]float64{a, at}, [2]float64{b, at}, o)
	}
	return g.AxLine([2]float64{at, a}, [2]float64{at, b}, o)
}

// AxLine draws a line from start to end. Options are loctype, color,
// ls, lw, arrow, at, length and layout.
func (g *Graph) AxLine(start, end [2]float64, opts Options) (*Drawing, error) {
	loc := []float64{start[0], start[1], end[0], end[1]}
	return g.draw("DrawLine", drawLineSchema(), drawLineKeys, true,
		map[string]interface{}{"line_location": loc}, opts)
}

// Arrow is AxLine with an arrow head at end unless the arrow option
// says otherwise.
func (g *Graph) Arrow(start, end [2]float64, opts Options) (*Drawing, error) {
	o := Options{"arrow": "end"}
	for k, v := range opts {
		o[k] = v
	}
	return g.AxLine(start, end, o)
}

// Data bounds. An empty graph spans [0, 1].

// XMin returns the smallest x of all datasets.
func (g *Graph) XMin() float64 { return g.bound(true, false) }

// XMax returns the largest x of all datasets.
func (g *Graph) XMax() float64 { return g.bound(true, true) }

// Min returns the smallest y of all datasets.
func (g *Graph) Min() float64 { return g.bound(false, false) }

// Max returns the largest y of all datasets.
func (g *Graph) Max() float64 { return g.bound(false, true) }

func (g *Graph) bound(x, max bool) float64 {
	def := 0.0
	if max {
		def = 1
	}
	v := math.NaN()
	for _, ds := range g.datasets {
		var lo, hi float64
		if x {
			lo, hi = ds.rec.XBounds()
		} else {
			lo, hi = ds.rec.YBounds()
		}
		b := lo
		if max {
			b = hi
		}
		switch {
		case math.IsNaN(b):
		case math.IsNaN(v), !max && b < v, max && b > v:
			v = b
		}
	}
	if math.IsNaN(v) {
		return def
	}
	return v
}

// TightGraph sets the world to the data bounds, each pushed outward by
// the fraction xscale-1 or yscale-1 of its magnitude, and sets the
// major tick spacing of each axis whose ticks were not set explicitly
// to a round step giving at most nxticks or nyticks ticks.
func (g *Graph) TightGraph(nxticks, nyticks int, xscale, yscale float64) error {
	xmin, xmax, ymin, ymax := g.XMin(), g.XMax(), g.Min(), g.Max()
	r := [4]float64{
		xmin - math.Abs(xmin)*(xscale-1),
		ymin - math.Abs(ymin)*(yscale-1),
		xmax + math.Abs(xmax)*(xscale-1),
		ymax + math.Abs(ymax)*(yscale-1),
	}
	if err := g.SetLim(Options{"xmin": r[0], "ymin": r[1], "xmax": r[2], "ymax": r[3]}); err != nil {
		return err
	}
	for i, ax := range []*Axis{g.X(), g.Y()} {
		if ax.Tick.majorSet {
			continue
		}
		n := []int{nxticks, nyticks}[i]
		step := majorStep(r[i], r[i+2], n)
		if err := ax.Tick.Object.Set(map[string]interface{}{"major": step}); err != nil {
			return err
		}
	}
	logger.Logger.Debugw("tight graph", "graph", g.index, "world", r)
	return nil
}

// majorStep returns a 1, 2 or 5 times a power of ten spacing that puts
// at most n ticks in [lo, hi]. If there is none it divides the range
// evenly.
func majorStep(lo, hi float64, n int) float64 {
	even := (hi - lo) / float64(n)
	if n < 1 || !(hi > lo) || math.IsInf(hi-lo, 0) {
		return even
	}
	step := func(level int) float64 {
		e := level / 3
		if level%3 < 0 {
			e--
		}
		m := []float64{1, 2, 5}[level-3*e]
		return m * math.Pow(10, float64(e))
	}
	count := func(level int) int {
		s := step(level)
		return int(math.Floor(hi/s) - math.Ceil(lo/s) + 1)
	}
	ticks := func(level int) []float64 {
		s := step(level)
		var ts []float64
		for t := math.Ceil(lo/s) * s; t <= hi; t += s {
			ts = append(ts, t)
		}
		return ts
	}
	guess := 3 * int(math.Floor(math.Log10(even)))
	o := scale.TickOptions{Max: n}
	level, ok := o.FindLevel(count, ticks, guess)
	if !ok {
		return even
	}
	return step(level)
}

// Export returns the graph lines: the graph attributes, the "with"
// line and the indented lines of every part and dataset.
func (g *Graph) Export() []string {
	lines := g.Object.Export()
	lines = append(lines, "with "+g.Prefix())
	parts := []agr.Exporter{
		g.world, g.stackWorld, g.znorm, g.view, g.title, g.subtitle,
		g.xaxes, g.yaxes,
	}
	for _, name := range axisNames {
		parts = append(parts, g.axes[name])
	}
	parts = append(parts, g.legend, g.frame)
	for _, ds := range g.datasets {
		parts = append(parts, ds)
	}
	return append(lines, agr.Prefixed("    ", parts...)...)
}

// exportData returns the data blocks of every dataset.
func (g *Graph) exportData(format string) []string {
	var lines []string
	for _, ds := range g.datasets {
		lines = append(lines, ds.exportData(g.index, format)...)
	}
	return lines
}
