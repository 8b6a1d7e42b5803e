// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import "github.com/aclements/go-grace/agr"

// Schemas of the Grace entities. Each function returns a new table.
// The keyword tables next to them map user options to attributes.

// Document level.

func regionSchema() *agr.Schema {
	return agr.NewSchema("r",
		agr.SwitchAttr("r_switch", agr.SwitchOff),
		agr.IntAttr("linestyle", 1, ""),
		agr.FloatAttr("linewidth", 1.0, "%.1f"),
		agr.StringAttr("type", "above", ""),
		agr.IntAttr("color", 1, ""),
		agr.ListAttr("line", []float64{0, 0, 0, 0}, ""),
	)
}

var regionKeys = []keyword{
	{"switch", "r_switch", nil},
	{"ls", "linestyle", lineStyle},
	{"lw", "linewidth", nil},
	{"rt", "type", nil},
	{"color", "color", color},
	{"line", "line", nil},
}

func pageSchema() *agr.Schema {
	return agr.NewSchema("page",
		agr.ListAttr("size", []int{792, 612}, "%d, %d"),
		agr.Attr{Name: "scroll", Kind: agr.Scalar, Type: agr.Float, Default: 0.05, Format: agr.Percent},
		agr.Attr{Name: "inout", Kind: agr.Scalar, Type: agr.Float, Default: 0.05, Format: agr.Percent},
		agr.SwitchAttr("background_fill_switch", agr.SwitchOn),
	)
}

var pageKeys = []keyword{
	{"size", "size", nil},
	{"scroll", "scroll", nil},
	{"inout", "inout", nil},
	{"bgfill", "background_fill_switch", nil},
}

func defaultSchema() *agr.Schema {
	return agr.NewSchema("default",
		agr.FloatAttr("linewidth", 1.5, "%.1f"),
		agr.IntAttr("linestyle", 1, ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("pattern", 1, ""),
		agr.IntAttr("font", 0, ""),
		agr.FloatAttr("char_size", 1.5, ""),
		agr.FloatAttr("symbol_size", 1.0, ""),
		agr.StringAttr("sformat", "%.8g", `"%s"`),
	)
}

var defaultKeys = []keyword{
	{"lw", "linewidth", nil},
	{"ls", "linestyle", lineStyle},
	{"color", "color", color},
	{"pattern", "pattern", pattern},
	{"font", "font", font},
	{"charsize", "char_size", nil},
	{"symbolsize", "symbol_size", nil},
	{"sformat", "sformat", nil},
}

// timeStampLayout is the layout of the timestamp text.
const timeStampLayout = "Mon Jan _2 15:04:05 2006"

func timeStampSchema(def string) *agr.Schema {
	return agr.NewSchema("timestamp",
		agr.SwitchAttr("timestamp_switch", agr.SwitchOff),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("rot", 0, ""),
		agr.IntAttr("font", 0, ""),
		agr.FloatAttr("char_size", 1.0, ""),
		agr.StringAttr("def", def, `"%s"`),
	)
}

var timeStampKeys = []keyword{
	{"switch", "timestamp_switch", nil},
	{"color", "color", color},
	{"rot", "rot", nil},
	{"font", "font", font},
	{"charsize", "char_size", nil},
	{"def", "def", nil},
}

// Graph level.

func graphSchema() *agr.Schema {
	return agr.NewSchema("g",
		agr.StringAttr("hidden", "false", ""),
		agr.StringAttr("type", "XY", ""),
		agr.StringAttr("stacked", "false", ""),
		agr.FloatAttr("bar_hgap", 0, ""),
		agr.SwitchAttr("fixedpoint_switch", agr.SwitchOff),
		agr.IntAttr("fixedpoint_type", 0, ""),
		agr.ListAttr("fixedpoint_xy", []float64{0, 0}, "%f, %f"),
		agr.ListAttr("fixedpoint_format", []string{"general", "general"}, "%s %s"),
		agr.ListAttr("fixedpoint_prec", []int{6, 6}, "%d, %d"),
	)
}

var graphKeys = []keyword{
	{"hidden", "hidden", nil},
	{"gt", "type", nil},
	{"stacked", "stacked", nil},
	{"barhgap", "bar_hgap", nil},
	{"fp", "fixedpoint_switch", nil},
	{"fpt", "fixedpoint_type", nil},
	{"fpxy", "fixedpoint_xy", nil},
	{"fpform", "fixedpoint_format", nil},
	{"fpprec", "fixedpoint_prec", nil},
}

func worldSchema() *agr.Schema {
	return agr.NewSchema("world", agr.LocationAttr("world_location", []float64{0, 0, 1, 1}, ""))
}

func stackWorldSchema() *agr.Schema {
	return agr.NewSchema("stack_world", agr.LocationAttr("stack_world_location", []float64{0, 1, 0, 1}, ""))
}

// canvas is the default view rectangle: xmin, ymin, xmax, ymax.
var canvas = [4]float64{0.15, 0.10, 1.20, 0.85}

func viewSchema() *agr.Schema {
	return agr.NewSchema("view", agr.LocationAttr("view_location", canvas[:], ""))
}

func znormSchema() *agr.Schema {
	return agr.NewSchema("znorm", agr.LocationAttr("znorm_location", []int{1}, ""))
}

func titleSchema(marker string) *agr.Schema {
	return agr.NewSchema(marker,
		agr.IntAttr("font", 0, ""),
		agr.FloatAttr("size", 1.5, ""),
		agr.IntAttr("color", 1, ""),
		agr.CommentAttr(marker+"_comment", "", `"%s"`),
	)
}

func titleKeys(marker string) []keyword {
	return []keyword{
		{marker, marker + "_comment", encoded},
		{"font", "font", font},
		{"fontsize", "size", nil},
		{"color", "color", color},
	}
}

func legendSchema() *agr.Schema {
	return agr.NewSchema("legend",
		agr.SwitchAttr("legend_switch", agr.SwitchOn),
		agr.LocationAttr("legend_location", []float64{0.75, 0.50}, "%f, %f"),
		agr.StringAttr("loctype", "view", ""),
		agr.IntAttr("font", 0, ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("length", 4, ""),
		agr.IntAttr("vgap", 1, ""),
		agr.IntAttr("hgap", 1, ""),
		agr.StringAttr("invert", "false", ""),
		agr.FloatAttr("char_size", 1.2, ""),
	)
}

var legendKeys = []keyword{
	{"switch", "legend_switch", nil},
	{"loc", "legend_location", nil},
	{"loctype", "loctype", nil},
	{"font", "font", font},
	{"color", "color", color},
	{"length", "length", nil},
	{"vgap", "vgap", nil},
	{"hgap", "hgap", nil},
	{"invert", "invert", nil},
	{"charsize", "char_size", nil},
}

func boxSchema() *agr.Schema {
	return agr.NewSchema("box",
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("pattern", 0, ""),
		agr.FloatAttr("linewidth", 1.0, "%.1f"),
		agr.IntAttr("linestyle", 1, ""),
		agr.IntAttr("fill_color", 1, ""),
		agr.IntAttr("fill_pattern", 0, ""),
	)
}

var boxKeys = []keyword{
	{"color", "color", color},
	{"pattern", "pattern", pattern},
	{"lw", "linewidth", nil},
	{"ls", "linestyle", lineStyle},
	{"fc", "fill_color", color},
	{"fp", "fill_pattern", pattern},
}

func frameSchema() *agr.Schema {
	return agr.NewSchema("frame",
		agr.IntAttr("type", 0, ""),
		agr.IntAttr("linestyle", 1, ""),
		agr.FloatAttr("linewidth", 1.0, "%.1f"),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("pattern", 1, ""),
		agr.IntAttr("background_color", 0, ""),
		agr.IntAttr("background_pattern", 0, ""),
	)
}

var frameKeys = []keyword{
	{"ft", "type", frameType},
	{"ls", "linestyle", lineStyle},
	{"lw", "linewidth", nil},
	{"color", "color", color},
	{"pattern", "pattern", pattern},
	{"bgc", "background_color", color},
	{"bgp", "background_pattern", pattern},
}

// Axis level.

func axesSchema(marker string) *agr.Schema {
	return agr.NewSchema(marker,
		agr.StringAttr("scale", "Normal", ""),
		agr.SwitchAttr("invert_switch", agr.SwitchOff),
	)
}

var axesKeys = []keyword{
	{"scale", "scale", nil},
	{"invert", "invert_switch", nil},
}

func axisSchema() *agr.Schema {
	return agr.NewSchema("axis",
		agr.SwitchAttr("axis_switch", agr.SwitchOn),
		agr.ListAttr("type", []string{"zero", "false"}, "%s %s"),
		agr.ListAttr("offset", []float64{0, 0}, "%f, %f"),
	)
}

var axisKeys = []keyword{
	{"switch", "axis_switch", nil},
	{"at", "type", nil},
	{"offset", "offset", nil},
}

func barSchema() *agr.Schema {
	return agr.NewSchema("bar",
		agr.SwitchAttr("bar_switch", agr.SwitchOn),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("linestyle", 1, ""),
		agr.FloatAttr("linewidth", 1.5, "%.1f"),
	)
}

var barKeys = []keyword{
	{"switch", "bar_switch", nil},
	{"color", "color", color},
	{"ls", "linestyle", lineStyle},
	{"lw", "linewidth", nil},
}

func labelSchema() *agr.Schema {
	return agr.NewSchema("label",
		agr.CommentAttr("label_comment", "", `"%s"`),
		agr.StringAttr("layout", "para", ""),
		agr.PositionAttr("place_position", agr.PositionAuto),
		agr.FloatAttr("char_size", 1.5, ""),
		agr.IntAttr("font", 0, ""),
		agr.IntAttr("color", 1, ""),
		agr.StringAttr("place", "normal", ""),
	)
}

var labelKeys = []keyword{
	{"label", "label_comment", encoded},
	{"layout", "layout", nil},
	{"position", "place_position", nil},
	{"charsize", "char_size", nil},
	{"font", "font", font},
	{"color", "color", color},
	{"place", "place", nil},
}

func tickSchema() *agr.Schema {
	return agr.NewSchema("tick",
		agr.SwitchAttr("tick_switch", agr.SwitchOn),
		agr.PositionAttr("tick_position", agr.PositionIn),
		agr.IntAttr("default", 6, ""),
		agr.FloatAttr("major", 1.0, "%g"),
		agr.FloatAttr("major_size", 1.0, ""),
		agr.IntAttr("major_color", 1, ""),
		agr.FloatAttr("major_linewidth", 1.5, "%.1f"),
		agr.IntAttr("major_linestyle", 1, ""),
		agr.SwitchAttr("major_grid_switch", agr.SwitchOff),
		agr.IntAttr("minor_color", 1, ""),
		agr.FloatAttr("minor_size", 0.5, ""),
		agr.IntAttr("minor_ticks", 1, ""),
		agr.SwitchAttr("minor_grid_switch", agr.SwitchOff),
		agr.FloatAttr("minor_linewidth", 1.5, "%.1f"),
		agr.IntAttr("minor_linestyle", 1, ""),
		agr.StringAttr("place_rounded", "true", ""),
		agr.PositionAttr("place_position", agr.PositionBoth),
		agr.StringAttr("spec_type", "none", ""),
	)
}

var tickKeys = []keyword{
	{"switch", "tick_switch", nil},
	{"position", "tick_position", nil},
	{"default", "default", nil},
	{"major", "major", nil},
	{"mjc", "major_color", color},
	{"mjs", "major_size", nil},
	{"mjlw", "major_linewidth", nil},
	{"mjls", "major_linestyle", lineStyle},
	{"mjg", "major_grid_switch", nil},
	{"mic", "minor_color", color},
	{"mis", "minor_size", nil},
	{"mit", "minor_ticks", nil},
	{"milw", "minor_linewidth", nil},
	{"mils", "minor_linestyle", lineStyle},
	{"mig", "minor_grid_switch", nil},
	{"rounded", "place_rounded", nil},
	{"place", "place_position", nil},
}

var majorKeys = []keyword{
	{"major", "major", nil},
	{"color", "major_color", color},
	{"size", "major_size", nil},
	{"lw", "major_linewidth", nil},
	{"ls", "major_linestyle", lineStyle},
	{"grid", "major_grid_switch", nil},
}

var placeKeys = []keyword{
	{"rounded", "place_rounded", nil},
	{"place", "place_position", nil},
}

var minorKeys = []keyword{
	{"ticks", "minor_ticks", nil},
	{"color", "minor_color", color},
	{"size", "minor_size", nil},
	{"lw", "minor_linewidth", nil},
	{"ls", "minor_linestyle", lineStyle},
	{"grid", "minor_grid_switch", nil},
}

func tickLabelSchema() *agr.Schema {
	return agr.NewSchema("ticklabel",
		agr.SwitchAttr("ticklabel_switch", agr.SwitchOn),
		agr.StringAttr("format", "general", ""),
		agr.StringAttr("formula", "", `"%s"`),
		agr.StringAttr("append", "", `"%s"`),
		agr.StringAttr("prepend", "", `"%s"`),
		agr.IntAttr("prec", 5, ""),
		agr.IntAttr("angle", 0, ""),
		agr.IntAttr("font", 0, ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("skip", 0, ""),
		agr.IntAttr("stagger", 0, ""),
		agr.StringAttr("place", "normal", ""),
		agr.SwitchAttr("offset_switch", agr.SwitchAuto),
		agr.ListAttr("offset", []float64{0.00, 0.01}, "%f, %f"),
		agr.SwitchAttr("start_type_switch", agr.SwitchAuto),
		agr.FloatAttr("start", 0, ""),
		agr.SwitchAttr("stop_type_switch", agr.SwitchAuto),
		agr.FloatAttr("stop", 0, ""),
		agr.FloatAttr("char_size", 1.5, ""),
	)
}

var tickLabelKeys = []keyword{
	{"switch", "ticklabel_switch", nil},
	{"tlf", "format", nil},
	{"formula", "formula", nil},
	{"append", "append", nil},
	{"prepend", "prepend", nil},
	{"prec", "prec", nil},
	{"angle", "angle", nil},
	{"font", "font", font},
	{"color", "color", color},
	{"skip", "skip", nil},
	{"stagger", "stagger", nil},
	{"place", "place", nil},
	{"offset_switch", "offset_switch", nil},
	{"offset", "offset", nil},
	{"start_switch", "start_type_switch", nil},
	{"start", "start", nil},
	{"stop_switch", "stop_type_switch", nil},
	{"stop", "stop", nil},
	{"charsize", "char_size", nil},
}

// Dataset level.

func datasetSchema() *agr.Schema {
	return agr.NewSchema("s",
		agr.StringAttr("hidden", "false", ""),
		agr.StringAttr("type", "xy", ""),
		agr.StringAttr("legend", "", `"%s"`),
		agr.StringAttr("comment", "", `"%s"`),
	)
}

var datasetKeys = []keyword{
	{"hidden", "hidden", nil},
	{"label", "legend", encoded},
	{"comment", "comment", encoded},
}

func symbolSchema() *agr.Schema {
	return agr.NewSchema("symbol",
		agr.CommentAttr("symbol_comment", 1, "%d"),
		agr.FloatAttr("size", 1.0, ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("pattern", 1, ""),
		agr.IntAttr("fill_color", 1, ""),
		agr.IntAttr("fill_pattern", 1, ""),
		agr.FloatAttr("linewidth", 1.0, "%.1f"),
		agr.IntAttr("linestyle", 1, ""),
		agr.IntAttr("char", 1, ""),
		agr.IntAttr("char_font", 0, ""),
		agr.IntAttr("skip", 0, ""),
	)
}

var symbolKeys = []keyword{
	{"st", "symbol_comment", symbolType},
	{"size", "size", nil},
	{"color", "color", color},
	{"pattern", "pattern", pattern},
	{"fc", "fill_color", color},
	{"fp", "fill_pattern", pattern},
	{"lw", "linewidth", nil},
	{"ls", "linestyle", lineStyle},
	{"char", "char", nil},
	{"charfont", "char_font", font},
	{"skip", "skip", nil},
}

func lineSchema() *agr.Schema {
	return agr.NewSchema("line",
		agr.IntAttr("type", 1, ""),
		agr.IntAttr("linestyle", 1, ""),
		agr.FloatAttr("linewidth", 1.5, "%.1f"),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("pattern", 1, ""),
	)
}

var lineKeys = []keyword{
	{"lt", "type", nil},
	{"style", "linestyle", lineStyle},
	{"width", "linewidth", nil},
	{"color", "color", color},
	{"pattern", "pattern", pattern},
}

func baselineSchema() *agr.Schema {
	return agr.NewSchema("baseline",
		agr.IntAttr("type", 0, ""),
		agr.SwitchAttr("baseline_switch", agr.SwitchOff),
	)
}

var baselineKeys = []keyword{
	{"lt", "type", nil},
	{"switch", "baseline_switch", nil},
}

func droplineSchema() *agr.Schema {
	return agr.NewSchema("dropline", agr.SwitchAttr("dropline_switch", agr.SwitchOff))
}

var droplineKeys = []keyword{
	{"switch", "dropline_switch", nil},
}

func fillSchema() *agr.Schema {
	return agr.NewSchema("fill",
		agr.IntAttr("type", 0, ""),
		agr.IntAttr("rule", 0, ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("pattern", 1, ""),
	)
}

var fillKeys = []keyword{
	{"ft", "type", fillType},
	{"rule", "rule", nil},
	{"color", "color", color},
	{"pattern", "pattern", pattern},
}

func annotationSchema() *agr.Schema {
	return agr.NewSchema("avalue",
		agr.SwitchAttr("avalue_switch", agr.SwitchOff),
		agr.IntAttr("type", 2, ""),
		agr.FloatAttr("char_size", 1.0, ""),
		agr.IntAttr("font", 0, ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("rot", 0, ""),
		agr.StringAttr("format", "general", ""),
		agr.IntAttr("prec", 3, ""),
		agr.StringAttr("append", "", `"%s"`),
		agr.StringAttr("prepend", "", `"%s"`),
		agr.ListAttr("offset", []float64{0, 0}, "%f, %f"),
	)
}

var annotationKeys = []keyword{
	{"switch", "avalue_switch", nil},
	{"at", "type", nil},
	{"charsize", "char_size", nil},
	{"font", "font", font},
	{"color", "color", color},
	{"rot", "rot", nil},
	{"af", "format", nil},
	{"prec", "prec", nil},
	{"append", "append", nil},
	{"prepend", "prepend", nil},
	{"offset", "offset", nil},
}

func errorbarSchema() *agr.Schema {
	return agr.NewSchema("errorbar",
		agr.SwitchAttr("errorbar_switch", agr.SwitchOn),
		agr.PositionAttr("place_position", agr.PositionBoth),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("pattern", 1, ""),
		agr.FloatAttr("size", 1.0, ""),
		agr.FloatAttr("linewidth", 1.5, "%.1f"),
		agr.IntAttr("linestyle", 1, ""),
		agr.FloatAttr("riser_linewidth", 1.5, "%.1f"),
		agr.IntAttr("riser_linestyle", 1, ""),
		agr.SwitchAttr("riser_clip_switch", agr.SwitchOff),
		agr.FloatAttr("riser_clip_length", 0.1, ""),
	)
}

var errorbarKeys = []keyword{
	{"switch", "errorbar_switch", nil},
	{"position", "place_position", nil},
	{"color", "color", color},
	{"pattern", "pattern", pattern},
	{"size", "size", nil},
	{"lw", "linewidth", nil},
	{"ls", "linestyle", lineStyle},
	{"rlw", "riser_linewidth", nil},
	{"rls", "riser_linestyle", lineStyle},
	{"rc", "riser_clip_switch", nil},
	{"rcl", "riser_clip_length", nil},
}

// Drawn objects. The comment attribute names the graph the object is
// attached to.

func drawStringSchema() *agr.Schema {
	return agr.NewSchema("string",
		agr.SwitchAttr("string_switch", agr.SwitchOn),
		agr.CommentAttr("string_comment", "g0", ""),
		agr.StringAttr("loctype", "view", ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("rot", 0, ""),
		agr.IntAttr("font", 0, ""),
		agr.IntAttr("just", 0, ""),
		agr.FloatAttr("char_size", 1.0, ""),
		agr.StringAttr("def", "", `"%s"`),
		agr.LocationAttr("string_location", []float64{0, 0}, ""),
	)
}

var drawStringKeys = []keyword{
	{"s", "def", encoded},
	{"xy", "string_location", nil},
	{"loctype", "loctype", nil},
	{"color", "color", color},
	{"just", "just", just},
	{"charsize", "char_size", nil},
	{"rot", "rot", nil},
	{"font", "font", font},
}

func drawLineSchema() *agr.Schema {
	return agr.NewSchema("line",
		agr.SwitchAttr("line_switch", agr.SwitchOn),
		agr.CommentAttr("line_comment", "g0", ""),
		agr.StringAttr("loctype", "view", ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("linestyle", 1, ""),
		agr.FloatAttr("linewidth", 1.5, "%.1f"),
		agr.IntAttr("arrow", 0, ""),
		agr.IntAttr("arrow_type", 0, ""),
		agr.FloatAttr("arrow_length", 1.0, ""),
		agr.ListAttr("arrow_layout", []float64{1, 1}, "%f, %f"),
		agr.LocationAttr("line_location", []float64{0, 0, 0, 0}, ""),
	)
}

var drawLineKeys = []keyword{
	{"loctype", "loctype", nil},
	{"color", "color", color},
	{"ls", "linestyle", lineStyle},
	{"lw", "linewidth", nil},
	{"arrow", "arrow", arrow},
	{"at", "arrow_type", arrowType},
	{"length", "arrow_length", nil},
	{"layout", "arrow_layout", nil},
}

func drawEllipseSchema() *agr.Schema {
	return agr.NewSchema("ellipse",
		agr.SwitchAttr("ellipse_switch", agr.SwitchOn),
		agr.CommentAttr("ellipse_comment", "g0", ""),
		agr.StringAttr("loctype", "world", ""),
		agr.IntAttr("color", 1, ""),
		agr.IntAttr("linestyle", 1, ""),
		agr.FloatAttr("linewidth", 1.5, "%.1f"),
		agr.IntAttr("fill_color", 1, ""),
		agr.IntAttr("fill_pattern", 0, ""),
		agr.LocationAttr("ellipse_location", []float64{0, 0, 0, 0}, ""),
	)
}

var drawEllipseKeys = []keyword{
	{"loctype", "loctype", nil},
	{"color", "color", color},
	{"ls", "linestyle", lineStyle},
	{"lw", "linewidth", nil},
	{"fc", "fill_color", color},
	{"fp", "fill_pattern", pattern},
}
