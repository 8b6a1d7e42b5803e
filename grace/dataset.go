// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/data"
)

// A Dataset is one plotted series: its data record and the symbol,
// line, baseline, dropline, fill, annotation and error bar setup used
// to draw it.
type Dataset struct {
	*Entity
	index int
	rec   *data.Record

	Symbol     *Entity
	Line       *Entity
	BaseLine   *Entity
	DropLine   *Entity
	Fill       *Entity
	Annotation *Entity
	Errorbar   *Entity
}

// An alias maps a dataset option to an option of one of its parts.
type alias struct{ from, to string }

// part describes a sub-entity of a dataset and the dataset options
// routed to it.
type part struct {
	kind    string
	schema  func() *agr.Schema
	keys    []keyword
	aliases []alias
	field   func(ds *Dataset) **Entity
}

var parts = []part{
	{"Symbol", symbolSchema, symbolKeys, []alias{
		{"symbol", "st"}, {"ssize", "size"}, {"sc", "color"}, {"sp", "pattern"},
		{"sfc", "fc"}, {"sfp", "fp"}, {"slw", "lw"}, {"sls", "ls"},
		{"char", "char"}, {"charfont", "charfont"}, {"skip", "skip"},
	}, func(ds *Dataset) **Entity { return &ds.Symbol }},
	{"Line", lineSchema, lineKeys, []alias{
		{"line", "lt"}, {"lw", "width"}, {"lc", "color"}, {"ls", "style"}, {"lp", "pattern"},
	}, func(ds *Dataset) **Entity { return &ds.Line }},
	{"BaseLine", baselineSchema, baselineKeys, []alias{
		{"baseline", "switch"}, {"blt", "lt"},
	}, func(ds *Dataset) **Entity { return &ds.BaseLine }},
	{"DropLine", droplineSchema, droplineKeys, []alias{
		{"dropline", "switch"},
	}, func(ds *Dataset) **Entity { return &ds.DropLine }},
	{"Fill", fillSchema, fillKeys, []alias{
		{"ft", "ft"}, {"rule", "rule"}, {"fc", "color"}, {"fp", "pattern"},
	}, func(ds *Dataset) **Entity { return &ds.Fill }},
	{"Annotation", annotationSchema, annotationKeys, []alias{
		{"anno", "switch"}, {"at", "at"}, {"asize", "charsize"}, {"ac", "color"},
		{"rot", "rot"}, {"font", "font"}, {"af", "af"}, {"prec", "prec"},
		{"prepend", "prepend"}, {"append", "append"}, {"offset", "offset"},
	}, func(ds *Dataset) **Entity { return &ds.Annotation }},
	{"Errorbar", errorbarSchema, errorbarKeys, []alias{
		{"errorbar", "switch"}, {"ebpos", "position"}, {"ebc", "color"}, {"ebp", "pattern"},
		{"ebsize", "size"}, {"eblw", "lw"}, {"ebls", "ls"}, {"ebrlw", "rlw"},
		{"ebrls", "rls"}, {"ebrc", "rc"}, {"ebrcl", "rcl"},
	}, func(ds *Dataset) **Entity { return &ds.Errorbar }},
}

// cascade lists the color options that default to the "color" option.
var cascade = []string{"sc", "sfc", "lc", "fc", "ac", "ebc"}

// datasetOptions returns every option a dataset accepts, sorted.
func datasetOptions() []string {
	keys := []string{"color", "datatype"}
	keys = append(keys, data.ExtraNames...)
	for _, kw := range datasetKeys {
		keys = append(keys, kw.key)
	}
	for _, p := range parts {
		for _, a := range p.aliases {
			keys = append(keys, a.from)
		}
	}
	sort.Strings(keys)
	return keys
}

// routed is a dataset option set divided among its parts.
type routed struct {
	own      Options
	parts    []Options
	datatype string
	extras   map[string]interface{}
}

func route(opts Options) (*routed, error) {
	valid := datasetOptions()
	var unknown []string
	for k := range opts {
		if i := sort.SearchStrings(valid, k); i == len(valid) || valid[i] != k {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.WithHint(
			agr.Errorf(agr.ErrConfig, "Dataset: unknown option(s) %s", strings.Join(unknown, ", ")),
			"valid options: "+strings.Join(valid, ", "))
	}

	if c := opts["color"]; c != nil {
		o := make(Options, len(opts)+len(cascade))
		for k, v := range opts {
			o[k] = v
		}
		for _, k := range cascade {
			if o[k] == nil {
				o[k] = c
			}
		}
		opts = o
	}

	r := &routed{own: Options{}, parts: make([]Options, len(parts)), extras: map[string]interface{}{}}
	for _, kw := range datasetKeys {
		if v, ok := opts[kw.key]; ok {
			r.own[kw.key] = v
		}
	}
	for i, p := range parts {
		r.parts[i] = Options{}
		for _, a := range p.aliases {
			if v, ok := opts[a.from]; ok {
				r.parts[i][a.to] = v
			}
		}
	}
	if dt := opts["datatype"]; dt != nil {
		s, ok := dt.(string)
		if !ok {
			return nil, agr.Errorf(agr.ErrType, "Dataset option datatype: want a string, got %T", dt)
		}
		r.datatype = s
	}
	for _, e := range data.ExtraNames {
		if v := opts[e]; v != nil {
			r.extras[e] = v
		}
	}
	return r, nil
}

// newDataset builds dataset index of a graph from x, y and options.
func newDataset(index int, x, y interface{}, pal *agr.Palette, opts Options) (*Dataset, error) {
	r, err := route(opts)
	if err != nil {
		return nil, err
	}
	rec, err := data.New(x, y, r.datatype, r.extras)
	if err != nil {
		return nil, err
	}
	e, err := newEntity("Dataset", datasetSchema(), agr.Index(index), datasetKeys, pal, r.own)
	if err != nil {
		return nil, err
	}
	if err := e.Object.Set(map[string]interface{}{"type": rec.Datatype().Name}); err != nil {
		return nil, err
	}
	ds := &Dataset{Entity: e, index: index, rec: rec}
	for i, p := range parts {
		pe, err := newEntity(p.kind, p.schema(), agr.NoAffix, p.keys, pal, r.parts[i])
		if err != nil {
			return nil, err
		}
		*p.field(ds) = pe
	}
	return ds, nil
}

// Index returns the dataset number within its graph.
func (ds *Dataset) Index() int { return ds.index }

// Record returns the dataset's data.
func (ds *Dataset) Record() *data.Record { return ds.rec }

// Label returns the encoded legend text.
func (ds *Dataset) Label() string { return ds.Str("legend") }

// Set applies dataset options, routing each to the part it belongs
// to. The data options datatype and the extra columns cannot be
// changed after construction.
func (ds *Dataset) Set(opts Options) error {
	r, err := route(opts)
	if err != nil {
		return err
	}
	if r.datatype != "" || len(r.extras) > 0 {
		return agr.Errorf(agr.ErrConfig, "Dataset: data options cannot be changed after construction")
	}
	// Translate every part first so a bad option changes nothing.
	own, err := translate("Dataset", datasetKeys, ds.pal, r.own)
	if err != nil {
		return err
	}
	overs := make([]map[string]interface{}, len(parts))
	for i, p := range parts {
		e := *p.field(ds)
		if overs[i], err = translate(p.kind, p.keys, ds.pal, r.parts[i]); err != nil {
			return err
		}
		if err := e.Check(overs[i]); err != nil {
			return err
		}
	}
	if err := ds.Object.Set(own); err != nil {
		return err
	}
	for i, p := range parts {
		if err := (*p.field(ds)).Object.Set(overs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Export returns the dataset attribute lines followed by those of
// each part.
func (ds *Dataset) Export() []string {
	return agr.Nest(ds.Object, ds.Symbol, ds.Line, ds.BaseLine, ds.DropLine, ds.Fill, ds.Annotation, ds.Errorbar)
}

// exportData returns the data block of the dataset in graph ig.
func (ds *Dataset) exportData(ig int, format string) []string {
	lines := []string{
		fmt.Sprintf("@target G%d.S%d", ig, ds.index),
		"@type " + ds.rec.Datatype().Name,
	}
	// A single format never fails.
	rows, _ := ds.rec.Export(data.Options{Format: format})
	lines = append(lines, rows...)
	return append(lines, "&")
}
