// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data holds the numeric columns of one plotted series.
//
// A Record has x and y columns plus the extra columns required by its
// datatype, such as "dy" for an xydy series with symmetric y error
// bars. Columns are stored in a go-gg table.
package data

import (
	"sort"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/internal/logger"
)

// A Datatype is a Grace set type and the extra columns it carries
// after x and y.
type Datatype struct {
	Name   string
	Extras []string
}

// Datatypes lists the supported set types in declaration order.
var Datatypes = []Datatype{
	{"xy", nil},
	{"bar", nil},
	{"xysize", []string{"size"}},
	{"xydx", []string{"dx"}},
	{"xydy", []string{"dy"}},
	{"bardy", []string{"dy"}},
	{"xydxdx", []string{"dx", "dxl"}},
	{"xydydy", []string{"dy", "dyl"}},
	{"bardydy", []string{"dy", "dyl"}},
	{"xydxdy", []string{"dx", "dy"}},
	{"xydxdxdydy", []string{"dx", "dxl", "dy", "dyl"}},
}

// ExtraNames are the recognized extra column names.
var ExtraNames = []string{"dx", "dxl", "dy", "dyl", "size"}

// LookupDatatype returns the named datatype.
func LookupDatatype(name string) (Datatype, error) {
	for _, d := range Datatypes {
		if d.Name == name {
			return d, nil
		}
	}
	names := make([]string, len(Datatypes))
	for i, d := range Datatypes {
		names[i] = d.Name
	}
	return Datatype{}, agr.Errorf(agr.ErrLookup, "unknown datatype %q (want one of %s)", name, strings.Join(names, ", "))
}

// Columns returns the names of all columns of d, starting with x and y.
func (d Datatype) Columns() []string {
	return append([]string{"x", "y"}, d.Extras...)
}

// infer returns the first xy datatype whose extra columns are exactly
// the supplied ones.
func infer(supplied []string) (Datatype, error) {
	for _, d := range Datatypes {
		if !strings.HasPrefix(d.Name, "xy") || len(d.Extras) != len(supplied) {
			continue
		}
		if hasAll(supplied, d.Extras) {
			return d, nil
		}
	}
	return Datatype{}, agr.Errorf(agr.ErrConfig, "cannot determine datatype from extra columns %v", supplied)
}

func hasAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			found = found || h == w
		}
		if !found {
			return false
		}
	}
	return true
}

// A Record is an immutable set of columns for one series.
type Record struct {
	typ Datatype
	tab *table.Table
}

// New returns a Record. x, y and the values of extras may be slices of
// any numeric type and must all have the same length. Nil extras are
// treated as absent.
//
// If datatype is empty it is inferred from the supplied extras:
// none gives "xy", dy gives "xydy", dx and dy give "xydxdy", and so
// on. Otherwise every extra column datatype needs must be supplied;
// other supplied extras are dropped.
func New(x, y interface{}, datatype string, extras map[string]interface{}) (*Record, error) {
	xs, err := floats("x", x)
	if err != nil {
		return nil, err
	}
	ys, err := floats("y", y)
	if err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, agr.Errorf(agr.ErrType, "x and y lengths differ: %d != %d", len(xs), len(ys))
	}

	var supplied []string
	for name, v := range extras {
		if !isExtra(name) {
			return nil, agr.Errorf(agr.ErrConfig, "unknown extra column %q (want one of %s)", name, strings.Join(ExtraNames, ", "))
		}
		if v != nil {
			supplied = append(supplied, name)
		}
	}
	sort.Strings(supplied)

	var typ Datatype
	if datatype == "" {
		typ, err = infer(supplied)
		if err != nil {
			return nil, err
		}
		logger.Logger.Debugw("inferred datatype", "datatype", typ.Name, "extras", supplied)
	} else {
		typ, err = LookupDatatype(datatype)
		if err != nil {
			return nil, err
		}
		var missing []string
		for _, e := range typ.Extras {
			if extras[e] == nil {
				missing = append(missing, e)
			}
		}
		if len(missing) > 0 {
			return nil, agr.Errorf(agr.ErrConfig, "datatype %s is inconsistent with the supplied columns: missing %s", typ.Name, strings.Join(missing, ", "))
		}
	}

	b := new(table.Builder).Add("x", xs).Add("y", ys)
	for _, e := range typ.Extras {
		col, err := floats(e, extras[e])
		if err != nil {
			return nil, err
		}
		if len(col) != len(xs) {
			return nil, agr.Errorf(agr.ErrType, "column %s has length %d, want %d", e, len(col), len(xs))
		}
		b.Add(e, col)
	}
	return &Record{typ: typ, tab: b.Done()}, nil
}

func isExtra(name string) bool {
	for _, n := range ExtraNames {
		if n == name {
			return true
		}
	}
	return false
}

// floats converts a numeric slice to []float64.
func floats(name string, v interface{}) (fs []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = agr.Errorf(agr.ErrType, "column %s: %v", name, r)
		}
	}()
	slice.Convert(&fs, v)
	return append([]float64(nil), fs...), nil
}

// Datatype returns the record's datatype.
func (r *Record) Datatype() Datatype { return r.typ }

// Len returns the number of points.
func (r *Record) Len() int { return r.tab.Len() }

// Table returns the underlying table. Its columns are those of
// r.Datatype().Columns().
func (r *Record) Table() *table.Table { return r.tab }

// Column returns the named column, or nil if r has no such column.
func (r *Record) Column(name string) []float64 {
	c, _ := r.tab.Column(name).([]float64)
	return c
}

// X returns the x column.
func (r *Record) X() []float64 { return r.Column("x") }

// Y returns the y column.
func (r *Record) Y() []float64 { return r.Column("y") }

// XBounds returns the minimum and maximum of x. They are NaN if r is
// empty.
func (r *Record) XBounds() (min, max float64) {
	return stats.Bounds(r.X())
}

// YBounds returns the minimum and maximum of y.
func (r *Record) YBounds() (min, max float64) {
	return stats.Bounds(r.Y())
}
