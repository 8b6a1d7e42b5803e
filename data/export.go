// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"strings"

	"github.com/aclements/go-grace/agr"
)

// DefaultFormat is the per-value format used when Options names none.
const DefaultFormat = "%f"

// Options controls the text form of exported columns.
type Options struct {
	// Format is applied to every column. If empty, DefaultFormat
	// is used.
	Format string

	// Formats, if non-nil, gives one format per exported column and
	// takes precedence over Format. Formats[i] always applies to
	// column i, whether or not the output is transposed.
	Formats []string

	// Transpose emits one line per column instead of one line per
	// point.
	Transpose bool

	// Sep separates values on a line. If empty, a single space is
	// used.
	Sep string
}

func (o Options) formats(n int) ([]string, error) {
	if o.Formats != nil {
		if len(o.Formats) != n {
			return nil, agr.Errorf(agr.ErrType, "got %d formats for %d columns", len(o.Formats), n)
		}
		return o.Formats, nil
	}
	f := o.Format
	if f == "" {
		f = DefaultFormat
	}
	fs := make([]string, n)
	for i := range fs {
		fs[i] = f
	}
	return fs, nil
}

// Export returns every column of r as text.
func (r *Record) Export(o Options) ([]string, error) {
	return r.export(r.typ.Columns(), o)
}

// ExportData returns the x and y columns as text.
func (r *Record) ExportData(o Options) ([]string, error) {
	return r.export([]string{"x", "y"}, o)
}

// ExportExtra returns the extra columns as text. It returns no lines
// if the datatype has no extra columns.
func (r *Record) ExportExtra(o Options) ([]string, error) {
	return r.export(r.typ.Extras, o)
}

func (r *Record) export(names []string, o Options) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	fmts, err := o.formats(len(names))
	if err != nil {
		return nil, err
	}
	sep := o.Sep
	if sep == "" {
		sep = " "
	}
	cols := make([][]float64, len(names))
	for i, n := range names {
		cols[i] = r.Column(n)
	}

	var lines []string
	if o.Transpose {
		for i, col := range cols {
			vals := make([]string, len(col))
			for j, v := range col {
				vals[j] = fmt.Sprintf(fmts[i], v)
			}
			lines = append(lines, strings.Join(vals, sep))
		}
		return lines, nil
	}
	vals := make([]string, len(cols))
	for j := 0; j < r.Len(); j++ {
		for i, col := range cols {
			vals[i] = fmt.Sprintf(fmts[i], col[j])
		}
		lines = append(lines, strings.Join(vals, sep))
	}
	return lines, nil
}
