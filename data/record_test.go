// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-grace/agr"
)

func TestInfer(t *testing.T) {
	x := []float64{1, 2, 3}
	e := []float64{0.1, 0.2, 0.3}
	for _, test := range []struct {
		extras map[string]interface{}
		want   string
	}{
		{nil, "xy"},
		{map[string]interface{}{"dy": e}, "xydy"},
		{map[string]interface{}{"dx": e}, "xydx"},
		{map[string]interface{}{"size": e}, "xysize"},
		{map[string]interface{}{"dx": e, "dxl": e}, "xydxdx"},
		{map[string]interface{}{"dy": e, "dyl": e}, "xydydy"},
		{map[string]interface{}{"dx": e, "dy": e}, "xydxdy"},
		{map[string]interface{}{"dx": e, "dxl": e, "dy": e, "dyl": e}, "xydxdxdydy"},
		{map[string]interface{}{"dy": e, "dx": nil}, "xydy"},
	} {
		r, err := New(x, x, "", test.extras)
		require.NoError(t, err, "extras %v", test.extras)
		assert.Equal(t, test.want, r.Datatype().Name, "extras %v", test.extras)
		assert.Equal(t, r.Datatype().Columns(), r.Table().Columns())
	}

	_, err := New(x, x, "", map[string]interface{}{"dx": e, "size": e})
	assert.True(t, errors.Is(err, agr.ErrConfig), "got %v", err)
}

func TestNewErrors(t *testing.T) {
	x := []int{1, 2, 3}
	for _, test := range []struct {
		name     string
		y        interface{}
		datatype string
		extras   map[string]interface{}
		class    error
		msg      string
	}{
		{"length", []int{1, 2}, "", nil, agr.ErrType, "lengths differ"},
		{"extra length", x, "xydy", map[string]interface{}{"dy": []int{1}}, agr.ErrType, "dy"},
		{"unknown type", x, "polar", nil, agr.ErrLookup, "polar"},
		{"missing extra", x, "xydxdy", map[string]interface{}{"dx": x}, agr.ErrConfig, "dy"},
		{"unknown extra", x, "", map[string]interface{}{"dz": x}, agr.ErrConfig, "dz"},
		{"not numeric", []string{"a", "b", "c"}, "", nil, agr.ErrType, "column y"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(x, test.y, test.datatype, test.extras)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.class), "got %v", err)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
}

func TestExplicitDatatype(t *testing.T) {
	x := []float64{1, 2}
	r, err := New(x, x, "bardy", map[string]interface{}{"dy": []float64{3, 4}, "dx": []float64{5, 6}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "dy"}, r.Table().Columns())
	assert.Nil(t, r.Column("dx"))
}

func TestExport(t *testing.T) {
	r, err := New([]int{1, 2, 3}, []float64{4, 5, 6}, "", map[string]interface{}{"dy": []float64{0.5, 0.25, 0.125}})
	require.NoError(t, err)

	for _, test := range []struct {
		name string
		fn   func(Options) ([]string, error)
		opts Options
		want []string
	}{
		{"default", r.Export, Options{},
			[]string{"1.000000 4.000000 0.500000", "2.000000 5.000000 0.250000", "3.000000 6.000000 0.125000"}},
		{"format", r.ExportData, Options{Format: "%5.1f"},
			[]string{"  1.0   4.0", "  2.0   5.0", "  3.0   6.0"}},
		{"transpose", r.ExportData, Options{Format: "%g", Transpose: true},
			[]string{"1 2 3", "4 5 6"}},
		{"per column", r.Export, Options{Formats: []string{"%.0f", "%.1f", "%.3f"}, Sep: ","},
			[]string{"1,4.0,0.500", "2,5.0,0.250", "3,6.0,0.125"}},
		{"per column transposed", r.Export, Options{Formats: []string{"%.0f", "%.1f", "%.3f"}, Transpose: true},
			[]string{"1 2 3", "4.0 5.0 6.0", "0.500 0.250 0.125"}},
		{"extra", r.ExportExtra, Options{Format: "%g"},
			[]string{"0.5", "0.25", "0.125"}},
	} {
		got, err := test.fn(test.opts)
		if assert.NoError(t, err, test.name) {
			assert.Equal(t, test.want, got, test.name)
		}
	}

	_, err = r.Export(Options{Formats: []string{"%f", "%f"}})
	assert.True(t, errors.Is(err, agr.ErrType))

	xy, err := New([]int{1}, []int{2}, "", nil)
	require.NoError(t, err)
	lines, err := xy.ExportExtra(Options{})
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBounds(t *testing.T) {
	r, err := New([]float64{3, -1, 2}, []float64{0, 10, 5}, "", nil)
	require.NoError(t, err)
	lo, hi := r.XBounds()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 3.0, hi)
	lo, hi = r.YBounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)

	empty, err := New([]float64{}, []float64{}, "", nil)
	require.NoError(t, err)
	lo, _ = empty.XBounds()
	assert.True(t, math.IsNaN(lo))
}

func TestRecordCopiesInput(t *testing.T) {
	x := []float64{1, 2}
	r, err := New(x, x, "", nil)
	require.NoError(t, err)
	x[0] = 100
	assert.Equal(t, []float64{1, 2}, r.X())
}

func TestReadTable(t *testing.T) {
	in := `# two columns
0 3
1   2

2	1e0
`
	tab, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"c0", "c1"}, tab.Columns())
	assert.Equal(t, []float64{0, 1, 2}, tab.MustColumn("c0"))
	assert.Equal(t, []float64{3, 2, 1}, tab.MustColumn("c1"))

	for _, bad := range []string{"1 2\n3\n", "1 x\n"} {
		_, err := ReadTable(strings.NewReader(bad))
		assert.True(t, errors.Is(err, agr.ErrMalformed), "input %q: %v", bad, err)
	}

	tab, err = ReadTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, tab.Len())
}
