// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agr

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteExport(t *testing.T) {
	lines := NewPalette().Export()
	require.Len(t, lines, 16)
	assert.Equal(t, []string{
		`map color 0 to (255, 255, 255), "white"`,
		`map color 1 to (0, 0, 0), "black"`,
		`map color 2 to (255, 0, 0), "red"`,
	}, lines[:3])
	assert.Equal(t, `map color 15 to (0, 139, 0), "green4"`, lines[15])
}

func TestPaletteCode(t *testing.T) {
	p := NewPalette()
	for _, test := range []struct {
		in   interface{}
		want int
	}{
		{"white", 0}, {"k", 1}, {"Red", 2}, {"gray", 7}, {"e", 7}, {"green4", 15}, {4, 4},
	} {
		got, err := p.Code(test.in)
		require.NoError(t, err, "Code(%v)", test.in)
		assert.Equal(t, test.want, got, "Code(%v)", test.in)
	}

	_, err := p.Code("chartreuse")
	assert.True(t, errors.Is(err, ErrLookup))
	assert.Contains(t, err.Error(), "chartreuse")
	_, err = p.Code(16)
	assert.True(t, errors.Is(err, ErrLookup))
	_, err = p.Code(1.5)
	assert.True(t, errors.Is(err, ErrType))
}

func TestPaletteAdd(t *testing.T) {
	p := NewPalette()
	i, err := p.Add(0, 0, 128, "navy")
	require.NoError(t, err)
	assert.Equal(t, 16, i)
	got, err := p.Code("navy")
	require.NoError(t, err)
	assert.Equal(t, 16, got)

	i, err = p.Add(1, 2, 3, "")
	require.NoError(t, err)
	name, err := p.Name(i)
	require.NoError(t, err)
	assert.Equal(t, "color17", name)
	rgb, err := p.RGB(i)
	require.NoError(t, err)
	assert.Equal(t, RGB{1, 2, 3}, rgb)

	_, err = p.Add(0, 0, 0, "navy")
	assert.True(t, errors.Is(err, ErrConfig))
	_, err = p.Add(256, 0, 0, "bright")
	assert.True(t, errors.Is(err, ErrConfig))
	// Aliases resolve before palette names, so they cannot be used.
	for _, name := range []string{"r", "K", "gray"} {
		_, err = p.Add(1, 1, 1, name)
		assert.True(t, errors.Is(err, ErrConfig), "Add(%q): %v", name, err)
	}
	_, err = p.Add(1, 1, 1, `my "blue"`)
	assert.True(t, errors.Is(err, ErrConfig))
	assert.Equal(t, 18, p.Len())

	// Palettes are independent.
	assert.False(t, NewPalette().Has("navy"))
}

func TestFontMapExport(t *testing.T) {
	lines := FontMap{}.Export()
	require.Len(t, lines, 14)
	assert.Equal(t, `map font 0 to "Times-Roman", "Times-Roman"`, lines[0])
	assert.Equal(t, `map font 13 to "ZapfDingbats", "ZapfDingbats"`, lines[13])
}

func TestConstantMap(t *testing.T) {
	for _, test := range []struct {
		m    *ConstantMap
		in   interface{}
		want int
	}{
		{LineStyle, "dashed", 3},
		{LineStyle, "--", 3},
		{LineStyle, 7, 7},
		{SymbolType, "o", 1},
		{SymbolType, "Star", 10},
		{Just, "cm", 14},
		{FrameType, "breakbot", 3},
		{Font, "helvetica-bold", 6},
	} {
		got, err := test.m.Code(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "%s %v", test.m.Kind(), test.in)
	}

	_, err := LineStyle.Code("wavy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookup))
	assert.Contains(t, err.Error(), "wavy")
	assert.Contains(t, err.Error(), "line style")

	name, ok := SymbolType.Name(9)
	assert.True(t, ok)
	assert.Equal(t, "cross", name)
	name, _ = Switch.Name(SwitchAuto)
	assert.Equal(t, "auto", name)
}
