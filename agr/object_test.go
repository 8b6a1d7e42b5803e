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

func legendSchema() *Schema {
	return NewSchema("legend",
		SwitchAttr("legend_switch", SwitchOn),
		LocationAttr("legend_location", []float64{0.75, 0.50}, "%6f , %6f"),
		StringAttr("loctype", "view", ""),
		IntAttr("font", 0, ""),
		StringAttr("invert", "false", ""),
		FloatAttr("char_size", 1.2, "%8f"),
	)
}

func TestExportDefaults(t *testing.T) {
	o, err := New(legendSchema(), NoAffix, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"legend on",
		"legend 0.750000 , 0.500000",
		"legend loctype view",
		"legend font 0",
		"legend invert false",
		"legend char size 1.200000",
	}, o.Export())
}

func TestExportAffix(t *testing.T) {
	tick := NewSchema("tick",
		SwitchAttr("tick_switch", SwitchOn),
		PositionAttr("tick_position", PositionIn),
		SwitchAttr("major_grid_switch", SwitchOff),
		PositionAttr("place_position", PositionBoth),
		FloatAttr("major", 1, "%f"),
	)
	o, err := New(tick, Prefix("alt"), map[string]interface{}{"major_grid_switch": true})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"alttick on",
		"alttick in",
		"alttick major grid on",
		"alttick place both",
		"alttick major 1.000000",
	}, o.Export())

	ds := NewSchema("s",
		StringAttr("hidden", "false", ""),
		StringAttr("legend", "", `"%s"`),
	)
	o, err = New(ds, Index(3), map[string]interface{}{"legend": "sin(x)"})
	require.NoError(t, err)
	assert.Equal(t, "s3 hidden false\ns3 legend \"sin(x)\"", o.String())

	sw := NewSchema("stack_world", LocationAttr("stack_world_location", []int{0, 1, 0, 1}, ""))
	o, err = New(sw, NoAffix, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"stack world 0, 1, 0, 1"}, o.Export())
}

func TestExportPercentAndComment(t *testing.T) {
	page := NewSchema("page",
		ListAttr("size", []int{792, 612}, "%d, %d"),
		Attr{Name: "scroll", Kind: Scalar, Type: Float, Default: 0.05, Format: Percent},
	)
	o, err := New(page, NoAffix, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"page size 792, 612", "page scroll 5%"}, o.Export())

	sym := NewSchema("symbol", CommentAttr("symbol_comment", 1, "%d"), FloatAttr("size", 1, ""))
	o, err = New(sym, NoAffix, map[string]interface{}{"symbol_comment": 9})
	require.NoError(t, err)
	assert.Equal(t, []string{"symbol 9", "symbol size 1.000000"}, o.Export())
}

func TestOverrides(t *testing.T) {
	o, err := New(legendSchema(), NoAffix, map[string]interface{}{
		"legend_switch": SwitchOff,
		"font":          nil, // keeps the default
		"char_size":     0,   // explicit zero applies
		"unknown":       "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, SwitchOff, o.Int("legend_switch"))
	assert.Equal(t, 0, o.Int("font"))
	assert.Equal(t, 0.0, o.Float("char_size"))

	require.NoError(t, o.Set(map[string]interface{}{"legend_location": []int{1, 2}, "invert": true}))
	assert.Equal(t, []float64{1, 2}, o.Floats("legend_location"))
	assert.Equal(t, "true", o.Str("invert"))
	assert.Contains(t, o.Export(), "legend 1.000000 , 2.000000")
}

func TestDefaultsNotShared(t *testing.T) {
	s := legendSchema()
	a, err := New(s, NoAffix, nil)
	require.NoError(t, err)
	b, err := New(s, NoAffix, nil)
	require.NoError(t, err)
	require.NoError(t, a.Set(map[string]interface{}{"legend_location": []float64{0.1, 0.2}}))
	assert.Equal(t, []float64{0.75, 0.50}, b.Floats("legend_location"))
	loc := a.Get("legend_location").([]float64)
	loc[0] = 99
	assert.Equal(t, 0.1, a.Floats("legend_location")[0])
}

func TestCoerceErrors(t *testing.T) {
	for _, test := range []struct {
		name  string
		attr  string
		val   interface{}
		class error
	}{
		{"bad int", "font", "bold", ErrType},
		{"list as scalar", "char_size", []float64{1}, ErrType},
		{"wrong arity", "legend_location", []float64{1, 2, 3}, ErrType},
		{"scalar as list", "legend_location", 1.0, ErrType},
		{"bad switch", "legend_switch", "sometimes", ErrLookup},
		{"bad switch code", "legend_switch", 7, ErrLookup},
	} {
		t.Run(test.name, func(t *testing.T) {
			o, err := New(legendSchema(), NoAffix, nil)
			require.NoError(t, err)
			before := o.String()
			err = o.Set(map[string]interface{}{test.attr: test.val, "loctype": "world"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.class), "got %v", err)
			assert.Contains(t, err.Error(), test.attr)
			assert.Equal(t, before, o.String(), "failed Set modified object")
		})
	}
}

func TestSchemaAssertions(t *testing.T) {
	assert.Panics(t, func() { NewSchema("legend", SwitchAttr("legend_on", 1)) })
	assert.Panics(t, func() { NewSchema("legend", LocationAttr("legend_where", []float64{0, 0}, "")) })
	assert.Panics(t, func() { NewSchema("x", IntAttr("a", 0, ""), IntAttr("a", 1, "")) })
	assert.Panics(t, func() { NewSchema("x", ListAttr("a", []int{}, "")) })
	assert.Panics(t, func() { NewSchema("x", IntAttr("a", 0, ""), attr("b", Scalar, []int{1}, "")) })
	assert.NotPanics(t, func() { NewSchema("r", SwitchAttr("r_switch", 0)) })
}

func TestNest(t *testing.T) {
	box, err := New(NewSchema("box", IntAttr("color", 1, ""), IntAttr("fill_color", 0, "")), NoAffix, nil)
	require.NoError(t, err)
	axis, err := New(NewSchema("axis", SwitchAttr("axis_switch", SwitchOn)), Prefix("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"xaxis on",
		"xaxis box color 1",
		"xaxis box fill color 0",
	}, Nest(axis, box))
}
