// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"fmt"

	"github.com/aclements/go-grace/agr"
)

// A Legend is a graph legend and its surrounding box.
type Legend struct {
	*Entity
	Box *Entity
}

func newLegend(pal *agr.Palette) *Legend {
	return &Legend{
		Entity: mustEntity("Legend", legendSchema(), agr.NoAffix, legendKeys, pal, nil),
		Box:    mustEntity("Box", boxSchema(), agr.NoAffix, boxKeys, pal, nil),
	}
}

// Export returns the legend lines followed by the "legend box" lines.
func (l *Legend) Export() []string {
	return agr.Nest(l.Object, l.Box)
}

// A Region is one of the five page regions. A region is linked to a
// graph.
type Region struct {
	*Entity
	link int
}

func newRegion(i int, pal *agr.Palette) *Region {
	return &Region{Entity: mustEntity("Region", regionSchema(), agr.Index(i), regionKeys, pal, nil)}
}

// Link attaches the region to graph ig.
func (r *Region) Link(ig int) { r.link = ig }

func (r *Region) Export() []string {
	link := fmt.Sprintf("link %s to g%d", r.Prefix(), r.link)
	return append([]string{link}, r.Object.Export()...)
}

// A Tick is the tick mark setup of an axis, including any custom
// tick positions.
type Tick struct {
	*Entity
	spec     []specTick
	majorSet bool
}

type specTick struct {
	loc   float64
	minor bool
	label string
}

func newTick(pal *agr.Palette) *Tick {
	return &Tick{Entity: mustEntity("Tick", tickSchema(), agr.NoAffix, tickKeys, pal, nil)}
}

// Set applies tick options.
func (t *Tick) Set(opts Options) error {
	if err := t.Entity.Set(opts); err != nil {
		return err
	}
	t.majorSet = t.majorSet || opts["major"] != nil
	return nil
}

// SetMajor sets the major tick spacing and appearance. It accepts
// major, color, size, lw, ls and grid.
func (t *Tick) SetMajor(opts Options) error {
	over, err := translate("Tick major", majorKeys, t.pal, opts)
	if err != nil {
		return err
	}
	if err := t.Object.Set(over); err != nil {
		return err
	}
	t.majorSet = t.majorSet || opts["major"] != nil
	return nil
}

// SetMinor sets the minor ticks. It accepts ticks, color, size, lw, ls
// and grid.
func (t *Tick) SetMinor(opts Options) error {
	over, err := translate("Tick minor", minorKeys, t.pal, opts)
	if err != nil {
		return err
	}
	return t.Object.Set(over)
}

// SetPlace sets whether tick places are rounded and on which side of
// the axis ticks are drawn.
func (t *Tick) SetPlace(opts Options) error {
	over, err := translate("Tick place", placeKeys, t.pal, opts)
	if err != nil {
		return err
	}
	return t.Object.Set(over)
}

// SetSpec replaces the automatic ticks with ticks at locs. If labels
// is non-nil it must have one label per location, and the major ticks
// are labeled with it. The ticks at the indexes in minor are drawn as
// minor ticks.
func (t *Tick) SetSpec(locs []float64, labels []string, minor ...int) error {
	if labels != nil && len(labels) != len(locs) {
		return agr.Errorf(agr.ErrConfig, "tick spec: %d labels for %d locations", len(labels), len(locs))
	}
	spec := make([]specTick, len(locs))
	for i, loc := range locs {
		spec[i].loc = loc
		if labels != nil {
			l, err := agr.Encode(labels[i])
			if err != nil {
				return err
			}
			spec[i].label = l
		}
	}
	for _, i := range minor {
		if i < 0 || i >= len(spec) {
			return agr.Errorf(agr.ErrConfig, "tick spec: minor tick index %d out of range [0, %d)", i, len(spec))
		}
		spec[i].minor = true
	}
	typ := "ticks"
	if labels != nil {
		typ = "both"
	}
	if err := t.Object.Set(map[string]interface{}{"spec_type": typ}); err != nil {
		return err
	}
	t.spec = spec
	t.majorSet = true
	return nil
}

// Export returns the tick attribute lines followed by the spec block,
// if any.
func (t *Tick) Export() []string {
	lines := t.Object.Export()
	typ := t.Str("spec_type")
	if typ != "ticks" && typ != "both" {
		return lines
	}
	lines = append(lines, fmt.Sprintf("tick spec %d", len(t.spec)))
	for i, s := range t.spec {
		kind := "major"
		if s.minor {
			kind = "minor"
		}
		lines = append(lines, fmt.Sprintf("tick %s %d, %.3f", kind, i, s.loc))
	}
	if typ == "both" {
		for i, s := range t.spec {
			if !s.minor {
				lines = append(lines, fmt.Sprintf("ticklabel %d, \"%s\"", i, s.label))
			}
		}
	}
	return lines
}

// An Axis is one of the x, y, altx and alty axes of a graph.
type Axis struct {
	*Entity
	Bar       *Entity
	Label     *Entity
	Tick      *Tick
	TickLabel *Entity
}

// axisNames are the axes of a graph in export order.
var axisNames = []string{"x", "y", "altx", "alty"}

func newAxis(name string, pal *agr.Palette, opts Options) (*Axis, error) {
	e, err := newEntity("Axis", axisSchema(), agr.Prefix(name), axisKeys, pal, opts)
	if err != nil {
		return nil, err
	}
	return &Axis{
		Entity:    e,
		Bar:       mustEntity("Bar", barSchema(), agr.NoAffix, barKeys, pal, nil),
		Label:     mustEntity("Label", labelSchema(), agr.NoAffix, labelKeys, pal, nil),
		Tick:      newTick(pal),
		TickLabel: mustEntity("TickLabel", tickLabelSchema(), agr.NoAffix, tickLabelKeys, pal, nil),
	}, nil
}

// SetLabel sets the axis label text and label options.
func (a *Axis) SetLabel(s string, opts Options) error {
	o := Options{"label": s}
	for k, v := range opts {
		o[k] = v
	}
	return a.Label.Set(o)
}

// SetBar applies options to the axis bar.
func (a *Axis) SetBar(opts Options) error { return a.Bar.Set(opts) }

// SetTick applies tick options.
func (a *Axis) SetTick(opts Options) error { return a.Tick.Set(opts) }

// SetMajor applies major tick options. See Tick.SetMajor.
func (a *Axis) SetMajor(opts Options) error { return a.Tick.SetMajor(opts) }

// SetMinor applies minor tick options. See Tick.SetMinor.
func (a *Axis) SetMinor(opts Options) error { return a.Tick.SetMinor(opts) }

// SetPlace applies tick placement options. See Tick.SetPlace.
func (a *Axis) SetPlace(opts Options) error { return a.Tick.SetPlace(opts) }

// SetTickLabel applies tick label options.
func (a *Axis) SetTickLabel(opts Options) error { return a.TickLabel.Set(opts) }

// SetSpec places custom ticks on the axis. See Tick.SetSpec.
func (a *Axis) SetSpec(locs []float64, labels []string, minor ...int) error {
	return a.Tick.SetSpec(locs, labels, minor...)
}

// Export returns a single "off" line for a disabled axis, and
// otherwise the axis lines followed by its bar, label, tick and tick
// label lines.
func (a *Axis) Export() []string {
	if a.Int("axis_switch") == agr.SwitchOff {
		return []string{a.Prefix() + " off"}
	}
	return agr.Nest(a.Object, a.Bar, a.Label, a.Tick, a.TickLabel)
}

// A Drawing is a free object drawn on the page: a string, a line or
// an ellipse.
type Drawing struct {
	*Entity
	def bool
}

// Export returns the "with" line, the indented attribute lines and,
// for lines and ellipses, the closing "def" line.
func (d *Drawing) Export() []string {
	marker := d.Schema().Marker()
	lines := []string{"with " + marker}
	for _, l := range d.Object.Export() {
		lines = append(lines, "    "+l)
	}
	if d.def {
		lines = append(lines, marker+" def")
	}
	return lines
}
