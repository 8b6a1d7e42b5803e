// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agr

import (
	"strconv"
	"strings"
)

// An Affix distinguishes entities that share a marker. Axis-like
// entities take a prefix ("x" + "axis"); indexed entities take a
// suffix ("s" + "3").
type Affix struct {
	text   string
	prefix bool
}

// NoAffix leaves the marker unchanged.
var NoAffix Affix

// Prefix returns an affix placed before the marker.
func Prefix(s string) Affix { return Affix{text: s, prefix: true} }

// Index returns an index affix placed after the marker.
func Index(i int) Affix { return Affix{text: strconv.Itoa(i)} }

// Attach joins the affix to marker. Underscores in the marker become
// spaces.
func (a Affix) Attach(marker string) string {
	marker = strings.ReplaceAll(marker, "_", " ")
	if a.prefix {
		return a.text + marker
	}
	return marker + a.text
}

func (a Affix) String() string { return a.text }

// An Exporter renders itself as project file lines.
type Exporter interface {
	Export() []string
}

// An Object is one entity: a schema plus a value for every attribute.
// Every attribute always has a value.
type Object struct {
	schema *Schema
	affix  Affix
	values map[string]interface{}
}

// New returns an Object with values taken from overrides, or from the
// schema defaults for attributes with no override or a nil override.
// Overrides for unknown attributes are ignored.
func New(s *Schema, affix Affix, overrides map[string]interface{}) (*Object, error) {
	o := &Object{
		schema: s,
		affix:  affix,
		values: make(map[string]interface{}, len(s.attrs)),
	}
	for _, a := range s.attrs {
		o.values[a.Name] = copyValue(a.Default)
	}
	if err := o.Set(overrides); err != nil {
		return nil, err
	}
	return o, nil
}

// Set overwrites the attributes named in overrides. Nil values and
// unknown names are ignored. If any value cannot be coerced, Set
// returns an error and leaves o unchanged.
func (o *Object) Set(overrides map[string]interface{}) error {
	vals, err := o.coerceAll(overrides)
	if err != nil {
		return err
	}
	for k, v := range vals {
		o.values[k] = v
	}
	return nil
}

// Check reports the error Set would return for overrides without
// changing o.
func (o *Object) Check(overrides map[string]interface{}) error {
	_, err := o.coerceAll(overrides)
	return err
}

func (o *Object) coerceAll(overrides map[string]interface{}) (map[string]interface{}, error) {
	vals := make(map[string]interface{}, len(overrides))
	for _, a := range o.schema.attrs {
		v, ok := overrides[a.Name]
		if !ok || v == nil {
			continue
		}
		cv, err := coerce(o.Prefix(), a, v)
		if err != nil {
			return nil, err
		}
		vals[a.Name] = cv
	}
	return vals, nil
}

// Schema returns o's schema.
func (o *Object) Schema() *Schema { return o.schema }

// Affix returns o's affix.
func (o *Object) Affix() Affix { return o.affix }

// Prefix returns the marker with the affix attached, which begins
// every line o exports.
func (o *Object) Prefix() string { return o.affix.Attach(o.schema.marker) }

// Get returns the value of the named attribute, or nil if there is no
// such attribute.
func (o *Object) Get(name string) interface{} {
	return copyValue(o.values[name])
}

// Int returns the named attribute as an int.
func (o *Object) Int(name string) int {
	switch v := o.values[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

// Float returns the named attribute as a float64.
func (o *Object) Float(name string) float64 {
	switch v := o.values[name].(type) {
	case int:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// Str returns the named string attribute.
func (o *Object) Str(name string) string {
	s, _ := o.values[name].(string)
	return s
}

// Floats returns a copy of the named list attribute as float64s.
func (o *Object) Floats(name string) []float64 {
	switch v := o.values[name].(type) {
	case []float64:
		return append([]float64(nil), v...)
	case []int:
		fs := make([]float64, len(v))
		for i, x := range v {
			fs[i] = float64(x)
		}
		return fs
	}
	return nil
}

// Export returns one line per attribute in declaration order.
func (o *Object) Export() []string {
	prefix := o.Prefix()
	lines := make([]string, 0, len(o.schema.attrs))
	for _, a := range o.schema.attrs {
		lines = append(lines, o.line(prefix, a))
	}
	return lines
}

func (o *Object) line(prefix string, a Attr) string {
	v := o.values[a.Name]
	var val string
	switch a.Kind {
	case SwitchFlag:
		val, _ = Switch.Name(v.(int))
	case PositionFlag:
		val, _ = Position.Name(v.(int))
	default:
		val = a.Format(v)
	}
	var b strings.Builder
	b.WriteString(prefix)
	if a.label != "" {
		b.WriteByte(' ')
		b.WriteString(a.label)
	}
	b.WriteByte(' ')
	b.WriteString(val)
	return b.String()
}

func (o *Object) String() string {
	return strings.Join(o.Export(), "\n")
}

// Nest returns the lines of parent followed by the lines of each
// child, with the child lines prefixed by parent's marker and affix.
func Nest(parent *Object, children ...Exporter) []string {
	lines := parent.Export()
	return append(lines, Prefixed(parent.Prefix()+" ", children...)...)
}

// Prefixed returns the lines of each exporter with prefix prepended.
func Prefixed(prefix string, es ...Exporter) []string {
	var lines []string
	for _, e := range es {
		for _, l := range e.Export() {
			lines = append(lines, prefix+l)
		}
	}
	return lines
}
