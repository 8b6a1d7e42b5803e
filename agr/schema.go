// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agr renders typed attribute tables into the line grammar of
// Grace project (.agr) files.
//
// Each Grace entity (a legend, an axis tick, a dataset symbol, ...) is
// described by a Schema: an ordered list of attributes, each with a
// Kind that selects how its line is rendered, a value Type, a default
// and a Formatter. An Object holds the values for one entity and
// exports them as lines such as
//
//	legend box color 1
//	s0 symbol size 1.000000
//	xaxis tick major 0.500000
//
// Attribute order is significant and is the order of export.
package agr

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind selects how an attribute is rendered.
type Kind int

const (
	// Scalar renders as "name value".
	Scalar Kind = iota
	// FixedList renders as "name v1, v2, ..." using the attribute's
	// Formatter for the whole list.
	FixedList
	// SwitchFlag renders as an on/off/auto token. Its name ends
	// in "_switch".
	SwitchFlag
	// PositionFlag renders as an in/both/out/auto token. Its name
	// ends in "_position".
	PositionFlag
	// LocationFlag renders a coordinate tuple. Its name ends in
	// "_location".
	LocationFlag
	// CommentFlag renders a bare formatted value, usually a quoted
	// string. Its name ends in "_comment".
	CommentFlag
)

var kindNames = [...]string{"scalar", "list", "switch", "position", "location", "comment"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// suffix returns the name suffix required of flag attributes of kind
// k, or "" if k is not a flag.
func (k Kind) suffix() string {
	switch k {
	case SwitchFlag:
		return "_switch"
	case PositionFlag:
		return "_position"
	case LocationFlag:
		return "_location"
	case CommentFlag:
		return "_comment"
	}
	return ""
}

// Type is the value type an attribute is coerced to.
type Type int

const (
	Int Type = iota
	Float
	String
	Ints
	Floats
	Strings
)

var typeNames = [...]string{"int", "float", "string", "[]int", "[]float", "[]string"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

func (t Type) isList() bool { return t >= Ints }

// elem returns the element type of a list type.
func (t Type) elem() Type {
	if t.isList() {
		return t - Ints
	}
	return t
}

// typeOf returns the Type of a default value.
func typeOf(v interface{}) (Type, bool) {
	switch v.(type) {
	case int:
		return Int, true
	case float64:
		return Float, true
	case string:
		return String, true
	case []int:
		return Ints, true
	case []float64:
		return Floats, true
	case []string:
		return Strings, true
	}
	return 0, false
}

// A Formatter renders an attribute value as text.
type Formatter func(v interface{}) string

// Fmt returns a Formatter that applies a fmt format string. List
// values are spread over the verbs of format, so a two-element list
// takes a format such as "%f, %f".
func Fmt(format string) Formatter {
	return func(v interface{}) string {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice {
			return fmt.Sprintf(format, v)
		}
		args := make([]interface{}, rv.Len())
		for i := range args {
			args[i] = rv.Index(i).Interface()
		}
		return fmt.Sprintf(format, args...)
	}
}

// Percent formats a fraction as a whole percentage, such as "5%".
func Percent(v interface{}) string {
	f, _ := v.(float64)
	return fmt.Sprintf("%.0f%%", f*100)
}

// defaultFormat returns the Formatter used when an attribute declares
// no format.
func defaultFormat(t Type, n int) Formatter {
	verb := map[Type]string{Int: "%d", Float: "%f", String: "%s"}[t.elem()]
	if !t.isList() {
		return Fmt(verb)
	}
	verbs := make([]string, n)
	for i := range verbs {
		verbs[i] = verb
	}
	return Fmt(strings.Join(verbs, ", "))
}

// Attr declares one attribute of a Schema.
type Attr struct {
	Name    string
	Kind    Kind
	Type    Type
	Default interface{}
	Format  Formatter

	// label is the rendered attribute name, computed by NewSchema.
	label string
}

// Attr constructors. An empty format selects "%d", "%f" or "%s" (per
// element for lists).

func IntAttr(name string, def int, format string) Attr {
	return attr(name, Scalar, def, format)
}

func FloatAttr(name string, def float64, format string) Attr {
	return attr(name, Scalar, def, format)
}

func StringAttr(name string, def string, format string) Attr {
	return attr(name, Scalar, def, format)
}

// ListAttr declares a fixed-arity list. The arity and element type
// come from def, which must be a []int, []float64 or []string.
func ListAttr(name string, def interface{}, format string) Attr {
	return attr(name, FixedList, def, format)
}

// SwitchAttr declares an on/off/auto flag. def is a Switch code.
func SwitchAttr(name string, def int) Attr {
	return attr(name, SwitchFlag, def, "")
}

// PositionAttr declares an in/both/out/auto flag. def is a Position
// code.
func PositionAttr(name string, def int) Attr {
	return attr(name, PositionFlag, def, "")
}

// LocationAttr declares a coordinate tuple.
func LocationAttr(name string, def interface{}, format string) Attr {
	return attr(name, LocationFlag, def, format)
}

// CommentAttr declares a value printed without its name.
func CommentAttr(name string, def interface{}, format string) Attr {
	return attr(name, CommentFlag, def, format)
}

func attr(name string, kind Kind, def interface{}, format string) Attr {
	t, ok := typeOf(def)
	if !ok {
		panic(fmt.Sprintf("agr: attribute %s: unsupported default %#v", name, def))
	}
	a := Attr{Name: name, Kind: kind, Type: t, Default: def}
	if format != "" {
		a.Format = Fmt(format)
	}
	return a
}

// A Schema is the ordered attribute table of one entity type, together
// with the entity's marker keyword.
type Schema struct {
	marker string
	attrs  []Attr
	index  map[string]int
}

// NewSchema returns a schema for entities with the given marker.
//
// NewSchema panics if a flag attribute's name lacks its kind's suffix,
// if a name is repeated, or if a default does not fit its type. These
// are mistakes in the table, not in the caller's data.
func NewSchema(marker string, attrs ...Attr) *Schema {
	s := &Schema{
		marker: marker,
		attrs:  make([]Attr, len(attrs)),
		index:  make(map[string]int, len(attrs)),
	}
	for i, a := range attrs {
		if _, dup := s.index[a.Name]; dup {
			panic(fmt.Sprintf("agr: schema %s: duplicate attribute %s", marker, a.Name))
		}
		n := 0
		if a.Type.isList() {
			n = reflect.ValueOf(a.Default).Len()
			if n == 0 {
				panic(fmt.Sprintf("agr: schema %s: attribute %s has an empty default", marker, a.Name))
			}
		}
		switch a.Kind {
		case Scalar:
			if a.Type.isList() {
				panic(fmt.Sprintf("agr: schema %s: scalar %s has list default", marker, a.Name))
			}
			a.label = strings.ReplaceAll(a.Name, "_", " ")
		case FixedList:
			if !a.Type.isList() {
				panic(fmt.Sprintf("agr: schema %s: list %s has scalar default", marker, a.Name))
			}
			a.label = strings.ReplaceAll(a.Name, "_", " ")
		case SwitchFlag, PositionFlag:
			if a.Type != Int {
				panic(fmt.Sprintf("agr: schema %s: flag %s must default to a code", marker, a.Name))
			}
			a.label = flagLabel(marker, a)
		default:
			a.label = flagLabel(marker, a)
		}
		if a.Format == nil {
			a.Format = defaultFormat(a.Type, n)
		}
		s.attrs[i] = a
		s.index[a.Name] = i
	}
	return s
}

// flagLabel strips the kind suffix and the marker words from a flag
// attribute's name.
func flagLabel(marker string, a Attr) string {
	suffix := a.Kind.suffix()
	if !strings.HasSuffix(a.Name, suffix) {
		panic(fmt.Sprintf("agr: schema %s: %s attribute %s must end in %s", marker, a.Kind, a.Name, suffix))
	}
	words := strings.Split(strings.TrimSuffix(a.Name, suffix), "_")
	mwords := strings.Split(marker, "_")
	if len(words) >= len(mwords) && reflect.DeepEqual(words[:len(mwords)], mwords) {
		words = words[len(mwords):]
	}
	return strings.Join(words, " ")
}

// Marker returns the entity keyword, such as "legend" or "s".
func (s *Schema) Marker() string { return s.marker }

// Attrs returns the attributes in declaration order.
func (s *Schema) Attrs() []Attr { return s.attrs }

// Lookup returns the named attribute.
func (s *Schema) Lookup(name string) (Attr, bool) {
	i, ok := s.index[name]
	if !ok {
		return Attr{}, false
	}
	return s.attrs[i], true
}
