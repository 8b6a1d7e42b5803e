// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/aclements/go-grace/agr"
)

// Options are keyword arguments to constructors and setters, such as
// Options{"color": "red", "lw": 2}. Every entity accepts a fixed set
// of keywords; any other keyword is an error. Nil values are ignored.
type Options map[string]interface{}

// converter turns a keyword value into an attribute value.
type converter func(pal *agr.Palette, v interface{}) (interface{}, error)

// keyword binds a user-facing option to a schema attribute.
type keyword struct {
	key  string
	attr string
	conv converter
}

func color(pal *agr.Palette, v interface{}) (interface{}, error) {
	return pal.Code(v)
}

func constant(m *agr.ConstantMap) converter {
	return func(_ *agr.Palette, v interface{}) (interface{}, error) {
		return m.Code(v)
	}
}

var (
	lineStyle  = constant(agr.LineStyle)
	pattern    = constant(agr.Pattern)
	just       = constant(agr.Just)
	arrow      = constant(agr.Arrow)
	arrowType  = constant(agr.ArrowType)
	symbolType = constant(agr.SymbolType)
	frameType  = constant(agr.FrameType)
	fillType   = constant(agr.FillType)
	font       = constant(agr.Font)
)

// encoded translates label markup. See agr.Encode.
func encoded(_ *agr.Palette, v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, agr.Errorf(agr.ErrType, "want a string, got %v (%T)", v, v)
	}
	return agr.Encode(s)
}

// checkKeys returns an error naming every key of opts that is not in
// keys.
func checkKeys(kind string, keys []keyword, opts Options) error {
	var unknown []string
	for k := range opts {
		if lookupKey(keys, k) == nil {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	valid := make([]string, len(keys))
	for i, kw := range keys {
		valid[i] = kw.key
	}
	return errors.WithHint(
		agr.Errorf(agr.ErrConfig, "%s: unknown option(s) %s", kind, strings.Join(unknown, ", ")),
		"valid options: "+strings.Join(valid, ", "))
}

func lookupKey(keys []keyword, k string) *keyword {
	for i := range keys {
		if keys[i].key == k {
			return &keys[i]
		}
	}
	return nil
}

// translate maps opts to attribute overrides.
func translate(kind string, keys []keyword, pal *agr.Palette, opts Options) (map[string]interface{}, error) {
	if err := checkKeys(kind, keys, opts); err != nil {
		return nil, err
	}
	over := make(map[string]interface{}, len(opts))
	for _, kw := range keys {
		v, ok := opts[kw.key]
		if !ok || v == nil {
			continue
		}
		if kw.conv != nil {
			cv, err := kw.conv(pal, v)
			if err != nil {
				return nil, errors.Wrapf(err, "%s option %s", kind, kw.key)
			}
			v = cv
		}
		over[kw.attr] = v
	}
	return over, nil
}

// An Entity is one schema-backed element of a document, such as a
// frame, a tick or a dataset symbol. Its attributes are changed with
// Set using the entity's keywords.
type Entity struct {
	*agr.Object
	kind string
	keys []keyword
	pal  *agr.Palette
}

func newEntity(kind string, s *agr.Schema, affix agr.Affix, keys []keyword, pal *agr.Palette, opts Options) (*Entity, error) {
	over, err := translate(kind, keys, pal, opts)
	if err != nil {
		return nil, err
	}
	o, err := agr.New(s, affix, over)
	if err != nil {
		return nil, err
	}
	return &Entity{Object: o, kind: kind, keys: keys, pal: pal}, nil
}

// mustEntity is newEntity for fixed, known-good options.
func mustEntity(kind string, s *agr.Schema, affix agr.Affix, keys []keyword, pal *agr.Palette, opts Options) *Entity {
	e, err := newEntity(kind, s, affix, keys, pal, opts)
	if err != nil {
		panic(err)
	}
	return e
}

// Kind returns the entity type name used in error messages.
func (e *Entity) Kind() string { return e.kind }

// Keywords returns the option keywords e accepts.
func (e *Entity) Keywords() []string {
	ks := make([]string, len(e.keys))
	for i, kw := range e.keys {
		ks[i] = kw.key
	}
	return ks
}

// Set applies opts. On error e is unchanged.
func (e *Entity) Set(opts Options) error {
	over, err := translate(e.kind, e.keys, e.pal, opts)
	if err != nil {
		return err
	}
	return e.Object.Set(over)
}

// split partitions opts by the key tables in groups. Keys in no group
// are reported as unknown for kind.
func split(kind string, opts Options, groups ...[]keyword) ([]Options, error) {
	var all []keyword
	for _, g := range groups {
		all = append(all, g...)
	}
	if err := checkKeys(kind, all, opts); err != nil {
		return nil, err
	}
	out := make([]Options, len(groups))
	for i, g := range groups {
		out[i] = Options{}
		for _, kw := range g {
			if v, ok := opts[kw.key]; ok {
				out[i][kw.key] = v
			}
		}
	}
	return out, nil
}
