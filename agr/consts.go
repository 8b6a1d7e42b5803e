// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agr

import (
	"reflect"
	"strings"
)

// A Constant is one entry of a ConstantMap.
type Constant struct {
	Name string
	Code int
}

// A ConstantMap translates symbolic names, such as "dashed", into the
// integer codes used in project files. Several names may share a code;
// the first one listed is the canonical name of that code.
type ConstantMap struct {
	kind  string
	names []string
	codes map[string]int
	canon map[int]string
}

// NewConstantMap returns a map named kind. Name lookups are
// case-insensitive.
func NewConstantMap(kind string, entries ...Constant) *ConstantMap {
	m := &ConstantMap{
		kind:  kind,
		codes: make(map[string]int, len(entries)),
		canon: make(map[int]string),
	}
	for _, e := range entries {
		m.names = append(m.names, e.Name)
		m.codes[strings.ToLower(e.Name)] = e.Code
		if _, ok := m.canon[e.Code]; !ok {
			m.canon[e.Code] = e.Name
		}
	}
	return m
}

// Kind returns the name of the map, such as "line style".
func (m *ConstantMap) Kind() string { return m.kind }

// Names returns every name in m, in declaration order.
func (m *ConstantMap) Names() []string {
	return append([]string(nil), m.names...)
}

// Code resolves v, which may be a name or an integer code. Integer
// codes are returned unchanged, since the file format accepts codes
// beyond the named ones.
func (m *ConstantMap) Code(v interface{}) (int, error) {
	if s, ok := v.(string); ok {
		code, ok := m.codes[strings.ToLower(strings.TrimSpace(s))]
		if !ok {
			return 0, Errorf(ErrLookup, "unknown %s %q (want one of %s)", m.kind, s, strings.Join(m.names, ", "))
		}
		return code, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), nil
	}
	return 0, Errorf(ErrType, "%s must be a name or an integer code, got %v (%T)", m.kind, v, v)
}

// Name returns the canonical name of code.
func (m *ConstantMap) Name(code int) (string, bool) {
	s, ok := m.canon[code]
	return s, ok
}

// Switch codes.
const (
	SwitchAuto = -1
	SwitchOff  = 0
	SwitchOn   = 1
)

// Position codes.
const (
	PositionIn   = -1
	PositionBoth = 0
	PositionOut  = 1
	PositionAuto = 2
)

var (
	Switch = NewConstantMap("switch",
		Constant{"on", SwitchOn}, Constant{"off", SwitchOff}, Constant{"auto", SwitchAuto})

	Position = NewConstantMap("position",
		Constant{"in", PositionIn}, Constant{"both", PositionBoth},
		Constant{"out", PositionOut}, Constant{"auto", PositionAuto})

	LineStyle = NewConstantMap("line style",
		Constant{"none", 0},
		Constant{"solid", 1}, Constant{"-", 1},
		Constant{"dotted", 2}, Constant{"..", 2},
		Constant{"dashed", 3}, Constant{"--", 3},
		Constant{"longdashed", 4}, Constant{"---", 4},
		Constant{"dotdashed", 5}, Constant{".-", 5})

	Pattern = NewConstantMap("pattern", Constant{"none", 0}, Constant{"solid", 1})

	Just = NewConstantMap("justification",
		Constant{"left", 0}, Constant{"right", 1}, Constant{"center", 2},
		Constant{"lb", 4}, Constant{"lm", 12}, Constant{"lt", 8},
		Constant{"cb", 6}, Constant{"cm", 14}, Constant{"ct", 10},
		Constant{"rb", 5}, Constant{"rm", 13}, Constant{"rt", 9})

	// Arrow selects which ends of a drawn line carry an arrow head.
	Arrow = NewConstantMap("arrow",
		Constant{"none", 0}, Constant{"start", 1}, Constant{"end", 2}, Constant{"both", 3})

	ArrowType = NewConstantMap("arrow type",
		Constant{"line", 0}, Constant{"filled", 1}, Constant{"opaque", 2})

	SymbolType = NewConstantMap("symbol",
		Constant{"none", 0},
		Constant{"circle", 1}, Constant{"o", 1},
		Constant{"square", 2},
		Constant{"diamond", 3},
		Constant{"tup", 4}, Constant{"^", 4},
		Constant{"tleft", 5}, Constant{"<", 5},
		Constant{"tdown", 6}, Constant{"v", 6},
		Constant{"tright", 7}, Constant{">", 7},
		Constant{"plus", 8}, Constant{"+", 8},
		Constant{"cross", 9}, Constant{"x", 9},
		Constant{"star", 10},
		Constant{"character", 11})

	FrameType = NewConstantMap("frame type",
		Constant{"closed", 0}, Constant{"halfopen", 1},
		Constant{"breaktop", 2}, Constant{"breakbot", 3},
		Constant{"breakleft", 4}, Constant{"breakright", 5})

	FillType = NewConstantMap("fill type",
		Constant{"none", 0}, Constant{"solid", 1}, Constant{"opaque", 2})

	Font = NewConstantMap("font",
		Constant{"Times-Roman", 0}, Constant{"Times-Italic", 1},
		Constant{"Times-Bold", 2}, Constant{"Times-BoldItalic", 3},
		Constant{"Helvetica", 4}, Constant{"Helvetica-Oblique", 5},
		Constant{"Helvetica-Bold", 6}, Constant{"Helvetica-BoldOblique", 7},
		Constant{"Courier", 8}, Constant{"Courier-Oblique", 9},
		Constant{"Courier-Bold", 10}, Constant{"Courier-BoldOblique", 11},
		Constant{"Symbol", 12}, Constant{"ZapfDingbats", 13})
)
