// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agr

import (
	"math"
	"reflect"
	"strconv"
)

// coerce converts v to the type of attribute a.
func coerce(owner string, a Attr, v interface{}) (interface{}, error) {
	switch a.Kind {
	case SwitchFlag:
		return flagCode(owner, a, Switch, v)
	case PositionFlag:
		return flagCode(owner, a, Position, v)
	}

	if !a.Type.isList() {
		x, ok := scalar(a.Type, v)
		if !ok {
			return nil, Errorf(ErrType, "%s %s: cannot use %v (%T) as %s", owner, a.Name, v, v, a.Type)
		}
		return x, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, Errorf(ErrType, "%s %s: cannot use %v (%T) as %s", owner, a.Name, v, v, a.Type)
	}
	n := reflect.ValueOf(a.Default).Len()
	if rv.Len() != n {
		return nil, Errorf(ErrType, "%s %s: want %d values, got %d", owner, a.Name, n, rv.Len())
	}
	out := reflect.MakeSlice(reflect.TypeOf(a.Default), n, n)
	for i := 0; i < n; i++ {
		e := rv.Index(i).Interface()
		x, ok := scalar(a.Type.elem(), e)
		if !ok {
			return nil, Errorf(ErrType, "%s %s: element %d: cannot use %v (%T) as %s", owner, a.Name, i, e, e, a.Type.elem())
		}
		out.Index(i).Set(reflect.ValueOf(x))
	}
	return out.Interface(), nil
}

// flagCode converts v to a code of m. For switches, booleans map to
// on and off.
func flagCode(owner string, a Attr, m *ConstantMap, v interface{}) (interface{}, error) {
	if b, ok := v.(bool); ok && m == Switch {
		if b {
			return SwitchOn, nil
		}
		return SwitchOff, nil
	}
	code, err := m.Code(v)
	if err != nil {
		return nil, Errorf(ErrLookup, "%s %s: %v", owner, a.Name, err)
	}
	if _, ok := m.Name(code); !ok {
		return nil, Errorf(ErrLookup, "%s %s: no %s with code %d", owner, a.Name, m.Kind(), code)
	}
	return code, nil
}

// scalar converts v to t, following the usual int/float/string
// conversions.
func scalar(t Type, v interface{}) (interface{}, bool) {
	rv := reflect.ValueOf(v)
	switch t {
	case Int:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(rv.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return int(rv.Uint()), true
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, false
			}
			return int(f), true
		case reflect.Bool:
			if rv.Bool() {
				return 1, true
			}
			return 0, true
		case reflect.String:
			if i, err := strconv.Atoi(rv.String()); err == nil {
				return i, true
			}
		}
	case Float:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), true
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), true
		case reflect.Float32, reflect.Float64:
			return rv.Float(), true
		case reflect.String:
			if f, err := strconv.ParseFloat(rv.String(), 64); err == nil {
				return f, true
			}
		}
	case String:
		switch rv.Kind() {
		case reflect.String:
			return rv.String(), true
		case reflect.Bool:
			return strconv.FormatBool(rv.Bool()), true
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(rv.Int(), 10), true
		case reflect.Float32, reflect.Float64:
			return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
		}
	}
	return nil, false
}

func copyValue(v interface{}) interface{} {
	switch v := v.(type) {
	case []int:
		return append([]int(nil), v...)
	case []float64:
		return append([]float64(nil), v...)
	case []string:
		return append([]string(nil), v...)
	}
	return v
}
