// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agr

import "github.com/cockroachdb/errors"

// Error classes. Every error returned by this module is marked with
// one of these, so callers can branch with errors.Is.
var (
	// ErrConfig reports bad layout parameters, unknown keywords and
	// other invalid caller configuration.
	ErrConfig = errors.New("configuration error")

	// ErrType reports a value of the wrong type or shape, such as
	// mismatched column lengths or a format list of the wrong
	// length.
	ErrType = errors.New("type error")

	// ErrLookup reports a symbolic name with no entry in its table.
	ErrLookup = errors.New("lookup error")

	// ErrMarkup reports label markup that cannot be encoded.
	ErrMarkup = errors.New("markup error")

	// ErrMalformed reports unparsable project file input.
	ErrMalformed = errors.New("malformed input")
)

// Errorf formats an error and marks it as class, which should be one
// of the Err* values in this package.
func Errorf(class error, format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), class)
}
