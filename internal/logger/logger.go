// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger holds the process-wide diagnostic logger.
//
// Logging is supplementary: nothing in this module logs an error in
// place of returning it.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It discards everything until
// Initialize or Set is called.
var Logger = zap.NewNop().Sugar()

// Initialize replaces Logger with one that writes to stderr at the
// given level ("debug", "info", "warn", "error"). If json is set the
// output is JSON, otherwise a console encoding.
func Initialize(level string, json bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	var cfg zap.Config
	if json {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l.Sugar()
	return nil
}

// Set replaces Logger. A nil l restores the no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Logger = l.Sugar()
}

// Sync flushes Logger, ignoring the errors stderr returns on some
// platforms.
func Sync() {
	_ = Logger.Sync()
	_ = os.Stderr.Sync()
}
