// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loganal groups the diagnostic lines of external tools.
//
// Renderers report one line per problem, often with a line number or
// value embedded, so a bad project file can produce hundreds of lines
// that differ only in their numbers. Classify folds those into
// classes.
package loganal

import (
	"fmt"
	"regexp"
	"strings"
)

// numberWords matches words that consist of both letters and digits.
// We accept any Unicode letter, but only digits 0-9. We match the
// whole word to catch things like hexadecimal values and temporary
// file names.
var numberWords = regexp.MustCompile(`\pL*[0-9][\pL0-9]*`)

// A Class is a set of diagnostic lines that differ only in numeric
// words.
type Class struct {
	// Message is the text shared by the lines. Numeric words that
	// differ between lines are replaced by "…".
	Message string

	// Lines are the indexes of the input lines in the class, in
	// increasing order.
	Lines []int
}

func canonicalMessage(msg string) string {
	if !strings.ContainsAny(msg, "0123456789") {
		return msg
	}
	return numberWords.ReplaceAllString(msg, "…")
}

// fields splits msg into alternating runs of numeric words and other
// text.
func fields(msg string) []string {
	fs := []string{}
	for len(msg) > 0 {
		next := numberWords.FindStringIndex(msg)
		if next == nil {
			fs = append(fs, msg)
			break
		}
		if next[0] > 0 {
			fs = append(fs, msg[:next[0]])
		}
		fs = append(fs, msg[next[0]:next[1]])
		msg = msg[next[1]:]
	}
	return fs
}

// Classify groups lines into classes, ordered by first occurrence.
// Blank lines are dropped. Every other line is in exactly one class.
func Classify(lines []string) []Class {
	// Map maximally canonicalized lines to input indexes.
	var order []string
	canon := map[string][]int{}
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		key := canonicalMessage(l)
		if _, ok := canon[key]; !ok {
			order = append(order, key)
		}
		canon[key] = append(canon[key], i)
	}

	// Restore the numeric words that all lines of a class share.
	out := make([]Class, 0, len(order))
	for _, key := range order {
		class := canon[key]
		msg := key
		if len(class) == 1 {
			msg = strings.TrimSpace(lines[class[0]])
		} else if key != strings.TrimSpace(lines[class[0]]) {
			msg = commonMessage(key, lines, class)
		}
		out = append(out, Class{Message: msg, Lines: class})
	}
	return out
}

// commonMessage returns the first line of class with the numeric words
// that differ between lines replaced by "…". A line that already
// contains "…" can share a key with lines that split into a different
// number of fields; those classes keep the canonical key.
func commonMessage(key string, lines []string, class []int) string {
	fs := fields(strings.TrimSpace(lines[class[0]]))
	for _, li := range class[1:] {
		nfs := fields(strings.TrimSpace(lines[li]))
		if len(nfs) != len(fs) {
			return key
		}
		for i, f := range fs {
			if f != nfs[i] {
				fs[i] = "…"
			}
		}
	}
	return strings.Join(fs, "")
}

// Summarize returns one line per class of the lines in text, with a
// repeat count for classes of more than one line. At most max classes
// are listed; 0 means no limit.
func Summarize(text string, max int) string {
	classes := Classify(strings.Split(text, "\n"))
	var b strings.Builder
	for i, c := range classes {
		if max > 0 && i == max {
			fmt.Fprintf(&b, "\n(%d more)", len(classes)-max)
			break
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.Message)
		if len(c.Lines) > 1 {
			fmt.Fprintf(&b, " (%d times)", len(c.Lines))
		}
	}
	return b.String()
}
