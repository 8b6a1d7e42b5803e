// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agr

import "strings"

var greek = []string{"alpha", "beta", "gamma", "theta", "omega"}

var specials = []struct{ from, to string }{
	{`\AA`, `\cE\C`},
}

const (
	italicOn  = `\f{Times-Italic}`
	fontReset = `\f{}`
)

// Encode translates label markup into Grace escapes:
//
//	\alpha, \Gamma, ...   symbol font letters (\xa\f{}, \xG\f{})
//	\AA                   Angstrom sign
//	/text/                italic text
//	_{text}, ^{text}      subscript and superscript
//
// A single slash is left alone. An odd number of slashes beyond one,
// an unclosed script brace, or a subscript adjoining a superscript is
// an ErrMarkup. So is text that CheckString rejects.
func Encode(s string) (string, error) {
	if err := CheckString(s); err != nil {
		return "", err
	}
	for _, g := range greek {
		for _, name := range []string{g, strings.ToUpper(g[:1]) + g[1:]} {
			s = strings.ReplaceAll(s, `\`+name, `\x`+name[:1]+fontReset)
		}
	}
	for _, sp := range specials {
		s = strings.ReplaceAll(s, sp.from, sp.to)
	}
	s, err := encodeScripts(s)
	if err != nil {
		return "", err
	}
	return encodeItalic(s)
}

// CheckString reports an ErrMarkup if s cannot appear inside a quoted
// Grace string. Grace has no escape for the quote, and a project line
// cannot span lines.
func CheckString(s string) error {
	if i := strings.IndexAny(s, "\"\n\r"); i >= 0 {
		return Errorf(ErrMarkup, "%q contains %q, which Grace strings cannot hold", s, s[i])
	}
	return nil
}

func encodeItalic(s string) (string, error) {
	n := strings.Count(s, "/")
	if n <= 1 {
		return s, nil
	}
	if n%2 != 0 {
		return "", Errorf(ErrMarkup, "unpaired italic delimiter in %q (%d slashes)", s, n)
	}
	var b strings.Builder
	on := false
	for _, r := range s {
		if r != '/' {
			b.WriteRune(r)
			continue
		}
		if on {
			b.WriteString(fontReset)
		} else {
			b.WriteString(italicOn)
		}
		on = !on
	}
	return b.String(), nil
}

func isScript(s string, i int) bool {
	return i+1 < len(s) && (s[i] == '_' || s[i] == '^') && s[i+1] == '{'
}

func encodeScripts(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); {
		if !isScript(s, i) {
			b.WriteByte(s[i])
			i++
			continue
		}
		// Find the matching close brace.
		depth, end := 0, -1
		for j := i + 1; j < len(s) && end < 0; j++ {
			switch s[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = j
				}
			}
		}
		if end < 0 {
			return "", Errorf(ErrMarkup, "unclosed %c{ in %q", s[i], s)
		}
		if isScript(s, end+1) {
			return "", Errorf(ErrMarkup, "combined subscript and superscript in %q is not supported", s)
		}
		inner, err := encodeScripts(s[i+2 : end])
		if err != nil {
			return "", err
		}
		if s[i] == '_' {
			b.WriteString(`\s`)
		} else {
			b.WriteString(`\S`)
		}
		b.WriteString(inner)
		b.WriteString(`\N`)
		i = end + 1
	}
	return b.String(), nil
}
