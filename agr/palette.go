// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agr

import (
	"fmt"
	"reflect"
	"strings"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B int
}

func (c RGB) valid() bool {
	in := func(x int) bool { return 0 <= x && x <= 255 }
	return in(c.R) && in(c.G) && in(c.B)
}

// A Palette is the color map of one document. Colors are referred to
// in project files by their index in the palette.
type Palette struct {
	names []string
	rgb   []RGB
}

// StandardColors are the colors every palette starts with.
var StandardColors = []struct {
	Name string
	RGB
}{
	{"white", RGB{255, 255, 255}},
	{"black", RGB{0, 0, 0}},
	{"red", RGB{255, 0, 0}},
	{"green", RGB{0, 255, 0}},
	{"blue", RGB{0, 0, 255}},
	{"yellow", RGB{255, 255, 0}},
	{"brown", RGB{188, 143, 143}},
	{"grey", RGB{220, 220, 220}},
	{"violet", RGB{148, 0, 211}},
	{"cyan", RGB{0, 255, 255}},
	{"magenta", RGB{255, 0, 255}},
	{"orange", RGB{255, 165, 0}},
	{"indigo", RGB{114, 33, 188}},
	{"maroon", RGB{103, 7, 72}},
	{"turquoise", RGB{64, 224, 208}},
	{"green4", RGB{0, 139, 0}},
}

// colorAliases maps short and alternate names to standard color
// names.
var colorAliases = map[string]string{
	"w":    "white",
	"k":    "black",
	"r":    "red",
	"g":    "green",
	"b":    "blue",
	"y":    "yellow",
	"e":    "grey",
	"gray": "grey",
}

// NewPalette returns a palette holding the standard colors.
func NewPalette() *Palette {
	p := new(Palette)
	for _, c := range StandardColors {
		p.names = append(p.names, c.Name)
		p.rgb = append(p.rgb, c.RGB)
	}
	return p
}

// Add appends a color and returns its index. If name is empty, the
// color is named "color<index>". A name may not be a color alias.
func (p *Palette) Add(r, g, b int, name string) (int, error) {
	c := RGB{r, g, b}
	if !c.valid() {
		return 0, Errorf(ErrConfig, "color %q: RGB (%d, %d, %d) out of range 0-255", name, r, g, b)
	}
	if name == "" {
		name = fmt.Sprintf("color%d", len(p.names))
	}
	if p.Has(name) {
		return 0, Errorf(ErrConfig, "color %q already defined", name)
	}
	if a, ok := colorAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return 0, Errorf(ErrConfig, "color name %q is an alias for %q", name, a)
	}
	if err := CheckString(name); err != nil {
		return 0, Errorf(ErrConfig, "color name: %v", err)
	}
	p.names = append(p.names, name)
	p.rgb = append(p.rgb, c)
	return len(p.names) - 1, nil
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.names) }

// Has reports whether the palette has a color named name.
func (p *Palette) Has(name string) bool {
	return p.index(name) >= 0
}

func (p *Palette) index(name string) int {
	name = strings.ToLower(name)
	for i, n := range p.names {
		if strings.ToLower(n) == name {
			return i
		}
	}
	return -1
}

// Name returns the name of color i.
func (p *Palette) Name(i int) (string, error) {
	if i < 0 || i >= len(p.names) {
		return "", Errorf(ErrLookup, "no color with index %d in palette of %d colors", i, len(p.names))
	}
	return p.names[i], nil
}

// RGB returns the value of color i.
func (p *Palette) RGB(i int) (RGB, error) {
	if i < 0 || i >= len(p.rgb) {
		return RGB{}, Errorf(ErrLookup, "no color with index %d in palette of %d colors", i, len(p.rgb))
	}
	return p.rgb[i], nil
}

// Code resolves a color name, alias or index to a palette index.
func (p *Palette) Code(v interface{}) (int, error) {
	if s, ok := v.(string); ok {
		name := strings.ToLower(strings.TrimSpace(s))
		if a, ok := colorAliases[name]; ok {
			name = a
		}
		if i := p.index(name); i >= 0 {
			return i, nil
		}
		return 0, Errorf(ErrLookup, "unknown color %q (not in palette or aliases)", s)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := int(rv.Int())
		if _, err := p.Name(i); err != nil {
			return 0, err
		}
		return i, nil
	}
	return 0, Errorf(ErrType, "color must be a name or an index, got %v (%T)", v, v)
}

// Export returns the "map color" lines of the palette.
func (p *Palette) Export() []string {
	lines := make([]string, len(p.names))
	for i, n := range p.names {
		c := p.rgb[i]
		lines[i] = fmt.Sprintf("map color %d to (%d, %d, %d), %q", i, c.R, c.G, c.B, n)
	}
	return lines
}

// FontMap is the fixed font table of a document.
type FontMap struct{}

// Export returns the "map font" lines.
func (FontMap) Export() []string {
	names := Font.Names()
	lines := make([]string, len(names))
	for i, n := range names {
		lines[i] = fmt.Sprintf("map font %d to %q, %q", i, n, n)
	}
	return lines
}
