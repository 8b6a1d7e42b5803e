// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the graceplot configuration file.
//
// The file is TOML:
//
//	log_level = "info"
//	data_format = "%.6g"
//
//	[gracebat]
//	binary = "/opt/grace/bin/gracebat"
//	args = "-param '/opt/grace/my defaults.par'"
//
//	[defaults]
//	lw = 2.0
//	font = "Helvetica"
//
//	[[colors]]
//	name = "steel"
//	rgb = [70, 130, 180]
//
// A missing file is not an error; every setting has a default.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"
	"go.uber.org/zap/zapcore"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/grace"
	"github.com/aclements/go-grace/gracebat"
	"github.com/aclements/go-grace/internal/logger"
)

// EnvVar names the environment variable that overrides DefaultPath.
const EnvVar = "GRACEPLOT_CONFIG"

// Config is the contents of a configuration file.
type Config struct {
	// LogLevel is the zap level name: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// LogJSON selects JSON log output.
	LogJSON bool `toml:"log_json"`

	// DataFormat formats values in the data section of written
	// project files.
	DataFormat string `toml:"data_format"`

	Gracebat Gracebat `toml:"gracebat"`

	// Defaults are document default options, as accepted by
	// grace.New: lw, ls, color, pattern, font, charsize,
	// symbolsize and sformat.
	Defaults map[string]interface{} `toml:"defaults"`

	// Colors are added to the standard palette in order.
	Colors []Color `toml:"colors"`
}

// Gracebat configures the external renderer.
type Gracebat struct {
	Binary string `toml:"binary"`

	// Args are extra renderer arguments, split with shell quoting
	// rules.
	Args string `toml:"args"`
}

// A Color is a named palette entry.
type Color struct {
	Name string `toml:"name"`
	RGB  [3]int `toml:"rgb"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		LogLevel:   "warn",
		DataFormat: grace.DefaultDataFormat,
		Gracebat:   Gracebat{Binary: gracebat.DefaultBinary},
	}
}

// DefaultPath returns $GRACEPLOT_CONFIG if it is set and
// ~/.graceplot.toml otherwise.
func DefaultPath() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".graceplot.toml"
	}
	return filepath.Join(home, ".graceplot.toml")
}

// Load reads and validates the file at path. Settings the file does
// not mention keep their defaults. If the file does not exist, Load
// returns Default().
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, os.ErrNotExist) {
		logger.Logger.Debugw("no config file", "path", path)
		return c, nil
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), agr.ErrConfig)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, agr.Errorf(agr.ErrConfig, "%s: unknown setting(s) %s", path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	logger.Logger.Debugw("loaded config", "path", path)
	return c, nil
}

// Validate checks the settings that can be checked without building
// a document.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return agr.Errorf(agr.ErrConfig, "log_level: %v", err)
	}
	if c.DataFormat != "" {
		if s := fmt.Sprintf(c.DataFormat, 1.5); strings.Contains(s, "%!") {
			return agr.Errorf(agr.ErrConfig, "data_format %q cannot format a number: gives %q", c.DataFormat, s)
		}
	}
	if _, err := c.RendererArgs(); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette returns the standard palette extended with c.Colors.
func (c *Config) Palette() (*agr.Palette, error) {
	pal := agr.NewPalette()
	for _, col := range c.Colors {
		if _, err := pal.Add(col.RGB[0], col.RGB[1], col.RGB[2], col.Name); err != nil {
			return nil, errors.Wrap(err, "colors")
		}
	}
	return pal, nil
}

// RendererArgs splits Gracebat.Args.
func (c *Config) RendererArgs() ([]string, error) {
	args, err := shellquote.Split(c.Gracebat.Args)
	if err != nil {
		return nil, agr.Errorf(agr.ErrConfig, "gracebat.args %q: %v", c.Gracebat.Args, err)
	}
	return args, nil
}

// Renderer returns the renderer c describes.
func (c *Config) Renderer() (*gracebat.Renderer, error) {
	args, err := c.RendererArgs()
	if err != nil {
		return nil, err
	}
	return &gracebat.Renderer{Binary: c.Gracebat.Binary, Args: args}, nil
}

// PlotOptions returns the grace.New options c implies: the palette,
// the data format and the document defaults.
func (c *Config) PlotOptions() (grace.Options, error) {
	pal, err := c.Palette()
	if err != nil {
		return nil, err
	}
	o := grace.Options{"palette": pal}
	if c.DataFormat != "" {
		o["dformat"] = c.DataFormat
	}
	for k, v := range c.Defaults {
		o[k] = v
	}
	return o, nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
