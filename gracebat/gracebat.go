// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gracebat renders project files with the Grace batch
// renderer, gracebat.
//
// The project file is streamed to the renderer's standard input and
// the output device is chosen from the extension of the output file.
package gracebat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kballard/go-shellquote"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/internal/loganal"
	"github.com/aclements/go-grace/internal/logger"
)

// DefaultBinary is the renderer run when Renderer.Binary is empty.
const DefaultBinary = "gracebat"

var (
	// ErrNotFound marks errors caused by a missing renderer
	// binary.
	ErrNotFound = errors.New("renderer not found")

	// ErrFailed marks errors reported by the renderer itself.
	ErrFailed = errors.New("renderer failed")
)

// Devices maps output file extensions to gracebat hardcopy devices.
var Devices = map[string]string{
	"ps":   "PostScript",
	"eps":  "EPS",
	"png":  "PNG",
	"mif":  "MIF",
	"pnm":  "PNM",
	"svg":  "SVG",
	"jpg":  "JPEG",
	"jpeg": "JPEG",
}

// Device returns the hardcopy device for filename's extension.
func Device(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if dev, ok := Devices[ext]; ok {
		return dev, nil
	}
	exts := make([]string, 0, len(Devices))
	for e := range Devices {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return "", errors.WithHint(
		agr.Errorf(agr.ErrConfig, "cannot render %q: unknown output extension %q", filename, ext),
		"supported extensions: "+strings.Join(exts, ", "))
}

// A Renderer runs gracebat.
type Renderer struct {
	// Binary is the renderer to run, either a path or a name
	// looked up in $PATH. If empty, DefaultBinary is used.
	Binary string

	// Args are extra arguments appended to the command line.
	Args []string

	// DryRun prints the command line instead of running it.
	DryRun bool

	// Stdout receives the dry-run command line. If nil, os.Stdout
	// is used.
	Stdout io.Writer
}

// Command returns the command line that renders to filename.
func (r *Renderer) Command(filename string) ([]string, error) {
	dev, err := Device(filename)
	if err != nil {
		return nil, err
	}
	bin := r.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	argv := []string{bin, "-hardcopy", "-hdevice", dev, "-printfile", filename, "-pipe"}
	return append(argv, r.Args...), nil
}

// Render writes the project file read from doc to filename.
func (r *Renderer) Render(ctx context.Context, doc io.Reader, filename string) error {
	argv, err := r.Command(filename)
	if err != nil {
		return err
	}
	line := shellquote.Join(argv...)
	logger.Logger.Infow("rendering", "command", line)
	if r.DryRun {
		w := r.Stdout
		if w == nil {
			w = os.Stdout
		}
		_, err := fmt.Fprintln(w, line)
		return err
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrapf(err, "cannot find %s", argv[0]), ErrNotFound),
			"install Grace or set the renderer binary in the configuration file")
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Stdin = doc
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.Wrapf(ctx.Err(), "%s", line)
		}
		msg := loganal.Summarize(out.String(), 10)
		if msg == "" {
			return errors.Mark(errors.Wrapf(err, "%s", line), ErrFailed)
		}
		return errors.Mark(errors.Wrapf(err, "%s:\n%s", line, msg), ErrFailed)
	}
	if out.Len() > 0 {
		logger.Logger.Debugw("renderer output", "output", out.String())
	}
	return nil
}
