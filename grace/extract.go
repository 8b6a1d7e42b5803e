// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grace

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/cockroachdb/errors"

	"github.com/aclements/go-grace/agr"
	"github.com/aclements/go-grace/data"
	"github.com/aclements/go-grace/internal/logger"
)

// An Extraction is the data recovered from a project file. The slices
// are parallel, with one entry per data block in file order.
type Extraction struct {
	// Legends holds the legend text of each block's target
	// dataset, or "" if it has none.
	Legends []string

	// Types holds the lower-cased datatype of each block.
	Types []string

	// Tables holds the columns of each block. Columns are named
	// after the datatype ("x", "y", "dy", ...) when the column
	// count matches it and "c0", "c1", ... otherwise.
	Tables []*table.Table
}

var (
	withRe   = regexp.MustCompile(`^@with\s+g(\d+)\s*$`)
	legendRe = regexp.MustCompile(`^@\s*s(\d+)\s+legend\s+"(.*)"\s*$`)
	targetRe = regexp.MustCompile(`^@target\s+G(\d+)\.S(\d+)\s*$`)
)

type target struct{ graph, set int }

// Extract reads the data blocks of a project file from r.
func Extract(r io.Reader) (*Extraction, error) {
	var (
		x       Extraction
		graph   = -1
		legends = make(map[target]string)
		pending *target
		cur     *target
		typ     string
		block   []string
		inBlock bool
		lineNo  int
		targets []*target
	)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		lineNo++
		line := scan.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case inBlock && trimmed == "&":
			t, err := blockTable(typ, block)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			x.Types = append(x.Types, typ)
			x.Tables = append(x.Tables, t)
			targets = append(targets, cur)
			inBlock, block = false, nil
		case strings.HasPrefix(line, "@type"):
			if inBlock {
				return nil, agr.Errorf(agr.ErrMalformed, "line %d: @type inside an unterminated data block", lineNo)
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, agr.Errorf(agr.ErrMalformed, "line %d: @type without a datatype", lineNo)
			}
			typ = strings.ToLower(fields[len(fields)-1])
			cur, pending = pending, nil
			inBlock = true
		case inBlock:
			block = append(block, line)
		case trimmed == "&":
			// A terminator outside a block.
		default:
			if m := withRe.FindStringSubmatch(line); m != nil {
				graph, _ = strconv.Atoi(m[1])
			} else if m := legendRe.FindStringSubmatch(line); m != nil && graph >= 0 {
				s, _ := strconv.Atoi(m[1])
				legends[target{graph, s}] = m[2]
			} else if m := targetRe.FindStringSubmatch(line); m != nil {
				g, _ := strconv.Atoi(m[1])
				s, _ := strconv.Atoi(m[2])
				pending = &target{g, s}
			}
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	if inBlock {
		return nil, agr.Errorf(agr.ErrMalformed, "unterminated data block of type %s at end of input", typ)
	}
	for _, t := range targets {
		l := ""
		if t != nil {
			l = legends[*t]
		}
		x.Legends = append(x.Legends, l)
	}
	logger.Logger.Debugw("extracted", "blocks", len(x.Tables))
	return &x, nil
}

// blockTable parses the rows of one data block.
func blockTable(typ string, rows []string) (*table.Table, error) {
	t, err := data.ReadTable(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		return nil, err
	}
	dt, err := data.LookupDatatype(typ)
	if err != nil || len(dt.Columns()) != len(t.Columns()) {
		return t, nil
	}
	b := new(table.Builder)
	for i, name := range dt.Columns() {
		b.Add(name, t.MustColumn(data.ColumnName(i)))
	}
	return b.Done(), nil
}

// ExtractFile is Extract for the named file.
func ExtractFile(path string) (*Extraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Extract(f)
}
