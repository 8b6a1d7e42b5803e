// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/aclements/go-grace/agr"
)

// ReadTable reads whitespace-separated numeric columns from r. Blank
// lines and lines starting with "#" are skipped. Every row must have
// the same number of fields. The columns of the result are named c0,
// c1, ....
func ReadTable(r io.Reader) (*table.Table, error) {
	var cols [][]float64
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if cols == nil {
			cols = make([][]float64, len(fields))
		} else if len(fields) != len(cols) {
			return nil, agr.Errorf(agr.ErrMalformed, "line %d: got %d fields, want %d", lineNo, len(fields), len(cols))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, agr.Errorf(agr.ErrMalformed, "line %d: field %d: bad number %q", lineNo, i+1, f)
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	b := new(table.Builder)
	for i, col := range cols {
		b.Add(ColumnName(i), col)
	}
	return b.Done(), nil
}

// ColumnName returns the generic name of column i.
func ColumnName(i int) string {
	return fmt.Sprintf("c%d", i)
}
