// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/aclements/go-grace/agr"
)

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the palette, including colors from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pal, err := a.cfg.Palette()
			if err != nil {
				return err
			}
			s, err := paletteTable(pal)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

// paletteTable renders pal as a table of index, name and RGB value.
func paletteTable(pal *agr.Palette) (string, error) {
	rows := pterm.TableData{{"Index", "Name", "RGB"}}
	for i := 0; i < pal.Len(); i++ {
		name, err := pal.Name(i)
		if err != nil {
			return "", err
		}
		c, err := pal.RGB(i)
		if err != nil {
			return "", err
		}
		rows = append(rows, []string{strconv.Itoa(i), name, fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
}
