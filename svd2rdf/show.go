// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/embeddedgo/svd2rdf/internal/util"
	"github.com/embeddedgo/svd2rdf/rdf"
)

type Show struct {
	Input  string   `arg:"" name:"input" help:"SVD file or JSON catalog." type:"existingfile"`
	IDs    []string `arg:"" name:"id" help:"Elements to list together with their descendants, all if none." optional:""`
	Fields bool     `short:"f" help:"List register fields."`
	Width  uint32   `help:"Register width in bits." default:"${width}"`
}

func (s *Show) Run() error {
	cat, err := loadCatalog(s.Input, &rdf.Options{Width: s.Width})
	if err != nil {
		return err
	}
	return showCatalog(os.Stdout, cat, s.IDs, s.Fields)
}

func selected(id string, ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	for _, sel := range ids {
		sel = strings.ToLower(sel)
		if id == sel || strings.HasPrefix(id, sel+".") {
			return true
		}
	}
	return false
}

func showCatalog(w io.Writer, cat *rdf.Catalog, ids []string, fields bool) error {
	tw := new(tabwriter.Writer)
	tw.Init(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "%s %s\n", cat.Root.DisplayName, cat.Root.Version)
	for id, el := range cat.Elements.All() {
		if !selected(id, ids) {
			continue
		}
		fmt.Fprintf(tw, "%s\t 0x%08X\t 0x%03X\t %s\t", id, el.Addr, el.Offset, el.Kind)
		if el.Doc != "" {
			fmt.Fprintf(tw, " %s\n", util.FixSpaces(el.Doc))
		} else {
			fmt.Fprintln(tw)
		}
		if !fields || el.Kind != rdf.Reg {
			continue
		}
		for _, f := range el.Fields {
			fmt.Fprintf(tw, "  %s\t [%d:%d]\t %s\t 0x%X\t", f.Name, f.MSB(), f.LSB, f.Access, f.Reset)
			if f.Doc != "" {
				fmt.Fprintf(tw, " %s\n", util.FixSpaces(f.Doc))
			} else {
				fmt.Fprintln(tw)
			}
		}
	}
	return tw.Flush()
}
