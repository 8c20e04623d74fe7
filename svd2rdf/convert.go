// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/embeddedgo/svd2rdf/internal/log"
	"github.com/embeddedgo/svd2rdf/internal/util"
	"github.com/embeddedgo/svd2rdf/rdf"
	"github.com/embeddedgo/svd2rdf/svd"
)

type Convert struct {
	Files    []string `arg:"" name:"svd" help:"SVD files to convert." type:"existingfile"`
	Output   string   `short:"o" help:"Output file, - for stdout. Only for a single input." placeholder:"FILE"`
	Format   string   `help:"Output format." enum:"json,yaml" default:"${format}"`
	Indent   int      `help:"Indentation step, 0 for compact output." default:"${indent}"`
	Width    uint32   `help:"Register width in bits." default:"${width}"`
	Memories bool     `help:"Emit memory elements for buffer address blocks." default:"${memories}" negatable:""`
	Jobs     int      `short:"j" help:"Number of concurrent conversions, 0 for the number of CPUs." default:"${jobs}"`
}

func (c *Convert) Run() error {
	if c.Output != "" && len(c.Files) > 1 {
		return errors.New("output file can be specified only for a single input")
	}
	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(jobs)
	for _, file := range c.Files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil // another conversion failed
			}
			return c.convert(file)
		})
	}
	return g.Wait()
}

func (c *Convert) options() *rdf.Options {
	return &rdf.Options{Width: c.Width, Memories: c.Memories}
}

func (c *Convert) convert(file string) error {
	dev, err := svd.ReadFile(file)
	if err != nil {
		return err
	}
	cat, err := rdf.Transform(dev, c.options())
	if err != nil {
		return errors.Wrap(err, file)
	}
	out := util.OutFile(file, c.Output, "."+c.Format)
	w, err := util.Create(out)
	if err != nil {
		return err
	}
	err = writeCatalog(w, cat, c.Format, c.Indent)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrap(err, out)
	}
	log.ModCLI.WithField("file", out).Infof("%d elements", cat.Elements.Len())
	return nil
}

func writeCatalog(w io.Writer, cat *rdf.Catalog, format string, indent int) error {
	switch format {
	case "yaml":
		return cat.WriteYAML(w, indent)
	case "json", "":
		return cat.WriteJSON(w, indent)
	}
	return errors.Errorf("unknown format %q", format)
}

// loadCatalog returns the catalog stored in a JSON file or converts the
// device description stored in any other file.
func loadCatalog(name string, opts *rdf.Options) (*rdf.Catalog, error) {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		r, err := util.Open(name)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		cat, err := rdf.ReadJSON(r)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		return cat, nil
	}
	dev, err := svd.ReadFile(name)
	if err != nil {
		return nil, err
	}
	cat, err := rdf.Transform(dev, opts)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return cat, nil
}
