// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/go-faster/errors"

	"github.com/embeddedgo/svd2rdf/internal/log"
	"github.com/embeddedgo/svd2rdf/internal/util"
	"github.com/embeddedgo/svd2rdf/rdf"
)

type Hex struct {
	Input     string `arg:"" name:"input" help:"SVD file or JSON catalog." type:"existingfile"`
	Output    string `arg:"" name:"hex" help:"Intel HEX file, - for stdout." optional:""`
	Width     uint32 `help:"Register width in bits." default:"${width}"`
	BigEndian bool   `help:"Store the register values in big-endian byte order." default:"${big_endian}" negatable:""`
}

func (h *Hex) Run() error {
	cat, err := loadCatalog(h.Input, &rdf.Options{Width: h.Width})
	if err != nil {
		return err
	}
	mem, skipped, err := cat.ResetImage(rdf.ImageOptions{Width: h.Width, BigEndian: h.BigEndian})
	if err != nil {
		return err
	}
	for _, id := range skipped {
		log.ModCLI.WithField("id", id).Warnf("register overlaps another one, not included")
	}
	out := util.OutFile(h.Input, h.Output, ".hex")
	w, err := util.Create(out)
	if err != nil {
		return err
	}
	err = mem.DumpIntelHex(w, 16)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrap(err, out)
	}
	return nil
}
