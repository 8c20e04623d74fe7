// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"encoding/binary"
	"math"

	"github.com/go-faster/errors"
	"github.com/marcinbor85/gohex"

	"github.com/embeddedgo/svd2rdf/internal/log"
)

type ImageOptions struct {
	Width     uint32 // register width in bits, zero means DefaultWidth
	BigEndian bool
}

// ResetImage returns the memory image of the register reset values. A
// register that overlaps one placed earlier is left out and its identifier
// is returned in skipped.
func (c *Catalog) ResetImage(opts ImageOptions) (mem *gohex.Memory, skipped []string, err error) {
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	if width%8 != 0 || width > 64 {
		return nil, nil, errors.Wrapf(ErrInvalid, "register width %d", width)
	}
	size := uint64(width / 8)
	used := make(map[uint64]bool)
	mem = gohex.NewMemory()
	for id, el := range c.Elements.All() {
		if el.Kind != Reg {
			continue
		}
		if el.Addr+size-1 > math.MaxUint32 {
			return nil, nil, errors.Wrapf(ErrInvalid, "%s: address %#x out of 32-bit range", id, el.Addr)
		}
		overlap := false
		for a := el.Addr; a < el.Addr+size; a++ {
			if used[a] {
				overlap = true
				break
			}
		}
		if overlap {
			log.ModRDF.WithField("id", id).Debugf("skipped, overlaps at %#x", el.Addr)
			skipped = append(skipped, id)
			continue
		}
		for a := el.Addr; a < el.Addr+size; a++ {
			used[a] = true
		}
		var buf [8]byte
		if opts.BigEndian {
			binary.BigEndian.PutUint64(buf[:], el.Value()<<(64-width))
		} else {
			binary.LittleEndian.PutUint64(buf[:], el.Value())
		}
		mem.AddBinary(uint32(el.Addr), buf[:size])
	}
	return mem, skipped, nil
}
