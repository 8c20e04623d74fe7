// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"slices"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/embeddedgo/svd2rdf/svd"
)

// DefaultWidth is the register width in bits used when none is configured.
const DefaultWidth = 32

type gap struct{ lo, hi int }

// Synthesize completes the field list of a register of the given width. The
// bit ranges not covered by fields are filled with reserved fields named
// rsvd0, rsvd1, ... in the order they are found: first the holes between
// fields, then the one below the lowest field, then the one above the
// highest field. The result is ordered by descending LSB.
//
// A register without fields gets a single inferred field that spans the
// whole register. Overlapping fields are not reconciled.
func Synthesize(fields []Field, width uint32) []Field {
	if len(fields) == 0 {
		return []Field{{
			Name:   "val",
			LSB:    0,
			NBits:  width,
			Access: AccessInferred,
			Doc:    "Inferred",
		}}
	}
	out := slices.Clone(fields)
	sortAsc(out)

	var gaps []gap
	for i := 1; i < len(out); i++ {
		prev, next := out[i-1], out[i]
		lo := int(prev.LSB) + int(prev.NBits)
		hi := int(next.LSB) - 1
		if lo <= hi {
			gaps = append(gaps, gap{lo, hi})
		}
	}
	if first := out[0]; first.LSB != 0 {
		gaps = append(gaps, gap{0, int(first.LSB) - 1})
	}
	if msb := int(out[len(out)-1].LSB) + int(out[len(out)-1].NBits) - 1; msb < int(width)-1 {
		gaps = append(gaps, gap{msb + 1, int(width) - 1})
	}
	for i, g := range gaps {
		out = append(out, Field{
			Name:   "rsvd" + strconv.Itoa(i),
			LSB:    uint32(g.lo),
			NBits:  uint32(g.hi - g.lo + 1),
			Access: AccessReserved,
			Doc:    "Reserved",
		})
	}
	sortAsc(out)
	slices.Reverse(out)
	return out
}

func sortAsc(fields []Field) {
	slices.SortStableFunc(fields, func(a, b Field) int {
		return int(a.LSB) - int(b.LSB)
	})
}

// collectFields converts the SVD fields of a register. reset is the reset
// value of the register, the field resets are extracted from it.
func collectFields(path string, sfs []*svd.Field, reset uint64) ([]Field, error) {
	fields := make([]Field, 0, len(sfs))
	for _, sf := range sfs {
		if sf.DerivedFrom != nil {
			return nil, errors.Wrapf(ErrUnsupported, "%s.%s: derived field", path, sf.Name)
		}
		if sf.Dim != 0 {
			return nil, errors.Wrapf(ErrUnsupported, "%s.%s: array of fields", path, sf.Name)
		}
		lsb, width, err := sf.BitRange()
		if err != nil {
			return nil, errors.Wrapf(ErrInvalid, "%s: %v", path, err)
		}
		f := Field{
			Name:   strings.ToLower(sf.Name),
			LSB:    uint32(lsb),
			NBits:  uint32(width),
			Access: AccessUndefined,
		}
		if sf.Access != nil {
			f.Access = *sf.Access
		}
		if sf.Description != nil {
			f.Doc = *sf.Description
		}
		if f.LSB < 64 {
			f.Reset = reset >> f.LSB & f.Mask()
		}
		fields = append(fields, f)
	}
	return fields, nil
}
