// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"slices"
	"strings"
	"testing"

	"github.com/embeddedgo/svd2rdf/svd"
)

const exampleSVD = "testdata/example.svd"

func loadExample(t *testing.T, opts *Options) *Catalog {
	t.Helper()
	dev, err := svd.ReadFile(exampleSVD)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Transform(dev, opts)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	return c
}

// device decodes a single peripheral named P at 0x40000000 with the given
// register block content.
func device(t *testing.T, registers string) *svd.Device {
	t.Helper()
	src := `<device><name>D</name><version>1</version><peripherals>
<peripheral><name>P</name><baseAddress>0x40000000</baseAddress><registers>` +
		registers + `</registers></peripheral></peripherals></device>`
	dev, err := svdDecode(src)
	if err != nil {
		t.Fatal(err)
	}
	return dev
}

func svdDecode(src string) (*svd.Device, error) {
	return svd.Decode(strings.NewReader(src))
}

func elements(c *Catalog) []*Element {
	var els []*Element
	for _, el := range c.Elements.All() {
		els = append(els, el)
	}
	return els
}

// checkPartition reports the registers whose fields do not cover every bit
// of the register exactly once.
func checkPartition(t *testing.T, c *Catalog, width uint32) {
	t.Helper()
	for id, el := range c.Elements.All() {
		if el.Kind != Reg {
			continue
		}
		covered := make([]int, width)
		for _, f := range el.Fields {
			for b := f.LSB; b <= f.MSB() && b < width; b++ {
				covered[b]++
			}
		}
		if slices.ContainsFunc(covered, func(n int) bool { return n != 1 }) {
			t.Errorf("%s: bits not covered exactly once: %v", id, covered)
		}
		for i := 1; i < len(el.Fields); i++ {
			if el.Fields[i-1].LSB <= el.Fields[i].LSB {
				t.Errorf("%s: fields not in descending lsb order", id)
				break
			}
		}
	}
}
