// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/embeddedgo/svd2rdf/internal/log"
	"github.com/embeddedgo/svd2rdf/svd"
)

type Options struct {
	// Width is the register width used to infer reserved fields. Zero
	// means DefaultWidth.
	Width uint32

	// Memories enables memory elements for the peripheral address blocks
	// used as buffers.
	Memories bool
}

// Transform converts dev into a catalog. No catalog is returned if any
// part of the device cannot be converted.
func Transform(dev *svd.Device, opts *Options) (*Catalog, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Width > 64 {
		return nil, errors.Wrapf(ErrInvalid, "register width %d", o.Width)
	}
	v := &visitor{reg: NewRegistry(), width: o.Width, mems: o.Memories}
	reset, _ := dev.Reset()
	root := Root{
		Name:        strings.ToLower(dev.Name),
		DisplayName: dev.Name,
		Version:     dev.Version,
	}
	for _, p := range dev.Peripherals {
		if p.IsArray() {
			return nil, errors.Wrapf(ErrUnsupported, "%s: array of peripherals", p.Name)
		}
		rp, err := resolve(dev, p)
		if err != nil {
			return nil, err
		}
		if err := v.peripheral(rp, reset); err != nil {
			return nil, err
		}
		root.Children = append(root.Children, strings.ToLower(p.Name))
	}
	log.ModRDF.WithField("device", dev.Name).
		Infof("%d peripherals, %d elements", len(root.Children), v.reg.Len())
	return &Catalog{Schema: SchemaVersion, Root: root, Elements: v.reg}, nil
}

// resolve returns p with the registers, address blocks, description and
// register properties it does not declare itself copied from the peripheral
// it is derived from.
func resolve(dev *svd.Device, p *svd.Peripheral) (*svd.Peripheral, error) {
	q := *p
	seen := map[string]bool{p.Name: true}
	for src := p; src.DerivedFrom != nil; {
		name := *src.DerivedFrom
		if seen[name] {
			return nil, errors.Wrapf(ErrInvalid, "%s: derivation cycle through %s", p.Name, name)
		}
		seen[name] = true
		src = dev.Peripheral(name)
		if src == nil {
			return nil, errors.Wrapf(ErrInvalid, "%s: derived from unknown peripheral %s", p.Name, name)
		}
		if len(q.Registers) == 0 {
			q.Registers = src.Registers
		}
		if len(q.AddressBlock) == 0 {
			q.AddressBlock = src.AddressBlock
		}
		if q.Description == nil {
			q.Description = src.Description
		}
		if q.RegisterPropertiesGroup == nil {
			q.RegisterPropertiesGroup = src.RegisterPropertiesGroup
		}
	}
	return &q, nil
}
