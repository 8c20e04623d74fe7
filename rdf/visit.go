// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"slices"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/embeddedgo/svd2rdf/internal/log"
	"github.com/embeddedgo/svd2rdf/svd"
)

// visitor walks one device and writes the produced elements to reg.
type visitor struct {
	reg   *Registry
	width uint32
	mems  bool
}

// scope is the context in which the children of a peripheral or a cluster
// are visited.
type scope struct {
	path  string
	base  uint64 // absolute address the child offsets are added to
	reset uint64 // inherited register reset value
}

func doc(descr *string) string {
	if descr == nil {
		return ""
	}
	return *descr
}

func (v *visitor) insert(e *Element) error {
	log.ModRDF.WithField("id", e.ID).Debugf("%s at %#x", e.Kind, e.Addr)
	return v.reg.Insert(e)
}

// childIDs returns the identifiers of the direct children of the path.
func childIDs(path string, items svd.Items) ([]string, error) {
	var ids []string
	for _, it := range items {
		var (
			names []string
			err   error
		)
		switch {
		case it.Register != nil:
			names, err = instances(it.Register.Name, &it.Register.DimElementGroup)
		case it.Cluster != nil:
			names, err = instances(it.Cluster.Name, &it.Cluster.DimElementGroup)
		}
		if err != nil {
			return nil, errors.Wrap(err, path)
		}
		for _, name := range names {
			ids = append(ids, Join(path, name))
		}
	}
	return ids, nil
}

func (v *visitor) peripheral(p *svd.Peripheral, reset uint64) error {
	name := strings.ToLower(p.Name)
	base := uint64(p.BaseAddress)
	if r, ok := p.Reset(); ok {
		reset = r
	}
	children, err := childIDs(name, p.Registers)
	if err != nil {
		return err
	}
	var mems []*Element
	if v.mems {
		for _, ab := range p.AddressBlock {
			if ab.Usage != "buffer" {
				continue
			}
			mname := "mem" + strconv.Itoa(len(mems))
			m := &Element{
				Kind:   Mem,
				Size:   uint64(ab.Size),
				ID:     Join(name, mname),
				Name:   mname,
				Addr:   base + uint64(ab.Offset),
				Offset: uint64(ab.Offset),
			}
			mems = append(mems, m)
			children = append(children, m.ID)
		}
	}
	err = v.insert(&Element{
		Kind:     Block,
		Children: children,
		ID:       name,
		Name:     name,
		Addr:     base,
		Offset:   base,
		Doc:      doc(p.Description),
	})
	if err != nil {
		return err
	}
	s := scope{path: name, base: base, reset: reset}
	for _, it := range p.Registers {
		if err := v.item(s, it); err != nil {
			return err
		}
	}
	for _, m := range mems {
		if err := v.insert(m); err != nil {
			return err
		}
	}
	return nil
}

func (v *visitor) item(s scope, it svd.Item) error {
	switch {
	case it.Register != nil:
		return v.register(s, it.Register)
	case it.Cluster != nil:
		return v.cluster(s, it.Cluster)
	}
	return nil
}

func (v *visitor) register(s scope, r *svd.Register) error {
	if r.DerivedFrom != nil {
		return errors.Wrapf(ErrUnsupported, "%s: derived register", Join(s.path, r.Name))
	}
	names, err := instances(r.Name, &r.DimElementGroup)
	if err != nil {
		return errors.Wrap(err, s.path)
	}
	reset := s.reset
	if rv, ok := r.Reset(); ok {
		reset = rv
	}
	sfs, err := collectFields(Join(s.path, r.Name), r.Fields, reset)
	if err != nil {
		return err
	}
	fields := Synthesize(sfs, v.width)
	if len(sfs) == 0 {
		fields[0].Reset = reset & fields[0].Mask()
	}
	for i, name := range names {
		off := uint64(r.AddressOffset) + uint64(i)*uint64(r.DimIncrement)
		err := v.insert(&Element{
			Kind:   Reg,
			Fields: slices.Clone(fields),
			ID:     Join(s.path, name),
			Name:   name,
			Addr:   s.base + off,
			Offset: off,
			Doc:    doc(r.Description),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// cluster inserts a block per cluster instance followed by its children.
// The children of every instance are placed relative to the nominal cluster
// offset: the instance increment only affects the address of the block.
func (v *visitor) cluster(s scope, c *svd.Cluster) error {
	if c.DerivedFrom != nil {
		return errors.Wrapf(ErrUnsupported, "%s: derived cluster", Join(s.path, c.Name))
	}
	names, err := instances(c.Name, &c.DimElementGroup)
	if err != nil {
		return errors.Wrap(err, s.path)
	}
	reset := s.reset
	if rv, ok := c.Reset(); ok {
		reset = rv
	}
	for i, name := range names {
		id := Join(s.path, name)
		off := uint64(c.AddressOffset) + uint64(i)*uint64(c.DimIncrement)
		children, err := childIDs(id, c.Items)
		if err != nil {
			return err
		}
		err = v.insert(&Element{
			Kind:     Block,
			Children: children,
			ID:       id,
			Name:     name,
			Addr:     s.base + off,
			Offset:   off,
			Doc:      doc(c.Description),
		})
		if err != nil {
			return err
		}
		inner := scope{path: id, base: s.base + uint64(c.AddressOffset), reset: reset}
		for _, it := range c.Items {
			if err := v.item(inner, it); err != nil {
				return err
			}
		}
	}
	return nil
}
