// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rdf flattens an SVD device description into a register
// description catalog: an ordered map from dotted element identifiers to
// blocks, registers and memory regions. Every register in the catalog has
// its bit layout fully covered by fields, the holes between the declared
// fields being filled with reserved ones.
package rdf

import "fmt"

// SchemaVersion is the version of the catalog format.
const SchemaVersion = "v0.1"

// Access tags of the fields that are not taken from the device description.
const (
	AccessUndefined = "undefined"
	AccessReserved  = "reserved"
	AccessInferred  = "inferred"
)

type Kind uint8

const (
	Block Kind = iota
	Reg
	Mem
)

var kindNames = [...]string{Block: "blk", Reg: "reg", Mem: "mem"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the Kind for its catalog tag.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Element is a single catalog entry. Children is used by blocks, Fields by
// registers and Size by memory regions.
type Element struct {
	Kind     Kind
	Children []string
	Fields   []Field
	Size     uint64

	ID     string
	Name   string
	Addr   uint64 // absolute
	Offset uint64 // relative to the enclosing block
	Doc    string
}

// Field describes a bit field of a register. MSB returns its top bit.
type Field struct {
	Name   string
	LSB    uint32
	NBits  uint32
	Access string
	Reset  uint64
	Doc    string
}

func (f Field) MSB() uint32 { return f.LSB + f.NBits - 1 }

// Mask returns the field mask aligned to bit 0.
func (f Field) Mask() uint64 {
	if f.NBits >= 64 {
		return ^uint64(0)
	}
	return 1<<f.NBits - 1
}

// Value returns the register reset value composed of the field resets.
func (e *Element) Value() uint64 {
	var v uint64
	for _, f := range e.Fields {
		v |= (f.Reset & f.Mask()) << f.LSB
	}
	return v
}

type Root struct {
	Name        string
	DisplayName string
	Version     string
	Children    []string
}

type Catalog struct {
	Schema   string
	Root     Root
	Elements *Registry
}
