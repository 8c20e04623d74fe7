// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"iter"

	"github.com/go-faster/errors"
)

// Registry maps element identifiers to elements and remembers the insertion
// order. Elements can only be added.
type Registry struct {
	ids []string
	m   map[string]*Element
}

func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*Element)}
}

// Insert adds e under e.ID. It fails with ErrDuplicateID if the identifier
// is already used.
func (r *Registry) Insert(e *Element) error {
	if _, ok := r.m[e.ID]; ok {
		return errors.Wrap(ErrDuplicateID, e.ID)
	}
	r.m[e.ID] = e
	r.ids = append(r.ids, e.ID)
	return nil
}

func (r *Registry) Get(id string) (*Element, bool) {
	e, ok := r.m[id]
	return e, ok
}

func (r *Registry) Len() int { return len(r.ids) }

// IDs returns the identifiers in insertion order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.ids...)
}

// All iterates over the elements in insertion order.
func (r *Registry) All() iter.Seq2[string, *Element] {
	return func(yield func(string, *Element) bool) {
		for _, id := range r.ids {
			if !yield(id, r.m[id]) {
				return
			}
		}
	}
}
