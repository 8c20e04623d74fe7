// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/embeddedgo/svd2rdf/svd"
)

// Join returns the identifier of the child name in the parent path.
func Join(parent, name string) string {
	name = strings.ToLower(name)
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// Expand substitutes index for the dim placeholder in the name template.
// The bracketed form [%s] is replaced as a whole.
func Expand(template, index string) string {
	if strings.Contains(template, "[%s]") {
		return strings.Replace(template, "[%s]", index, 1)
	}
	return strings.Replace(template, "%s", index, 1)
}

// instances returns the lower-cased names of all instances of an element.
// A non-array element has one instance named after the template.
func instances(name string, g *svd.DimElementGroup) ([]string, error) {
	if g == nil || g.Dim == 0 {
		return []string{strings.ToLower(name)}, nil
	}
	idx, err := g.Indices()
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "%s: %v", name, err)
	}
	n := int(g.Dim)
	if idx != nil && len(idx) != n {
		return nil, errors.Wrapf(
			ErrInvalid, "%s: dimIndex lists %d names for dim %d", name, len(idx), n,
		)
	}
	names := make([]string, n)
	for i := range names {
		s := strconv.Itoa(i)
		if idx != nil {
			s = idx[i]
		}
		names[i] = strings.ToLower(Expand(name, s))
	}
	return names, nil
}
