// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import "github.com/go-faster/errors"

var (
	// ErrUnsupported is returned for device description constructs that
	// the conversion does not handle (peripheral and field arrays, derived
	// registers, clusters and fields).
	ErrUnsupported = errors.New("unsupported construct")

	// ErrInvalid is returned when the description lacks data required to
	// produce an element.
	ErrInvalid = errors.New("invalid description")

	ErrDuplicateID = errors.New("duplicate element id")
)
