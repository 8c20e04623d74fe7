// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svd

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/go-faster/errors"

	"github.com/embeddedgo/svd2rdf/internal/log"
)

// Decode reads a device description from r.
func Decode(r io.Reader) (*Device, error) {
	dev := new(Device)
	if err := xml.NewDecoder(r).Decode(dev); err != nil {
		return nil, errors.Wrap(err, "decode svd")
	}
	log.ModSVD.WithField("device", dev.Name).
		Debugf("decoded %d peripherals", len(dev.Peripherals))
	return dev, nil
}

// ReadFile decodes the device description stored in the named file.
func ReadFile(name string) (*Device, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dev, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return dev, nil
}
