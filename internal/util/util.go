// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	s := err.Error()
	if what != "" {
		s = what + ": " + s
	}
	fmt.Fprintf(os.Stderr, "fatal error:\n\t%s\n", s)
	os.Exit(1)
}

// OutFile infers the name of the output file from the name of the input
// file by replacing its extension with outSuffix.
func OutFile(inName, outName, outSuffix string) string {
	if outName != "" {
		return outName
	}
	ext := filepath.Ext(inName)
	return strings.TrimSuffix(inName, ext) + outSuffix
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Create creates the named file. The "-" name means the standard output,
// which is not closed by Close.
func Create(name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

// Open opens the named file. The "-" name means the standard input.
func Open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// FixSpaces replaces all sequences of white space characters with a single
// space.
func FixSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
