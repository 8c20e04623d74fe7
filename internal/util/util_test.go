// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import "testing"

func TestOutFile(t *testing.T) {
	tests := []struct {
		in, out, suffix string
		want            string
	}{
		{"STM32F40x.svd", "", ".json", "STM32F40x.json"},
		{"dir/nrf52.svd", "", ".yaml", "dir/nrf52.yaml"},
		{"dir.v1/rp2040", "", ".hex", "dir.v1/rp2040.hex"},
		{"a.svd", "b.json", ".json", "b.json"},
	}
	for _, tt := range tests {
		if got := OutFile(tt.in, tt.out, tt.suffix); got != tt.want {
			t.Errorf("OutFile(%q, %q, %q) = %q, want %q", tt.in, tt.out, tt.suffix, got, tt.want)
		}
	}
}

func TestFixSpaces(t *testing.T) {
	got := FixSpaces("  Control\n\t\tregister   1 ")
	if want := "Control register 1"; got != want {
		t.Fatalf("FixSpaces = %q, want %q", got, want)
	}
}
