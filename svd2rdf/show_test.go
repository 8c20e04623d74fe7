// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelected(t *testing.T) {
	tests := []struct {
		id   string
		ids  []string
		want bool
	}{
		{"timer0.cr", nil, true},
		{"timer0.cr", []string{"timer0"}, true},
		{"timer0", []string{"TIMER0"}, true},
		{"timer0.ch10", []string{"timer0.ch1"}, false},
		{"timer0.ch1.cnt", []string{"gpio", "timer0.ch1"}, true},
		{"timer1", []string{"timer0"}, false},
	}
	for _, tt := range tests {
		if got := selected(tt.id, tt.ids); got != tt.want {
			t.Errorf("selected(%q, %q) = %v, want %v", tt.id, tt.ids, got, tt.want)
		}
	}
}

func showLines(t *testing.T, ids []string, fields bool) [][]string {
	t.Helper()
	cat, err := loadCatalog(exampleSVD, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := showCatalog(&buf, cat, ids, fields); err != nil {
		t.Fatal(err)
	}
	var lines [][]string
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		lines = append(lines, strings.Fields(line))
	}
	return lines
}

func TestShowCatalog(t *testing.T) {
	got := showLines(t, []string{"gpio"}, true)
	want := [][]string{
		{"EXAMPLE", "1.2"},
		{"gpio", "0x50000000", "0x50000000", "blk", "General", "purpose", "input/output"},
		{"gpio.out", "0x50000004", "0x004", "reg", "Output"},
		{"val", "[31:0]", "inferred", "0xFFFF0000", "Inferred"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("showCatalog() mismatch (-want +got):\n%s", diff)
	}

	got = showLines(t, []string{"timer0.ch1"}, false)
	want = [][]string{
		{"EXAMPLE", "1.2"},
		{"timer0.ch1", "0x40010020", "0x020", "blk", "Channel"},
		{"timer0.ch1.ccr", "0x40010010", "0x000", "reg"},
		{"timer0.ch1.cnt", "0x40010014", "0x004", "reg", "Counter"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("showCatalog() mismatch (-want +got):\n%s", diff)
	}

	if n := len(showLines(t, nil, false)); n != 25 {
		t.Errorf("showCatalog() printed %d lines, want 25", n)
	}
}
