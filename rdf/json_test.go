// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func smallCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := &Catalog{
		Schema:   SchemaVersion,
		Root:     Root{Name: "d", DisplayName: "D", Version: "1", Children: []string{"p"}},
		Elements: NewRegistry(),
	}
	els := []*Element{
		{Kind: Block, Children: []string{"p.r", "p.mem0"}, ID: "p", Name: "p", Addr: 0x40000000, Offset: 0x40000000, Doc: `say "hi"`},
		{
			Kind: Reg, ID: "p.r", Name: "r", Addr: 0x40000004, Offset: 4,
			Fields: []Field{{Name: "val", NBits: 32, Access: AccessInferred, Reset: 0xff, Doc: "Inferred"}},
		},
		{Kind: Mem, Size: 0x100, ID: "p.mem0", Name: "mem0", Addr: 0x40000800, Offset: 0x800},
	}
	for _, el := range els {
		if err := c.Elements.Insert(el); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestWriteJSONCompact(t *testing.T) {
	var buf bytes.Buffer
	if err := smallCatalog(t).WriteJSON(&buf, 0); err != nil {
		t.Fatal(err)
	}
	want := `{"schema":{"version":"v0.1"},` +
		`"root":{"name":"d","display":"D","version":"1","children":["p"]},` +
		`"elements":{` +
		`"p":{"type":"blk","children":["p.r","p.mem0"],"id":"p","name":"p","addr":"0x40000000","offset":"0x40000000","doc":"say \"hi\""},` +
		`"p.r":{"type":"reg","fields":[{"name":"val","lsb":0,"nbits":32,"access":"inferred","reset":"0xff","doc":"Inferred"}],` +
		`"id":"p.r","name":"r","addr":"0x40000004","offset":"0x4","doc":""},` +
		`"p.mem0":{"type":"mem","size":"0x100","id":"p.mem0","name":"mem0","addr":"0x40000800","offset":"0x800","doc":""}}}`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		c := loadExample(t, &Options{Memories: true})
		var buf bytes.Buffer
		if err := c.WriteJSON(&buf, indent); err != nil {
			t.Fatal(err)
		}
		first := buf.String()
		if indent > 0 && !strings.HasSuffix(first, "}\n") {
			t.Errorf("indent %d: output does not end with a newline", indent)
		}
		got, err := ReadJSON(&buf)
		if err != nil {
			t.Fatalf("indent %d: ReadJSON: %v", indent, err)
		}
		if diff := cmp.Diff(c.Root, got.Root); diff != "" {
			t.Errorf("indent %d: root mismatch (-want +got):\n%s", indent, diff)
		}
		if diff := cmp.Diff(elements(c), elements(got), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("indent %d: elements mismatch (-want +got):\n%s", indent, diff)
		}
		var again bytes.Buffer
		if err := got.WriteJSON(&again, indent); err != nil {
			t.Fatal(err)
		}
		if again.String() != first {
			t.Errorf("indent %d: rewritten catalog differs from the first encoding", indent)
		}
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct{ name, src string }{
		{"syntax", `{"schema":`},
		{"id mismatch", `{"elements":{"a":{"type":"blk","id":"b"}}}`},
		{"bad type", `{"elements":{"a":{"type":"xyz","id":"a"}}}`},
		{"bad address", `{"elements":{"a":{"type":"reg","id":"a","addr":"zz"}}}`},
		{"duplicate", `{"elements":{"a":{"type":"blk","id":"a"},"a":{"type":"blk","id":"a"}}}`},
	}
	for _, tt := range tests {
		if _, err := ReadJSON(strings.NewReader(tt.src)); err == nil {
			t.Errorf("%s: ReadJSON accepted %s", tt.name, tt.src)
		}
	}

	c, err := ReadJSON(strings.NewReader(`{"extra":[1,2],"schema":{"version":"v0.1","x":1},"elements":{}}`))
	if err != nil {
		t.Fatalf("ReadJSON with unknown keys: %v", err)
	}
	if c.Schema != "v0.1" || c.Elements.Len() != 0 {
		t.Errorf("ReadJSON() = %+v", c)
	}
}
