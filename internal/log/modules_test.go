// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseModules(t *testing.T) {
	tests := []struct {
		list string
		want ModuleMask
		ok   bool
	}{
		{"", 0, true},
		{"no", 0, true},
		{"all", ModuleMaskAll, true},
		{"rdf", ModRDF.Mask(), true},
		{"svd, rdf", ModSVD.Mask() | ModRDF.Mask(), true},
		{"cli,bogus", 0, false},
		{"<error>", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseModules(tt.list)
		if (err == nil) != tt.ok {
			t.Errorf("ParseModules(%q) error = %v, want ok = %v", tt.list, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModules(%q) = %#x, want %#x", tt.list, got, tt.want)
		}
	}
	if diff := cmp.Diff([]string{"cli", "svd", "rdf"}, ModuleNames()); diff != "" {
		t.Errorf("ModuleNames() mismatch (-want +got):\n%s", diff)
	}
	if s := Module(42).String(); s != "<error>" {
		t.Errorf("Module(42).String() = %q", s)
	}
}

func TestModuleOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup(&buf, "warning", "json"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		DisableDebugModules(ModuleMaskAll)
		Setup(os.Stderr, "warning", "text")
	})

	ModRDF.WithField("id", "p.r").Debugf("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message of a disabled module logged: %s", buf.String())
	}

	EnableDebugModules(ModRDF.Mask())
	ModRDF.WithField("id", "p.r").WithFields(Fields{"n": 2}).Debugf("visible")
	ModSVD.Debugf("other module")
	ModCLI.Warnf("warning")
	out := buf.String()
	for _, s := range []string{`"_mod":"rdf"`, `"id":"p.r"`, `"n":2`, "visible", `"_mod":"cli"`, "warning"} {
		if !strings.Contains(out, s) {
			t.Errorf("output lacks %s:\n%s", s, out)
		}
	}
	if strings.Contains(out, "other module") {
		t.Errorf("debug message of a disabled module logged:\n%s", out)
	}
}

func TestSetupErrors(t *testing.T) {
	if err := Setup(nil, "loud", "text"); err == nil {
		t.Error("Setup accepted an unknown level")
	}
	if err := Setup(nil, "info", "xml"); err == nil {
		t.Error("Setup accepted an unknown formatter")
	}
	Setup(nil, "warning", "text")
}
