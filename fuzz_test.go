// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import (
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	for _, file := range testFiles(f) {
		for _, tc := range readCases(f, file) {
			f.Add(tc.md)
		}
	}
	for _, s := range balanceTests {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		out := Parse(s)
		if again := Parse(s); again != out {
			t.Fatalf("Parse(%q) not deterministic:\n%q\n%q", s, out, again)
		}

		// A quote in an href, src or alt text ends the attribute
		// early and lets the rest of it read as further attributes.
		if strings.Contains(s, `"`) && strings.Contains(s, "](") {
			return
		}
		if err := checkBalance(out); err != nil {
			t.Fatalf("Parse(%q) = %q: %v", s, out, err)
		}
	})
}
