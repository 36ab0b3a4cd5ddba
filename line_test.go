// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var lineSourceTests = []struct {
	in   string
	want []string
}{
	{"", nil},
	{"\n", []string{""}},
	{"a", []string{"a"}},
	{"a\n", []string{"a"}},
	{"a\nb", []string{"a", "b"}},
	{"a\n\nb\n", []string{"a", "", "b"}},
	{"a\r\nb\r\n", []string{"a", "b"}},
	{"a\r\r\nb", []string{"a\r", "b"}},
	{"a\rb\n", []string{"a\rb"}},
	{"a\r", []string{"a\r"}},
	{"\n\n", []string{"", ""}},
}

func TestLineSource(t *testing.T) {
	for _, tt := range lineSourceTests {
		src := lineSource{tt.in}
		var have []string
		for {
			line, ok := src.next()
			if !ok {
				break
			}
			have = append(have, line)
		}
		if diff := cmp.Diff(tt.want, have); diff != "" {
			t.Errorf("lines of %q (-want +have):\n%s", tt.in, diff)
		}
	}
}

func TestCursor(t *testing.T) {
	s := newCursor("  ab  cd")
	if s.eof() || s.peek() != ' ' {
		t.Fatalf("new cursor: eof=%v peek=%q", s.eof(), s.peek())
	}
	if !s.trimmedHasPrefix("ab") || s.hasPrefix("ab") {
		t.Errorf("trimmedHasPrefix/hasPrefix disagree on leading spaces")
	}
	s.trimSpace()
	if s.rest() != "ab  cd" {
		t.Errorf("after trimSpace, rest = %q", s.rest())
	}
	if got := s.consume(2); got != "ab" {
		t.Errorf("consume(2) = %q, want %q", got, "ab")
	}
	if s.is("  ") || !s.is("  cd") {
		t.Errorf("is reports a prefix match, rest %q", s.rest())
	}
	s.skip(2)
	if s.next() != "c" || s.next() != "d" {
		t.Errorf("next did not return c, d")
	}
	if !s.eof() || s.peek() != 0 || s.rest() != "" {
		t.Errorf("at end: eof=%v peek=%q rest=%q", s.eof(), s.peek(), s.rest())
	}
	s.trimSpace()
	if !s.eof() {
		t.Errorf("trimSpace at end moved the cursor")
	}

	s.reset("\tx")
	if s.rest() != "\tx" {
		t.Errorf("after reset, rest = %q", s.rest())
	}
	s.trimSpace()
	if s.rest() != "\tx" {
		t.Errorf("trimSpace removed a tab")
	}
}

func TestCursorNext(t *testing.T) {
	s := newCursor("é日\xffz")
	var have []string
	for !s.eof() {
		have = append(have, s.next())
	}
	want := []string{"é", "日", "\xff", "z"}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("next (-want +have):\n%s", diff)
	}
}

var indentTests = []struct {
	in   string
	n    int
	rest string
}{
	{"- a", 0, "- a"},
	{"  - a", 0, "- a"},
	{"    - a", 1, "- a"},
	{"      - a", 1, "- a"},
	{"        - a", 2, "- a"},
	{"            0. a", 3, "0. a"},
	{"", 0, ""},
	{"    ", 1, ""},
	{"\t- a", 0, "\t- a"},
}

func TestCursorIndent(t *testing.T) {
	for _, tt := range indentTests {
		s := newCursor(tt.in)
		if n := s.indent(); n != tt.n || s.rest() != tt.rest {
			t.Errorf("indent(%q) = %d, rest %q; want %d, rest %q", tt.in, n, s.rest(), tt.n, tt.rest)
		}
	}
}

func TestCursorIndex(t *testing.T) {
	s := newCursor("a]b]c)d")
	check := func(c byte, want int) {
		t.Helper()
		if got := s.index(c); got != want {
			t.Errorf("at %q: index(%q) = %d, want %d", s.rest(), c, got, want)
		}
	}
	check(']', 1)
	check(']', 1) // remembered
	check(')', 5)
	check('>', -1)
	s.skip(2)
	check(']', 1)
	check(')', 3)
	s.skip(2)
	check(']', -1)
	check('>', -1)
	check(')', 1)
	s.skip(2)
	check(')', -1)

	// A reused cursor forgets the old line.
	s.reset("]>")
	check(']', 0)
	check('>', 1)
	check(')', -1)
}
