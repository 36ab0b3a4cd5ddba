// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import (
	"strings"
	"unicode/utf8"
)

// A lineSource hands out the lines of a document in order.
// Lines end at \n; a \r immediately before the \n is dropped.
// A final line without a newline is still a line,
// but a trailing newline does not start an empty one.
type lineSource struct {
	text string
}

func (r *lineSource) next() (string, bool) {
	if r.text == "" {
		return "", false
	}
	line := r.text
	if i := strings.IndexByte(r.text, '\n'); i >= 0 {
		line, r.text = r.text[:i], r.text[i+1:]
		line = strings.TrimSuffix(line, "\r")
	} else {
		r.text = ""
	}
	return line, true
}

// A cursor is the unconsumed remainder of a single line.
// Offsets are byte offsets. Callers only ask to consume lengths
// of prefixes they have already matched, so a cursor never
// splits a UTF-8 sequence.
type cursor struct {
	text string // entire line
	i    int    // start of the remainder
	seen []seen // memoized byte searches; see index
}

// A seen records that text[from:at] contains no c
// and that text[at] == c, or that no c follows from when at < 0.
type seen struct {
	c    byte
	from int
	at   int
}

func newCursor(text string) *cursor {
	return &cursor{text: text}
}

// reset replaces the cursor's line.
func (s *cursor) reset(text string) {
	s.text = text
	s.i = 0
	s.seen = s.seen[:0]
}

func (s *cursor) rest() string {
	return s.text[s.i:]
}

func (s *cursor) eof() bool {
	return s.i >= len(s.text)
}

// peek returns the next byte, or 0 at the end of the line.
func (s *cursor) peek() byte {
	if s.i >= len(s.text) {
		return 0
	}
	return s.text[s.i]
}

func (s *cursor) hasPrefix(prefix string) bool {
	return strings.HasPrefix(s.text[s.i:], prefix)
}

// is reports whether the remainder is exactly text.
func (s *cursor) is(text string) bool {
	return s.text[s.i:] == text
}

// trimmedHasPrefix reports whether the remainder,
// ignoring leading spaces, starts with prefix.
func (s *cursor) trimmedHasPrefix(prefix string) bool {
	return strings.HasPrefix(strings.TrimLeft(s.text[s.i:], " "), prefix)
}

func (s *cursor) skip(n int) {
	s.i += n
}

func (s *cursor) consume(n int) string {
	t := s.text[s.i : s.i+n]
	s.i += n
	return t
}

// next consumes and returns the next character,
// which may be several bytes long.
func (s *cursor) next() string {
	_, size := utf8.DecodeRuneInString(s.text[s.i:])
	return s.consume(size)
}

// trimSpace skips leading ASCII spaces. Tabs are not spaces here.
func (s *cursor) trimSpace() {
	for s.i < len(s.text) && isSpace(s.text[s.i]) {
		s.i++
	}
}

// indent skips whole four-space indentation units, then any
// remaining spaces, and returns the number of units skipped.
func (s *cursor) indent() int {
	n := 0
	for s.hasPrefix("    ") {
		s.i += 4
		n++
	}
	s.trimSpace()
	return n
}

// index returns the offset of the first c in the remainder, or -1.
//
// Unmatched brackets would otherwise rescan the rest of the line
// once per bracket, so the last answer for each byte is remembered:
// it stays valid until the cursor moves past it.
func (s *cursor) index(c byte) int {
	for k := range s.seen {
		m := &s.seen[k]
		if m.c != c {
			continue
		}
		if m.from <= s.i && (m.at < 0 || m.at >= s.i) {
			if m.at < 0 {
				return -1
			}
			return m.at - s.i
		}
		m.from, m.at = s.i, s.search(c)
		if m.at < 0 {
			return -1
		}
		return m.at - s.i
	}
	at := s.search(c)
	s.seen = append(s.seen, seen{c, s.i, at})
	if at < 0 {
		return -1
	}
	return at - s.i
}

// search returns the absolute offset of the next c, or -1.
func (s *cursor) search(c byte) int {
	j := strings.IndexByte(s.text[s.i:], c)
	if j < 0 {
		return -1
	}
	return s.i + j
}
