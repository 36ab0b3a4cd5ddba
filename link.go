// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// parseLink handles [text](href).
//
// The label is parsed as inline text; the href is copied as is.
// Anything short of a complete link is written back out literally:
// a [ with no ] on the line is just a bracket,
// [text] with no ( after it keeps its brackets,
// and [text]( with no ) keeps the dangling (.
func parseLink(p *parser, s *cursor, w *printer) bool {
	end := s.index(']')
	if end < 0 {
		w.html(s.consume(1))
		return true
	}
	label := s.rest()[1:end]
	s.skip(end + 1)
	inner := p.inlineString(label)

	if !s.hasPrefix("(") {
		w.html("[", inner, "]")
		return true
	}
	s.skip(1)
	end = s.index(')')
	if end < 0 {
		w.html("[", inner, "](")
		return true
	}
	href := s.consume(end)
	s.skip(1)
	w.html(`<a href="`, href, `">`, inner, "</a>")
	return true
}

// parseImage handles ![alt](src), degrading like parseLink.
// The alt text is not inline-parsed, since it is an attribute value,
// but it is escaped like running text wherever it appears.
// The src, like an href, is copied as is.
func parseImage(_ *parser, s *cursor, w *printer) bool {
	if !s.hasPrefix("![") {
		return false
	}
	s.skip(2)
	end := s.index(']')
	if end < 0 {
		w.html("![")
		return true
	}
	alt := s.consume(end)
	s.skip(1)

	if !s.hasPrefix("(") {
		w.html("![")
		w.text(alt)
		w.html("]")
		return true
	}
	s.skip(1)
	end = s.index(')')
	if end < 0 {
		w.html("![")
		w.text(alt)
		w.html("](")
		return true
	}
	src := s.consume(end)
	s.skip(1)
	w.html(`<img alt="`)
	w.text(alt)
	w.html(`" src="`, src, `" />`)
	return true
}

// parseAnchor handles <id>, an empty link target.
// The id is escaped like running text.
// A < with no > on the line is escaped text.
func parseAnchor(_ *parser, s *cursor, w *printer) bool {
	s.skip(1)
	end := s.index('>')
	if end < 0 {
		w.html("&lt;")
		return true
	}
	id := s.consume(end)
	s.skip(1)
	w.html(`<a id="`)
	w.text(id)
	w.html(`"></a>`)
	return true
}
