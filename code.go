// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import "strings"

// A preBlock is an open block of indented code.
type preBlock struct{}

func (*preBlock) close(w *printer) {
	w.html("</code></pre>\n")
}

// A fenceBlock is an open fenced code block.
// Unlike every other block it survives blank lines
// and ends only at the closing ``` or the end of the document.
type fenceBlock struct {
	first bool // no content line written yet
}

func (*fenceBlock) close(w *printer) {
	w.html("</code></pre>\n")
}

// startIndentedCode is a [starter] for a line of indented code,
// which starts with four spaces.
// Everything after the indentation is copied literally.
func startIndentedCode(p *parser, s *cursor) bool {
	if !s.hasPrefix("    ") {
		return false
	}
	if _, ok := p.blk.(*preBlock); ok {
		p.out.nl()
	} else if p.blk == nil {
		p.closeAll()
		p.out.html("<pre><code>")
		p.blk = new(preBlock)
	} else {
		return false
	}
	s.skip(4)
	p.out.code(s.consume(len(s.rest())))
	return true
}

// startFencedCode is a [starter] for a fenced code block:
// the opening ``` line, the content lines, and the closing ``` line.
func startFencedCode(p *parser, s *cursor) bool {
	f, ok := p.blk.(*fenceBlock)
	if !ok {
		if p.blk != nil || !s.hasPrefix("```") {
			return false
		}
		p.closeAll()
		s.skip(3)
		if lang := fenceLang(s.rest()); lang != "" {
			p.out.html(`<pre><code lang="`, lang, `">`)
		} else {
			p.out.html("<pre><code>")
		}
		p.blk = &fenceBlock{first: true}
		return true
	}

	if s.hasPrefix("```") {
		f.close(&p.out)
		p.blk = nil
		return true
	}
	if f.first {
		f.first = false
	} else {
		p.out.nl()
	}

	// Copy up to a ``` that is not escaped.
	// Anything after such a ``` is dropped.
	for !s.eof() && !s.hasPrefix("```") {
		if s.hasPrefix("\\`") {
			s.skip(1)
		}
		p.out.code(s.next())
	}
	return true
}

// fenceLang returns the language named by the info string
// after an opening fence, ready for use as an attribute value.
// When the info string has several words, the language is the last.
func fenceLang(info string) string {
	f := strings.Fields(info)
	if len(f) == 0 {
		return ""
	}
	return langEscaper.Replace(f[len(f)-1])
}
