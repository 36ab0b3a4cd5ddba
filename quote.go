// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// A quoteBlock is an open block quote.
// Each line starting with > adds a line to it.
type quoteBlock struct{}

func (*quoteBlock) close(w *printer) {
	w.html("</blockquote>\n")
}

// startBlockQuote is a [starter] for a block quote line.
// Spans stay open from one quoted line to the next.
func startBlockQuote(p *parser, s *cursor) bool {
	if s.peek() != '>' {
		return false
	}
	if _, ok := p.blk.(*quoteBlock); ok {
		p.out.nl()
	} else if p.blk == nil {
		p.closeAll()
		p.out.html("<blockquote>")
		p.blk = new(quoteBlock)
	} else {
		return false
	}
	s.skip(1)

	// A quote line holding only a hard break
	// must keep its two spaces.
	if !s.is("  ") {
		s.trimSpace()
	}
	p.inline(s, &p.out)
	return true
}
