// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// A paraBlock is an open paragraph.
type paraBlock struct{}

func (*paraBlock) close(w *printer) {
	w.html("</p>\n")
}

// startParagraph is a [starter] for a paragraph line.
// It accepts every line, so it must be the last starter.
// Consecutive lines join into one paragraph, and spans
// opened on one line may close on a later one.
func startParagraph(p *parser, s *cursor) bool {
	if _, ok := p.blk.(*paraBlock); ok {
		p.out.nl()
	} else {
		p.closeAll()
		p.out.html("<p>")
		p.blk = new(paraBlock)
	}
	trimBlockEscape(s, &p.out)
	p.inline(s, &p.out)
	return true
}

// blockEscapes lists the escapes that let a paragraph line
// start with a character that would otherwise begin another block.
var blockEscapes = []string{
	`\#`,
	`\-`,
	`\>`,
	`\0`,
	`\|`,
	`\ `,
	"\\`",
}

// trimBlockEscape removes the backslash from a block escape
// at the start of s.
// The escaped character is left for inline parsing,
// except that a leading \\ is written out as a single \.
func trimBlockEscape(s *cursor, w *printer) {
	for _, e := range blockEscapes {
		if s.hasPrefix(e) {
			s.skip(1)
			return
		}
	}
	if s.hasPrefix(`\\`) {
		s.skip(1)
		w.html(s.consume(1))
	}
}
