// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import "fmt"

// maxHeading is the deepest heading level, written ######.
const maxHeading = 6

// startATXHeading is a [starter] for a heading, like "## Heading".
// The number of leading #s, up to six, is the level;
// any further #s are part of the text.
// Headings are single lines and cannot interrupt another block.
func startATXHeading(p *parser, s *cursor) bool {
	if p.blk != nil || s.peek() != '#' {
		return false
	}
	n := 0
	for n < maxHeading && s.peek() == '#' {
		s.skip(1)
		n++
	}
	p.closeAll()
	fmt.Fprintf(&p.out, "<h%d>", n)
	s.trimSpace()
	p.inline(s, &p.out)
	p.closeSpans(&p.out)
	fmt.Fprintf(&p.out, "</h%d>\n", n)
	return true
}
