// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// startThematicBreak is a [starter] for a horizontal rule,
// which is exactly "- - -" on a line of its own.
// It is checked before list items, which it otherwise resembles.
func startThematicBreak(p *parser, s *cursor) bool {
	if p.blk != nil || !s.is("- - -") {
		return false
	}
	p.closeAll()
	p.out.html("<hr />\n")
	return true
}
