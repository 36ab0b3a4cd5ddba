// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// A listKind is the kind of a single list level.
type listKind uint8

const (
	unordered listKind = iota // - item
	ordered                   // 0. item
)

func (k listKind) marker() string {
	if k == ordered {
		return "0."
	}
	return "-"
}

func (k listKind) open() string {
	if k == ordered {
		return "<ol>"
	}
	return "<ul>"
}

func (k listKind) close() string {
	if k == ordered {
		return "</ol>"
	}
	return "</ul>"
}

// A listBlock is a stack of open list levels, outermost first.
// Each level's close tag is written when the level is popped.
//
// An item's <li> stays open until the next item or the end of the
// list, so nested levels appear inside the running text of the list
// rather than inside an <li>.
type listBlock struct {
	levels []listKind
}

// depth returns the number of open levels.
func (b *listBlock) depth() int {
	return len(b.levels)
}

// reconcile opens or closes levels until the list is depth levels deep.
// New levels are of the given kind; the kind of an existing level
// never changes.
func (b *listBlock) reconcile(w *printer, depth int, kind listKind) {
	for len(b.levels) > depth {
		w.html(b.levels[len(b.levels)-1].close())
		b.levels = b.levels[:len(b.levels)-1]
	}
	for len(b.levels) < depth {
		w.html(kind.open())
		b.levels = append(b.levels, kind)
	}
}

func (b *listBlock) close(w *printer) {
	w.html("</li>")
	b.reconcile(w, 0, unordered)
	w.nl()
}

// list returns the open list, or nil.
func (p *parser) list() *listBlock {
	b, _ := p.blk.(*listBlock)
	return b
}

// startListItem is a [starter] for a list item, which is
// a - or 0. marker after any number of spaces.
// Every four spaces of indentation nest the item one level deeper.
func startListItem(p *parser, s *cursor) bool {
	if p.blk != nil && p.list() == nil {
		return false
	}
	var kind listKind
	switch {
	case s.trimmedHasPrefix(unordered.marker()):
		kind = unordered
	case s.trimmedHasPrefix(ordered.marker()):
		kind = ordered
	default:
		return false
	}

	p.closeSpans(&p.out)
	b := p.list()
	if b != nil {
		p.out.html("</li>")
	} else {
		b = new(listBlock)
		p.blk = b
	}
	depth := s.indent() + 1
	s.skip(len(kind.marker()))
	b.reconcile(&p.out, depth, kind)
	p.out.html("<li>")
	s.trimSpace()
	p.inline(s, &p.out)
	return true
}

// continueListItem is a [starter] for a line that continues
// the current list item: any non-blank line inside a list
// that starts nothing else.
// Open spans carry over from the previous line.
func continueListItem(p *parser, s *cursor) bool {
	if p.list() == nil {
		return false
	}
	p.out.nl()
	s.trimSpace()
	p.inline(s, &p.out)
	return true
}
