// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// A tableBlock is an open table. Rows are lines starting with |,
// and each further | starts a new cell.
type tableBlock struct {
	cell string // closing tag of the open cell, if any
}

func (t *tableBlock) closeCell(w *printer) {
	if t.cell != "" {
		w.html(t.cell)
		t.cell = ""
	}
}

func (t *tableBlock) close(w *printer) {
	t.closeCell(w)
	w.html("</tr></tbody></table>\n")
}

// table returns the open table, or nil.
func (p *parser) table() *tableBlock {
	t, _ := p.blk.(*tableBlock)
	return t
}

// startTableRow is a [starter] for a table row.
// A new table must start in column 0;
// continuation rows may be indented.
func startTableRow(p *parser, s *cursor) bool {
	t := p.table()
	switch {
	case t != nil:
		if !s.trimmedHasPrefix("|") {
			return false
		}
	case p.blk != nil || !s.hasPrefix("|"):
		return false
	}

	p.closeSpans(&p.out)
	if t != nil {
		t.closeCell(&p.out)
		p.out.html("</tr><tr>")
	} else {
		p.out.html("<table><tbody><tr>")
		p.blk = new(tableBlock)
	}
	p.inline(s, &p.out)
	return true
}

// parseCell handles a | inside a table, closing the previous
// cell and opening the next one as described by its flags.
func parseCell(p *parser, s *cursor, w *printer) bool {
	t := p.table()
	if t == nil {
		return false
	}
	s.skip(1)
	t.closeCell(w)
	f := parseCellFlags(s)
	s.trimSpace()
	w.html(f.open())
	t.cell = f.close()
	return true
}

// cellFlags describes a table cell.
//
// The flags follow the | directly, each optional but in this order:
//
//	role     = (header, column scope)  - (header, row scope)  _ (data)
//	align    $ (right)  ^ (left)  _ (center)
//	valign   t (top)  m (middle)  b (bottom)  _ (baseline)
//	colspan  digits
//	rowspan  , digits
//
// The _ forms spell out the default so that flags can be lined up.
type cellFlags struct {
	header  bool
	scope   string
	align   string
	valign  string
	colspan string
	rowspan string
}

func parseCellFlags(s *cursor) cellFlags {
	f := cellFlags{
		align:   "center",
		valign:  "baseline",
		colspan: "1",
		rowspan: "1",
	}

	switch s.peek() {
	case '=':
		f.header, f.scope = true, "col"
		s.skip(1)
	case '-':
		f.header, f.scope = true, "row"
		s.skip(1)
	case '_':
		s.skip(1)
	}

	switch s.peek() {
	case '$':
		f.align = "right"
		s.skip(1)
	case '^':
		f.align = "left"
		s.skip(1)
	case '_':
		s.skip(1)
	}

	switch s.peek() {
	case 't':
		f.valign = "top"
		s.skip(1)
	case 'm':
		f.valign = "middle"
		s.skip(1)
	case 'b':
		f.valign = "bottom"
		s.skip(1)
	case '_':
		s.skip(1)
	}

	f.colspan = parseSpan(s)
	if s.peek() == ',' {
		s.skip(1)
		f.rowspan = parseSpan(s)
	}
	return f
}

// parseSpan parses a column or row span.
// Leading _ and 0 characters are placeholders and are skipped;
// the digits after them are kept as written.
// A missing or empty span is 1.
func parseSpan(s *cursor) string {
	for c := s.peek(); c == '_' || c == '0'; c = s.peek() {
		s.skip(1)
	}
	n := 0
	for rest := s.rest(); n < len(rest) && isDigit(rest[n]); {
		n++
	}
	if n == 0 {
		return "1"
	}
	return s.consume(n)
}

func (f cellFlags) open() string {
	attrs := `align="` + f.align + `" valign="` + f.valign +
		`" colspan="` + f.colspan + `" rowspan="` + f.rowspan + `">`
	if f.header {
		return `<th scope="` + f.scope + `" ` + attrs
	}
	return "<td " + attrs
}

func (f cellFlags) close() string {
	if f.header {
		return "</th>"
	}
	return "</td>"
}
