// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// A span is one of the inline toggles.
//
// Toggles do not nest with themselves: each marker simply flips
// its span open or closed, and spans close in whatever order the
// text asks for. Block transitions close anything left open.
type span uint8

const (
	spanStrong span = 1 << iota
	spanEm
	spanDel
	spanIns
	spanMark
	spanSup
	spanCode
)

// closeOrder is the order in which dangling spans are closed.
var closeOrder = [...]span{spanStrong, spanEm, spanDel, spanIns, spanMark, spanSup, spanCode}

func (x span) tag() string {
	switch x {
	case spanStrong:
		return "strong"
	case spanEm:
		return "em"
	case spanDel:
		return "del"
	case spanIns:
		return "ins"
	case spanMark:
		return "mark"
	case spanSup:
		return "sup"
	case spanCode:
		return "code"
	}
	panic("nfm: bad span")
}

// An inlineParser tries to parse an inline construct at the start of s,
// writing its HTML to w. It reports whether it consumed anything;
// when it does, it always consumes at least one byte.
type inlineParser func(p *parser, s *cursor, w *printer) bool

// inline parses the remainder of s as inline text, writing HTML to w.
func (p *parser) inline(s *cursor, w *printer) {
	for !s.eof() {
		// Determine the parser based on leading character.
		// Inside a code span only escapes and the closing backtick count.
		var parser inlineParser
		switch c := s.peek(); {
		case c == '\\':
			parser = parseEscape
		case c == '`':
			parser = parseCode
		case p.spans&spanCode != 0:
			// literal
		case c == ' ':
			parser = parseBreak
		case c == '*':
			parser = parseStrong
		case c == '_':
			parser = parseEm
		case c == '~':
			parser = parseDel
		case c == '+':
			parser = parseIns
		case c == '=':
			parser = parseMark
		case c == '^':
			parser = parseSup
		case c == '<':
			parser = parseAnchor
		case c == '[':
			parser = parseBracket
		case c == '!':
			parser = parseImage
		case c == '|':
			parser = parseCell
		}
		if parser != nil && parser(p, s, w) {
			continue
		}
		p.inlineText(s, w)
	}
}

// inlineString parses text as inline text and returns the HTML.
// Toggle state is shared with the enclosing text.
func (p *parser) inlineString(text string) string {
	var w printer
	p.inline(newCursor(text), &w)
	return w.String()
}

// inlineText writes a single character of plain text.
func (p *parser) inlineText(s *cursor, w *printer) {
	// Padding before a cell delimiter lets authors line up columns.
	if p.table() != nil && s.peek() == ' ' && s.trimmedHasPrefix("|") {
		s.trimSpace()
		return
	}
	w.text(s.next())
}

// toggle flips span x if s starts with marker.
func (p *parser) toggle(s *cursor, w *printer, x span, marker string) bool {
	if !s.hasPrefix(marker) {
		return false
	}
	s.skip(len(marker))
	if p.spans&x != 0 {
		w.html("</", x.tag(), ">")
	} else {
		w.html("<", x.tag(), ">")
	}
	p.spans ^= x
	return true
}

// closeSpans closes every open span.
func (p *parser) closeSpans(w *printer) {
	for _, x := range closeOrder {
		if p.spans&x != 0 {
			w.html("</", x.tag(), ">")
		}
	}
	p.spans = 0
}

func parseStrong(p *parser, s *cursor, w *printer) bool { return p.toggle(s, w, spanStrong, "**") }
func parseEm(p *parser, s *cursor, w *printer) bool     { return p.toggle(s, w, spanEm, "_") }
func parseDel(p *parser, s *cursor, w *printer) bool    { return p.toggle(s, w, spanDel, "~~") }
func parseIns(p *parser, s *cursor, w *printer) bool    { return p.toggle(s, w, spanIns, "++") }
func parseMark(p *parser, s *cursor, w *printer) bool   { return p.toggle(s, w, spanMark, "==") }
func parseSup(p *parser, s *cursor, w *printer) bool    { return p.toggle(s, w, spanSup, "^") }
func parseCode(p *parser, s *cursor, w *printer) bool   { return p.toggle(s, w, spanCode, "`") }

// escapes lists the backslash escapes that stand for their own text.
var escapes = []string{
	`\\`,
	`\*`,
	`\_`,
	`\~`,
	`\+`,
	`\=`,
	"\\`",
	`\^`,
	`\[`,
	`\![`,
	`\|`,
}

func parseEscape(_ *parser, s *cursor, w *printer) bool {
	for _, e := range escapes {
		if s.hasPrefix(e) {
			s.skip(1)
			w.html(s.consume(len(e) - 1))
			return true
		}
	}
	if s.hasPrefix(`\<`) {
		s.skip(2)
		w.html("&lt;")
		return true
	}
	return false
}

// parseBreak handles two trailing spaces, which end the line with <br />.
func parseBreak(_ *parser, s *cursor, w *printer) bool {
	if !s.is("  ") {
		return false
	}
	s.skip(2)
	w.html("<br />")
	return true
}

// parseBracket handles checkboxes and links, both of which start with [.
func parseBracket(p *parser, s *cursor, w *printer) bool {
	switch {
	case s.hasPrefix("[ ]"):
		s.skip(3)
		w.html(`<input type="checkbox" disabled="disabled" />`)
		return true
	case s.hasPrefix("[x]"):
		s.skip(3)
		w.html(`<input type="checkbox" disabled="disabled" checked="checked" />`)
		return true
	}
	return parseLink(p, s, w)
}
