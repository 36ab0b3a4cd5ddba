// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parse converts the nfm document text to HTML.
// Every input has an HTML rendering: constructs that are not
// complete are written out as the literal text they came from.
func Parse(text string) string {
	p := &parser{src: lineSource{text}}
	p.parse()
	return p.out.String()
}

// ParseFile reads the named file and converts it to HTML.
// The only errors are those from reading the file.
func ParseFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader reads r to EOF and converts the text to HTML.
// A leading UTF-8 byte order mark is dropped;
// a UTF-16 byte order mark selects UTF-16 decoding.
func ParseReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return "", fmt.Errorf("nfm: reading input: %w", err)
	}
	return Parse(string(data)), nil
}

// A parser is the state of a single conversion.
// It sees one line at a time and writes HTML as it goes;
// nothing about earlier lines is kept except which
// block and spans are still open.
type parser struct {
	src   lineSource
	s     cursor
	out   printer
	blk   block // open block, or nil
	spans span  // open inline spans
}

// A block is an open block-level element.
// At most one is open at a time.
// Its state lives in the concrete type:
// a list its levels, a table its pending cell.
type block interface {
	// close writes the element's closing tags.
	close(w *printer)
}

// A starter is a function that tries to handle the line s as
// a particular kind of block, writing HTML for it.
// It reports whether the line was handled.
type starter func(p *parser, s *cursor) bool

// starters lists the block rules in priority order; the first
// to accept a line handles it. The paragraph rule accepts
// every line, so it comes last.
var starters = []starter{
	startBlank,
	startATXHeading,
	startThematicBreak,
	startListItem,
	startIndentedCode,
	startFencedCode,
	startBlockQuote,
	startTableRow,
	continueListItem,
	startParagraph,
}

func (p *parser) parse() {
	for {
		text, ok := p.src.next()
		if !ok {
			break
		}
		p.s.reset(text)
		for _, start := range starters {
			if start(p, &p.s) {
				break
			}
		}
	}
	p.closeAll()
	if f, ok := p.blk.(*fenceBlock); ok {
		f.close(&p.out)
		p.blk = nil
	}
}

// closeAll closes the open spans and the open block,
// except that a code fence stays open until its closing ```.
func (p *parser) closeAll() {
	p.closeSpans(&p.out)
	if _, ok := p.blk.(*fenceBlock); ok {
		return
	}
	p.closeBlock()
}

// closeBlock closes the open block, if any.
func (p *parser) closeBlock() {
	if p.blk != nil {
		p.blk.close(&p.out)
		p.blk = nil
	}
}

// startBlank is a [starter] for a blank line,
// which ends every block except a code fence.
func startBlank(p *parser, s *cursor) bool {
	if !s.eof() {
		return false
	}
	p.closeAll()
	p.out.nl()
	return true
}
