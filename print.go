// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import "bytes"

// A printer accumulates HTML output.
// One printer holds the whole document;
// link labels are rendered into their own printer first.
type printer struct {
	buf bytes.Buffer
}

func (p *printer) Write(text []byte) (int, error) {
	return p.buf.Write(text)
}

// html writes raw HTML.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes running text, escaping < and >.
func (p *printer) text(s string) {
	htmlEscaper.WriteString(&p.buf, s)
}

// code writes preformatted text, escaping < and > and spaces.
func (p *printer) code(s string) {
	codeEscaper.WriteString(&p.buf, s)
}

func (p *printer) nl() {
	p.buf.WriteByte('\n')
}

func (p *printer) String() string {
	return p.buf.String()
}
