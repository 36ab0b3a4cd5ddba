// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isSpace reports whether c is a space.
// Only ASCII space counts: tabs are text in nfm.
func isSpace(c byte) bool {
	return c == ' '
}
