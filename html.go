// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import "strings"

// Only < and > are escaped in running text.
// Ampersands and quotes pass through so that authors can write entities.
var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
)

// Preformatted and fenced code also keep their spacing.
var codeEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	" ", "&nbsp;",
)

// The fence info string becomes an attribute value,
// so quotes are dropped rather than escaped.
var langEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "",
	"'", "",
)
