// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nfm converts No-Flavor Markdown to HTML.

No-Flavor Markdown is a small, fixed markup language.
It borrows the look of Markdown but not its rules:
there is no nesting of blocks, no lazy continuation,
and every construct that is not complete is simply text.
A document is read one line at a time, and the HTML
is written as the lines are read.

# Blocks

Each line belongs to at most one open block.
The first rule in this list that matches a line decides what it is:

	(blank line)      ends every block except a code fence
	# Heading         <h1> through <h6>, by the number of #s
	- - -             <hr />
	- item            unordered list item
	0. item           ordered list item
	    code          four spaces: preformatted code
	```lang           fenced code, until the next ``` line
	> quote           block quote
	| cell | cell     table row
	text              paragraph, or more text for the current list item

List items nest one level deeper for every four spaces of indentation.
A paragraph line may start with \#, \-, \>, \0, \|, \ , \` or \\
to keep that character from starting a block.

# Inline text

Within headings, paragraphs, list items, quotes and table cells:

	**strong**  _em_  ~~del~~  ++ins++  ==mark==  ^sup^  `code`
	[text](href)    link; the text may be formatted
	![alt](src)     image
	<id>            anchor: <a id="id"></a>
	[ ] and [x]     disabled checkboxes
	(two spaces)    at the end of a line: <br />

The markers are toggles: each one opens its element if it is closed
and closes it if it is open. Elements left open at the end of a block
are closed there.

A backslash before any marker character writes that character.
Other < and > characters are written as &lt; and &gt;;
& is passed through so that entities can be written directly.

# Tables

Each | in a table row starts a cell. Flags written directly after
the | describe the cell, in this order:

	=  or  -     header cell with column or row scope
	$  or  ^     right or left alignment (default center)
	t, m or b    top, middle or bottom alignment (default baseline)
	digits       column span
	,digits      row span

An _ in any position spells out the default. For example,
"|=$t,2 Total" is a right-aligned, top-aligned column header
spanning two rows.
*/
package nfm
