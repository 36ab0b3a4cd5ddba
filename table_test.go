// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import "testing"

var cellFlagsTests = []struct {
	in   string
	want cellFlags
	rest string
}{
	{"", cellFlags{align: "center", valign: "baseline", colspan: "1", rowspan: "1"}, ""},
	{" x", cellFlags{align: "center", valign: "baseline", colspan: "1", rowspan: "1"}, " x"},
	{"= x", cellFlags{header: true, scope: "col", align: "center", valign: "baseline", colspan: "1", rowspan: "1"}, " x"},
	{"- x", cellFlags{header: true, scope: "row", align: "center", valign: "baseline", colspan: "1", rowspan: "1"}, " x"},
	{"=$t,2 Header", cellFlags{header: true, scope: "col", align: "right", valign: "top", colspan: "1", rowspan: "2"}, " Header"},
	{"-^m3 Name", cellFlags{header: true, scope: "row", align: "left", valign: "middle", colspan: "3", rowspan: "1"}, " Name"},
	{"_$b_,_ Value", cellFlags{align: "right", valign: "bottom", colspan: "1", rowspan: "1"}, " Value"},
	{"___ x", cellFlags{align: "center", valign: "baseline", colspan: "1", rowspan: "1"}, " x"},
	{"_0012", cellFlags{align: "center", valign: "baseline", colspan: "12", rowspan: "1"}, ""},
	{"10,01", cellFlags{align: "center", valign: "baseline", colspan: "10", rowspan: "1"}, ""},
	{",3", cellFlags{align: "center", valign: "baseline", colspan: "1", rowspan: "3"}, ""},
	{"0,0", cellFlags{align: "center", valign: "baseline", colspan: "1", rowspan: "1"}, ""},
	{"2_3", cellFlags{align: "center", valign: "baseline", colspan: "2", rowspan: "1"}, "_3"},
	{"top", cellFlags{align: "center", valign: "top", colspan: "1", rowspan: "1"}, "op"},
	{"$=", cellFlags{align: "right", valign: "baseline", colspan: "1", rowspan: "1"}, "="},
	{"m$", cellFlags{align: "center", valign: "middle", colspan: "1", rowspan: "1"}, "$"},
	{"=x", cellFlags{header: true, scope: "col", align: "center", valign: "baseline", colspan: "1", rowspan: "1"}, "x"},
	{"99999999999999999999", cellFlags{align: "center", valign: "baseline", colspan: "99999999999999999999", rowspan: "1"}, ""},
}

func TestParseCellFlags(t *testing.T) {
	for _, tt := range cellFlagsTests {
		s := newCursor(tt.in)
		f := parseCellFlags(s)
		if f != tt.want || s.rest() != tt.rest {
			t.Errorf("parseCellFlags(%#q) = %+v, rest %#q\nwant %+v, rest %#q", tt.in, f, s.rest(), tt.want, tt.rest)
		}
	}
}

func TestCellFlagsTags(t *testing.T) {
	th := cellFlags{header: true, scope: "col", align: "right", valign: "top", colspan: "1", rowspan: "2"}
	if have, want := th.open(), `<th scope="col" align="right" valign="top" colspan="1" rowspan="2">`; have != want {
		t.Errorf("open() = %#q, want %#q", have, want)
	}
	if have := th.close(); have != "</th>" {
		t.Errorf("close() = %#q, want </th>", have)
	}

	td := cellFlags{align: "center", valign: "baseline", colspan: "4", rowspan: "1"}
	if have, want := td.open(), `<td align="center" valign="baseline" colspan="4" rowspan="1">`; have != want {
		t.Errorf("open() = %#q, want %#q", have, want)
	}
	if have := td.close(); have != "</td>" {
		t.Errorf("close() = %#q, want </td>", have)
	}
}

func TestTableBlockClose(t *testing.T) {
	var w printer
	tb := &tableBlock{cell: "</th>"}
	tb.close(&w)
	if have, want := w.String(), "</th></tr></tbody></table>\n"; have != want {
		t.Errorf("close with open cell wrote %q, want %q", have, want)
	}
	if tb.cell != "" {
		t.Errorf("close left pending cell %q", tb.cell)
	}

	w = printer{}
	new(tableBlock).close(&w)
	if have, want := w.String(), "</tr></tbody></table>\n"; have != want {
		t.Errorf("close without cell wrote %q, want %q", have, want)
	}
}
