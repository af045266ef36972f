// pdfcore - a PDF 1.x/2.0 document engine
// Copyright (C) 2024 The pdfcore Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfenc

import (
	"testing"

	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/postscript/type1/names"
)

// TestStandardEncoding verifies that every non-.notdef glyph name in the
// table decodes to exactly one rune via the Adobe Glyph List.
func TestStandardEncoding(t *testing.T) {
	for code, name := range StandardEncoding {
		if name == ".notdef" {
			continue
		}
		rr := names.ToUnicode(string(name), false)
		if len(rr) != 1 {
			t.Errorf("StandardEncoding[%d] = %q: bad glyph name", code, name)
		}
	}
}

// TestStandardEncoding2 tests that the PDF standard encoding is
// the same as the postscript standard encoding.
func TestStandardEncoding2(t *testing.T) {
	for code, name := range StandardEncoding {
		if string(name) != psenc.StandardEncoding[code] {
			t.Errorf("StandardEncoding[%d] = %q != %q", code, name, psenc.StandardEncoding[code])
		}
	}
}
