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

	"seehuhn.de/go/postscript/type1/names"
)

func TestMacRoman(t *testing.T) {
	for c := 0; c < 256; c++ {
		name := MacRomanEncoding[c]
		if name == ".notdef" {
			continue
		}
		rr := names.ToUnicode(name, false)
		if len(rr) != 1 {
			t.Errorf("len(rr) != 1 for %d (%s)", c, name)
		}
	}
}
