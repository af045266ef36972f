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

package font

import "testing"

func TestParseToUnicodeCMap(t *testing.T) {
	src := []byte(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
2 beginbfchar
<0003> <0048>
<0004> <0065>
endbfchar
1 beginbfrange
<0005> <0007> <006C>
endbfrange
endcmap
end
end`)

	m, err := ParseToUnicodeCMap(src)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		code uint32
		want string
	}{
		{3, "H"}, {4, "e"}, {5, "l"}, {6, "m"}, {7, "n"},
	}
	for _, c := range cases {
		got, ok := m.Lookup(c.code)
		if !ok || got != c.want {
			t.Errorf("Lookup(%d) = %q, %v; want %q", c.code, got, ok, c.want)
		}
	}
	if _, ok := m.Lookup(999); ok {
		t.Error("Lookup(999) should miss")
	}
}

func TestToUnicodeCMapEncodeRoundTrip(t *testing.T) {
	orig := NewToUnicodeCMap(map[uint32]string{
		1: "A", 2: "B", 0x1234: "中",
	})
	encoded := orig.Encode()

	m, err := ParseToUnicodeCMap(encoded)
	if err != nil {
		t.Fatal(err)
	}
	for code, want := range map[uint32]string{1: "A", 2: "B", 0x1234: "中"} {
		got, ok := m.Lookup(code)
		if !ok || got != want {
			t.Errorf("Lookup(%d) = %q, %v; want %q", code, got, ok, want)
		}
	}
}
