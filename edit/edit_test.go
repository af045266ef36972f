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

package edit

import (
	"strings"
	"testing"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/font"
	"github.com/dodeca-labs/pdfcore/font/pdfenc"
)

type mockGetter struct{ objs map[pdf.Reference]pdf.Object }

func (m *mockGetter) Get(ref pdf.Reference, canObjStm bool) (pdf.Object, error) {
	return m.objs[ref], nil
}
func (m *mockGetter) GetMeta() *pdf.MetaInfo { return &pdf.MetaInfo{} }

// winAnsiResources builds a /Resources dict with one simple TrueType font
// named /F1 using WinAnsiEncoding and no /ToUnicode CMap, so decoding falls
// back to the Adobe Glyph List path exercised by showText in
// graphics/interp.go.
func winAnsiResources() pdf.Dict {
	fd := &font.Dict{
		Subtype:   font.TrueType,
		BaseFont:  "Test",
		FirstChar: 32,
		LastChar:  126,
		Encoding:  font.NewEncoding("WinAnsiEncoding", pdfenc.WinAnsi),
	}
	fonts := pdf.NewDict()
	fonts.Set("F1", fd.AsDict())
	resources := pdf.NewDict()
	resources.Set("Font", fonts)
	return resources
}

func TestFindReplaceSimpleString(t *testing.T) {
	r := &mockGetter{}
	resources := winAnsiResources()
	data := []byte("BT /F1 12 Tf (Hello World) Tj ET")

	out, result, err := FindReplace(r, resources, data, "World", "There", CaseSensitive)
	if err != nil {
		t.Fatal(err)
	}
	if result.Matches != 1 {
		t.Fatalf("Matches = %d, want 1", result.Matches)
	}
	if !strings.Contains(string(out), "(Hello There)") {
		t.Errorf("output = %q, want it to contain %q", out, "(Hello There)")
	}
}

func TestFindReplaceCaseInsensitive(t *testing.T) {
	r := &mockGetter{}
	resources := winAnsiResources()
	data := []byte("BT /F1 12 Tf (hello WORLD) Tj ET")

	out, result, err := FindReplace(r, resources, data, "world", "there", CaseInsensitive)
	if err != nil {
		t.Fatal(err)
	}
	if result.Matches != 1 {
		t.Fatalf("Matches = %d, want 1", result.Matches)
	}
	if !strings.Contains(string(out), "(hello there)") {
		t.Errorf("output = %q, want it to contain %q", out, "(hello there)")
	}
}

func TestFindReplaceTJWithinFragment(t *testing.T) {
	r := &mockGetter{}
	resources := winAnsiResources()
	data := []byte(`BT /F1 12 Tf [(foo) -20 (bar)] TJ ET`)

	out, result, err := FindReplace(r, resources, data, "bar", "baz", CaseSensitive)
	if err != nil {
		t.Fatal(err)
	}
	if result.Matches != 1 {
		t.Fatalf("Matches = %d, want 1", result.Matches)
	}
	if !strings.Contains(string(out), "(foo)") || !strings.Contains(string(out), "(baz)") {
		t.Errorf("output = %q, want untouched (foo) fragment and rewritten (baz)", out)
	}
}

func TestFindReplaceTJAcrossFragments(t *testing.T) {
	r := &mockGetter{}
	resources := winAnsiResources()
	// "fo" + "obar" decodes to "foobar"; the match "oob" spans the
	// fragment boundary and must collapse the array to one string.
	data := []byte(`BT /F1 12 Tf [(fo) -20 (obar)] TJ ET`)

	out, result, err := FindReplace(r, resources, data, "oob", "XYZ", CaseSensitive)
	if err != nil {
		t.Fatal(err)
	}
	if result.Matches != 1 {
		t.Fatalf("Matches = %d, want 1", result.Matches)
	}
	if !strings.Contains(string(out), "(fXYZar)") {
		t.Errorf("output = %q, want a collapsed (fXYZar) string", out)
	}
}

func TestDeleteTextShowingInstruction(t *testing.T) {
	r := &mockGetter{}
	resources := winAnsiResources()
	data := []byte("BT /F1 12 Tf (Hello World) Tj (Unrelated) Tj ET")

	out, result, err := Delete(r, resources, data, "World", CaseSensitive)
	if err != nil {
		t.Fatal(err)
	}
	if result.Matches != 1 {
		t.Fatalf("Matches = %d, want 1", result.Matches)
	}
	if strings.Contains(string(out), "Hello World") {
		t.Errorf("matching instruction was not deleted: %q", out)
	}
	if !strings.Contains(string(out), "(Unrelated)") {
		t.Errorf("unrelated instruction was dropped: %q", out)
	}
}

func TestInsertAppendsTextRun(t *testing.T) {
	r := &mockGetter{}
	resources := winAnsiResources()
	data := []byte("BT /F1 12 Tf (Existing) Tj ET")

	out, err := Insert(r, resources, data, "F1", 10, 72, 700, "New Text")
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "(Existing)") {
		t.Errorf("original content lost: %q", s)
	}
	if !strings.Contains(s, "/F1 10 Tf") || !strings.Contains(s, "72 700 Td") || !strings.Contains(s, "(New Text) Tj") {
		t.Errorf("inserted run missing expected operators: %q", s)
	}
}

func TestFindReplaceLeavesUnencodableTextUntouched(t *testing.T) {
	r := &mockGetter{}
	resources := winAnsiResources()
	data := []byte("BT /F1 12 Tf (Hello) Tj ET")

	// U+4E2D has no code point in WinAnsiEncoding, so the replacement
	// cannot be re-encoded and the instruction must be left as-is.
	out, result, err := FindReplace(r, resources, data, "Hello", "中", CaseSensitive)
	if err != nil {
		t.Fatal(err)
	}
	if result.Matches != 0 {
		t.Fatalf("Matches = %d, want 0 for an unencodable replacement", result.Matches)
	}
	if !strings.Contains(string(out), "(Hello)") {
		t.Errorf("instruction should be unchanged: %q", out)
	}
}
