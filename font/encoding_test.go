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

import (
	"testing"

	"github.com/dodeca-labs/pdfcore"
)

func TestEncodingDifferences(t *testing.T) {
	fd := &Dict{BaseFont: "Test", Descriptor: &Descriptor{}}
	g := &mockGetter{}

	d := pdf.NewDict()
	d.Set("BaseEncoding", pdf.Name("WinAnsiEncoding"))
	d.Set("Differences", pdf.Array{
		pdf.Integer(65), pdf.Name("Agrave"), pdf.Name("Aacute"),
		pdf.Integer(100), pdf.Name("dcroat"),
	})

	enc, err := ExtractEncoding(g, d, fd)
	if err != nil {
		t.Fatal(err)
	}
	if enc.Decode(65) != "Agrave" || enc.Decode(66) != "Aacute" {
		t.Errorf("consecutive differences not applied: %q %q", enc.Decode(65), enc.Decode(66))
	}
	if enc.Decode(100) != "dcroat" {
		t.Errorf("wrong override at 100: %q", enc.Decode(100))
	}
	if enc.Decode(32) != "space" {
		t.Errorf("base encoding not used for untouched code: %q", enc.Decode(32))
	}
}

func TestEncodingAsObjectRoundTrip(t *testing.T) {
	fd := &Dict{BaseFont: "Test", Descriptor: &Descriptor{}}
	g := &mockGetter{}

	enc1, _ := ExtractEncoding(g, pdf.Name("WinAnsiEncoding"), fd)
	enc1.SetDifference(1, "bullet")

	obj := enc1.AsObject()
	enc2, err := ExtractEncoding(g, obj, fd)
	if err != nil {
		t.Fatal(err)
	}
	if enc2.Decode(1) != "bullet" {
		t.Errorf("round trip lost difference: %q", enc2.Decode(1))
	}
	if enc2.Decode(65) != "A" {
		t.Errorf("round trip lost base encoding: %q", enc2.Decode(65))
	}
}

func TestSymbolicFontDefaultsToBuiltinEncoding(t *testing.T) {
	fd := &Dict{BaseFont: "Symbol", Descriptor: &Descriptor{Flags: FlagSymbolic}}
	g := &mockGetter{}

	enc, err := ExtractEncoding(g, nil, fd)
	if err != nil {
		t.Fatal(err)
	}
	if enc.Decode(97) != "alpha" {
		t.Errorf("Symbol built-in encoding not used: %q", enc.Decode(97))
	}
}
