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
	"github.com/dodeca-labs/pdfcore/font/pdfenc"
)

type mockGetter struct {
	objs map[pdf.Reference]pdf.Object
	meta pdf.MetaInfo
}

func (m *mockGetter) Get(ref pdf.Reference, canObjStm bool) (pdf.Object, error) {
	return m.objs[ref], nil
}

func (m *mockGetter) GetMeta() *pdf.MetaInfo { return &m.meta }

func TestSimpleFontRoundTrip(t *testing.T) {
	descRef := pdf.NewReference(2, 0)
	g := &mockGetter{objs: map[pdf.Reference]pdf.Object{
		descRef: (&Descriptor{
			FontName:  "Deja-Test",
			Flags:     FlagNonsymbolic,
			Ascent:    900,
			Descent:   -200,
			CapHeight: 700,
			StemV:     80,
		}).AsDict(),
	}}

	fd := &Dict{
		Subtype:   TrueType,
		BaseFont:  "Deja-Test",
		FirstChar: 65,
		LastChar:  67,
		Widths:    []float64{600, 600, 600},
		Encoding:  NewEncoding("WinAnsiEncoding", pdfenc.WinAnsi),
	}
	d := fd.AsDict()
	d.Set("FontDescriptor", descRef)

	got, err := ExtractDict(g, d)
	if err != nil {
		t.Fatal(err)
	}
	if got.BaseFont != fd.BaseFont || got.FirstChar != 65 || got.LastChar != 67 {
		t.Errorf("wrong dict: %+v", got)
	}
	if got.Width(66) != 600 {
		t.Errorf("Width(66) = %v, want 600", got.Width(66))
	}
	if got.Width(999) != got.MissingWidth {
		t.Errorf("out-of-range code should use MissingWidth")
	}
	if got.Descriptor == nil || got.Descriptor.FontName != "Deja-Test" {
		t.Errorf("descriptor not round-tripped: %+v", got.Descriptor)
	}
}

func TestCompositeFontWidths(t *testing.T) {
	d := pdf.NewDict()
	d.Set("Type", pdf.Name("Font"))
	d.Set("Subtype", pdf.Name("Type0"))
	d.Set("BaseFont", pdf.Name("Test-Identity-H"))

	cd := pdf.NewDict()
	cd.Set("Type", pdf.Name("Font"))
	cd.Set("Subtype", pdf.Name("CIDFontType2"))
	cd.Set("DW", pdf.Real(750))
	cd.Set("W", pdf.Array{
		pdf.Integer(3), pdf.Array{pdf.Real(100), pdf.Real(200)},
		pdf.Integer(10), pdf.Integer(12), pdf.Real(500),
	})
	d.Set("DescendantFonts", pdf.Array{cd})

	g := &mockGetter{objs: map[pdf.Reference]pdf.Object{}}
	fd, err := ExtractDict(g, d)
	if err != nil {
		t.Fatal(err)
	}
	if fd.Width(3) != 100 || fd.Width(4) != 200 {
		t.Errorf("explicit widths wrong: %v %v", fd.Width(3), fd.Width(4))
	}
	if fd.Width(11) != 500 {
		t.Errorf("range width wrong: %v", fd.Width(11))
	}
	if fd.Width(999) != 750 {
		t.Errorf("default width wrong: %v", fd.Width(999))
	}
}
