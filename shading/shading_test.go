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

package shading

import (
	"testing"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/graphics/color"
)

type mockGetter struct{ objs map[pdf.Reference]pdf.Object }

func (m *mockGetter) GetMeta() *pdf.MetaInfo { return &pdf.MetaInfo{} }
func (m *mockGetter) Get(ref pdf.Reference, canObjStm bool) (pdf.Object, error) {
	return m.objs[ref], nil
}

func floatArray(vs ...float64) pdf.Array {
	arr := make(pdf.Array, len(vs))
	for i, v := range vs {
		arr[i] = pdf.Real(v)
	}
	return arr
}

func TestTriangulateFreeForm(t *testing.T) {
	r := &mockGetter{}
	dict := pdf.NewDict()
	dict.Set("BitsPerFlag", pdf.Integer(8))
	dict.Set("BitsPerCoordinate", pdf.Integer(8))
	dict.Set("BitsPerComponent", pdf.Integer(8))
	dict.Set("Decode", floatArray(0, 1, 0, 1, 0, 1, 0, 1, 0, 1))

	data := []byte{
		0, 0, 0, 255, 0, 0,
		0, 255, 0, 0, 255, 0,
		0, 0, 255, 0, 0, 255,
	}

	tris, err := Triangulate(r, 4, data, dict, color.DeviceRGB, nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	tri := tris[0]
	wantX := [3]float64{0, 1, 0}
	wantY := [3]float64{0, 0, 1}
	if tri.X != wantX || tri.Y != wantY {
		t.Errorf("positions = %v/%v, want %v/%v", tri.X, tri.Y, wantX, wantY)
	}
	if tri.R[0] < 0.99 || tri.G[1] < 0.99 || tri.B[2] < 0.99 {
		t.Errorf("unexpected colours: R=%v G=%v B=%v", tri.R, tri.G, tri.B)
	}
}

func TestTriangulateLattice(t *testing.T) {
	r := &mockGetter{}
	dict := pdf.NewDict()
	dict.Set("BitsPerCoordinate", pdf.Integer(8))
	dict.Set("BitsPerComponent", pdf.Integer(8))
	dict.Set("Decode", floatArray(0, 1, 0, 1, 0, 1, 0, 1, 0, 1))
	dict.Set("VerticesPerRow", pdf.Integer(2))

	data := []byte{
		0, 0, 0, 0, 0, // row0 col0: (0,0) black
		255, 0, 255, 255, 255, // row0 col1: (1,0) white
		0, 255, 0, 0, 0, // row1 col0: (0,1) black
		255, 255, 255, 255, 255, // row1 col1: (1,1) white
	}

	tris, err := Triangulate(r, 5, data, dict, color.DeviceRGB, nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}
}

func TestTriangulateUnknownType(t *testing.T) {
	r := &mockGetter{}
	dict := pdf.NewDict()
	if _, err := Triangulate(r, 2, nil, dict, color.DeviceRGB, nil); err == nil {
		t.Fatal("expected error for non-mesh shading type")
	}
}
