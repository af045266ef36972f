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

package function

import (
	"testing"

	"github.com/dodeca-labs/pdfcore"
)

type mockGetter struct {
	objs map[pdf.Reference]pdf.Object
	meta pdf.MetaInfo
}

func (m *mockGetter) Get(ref pdf.Reference, canObjStm bool) (pdf.Object, error) {
	return m.objs[ref], nil
}

func (m *mockGetter) GetMeta() *pdf.MetaInfo { return &m.meta }

func TestExtractType2(t *testing.T) {
	g := &mockGetter{}
	d := pdf.NewDict()
	d.Set("FunctionType", pdf.Integer(2))
	d.Set("Domain", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	d.Set("C0", pdf.Array{pdf.Real(0)})
	d.Set("C1", pdf.Array{pdf.Real(1)})
	d.Set("N", pdf.Real(1))

	fn, err := Extract(g, d)
	if err != nil {
		t.Fatal(err)
	}
	result := make([]float64, 1)
	fn.Apply(result, 0.5)
	if result[0] != 0.5 {
		t.Errorf("got %v, want 0.5", result[0])
	}
}

func TestExtractType3(t *testing.T) {
	g := &mockGetter{}
	inner := pdf.NewDict()
	inner.Set("FunctionType", pdf.Integer(2))
	inner.Set("Domain", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	inner.Set("C0", pdf.Array{pdf.Real(0)})
	inner.Set("C1", pdf.Array{pdf.Real(1)})
	inner.Set("N", pdf.Real(1))

	d := pdf.NewDict()
	d.Set("FunctionType", pdf.Integer(3))
	d.Set("Domain", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	d.Set("Functions", pdf.Array{inner})
	d.Set("Bounds", pdf.Array{})
	d.Set("Encode", pdf.Array{pdf.Integer(0), pdf.Integer(1)})

	fn, err := Extract(g, d)
	if err != nil {
		t.Fatal(err)
	}
	result := make([]float64, 1)
	fn.Apply(result, 0.25)
	if result[0] != 0.25 {
		t.Errorf("got %v, want 0.25", result[0])
	}
}

func TestExtractType0FromStream(t *testing.T) {
	g := &mockGetter{}
	d := pdf.NewDict()
	d.Set("FunctionType", pdf.Integer(0))
	d.Set("Domain", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	d.Set("Range", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	d.Set("Size", pdf.Array{pdf.Integer(2)})
	d.Set("BitsPerSample", pdf.Integer(8))

	stream := pdf.NewStream(d, []byte{0, 255})
	fn, err := Extract(g, stream)
	if err != nil {
		t.Fatal(err)
	}
	result := make([]float64, 1)
	fn.Apply(result, 1.0)
	if result[0] != 1.0 {
		t.Errorf("got %v, want 1.0", result[0])
	}
}

func TestExtractType4FromStream(t *testing.T) {
	g := &mockGetter{}
	d := pdf.NewDict()
	d.Set("FunctionType", pdf.Integer(4))
	d.Set("Domain", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	d.Set("Range", pdf.Array{pdf.Integer(0), pdf.Integer(1)})

	stream := pdf.NewStream(d, []byte("dup mul"))
	fn, err := Extract(g, stream)
	if err != nil {
		t.Fatal(err)
	}
	result := make([]float64, 1)
	fn.Apply(result, 0.5)
	if result[0] != 0.25 {
		t.Errorf("got %v, want 0.25", result[0])
	}
}

func TestExtractFunctionArray(t *testing.T) {
	g := &mockGetter{}
	d1 := pdf.NewDict()
	d1.Set("FunctionType", pdf.Integer(2))
	d1.Set("Domain", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	d1.Set("C0", pdf.Array{pdf.Real(0)})
	d1.Set("C1", pdf.Array{pdf.Real(1)})
	d1.Set("N", pdf.Real(1))

	d2 := pdf.NewDict()
	d2.Set("FunctionType", pdf.Integer(2))
	d2.Set("Domain", pdf.Array{pdf.Integer(0), pdf.Integer(1)})
	d2.Set("C0", pdf.Array{pdf.Real(1)})
	d2.Set("C1", pdf.Array{pdf.Real(0)})
	d2.Set("N", pdf.Real(1))

	fn, err := Extract(g, pdf.Array{d1, d2})
	if err != nil {
		t.Fatal(err)
	}
	_, n := fn.Shape()
	if n != 2 {
		t.Fatalf("Shape() n = %d, want 2", n)
	}
	result := make([]float64, 2)
	fn.Apply(result, 0.25)
	if result[0] != 0.25 || result[1] != 0.75 {
		t.Errorf("got %v, want [0.25 0.75]", result)
	}
}
