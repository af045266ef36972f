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
	"math"
	"testing"
)

func TestType2Linear(t *testing.T) {
	f := &Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	result := make([]float64, 1)
	f.Apply(result, 0.25)
	if math.Abs(result[0]-0.25) > 1e-12 {
		t.Errorf("got %v, want 0.25", result[0])
	}
}

func TestType2MultiOutputRangeClip(t *testing.T) {
	f := &Type2{
		XMin: 0, XMax: 1,
		C0: []float64{1, 0, 0}, C1: []float64{0, 1, 0},
		N:     2.0,
		Range: []float64{0, 1, 0, 1, 0, 1},
	}
	m, n := f.Shape()
	if m != 1 || n != 3 {
		t.Fatalf("Shape() = (%d,%d), want (1,3)", m, n)
	}
	result := make([]float64, 3)
	f.Apply(result, 0.5)
	for _, v := range result {
		if v < 0 || v > 1 {
			t.Errorf("output %v outside Range", v)
		}
	}
}

func TestType2DomainClipping(t *testing.T) {
	f := &Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1}
	result := make([]float64, 1)
	f.Apply(result, 5)
	if result[0] != 1 {
		t.Errorf("out-of-domain input not clipped: got %v", result[0])
	}
}
