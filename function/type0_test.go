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

func TestType0BitDepthExtraction(t *testing.T) {
	tests := []struct {
		name          string
		bitsPerSample int
		samples       []byte
		expectedVals  []float64
	}{
		{"1-bit", 1, []byte{0xAA}, []float64{1, 0, 1, 0, 1, 0, 1, 0}},
		{"2-bit", 2, []byte{0xE4}, []float64{3, 2, 1, 0}},
		{"2-bit spanning bytes", 2, []byte{0x4E, 0x40}, []float64{1, 0, 3, 2, 1, 0, 0, 0}},
		{"4-bit", 4, []byte{0xAB, 0xCD}, []float64{10, 11, 12, 13}},
		{"8-bit", 8, []byte{0x00, 0x80, 0xFF}, []float64{0, 128, 255}},
		{"12-bit aligned", 12, []byte{0xAB, 0xCD, 0xEF}, []float64{0xABC, 0xDEF}},
		{"16-bit", 16, []byte{0x12, 0x34, 0xAB, 0xCD}, []float64{0x1234, 0xABCD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Type0{
				Domain:        []float64{0, 1},
				Range:         []float64{0, 1},
				Size:          []int{len(tt.expectedVals)},
				BitsPerSample: tt.bitsPerSample,
				Samples:       tt.samples,
			}
			for i, want := range tt.expectedVals {
				got := f.extractSampleAtIndex(i)
				if got != want {
					t.Errorf("sample %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestType0LinearInterpolation(t *testing.T) {
	f := &Type0{
		Domain:        []float64{0, 1},
		Range:         []float64{0, 1},
		Size:          []int{2},
		BitsPerSample: 4,
		Samples:       []byte{0x0F}, // samples: 0, 15
	}
	f.repair()
	result := make([]float64, 1)
	f.Apply(result, 0.5)
	if math.Abs(result[0]-0.5) > 1e-10 {
		t.Errorf("got %v, want 0.5", result[0])
	}
}

func TestType0MultiOutput(t *testing.T) {
	f := &Type0{
		Domain:        []float64{0, 1},
		Range:         []float64{0, 1, 0, 1},
		Size:          []int{2},
		BitsPerSample: 4,
		Samples:       []byte{0x0F, 0xF0}, // pos0: 0,15  pos1: 15,0
	}
	f.repair()
	result := make([]float64, 2)
	f.Apply(result, 0.0)
	if result[0] != 0.0 || result[1] != 1.0 {
		t.Errorf("got %v, want [0 1]", result)
	}
}

func TestType0CatmullRomSpline(t *testing.T) {
	f := &Type0{
		Domain:        []float64{0, 3},
		Range:         []float64{0, 100},
		Size:          []int{4},
		BitsPerSample: 8,
		UseCubic:      true,
		Samples:       []byte{0, 10, 40, 100},
		Decode:        []float64{0, 255},
	}
	f.repair()

	tests := []struct {
		input, expected float64
	}{
		{0.0, 0.0}, {0.5, 3.125}, {1.0, 10.0}, {1.5, 21.875},
		{2.0, 40.0}, {2.5, 71.875}, {3.0, 100.0},
	}
	for _, tt := range tests {
		result := make([]float64, 1)
		f.Apply(result, tt.input)
		if math.Abs(result[0]-tt.expected) > 1e-6 {
			t.Errorf("input %.2f: got %.6f, want %.6f", tt.input, result[0], tt.expected)
		}
	}
}

func TestType0Empty(t *testing.T) {
	f := &Type0{
		Domain: []float64{}, Range: []float64{}, Size: []int{},
		BitsPerSample: 8, Samples: []byte{},
	}
	m, n := f.Shape()
	if m != 0 || n != 0 {
		t.Errorf("Shape() = (%d,%d), want (0,0)", m, n)
	}
	result := make([]float64, 0)
	f.Apply(result)
	if len(result) != 0 {
		t.Errorf("expected no output, got %d", len(result))
	}
}

func TestType0Constant(t *testing.T) {
	f := &Type0{
		Domain: []float64{}, Range: []float64{0, 1}, Size: []int{},
		BitsPerSample: 8, Decode: []float64{0, 1}, Samples: []byte{},
	}
	m, n := f.Shape()
	if m != 0 || n != 1 {
		t.Errorf("Shape() = (%d,%d), want (0,1)", m, n)
	}
	result := make([]float64, 1)
	f.Apply(result)
	if result[0] != 0 {
		t.Errorf("got %v, want 0", result[0])
	}
}
