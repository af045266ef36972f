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

func TestType4Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		program  string
		inputs   []float64
		expected float64
	}{
		{"add", "add", []float64{2, 3}, 5},
		{"sub", "sub", []float64{5, 3}, 2},
		{"mul", "mul", []float64{2, 3}, 6},
		{"div", "div", []float64{3, 2}, 1.5},
		{"neg", "neg", []float64{3}, -3},
		{"abs", "abs", []float64{-3}, 3},
		{"sqrt", "sqrt", []float64{9}, 3},
		{"cvi", "cvi", []float64{3.7}, 3},
		{"ceiling", "ceiling", []float64{3.2}, 4},
		{"floor", "floor", []float64{3.7}, 3},
		{"round", "round", []float64{3.5}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := &Type4{
				Domain:  []float64{-100, 100, -100, 100},
				Range:   []float64{-100, 100},
				Program: tt.program,
			}
			result := make([]float64, 1)
			fn.Apply(result, tt.inputs...)
			if math.Abs(result[0]-tt.expected) > 1e-9 {
				t.Errorf("%s: got %v, want %v", tt.name, result[0], tt.expected)
			}
		})
	}
}

func TestType4Conditional(t *testing.T) {
	fn := &Type4{
		Domain:  []float64{0, 1},
		Range:   []float64{0, 1},
		Program: "dup 0.5 lt { pop 0 } { pop 1 } ifelse",
	}
	result := make([]float64, 1)
	fn.Apply(result, 0.2)
	if result[0] != 0 {
		t.Errorf("below threshold: got %v, want 0", result[0])
	}
	fn.Apply(result, 0.8)
	if result[0] != 1 {
		t.Errorf("above threshold: got %v, want 1", result[0])
	}
}

func TestType4DomainClipping(t *testing.T) {
	fn := &Type4{
		Domain:  []float64{0, 1},
		Range:   []float64{0, 1},
		Program: "",
	}
	result := make([]float64, 1)
	fn.Apply(result, 5)
	if result[0] != 1 {
		t.Errorf("out-of-domain input not clipped before evaluation: %v", result[0])
	}
}

func TestType4Constant(t *testing.T) {
	fn := &Type4{Range: []float64{0, 1}, Program: "0.5"}
	result := make([]float64, 1)
	fn.Apply(result)
	if result[0] != 0.5 {
		t.Errorf("got %v, want 0.5", result[0])
	}
}
