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

func TestType3BoundaryHandling(t *testing.T) {
	tests := []struct {
		name       string
		function   *Type3
		testInputs []struct {
			input          float64
			expectedFunc   int
			expectedDomain [2]float64
		}
	}{
		{
			name: "normal case: k=2, XMin < Bounds[0] < XMax",
			function: &Type3{
				XMin: 0, XMax: 2,
				Functions: []pdf.Function{
					&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1},
					&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1},
				},
				Bounds: []float64{1.0},
				Encode: []float64{0, 1, 0, 1},
			},
			testInputs: []struct {
				input          float64
				expectedFunc   int
				expectedDomain [2]float64
			}{
				{0.0, 0, [2]float64{0, 1}},
				{0.999, 0, [2]float64{0, 1}},
				{1.0, 1, [2]float64{1, 2}},
				{2.0, 1, [2]float64{1, 2}},
			},
		},
		{
			name: "special case: XMin = Bounds[0]",
			function: &Type3{
				XMin: 0, XMax: 2,
				Functions: []pdf.Function{
					&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1},
					&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1},
				},
				Bounds: []float64{0.0},
				Encode: []float64{0, 1, 0, 1},
			},
			testInputs: []struct {
				input          float64
				expectedFunc   int
				expectedDomain [2]float64
			}{
				{0.0, 0, [2]float64{0, 0}},
				{0.001, 1, [2]float64{0, 2}},
				{2.0, 1, [2]float64{0, 2}},
			},
		},
		{
			name: "three functions, normal boundaries",
			function: &Type3{
				XMin: 0, XMax: 3,
				Functions: []pdf.Function{
					&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1},
					&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1},
					&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 2},
				},
				Bounds: []float64{1.0, 2.0},
				Encode: []float64{0, 1, 0, 1, 0, 1},
			},
			testInputs: []struct {
				input          float64
				expectedFunc   int
				expectedDomain [2]float64
			}{
				{0.0, 0, [2]float64{0, 1}},
				{1.0, 1, [2]float64{1, 2}},
				{2.0, 2, [2]float64{2, 3}},
				{3.0, 2, [2]float64{2, 3}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, test := range tt.testInputs {
				idx, a, b := tt.function.findSubdomain(test.input)
				if idx != test.expectedFunc {
					t.Errorf("input %.3f: function %d, want %d", test.input, idx, test.expectedFunc)
				}
				if [2]float64{a, b} != test.expectedDomain {
					t.Errorf("input %.3f: domain [%v,%v], want %v", test.input, a, b, test.expectedDomain)
				}
			}
		})
	}
}

func TestType3ApplyWithBoundaries(t *testing.T) {
	f := &Type3{
		XMin: 0, XMax: 2,
		Functions: []pdf.Function{
			&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{0}, N: 1},
			&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{1}, N: 1},
		},
		Bounds: []float64{1.0},
		Encode: []float64{0, 1, 0, 1},
	}
	result := make([]float64, 1)
	f.Apply(result, 1.0)
	if result[0] != 1.0 {
		t.Errorf("boundary at 1.0 should select second function: got %v", result[0])
	}
}
