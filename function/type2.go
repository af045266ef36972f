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
	"fmt"
	"math"

	"github.com/dodeca-labs/pdfcore"
)

// Type2 is an exponential interpolation function (§7.10.3):
// f(x) = C0 + x^N * (C1 - C0).
type Type2 struct {
	XMin, XMax float64
	C0, C1     []float64
	N          float64
	Range      []float64 // optional output clipping
}

func (f *Type2) FunctionType() int { return 2 }

func (f *Type2) Domain() []float64 { return []float64{f.XMin, f.XMax} }

func (f *Type2) Shape() (m, n int) {
	n = len(f.C1)
	if n == 0 {
		n = 1
	}
	return 1, n
}

func (f *Type2) repair() {
	if len(f.C0) == 0 {
		f.C0 = []float64{0}
	}
	if len(f.C1) == 0 {
		f.C1 = []float64{1}
	}
	if f.N == 0 {
		f.N = 1
	}
}

func (f *Type2) Apply(result []float64, inputs ...float64) {
	f.repair()
	var x float64
	if len(inputs) > 0 {
		x = clip(inputs[0], f.XMin, f.XMax)
	}
	t := math.Pow(x, f.N)
	n := len(f.C0)
	if len(f.C1) > n {
		n = len(f.C1)
	}
	for i := 0; i < n && i < len(result); i++ {
		c0, c1 := 0.0, 1.0
		if i < len(f.C0) {
			c0 = f.C0[i]
		}
		if i < len(f.C1) {
			c1 = f.C1[i]
		}
		v := c0 + t*(c1-c0)
		if len(f.Range) >= 2*(i+1) {
			v = clip(v, f.Range[2*i], f.Range[2*i+1])
		}
		result[i] = v
	}
}

func (f *Type2) String() string {
	return fmt.Sprintf("Type2{XMin:%g XMax:%g N:%g}", f.XMin, f.XMax, f.N)
}
