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

import "github.com/dodeca-labs/pdfcore"

// Type3 is a stitching function (§7.10.4): it partitions [XMin, XMax] into
// k subdomains via Bounds, dispatching each to one of Functions after
// re-encoding the input into that function's own domain.
type Type3 struct {
	XMin, XMax float64
	Functions  []pdf.Function
	Bounds     []float64
	Encode     []float64
	Range      []float64
}

func (f *Type3) FunctionType() int { return 3 }

func (f *Type3) Domain() []float64 { return []float64{f.XMin, f.XMax} }

func (f *Type3) Shape() (m, n int) {
	if len(f.Functions) == 0 {
		return 1, 0
	}
	_, n = f.Functions[0].Shape()
	return 1, n
}

// findSubdomain returns the index of the subfunction that input x falls
// into, along with that subdomain's [lo, hi] bounds in the parent's input
// space (§7.10.4). Intervals are left-closed/right-open except the last,
// which is closed on both ends. When Bounds[0] equals XMin, Ghostscript's
// reading of the spec treats the degenerate first interval as the single
// closed point {XMin}; we match that so values at exactly XMin route to
// the first function instead of silently falling through to the second.
func (f *Type3) findSubdomain(x float64) (idx int, lo, hi float64) {
	k := len(f.Functions)
	b := make([]float64, k+1)
	b[0] = f.XMin
	b[k] = f.XMax
	for i := 0; i < k-1; i++ {
		if i < len(f.Bounds) {
			b[i+1] = f.Bounds[i]
		} else {
			b[i+1] = f.XMax
		}
	}

	for i := 0; i < k; i++ {
		lo, hi = b[i], b[i+1]
		if i == k-1 {
			if x >= lo && x <= hi {
				return i, lo, hi
			}
			continue
		}
		if i == 0 && lo == hi {
			if x == lo {
				return i, lo, hi
			}
			continue
		}
		if x >= lo && x < hi {
			return i, lo, hi
		}
	}
	return k - 1, b[k-1], b[k]
}

func (f *Type3) Apply(result []float64, inputs ...float64) {
	var x float64
	if len(inputs) > 0 {
		x = clip(inputs[0], f.XMin, f.XMax)
	}
	idx, lo, hi := f.findSubdomain(x)
	if idx < 0 || idx >= len(f.Functions) {
		return
	}
	e0, e1 := 0.0, 1.0
	if 2*idx+1 < len(f.Encode) {
		e0, e1 = f.Encode[2*idx], f.Encode[2*idx+1]
	}
	xe := interpolate(x, lo, hi, e0, e1)
	f.Functions[idx].Apply(result, xe)
	for i := range result {
		if len(f.Range) >= 2*(i+1) {
			result[i] = clip(result[i], f.Range[2*i], f.Range[2*i+1])
		}
	}
}
