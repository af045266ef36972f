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

// Package function implements the PDF function types (§7.10, C9): Type 0
// (sampled), Type 2 (exponential interpolation), Type 3 (stitching) and
// Type 4 (PostScript calculator). Shadings and the `sh` operator build on
// these evaluators.
package function

import (
	"fmt"
	"math"

	"github.com/dodeca-labs/pdfcore"
)

// isRange reports whether [x, y] is a valid, finite, non-decreasing
// interval.
func isRange(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	return x <= y
}

// clip restricts x to [lo, hi].
func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// interpolate maps x linearly from [xmin, xmax] to [ymin, ymax], per
// §7.10.2 Interpolation.
func interpolate(x, xmin, xmax, ymin, ymax float64) float64 {
	if xmax == xmin {
		return ymin
	}
	return ymin + (x-xmin)*(ymax-ymin)/(xmax-xmin)
}

// Extract reads a PDF function object (a dict or a stream whose dict holds
// /FunctionType) and returns the matching evaluator.
func Extract(r pdf.Getter, obj pdf.Object) (pdf.Function, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	// An array of 1-in/1-out functions (one per output component) is
	// allowed wherever a function is expected (§7.10, "functions used to
	// map color components").
	if arr, ok := obj.(pdf.Array); ok {
		return extractArray(r, arr)
	}

	var dict pdf.Dict
	switch o := obj.(type) {
	case pdf.Dict:
		dict = o
	case *pdf.Stream:
		dict = o.Dict
	default:
		return nil, &pdf.MalformedFileError{Err: fmt.Errorf("function: unexpected object type %T", obj)}
	}

	ft, err := pdf.GetInteger(r, dict.Get("FunctionType"))
	if err != nil {
		return nil, err
	}

	domain, err := pdf.GetFloatArray(r, dict.Get("Domain"))
	if err != nil {
		return nil, err
	}
	rng, err := pdf.GetFloatArray(r, dict.Get("Range"))
	if err != nil {
		return nil, err
	}

	switch ft {
	case 0:
		return extractType0(r, obj, dict, domain, rng)
	case 2:
		return extractType2(r, dict, domain, rng)
	case 3:
		return extractType3(r, dict, domain, rng)
	case 4:
		return extractType4(r, obj, dict, domain, rng)
	default:
		return nil, &pdf.MalformedFileError{Err: fmt.Errorf("function: unknown FunctionType %d", ft)}
	}
}

func extractArray(r pdf.Getter, arr pdf.Array) (pdf.Function, error) {
	fns := make([]pdf.Function, len(arr))
	for i, elem := range arr {
		fn, err := Extract(r, elem)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}
	return &Array{Functions: fns}, nil
}

// Array combines several 1-in/1-out functions into a single 1-in/N-out
// function, as allowed wherever a tint-transform or similar function is
// referenced (§7.10).
type Array struct {
	Functions []pdf.Function
}

func (a *Array) FunctionType() int { return -1 }

func (a *Array) Shape() (m, n int) {
	if len(a.Functions) == 0 {
		return 0, 0
	}
	m, _ = a.Functions[0].Shape()
	return m, len(a.Functions)
}

func (a *Array) Domain() []float64 {
	if len(a.Functions) == 0 {
		return nil
	}
	return a.Functions[0].Domain()
}

func (a *Array) Apply(result []float64, inputs ...float64) {
	for i, fn := range a.Functions {
		var out [1]float64
		fn.Apply(out[:], inputs...)
		if i < len(result) {
			result[i] = out[0]
		}
	}
}
