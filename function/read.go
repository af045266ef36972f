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

	"github.com/dodeca-labs/pdfcore"
)

func extractType2(r pdf.Getter, dict pdf.Dict, domain, rng []float64) (pdf.Function, error) {
	c0, err := pdf.GetFloatArray(r, dict.Get("C0"))
	if err != nil {
		return nil, err
	}
	c1, err := pdf.GetFloatArray(r, dict.Get("C1"))
	if err != nil {
		return nil, err
	}
	n, err := floatOrDefault(r, dict.Get("N"), 1)
	if err != nil {
		return nil, err
	}
	f := &Type2{C0: c0, C1: c1, N: n, Range: rng}
	if len(domain) >= 2 {
		f.XMin, f.XMax = domain[0], domain[1]
	} else {
		f.XMin, f.XMax = 0, 1
	}
	f.repair()
	return f, nil
}

func extractType3(r pdf.Getter, dict pdf.Dict, domain, rng []float64) (pdf.Function, error) {
	arr, err := pdf.GetArray(r, dict.Get("Functions"))
	if err != nil {
		return nil, err
	}
	fns := make([]pdf.Function, len(arr))
	for i, elem := range arr {
		fn, err := Extract(r, elem)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}
	bounds, err := pdf.GetFloatArray(r, dict.Get("Bounds"))
	if err != nil {
		return nil, err
	}
	encode, err := pdf.GetFloatArray(r, dict.Get("Encode"))
	if err != nil {
		return nil, err
	}
	f := &Type3{Functions: fns, Bounds: bounds, Encode: encode, Range: rng}
	if len(domain) >= 2 {
		f.XMin, f.XMax = domain[0], domain[1]
	} else {
		f.XMin, f.XMax = 0, 1
	}
	return f, nil
}

func extractType0(r pdf.Getter, obj pdf.Object, dict pdf.Dict, domain, rng []float64) (pdf.Function, error) {
	stream, ok := obj.(*pdf.Stream)
	if !ok {
		return nil, &pdf.MalformedFileError{Err: fmt.Errorf("function: Type0 requires a stream")}
	}
	sizeArr, err := pdf.GetArray(r, dict.Get("Size"))
	if err != nil {
		return nil, err
	}
	size := make([]int, len(sizeArr))
	for i, elem := range sizeArr {
		v, err := pdf.GetInteger(r, elem)
		if err != nil {
			return nil, err
		}
		size[i] = int(v)
	}
	bps, err := pdf.GetInteger(r, dict.Get("BitsPerSample"))
	if err != nil {
		return nil, err
	}
	encode, err := pdf.GetFloatArray(r, dict.Get("Encode"))
	if err != nil {
		return nil, err
	}
	decode, err := pdf.GetFloatArray(r, dict.Get("Decode"))
	if err != nil {
		return nil, err
	}
	data, err := stream.Decode()
	if err != nil {
		return nil, err
	}
	f := &Type0{
		Domain:        domain,
		Range:         rng,
		Size:          size,
		BitsPerSample: int(bps),
		Encode:        encode,
		Decode:        decode,
		Samples:       data,
	}
	f.repair()
	return f, nil
}

func extractType4(r pdf.Getter, obj pdf.Object, dict pdf.Dict, domain, rng []float64) (pdf.Function, error) {
	stream, ok := obj.(*pdf.Stream)
	if !ok {
		return nil, &pdf.MalformedFileError{Err: fmt.Errorf("function: Type4 requires a stream")}
	}
	data, err := stream.Decode()
	if err != nil {
		return nil, err
	}
	return &Type4{Domain: domain, Range: rng, Program: string(data)}, nil
}

func floatOrDefault(r pdf.Getter, obj pdf.Object, def float64) (float64, error) {
	if obj == nil {
		return def, nil
	}
	v, err := pdf.GetReal(r, obj)
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}
