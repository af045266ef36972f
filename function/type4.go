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

import "seehuhn.de/go/postscript"

// Type4 is a PostScript calculator function (§7.10.5): Program is the
// source between the outermost braces. PDF's Type 4 subset is a strict
// subset of the full PostScript language the seehuhn.de/go/postscript
// interpreter implements, so evaluation is delegated to it directly rather
// than re-implementing a calculator VM.
type Type4 struct {
	Domain  []float64
	Range   []float64
	Program string
}

func (f *Type4) FunctionType() int { return 4 }

func (f *Type4) Domain() []float64 { return f.Domain }

func (f *Type4) Shape() (m, n int) {
	return len(f.Domain) / 2, len(f.Range) / 2
}

func (f *Type4) Apply(result []float64, inputs ...float64) {
	m, n := f.Shape()

	intp := postscript.NewInterpreter()
	for i := 0; i < m; i++ {
		var x float64
		if i < len(inputs) {
			x = inputs[i]
		}
		if 2*i+1 < len(f.Domain) {
			x = clip(x, f.Domain[2*i], f.Domain[2*i+1])
		}
		intp.Stack = append(intp.Stack, postscript.Real(x))
	}

	if err := intp.ExecuteString(f.Program); err != nil {
		return
	}

	out := intp.Stack
	if len(out) > n {
		out = out[len(out)-n:]
	}
	for i, obj := range out {
		if i >= len(result) {
			break
		}
		var v float64
		switch x := obj.(type) {
		case postscript.Integer:
			v = float64(x)
		case postscript.Real:
			v = float64(x)
		case postscript.Boolean:
			if x {
				v = 1
			}
		default:
			continue
		}
		if 2*i+1 < len(f.Range) {
			v = clip(v, f.Range[2*i], f.Range[2*i+1])
		}
		result[i] = v
	}
}
