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

// Package color implements the PDF colour spaces the content-stream
// interpreter (C7) resolves operands against: DeviceGray/RGB/CMYK,
// CalGray/CalRGB/Lab (approximated as their device cousins), ICCBased
// (via /N), Indexed, Separation/DeviceN (tint transform via pdf/function)
// and Pattern.
package color

import (
	"fmt"
	"math"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/function"
)

// Color is a fully resolved colour value: the component values in its
// native space, plus a cached device-RGB approximation for sinks that
// want one directly (§6, "color is resolved to device RGB").
type Color struct {
	Space      Space
	Components []float64
}

// RGB returns the device-RGB approximation of c.
func (c Color) RGB() (r, g, b float64) {
	if c.Space == nil {
		return 0, 0, 0
	}
	return c.Space.ToRGB(c.Components)
}

// Gray returns a Color in DeviceGray.
func Gray(g float64) Color { return Color{Space: DeviceGray, Components: []float64{g}} }

// RGBColor returns a Color in DeviceRGB.
func RGBColor(r, g, b float64) Color {
	return Color{Space: DeviceRGB, Components: []float64{r, g, b}}
}

// CMYK returns a Color in DeviceCMYK.
func CMYK(c, m, y, k float64) Color {
	return Color{Space: DeviceCMYK, Components: []float64{c, m, y, k}}
}

// Space is a PDF colour space: it knows how many components a colour in
// it has, what its default (initial) colour is, and how to approximate
// one of its colours in device RGB.
type Space interface {
	Family() pdf.Name
	NumComponents() int
	Default() Color
	ToRGB(components []float64) (r, g, b float64)
}

type deviceGraySpace struct{}

func (deviceGraySpace) Family() pdf.Name    { return "DeviceGray" }
func (deviceGraySpace) NumComponents() int  { return 1 }
func (s deviceGraySpace) Default() Color    { return Color{Space: s, Components: []float64{0}} }
func (deviceGraySpace) ToRGB(c []float64) (r, g, b float64) {
	v := component(c, 0)
	return v, v, v
}

type deviceRGBSpace struct{}

func (deviceRGBSpace) Family() pdf.Name   { return "DeviceRGB" }
func (deviceRGBSpace) NumComponents() int { return 3 }
func (s deviceRGBSpace) Default() Color   { return Color{Space: s, Components: []float64{0, 0, 0}} }
func (deviceRGBSpace) ToRGB(c []float64) (r, g, b float64) {
	return component(c, 0), component(c, 1), component(c, 2)
}

type deviceCMYKSpace struct{}

func (deviceCMYKSpace) Family() pdf.Name   { return "DeviceCMYK" }
func (deviceCMYKSpace) NumComponents() int { return 4 }
func (s deviceCMYKSpace) Default() Color {
	return Color{Space: s, Components: []float64{0, 0, 0, 1}}
}
func (deviceCMYKSpace) ToRGB(c []float64) (r, g, b float64) {
	cc, m, y, k := component(c, 0), component(c, 1), component(c, 2), component(c, 3)
	return (1 - cc) * (1 - k), (1 - m) * (1 - k), (1 - y) * (1 - k)
}

// DeviceGray, DeviceRGB and DeviceCMYK are the three device colour
// spaces, always available without a resource lookup (§8.6.3).
var (
	DeviceGray Space = deviceGraySpace{}
	DeviceRGB  Space = deviceRGBSpace{}
	DeviceCMYK Space = deviceCMYKSpace{}
)

// calGraySpace and calRGBSpace approximate their CIE-based counterparts
// as the corresponding device space, per the interpreter's documented
// simplification (§4.7: "approximated as their device cousins").
type calGraySpace struct{ deviceGraySpace }
type calRGBSpace struct{ deviceRGBSpace }

func (calGraySpace) Family() pdf.Name { return "CalGray" }
func (calRGBSpace) Family() pdf.Name  { return "CalRGB" }

// labSpace approximates CIE L*a*b* as DeviceRGB via a standard D50
// conversion, clipped to [0,1].
type labSpace struct {
	WhitePoint [3]float64
	Range      [4]float64 // amin amax bmin bmax
}

func (labSpace) Family() pdf.Name   { return "Lab" }
func (labSpace) NumComponents() int { return 3 }
func (s labSpace) Default() Color   { return Color{Space: s, Components: []float64{0, 0, 0}} }
func (s labSpace) ToRGB(c []float64) (r, g, b float64) {
	L, a, bb := component(c, 0), component(c, 1), component(c, 2)
	fy := (L + 16) / 116
	fx := fy + a/500
	fz := fy - bb/200
	finv := func(t float64) float64 {
		if t > 6.0/29 {
			return t * t * t
		}
		return 3 * (6.0 / 29) * (6.0 / 29) * (t - 4.0/29)
	}
	wp := s.WhitePoint
	if wp == [3]float64{} {
		wp = [3]float64{0.9642, 1.0, 0.8249} // D50
	}
	X := wp[0] * finv(fx)
	Y := wp[1] * finv(fy)
	Z := wp[2] * finv(fz)

	r = 3.1338561*X - 1.6168667*Y - 0.4906146*Z
	g = -0.9787684*X + 1.9161415*Y + 0.0334540*Z
	b = 0.0719453*X - 0.2289914*Y + 1.4052427*Z
	gammaEnc := func(v float64) float64 {
		v = clip01(v)
		if v <= 0.0031308 {
			return 12.92 * v
		}
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return gammaEnc(r), gammaEnc(g), gammaEnc(b)
}

// iccSpace falls back to a device space chosen from /N, per §4.7
// ("ICCBased uses /N to pick device fallback"); no ICC profile
// transform is performed.
type iccSpace struct {
	N        int
	Fallback Space
}

func (s iccSpace) Family() pdf.Name   { return "ICCBased" }
func (s iccSpace) NumComponents() int { return s.N }
func (s iccSpace) Default() Color     { return s.Fallback.Default() }
func (s iccSpace) ToRGB(c []float64) (r, g, b float64) { return s.Fallback.ToRGB(c) }

// indexedSpace is a lookup table over a base space (§8.6.6.3).
type indexedSpace struct {
	Base   Space
	HiVal  int
	Lookup []byte
}

func (indexedSpace) Family() pdf.Name   { return "Indexed" }
func (indexedSpace) NumComponents() int { return 1 }
func (s indexedSpace) Default() Color   { return Color{Space: s, Components: []float64{0}} }
func (s indexedSpace) ToRGB(c []float64) (r, g, b float64) {
	idx := int(component(c, 0))
	if idx < 0 {
		idx = 0
	}
	if idx > s.HiVal {
		idx = s.HiVal
	}
	n := s.Base.NumComponents()
	off := idx * n
	comps := make([]float64, n)
	for i := 0; i < n; i++ {
		if off+i < len(s.Lookup) {
			comps[i] = float64(s.Lookup[off+i]) / 255
		}
	}
	return s.Base.ToRGB(comps)
}

// NewIndexedSpace builds an Indexed colour space over base, with hival
// the highest valid index and lookup the raw table bytes (from a string
// or decoded stream).
func NewIndexedSpace(base Space, hival int, lookup []byte) Space {
	return indexedSpace{Base: base, HiVal: hival, Lookup: lookup}
}

// tintSpace implements Separation and DeviceN (§8.6.6.4/.5): its
// component values are tint fractions run through a transform function
// into the alternate space.
type tintSpace struct {
	family    pdf.Name
	names     []pdf.Name
	alternate Space
	transform pdf.Function
}

func (s tintSpace) Family() pdf.Name   { return s.family }
func (s tintSpace) NumComponents() int { return len(s.names) }
func (s tintSpace) Default() Color {
	c := make([]float64, len(s.names))
	for i := range c {
		c[i] = 1
	}
	return Color{Space: s, Components: c}
}
func (s tintSpace) ToRGB(c []float64) (r, g, b float64) {
	if s.transform == nil || s.alternate == nil {
		v := component(c, 0)
		return 1 - v, 1 - v, 1 - v
	}
	_, n := s.transform.Shape()
	out := make([]float64, n)
	s.transform.Apply(out, c...)
	return s.alternate.ToRGB(out)
}

// NewSeparationSpace builds a Separation or DeviceN colour space (family
// should be "Separation" or "DeviceN").
func NewSeparationSpace(family pdf.Name, names []pdf.Name, alternate Space, transform pdf.Function) Space {
	return tintSpace{family: family, names: names, alternate: alternate, transform: transform}
}

// patternSpace is /Pattern, optionally carrying the colour space of an
// uncoloured tiling pattern's underlying paint.
type patternSpace struct {
	Underlying Space
}

func (patternSpace) Family() pdf.Name   { return "Pattern" }
func (s patternSpace) NumComponents() int {
	if s.Underlying != nil {
		return s.Underlying.NumComponents()
	}
	return 0
}
func (s patternSpace) Default() Color { return Color{Space: s} }
func (s patternSpace) ToRGB(c []float64) (r, g, b float64) {
	if s.Underlying != nil {
		return s.Underlying.ToRGB(c)
	}
	return 0, 0, 0
}

// NewPatternSpace builds a /Pattern colour space; underlying may be nil
// for coloured (self-painting) patterns.
func NewPatternSpace(underlying Space) Space { return patternSpace{Underlying: underlying} }

func component(c []float64, i int) float64 {
	if i < len(c) {
		return c[i]
	}
	return 0
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ExtractColorSpace resolves a colour space operand (a Name naming a
// device space or a resource, or an Array describing a parameterised
// space) into a Space, per §4.7's supported list.
func ExtractColorSpace(r pdf.Getter, obj pdf.Object, resources pdf.Dict) (Space, error) {
	obj, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	if name, ok := obj.(pdf.Name); ok {
		switch name {
		case "DeviceGray", "G":
			return DeviceGray, nil
		case "DeviceRGB", "RGB":
			return DeviceRGB, nil
		case "DeviceCMYK", "CMYK":
			return DeviceCMYK, nil
		case "Pattern":
			return NewPatternSpace(nil), nil
		}
		if resources != nil {
			csDict, err := pdf.GetDict(r, resources.Get("ColorSpace"))
			if err == nil && csDict.Has(name) {
				return ExtractColorSpace(r, csDict.Get(name), resources)
			}
		}
		return nil, &pdf.MalformedFileError{Err: fmt.Errorf("color: unknown color space %q", name)}
	}

	arr, ok := obj.(pdf.Array)
	if !ok || len(arr) == 0 {
		return nil, &pdf.MalformedFileError{Err: fmt.Errorf("color: unexpected colour space object %T", obj)}
	}
	family, err := pdf.GetName(r, arr[0])
	if err != nil {
		return nil, err
	}

	switch family {
	case "CalGray":
		return calGraySpace{}, nil
	case "CalRGB":
		return calRGBSpace{}, nil
	case "Lab":
		s := labSpace{}
		if len(arr) > 1 {
			d, err := pdf.GetDict(r, arr[1])
			if err == nil {
				if wp, err := pdf.GetFloatArray(r, d.Get("WhitePoint")); err == nil && len(wp) == 3 {
					s.WhitePoint = [3]float64{wp[0], wp[1], wp[2]}
				}
			}
		}
		return s, nil
	case "ICCBased":
		if len(arr) < 2 {
			return nil, &pdf.MalformedFileError{Err: fmt.Errorf("color: malformed ICCBased array")}
		}
		stream, err := pdf.GetStream(r, arr[1])
		if err != nil {
			return nil, err
		}
		n := 3
		if stream != nil {
			if v, err := pdf.GetInteger(r, stream.Dict.Get("N")); err == nil && v > 0 {
				n = int(v)
			}
		}
		var fallback Space
		switch n {
		case 1:
			fallback = DeviceGray
		case 4:
			fallback = DeviceCMYK
		default:
			fallback = DeviceRGB
		}
		return iccSpace{N: n, Fallback: fallback}, nil
	case "Indexed":
		if len(arr) < 4 {
			return nil, &pdf.MalformedFileError{Err: fmt.Errorf("color: malformed Indexed array")}
		}
		base, err := ExtractColorSpace(r, arr[1], resources)
		if err != nil {
			return nil, err
		}
		hival, err := pdf.GetInteger(r, arr[2])
		if err != nil {
			return nil, err
		}
		lookupObj, err := pdf.Resolve(r, arr[3])
		if err != nil {
			return nil, err
		}
		var lookup []byte
		switch v := lookupObj.(type) {
		case pdf.String:
			lookup = []byte(v)
		case *pdf.Stream:
			lookup, err = v.Decode()
			if err != nil {
				return nil, err
			}
		default:
			return nil, &pdf.MalformedFileError{Err: fmt.Errorf("color: Indexed lookup table has type %T", lookupObj)}
		}
		return NewIndexedSpace(base, int(hival), lookup), nil
	case "Separation", "DeviceN":
		if len(arr) < 3 {
			return nil, &pdf.MalformedFileError{Err: fmt.Errorf("color: malformed %s array", family)}
		}
		var names []pdf.Name
		if family == "Separation" {
			n, err := pdf.GetName(r, arr[1])
			if err != nil {
				return nil, err
			}
			names = []pdf.Name{n}
		} else {
			na, err := pdf.GetArray(r, arr[1])
			if err != nil {
				return nil, err
			}
			for _, e := range na {
				n, err := pdf.GetName(r, e)
				if err != nil {
					return nil, err
				}
				names = append(names, n)
			}
		}
		alt, err := ExtractColorSpace(r, arr[2], resources)
		if err != nil {
			return nil, err
		}
		var transform pdf.Function
		if len(arr) > 3 {
			transform, err = function.Extract(r, arr[3])
			if err != nil {
				return nil, err
			}
		}
		return NewSeparationSpace(family, names, alt, transform), nil
	case "Pattern":
		var underlying Space
		if len(arr) > 1 {
			var err error
			underlying, err = ExtractColorSpace(r, arr[1], resources)
			if err != nil {
				return nil, err
			}
		}
		return NewPatternSpace(underlying), nil
	default:
		return nil, &pdf.MalformedFileError{Err: fmt.Errorf("color: unsupported color space family %q", family)}
	}
}
