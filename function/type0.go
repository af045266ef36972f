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

// Type0 is a sampled function (§7.10.2): a table of Size[0]*...*Size[m-1]
// samples, each with n output components packed BitsPerSample bits wide,
// interpolated (multilinearly, or with a Catmull-Rom spline for the 1-D
// UseCubic case matching Ghostscript's gsfunc0.c) between grid nodes.
type Type0 struct {
	Domain        []float64
	Range         []float64
	Size          []int
	BitsPerSample int
	UseCubic      bool
	Encode        []float64
	Decode        []float64
	Samples       []byte
}

func (f *Type0) FunctionType() int { return 0 }

func (f *Type0) Domain() []float64 { return f.Domain }

func (f *Type0) numOutputs() int {
	return len(f.Range) / 2
}

func (f *Type0) Shape() (m, n int) {
	return len(f.Size), f.numOutputs()
}

func (f *Type0) repair() {
	m := len(f.Size)
	n := f.numOutputs()
	if len(f.Encode) != 2*m {
		enc := make([]float64, 2*m)
		for i := 0; i < m; i++ {
			enc[2*i] = 0
			enc[2*i+1] = float64(f.Size[i] - 1)
		}
		f.Encode = enc
	}
	if len(f.Decode) != 2*n {
		if len(f.Range) == 2*n {
			f.Decode = append([]float64(nil), f.Range...)
		} else {
			dec := make([]float64, 2*n)
			for i := 0; i < n; i++ {
				dec[2*i] = 0
				dec[2*i+1] = 1
			}
			f.Decode = dec
		}
	}
	if f.BitsPerSample == 0 {
		f.BitsPerSample = 8
	}
}

// maxSampleValue returns (1<<BitsPerSample)-1 as a float64.
func (f *Type0) maxSampleValue() float64 {
	return float64((uint64(1) << uint(f.BitsPerSample)) - 1)
}

// extractSampleAtIndex returns the raw (un-decoded) integer value of the
// i-th sample in Samples, where samples are packed BitsPerSample bits wide,
// most-significant-bit first, with no padding between samples (§7.10.2
// Table 41's "sample data" stream format).
func (f *Type0) extractSampleAtIndex(i int) float64 {
	bitOffset := i * f.BitsPerSample
	var v uint64
	bits := f.BitsPerSample
	for bits > 0 {
		byteIdx := bitOffset / 8
		bitInByte := bitOffset % 8
		if byteIdx >= len(f.Samples) {
			break
		}
		take := 8 - bitInByte
		if take > bits {
			take = bits
		}
		b := f.Samples[byteIdx]
		shift := 8 - bitInByte - take
		mask := byte((1 << take) - 1)
		chunk := (b >> shift) & mask
		v = v<<uint(take) | uint64(chunk)
		bitOffset += take
		bits -= take
	}
	return float64(v)
}

// sampleComponent returns the decoded value of output component c at flat
// grid position pos (a raster index into the m-dimensional Size grid).
func (f *Type0) sampleComponent(pos, c, n int) float64 {
	raw := f.extractSampleAtIndex(pos*n + c)
	lo, hi := 0.0, 1.0
	if 2*c+1 < len(f.Decode) {
		lo, hi = f.Decode[2*c], f.Decode[2*c+1]
	}
	return interpolate(raw, 0, f.maxSampleValue(), lo, hi)
}

func (f *Type0) Apply(result []float64, inputs ...float64) {
	f.repair()
	m := len(f.Size)
	n := f.numOutputs()
	if m == 0 {
		for c := 0; c < n && c < len(result); c++ {
			result[c] = f.sampleComponent(0, c, n)
		}
		return
	}

	if m == 1 && f.UseCubic {
		f.applyCubic1D(result, inputs, n)
		return
	}

	// encode each input into a fractional grid coordinate, then
	// multilinearly interpolate across the 2^m surrounding corners.
	e := make([]float64, m)
	for i := 0; i < m; i++ {
		var x float64
		if i < len(inputs) {
			x = inputs[i]
		}
		dlo, dhi := 0.0, 1.0
		if 2*i+1 < len(f.Domain) {
			dlo, dhi = f.Domain[2*i], f.Domain[2*i+1]
		}
		x = clip(x, dlo, dhi)
		elo, ehi := 0.0, float64(f.Size[i] - 1)
		if 2*i+1 < len(f.Encode) {
			elo, ehi = f.Encode[2*i], f.Encode[2*i+1]
		}
		ei := interpolate(x, dlo, dhi, elo, ehi)
		e[i] = clip(ei, 0, float64(f.Size[i]-1))
	}

	for c := 0; c < n && c < len(result); c++ {
		result[c] = f.interpolateCorner(e, c, n)
	}
}

// interpolateCorner performs multilinear interpolation of output component
// c across the 2^m hypercube surrounding fractional grid position e.
func (f *Type0) interpolateCorner(e []float64, c, n int) float64 {
	m := len(e)
	corners := 1 << uint(m)
	var total float64
	for mask := 0; mask < corners; mask++ {
		weight := 1.0
		pos := 0
		stride := 1
		for i := 0; i < m; i++ {
			i0 := int(e[i])
			frac := e[i] - float64(i0)
			i1 := i0 + 1
			if i1 > f.Size[i]-1 {
				i1 = f.Size[i] - 1
			}
			var idx int
			if mask&(1<<uint(i)) != 0 {
				idx = i1
				weight *= frac
			} else {
				idx = i0
				weight *= 1 - frac
			}
			pos += idx * stride
			stride *= f.Size[i]
		}
		if weight != 0 {
			total += weight * f.sampleComponent(pos, c, n)
		}
	}
	return total
}

// applyCubic1D interpolates a 1-D table with a Catmull-Rom spline between
// the two nodes surrounding the encoded input, using the two neighbouring
// nodes as tangent control points (clamped at the table ends).
func (f *Type0) applyCubic1D(result []float64, inputs []float64, n int) {
	var x float64
	if len(inputs) > 0 {
		x = inputs[0]
	}
	dlo, dhi := 0.0, 1.0
	if len(f.Domain) >= 2 {
		dlo, dhi = f.Domain[0], f.Domain[1]
	}
	x = clip(x, dlo, dhi)
	elo, ehi := 0.0, float64(f.Size[0]-1)
	if len(f.Encode) >= 2 {
		elo, ehi = f.Encode[0], f.Encode[1]
	}
	e := clip(interpolate(x, dlo, dhi, elo, ehi), 0, float64(f.Size[0]-1))

	i1 := int(e)
	if i1 > f.Size[0]-1 {
		i1 = f.Size[0] - 1
	}
	i2 := i1 + 1
	if i2 > f.Size[0]-1 {
		i2 = f.Size[0] - 1
	}
	i0 := i1 - 1
	if i0 < 0 {
		i0 = 0
	}
	i3 := i2 + 1
	if i3 > f.Size[0]-1 {
		i3 = f.Size[0] - 1
	}
	t := e - float64(i1)

	for c := 0; c < n && c < len(result); c++ {
		p0 := f.sampleComponent(i0, c, n)
		p1 := f.sampleComponent(i1, c, n)
		p2 := f.sampleComponent(i2, c, n)
		p3 := f.sampleComponent(i3, c, n)
		result[c] = catmullRom(p0, p1, p2, p3, t)
	}
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}
