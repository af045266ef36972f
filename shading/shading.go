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

// Package shading triangulates the mesh-based shading types (C9, §4.9):
// free-form and lattice-form Gouraud triangle meshes (ShadingType 4, 5)
// and Coons/tensor-product patch meshes (ShadingType 6, 7), whose vertex
// data is packed into a bitstream that needs decoding before a sink can
// rasterise it. Axial/Radial (2, 3) and Function-based (1) shadings carry
// their colour function and geometric parameters directly in
// graphics.ShadingDescriptor and need no pre-triangulation here.
package shading

import (
	"fmt"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/graphics/color"
)

// bitReader reads big-endian, non-byte-aligned fields from a shading
// stream (§8.7.4.5.5): BitsPerFlag, BitsPerCoordinate and BitsPerComponent
// fields are packed back-to-back across byte boundaries, each vertex
// record starting at an arbitrary bit offset from the last.
type bitReader struct {
	data []byte
	pos  int // bit offset
}

func (b *bitReader) bitsLeft() int { return len(b.data)*8 - b.pos }

func (b *bitReader) read(n int) (uint64, error) {
	if n <= 0 || n > 32 {
		return 0, fmt.Errorf("invalid field width %d", n)
	}
	if b.bitsLeft() < n {
		return 0, fmt.Errorf("truncated shading data")
	}
	var v uint64
	for n > 0 {
		byteIdx := b.pos / 8
		bitIdx := b.pos % 8
		avail := 8 - bitIdx
		take := avail
		if take > n {
			take = n
		}
		shift := avail - take
		mask := byte((1 << take) - 1)
		bits := (b.data[byteIdx] >> shift) & mask
		v = v<<take | uint64(bits)
		b.pos += take
		n -= take
	}
	return v, nil
}

// alignByte skips to the start of the next byte, per §8.7.4.5.5: each
// vertex (type 4/6/7) or each row (type 5) starts on a byte boundary.
func (b *bitReader) alignByte() {
	if b.pos%8 != 0 {
		b.pos += 8 - b.pos%8
	}
}

func decodeValue(raw uint64, bits int, lo, hi float64) float64 {
	max := float64((uint64(1) << uint(bits)) - 1)
	if max == 0 {
		return lo
	}
	return lo + float64(raw)/max*(hi-lo)
}

// meshParams bundles the stream dictionary fields common to shading types
// 4-7 (§8.7.4.5.5 Tables 83-85).
type meshParams struct {
	bitsPerFlag       int
	bitsPerCoordinate int
	bitsPerComponent  int
	decode            []float64
	numComponents     int
	colorSpace        color.Space
	fn                pdf.Function
	vertsPerRow       int // type 5 only
}

func readMeshParams(r pdf.Getter, dict pdf.Dict, sp color.Space, fn pdf.Function) (*meshParams, error) {
	bpFlag, _ := pdf.GetInteger(r, dict.Get("BitsPerFlag"))
	bpCoord, err := pdf.GetInteger(r, dict.Get("BitsPerCoordinate"))
	if err != nil {
		return nil, err
	}
	bpComp, err := pdf.GetInteger(r, dict.Get("BitsPerComponent"))
	if err != nil {
		return nil, err
	}
	decode, err := pdf.GetFloatArray(r, dict.Get("Decode"))
	if err != nil {
		return nil, err
	}
	n := 1
	if fn == nil && sp != nil {
		n = sp.NumComponents()
	}
	vpr, _ := pdf.GetInteger(r, dict.Get("VerticesPerRow"))
	return &meshParams{
		bitsPerFlag:       int(bpFlag),
		bitsPerCoordinate: int(bpCoord),
		bitsPerComponent:  int(bpComp),
		decode:            decode,
		numComponents:     n,
		colorSpace:        sp,
		fn:                fn,
		vertsPerRow:       int(vpr),
	}, nil
}

func (p *meshParams) readVertex(b *bitReader, withFlag bool) (flag int, x, y float64, rgb [3]float64, err error) {
	if withFlag {
		raw, e := b.read(p.bitsPerFlag)
		if e != nil {
			return 0, 0, 0, rgb, e
		}
		flag = int(raw)
	}
	if len(p.decode) < 4 {
		return flag, 0, 0, rgb, fmt.Errorf("short /Decode array")
	}
	xr, err := b.read(p.bitsPerCoordinate)
	if err != nil {
		return flag, 0, 0, rgb, err
	}
	yr, err := b.read(p.bitsPerCoordinate)
	if err != nil {
		return flag, 0, 0, rgb, err
	}
	x = decodeValue(xr, p.bitsPerCoordinate, p.decode[0], p.decode[1])
	y = decodeValue(yr, p.bitsPerCoordinate, p.decode[2], p.decode[3])

	comps := make([]float64, p.numComponents)
	for i := 0; i < p.numComponents; i++ {
		lo, hi := 0.0, 1.0
		if 4+2*i+1 < len(p.decode) {
			lo, hi = p.decode[4+2*i], p.decode[4+2*i+1]
		}
		cr, err := b.read(p.bitsPerComponent)
		if err != nil {
			return flag, 0, 0, rgb, err
		}
		comps[i] = decodeValue(cr, p.bitsPerComponent, lo, hi)
	}
	rgb = toRGB(p.fn, p.colorSpace, comps)
	return flag, x, y, rgb, nil
}

func toRGB(fn pdf.Function, sp color.Space, comps []float64) [3]float64 {
	if fn != nil && len(comps) >= 1 {
		_, n := fn.Shape()
		out := make([]float64, n)
		fn.Apply(out, comps[0])
		comps = out
	}
	if sp == nil {
		if len(comps) >= 3 {
			return [3]float64{comps[0], comps[1], comps[2]}
		}
		if len(comps) == 1 {
			return [3]float64{comps[0], comps[0], comps[0]}
		}
		return [3]float64{}
	}
	r, g, bch := sp.ToRGB(comps)
	return [3]float64{r, g, bch}
}

// Triangulate decodes a mesh-based shading stream (type 4, 5, 6 or 7) into
// colour-interpolated triangles, via the flag-driven strip-building rule
// of §8.7.4.5.5 (free-form) or the row-grid rule (lattice-form), and a
// corner-only flattening of Coons/tensor patches into two triangles per
// patch (curved edges are not rasterised at the triangle level; a sink
// wanting patch curvature can use the original control points, but no
// sink capability in the graphics package currently exposes that).
func Triangulate(r pdf.Getter, shadingType int, data []byte, dict pdf.Dict, sp color.Space, fn pdf.Function) ([]Triangle, error) {
	p, err := readMeshParams(r, dict, sp, fn)
	if err != nil {
		return nil, err
	}
	b := &bitReader{data: data}

	switch shadingType {
	case 4:
		return triangulateFreeForm(b, p)
	case 5:
		return triangulateLattice(b, p)
	case 6, 7:
		return triangulateCoons(b, p, shadingType == 7)
	default:
		return nil, fmt.Errorf("shading type %d is not mesh-based", shadingType)
	}
}

// Triangle is one colour-interpolated triangle produced by Triangulate;
// its fields mirror graphics.ShadingTriangle so callers can convert
// directly without this package importing graphics (which itself imports
// shading, to dispatch the `sh` operator).
type Triangle struct {
	X [3]float64
	Y [3]float64
	R [3]float64
	G [3]float64
	B [3]float64
}

type vertex struct {
	x, y float64
	rgb  [3]float64
}

func tri(a, bv, c vertex) Triangle {
	return Triangle{
		X: [3]float64{a.x, bv.x, c.x},
		Y: [3]float64{a.y, bv.y, c.y},
		R: [3]float64{a.rgb[0], bv.rgb[0], c.rgb[0]},
		G: [3]float64{a.rgb[1], bv.rgb[1], c.rgb[1]},
		B: [3]float64{a.rgb[2], bv.rgb[2], c.rgb[2]},
	}
}

// triangulateFreeForm implements the flag-driven triangle strip rule for
// ShadingType 4 (§8.7.4.5.5): flag 0 starts a new, independent triangle;
// flags 1/2 reuse two vertices of the previous triangle.
func triangulateFreeForm(b *bitReader, p *meshParams) ([]Triangle, error) {
	var tris []Triangle
	var va, vb, vc vertex
	have := 0
	for b.bitsLeft() >= p.bitsPerFlag+2*p.bitsPerCoordinate {
		flag, x, y, rgb, err := p.readVertex(b, true)
		if err != nil {
			break
		}
		b.alignByte()
		v := vertex{x, y, rgb}

		switch {
		case flag == 0 || have < 3:
			va, vb, vc = vb, vc, v
			have++
			if have >= 3 {
				tris = append(tris, tri(va, vb, vc))
			}
		case flag == 1:
			va, vb, vc = vb, vc, v
			tris = append(tris, tri(va, vb, vc))
		case flag == 2:
			vb, vc = vc, v
			tris = append(tris, tri(va, vb, vc))
		default:
			return nil, fmt.Errorf("invalid edge flag %d", flag)
		}
	}
	return tris, nil
}

// triangulateLattice implements the row-grid rule for ShadingType 5
// (§8.7.4.5.5): vertices (no flag) form equal-length rows of
// VerticesPerRow, and each 2x2 cell of adjacent rows is split into two
// triangles.
func triangulateLattice(b *bitReader, p *meshParams) ([]Triangle, error) {
	if p.vertsPerRow < 2 {
		return nil, fmt.Errorf("invalid /VerticesPerRow")
	}
	var rows [][]vertex
	for {
		row := make([]vertex, 0, p.vertsPerRow)
		for i := 0; i < p.vertsPerRow; i++ {
			if b.bitsLeft() < 2*p.bitsPerCoordinate {
				break
			}
			_, x, y, rgb, err := p.readVertex(b, false)
			if err != nil {
				break
			}
			row = append(row, vertex{x, y, rgb})
		}
		if len(row) < p.vertsPerRow {
			break
		}
		rows = append(rows, row)
	}
	var tris []Triangle
	for rIdx := 1; rIdx < len(rows); rIdx++ {
		prev, cur := rows[rIdx-1], rows[rIdx]
		for c := 1; c < p.vertsPerRow; c++ {
			tris = append(tris, tri(prev[c-1], prev[c], cur[c-1]))
			tris = append(tris, tri(prev[c], cur[c], cur[c-1]))
		}
	}
	return tris, nil
}

// triangulateCoons flattens each Coons (type 6) or tensor-product
// (type 7) patch to its 4 corner points, discarding Bezier curvature, and
// emits two triangles per patch. tensor indicates 16 control points per
// patch instead of 12; only the shared 12-point corner layout is used
// either way.
func triangulateCoons(b *bitReader, p *meshParams, tensor bool) ([]Triangle, error) {
	numPoints := 12
	if tensor {
		numPoints = 16
	}
	var tris []Triangle
	var prevPts [12]vertex
	havePrev := false

	for b.bitsLeft() >= p.bitsPerFlag {
		raw, err := b.read(p.bitsPerFlag)
		if err != nil {
			break
		}
		flag := int(raw)

		newPoints := numPoints
		newColors := 4
		if flag != 0 {
			newPoints = numPoints - 4
			newColors = 2
		}

		pts := make([]vertex, 0, numPoints)
		cols := make([]vertex, 0, 4)
		if flag != 0 && havePrev {
			shared := sharedCoonsEdge(prevPts, flag)
			pts = append(pts, shared...)
		}
		for i := 0; i < newPoints; i++ {
			if len(p.decode) < 4 || b.bitsLeft() < 2*p.bitsPerCoordinate {
				return tris, fmt.Errorf("truncated patch")
			}
			xr, err := b.read(p.bitsPerCoordinate)
			if err != nil {
				return tris, err
			}
			yr, err := b.read(p.bitsPerCoordinate)
			if err != nil {
				return tris, err
			}
			x := decodeValue(xr, p.bitsPerCoordinate, p.decode[0], p.decode[1])
			y := decodeValue(yr, p.bitsPerCoordinate, p.decode[2], p.decode[3])
			pts = append(pts, vertex{x: x, y: y})
		}
		for i := 0; i < newColors; i++ {
			comps := make([]float64, p.numComponents)
			for c := 0; c < p.numComponents; c++ {
				lo, hi := 0.0, 1.0
				if 4+2*c+1 < len(p.decode) {
					lo, hi = p.decode[4+2*c], p.decode[4+2*c+1]
				}
				cr, err := b.read(p.bitsPerComponent)
				if err != nil {
					return tris, err
				}
				comps[c] = decodeValue(cr, p.bitsPerComponent, lo, hi)
			}
			cols = append(cols, vertex{rgb: toRGB(p.fn, p.colorSpace, comps)})
		}
		b.alignByte()

		corners := coonsCorners(pts, cols, flag, havePrev, prevPts)
		if len(corners) == 4 {
			tris = append(tris, tri(corners[0], corners[1], corners[2]))
			tris = append(tris, tri(corners[0], corners[2], corners[3]))
			var full [12]vertex
			copy(full[:], padTo12(pts))
			prevPts = full
			havePrev = true
		}
	}
	return tris, nil
}

// padTo12 pads a corner/control point slice out to 12 entries so it can be
// stored as the shared-edge source for the next subsequent patch; only
// the first 12 (or fewer, for a continuation patch) positions are
// meaningful.
func padTo12(pts []vertex) []vertex {
	out := make([]vertex, 12)
	copy(out, pts)
	return out
}

// sharedCoonsEdge returns the 4 control points a continuation patch
// inherits from the edge of the previous patch named by flag (§8.7.4.5.7
// Table 84); corner colours for those points are not tracked here since
// Triangulate only needs the 4 corner positions, not the full 12/16-point
// control net.
func sharedCoonsEdge(prev [12]vertex, flag int) []vertex {
	// Coons patch control points are ordered p1..p12 around the boundary
	// starting at the bottom-left corner; the shared edge depends on
	// which side flag selects. Only point positions, not colours, are
	// reused, since new colours are always supplied for the 2 new
	// corners.
	switch flag {
	case 1:
		return []vertex{prev[3], prev[4], prev[5], prev[6]}
	case 2:
		return []vertex{prev[6], prev[7], prev[8], prev[9]}
	case 3:
		return []vertex{prev[9], prev[10], prev[11], prev[0]}
	default:
		return nil
	}
}

// coonsCorners picks the 4 corner vertices (with colour) out of the
// control-point/colour lists gathered for one patch.
func coonsCorners(pts []vertex, cols []vertex, flag int, havePrev bool, prev [12]vertex) []vertex {
	if flag == 0 || !havePrev {
		if len(pts) < 10 || len(cols) < 4 {
			return nil
		}
		return []vertex{
			{x: pts[0].x, y: pts[0].y, rgb: cols[0].rgb},
			{x: pts[3].x, y: pts[3].y, rgb: cols[1].rgb},
			{x: pts[6].x, y: pts[6].y, rgb: cols[2].rgb},
			{x: pts[9].x, y: pts[9].y, rgb: cols[3].rgb},
		}
	}
	if len(pts) < 8 || len(cols) < 2 {
		return nil
	}
	// shared edge contributes the first 2 corners; the 6 new points
	// (indices 4..9 of the full 12) contribute the far corner and the
	// last corner.
	return []vertex{
		{x: pts[0].x, y: pts[0].y},
		{x: pts[3].x, y: pts[3].y, rgb: cols[0].rgb},
		{x: pts[6].x, y: pts[6].y, rgb: cols[1].rgb},
		{x: pts[len(pts)-1].x, y: pts[len(pts)-1].y},
	}
}
