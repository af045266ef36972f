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

// Package graphics implements the content-stream interpreter (C7): a
// stack VM that consumes instructions from [pdf/content], maintains a
// single GraphicsState plus the q/Q stack, and dispatches to an abstract
// Sink so rendering and text extraction share one operator
// implementation.
package graphics

import (
	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/graphics/color"

	"seehuhn.de/go/geom/matrix"
)

// Matrix is the 2D affine transformation used for the CTM and the text
// matrices.
type Matrix = matrix.Matrix

// IdentityMatrix is the identity transform.
var IdentityMatrix = matrix.Identity

// PathOpKind distinguishes the segment kinds of a Path.
type PathOpKind int

const (
	OpMoveTo PathOpKind = iota
	OpLineTo
	OpCurveTo
	OpClose
)

// PathOp is one segment of a path, in user space (the interpreter
// applies the CTM before handing the path to the sink is NOT done here;
// coordinates are left in the space they were constructed in, and
// concat_ctm calls already seen by the sink let it track the transform
// itself, per §6).
type PathOp struct {
	Kind       PathOpKind
	X, Y       float64 // MoveTo, LineTo
	X1, Y1     float64 // CurveTo: first control point
	X2, Y2     float64 // CurveTo: second control point
	X3, Y3     float64 // CurveTo: end point
}

// Path is a sequence of path construction operators accumulated between
// two painting operators (§4.7, "Path construction").
type Path []PathOp

// FillRule selects the winding rule used by a fill or clip operation.
type FillRule int

const (
	NonZeroWinding FillRule = iota
	EvenOdd
)

// TextState holds the fields that exist only between BT and ET plus the
// persistent text parameters (Tc, Tw, Tz, TL, Tf, Tr, Ts) that survive
// across text objects (§9.3).
type TextState struct {
	CharSpacing  float64 // Tc
	WordSpacing  float64 // Tw
	HScale       float64 // Tz, as a fraction (100 Tz == 1.0)
	Leading      float64 // TL
	FontName     pdf.Name
	FontSize     float64
	RenderMode   int     // Tr
	Rise         float64 // Ts

	Tm  Matrix // text matrix
	Tlm Matrix // text line matrix
}

// GraphicsState is the complete set of parameters the interpreter
// threads through a content stream (§8.4, §9.3): the CTM, line/stroke
// parameters, colours, alpha and blend state, and the text state.
type GraphicsState struct {
	CTM Matrix

	LineWidth  float64
	LineCap    int
	LineJoin   int
	MiterLimit float64
	DashArray  []float64
	DashPhase  float64
	RenderingIntent pdf.Name

	StrokeSpace color.Space
	FillSpace   color.Space
	StrokeColor color.Color
	FillColor   color.Color

	StrokeAlpha float64
	FillAlpha   float64
	BlendMode   pdf.Name
	SoftMask    pdf.Object

	OverprintStroke bool
	OverprintFill   bool
	OverprintMode   int
	StrokeAdjustment bool
	AlphaSourceFlag  bool

	Text TextState
}

// NewGraphicsState returns the initial graphics state for a content
// stream (§8.4.1 Table 52 initial values).
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		CTM:             IdentityMatrix,
		LineWidth:       1,
		MiterLimit:      10,
		RenderingIntent: "RelativeColorimetric",
		StrokeSpace:     color.DeviceGray,
		FillSpace:       color.DeviceGray,
		StrokeColor:     color.DeviceGray.Default(),
		FillColor:       color.DeviceGray.Default(),
		StrokeAlpha:     1,
		FillAlpha:       1,
		BlendMode:       "Normal",
		Text: TextState{
			HScale: 1,
		},
	}
}

// Clone returns a deep-enough copy of g for pushing onto the q/Q stack:
// slice fields are copied so that mutating the dash array of a nested
// state cannot leak back into the caller's.
func (g *GraphicsState) Clone() *GraphicsState {
	c := *g
	if g.DashArray != nil {
		c.DashArray = append([]float64(nil), g.DashArray...)
	}
	return &c
}

// Sink receives the draw calls produced by interpreting a content
// stream, in PDF stream order (§6, "Graphics sink").
type Sink interface {
	PushState()
	PopState()
	ConcatCTM(m Matrix)
	SetClip(path Path, rule FillRule)

	DrawPath(path Path, fillRule *FillRule, stroke bool, state *GraphicsState)

	SetLineWidth(w float64)
	SetLineCap(c int)
	SetLineJoin(j int)
	SetMiterLimit(m float64)
	SetDash(array []float64, phase float64)

	SetFillAlpha(a float64)
	SetStrokeAlpha(a float64)
	SetBlendMode(mode pdf.Name)

	DrawTextRun(fontName pdf.Name, fontSize float64, text string, glyphAdvances []float64, transform Matrix, mode int)

	DrawImage(img Image, transform Matrix)
	DrawShading(desc ShadingDescriptor)

	BeginForm(bbox *pdf.Rectangle, matrix Matrix, resources pdf.Dict)
	EndForm()
}

// Image is the decoded representation of an Image XObject or inline
// image handed to the sink (§4.7, "XObjects").
type Image struct {
	Width, Height    int
	BitsPerComponent int
	ColorSpace       color.Space
	Data             []byte // decoded samples, BitsPerComponent packed MSB-first
	SoftMask         *Image // /SMask, grayscale alpha
	Mask             *Image // explicit 1-bit stencil mask
	ColorKeyMask     []int  // /Mask as a colour-key range array
	Interpolate      bool
}

// ShadingDescriptor carries the geometric and colour parameters of a
// shading (`sh` operator or pattern fill), for the sink to rasterise.
// The concrete shading evaluators that fill this in live in
// pdf/shading (C9).
type ShadingDescriptor struct {
	ShadingType int
	ColorSpace  color.Space
	Function    pdf.Function // nil for Gouraud/Coons, which carry vertex colours directly

	// Axial/Radial (types 2, 3).
	Coords   []float64 // [x0 y0 x1 y1] or [x0 y0 r0 x1 y1 r1]
	Domain   []float64
	Extend   [2]bool

	// Function-based (type 1): sampled to an ARGB image of size matching
	// BBox by the caller.
	Matrix Matrix
	BBox   *pdf.Rectangle

	// Gouraud/Coons/Tensor (types 4-7): triangulated by pdf/shading.
	Triangles []ShadingTriangle
}

// ShadingTriangle is one colour-interpolated triangle produced by
// triangulating a Gouraud or Coons/Tensor patch mesh.
type ShadingTriangle struct {
	X  [3]float64
	Y  [3]float64
	R  [3]float64
	G  [3]float64
	B  [3]float64
}
