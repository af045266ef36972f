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

package graphics

import (
	"fmt"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/content"
	"github.com/dodeca-labs/pdfcore/font"
	"github.com/dodeca-labs/pdfcore/function"
	"github.com/dodeca-labs/pdfcore/graphics/color"
	"github.com/dodeca-labs/pdfcore/shading"
)

const maxStackDepth = 28 // §8.4.2: q/Q depth bound for PDF 2.0

// Interpreter runs a content stream against Resources, calling Sink for
// every drawing operation (§4.7). One Interpreter is built per page or
// per Form XObject invocation; nested Form XObjects get their own
// Interpreter sharing the same Sink.
type Interpreter struct {
	Getter    pdf.Getter
	Resources pdf.Dict
	Sink      Sink

	state   *GraphicsState
	stack   []*GraphicsState
	path    Path
	pending *FillRule // pending W/W* clip, applied at the next paint/n

	inText bool

	fonts map[pdf.Name]*font.Dict

	// Warnings accumulates non-fatal problems (malformed operators,
	// unresolved resources); interpretation continues regardless, per
	// the failure policy in §4.7.
	Warnings []string
}

// NewInterpreter returns an Interpreter ready to run content streams
// against resources with state reset to its initial values.
func NewInterpreter(r pdf.Getter, resources pdf.Dict, sink Sink) *Interpreter {
	return &Interpreter{
		Getter:    r,
		Resources: resources,
		Sink:      sink,
		state:     NewGraphicsState(),
		fonts:     map[pdf.Name]*font.Dict{},
	}
}

func (ip *Interpreter) warnf(format string, args ...any) {
	ip.Warnings = append(ip.Warnings, fmt.Sprintf(format, args...))
}

// Run interprets data as a content stream, in stream order.
func (ip *Interpreter) Run(data []byte) error {
	sc, err := content.Scan(data)
	if err != nil {
		return err
	}
	for {
		instr, ok := sc.Next()
		if !ok {
			return nil
		}
		if err := ip.step(instr); err != nil {
			ip.warnf("%s: %v", instr.Operator, err)
		}
	}
}

func num(obj pdf.Object) (float64, bool) {
	switch v := obj.(type) {
	case pdf.Integer:
		return float64(v), true
	case pdf.Real:
		return float64(v), true
	case pdf.Number:
		return float64(v), true
	default:
		return 0, false
	}
}

func nums(ops []pdf.Object, n int) ([]float64, bool) {
	if len(ops) < n {
		return nil, false
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, ok := num(ops[len(ops)-n+i])
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func (ip *Interpreter) step(instr pdf.Instruction) error {
	ops := instr.Operands
	g := ip.state

	switch instr.Operator {

	// -- Graphics state -------------------------------------------------
	case "q":
		if len(ip.stack) >= maxStackDepth {
			ip.warnf("q: stack depth exceeds %d", maxStackDepth)
		}
		ip.stack = append(ip.stack, g.Clone())
		ip.Sink.PushState()
	case "Q":
		if len(ip.stack) == 0 {
			return fmt.Errorf("unmatched Q")
		}
		ip.state = ip.stack[len(ip.stack)-1]
		ip.stack = ip.stack[:len(ip.stack)-1]
		ip.Sink.PopState()
	case "cm":
		v, ok := nums(ops, 6)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		m := Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}
		g.CTM = m.Mul(g.CTM)
		ip.Sink.ConcatCTM(m)
	case "w":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.LineWidth = v[0]
		ip.Sink.SetLineWidth(v[0])
	case "J":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.LineCap = int(v[0])
		ip.Sink.SetLineCap(g.LineCap)
	case "j":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.LineJoin = int(v[0])
		ip.Sink.SetLineJoin(g.LineJoin)
	case "M":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.MiterLimit = v[0]
		ip.Sink.SetMiterLimit(v[0])
	case "d":
		if len(ops) < 2 {
			return fmt.Errorf("bad operands")
		}
		arr, ok := ops[len(ops)-2].(pdf.Array)
		phase, ok2 := num(ops[len(ops)-1])
		if !ok || !ok2 {
			return fmt.Errorf("bad operands")
		}
		dashes := make([]float64, len(arr))
		for i, e := range arr {
			v, ok := num(e)
			if !ok {
				return fmt.Errorf("non-numeric dash entry")
			}
			dashes[i] = v
		}
		g.DashArray, g.DashPhase = dashes, phase
		ip.Sink.SetDash(dashes, phase)
	case "i":
		// flatness tolerance: recorded nowhere the sink needs, accepted
		// and ignored.
	case "ri":
		if len(ops) < 1 {
			return fmt.Errorf("bad operands")
		}
		n, ok := ops[len(ops)-1].(pdf.Name)
		if !ok {
			return fmt.Errorf("bad operand type")
		}
		g.RenderingIntent = n
	case "gs":
		if len(ops) < 1 {
			return fmt.Errorf("bad operands")
		}
		n, ok := ops[len(ops)-1].(pdf.Name)
		if !ok {
			return fmt.Errorf("bad operand type")
		}
		return ip.applyExtGState(n)

	// -- Path construction -----------------------------------------------
	case "m":
		v, ok := nums(ops, 2)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		ip.path = append(ip.path, PathOp{Kind: OpMoveTo, X: v[0], Y: v[1]})
	case "l":
		v, ok := nums(ops, 2)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		ip.path = append(ip.path, PathOp{Kind: OpLineTo, X: v[0], Y: v[1]})
	case "c":
		v, ok := nums(ops, 6)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		ip.path = append(ip.path, PathOp{Kind: OpCurveTo, X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], X3: v[4], Y3: v[5]})
	case "v":
		v, ok := nums(ops, 4)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		cx, cy := ip.currentPoint()
		ip.path = append(ip.path, PathOp{Kind: OpCurveTo, X1: cx, Y1: cy, X2: v[0], Y2: v[1], X3: v[2], Y3: v[3]})
	case "y":
		v, ok := nums(ops, 4)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		ip.path = append(ip.path, PathOp{Kind: OpCurveTo, X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], X3: v[2], Y3: v[3]})
	case "h":
		ip.path = append(ip.path, PathOp{Kind: OpClose})
	case "re":
		v, ok := nums(ops, 4)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		x, y, w, h := v[0], v[1], v[2], v[3]
		ip.path = append(ip.path,
			PathOp{Kind: OpMoveTo, X: x, Y: y},
			PathOp{Kind: OpLineTo, X: x + w, Y: y},
			PathOp{Kind: OpLineTo, X: x + w, Y: y + h},
			PathOp{Kind: OpLineTo, X: x, Y: y + h},
			PathOp{Kind: OpClose},
		)

	// -- Path painting -----------------------------------------------------
	case "S":
		ip.paint(nil, true)
	case "s":
		ip.path = append(ip.path, PathOp{Kind: OpClose})
		ip.paint(nil, true)
	case "f", "F":
		rule := NonZeroWinding
		ip.paint(&rule, false)
	case "f*":
		rule := EvenOdd
		ip.paint(&rule, false)
	case "B":
		rule := NonZeroWinding
		ip.paint(&rule, true)
	case "B*":
		rule := EvenOdd
		ip.paint(&rule, true)
	case "b":
		ip.path = append(ip.path, PathOp{Kind: OpClose})
		rule := NonZeroWinding
		ip.paint(&rule, true)
	case "b*":
		ip.path = append(ip.path, PathOp{Kind: OpClose})
		rule := EvenOdd
		ip.paint(&rule, true)
	case "n":
		ip.paint(nil, false)
	case "W":
		rule := NonZeroWinding
		ip.pending = &rule
	case "W*":
		rule := EvenOdd
		ip.pending = &rule

	// -- Colour ------------------------------------------------------------
	case "CS":
		return ip.setColorSpace(ops, true)
	case "cs":
		return ip.setColorSpace(ops, false)
	case "SC", "SCN":
		return ip.setColor(ops, true)
	case "sc", "scn":
		return ip.setColor(ops, false)
	case "G":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.StrokeSpace = color.DeviceGray
		g.StrokeColor = color.Gray(v[0])
	case "g":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.FillSpace = color.DeviceGray
		g.FillColor = color.Gray(v[0])
	case "RG":
		v, ok := nums(ops, 3)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.StrokeSpace = color.DeviceRGB
		g.StrokeColor = color.RGBColor(v[0], v[1], v[2])
	case "rg":
		v, ok := nums(ops, 3)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.FillSpace = color.DeviceRGB
		g.FillColor = color.RGBColor(v[0], v[1], v[2])
	case "K":
		v, ok := nums(ops, 4)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.StrokeSpace = color.DeviceCMYK
		g.StrokeColor = color.CMYK(v[0], v[1], v[2], v[3])
	case "k":
		v, ok := nums(ops, 4)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.FillSpace = color.DeviceCMYK
		g.FillColor = color.CMYK(v[0], v[1], v[2], v[3])

	// -- Text --------------------------------------------------------------
	case "BT":
		if ip.inText {
			ip.warnf("nested BT")
		}
		ip.inText = true
		g.Text.Tm = IdentityMatrix
		g.Text.Tlm = IdentityMatrix
	case "ET":
		if !ip.inText {
			ip.warnf("ET without BT")
		}
		ip.inText = false
	case "Tc":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.CharSpacing = v[0]
	case "Tw":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.WordSpacing = v[0]
	case "Tz":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.HScale = v[0] / 100
	case "TL":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.Leading = v[0]
	case "Tf":
		if len(ops) < 2 {
			return fmt.Errorf("bad operands")
		}
		n, ok1 := ops[len(ops)-2].(pdf.Name)
		size, ok2 := num(ops[len(ops)-1])
		if !ok1 || !ok2 {
			return fmt.Errorf("bad operand types")
		}
		g.Text.FontName, g.Text.FontSize = n, size
	case "Tr":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.RenderMode = int(v[0])
	case "Ts":
		v, ok := nums(ops, 1)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.Rise = v[0]
	case "Td":
		v, ok := nums(ops, 2)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.Tlm = Matrix{1, 0, 0, 1, v[0], v[1]}.Mul(g.Text.Tlm)
		g.Text.Tm = g.Text.Tlm
	case "TD":
		v, ok := nums(ops, 2)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		g.Text.Leading = -v[1]
		g.Text.Tlm = Matrix{1, 0, 0, 1, v[0], v[1]}.Mul(g.Text.Tlm)
		g.Text.Tm = g.Text.Tlm
	case "Tm":
		v, ok := nums(ops, 6)
		if !ok {
			return fmt.Errorf("bad operands")
		}
		m := Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}
		g.Text.Tm, g.Text.Tlm = m, m
	case "T*":
		g.Text.Tlm = Matrix{1, 0, 0, 1, 0, -g.Text.Leading}.Mul(g.Text.Tlm)
		g.Text.Tm = g.Text.Tlm
	case "Tj":
		if len(ops) < 1 {
			return fmt.Errorf("bad operands")
		}
		s, ok := asString(ops[len(ops)-1])
		if !ok {
			return fmt.Errorf("bad operand type")
		}
		return ip.showText(s)
	case "'":
		if len(ops) < 1 {
			return fmt.Errorf("bad operands")
		}
		s, ok := asString(ops[len(ops)-1])
		if !ok {
			return fmt.Errorf("bad operand type")
		}
		g.Text.Tlm = Matrix{1, 0, 0, 1, 0, -g.Text.Leading}.Mul(g.Text.Tlm)
		g.Text.Tm = g.Text.Tlm
		return ip.showText(s)
	case "\"":
		if len(ops) < 3 {
			return fmt.Errorf("bad operands")
		}
		aw, ok1 := num(ops[len(ops)-3])
		ac, ok2 := num(ops[len(ops)-2])
		s, ok3 := asString(ops[len(ops)-1])
		if !ok1 || !ok2 || !ok3 {
			return fmt.Errorf("bad operand types")
		}
		g.Text.WordSpacing, g.Text.CharSpacing = aw, ac
		g.Text.Tlm = Matrix{1, 0, 0, 1, 0, -g.Text.Leading}.Mul(g.Text.Tlm)
		g.Text.Tm = g.Text.Tlm
		return ip.showText(s)
	case "TJ":
		if len(ops) < 1 {
			return fmt.Errorf("bad operands")
		}
		arr, ok := ops[len(ops)-1].(pdf.Array)
		if !ok {
			return fmt.Errorf("bad operand type")
		}
		for _, frag := range arr {
			if s, ok := asString(frag); ok {
				if err := ip.showText(s); err != nil {
					ip.warnf("TJ fragment: %v", err)
				}
				continue
			}
			if n, ok := num(frag); ok {
				ip.advanceTm(-n / 1000 * g.Text.FontSize * g.Text.HScale)
				continue
			}
		}

	// -- XObjects and shading -----------------------------------------------
	case "Do":
		if len(ops) < 1 {
			return fmt.Errorf("bad operands")
		}
		n, ok := ops[len(ops)-1].(pdf.Name)
		if !ok {
			return fmt.Errorf("bad operand type")
		}
		return ip.doXObject(n)
	case "sh":
		if len(ops) < 1 {
			return fmt.Errorf("bad operands")
		}
		n, ok := ops[len(ops)-1].(pdf.Name)
		if !ok {
			return fmt.Errorf("bad operand type")
		}
		return ip.doShading(n)

	case "BI":
		return ip.doInlineImage(instr)

	// -- Marked content and compatibility: recorded nowhere, skipped. --
	case "BMC", "BDC", "EMC", "MP", "DP", "BX", "EX":
		// no-op

	default:
		return fmt.Errorf("unknown operator")
	}
	return nil
}

func asString(obj pdf.Object) (pdf.String, bool) {
	switch v := obj.(type) {
	case pdf.String:
		return v, true
	case pdf.HexString:
		return pdf.String(v), true
	default:
		return nil, false
	}
}

func (ip *Interpreter) currentPoint() (float64, float64) {
	for i := len(ip.path) - 1; i >= 0; i-- {
		op := ip.path[i]
		switch op.Kind {
		case OpMoveTo, OpLineTo:
			return op.X, op.Y
		case OpCurveTo:
			return op.X3, op.Y3
		}
	}
	return 0, 0
}

// paint flushes the accumulated path to the sink, applying any pending
// clip atomically (§4.7, "at most one W/W* may be recorded as a pending
// clip; it is applied atomically at the next painting or n operator").
func (ip *Interpreter) paint(fillRule *FillRule, stroke bool) {
	if fillRule != nil || stroke {
		ip.Sink.DrawPath(ip.path, fillRule, stroke, ip.state)
	}
	if ip.pending != nil {
		ip.Sink.SetClip(ip.path, *ip.pending)
		ip.pending = nil
	}
	ip.path = nil
}

func (ip *Interpreter) applyExtGState(name pdf.Name) error {
	dict, err := ip.resourceDict("ExtGState", name)
	if err != nil {
		return err
	}
	g := ip.state
	for _, key := range dict.Keys() {
		val := dict.Get(key)
		switch key {
		case "LW":
			if v, err := pdf.GetReal(ip.Getter, val); err == nil {
				g.LineWidth = float64(v)
				ip.Sink.SetLineWidth(g.LineWidth)
			}
		case "LC":
			if v, err := pdf.GetInteger(ip.Getter, val); err == nil {
				g.LineCap = int(v)
				ip.Sink.SetLineCap(g.LineCap)
			}
		case "LJ":
			if v, err := pdf.GetInteger(ip.Getter, val); err == nil {
				g.LineJoin = int(v)
				ip.Sink.SetLineJoin(g.LineJoin)
			}
		case "ML":
			if v, err := pdf.GetReal(ip.Getter, val); err == nil {
				g.MiterLimit = float64(v)
				ip.Sink.SetMiterLimit(g.MiterLimit)
			}
		case "D":
			if arr, err := pdf.GetArray(ip.Getter, val); err == nil && len(arr) == 2 {
				dashes, _ := pdf.GetFloatArray(ip.Getter, arr[0])
				phase, _ := pdf.GetReal(ip.Getter, arr[1])
				g.DashArray, g.DashPhase = dashes, float64(phase)
				ip.Sink.SetDash(dashes, g.DashPhase)
			}
		case "RI":
			if n, err := pdf.GetName(ip.Getter, val); err == nil {
				g.RenderingIntent = n
			}
		case "OP":
			if b, err := pdf.GetBoolean(ip.Getter, val); err == nil {
				g.OverprintStroke = bool(b)
				if !dict.Has("op") {
					g.OverprintFill = bool(b)
				}
			}
		case "op":
			if b, err := pdf.GetBoolean(ip.Getter, val); err == nil {
				g.OverprintFill = bool(b)
			}
		case "OPM":
			if v, err := pdf.GetInteger(ip.Getter, val); err == nil {
				g.OverprintMode = int(v)
			}
		case "Font":
			if arr, err := pdf.GetArray(ip.Getter, val); err == nil && len(arr) == 2 {
				if size, err := pdf.GetReal(ip.Getter, arr[1]); err == nil {
					g.Text.FontSize = float64(size)
				}
			}
		case "FL", "SM":
			// flatness / smoothness tolerance: no sink hook.
		case "SA":
			if b, err := pdf.GetBoolean(ip.Getter, val); err == nil {
				g.StrokeAdjustment = bool(b)
			}
		case "BM":
			if n, err := pdf.GetName(ip.Getter, val); err == nil {
				g.BlendMode = n
				ip.Sink.SetBlendMode(n)
			} else if arr, err := pdf.GetArray(ip.Getter, val); err == nil && len(arr) > 0 {
				if n, err := pdf.GetName(ip.Getter, arr[0]); err == nil {
					g.BlendMode = n
					ip.Sink.SetBlendMode(n)
				}
			}
		case "SMask":
			resolved, err := pdf.Resolve(ip.Getter, val)
			if err == nil {
				if resolved == pdf.Name("None") {
					g.SoftMask = nil
				} else {
					g.SoftMask = resolved
				}
			}
		case "CA":
			if v, err := pdf.GetReal(ip.Getter, val); err == nil {
				g.StrokeAlpha = float64(v)
				ip.Sink.SetStrokeAlpha(g.StrokeAlpha)
			}
		case "ca":
			if v, err := pdf.GetReal(ip.Getter, val); err == nil {
				g.FillAlpha = float64(v)
				ip.Sink.SetFillAlpha(g.FillAlpha)
			}
		case "AIS":
			if b, err := pdf.GetBoolean(ip.Getter, val); err == nil {
				g.AlphaSourceFlag = bool(b)
			}
		case "TK":
			// text knockout: no sink hook, state-only.
		case "BG", "BG2", "UCR", "UCR2", "TR", "TR2", "HT":
			// device transfer/halftone functions: accepted, unused by
			// any sink capability in §6.
		case "Type":
			// pass
		}
	}
	return nil
}

func (ip *Interpreter) resourceDict(category, name pdf.Name) (pdf.Dict, error) {
	sub, err := pdf.GetDict(ip.Getter, ip.Resources.Get(category))
	if err != nil {
		return pdf.Dict{}, err
	}
	ref := sub.Get(name)
	if ref == nil {
		return pdf.Dict{}, fmt.Errorf("%s/%s not found", category, name)
	}
	return pdf.GetDict(ip.Getter, ref)
}

func (ip *Interpreter) setColorSpace(ops []pdf.Object, stroke bool) error {
	if len(ops) < 1 {
		return fmt.Errorf("bad operands")
	}
	n, ok := ops[len(ops)-1].(pdf.Name)
	if !ok {
		return fmt.Errorf("bad operand type")
	}
	sp, err := color.ExtractColorSpace(ip.Getter, n, ip.Resources)
	if err != nil {
		return err
	}
	if stroke {
		ip.state.StrokeSpace = sp
		ip.state.StrokeColor = sp.Default()
	} else {
		ip.state.FillSpace = sp
		ip.state.FillColor = sp.Default()
	}
	return nil
}

func (ip *Interpreter) setColor(ops []pdf.Object, stroke bool) error {
	n := len(ops)
	if n > 0 {
		if _, ok := ops[n-1].(pdf.Name); ok {
			// trailing pattern name (§4.7, "SCN/scn accept an optional
			// trailing pattern name"): components, if any, precede it.
			ops = ops[:n-1]
		}
	}
	comps := make([]float64, len(ops))
	for i, o := range ops {
		v, ok := num(o)
		if !ok {
			return fmt.Errorf("non-numeric color component")
		}
		comps[i] = v
	}
	sp := ip.state.FillSpace
	if stroke {
		sp = ip.state.StrokeSpace
	}
	c := color.Color{Space: sp, Components: comps}
	if stroke {
		ip.state.StrokeColor = c
	} else {
		ip.state.FillColor = c
	}
	return nil
}

// advanceTm shifts the text matrix along the text-direction axis by dx
// (unscaled text space units), per §9.4.3.
func (ip *Interpreter) advanceTm(dx float64) {
	ip.state.Text.Tm = Matrix{1, 0, 0, 1, dx, 0}.Mul(ip.state.Text.Tm)
}

func (ip *Interpreter) currentFont() (*font.Dict, error) {
	name := ip.state.Text.FontName
	if fd, ok := ip.fonts[name]; ok {
		return fd, nil
	}
	dict, err := ip.resourceDict("Font", name)
	if err != nil {
		return nil, err
	}
	fd, err := font.ExtractDict(ip.Getter, dict)
	if err != nil {
		return nil, err
	}
	ip.fonts[name] = fd
	return fd, nil
}

// showText decodes s into glyph codes, advances the text matrix by each
// glyph's measured width plus character/word spacing, and calls
// DrawTextRun once for the run (§4.7, "Tj advances Tm by the measured
// glyph width").
func (ip *Interpreter) showText(s pdf.String) error {
	fd, err := ip.currentFont()
	if err != nil {
		return err
	}
	g := ip.state

	codes, isComposite := decodeCodes(s, fd.Subtype.IsComposite())
	advances := make([]float64, len(codes))
	var text string
	if fd.ToUnicode != nil {
		for _, c := range codes {
			if u, ok := fd.ToUnicode.Lookup(uint32(c)); ok {
				text += u
			}
		}
	} else if fd.Encoding != nil {
		for _, c := range codes {
			text += fd.Encoding.DecodeUnicode(byte(c))
		}
	}

	transform := Matrix{g.Text.FontSize * g.Text.HScale, 0, 0, g.Text.FontSize, 0, g.Text.Rise}.Mul(g.Text.Tm).Mul(g.CTM)
	ip.Sink.DrawTextRun(g.Text.FontName, g.Text.FontSize, text, advances, transform, g.Text.RenderMode)

	var total float64
	for i, c := range codes {
		w := fd.Width(c) / 1000 * g.Text.FontSize
		w += g.Text.CharSpacing
		if !isComposite && c == 32 {
			w += g.Text.WordSpacing
		}
		advances[i] = w
		total += w * g.Text.HScale
	}
	ip.advanceTm(total)
	return nil
}

// decodeCodes splits a string operand into character codes: single bytes
// for simple fonts, big-endian code pairs for composite (Type0) fonts.
func decodeCodes(s pdf.String, composite bool) ([]int, bool) {
	if !composite {
		codes := make([]int, len(s))
		for i, b := range s {
			codes[i] = int(b)
		}
		return codes, false
	}
	var codes []int
	for i := 0; i+1 < len(s); i += 2 {
		codes = append(codes, int(s[i])<<8|int(s[i+1]))
	}
	if len(s)%2 == 1 {
		codes = append(codes, int(s[len(s)-1]))
	}
	return codes, true
}

func (ip *Interpreter) doXObject(name pdf.Name) error {
	ref := ip.xobjectRef(name)
	if ref == nil {
		return fmt.Errorf("XObject/%s not found", name)
	}
	obj, err := pdf.Resolve(ip.Getter, ref)
	if err != nil {
		return err
	}
	var dict pdf.Dict
	var stream *pdf.Stream
	switch o := obj.(type) {
	case *pdf.Stream:
		dict, stream = o.Dict, o
	case pdf.Dict:
		dict = o
	default:
		return fmt.Errorf("unexpected XObject type %T", obj)
	}
	subtype, err := pdf.GetName(ip.Getter, dict.Get("Subtype"))
	if err != nil {
		return err
	}
	switch subtype {
	case "Form":
		return ip.doForm(dict, stream)
	case "Image":
		return ip.doImage(dict, stream)
	default:
		return fmt.Errorf("unknown XObject subtype %q", subtype)
	}
}

func (ip *Interpreter) xobjectRef(name pdf.Name) pdf.Object {
	sub, err := pdf.GetDict(ip.Getter, ip.Resources.Get("XObject"))
	if err != nil {
		return nil
	}
	return sub.Get(name)
}

func (ip *Interpreter) doForm(dict pdf.Dict, stream *pdf.Stream) error {
	if stream == nil {
		return fmt.Errorf("Form XObject has no stream data")
	}
	m := IdentityMatrix
	if mo := dict.Get("Matrix"); mo != nil {
		mm, err := pdf.GetMatrix(ip.Getter, mo)
		if err == nil {
			m = mm
		}
	}
	bbox, _ := pdf.GetRectangle(ip.Getter, dict.Get("BBox"))

	resources := ip.Resources
	if ro := dict.Get("Resources"); ro != nil {
		if rd, err := pdf.GetDict(ip.Getter, ro); err == nil {
			resources = rd
		}
	}

	ip.Sink.BeginForm(bbox, m, resources)
	sub := NewInterpreter(ip.Getter, resources, ip.Sink)
	sub.state = ip.state.Clone()
	sub.state.CTM = m.Mul(sub.state.CTM)
	data, err := stream.Decode()
	if err != nil {
		return err
	}
	err = sub.Run(data)
	ip.Warnings = append(ip.Warnings, sub.Warnings...)
	ip.Sink.EndForm()
	return err
}

func (ip *Interpreter) doImage(dict pdf.Dict, stream *pdf.Stream) error {
	if stream == nil {
		return fmt.Errorf("Image XObject has no stream data")
	}
	img, err := ip.decodeImage(dict, stream)
	if err != nil {
		return err
	}
	ip.Sink.DrawImage(*img, ip.state.CTM)
	return nil
}

func (ip *Interpreter) decodeImage(dict pdf.Dict, stream *pdf.Stream) (*Image, error) {
	width, err := pdf.GetInteger(ip.Getter, firstOf(dict, "Width", "W"))
	if err != nil {
		return nil, err
	}
	height, err := pdf.GetInteger(ip.Getter, firstOf(dict, "Height", "H"))
	if err != nil {
		return nil, err
	}
	bpc, _ := pdf.GetInteger(ip.Getter, firstOf(dict, "BitsPerComponent", "BPC"))
	if bpc == 0 {
		bpc = 8
	}
	var sp color.Space
	if cso := firstOf(dict, "ColorSpace", "CS"); cso != nil {
		sp, _ = color.ExtractColorSpace(ip.Getter, cso, ip.Resources)
	}
	data, err := stream.Decode()
	if err != nil {
		return nil, err
	}

	img := &Image{
		Width:            int(width),
		Height:           int(height),
		BitsPerComponent: int(bpc),
		ColorSpace:       sp,
		Data:             data,
	}

	if mask := firstOf(dict, "Mask", "IM"); mask != nil {
		if arr, err := pdf.GetArray(ip.Getter, mask); err == nil {
			ranges := make([]int, len(arr))
			for i, e := range arr {
				v, _ := pdf.GetInteger(ip.Getter, e)
				ranges[i] = int(v)
			}
			img.ColorKeyMask = ranges
		} else if stm, err := pdf.GetStream(ip.Getter, mask); err == nil && stm != nil {
			maskImg, err := ip.decodeImage(stm.Dict, stm)
			if err == nil {
				img.Mask = maskImg
			}
		}
	}
	if smo := dict.Get("SMask"); smo != nil {
		if stm, err := pdf.GetStream(ip.Getter, smo); err == nil && stm != nil {
			smImg, err := ip.decodeImage(stm.Dict, stm)
			if err == nil {
				img.SoftMask = smImg
			}
		}
	}
	return img, nil
}

func firstOf(dict pdf.Dict, keys ...pdf.Name) pdf.Object {
	for _, k := range keys {
		if v := dict.Get(k); v != nil {
			return v
		}
	}
	return nil
}

func (ip *Interpreter) doInlineImage(instr pdf.Instruction) error {
	img, err := ip.decodeInlineImage(instr.InlineDict, instr.InlineData)
	if err != nil {
		return err
	}
	ip.Sink.DrawImage(*img, ip.state.CTM)
	return nil
}

func (ip *Interpreter) decodeInlineImage(dict pdf.Dict, raw []byte) (*Image, error) {
	stream := pdf.NewStream(dict, raw)
	return ip.decodeImage(dict, stream)
}

func (ip *Interpreter) doShading(name pdf.Name) error {
	sub, err := pdf.GetDict(ip.Getter, ip.Resources.Get("Shading"))
	if err != nil {
		return err
	}
	ref := sub.Get(name)
	if ref == nil {
		return fmt.Errorf("Shading/%s not found", name)
	}
	obj, err := pdf.Resolve(ip.Getter, ref)
	if err != nil {
		return err
	}
	var dict pdf.Dict
	var stream *pdf.Stream
	switch o := obj.(type) {
	case *pdf.Stream:
		dict, stream = o.Dict, o
	case pdf.Dict:
		dict = o
	default:
		return fmt.Errorf("unexpected Shading type %T", obj)
	}
	shType, err := pdf.GetInteger(ip.Getter, dict.Get("ShadingType"))
	if err != nil {
		return err
	}
	sp, err := color.ExtractColorSpace(ip.Getter, dict.Get("ColorSpace"), ip.Resources)
	if err != nil {
		return err
	}
	desc := ShadingDescriptor{ShadingType: int(shType), ColorSpace: sp}
	if fo := dict.Get("Function"); fo != nil {
		fn, err := function.Extract(ip.Getter, fo)
		if err == nil {
			desc.Function = fn
		}
	}
	desc.Coords, _ = pdf.GetFloatArray(ip.Getter, dict.Get("Coords"))
	desc.Domain, _ = pdf.GetFloatArray(ip.Getter, dict.Get("Domain"))
	if ext, err := pdf.GetArray(ip.Getter, dict.Get("Extend")); err == nil && len(ext) == 2 {
		e0, _ := pdf.GetBoolean(ip.Getter, ext[0])
		e1, _ := pdf.GetBoolean(ip.Getter, ext[1])
		desc.Extend = [2]bool{bool(e0), bool(e1)}
	}

	switch shType {
	case 1:
		desc.Matrix = IdentityMatrix
		if mo := dict.Get("Matrix"); mo != nil {
			if m, err := pdf.GetMatrix(ip.Getter, mo); err == nil {
				desc.Matrix = m
			}
		}
		desc.BBox, _ = pdf.GetRectangle(ip.Getter, dict.Get("BBox"))
	case 4, 5, 6, 7:
		if stream == nil {
			return fmt.Errorf("ShadingType %d requires a stream", shType)
		}
		data, err := stream.Decode()
		if err != nil {
			return err
		}
		tris, err := shading.Triangulate(ip.Getter, int(shType), data, dict, sp, desc.Function)
		if err != nil {
			ip.warnf("sh: %v", err)
		} else {
			desc.Triangles = make([]ShadingTriangle, len(tris))
			for i, t := range tris {
				desc.Triangles[i] = ShadingTriangle{X: t.X, Y: t.Y, R: t.R, G: t.G, B: t.B}
			}
		}
	}

	ip.Sink.DrawShading(desc)
	return nil
}
