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

package pdf

import (
	"fmt"
	"io"
)

// Instruction is one operator plus its preceding operands, as produced by
// scanning a content stream (C7). Inline images (BI ... ID ... EI) are
// collapsed into a single instruction whose Operator is "BI" and whose
// InlineData holds the raw image bytes between ID and EI.
type Instruction struct {
	Operator   string
	Operands   []Object
	InlineDict Dict // set only when Operator == "BI"
	InlineData []byte
}

// ScanContentStream tokenises a content stream into a sequence of
// instructions. It never re-lexes: each byte of data is consumed exactly
// once by the same token-level rules [Lexer] uses for indirect objects,
// repurposing arbitrary keywords as operator names (§4.7). A malformed
// individual instruction is skipped, not fatal to the stream, matching the
// failure policy for C7: log-and-skip, never abort the page.
func ScanContentStream(data []byte) ([]Instruction, error) {
	lx := NewLexer(&bytesSource{data: data})
	var out []Instruction
	var operands []Object
	for {
		t, err := lx.nextToken()
		if err != nil {
			if err == errEOF {
				return out, nil // truncated stream: stop cleanly
			}
			// malformed token (e.g. a stray '>'): skip one byte and
			// resync, without aborting the rest of the page.
			lx.advance()
			operands = nil
			continue
		}
		if t.kind == tokEOF {
			return out, nil
		}
		if t.kind == tokKeyword && t.kw == "BI" {
			instr, err := scanInlineImage(lx)
			if err != nil {
				return out, nil
			}
			out = append(out, instr)
			operands = nil
			continue
		}
		if t.kind == tokKeyword {
			switch t.kw {
			case "true":
				operands = append(operands, Boolean(true))
				continue
			case "false":
				operands = append(operands, Boolean(false))
				continue
			case "null":
				operands = append(operands, nil)
				continue
			}
			out = append(out, Instruction{Operator: t.kw, Operands: operands})
			operands = nil
			continue
		}

		obj, err := contentObjectFromToken(lx, t)
		if err != nil {
			// drop the malformed operand but keep scanning for the next
			// operator, per the failure policy in §4.7.
			operands = nil
			continue
		}
		operands = append(operands, obj)
	}
}

// contentObjectFromToken converts a single lexer token into an Object,
// recursing into arrays/dictionaries. Content streams never contain
// indirect references or streams, unlike top-level object syntax.
func contentObjectFromToken(lx *Lexer, t token) (Object, error) {
	switch t.kind {
	case tokInteger:
		return Integer(t.i), nil
	case tokReal:
		return Real(t.f), nil
	case tokName:
		return t.name, nil
	case tokString:
		return String(t.str), nil
	case tokHexString:
		return HexString(t.str), nil
	case tokArrayOpen:
		var arr Array
		for {
			nt, err := lx.nextToken()
			if err != nil {
				return nil, err
			}
			if nt.kind == tokArrayClose {
				return arr, nil
			}
			if nt.kind == tokEOF {
				return nil, fmt.Errorf("unterminated array in content stream")
			}
			obj, err := contentObjectFromToken(lx, nt)
			if err != nil {
				return nil, err
			}
			arr = append(arr, obj)
		}
	case tokDictOpen:
		d := NewDict()
		for {
			kt, err := lx.nextToken()
			if err != nil {
				return nil, err
			}
			if kt.kind == tokDictClose {
				return d, nil
			}
			if kt.kind != tokName {
				return nil, fmt.Errorf("expected dict key, got token kind %d", kt.kind)
			}
			vt, err := lx.nextToken()
			if err != nil {
				return nil, err
			}
			val, err := contentObjectFromToken(lx, vt)
			if err != nil {
				return nil, err
			}
			d.Set(kt.name, val)
		}
	default:
		return nil, fmt.Errorf("unexpected token kind %d as content operand", t.kind)
	}
}

// Write serialises the instruction back into content-stream syntax: each
// operand's PDF form, space-separated, followed by the operator keyword
// (or the BI/ID/<dict>/<data>/EI form for inline images). Used by C8 when
// re-encoding an edited Tj/TJ instruction or appending a new one.
func (instr Instruction) Write(w io.Writer) error {
	if instr.Operator == "BI" {
		if _, err := io.WriteString(w, "BI\n"); err != nil {
			return err
		}
		for _, key := range instr.InlineDict.Keys() {
			if err := key.PDF(w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
			if err := instr.InlineDict.Get(key).PDF(w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "ID "); err != nil {
			return err
		}
		if _, err := w.Write(instr.InlineData); err != nil {
			return err
		}
		_, err := io.WriteString(w, " EI")
		return err
	}

	for _, op := range instr.Operands {
		if op == nil {
			if _, err := io.WriteString(w, "null "); err != nil {
				return err
			}
			continue
		}
		if err := op.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, instr.Operator)
	return err
}

// scanInlineImage parses the BI <dict> ID <data> EI construct into a single
// Instruction (§4.7 "Inline images").
func scanInlineImage(lx *Lexer) (Instruction, error) {
	d := NewDict()
	for {
		t, err := lx.nextToken()
		if err != nil {
			return Instruction{}, err
		}
		if t.kind == tokKeyword && t.kw == "ID" {
			break
		}
		if t.kind != tokName {
			return Instruction{}, fmt.Errorf("expected key in inline image dict")
		}
		vt, err := lx.nextToken()
		if err != nil {
			return Instruction{}, err
		}
		val, err := contentObjectFromToken(lx, vt)
		if err != nil {
			return Instruction{}, err
		}
		d.Set(t.name, val)
	}

	// a single whitespace byte follows "ID"; the raw data starts right
	// after it and runs until a delimiter-bounded "EI".
	lx.advance()
	var data []byte
	var prev byte
	for {
		c, ok := lx.peek()
		if !ok {
			return Instruction{}, fmt.Errorf("unterminated inline image")
		}
		if c == 'E' && (len(data) == 0 || isWhitespace(prev)) {
			c2, ok2 := lx.peekAt(1)
			after, ok3 := lx.peekAt(2)
			if ok2 && c2 == 'I' && (!ok3 || isWhitespace(after) || isDelimiter(after)) {
				lx.advance()
				lx.advance()
				if len(data) > 0 {
					data = data[:len(data)-1] // the whitespace byte before EI
				}
				return Instruction{Operator: "BI", InlineDict: d, InlineData: data}, nil
			}
		}
		data = append(data, c)
		prev = c
		lx.advance()
	}
}

// bytesSource adapts an in-memory byte slice to the Source interface so
// ScanContentStream can reuse the Lexer directly.
type bytesSource struct{ data []byte }

func (s *bytesSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(s.data)) {
		return 0, errEOF
	}
	n := copy(p, s.data[off:])
	return n, nil
}
