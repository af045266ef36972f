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

package edit

import (
	"bytes"
	"strings"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/content"
	"github.com/dodeca-labs/pdfcore/font"
)

// textShowing reports whether op is one of the four text-showing operators
// (§9.4.3) that carry decodable string operands.
func textShowing(op string) bool {
	return op == "Tj" || op == "'" || op == `"` || op == "TJ"
}

// decodedTextOf renders the Unicode text a text-showing instruction
// paints, ignoring TJ's numeric kerning adjustments (they carry no
// character content).
func decodedTextOf(fd *font.Dict, instr pdf.Instruction) (string, bool) {
	switch instr.Operator {
	case "Tj", "'", `"`:
		if len(instr.Operands) == 0 {
			return "", false
		}
		s, ok := instr.Operands[len(instr.Operands)-1].(pdf.String)
		if !ok {
			return "", false
		}
		return decodeText(fd, s), true
	case "TJ":
		if len(instr.Operands) != 1 {
			return "", false
		}
		arr, ok := instr.Operands[0].(pdf.Array)
		if !ok {
			return "", false
		}
		var b strings.Builder
		for _, el := range arr {
			if s, ok := el.(pdf.String); ok {
				b.WriteString(decodeText(fd, s))
			}
		}
		return b.String(), true
	}
	return "", false
}

// FindReplace walks a content stream's instructions, decoding each
// Tj/'/"/TJ string operand through the active font (tracked via Tf) and
// substituting every occurrence of search with replace (§4.8). A fragment
// of a TJ array is rewritten in place when the whole match lies within it;
// a match that spans two or more fragments collapses the array to a
// single string operand, keeping only the leading and trailing numeric
// adjustments (the interior kerning no longer applies to merged text). An
// instruction whose replacement text cannot be re-encoded in the active
// font is left untouched and does not count as a match.
func FindReplace(r pdf.Getter, resources pdf.Dict, data []byte, search, replace string, mode Mode) ([]byte, Result, error) {
	scanner, err := content.Scan(data)
	if err != nil {
		return nil, Result{}, err
	}
	fc := newFontCache(r, resources)

	var out []pdf.Instruction
	var result Result
	var curFont pdf.Name

	for {
		instr, ok := scanner.Next()
		if !ok {
			break
		}
		trackFont(&curFont, instr)

		if !textShowing(instr.Operator) {
			out = append(out, instr)
			continue
		}
		fd, err := fc.lookup(curFont)
		if err != nil {
			out = append(out, instr)
			continue
		}

		switch instr.Operator {
		case "Tj", "'", `"`:
			newInstr, changed := replaceSingleString(fd, instr, search, replace, mode)
			out = append(out, newInstr)
			if changed {
				result.Matches++
			}
		case "TJ":
			newInstr, changed := replaceTJArray(fd, instr, search, replace, mode)
			out = append(out, newInstr)
			if changed {
				result.Matches++
			}
		}
	}

	return serialize(out), result, nil
}

func replaceSingleString(fd *font.Dict, instr pdf.Instruction, search, replace string, mode Mode) (pdf.Instruction, bool) {
	idx := len(instr.Operands) - 1
	if idx < 0 {
		return instr, false
	}
	s, ok := instr.Operands[idx].(pdf.String)
	if !ok {
		return instr, false
	}
	text := decodeText(fd, s)
	newText, changed := replaceAll(text, search, replace, mode)
	if !changed {
		return instr, false
	}
	encoded, ok := encodeText(fd, newText)
	if !ok {
		return instr, false
	}
	newOperands := append([]pdf.Object(nil), instr.Operands...)
	newOperands[idx] = encoded
	newInstr := instr
	newInstr.Operands = newOperands
	return newInstr, true
}

func replaceTJArray(fd *font.Dict, instr pdf.Instruction, search, replace string, mode Mode) (pdf.Instruction, bool) {
	if len(instr.Operands) != 1 {
		return instr, false
	}
	arr, ok := instr.Operands[0].(pdf.Array)
	if !ok {
		return instr, false
	}

	// First pass: try to satisfy every match within a single fragment,
	// preserving the array's kerning structure as much as possible.
	newArr := append(pdf.Array(nil), arr...)
	fragChanged := false
	for i, el := range arr {
		s, ok := el.(pdf.String)
		if !ok {
			continue
		}
		text := decodeText(fd, s)
		newText, changed := replaceAll(text, search, replace, mode)
		if !changed {
			continue
		}
		encoded, ok := encodeText(fd, newText)
		if !ok {
			continue
		}
		newArr[i] = encoded
		fragChanged = true
	}
	if fragChanged {
		newInstr := instr
		newInstr.Operands = []pdf.Object{newArr}
		return newInstr, true
	}

	// Second pass: the match (if any) spans a fragment boundary. Collapse
	// the whole array to one string, keeping only the endpoint numbers.
	var full strings.Builder
	for _, el := range arr {
		if s, ok := el.(pdf.String); ok {
			full.WriteString(decodeText(fd, s))
		}
	}
	newFull, changed := replaceAll(full.String(), search, replace, mode)
	if !changed {
		return instr, false
	}
	encoded, ok := encodeText(fd, newFull)
	if !ok {
		return instr, false
	}

	var collapsed pdf.Array
	if len(arr) > 0 {
		if _, isStr := arr[0].(pdf.String); !isStr {
			collapsed = append(collapsed, arr[0])
		}
	}
	collapsed = append(collapsed, encoded)
	if len(arr) > 1 {
		if _, isStr := arr[len(arr)-1].(pdf.String); !isStr {
			collapsed = append(collapsed, arr[len(arr)-1])
		}
	}
	newInstr := instr
	newInstr.Operands = []pdf.Object{collapsed}
	return newInstr, true
}

// Delete removes every Tj/'/"/TJ instruction whose decoded text contains
// search (§4.8, "Deletion drops any text-showing instruction whose
// decoded payload contains the search string").
func Delete(r pdf.Getter, resources pdf.Dict, data []byte, search string, mode Mode) ([]byte, Result, error) {
	scanner, err := content.Scan(data)
	if err != nil {
		return nil, Result{}, err
	}
	fc := newFontCache(r, resources)

	var out []pdf.Instruction
	var result Result
	var curFont pdf.Name

	for {
		instr, ok := scanner.Next()
		if !ok {
			break
		}
		trackFont(&curFont, instr)

		if textShowing(instr.Operator) {
			if fd, err := fc.lookup(curFont); err == nil {
				if text, ok := decodedTextOf(fd, instr); ok && contains(text, search, mode) {
					result.Matches++
					continue
				}
			}
		}
		out = append(out, instr)
	}

	return serialize(out), result, nil
}

// Insert appends a new text-showing run to a content stream, in the
// "q ... BT /F<name> <size> Tf x y Td (text) Tj ET Q" form (§4.8). The
// font is resolved from resources to encode text in its native codes; if
// it cannot be resolved or text fails to re-encode, the raw bytes of text
// are written instead (unlike FindReplace, which leaves an instruction
// untouched when its replacement cannot be re-encoded).
func Insert(r pdf.Getter, resources pdf.Dict, data []byte, fontName pdf.Name, size, x, y float64, text string) ([]byte, error) {
	encoded := pdf.String(text)
	fc := newFontCache(r, resources)
	if fd, err := fc.lookup(fontName); err == nil {
		if enc, ok := encodeText(fd, text); ok {
			encoded = enc
		}
	}

	instrs := []pdf.Instruction{
		{Operator: "q"},
		{Operator: "BT"},
		{Operator: "Tf", Operands: []pdf.Object{fontName, pdf.Real(size)}},
		{Operator: "Td", Operands: []pdf.Object{pdf.Real(x), pdf.Real(y)}},
		{Operator: "Tj", Operands: []pdf.Object{encoded}},
		{Operator: "ET"},
		{Operator: "Q"},
	}

	var buf bytes.Buffer
	buf.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		buf.WriteByte('\n')
	}
	for _, instr := range instrs {
		if err := instr.Write(&buf); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// serialize re-encodes instructions back into content-stream syntax, one
// per line, via [pdf.Instruction.Write].
func serialize(instrs []pdf.Instruction) []byte {
	var buf bytes.Buffer
	for _, instr := range instrs {
		instr.Write(&buf)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
