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

// Package content provides the content-instruction scanner/iterator shared
// by the interpreter (C7) and the text editor (C8). It is a thin,
// re-iterable view over [pdf.ScanContentStream]'s one-shot slice, so both
// consumers can walk the same stream independently (C8 rewinds to
// reconstruct modified streams; C7 never does).
package content

import "github.com/dodeca-labs/pdfcore"

// Instruction re-exports pdf.Instruction under the shared package so
// callers that only need the content model don't have to import pdf for
// the type name.
type Instruction = pdf.Instruction

// Scanner iterates the instructions of a single content stream in order.
type Scanner struct {
	instrs []Instruction
	pos    int
}

// Scan tokenises data into a Scanner positioned before the first
// instruction.
func Scan(data []byte) (*Scanner, error) {
	instrs, err := pdf.ScanContentStream(data)
	if err != nil {
		return nil, err
	}
	return &Scanner{instrs: instrs}, nil
}

// Next returns the next instruction and advances the cursor. The second
// return value is false once the stream is exhausted.
func (s *Scanner) Next() (Instruction, bool) {
	if s.pos >= len(s.instrs) {
		return Instruction{}, false
	}
	instr := s.instrs[s.pos]
	s.pos++
	return instr, true
}

// Reset rewinds the cursor to the beginning, for C8's multi-pass rewrite.
func (s *Scanner) Reset() { s.pos = 0 }

// All returns every instruction in order without consuming the cursor.
func (s *Scanner) All() []Instruction {
	return s.instrs
}

// Len reports the total instruction count.
func (s *Scanner) Len() int { return len(s.instrs) }
