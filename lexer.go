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
	"errors"
	"fmt"
)

// tokenKind classifies a single lexical token (C1).
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokInteger
	tokReal
	tokName
	tokString    // "(...)"
	tokHexString // "<...>"
	tokArrayOpen
	tokArrayClose
	tokDictOpen
	tokDictClose
	tokKeyword // true, false, null, obj, endobj, stream, endstream, R,
	// xref, trailer, startxref, and (inside content streams) any other
	// bareword, which C7 treats as an operator name.
)

type token struct {
	kind tokenKind
	pos  int64 // start offset in the source
	i    int64 // tokInteger
	f    float64
	name Name
	str  []byte
	kw   string
}

// Lexer tokenises PDF syntax read from a Source. It is used both for
// top-level object parsing (C1) and, via the shared token stream, for the
// content-stream scanner (C7) — a Lexer is never re-lexed once produced, it
// is consumed by value as spec.md §9 requires for the content-instruction
// iterator.
type Lexer struct {
	src Source
	pos int64

	// small read-ahead buffer
	buf    []byte
	bufOff int64 // absolute offset of buf[0]
}

// NewLexer creates a lexer positioned at offset 0.
func NewLexer(src Source) *Lexer {
	return &Lexer{src: src}
}

// NewLexerAt creates a lexer positioned at the given offset, for
// parse_indirect_object_at (§4.1).
func NewLexerAt(src Source, offset int64) *Lexer {
	return &Lexer{src: src, pos: offset}
}

// Pos returns the lexer's current offset into the source.
func (lx *Lexer) Pos() int64 { return lx.pos }

// SeekTo repositions the lexer.
func (lx *Lexer) SeekTo(offset int64) {
	lx.pos = offset
	lx.buf = nil
}

const lexerWindow = 4096

func (lx *Lexer) fill() error {
	if lx.pos >= lx.bufOff && lx.pos < lx.bufOff+int64(len(lx.buf)) {
		return nil
	}
	buf := make([]byte, lexerWindow)
	n, err := lx.src.ReadAt(buf, lx.pos)
	if n == 0 {
		lx.buf = nil
		if err != nil {
			return err
		}
		return errEOF
	}
	lx.buf = buf[:n]
	lx.bufOff = lx.pos
	return nil
}

var errEOF = errors.New("end of input")

func (lx *Lexer) peekAt(delta int64) (byte, bool) {
	p := lx.pos + delta
	if p < lx.bufOff || p >= lx.bufOff+int64(len(lx.buf)) {
		buf := make([]byte, lexerWindow)
		n, _ := lx.src.ReadAt(buf, p)
		if n == 0 {
			return 0, false
		}
		lx.buf = buf[:n]
		lx.bufOff = p
	}
	idx := p - lx.bufOff
	if idx < 0 || idx >= int64(len(lx.buf)) {
		return 0, false
	}
	return lx.buf[idx], true
}

func (lx *Lexer) peek() (byte, bool) { return lx.peekAt(0) }

func (lx *Lexer) advance() { lx.pos++ }

func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		c, ok := lx.peek()
		if !ok {
			return
		}
		if isWhitespace(c) {
			lx.advance()
			continue
		}
		if c == '%' {
			for {
				lx.advance()
				c, ok := lx.peek()
				if !ok || c == '\n' || c == '\r' {
					break
				}
			}
			continue
		}
		return
	}
}

// next_token (C1): returns the next lexical token, or an error wrapping
// io.EOF-like errEOF at end of input.
func (lx *Lexer) nextToken() (token, error) {
	lx.skipWhitespaceAndComments()
	start := lx.pos
	c, ok := lx.peek()
	if !ok {
		return token{kind: tokEOF, pos: start}, nil
	}

	switch {
	case c == '/':
		return lx.lexName(start)
	case c == '(':
		return lx.lexLiteralString(start)
	case c == '<':
		next, _ := lx.peekAt(1)
		if next == '<' {
			lx.advance()
			lx.advance()
			return token{kind: tokDictOpen, pos: start}, nil
		}
		return lx.lexHexString(start)
	case c == '>':
		next, _ := lx.peekAt(1)
		if next == '>' {
			lx.advance()
			lx.advance()
			return token{kind: tokDictClose, pos: start}, nil
		}
		return token{}, &MalformedFileError{Err: fmt.Errorf("stray '>' at %d", start)}
	case c == '[':
		lx.advance()
		return token{kind: tokArrayOpen, pos: start}, nil
	case c == ']':
		lx.advance()
		return token{kind: tokArrayClose, pos: start}, nil
	case c == '{' || c == '}':
		// PostScript-calculator braces (Type 4 functions); surfaced as
		// keyword tokens so that callers needing them (C9) can recognise
		// them, everyone else treats them as unknown keywords.
		lx.advance()
		return token{kind: tokKeyword, pos: start, kw: string(c)}, nil
	case isNumberStart(c):
		return lx.lexNumber(start)
	default:
		return lx.lexKeyword(start)
	}
}

func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

func (lx *Lexer) lexName(start int64) (token, error) {
	lx.advance() // consume '/'
	var buf []byte
	for {
		c, ok := lx.peek()
		if !ok || isWhitespace(c) || isDelimiter(c) {
			break
		}
		if c == '#' {
			h1, ok1 := lx.peekAt(1)
			h2, ok2 := lx.peekAt(2)
			if ok1 && ok2 && isHexDigit(h1) && isHexDigit(h2) {
				buf = append(buf, hexVal(h1)<<4|hexVal(h2))
				lx.advance()
				lx.advance()
				lx.advance()
				continue
			}
		}
		buf = append(buf, c)
		lx.advance()
	}
	return token{kind: tokName, pos: start, name: Name(buf)}, nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func (lx *Lexer) lexNumber(start int64) (token, error) {
	var buf []byte
	isReal := false
	c, _ := lx.peek()
	if c == '+' || c == '-' {
		buf = append(buf, c)
		lx.advance()
	}
	for {
		c, ok := lx.peek()
		if !ok {
			break
		}
		if c >= '0' && c <= '9' {
			buf = append(buf, c)
			lx.advance()
			continue
		}
		if c == '.' && !isReal {
			isReal = true
			buf = append(buf, c)
			lx.advance()
			continue
		}
		break
	}
	if len(buf) == 0 || (len(buf) == 1 && (buf[0] == '+' || buf[0] == '-')) {
		return token{}, &MalformedFileError{Err: fmt.Errorf("malformed number at %d", start)}
	}
	if isReal {
		f, err := parseFloat(buf)
		if err != nil {
			return token{}, &MalformedFileError{Err: err}
		}
		return token{kind: tokReal, pos: start, f: f}, nil
	}
	i, err := parseInt(buf)
	if err != nil {
		// overflow or similar: fall back to real, PDF numbers have no
		// fixed width.
		f, ferr := parseFloat(buf)
		if ferr != nil {
			return token{}, &MalformedFileError{Err: err}
		}
		return token{kind: tokReal, pos: start, f: f}, nil
	}
	return token{kind: tokInteger, pos: start, i: i}, nil
}

func parseInt(buf []byte) (int64, error) {
	neg := false
	i := 0
	if len(buf) > 0 && (buf[0] == '+' || buf[0] == '-') {
		neg = buf[0] == '-'
		i = 1
	}
	var v int64
	for ; i < len(buf); i++ {
		if buf[i] < '0' || buf[i] > '9' {
			return 0, fmt.Errorf("invalid integer %q", buf)
		}
		v = v*10 + int64(buf[i]-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

func parseFloat(buf []byte) (float64, error) {
	neg := false
	i := 0
	if len(buf) > 0 && (buf[0] == '+' || buf[0] == '-') {
		neg = buf[0] == '-'
		i = 1
	}
	var intPart, fracPart float64
	fracDiv := 1.0
	seenDot := false
	for ; i < len(buf); i++ {
		c := buf[i]
		if c == '.' {
			seenDot = true
			continue
		}
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid number %q", buf)
		}
		d := float64(c - '0')
		if !seenDot {
			intPart = intPart*10 + d
		} else {
			fracDiv *= 10
			fracPart += d / fracDiv
		}
	}
	v := intPart + fracPart
	if neg {
		v = -v
	}
	return v, nil
}

func (lx *Lexer) lexLiteralString(start int64) (token, error) {
	lx.advance() // consume '('
	var buf []byte
	depth := 1
	for {
		c, ok := lx.peek()
		if !ok {
			return token{}, &MalformedFileError{Err: fmt.Errorf("unterminated string starting at %d", start)}
		}
		lx.advance()
		switch c {
		case '(':
			depth++
			buf = append(buf, c)
		case ')':
			depth--
			if depth == 0 {
				return token{kind: tokString, pos: start, str: buf}, nil
			}
			buf = append(buf, c)
		case '\\':
			esc, ok := lx.peek()
			if !ok {
				return token{}, &MalformedFileError{Err: fmt.Errorf("unterminated escape at %d", lx.pos)}
			}
			switch esc {
			case 'n':
				buf = append(buf, '\n')
				lx.advance()
			case 'r':
				buf = append(buf, '\r')
				lx.advance()
			case 't':
				buf = append(buf, '\t')
				lx.advance()
			case 'b':
				buf = append(buf, '\b')
				lx.advance()
			case 'f':
				buf = append(buf, '\f')
				lx.advance()
			case '(', ')', '\\':
				buf = append(buf, esc)
				lx.advance()
			case '\r':
				lx.advance()
				if n, ok := lx.peek(); ok && n == '\n' {
					lx.advance()
				}
				// line continuation: no byte emitted
			case '\n':
				lx.advance()
				// line continuation: no byte emitted
			default:
				if esc >= '0' && esc <= '7' {
					v := int(esc - '0')
					lx.advance()
					for k := 0; k < 2; k++ {
						d, ok := lx.peek()
						if !ok || d < '0' || d > '7' {
							break
						}
						v = v*8 + int(d-'0')
						lx.advance()
					}
					buf = append(buf, byte(v))
				} else {
					// unknown escape: the backslash is dropped, PDF
					// 32000-1:2008 7.3.4.2
					buf = append(buf, esc)
					lx.advance()
				}
			}
		default:
			buf = append(buf, c)
		}
	}
}

func (lx *Lexer) lexHexString(start int64) (token, error) {
	lx.advance() // consume '<'
	var digits []byte
	for {
		c, ok := lx.peek()
		if !ok {
			return token{}, &MalformedFileError{Err: fmt.Errorf("unterminated hex string at %d", start)}
		}
		if c == '>' {
			lx.advance()
			break
		}
		if isWhitespace(c) {
			lx.advance()
			continue
		}
		if !isHexDigit(c) {
			return token{}, &MalformedFileError{Err: fmt.Errorf("bad hex digit %q at %d", c, lx.pos)}
		}
		digits = append(digits, c)
		lx.advance()
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	buf := make([]byte, len(digits)/2)
	for i := range buf {
		buf[i] = hexVal(digits[2*i])<<4 | hexVal(digits[2*i+1])
	}
	return token{kind: tokHexString, pos: start, str: buf}, nil
}

func (lx *Lexer) lexKeyword(start int64) (token, error) {
	var buf []byte
	for {
		c, ok := lx.peek()
		if !ok || isWhitespace(c) || isDelimiter(c) {
			break
		}
		buf = append(buf, c)
		lx.advance()
	}
	if len(buf) == 0 {
		// a stray delimiter byte the switch above didn't special-case
		// (e.g. ')' outside a string): consume it so we make progress.
		lx.advance()
		return token{kind: tokKeyword, pos: start, kw: string(rune(lx.buf[0]))}, nil
	}
	return token{kind: tokKeyword, pos: start, kw: string(buf)}, nil
}
