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
)

// objectParser builds Objects from the Lexer's token stream (C1). It keeps
// a 2-token pushback buffer so that "12 0 R" / "12 0 obj" sequences of
// integer-integer-keyword can be told apart from a bare integer.
type objectParser struct {
	lx      *Lexer
	pending []token
}

func newObjectParser(lx *Lexer) *objectParser {
	return &objectParser{lx: lx}
}

func (p *objectParser) next() (token, error) {
	if n := len(p.pending); n > 0 {
		t := p.pending[n-1]
		p.pending = p.pending[:n-1]
		return t, nil
	}
	return p.lx.nextToken()
}

func (p *objectParser) pushBack(t token) {
	p.pending = append(p.pending, t)
}

// nextObject (next_object, C1) parses exactly one direct object from the
// token stream, resolving "N G R" sequences to a Reference.
func (p *objectParser) nextObject() (Object, error) {
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	return p.objectFromToken(t)
}

func (p *objectParser) objectFromToken(t token) (Object, error) {
	switch t.kind {
	case tokEOF:
		return nil, errEOF
	case tokInteger:
		return p.maybeReference(t)
	case tokReal:
		return Real(t.f), nil
	case tokName:
		return t.name, nil
	case tokString:
		return String(t.str), nil
	case tokHexString:
		return HexString(t.str), nil
	case tokArrayOpen:
		return p.parseArray()
	case tokDictOpen:
		return p.parseDict()
	case tokArrayClose, tokDictClose:
		return nil, &MalformedFileError{Err: fmt.Errorf("unexpected %q at %d", tokenText(t), t.pos)}
	case tokKeyword:
		switch t.kw {
		case "true":
			return Boolean(true), nil
		case "false":
			return Boolean(false), nil
		case "null":
			return nil, nil
		default:
			return nil, &MalformedFileError{Err: fmt.Errorf("unexpected keyword %q at %d", t.kw, t.pos)}
		}
	default:
		return nil, &MalformedFileError{Err: fmt.Errorf("unrecognised token at %d", t.pos)}
	}
}

// maybeReference implements the "N G R" / "N G obj" lookahead: an integer
// followed by another integer followed by keyword "R" collapses into a
// Reference; any other continuation pushes the lookahead tokens back.
func (p *objectParser) maybeReference(first token) (Object, error) {
	t2, err := p.next()
	if err != nil {
		return Integer(first.i), nil //nolint:nilerr // EOF just ends the number
	}
	if t2.kind != tokInteger {
		p.pushBack(t2)
		return Integer(first.i), nil
	}
	t3, err := p.next()
	if err != nil {
		p.pushBack(t2)
		return Integer(first.i), nil //nolint:nilerr
	}
	if t3.kind == tokKeyword && t3.kw == "R" {
		if first.i < 0 || t2.i < 0 {
			return nil, &MalformedFileError{Err: fmt.Errorf("negative reference at %d", first.pos)}
		}
		return NewReference(uint32(first.i), uint16(t2.i)), nil
	}
	p.pushBack(t3)
	p.pushBack(t2)
	return Integer(first.i), nil
}

// parseArray (parse_array, C1) assumes the opening '[' has been consumed.
func (p *objectParser) parseArray() (Array, error) {
	var arr Array
	for {
		t, err := p.next()
		if err != nil {
			return nil, &MalformedFileError{Err: fmt.Errorf("unterminated array: %w", err)}
		}
		if t.kind == tokArrayClose {
			return arr, nil
		}
		obj, err := p.objectFromToken(t)
		if err != nil {
			return nil, err
		}
		arr = append(arr, obj)
	}
}

// parseDict (parse_dictionary, C1) assumes the opening '<<' has been
// consumed. It also handles the "stream" keyword immediately following a
// dictionary, returning a *Stream instead of a Dict when present.
func (p *objectParser) parseDict() (Object, error) {
	d := NewDict()
	for {
		t, err := p.next()
		if err != nil {
			return nil, &MalformedFileError{Err: fmt.Errorf("unterminated dictionary: %w", err)}
		}
		if t.kind == tokDictClose {
			break
		}
		if t.kind != tokName {
			return nil, &MalformedFileError{Err: fmt.Errorf("expected dict key, got %q at %d", tokenText(t), t.pos)}
		}
		key := t.name
		val, err := p.nextObject()
		if err != nil {
			return nil, err
		}
		d.Set(key, val)
	}

	// A dictionary immediately followed by "stream" is the header of a
	// stream object (§4.1): the payload is exactly /Length bytes past the
	// EOL following the keyword.
	save := p.lx.Pos()
	savedPending := append([]token(nil), p.pending...)
	t, err := p.next()
	if err == nil && t.kind == tokKeyword && t.kw == "stream" {
		return p.finishStream(d)
	}
	if err == nil {
		p.pushBack(t)
	} else {
		p.lx.SeekTo(save)
		p.pending = savedPending
	}
	return d, nil
}

func (p *objectParser) finishStream(dict Dict) (*Stream, error) {
	// the keyword "stream" must be followed by CRLF or LF (not bare CR)
	pos := p.lx.Pos()
	if b, ok := p.lx.peek(); ok && b == '\r' {
		p.lx.advance()
		pos = p.lx.Pos()
	}
	if b, ok := p.lx.peek(); ok && b == '\n' {
		p.lx.advance()
		pos = p.lx.Pos()
	}

	length, ok := dict.Get("Length").(Integer)
	if !ok {
		// /Length may be an indirect reference; the caller (xref-aware
		// object reader) re-invokes with the resolved length via
		// reparseStreamLength. For a direct parse we fall back to
		// scanning for "endstream".
		return p.scanStreamToEndKeyword(dict, pos)
	}

	data, err := slice(p.lx.src, pos, pos+int64(length))
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	p.lx.SeekTo(pos + int64(length))
	p.skipEndstream()
	return &Stream{Dict: dict, raw: data}, nil
}

// scanStreamToEndKeyword is the best-effort fallback (§7) used when
// /Length cannot be read directly (e.g. an indirect reference the caller
// hasn't resolved yet): it looks for the literal bytes "endstream".
func (p *objectParser) scanStreamToEndKeyword(dict Dict, start int64) (*Stream, error) {
	const chunk = 1 << 16
	marker := []byte("endstream")
	for probe := int64(0); ; probe += chunk {
		end := start + probe + chunk + int64(len(marker))
		buf, err := slice(p.lx.src, start, end)
		if err != nil {
			return nil, &MalformedFileError{Err: err}
		}
		if idx := indexOf(buf, marker); idx >= 0 {
			data := buf[:idx]
			for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
				data = data[:len(data)-1]
			}
			p.lx.SeekTo(start + int64(idx) + int64(len(marker)))
			return &Stream{Dict: dict, raw: data}, nil
		}
		if int64(len(buf)) < probe+chunk+int64(len(marker)) {
			return nil, &MalformedFileError{Err: fmt.Errorf("stream at %d has no endstream", start)}
		}
	}
}

func (p *objectParser) skipEndstream() {
	save := p.lx.Pos()
	for i := 0; i < 3; i++ { // tolerate whitespace before the keyword
		c, ok := p.lx.peek()
		if !ok || !isWhitespace(c) {
			break
		}
		p.lx.advance()
	}
	t, err := p.lx.nextToken()
	if err != nil || t.kind != tokKeyword || t.kw != "endstream" {
		p.lx.SeekTo(save)
	}
}

func indexOf(haystack, needle []byte) int {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return i
		}
	}
	return -1
}

func tokenText(t token) string {
	switch t.kind {
	case tokArrayClose:
		return "]"
	case tokDictClose:
		return ">>"
	case tokKeyword:
		return t.kw
	default:
		return fmt.Sprintf("token(%d)", t.kind)
	}
}

// IndirectObject is a single "N G obj ... endobj" unit as read directly
// from a byte offset (parse_indirect_object_at, §4.1).
type IndirectObject struct {
	Ref   Reference
	Value Object
}

// ParseIndirectObjectAt implements parse_indirect_object_at: it expects
// "N G obj" at the given offset, followed by a direct object (optionally a
// stream) and "endobj".
func ParseIndirectObjectAt(src Source, offset int64) (*IndirectObject, error) {
	lx := NewLexerAt(src, offset)
	p := newObjectParser(lx)

	numTok, err := p.next()
	if err != nil || numTok.kind != tokInteger {
		return nil, &MalformedFileError{Err: fmt.Errorf("expected object number at %d", offset)}
	}
	genTok, err := p.next()
	if err != nil || genTok.kind != tokInteger {
		return nil, &MalformedFileError{Err: fmt.Errorf("expected generation number at %d", offset)}
	}
	kw, err := p.next()
	if err != nil || kw.kind != tokKeyword || kw.kw != "obj" {
		return nil, &MalformedFileError{Err: fmt.Errorf("expected 'obj' keyword at %d", offset)}
	}

	val, err := p.nextObject()
	if err != nil {
		return nil, err
	}

	end, err := p.next()
	if err != nil || end.kind != tokKeyword || end.kw != "endobj" {
		// tolerate a missing endobj, as many real-world files omit it
		if err == nil {
			p.pushBack(end)
		}
	}

	ref := NewReference(uint32(numTok.i), uint16(genTok.i))
	return &IndirectObject{Ref: ref, Value: val}, nil
}
