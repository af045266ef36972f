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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// xRefEntry is one slot in the in-memory cross-reference table (C3). A
// free entry has IsFree set; a compressed entry has InStream set to the
// containing object stream's reference and Pos set to its index within
// that stream; otherwise Pos is the byte offset of the "N G obj" header.
type xRefEntry struct {
	Pos        int64
	Generation uint16
	InStream   Reference
	IsFree     bool
}

const maxXRefChain = 64

// findXRef locates the byte offset of the final cross-reference section by
// scanning backward from the end of the file for "startxref" (§4.3).
func (r *Reader) findXRef() (int64, error) {
	pos, err := r.lastOccurence("startxref")
	if err != nil {
		return 0, err
	}
	lx := NewLexerAt(r.src(), pos+int64(len("startxref")))
	t, err := lx.nextToken()
	if err != nil || t.kind != tokInteger {
		return 0, &InvalidTrailerError{Err: errors.New("missing startxref offset")}
	}
	return t.i, nil
}

// lastOccurence finds the last occurrence of pat in the file, searching the
// final 2kB window first and falling back to the whole file.
func (r *Reader) lastOccurence(pat string) (int64, error) {
	if pos, ok := lastIndex(r.src(), []byte(pat), 2048); ok {
		return pos, nil
	}
	if pos, ok := lastIndex(r.src(), []byte(pat), r.size); ok {
		return pos, nil
	}
	return 0, &InvalidTrailerError{Err: fmt.Errorf("%q not found", pat)}
}

func (r *Reader) src() Source {
	return NewSourceReaderAt(r.r, r.size)
}

// readXRefChain walks the /Prev chain of cross-reference sections starting
// at startOffset, filling in r.xref (first-seen offset wins, i.e. the most
// recent update's entries take priority) and returning the merged trailer.
func (r *Reader) readXRefChain(startOffset int64) (Dict, error) {
	trailer := NewDict()
	seen := make(map[int64]bool)
	offset := startOffset

	for i := 0; ; i++ {
		if i > maxXRefChain {
			return Dict{}, &MalformedFileError{Err: errors.New("xref chain too long")}
		}
		if seen[offset] {
			break // tolerate a /Prev cycle, same as most real-world readers
		}
		seen[offset] = true

		sectionTrailer, prev, err := r.readXRefSection(offset)
		if err != nil {
			return Dict{}, err
		}
		for _, key := range sectionTrailer.Keys() {
			if key == "Prev" || key == "XRefStm" {
				continue
			}
			if !trailer.Has(key) {
				trailer.Set(key, sectionTrailer.Get(key))
			}
		}

		if prev == 0 {
			break
		}
		offset = prev
	}
	return trailer, nil
}

// readXRefSection reads one cross-reference section (classic table or
// stream) at offset, recording its entries (without overwriting any
// already present, since later sections take priority) and returning its
// local trailer dictionary and /Prev offset (0 if absent).
func (r *Reader) readXRefSection(offset int64) (Dict, int64, error) {
	lx := NewLexerAt(r.src(), offset)
	t, err := lx.nextToken()
	if err != nil {
		return Dict{}, 0, &InvalidXrefError{Err: err, Offset: offset}
	}
	if t.kind == tokKeyword && t.kw == "xref" {
		return r.readClassicXRefSection(lx)
	}

	// otherwise this must be a cross-reference stream: "N G obj <<...>> stream"
	obj, err := ParseIndirectObjectAt(r.src(), offset)
	if err != nil {
		return Dict{}, 0, &InvalidXrefError{Err: err, Offset: offset}
	}
	stm, ok := obj.Value.(*Stream)
	if !ok {
		return Dict{}, 0, &InvalidXrefError{Err: errors.New("xref entry is not a stream"), Offset: offset}
	}
	return r.readXRefStream(stm)
}

func (r *Reader) readClassicXRefSection(lx *Lexer) (Dict, int64, error) {
	for {
		t, err := lx.nextToken()
		if err != nil {
			return Dict{}, 0, &InvalidXrefError{Err: err}
		}
		if t.kind == tokKeyword && t.kw == "trailer" {
			p := newObjectParser(lx)
			obj, err := p.nextObject()
			if err != nil {
				return Dict{}, 0, err
			}
			trailer, ok := obj.(Dict)
			if !ok {
				return Dict{}, 0, &InvalidTrailerError{Err: errors.New("trailer is not a dictionary")}
			}
			var prev int64
			if pv, ok := trailer.Get("Prev").(Integer); ok {
				prev = int64(pv)
			}
			if xs, ok := trailer.Get("XRefStm").(Integer); ok {
				// hybrid-reference file (§4.3): entries from the xref stream
				// take priority since they describe the same or newer state.
				if _, _, err := r.readXRefSection(int64(xs)); err != nil {
					return Dict{}, 0, err
				}
			}
			return trailer, prev, nil
		}
		if t.kind != tokInteger {
			return Dict{}, 0, &InvalidXrefError{Err: fmt.Errorf("expected subsection header, got %q", tokenText(t))}
		}
		startTok := t
		countTok, err := lx.nextToken()
		if err != nil || countTok.kind != tokInteger {
			return Dict{}, 0, &InvalidXrefError{Err: errors.New("malformed subsection header")}
		}
		start := uint32(startTok.i)
		count := countTok.i

		for i := int64(0); i < count; i++ {
			entry, err := readClassicEntry(lx)
			if err != nil {
				return Dict{}, 0, err
			}
			num := start + uint32(i)
			if _, exists := r.xref[num]; !exists {
				r.xref[num] = entry
			}
		}
	}
}

func readClassicEntry(lx *Lexer) (*xRefEntry, error) {
	// each entry is exactly 20 bytes: "nnnnnnnnnn ggggg n/f eol"
	posTok, err := lx.nextToken()
	if err != nil || posTok.kind != tokInteger {
		return nil, &InvalidXrefError{Err: errors.New("malformed xref entry")}
	}
	genTok, err := lx.nextToken()
	if err != nil || genTok.kind != tokInteger {
		return nil, &InvalidXrefError{Err: errors.New("malformed xref entry")}
	}
	kwTok, err := lx.nextToken()
	if err != nil || kwTok.kind != tokKeyword {
		return nil, &InvalidXrefError{Err: errors.New("malformed xref entry")}
	}
	return &xRefEntry{
		Pos:        posTok.i,
		Generation: uint16(genTok.i),
		IsFree:     kwTok.kw == "f",
	}, nil
}

// readXRefStream decodes a cross-reference stream (PDF 1.5+, §4.3) and
// merges its entries and trailer into the reader.
func (r *Reader) readXRefStream(stm *Stream) (Dict, int64, error) {
	wArr, ok := stm.Dict.Get("W").(Array)
	if !ok || len(wArr) != 3 {
		return Dict{}, 0, &InvalidXrefError{Err: errors.New("xref stream missing /W")}
	}
	widths := make([]int, 3)
	for i, o := range wArr {
		n, ok := o.(Integer)
		if !ok {
			return Dict{}, 0, &InvalidXrefError{Err: errors.New("invalid /W entry")}
		}
		widths[i] = int(n)
	}

	size, _ := stm.Dict.Get("Size").(Integer)
	var index []int64
	if idxArr, ok := stm.Dict.Get("Index").(Array); ok {
		for _, o := range idxArr {
			n, ok := o.(Integer)
			if !ok {
				return Dict{}, 0, &InvalidXrefError{Err: errors.New("invalid /Index entry")}
			}
			index = append(index, int64(n))
		}
	} else {
		index = []int64{0, int64(size)}
	}

	stm.owner = r
	data, err := stm.Decode()
	if err != nil {
		return Dict{}, 0, &InvalidXrefError{Err: err}
	}

	rowLen := widths[0] + widths[1] + widths[2]
	if rowLen == 0 {
		return Dict{}, 0, &InvalidXrefError{Err: errors.New("xref stream has zero-width rows")}
	}
	br := bytes.NewReader(data)

	for i := 0; i+1 < len(index); i += 2 {
		start := uint32(index[i])
		count := index[i+1]
		for j := int64(0); j < count; j++ {
			row := make([]byte, rowLen)
			if _, err := io.ReadFull(br, row); err != nil {
				break
			}
			fields := splitXRefRow(row, widths)
			typ := int64(1)
			if widths[0] > 0 {
				typ = fields[0]
			}
			num := start + uint32(j)
			entry := &xRefEntry{}
			switch typ {
			case 0:
				entry.IsFree = true
			case 1:
				entry.Pos = fields[1]
				entry.Generation = uint16(fields[2])
			case 2:
				entry.InStream = NewReference(uint32(fields[1]), 0)
				entry.Pos = fields[2]
			default:
				entry.IsFree = true
			}
			if _, exists := r.xref[num]; !exists {
				r.xref[num] = entry
			}
		}
	}

	return stm.Dict, int64(asInt(stm.Dict.Get("Prev"))), nil
}

func splitXRefRow(row []byte, widths []int) [3]int64 {
	var fields [3]int64
	off := 0
	for i, w := range widths {
		if w == 0 {
			if i == 0 {
				fields[i] = 1
			}
			continue
		}
		var buf [8]byte
		copy(buf[8-w:], row[off:off+w])
		fields[i] = int64(binary.BigEndian.Uint64(buf[:]))
		off += w
	}
	return fields
}

func asInt(obj Object) int64 {
	if n, ok := obj.(Integer); ok {
		return int64(n)
	}
	return 0
}

// reconstructXRef is the brute-force fallback (§7) when the cross-reference
// table is damaged or absent: it scans the whole file for "N G obj"
// headers and the trailer dictionary, the way most lenient PDF readers do.
func (r *Reader) reconstructXRef() (Dict, error) {
	data, err := slice(r.src(), 0, r.size)
	if err != nil {
		return Dict{}, err
	}
	trailer := NewDict()

	objPat := []byte(" obj")
	pos := 0
	for {
		idx := bytes.Index(data[pos:], objPat)
		if idx < 0 {
			break
		}
		headerEnd := pos + idx
		// walk backward over "N G" before " obj"
		start := headerEnd
		for start > 0 && (isDigitByte(data[start-1]) || data[start-1] == ' ') {
			start--
		}
		header := data[start:headerEnd]
		var num, gen int64
		if n, _ := fmt.Sscanf(string(header), "%d %d", &num, &gen); n == 2 && num >= 0 {
			r.xref[uint32(num)] = &xRefEntry{Pos: int64(start), Generation: uint16(gen)}
		}
		pos = headerEnd + len(objPat)
	}

	if tIdx := bytes.LastIndex(data, []byte("trailer")); tIdx >= 0 {
		lx := NewLexerAt(r.src(), int64(tIdx+len("trailer")))
		p := newObjectParser(lx)
		if obj, err := p.nextObject(); err == nil {
			if d, ok := obj.(Dict); ok {
				trailer = d
			}
		}
	}
	if !trailer.Has("Root") {
		// scan recovered objects for a /Catalog, as done when no trailer
		// dictionary could be located at all.
		for num, entry := range r.xref {
			if entry.IsFree || entry.InStream != 0 {
				continue
			}
			obj, err := ParseIndirectObjectAt(r.src(), entry.Pos)
			if err != nil {
				continue
			}
			if d, ok := obj.Value.(Dict); ok {
				if t, _ := d.Get("Type").(Name); t == "Catalog" {
					trailer.Set("Root", NewReference(num, entry.Generation))
					break
				}
			}
		}
	}
	return trailer, nil
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }
