// Copyright 2020 Jochen Voss <voss@seehuhn.de>
//
// Some code here, e.g. the pngUpReader, is taken from
// https://pkg.go.dev/rsc.io/pdf .  Use of this source code is governed by a
// BSD-style license, which is reproduced here:
//
//     Copyright (c) 2009 The Go Authors. All rights reserved.
//
//     Redistribution and use in source and binary forms, with or without
//     modification, are permitted provided that the following conditions are
//     met:
//
//        * Redistributions of source code must retain the above copyright
//     notice, this list of conditions and the following disclaimer.
//        * Redistributions in binary form must reproduce the above
//     copyright notice, this list of conditions and the following disclaimer
//     in the documentation and/or other materials provided with the
//     distribution.
//        * Neither the name of Google Inc. nor the names of its
//     contributors may be used to endorse or promote products derived from
//     this software without specific prior written permission.
//
//     THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
//     "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
//     LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
//     A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
//     OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
//     SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
//     LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
//     DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
//     THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
//     (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
//     OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package pdf

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/image/ccitt"
)

// Filter is a single entry in a stream's decode pipeline (C2). Decode wraps
// r with the inverse transform; Encode wraps w with the forward transform.
// Name/Parms round-trip the filter back to its /Filter and /DecodeParms
// dictionary entries for the writer (C10).
type Filter interface {
	Name() Name
	Parms() Dict
	Decode(r io.Reader) (io.Reader, error)
	Encode(w io.Writer) (io.WriteCloser, error)
}

// MakeFilter builds the Filter named by a stream's /Filter entry, with the
// corresponding /DecodeParms dictionary (may be the zero Dict).
func MakeFilter(name Name, parms Dict) (Filter, error) {
	switch name {
	case "FlateDecode", "Fl":
		return newPredictorFilter(name, parms, func(r io.Reader) (io.Reader, error) {
			return zlib.NewReader(r)
		}, func(w io.Writer) (io.WriteCloser, error) {
			return zlib.NewWriter(w), nil
		}), nil
	case "LZWDecode", "LZW":
		return newLZWFilter(parms), nil
	case "ASCII85Decode", "A85":
		return &ascii85Filter{}, nil
	case "ASCIIHexDecode", "AHx":
		return &asciiHexFilter{}, nil
	case "RunLengthDecode", "RL":
		return &runLengthFilter{}, nil
	case "CCITTFaxDecode", "CCF":
		return newCCITTFilter(parms), nil
	case "DCTDecode", "DCT", "JPXDecode":
		// Passed through undecoded: C2 treats these as opaque image codecs
		// that the graphics pipeline (C7) hands straight to image/jpeg or a
		// JPEG 2000 consumer rather than re-expanding to raw samples here.
		return &passthroughFilter{name: name, parms: parms}, nil
	case "Crypt":
		return &cryptFilter{parms: parms}, nil
	default:
		return nil, &UnsupportedFilterError{Name: name}
	}
}

func intParam(parms Dict, key Name, def int) int {
	if v, ok := parms.Get(key).(Integer); ok {
		return int(v)
	}
	return def
}

func boolParam(parms Dict, key Name, def bool) bool {
	if v, ok := parms.Get(key).(Integer); ok {
		return v != 0
	}
	if v, ok := parms.Get(key).(Boolean); ok {
		return bool(v)
	}
	return def
}

// predictorFilter wraps a base codec (Flate or LZW) with the PNG (10-15) or
// TIFF (2) predictor of §4.2.
type predictorFilter struct {
	name             Name
	predictor        int
	colors           int
	bitsPerComponent int
	columns          int
	earlyChange      bool

	newReader func(io.Reader) (io.Reader, error)
	newWriter func(io.Writer) (io.WriteCloser, error)
}

func newPredictorFilter(name Name, parms Dict, newReader func(io.Reader) (io.Reader, error), newWriter func(io.Writer) (io.WriteCloser, error)) *predictorFilter {
	return &predictorFilter{
		name:             name,
		predictor:        intParam(parms, "Predictor", 1),
		colors:           intParam(parms, "Colors", 1),
		bitsPerComponent: intParam(parms, "BitsPerComponent", 8),
		columns:          intParam(parms, "Columns", 1),
		earlyChange:      boolParam(parms, "EarlyChange", true),
		newReader:        newReader,
		newWriter:        newWriter,
	}
}

func (f *predictorFilter) Name() Name { return f.name }

func (f *predictorFilter) Parms() Dict {
	d := NewDict()
	if f.predictor == 1 {
		return d
	}
	d.Set("Predictor", Integer(f.predictor))
	d.Set("Colors", Integer(f.colors))
	d.Set("BitsPerComponent", Integer(f.bitsPerComponent))
	d.Set("Columns", Integer(f.columns))
	if !f.earlyChange {
		d.Set("EarlyChange", Integer(0))
	}
	return d
}

func (f *predictorFilter) bytesPerPixel() int {
	bits := f.colors * f.bitsPerComponent
	return (bits + 7) / 8
}

func (f *predictorFilter) rowBytes() int {
	return (f.colors*f.bitsPerComponent*f.columns + 7) / 8
}

func (f *predictorFilter) Decode(r io.Reader) (io.Reader, error) {
	base, err := f.newReader(r)
	if err != nil {
		return nil, err
	}
	switch {
	case f.predictor <= 1:
		return base, nil
	case f.predictor == 2:
		return &tiffPredictorReader{r: base, colors: f.colors, bpc: f.bitsPerComponent, columns: f.columns}, nil
	case f.predictor >= 10:
		return &pngPredictorReader{r: base, bpp: f.bytesPerPixel(), rowLen: f.rowBytes(), prev: make([]byte, f.rowBytes())}, nil
	default:
		return nil, fmt.Errorf("unsupported predictor %d", f.predictor)
	}
}

func (f *predictorFilter) Encode(w io.Writer) (io.WriteCloser, error) {
	base, err := f.newWriter(w)
	if err != nil {
		return nil, err
	}
	switch {
	case f.predictor <= 1:
		return base, nil
	case f.predictor >= 10:
		return &pngUpWriter2{w: base, rowLen: f.rowBytes(), prev: make([]byte, f.rowBytes())}, nil
	default:
		return nil, fmt.Errorf("unsupported predictor %d for encoding", f.predictor)
	}
}

// pngPredictorReader undoes PNG filter types 0 (None), 1 (Sub), 2 (Up),
// 3 (Average) and 4 (Paeth); a real stream may switch type row by row.
type pngPredictorReader struct {
	r      io.Reader
	bpp    int
	rowLen int
	prev   []byte
	pend   []byte
	tmp    []byte
}

func (r *pngPredictorReader) Read(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if len(r.pend) > 0 {
			m := copy(b, r.pend)
			n += m
			b = b[m:]
			r.pend = r.pend[m:]
			continue
		}
		if r.tmp == nil {
			r.tmp = make([]byte, 1+r.rowLen)
		}
		_, err := io.ReadFull(r.r, r.tmp)
		if err != nil {
			if n > 0 && err == io.ErrUnexpectedEOF {
				return n, nil
			}
			return n, err
		}
		cur := make([]byte, r.rowLen)
		copy(cur, r.tmp[1:])
		switch r.tmp[0] {
		case 0: // None
		case 1: // Sub
			for i := range cur {
				var left byte
				if i >= r.bpp {
					left = cur[i-r.bpp]
				}
				cur[i] += left
			}
		case 2: // Up
			for i := range cur {
				cur[i] += r.prev[i]
			}
		case 3: // Average
			for i := range cur {
				var left int
				if i >= r.bpp {
					left = int(cur[i-r.bpp])
				}
				cur[i] += byte((left + int(r.prev[i])) / 2)
			}
		case 4: // Paeth
			for i := range cur {
				var left, upLeft byte
				if i >= r.bpp {
					left = cur[i-r.bpp]
					upLeft = r.prev[i-r.bpp]
				}
				cur[i] += paeth(left, r.prev[i], upLeft)
			}
		default:
			return n, fmt.Errorf("unsupported PNG predictor tag %d", r.tmp[0])
		}
		r.prev = cur
		r.pend = cur
	}
	return n, nil
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := abs(p-int(a)), abs(p-int(b)), abs(p-int(c))
	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

type pngUpWriter2 struct {
	w      io.WriteCloser
	rowLen int
	prev   []byte
	cur    []byte
	pos    int
}

func (w *pngUpWriter2) Write(p []byte) (int, error) {
	if w.cur == nil {
		w.cur = make([]byte, w.rowLen)
	}
	n := 0
	for len(p) > 0 {
		l := copy(w.cur[w.pos:], p)
		p = p[l:]
		w.pos += l
		n += l
		if w.pos >= w.rowLen {
			tag := []byte{2}
			out := make([]byte, w.rowLen)
			for i := range out {
				out[i] = w.cur[i] - w.prev[i]
			}
			if _, err := w.w.Write(tag); err != nil {
				return n, err
			}
			if _, err := w.w.Write(out); err != nil {
				return n, err
			}
			w.prev = append([]byte(nil), w.cur...)
			w.pos = 0
		}
	}
	return n, nil
}

func (w *pngUpWriter2) Close() error {
	return w.w.Close()
}

// tiffPredictorReader undoes TIFF predictor 2 (horizontal differencing) for
// 8-bit samples; other bit depths are rare enough in practice to be left
// unimplemented (falls through unmodified).
type tiffPredictorReader struct {
	r       io.Reader
	colors  int
	bpc     int
	columns int
	row     []byte
}

func (r *tiffPredictorReader) Read(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if len(r.row) == 0 {
			r.row = make([]byte, (r.colors*r.bpc*r.columns+7)/8)
			_, err := io.ReadFull(r.r, r.row)
			if err != nil {
				return n, err
			}
			if r.bpc == 8 {
				for i := r.colors; i < len(r.row); i++ {
					r.row[i] += r.row[i-r.colors]
				}
			}
		}
		m := copy(b, r.row)
		n += m
		b = b[m:]
		r.row = r.row[m:]
	}
	return n, nil
}

// lzwFilter implements LZW with PDF's early-change-of-code-width quirk
// (§4.2): unlike the stdlib TIFF-flavoured compress/lzw, a PDF LZW stream
// switches to a wider code one symbol earlier than the table would
// otherwise require, by default (EarlyChange defaults to true).
type lzwFilter struct {
	predictor *predictorFilter
	earlyChange bool
}

func newLZWFilter(parms Dict) *lzwFilter {
	return &lzwFilter{
		predictor:   newPredictorFilter("LZWDecode", parms, nil, nil),
		earlyChange: boolParam(parms, "EarlyChange", true),
	}
}

func (f *lzwFilter) Name() Name { return "LZWDecode" }
func (f *lzwFilter) Parms() Dict { return f.predictor.Parms() }

func (f *lzwFilter) Decode(r io.Reader) (io.Reader, error) {
	base := newLZWReader(r, f.earlyChange)
	switch {
	case f.predictor.predictor <= 1:
		return base, nil
	case f.predictor.predictor == 2:
		return &tiffPredictorReader{r: base, colors: f.predictor.colors, bpc: f.predictor.bitsPerComponent, columns: f.predictor.columns}, nil
	default:
		return &pngPredictorReader{r: base, bpp: f.predictor.bytesPerPixel(), rowLen: f.predictor.rowBytes(), prev: make([]byte, f.predictor.rowBytes())}, nil
	}
}

func (f *lzwFilter) Encode(w io.Writer) (io.WriteCloser, error) {
	return newLZWWriter(w, f.earlyChange), nil
}

const (
	lzwClearCode = 256
	lzwEODCode   = 257
	lzwFirstCode = 258
)

type lzwReader struct {
	br          *bufio.Reader
	earlyChange bool
	bitBuf      uint32
	bitCnt      uint
	codeWidth   uint
	table       [][]byte
	prevCode    int
	pend        []byte
	done        bool
}

func newLZWReader(r io.Reader, earlyChange bool) *lzwReader {
	lr := &lzwReader{br: bufio.NewReader(r), earlyChange: earlyChange}
	lr.reset()
	return lr
}

func (r *lzwReader) reset() {
	r.table = make([][]byte, lzwFirstCode, 4096)
	for i := 0; i < 256; i++ {
		r.table[i] = []byte{byte(i)}
	}
	r.table = r.table[:lzwFirstCode]
	r.codeWidth = 9
	r.prevCode = -1
}

func (r *lzwReader) readCode() (int, error) {
	for r.bitCnt < r.codeWidth {
		b, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}
		r.bitBuf = r.bitBuf<<8 | uint32(b)
		r.bitCnt += 8
	}
	shift := r.bitCnt - r.codeWidth
	code := int(r.bitBuf>>shift) & ((1 << r.codeWidth) - 1)
	r.bitCnt -= r.codeWidth
	return code, nil
}

func (r *lzwReader) Read(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if len(r.pend) > 0 {
			m := copy(b, r.pend)
			n += m
			b = b[m:]
			r.pend = r.pend[m:]
			continue
		}
		if r.done {
			return n, io.EOF
		}
		code, err := r.readCode()
		if err != nil {
			r.done = true
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		switch code {
		case lzwClearCode:
			r.reset()
			continue
		case lzwEODCode:
			r.done = true
			if n > 0 {
				return n, nil
			}
			return 0, io.EOF
		}

		var entry []byte
		if code < len(r.table) {
			entry = r.table[code]
		} else if code == len(r.table) && r.prevCode >= 0 {
			prev := r.table[r.prevCode]
			entry = append(append([]byte(nil), prev...), prev[0])
		} else {
			r.done = true
			return n, errors.New("invalid LZW code")
		}

		if r.prevCode >= 0 && len(r.table) < 4096 {
			prev := r.table[r.prevCode]
			newEntry := append(append([]byte(nil), prev...), entry[0])
			r.table = append(r.table, newEntry)
		}
		r.prevCode = code

		limit := len(r.table)
		if r.earlyChange {
			limit++
		}
		switch {
		case limit >= 2048:
			r.codeWidth = 12
		case limit >= 1024:
			r.codeWidth = 11
		case limit >= 512:
			r.codeWidth = 10
		default:
			r.codeWidth = 9
		}

		r.pend = entry
	}
	return n, nil
}

type lzwWriter struct {
	w           io.Writer
	earlyChange bool
	bitBuf      uint32
	bitCnt      uint
	codeWidth   uint
	table       map[string]int
	next        int
	cur         []byte
}

func newLZWWriter(w io.Writer, earlyChange bool) *lzwWriter {
	lw := &lzwWriter{w: w, earlyChange: earlyChange}
	lw.reset()
	_ = lw.writeCode(lzwClearCode)
	return lw
}

func (w *lzwWriter) reset() {
	w.table = make(map[string]int, 4096)
	for i := 0; i < 256; i++ {
		w.table[string([]byte{byte(i)})] = i
	}
	w.next = lzwFirstCode
	w.codeWidth = 9
}

func (w *lzwWriter) writeCode(code int) error {
	w.bitBuf = w.bitBuf<<w.codeWidth | uint32(code)
	w.bitCnt += w.codeWidth
	for w.bitCnt >= 8 {
		shift := w.bitCnt - 8
		if _, err := w.w.Write([]byte{byte(w.bitBuf >> shift)}); err != nil {
			return err
		}
		w.bitCnt -= 8
	}
	return nil
}

func (w *lzwWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		cand := append(append([]byte(nil), w.cur...), b)
		if _, ok := w.table[string(cand)]; ok {
			w.cur = cand
			continue
		}
		if len(w.cur) > 0 {
			if err := w.writeCode(w.table[string(w.cur)]); err != nil {
				return 0, err
			}
		}
		if w.next < 4096 {
			w.table[string(cand)] = w.next
			w.next++
		}
		limit := w.next
		if w.earlyChange {
			limit++
		}
		switch {
		case limit > 2048:
			w.codeWidth = 12
		case limit > 1024:
			w.codeWidth = 11
		case limit > 512:
			w.codeWidth = 10
		default:
			w.codeWidth = 9
		}
		w.cur = []byte{b}
	}
	return len(p), nil
}

func (w *lzwWriter) Close() error {
	if len(w.cur) > 0 {
		if err := w.writeCode(w.table[string(w.cur)]); err != nil {
			return err
		}
		// the decoder adds one more table entry after this code, which can
		// already widen the code that carries EOD
		limit := w.next + 1
		if w.earlyChange {
			limit++
		}
		for w.codeWidth < 12 && limit > 1<<w.codeWidth {
			w.codeWidth++
		}
	}
	if err := w.writeCode(lzwEODCode); err != nil {
		return err
	}
	if w.bitCnt > 0 {
		if _, err := w.w.Write([]byte{byte(w.bitBuf << (8 - w.bitCnt))}); err != nil {
			return err
		}
	}
	return nil
}

// ascii85Filter implements ASCII85Decode/Encode (§4.2), stopping decode at
// the "~>" EOD marker.
type ascii85Filter struct{}

func (f *ascii85Filter) Name() Name  { return "ASCII85Decode" }
func (f *ascii85Filter) Parms() Dict { return NewDict() }

func (f *ascii85Filter) Decode(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if i := indexOf(data, []byte("~>")); i >= 0 {
		data = data[:i]
	}
	return ascii85.NewDecoder(bytes.NewReader(data)), nil
}

func (f *ascii85Filter) Encode(w io.Writer) (io.WriteCloser, error) {
	enc := ascii85.NewEncoder(w)
	return &ascii85Closer{enc: enc, w: w}, nil
}

type ascii85Closer struct {
	enc io.WriteCloser
	w   io.Writer
}

func (c *ascii85Closer) Write(p []byte) (int, error) { return c.enc.Write(p) }
func (c *ascii85Closer) Close() error {
	if err := c.enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(c.w, "~>")
	return err
}

// asciiHexFilter implements ASCIIHexDecode/Encode, ignoring whitespace and
// stopping at the ">" EOD marker.
type asciiHexFilter struct{}

func (f *asciiHexFilter) Name() Name  { return "ASCIIHexDecode" }
func (f *asciiHexFilter) Parms() Dict { return NewDict() }

func (f *asciiHexFilter) Decode(r io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	clean := make([]byte, 0, len(data))
	for _, b := range data {
		if b == '>' {
			break
		}
		if isWhitespace(b) {
			continue
		}
		clean = append(clean, b)
	}
	if len(clean)%2 == 1 {
		clean = append(clean, '0')
	}
	out := make([]byte, hex.DecodedLen(len(clean)))
	n, err := hex.Decode(out, clean)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out[:n]), nil
}

func (f *asciiHexFilter) Encode(w io.Writer) (io.WriteCloser, error) {
	return &asciiHexEncoder{w: w}, nil
}

type asciiHexEncoder struct{ w io.Writer }

func (e *asciiHexEncoder) Write(p []byte) (int, error) {
	_, err := io.WriteString(e.w, hex.EncodeToString(p))
	return len(p), err
}
func (e *asciiHexEncoder) Close() error {
	_, err := io.WriteString(e.w, ">")
	return err
}

// runLengthFilter implements RunLengthDecode/Encode (§4.2).
type runLengthFilter struct{}

func (f *runLengthFilter) Name() Name  { return "RunLengthDecode" }
func (f *runLengthFilter) Parms() Dict { return NewDict() }

func (f *runLengthFilter) Decode(r io.Reader) (io.Reader, error) {
	return &runLengthReader{br: bufio.NewReader(r)}, nil
}

type runLengthReader struct {
	br   *bufio.Reader
	pend []byte
	done bool
}

func (r *runLengthReader) Read(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if len(r.pend) > 0 {
			m := copy(b, r.pend)
			n += m
			b = b[m:]
			r.pend = r.pend[m:]
			continue
		}
		if r.done {
			return n, io.EOF
		}
		length, err := r.br.ReadByte()
		if err != nil {
			r.done = true
			if n > 0 {
				return n, nil
			}
			return n, err
		}
		switch {
		case length == 128:
			r.done = true
		case length < 128:
			buf := make([]byte, int(length)+1)
			if _, err := io.ReadFull(r.br, buf); err != nil {
				return n, err
			}
			r.pend = buf
		default:
			b2, err := r.br.ReadByte()
			if err != nil {
				return n, err
			}
			count := 257 - int(length)
			buf := make([]byte, count)
			for i := range buf {
				buf[i] = b2
			}
			r.pend = buf
		}
	}
	return n, nil
}

func (f *runLengthFilter) Encode(w io.Writer) (io.WriteCloser, error) {
	return &runLengthWriter{w: w}, nil
}

// runLengthWriter writes literal runs of up to 128 bytes and the EOD marker.
type runLengthWriter struct{ w io.Writer }

func (rw *runLengthWriter) Write(p []byte) (int, error) {
	for i := 0; i < len(p); i += 128 {
		chunk := p[i:min(i+128, len(p))]
		if _, err := rw.w.Write(append([]byte{byte(len(chunk) - 1)}, chunk...)); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

func (rw *runLengthWriter) Close() error {
	_, err := rw.w.Write([]byte{128})
	return err
}

type withoutCloseW struct{ io.Writer }

func (withoutCloseW) Close() error { return nil }

// ccittFilter implements CCITTFaxDecode via golang.org/x/image/ccitt,
// covering Group 3 1-D/2-D and Group 4 (K < 0, K == 0, K > 0).
type ccittFilter struct {
	columns        int
	rows           int
	k               int
	blackIs1        bool
	byteAlign       bool
	endOfBlock      bool
}

func newCCITTFilter(parms Dict) *ccittFilter {
	return &ccittFilter{
		columns:    intParam(parms, "Columns", 1728),
		rows:       intParam(parms, "Rows", 0),
		k:          intParam(parms, "K", 0),
		blackIs1:   boolParam(parms, "BlackIs1", false),
		byteAlign:  boolParam(parms, "EncodedByteAlign", false),
		endOfBlock: boolParam(parms, "EndOfBlock", true),
	}
}

func (f *ccittFilter) Name() Name { return "CCITTFaxDecode" }
func (f *ccittFilter) Parms() Dict {
	d := NewDict()
	d.Set("Columns", Integer(f.columns))
	if f.rows != 0 {
		d.Set("Rows", Integer(f.rows))
	}
	d.Set("K", Integer(f.k))
	if f.blackIs1 {
		d.Set("BlackIs1", Boolean(true))
	}
	if f.byteAlign {
		d.Set("EncodedByteAlign", Boolean(true))
	}
	return d
}

func (f *ccittFilter) Decode(r io.Reader) (io.Reader, error) {
	mode := ccitt.Group4
	if f.k < 0 {
		mode = ccitt.Group4
	} else if f.k == 0 {
		mode = ccitt.Group3_1D
	} else {
		mode = ccitt.Group3_2D
	}
	opts := &ccitt.Options{
		Invert:    f.blackIs1,
		Align:     f.byteAlign,
	}
	rows := f.rows
	if rows == 0 {
		rows = -1
	}
	reader := ccitt.NewReader(r, ccitt.MSB, mode, f.columns, rows, opts)
	return reader, nil
}

func (f *ccittFilter) Encode(w io.Writer) (io.WriteCloser, error) {
	return nil, errors.New("CCITTFaxDecode encoding is not supported")
}

// passthroughFilter is used for image codecs (DCTDecode, JPXDecode) that C7
// consumes directly rather than expanding to raw samples.
type passthroughFilter struct {
	name  Name
	parms Dict
}

func (f *passthroughFilter) Name() Name                           { return f.name }
func (f *passthroughFilter) Parms() Dict                          { return f.parms }
func (f *passthroughFilter) Decode(r io.Reader) (io.Reader, error) { return r, nil }
func (f *passthroughFilter) Encode(w io.Writer) (io.WriteCloser, error) {
	return &withoutCloseW{w}, nil
}

// cryptFilter is a no-op placeholder for the /Crypt filter name (§4.3):
// actual decryption happens once, ahead of the filter pipeline, in
// DecodeStream.
type cryptFilter struct{ parms Dict }

func (f *cryptFilter) Name() Name                           { return "Crypt" }
func (f *cryptFilter) Parms() Dict                          { return f.parms }
func (f *cryptFilter) Decode(r io.Reader) (io.Reader, error) { return r, nil }
func (f *cryptFilter) Encode(w io.Writer) (io.WriteCloser, error) {
	return &withoutCloseW{w}, nil
}

