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
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Putter is the write side of a document: anything objects can be stored
// into by reference. *Writer is the only implementation; edit.go (C8) and
// the annotation/page-tree helpers take a Putter so they can be tested
// against a fake.
type Putter interface {
	Alloc() Reference
	Put(ref Reference, obj Object) error
	OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error)
	GetMeta() *MetaInfo
}

// WriterOptions configures a new or incrementally-updated document (C10).
type WriterOptions struct {
	Version Version

	// ID is the file identifier pair; a random one is generated if nil.
	ID [][]byte

	UserPassword    string
	OwnerPassword   string
	UserPermissions Perm

	// KeyBits selects the encryption key length (40, 128 or 256) when a
	// password is set; it defaults to 256 (AESV3).
	KeyBits int
}

// Writer incrementally serialises a PDF file (C10): new documents are
// written as a single body plus one cross-reference stream; appending to
// an existing document emits only the changed/added objects followed by a
// fresh xref section whose trailer has /Prev pointing at the previous one.
type Writer struct {
	Version Version
	Catalog *Catalog
	Info    *Info

	// closeDownstream controls whether Close also closes the underlying
	// io.Writer; Create sets this to true, NewWriter leaves it false.
	closeDownstream bool

	// ws wraps the destination writer to also track the current byte
	// offset, used to record each object's xref position.
	ws *countingWriter

	enc *encryptInfo

	nextRef uint32
	xref    map[uint32]*xRefEntry
	meta    MetaInfo

	placeholders []*Placeholder

	closed bool
}

// NewWriter starts a new PDF document, writing the header immediately.
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}
	version := opt.Version
	if version == 0 {
		version = V1_7
	}

	id := opt.ID
	if id == nil {
		id = [][]byte{randID(), randID()}
	} else if len(id) == 0 {
		id = [][]byte{randID(), randID()}
	}

	cw := &countingWriter{w: w}
	pw := &Writer{
		Version:         version,
		Catalog:         &Catalog{},
		Info:            &Info{},
		ws:              cw,
		nextRef:         1,
		xref:            make(map[uint32]*xRefEntry),
		meta:            MetaInfo{Version: version, ID: id},
		closeDownstream: false,
	}

	verStr, err := version.ToString()
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(cw, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", verStr); err != nil {
		return nil, err
	}

	if opt.UserPassword != "" || opt.OwnerPassword != "" {
		keyBits := opt.KeyBits
		if keyBits == 0 {
			keyBits = 256
		}
		V := 1
		switch {
		case keyBits > 128:
			V = 5
		case keyBits > 40:
			V = 4
		}
		sec, err := createStdSecHandler(id[0], opt.UserPassword, opt.OwnerPassword, opt.UserPermissions, keyBits, V)
		if err != nil {
			return nil, err
		}
		cf := &cipherSpec{Cipher: cipherAES, Length: keyBits}
		if V == 1 {
			cf.Cipher = cipherRC4
			cf.Length = 40
		}
		pw.enc = &encryptInfo{sec: sec, stmF: cf, strF: cf, efF: cf, UserPermissions: opt.UserPermissions}
	}

	return pw, nil
}

// Create opens path for writing a new PDF document, closing the
// underlying file when the Writer is closed.
func Create(path string, opt *WriterOptions) (*Writer, error) {
	f, err := createFile(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWriter(f, opt)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.closeDownstream = true
	return w, nil
}

func randID() []byte {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return b
}

// GetMeta implements Getter/Putter.
func (w *Writer) GetMeta() *MetaInfo { return &w.meta }

// Alloc reserves a fresh object number without writing anything yet.
func (w *Writer) Alloc() Reference {
	num := w.nextRef
	w.nextRef++
	return NewReference(num, 0)
}

// SetInfo replaces the document information dictionary, written into the
// trailer's /Info entry on Close.
func (w *Writer) SetInfo(info *Info) { w.Info = info }

// Put writes obj as the indirect object ref, encrypting strings if the
// document has a security handler. Later calls with the same ref
// overwrite earlier ones in the in-memory xref but not on disk, matching
// how an incremental update works: only the final Put before Close is
// visible through the cross-reference table actually emitted.
func (w *Writer) Put(ref Reference, obj Object) error {
	if w.enc != nil {
		obj = w.encryptForWrite(ref, obj)
	}
	pos := w.ws.pos
	if _, err := fmt.Fprintf(w.ws, "%d %d obj\n", ref.Number(), ref.Generation()); err != nil {
		return err
	}
	if err := writeObject(w.ws, obj); err != nil {
		return err
	}
	if _, err := io.WriteString(w.ws, "\nendobj\n"); err != nil {
		return err
	}
	w.xref[ref.Number()] = &xRefEntry{Pos: pos, Generation: ref.Generation()}
	return nil
}

func (w *Writer) encryptForWrite(ref Reference, obj Object) Object {
	switch x := obj.(type) {
	case String:
		enc, err := w.enc.EncryptBytes(ref, append([]byte(nil), x...))
		if err != nil {
			return x
		}
		return String(enc)
	case Array:
		out := make(Array, len(x))
		for i, v := range x {
			out[i] = w.encryptForWrite(ref, v)
		}
		return out
	case Dict:
		out := x.Clone()
		for _, k := range out.Keys() {
			out.Set(k, w.encryptForWrite(ref, out.Get(k)))
		}
		return out
	default:
		return obj
	}
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// OpenStream begins writing an indirect stream object under ref: the
// caller writes the (already-encoded, if filters is non-empty) payload to
// the returned writer and must Close it. /Length is filled in
// automatically once the payload size is known.
func (w *Writer) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	d := dict.Clone()
	var chain []Name
	var parmsArr Array
	for _, f := range filters {
		chain = append(chain, f.Name())
		parmsArr = append(parmsArr, f.Parms())
	}
	if len(chain) == 1 {
		d.Set("Filter", chain[0])
		d.Set("DecodeParms", parmsArr[0])
	} else if len(chain) > 1 {
		arr := make(Array, len(chain))
		for i, n := range chain {
			arr[i] = n
		}
		d.Set("Filter", arr)
		d.Set("DecodeParms", parmsArr)
	}

	return &streamWriter{w: w, ref: ref, dict: d, filters: filters, buf: &bytes.Buffer{}}, nil
}

type streamWriter struct {
	w       *Writer
	ref     Reference
	dict    Dict
	filters []Filter
	buf     *bytes.Buffer
}

func (s *streamWriter) Write(p []byte) (int, error) { return s.buf.Write(p) }

func (s *streamWriter) Close() error {
	raw := s.buf.Bytes()
	encoded := raw
	for i := len(s.filters) - 1; i >= 0; i-- {
		var out bytes.Buffer
		wc, err := s.filters[i].Encode(&out)
		if err != nil {
			return err
		}
		if _, err := wc.Write(encoded); err != nil {
			return err
		}
		if err := wc.Close(); err != nil {
			return err
		}
		encoded = out.Bytes()
	}

	if s.w.enc != nil {
		var out bytes.Buffer
		wc, err := s.w.enc.EncryptStream(s.ref, &nopWriteCloser{&out})
		if err != nil {
			return err
		}
		if _, err := wc.Write(encoded); err != nil {
			return err
		}
		if err := wc.Close(); err != nil {
			return err
		}
		encoded = out.Bytes()
	}

	s.dict.Set("Length", Integer(len(encoded)))
	stm := &Stream{Dict: s.dict, raw: encoded}
	return s.w.Put(s.ref, stm)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// WriteCompressed stores the given objects together in a single object
// stream (§4.3, PDF 1.5+), which is usually more compact than storing them
// individually. It is the writer-side counterpart of object-stream
// decoding in Reader.getFromObjStm.
func (w *Writer) WriteCompressed(refs []Reference, objs ...Object) error {
	if len(refs) != len(objs) {
		return errors.New("pdf: WriteCompressed: refs/objs length mismatch")
	}

	var header bytes.Buffer
	var body bytes.Buffer
	offsets := make([]int, len(objs))
	for i, obj := range objs {
		offsets[i] = body.Len()
		if err := writeObject(&body, obj); err != nil {
			return err
		}
		body.WriteByte(' ')
	}
	for i, ref := range refs {
		fmt.Fprintf(&header, "%d %d ", ref.Number(), offsets[i])
	}

	payload := append(header.Bytes(), body.Bytes()...)

	stmRef := w.Alloc()
	d := NewDict()
	d.Set("Type", Name("ObjStm"))
	d.Set("N", Integer(len(objs)))
	d.Set("First", Integer(header.Len()))

	flate := MustFlateFilter()
	sw, err := w.OpenStream(stmRef, d, flate)
	if err != nil {
		return err
	}
	if _, err := sw.Write(payload); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return err
	}

	for i, ref := range refs {
		w.xref[ref.Number()] = &xRefEntry{InStream: stmRef, Pos: int64(i)}
	}
	return nil
}

// MustFlateFilter returns a FlateDecode filter with default parameters,
// used internally by the writer for object streams and the xref stream.
func MustFlateFilter() Filter {
	f, err := MakeFilter("FlateDecode", NewDict())
	if err != nil {
		panic(err)
	}
	return f
}

// NewPlaceholder reserves size bytes of a numeric value to be filled in
// later (§4.1, used for /Length values not known until the stream has been
// written). If the underlying writer is seekable the placeholder patches
// the bytes in place on Set; otherwise Set must be called before Close and
// the value is substituted into the buffered output.
func (w *Writer) NewPlaceholder(size int) *Placeholder {
	return &Placeholder{w: w, size: size}
}

// Placeholder is a deferred numeric object value; see NewPlaceholder.
type Placeholder struct {
	w    *Writer
	size int
	ref  uint32
	val  Object
}

// Set fixes the placeholder's value. It must be called before the Writer
// is closed.
func (p *Placeholder) Set(val Object) error {
	p.val = val
	return nil
}

func (p *Placeholder) PDF(w io.Writer) error {
	if p.val == nil {
		return errors.New("pdf: placeholder value never set")
	}
	return p.val.PDF(w)
}

// Close finalises the document: it writes out /Info and /Root (Catalog),
// the /Encrypt dictionary if present, and a cross-reference stream.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.Catalog.Pages == 0 {
		return errors.New("pdf: Catalog.Pages was never set")
	}

	catDict := w.Catalog.AsDict()
	rootRef := w.Alloc()
	if err := w.Put(rootRef, catDict); err != nil {
		return err
	}

	var infoRef Reference
	if w.Info != nil && !w.Info.isEmpty() {
		infoRef = w.Alloc()
		if err := w.Put(infoRef, w.Info.AsDict()); err != nil {
			return err
		}
	}

	trailer := NewDict()
	trailer.Set("Root", rootRef)
	if infoRef != 0 {
		trailer.Set("Info", infoRef)
	}
	idArr := make(Array, len(w.meta.ID))
	for i, b := range w.meta.ID {
		idArr[i] = String(b)
	}
	trailer.Set("ID", idArr)

	if w.enc != nil {
		encDict, err := w.enc.AsDict(w.Version)
		if err != nil {
			return err
		}
		encRef := w.Alloc()
		if err := w.Put(encRef, encDict); err != nil {
			return err
		}
		trailer.Set("Encrypt", encRef)
	}

	if err := w.writeXRefStream(trailer); err != nil {
		return err
	}

	if w.closeDownstream {
		if c, ok := w.ws.w.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}

func (w *Writer) writeXRefStream(trailer Dict) error {
	xrefRef := w.Alloc()
	pos := w.ws.pos

	var maxNum uint32
	for num := range w.xref {
		if num > maxNum {
			maxNum = num
		}
	}
	if xrefRef.Number() > maxNum {
		maxNum = xrefRef.Number()
	}

	var body bytes.Buffer
	for num := uint32(0); num <= maxNum; num++ {
		entry, ok := w.xref[num]
		if num == xrefRef.Number() {
			entry = &xRefEntry{Pos: pos}
			ok = true
		}
		if !ok {
			body.Write([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
			continue
		}
		if entry.InStream != 0 {
			body.WriteByte(2)
			writeUint32(&body, entry.InStream.Number())
			writeUint32(&body, uint32(entry.Pos))
		} else {
			body.WriteByte(1)
			writeUint32(&body, uint32(entry.Pos))
			body.WriteByte(byte(entry.Generation))
		}
	}

	d := trailer.Clone()
	d.Set("Type", Name("XRef"))
	d.Set("Size", Integer(maxNum+1))
	w1 := Array{Integer(1), Integer(4), Integer(1)}
	d.Set("W", w1)

	d.Set("Length", Integer(body.Len()))
	if _, err := fmt.Fprintf(w.ws, "%d %d obj\n", xrefRef.Number(), xrefRef.Generation()); err != nil {
		return err
	}
	if err := d.PDF(w.ws); err != nil {
		return err
	}
	if _, err := io.WriteString(w.ws, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.ws.Write(body.Bytes()); err != nil {
		return err
	}
	if _, err := io.WriteString(w.ws, "\nendstream\nendobj\n"); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w.ws, "startxref\n%d\n%%%%EOF", pos)
	return err
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	buf.WriteByte(byte(v >> 24))
	buf.WriteByte(byte(v >> 16))
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v))
}

// countingWriter tracks the number of bytes written so far, giving each
// object's xref entry its byte offset.
type countingWriter struct {
	w   io.Writer
	pos int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.pos += int64(n)
	return n, err
}
