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
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReaderOptions configures how a Document is opened (C3/C4/C5).
type ReaderOptions struct {
	// ReadPassword is called, possibly more than once, to obtain a
	// password for an encrypted document. It receives the file ID and a
	// zero-based attempt counter, and should return "" to give up.
	ReadPassword func(id []byte, try int) string
}

// Reader is an open PDF file: the parsed cross-reference table plus a
// lazily-populated cache of decoded indirect objects (C3/C5). It
// implements Getter so C2/C4/C6/C7/C9 can all resolve references through
// the same interface whether reading or about to incrementally rewrite.
type Reader struct {
	r    io.ReaderAt
	size int64

	xref  map[uint32]*xRefEntry
	cache *lruCache

	meta MetaInfo
	enc  *encryptInfo
	opt  *ReaderOptions

	closer io.Closer
}

// Close releases the underlying file, if the Reader was obtained from
// Open. It is a no-op for Readers constructed from an in-memory io.ReaderAt.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// NewReader opens a PDF file for reading: it locates the final
// cross-reference section, follows its /Prev chain, and (if the document
// is encrypted) sets up the Standard Security Handler. The returned Reader
// does not require the input to support Seek; it needs ReadAt only.
func NewReader(r io.ReaderAt, opt *ReaderOptions) (*Reader, error) {
	var size int64
	if sz, ok := r.(interface{ Size() int64 }); ok {
		size = sz.Size()
	} else if sk, ok := r.(io.Seeker); ok {
		n, err := sk.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, err
		}
		size = n
	} else {
		return nil, errors.New("pdf: reader must support Size() or Seek")
	}

	rd := &Reader{
		r:     r,
		size:  size,
		xref:  make(map[uint32]*xRefEntry),
		cache: newCache(1024),
		opt:   opt,
	}

	if err := rd.checkHeader(); err != nil {
		return nil, err
	}

	var trailer Dict
	start, err := rd.findXRef()
	if err == nil {
		trailer, err = rd.readXRefChain(start)
	}
	if err != nil {
		trailer, err = rd.reconstructXRef()
		if err != nil {
			return nil, err
		}
	}
	rd.meta.Trailer = trailer

	if idArr, ok := trailer.Get("ID").(Array); ok {
		for _, o := range idArr {
			if s, ok := o.(String); ok {
				rd.meta.ID = append(rd.meta.ID, []byte(s))
			}
		}
	}

	rd.meta.Version = V1_7
	if ver, err := rd.headerVersion(); err == nil {
		rd.meta.Version = ver
	}

	if encObj := trailer.Get("Encrypt"); encObj != nil {
		var readPwd func([]byte, int) string
		if opt != nil {
			readPwd = opt.ReadPassword
		}
		enc, err := parseEncryptDict(rd, encObj, rd.meta.ID, readPwd)
		if err != nil {
			return nil, err
		}
		rd.enc = enc
		if _, err := rd.enc.sec.GetKey(false); err != nil {
			return nil, err
		}
	}

	return rd, nil
}

func (r *Reader) checkHeader() error {
	buf, err := slice(r.src(), 0, 1024)
	if err != nil {
		return err
	}
	if !bytes.Contains(buf, []byte("%PDF-")) {
		return &InvalidHeaderError{Err: errors.New("missing %PDF- header")}
	}
	return nil
}

func (r *Reader) headerVersion() (Version, error) {
	buf, err := slice(r.src(), 0, 16)
	if err != nil {
		return 0, err
	}
	idx := bytes.Index(buf, []byte("%PDF-"))
	if idx < 0 {
		return 0, errors.New("no header")
	}
	rest := string(buf[idx+len("%PDF-"):])
	end := strings.IndexAny(rest, "\r\n ")
	if end < 0 {
		end = len(rest)
	}
	return ParseVersion(rest[:end])
}

// GetMeta implements Getter.
func (r *Reader) GetMeta() *MetaInfo { return &r.meta }

// Get implements Getter: it reads object ref from the xref table, applying
// the document's decryption key to any string payloads directly (stream
// payloads are decrypted lazily by Stream.Decode).
func (r *Reader) Get(ref Reference, canObjStm bool) (Object, error) {
	num := ref.Number()
	if obj, ok := r.cache.Get(ref); ok {
		return obj, nil
	}

	entry, ok := r.xref[num]
	if !ok || entry.IsFree {
		return nil, nil
	}

	var obj Object
	var err error
	if entry.InStream != 0 {
		if !canObjStm {
			return nil, &MalformedFileError{Err: fmt.Errorf("object %d must not be inside an object stream", num)}
		}
		obj, err = r.getFromObjStm(entry)
	} else {
		obj, err = r.getDirect(ref, entry)
	}
	if err != nil {
		return nil, err
	}

	r.cache.Put(ref, obj)
	return obj, nil
}

func (r *Reader) getDirect(ref Reference, entry *xRefEntry) (Object, error) {
	ind, err := ParseIndirectObjectAt(r.src(), entry.Pos)
	if err != nil {
		return nil, err
	}
	if ind.Ref.Number() != ref.Number() {
		return nil, &MissingObjectError{Ref: ref}
	}

	obj := ind.Value
	if stm, ok := obj.(*Stream); ok {
		stm.ref = ref
		stm.owner = r
		stm.crypt = r.enc
		if lenRef, ok := stm.Dict.Get("Length").(Reference); ok {
			if n, err := GetInteger(r, lenRef); err == nil {
				if raw, err := rereadStreamLength(r.src(), entry.Pos, int64(n)); err == nil {
					stm.raw = raw
				}
			}
		}
		return stm, nil
	}

	if r.enc != nil {
		obj = decryptObject(r.enc, ref, obj)
	}
	return obj, nil
}

// rereadStreamLength re-reads a stream's payload once its indirect /Length
// has been resolved, for the case the initial direct parse had to fall
// back to scanning for "endstream" (§7).
func rereadStreamLength(src Source, objOffset int64, length int64) ([]byte, error) {
	lx := NewLexerAt(src, objOffset)
	p := newObjectParser(lx)
	for i := 0; i < 3; i++ { // "N G obj"
		if _, err := p.next(); err != nil {
			return nil, err
		}
	}
	_, err := p.nextObject() // the dictionary
	if err != nil {
		return nil, err
	}
	save := p.lx.Pos()
	t, err := p.next()
	if err != nil || t.kind != tokKeyword || t.kw != "stream" {
		return nil, errors.New("not a stream")
	}
	pos := p.lx.Pos()
	if b, ok := p.lx.peek(); ok && b == '\r' {
		p.lx.advance()
		pos = p.lx.Pos()
	}
	if b, ok := p.lx.peek(); ok && b == '\n' {
		p.lx.advance()
		pos = p.lx.Pos()
	}
	_ = save
	return slice(src, pos, pos+length)
}

func decryptObject(enc *encryptInfo, ref Reference, obj Object) Object {
	switch x := obj.(type) {
	case String:
		dec, err := enc.DecryptBytes(ref, append([]byte(nil), x...))
		if err != nil {
			return x
		}
		return String(dec)
	case Array:
		out := make(Array, len(x))
		for i, v := range x {
			out[i] = decryptObject(enc, ref, v)
		}
		return out
	case Dict:
		out := x.Clone()
		for _, k := range out.Keys() {
			out.Set(k, decryptObject(enc, ref, out.Get(k)))
		}
		return out
	default:
		return obj
	}
}

func (r *Reader) getFromObjStm(entry *xRefEntry) (Object, error) {
	container, err := Resolve(r, entry.InStream)
	if err != nil {
		return nil, err
	}
	stm, ok := container.(*Stream)
	if !ok {
		return nil, &MalformedFileError{Err: errors.New("object stream container is not a stream")}
	}
	data, err := stm.Decode()
	if err != nil {
		return nil, err
	}

	n, _ := stm.Dict.Get("N").(Integer)
	first, _ := stm.Dict.Get("First").(Integer)

	lx := NewLexer(NewSourceBytes(data))
	p := newObjectParser(lx)
	offsets := make([]int64, n)
	for i := int64(0); i < int64(n); i++ {
		numTok, err := p.next()
		if err != nil || numTok.kind != tokInteger {
			return nil, &MalformedFileError{Err: errors.New("malformed object stream header")}
		}
		offTok, err := p.next()
		if err != nil || offTok.kind != tokInteger {
			return nil, &MalformedFileError{Err: errors.New("malformed object stream header")}
		}
		offsets[i] = offTok.i
	}

	idx := entry.Pos
	if idx < 0 || idx >= int64(n) {
		return nil, &MissingObjectError{}
	}
	objLx := NewLexerAt(NewSourceBytes(data), int64(first)+offsets[idx])
	objParser := newObjectParser(objLx)
	return objParser.nextObject()
}

// Resolve follows ref to its direct value. Convenience wrapper around the
// package-level Resolve for this Reader.
func (r *Reader) Resolve(obj Object) (Object, error) { return Resolve(r, obj) }

// GetStream resolves ref and returns it as a *Stream.
func (r *Reader) GetStream(obj Object) (*Stream, error) { return GetStream(r, obj) }

// GetString resolves ref and returns its byte content.
func (r *Reader) GetString(obj Object) (String, error) { return GetString(r, obj) }

// AuthenticateOwner attempts to unlock owner-level permissions using the
// configured ReadPassword callback (C4).
func (r *Reader) AuthenticateOwner() error {
	if r.enc == nil {
		return nil
	}
	_, err := r.enc.sec.GetKey(true)
	return err
}

// Catalog returns the document's root object dictionary (§5.2).
func (r *Reader) Catalog() (Dict, error) {
	return GetDictTyped(r, r.meta.Trailer.Get("Root"), "Catalog")
}
