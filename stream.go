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

import "io"

// Stream is a PDF stream object: a Dict plus its raw (still filter- and
// cipher-encoded) payload bytes. Decoded bytes are computed lazily and
// cached on first access, per spec.md's Object data model ("lazy decoded
// bytes").
type Stream struct {
	Dict Dict
	raw  []byte

	crypt  *encryptInfo
	ref    Reference // object identity, needed to derive the per-object key
	owner  Getter     // document used to resolve indirect /Filter, /Length, etc.
	cached []byte
	have   bool
}

// NewStream builds a Stream from an already-decoded dict and raw payload,
// for code that constructs streams in memory rather than parsing them from
// a file: the text editor's (C8) freshly-inserted content streams, and
// test fixtures across packages that need a *Stream without a full
// Document (C9's function/Extract, C6's font ToUnicode CMaps).
func NewStream(dict Dict, raw []byte) *Stream {
	return &Stream{Dict: dict, raw: raw}
}

func (s *Stream) PDF(w io.Writer) error {
	if err := s.Dict.PDF(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.Write(s.raw); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nendstream")
	return err
}

// RawBytes returns the stream's bytes exactly as stored in the file,
// before decryption or filter decoding.
func (s *Stream) RawBytes() []byte { return s.raw }

// SetRawBytes replaces the stream's payload, e.g. after the text editor
// (C8) re-serialises an edited content stream. The caller is responsible
// for updating /Length to match.
func (s *Stream) SetRawBytes(data []byte) {
	s.raw = data
	s.cached = nil
	s.have = false
}

// Decode returns the fully filtered (and, for encrypted documents,
// decrypted) stream contents, applying C4 then C2 in that order. The
// result is cached; call SetRawBytes to invalidate it.
func (s *Stream) Decode() ([]byte, error) {
	if s.have {
		return s.cached, nil
	}
	r, err := DecodeStream(s.owner, s, 0)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &CorruptStreamError{Err: err}
	}
	s.cached = data
	s.have = true
	return data, nil
}
