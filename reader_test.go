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
	"strconv"
	"strings"
	"testing"
)

func TestReferenceChain(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := addEmptyPage(w); err != nil {
		t.Fatal(err)
	}
	a := w.Alloc()
	b := w.Alloc()
	if err := w.Put(a, b); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(b, Integer(42)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	x, err := r.Resolve(a)
	if err != nil {
		t.Fatal(err)
	}
	if x != Integer(42) {
		t.Errorf("got %v, want 42", x)
	}
}

func TestReferenceLoop(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := addEmptyPage(w); err != nil {
		t.Fatal(err)
	}
	a := w.Alloc()
	b := w.Alloc()
	if err := w.Put(a, b); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(b, a); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Resolve(a); err == nil {
		t.Error("reference loop not detected")
	}
}

func TestIndirectStreamLength(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := addEmptyPage(w); err != nil {
		t.Fatal(err)
	}

	sLength := w.Alloc()
	sDict := NewDict()
	sDict.Set("Length", sLength)
	sRef := w.Alloc()
	s, err := w.OpenStream(sRef, sDict)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Write([]byte("123456")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(sLength, Integer(6)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	sObj, err := GetStream(r, sRef)
	if err != nil {
		t.Fatal(err)
	}
	sData, err := sObj.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if string(sData) != "123456" {
		t.Errorf("wrong stream data: got %q, want %q", sData, "123456")
	}
}

func TestReaderGoFuzz(t *testing.T) {
	// check that the reader doesn't panic on malformed input
	cases := []string{
		"%PDF-1.0\n0 0obj<startxref8",
		"%PDF-1.0\n0 0obj(startxref8",
		"%PDF-1.0\n0 0obj<</Length -40>>stream\nstartxref8\n",
		"%PDF-1.0\n0 0obj<</ 0 0%startxref8",
	}
	for _, test := range cases {
		buf := strings.NewReader(test)
		_, _ = NewReader(buf, nil)
	}
}

func TestObjectStream(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := addEmptyPage(w); err != nil {
		t.Fatal(err)
	}

	refs := make([]Reference, 9)
	objs := make([]Object, len(refs))
	for i := range refs {
		refs[i] = w.Alloc()
		objs[i] = Name("obj" + strconv.Itoa(i))
	}

	if err := w.Put(refs[1], objs[1]); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteCompressed([]Reference{refs[0], refs[3], refs[6]},
		objs[0], objs[3], objs[6]); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(refs[4], objs[4]); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteCompressed([]Reference{refs[2], refs[5], refs[8]},
		objs[2], objs[5], objs[8]); err != nil {
		t.Fatal(err)
	}
	if err := w.Put(refs[7], objs[7]); err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}

	for i, ref := range refs {
		obj, err := r.Resolve(ref)
		if err != nil {
			t.Fatal(err)
		}
		if obj != objs[i] {
			t.Errorf("%d: got %s, want %s", i, obj, objs[i])
		}
	}
}

func TestReaderClose(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := addEmptyPage(w); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}

func addEmptyPage(w *Writer, kv ...Object) error {
	pRef := w.Alloc()
	ppRef := w.Alloc()

	rect := &Rectangle{URx: 100, URy: 100}

	pageDict := NewDict()
	pageDict.Set("Type", Name("Page"))
	pageDict.Set("Parent", ppRef)
	pageDict.Set("Resources", NewDict())
	pageDict.Set("MediaBox", rect)
	for i := 0; i+1 < len(kv); i += 2 {
		pageDict.Set(kv[i].(Name), kv[i+1])
	}
	if err := w.Put(pRef, pageDict); err != nil {
		return err
	}

	pagesDict := NewDict()
	pagesDict.Set("Type", Name("Pages"))
	pagesDict.Set("Kids", Array{pRef})
	pagesDict.Set("Count", Integer(1))
	if err := w.Put(ppRef, pagesDict); err != nil {
		return err
	}

	w.Catalog.Pages = ppRef
	return nil
}
