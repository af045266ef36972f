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
	"testing"
)

func TestWriter(t *testing.T) {
	out := &bytes.Buffer{}

	opt := &WriterOptions{
		ID:              [][]byte{},
		OwnerPassword:   "test",
		UserPermissions: PermCopy,
	}
	w, err := NewWriter(out, opt)
	if err != nil {
		t.Fatal(err)
	}
	encInfo1 := Format(mustEncDict(t, w.enc, w.Version))

	author := "Jochen Voss"
	w.SetInfo(&Info{
		Title:    "PDF Test Document",
		Author:   TextString(author),
		Subject:  "Testing",
		Keywords: "PDF, testing, Go",
	})

	refs := []Reference{w.Alloc()}
	fontDict := NewDict()
	fontDict.Set("Type", Name("Font"))
	fontDict.Set("Subtype", Name("Type1"))
	fontDict.Set("BaseFont", Name("Helvetica"))
	fontDict.Set("Encoding", Name("MacRomanEncoding"))
	if err := w.WriteCompressed(refs, fontDict); err != nil {
		t.Fatal(err)
	}
	font := refs[0]

	contentNode := w.Alloc()
	stream, err := w.OpenStream(contentNode, NewDict())
	if err != nil {
		t.Fatal(err)
	}
	_, err = stream.Write([]byte(`BT
/F1 24 Tf
30 30 Td
(Hello World) Tj
ET
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := stream.Close(); err != nil {
		t.Fatal(err)
	}

	fontResources := NewDict()
	fontResources.Set("F1", font)
	resources := NewDict()
	resources.Set("Font", fontResources)

	pagesRef := w.Alloc()

	page1 := w.Alloc()
	pageDict := NewDict()
	pageDict.Set("Type", Name("Page"))
	pageDict.Set("MediaBox", Array{Integer(0), Integer(0), Integer(200), Integer(100)})
	pageDict.Set("Resources", resources)
	pageDict.Set("Contents", contentNode)
	pageDict.Set("Parent", pagesRef)
	if err := w.Put(page1, pageDict); err != nil {
		t.Fatal(err)
	}

	pagesDict := NewDict()
	pagesDict.Set("Type", Name("Pages"))
	pagesDict.Set("Kids", Array{page1})
	pagesDict.Set("Count", Integer(1))
	if err := w.Put(pagesRef, pagesDict); err != nil {
		t.Fatal(err)
	}

	w.Catalog.Pages = pagesRef

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	outR := bytes.NewReader(out.Bytes())
	r, err := NewReader(outR, nil)
	if err != nil {
		t.Fatal(err)
	}
	encInfo2 := Format(mustEncDict(t, r.enc, r.meta.Version))

	if encInfo1 != encInfo2 {
		t.Error("encryption dictionaries differ")
	}

	if _, err := r.enc.sec.GetKey(false); err != nil {
		t.Fatal(err)
	}

	info, err := ExtractInfo(r, r.meta.Trailer.Get("Info"))
	if err != nil {
		t.Fatal(err)
	}
	if string(info.Author) != author {
		t.Error("wrong author " + string(info.Author))
	}
}

func mustEncDict(t *testing.T, enc *encryptInfo, ver Version) Dict {
	t.Helper()
	d, err := enc.AsDict(ver)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

type testCloseWriter struct {
	bytes.Buffer
	isClosed bool
}

func (w *testCloseWriter) Close() error {
	w.isClosed = true
	return nil
}

// TestClose tests that the writer does not close the underlying
// io.Writer, unless .closeDownstream is set.
func TestClose(t *testing.T) {
	for _, doClose := range []bool{true, false} {
		w := &testCloseWriter{}
		out, err := NewWriter(w, nil)
		if err != nil {
			t.Fatal(err)
		}
		out.closeDownstream = doClose

		out.Catalog.Pages = out.Alloc() // pretend we have pages

		if err := out.Close(); err != nil {
			t.Fatal(err)
		}

		if doClose != w.isClosed {
			t.Errorf("expected %v, got %v", doClose, w.isClosed)
		}
	}
}

// compile time test
var _ Putter = &Writer{}
