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
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("string wrongly formatted, expected %q but got %q", test.out, out)
		}
	}
}

func parseStringLiteral(t *testing.T, in string) String {
	t.Helper()
	lx := NewLexer(NewSourceBytes([]byte(in)))
	tok, err := lx.nextToken()
	if err != nil {
		t.Fatalf("%q: %s", in, err)
	}
	return String(tok.str)
}

func TestStringParse(t *testing.T) {
	cases := []struct {
		in  string
		out String
	}{
		{`()`, String(nil)},
		{"(test string)", String("test string")},
		{`(hello)`, String("hello")},
		{`(he(ll)o)`, String("he(ll)o")},
		{`(he\)ll\(o)`, String("he)ll(o")},
		{"(hello\n)", String("hello\n")},
		{`(h\145llo)`, String("hello")},
		{`(\0612)`, String("12")},
		{"<>", String(nil)},
		{"<68656c6c6f>", String("hello")},
		{"<68656C6C6F>", String("hello")},
		{"<68 65 6C 6C 6F>", String("hello")},
		{"<68656C70>", String("help")},
	}
	for i, test := range cases {
		out := parseStringLiteral(t, test.in)
		if !bytes.Equal(out, test.out) {
			t.Errorf("%d wrong string: %q != %q", i, out, test.out)
		}
	}
}

func TestStringFormat(t *testing.T) {
	cases := []struct {
		in  String
		out string
	}{
		{String(nil), "()"},
		{String("test string"), "(test string)"},
		{String("hello"), "(hello)"},
		{String("he(ll)o"), "(he(ll)o)"},
		{String("he)ll(o"), "(he\\)ll\\(o)"},
		{String("hello\n"), "(hello\n)"},
		{String("hello\r"), "(hello\\r)"},
	}
	buf := &bytes.Buffer{}
	for i, test := range cases {
		buf.Reset()
		if err := test.in.PDF(buf); err != nil {
			t.Errorf("%d: %q: %s", i, test.in, err)
		} else if buf.String() != test.out {
			t.Errorf("%d: wrong string: %q != %q", i, buf.String(), test.out)
		}
	}
}

func FuzzLiteralString(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABC"))
	f.Add([]byte{0, 1, 2})
	f.Add([]byte{0xFF, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		s1 := String(data)
		enc := Format(s1)
		s2 := parseStringLiteral(t, enc)
		if !bytes.Equal(s1, s2) {
			t.Errorf("wrong string: %q -> %q -> %q", s1, enc, s2)
		}
	})
}

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"\000\011\n\f\r",
		"ein Bär",
		"中文",
		"日本語",
	}
	for _, test := range cases {
		enc := TextString(test)
		out := enc.AsString().AsTextString()
		if out != TextString(test) {
			t.Errorf("wrong text: %q != %q", out, test)
		}
	}
}

func TestDateString(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	cases := []time.Time{
		time.Date(1998, 12, 23, 19, 52, 0, 0, PST),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)),
	}
	for _, test := range cases {
		enc := Date(test)
		out, err := enc.AsString().AsDate()
		if err != nil {
			t.Error(err)
		} else if !test.Equal(time.Time(out)) {
			t.Errorf("wrong time: %s != %s", time.Time(out), test)
		}
	}
}

func TestDecodeDate(t *testing.T) {
	cases := []string{
		"D:19981223195200-08'00'",
		"D:20000101000000Z",
		"D:20201224163012+01'30'",
		"D:20010809191510 ",
	}
	for i, test := range cases {
		if _, err := String(test).AsDate(); err != nil {
			t.Errorf("%d %q %s\n", i, test, err)
		}
	}
}

func TestDictDropsNull(t *testing.T) {
	d := NewDict()
	d.Set("good", Name("value"))
	d.Set("bad", nil)
	buf := &bytes.Buffer{}
	if err := d.PDF(buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "bad") {
		t.Error("nil entry in dict")
	}
}

func TestPlaceholder(t *testing.T) {
	const testVal = 12345

	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.pdf")

	w, err := Create(tmpFile, &WriterOptions{Version: V1_7})
	if err != nil {
		t.Fatal(err)
	}
	w.Catalog.Pages = w.Alloc() // pretend we have pages

	length := w.NewPlaceholder(5)
	testRef := w.Alloc()
	d := NewDict()
	d.Set("Test", Boolean(true))
	if err := length.Set(Integer(testVal)); err != nil {
		t.Fatal(err)
	}
	d.Set("Length", length)
	if err := w.Put(testRef, d); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(tmpFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	obj, err := GetDict(r, testRef)
	if err != nil {
		t.Fatal(err)
	}
	lengthOut, err := GetInteger(r, obj.Get("Length"))
	if err != nil {
		t.Fatal(err)
	}
	if lengthOut != testVal {
		t.Errorf("wrong /Length: %d vs %d", lengthOut, testVal)
	}
}
