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
	"testing"
	"time"
)

func TestTextStringGet(t *testing.T) {
	tests := []struct {
		name    string
		input   Object
		want    TextString
		wantErr bool
	}{
		{name: "PDFDocEncoded string", input: String("Hello, World!"), want: "Hello, World!"},
		{name: "UTF-16BE string", input: String("\xFE\xFF\x00H\x00e\x00l\x00l\x00o"), want: "Hello"},
		{name: "UTF-8 string", input: String("\xEF\xBB\xBFHello"), want: "Hello"},
		{name: "Empty string", input: String(""), want: ""},
		{name: "special characters", input: String("Line 1\nLine 2\tTabbed"), want: "Line 1\nLine 2\tTabbed"},
		{name: "Invalid object type", input: Integer(42), wantErr: true},
		{name: "Nil object", input: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetTextString(nil, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetTextString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetTextString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextStringRoundtrip(t *testing.T) {
	tests := []TextString{
		"",
		"hello",
		"ein Bär",
		"o țesătură",
		"中文",
		"日本語",
		"\x00\x09\n\x0c\r",
		"Hello, 世界!",
		TextString(PDFDocDecode(utf8Marker)),
		TextString(PDFDocDecode(utf16Marker)),
	}

	for _, text := range tests {
		t.Run(string(text), func(t *testing.T) {
			enc := text.AsString()
			out := enc.AsTextString()
			if out != text {
				t.Errorf("roundtrip failed for %q:\nencoded: % x\ndecoded: %q", text, enc, out)
			}
		})
	}
}

func TestDateStringRoundtrip(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	cases := []time.Time{
		time.Date(1998, 12, 23, 19, 52, 0, 0, PST),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)),
	}
	for _, t1 := range cases {
		enc := Date(t1).AsString()
		out, err := enc.AsDate()
		if err != nil {
			t.Error(err)
			continue
		}
		if t2 := time.Time(out); !t1.Equal(t2) {
			t.Errorf("wrong time: %s != %s", t2, t1)
		}
	}
}

func TestDecodeDateTolerant(t *testing.T) {
	cases := []string{
		"D:19981223195200-08'00'",
		"D:20000101000000Z",
		"D:20201224163012+01'30'",
		"D:20010809191510 ", // trailing space, seen in some PDF files
	}
	for i, test := range cases {
		if _, err := String(test).AsDate(); err != nil {
			t.Errorf("%d %q %s\n", i, test, err)
		}
	}
}

func TestRectangleRoundTrip(t *testing.T) {
	cases := []*Rectangle{
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{0.5, 1.5, 2.5, 3.5},
	}
	for _, test := range cases {
		t.Run(test.String(), func(t *testing.T) {
			buf := Format(test)
			lx := NewLexer(NewSourceBytes([]byte(buf)))
			p := newObjectParser(lx)
			obj, err := p.nextObject()
			if err != nil {
				t.Fatal(err)
			}
			rect, err := asRectangle(nil, obj.(Array))
			if err != nil {
				t.Fatal(err)
			}
			if !rect.Equal(test) {
				t.Errorf("got %v, want %v", rect, test)
			}
		})
	}
}

func TestRectangleExtend(t *testing.T) {
	r := &Rectangle{}
	r.Extend(&Rectangle{LLx: 1, LLy: 2, URx: 3, URy: 4})
	r.Extend(&Rectangle{LLx: -1, LLy: 0, URx: 2, URy: 10})
	want := &Rectangle{LLx: -1, LLy: 0, URx: 3, URy: 10}
	if !r.Equal(want) {
		t.Errorf("got %v, want %v", r, want)
	}
}

func TestInfoRoundTrip(t *testing.T) {
	var nilInfo *Info
	if !nilInfo.isEmpty() {
		t.Error("nil Info should be empty")
	}

	now := Now()
	info1 := &Info{
		Title:        "Test Title",
		Author:       "Jochen Voß",
		Subject:      "unit testing",
		Keywords:     "tests, go, extraction",
		Creator:      "complex_test",
		Producer:     "pdfcore",
		CreationDate: now,
		ModDate:      now,
		Trapped:      "Unknown",
	}
	d := info1.AsDict()
	info2, err := ExtractInfo(nil, d)
	if err != nil {
		t.Fatal(err)
	}

	if info1.Title != info2.Title || info1.Author != info2.Author ||
		info1.Subject != info2.Subject || info1.Keywords != info2.Keywords ||
		info1.Creator != info2.Creator || info1.Producer != info2.Producer ||
		info1.Trapped != info2.Trapped {
		t.Errorf("wrong Info: %+v != %+v", info2, info1)
	}
	if !info1.CreationDate.Equal(info2.CreationDate) {
		t.Errorf("wrong CreationDate: %s != %s", info2.CreationDate, info1.CreationDate)
	}
}

func TestInfoCustomFields(t *testing.T) {
	d := NewDict()
	d.Set("Grumpy", TextString("bärbeißig").AsString())
	d.Set("Funny", TextString("\000\001\002 \\<>'\")(").AsString())

	info, err := ExtractInfo(nil, d)
	if err != nil {
		t.Fatal(err)
	}
	if len(info.Custom) != 2 {
		t.Errorf("wrong Custom: %v", info.Custom)
	}

	d2 := info.AsDict()
	if d2.Len() != d.Len() {
		t.Fatalf("wrong d2: %s", Format(d2))
	}
}
