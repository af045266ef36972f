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

// This file holds the composite PDF data structures built from the
// elementary types in types.go: numbers, text strings, dates, rectangles,
// matrices, the Info dictionary, and the Function/NameTree/NumberTree/
// Action interfaces whose implementations live in sub-packages.

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"math"
	"strings"
	"time"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/geom/matrix"
)

// Number is either an Integer or a Real object.
type Number float64

// GetNumber resolves obj and returns it as a Number; the PDF null object
// decodes to 0.
func GetNumber(r Getter, obj Object) (Number, error) {
	obj, err := Resolve(r, obj)
	if err != nil {
		return 0, err
	}
	switch x := obj.(type) {
	case Integer:
		return Number(x), nil
	case Real:
		return Number(x), nil
	case nil:
		return 0, nil
	default:
		return 0, &MalformedFileError{Err: fmt.Errorf("expected Number but got %T", obj)}
	}
}

// PDF writes x as an Integer token if it has no fractional part, a Real
// token otherwise.
func (x Number) PDF(w io.Writer) error {
	if i := Integer(x); Number(i) == x {
		return i.PDF(w)
	}
	return Real(x).PDF(w)
}

// TextString is the decoded Unicode content of a PDF "text string"
// (§7.9.2.2): PDFDocEncoding, UTF-16BE with a BOM, or UTF-8 with a BOM.
type TextString string

// GetTextString resolves obj and decodes it as a text string.
func GetTextString(r Getter, obj Object) (TextString, error) {
	s, err := GetString(r, obj)
	if err != nil {
		return "", err
	}
	return s.AsTextString(), nil
}

var utf16Marker = []byte{254, 255}
var utf8Marker = []byte{239, 187, 191}

// AsString encodes s as a PDF string object, preferring PDFDocEncoding
// (smallest), falling back to UTF-16BE with a byte-order mark. The fallback
// is also used when the single-byte form would itself start with a UTF-8
// or UTF-16 byte-order mark.
func (s TextString) AsString() String {
	if buf, ok := PDFDocEncode(string(s)); ok &&
		!bytes.HasPrefix(buf, utf16Marker) && !bytes.HasPrefix(buf, utf8Marker) {
		return String(buf)
	}
	var units = []uint16{0xFEFF}
	for _, r := range s {
		units = utf16.AppendRune(units, r)
	}
	out := make(String, 0, 2*len(units))
	for _, x := range units {
		out = append(out, byte(x>>8), byte(x))
	}
	return out
}

func (x String) AsTextString() TextString {
	b := []byte(x)
	var s string
	switch {
	case bytes.HasPrefix(b, utf16Marker):
		units := make([]uint16, 0, (len(b)-2)/2)
		for i := 2; i+1 < len(b); i += 2 {
			units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
		}
		s = string(utf16.Decode(units))
	case bytes.HasPrefix(b, utf8Marker):
		s = string(b[3:])
	default:
		s = PDFDocDecode(b)
	}
	return TextString(s)
}

func (x Name) AsTextString() TextString { return TextString(x) }

// PDFDocEncode encodes s as a single-byte string for use as a PDF text
// string, returning ok=false if s contains a character with no single-byte
// form. Code points below 0x80 are copied unchanged; all others go through
// golang.org/x/text's Windows-1252 table, which agrees with PDFDocEncoding
// on most of the upper half. The PDFDocEncoding-specific glyphs in
// 0x18-0x1F, and the positions in 0x80-0x9F where PDFDocEncoding differs
// from Windows-1252, are not mapped.
func PDFDocEncode(s string) ([]byte, bool) {
	buf := make([]byte, 0, len(s))
	enc := charmap.Windows1252.NewEncoder()
	for _, r := range s {
		if r < 0x80 {
			buf = append(buf, byte(r))
			continue
		}
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil || len(b) != 1 {
			return nil, false
		}
		buf = append(buf, b[0])
	}
	return buf, true
}

// PDFDocDecode decodes a single-byte text string with the same Windows-1252
// table that PDFDocEncode uses.
func PDFDocDecode(b []byte) string {
	dec := charmap.Windows1252.NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// Date is a PDF date string (§7.9.4), e.g. "D:19990209153925-08'00".
type Date time.Time

// Now returns the current time as a Date, truncated to whole seconds (the
// resolution of a PDF date string).
func Now() Date { return Date(time.Now().Truncate(time.Second)) }

func (d Date) String() string  { return time.Time(d).Format(time.RFC3339) }
func (d Date) IsZero() bool    { return time.Time(d).IsZero() }
func (d Date) Equal(o Date) bool { return time.Time(d).Equal(time.Time(o)) }

// GetDate resolves obj and parses it as a PDF date string.
func GetDate(r Getter, obj Object) (Date, error) {
	var zero Date
	s, err := GetString(r, obj)
	if err != nil {
		return zero, err
	}
	return s.AsDate()
}

// AsString encodes d in the canonical "D:YYYYMMDDHHmmSS+HH'mm" form.
func (d Date) AsString() String {
	s := time.Time(d).Format("D:20060102150405-0700")
	k := len(s) - 2
	return String(s[:k] + "'" + s[k:])
}

// AsDate parses a PDF date string, tolerating the various truncated forms
// real-world producers emit.
func (x String) AsDate() (Date, error) {
	var zero Date
	s := strings.TrimSpace(string(x.AsTextString()))
	s = strings.ReplaceAll(s, "'", "")
	if s == "D:" || s == "" {
		return zero, nil
	}
	if strings.HasPrefix(s, "19") || strings.HasPrefix(s, "20") {
		s = "D:" + s
	}

	formats := []string{
		"D:20060102150405-0700", "D:20060102150405-07",
		"D:20060102150405Z0000", "D:20060102150405Z00", "D:20060102150405Z",
		"D:20060102150405",
		"D:200601021504-0700", "D:200601021504-07",
		"D:200601021504Z0000", "D:200601021504Z00", "D:200601021504Z",
		"D:200601021504",
		"D:2006010215", "D:20060102", "D:200601", "D:2006",
		time.ANSIC,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return Date(t.Truncate(time.Second)), nil
		}
	}
	return zero, errNoDate
}

// Rectangle is a PDF rectangle (§7.9.5), normalized so LLx<=URx, LLy<=URy.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

func (r *Rectangle) Dx() float64 { return r.URx - r.LLx }
func (r *Rectangle) Dy() float64 { return r.URy - r.LLy }

// GetRectangle resolves obj and converts it to a Rectangle; a null object
// returns (nil, nil).
func GetRectangle(r Getter, obj Object) (*Rectangle, error) {
	a, err := GetArray(r, obj)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return asRectangle(r, a)
}

func asRectangle(r Getter, a Array) (*Rectangle, error) {
	if len(a) != 4 {
		return nil, errNoRectangle
	}
	values, err := GetFloatArray(r, a)
	if err != nil {
		return nil, err
	}
	if len(values) != 4 {
		return nil, errNoRectangle
	}
	return &Rectangle{
		LLx: math.Min(values[0], values[2]),
		LLy: math.Min(values[1], values[3]),
		URx: math.Max(values[0], values[2]),
		URy: math.Max(values[1], values[3]),
	}, nil
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.LLx, r.LLy, r.URx, r.URy)
}

// PDF writes the rectangle as a 4-element Array.
func (r *Rectangle) PDF(w io.Writer) error {
	a := Array{Real(r.LLx), Real(r.LLy), Real(r.URx), Real(r.URy)}
	return a.PDF(w)
}

func (r Rectangle) IsZero() bool {
	return r.LLx == 0 && r.LLy == 0 && r.URx == 0 && r.URy == 0
}

func (r *Rectangle) Equal(other *Rectangle) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.LLx == other.LLx && r.LLy == other.LLy && r.URx == other.URx && r.URy == other.URy
}

// Extend enlarges r so that it also covers other.
func (r *Rectangle) Extend(other *Rectangle) {
	if other.IsZero() {
		return
	}
	if r.IsZero() {
		*r = *other
		return
	}
	if other.LLx < r.LLx {
		r.LLx = other.LLx
	}
	if other.LLy < r.LLy {
		r.LLy = other.LLy
	}
	if other.URx > r.URx {
		r.URx = other.URx
	}
	if other.URy > r.URy {
		r.URy = other.URy
	}
}

// GetMatrix resolves obj and converts the 6-element array to a 2D affine
// matrix, used for the content stream's `cm`/text matrices (C7).
func GetMatrix(r Getter, obj Object) (matrix.Matrix, error) {
	a, err := GetFloatArray(r, obj)
	if err != nil {
		return matrix.Matrix{}, err
	}
	if len(a) != 6 {
		return matrix.Matrix{}, &MalformedFileError{Err: fmt.Errorf("expected 6 numbers, got %d", len(a))}
	}
	var m matrix.Matrix
	copy(m[:], a)
	return m, nil
}

// Info is a PDF Document Information Dictionary (§14.3.3). All fields are
// optional.
type Info struct {
	Title    TextString
	Author   TextString
	Subject  TextString
	Keywords TextString

	Creator  TextString
	Producer TextString

	CreationDate Date
	ModDate      Date

	// Trapped: "True", "False" or "Unknown"/absent.
	Trapped Name

	// Custom holds non-standard keys, preserved verbatim as text strings.
	Custom map[string]TextString
}

func (info *Info) isEmpty() bool {
	if info == nil {
		return true
	}
	return info.Title == "" && info.Author == "" && info.Subject == "" &&
		info.Keywords == "" && info.Creator == "" && info.Producer == "" &&
		info.CreationDate.IsZero() && info.ModDate.IsZero() &&
		info.Trapped == "" && len(info.Custom) == 0
}

// AsDict encodes the Info dictionary for writing (C10).
func (info *Info) AsDict() Dict {
	d := NewDict()
	put := func(key Name, s TextString) {
		if s != "" {
			d.Set(key, s.AsString())
		}
	}
	put("Title", info.Title)
	put("Author", info.Author)
	put("Subject", info.Subject)
	put("Keywords", info.Keywords)
	put("Creator", info.Creator)
	put("Producer", info.Producer)
	if !info.CreationDate.IsZero() {
		d.Set("CreationDate", info.CreationDate.AsString())
	}
	if !info.ModDate.IsZero() {
		d.Set("ModDate", info.ModDate.AsString())
	}
	if info.Trapped != "" {
		d.Set("Trapped", info.Trapped)
	}
	for k, v := range info.Custom {
		d.Set(Name(k), v.AsString())
	}
	return d
}

// ExtractInfo decodes the Info dictionary pointed to by obj.
func ExtractInfo(r Getter, obj Object) (*Info, error) {
	d, err := GetDict(r, obj)
	if err != nil {
		return nil, err
	}
	info := &Info{Custom: map[string]TextString{}}
	if d.Len() == 0 {
		return info, nil
	}
	std := map[Name]*TextString{
		"Title": &info.Title, "Author": &info.Author, "Subject": &info.Subject,
		"Keywords": &info.Keywords, "Creator": &info.Creator, "Producer": &info.Producer,
	}
	for _, key := range d.Keys() {
		switch key {
		case "CreationDate":
			info.CreationDate, _ = GetDate(r, d.Get(key))
		case "ModDate":
			info.ModDate, _ = GetDate(r, d.Get(key))
		case "Trapped":
			info.Trapped, _ = GetName(r, d.Get(key))
		default:
			if dst, ok := std[key]; ok {
				*dst, _ = GetTextString(r, d.Get(key))
			} else if s, err := GetTextString(r, d.Get(key)); err == nil {
				info.Custom[string(key)] = s
			}
		}
	}
	return info, nil
}

// Function is a PDF function object (C9; evaluators for types 0/2/3/4 live
// in pdf/function). Apply writes its output into result, which the caller
// sizes to the function's output arity (the second value from Shape) —
// this avoids an allocation per evaluation on the hot path through the
// content-stream interpreter's color and shading operators.
type Function interface {
	FunctionType() int
	Shape() (m, n int)
	Domain() []float64
	Apply(result []float64, inputs ...float64)
}

// NumberTree is a PDF number tree (§7.9.7), e.g. a page-label tree.
type NumberTree interface {
	Lookup(key Integer) (Object, error)
	All() iter.Seq2[Integer, Object]
}

// NameTree is a PDF name tree (§7.9.6), e.g. the /Dests name tree.
type NameTree interface {
	Lookup(key Name) (Object, error)
	All() iter.Seq2[Name, Object]
}

// Action is a PDF action dictionary (§12.6).
type Action interface {
	ActionType() Name
	Next() []Object
	Object
}

// Round rounds x to the given number of decimal places.
func Round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}
