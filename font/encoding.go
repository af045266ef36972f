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

package font

import (
	"slices"

	"seehuhn.de/go/postscript/type1/names"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/font/pdfenc"
)

// Encoding is a simple font's code-to-glyph-name table: a base encoding
// (possibly the font's built-in one) overlaid with a /Differences array
// (§9.6.6).
type Encoding struct {
	base        pdfenc.Encoding
	baseName    pdf.Name
	isZapf      bool
	differences map[byte]string

	reverse map[rune]byte // lazily built by EncodeRune
}

// NewEncoding builds an Encoding from a base table and no differences.
func NewEncoding(baseName pdf.Name, base pdfenc.Encoding) *Encoding {
	return &Encoding{base: base, baseName: baseName, isZapf: base.IsZapf}
}

// Decode returns the glyph name assigned to a character code, or "" if
// none is defined.
func (e *Encoding) Decode(code byte) string {
	if e == nil {
		return ""
	}
	if name, ok := e.differences[code]; ok {
		return name
	}
	return e.base.Encoding[code]
}

// DecodeUnicode returns the Unicode text for a character code, mapping
// its glyph name through the Adobe Glyph List convention (§D.2); used
// by the interpreter (C7) and the text editor (C8) when no ToUnicode
// CMap is present.
func (e *Encoding) DecodeUnicode(code byte) string {
	if e == nil {
		return ""
	}
	name := e.Decode(code)
	if name == "" {
		return ""
	}
	return string(names.ToUnicode(name, e.isZapf))
}

// EncodeRune returns the character code whose decoded Unicode text is the
// single rune u, or false if no code in this encoding maps to it (C8's
// re-encode step when no /ToUnicode CMap does the inverse mapping). The
// reverse index is built lazily from the forward DecodeUnicode table,
// since the codec's dependency (Adobe Glyph List via
// seehuhn.de/go/postscript/type1/names) only offers name->Unicode, not
// the inverse.
func (e *Encoding) EncodeRune(u rune) (byte, bool) {
	if e == nil {
		return 0, false
	}
	if e.reverse == nil {
		e.reverse = make(map[rune]byte)
		for code := 0; code < 256; code++ {
			s := e.DecodeUnicode(byte(code))
			runes := []rune(s)
			if len(runes) != 1 {
				continue
			}
			if _, exists := e.reverse[runes[0]]; !exists {
				e.reverse[runes[0]] = byte(code)
			}
		}
	}
	code, ok := e.reverse[u]
	return code, ok
}

// SetDifference overrides the glyph name for a single code (§9.6.6.2).
func (e *Encoding) SetDifference(code byte, name string) {
	if e.differences == nil {
		e.differences = make(map[byte]string)
	}
	e.differences[code] = name
}

// baseEncodingFor resolves the default base table for a /BaseEncoding name,
// falling back to StandardEncoding (§9.6.6.2). Symbolic fonts named Symbol
// or ZapfDingbats fall back to their built-in table instead; the built-in
// encoding of any other symbolic font is not read, and StandardEncoding is
// used for it.
func baseEncodingFor(name pdf.Name, fd *Dict) (pdf.Name, pdfenc.Encoding) {
	switch name {
	case "WinAnsiEncoding":
		return name, pdfenc.WinAnsi
	case "MacRomanEncoding":
		return name, pdfenc.MacRoman
	case "MacExpertEncoding":
		return name, pdfenc.MacExpert
	case "StandardEncoding":
		return name, pdfenc.Standard
	}
	if fd.Descriptor.IsSymbolic() {
		switch fd.BaseFont {
		case "Symbol":
			return "", pdfenc.Symbol
		case "ZapfDingbats":
			return "", pdfenc.ZapfDingbats
		}
	}
	return "StandardEncoding", pdfenc.Standard
}

// ExtractEncoding decodes a simple font's /Encoding entry, which may be a
// Name, a Dict with /BaseEncoding and /Differences, or absent (§9.6.6).
func ExtractEncoding(r pdf.Getter, obj pdf.Object, fd *Dict) (*Encoding, error) {
	resolved, err := pdf.Resolve(r, obj)
	if err != nil {
		return nil, err
	}

	if name, ok := resolved.(pdf.Name); ok {
		baseName, base := baseEncodingFor(name, fd)
		return NewEncoding(baseName, base), nil
	}

	d, _ := resolved.(pdf.Dict)
	if d.Len() == 0 {
		baseName, base := baseEncodingFor("", fd)
		return NewEncoding(baseName, base), nil
	}

	baseNameObj, _ := pdf.GetName(r, d.Get("BaseEncoding"))
	baseName, base := baseEncodingFor(baseNameObj, fd)
	enc := NewEncoding(baseName, base)

	diffs, err := pdf.GetArray(r, d.Get("Differences"))
	if err != nil {
		return nil, err
	}
	var code byte
	for _, item := range diffs {
		resolvedItem, err := pdf.Resolve(r, item)
		if err != nil {
			return nil, err
		}
		switch v := resolvedItem.(type) {
		case pdf.Integer:
			code = byte(v)
		case pdf.Name:
			enc.SetDifference(code, string(v))
			code++
		}
	}

	return enc, nil
}

// AsObject encodes the encoding as either a bare Name or a Dict with
// /Differences, whichever is needed (§9.6.6).
func (e *Encoding) AsObject() pdf.Object {
	if e == nil {
		return nil
	}
	if len(e.differences) == 0 {
		if e.baseName == "" {
			return nil
		}
		return e.baseName
	}

	d := pdf.NewDict()
	if e.baseName != "" {
		d.Set("BaseEncoding", e.baseName)
	}

	codes := make([]byte, 0, len(e.differences))
	for c := range e.differences {
		codes = append(codes, c)
	}
	slices.Sort(codes)

	arr := make(pdf.Array, 0, 2*len(codes))
	var last int = -2
	for _, c := range codes {
		if int(c) != last+1 {
			arr = append(arr, pdf.Integer(c))
		}
		arr = append(arr, pdf.Name(e.differences[c]))
		last = int(c)
	}
	d.Set("Differences", arr)
	return d
}
