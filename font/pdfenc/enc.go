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

package pdfenc

// An Encoding is a mapping from single byte codes to glyph names.
type Encoding struct {
	Encoding [256]string
	Has      map[string]bool

	// IsZapf marks the ZapfDingbats built-in encoding, whose glyph names
	// resolve through a dingbats-specific table rather than the Adobe
	// Glyph List (§D.6).
	IsZapf bool
}

func hasSet(enc [256]string) map[string]bool {
	has := make(map[string]bool)
	for _, name := range enc {
		if name == "" || name == ".notdef" {
			continue
		}
		has[name] = true
	}
	return has
}

func makeEncoding(enc [256]string) Encoding {
	return Encoding{Encoding: enc, Has: hasSet(enc)}
}

// Standard is the Adobe Standard Encoding for Latin text.
//
// See Appendix D.2 of PDF 32000-1:2008.
var Standard = makeEncoding(StandardEncoding)

// WinAnsi is the PDF version of the standard Microsoft Windows specific
// encoding for Latin text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var WinAnsi = makeEncoding(WinAnsiEncoding)

// MacRoman is the PDF version of the MacOS standard encoding for Latin
// text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var MacRoman = makeEncoding(MacRomanEncoding)

// MacExpert is an encoding which contains more obscure characters.
//
// See Appendix D.4 of PDF 32000-1:2008.
var MacExpert = makeEncoding(MacExpertEncoding)

// Symbol is the built-in encoding for the Symbol font.
//
// See Appendix D.5 of PDF 32000-1:2008.
var Symbol = makeEncoding(SymbolEncoding)

// ZapfDingbats is the built-in encoding of the ZapfDingbats font.
//
// See Appendix D.6 of PDF 32000-1:2008.
var ZapfDingbats = func() Encoding {
	e := makeEncoding(ZapfDingbatsEncoding)
	e.IsZapf = true
	return e
}()

// PDFDoc is an encoding for text strings in a PDF document outside the
// document's content streams.
//
// See Appendix D.2 of PDF 32000-1:2008.
var PDFDoc = makeEncoding(PDFDocEncoding)
