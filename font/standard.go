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
	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/font/pdfenc"
)

// StandardNames lists the 14 standard PDF fonts (§9.6.2.2, Table 111)
// that a conforming reader must support without an embedded font file.
var StandardNames = map[pdf.Name]bool{
	"Times-Roman": true, "Times-Bold": true, "Times-Italic": true, "Times-BoldItalic": true,
	"Helvetica": true, "Helvetica-Bold": true, "Helvetica-Oblique": true, "Helvetica-BoldOblique": true,
	"Courier": true, "Courier-Bold": true, "Courier-Oblique": true, "Courier-BoldOblique": true,
	"Symbol": true, "ZapfDingbats": true,
}

// standardWidths holds Adobe AFM advance widths (1000 unit em) keyed by
// glyph name, for the subset of glyph names in the Standard/WinAnsi
// encodings that Helvetica/Times-Roman/Symbol/ZapfDingbats actually use.
// Courier and its bold/oblique variants are fixed-pitch at 600 units and
// need no table. Width data for the remaining Times/Helvetica bold and
// italic variants is not included here (see DESIGN.md): a complete AFM
// table set is ~14000 entries, out of proportion to this core's scope.
var standardWidths = map[pdf.Name]map[string]float64{
	"Helvetica": helveticaWidths,
	"Times-Roman": timesRomanWidths,
}

// NewStandardFont builds a simple font dictionary for one of the 14
// standard fonts, with no FontDescriptor (none is required for these,
// §9.6.2.2) and a WinAnsi-based simple encoding.
func NewStandardFont(name pdf.Name) (*Dict, error) {
	if !StandardNames[name] {
		return nil, errUnknownStandardFont(name)
	}

	fd := &Dict{
		Subtype:   Type1,
		BaseFont:  name,
		FirstChar: 32,
		LastChar:  255,
	}

	switch name {
	case "Symbol":
		fd.Encoding = NewEncoding("", pdfenc.Symbol)
	case "ZapfDingbats":
		fd.Encoding = NewEncoding("", pdfenc.ZapfDingbats)
	default:
		fd.Encoding = NewEncoding("WinAnsiEncoding", pdfenc.WinAnsi)
	}

	widths := make([]float64, fd.LastChar-fd.FirstChar+1)
	table, hasTable := standardWidths[name]
	fixedPitch := name == "Courier" || name == "Courier-Bold" || name == "Courier-Oblique" || name == "Courier-BoldOblique"
	for code := fd.FirstChar; code <= fd.LastChar; code++ {
		switch {
		case fixedPitch:
			widths[code-fd.FirstChar] = 600
		case hasTable:
			if glyphName := fd.Encoding.Decode(byte(code)); glyphName != "" {
				widths[code-fd.FirstChar] = table[glyphName]
			}
		default:
			widths[code-fd.FirstChar] = 600
		}
	}
	fd.Widths = widths
	fd.MissingWidth = 0

	return fd, nil
}

type errUnknownStandardFont pdf.Name

func (e errUnknownStandardFont) Error() string {
	return "not a standard 14 font: " + string(e)
}
