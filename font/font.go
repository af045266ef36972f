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

// Package font implements the PDF font dictionary model (C6): Simple and
// Composite (Type 0) font dictionaries, the FontDescriptor, and width
// lookup for text positioning. A FontDescriptor's FontFile reference and
// its kind are recorded, but embedded TrueType/CFF/Type 1 font programs
// are not read or parsed.
package font

import (
	"errors"
	"fmt"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/font/pdfenc"
)

// Subtype identifies the kind of font dictionary (§9.6/§9.7).
type Subtype pdf.Name

const (
	Type1    Subtype = "Type1"
	TrueType Subtype = "TrueType"
	Type3    Subtype = "Type3"
	Type0    Subtype = "Type0"
	MMType1  Subtype = "MMType1"
)

// IsComposite reports whether a font of this subtype carries a
// CIDFont-based descendant rather than single-byte codes.
func (s Subtype) IsComposite() bool { return s == Type0 }

// Dict is a decoded font resource dictionary (§9.6 for simple fonts, §9.7
// for composite fonts).
type Dict struct {
	Subtype        Subtype
	BaseFont       pdf.Name
	FirstChar      int
	LastChar       int
	Widths         []float64 // simple fonts: Widths[code-FirstChar]
	MissingWidth   float64
	Descriptor     *Descriptor
	Encoding       *Encoding // simple fonts only
	ToUnicode      *ToUnicodeCMap
	DefaultWidth   float64            // composite fonts: /DW
	CIDWidths      map[int]float64    // composite fonts: /W, keyed by CID
	CIDSystemInfo  *CIDSystemInfo     // composite fonts
	CIDToGIDMap    pdf.Name           // composite fonts: the /CIDToGIDMap name; "Identity" if absent or a stream
	Ref            pdf.Reference
}

// Descriptor is a FontDescriptor dictionary (§9.8).
type Descriptor struct {
	FontName     pdf.Name
	Flags        Flags
	FontBBox     *pdf.Rectangle
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	CapHeight    float64
	StemV        float64
	MissingWidth float64
	FontFile     pdf.Reference // FontFile/FontFile2/FontFile3, whichever is set
	FontFileKind pdf.Name      // "FontFile", "FontFile2" or "FontFile3"
}

// Flags is the FontDescriptor /Flags bit field (§9.8.2, Table 123).
type Flags uint32

const (
	FlagFixedPitch  Flags = 1 << 0
	FlagSerif       Flags = 1 << 1
	FlagSymbolic    Flags = 1 << 2
	FlagScript      Flags = 1 << 3
	FlagNonsymbolic Flags = 1 << 5
	FlagItalic      Flags = 1 << 6
	FlagAllCap      Flags = 1 << 16
	FlagSmallCap    Flags = 1 << 17
	FlagForceBold   Flags = 1 << 18
)

// CIDSystemInfo identifies a character collection (§9.7.3).
type CIDSystemInfo struct {
	Registry   string
	Ordering   string
	Supplement int
}

// ExtractDict decodes a font resource dictionary, recursing into its
// FontDescriptor and, for composite fonts, its DescendantFonts entry.
func ExtractDict(r pdf.Getter, obj pdf.Object) (*Dict, error) {
	ref, _ := obj.(pdf.Reference)
	d, err := pdf.GetDictTyped(r, obj, "Font")
	if err != nil {
		return nil, err
	}

	subtype, err := pdf.GetName(r, d.Get("Subtype"))
	if err != nil {
		return nil, err
	}
	baseFont, _ := pdf.GetName(r, d.Get("BaseFont"))

	fd := &Dict{
		Subtype:  Subtype(subtype),
		BaseFont: baseFont,
		Ref:      ref,
	}

	if tu := d.Get("ToUnicode"); tu != nil {
		stm, err := pdf.GetStream(r, tu)
		if err == nil && stm != nil {
			data, err := stm.Decode()
			if err == nil {
				fd.ToUnicode, _ = ParseToUnicodeCMap(data)
			}
		}
	}

	switch fd.Subtype {
	case Type0:
		if err := extractComposite(r, d, fd); err != nil {
			return nil, err
		}
	default:
		if err := extractSimple(r, d, fd); err != nil {
			return nil, err
		}
	}

	return fd, nil
}

func extractSimple(r pdf.Getter, d pdf.Dict, fd *Dict) error {
	firstChar, _ := pdf.GetInteger(r, d.Get("FirstChar"))
	lastChar, _ := pdf.GetInteger(r, d.Get("LastChar"))
	fd.FirstChar = int(firstChar)
	fd.LastChar = int(lastChar)

	if w := d.Get("Widths"); w != nil {
		widths, err := pdf.GetFloatArray(r, w)
		if err != nil {
			return err
		}
		fd.Widths = widths
	}

	if descObj := d.Get("FontDescriptor"); descObj != nil {
		desc, err := ExtractDescriptor(r, descObj)
		if err != nil {
			return err
		}
		fd.Descriptor = desc
		fd.MissingWidth = desc.MissingWidth
	}

	enc, err := ExtractEncoding(r, d.Get("Encoding"), fd)
	if err != nil {
		return err
	}
	fd.Encoding = enc

	return nil
}

func extractComposite(r pdf.Getter, d pdf.Dict, fd *Dict) error {
	descFonts, err := pdf.GetArray(r, d.Get("DescendantFonts"))
	if err != nil {
		return err
	}
	if len(descFonts) != 1 {
		return &pdf.MalformedFileError{Err: errors.New("Type0 font must have exactly one descendant")}
	}
	cd, err := pdf.GetDictTyped(r, descFonts[0], "Font")
	if err != nil {
		return err
	}

	if descObj := cd.Get("FontDescriptor"); descObj != nil {
		desc, err := ExtractDescriptor(r, descObj)
		if err != nil {
			return err
		}
		fd.Descriptor = desc
	}

	dw, err := pdf.GetReal(r, cd.Get("DW"))
	if err == nil && dw != 0 {
		fd.DefaultWidth = float64(dw)
	} else {
		fd.DefaultWidth = 1000
	}

	if wArr, err := pdf.GetArray(r, cd.Get("W")); err == nil && wArr != nil {
		fd.CIDWidths, err = decodeCIDWidths(r, wArr)
		if err != nil {
			return err
		}
	}

	if csi, err := pdf.GetDict(r, cd.Get("CIDSystemInfo")); err == nil && csi.Len() > 0 {
		reg, _ := pdf.GetString(r, csi.Get("Registry"))
		ord, _ := pdf.GetString(r, csi.Get("Ordering"))
		sup, _ := pdf.GetInteger(r, csi.Get("Supplement"))
		fd.CIDSystemInfo = &CIDSystemInfo{
			Registry:   string(reg),
			Ordering:   string(ord),
			Supplement: int(sup),
		}
	}

	if n, _ := pdf.GetName(r, cd.Get("CIDToGIDMap")); n != "" {
		fd.CIDToGIDMap = n
	} else {
		fd.CIDToGIDMap = "Identity"
	}

	return nil
}

// decodeCIDWidths parses the /W array (§9.7.4.3): a sequence of either
// [c [w1 w2 ...]] or [cFirst cLast w] groups.
func decodeCIDWidths(r pdf.Getter, arr pdf.Array) (map[int]float64, error) {
	out := make(map[int]float64)
	i := 0
	for i < len(arr) {
		c1, err := pdf.GetInteger(r, arr[i])
		if err != nil {
			return nil, err
		}
		i++
		if i >= len(arr) {
			break
		}
		if sub, err := pdf.GetArray(r, arr[i]); err == nil && sub != nil {
			for j, wObj := range sub {
				w, err := pdf.GetReal(r, wObj)
				if err != nil {
					return nil, err
				}
				out[int(c1)+j] = float64(w)
			}
			i++
			continue
		}
		c2, err := pdf.GetInteger(r, arr[i])
		if err != nil {
			return nil, err
		}
		i++
		if i >= len(arr) {
			return nil, &pdf.MalformedFileError{Err: errors.New("truncated /W array")}
		}
		w, err := pdf.GetReal(r, arr[i])
		if err != nil {
			return nil, err
		}
		i++
		for c := c1; c <= c2; c++ {
			out[int(c)] = float64(w)
		}
	}
	return out, nil
}

// ExtractDescriptor decodes a FontDescriptor dictionary (§9.8.1).
func ExtractDescriptor(r pdf.Getter, obj pdf.Object) (*Descriptor, error) {
	d, err := pdf.GetDictTyped(r, obj, "FontDescriptor")
	if err != nil {
		return nil, err
	}

	fontName, _ := pdf.GetName(r, d.Get("FontName"))
	flags, _ := pdf.GetInteger(r, d.Get("Flags"))
	italic, _ := pdf.GetReal(r, d.Get("ItalicAngle"))
	ascent, _ := pdf.GetReal(r, d.Get("Ascent"))
	descent, _ := pdf.GetReal(r, d.Get("Descent"))
	capHeight, _ := pdf.GetReal(r, d.Get("CapHeight"))
	stemV, _ := pdf.GetReal(r, d.Get("StemV"))
	missingWidth, _ := pdf.GetReal(r, d.Get("MissingWidth"))
	bbox, _ := pdf.GetRectangle(r, d.Get("FontBBox"))

	desc := &Descriptor{
		FontName:     fontName,
		Flags:        Flags(flags),
		FontBBox:     bbox,
		ItalicAngle:  float64(italic),
		Ascent:       float64(ascent),
		Descent:      float64(descent),
		CapHeight:    float64(capHeight),
		StemV:        float64(stemV),
		MissingWidth: float64(missingWidth),
	}

	for _, kind := range []pdf.Name{"FontFile", "FontFile2", "FontFile3"} {
		if ref, ok := d.Get(kind).(pdf.Reference); ok {
			desc.FontFile = ref
			desc.FontFileKind = kind
			break
		}
	}

	return desc, nil
}

// AsDict encodes the font dictionary for writing (C10).
func (fd *Dict) AsDict() pdf.Dict {
	d := pdf.NewDict()
	d.Set("Type", pdf.Name("Font"))
	d.Set("Subtype", pdf.Name(fd.Subtype))
	d.Set("BaseFont", fd.BaseFont)

	if fd.Subtype != Type0 {
		d.Set("FirstChar", pdf.Integer(fd.FirstChar))
		d.Set("LastChar", pdf.Integer(fd.LastChar))
		if len(fd.Widths) > 0 {
			arr := make(pdf.Array, len(fd.Widths))
			for i, w := range fd.Widths {
				arr[i] = pdf.Real(w)
			}
			d.Set("Widths", arr)
		}
		if fd.Encoding != nil {
			d.Set("Encoding", fd.Encoding.AsObject())
		}
	}

	return d
}

// AsDict encodes the descriptor for writing (C10).
func (desc *Descriptor) AsDict() pdf.Dict {
	d := pdf.NewDict()
	d.Set("Type", pdf.Name("FontDescriptor"))
	d.Set("FontName", desc.FontName)
	d.Set("Flags", pdf.Integer(desc.Flags))
	if desc.FontBBox != nil {
		d.Set("FontBBox", pdf.Array{
			pdf.Real(desc.FontBBox.LLx), pdf.Real(desc.FontBBox.LLy),
			pdf.Real(desc.FontBBox.URx), pdf.Real(desc.FontBBox.URy),
		})
	}
	d.Set("ItalicAngle", pdf.Real(desc.ItalicAngle))
	d.Set("Ascent", pdf.Real(desc.Ascent))
	d.Set("Descent", pdf.Real(desc.Descent))
	d.Set("CapHeight", pdf.Real(desc.CapHeight))
	d.Set("StemV", pdf.Real(desc.StemV))
	if desc.MissingWidth != 0 {
		d.Set("MissingWidth", pdf.Real(desc.MissingWidth))
	}
	if desc.FontFile != 0 && desc.FontFileKind != "" {
		d.Set(desc.FontFileKind, desc.FontFile)
	}
	return d
}

// Width returns the glyph width (in 1000ths of text space units) for the
// given character code, falling back to MissingWidth/DefaultWidth (§9.2.2).
func (fd *Dict) Width(code int) float64 {
	if fd.Subtype == Type0 {
		if w, ok := fd.CIDWidths[code]; ok {
			return w
		}
		return fd.DefaultWidth
	}
	if code >= fd.FirstChar && code-fd.FirstChar < len(fd.Widths) {
		if w := fd.Widths[code-fd.FirstChar]; w != 0 {
			return w
		}
	}
	return fd.MissingWidth
}

// IsSymbolic reports whether the font's built-in encoding should be used
// instead of a Latin-text base encoding (§9.6.6.2).
func (desc *Descriptor) IsSymbolic() bool {
	if desc == nil {
		return false
	}
	return desc.Flags&FlagSymbolic != 0 && desc.Flags&FlagNonsymbolic == 0
}

var errNoGlyphName = errors.New("no glyph name for code")

// GlyphName resolves a character code to a glyph name using the font's
// resolved Encoding, falling back to the Standard encoding.
func (fd *Dict) GlyphName(code int) (string, error) {
	if code < 0 || code > 255 {
		return "", fmt.Errorf("%w: %d", errNoGlyphName, code)
	}
	if fd.Encoding != nil {
		if name := fd.Encoding.Decode(byte(code)); name != "" && name != ".notdef" {
			return name, nil
		}
	}
	if name := pdfenc.Standard.Encoding[code]; name != ".notdef" {
		return name, nil
	}
	return "", fmt.Errorf("%w: %d", errNoGlyphName, code)
}
