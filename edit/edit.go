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

// Package edit implements the text editor (C8): instruction-level
// find/replace, delete and insert operations on a content stream. It
// mirrors the interpreter's (C7) Tj/TJ decoding in graphics/interp.go but
// walks the stream with [content.Scanner] instead of a one-shot dispatch
// loop, since a rewrite needs to look at an instruction once to decide a
// match and again to re-serialise it.
package edit

import (
	"strings"

	"github.com/dodeca-labs/pdfcore"
	"github.com/dodeca-labs/pdfcore/font"
)

// Mode selects case sensitivity for a search.
type Mode int

const (
	CaseSensitive Mode = iota
	CaseInsensitive
)

// Result reports how many text-showing instructions an edit touched.
type Result struct {
	Matches int
}

// fontCache resolves and memoises font dictionaries by resource name, the
// same way Interpreter.currentFont does in graphics/interp.go.
type fontCache struct {
	r         pdf.Getter
	resources pdf.Dict
	byName    map[pdf.Name]*font.Dict
}

func newFontCache(r pdf.Getter, resources pdf.Dict) *fontCache {
	return &fontCache{r: r, resources: resources, byName: make(map[pdf.Name]*font.Dict)}
}

func (fc *fontCache) lookup(name pdf.Name) (*font.Dict, error) {
	if fd, ok := fc.byName[name]; ok {
		return fd, nil
	}
	fonts, err := pdf.GetDict(fc.r, fc.resources.Get("Font"))
	if err != nil {
		return nil, err
	}
	ref := fonts.Get(name)
	if ref == nil {
		return nil, errNoFont(name)
	}
	dict, err := pdf.GetDict(fc.r, ref)
	if err != nil {
		return nil, err
	}
	fd, err := font.ExtractDict(fc.r, dict)
	if err != nil {
		return nil, err
	}
	fc.byName[name] = fd
	return fd, nil
}

type errNoFont pdf.Name

func (e errNoFont) Error() string { return "font /" + string(e) + " not found in resources" }

// decodeCodes splits a string operand into character codes, matching
// graphics/interp.go's decodeCodes.
func decodeCodes(s pdf.String, composite bool) []int {
	if !composite {
		codes := make([]int, len(s))
		for i, b := range s {
			codes[i] = int(b)
		}
		return codes
	}
	codes := make([]int, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		codes = append(codes, int(s[i])<<8|int(s[i+1]))
	}
	return codes
}

// decodeText renders a string operand to Unicode text, using the font's
// /ToUnicode CMap where present and falling back to its simple /Encoding
// (same priority as showText in graphics/interp.go).
func decodeText(fd *font.Dict, s pdf.String) string {
	codes := decodeCodes(s, fd.Subtype.IsComposite())
	var text strings.Builder
	for _, c := range codes {
		if fd.ToUnicode != nil {
			if u, ok := fd.ToUnicode.Lookup(uint32(c)); ok {
				text.WriteString(u)
				continue
			}
		}
		if fd.Encoding != nil {
			text.WriteString(fd.Encoding.DecodeUnicode(byte(c)))
		}
	}
	return text.String()
}

// encodeText re-encodes Unicode text into a string operand for fd,
// preferring the reverse of its /ToUnicode CMap and falling back to its
// simple /Encoding. It fails (ok=false) as soon as one rune has no code in
// either table, per the "leave the instruction untouched" rule of §4.8.
func encodeText(fd *font.Dict, text string) (pdf.String, bool) {
	composite := fd.Subtype.IsComposite()
	var out []byte
	for _, r := range text {
		code, ok := uint32(0), false
		if fd.ToUnicode != nil {
			code, ok = fd.ToUnicode.ReverseLookup(string(r))
		}
		if !ok && fd.Encoding != nil {
			var b byte
			b, ok = fd.Encoding.EncodeRune(r)
			code = uint32(b)
		}
		if !ok {
			return nil, false
		}
		if composite {
			out = append(out, byte(code>>8), byte(code))
		} else {
			out = append(out, byte(code))
		}
	}
	return pdf.String(out), true
}

// contains reports whether haystack holds needle, respecting mode.
func contains(haystack, needle string, mode Mode) bool {
	if needle == "" {
		return false
	}
	if mode == CaseInsensitive {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}
	return strings.Contains(haystack, needle)
}

// replaceAll substitutes every occurrence of search in text with replace,
// respecting mode, and reports whether anything changed.
func replaceAll(text, search, replace string, mode Mode) (string, bool) {
	if search == "" {
		return text, false
	}
	if mode == CaseSensitive {
		if !strings.Contains(text, search) {
			return text, false
		}
		return strings.ReplaceAll(text, search, replace), true
	}

	lower := strings.ToLower(text)
	lsearch := strings.ToLower(search)
	if !strings.Contains(lower, lsearch) {
		return text, false
	}
	var out strings.Builder
	rest := text
	restLower := lower
	for {
		i := strings.Index(restLower, lsearch)
		if i < 0 {
			out.WriteString(rest)
			break
		}
		out.WriteString(rest[:i])
		out.WriteString(replace)
		rest = rest[i+len(search):]
		restLower = restLower[i+len(lsearch):]
	}
	return out.String(), true
}

// trackFont updates the active font name when instr is a Tf operator.
func trackFont(cur *pdf.Name, instr pdf.Instruction) {
	if instr.Operator != "Tf" || len(instr.Operands) < 2 {
		return
	}
	if n, ok := instr.Operands[0].(pdf.Name); ok {
		*cur = n
	}
}
