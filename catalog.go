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
	"errors"

	"golang.org/x/text/language"
)

// Catalog represents a PDF document catalog (§7.7.2, C5). The only field a
// freshly-constructed document needs to set before Writer.Close is Pages.
type Catalog struct {
	Version Version

	Pages Reference

	Names          Object
	Dests          Object
	Outlines       Reference
	Threads        Reference
	OpenAction     Object
	PageLayout     Name
	PageMode       Name
	AcroForm       Object
	Metadata       Reference
	StructTreeRoot Object
	MarkInfo       Object
	Lang           language.Tag
	OCProperties   Object
}

// ExtractCatalog decodes the document catalog pointed to by obj (C5).
func ExtractCatalog(r Getter, obj Object) (*Catalog, error) {
	dict, err := GetDictTyped(r, obj, "Catalog")
	if err != nil {
		return nil, err
	}
	if dict.Len() == 0 {
		return nil, &MalformedFileError{Err: errors.New("catalog dictionary is missing")}
	}

	pages, _ := dict.Get("Pages").(Reference)
	if pages == 0 {
		return nil, &MalformedFileError{Err: errors.New("required field Pages is missing")}
	}

	pageLayout, _ := GetName(r, dict.Get("PageLayout"))
	pageMode, _ := GetName(r, dict.Get("PageMode"))
	outlines, _ := dict.Get("Outlines").(Reference)
	threads, _ := dict.Get("Threads").(Reference)
	metadata, _ := dict.Get("Metadata").(Reference)

	var lang language.Tag
	if langObj := dict.Get("Lang"); langObj != nil {
		if s, err := GetString(r, langObj); err == nil && len(s) > 0 {
			lang, _ = language.Parse(string(s))
		}
	}

	return &Catalog{
		Pages:          pages,
		Names:          dict.Get("Names"),
		Dests:          dict.Get("Dests"),
		Outlines:       outlines,
		Threads:        threads,
		OpenAction:     dict.Get("OpenAction"),
		PageLayout:     pageLayout,
		PageMode:       pageMode,
		AcroForm:       dict.Get("AcroForm"),
		Metadata:       metadata,
		StructTreeRoot: dict.Get("StructTreeRoot"),
		MarkInfo:       dict.Get("MarkInfo"),
		Lang:           lang,
		OCProperties:   dict.Get("OCProperties"),
	}, nil
}

// AsDict encodes the catalog for writing (C10).
func (c *Catalog) AsDict() Dict {
	d := NewDict()
	d.Set("Type", Name("Catalog"))
	d.Set("Pages", c.Pages)
	if c.Names != nil {
		d.Set("Names", c.Names)
	}
	if c.Dests != nil {
		d.Set("Dests", c.Dests)
	}
	if c.Outlines != 0 {
		d.Set("Outlines", c.Outlines)
	}
	if c.Threads != 0 {
		d.Set("Threads", c.Threads)
	}
	if c.OpenAction != nil {
		d.Set("OpenAction", c.OpenAction)
	}
	if c.PageLayout != "" {
		d.Set("PageLayout", c.PageLayout)
	}
	if c.PageMode != "" {
		d.Set("PageMode", c.PageMode)
	}
	if c.AcroForm != nil {
		d.Set("AcroForm", c.AcroForm)
	}
	if c.Metadata != 0 {
		d.Set("Metadata", c.Metadata)
	}
	if c.StructTreeRoot != nil {
		d.Set("StructTreeRoot", c.StructTreeRoot)
	}
	if c.MarkInfo != nil {
		d.Set("MarkInfo", c.MarkInfo)
	}
	if tag := c.Lang.String(); tag != "" && tag != "und" {
		d.Set("Lang", String(tag))
	}
	if c.OCProperties != nil {
		d.Set("OCProperties", c.OCProperties)
	}
	return d
}
