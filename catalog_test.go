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

import "testing"

func TestCatalogRoundTrip(t *testing.T) {
	pRef := NewReference(1, 0)
	cat0 := &Catalog{
		Pages:      pRef,
		PageLayout: "SinglePage",
		PageMode:   "UseOutlines",
	}
	d := cat0.AsDict()

	g := &mockGetter{objs: map[Reference]Object{}}
	cat1, err := ExtractCatalog(g, d)
	if err != nil {
		t.Fatal(err)
	}
	if cat1.Pages != cat0.Pages {
		t.Errorf("wrong Pages: %v != %v", cat1.Pages, cat0.Pages)
	}
	if cat1.PageLayout != cat0.PageLayout || cat1.PageMode != cat0.PageMode {
		t.Errorf("wrong layout/mode: %v/%v != %v/%v",
			cat1.PageLayout, cat1.PageMode, cat0.PageLayout, cat0.PageMode)
	}
}

func TestCatalogMissingPages(t *testing.T) {
	d := NewDict()
	d.Set("Type", Name("Catalog"))
	d.Set("Metadata", NewReference(123, 0))

	g := &mockGetter{objs: map[Reference]Object{}}
	if _, err := ExtractCatalog(g, d); err == nil {
		t.Error("missing Pages not detected")
	}
}

func TestCatalogWriteOmitsEmptyFields(t *testing.T) {
	cat := &Catalog{Pages: NewReference(1, 0)}
	d := cat.AsDict()
	if d.Has("Outlines") || d.Has("OpenAction") || d.Has("AcroForm") {
		t.Errorf("unset optional fields should be omitted: %s", Format(d))
	}
}
