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
	"iter"
)

// inheritableKeys are the /Pages node attributes that descend to Kids that
// don't set their own value (§7.7.3.4 Table 30).
var inheritableKeys = []Name{"Resources", "MediaBox", "CropBox", "Rotate"}

// Pages walks /Root/Pages depth-first, skipping null subtrees, and yields
// each leaf Page node's dictionary together with its Reference (C5, §4.5).
// Cycles (a Kid referencing an ancestor) are broken by tracking visited
// references; a cyclic tree yields its nodes once each and then stops.
func Pages(r Getter, catalog *Catalog) iter.Seq2[Reference, Dict] {
	return func(yield func(Reference, Dict) bool) {
		seen := make(map[Reference]bool)
		var walk func(ref Reference) bool
		walk = func(ref Reference) bool {
			if ref == 0 || seen[ref] {
				return true
			}
			seen[ref] = true
			dict, err := GetDict(r, ref)
			if err != nil || dict.Len() == 0 {
				return true
			}
			typ, _ := GetName(r, dict.Get("Type"))
			if typ == "Pages" {
				kids, err := GetArray(r, dict.Get("Kids"))
				if err != nil {
					return true
				}
				for _, kid := range kids {
					kidRef, ok := kid.(Reference)
					if !ok {
						continue
					}
					if !walk(kidRef) {
						return false
					}
				}
				return true
			}
			return yield(ref, dict)
		}
		walk(catalog.Pages)
	}
}

// PageInherited returns the first non-null value for name (one of
// Resources, MediaBox, CropBox, Rotate) found at page or the nearest
// ancestor /Pages node that sets it (§7.7.3.4).
func PageInherited(r Getter, page Dict, name Name) (Object, error) {
	node := page
	seen := make(map[Reference]bool)
	for {
		if v := node.Get(name); v != nil {
			return Resolve(r, v)
		}
		parentRef, ok := node.Get("Parent").(Reference)
		if !ok || parentRef == 0 || seen[parentRef] {
			return nil, nil
		}
		seen[parentRef] = true
		parent, err := GetDict(r, parentRef)
		if err != nil {
			return nil, err
		}
		node = parent
	}
}

// PageContents returns the ordered, resolved content streams of a page
// (§7.8.2): a single stream, or the concatenation implied by an array of
// streams.
func PageContents(r Getter, page Dict) ([]*Stream, error) {
	obj := page.Get("Contents")
	resolved, err := Resolve(r, obj)
	if err != nil {
		return nil, err
	}
	switch v := resolved.(type) {
	case nil:
		return nil, nil
	case *Stream:
		return []*Stream{v}, nil
	case Array:
		out := make([]*Stream, 0, len(v))
		for _, item := range v {
			s, err := GetStream(r, item)
			if err != nil {
				return nil, err
			}
			if s != nil {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return nil, &MalformedFileError{Err: errors.New("page /Contents has unexpected type")}
	}
}

// pageResourceCategories lists the subdictionaries of a Resources dict
// that PageResources merges independently (§7.8.3 Table 33).
var pageResourceCategories = []Name{"Font", "XObject", "ColorSpace", "Pattern", "Shading", "ExtGState", "Properties"}

// PageResources walks page's ancestor chain and merges each /Resources
// dictionary's subdictionaries by first-writer-wins per subkey: an entry
// set by a closer ancestor (the page itself first) shadows the same key
// inherited from further up the tree (§7.8.3, C5 "page_resources").
func PageResources(r Getter, page Dict) (Dict, error) {
	merged := NewDict()
	mergedSub := make(map[Name]Dict, len(pageResourceCategories))

	node := page
	seen := make(map[Reference]bool)
	for {
		if resObj := node.Get("Resources"); resObj != nil {
			resDict, err := GetDict(r, resObj)
			if err != nil {
				return Dict{}, err
			}
			for _, cat := range pageResourceCategories {
				sub, err := GetDict(r, resDict.Get(cat))
				if err != nil || sub.Len() == 0 {
					continue
				}
				dst, ok := mergedSub[cat]
				if !ok {
					dst = NewDict()
					mergedSub[cat] = dst
				}
				for _, key := range sub.Keys() {
					if !dst.Has(key) {
						dst.Set(key, sub.Get(key))
					}
				}
			}
		}

		parentRef, ok := node.Get("Parent").(Reference)
		if !ok || parentRef == 0 || seen[parentRef] {
			break
		}
		seen[parentRef] = true
		parent, err := GetDict(r, parentRef)
		if err != nil {
			return Dict{}, err
		}
		node = parent
	}

	for _, cat := range pageResourceCategories {
		if sub, ok := mergedSub[cat]; ok {
			merged.Set(cat, sub)
		}
	}
	return merged, nil
}
