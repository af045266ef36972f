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

// OutlineItem is one node of the document outline (bookmark) tree
// (§12.3.3). It is a read-only view: no writer support, since spec.md
// names no bookmark-authoring operation.
type OutlineItem struct {
	Title    TextString
	Dest     Object // named destination, explicit array, or an action
	Action   Object
	Children []*OutlineItem

	// Open reports whether the item's children should be shown expanded,
	// from the sign of /Count (§12.3.3 Table 153).
	Open bool
}

// ReadOutline decodes the document's outline tree from
// catalog.Outlines, or returns (nil, nil) if the document has none.
func ReadOutline(r Getter, catalog *Catalog) (*OutlineItem, error) {
	if catalog.Outlines == 0 {
		return nil, nil
	}
	root, err := GetDict(r, catalog.Outlines)
	if err != nil || root.Len() == 0 {
		return nil, err
	}

	first := root.Get("First")
	if first == nil {
		return &OutlineItem{Open: true}, nil
	}

	seen := make(map[Reference]bool)
	children, err := readOutlineSiblings(r, first, seen)
	if err != nil {
		return nil, err
	}
	return &OutlineItem{Open: true, Children: children}, nil
}

func readOutlineSiblings(r Getter, first Object, seen map[Reference]bool) ([]*OutlineItem, error) {
	var items []*OutlineItem
	next := first
	for next != nil {
		if ref, ok := next.(Reference); ok {
			if seen[ref] {
				break
			}
			seen[ref] = true
		}
		dict, err := GetDict(r, next)
		if err != nil {
			return nil, err
		}
		if dict.Len() == 0 {
			break
		}

		title, _ := GetTextString(r, dict.Get("Title"))

		count, _ := GetInteger(r, dict.Get("Count"))
		item := &OutlineItem{
			Title:  title,
			Dest:   dict.Get("Dest"),
			Action: dict.Get("A"),
			Open:   count > 0,
		}

		if kid := dict.Get("First"); kid != nil {
			children, err := readOutlineSiblings(r, kid, seen)
			if err != nil {
				return nil, err
			}
			item.Children = children
		}

		items = append(items, item)
		next = dict.Get("Next")
	}
	return items, nil
}
