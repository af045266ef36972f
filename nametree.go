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
	"sort"
)

// readNameTree implements NameTree over a parsed /Names or /Dests name
// tree (§7.9.6). Intermediate nodes are flattened into a sorted slice at
// read time, trading memory for O(log n) Lookup without re-walking
// /Kids on every call.
type readNameTree struct {
	keys []Name
	vals []Object
}

// ReadNameTree decodes a name tree rooted at obj, e.g. the document's
// /Root/Names/Dests dictionary (C5, supplementing the distilled page-tree
// walker with the balanced-tree traversal the catalog's /Names entries
// need).
func ReadNameTree(r Getter, obj Object) (NameTree, error) {
	t := &readNameTree{}
	seen := make(map[Reference]bool)
	if err := t.walk(r, obj, seen); err != nil {
		return nil, err
	}
	sort.Sort(t)
	return t, nil
}

func (t *readNameTree) Len() int           { return len(t.keys) }
func (t *readNameTree) Less(i, j int) bool { return t.keys[i] < t.keys[j] }
func (t *readNameTree) Swap(i, j int) {
	t.keys[i], t.keys[j] = t.keys[j], t.keys[i]
	t.vals[i], t.vals[j] = t.vals[j], t.vals[i]
}

func (t *readNameTree) walk(r Getter, obj Object, seen map[Reference]bool) error {
	if ref, ok := obj.(Reference); ok {
		if seen[ref] {
			return nil
		}
		seen[ref] = true
	}
	dict, err := GetDict(r, obj)
	if err != nil || dict.Len() == 0 {
		return err
	}

	if kids := dict.Get("Kids"); kids != nil {
		arr, err := GetArray(r, kids)
		if err != nil {
			return err
		}
		for _, kid := range arr {
			if err := t.walk(r, kid, seen); err != nil {
				return err
			}
		}
		return nil
	}

	names, err := GetArray(r, dict.Get("Names"))
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(names); i += 2 {
		name, err := GetString(r, names[i])
		if err != nil {
			return err
		}
		t.keys = append(t.keys, Name(name))
		t.vals = append(t.vals, names[i+1])
	}
	return nil
}

// Lookup returns the value associated with key, or an error if absent.
func (t *readNameTree) Lookup(key Name) (Object, error) {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] >= key })
	if i < len(t.keys) && t.keys[i] == key {
		return t.vals[i], nil
	}
	return nil, &MalformedFileError{Err: errors.New("name not found in name tree")}
}

// All iterates the tree's entries in key order.
func (t *readNameTree) All() iter.Seq2[Name, Object] {
	return func(yield func(Name, Object) bool) {
		for i, k := range t.keys {
			if !yield(k, t.vals[i]) {
				return
			}
		}
	}
}
