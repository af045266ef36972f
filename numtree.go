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

// readNumberTree implements NumberTree over a parsed number tree (§7.9.7),
// e.g. a page-label tree rooted at /Root/PageLabels. Flattened and sorted
// at read time, the same way readNameTree is.
type readNumberTree struct {
	keys []Integer
	vals []Object
}

// ReadNumberTree decodes a number tree rooted at obj (C5).
func ReadNumberTree(r Getter, obj Object) (NumberTree, error) {
	t := &readNumberTree{}
	seen := make(map[Reference]bool)
	if err := t.walk(r, obj, seen); err != nil {
		return nil, err
	}
	sort.Sort(t)
	return t, nil
}

func (t *readNumberTree) Len() int           { return len(t.keys) }
func (t *readNumberTree) Less(i, j int) bool { return t.keys[i] < t.keys[j] }
func (t *readNumberTree) Swap(i, j int) {
	t.keys[i], t.keys[j] = t.keys[j], t.keys[i]
	t.vals[i], t.vals[j] = t.vals[j], t.vals[i]
}

func (t *readNumberTree) walk(r Getter, obj Object, seen map[Reference]bool) error {
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

	nums, err := GetArray(r, dict.Get("Nums"))
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(nums); i += 2 {
		key, err := GetInteger(r, nums[i])
		if err != nil {
			return err
		}
		t.keys = append(t.keys, key)
		t.vals = append(t.vals, nums[i+1])
	}
	return nil
}

// Lookup returns the value associated with the largest key <= key that a
// page-label-style number tree defines, matching the "nearest preceding
// entry applies" semantics of §7.9.7; exact misses below the first key
// are reported as not found.
func (t *readNumberTree) Lookup(key Integer) (Object, error) {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] > key }) - 1
	if i >= 0 {
		return t.vals[i], nil
	}
	return nil, &MalformedFileError{Err: errors.New("key not found in number tree")}
}

// All iterates the tree's entries in key order.
func (t *readNumberTree) All() iter.Seq2[Integer, Object] {
	return func(yield func(Integer, Object) bool) {
		for i, k := range t.keys {
			if !yield(k, t.vals[i]) {
				return
			}
		}
	}
}
