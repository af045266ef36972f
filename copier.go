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

// Copier duplicates objects from a source document into a document under
// construction, rewriting indirect references so each source object is
// copied at most once.
type Copier struct {
	trans map[Reference]Reference
	r     Getter
	w     *Writer
}

// NewCopier creates a Copier that reads from r and writes into w.
func NewCopier(w *Writer, r Getter) *Copier {
	return &Copier{trans: make(map[Reference]Reference), w: w, r: r}
}

// Copy copies obj, recursively translating any indirect references it
// contains.
func (c *Copier) Copy(obj Object) (Object, error) {
	switch x := obj.(type) {
	case Dict:
		return c.CopyDict(x)
	case Array:
		return c.CopyArray(x)
	case *Stream:
		dict, err := c.CopyDict(x.Dict)
		if err != nil {
			return nil, err
		}
		return &Stream{Dict: dict, raw: x.RawBytes()}, nil
	case Reference:
		return c.CopyReference(x)
	default:
		return obj, nil
	}
}

// CopyDict copies a dictionary, preserving key order.
func (c *Copier) CopyDict(obj Dict) (Dict, error) {
	res := NewDict()
	for _, key := range obj.Keys() {
		repl, err := c.Copy(obj.Get(key))
		if err != nil {
			return Dict{}, err
		}
		res.Set(key, repl)
	}
	return res, nil
}

// CopyArray copies an array.
func (c *Copier) CopyArray(obj Array) (Array, error) {
	res := make(Array, len(obj))
	for i, val := range obj {
		if val == nil {
			continue
		}
		repl, err := c.Copy(val)
		if err != nil {
			return nil, err
		}
		res[i] = repl
	}
	return res, nil
}

// CopyReference copies the object ref points to into the target document,
// shortening chains of indirect references so the translated reference
// always points directly at a copied object.
func (c *Copier) CopyReference(ref Reference) (Reference, error) {
	if newRef, ok := c.trans[ref]; ok {
		return newRef, nil
	}
	newRef := c.w.Alloc()
	c.trans[ref] = newRef

	val, err := Resolve(c.r, ref)
	if err != nil {
		return 0, err
	}
	trans, err := c.Copy(val)
	if err != nil {
		return 0, err
	}
	if err := c.w.Put(newRef, trans); err != nil {
		return 0, err
	}
	return newRef, nil
}

// Redirect records that references to origRef should resolve to newRef
// instead of triggering a fresh copy.
func (c *Copier) Redirect(origRef, newRef Reference) {
	c.trans[origRef] = newRef
}
