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

type mockGetter struct {
	objs map[Reference]Object
	meta MetaInfo
}

func (m *mockGetter) Get(ref Reference, canObjStm bool) (Object, error) {
	return m.objs[ref], nil
}

func (m *mockGetter) GetMeta() *MetaInfo { return &m.meta }

func TestGetDictTypedNilObject(t *testing.T) {
	g := &mockGetter{}
	dict, err := GetDictTyped(g, nil, "Test")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dict.Len() != 0 {
		t.Fatalf("expected empty dict, got %v", dict)
	}
}

func TestResolveChain(t *testing.T) {
	g := &mockGetter{objs: map[Reference]Object{
		NewReference(1, 0): NewReference(2, 0),
		NewReference(2, 0): Integer(42),
	}}
	obj, err := Resolve(g, NewReference(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if obj != Integer(42) {
		t.Fatalf("got %v", obj)
	}
}

func TestResolveCycle(t *testing.T) {
	g := &mockGetter{objs: map[Reference]Object{
		NewReference(1, 0): NewReference(1, 0),
	}}
	_, err := Resolve(g, NewReference(1, 0))
	if err == nil {
		t.Fatal("expected error for reference cycle")
	}
}

func TestGetIntegerRoundsReal(t *testing.T) {
	g := &mockGetter{}
	n, err := GetInteger(g, Real(2.6))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}
}
