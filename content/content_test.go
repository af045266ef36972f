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

package content

import "testing"

func TestScannerIteratesInOrder(t *testing.T) {
	s, err := Scan([]byte("q 1 0 0 1 0 0 cm Q"))
	if err != nil {
		t.Fatal(err)
	}
	var ops []string
	for {
		instr, ok := s.Next()
		if !ok {
			break
		}
		ops = append(ops, instr.Operator)
	}
	want := []string{"q", "cm", "Q"}
	if len(ops) != len(want) {
		t.Fatalf("got %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, ops[i], want[i])
		}
	}
}

func TestScannerResetReplaysStream(t *testing.T) {
	s, err := Scan([]byte("BT ET"))
	if err != nil {
		t.Fatal(err)
	}
	first, _ := s.Next()
	s.Next()
	if _, ok := s.Next(); ok {
		t.Fatal("expected exhausted scanner")
	}
	s.Reset()
	again, ok := s.Next()
	if !ok || again.Operator != first.Operator {
		t.Fatalf("reset did not replay from the start: %+v", again)
	}
}

func TestScannerAllAndLen(t *testing.T) {
	s, err := Scan([]byte("q Q"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if len(s.All()) != 2 {
		t.Fatalf("All() = %v", s.All())
	}
}
