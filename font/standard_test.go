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

package font

import "testing"

func TestNewStandardFontCourierIsMonospace(t *testing.T) {
	fd, err := NewStandardFont("Courier-Bold")
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range fd.Widths {
		if w != 600 {
			t.Fatalf("Courier-Bold width %v != 600", w)
		}
	}
}

func TestNewStandardFontHelveticaWidths(t *testing.T) {
	fd, err := NewStandardFont("Helvetica")
	if err != nil {
		t.Fatal(err)
	}
	if got := fd.Width('A'); got != 667 {
		t.Errorf("Helvetica width of A = %v, want 667", got)
	}
	if got := fd.Width(' '); got != 278 {
		t.Errorf("Helvetica width of space = %v, want 278", got)
	}
}

func TestNewStandardFontRejectsUnknownName(t *testing.T) {
	if _, err := NewStandardFont("Comic-Sans"); err == nil {
		t.Error("expected error for non-standard font name")
	}
}
