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
	"bytes"
	"fmt"
	"io"
	"testing"
)

func roundTripFilter(t *testing.T, name Name, parms Dict, in string) string {
	t.Helper()
	f, err := MakeFilter(name, parms)
	if err != nil {
		t.Fatalf("MakeFilter(%s): %s", name, err)
	}
	var buf bytes.Buffer
	wc, err := f.Encode(&buf)
	if err != nil {
		t.Fatalf("Encode: %s", err)
	}
	if _, err := wc.Write([]byte(in)); err != nil {
		t.Fatalf("Write: %s", err)
	}
	if err := wc.Close(); err != nil {
		t.Fatalf("Close: %s", err)
	}

	f2, err := MakeFilter(name, parms)
	if err != nil {
		t.Fatal(err)
	}
	r, err := f2.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %s", err)
	}
	return string(out)
}

func TestFilterRoundTrip(t *testing.T) {
	inputs := []string{"", "12345", "Hello, World!\n", "1234567890abcdefghij"}
	names := []Name{"FlateDecode", "ASCII85Decode", "ASCIIHexDecode", "RunLengthDecode", "LZWDecode"}
	for _, name := range names {
		for _, in := range inputs {
			t.Run(fmt.Sprintf("%s/%d", name, len(in)), func(t *testing.T) {
				out := roundTripFilter(t, name, NewDict(), in)
				if out != in {
					t.Errorf("wrong result: %q vs %q", out, in)
				}
			})
		}
	}
}

func TestPngPredictorRoundTrip(t *testing.T) {
	parms := NewDict()
	parms.Set("Predictor", Integer(12))
	parms.Set("Colors", Integer(1))
	parms.Set("Columns", Integer(4))
	for _, in := range []string{"", "11121314151617", "12345678"} {
		out := roundTripFilter(t, "FlateDecode", parms, in)
		if out != in {
			t.Errorf("wrong result: %q vs %q", out, in)
		}
	}
}

func TestFilterChainOverWriter(t *testing.T) {
	testData := "Hello, World! This is stream content that benefits from compression.\n"
	combos := [][]Name{
		{"ASCII85Decode"},
		{"ASCIIHexDecode", "ASCII85Decode"},
		{"FlateDecode"},
		{"RunLengthDecode", "ASCII85Decode"},
	}
	for i, names := range combos {
		t.Run(fmt.Sprintf("combo%d", i), func(t *testing.T) {
			var filters []Filter
			for _, n := range names {
				f, err := MakeFilter(n, NewDict())
				if err != nil {
					t.Fatal(err)
				}
				filters = append(filters, f)
			}

			var buf bytes.Buffer
			w, err := NewWriter(&buf, &WriterOptions{Version: V1_7})
			if err != nil {
				t.Fatal(err)
			}
			ref := w.Alloc()
			w.Catalog.Pages = w.Alloc()

			sw, err := w.OpenStream(ref, NewDict(), filters...)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := io.WriteString(sw, testData); err != nil {
				t.Fatal(err)
			}
			if err := sw.Close(); err != nil {
				t.Fatal(err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}

			r, err := NewReader(bytes.NewReader(buf.Bytes()), nil)
			if err != nil {
				t.Fatal(err)
			}
			stm, err := GetStream(r, ref)
			if err != nil {
				t.Fatal(err)
			}
			data, err := stm.Decode()
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != testData {
				t.Errorf("wrong result: %q vs %q", data, testData)
			}
		})
	}
}
