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

func TestScanContentStreamBasic(t *testing.T) {
	src := []byte("q 1 0 0 1 10 20 cm /F1 12 Tf (Hello) Tj Q\n")
	instrs, err := ScanContentStream(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"q", "cm", "Tf", "Tj", "Q"}
	if len(instrs) != len(want) {
		t.Fatalf("got %d instructions, want %d: %+v", len(instrs), len(want), instrs)
	}
	for i, op := range want {
		if instrs[i].Operator != op {
			t.Errorf("instr %d = %q, want %q", i, instrs[i].Operator, op)
		}
	}
	cm := instrs[1]
	if len(cm.Operands) != 6 {
		t.Fatalf("cm operands = %v", cm.Operands)
	}
	if cm.Operands[4] != Integer(10) || cm.Operands[5] != Integer(20) {
		t.Errorf("cm translation wrong: %v", cm.Operands)
	}
	tf := instrs[2]
	if tf.Operands[0] != Name("F1") {
		t.Errorf("Tf font name wrong: %v", tf.Operands)
	}
	tj := instrs[3]
	if string(tj.Operands[0].(String)) != "Hello" {
		t.Errorf("Tj operand wrong: %v", tj.Operands)
	}
}

func TestScanContentStreamTJArray(t *testing.T) {
	src := []byte("[(A)-120(B)]TJ")
	instrs, err := ScanContentStream(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(instrs) != 1 || instrs[0].Operator != "TJ" {
		t.Fatalf("got %+v", instrs)
	}
	arr, ok := instrs[0].Operands[0].(Array)
	if !ok || len(arr) != 3 {
		t.Fatalf("TJ array wrong: %v", instrs[0].Operands)
	}
}

func TestScanContentStreamInlineImage(t *testing.T) {
	src := []byte("q BI /W 1 /H 1 /BPC 8 /CS /G ID \x00 EI Q")
	instrs, err := ScanContentStream(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(instrs) != 3 {
		t.Fatalf("got %d instructions, want 3: %+v", len(instrs), instrs)
	}
	bi := instrs[1]
	if bi.Operator != "BI" {
		t.Fatalf("expected BI instruction, got %+v", bi)
	}
	if bi.InlineDict.Get("W") != Integer(1) {
		t.Errorf("inline dict W wrong: %v", bi.InlineDict.Get("W"))
	}
	if len(bi.InlineData) != 1 || bi.InlineData[0] != 0 {
		t.Errorf("inline data wrong: %v", bi.InlineData)
	}
}

func TestScanContentStreamSkipsMalformedOperand(t *testing.T) {
	src := []byte("q > Q")
	instrs, err := ScanContentStream(src)
	if err != nil {
		t.Fatal(err)
	}
	ops := make([]string, len(instrs))
	for i, instr := range instrs {
		ops[i] = instr.Operator
	}
	if len(ops) != 2 || ops[0] != "q" || ops[1] != "Q" {
		t.Fatalf("expected [q Q], got %v", ops)
	}
}
