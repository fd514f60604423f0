package asm

import (
	"reflect"
	"testing"

	"aventa/pkg/parser"
)

func TestAssembleDerivesLabelTable(t *testing.T) {
	instructions := []parser.Instruction{
		{Opcode: "EMBER", Operands: []parser.Value{{Kind: parser.KindInt, Int: 1}}, Labels: []string{"START"}, Line: 1},
		{Opcode: "TWIST", Operands: []parser.Value{{Kind: parser.KindInt, Int: 1}}, Line: 2},
		{Opcode: "QUIET", Labels: []string{"END", "DONE"}, Line: 4},
	}

	unit := Assemble(instructions)

	want := map[string]int{"START": 0, "END": 2, "DONE": 2}
	if !reflect.DeepEqual(unit.LabelTable, want) {
		t.Errorf("LabelTable = %v; want %v", unit.LabelTable, want)
	}
	if !reflect.DeepEqual(unit.Instructions, instructions) {
		t.Errorf("Assemble reordered or modified the instruction list")
	}
}

func TestAssembleEmpty(t *testing.T) {
	unit := Assemble(nil)
	if len(unit.Instructions) != 0 {
		t.Errorf("Instructions = %v; want empty", unit.Instructions)
	}
	if len(unit.LabelTable) != 0 {
		t.Errorf("LabelTable = %v; want empty", unit.LabelTable)
	}
}

func TestAssembleFromParsedSource(t *testing.T) {
	src := "BEGIN: SIP\nLOOP: TWIST 1\nGLINT.POS LOOP\nDRIFT BEGIN"
	instructions, err := parser.ParseProgram(src)
	if err != nil {
		t.Fatalf("ParseProgram returned error: %v", err)
	}

	unit := Assemble(instructions)

	want := map[string]int{"BEGIN": 0, "LOOP": 1}
	if !reflect.DeepEqual(unit.LabelTable, want) {
		t.Errorf("LabelTable = %v; want %v", unit.LabelTable, want)
	}
}
