// Package asm prepares parsed instruction lists for linking by materializing
// the definitive label table.
package asm

import "aventa/pkg/parser"

// Unit pairs an instruction list with the label table derived from it. Every
// key in LabelTable appears in exactly one instruction's Labels.
type Unit struct {
	Instructions []parser.Instruction
	LabelTable   map[string]int
}

// Assemble walks the instructions in order and records each declared label
// against its instruction's position. It is total: all fallibility already
// happened in the parser. The table is re-derived here rather than passed
// through from the parser, so the stage can be tested on its own.
func Assemble(instructions []parser.Instruction) Unit {
	table := make(map[string]int)
	for idx, instr := range instructions {
		for _, name := range instr.Labels {
			table[name] = idx
		}
	}
	return Unit{Instructions: instructions, LabelTable: table}
}
