// Package linker resolves label references into directly executable programs.
package linker

import (
	"fmt"

	"aventa/pkg/asm"
	"aventa/pkg/parser"
)

// LinkError reports a label reference with no entry in the label table. The
// standard pipeline cannot reach this, since the parser already validates
// every reference; it guards callers that build units by hand.
type LinkError struct {
	Label string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("undefined label %q during linking", e.Label)
}

// ArgKind tags a resolved operand.
type ArgKind int

const (
	ArgInt ArgKind = iota
	ArgAddr
	ArgStr
)

// Arg is a fully resolved operand. No label variant remains after linking:
// label operands become ArgAddr instruction indices.
type Arg struct {
	Kind ArgKind
	Int  int64
	Addr int
	Str  string
}

// Operation is one executable instruction with its original source line.
type Operation struct {
	Opcode string
	Args   []Arg
	Line   int
}

// Program is the terminal artifact handed to the VM. Jump targets are raw
// instruction indices, not byte offsets.
type Program struct {
	Operations []Operation
}

// Link replaces every label operand with its instruction index from the
// unit's label table. Ordering and line numbers are preserved; nothing is
// dropped or reordered.
func Link(unit asm.Unit) (Program, error) {
	operations := make([]Operation, 0, len(unit.Instructions))
	for _, instr := range unit.Instructions {
		op := Operation{Opcode: instr.Opcode, Line: instr.Line}
		for _, v := range instr.Operands {
			arg, err := resolve(v, unit.LabelTable)
			if err != nil {
				return Program{}, err
			}
			op.Args = append(op.Args, arg)
		}
		operations = append(operations, op)
	}
	return Program{Operations: operations}, nil
}

func resolve(v parser.Value, labels map[string]int) (Arg, error) {
	switch v.Kind {
	case parser.KindLabel:
		addr, ok := labels[v.Text]
		if !ok {
			return Arg{}, &LinkError{Label: v.Text}
		}
		return Arg{Kind: ArgAddr, Addr: addr}, nil
	case parser.KindString:
		return Arg{Kind: ArgStr, Str: v.Text}, nil
	default:
		return Arg{Kind: ArgInt, Int: v.Int}, nil
	}
}
