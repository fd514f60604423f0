package parser

import "encoding/json"

// Payload is the parser-stage diagnostic document emitted by tooling. Array
// order is program order; object key order carries no meaning.
type Payload struct {
	Instructions     []PayloadInstruction `json:"instructions"`
	Labels           map[string]int       `json:"labels"`
	InstructionCount int                  `json:"instruction_count"`
}

// PayloadInstruction is the wire form of one Instruction.
type PayloadInstruction struct {
	Op     string   `json:"op"`
	Args   []Value  `json:"args"`
	Line   int      `json:"line"`
	Labels []string `json:"labels,omitempty"`
}

// MarshalJSON renders a Value as a bare number or string per its kind.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindInt {
		return json.Marshal(v.Int)
	}
	return json.Marshal(v.Text)
}

// BuildPayload assembles the diagnostic payload for a parsed program.
func BuildPayload(instructions []Instruction) Payload {
	labels := map[string]int{}
	for idx, instr := range instructions {
		for _, name := range instr.Labels {
			labels[name] = idx
		}
	}

	entries := make([]PayloadInstruction, 0, len(instructions))
	for _, instr := range instructions {
		args := make([]Value, 0, len(instr.Operands))
		args = append(args, instr.Operands...)
		entries = append(entries, PayloadInstruction{
			Op:     instr.Opcode,
			Args:   args,
			Line:   instr.Line,
			Labels: instr.Labels,
		})
	}

	return Payload{
		Instructions:     entries,
		Labels:           labels,
		InstructionCount: len(instructions),
	}
}
