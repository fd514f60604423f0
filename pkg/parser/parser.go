// Package parser turns Aventa Lumen source text (.av files) into typed
// instruction lists, enforcing the opcode table and the label rules.
package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"aventa/pkg/lexer"
)

// ParseError reports a source file that violates the instruction format.
// Line is 0 for errors with no single offending line, such as the aggregate
// undefined-reference report.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Value is a typed operand. Kind decides which field carries the payload:
// Int for KindInt, Text for KindLabel and KindString.
type Value struct {
	Kind Kind
	Int  int64
	Text string
}

// Instruction is one parsed source instruction. Labels holds the names
// declared immediately before it, in declaration order. Instructions are
// never mutated after the parser emits them.
type Instruction struct {
	Opcode   string
	Operands []Value
	Labels   []string
	Line     int
}

var labelPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

type pendingLabel struct {
	name string
	line int
}

// ParseProgram parses source text into an ordered instruction list. It fails
// with *ParseError on the first malformed line, and runs a global
// label-reference check after all lines are consumed.
func ParseProgram(src string) ([]Instruction, error) {
	var instructions []Instruction
	var pending []pendingLabel
	declaredLine := map[string]int{}

	for i, raw := range strings.Split(src, "\n") {
		lineNo := i + 1
		clean := strings.TrimSpace(lexer.StripComments(raw))
		if clean == "" {
			continue
		}

		tokens, err := lexer.Tokenize(clean)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error()}
		}
		if len(tokens) == 0 {
			continue
		}

		labels, payload, err := splitLabels(tokens, lineNo, declaredLine)
		if err != nil {
			return nil, err
		}
		for _, name := range labels {
			pending = append(pending, pendingLabel{name: name, line: lineNo})
		}

		if len(payload) == 0 {
			// Label-only line; the names stay pending until the next line
			// that yields an instruction.
			continue
		}

		instr, err := parseInstruction(payload, lineNo)
		if err != nil {
			return nil, err
		}
		for _, p := range pending {
			instr.Labels = append(instr.Labels, p.name)
		}
		pending = pending[:0]
		instructions = append(instructions, instr)
	}

	if len(pending) > 0 {
		first := pending[0]
		return nil, &ParseError{
			Line: first.line,
			Msg:  fmt.Sprintf("label %q is not attached to any instruction", first.name),
		}
	}

	if err := validateLabelReferences(instructions); err != nil {
		return nil, err
	}
	return instructions, nil
}

// splitLabels partitions a line's tokens into label declarations (tokens
// ending in ':') and payload tokens, preserving relative order. Declarations
// are recorded in declaredLine; redeclaring a name anywhere in the file fails
// with the line of the second occurrence and a reference to the first.
func splitLabels(tokens []string, lineNo int, declaredLine map[string]int) (labels, payload []string, err error) {
	for _, tok := range tokens {
		if !strings.HasSuffix(tok, ":") {
			payload = append(payload, tok)
			continue
		}
		name := strings.TrimSuffix(tok, ":")
		if !labelPattern.MatchString(name) {
			return nil, nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid label %q", name)}
		}
		if first, ok := declaredLine[name]; ok {
			return nil, nil, &ParseError{
				Line: lineNo,
				Msg:  fmt.Sprintf("label %q already declared on line %d", name, first),
			}
		}
		declaredLine[name] = lineNo
		labels = append(labels, name)
	}
	return labels, payload, nil
}

// parseInstruction converts one line's payload tokens: the first token names
// the opcode, the rest are operands converted per the opcode's declared
// kinds.
func parseInstruction(payload []string, lineNo int) (Instruction, error) {
	name := payload[0]
	spec, ok := Opcodes[name]
	if !ok {
		return Instruction{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unknown opcode %q", name)}
	}

	operands := payload[1:]
	if len(operands) != len(spec.Operands) {
		return Instruction{}, &ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("opcode %s expects %d operand(s), got %d", name, len(spec.Operands), len(operands)),
		}
	}

	instr := Instruction{Opcode: name, Line: lineNo}
	for i, raw := range operands {
		v, err := parseOperand(raw, spec.Operands[i], lineNo)
		if err != nil {
			return Instruction{}, err
		}
		instr.Operands = append(instr.Operands, v)
	}
	return instr, nil
}

func parseOperand(raw string, kind Kind, lineNo int) (Value, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid integer literal %q", raw)}
		}
		return Value{Kind: KindInt, Int: n}, nil
	case KindLabel:
		// Only the grammar is checked here; existence is the global
		// post-pass's concern.
		if !labelPattern.MatchString(raw) {
			return Value{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("invalid label name %q", raw)}
		}
		return Value{Kind: KindLabel, Text: raw}, nil
	case KindString:
		if raw == "" {
			return Value{}, &ParseError{Line: lineNo, Msg: "string literal cannot be empty"}
		}
		return Value{Kind: KindString, Text: raw}, nil
	}
	return Value{}, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unsupported operand kind %q", kind)}
}

// validateLabelReferences checks that every label-kind operand names a label
// declared somewhere in the program. Missing names are reported in a single
// error, sorted and comma-joined.
func validateLabelReferences(instructions []Instruction) error {
	declared := map[string]bool{}
	for _, instr := range instructions {
		for _, name := range instr.Labels {
			declared[name] = true
		}
	}

	missing := map[string]bool{}
	for _, instr := range instructions {
		for _, op := range instr.Operands {
			if op.Kind == KindLabel && !declared[op.Text] {
				missing[op.Text] = true
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return &ParseError{Msg: "undefined label reference(s): " + strings.Join(names, ", ")}
}
