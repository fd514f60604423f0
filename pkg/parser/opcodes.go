package parser

// Kind is the static type an opcode position expects. Operand tokens are
// converted per the declared kind, never by guessing at their syntax.
type Kind int

const (
	KindInt Kind = iota
	KindLabel
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindLabel:
		return "label"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Spec describes one opcode: its name, its ordered operand kinds and a short
// description surfaced by tooling.
type Spec struct {
	Name        string
	Operands    []Kind
	Description string
}

// Opcodes is the fixed instruction table. The parser consults it for arity
// and typing, the reference validator for label operands, and the linker for
// resolution. It is never mutated after process start.
var Opcodes = map[string]Spec{
	// Input / stack operations
	"SIP":   {Name: "SIP", Description: "Reads an integer from the input source onto the stack"},
	"EMBER": {Name: "EMBER", Operands: []Kind{KindInt}, Description: "Pushes an integer literal"},
	"TWIST": {Name: "TWIST", Operands: []Kind{KindInt}, Description: "Subtracts an integer literal from the stack head"},

	// Flow control
	"DRIFT":      {Name: "DRIFT", Operands: []Kind{KindLabel}, Description: "Unconditional jump"},
	"GLINT.ZERO": {Name: "GLINT.ZERO", Operands: []Kind{KindLabel}, Description: "Jump when the stack head equals zero"},
	"GLINT.POS":  {Name: "GLINT.POS", Operands: []Kind{KindLabel}, Description: "Jump when the stack head is positive"},

	// Output / termination
	"FLASH": {Name: "FLASH", Operands: []Kind{KindString}, Description: "Writes a quoted string"},
	"QUIET": {Name: "QUIET", Description: "Halts execution"},
}
