// Package vm executes linked Aventa Lumen programs on a small stack machine.
package vm

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"aventa/pkg/linker"
)

// InputProvider supplies one integer per SIP instruction. The VM never reads
// raw text itself.
type InputProvider func() (int64, error)

// OutputSink receives each FLASH string as it is emitted, in program order,
// with no trailing newline added.
type OutputSink func(string)

// ExecutionError reports an illegal runtime state. Execution stops; outputs
// accumulated so far stay available to the caller.
type ExecutionError struct {
	Line int
	Msg  string
}

func (e *ExecutionError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// VM is a single-threaded stack interpreter. The zero value is ready to use:
// a nil Input falls back to an interactive stdin prompt, and a nil Output
// means emitted strings are only accumulated. A VM owns its stack and
// instruction pointer exclusively; instances share nothing.
type VM struct {
	Input  InputProvider
	Output OutputSink

	stack   []int64
	ip      int
	outputs []string
}

// New creates a VM with default collaborators.
func New() *VM {
	return &VM{}
}

// Run executes a program on a fresh VM with default collaborators.
func Run(program linker.Program) ([]string, error) {
	return New().Run(program)
}

// Run executes a linked program until QUIET or until the instruction pointer
// falls off the end. The returned slice holds every FLASH output in program
// order; it is returned even when err is non-nil so partial results stay
// inspectable.
func (m *VM) Run(program linker.Program) ([]string, error) {
	m.stack = m.stack[:0]
	m.ip = 0
	m.outputs = nil

	input := m.Input
	if input == nil {
		input = stdinProvider()
	}

	ops := program.Operations
	for m.ip < len(ops) {
		op := ops[m.ip]
		switch op.Opcode {
		case "SIP":
			n, err := input()
			if err != nil {
				return m.outputs, &ExecutionError{Line: op.Line, Msg: fmt.Sprintf("SIP input failed: %v", err)}
			}
			m.stack = append(m.stack, n)
			m.ip++

		case "EMBER":
			n, err := intArg(op, 0)
			if err != nil {
				return m.outputs, err
			}
			m.stack = append(m.stack, n)
			m.ip++

		case "TWIST":
			n, err := intArg(op, 0)
			if err != nil {
				return m.outputs, err
			}
			if len(m.stack) == 0 {
				return m.outputs, &ExecutionError{Line: op.Line, Msg: "TWIST requires a stack value"}
			}
			m.stack[len(m.stack)-1] -= n
			m.ip++

		case "DRIFT":
			addr, err := addrArg(op, 0)
			if err != nil {
				return m.outputs, err
			}
			m.ip = addr

		case "GLINT.ZERO":
			addr, err := addrArg(op, 0)
			if err != nil {
				return m.outputs, err
			}
			if m.top() == 0 {
				m.ip = addr
			} else {
				m.ip++
			}

		case "GLINT.POS":
			addr, err := addrArg(op, 0)
			if err != nil {
				return m.outputs, err
			}
			if m.top() > 0 {
				m.ip = addr
			} else {
				m.ip++
			}

		case "FLASH":
			s, err := strArg(op, 0)
			if err != nil {
				return m.outputs, err
			}
			m.emit(s)
			m.ip++

		case "QUIET":
			return m.outputs, nil

		default:
			// Unreachable after a successful parse.
			return m.outputs, &ExecutionError{Line: op.Line, Msg: fmt.Sprintf("unknown opcode %q", op.Opcode)}
		}
	}
	return m.outputs, nil
}

// top reads the stack head without popping. An empty stack reads as zero;
// the conditional jumps rely on this default.
func (m *VM) top() int64 {
	if len(m.stack) == 0 {
		return 0
	}
	return m.stack[len(m.stack)-1]
}

func (m *VM) emit(s string) {
	m.outputs = append(m.outputs, s)
	if m.Output != nil {
		m.Output(s)
	}
}

func arg(op linker.Operation, index int) (linker.Arg, error) {
	if index >= len(op.Args) {
		return linker.Arg{}, &ExecutionError{Line: op.Line, Msg: fmt.Sprintf("%s is missing operand %d", op.Opcode, index)}
	}
	return op.Args[index], nil
}

func intArg(op linker.Operation, index int) (int64, error) {
	a, err := arg(op, index)
	if err != nil {
		return 0, err
	}
	if a.Kind != linker.ArgInt {
		return 0, &ExecutionError{Line: op.Line, Msg: fmt.Sprintf("%s expects an integer operand", op.Opcode)}
	}
	return a.Int, nil
}

func addrArg(op linker.Operation, index int) (int, error) {
	a, err := arg(op, index)
	if err != nil {
		return 0, err
	}
	if a.Kind != linker.ArgAddr {
		return 0, &ExecutionError{Line: op.Line, Msg: fmt.Sprintf("%s expects an address operand", op.Opcode)}
	}
	return a.Addr, nil
}

func strArg(op linker.Operation, index int) (string, error) {
	a, err := arg(op, index)
	if err != nil {
		return "", err
	}
	if a.Kind != linker.ArgStr {
		return "", &ExecutionError{Line: op.Line, Msg: fmt.Sprintf("%s expects a string operand", op.Opcode)}
	}
	return a.Str, nil
}

// stdinProvider builds the default interactive input source. Malformed
// entries reprompt instead of failing; a closed input stream is a real
// error.
func stdinProvider() InputProvider {
	scanner := bufio.NewScanner(os.Stdin)
	return func() (int64, error) {
		for {
			fmt.Print("SIP> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return 0, err
				}
				return 0, fmt.Errorf("input closed")
			}
			raw := strings.TrimSpace(scanner.Text())
			n, err := strconv.ParseInt(raw, 10, 64)
			if err == nil {
				return n, nil
			}
			fmt.Println("Please enter an integer.")
		}
	}
}
