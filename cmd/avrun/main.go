// avrun runs an Aventa Lumen source file through the full toolchain:
// parse, assemble, link, execute.
package main

import (
	"fmt"
	"os"

	"aventa/pkg/asm"
	"aventa/pkg/linker"
	"aventa/pkg/parser"
	"aventa/pkg/vm"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		fmt.Fprintf(os.Stderr, "Usage: %s <program.av>\n", os.Args[0])
		os.Exit(1)
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read source file %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	instructions, err := parser.ParseProgram(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[parse-error] %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[parser] complete")

	unit := asm.Assemble(instructions)
	fmt.Println("[assembler] complete")

	program, err := linker.Link(unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[link-error] %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[linker] complete")

	outputs, err := vm.Run(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[runtime-error] %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[runtime] complete")

	for _, line := range outputs {
		fmt.Println(line)
	}
}
