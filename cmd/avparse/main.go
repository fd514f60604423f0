// avparse runs only the parser stage and prints the diagnostic JSON payload
// for an Aventa Lumen source file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"aventa/pkg/parser"
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

	out, err := json.MarshalIndent(parser.BuildPayload(instructions), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode payload: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
