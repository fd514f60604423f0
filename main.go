// Developer front end for the Aventa Lumen toolchain. The thin cmd/ binaries
// cover the two supported surfaces; this tool combines them behind flags for
// poking at programs during development.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"aventa/pkg/asm"
	"aventa/pkg/linker"
	"aventa/pkg/parser"
	"aventa/pkg/vm"
)

func main() {
	inPath := flag.String("in", "", "input .av source file path")
	showPayload := flag.Bool("payload", false, "print the parser-stage JSON payload")
	runProgram := flag.Bool("run", false, "link and execute the parsed program")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file.av>, with -payload and/or -run")
		flag.Usage()
		os.Exit(2)
	}

	source, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read source file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	instructions, err := parser.ParseProgram(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[parse-error] %v\n", err)
		os.Exit(1)
	}

	if *showPayload {
		out, err := json.MarshalIndent(parser.BuildPayload(instructions), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode payload: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	}

	if !*runProgram {
		if !*showPayload {
			fmt.Printf("parsed %d instruction(s) from %s\n", len(instructions), *inPath)
		}
		return
	}

	program, err := linker.Link(asm.Assemble(instructions))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[link-error] %v\n", err)
		os.Exit(1)
	}

	outputs, err := vm.Run(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[runtime-error] %v\n", err)
		os.Exit(1)
	}
	for _, line := range outputs {
		fmt.Println(line)
	}
}
