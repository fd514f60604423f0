package parser

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkParseProgram(b *testing.B) {
	var sb strings.Builder
	sb.WriteString("SIP\n")
	for i := 0; i < 200; i++ {
		sb.WriteString("EMBER 10\n")
		fmt.Fprintf(&sb, "LOOP%d: TWIST 1 // spin\n", i)
		fmt.Fprintf(&sb, "GLINT.POS LOOP%d\n", i)
		fmt.Fprintf(&sb, "FLASH \"cycle %d\"\n", i)
	}
	sb.WriteString("QUIET\n")
	src := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseProgram(src); err != nil {
			b.Fatalf("parse failed: %v", err)
		}
	}
}
