// Package lexer splits raw Aventa Lumen source lines into tokens. It knows
// nothing about opcodes; the parser decides what the tokens mean.
package lexer

import (
	"strings"
	"unicode"

	shellwords "github.com/mattn/go-shellwords"
)

// Comment markers recognized outside quoted regions.
var commentMarkers = []string{"//", "#", ";"}

// LexError reports a line that cannot be split into tokens, typically an
// unterminated string literal.
type LexError struct {
	Msg string
}

func (e *LexError) Error() string {
	return e.Msg
}

// StripComments removes everything from the first comment marker onward,
// ignoring markers inside a double-quoted region. The quote state toggles on
// every '"' seen; quotes do not need to balance within one line. The result
// is right-trimmed.
func StripComments(line string) string {
	inQuote := false
	for i, r := range line {
		if r == '"' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			continue
		}
		for _, marker := range commentMarkers {
			if strings.HasPrefix(line[i:], marker) {
				return strings.TrimRightFunc(line[:i], unicode.IsSpace)
			}
		}
	}
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// Tokenize splits a comment-free line into whitespace-delimited tokens.
// Double-quoted spans become a single token with the quotes removed and
// backslash escapes interpreted, shell-style. Malformed quoting yields a
// *LexError.
func Tokenize(line string) ([]string, error) {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		return nil, &LexError{Msg: err.Error()}
	}
	return tokens, nil
}
