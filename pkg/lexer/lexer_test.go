package lexer

import (
	"errors"
	"reflect"
	"testing"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"EMBER 5", "EMBER 5"},
		{"EMBER 5 // push five", "EMBER 5"},
		{"EMBER 5 # push five", "EMBER 5"},
		{"EMBER 5 ; push five", "EMBER 5"},
		{"// whole line comment", ""},
		{"# whole line comment", ""},
		{"   ", ""},
		{"", ""},
		{`FLASH "a // b"`, `FLASH "a // b"`},
		{`FLASH "a # b" # trailing`, `FLASH "a # b"`},
		{`FLASH "; kept"`, `FLASH "; kept"`},
		{`FLASH "unterminated ; still quoted`, `FLASH "unterminated ; still quoted`},
		{"QUIET\t// done", "QUIET"},
	}
	for _, tc := range tests {
		if got := StripComments(tc.line); got != tc.want {
			t.Errorf("StripComments(%q) = %q; want %q", tc.line, got, tc.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"EMBER 5", []string{"EMBER", "5"}},
		{"  DRIFT   LOOP  ", []string{"DRIFT", "LOOP"}},
		{`FLASH "hello world"`, []string{"FLASH", "hello world"}},
		{`FLASH hello\ world`, []string{"FLASH", "hello world"}},
		{`START: EMBER -3`, []string{"START:", "EMBER", "-3"}},
	}
	for _, tc := range tests {
		got, err := Tokenize(tc.line)
		if err != nil {
			t.Errorf("Tokenize(%q) returned error: %v", tc.line, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v; want %v", tc.line, got, tc.want)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	got, err := Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize(\"\") returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v; want no tokens", got)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`FLASH "oops`)
	if err == nil {
		t.Fatal("Tokenize with unterminated string did not fail")
	}
	var le *LexError
	if !errors.As(err, &le) {
		t.Errorf("error is %T; want *LexError", err)
	}
}
