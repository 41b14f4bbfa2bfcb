// Package command classifies rax input lines into commands.
//
// Parse never fails: any line it cannot make sense of becomes an Invalid
// command carrying the reason, so the caller can report every problem the
// same way.
//
//	Parse("+ 5\n")     // Increment 5
//	Parse("HEX\n")     // SwitchMode hexadecimal
//	Parse("$ 0xff\n")  // SetValue 255
//	Parse("+5x\n")     // Invalid (literal.ErrSyntax)
package command

import (
	"fmt"

	"github.com/akhildatla/rax/pkg/literal"
)

// keyword maps every accepted spelling of a word command to its result.
type keyword struct {
	spellings []string
	command   Command
}

var keywords = []keyword{
	{[]string{"d", "dec", "decimal", "denary"}, Command{Kind: SwitchMode, Mode: Decimal}},
	{[]string{"o", "oct", "octal"}, Command{Kind: SwitchMode, Mode: Octal}},
	{[]string{"x", "hex", "hexadecimal"}, Command{Kind: SwitchMode, Mode: Hexadecimal}},
	{[]string{"?", "h", "help"}, Command{Kind: ShowHelp}},
	{[]string{"e", "exit", "q", "quit"}, Command{Kind: Quit}},
}

// Parse classifies one input line. The line may end with its line
// terminator ("\n" or "\r\n") or with nothing at all when input ended.
func Parse(line string) Command {
	text := trimTerminator(line)
	if text == "" {
		return Command{Kind: Empty}
	}

	switch text[0] {
	case '$':
		return parseOperand(text, SetValue, 0)
	case '+':
		return parseOperand(text, Increment, 1)
	case '-':
		return parseOperand(text, Decrement, 1)
	}

	for _, kw := range keywords {
		for _, spelling := range kw.spellings {
			if laxEqual(text, spelling) {
				return kw.command
			}
		}
	}

	return invalid(fmt.Errorf("%w: unknown command %q", literal.ErrSyntax, text))
}

// parseOperand handles the commands made of a symbol and an optional
// literal. A bare symbol yields bare with the default value; otherwise the
// rest of the line must be exactly one literal.
func parseOperand(text string, kind Kind, def int64) Command {
	if len(text) == 1 {
		return Command{Kind: kind, Value: def}
	}
	value, err := literal.Parse(text[1:])
	if err != nil {
		return invalid(err)
	}
	return Command{Kind: kind, Value: value}
}

func invalid(err error) Command {
	return Command{Kind: Invalid, Err: err}
}

func trimTerminator(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}

// laxEqual reports whether a and b are equal ignoring ASCII letter case.
func laxEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}
