package repl

import "io"

const helpText = `[ Help ]
$
	Sets the counter to 0

+
	Increments the counter by 1

-
	Decrements the counter by 1


$ <INTEGER>
	Sets the counter to the specified integer

+ <INTEGER>
	Increments the counter by the given integer

- <INTEGER>
	Decrements the counter by the given integer


x, hex, hexadecimal
	Displays counter in hexadecimal

d, dec, denary, decimal
	Displays counter in denary

o, oct, octal
	Displays counter in octal

?, h, help
	Shows help

q, quit, e, exit
	Close the program


All integers can be prepended with '0x' for hexadecimal, '0' for octal and '-' for a negative number
All commands are case insensitive
`

func (s *Session) printHelp() {
	_, _ = io.WriteString(s.out, helpText+"\n")
}
