package command

import "fmt"

// Mode is the base used to display the register.
type Mode uint8

const (
	Decimal Mode = iota
	Hexadecimal
	Octal
)

// String returns the name of the display mode.
func (m Mode) String() string {
	switch m {
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	case Octal:
		return "octal"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Kind identifies which command a line was classified as.
type Kind uint8

const (
	Invalid Kind = iota
	Empty
	SetZero
	SetValue
	Increment
	Decrement
	SwitchMode
	ShowHelp
	Quit
)

// String returns the string representation of a command kind.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "INVALID"
	case Empty:
		return "EMPTY"
	case SetZero:
		return "SET_ZERO"
	case SetValue:
		return "SET_VALUE"
	case Increment:
		return "INCREMENT"
	case Decrement:
		return "DECREMENT"
	case SwitchMode:
		return "SWITCH_MODE"
	case ShowHelp:
		return "SHOW_HELP"
	case Quit:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

// Command is one classified input line.
type Command struct {
	Kind  Kind
	Value int64 // SetValue, Increment, Decrement
	Mode  Mode  // SwitchMode
	Err   error // Invalid; wraps literal.ErrSyntax or literal.ErrRange
}

// String returns a compact form of the command, e.g. "INCREMENT 5".
func (c Command) String() string {
	switch c.Kind {
	case SetValue, Increment, Decrement:
		return fmt.Sprintf("%s %d", c.Kind, c.Value)
	case SwitchMode:
		return fmt.Sprintf("%s %s", c.Kind, c.Mode)
	default:
		return c.Kind.String()
	}
}
