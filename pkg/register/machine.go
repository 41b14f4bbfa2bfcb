// Package register holds the rax counter state and applies commands to it.
//
// A Machine is a plain value owned by whoever drives it; there is no
// package-level state.
//
//	m := register.New(0, command.Decimal)
//	m.Apply(command.Parse("+ 5\n"))
//	m.Render() // "[5]"
package register

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/akhildatla/rax/pkg/command"
	"github.com/akhildatla/rax/pkg/literal"
)

// ErrOverflow is returned when an increment or decrement would leave the
// range of the register. It wraps literal.ErrRange so both kinds of range
// failure are reported the same way.
var ErrOverflow = fmt.Errorf("%w: arithmetic overflow", literal.ErrRange)

// Effect tells the caller what to do after a command was applied.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectHelp
	EffectQuit
	EffectError
)

// Outcome is the result of applying one command.
type Outcome struct {
	Effect Effect
	Err    error // set when Effect is EffectError
}

// Machine is the counter register and its display mode.
type Machine struct {
	value int64
	mode  command.Mode
}

// New creates a machine with the given starting value and display mode.
func New(value int64, mode command.Mode) *Machine {
	return &Machine{value: value, mode: mode}
}

// Value returns the current register value.
func (m *Machine) Value() int64 {
	return m.value
}

// Mode returns the current display mode.
func (m *Machine) Mode() command.Mode {
	return m.mode
}

// Apply executes cmd against the machine. Failed commands leave the state
// untouched.
func (m *Machine) Apply(cmd command.Command) Outcome {
	switch cmd.Kind {
	case command.Empty:
		return Outcome{}

	case command.SetZero:
		m.value = 0

	case command.SetValue:
		m.value = cmd.Value

	case command.Increment:
		sum, err := add(m.value, cmd.Value)
		if err != nil {
			return failed(err)
		}
		m.value = sum

	case command.Decrement:
		diff, err := sub(m.value, cmd.Value)
		if err != nil {
			return failed(err)
		}
		m.value = diff

	case command.SwitchMode:
		m.mode = cmd.Mode

	case command.ShowHelp:
		return Outcome{Effect: EffectHelp}

	case command.Quit:
		return Outcome{Effect: EffectQuit}

	case command.Invalid:
		err := cmd.Err
		if err == nil {
			err = literal.ErrSyntax
		}
		return failed(err)

	default:
		return failed(fmt.Errorf("%w: unknown command kind %d", literal.ErrSyntax, cmd.Kind))
	}

	return Outcome{}
}

// Render formats the register for the prompt: [42], [0x2a] or [052].
// Hexadecimal and octal show the two's complement bit pattern.
func (m *Machine) Render() string {
	switch m.mode {
	case command.Hexadecimal:
		return "[0x" + strconv.FormatUint(uint64(m.value), 16) + "]"
	case command.Octal:
		return "[0" + strconv.FormatUint(uint64(m.value), 8) + "]"
	default:
		return "[" + strconv.FormatInt(m.value, 10) + "]"
	}
}

func failed(err error) Outcome {
	return Outcome{Effect: EffectError, Err: err}
}

func add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func sub(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// IsRange reports whether err is a range failure rather than a syntax one.
func IsRange(err error) bool {
	return errors.Is(err, literal.ErrRange)
}
