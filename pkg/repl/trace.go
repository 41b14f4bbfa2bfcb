package repl

import (
	"fmt"
	"io"
	"strings"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/akhildatla/rax/pkg/command"
	"github.com/akhildatla/rax/pkg/register"
)

// Trace column names.
const (
	ColStep     = "step"
	ColInput    = "input"
	ColCommand  = "command"
	ColOutcome  = "outcome"
	ColRegister = "register"
)

// Trace keeps an in-memory table of every line a session processed.
type Trace struct {
	frame *dataframe.DataFrame
	steps int64
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{
		frame: dataframe.NewDataFrame(
			dataframe.NewSeriesInt64(ColStep, nil),
			dataframe.NewSeriesString(ColInput, nil),
			dataframe.NewSeriesString(ColCommand, nil),
			dataframe.NewSeriesString(ColOutcome, nil),
			dataframe.NewSeriesString(ColRegister, nil),
		),
	}
}

// Record appends one processed line. rendered is the register display after
// the command was applied.
func (t *Trace) Record(line string, cmd command.Command, outcome register.Outcome, rendered string) {
	t.steps++
	t.frame.Append(nil,
		t.steps,
		strings.TrimRight(line, "\r\n"),
		cmd.String(),
		outcomeString(outcome),
		rendered,
	)
}

// Len returns the number of recorded lines.
func (t *Trace) Len() int {
	return t.frame.NRows()
}

// Frame returns the underlying DataFrame.
func (t *Trace) Frame() *dataframe.DataFrame {
	return t.frame
}

// WriteTo writes the trace as a table.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	if t.Len() == 0 {
		n, err := fmt.Fprintln(w, "trace: no commands")
		return int64(n), err
	}
	n, err := fmt.Fprint(w, t.frame.Table())
	return int64(n), err
}

func outcomeString(outcome register.Outcome) string {
	switch outcome.Effect {
	case register.EffectHelp:
		return "help"
	case register.EffectQuit:
		return "quit"
	case register.EffectError:
		if register.IsRange(outcome.Err) {
			return "range error"
		}
		return "syntax error"
	default:
		return "ok"
	}
}
