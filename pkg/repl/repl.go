// Package repl runs the interactive rax loop: print the prompt, read a
// line, apply it to the register, report what went wrong, repeat.
//
// Basic usage:
//
//	s := repl.New(register.New(0, command.Decimal), repl.NewLineReader(os.Stdin, 0), os.Stdout, os.Stderr)
//	if err := s.Run(ctx); err != nil {
//	    // errors.Is(err, repl.ErrInput): stdin closed or unreadable
//	}
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/akhildatla/rax/pkg/command"
	"github.com/akhildatla/rax/pkg/register"
)

// Common errors
var (
	ErrInput = errors.New("can't get input from terminal")
)

const (
	msgSyntax = "Invalid syntax, type '?' for help"
	msgRange  = "Value out of range"
)

// Options configures optional Session behavior.
type Options struct {
	// Color wraps the error tag of diagnostics in ANSI red.
	Color bool

	// Trace records every processed line when non-nil.
	Trace *Trace

	// Logger receives a debug record per applied command. Nil disables it.
	Logger *slog.Logger
}

// Session is one interactive run over a register machine.
type Session struct {
	machine *register.Machine
	src     LineSource
	out     io.Writer
	errOut  io.Writer
	opts    Options
	logger  *slog.Logger
}

// New creates a session reading commands from src. Prompts and help go to
// out, diagnostics to errOut.
func New(machine *register.Machine, src LineSource, out, errOut io.Writer) *Session {
	return NewWithOptions(machine, src, out, errOut, Options{})
}

// NewWithOptions creates a session with the given options.
func NewWithOptions(machine *register.Machine, src LineSource, out, errOut io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		machine: machine,
		src:     src,
		out:     out,
		errOut:  errOut,
		opts:    opts,
		logger:  logger,
	}
}

// Machine returns the register the session drives.
func (s *Session) Machine() *register.Machine {
	return s.machine
}

// Run loops until a quit command is read. It returns nil on quit, an error
// wrapping ErrInput when the input ends or fails, or the context's error if
// ctx is cancelled between lines.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, s.machine.Render()+" ")

		line, err := s.src.ReadLine()
		if errors.Is(err, ErrLineTooLong) {
			s.record(line, command.Command{Kind: command.Invalid, Err: err}, register.Outcome{Effect: register.EffectError, Err: err})
			s.report(err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInput, err)
		}

		if quit := s.Step(line); quit {
			return nil
		}
	}
}

// Step applies a single line and handles its side effects. It reports
// whether the line asked the session to stop.
func (s *Session) Step(line string) bool {
	cmd := command.Parse(line)
	outcome := s.machine.Apply(cmd)
	s.record(line, cmd, outcome)

	s.logger.Debug("applied command",
		"command", cmd.String(),
		"value", s.machine.Value(),
		"mode", s.machine.Mode().String())

	switch outcome.Effect {
	case register.EffectHelp:
		s.printHelp()
	case register.EffectQuit:
		return true
	case register.EffectError:
		s.report(outcome.Err)
	}
	return false
}

func (s *Session) record(line string, cmd command.Command, outcome register.Outcome) {
	if s.opts.Trace == nil {
		return
	}
	s.opts.Trace.Record(line, cmd, outcome, s.machine.Render())
}

func (s *Session) report(err error) {
	if register.IsRange(err) {
		ReportError(s.errOut, s.opts.Color, msgRange)
		return
	}
	ReportError(s.errOut, s.opts.Color, msgSyntax)
}

// ReportError writes a one-line diagnostic tagged "[ Error ]".
func ReportError(w io.Writer, color bool, msg string) {
	tag := "[ Error ]"
	if color {
		tag = "\033[31m[ Error ]\033[00m"
	}
	fmt.Fprintf(w, "%s %s\n", tag, msg)
}
