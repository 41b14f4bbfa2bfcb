// Package main provides the CLI entry point for rax, an interactive counter.
//
// Usage:
//
//	rax              # start at 0, decimal display
//	rax -x 0xff      # start at 255, hexadecimal display
//	rax --trace      # print a table of processed commands on exit
//
// Exit codes:
//
//	0   quit command or --help
//	2   unusable flags or config file
//	5   standard input closed or unreadable
//	33  invalid or out-of-range initial value
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/akhildatla/rax/pkg/config"
	"github.com/akhildatla/rax/pkg/register"
	"github.com/akhildatla/rax/pkg/repl"
)

// Exit codes. The input and initial-value codes match EIO and EDOM.
const (
	exitOK           = 0
	exitUsage        = 2
	exitInput        = 5
	exitInitialValue = 33
)

func main() {
	atexit.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		color := config.Default().UseColor(os.Stderr)
		switch {
		case errors.Is(err, config.ErrConfigFile), errors.Is(err, config.ErrUsage):
			repl.ReportError(os.Stderr, color, err.Error())
			fmt.Fprint(os.Stderr, config.Usage())
			return exitUsage
		case errors.Is(err, config.ErrInitialRange):
			repl.ReportError(os.Stderr, color, "Initial value out of range")
			return exitInitialValue
		default:
			repl.ReportError(os.Stderr, color, "Invalid initial value specified")
			return exitInitialValue
		}
	}

	if cfg.Help {
		fmt.Print(config.Usage())
		return exitOK
	}

	color := cfg.UseColor(os.Stderr)
	opts := repl.Options{
		Color:  color,
		Logger: cfg.Logger(os.Stderr),
	}
	if cfg.Trace {
		opts.Trace = repl.NewTrace()
		atexit.Register(func() {
			fmt.Fprintln(os.Stderr)
			_, _ = opts.Trace.WriteTo(os.Stderr)
		})
	}

	session := repl.NewWithOptions(
		register.New(cfg.Value, cfg.Mode),
		repl.NewLineReader(os.Stdin, cfg.MaxLine),
		os.Stdout, os.Stderr,
		opts,
	)

	if err := session.Run(context.Background()); err != nil {
		if errors.Is(err, repl.ErrInput) {
			repl.ReportError(os.Stderr, color, "Can't get input from terminal")
		} else {
			repl.ReportError(os.Stderr, color, err.Error())
		}
		return exitInput
	}
	return exitOK
}
