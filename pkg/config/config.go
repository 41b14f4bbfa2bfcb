// Package config turns the rax command line and optional defaults file into
// the starting state of a session.
//
//	rax [OPTION]... [VALUE]
//
// Flags always win over the defaults file. VALUE uses the same literal
// grammar as interactive commands, so "rax -x 0xff" and "rax -- -12" work.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/akhildatla/rax/pkg/command"
	"github.com/akhildatla/rax/pkg/literal"
	"github.com/akhildatla/rax/pkg/repl"
)

// Common errors
var (
	ErrUsage          = errors.New("invalid usage")
	ErrInitialValue   = errors.New("invalid initial value specified")
	ErrInitialRange   = errors.New("initial value out of range")
	ErrConfigFile     = errors.New("invalid config file")
	ErrUnknownMode    = errors.New("unknown display mode")
	ErrUnknownColor   = errors.New("unknown color setting")
	errMissingOperand = errors.New("flag needs an argument")
)

// Color selects when diagnostics are colored.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

// Config is the resolved startup configuration.
type Config struct {
	Mode    command.Mode
	Value   int64
	MaxLine int
	Color   Color
	Trace   bool
	Verbose bool
	Help    bool
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Mode:    command.Decimal,
		MaxLine: repl.DefaultMaxLine,
		Color:   ColorAuto,
	}
}

// modeFlag is a boolean flag that selects a display mode when present.
// Several mode flags may share one target; the last one on the command
// line wins.
type modeFlag struct {
	target *command.Mode
	set    *bool
	mode   command.Mode
}

func (f *modeFlag) String() string   { return "false" }
func (f *modeFlag) IsBoolFlag() bool { return true }

func (f *modeFlag) Set(s string) error {
	if s != "true" {
		return nil
	}
	*f.target = f.mode
	*f.set = true
	return nil
}

// valuedFlags take an operand that may be given as a separate argument.
var valuedFlags = map[string]bool{
	"config":   true,
	"max-line": true,
	"color":    true,
}

// Parse resolves args (without the program name).
func Parse(args []string) (*Config, error) {
	var (
		flagMode   command.Mode
		modeSet    bool
		configPath string
		maxLine    int
		color      string
		trace      bool
		verbose    bool
		help       bool
	)

	fs := flag.NewFlagSet("rax", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, m := range []struct {
		names []string
		mode  command.Mode
	}{
		{[]string{"x", "hex"}, command.Hexadecimal},
		{[]string{"o", "oct"}, command.Octal},
		{[]string{"d", "dec"}, command.Decimal},
	} {
		for _, name := range m.names {
			fs.Var(&modeFlag{target: &flagMode, set: &modeSet, mode: m.mode}, name, "display count in "+m.mode.String())
		}
	}
	fs.StringVar(&configPath, "config", "", "read defaults from a JSON file")
	fs.IntVar(&maxLine, "max-line", 0, "longest accepted input line in bytes")
	fs.StringVar(&color, "color", "", "color diagnostics: auto, always or never")
	fs.BoolVar(&trace, "trace", false, "print a table of processed commands on exit")
	fs.BoolVar(&verbose, "v", false, "log every applied command to stderr")
	fs.BoolVar(&help, "h", false, "show usage")
	fs.BoolVar(&help, "help", false, "show usage")

	flagArgs, positional, err := splitArgs(fs, args)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	positional = append(positional, fs.Args()...)

	cfg := Default()
	if help {
		cfg.Help = true
		return cfg, nil
	}

	if configPath != "" {
		if err := LoadFile(configPath, cfg); err != nil {
			return nil, err
		}
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if modeSet {
		cfg.Mode = flagMode
	}
	if explicit["max-line"] {
		if maxLine <= 0 {
			return nil, fmt.Errorf("%w: max-line must be positive, got %d", ErrUsage, maxLine)
		}
		cfg.MaxLine = maxLine
	}
	if explicit["color"] {
		c, err := ParseColor(color)
		if err != nil {
			return nil, err
		}
		cfg.Color = c
	}
	if explicit["trace"] {
		cfg.Trace = trace
	}
	if explicit["v"] {
		cfg.Verbose = verbose
	}

	// Every positional value is parsed; the last one is the starting value.
	for _, arg := range positional {
		v, err := ParseInitial(arg)
		if err != nil {
			return nil, err
		}
		cfg.Value = v
	}

	return cfg, nil
}

// ParseInitial parses a starting register value.
func ParseInitial(s string) (int64, error) {
	v, err := literal.Parse(s)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, literal.ErrSyntax):
		return 0, fmt.Errorf("%w: %q", ErrInitialValue, s)
	default:
		return 0, fmt.Errorf("%w: %q", ErrInitialRange, s)
	}
}

// ParseMode accepts any spelling the interactive mode commands accept,
// e.g. "hex", "Octal" or "d".
func ParseMode(s string) (command.Mode, error) {
	cmd := command.Parse(s)
	if cmd.Kind != command.SwitchMode {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return cmd.Mode, nil
}

// ParseColor parses a color setting.
func ParseColor(s string) (Color, error) {
	switch c := Color(strings.ToLower(s)); c {
	case ColorAuto, ColorAlways, ColorNever:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// UseColor reports whether diagnostics written to f should be colored.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return f != nil && term.IsTerminal(int(f.Fd()))
	}
}

// Logger returns the debug logger for the session, or nil when verbose
// logging is off.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	if !c.Verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// splitArgs separates flags from positional values. Negative literals such
// as "-12" or "-0x1f" are values, not flags, and so is any unknown
// dash-prefixed token carrying a digit ("--5", "-x5"): those are left for
// ParseInitial to reject.
func splitArgs(fs *flag.FlagSet, args []string) (flags, positional []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flags, append(positional, args[i+1:]...), nil
		case !isFlag(fs, arg):
			positional = append(positional, arg)
		default:
			flags = append(flags, arg)
			name := strings.TrimLeft(arg, "-")
			if valuedFlags[name] {
				if i+1 >= len(args) {
					return nil, nil, fmt.Errorf("%w: %w: %s", ErrUsage, errMissingOperand, arg)
				}
				i++
				flags = append(flags, args[i])
			}
		}
	}
	return flags, positional, nil
}

func isFlag(fs *flag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	if arg[1] >= '0' && arg[1] <= '9' {
		return false
	}
	name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
	if fs.Lookup(name) != nil {
		return true
	}
	return !strings.ContainsAny(name, "0123456789")
}

// Usage returns the command line help.
func Usage() string {
	return `Usage: rax [OPTION]... [VALUE]
A program designed to facilitate the counting of numbers

-x, --hex          Display count in hexadecimal
-o, --oct          Display count in octal
-d, --dec          Display count in decimal (default)
--config FILE      Read defaults from a JSON file
--max-line N       Longest accepted input line in bytes
--color WHEN       Color diagnostics: auto, always or never
--trace            Print a table of processed commands on exit
-v                 Log every applied command to stderr
-h, --help         Show this help
`
}
