package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/akhildatla/rax/pkg/command"
	"github.com/akhildatla/rax/pkg/register"
)

func TestTrace_Empty(t *testing.T) {
	tr := NewTrace()
	if tr.Len() != 0 {
		t.Errorf("expected empty trace, got %d rows", tr.Len())
	}

	var buf bytes.Buffer
	if _, err := tr.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no commands") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestTrace_RecordsSession(t *testing.T) {
	tr := NewTrace()
	var out, errOut bytes.Buffer
	s := NewWithOptions(
		register.New(0, command.Decimal),
		NewLineReader(strings.NewReader("+ 5\nbogus\n$ 0x99999999999999999\nx\nq\n"), 0),
		&out, &errOut,
		Options{Trace: tr},
	)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if tr.Len() != 5 {
		t.Fatalf("expected 5 rows, got %d", tr.Len())
	}

	frame := tr.Frame()
	idx, err := frame.NameToColumn(ColOutcome)
	if err != nil {
		t.Fatalf("missing outcome column: %v", err)
	}
	outcomes := frame.Series[idx]
	expected := []string{"ok", "syntax error", "range error", "ok", "quit"}
	for i, want := range expected {
		if got := outcomes.Value(i); got != want {
			t.Errorf("row %d: expected outcome %q, got %v", i, want, got)
		}
	}

	idx, err = frame.NameToColumn(ColRegister)
	if err != nil {
		t.Fatalf("missing register column: %v", err)
	}
	if got := frame.Series[idx].Value(3); got != "[0x5]" {
		t.Errorf("expected [0x5] after hex switch, got %v", got)
	}

	var buf bytes.Buffer
	if _, err := tr.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "bogus") {
		t.Errorf("expected input in table, got: %s", buf.String())
	}
}

func TestTrace_LongLineKeepsPrefix(t *testing.T) {
	tr := NewTrace()
	var out, errOut bytes.Buffer
	s := NewWithOptions(
		register.New(0, command.Decimal),
		NewLineReader(strings.NewReader("$ 123456789012345\nq\n"), 8),
		&out, &errOut,
		Options{Trace: tr},
	)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	frame := tr.Frame()
	idx, err := frame.NameToColumn(ColInput)
	if err != nil {
		t.Fatalf("missing input column: %v", err)
	}
	if got := frame.Series[idx].Value(0); got != "$ 123456" {
		t.Errorf("expected rejected prefix in input column, got %v", got)
	}
	idx, err = frame.NameToColumn(ColOutcome)
	if err != nil {
		t.Fatalf("missing outcome column: %v", err)
	}
	if got := frame.Series[idx].Value(0); got != "syntax error" {
		t.Errorf("expected syntax error outcome, got %v", got)
	}
}
