// Package testutil provides testing utilities for rax tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempFile creates a temporary file with the given content and extension.
// The file is automatically cleaned up when the test finishes.
func TempFile(t *testing.T, content, ext string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test"+ext)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// Lines joins commands into terminal input, one per line.
func Lines(commands ...string) string {
	if len(commands) == 0 {
		return ""
	}
	return strings.Join(commands, "\n") + "\n"
}

// Prompts renders the prompt text a session prints for the given register
// displays, e.g. Prompts("[0]", "[1]") == "[0] [1] ".
func Prompts(displays ...string) string {
	var b strings.Builder
	for _, d := range displays {
		b.WriteString(d)
		b.WriteByte(' ')
	}
	return b.String()
}
