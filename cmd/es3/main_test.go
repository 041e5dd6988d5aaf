package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/slog"

	"github.com/t14raptor/es3/evaluator"
	"github.com/t14raptor/es3/parser/scanner"
)

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	ip := evaluator.New()
	installHostFunctions(ip, &out)
	if _, err := ip.EvalString("print('a', 1 + 1, null); print()", "print.js"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "a 2 null\n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExitStatus(t *testing.T) {
	dir := t.TempDir()
	write := func(name, src string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	tests := []struct {
		args []string
		want int
	}{
		{[]string{write("ok.js", "var x = 1;")}, 0},
		{[]string{write("throw.js", "throw new Error('x');")}, 1},
		{[]string{write("syntax.js", "var = ;")}, 1},
		{[]string{"-js", "9.9", "-e", "1"}, 2},
		{[]string{"-config", filepath.Join(dir, "missing.yaml"), "-e", "1"}, 2},
	}
	for _, tt := range tests {
		if got := run(tt.args); got != tt.want {
			t.Errorf("%v: got status %d, want %d", tt.args, got, tt.want)
		}
	}
}

func TestSimplifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fold.js")
	if err := os.WriteFile(path, []byte("if (1) x = 2 * 21;"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := simplifyFile(evaluator.New(), scanner.Compat{}, log, path, &out); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "x = 42;" {
		t.Errorf("got %q, want %q", got, "x = 42;")
	}
}
