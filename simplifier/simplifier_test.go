package simplifier_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/evaluator"
	"github.com/t14raptor/es3/generator"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser"
	"github.com/t14raptor/es3/simplifier"
)

func parse(t *testing.T, src string) *ast.Function {
	t.Helper()
	fn, err := parser.ParseProgram(input.NewString(src))
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", src, err)
	}
	return fn
}

func flatten(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", ""), "    ", "")
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = 1 + 2 * 3;", "x = 7;"},
		{"x = 'a' + 'b';", "x = 'ab';"},
		{"x = -(2 - 5);", "x = 3;"},
		{"x = 1 - 5;", "x = -4;"},
		{"x = 1 - 'a';", "x = 0 / 0;"},
		{"x = -1 / 0;", "x = -(1 / 0);"},
		{"x = void 1;", "x = void 0;"},
		{"x = typeof void 1;", "x = 'undefined';"},
		{"x = 'abc'.length;", "x = 3;"},
		{"x = y + (1 + 2);", "x = y + 3;"},
		{"f(1 < 2, y);", "f(true, y);"},
		{"if (1 + 1 == 2) a(); else b();", "a();"},
		{"if (0) a(); else b();", "b();"},
		{"if (0) a(); b();", "b();"},
		{"while (0) a(); b();", "b();"},
		{"for (; 1 > 2;) a();", "for (; false;) a();"},
		{"x = 1 ? f() : g();", "x = f();"},
		{"x = 0 ? y : z;", "x = 0 ? y : z;"},
		{"x = true && f();", "x = f();"},
		{"x = 'a' in 'b';", "x = 'a' in 'b';"},
		{"var h = function () { return 2 * 3; };", "var h = function () { return 6; };"},
		{"o[1 + 1] = 2 + 2;", "o[2] = 4;"},
		{"x = (1 - 2).toString();", "x = (-1).toString();"},
		{"x = (2 - 1 / 0).y;", "x = (-(1 / 0)).y;"},
		{"switch (x) { case 1 + 1: if (0) y(); z(); }", "switch (x) { case 2: z(); }"},
	}
	ip := evaluator.New()
	for _, tt := range tests {
		fn := parse(t, tt.input)
		simplifier.Simplify(ip, fn)
		got := flatten(generator.Generate(fn))
		want := flatten(generator.Generate(parse(t, tt.expected)))
		if got != want {
			t.Errorf("%q: got %q, want %q", tt.input, got, want)
		}
	}
}

func TestSimplifyReportsChange(t *testing.T) {
	ip := evaluator.New()
	if simplifier.Simplify(ip, parse(t, "x = y + 1;")) {
		t.Error("reported a change for an expression with no constant part")
	}
	fn := parse(t, "x = 1 + 1;")
	if !simplifier.Simplify(ip, fn) {
		t.Error("reported no change for a constant expression")
	}
	if simplifier.Simplify(ip, fn) {
		t.Error("a second pass changed a simplified program")
	}
}

func TestSimplifyPreservesResult(t *testing.T) {
	sources := []string{
		"var r = ''; if (1) r += 'a'; r += 'abc'.length; r",
		"var n = 0; while (0) n++; do n += 2 * 3; while (0); n",
		"var s = 1 < 2 ? 'yes' : 'no'; s + typeof void 0",
		"function f() { return 1 / 0; } f() == 2 / 0",
		"var x; if (0) { var x = 5; } typeof x",
	}
	for _, src := range sources {
		want, err := evaluator.New().Run(parse(t, src))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		ip := evaluator.New()
		fn := parse(t, src)
		simplifier.Simplify(ip, fn)
		got, err := ip.Run(fn)
		if err != nil {
			t.Fatalf("simplified %q: %v", src, err)
		}
		if !evaluator.StrictEquals(got, want) {
			t.Errorf("%q: got %v, want %v", src, got, want)
		}
	}
}
