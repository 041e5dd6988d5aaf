package generator_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/generator"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser"
)

func parseSource(t *testing.T, src string) *ast.Function {
	t.Helper()
	fn, err := parser.ParseProgram(input.NewString(src))
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", src, err)
	}
	return fn
}

// generateNoIndent prints src on a single line.
func generateNoIndent(t *testing.T, src string) string {
	t.Helper()
	output := generator.Generate(parseSource(t, src))
	return strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", "")
}

func TestSequenceExpressionInArguments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sequence as single argument to new",
			input:    "new F6(((a = 1), 2));",
			expected: "new F6((a = 1, 2));",
		},
		{
			name:     "sequence as second argument to new",
			input:    "new F6(x, ((b = 2), 3));",
			expected: "new F6(x, (b = 2, 3));",
		},
		{
			name:     "sequence with function literal in new",
			input:    "new F6(h, ((r = R), function (W) { return r++; }));",
			expected: "new F6(h, (r = R, function (W) {return r++;}));",
		},
		{
			name:     "sequence in regular function call",
			input:    "f(x, ((e = 5), 6));",
			expected: "f(x, (e = 5, 6));",
		},
		{
			name:     "sequence in array literal",
			input:    "x = [(a, b), c];",
			expected: "x = [(a, b), c];",
		},
		{
			name:     "sequence in throw statement",
			input:    "throw ((a = 1), 2);",
			expected: "throw a = 1, 2;",
		},
		{
			name:     "sequence in return statement",
			input:    "function g() { return ((d = 4), 5); }",
			expected: "function g() {return d = 4, 5;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateNoIndent(t, tt.input); got != tt.expected {
				t.Errorf("Generate(%q)\n  got:  %s\n  want: %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParentheses(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(a + b) * c;", "(a + b) * c;"},
		{"a + (b * c);", "a + b * c;"},
		{"(a - b) - c;", "a - b - c;"},
		{"a - (b - c);", "a - (b - c);"},
		{"(a = b) ? c : d;", "(a = b) ? c : d;"},
		{"a ? b : (c, d);", "a ? b : (c, d);"},
		{"(a ? b : c) ? d : e;", "(a ? b : c) ? d : e;"},
		{"(-a).b;", "(-a).b;"},
		{"(a++).b;", "(a++).b;"},
		{"- (-a);", "- -a;"},
		{"+ (+a);", "+ +a;"},
		{"- (--a);", "- --a;"},
		{"-(+a);", "-+a;"},
		{"(1).toString();", "(1).toString();"},
		{"(new A).b;", "(new A).b;"},
		{"new (A())();", "new (A())();"},
		{"new (a.b().c);", "new (a.b().c);"},
		{"new (new A);", "new (new A);"},
		{"(new A)();", "(new A)();"},
		{"(function () {})();", "(function () {}());"},
		{"({a: 1}).a;", "({a: 1}.a);"},
		{"(function () {}).call(a) + 1;", "(function () {}.call(a) + 1);"},
		{"for ((a in b); c;) ;", "for ((a in b); c;) ;"},
		{"for (var x = (a in b); c;) ;", "for (var x = (a in b); c;) ;"},
		{"for (x = [a in b]; c;) ;", "for (x = [a in b]; c;) ;"},
		{"a in b;", "a in b;"},
	}

	for _, tt := range tests {
		if got := generateNoIndent(t, tt.input); got != tt.expected {
			t.Errorf("Generate(%q)\n  got:  %s\n  want: %s", tt.input, got, tt.expected)
		}
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`'it\'s';`, `"it's";`},
		{`"a\"b\\c";`, `"a\"b\\c";`},
		{`"\x01\n\t";`, `"\u0001\n\t";`},
		{"1e21;", "1e+21;"},
		{"0x10;", "16;"},
		{".5;", "0.5;"},
		{"x = /a+b/gi;", "x = /a+b/gi;"},
		{"[1, , 2];", "[1,, 2];"},
		{"[, ];", "[,];"},
		{"[];", "[];"},
		{"({});", "({});"},
		{`x = {a: 1, "b c": 2, 3: 4, "if": 5};`, `x = {a: 1,"b c": 2,"3": 4,"if": 5};`},
		{"null; true; false; this;", "null;true;false;this;"},
	}

	for _, tt := range tests {
		if got := generateNoIndent(t, tt.input); got != tt.expected {
			t.Errorf("Generate(%q)\n  got:  %s\n  want: %s", tt.input, got, tt.expected)
		}
	}
}

func TestStatements(t *testing.T) {
	src := `function f(a, b) {
    var x = 1, y;
    if (a) {
        return;
    } else if (b) {
        x++;
    } else {
        y = 2;
    }
    for (var i = 0; i < 10; i++) {
        continue;
    }
    for (k in o) {
        break;
    }
    do {
        x--;
    } while (x);
    outer: inner: while (true) {
        break outer;
    }
    switch (a) {
        case 1:
            x = 2;
            break;
        default:
            x = 3;
    }
    try {
        throw x;
    } catch (e) {
        y = e;
    } finally {
        y = 0;
    }
    with (o) {
        p = q;
    }
    return x;
}
f(1, 2);`
	if got := generator.Generate(parseSource(t, src)); got != src {
		t.Errorf("Generate\n  got:\n%s\n  want:\n%s", got, src)
	}
}

func TestNestedStatementsAreBraced(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"if (a) b;", "if (a) {b;}"},
		{"if (a) if (b) c; else d;", "if (a) {if (b) {c;} else {d;}}"},
		{"while (a) ;", "while (a) ;"},
		{"for (var k in o) f(k);", "for (var k in o) {f(k);}"},
	}

	for _, tt := range tests {
		if got := generateNoIndent(t, tt.input); got != tt.expected {
			t.Errorf("Generate(%q)\n  got:  %s\n  want: %s", tt.input, got, tt.expected)
		}
	}
}

func TestFunctionSource(t *testing.T) {
	fn := parseSource(t, "function add(a, b) { return a + b; }")
	got := generator.FunctionSource(fn.Body.Functions[0].Function)
	want := "function add(a, b) {\n    return a + b;\n}"
	if got != want {
		t.Errorf("FunctionSource\n  got:  %q\n  want: %q", got, want)
	}

	empty := parseSource(t, "x = function () {};")
	lit := empty.Body.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.AssignExpression).Right.(*ast.FunctionLiteral)
	if got := generator.FunctionSource(lit.Function); got != "function () {}" {
		t.Errorf("FunctionSource(anonymous) = %q", got)
	}
}

// Printing and re-parsing must reach a fixed point.
func TestRoundTripIsStable(t *testing.T) {
	inputs := []string{
		"a = b ? c : d ? e : f;",
		"x = a || b && c | d ^ e & f == g < h << i + j * k;",
		"new a.b.C(1).d[e](f);",
		"delete a[b], void 0, typeof c;",
		"l: for (;;) { continue l; }",
		"var f = function g(a) { return function () { return a; }; };",
		"for (var i = 0, n = (a in b); i < n; ++i) ;",
		"x = -(-1);",
		"if (a) { } else ;",
	}
	for _, src := range inputs {
		first := generator.Generate(parseSource(t, src))
		second := generator.Generate(parseSource(t, first))
		if first != second {
			t.Errorf("round trip of %q not stable\n  first:  %s\n  second: %s", src, first, second)
		}
	}
}
