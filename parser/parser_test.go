package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/generator"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser"
	"github.com/t14raptor/es3/parser/scanner"
	"github.com/t14raptor/es3/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parse(code string, opts ...parser.Option) (*ast.Function, error) {
	return parser.ParseProgram(input.NewString(code, input.WithName("test.js")), opts...)
}

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string, opts ...parser.Option) *ast.Function {
	t.Helper()
	fn, err := parse(code, opts...)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return fn
}

// mustFail parses code and returns the syntax error it must produce.
func mustFail(t *testing.T, code string, opts ...parser.Option) *parser.SyntaxError {
	t.Helper()
	_, err := parse(code, opts...)
	if err == nil {
		t.Fatalf("parse(%q) succeeded; want error", code)
	}
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("parse(%q) error %T is not a *parser.SyntaxError", code, err)
	}
	return se
}

// roundTrip parses code, regenerates it, and returns the output.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	fn := mustParse(t, code)
	return strings.TrimSpace(generator.Generate(fn.Body))
}

// assertRoundTrip parses code, regenerates it, and checks that the output
// matches the expected string.
func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := roundTrip(t, code)
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// stmt returns the i-th top-level statement.
func stmt(fn *ast.Function, i int) ast.Stmt {
	return fn.Body.Statements[i]
}

// exprOf extracts the expression from an ExpressionStatement.
func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestPrecedence(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"1 + 2 * 3;", "1 + 2 * 3;"},
		{"(1 + 2) * 3;", "(1 + 2) * 3;"},
		{"a - b - c;", "a - b - c;"},
		{"a - (b - c);", "a - (b - c);"},
		{"a < b < c;", "a < b < c;"},
		{"a || b && c | d ^ e & f == g < h << i + j * k;", "a || b && c | d ^ e & f == g < h << i + j * k;"},
		{"a = b = c;", "a = b = c;"},
		{"a += b ? c : d;", "a += b ? c : d;"},
		{"-a * !b;", "-a * !b;"},
		{"typeof a + void 0;", "typeof a + void 0;"},
		{"a, b, c;", "a, b, c;"},
	}
	for _, tt := range tests {
		assertRoundTrip(t, tt.code, tt.want)
	}
}

func TestRelationalLeftAssociative(t *testing.T) {
	fn := mustParse(t, "a < b > c")
	bin := exprOf(stmt(fn, 0)).(*ast.BinaryExpression)
	if bin.Operator != token.Greater {
		t.Fatalf("root operator = %v; want >", bin.Operator)
	}
	if left, ok := bin.Left.(*ast.BinaryExpression); !ok || left.Operator != token.Less {
		t.Errorf("left = %#v; want a < b", bin.Left)
	}
}

func TestNewAndCall(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"new A;", "new A;"},
		{"new A();", "new A();"},
		{"new A(1)(2);", "new A(1)(2);"},
		{"new new A()();", "new new A()();"},
		{"new a.b.C();", "new a.b.C();"},
		{"a.b[c](d).e;", "a.b[c](d).e;"},
	}
	for _, tt := range tests {
		assertRoundTrip(t, tt.code, tt.want)
	}

	fn := mustParse(t, "new A(1)(2)")
	call, ok := exprOf(stmt(fn, 0)).(*ast.CallExpression)
	if !ok {
		t.Fatalf("root = %T; want *ast.CallExpression", exprOf(stmt(fn, 0)))
	}
	nw, ok := call.Callee.(*ast.NewExpression)
	if !ok || len(nw.Arguments) != 1 {
		t.Fatalf("callee = %#v; want new A(1)", call.Callee)
	}

	fn = mustParse(t, "new A")
	if nw := exprOf(stmt(fn, 0)).(*ast.NewExpression); nw.Arguments != nil {
		t.Errorf("new A arguments = %v; want nil", nw.Arguments)
	}
}

func TestArrayLiteral(t *testing.T) {
	fn := mustParse(t, "[1,,2,]")
	arr := exprOf(stmt(fn, 0)).(*ast.ArrayLiteral)
	if got := len(arr.Elements); got != 3 {
		t.Fatalf("array length = %d; want 3", got)
	}
	if arr.Elements[1] != nil {
		t.Errorf("arr[1] = %#v; want hole", arr.Elements[1])
	}

	fn = mustParse(t, "[,,]")
	if got := len(exprOf(stmt(fn, 0)).(*ast.ArrayLiteral).Elements); got != 2 {
		t.Errorf("[,,] length = %d; want 2", got)
	}
}

func TestObjectLiteral(t *testing.T) {
	fn := mustParse(t, "x = {a: 1, 'b c': 2, 3: 3, 1.5: 4,}")
	obj := exprOf(stmt(fn, 0)).(*ast.AssignExpression).Right.(*ast.ObjectLiteral)
	want := []string{"a", "b c", "3", "1.5"}
	if len(obj.Properties) != len(want) {
		t.Fatalf("property count = %d; want %d", len(obj.Properties), len(want))
	}
	for i, k := range want {
		if obj.Properties[i].Key != k {
			t.Errorf("prop[%d] key = %q; want %q", i, obj.Properties[i].Key, k)
		}
	}
}

func TestRegExpLiteral(t *testing.T) {
	fn := mustParse(t, `x = /a\/b/gi`)
	re := exprOf(stmt(fn, 0)).(*ast.AssignExpression).Right.(*ast.RegExpLiteral)
	if re.Pattern != `a\/b` || re.Flags != "gi" {
		t.Errorf("regex = /%s/%s; want /a\\/b/gi", re.Pattern, re.Flags)
	}

	// Without JS compatibility the slash inside the class ends the body.
	mustFail(t, `x = /a[/]c/`)

	fn = mustParse(t, `x = /a\/b[/]c/gi`, parser.WithCompat(scanner.Compat{JS: scanner.JS15}))
	re = exprOf(stmt(fn, 0)).(*ast.AssignExpression).Right.(*ast.RegExpLiteral)
	if re.Pattern != `a\/b[/]c` || re.Flags != "gi" {
		t.Errorf("regex = /%s/%s; want /a\\/b[/]c/gi", re.Pattern, re.Flags)
	}

	fn = mustParse(t, "x = a / b / c")
	if _, ok := exprOf(stmt(fn, 0)).(*ast.AssignExpression).Right.(*ast.BinaryExpression); !ok {
		t.Errorf("a / b / c did not parse as division")
	}

	fn = mustParse(t, "/=/.test(s)")
	call := exprOf(stmt(fn, 0)).(*ast.CallExpression)
	re = call.Callee.(*ast.DotExpression).Left.(*ast.RegExpLiteral)
	if re.Pattern != "=" {
		t.Errorf("pattern = %q; want \"=\"", re.Pattern)
	}
}

func TestAssignmentRequiresLHS(t *testing.T) {
	for _, code := range []string{"a + b = c", "!a = b", "a++ = b"} {
		se := mustFail(t, code)
		if !strings.Contains(se.Msg, "expected ';', '}' or newline") {
			t.Errorf("parse(%q) = %q; want missing semicolon", code, se.Msg)
		}
	}
	// A LeftHandSideExpression that is not a reference still parses; the
	// evaluator rejects it.
	mustParse(t, "f() = 1")
}

// ---------------------------------------------------------------------------
// Automatic semicolon insertion
// ---------------------------------------------------------------------------

func TestASI(t *testing.T) {
	fn := mustParse(t, "a\n++\nb")
	if got := len(fn.Body.Statements); got != 2 {
		t.Fatalf("statement count = %d; want 2", got)
	}
	if _, ok := exprOf(stmt(fn, 0)).(*ast.Identifier); !ok {
		t.Errorf("stmt[0] = %T; want *ast.Identifier", exprOf(stmt(fn, 0)))
	}
	upd, ok := exprOf(stmt(fn, 1)).(*ast.UpdateExpression)
	if !ok || upd.Postfix {
		t.Errorf("stmt[1] = %#v; want prefix ++b", exprOf(stmt(fn, 1)))
	}

	fn = mustParse(t, "function f() {\n return\n 1\n}")
	body := fn.Body.Functions[0].Function.Body
	if got := len(body.Statements); got != 2 {
		t.Fatalf("function statement count = %d; want 2", got)
	}
	if ret := body.Statements[0].(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("return argument = %#v; want nil", ret.Argument)
	}

	mustParse(t, "{ a }")
	mustParse(t, "x = 1\ny = 2")

	se := mustFail(t, "a b")
	if want := "expected ';', '}' or newline but got an identifier"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}
}

func TestThrowNewline(t *testing.T) {
	se := mustFail(t, "throw\n1")
	if !strings.HasPrefix(se.Msg, "newline not allowed after 'throw'") {
		t.Errorf("msg = %q", se.Msg)
	}
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestForForms(t *testing.T) {
	tests := []struct {
		code string
		want any
	}{
		{"for (;;) {}", &ast.ForStatement{}},
		{"for (i = 0; i < 10; i++) {}", &ast.ForStatement{}},
		{"for (var i = 0, j; i < 10; i++) {}", &ast.ForVarStatement{}},
		{"for (var k in o) {}", &ast.ForVarInStatement{}},
		{"for (var k = 1 in o) {}", &ast.ForVarInStatement{}},
		{"for (a.b in o) {}", &ast.ForInStatement{}},
		{"for (k in o) {}", &ast.ForInStatement{}},
		{"for (x = (a in b); x; ) break", &ast.ForStatement{}},
	}
	for _, tt := range tests {
		fn := mustParse(t, tt.code)
		got := stmt(fn, 0)
		switch tt.want.(type) {
		case *ast.ForStatement:
			_, ok := got.(*ast.ForStatement)
			if !ok {
				t.Errorf("parse(%q) = %T; want *ast.ForStatement", tt.code, got)
			}
		case *ast.ForVarStatement:
			if _, ok := got.(*ast.ForVarStatement); !ok {
				t.Errorf("parse(%q) = %T; want *ast.ForVarStatement", tt.code, got)
			}
		case *ast.ForVarInStatement:
			if _, ok := got.(*ast.ForVarInStatement); !ok {
				t.Errorf("parse(%q) = %T; want *ast.ForVarInStatement", tt.code, got)
			}
		case *ast.ForInStatement:
			if _, ok := got.(*ast.ForInStatement); !ok {
				t.Errorf("parse(%q) = %T; want *ast.ForInStatement", tt.code, got)
			}
		}
	}

	se := mustFail(t, "for (var a, b in o) {}")
	if want := "expected ';' but got 'in'"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}
	se = mustFail(t, "for (var a in o; ;) {}")
	if want := "expected ')' but got ';'"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}
	se = mustFail(t, "for (var a b) {}")
	if want := "expected ';' or 'in' but got an identifier"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}
}

func TestSwitch(t *testing.T) {
	fn := mustParse(t, "switch (x) { case 1: case 2: a(); break; default: b() }")
	sw := stmt(fn, 0).(*ast.SwitchStatement)
	if got := len(sw.Body); got != 3 {
		t.Fatalf("clause count = %d; want 3", got)
	}
	if sw.Default != 2 {
		t.Errorf("default = %d; want 2", sw.Default)
	}
	if sw.Body[0].Consequent != nil {
		t.Errorf("case 1 consequent = %v; want nil", sw.Body[0].Consequent)
	}
	if got := len(sw.Body[1].Consequent); got != 2 {
		t.Errorf("case 2 consequent length = %d; want 2", got)
	}

	se := mustFail(t, "switch (x) { default: default: }")
	if want := "duplicate 'default' clause, near ':'"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}
	se = mustFail(t, "switch (x) { a: }")
	if want := "expected '}', 'case' or 'default' but got an identifier"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}
}

func TestTry(t *testing.T) {
	fn := mustParse(t, "try { a() } catch (e) { b(e) } finally { c() }")
	try := stmt(fn, 0).(*ast.TryStatement)
	if try.Parameter != "e" || try.Catch == nil || try.Finally == nil {
		t.Errorf("try = %#v", try)
	}
	se := mustFail(t, "try { a() }")
	if !strings.HasPrefix(se.Msg, "expected 'catch' or 'finally'") {
		t.Errorf("msg = %q", se.Msg)
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	se := mustFail(t, "return 1")
	if want := "'return' statement not inside function, near a number"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}
}

func TestUnmatchedClosers(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"a; }", "unmatched '}', near '}'"},
		{"a; )", "unmatched ')', near ')'"},
		{"a; ]", "unmatched ']', near ']'"},
		{"a; else", "unexpected token, near 'else'"},
	}
	for _, tt := range tests {
		se := mustFail(t, tt.code)
		if se.Msg != tt.want {
			t.Errorf("parse(%q) = %q; want %q", tt.code, se.Msg, tt.want)
		}
	}
}

func TestErrorFormat(t *testing.T) {
	_, err := parse("a;\nb;\n)")
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "test.js:3: unmatched ')', near ')'"; err.Error() != want {
		t.Errorf("error = %q; want %q", err.Error(), want)
	}

	_, err = parse("a = 'abc")
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error %T; want *parser.SyntaxError", err)
	}
	var le *scanner.Error
	if !errors.As(err, &le) {
		t.Errorf("scanner error not wrapped: %v", err)
	}
	if !se.AtEOF {
		t.Errorf("unterminated string: AtEOF = false")
	}

	se = mustFail(t, "function f() {")
	if !se.AtEOF {
		t.Errorf("unterminated function: AtEOF = false (%s)", se.Msg)
	}
	se = mustFail(t, "a b")
	if se.AtEOF {
		t.Errorf("a b: AtEOF = true")
	}
}

// ---------------------------------------------------------------------------
// Labels
// ---------------------------------------------------------------------------

func TestLabels(t *testing.T) {
	fn := mustParse(t, "a: b: while (1) { continue a; break b; }")
	ls := stmt(fn, 0).(*ast.LabelledStatement)
	if len(ls.Labels) != 2 || ls.LabelSet.Name != "a" {
		t.Fatalf("labels = %v set %v", ls.Labels, ls.LabelSet)
	}
	loop := ls.Statement.(*ast.WhileStatement)
	if loop.Target != ls.LabelSet {
		t.Errorf("loop target = %p; want %p", loop.Target, ls.LabelSet)
	}
	body := loop.Body.(*ast.BlockStatement)
	if c := body.List[0].(*ast.ContinueStatement); c.Target != ls.LabelSet {
		t.Errorf("continue target = %p; want %p", c.Target, ls.LabelSet)
	}
	if b := body.List[1].(*ast.BreakStatement); b.Target != ls.LabelSet {
		t.Errorf("break target = %p; want %p", b.Target, ls.LabelSet)
	}

	fn = mustParse(t, "a: b: c: for (;;) { continue a; continue b; continue c; }")
	ls = stmt(fn, 0).(*ast.LabelledStatement)
	for i, s := range ls.Statement.(*ast.ForStatement).Body.(*ast.BlockStatement).List {
		if c := s.(*ast.ContinueStatement); c.Target != ls.LabelSet {
			t.Errorf("continue %d target = %p; want %p", i, c.Target, ls.LabelSet)
		}
	}

	fn = mustParse(t, "while (1) { switch (x) { case 1: continue; default: break } }")
	sw := stmt(fn, 0).(*ast.WhileStatement).Body.(*ast.BlockStatement).List[0].(*ast.SwitchStatement)
	if c := sw.Body[0].Consequent[0].(*ast.ContinueStatement); c.Target != nil {
		t.Errorf("anonymous continue target = %v; want nil", c.Target)
	}

	fn = mustParse(t, "a: { b(); break a; }")
	ls = stmt(fn, 0).(*ast.LabelledStatement)
	brk := ls.Statement.(*ast.BlockStatement).List[1].(*ast.BreakStatement)
	if brk.Target != ls.LabelSet {
		t.Errorf("block break target = %p; want %p", brk.Target, ls.LabelSet)
	}
}

func TestLabelErrors(t *testing.T) {
	tests := []struct {
		code, want string
	}{
		{"a: { continue a; }", "label 'a' not suitable for continue"},
		{"while (1) { break b; }", "label 'b' not defined, or not reachable"},
		{"continue;", "continue statement not within a loop"},
		{"break;", "break statement not within loop or switch"},
		{"switch (x) { case 1: continue; }", "continue statement not within a loop"},
		{"a: while (1) { (function () { break a; }); }", "label 'a' not defined, or not reachable"},
		{"a:\na: ;", "duplicate label 'a'; test.js:1: previous definition"},
	}
	for _, tt := range tests {
		se := mustFail(t, tt.code)
		if se.Msg != tt.want {
			t.Errorf("parse(%q) = %q; want %q", tt.code, se.Msg, tt.want)
		}
	}
	// A label may be reused once its statement has ended.
	mustParse(t, "a: ; a: ;")
}

// ---------------------------------------------------------------------------
// Functions
// ---------------------------------------------------------------------------

func TestFunctionHoisting(t *testing.T) {
	fn := mustParse(t, `
var x = 1;
function f(a, b) { var y; if (a) { var z; } function g() { var inner; } }
for (var i in o) { var x; }
`)
	body := fn.Body
	if !body.IsProgram {
		t.Errorf("IsProgram = false")
	}
	if got := len(body.Functions); got != 1 {
		t.Fatalf("function count = %d; want 1", got)
	}
	if got := strings.Join(body.Vars, ","); got != "x,i" {
		t.Errorf("program vars = %q; want \"x,i\"", got)
	}
	f := body.Functions[0].Function
	if f.Name != "f" || strings.Join(f.Params, ",") != "a,b" {
		t.Errorf("function = %s(%v)", f.Name, f.Params)
	}
	if got := strings.Join(f.Body.Vars, ","); got != "y,z" {
		t.Errorf("f vars = %q; want \"y,z\"", got)
	}
	if got := len(f.Body.Functions); got != 1 {
		t.Errorf("f functions = %d; want 1", got)
	}
}

func TestFunctionStatement(t *testing.T) {
	se := mustFail(t, "if (a) function f() {}")
	if want := "function keyword not allowed here, near 'function'"; se.Msg != want {
		t.Errorf("msg = %q; want %q", se.Msg, want)
	}

	fn := mustParse(t, "if (a) function f() {}", parser.WithCompat(scanner.Compat{JS: scanner.JS15}))
	ifs := stmt(fn, 0).(*ast.IfStatement)
	assign := exprOf(ifs.Consequent).(*ast.AssignExpression)
	if id := assign.Left.(*ast.Identifier); id.Name != "f" {
		t.Errorf("assignment target = %q; want f", id.Name)
	}
	if _, ok := assign.Right.(*ast.FunctionLiteral); !ok {
		t.Errorf("assignment value = %T; want *ast.FunctionLiteral", assign.Right)
	}
	if len(fn.Body.Vars) != 0 || len(fn.Body.Functions) != 0 {
		t.Errorf("conditional function was hoisted")
	}

	se = mustFail(t, "function () {}")
	if !strings.HasPrefix(se.Msg, "function keyword not allowed here") {
		t.Errorf("msg = %q", se.Msg)
	}
	mustParse(t, "(function () {})")
}

func TestParseFunction(t *testing.T) {
	fn, err := parser.ParseFunction("anonymous",
		input.NewString("a, b"),
		input.NewString("return a + b"))
	if err != nil {
		t.Fatal(err)
	}
	if fn.Name != "anonymous" || strings.Join(fn.Params, ",") != "a,b" {
		t.Errorf("function = %s(%v)", fn.Name, fn.Params)
	}
	if _, ok := fn.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Errorf("body[0] = %T; want *ast.ReturnStatement", fn.Body.Statements[0])
	}

	fn, err = parser.ParseFunction("", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(fn.Params) != 0 || len(fn.Body.Statements) != 0 {
		t.Errorf("empty function = %v / %v", fn.Params, fn.Body.Statements)
	}

	if _, err := parser.ParseFunction("", input.NewString("a,"), nil); err == nil {
		t.Errorf("trailing comma in parameters accepted")
	}
	if _, err := parser.ParseFunction("", input.NewString("a b"), nil); err == nil {
		t.Errorf("missing comma in parameters accepted")
	}
	if _, err := parser.ParseFunction("", nil, input.NewString("}")); err == nil {
		t.Errorf("unmatched brace in body accepted")
	}
}

func TestLocations(t *testing.T) {
	fn := mustParse(t, "a;\n\nb;\n/* x\n */ c;")
	lines := []int{1, 3, 5}
	for i, want := range lines {
		loc := stmt(fn, i).Loc()
		if loc.Line != want || loc.Filename != "test.js" {
			t.Errorf("stmt[%d] at %s; want test.js:%d", i, loc, want)
		}
	}
}
