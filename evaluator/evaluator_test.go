package evaluator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/evaluator"
	"github.com/t14raptor/es3/parser/scanner"
)

func run(t *testing.T, ip *evaluator.Interpreter, src string) string {
	t.Helper()
	v, err := ip.EvalString(src, "test.js")
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}
	s, err := ip.ToString(v)
	if err != nil {
		t.Fatalf("%q: converting result: %v", src, err)
	}
	return s
}

func runThrows(t *testing.T, ip *evaluator.Interpreter, src string) *evaluator.Exception {
	t.Helper()
	_, err := ip.EvalString(src, "test.js")
	var ex *evaluator.Exception
	if !errors.As(err, &ex) {
		t.Fatalf("%q: got error %v, want an exception", src, err)
	}
	return ex
}

type evalTest struct {
	src  string
	want string
}

func runTests(t *testing.T, tests []evalTest, opts ...evaluator.Option) {
	t.Helper()
	for _, tt := range tests {
		ip := evaluator.New(opts...)
		if got := run(t, ip, tt.src); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestExpressions(t *testing.T) {
	runTests(t, []evalTest{
		{"1+2", "3"},
		{"1 + '2'", "12"},
		{"'3' * '4'", "12"},
		{"5 % 3", "2"},
		{"1/0", "Infinity"},
		{"-1/0", "-Infinity"},
		{"0/0", "NaN"},
		{"-7 >> 1", "-4"},
		{"-1 >>> 28", "15"},
		{"1 << 33", "2"},
		{"~5", "-6"},
		{"'10' == 10", "true"},
		{"null == undefined", "true"},
		{"null === undefined", "false"},
		{"'b' > 'a'", "true"},
		{"NaN < 1", "false"},
		{"NaN >= 1", "false"},
		{"2 <= 2", "true"},
		{"0 || 'x'", "x"},
		{"1 && 0", "0"},
		{"1, 2", "2"},
		{"true ? 'a' : 'b'", "a"},
		{"var i = 1; i++ + ++i", "4"},
		{"var x = 2; x *= 3; x -= 1; x", "5"},
		{"[1,,3].length", "3"},
		{"[1,].length", "1"},
		{"({a: 1, 'b c': 2})['b c']", "2"},
	})
}

func TestStatements(t *testing.T) {
	runTests(t, []evalTest{
		{"var s = 0; for (var i = 0; i < 5; i++) s += i; s", "10"},
		{"var i = 0, n = 0; do { i++; if (i % 2) continue; n += i; } while (i < 6); n", "12"},
		{"var n = 0; while (n < 3) n++; n", "3"},
		{"for (var i = 0; i < 3; i++) i;", "2"},
		{"while (true) { 5; break; }", "5"},
		{"var r = ''; switch (2) { case 1: r += 'a'; case 2: r += 'b'; case 3: r += 'c'; break; default: r += 'd'; } r", "bc"},
		{"var r = ''; switch (5) { case 1: r += 'a'; default: r += 'd'; case 2: r += 'b'; } r", "db"},
		{"var r = ''; switch ('1') { case 1: r = 'number'; break; case '1': r = 'string'; } r", "string"},
		{"var o = {a: 1}; with (o) { a = 2; } o.a", "2"},
		{"if (0) 1; else 2;", "2"},
		{"var e = 1; try { throw 2; } catch (e) { } e", "1"},
	})
}

func TestLabels(t *testing.T) {
	runTests(t, []evalTest{
		{`var r = '';
outer: for (var i = 0; i < 3; i++) {
	for (var j = 0; j < 3; j++) {
		if (j == 1) continue outer;
		if (i == 2) break outer;
		r += i + '' + j + ';';
	}
}
r`, "00;10;"},
		{"var r = 0; a: { r = 1; break a; r = 2; } r", "1"},
		{"var r = ''; a: b: for (var i = 0; i < 2; i++) { r += i; continue a; } r", "01"},
		{"var r = 0; x: while (true) { switch (r) { case 0: r++; continue x; default: break x; } } r", "1"},
	})
}

func TestForIn(t *testing.T) {
	runTests(t, []evalTest{
		{"var o = {a: 1, b: 2, c: 3}; var r = ''; for (var k in o) { r += k; delete o.c; } r", "ab"},
		{"var o = {a: 1, b: 2}; var r = ''; for (var k in o) { r += k; delete o.a; } r", "ab"},
		{"var r = ''; for (var k in [7, 8]) r += k; r", "01"},
		{"function P() { this.own = 1; } P.prototype.inherited = 2; var r = ''; for (var k in new P) r += k + ','; r", "own,inherited,"},
		{"var o = {}; var r = 'none'; for (o.p in {x: 1}) r = o.p; r", "x"},
		{"var n = 0; for (var k in {a: 1, b: 2, c: 3}) { if (k == 'b') break; n++; } n", "1"},
	})

	ex := runThrows(t, evaluator.New(), "for (var k in null) ;")
	if got, want := ex.Message(), "TypeError: cannot convert null to object"; got != want {
		t.Errorf("for-in over null: got %q, want %q", got, want)
	}
}

func TestTryFinally(t *testing.T) {
	runTests(t, []evalTest{
		{"function f() { try { throw 1 } finally { return 2 } } f()", "2"},
		{"function f() { try { return 1 } finally { 'ignored' } } f()", "1"},
		{"function f() { for (;;) { try { return 1 } finally { break } } return 3 } f()", "3"},
		{"var r = ''; try { r += 't'; throw 1 } catch (e) { r += 'c' } finally { r += 'f' } r", "tcf"},
		{"function f() { try { throw 1 } finally { } } var r; try { f() } catch (e) { r = 'caught ' + e } r", "caught 1"},
		{"var r; try { try { throw 'in' } catch (e) { throw e + '!' } } catch (e) { r = e } r", "in!"},
	})
}

func TestFunctions(t *testing.T) {
	runTests(t, []evalTest{
		{"function counter() { var n = 0; return function () { return ++n; }; } var c = counter(); c(); c(); c()", "3"},
		{"var f = function fact(n) { return n <= 1 ? 1 : n * fact(n - 1); }; f(5)", "120"},
		{"var f = function g() {}; typeof g", "undefined"},
		{"var r = f(); function f() { return 1; } r", "1"},
		{"var t = typeof v; var v = 1; t", "undefined"},
		{"var toString; typeof toString", "function"},
		{"function f(a) { arguments[0] = 9; return a; } f(1)", "9"},
		{"function f(a) { a = 3; return arguments[0]; } f(1)", "3"},
		{"function f() { return arguments.length; } f(1, 2, 3)", "3"},
		{"function f(a, b) { return b; } typeof f(1)", "undefined"},
		{"function f(a, b) {} f.length", "2"},
		{"function P(x) { this.x = x; } P.prototype.get = function () { return this.x; }; new P(4).get()", "4"},
		{"function P() {} new P instanceof P", "true"},
		{"function Q() { return {a: 1}; } new Q().a", "1"},
		{"function f() { return this; } f() === this", "true"},
		{"var o = {m: function () { return this; }}; o.m() === o", "true"},
		{"function f() { return this; } f.call(null) === this", "true"},
		{"(function (a, b) { return a + b; }).apply(null, [1, 2])", "3"},
		{"new Function('a', 'b', 'return a * b')(3, 4)", "12"},
		{"new Function('return 1')()", "1"},
	})
}

func TestFunctionToString(t *testing.T) {
	ip := evaluator.New()
	got := run(t, ip, "(function f(a) { return a; }).toString()")
	want := "function f(a) {\n    return a;\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := run(t, ip, "String(isNaN)"); !strings.Contains(got, "[native code]") {
		t.Errorf("native function source: got %q", got)
	}
}

func TestEval(t *testing.T) {
	runTests(t, []evalTest{
		{"var x = 1; eval('x + 1')", "2"},
		{"function f() { var y = 5; return eval('y * 2'); } f()", "10"},
		{"function f() { eval('var z = 3'); return z; } f()", "3"},
		{"eval(42)", "42"},
		{"typeof eval()", "undefined"},
		{"var r; try { eval('throw 7') } catch (e) { r = e } r", "7"},
		{"var r; try { eval('(') } catch (e) { r = e.name } r", "SyntaxError"},
		{"function f() { eval('var d = 1'); return delete d; } f()", "true"},
		{"var g = 1; delete g", "false"},
	})
}

func TestIndirectEval(t *testing.T) {
	src := "var o = {a: 7}; o.eval = eval; o.eval('a')"
	ip := evaluator.New(evaluator.WithCompat(scanner.Compat{JS: scanner.JS11}))
	if got := run(t, ip, src); got != "7" {
		t.Errorf("JS11: got %q, want 7", got)
	}

	ex := runThrows(t, evaluator.New(), src)
	if got := ex.Message(); got != "ReferenceError: a" {
		t.Errorf("ECMA: got %q", got)
	}
}

func TestFunctionArgumentsProperty(t *testing.T) {
	ip := evaluator.New(evaluator.WithCompat(scanner.Compat{JS: scanner.JS11}))
	if got := run(t, ip, "function f() { return f.arguments[0]; } f(8)"); got != "8" {
		t.Errorf("got %q, want 8", got)
	}
	if got := run(t, ip, "typeof f.arguments"); got != "undefined" {
		t.Errorf("after return: got %q, want undefined", got)
	}
}

func TestTypeOfAndDelete(t *testing.T) {
	runTests(t, []evalTest{
		{"typeof undeclared", "undefined"},
		{"typeof null", "object"},
		{"typeof function () {}", "function"},
		{"typeof 1", "number"},
		{"typeof 'a'", "string"},
		{"typeof true", "boolean"},
		{"typeof {}", "object"},
		{"typeof new Number(1)", "object"},
		{"delete 1", "false"},
		{"delete undeclared", "true"},
		{"var o = {a: 1}; delete o.a; typeof o.a", "undefined"},
		{"var a = [1, 2]; delete a.length", "false"},
		{"x = 1; delete x", "true"},
	})
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"undefinedVar", "ReferenceError: undefinedVar"},
		{"function f() {} f() = 1", "ReferenceError: invalid assignment target"},
		{"var x; x()", "TypeError: no such function"},
		{"var x = 1; x()", "TypeError: not a function"},
		{"var x = {}; x()", "TypeError: not callable"},
		{"new 1", "TypeError: new: not an object"},
		{"new ({})", "TypeError: not a constructor"},
		{"1 instanceof 2", "TypeError: 'instanceof' requires an object"},
		{"'a' in 1", "TypeError: 'in' requires an object"},
		{"null.x", "TypeError: cannot convert null to object"},
		{"new Array(-1)", "RangeError: invalid array length"},
		{"throw 'boom'", "boom"},
		{"throw new Error('e')", "Error: e"},
		{"throw {}", "[object Object]"},
	}
	for _, tt := range tests {
		ex := runThrows(t, evaluator.New(), tt.src)
		if got := ex.Message(); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestErrorObjects(t *testing.T) {
	runTests(t, []evalTest{
		{"var r; try { null.x } catch (e) { r = e instanceof TypeError } r", "true"},
		{"var r; try { null.x } catch (e) { r = e instanceof Error } r", "true"},
		{"var r; try { throw new RangeError('r') } catch (e) { r = e.name + ':' + e.message } r", "RangeError:r"},
		{"String(new TypeError('t'))", "TypeError: t"},
		{"String(new Error)", "Error"},
		{"Error('x').message", "x"},
		{"var r; try { undefinedVar } catch (e) { r = e.name } r", "ReferenceError"},
	})
}

func TestBuiltins(t *testing.T) {
	runTests(t, []evalTest{
		{"[1, 2, 3].join('-')", "1-2-3"},
		{"var a = []; a.push(1, 2); a.length", "2"},
		{"var a = [1, 2, 3]; a.pop() + a.length", "5"},
		{"var a = [1, 2, 3]; a.length = 1; a.join()", "1"},
		{"var a = []; a[4] = 1; a.length", "5"},
		{"String([1, [2, 3], null])", "1,2,3,"},
		{"new Array(3).length", "3"},
		{"Array(1, 2).length", "2"},
		{"'abc'.charAt(1)", "b"},
		{"'abc'.charCodeAt(0)", "97"},
		{"'abc'.length", "3"},
		{"new String('xy').length", "2"},
		{"(255).toString(16)", "ff"},
		{"(1.5).toString()", "1.5"},
		{"Number('  12  ')", "12"},
		{"Number('0x10')", "16"},
		{"Number('x')", "NaN"},
		{"new Boolean(false) ? 'y' : 'n'", "y"},
		{"Boolean('')", "false"},
		{"Object.prototype.toString.call([])", "[object Array]"},
		{"({}).hasOwnProperty('toString')", "false"},
		{"({a: 1}).propertyIsEnumerable('a')", "true"},
		{"Object.prototype.isPrototypeOf({})", "true"},
		{"parseFloat('3.5abc')", "3.5"},
		{"parseFloat('-.5e1x')", "-5"},
		{"parseFloat('abc')", "NaN"},
		{"parseInt('0x1f')", "31"},
		{"parseInt('12px')", "12"},
		{"parseInt('z', 36)", "35"},
		{"isNaN('x')", "true"},
		{"isFinite(1/0)", "false"},
		{"Number.MAX_VALUE > 1e308", "true"},
		{"undefined = 1; typeof undefined", "number"},
	})
}

func TestRegExp(t *testing.T) {
	runTests(t, []evalTest{
		{`var m = /(\d+)-(\d+)/.exec('tel 12-34'); m[0] + '|' + m[1] + '|' + m.index`, "12-34|12|4"},
		{"typeof /a(b)?c/.exec('xac')[1]", "undefined"},
		{"/a/.exec('b')", "null"},
		{"var r = /x/g; r.exec('axbx'); r.lastIndex", "2"},
		{"var r = /x/g; r.exec('axbx'); r.exec('axbx').index", "3"},
		{"var r = /x/g; r.exec('axbx'); r.exec('axbx'); r.exec('axbx'); r.lastIndex", "0"},
		{"/A/i.test('a')", "true"},
		{"/^b/m.test('a\\nb')", "true"},
		{"new RegExp('a+', 'g').source", "a+"},
		{"new RegExp('a+', 'g').global", "true"},
		{"/a/.toString()", "/a/"},
		{"var r = /a/; RegExp(r) === r", "true"},
		{"var r; try { new RegExp('a', 'q') } catch (e) { r = e.name } r", "SyntaxError"},
		{"/é(.)/.exec('aéb').index", "1"},
	})
}

func TestContextEval(t *testing.T) {
	ip := evaluator.New()
	run(t, ip, "var q = 5;")
	v, err := ip.ContextEval(ip.GlobalContext(), "q + 1")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := ip.ToString(v); got != "6" {
		t.Errorf("got %q, want 6", got)
	}
}

func TestPeriodicAbort(t *testing.T) {
	errStop := errors.New("stop")
	polls := 0
	ip := evaluator.New(evaluator.WithPeriodic(func(*evaluator.Interpreter) error {
		polls++
		if polls > 100 {
			return errStop
		}
		return nil
	}))
	_, err := ip.EvalString("try { while (true) {} } catch (e) {}", "loop.js")
	if !errors.Is(err, errStop) {
		t.Fatalf("got %v, want %v", err, errStop)
	}
}

func TestUncaughtTraceback(t *testing.T) {
	var uncaught *evaluator.Exception
	ip := evaluator.New(evaluator.WithUncaught(func(ex *evaluator.Exception) { uncaught = ex }))
	src := "function f() { throw new Error('x'); }\nfunction g() { f(); }\ng();"
	ex := runThrows(t, ip, src)
	if uncaught != ex {
		t.Fatalf("uncaught callback got %v, want %v", uncaught, ex)
	}
	if ex.Location.Line != 1 {
		t.Errorf("throw line: got %d, want 1", ex.Location.Line)
	}
	if len(ex.Traceback) != 2 {
		t.Fatalf("got %d frames, want 2", len(ex.Traceback))
	}
	for i, want := range []struct {
		line int
		name string
	}{{3, "g"}, {2, "f"}} {
		fr := ex.Traceback[i]
		if fr.Location.Line != want.line || fr.Callee.Function().Name != want.name {
			t.Errorf("frame %d: got %s, want line %d in %s", i, fr, want.line, want.name)
		}
	}
	if !strings.Contains(ex.TracebackString(), "test.js:3: in g") {
		t.Errorf("traceback:\n%s", ex.TracebackString())
	}
	if len(ip.Traceback()) != 0 {
		t.Errorf("traceback not unwound: %v", ip.Traceback())
	}
}

func TestTraceEvents(t *testing.T) {
	var events []evaluator.TraceEvent
	ip := evaluator.New(evaluator.WithTrace(func(_ ast.Location, _ *evaluator.Context, ev evaluator.TraceEvent) {
		events = append(events, ev)
	}))
	run(t, ip, "function f() { return 1; }\nf();")
	want := []evaluator.TraceEvent{
		evaluator.TraceStatement, // f();
		evaluator.TraceCall,
		evaluator.TraceStatement, // return 1;
		evaluator.TraceReturn,
	}
	if !equalEvents(events, want) {
		t.Errorf("got %v, want %v", events, want)
	}

	events = nil
	runThrows(t, ip, "throw 1;")
	want = []evaluator.TraceEvent{evaluator.TraceStatement, evaluator.TraceThrow}
	if !equalEvents(events, want) {
		t.Errorf("got %v, want %v", events, want)
	}
}

func equalEvents(a, b []evaluator.TraceEvent) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
