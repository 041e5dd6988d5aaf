// Package evaluator runs the syntax trees built by the parser.
//
// Evaluation is a recursive walk. Statements produce a Completion and
// expressions produce a Value, which may be a Reference until GetValue
// resolves it. A thrown value travels as an *Exception error.
package evaluator

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/config"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser"
	"github.com/t14raptor/es3/parser/scanner"
)

// Interpreter holds the global object and the state of one evaluation
// thread. It must not be used concurrently.
type Interpreter struct {
	compat   scanner.Compat
	log      *slog.Logger
	trace    TraceFunc
	periodic func(*Interpreter) error
	uncaught func(*Exception)
	cfg      config.Config

	Global            *Object
	ObjectPrototype   *Object
	FunctionPrototype *Object
	ArrayPrototype    *Object
	StringPrototype   *Object
	NumberPrototype   *Object
	BooleanPrototype  *Object
	RegExpPrototype   *Object
	ErrorPrototype    *Object

	// errorPrototypes maps "TypeError" etc. to their prototypes.
	errorPrototypes map[string]*Object
	evalFunc        *Object

	global    *Context
	ctx       *Context
	location  ast.Location
	traceback []Frame
	// folding is non-zero while constant expressions are evaluated.
	folding int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithCompat sets the compatibility switches for scripts and eval.
func WithCompat(c scanner.Compat) Option {
	return func(ip *Interpreter) { ip.compat = c }
}

// WithLogger sets the logger for interpreter diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(ip *Interpreter) { ip.log = l }
}

// WithTrace installs a trace hook.
func WithTrace(f TraceFunc) Option {
	return func(ip *Interpreter) { ip.trace = f }
}

// WithPeriodic installs a hook polled at statement and call boundaries.
// Returning an error aborts the evaluation with that error.
func WithPeriodic(f func(*Interpreter) error) Option {
	return func(ip *Interpreter) { ip.periodic = f }
}

// WithUncaught installs a callback for exceptions that reach Run.
func WithUncaught(f func(*Exception)) Option {
	return func(ip *Interpreter) { ip.uncaught = f }
}

// WithConfig applies a configuration. It overrides an earlier WithCompat.
func WithConfig(cfg config.Config) Option {
	return func(ip *Interpreter) {
		ip.cfg = cfg
		ip.compat = cfg.ScannerCompat()
	}
}

// New creates an interpreter with a fresh global object.
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{cfg: config.Default()}
	for _, opt := range opts {
		opt(ip)
	}
	if ip.log == nil {
		ip.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ip.initGlobals()
	ip.global = &Context{
		Variable: ip.Global,
		VarAttr:  DontDelete,
		This:     ip.Global,
		Scope:    &Scope{Object: ip.Global},
	}
	ip.ctx = ip.global
	return ip
}

// Compat returns the compatibility switches in effect.
func (ip *Interpreter) Compat() scanner.Compat { return ip.compat }

// GlobalContext returns the context in which programs run.
func (ip *Interpreter) GlobalContext() *Context {
	return ip.global
}

// Traceback returns the calls in progress, outermost first.
func (ip *Interpreter) Traceback() []Frame {
	return slices.Clone(ip.traceback)
}

// Run executes a program in the global context and returns its completion
// value. An uncaught throw is returned as an *Exception.
func (ip *Interpreter) Run(fn *ast.Function) (Value, error) {
	c := ip.EvalFunctionBody(fn, ip.global)
	v, err := ip.result(c)
	if err != nil {
		var ex *Exception
		if errors.As(err, &ex) {
			ip.log.Warn("uncaught exception", "error", ex.Message(), "location", ex.Location.String())
			if ip.uncaught != nil {
				ip.uncaught(ex)
			}
		}
		return undefinedValue, err
	}
	return v, nil
}

// EvalString parses src as a program and runs it.
func (ip *Interpreter) EvalString(src, name string) (Value, error) {
	fn, err := parser.ParseProgram(input.NewString(src, input.WithName(name)), ip.parseOptions()...)
	if err != nil {
		return undefinedValue, err
	}
	return ip.Run(fn)
}

// ContextEval evaluates expr as if by a direct call to eval made from
// ctx. It lets a host inspect a suspended context.
func (ip *Interpreter) ContextEval(ctx *Context, expr string) (Value, error) {
	prev := ip.ctx
	ip.ctx = ctx
	defer func() { ip.ctx = prev }()
	return ip.eval(ctx, ip.Global, []Value{String(expr)})
}

func (ip *Interpreter) parseOptions() []parser.Option {
	return []parser.Option{parser.WithCompat(ip.compat), parser.WithLogger(ip.log)}
}

// result unpacks the completion of a program or eval body.
func (ip *Interpreter) result(c Completion) (Value, error) {
	switch c.Kind {
	case Normal:
		if c.Value == nil {
			return undefinedValue, nil
		}
		return *c.Value, nil
	case Throw:
		return undefinedValue, c.Err
	}
	return undefinedValue, ip.internalError(fmt.Sprintf("unexpected %s completion", c.Kind))
}

// exception wraps a thrown value.
func (ip *Interpreter) exception(v Value) *Exception {
	if ip.folding == 0 {
		ip.fire(ip.location, TraceThrow)
	}
	return &Exception{Value: v, Location: ip.location, Traceback: ip.Traceback()}
}

// NewError creates an error object of the named native error type, e.g.
// "TypeError".
func (ip *Interpreter) NewError(name, msg string) *Object {
	proto, ok := ip.errorPrototypes[name]
	if !ok {
		proto = ip.ErrorPrototype
	}
	o := NewObject("Error", proto)
	if msg != "" {
		o.Define("message", String(msg), DontEnum)
	}
	return o
}

// Throw returns an exception holding a new error object. Native functions
// return it as their error.
func (ip *Interpreter) Throw(name, format string, args ...any) *Exception {
	return ip.exception(ObjectValue(ip.NewError(name, fmt.Sprintf(format, args...))))
}

func (ip *Interpreter) typeError(format string, args ...any) *Exception {
	return ip.Throw("TypeError", format, args...)
}

func (ip *Interpreter) internalError(detail string) *Exception {
	ip.log.Error("internal error", "detail", detail, "location", ip.location.String())
	return ip.Throw("Error", "internal error")
}
