package evaluator

import (
	"strconv"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser"
	"github.com/t14raptor/es3/parser/scanner"
)

// newFunction creates a closure of fn over scope (ECMA 262: 13.2).
func (ip *Interpreter) newFunction(fn *ast.Function, scope *Scope) *Object {
	f := NewObject("Function", ip.FunctionPrototype)
	f.function = fn
	f.scope = scope
	f.Define("length", Number(float64(len(fn.Params))), ReadOnly|DontEnum|DontDelete)
	proto := NewObject("Object", ip.ObjectPrototype)
	proto.Define("constructor", ObjectValue(f), DontEnum)
	f.Define("prototype", ObjectValue(proto), DontDelete)
	return f
}

// functionExpression creates the closure of a function literal. A named
// literal sees its own name through an extra scope object.
func (ip *Interpreter) functionExpression(ctx *Context, fn *ast.Function) *Object {
	if fn.Name == "" {
		return ip.newFunction(fn, ctx.Scope)
	}
	o := NewObject("Object", nil)
	f := ip.newFunction(fn, &Scope{Object: o, Next: ctx.Scope})
	o.Define(fn.Name, ObjectValue(f), DontDelete|ReadOnly)
	return f
}

func (ip *Interpreter) arguments(ctx *Context, list []ast.Expr) ([]Value, error) {
	args := make([]Value, 0, len(list))
	for _, e := range list {
		v, err := ip.evaluateValue(ctx, e)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// evaluateCall implements function calls (ECMA 262: 11.2.3).
func (ip *Interpreter) evaluateCall(ctx *Context, expr *ast.CallExpression) (Value, error) {
	ref, err := ip.evaluate(ctx, expr.Callee)
	if err != nil {
		return undefinedValue, err
	}
	args, err := ip.arguments(ctx, expr.Arguments)
	if err != nil {
		return undefinedValue, err
	}
	fv, err := ip.GetValue(ref)
	if err != nil {
		return undefinedValue, err
	}
	switch {
	case fv.IsUndefined():
		return undefinedValue, ip.typeError("no such function")
	case !fv.IsObject():
		return undefinedValue, ip.typeError("not a function")
	case !fv.AsObject().Callable():
		return undefinedValue, ip.typeError("not callable")
	}
	f := fv.AsObject()

	var this *Object
	if r, ok := ref.reference(); ok && r.Base != nil && !r.Base.activation {
		this = r.Base
	}
	if f == ip.evalFunc {
		return ip.eval(ctx, this, args)
	}
	return ip.callFunction(expr.Loc(), f, this, args)
}

// evaluateNew implements the new operator (ECMA 262: 11.2.2).
func (ip *Interpreter) evaluateNew(ctx *Context, expr *ast.NewExpression) (Value, error) {
	fv, err := ip.evaluateValue(ctx, expr.Callee)
	if err != nil {
		return undefinedValue, err
	}
	args, err := ip.arguments(ctx, expr.Arguments)
	if err != nil {
		return undefinedValue, err
	}
	if !fv.IsObject() {
		return undefinedValue, ip.typeError("new: not an object")
	}
	f := fv.AsObject()
	if !f.Constructible() {
		return undefinedValue, ip.typeError("not a constructor")
	}
	return ip.construct(expr.Loc(), f, args)
}

// Call invokes f from host code. A nil this becomes the global object.
func (ip *Interpreter) Call(f *Object, this *Object, args ...Value) (Value, error) {
	if !f.Callable() {
		return undefinedValue, ip.typeError("not callable")
	}
	return ip.callFunction(ip.location, f, this, args)
}

// Construct invokes f as a constructor from host code.
func (ip *Interpreter) Construct(f *Object, args ...Value) (Value, error) {
	if !f.Constructible() {
		return undefinedValue, ip.typeError("not a constructor")
	}
	return ip.construct(ip.location, f, args)
}

func (ip *Interpreter) enter(loc ast.Location, f *Object, kind CallKind) error {
	if err := ip.poll(); err != nil {
		return err
	}
	ip.traceback = append(ip.traceback, Frame{Location: loc, Callee: f, Kind: kind})
	ip.fire(loc, TraceCall)
	return nil
}

func (ip *Interpreter) leave(loc ast.Location, err error) {
	if err == nil {
		ip.fire(loc, TraceReturn)
	}
	ip.traceback = ip.traceback[:len(ip.traceback)-1]
	ip.location = loc
}

// callFunction implements [[Call]] with tracing.
func (ip *Interpreter) callFunction(loc ast.Location, f *Object, this *Object, args []Value) (Value, error) {
	if err := ip.enter(loc, f, CallNormal); err != nil {
		return undefinedValue, err
	}
	if this == nil {
		this = ip.Global
	}
	var (
		v   Value
		err error
	)
	if f.function != nil {
		v, err = ip.callScript(f, this, args)
	} else {
		v, err = f.call(ip, this, args)
	}
	ip.leave(loc, err)
	return v, err
}

// construct implements [[Construct]] (13.2.2) with tracing.
func (ip *Interpreter) construct(loc ast.Location, f *Object, args []Value) (Value, error) {
	if err := ip.enter(loc, f, CallConstruct); err != nil {
		return undefinedValue, err
	}
	var (
		v   Value
		err error
	)
	if f.construct != nil {
		v, err = f.construct(ip, nil, args)
	} else {
		proto := ip.ObjectPrototype
		if p := f.Get("prototype"); p.IsObject() {
			proto = p.AsObject()
		}
		o := NewObject("Object", proto)
		v, err = ip.callScript(f, o, args)
		if err == nil && !v.IsObject() {
			v = ObjectValue(o)
		}
	}
	ip.leave(loc, err)
	return v, err
}

// callScript runs the body of a script function in a new activation
// (ECMA 262: 10.1.6, 10.1.8, 10.2.3).
func (ip *Interpreter) callScript(f *Object, this *Object, args []Value) (Value, error) {
	fn := f.function
	act := NewObject("Object", nil)
	act.activation = true

	argv := NewObject("Object", ip.ObjectPrototype)
	argv.Define("callee", ObjectValue(f), DontEnum)
	argv.Define("length", Number(float64(len(args))), DontEnum)
	for i, v := range args {
		argv.Define(strconv.Itoa(i), v, DontEnum)
	}
	argv.alias = &argumentAlias{activation: act, params: fn.Params}
	act.Define("arguments", ObjectValue(argv), DontDelete)

	for i, name := range fn.Params {
		v := undefinedValue
		if i < len(args) {
			v = args[i]
		}
		act.Define(name, v, DontDelete)
	}

	if ip.compat.AtLeast(scanner.JS11) {
		prev, had := f.GetOwn("arguments")
		attr, _ := f.Attributes("arguments")
		f.Define("arguments", ObjectValue(argv), DontEnum)
		defer func() {
			if had {
				f.Define("arguments", prev, attr)
			} else {
				f.Delete("arguments")
			}
		}()
	}

	ctx := &Context{
		Activation: act,
		Variable:   act,
		VarAttr:    DontDelete,
		This:       this,
		Scope:      &Scope{Object: act, Next: f.scope},
	}
	c := ip.EvalFunctionBody(fn, ctx)
	switch c.Kind {
	case Normal:
		return undefinedValue, nil
	case Return:
		if c.Value == nil {
			return undefinedValue, nil
		}
		return *c.Value, nil
	case Throw:
		return undefinedValue, c.Err
	}
	return undefinedValue, ip.internalError("unexpected " + c.Kind.String() + " completion")
}

// eval implements the global eval function (ECMA 262: 15.1.2.1) called
// from ctx with the given this.
func (ip *Interpreter) eval(ctx *Context, this *Object, args []Value) (Value, error) {
	if len(args) == 0 {
		return undefinedValue, nil
	}
	if !args[0].IsString() {
		return args[0], nil
	}
	ip.log.Debug("eval", "location", ip.location.String())
	src := input.NewString(args[0].AsString(), input.WithName("<eval>"), input.WithFirstLine(ip.location.Line))
	fn, err := parser.ParseProgram(src, ip.parseOptions()...)
	if err != nil {
		return undefinedValue, ip.Throw("SyntaxError", "%s", err.Error())
	}

	ectx := &Context{
		Activation: ctx.Activation,
		Variable:   ctx.Variable,
		This:       ctx.This,
		Scope:      ctx.Scope,
	}
	if ip.compat.AtLeast(scanner.JS11) && this != nil && this != ip.Global {
		ectx.This = this
		ectx.Variable = this
		ectx.push(this)
	}

	c := ip.EvalFunctionBody(fn, ectx)
	switch c.Kind {
	case Normal:
		if c.Value == nil {
			return undefinedValue, nil
		}
		return *c.Value, nil
	case Throw:
		return undefinedValue, c.Err
	}
	return undefinedValue, ip.Throw("EvalError", "internal error")
}
