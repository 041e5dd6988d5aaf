package evaluator

import (
	"fmt"

	"github.com/t14raptor/es3/ast"
)

// EvalFunctionBody instantiates the declarations of fn in ctx and runs its
// statements (ECMA 262: 10.1.3, 13, 14).
func (ip *Interpreter) EvalFunctionBody(fn *ast.Function, ctx *Context) Completion {
	prev := ip.ctx
	ip.ctx = ctx
	defer func() { ip.ctx = prev }()

	body := fn.Body
	for _, decl := range body.Functions {
		f := ip.newFunction(decl.Function, ctx.Scope)
		ctx.Variable.PutAttr(decl.Function.Name, ObjectValue(f), ctx.VarAttr)
	}
	// A var that names an inherited property is not declared. This
	// follows existing implementations rather than 10.1.3.
	for _, name := range body.Vars {
		if !ctx.Variable.HasProperty(name) {
			ctx.Variable.PutAttr(name, undefinedValue, ctx.VarAttr)
		}
	}

	var c Completion
	for _, s := range body.Statements {
		c = ip.execute(ctx, s)
		if c.abrupt() {
			break
		}
	}
	return c
}

// execute runs one statement.
func (ip *Interpreter) execute(ctx *Context, n ast.Stmt) Completion {
	if err := ip.statement(n); err != nil {
		return throw(err)
	}

	switch stmt := n.(type) {
	case *ast.BlockStatement:
		return ip.executeList(ctx, stmt.List)
	case *ast.VariableStatement:
		for _, decl := range stmt.List {
			if err := ip.declare(ctx, decl); err != nil {
				return throw(err)
			}
		}
		return Completion{}
	case *ast.EmptyStatement:
		return Completion{}
	case *ast.ExpressionStatement:
		v, err := ip.evaluateValue(ctx, stmt.Expression)
		if err != nil {
			return throw(err)
		}
		return normal(v)
	case *ast.IfStatement:
		test, err := ip.evaluateValue(ctx, stmt.Test)
		if err != nil {
			return throw(err)
		}
		if ToBoolean(test) {
			return ip.execute(ctx, stmt.Consequent)
		}
		if stmt.Alternate != nil {
			return ip.execute(ctx, stmt.Alternate)
		}
		return Completion{}
	case *ast.DoWhileStatement:
		return ip.executeDoWhile(ctx, stmt)
	case *ast.WhileStatement:
		return ip.executeWhile(ctx, stmt)
	case *ast.ForStatement:
		if stmt.Initializer != nil {
			if _, err := ip.evaluateValue(ctx, stmt.Initializer); err != nil {
				return throw(err)
			}
		}
		return ip.executeFor(ctx, stmt.Target, stmt.Test, stmt.Update, stmt.Body)
	case *ast.ForVarStatement:
		for _, decl := range stmt.List {
			if err := ip.declare(ctx, decl); err != nil {
				return throw(err)
			}
		}
		return ip.executeFor(ctx, stmt.Target, stmt.Test, stmt.Update, stmt.Body)
	case *ast.ForInStatement:
		return ip.executeForIn(ctx, stmt.Target, stmt.Source, stmt.Body, func() (Value, error) {
			return ip.evaluate(ctx, stmt.Into)
		})
	case *ast.ForVarInStatement:
		if err := ip.declare(ctx, stmt.Var); err != nil {
			return throw(err)
		}
		return ip.executeForIn(ctx, stmt.Target, stmt.Source, stmt.Body, func() (Value, error) {
			return ctx.resolve(stmt.Var.Name), nil
		})
	case *ast.ContinueStatement:
		return Completion{Kind: Continue, Target: stmt.Target}
	case *ast.BreakStatement:
		return Completion{Kind: Break, Target: stmt.Target}
	case *ast.ReturnStatement:
		v := undefinedValue
		if stmt.Argument != nil {
			var err error
			if v, err = ip.evaluateValue(ctx, stmt.Argument); err != nil {
				return throw(err)
			}
		}
		return Completion{Kind: Return, Value: &v}
	case *ast.WithStatement:
		v, err := ip.evaluateValue(ctx, stmt.Object)
		if err != nil {
			return throw(err)
		}
		o, err := ip.ToObject(v)
		if err != nil {
			return throw(err)
		}
		ctx.push(o)
		c := ip.execute(ctx, stmt.Body)
		ctx.pop()
		return c
	case *ast.SwitchStatement:
		return ip.executeSwitch(ctx, stmt)
	case *ast.LabelledStatement:
		c := ip.execute(ctx, stmt.Statement)
		if c.Kind == Break && c.Target == stmt.LabelSet {
			c.Kind, c.Target = Normal, nil
		}
		return c
	case *ast.ThrowStatement:
		v, err := ip.evaluateValue(ctx, stmt.Argument)
		if err != nil {
			return throw(err)
		}
		return throw(ip.exception(v))
	case *ast.TryStatement:
		return ip.executeTry(ctx, stmt)
	case *ast.FunctionDeclaration:
		return Completion{}
	}
	return throw(ip.internalError(fmt.Sprintf("unexpected statement %T", n)))
}

// executeList runs a StatementList (12.1). An empty completion keeps the
// value of the statement before it.
func (ip *Interpreter) executeList(ctx *Context, list []ast.Stmt) Completion {
	var c Completion
	for _, s := range list {
		next := ip.execute(ctx, s)
		if next.Value == nil {
			next.Value = c.Value
		}
		c = next
		if c.abrupt() {
			break
		}
	}
	return c
}

func (ip *Interpreter) declare(ctx *Context, decl *ast.VariableDeclaration) error {
	if decl.Initializer == nil {
		return nil
	}
	v, err := ip.evaluateValue(ctx, decl.Initializer)
	if err != nil {
		return err
	}
	return ip.PutValue(ctx.resolve(decl.Name), v)
}

// loopBody runs the body of an iteration statement. done is set when the
// loop must stop with completion c; value tracks the last non-empty
// value.
func (ip *Interpreter) loopBody(ctx *Context, target *ast.LabelSet, body ast.Stmt, value **Value) (c Completion, done bool) {
	c = ip.execute(ctx, body)
	if c.Value != nil {
		*value = c.Value
	}
	switch c.Kind {
	case Normal:
		return c, false
	case Continue:
		if c.matches(target) {
			return c, false
		}
	case Break:
		if c.matches(target) {
			return Completion{Value: *value}, true
		}
	}
	return c, true
}

func (ip *Interpreter) executeDoWhile(ctx *Context, stmt *ast.DoWhileStatement) Completion {
	var v *Value
	for {
		if c, done := ip.loopBody(ctx, stmt.Target, stmt.Body, &v); done {
			return c
		}
		test, err := ip.evaluateValue(ctx, stmt.Test)
		if err != nil {
			return throw(err)
		}
		if !ToBoolean(test) {
			return Completion{Value: v}
		}
	}
}

func (ip *Interpreter) executeWhile(ctx *Context, stmt *ast.WhileStatement) Completion {
	var v *Value
	for {
		test, err := ip.evaluateValue(ctx, stmt.Test)
		if err != nil {
			return throw(err)
		}
		if !ToBoolean(test) {
			return Completion{Value: v}
		}
		if c, done := ip.loopBody(ctx, stmt.Target, stmt.Body, &v); done {
			return c
		}
	}
}

func (ip *Interpreter) executeFor(ctx *Context, target *ast.LabelSet, test, update ast.Expr, body ast.Stmt) Completion {
	var v *Value
	for {
		if test != nil {
			t, err := ip.evaluateValue(ctx, test)
			if err != nil {
				return throw(err)
			}
			if !ToBoolean(t) {
				return Completion{Value: v}
			}
		}
		if c, done := ip.loopBody(ctx, target, body, &v); done {
			return c
		}
		if update != nil {
			if _, err := ip.evaluateValue(ctx, update); err != nil {
				return throw(err)
			}
		}
	}
}

// executeForIn walks a snapshot of the enumerable names of the source
// object. Names deleted before their turn are skipped.
func (ip *Interpreter) executeForIn(ctx *Context, target *ast.LabelSet, source ast.Expr, body ast.Stmt, lhs func() (Value, error)) Completion {
	sv, err := ip.evaluateValue(ctx, source)
	if err != nil {
		return throw(err)
	}
	o, err := ip.ToObject(sv)
	if err != nil {
		return throw(err)
	}
	var v *Value
	for _, name := range o.Enumerate() {
		if !o.HasProperty(name) {
			continue
		}
		ref, err := lhs()
		if err != nil {
			return throw(err)
		}
		if err := ip.PutValue(ref, String(name)); err != nil {
			return throw(err)
		}
		if c, done := ip.loopBody(ctx, target, body, &v); done {
			return c
		}
	}
	return Completion{Value: v}
}

func (ip *Interpreter) executeSwitch(ctx *Context, stmt *ast.SwitchStatement) Completion {
	d, err := ip.evaluateValue(ctx, stmt.Discriminant)
	if err != nil {
		return throw(err)
	}
	start := -1
	for i, clause := range stmt.Body {
		if clause.Test == nil {
			continue
		}
		t, err := ip.evaluateValue(ctx, clause.Test)
		if err != nil {
			return throw(err)
		}
		if StrictEquals(d, t) {
			start = i
			break
		}
	}
	if start < 0 {
		start = stmt.Default
	}
	if start < 0 {
		return Completion{}
	}

	var c Completion
	for _, clause := range stmt.Body[start:] {
		next := ip.executeList(ctx, clause.Consequent)
		if next.Value == nil {
			next.Value = c.Value
		}
		c = next
		if c.abrupt() {
			break
		}
	}
	if c.Kind == Break && c.matches(stmt.Target) {
		c.Kind, c.Target = Normal, nil
	}
	return c
}

func (ip *Interpreter) executeTry(ctx *Context, stmt *ast.TryStatement) Completion {
	c := ip.execute(ctx, stmt.Body)
	if stmt.Catch != nil && c.Kind == Throw {
		if ex, ok := c.Err.(*Exception); ok {
			c = ip.executeCatch(ctx, stmt, ex)
		}
	}
	if stmt.Finally == nil {
		return c
	}
	f := ip.execute(ctx, stmt.Finally)
	if f.abrupt() {
		return f
	}
	return c
}

func (ip *Interpreter) executeCatch(ctx *Context, stmt *ast.TryStatement, ex *Exception) Completion {
	o := NewObject("Object", nil)
	o.Define(stmt.Parameter, ex.Value, DontDelete)
	ctx.push(o)
	c := ip.execute(ctx, stmt.Catch)
	ctx.pop()
	return c
}
