package evaluator

import "github.com/t14raptor/es3/ast"

// Scope is a link in a scope chain.
type Scope struct {
	Object *Object
	Next   *Scope
}

// Context is an execution context (ECMA 262: 10).
type Context struct {
	// Activation is the activation object of function code, or nil.
	Activation *Object
	// Variable receives the declarations of the code being run.
	Variable *Object
	// VarAttr is given to the properties created for declarations.
	VarAttr Attr
	This    *Object
	Scope   *Scope
}

// resolve looks name up along the scope chain. The base of the returned
// reference is nil if no object on the chain has the property.
func (ctx *Context) resolve(name string) Value {
	for s := ctx.Scope; s != nil; s = s.Next {
		if s.Object.HasProperty(name) {
			return referenceValue(s.Object, name)
		}
	}
	return referenceValue(nil, name)
}

func (ctx *Context) push(o *Object) {
	ctx.Scope = &Scope{Object: o, Next: ctx.Scope}
}

func (ctx *Context) pop() {
	ctx.Scope = ctx.Scope.Next
}

// CompletionKind is the type of a Completion (ECMA 262: 8.9).
type CompletionKind int

const (
	Normal CompletionKind = iota
	Break
	Continue
	Return
	Throw
)

func (k CompletionKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Break:
		return "break"
	case Continue:
		return "continue"
	case Return:
		return "return"
	case Throw:
		return "throw"
	}
	return "invalid"
}

// Completion is the result of evaluating a statement.
type Completion struct {
	Kind CompletionKind
	// Value is nil for an empty completion.
	Value *Value
	// Target is the label set a break or continue leaves, or nil for the
	// innermost enclosing statement.
	Target *ast.LabelSet
	// Err is set for Throw. It is an *Exception unless evaluation was
	// aborted by the host.
	Err error
}

func normal(v Value) Completion { return Completion{Kind: Normal, Value: &v} }

func throw(err error) Completion { return Completion{Kind: Throw, Err: err} }

// abrupt reports whether c transfers control.
func (c Completion) abrupt() bool { return c.Kind != Normal }

// matches reports whether a break or continue completion is aimed at a
// statement whose own label set is target.
func (c Completion) matches(target *ast.LabelSet) bool {
	return c.Target == nil || c.Target == target
}
