package evaluator

import (
	"fmt"
	"strings"

	"github.com/t14raptor/es3/ast"
)

// CallKind tells a function call from a construction in a traceback.
type CallKind int

const (
	CallNormal CallKind = iota
	CallConstruct
)

// Frame is one call or construct in progress.
type Frame struct {
	// Location is the call site.
	Location ast.Location
	Callee   *Object
	Kind     CallKind
}

func (f Frame) String() string {
	name := "<anonymous>"
	if f.Callee != nil {
		if n := f.Callee.Get("name"); n.IsString() && n.AsString() != "" {
			name = n.AsString()
		} else if fn := f.Callee.Function(); fn != nil && fn.Name != "" {
			name = fn.Name
		}
	}
	if f.Kind == CallConstruct {
		name = "new " + name
	}
	return fmt.Sprintf("%s: in %s", f.Location, name)
}

// Exception is a thrown ECMAScript value.
type Exception struct {
	Value Value
	// Location is the statement that was running when the value was
	// thrown.
	Location ast.Location
	// Traceback holds the calls in progress at the throw, outermost
	// first.
	Traceback []Frame
}

func (e *Exception) Error() string {
	return e.Location.String() + ": " + describe(e.Value)
}

// Message describes the thrown value without the location.
func (e *Exception) Message() string {
	return describe(e.Value)
}

// TracebackString renders the traceback one frame per line, innermost
// first.
func (e *Exception) TracebackString() string {
	var b strings.Builder
	for i := len(e.Traceback) - 1; i >= 0; i-- {
		b.WriteString("\t")
		b.WriteString(e.Traceback[i].String())
		b.WriteString("\n")
	}
	return b.String()
}

// describe converts a thrown value to a string without running script
// code.
func describe(v Value) string {
	if !v.IsObject() {
		return primitiveString(v)
	}
	o := v.AsObject()
	if o.Class == "Error" {
		name, msg := o.Get("name"), o.Get("message")
		s := "Error"
		if name.IsString() {
			s = name.AsString()
		}
		if msg.IsString() && msg.AsString() != "" {
			s += ": " + msg.AsString()
		}
		return s
	}
	return "[object " + o.Class + "]"
}
