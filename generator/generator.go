// Package generator prints syntax trees back to source text.
//
// The output parses to a tree that prints identically: parentheses are
// inserted wherever operator precedence requires them, and nested
// statements are always braced.
package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/parser/scanner"
	"github.com/t14raptor/es3/token"
)

// Expression precedence levels, loosest first. Binary operators occupy
// the levels from precBinary up, one per token.Precedence value.
const (
	precSequence = iota
	precAssign
	precConditional
	precBinary
	precUnary   = precBinary + 10
	precPostfix = precUnary + 1
	precNew     = precUnary + 2 // new without an argument list
	precCall    = precUnary + 3
	precMember  = precUnary + 4
)

func precedence(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return precSequence
	case *ast.AssignExpression:
		return precAssign
	case *ast.ConditionalExpression:
		return precConditional
	case *ast.BinaryExpression:
		return precBinary + n.Operator.Precedence(true) - 1
	case *ast.UnaryExpression:
		return precUnary
	case *ast.UpdateExpression:
		if n.Postfix {
			return precPostfix
		}
		return precUnary
	case *ast.NewExpression:
		if n.Arguments == nil {
			return precNew
		}
	case *ast.CallExpression:
		return precCall
	}
	return precMember
}

// Generate prints node. A program body prints as its statements, one per
// line.
func Generate(node ast.Node) string {
	s := &state{
		out:    &strings.Builder{},
		node:   node,
		parent: &state{},
	}
	gen(s)
	return s.out.String()
}

// FunctionSource prints a function in the form used by
// Function.prototype.toString.
func FunctionSource(fn *ast.Function) string {
	s := &state{
		out:    &strings.Builder{},
		node:   fn,
		parent: &state{},
	}
	function(s, fn)
	return s.out.String()
}

func function(s *state, fn *ast.Function) {
	s.out.WriteString("function ")
	s.out.WriteString(fn.Name)
	s.out.WriteString("(")
	s.out.WriteString(strings.Join(fn.Params, ", "))
	s.out.WriteString(") {")
	if fn.Body != nil && (len(fn.Body.Functions) > 0 || len(fn.Body.Statements) > 0) {
		s.indent++
		s.lineAndPad()
		gen(s.wrap(fn.Body))
		s.indent--
		s.lineAndPad()
	}
	s.out.WriteString("}")
}

func gen(s *state) {
	switch s.node.(type) {
	case *ast.ArrayLiteral, *ast.ObjectLiteral, *ast.FunctionLiteral,
		*ast.CallExpression, *ast.NewExpression, *ast.BracketExpression:
		// Brackets end the reach of a for header.
		s.noIn = false
	}

	switch n := s.node.(type) {
	case nil:
	case *ast.Function:
		if n.Body != nil && n.Body.IsProgram {
			gen(s.wrap(n.Body))
			return
		}
		function(s, n)
	case *ast.FunctionBody:
		first := true
		for _, f := range n.Functions {
			if !first {
				s.lineAndPad()
			}
			first = false
			gen(s.wrap(f))
		}
		for _, st := range n.Statements {
			if !first {
				s.lineAndPad()
			}
			first = false
			gen(s.wrap(st))
		}

	// Expressions

	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.BooleanLiteral:
		if n.Value {
			s.out.WriteString("true")
		} else {
			s.out.WriteString("false")
		}
	case *ast.NumberLiteral:
		s.out.WriteString(scanner.FormatNumber(n.Value))
	case *ast.StringLiteral:
		s.out.WriteString(quote(n.Value))
	case *ast.RegExpLiteral:
		s.out.WriteString("/" + n.Pattern + "/" + n.Flags)
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		for i, e := range n.Elements {
			if i > 0 {
				s.out.WriteString(",")
				if e != nil {
					s.out.WriteString(" ")
				}
			}
			if e != nil {
				s.expr(e, precAssign)
			}
		}
		// A trailing hole needs its own comma.
		if len(n.Elements) > 0 && n.Elements[len(n.Elements)-1] == nil {
			s.out.WriteString(",")
		}
		s.out.WriteString("]")
	case *ast.ObjectLiteral:
		if len(n.Properties) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for i, p := range n.Properties {
			s.lineAndPad()
			s.out.WriteString(propertyKey(p.Key))
			s.out.WriteString(": ")
			s.expr(p.Value, precAssign)
			if i < len(n.Properties)-1 {
				s.out.WriteString(",")
			}
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.DotExpression:
		if _, ok := n.Left.(*ast.NumberLiteral); ok {
			s.out.WriteString("(")
			gen(s.wrap(n.Left))
			s.out.WriteString(")")
		} else {
			s.expr(n.Left, precCall)
		}
		s.out.WriteString(".")
		s.out.WriteString(n.Identifier)
	case *ast.BracketExpression:
		s.expr(n.Left, precCall)
		s.out.WriteString("[")
		s.expr(n.Member, precSequence)
		s.out.WriteString("]")
	case *ast.CallExpression:
		s.expr(n.Callee, precCall)
		s.out.WriteString("(")
		s.exprs(n.Arguments)
		s.out.WriteString(")")
	case *ast.NewExpression:
		s.out.WriteString("new ")
		if callInChain(n.Callee) {
			s.out.WriteString("(")
			gen(s.wrap(n.Callee))
			s.out.WriteString(")")
		} else {
			s.expr(n.Callee, precMember)
		}
		if n.Arguments != nil {
			s.out.WriteString("(")
			s.exprs(n.Arguments)
			s.out.WriteString(")")
		}
	case *ast.UpdateExpression:
		if n.Postfix {
			s.expr(n.Operand, precNew)
			s.out.WriteString(n.Operator.String())
			return
		}
		s.out.WriteString(n.Operator.String())
		s.expr(n.Operand, precUnary)
	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator.String())
		switch n.Operator {
		case token.Delete, token.Void, token.TypeOf:
			s.out.WriteString(" ")
		case token.Plus, token.Minus:
			if startsWithSign(n.Operand, n.Operator) {
				s.out.WriteString(" ")
			}
		}
		s.expr(n.Operand, precUnary)
	case *ast.BinaryExpression:
		level := precedence(n)
		if n.Operator == token.In && s.noIn {
			s.out.WriteString("(")
			defer s.out.WriteString(")")
			s.noIn = false
		}
		s.expr(n.Left, level)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, level+1)
	case *ast.ConditionalExpression:
		s.expr(n.Test, precBinary)
		s.out.WriteString(" ? ")
		s.expr(n.Consequent, precAssign)
		s.out.WriteString(" : ")
		s.expr(n.Alternate, precAssign)
	case *ast.AssignExpression:
		s.expr(n.Left, precNew)
		s.out.WriteString(" " + n.Operator.String() + " ")
		s.expr(n.Right, precAssign)
	case *ast.SequenceExpression:
		s.expr(n.Left, precAssign)
		s.out.WriteString(", ")
		s.expr(n.Right, precSequence)
	case *ast.FunctionLiteral:
		function(s, n.Function)

	// Statements

	case *ast.FunctionDeclaration:
		function(s, n.Function)
	case *ast.BlockStatement:
		if len(n.List) == 0 {
			s.out.WriteString("{}")
			return
		}
		s.out.WriteString("{")
		s.indent++
		for _, st := range n.List {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.VariableStatement:
		s.out.WriteString("var ")
		declarations(s, n.List)
		s.out.WriteString(";")
	case *ast.VariableDeclaration:
		s.out.WriteString(n.Name)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			s.expr(n.Initializer, precAssign)
		}
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		if startsAmbiguously(n.Expression) {
			s.out.WriteString("(")
			gen(s.wrap(n.Expression))
			s.out.WriteString(")")
		} else {
			gen(s.wrap(n.Expression))
		}
		s.out.WriteString(";")
	case *ast.IfStatement:
		s.out.WriteString("if (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Consequent)
		if n.Alternate != nil {
			s.out.WriteString(" else ")
			if _, ok := n.Alternate.(*ast.IfStatement); ok {
				gen(s.wrap(n.Alternate))
			} else {
				s.stmt(n.Alternate)
			}
		}
	case *ast.DoWhileStatement:
		s.out.WriteString("do ")
		s.stmt(n.Body)
		s.out.WriteString(" while (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(");")
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		s.expr(n.Test, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Initializer != nil {
			h := s.wrap(n)
			h.noIn = true
			h.expr(n.Initializer, precSequence)
		}
		forTail(s, n.Test, n.Update)
		s.stmt(n.Body)
	case *ast.ForVarStatement:
		s.out.WriteString("for (var ")
		h := s.wrap(n)
		h.noIn = true
		declarations(h, n.List)
		forTail(s, n.Test, n.Update)
		s.stmt(n.Body)
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		s.expr(n.Into, precNew)
		s.out.WriteString(" in ")
		s.expr(n.Source, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.ForVarInStatement:
		s.out.WriteString("for (var ")
		h := s.wrap(n)
		h.noIn = true
		gen(h.wrap(n.Var))
		s.out.WriteString(" in ")
		s.expr(n.Source, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.ContinueStatement:
		s.out.WriteString("continue")
		if n.Label != "" {
			s.out.WriteString(" " + n.Label)
		}
		s.out.WriteString(";")
	case *ast.BreakStatement:
		s.out.WriteString("break")
		if n.Label != "" {
			s.out.WriteString(" " + n.Label)
		}
		s.out.WriteString(";")
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			s.expr(n.Argument, precSequence)
		}
		s.out.WriteString(";")
	case *ast.WithStatement:
		s.out.WriteString("with (")
		s.expr(n.Object, precSequence)
		s.out.WriteString(") ")
		s.stmt(n.Body)
	case *ast.SwitchStatement:
		s.out.WriteString("switch (")
		s.expr(n.Discriminant, precSequence)
		s.out.WriteString(") {")
		s.indent++
		for _, c := range n.Body {
			s.lineAndPad()
			gen(s.wrap(c))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.CaseClause:
		if n.Test != nil {
			s.out.WriteString("case ")
			s.expr(n.Test, precSequence)
			s.out.WriteString(":")
		} else {
			s.out.WriteString("default:")
		}
		s.indent++
		for _, st := range n.Consequent {
			s.lineAndPad()
			gen(s.wrap(st))
		}
		s.indent--
	case *ast.LabelledStatement:
		for _, l := range n.Labels {
			s.out.WriteString(l + ": ")
		}
		gen(s.wrap(n.Statement))
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		s.expr(n.Argument, precSequence)
		s.out.WriteString(";")
	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.out.WriteString(" catch (" + n.Parameter + ") ")
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finally))
		}
	default:
		panic(fmt.Sprintf("gen: unexpected node type %T", n))
	}
}

func declarations(s *state, list []*ast.VariableDeclaration) {
	for i, v := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrap(v))
	}
}

func forTail(s *state, test, update ast.Expr) {
	s.out.WriteString(";")
	if test != nil {
		s.out.WriteString(" ")
		s.expr(test, precSequence)
	}
	s.out.WriteString(";")
	if update != nil {
		s.out.WriteString(" ")
		s.expr(update, precSequence)
	}
	s.out.WriteString(") ")
}

// callInChain reports whether the member chain of a new expression's
// callee contains a call or an argument-less new, either of which would
// take the new's argument list if printed bare.
func callInChain(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.CallExpression:
			return true
		case *ast.NewExpression:
			return n.Arguments == nil
		case *ast.DotExpression:
			e = n.Left
		case *ast.BracketExpression:
			e = n.Left
		default:
			return false
		}
	}
}

// startsAmbiguously reports whether an expression statement would begin
// with 'function' or '{'.
func startsAmbiguously(e ast.Expr) bool {
	for {
		switch n := e.(type) {
		case *ast.FunctionLiteral, *ast.ObjectLiteral:
			return true
		case *ast.DotExpression:
			e = n.Left
		case *ast.BracketExpression:
			e = n.Left
		case *ast.CallExpression:
			e = n.Callee
		case *ast.BinaryExpression:
			e = n.Left
		case *ast.AssignExpression:
			e = n.Left
		case *ast.ConditionalExpression:
			e = n.Test
		case *ast.SequenceExpression:
			e = n.Left
		case *ast.UpdateExpression:
			if !n.Postfix {
				return false
			}
			e = n.Operand
		default:
			return false
		}
	}
}

// startsWithSign reports whether operand, printed after a unary + or -,
// would begin with the same character.
func startsWithSign(operand ast.Expr, op token.Token) bool {
	switch n := operand.(type) {
	case *ast.UnaryExpression:
		return n.Operator == op
	case *ast.UpdateExpression:
		return !n.Postfix && (op == token.Plus && n.Operator == token.Increment ||
			op == token.Minus && n.Operator == token.Decrement)
	}
	return false
}

func propertyKey(key string) string {
	if valid(key) {
		return key
	}
	return quote(key)
}

// valid reports whether s can be written as a bare identifier.
func valid(s string) bool {
	if s == "" {
		return false
	}
	if _, ok := token.LiteralKeyword(s); ok {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

func quote(str string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range str {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		default:
			if r < 0x20 || r == 0x2028 || r == 0x2029 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
