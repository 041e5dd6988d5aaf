// Package simplifier folds constant expressions and prunes statements whose
// outcome is known before the program runs.
package simplifier

import (
	"math"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/evaluator"
	"github.com/t14raptor/es3/token"
)

type Simplifier struct {
	ast.NoopVisitor

	ip      *evaluator.Interpreter
	changed bool
}

// Simplify rewrites fn in place and reports whether anything changed. The
// interpreter evaluates the constant subexpressions; it should be
// configured with the compatibility level the program will run under.
func Simplify(ip *evaluator.Interpreter, fn *ast.Function) bool {
	s := &Simplifier{ip: ip}
	s.V = s
	fn.VisitWith(s)
	return s.changed
}

// expr returns the replacement for the expression in a slot, simplifying
// its children when it cannot be folded whole.
func (s *Simplifier) expr(e ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	if lit, ok := s.fold(e); ok {
		return lit
	}
	e.VisitWith(s)
	switch n := e.(type) {
	case *ast.DotExpression:
		return s.optimizeMemberExpression(n)
	case *ast.ConditionalExpression:
		if b, ok := s.test(n.Test); ok {
			if b {
				return s.pick(n, n.Consequent)
			}
			return s.pick(n, n.Alternate)
		}
	case *ast.BinaryExpression:
		if n.Operator != token.LogicalAnd && n.Operator != token.LogicalOr {
			break
		}
		// Constant short circuits were folded whole; the right operand
		// decides the value here.
		if b, ok := s.test(n.Left); ok && b == (n.Operator == token.LogicalAnd) {
			return s.pick(n, n.Right)
		}
	}
	return e
}

func (s *Simplifier) exprs(list []ast.Expr) {
	for i := range list {
		list[i] = s.expr(list[i])
	}
}

// pick replaces n by one of its operands. A reference would change meaning
// as a callee or under typeof, so those stay put.
func (s *Simplifier) pick(n, operand ast.Expr) ast.Expr {
	switch operand.(type) {
	case *ast.Identifier, *ast.DotExpression, *ast.BracketExpression:
		return n
	}
	s.changed = true
	return operand
}

func (s *Simplifier) fold(e ast.Expr) (ast.Expr, bool) {
	if isLiteral(e) {
		return nil, false
	}
	v, ok, err := evaluator.ConstValue(s.ip, e)
	if !ok || err != nil {
		return nil, false
	}
	lit, ok := literal(v, e.Loc())
	if ok {
		s.changed = true
	}
	return lit, ok
}

// test folds a condition that has already been simplified.
func (s *Simplifier) test(e ast.Expr) (b, ok bool) {
	if !isLiteral(e) {
		return false, false
	}
	v, ok, err := evaluator.ConstValue(s.ip, e)
	if !ok || err != nil {
		return false, false
	}
	return evaluator.ToBoolean(v), true
}

// optimizeMemberExpression folds the length of a string literal.
func (s *Simplifier) optimizeMemberExpression(n *ast.DotExpression) ast.Expr {
	str, ok := n.Left.(*ast.StringLiteral)
	if !ok || n.Identifier != "length" {
		return n
	}
	s.changed = true
	return &ast.NumberLiteral{Base: ast.Base{Location: n.Loc()}, Value: float64(utf16Len(str.Value))}
}

func (s *Simplifier) stmt(st ast.Stmt) ast.Stmt {
	if st == nil {
		return nil
	}
	st.VisitWith(s)
	switch n := st.(type) {
	case *ast.IfStatement:
		b, ok := s.test(n.Test)
		if !ok {
			break
		}
		s.changed = true
		if b {
			return n.Consequent
		}
		if n.Alternate != nil {
			return n.Alternate
		}
		return &ast.EmptyStatement{Base: ast.Base{Location: n.Loc()}}
	case *ast.WhileStatement:
		if b, ok := s.test(n.Test); ok && !b {
			s.changed = true
			return &ast.EmptyStatement{Base: ast.Base{Location: n.Loc()}}
		}
	}
	return st
}

// stmts simplifies a statement list and drops the empty statements, which
// leave the completion value of a list unchanged.
func (s *Simplifier) stmts(list []ast.Stmt) []ast.Stmt {
	out := list[:0]
	for _, st := range list {
		st = s.stmt(st)
		if _, empty := st.(*ast.EmptyStatement); empty {
			s.changed = true
			continue
		}
		out = append(out, st)
	}
	return out
}

func (s *Simplifier) VisitFunctionBody(n *ast.FunctionBody) {
	for _, d := range n.Functions {
		d.VisitWith(s)
	}
	n.Statements = s.stmts(n.Statements)
}

func (s *Simplifier) VisitBlockStatement(n *ast.BlockStatement) {
	n.List = s.stmts(n.List)
}

func (s *Simplifier) VisitArrayLiteral(n *ast.ArrayLiteral) {
	s.exprs(n.Elements)
}

func (s *Simplifier) VisitObjectLiteral(n *ast.ObjectLiteral) {
	for i := range n.Properties {
		n.Properties[i].Value = s.expr(n.Properties[i].Value)
	}
}

func (s *Simplifier) VisitDotExpression(n *ast.DotExpression) {
	n.Left = s.expr(n.Left)
}

func (s *Simplifier) VisitBracketExpression(n *ast.BracketExpression) {
	n.Left = s.expr(n.Left)
	n.Member = s.expr(n.Member)
}

func (s *Simplifier) VisitCallExpression(n *ast.CallExpression) {
	n.Callee = s.expr(n.Callee)
	s.exprs(n.Arguments)
}

func (s *Simplifier) VisitNewExpression(n *ast.NewExpression) {
	n.Callee = s.expr(n.Callee)
	s.exprs(n.Arguments)
}

func (s *Simplifier) VisitUnaryExpression(n *ast.UnaryExpression) {
	if n.Operator == token.Delete {
		n.Operand.VisitWith(s)
		return
	}
	n.Operand = s.expr(n.Operand)
}

func (s *Simplifier) VisitBinaryExpression(n *ast.BinaryExpression) {
	n.Left = s.expr(n.Left)
	n.Right = s.expr(n.Right)
}

func (s *Simplifier) VisitConditionalExpression(n *ast.ConditionalExpression) {
	n.Test = s.expr(n.Test)
	n.Consequent = s.expr(n.Consequent)
	n.Alternate = s.expr(n.Alternate)
}

func (s *Simplifier) VisitAssignExpression(n *ast.AssignExpression) {
	n.Left.VisitWith(s)
	n.Right = s.expr(n.Right)
}

func (s *Simplifier) VisitSequenceExpression(n *ast.SequenceExpression) {
	n.Left = s.expr(n.Left)
	n.Right = s.expr(n.Right)
}

func (s *Simplifier) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	n.Initializer = s.expr(n.Initializer)
}

func (s *Simplifier) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Expression = s.expr(n.Expression)
}

func (s *Simplifier) VisitIfStatement(n *ast.IfStatement) {
	n.Test = s.expr(n.Test)
	n.Consequent = s.stmt(n.Consequent)
	n.Alternate = s.stmt(n.Alternate)
}

func (s *Simplifier) VisitDoWhileStatement(n *ast.DoWhileStatement) {
	n.Body = s.stmt(n.Body)
	n.Test = s.expr(n.Test)
}

func (s *Simplifier) VisitWhileStatement(n *ast.WhileStatement) {
	n.Test = s.expr(n.Test)
	n.Body = s.stmt(n.Body)
}

func (s *Simplifier) VisitForStatement(n *ast.ForStatement) {
	n.Initializer = s.expr(n.Initializer)
	n.Test = s.expr(n.Test)
	n.Update = s.expr(n.Update)
	n.Body = s.stmt(n.Body)
}

func (s *Simplifier) VisitForVarStatement(n *ast.ForVarStatement) {
	for _, d := range n.List {
		d.VisitWith(s)
	}
	n.Test = s.expr(n.Test)
	n.Update = s.expr(n.Update)
	n.Body = s.stmt(n.Body)
}

func (s *Simplifier) VisitForInStatement(n *ast.ForInStatement) {
	n.Into.VisitWith(s)
	n.Source = s.expr(n.Source)
	n.Body = s.stmt(n.Body)
}

func (s *Simplifier) VisitForVarInStatement(n *ast.ForVarInStatement) {
	if n.Var != nil {
		n.Var.VisitWith(s)
	}
	n.Source = s.expr(n.Source)
	n.Body = s.stmt(n.Body)
}

func (s *Simplifier) VisitReturnStatement(n *ast.ReturnStatement) {
	n.Argument = s.expr(n.Argument)
}

func (s *Simplifier) VisitWithStatement(n *ast.WithStatement) {
	n.Object = s.expr(n.Object)
	n.Body = s.stmt(n.Body)
}

func (s *Simplifier) VisitCaseClause(n *ast.CaseClause) {
	n.Test = s.expr(n.Test)
	n.Consequent = s.stmts(n.Consequent)
}

func (s *Simplifier) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Discriminant = s.expr(n.Discriminant)
	for _, c := range n.Body {
		c.VisitWith(s)
	}
}

func (s *Simplifier) VisitLabelledStatement(n *ast.LabelledStatement) {
	n.Statement = s.stmt(n.Statement)
}

func (s *Simplifier) VisitThrowStatement(n *ast.ThrowStatement) {
	n.Argument = s.expr(n.Argument)
}

// isLiteral reports whether e is already as small as a folded value gets.
func isLiteral(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.NullLiteral, *ast.BooleanLiteral, *ast.NumberLiteral, *ast.StringLiteral:
		return true
	case *ast.UnaryExpression:
		n, ok := e.Operand.(*ast.NumberLiteral)
		switch e.Operator {
		case token.Minus:
			return ok || isLiteral(e.Operand)
		case token.Void:
			return ok && n.Value == 0
		}
	case *ast.BinaryExpression:
		// 0 / 0 and 1 / 0 spell NaN and Infinity.
		l, lok := e.Left.(*ast.NumberLiteral)
		r, rok := e.Right.(*ast.NumberLiteral)
		return e.Operator == token.Slash && lok && rok && r.Value == 0 && (l.Value == 0 || l.Value == 1)
	}
	return false
}

// literal spells a primitive value as source. Values with no literal form
// of their own are written as the shortest expression producing them.
func literal(v evaluator.Value, loc ast.Location) (ast.Expr, bool) {
	num := func(f float64) ast.Expr {
		return &ast.NumberLiteral{Base: ast.Base{Location: loc}, Value: f}
	}
	unary := func(op token.Token, operand ast.Expr) ast.Expr {
		return &ast.UnaryExpression{Base: ast.Base{Location: loc}, Operator: op, Operand: operand}
	}
	div := func(l, r float64) ast.Expr {
		return &ast.BinaryExpression{Base: ast.Base{Location: loc}, Operator: token.Slash, Left: num(l), Right: num(r)}
	}
	switch v.Kind() {
	case evaluator.KindUndefined:
		return unary(token.Void, num(0)), true
	case evaluator.KindNull:
		return &ast.NullLiteral{Base: ast.Base{Location: loc}}, true
	case evaluator.KindBoolean:
		return &ast.BooleanLiteral{Base: ast.Base{Location: loc}, Value: v.AsBool()}, true
	case evaluator.KindString:
		return &ast.StringLiteral{Base: ast.Base{Location: loc}, Value: v.AsString()}, true
	case evaluator.KindNumber:
		f := v.AsNumber()
		switch {
		case math.IsNaN(f):
			return div(0, 0), true
		case math.IsInf(f, 1):
			return div(1, 0), true
		case math.IsInf(f, -1):
			return unary(token.Minus, div(1, 0)), true
		case f < 0 || (f == 0 && math.Signbit(f)):
			return unary(token.Minus, num(-f)), true
		}
		return num(f), true
	}
	return nil, false
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r >= 0x10000 {
			n++
		}
	}
	return n
}
