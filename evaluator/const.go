package evaluator

import (
	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/token"
)

type constMemo interface {
	ConstMemo() (value, known bool)
	SetConstMemo(value bool)
}

// IsConst reports whether evaluating n has no side effects and always
// produces the same completion, so that it may be folded. The result is
// memoised on the node.
//
// Subexpressions that decide which branch is taken are evaluated without
// an execution context.
func IsConst(ip *Interpreter, n ast.Node) bool {
	m, ok := n.(constMemo)
	if ok {
		if v, known := m.ConstMemo(); known {
			return v
		}
	}
	v := ip.isConst(n)
	if ok {
		m.SetConstMemo(v)
	}
	return v
}

// ConstValue folds a constant expression. ok is false if e is not
// constant. An expression that is constant but throws, such as
// "1 in 2", returns the exception.
func ConstValue(ip *Interpreter, e ast.Expr) (v Value, ok bool, err error) {
	if !IsConst(ip, e) {
		return undefinedValue, false, nil
	}
	v, err = ip.fold(e)
	if err != nil {
		return undefinedValue, false, err
	}
	return v, true, nil
}

func (ip *Interpreter) fold(e ast.Expr) (Value, error) {
	ip.folding++
	defer func() { ip.folding-- }()
	return ip.evaluateValue(nil, e)
}

// constTest folds a constant condition. ok is false if e is not constant
// or throws.
func (ip *Interpreter) constTest(e ast.Expr) (b, ok bool) {
	if !IsConst(ip, e) {
		return false, false
	}
	v, err := ip.fold(e)
	if err != nil {
		return false, false
	}
	return ToBoolean(v), true
}

func (ip *Interpreter) isConst(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.NullLiteral, *ast.BooleanLiteral, *ast.NumberLiteral, *ast.StringLiteral:
		return true
	case *ast.UnaryExpression:
		return IsConst(ip, n.Operand)
	case *ast.BinaryExpression:
		switch n.Operator {
		case token.LogicalAnd, token.LogicalOr:
			b, ok := ip.constTest(n.Left)
			if !ok {
				return false
			}
			if b == (n.Operator == token.LogicalOr) {
				return true
			}
			return IsConst(ip, n.Right)
		}
		return IsConst(ip, n.Left) && IsConst(ip, n.Right)
	case *ast.SequenceExpression:
		return IsConst(ip, n.Left) && IsConst(ip, n.Right)
	case *ast.ConditionalExpression:
		b, ok := ip.constTest(n.Test)
		if !ok {
			return false
		}
		if b {
			return IsConst(ip, n.Consequent)
		}
		return IsConst(ip, n.Alternate)

	case *ast.EmptyStatement:
		return true
	case *ast.BlockStatement:
		for _, s := range n.List {
			if !IsConst(ip, s) {
				return false
			}
		}
		return true
	case *ast.ExpressionStatement:
		return IsConst(ip, n.Expression)
	case *ast.IfStatement:
		b, ok := ip.constTest(n.Test)
		switch {
		case !ok:
			return false
		case b:
			return IsConst(ip, n.Consequent)
		case n.Alternate != nil:
			return IsConst(ip, n.Alternate)
		}
		return true
	case *ast.DoWhileStatement:
		b, ok := ip.constTest(n.Test)
		if !ok || b {
			return false
		}
		return IsConst(ip, n.Body)
	case *ast.WhileStatement:
		b, ok := ip.constTest(n.Test)
		return ok && !b
	case *ast.ForStatement:
		if n.Test == nil {
			return false
		}
		b, ok := ip.constTest(n.Test)
		if !ok || b {
			return false
		}
		if n.Initializer != nil && !IsConst(ip, n.Initializer) {
			return false
		}
		if n.Update != nil && !IsConst(ip, n.Update) {
			return false
		}
		return IsConst(ip, n.Body)
	}
	return false
}
