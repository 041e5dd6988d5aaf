package ast

import "github.com/t14raptor/es3/token"

type (
	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	NullLiteral struct {
		Base
	}

	BooleanLiteral struct {
		Base
		Value bool
	}

	NumberLiteral struct {
		Base
		Value float64
	}

	StringLiteral struct {
		Base
		Value string
	}

	RegExpLiteral struct {
		Base
		Pattern string
		Flags   string
	}

	ThisExpression struct {
		Base
	}

	Identifier struct {
		Base
		Name string
	}

	// ArrayLiteral elements are nil for elisions.
	ArrayLiteral struct {
		Base
		Elements []Expr
	}

	Property struct {
		Key   string
		Value Expr
	}

	ObjectLiteral struct {
		Base
		Properties []Property
	}

	DotExpression struct {
		Base
		Left       Expr
		Identifier string
	}

	BracketExpression struct {
		Base
		Left   Expr
		Member Expr
	}

	CallExpression struct {
		Base
		Callee    Expr
		Arguments []Expr
	}

	// NewExpression without an argument list has nil Arguments.
	NewExpression struct {
		Base
		Callee    Expr
		Arguments []Expr
	}

	// UpdateExpression is ++ or -- in prefix or postfix position.
	UpdateExpression struct {
		Base
		Operator token.Token
		Operand  Expr
		Postfix  bool
	}

	// UnaryExpression covers delete, void, typeof, +, -, ~ and !.
	UnaryExpression struct {
		Base
		Operator token.Token
		Operand  Expr
	}

	// BinaryExpression covers the arithmetic, bitwise, relational,
	// equality and logical operators.
	BinaryExpression struct {
		Base
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		Base
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	// AssignExpression uses token.Assign or one of the compound
	// assignment operators.
	AssignExpression struct {
		Base
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	// SequenceExpression is the comma operator.
	SequenceExpression struct {
		Base
		Left  Expr
		Right Expr
	}

	FunctionLiteral struct {
		Base
		Function *Function
	}
)

func (*NullLiteral) _expr()           {}
func (*BooleanLiteral) _expr()        {}
func (*NumberLiteral) _expr()         {}
func (*StringLiteral) _expr()         {}
func (*RegExpLiteral) _expr()         {}
func (*ThisExpression) _expr()        {}
func (*Identifier) _expr()            {}
func (*ArrayLiteral) _expr()          {}
func (*ObjectLiteral) _expr()         {}
func (*DotExpression) _expr()         {}
func (*BracketExpression) _expr()     {}
func (*CallExpression) _expr()        {}
func (*NewExpression) _expr()         {}
func (*UpdateExpression) _expr()      {}
func (*UnaryExpression) _expr()       {}
func (*BinaryExpression) _expr()      {}
func (*ConditionalExpression) _expr() {}
func (*AssignExpression) _expr()      {}
func (*SequenceExpression) _expr()    {}
func (*FunctionLiteral) _expr()       {}
