package ast

type (
	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		Base
		List []Stmt
	}

	VariableDeclaration struct {
		Base
		Name        string
		Initializer Expr
	}

	VariableStatement struct {
		Base
		List []*VariableDeclaration
	}

	EmptyStatement struct {
		Base
	}

	ExpressionStatement struct {
		Base
		Expression Expr
	}

	IfStatement struct {
		Base
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	// The iteration and switch statements carry the LabelSet of the labels
	// directly attached to them, or nil.

	DoWhileStatement struct {
		Base
		Target *LabelSet
		Body   Stmt
		Test   Expr
	}

	WhileStatement struct {
		Base
		Target *LabelSet
		Test   Expr
		Body   Stmt
	}

	// ForStatement is for (init; test; update). Any of the three may be nil.
	ForStatement struct {
		Base
		Target      *LabelSet
		Initializer Expr
		Test        Expr
		Update      Expr
		Body        Stmt
	}

	// ForVarStatement is for (var ...; test; update).
	ForVarStatement struct {
		Base
		Target *LabelSet
		List   []*VariableDeclaration
		Test   Expr
		Update Expr
		Body   Stmt
	}

	// ForInStatement is for (lhs in source).
	ForInStatement struct {
		Base
		Target *LabelSet
		Into   Expr
		Source Expr
		Body   Stmt
	}

	// ForVarInStatement is for (var name in source).
	ForVarInStatement struct {
		Base
		Target *LabelSet
		Var    *VariableDeclaration
		Source Expr
		Body   Stmt
	}

	// ContinueStatement Target is nil for the innermost loop.
	ContinueStatement struct {
		Base
		Label  string
		Target *LabelSet
	}

	// BreakStatement Target is nil for the innermost loop or switch.
	BreakStatement struct {
		Base
		Label  string
		Target *LabelSet
	}

	ReturnStatement struct {
		Base
		Argument Expr
	}

	WithStatement struct {
		Base
		Object Expr
		Body   Stmt
	}

	// CaseClause Test is nil for the default clause.
	CaseClause struct {
		Base
		Test       Expr
		Consequent []Stmt
	}

	SwitchStatement struct {
		Base
		Target       *LabelSet
		Discriminant Expr
		Body         []*CaseClause
		// Default is the index of the default clause in Body, or -1.
		Default int
	}

	LabelledStatement struct {
		Base
		Labels    []string
		LabelSet  *LabelSet
		Statement Stmt
	}

	ThrowStatement struct {
		Base
		Argument Expr
	}

	// TryStatement has a Catch, a Finally, or both.
	TryStatement struct {
		Base
		Body      *BlockStatement
		Parameter string
		Catch     *BlockStatement
		Finally   *BlockStatement
	}

	// FunctionDeclaration is hoisted into its FunctionBody's Functions.
	FunctionDeclaration struct {
		Base
		Function *Function
	}
)

func (*BlockStatement) _stmt()      {}
func (*VariableStatement) _stmt()   {}
func (*EmptyStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*IfStatement) _stmt()         {}
func (*DoWhileStatement) _stmt()    {}
func (*WhileStatement) _stmt()      {}
func (*ForStatement) _stmt()        {}
func (*ForVarStatement) _stmt()     {}
func (*ForInStatement) _stmt()      {}
func (*ForVarInStatement) _stmt()   {}
func (*ContinueStatement) _stmt()   {}
func (*BreakStatement) _stmt()      {}
func (*ReturnStatement) _stmt()     {}
func (*WithStatement) _stmt()       {}
func (*SwitchStatement) _stmt()     {}
func (*LabelledStatement) _stmt()   {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*FunctionDeclaration) _stmt() {}
