package ast

type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitFunction(node *Function)
	VisitFunctionBody(node *FunctionBody)
	VisitNullLiteral(node *NullLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitRegExpLiteral(node *RegExpLiteral)
	VisitThisExpression(node *ThisExpression)
	VisitIdentifier(node *Identifier)
	VisitArrayLiteral(node *ArrayLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitDotExpression(node *DotExpression)
	VisitBracketExpression(node *BracketExpression)
	VisitCallExpression(node *CallExpression)
	VisitNewExpression(node *NewExpression)
	VisitUpdateExpression(node *UpdateExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitConditionalExpression(node *ConditionalExpression)
	VisitAssignExpression(node *AssignExpression)
	VisitSequenceExpression(node *SequenceExpression)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitBlockStatement(node *BlockStatement)
	VisitVariableDeclaration(node *VariableDeclaration)
	VisitVariableStatement(node *VariableStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitIfStatement(node *IfStatement)
	VisitDoWhileStatement(node *DoWhileStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitForStatement(node *ForStatement)
	VisitForVarStatement(node *ForVarStatement)
	VisitForInStatement(node *ForInStatement)
	VisitForVarInStatement(node *ForVarInStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitWithStatement(node *WithStatement)
	VisitCaseClause(node *CaseClause)
	VisitSwitchStatement(node *SwitchStatement)
	VisitLabelledStatement(node *LabelledStatement)
	VisitThrowStatement(node *ThrowStatement)
	VisitTryStatement(node *TryStatement)
	VisitFunctionDeclaration(node *FunctionDeclaration)
}

// NoopVisitor visits every node without doing anything. Embed it and set V
// to the embedding visitor to override only the methods of interest.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitFunction(node *Function) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionBody(node *FunctionBody) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNullLiteral(node *NullLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBooleanLiteral(node *BooleanLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNumberLiteral(node *NumberLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitStringLiteral(node *StringLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitRegExpLiteral(node *RegExpLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitThisExpression(node *ThisExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIdentifier(node *Identifier) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitArrayLiteral(node *ArrayLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitObjectLiteral(node *ObjectLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDotExpression(node *DotExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBracketExpression(node *BracketExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCallExpression(node *CallExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitNewExpression(node *NewExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUpdateExpression(node *UpdateExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitUnaryExpression(node *UnaryExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBinaryExpression(node *BinaryExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitConditionalExpression(node *ConditionalExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitAssignExpression(node *AssignExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSequenceExpression(node *SequenceExpression) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionLiteral(node *FunctionLiteral) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBlockStatement(node *BlockStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableDeclaration(node *VariableDeclaration) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitVariableStatement(node *VariableStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitEmptyStatement(node *EmptyStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitExpressionStatement(node *ExpressionStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitIfStatement(node *IfStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitDoWhileStatement(node *DoWhileStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitWhileStatement(node *WhileStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForStatement(node *ForStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForVarStatement(node *ForVarStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForInStatement(node *ForInStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitForVarInStatement(node *ForVarInStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitContinueStatement(node *ContinueStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBreakStatement(node *BreakStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitReturnStatement(node *ReturnStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitWithStatement(node *WithStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitCaseClause(node *CaseClause) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitSwitchStatement(node *SwitchStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitLabelledStatement(node *LabelledStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitThrowStatement(node *ThrowStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitTryStatement(node *TryStatement) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitFunctionDeclaration(node *FunctionDeclaration) {
	node.VisitChildrenWith(nv.V)
}

// visit dispatches to n unless it is a nil interface.
func visit(v Visitor, n Node) {
	if n != nil {
		n.VisitWith(v)
	}
}

func visitExprs(v Visitor, list []Expr) {
	for _, e := range list {
		if e != nil {
			e.VisitWith(v)
		}
	}
}

func visitStmts(v Visitor, list []Stmt) {
	for _, s := range list {
		s.VisitWith(v)
	}
}

func (n *Function) VisitWith(v Visitor) {
	v.VisitFunction(n)
}

func (n *Function) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
}

func (n *FunctionBody) VisitWith(v Visitor) {
	v.VisitFunctionBody(n)
}

func (n *FunctionBody) VisitChildrenWith(v Visitor) {
	for _, c := range n.Functions {
		c.VisitWith(v)
	}
	visitStmts(v, n.Statements)
}

func (n *NullLiteral) VisitWith(v Visitor) {
	v.VisitNullLiteral(n)
}

func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *BooleanLiteral) VisitWith(v Visitor) {
	v.VisitBooleanLiteral(n)
}

func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor) {
	v.VisitNumberLiteral(n)
}

func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor) {
	v.VisitStringLiteral(n)
}

func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *RegExpLiteral) VisitWith(v Visitor) {
	v.VisitRegExpLiteral(n)
}

func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *ThisExpression) VisitWith(v Visitor) {
	v.VisitThisExpression(n)
}

func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *Identifier) VisitWith(v Visitor) {
	v.VisitIdentifier(n)
}

func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *ArrayLiteral) VisitWith(v Visitor) {
	v.VisitArrayLiteral(n)
}

func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	visitExprs(v, n.Elements)
}

func (n *ObjectLiteral) VisitWith(v Visitor) {
	v.VisitObjectLiteral(n)
}

func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for _, p := range n.Properties {
		visit(v, p.Value)
	}
}

func (n *DotExpression) VisitWith(v Visitor) {
	v.VisitDotExpression(n)
}

func (n *DotExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Left)
}

func (n *BracketExpression) VisitWith(v Visitor) {
	v.VisitBracketExpression(n)
}

func (n *BracketExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Left)
	visit(v, n.Member)
}

func (n *CallExpression) VisitWith(v Visitor) {
	v.VisitCallExpression(n)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Callee)
	visitExprs(v, n.Arguments)
}

func (n *NewExpression) VisitWith(v Visitor) {
	v.VisitNewExpression(n)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Callee)
	visitExprs(v, n.Arguments)
}

func (n *UpdateExpression) VisitWith(v Visitor) {
	v.VisitUpdateExpression(n)
}

func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Operand)
}

func (n *UnaryExpression) VisitWith(v Visitor) {
	v.VisitUnaryExpression(n)
}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Operand)
}

func (n *BinaryExpression) VisitWith(v Visitor) {
	v.VisitBinaryExpression(n)
}

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Left)
	visit(v, n.Right)
}

func (n *ConditionalExpression) VisitWith(v Visitor) {
	v.VisitConditionalExpression(n)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Test)
	visit(v, n.Consequent)
	visit(v, n.Alternate)
}

func (n *AssignExpression) VisitWith(v Visitor) {
	v.VisitAssignExpression(n)
}

func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Left)
	visit(v, n.Right)
}

func (n *SequenceExpression) VisitWith(v Visitor) {
	v.VisitSequenceExpression(n)
}

func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	visit(v, n.Left)
	visit(v, n.Right)
}

func (n *FunctionLiteral) VisitWith(v Visitor) {
	v.VisitFunctionLiteral(n)
}

func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Function != nil {
		n.Function.VisitWith(v)
	}
}

func (n *BlockStatement) VisitWith(v Visitor) {
	v.VisitBlockStatement(n)
}

func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	visitStmts(v, n.List)
}

func (n *VariableDeclaration) VisitWith(v Visitor) {
	v.VisitVariableDeclaration(n)
}

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	visit(v, n.Initializer)
}

func (n *VariableStatement) VisitWith(v Visitor) {
	v.VisitVariableStatement(n)
}

func (n *VariableStatement) VisitChildrenWith(v Visitor) {
	for _, c := range n.List {
		c.VisitWith(v)
	}
}

func (n *EmptyStatement) VisitWith(v Visitor) {
	v.VisitEmptyStatement(n)
}

func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) {
	v.VisitExpressionStatement(n)
}

func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Expression)
}

func (n *IfStatement) VisitWith(v Visitor) {
	v.VisitIfStatement(n)
}

func (n *IfStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Test)
	visit(v, n.Consequent)
	visit(v, n.Alternate)
}

func (n *DoWhileStatement) VisitWith(v Visitor) {
	v.VisitDoWhileStatement(n)
}

func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Body)
	visit(v, n.Test)
}

func (n *WhileStatement) VisitWith(v Visitor) {
	v.VisitWhileStatement(n)
}

func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Test)
	visit(v, n.Body)
}

func (n *ForStatement) VisitWith(v Visitor) {
	v.VisitForStatement(n)
}

func (n *ForStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Initializer)
	visit(v, n.Test)
	visit(v, n.Update)
	visit(v, n.Body)
}

func (n *ForVarStatement) VisitWith(v Visitor) {
	v.VisitForVarStatement(n)
}

func (n *ForVarStatement) VisitChildrenWith(v Visitor) {
	for _, c := range n.List {
		c.VisitWith(v)
	}
	visit(v, n.Test)
	visit(v, n.Update)
	visit(v, n.Body)
}

func (n *ForInStatement) VisitWith(v Visitor) {
	v.VisitForInStatement(n)
}

func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Into)
	visit(v, n.Source)
	visit(v, n.Body)
}

func (n *ForVarInStatement) VisitWith(v Visitor) {
	v.VisitForVarInStatement(n)
}

func (n *ForVarInStatement) VisitChildrenWith(v Visitor) {
	if n.Var != nil {
		n.Var.VisitWith(v)
	}
	visit(v, n.Source)
	visit(v, n.Body)
}

func (n *ContinueStatement) VisitWith(v Visitor) {
	v.VisitContinueStatement(n)
}

func (n *ContinueStatement) VisitChildrenWith(v Visitor) {}

func (n *BreakStatement) VisitWith(v Visitor) {
	v.VisitBreakStatement(n)
}

func (n *BreakStatement) VisitChildrenWith(v Visitor) {}

func (n *ReturnStatement) VisitWith(v Visitor) {
	v.VisitReturnStatement(n)
}

func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Argument)
}

func (n *WithStatement) VisitWith(v Visitor) {
	v.VisitWithStatement(n)
}

func (n *WithStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Object)
	visit(v, n.Body)
}

func (n *CaseClause) VisitWith(v Visitor) {
	v.VisitCaseClause(n)
}

func (n *CaseClause) VisitChildrenWith(v Visitor) {
	visit(v, n.Test)
	visitStmts(v, n.Consequent)
}

func (n *SwitchStatement) VisitWith(v Visitor) {
	v.VisitSwitchStatement(n)
}

func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Discriminant)
	for _, c := range n.Body {
		c.VisitWith(v)
	}
}

func (n *LabelledStatement) VisitWith(v Visitor) {
	v.VisitLabelledStatement(n)
}

func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Statement)
}

func (n *ThrowStatement) VisitWith(v Visitor) {
	v.VisitThrowStatement(n)
}

func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	visit(v, n.Argument)
}

func (n *TryStatement) VisitWith(v Visitor) {
	v.VisitTryStatement(n)
}

func (n *TryStatement) VisitChildrenWith(v Visitor) {
	if n.Body != nil {
		n.Body.VisitWith(v)
	}
	if n.Catch != nil {
		n.Catch.VisitWith(v)
	}
	if n.Finally != nil {
		n.Finally.VisitWith(v)
	}
}

func (n *FunctionDeclaration) VisitWith(v Visitor) {
	v.VisitFunctionDeclaration(n)
}

func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	if n.Function != nil {
		n.Function.VisitWith(v)
	}
}
