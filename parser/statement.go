package parser

import (
	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/parser/scanner"
	"github.com/t14raptor/es3/token"
)

func (p *parser) parseStatement() ast.Stmt {
	p.scope.labelSet = nil

	switch p.kind() {
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Var:
		return p.parseVariableStatement()
	case token.Semicolon:
		loc := p.location()
		p.next()
		return &ast.EmptyStatement{Base: ast.Base{Location: loc}}
	case token.If:
		return p.parseIfStatement()
	case token.Do, token.While, token.For:
		return p.parseIterationStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Function:
		// Conditional functions, as in "if (x) function f() {}".
		if p.compat.AtLeast(scanner.JS15) && p.lookahead(1) != token.LeftParenthesis {
			return p.parseFunctionStatement()
		}
		p.errorNear("function keyword not allowed here")
	case token.Identifier:
		if p.lookahead(1) == token.Colon {
			return p.parseLabelledStatement()
		}
	}
	return p.parseExpressionStatement()
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.LeftBrace)
	if p.kind() != token.RightBrace {
		node.List = p.parseStatementList()
	}
	p.expect(token.RightBrace)
	return node
}

// parseStatementList parses at least one statement, stopping before a
// token that cannot continue a block or case clause.
func (p *parser) parseStatementList() []ast.Stmt {
	list := []ast.Stmt{p.parseStatement()}
	for {
		switch p.kind() {
		case token.RightBrace, token.Eof, token.Function, token.Case, token.Default:
			return list
		}
		list = append(list, p.parseStatement())
	}
}

func (p *parser) parseVariableStatement() ast.Stmt {
	node := &ast.VariableStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.Var)
	node.List = p.parseVariableDeclarationList()
	p.semicolon()
	return node
}

func (p *parser) parseVariableDeclarationList() []*ast.VariableDeclaration {
	list := []*ast.VariableDeclaration{p.parseVariableDeclaration()}
	for p.kind() == token.Comma {
		p.next()
		list = append(list, p.parseVariableDeclaration())
	}
	return list
}

func (p *parser) parseVariableDeclaration() *ast.VariableDeclaration {
	node := &ast.VariableDeclaration{Base: ast.Base{Location: p.location()}}
	node.Name = p.expect(token.Identifier).Value
	if p.kind() == token.Assign {
		p.next()
		node.Initializer = p.parseAssignmentExpression()
	}
	return node
}

func (p *parser) parseExpressionStatement() ast.Stmt {
	node := &ast.ExpressionStatement{Base: ast.Base{Location: p.location()}}
	node.Expression = p.parseExpression()
	p.semicolon()
	return node
}

func (p *parser) parseIfStatement() ast.Stmt {
	node := &ast.IfStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.If)
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Consequent = p.parseStatement()
	if p.kind() == token.Else {
		p.next()
		node.Alternate = p.parseStatement()
	}
	return node
}

// parseIterationStatement parses do, while and the four forms of for. The
// loop pushes an anonymous continuable label around its body.
func (p *parser) parseIterationStatement() ast.Stmt {
	loc := p.location()
	target := p.initTarget(true)

	switch p.next().Kind {
	case token.Do:
		node := &ast.DoWhileStatement{Base: ast.Base{Location: loc}, Target: target}
		node.Body = p.parseLoopBody()
		p.expect(token.While)
		p.expect(token.LeftParenthesis)
		node.Test = p.parseExpression()
		p.expect(token.RightParenthesis)
		p.semicolon()
		return node

	case token.While:
		node := &ast.WhileStatement{Base: ast.Base{Location: loc}, Target: target}
		p.expect(token.LeftParenthesis)
		node.Test = p.parseExpression()
		p.expect(token.RightParenthesis)
		node.Body = p.parseLoopBody()
		return node
	}

	p.expect(token.LeftParenthesis)

	if p.kind() == token.Var {
		p.next()
		p.noIn = true
		list := p.parseVariableDeclarationList()
		p.noIn = false
		if p.kind() == token.In && len(list) == 1 {
			p.next()
			node := &ast.ForVarInStatement{Base: ast.Base{Location: loc}, Target: target, Var: list[0]}
			node.Source = p.parseExpression()
			p.expect(token.RightParenthesis)
			node.Body = p.parseLoopBody()
			return node
		}
		want := "';'"
		if len(list) == 1 {
			want = "';' or 'in'"
		}
		p.expectX(token.Semicolon, want)
		node := &ast.ForVarStatement{Base: ast.Base{Location: loc}, Target: target, List: list}
		node.Test, node.Update = p.parseForTail()
		node.Body = p.parseLoopBody()
		return node
	}

	var init ast.Expr
	if p.kind() != token.Semicolon {
		p.noIn = true
		init = p.parseExpression()
		p.noIn = false
		if p.kind() == token.In && p.isLHS {
			p.next()
			node := &ast.ForInStatement{Base: ast.Base{Location: loc}, Target: target, Into: init}
			node.Source = p.parseExpression()
			p.expect(token.RightParenthesis)
			node.Body = p.parseLoopBody()
			return node
		}
	}
	p.expect(token.Semicolon)
	node := &ast.ForStatement{Base: ast.Base{Location: loc}, Target: target, Initializer: init}
	node.Test, node.Update = p.parseForTail()
	node.Body = p.parseLoopBody()
	return node
}

// parseForTail parses "test; update)" of a for statement header.
func (p *parser) parseForTail() (test, update ast.Expr) {
	if p.kind() != token.Semicolon {
		test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.kind() != token.RightParenthesis {
		update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	return test, update
}

func (p *parser) parseLoopBody() ast.Stmt {
	p.pushLabel("", nil, true)
	defer p.popLabel()
	return p.parseStatement()
}

func (p *parser) parseContinueStatement() ast.Stmt {
	node := &ast.ContinueStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.Continue)
	node.Label, node.Target = p.parseJumpTarget(token.Continue)
	p.semicolon()
	return node
}

func (p *parser) parseBreakStatement() ast.Stmt {
	node := &ast.BreakStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.Break)
	node.Label, node.Target = p.parseJumpTarget(token.Break)
	p.semicolon()
	return node
}

// parseJumpTarget reads the optional label of a break or continue. A label
// must be on the same line as the keyword.
func (p *parser) parseJumpTarget(kind token.Token) (string, *ast.LabelSet) {
	if p.nextIsSemicolon() {
		return "", p.lookupLabel("", kind)
	}
	var target *ast.LabelSet
	name := p.peek().Value
	if p.kind() == token.Identifier {
		target = p.lookupLabel(name, kind)
	}
	p.expect(token.Identifier)
	return name, target
}

func (p *parser) parseReturnStatement() ast.Stmt {
	node := &ast.ReturnStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.Return)
	if p.funcDepth == 0 {
		p.errorNear("'return' statement not inside function")
	}
	if !p.nextIsSemicolon() {
		node.Argument = p.parseExpression()
	}
	p.semicolon()
	return node
}

func (p *parser) parseWithStatement() ast.Stmt {
	node := &ast.WithStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.With)
	p.expect(token.LeftParenthesis)
	node.Object = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Body = p.parseStatement()
	return node
}

func (p *parser) parseSwitchStatement() ast.Stmt {
	node := &ast.SwitchStatement{Base: ast.Base{Location: p.location()}, Default: -1}
	node.Target = p.initTarget(false)
	p.expect(token.Switch)
	p.pushLabel("", nil, false)
	defer p.popLabel()

	p.expect(token.LeftParenthesis)
	node.Discriminant = p.parseExpression()
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)
	for p.kind() != token.RightBrace {
		clause := &ast.CaseClause{Base: ast.Base{Location: p.location()}}
		switch p.kind() {
		case token.Case:
			p.next()
			clause.Test = p.parseExpression()
		case token.Default:
			p.next()
			if node.Default >= 0 {
				p.errorNear("duplicate 'default' clause")
			}
			node.Default = len(node.Body)
		default:
			p.expected("'}', 'case' or 'default'")
		}
		p.expect(token.Colon)
		switch p.kind() {
		case token.RightBrace, token.Case, token.Default:
		default:
			clause.Consequent = p.parseStatementList()
		}
		node.Body = append(node.Body, clause)
	}
	p.expect(token.RightBrace)
	return node
}

// parseLabelledStatement parses one or more "name:" prefixes. Consecutive
// labels share a label set named after the first of them.
func (p *parser) parseLabelledStatement() ast.Stmt {
	node := &ast.LabelledStatement{Base: ast.Base{Location: p.location()}}
	depth := len(p.scope.labels)
	defer func() { p.scope.labels = p.scope.labels[:depth] }()
	for {
		name := p.peek().Value
		if node.LabelSet == nil {
			node.LabelSet = &ast.LabelSet{Name: name}
		}
		p.pushLabel(name, node.LabelSet, false)
		node.Labels = append(node.Labels, name)
		p.expect(token.Identifier)
		p.expect(token.Colon)
		if p.kind() != token.Identifier || p.lookahead(1) != token.Colon {
			break
		}
	}

	switch p.kind() {
	case token.Do, token.While, token.For:
		p.scope.labelSet = node.LabelSet
		node.Statement = p.parseIterationStatement()
	case token.Switch:
		p.scope.labelSet = node.LabelSet
		node.Statement = p.parseSwitchStatement()
	default:
		node.Statement = p.parseStatement()
	}
	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	node := &ast.ThrowStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.Throw)
	if p.followsNewline() {
		p.errorNear("newline not allowed after 'throw'")
	}
	node.Argument = p.parseExpression()
	p.semicolon()
	return node
}

func (p *parser) parseTryStatement() ast.Stmt {
	node := &ast.TryStatement{Base: ast.Base{Location: p.location()}}
	p.expect(token.Try)
	node.Body = p.parseBlockStatement()
	if p.kind() == token.Catch {
		p.next()
		p.expect(token.LeftParenthesis)
		node.Parameter = p.expect(token.Identifier).Value
		p.expect(token.RightParenthesis)
		node.Catch = p.parseBlockStatement()
	}
	if p.kind() == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}
	if node.Catch == nil && node.Finally == nil {
		p.errorNear("expected 'catch' or 'finally'")
	}
	return node
}
