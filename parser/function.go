package parser

import (
	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/token"
)

func (p *parser) parseProgram() *ast.Function {
	fn := &ast.Function{Base: ast.Base{Location: p.location()}}
	fn.Body = p.parseFunctionBody()
	fn.Body.IsProgram = true

	switch p.kind() {
	case token.Eof:
		return fn
	case token.RightBrace:
		p.errorNear("unmatched '}'")
	case token.RightParenthesis:
		p.errorNear("unmatched ')'")
	case token.RightBracket:
		p.errorNear("unmatched ']'")
	}
	p.errorNear("unexpected token")
	return nil
}

// parseFunctionBody parses SourceElements up to the first token that cannot
// start one. Function declarations are split from the statements so they
// can be instantiated first.
func (p *parser) parseFunctionBody() *ast.FunctionBody {
	body := &ast.FunctionBody{Base: ast.Base{Location: p.location()}}

	p.openScope()
	defer p.closeScope()

	for {
		switch p.kind() {
		case token.Function:
			if p.lookahead(1) != token.LeftParenthesis {
				body.Functions = append(body.Functions, p.parseFunctionDeclaration())
				continue
			}
		case token.This, token.Identifier, token.String, token.Number,
			token.Null, token.True, token.False,
			token.LeftParenthesis, token.LeftBracket, token.LeftBrace,
			token.New, token.Delete, token.Void, token.TypeOf,
			token.Increment, token.Decrement,
			token.Plus, token.Minus, token.BitwiseNot, token.Not, token.Semicolon,
			token.Var, token.If, token.Do, token.While, token.For,
			token.Continue, token.Break, token.Return,
			token.With, token.Switch, token.Throw, token.Try,
			token.Slash, token.QuotientAssign:
		default:
			body.Vars = collectVars(body.Statements)
			return body
		}
		body.Statements = append(body.Statements, p.parseStatement())
	}
}

func (p *parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	node := &ast.FunctionDeclaration{Base: ast.Base{Location: p.location()}}
	p.expect(token.Function)
	name := p.expect(token.Identifier).Value
	node.Function = p.parseFunctionRest(name, node.Location)
	return node
}

func (p *parser) parseFunctionExpression() *ast.FunctionLiteral {
	noIn, isLHS := p.noIn, p.isLHS
	p.noIn, p.isLHS = false, false

	node := &ast.FunctionLiteral{Base: ast.Base{Location: p.location()}}
	p.expect(token.Function)
	var name string
	if p.kind() == token.Identifier {
		name = p.next().Value
	}
	node.Function = p.parseFunctionRest(name, node.Location)

	p.noIn, p.isLHS = noIn, isLHS
	return node
}

// parseFunctionRest parses "(params) { body }".
func (p *parser) parseFunctionRest(name string, loc ast.Location) *ast.Function {
	fn := &ast.Function{Base: ast.Base{Location: loc}, Name: name}
	p.expect(token.LeftParenthesis)
	fn.Params = p.parseFormalParameterList()
	p.expect(token.RightParenthesis)

	p.expect(token.LeftBrace)
	p.funcDepth++
	fn.Body = p.parseFunctionBody()
	p.funcDepth--
	p.expect(token.RightBrace)
	return fn
}

// parseFormalParameterList accepts an empty list.
func (p *parser) parseFormalParameterList() []string {
	var params []string
	if p.kind() != token.Identifier {
		return params
	}
	params = append(params, p.next().Value)
	for p.kind() == token.Comma {
		p.next()
		params = append(params, p.expect(token.Identifier).Value)
	}
	return params
}

// parseFunctionStatement parses a JavaScript 1.5 conditional function
// "function f() {}" in statement position. It behaves like
// "f = function f() {}".
func (p *parser) parseFunctionStatement() ast.Stmt {
	loc := p.location()
	fn := p.parseFunctionExpression()
	return &ast.ExpressionStatement{
		Base: ast.Base{Location: loc},
		Expression: &ast.AssignExpression{
			Base:     ast.Base{Location: loc},
			Operator: token.Assign,
			Left:     &ast.Identifier{Base: ast.Base{Location: loc}, Name: fn.Function.Name},
			Right:    fn,
		},
	}
}

// varCollector gathers the names declared with var in a function body,
// without descending into nested functions.
type varCollector struct {
	ast.NoopVisitor
	seen  map[string]bool
	names []string
}

func collectVars(stmts []ast.Stmt) []string {
	c := &varCollector{seen: make(map[string]bool)}
	c.V = c
	for _, s := range stmts {
		s.VisitWith(c)
	}
	return c.names
}

func (c *varCollector) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if !c.seen[n.Name] {
		c.seen[n.Name] = true
		c.names = append(c.names, n.Name)
	}
}

func (c *varCollector) VisitFunctionLiteral(*ast.FunctionLiteral) {}

func (c *varCollector) VisitFunctionDeclaration(*ast.FunctionDeclaration) {}
