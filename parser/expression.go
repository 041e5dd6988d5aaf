package parser

import (
	"strings"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/parser/scanner"
	"github.com/t14raptor/es3/token"
)

func (p *parser) parseLiteral() ast.Expr {
	loc := p.location()
	switch p.kind() {
	case token.Null:
		p.next()
		return &ast.NullLiteral{Base: ast.Base{Location: loc}}
	case token.True, token.False:
		tok := p.next()
		return &ast.BooleanLiteral{Base: ast.Base{Location: loc}, Value: tok.Kind == token.True}
	case token.Number:
		tok := p.next()
		return &ast.NumberLiteral{Base: ast.Base{Location: loc}, Value: tok.Number}
	case token.String:
		tok := p.next()
		return &ast.StringLiteral{Base: ast.Base{Location: loc}, Value: tok.Value}
	case token.Slash, token.QuotientAssign:
		p.rescanRegex()
		tok := p.expect(token.RegExp)
		// The value has the form "/body/flags"; the body may itself
		// contain escaped slashes, so split at the last one.
		i := strings.LastIndexByte(tok.Value, '/')
		return &ast.RegExpLiteral{
			Base:    ast.Base{Location: loc},
			Pattern: tok.Value[1:i],
			Flags:   tok.Value[i+1:],
		}
	}
	p.expected("null, true, false, number, string, or regex")
	return nil
}

func (p *parser) parsePrimaryExpression() ast.Expr {
	loc := p.location()
	switch p.kind() {
	case token.This:
		p.next()
		return &ast.ThisExpression{Base: ast.Base{Location: loc}}
	case token.Identifier:
		tok := p.next()
		return &ast.Identifier{Base: ast.Base{Location: loc}, Name: tok.Value}
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.LeftParenthesis:
		p.next()
		var e ast.Expr
		p.withIn(func() { e = p.parseExpression() })
		p.expect(token.RightParenthesis)
		return e
	}
	return p.parseLiteral()
}

// withIn parses a bracketed construct in which the 'in' operator is
// allowed even inside a for statement header.
func (p *parser) withIn(f func()) {
	saved := p.noIn
	p.noIn = false
	f()
	p.noIn = saved
}

func (p *parser) parseArrayLiteral() ast.Expr {
	node := &ast.ArrayLiteral{Base: ast.Base{Location: p.location()}}
	p.expect(token.LeftBracket)
	p.withIn(func() {
		for p.kind() != token.RightBracket {
			if p.kind() == token.Comma {
				p.next()
				node.Elements = append(node.Elements, nil)
				continue
			}
			node.Elements = append(node.Elements, p.parseAssignmentExpression())
			if p.kind() != token.RightBracket {
				p.expectX(token.Comma, "',' or ']'")
			}
		}
	})
	p.expect(token.RightBracket)
	return node
}

func (p *parser) parseObjectLiteral() ast.Expr {
	node := &ast.ObjectLiteral{Base: ast.Base{Location: p.location()}}
	p.expect(token.LeftBrace)
	p.withIn(func() {
		for p.kind() != token.RightBrace {
			var key string
			switch p.kind() {
			case token.Identifier, token.String:
				key = p.next().Value
			case token.Number:
				key = scanner.FormatNumber(p.next().Number)
			default:
				p.expected("string, identifier or number")
			}
			p.expect(token.Colon)
			node.Properties = append(node.Properties, ast.Property{
				Key:   key,
				Value: p.parseAssignmentExpression(),
			})
			if p.kind() != token.RightBrace {
				p.expectX(token.Comma, "',' or '}'")
			}
		}
	})
	p.expect(token.RightBrace)
	return node
}

func (p *parser) parseArguments() []ast.Expr {
	args := []ast.Expr{}
	p.expect(token.LeftParenthesis)
	p.withIn(func() {
		for p.kind() != token.RightParenthesis {
			args = append(args, p.parseAssignmentExpression())
			if p.kind() != token.RightParenthesis {
				p.expectX(token.Comma, "',' or ')'")
			}
		}
	})
	p.expect(token.RightParenthesis)
	return args
}

// parseMemberExpression parses a MemberExpression: a primary expression,
// function expression or new expression followed by property accessors.
// A new without an argument list binds to the member expression after it.
func (p *parser) parseMemberExpression() ast.Expr {
	loc := p.location()
	var left ast.Expr
	switch p.kind() {
	case token.Function:
		left = p.parseFunctionExpression()
	case token.New:
		p.next()
		node := &ast.NewExpression{Base: ast.Base{Location: loc}}
		node.Callee = p.parseMemberExpression()
		if p.kind() == token.LeftParenthesis {
			node.Arguments = p.parseArguments()
		}
		left = node
	default:
		left = p.parsePrimaryExpression()
	}
	return p.parseAccessors(left, false)
}

// parseAccessors parses a chain of '.name' and '[expr]' suffixes, and of
// argument lists when calls is set.
func (p *parser) parseAccessors(left ast.Expr, calls bool) ast.Expr {
	for {
		loc := p.location()
		switch p.kind() {
		case token.Period:
			p.next()
			name := p.expect(token.Identifier).Value
			left = &ast.DotExpression{Base: ast.Base{Location: loc}, Left: left, Identifier: name}
		case token.LeftBracket:
			p.next()
			var member ast.Expr
			p.withIn(func() { member = p.parseExpression() })
			p.expect(token.RightBracket)
			left = &ast.BracketExpression{Base: ast.Base{Location: loc}, Left: left, Member: member}
		case token.LeftParenthesis:
			if !calls {
				return left
			}
			left = &ast.CallExpression{Base: ast.Base{Location: loc}, Callee: left, Arguments: p.parseArguments()}
		default:
			return left
		}
	}
}

func (p *parser) parseLeftHandSideExpression() ast.Expr {
	e := p.parseAccessors(p.parseMemberExpression(), true)
	p.isLHS = true
	return e
}

func (p *parser) parsePostfixExpression() ast.Expr {
	loc := p.location()
	operand := p.parseLeftHandSideExpression()
	if !p.followsNewline() && (p.kind() == token.Increment || p.kind() == token.Decrement) {
		op := p.next().Kind
		p.isLHS = false
		return &ast.UpdateExpression{Base: ast.Base{Location: loc}, Operator: op, Operand: operand, Postfix: true}
	}
	return operand
}

func (p *parser) parseUnaryExpression() ast.Expr {
	loc := p.location()
	switch op := p.kind(); op {
	case token.Increment, token.Decrement:
		p.next()
		operand := p.parseUnaryExpression()
		p.isLHS = false
		return &ast.UpdateExpression{Base: ast.Base{Location: loc}, Operator: op, Operand: operand}
	case token.Delete, token.Void, token.TypeOf, token.Plus, token.Minus, token.BitwiseNot, token.Not:
		p.next()
		operand := p.parseUnaryExpression()
		p.isLHS = false
		return &ast.UnaryExpression{Base: ast.Base{Location: loc}, Operator: op, Operand: operand}
	}
	return p.parsePostfixExpression()
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) ast.Expr {
	return p.parseBinaryExpressionRest(p.parseUnaryExpression(), minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(lhs ast.Expr, minPrecedence Precedence) ast.Expr {
	for {
		kind := p.kind()

		lbp := kindToPrecedence(kind)

		if lbp <= minPrecedence {
			break
		}

		if kind == token.In && p.noIn {
			break
		}

		loc := p.location()
		p.next()

		rhs := p.parseBinaryExpressionOrHigher(lbp ^ 1)
		lhs = &ast.BinaryExpression{Base: ast.Base{Location: loc}, Operator: kind, Left: lhs, Right: rhs}
		p.isLHS = false
	}
	return lhs
}

func (p *parser) parseConditionalExpression() ast.Expr {
	test := p.parseBinaryExpressionOrHigher(PrecedenceLowest)
	if p.kind() != token.QuestionMark {
		return test
	}
	node := &ast.ConditionalExpression{Base: ast.Base{Location: p.location()}, Test: test}
	p.next()
	node.Consequent = p.parseAssignmentExpression()
	p.expect(token.Colon)
	node.Alternate = p.parseAssignmentExpression()
	p.isLHS = false
	return node
}

// parseAssignmentExpression parses an AssignmentExpression. Only a
// LeftHandSideExpression may be followed by an assignment operator; isLHS
// records whether the conditional expression just parsed was one.
func (p *parser) parseAssignmentExpression() ast.Expr {
	p.isLHS = false
	left := p.parseConditionalExpression()
	if !p.isLHS || !p.kind().IsAssign() {
		return left
	}
	loc := p.location()
	op := p.next().Kind
	right := p.parseAssignmentExpression()
	p.isLHS = false
	return &ast.AssignExpression{Base: ast.Base{Location: loc}, Operator: op, Left: left, Right: right}
}

// parseExpression parses a comma separated Expression. The sequence nests
// to the right.
func (p *parser) parseExpression() ast.Expr {
	left := p.parseAssignmentExpression()
	if p.kind() != token.Comma {
		return left
	}
	loc := p.location()
	p.next()
	right := p.parseExpression()
	p.isLHS = false
	return &ast.SequenceExpression{Base: ast.Base{Location: loc}, Left: left, Right: right}
}
