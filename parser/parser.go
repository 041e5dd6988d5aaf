// Package parser builds an ast.Function from ECMAScript 3rd edition source.
//
// The parser is recursive descent with up to two tokens of lookahead. Tokens
// pulled ahead of the scanner wait in a small unget queue.
package parser

import (
	"io"

	"golang.org/x/exp/slog"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser/scanner"
	"github.com/t14raptor/es3/token"
)

// ungetMax bounds the unget queue. lookahead(n) requires n < ungetMax-1.
const ungetMax = 3

// pending is a token read ahead of the scanner's lookahead.
type pending struct {
	tok       scanner.Token
	followsNL bool
}

type parser struct {
	scanner *scanner.Scanner
	compat  scanner.Compat
	log     *slog.Logger

	unget []pending

	noIn      bool // the 'in' operator ends a RelationalExpression
	isLHS     bool // the last expression parsed was a LeftHandSideExpression
	funcDepth int

	scope *scope
}

type options struct {
	compat scanner.Compat
	log    *slog.Logger
}

// Option configures a parse.
type Option func(*options)

// WithCompat sets the compatibility switches used by the scanner and the
// parser.
func WithCompat(c scanner.Compat) Option {
	return func(o *options) { o.compat = c }
}

// WithLogger sets the logger that receives parser and scanner diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func newParser(src input.Source, o options) (*parser, error) {
	la := input.NewLookahead(src, input.LookaheadMax)
	s, err := scanner.New(la, o.compat, scanner.WithLogger(o.log))
	if err != nil {
		return nil, scanError(la.Name(), err)
	}
	p := &parser{
		scanner: s,
		compat:  o.compat,
		log:     o.log,
	}
	p.openScope()
	return p, nil
}

// ParseProgram parses a complete Program. The result has no name and no
// parameters; its body is marked as a program body.
func ParseProgram(src input.Source, opts ...Option) (fn *ast.Function, err error) {
	p, err := newParser(src, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	defer p.catch(&err)
	return p.parseProgram(), nil
}

// ParseFunction builds a function from separate parameter and body sources,
// as the Function constructor does. Either source may be nil, meaning an
// empty parameter list or an empty body.
func ParseFunction(name string, params, body input.Source, opts ...Option) (fn *ast.Function, err error) {
	o := buildOptions(opts)
	var names []string
	if params != nil {
		p, err := newParser(params, o)
		if err != nil {
			return nil, err
		}
		if err := p.run(func() { names = p.parseFormalParameterList(); p.expect(token.Eof) }); err != nil {
			return nil, err
		}
	}
	if body == nil {
		body = input.NewString("")
	}
	p, err := newParser(body, o)
	if err != nil {
		return nil, err
	}
	defer p.catch(&err)
	fn = &ast.Function{Name: name, Params: names}
	fn.Location = p.location()
	p.funcDepth++
	fn.Body = p.parseFunctionBody()
	p.funcDepth--
	p.expect(token.Eof)
	return fn, nil
}

func (p *parser) run(f func()) (err error) {
	defer p.catch(&err)
	f()
	return nil
}

// peek returns the next token without consuming it.
func (p *parser) peek() scanner.Token {
	if len(p.unget) > 0 {
		return p.unget[0].tok
	}
	return p.scanner.Peek()
}

func (p *parser) kind() token.Token { return p.peek().Kind }

// followsNewline reports whether a line terminator preceded the next token.
func (p *parser) followsNewline() bool {
	if len(p.unget) > 0 {
		return p.unget[0].followsNL
	}
	return p.scanner.FollowsNewline()
}

// next consumes the next token and returns it.
func (p *parser) next() scanner.Token {
	if len(p.unget) > 0 {
		tok := p.unget[0].tok
		p.unget = p.unget[1:]
		return tok
	}
	tok, err := p.scanner.Next()
	if err != nil {
		p.fail(scanError(p.scanner.Filename(), err))
	}
	return tok
}

// lookahead returns the kind of the token n places after the next one.
func (p *parser) lookahead(n int) token.Token {
	if n >= ungetMax-1 {
		panic("parser: lookahead too far")
	}
	for len(p.unget) < n {
		p.unget = append(p.unget, pending{p.scanner.Peek(), p.scanner.FollowsNewline()})
		if _, err := p.scanner.Next(); err != nil {
			p.fail(scanError(p.scanner.Filename(), err))
		}
	}
	if n < len(p.unget) {
		return p.unget[n].tok.Kind
	}
	return p.scanner.Peek().Kind
}

// rescanRegex turns a pending '/' or '/=' into a regular expression literal.
func (p *parser) rescanRegex() {
	if len(p.unget) > 0 {
		panic("parser: regex rescan with tokens queued")
	}
	if err := p.scanner.Regex(); err != nil {
		p.fail(scanError(p.scanner.Filename(), err))
	}
}

// location is the position of the next token.
func (p *parser) location() ast.Location {
	return ast.Location{Filename: p.scanner.Filename(), Line: p.peek().Line}
}

func (p *parser) expect(kind token.Token) scanner.Token {
	return p.expectX(kind, kind.Name())
}

// expectX consumes a token of the given kind, or fails with a message
// naming what was wanted.
func (p *parser) expectX(kind token.Token, want string) scanner.Token {
	if p.kind() != kind {
		p.expected(want)
	}
	return p.next()
}

// nextIsSemicolon reports whether a semicolon is present or could be
// inserted before the next token.
func (p *parser) nextIsSemicolon() bool {
	k := p.kind()
	return k == token.Semicolon || k == token.RightBrace || p.followsNewline()
}

// semicolon consumes an explicit or inserted semicolon.
func (p *parser) semicolon() {
	switch {
	case p.kind() == token.Semicolon:
		p.next()
	case p.kind() == token.RightBrace || p.followsNewline():
	default:
		p.expectX(token.Semicolon, "';', '}' or newline")
	}
}
