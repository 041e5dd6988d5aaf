package generator

import (
	"strings"

	"github.com/t14raptor/es3/ast"
)

type state struct {
	out    *strings.Builder
	node   ast.Node
	parent *state
	indent int
	// noIn is set inside a for statement header, where a bare 'in'
	// operator would be read as the for-in keyword.
	noIn bool
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		node:   node,
		parent: s,
		indent: s.indent,
		noIn:   s.noIn,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}

// expr prints e, parenthesised if it binds more loosely than min.
func (s *state) expr(e ast.Expr, min int) {
	c := s.wrap(e)
	if precedence(e) < min {
		c.noIn = false
		s.out.WriteString("(")
		gen(c)
		s.out.WriteString(")")
		return
	}
	gen(c)
}

func (s *state) exprs(list []ast.Expr) {
	for i, e := range list {
		if i > 0 {
			s.out.WriteString(", ")
		}
		s.expr(e, precAssign)
	}
}

// stmt prints a statement nested in another one. Anything but a block is
// printed inside braces so that a dangling else cannot change owner.
func (s *state) stmt(st ast.Stmt) {
	switch st.(type) {
	case *ast.BlockStatement, *ast.EmptyStatement:
		gen(s.wrap(st))
	default:
		gen(s.wrap(&ast.BlockStatement{List: []ast.Stmt{st}}))
	}
}
