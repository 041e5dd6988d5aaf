package parser

import (
	"errors"
	"fmt"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/parser/scanner"
	"github.com/t14raptor/es3/token"
)

// SyntaxError is a parse error tagged with the place it was detected.
type SyntaxError struct {
	Filename string
	Line     int
	Msg      string
	// AtEOF is set when the input ended before the construct being parsed
	// was complete. Interactive hosts use it to ask for more input.
	AtEOF bool
	// Err is the scanner error behind a lexical failure, or nil.
	Err error
}

func (e *SyntaxError) Error() string {
	return ast.Location{Filename: e.Filename, Line: e.Line}.String() + ": " + e.Msg
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// bailout unwinds the recursive descent to the API entry point.
type bailout struct{ err *SyntaxError }

func scanError(filename string, err error) *SyntaxError {
	var se *scanner.Error
	if !errors.As(err, &se) {
		return &SyntaxError{Filename: filename, Msg: err.Error(), Err: err}
	}
	return &SyntaxError{
		Filename: filename,
		Line:     se.Line,
		Msg:      se.Error(),
		AtEOF:    se.AtEOF(),
		Err:      err,
	}
}

func (p *parser) fail(err *SyntaxError) {
	panic(bailout{err})
}

// errorf fails at the next token.
func (p *parser) errorf(format string, args ...any) {
	loc := p.location()
	p.fail(&SyntaxError{
		Filename: loc.Filename,
		Line:     loc.Line,
		Msg:      fmt.Sprintf(format, args...),
		AtEOF:    p.kind() == token.Eof,
	})
}

// errorNear fails with a message that names the next token.
func (p *parser) errorNear(msg string) {
	p.errorf("%s, near %s", msg, p.kind().Name())
}

func (p *parser) expected(want string) {
	p.errorf("expected %s but got %s", want, p.kind().Name())
}

func (p *parser) catch(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}
