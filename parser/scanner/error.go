package scanner

import "fmt"

// Error is a lexical error. Line is the line being scanned when the error
// was detected.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// AtEOF reports whether the error was caused by input ending in the middle
// of a token.
func (e *Error) AtEOF() bool {
	switch e.Msg {
	case msgUnexpectedEOF, msgEOFInComment, msgEOFInRegex:
		return true
	}
	return false
}

// bailout carries an *Error up the scanning functions to the exported
// method that recovers it.
type bailout struct{ err *Error }

func (s *Scanner) errorf(format string, args ...any) {
	panic(bailout{&Error{Line: s.line, Msg: fmt.Sprintf(format, args...)}})
}

func (s *Scanner) catch(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

const (
	msgUnexpectedEOF   = "unexpected end of file"
	msgBrokenLiteral   = "line terminator in string literal"
	msgEscapedNewline  = "escaped line terminator in string literal"
	msgInvalidEscapeX  = "invalid \\x escape in string literal"
	msgInvalidEscapeU  = "invalid \\u escape in string literal"
	msgHexDetritus     = "malformed hexadecimal literal"
	msgDecimalDetritus = "malformed decimal literal"
	msgEOFInComment    = "unterminated comment"
	msgBrokenRegex     = "line terminator in regular expression"
	msgEOFInRegex      = "unterminated regular expression"
)
