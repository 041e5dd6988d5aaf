// Package scanner implements the lexical grammar of ECMA-262 3rd edition.
//
// The scanner keeps a one-token lookahead. It always scans '/' as a
// division punctuator; a parser that wants a regular expression literal in
// that position calls Regex to rescan it.
package scanner

import (
	"unicode/utf16"

	"golang.org/x/exp/slog"

	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/token"
)

// Token is one lexical token.
type Token struct {
	Kind token.Token
	// Value is the identifier name, the string literal's value, or the
	// regular expression source in the form "/body/flags".
	Value string
	// Number is the value of a numeric literal.
	Number float64
	// Line is the line the token starts on.
	Line int
	// Offset and End delimit the token in code points from the start of
	// the input.
	Offset, End int
}

// Scanner turns a stream of code points into tokens.
type Scanner struct {
	la     *input.Lookahead
	compat Compat
	log    *slog.Logger

	next      Token
	followsNL bool

	line int // line of the next unread character
	pos  int // code points consumed

	filename string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger that receives scanner warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

// New returns a scanner reading from la and primes the first token.
func New(la *input.Lookahead, compat Compat, opts ...Option) (*Scanner, error) {
	s := &Scanner{
		la:       la,
		compat:   compat,
		line:     la.FirstLine(),
		filename: la.Name(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = discardLogger
	}
	for !s.atEOF() && isFormatControl(s.ch()) {
		s.skip()
	}
	if _, err := s.Next(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewString is a convenience constructor scanning a Go string.
func NewString(src string, compat Compat, opts ...Option) (*Scanner, error) {
	return New(input.NewLookahead(input.NewString(src), input.LookaheadMax), compat, opts...)
}

// Next returns the current lookahead token and scans the one after it.
// Line terminators are never returned; FollowsNewline reports whether one
// preceded the new lookahead token. The end of input always counts as
// following a newline.
func (s *Scanner) Next() (prev Token, err error) {
	prev = s.next
	defer s.catch(&err)

	s.followsNL = false
	for {
		kind := s.scan()
		if kind == token.Comment {
			continue
		}
		if kind == token.LineTerminator {
			s.followsNL = true
			continue
		}
		if kind == token.Eof {
			s.followsNL = true
		}
		s.next.Kind = kind
		s.next.End = s.pos
		break
	}
	if err := s.la.Err(); err != nil {
		s.errorf("%v", err)
	}
	return prev, nil
}

// Peek returns the lookahead token.
func (s *Scanner) Peek() Token { return s.next }

// FollowsNewline reports whether a line terminator came before the
// lookahead token.
func (s *Scanner) FollowsNewline() bool { return s.followsNL }

// Line returns the line number of the lookahead token.
func (s *Scanner) Line() int { return s.next.Line }

// Filename returns the name of the input.
func (s *Scanner) Filename() string { return s.filename }

// Compat returns the compatibility switches in effect.
func (s *Scanner) Compat() Compat { return s.compat }

func (s *Scanner) atEOF() bool { return s.la.EOF() }

func (s *Scanner) ch() rune { return s.la.Current() }

// skip consumes the current character and any format control characters
// that follow it.
func (s *Scanner) skip() {
	s.la.Next()
	s.pos++
	for !s.la.EOF() && isFormatControl(s.la.Current()) {
		s.la.Next()
		s.pos++
	}
}

func (s *Scanner) peek(n int) []rune {
	buf := make([]rune, n)
	return buf[:s.la.CopyLookahead(buf)]
}

func (s *Scanner) consume(c rune) {
	if s.atEOF() {
		s.errorf(msgUnexpectedEOF)
	}
	if s.ch() != c {
		s.errorf("expected '%c'", c)
	}
	s.skip()
}

// newline consumes a line terminator. CR LF counts as one line.
func (s *Scanner) newline() {
	cr := s.ch() == '\r'
	s.skip()
	if cr && !s.atEOF() && s.ch() == '\n' {
		s.skip()
	}
	s.line++
}

// scan reads one input element, which may be a line terminator.
func (s *Scanner) scan() token.Token {
	for {
		for !s.atEOF() && isWhiteSpace(s.ch()) {
			s.skip()
		}
		s.next = Token{Line: s.line, Offset: s.pos}
		if s.atEOF() {
			return token.Eof
		}

		c := s.ch()
		switch {
		case isLineTerminator(c):
			s.newline()
			return token.LineTerminator
		case c == '/':
			if kind := s.scanCommentOrDiv(); kind != token.Comment {
				return kind
			}
		case c == '"' || c == '\'':
			return s.scanString()
		case isDecimalDigit(c):
			return s.scanNumber()
		case c == '.':
			if la := s.peek(2); len(la) == 2 && isDecimalDigit(la[1]) {
				return s.scanNumber()
			}
			s.skip()
			return token.Period
		default:
			return s.scanToken()
		}
	}
}

func (s *Scanner) scanToken() token.Token {
	if s.isIdentifierStart() {
		return s.scanIdentifier()
	}
	return s.scanPunctuator()
}

func decodeUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}
