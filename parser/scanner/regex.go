package scanner

import (
	"strings"

	"github.com/t14raptor/es3/token"
)

// Regex rescans a lookahead '/' or '/=' token as a regular expression
// literal. The token's Value becomes "/body/flags". It does nothing if the
// lookahead is not a division punctuator.
func (s *Scanner) Regex() (err error) {
	if s.next.Kind != token.Slash && s.next.Kind != token.QuotientAssign {
		return nil
	}
	defer s.catch(&err)

	var b strings.Builder
	b.WriteByte('/')
	if s.next.Kind == token.QuotientAssign {
		b.WriteByte('=')
	}
	inClass := false
	for !s.atEOF() {
		c := s.ch()
		if c == '/' && (!inClass || !s.compat.JSCompat()) {
			break
		}
		if c == '\\' {
			b.WriteByte('\\')
			s.skip()
			if s.atEOF() {
				break
			}
		} else if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		}
		if isLineTerminator(s.ch()) {
			s.errorf(msgBrokenRegex)
		}
		b.WriteRune(s.ch())
		s.skip()
	}
	if s.atEOF() {
		s.errorf(msgEOFInRegex)
	}
	s.consume('/')
	b.WriteByte('/')
	for s.isIdentifierPart() {
		b.WriteRune(s.ch())
		s.skip()
	}

	s.next.Kind = token.RegExp
	s.next.Value = b.String()
	s.next.End = s.pos
	return nil
}
