package scanner

import "github.com/t14raptor/es3/token"

func (s *Scanner) scanString() token.Token {
	quote := s.ch()
	s.skip()
	var buf []uint16
	for !s.atEOF() && s.ch() != quote {
		var c rune
		switch {
		case isLineTerminator(s.ch()):
			s.errorf(msgBrokenLiteral)
		case s.isUnicodeEscape():
			c = s.hexEscape('u', 4)
		case s.isHexEscape():
			c = s.hexEscape('x', 2)
		case s.ch() == '\\':
			c = s.scanEscape()
		default:
			c = s.ch()
			s.skip()
		}
		buf = appendUTF16(buf, c)
	}
	s.consume(quote)
	s.next.Value = decodeUTF16(buf)
	return token.String
}

// scanEscape reads the character after a backslash that did not start a
// well-formed \x or \u escape.
func (s *Scanner) scanEscape() rune {
	s.skip()
	if s.atEOF() || isLineTerminator(s.ch()) {
		s.errorf(msgEscapedNewline)
	}
	c := s.ch()
	switch c {
	case 'b':
		c = 0x08
	case 't':
		c = 0x09
	case 'n':
		c = 0x0a
	case 'v':
		c = 0x0b
	case 'f':
		c = 0x0c
	case 'r':
		c = 0x0d
	case '0', '1', '2', '3':
		return s.octalEscape(3)
	case '4', '5', '6', '7':
		return s.octalEscape(2)
	case 'x', 'u':
		if !s.compat.JSCompat() {
			if c == 'x' {
				s.errorf(msgInvalidEscapeX)
			}
			s.errorf(msgInvalidEscapeU)
		}
	}
	s.skip()
	return c
}

// octalEscape reads up to max octal digits.
func (s *Scanner) octalEscape(max int) rune {
	c := s.ch() - '0'
	s.skip()
	for i := 1; i < max && !s.atEOF() && s.ch() >= '0' && s.ch() <= '7'; i++ {
		c = c<<3 | (s.ch() - '0')
		s.skip()
	}
	return c
}
