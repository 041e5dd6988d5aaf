package scanner

import (
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/token"
)

// scanPunctuator matches the longest punctuator at the current position.
func (s *Scanner) scanPunctuator() token.Token {
	op := s.peek(4)
	for n := len(op); n > 0; n-- {
		for _, t := range token.Punctuators(n) {
			if string(op[:n]) != t.String() {
				continue
			}
			if t == token.SGMLComment {
				if !s.compat.SGMLComments {
					continue
				}
				s.skipLine()
				return token.Comment
			}
			for i := 0; i < n; i++ {
				s.skip()
			}
			return t
		}
	}

	switch c := op[0]; {
	case c == input.BadChar:
		s.errorf("malformed unicode input")
	case c >= ' ' && c <= '~':
		s.errorf("unexpected character '%c'", c)
	default:
		s.errorf("unexpected character '\\u%04x'", c)
	}
	return token.Illegal
}
