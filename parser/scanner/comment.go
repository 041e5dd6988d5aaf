package scanner

import "github.com/t14raptor/es3/token"

// scanCommentOrDiv handles a '/' that may start a comment. A block comment
// spanning lines counts as a line terminator.
func (s *Scanner) scanCommentOrDiv() token.Token {
	la := s.peek(2)
	if len(la) == 2 && la[1] == '*' {
		s.skip()
		s.skip()
		starPrev, newline := false, false
		for !s.atEOF() {
			if starPrev && s.ch() == '/' {
				s.skip()
				if newline {
					return token.LineTerminator
				}
				return token.Comment
			}
			starPrev = s.ch() == '*'
			if isLineTerminator(s.ch()) {
				s.newline()
				newline = true
				continue
			}
			s.skip()
		}
		s.errorf(msgEOFInComment)
	}
	if len(la) == 2 && la[1] == '/' {
		s.skipLine()
		return token.Comment
	}

	s.skip()
	if !s.atEOF() && s.ch() == '=' {
		s.skip()
		return token.QuotientAssign
	}
	return token.Slash
}

// skipLine consumes up to, but not including, the next line terminator, so
// that the terminator is counted when it is scanned.
func (s *Scanner) skipLine() {
	for !s.atEOF() && !isLineTerminator(s.ch()) {
		s.skip()
	}
}
