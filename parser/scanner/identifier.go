package scanner

import (
	"io"

	"golang.org/x/exp/slog"

	"github.com/t14raptor/es3/token"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (s *Scanner) isUnicodeEscape() bool {
	la := s.peek(6)
	return len(la) == 6 && la[0] == '\\' && la[1] == 'u' &&
		isHexDigit(la[2]) && isHexDigit(la[3]) && isHexDigit(la[4]) && isHexDigit(la[5])
}

func (s *Scanner) isHexEscape() bool {
	la := s.peek(4)
	return len(la) == 4 && la[0] == '\\' && la[1] == 'x' && isHexDigit(la[2]) && isHexDigit(la[3])
}

func (s *Scanner) isIdentifierStart() bool {
	if s.atEOF() {
		return false
	}
	return s.isUnicodeEscape() || isIdentifierStartChar(s.ch())
}

func (s *Scanner) isIdentifierPart() bool {
	if s.atEOF() {
		return false
	}
	return s.isUnicodeEscape() || isIdentifierPartChar(s.ch())
}

// hexEscape reads \xHH or \uHHHH, with n hex digits after the letter.
func (s *Scanner) hexEscape(letter rune, n int) rune {
	s.consume('\\')
	s.consume(letter)
	var r rune
	for i := 0; i < n; i++ {
		if s.atEOF() {
			s.errorf(msgUnexpectedEOF)
		}
		r = r<<4 | rune(hexValue(s.ch()))
		s.skip()
	}
	return r
}

func (s *Scanner) scanIdentifier() token.Token {
	var buf []uint16
	escaped := false
	for {
		var c rune
		if s.isUnicodeEscape() {
			c = s.hexEscape('u', 4)
			escaped = true
		} else {
			c = s.ch()
			s.skip()
		}
		buf = appendUTF16(buf, c)
		if !s.isIdentifierPart() {
			break
		}
	}
	name := decodeUTF16(buf)
	s.next.Value = name
	if escaped {
		return token.Identifier
	}
	if kind, ok := token.LiteralKeyword(name); ok {
		if kind == token.Reserved && s.compat.AtLeast(JS11) {
			s.log.Debug("reserved word treated as identifier",
				slog.String("file", s.filename), slog.Int("line", s.line), slog.String("word", name))
			return token.Identifier
		}
		return kind
	}
	return token.Identifier
}
