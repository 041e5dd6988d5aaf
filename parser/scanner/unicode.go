package scanner

import (
	"unicode"

	"github.com/t14raptor/es3/input"
)

func isFormatControl(c rune) bool {
	return c != input.BadChar && unicode.Is(unicode.Cf, c)
}

func isWhiteSpace(c rune) bool {
	switch c {
	case 0x09, 0x0b, 0x0c, 0x20, 0xa0:
		return true
	}
	return c > 0x7f && c != input.BadChar && unicode.Is(unicode.Zs, c)
}

func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == 0x2028 || c == 0x2029
}

var identifierStart = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
}

var identifierPart = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
}

func isIdentifierStartChar(c rune) bool {
	switch {
	case c == '$' || c == '_':
		return true
	case c < 0x80:
		return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
	case c == input.BadChar:
		return false
	}
	return unicode.IsOneOf(identifierStart, c)
}

func isIdentifierPartChar(c rune) bool {
	switch {
	case c == '$' || c == '_':
		return true
	case c < 0x80:
		return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
	case c == input.BadChar:
		return false
	}
	return unicode.IsOneOf(identifierPart, c)
}

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c rune) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexValue(c rune) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}
	return 16
}

// appendUTF16 appends c to buf as one or two UTF-16 code units.
func appendUTF16(buf []uint16, c rune) []uint16 {
	if c < 0x10000 {
		return append(buf, uint16(c))
	}
	c -= 0x10000
	return append(buf, uint16(0xd800|(c>>10&0x3ff)), uint16(0xdc00|(c&0x3ff)))
}
