package scanner

import (
	"math"
	"strconv"
	"strings"

	"github.com/t14raptor/es3/token"
)

func (s *Scanner) scanNumber() token.Token {
	var digits strings.Builder
	seenDigit := false

	if s.ch() == '0' {
		s.skip()
		if !s.atEOF() && (s.ch() == 'x' || s.ch() == 'X') {
			s.skip()
			if s.atEOF() || !isHexDigit(s.ch()) {
				s.errorf(msgHexDetritus)
			}
			for !s.atEOF() && isHexDigit(s.ch()) {
				digits.WriteRune(s.ch())
				s.skip()
			}
			if s.isIdentifierStart() {
				s.errorf(msgHexDetritus)
			}
			s.next.Number = parseHex(digits.String())
			return token.Number
		}
		digits.WriteByte('0')
		seenDigit = true
	}

	for !s.atEOF() && isDecimalDigit(s.ch()) {
		digits.WriteRune(s.ch())
		seenDigit = true
		s.skip()
	}

	if s.compat.JSCompat() && seenDigit && digits.Len() > 1 && digits.String()[0] == '0' &&
		(s.atEOF() || s.ch() != '.' && s.ch() != 'e' && s.ch() != 'E') {
		if n, ok := parseOctal(digits.String()[1:]); ok && !s.isIdentifierStart() {
			s.next.Number = n
			return token.Number
		}
	}

	if !s.atEOF() && s.ch() == '.' {
		digits.WriteByte('.')
		s.skip()
		for !s.atEOF() && isDecimalDigit(s.ch()) {
			digits.WriteRune(s.ch())
			seenDigit = true
			s.skip()
		}
	}
	if !seenDigit {
		return token.Period
	}

	if !s.atEOF() && (s.ch() == 'e' || s.ch() == 'E') {
		digits.WriteRune(s.ch())
		s.skip()
		if !s.atEOF() && (s.ch() == '-' || s.ch() == '+') {
			digits.WriteRune(s.ch())
			s.skip()
		}
		seenDigit = false
		for !s.atEOF() && isDecimalDigit(s.ch()) {
			digits.WriteRune(s.ch())
			seenDigit = true
			s.skip()
		}
		if !seenDigit {
			s.errorf(msgDecimalDetritus)
		}
	}

	n, ok := parseDecimal(digits.String())
	if !ok {
		s.errorf(msgDecimalDetritus)
	}
	s.next.Number = n
	return token.Number
}

func parseHex(digits string) float64 {
	n, err := strconv.ParseFloat("0x"+digits+"p0", 64)
	if err != nil {
		// only a range error is possible here
		return math.Inf(1)
	}
	return n
}

func parseOctal(digits string) (float64, bool) {
	var n float64
	for _, c := range digits {
		if c > '7' {
			return 0, false
		}
		n = n*8 + float64(c-'0')
	}
	return n, true
}

// parseDecimal converts a well-formed decimal literal. Literals too large
// for a float64 become Infinity.
func parseDecimal(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return n, true
		}
		return 0, false
	}
	return n, true
}

func isStrWhiteSpace(c rune) bool {
	return isWhiteSpace(c) || isLineTerminator(c)
}

// LexNumber converts a string to a number following the StringNumericLiteral
// grammar of ECMA-262 9.3.1. The second result is false if s is not a
// numeric string, in which case the caller's result is NaN.
func LexNumber(str string, compat Compat) (float64, bool) {
	s := []rune(str)
	pos := 0
	atEOF := func() bool { return pos >= len(s) }

	for !atEOF() && isStrWhiteSpace(s[pos]) {
		pos++
	}
	if atEOF() {
		return 0, true
	}

	sign := 0
	switch s[pos] {
	case '-':
		sign = -1
		pos++
	case '+':
		sign = 1
		pos++
	}
	hexOK := sign == 0 || compat.JSCompat()

	if atEOF() {
		return 0, false
	}

	var n float64
	switch {
	case s[pos] == 'I':
		if !strings.HasPrefix(string(s[pos:]), "Infinity") {
			return 0, false
		}
		pos += len("Infinity")
		n = math.Inf(1)

	case hexOK && pos+1 < len(s) && s[pos] == '0' && (s[pos+1] == 'x' || s[pos+1] == 'X'):
		pos += 2
		start := pos
		for !atEOF() && isHexDigit(s[pos]) {
			pos++
		}
		if pos == start {
			return 0, false
		}
		n = parseHex(string(s[start:pos]))

	default:
		start := pos
		seenDigit := false
		for !atEOF() && isDecimalDigit(s[pos]) {
			seenDigit = true
			pos++
		}
		if !atEOF() && s[pos] == '.' {
			pos++
			for !atEOF() && isDecimalDigit(s[pos]) {
				seenDigit = true
				pos++
			}
		}
		if !seenDigit {
			return 0, false
		}
		if !atEOF() && (s[pos] == 'e' || s[pos] == 'E') {
			pos++
			if !atEOF() && (s[pos] == '-' || s[pos] == '+') {
				pos++
			}
			seenDigit = false
			for !atEOF() && isDecimalDigit(s[pos]) {
				seenDigit = true
				pos++
			}
			if !seenDigit {
				return 0, false
			}
		}
		var ok bool
		if n, ok = parseDecimal(string(s[start:pos])); !ok {
			return 0, false
		}
	}

	for !atEOF() && isStrWhiteSpace(s[pos]) {
		pos++
	}
	if !atEOF() {
		return 0, false
	}
	if sign < 0 {
		return math.Copysign(n, -1), true
	}
	return n, true
}

// FormatNumber converts a number to its string form following the rules
// of ECMA-262 9.8.1: the shortest digit string that round trips, written
// in fixed notation for exponents from -6 to 20 and in exponential
// notation otherwise.
func FormatNumber(m float64) string {
	switch {
	case math.IsNaN(m):
		return "NaN"
	case m == 0:
		return "0"
	case m < 0:
		return "-" + FormatNumber(-m)
	case math.IsInf(m, 1):
		return "Infinity"
	}

	// e has the form d.ddde±x
	e := strconv.FormatFloat(m, 'e', -1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	x, _ := strconv.Atoi(exp)
	k, n := len(digits), x+1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}
	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	exponent := strconv.Itoa(abs(n - 1))
	if k == 1 {
		return digits + "e" + sign + exponent
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + exponent
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
