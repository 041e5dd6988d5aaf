package token

import (
	"strconv"
)

// Token is the set of lexical tokens in ECMAScript (ECMA-262 3rd edition).
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Name returns the token as it is described in syntax error messages,
// e.g. "an identifier" or "'>>>='".
func (t Token) Name() string {
	switch t {
	case Eof:
		return "end of file"
	case Comment:
		return "a comment"
	case LineTerminator:
		return "a line break"
	case Number:
		return "a number"
	case String:
		return "a string"
	case Identifier:
		return "an identifier"
	case RegExp:
		return "a regular expression"
	case Reserved:
		return "a reserved word"
	case Undetermined, Illegal:
		return "<bad token>"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return "'" + token2string[t] + "'"
	}
	return "<bad token>"
}

// Precedence returns the binding power of a binary operator, or 0 if the
// token is not one. The in operator is excluded when in is false.
func (t Token) Precedence(in bool) int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Or:
		return 3
	case ExclusiveOr:
		return 4
	case And:
		return 5
	case Equal, NotEqual, StrictEqual, StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 7
	case In:
		if in {
			return 7
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 8
	case Plus, Minus:
		return 9
	case Multiply, Slash, Remainder:
		return 10
	}
	return 0
}

// IsAssign reports whether t is one of the assignment operators.
func (t Token) IsAssign() bool {
	return t == Assign || t >= AddAssign && t <= UnsignedShiftRightAssign
}

// BinaryOf maps a compound assignment operator onto its binary operator,
// e.g. AddAssign to Plus.
func (t Token) BinaryOf() Token {
	switch t {
	case AddAssign:
		return Plus
	case SubtractAssign:
		return Minus
	case MultiplyAssign:
		return Multiply
	case QuotientAssign:
		return Slash
	case RemainderAssign:
		return Remainder
	case AndAssign:
		return And
	case OrAssign:
		return Or
	case ExclusiveOrAssign:
		return ExclusiveOr
	case ShiftLeftAssign:
		return ShiftLeft
	case ShiftRightAssign:
		return ShiftRight
	case UnsignedShiftRightAssign:
		return UnsignedShiftRight
	}
	return Undetermined
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t > firstKeyword && t < lastKeyword
}

type keyword struct {
	token         Token
	futureKeyword bool
}

// LiteralKeyword returns the keyword token for literal. Future reserved
// words yield Reserved. The second result is false if literal is not a
// keyword at all.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Reserved, true
		}
		return k.token, true
	}
	return 0, false
}

// Punctuators returns the punctuator tokens whose spelling is exactly n
// characters long.
func Punctuators(n int) []Token {
	return punctuatorsByLen[n]
}

var punctuatorsByLen [5][]Token

func init() {
	for t := Plus; t <= QuestionMark; t++ {
		if n := len(token2string[t]); n < len(punctuatorsByLen) {
			punctuatorsByLen[n] = append(punctuatorsByLen[n], t)
		}
	}
	punctuatorsByLen[4] = append(punctuatorsByLen[4], SGMLComment)
}
