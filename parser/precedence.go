package parser

import "github.com/t14raptor/es3/token"

// Precedence represents operator binding power for Pratt parsing.
//
// Even values are left-associative and odd values right-associative. The
// binary loop stops when lbp <= min and recurses with lbp ^ 1 as the new
// minimum, so an operator of the same level ends the right operand of a
// left-associative operator and continues that of a right-associative one.
// Every ES3 binary operator is left-associative.
type Precedence uint8

const (
	PrecedenceLowest     Precedence = 0
	PrecedenceLogicalOr  Precedence = 2  // ||
	PrecedenceLogicalAnd Precedence = 4  // &&
	PrecedenceBitwiseOr  Precedence = 6  // |
	PrecedenceBitwiseXor Precedence = 8  // ^
	PrecedenceBitwiseAnd Precedence = 10 // &
	PrecedenceEquals     Precedence = 12 // == != === !==
	PrecedenceCompare    Precedence = 14 // < > <= >= instanceof in
	PrecedenceShift      Precedence = 16 // << >> >>>
	PrecedenceAdd        Precedence = 18 // + -
	PrecedenceMultiply   Precedence = 20 // * / %
)

var tokenPrecedence [256]Precedence

func init() {
	for t := token.Token(0); int(t) < len(tokenPrecedence); t++ {
		if prec := t.Precedence(true); prec > 0 {
			tokenPrecedence[t] = PrecedenceLogicalOr + Precedence(2*(prec-1))
		}
	}
}

// kindToPrecedence returns the left binding power of a binary operator, or
// 0 if kind is not one.
func kindToPrecedence(kind token.Token) Precedence {
	if int(kind) >= len(tokenPrecedence) || kind < 0 {
		return 0
	}
	return tokenPrecedence[kind]
}
