package ast

import (
	"fmt"

	"go.creack.net/gocalc/lexer"
)

// Operator is an arithmetic operator token.
type Operator int

const (
	OpInvalid Operator = iota
	OpAdd              // '+'.
	OpSub              // '-'.
	OpMul              // '*'.
	OpDiv              // '/'.
	OpPow              // '**'.
)

var operatorStrings = [...]string{
	OpInvalid: "INVALID",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpPow:     "**",
}

func (o Operator) String() string {
	if o < 0 || int(o) >= len(operatorStrings) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorStrings[o]
}

// OperatorFromToken maps an operator token type to its Operator, or OpInvalid.
func OperatorFromToken(tt lexer.TokenType) Operator {
	switch tt {
	case lexer.TokPlus:
		return OpAdd
	case lexer.TokDash:
		return OpSub
	case lexer.TokStar:
		return OpMul
	case lexer.TokSlash:
		return OpDiv
	case lexer.TokDoubleStar:
		return OpPow
	}
	return OpInvalid
}
