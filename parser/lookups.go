package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

type bindingPower int

// Unary operators bind tighter than '**', and every binary operator is left
// associative, '**' included.
const (
	bpDefault bindingPower = iota
	bpAssignment
	bpAdditive
	bpMultiplicative
	bpPower
	bpUnary
)

type nudHandler func(*parser) ast.Node
type ledHandler func(*parser, ast.Node, bindingPower) ast.Node

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Additive, multiplicative & power.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokDash, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokStar, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokDoubleStar, bpPower, parseBinaryExpr)

	// Literals, grouping & prefix.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokPlus, parsePrefixExpr)
	p.nud(lexer.TokDash, parsePrefixExpr)

	if p.mode != ModeVariables {
		return
	}

	// Variables.
	p.led(lexer.TokEquals, bpAssignment, parseAssignmentExpr)
	p.nud(lexer.TokIdentifier, parsePrimaryExpr)
}
