// Package parser turns a calculator line into a syntax tree.
package parser

import (
	"fmt"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// Mode selects the grammar variant.
type Mode int

const (
	// ModeBasic accepts numbers, operators and parentheses only.
	ModeBasic Mode = iota
	// ModeVariables also accepts identifiers and top-level assignments.
	ModeVariables
)

func (m Mode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeVariables:
		return "variables"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseTreeError is returned when a line is not a valid statement.
type ParseTreeError struct {
	Pos int // Byte offset in the line.
	Msg string
}

func (e *ParseTreeError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

type parser struct {
	lex   *lexer.Lexer
	input string
	mode  Mode

	curToken lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(input string, mode Mode) *parser {
	p := &parser{
		lex:   lexer.New(input),
		input: input,
		mode:  mode,

		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	return p
}

// Parse parses a single line. A line holding only blanks and comments yields
// a SourceFile without expression. Syntax errors are *ParseTreeError.
func Parse(input string, mode Mode) (file *ast.SourceFile, err error) {
	p := newParser(input, mode)

	// Syntax errors unwind the recursive descent as panics, recover them here.
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*ParseTreeError)
			if !ok {
				panic(r)
			}
			file, err = nil, perr
		}
	}()

	p.nextToken()
	return parseSourceFile(p), nil
}

// nextToken advances to the next significant token, skipping blanks and
// comments.
func (p *parser) nextToken() lexer.Token {
	for {
		p.curToken = p.lex.NextToken()
		switch p.curToken.Type {
		case lexer.TokWhitespace, lexer.TokComment:
			continue
		case lexer.TokError:
			p.errorf(p.curToken, "%s", p.curToken.Value)
		}
		return p.curToken
	}
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	p.unexpected()
	return p.curToken
}

func (p *parser) unexpected() {
	if p.curToken.Type == lexer.TokEOF {
		p.errorf(p.curToken, "unexpected end of input")
	}
	p.errorf(p.curToken, "unexpected %s %q", describe(p.curToken.Type), p.curToken.Value)
}

func (p *parser) errorf(tok lexer.Token, format string, args ...any) {
	panic(&ParseTreeError{Pos: tok.Start(), Msg: fmt.Sprintf(format, args...)})
}

func describe(tt lexer.TokenType) string {
	switch tt {
	case lexer.TokNumber:
		return "number"
	case lexer.TokIdentifier:
		return "identifier"
	}
	return "token"
}
