package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Identifiers + literals.
	TokIdentifier
	TokNumber

	// Operators.
	TokPlus       // '+'.
	TokDash       // '-'.
	TokStar       // '*'.
	TokSlash      // '/'.
	TokDoubleStar // '**'.
	TokEquals     // '='.

	// Delimiters.
	TokWhitespace
	TokComment
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokIdentifier: "IDENTIFIER",
	TokNumber:     "NUMBER",

	TokPlus:       "+",
	TokDash:       "-",
	TokStar:       "*",
	TokSlash:      "/",
	TokDoubleStar: "**",
	TokEquals:     "=",

	TokWhitespace: "WHITESPACE",
	TokComment:    "COMMENT",
	TokParenLeft:  "(",
	TokParenRight: ")",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of a calculator line.
type Token struct {
	Type  TokenType
	Value string

	start int // Byte offset of the first character.
	pos   int // Byte offset right after the last character.
}

// Start returns the byte offset of the token in the input.
func (t Token) Start() int { return t.start }

// End returns the byte offset right after the token in the input.
func (t Token) End() int { return t.pos }

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return t.errorString()
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d:%d]: %.16q", t.Type, t.start, t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d:%d]: %q", t.Type, t.start, t.pos, t.Value)
}

func (t Token) errorString() string {
	return fmt.Sprintf("ERROR [%d]: %s", t.start, t.Value)
}
