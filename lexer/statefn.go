package lexer

import "strings"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokDash,
	'/': TokSlash,
	'=': TokEquals,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case l.atEOF:
		return l.emit(TokEOF)
	case strings.ContainsRune(whitespaceChars, r), r == '\\':
		return lexWhitespace
	case r == '{':
		return lexComment
	case r == '*':
		l.next()
		if l.peek() == '*' {
			l.next()
			return l.emit(TokDoubleStar)
		}
		return l.emit(TokStar)
	case r >= '0' && r <= '9':
		return lexNumber
	case strings.ContainsRune(identStartChars, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character: %q", r)
	}
}

// lexWhitespace consumes blanks and backslash-newline continuations.
func lexWhitespace(l *Lexer) stateFn {
	for {
		l.acceptRun(whitespaceChars)
		if l.peek() != '\\' {
			break
		}
		l.next()
		l.accept("\r")
		if !l.accept("\n") {
			return l.errorf("unexpected character: %q", '\\')
		}
	}
	return l.emit(TokWhitespace)
}

// lexComment consumes a '{ ... }' block comment. Comments do not nest.
func lexComment(l *Lexer) stateFn {
	l.accept("{")
	for {
		r := l.next()
		switch {
		case l.atEOF:
			return l.errorf("unclosed comment")
		case r == '}':
			return l.emit(TokComment)
		}
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.peek() == '.' {
		l.next()
		l.acceptRun(digits)
	}
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(identChars)
	return l.emit(TokIdentifier)
}
