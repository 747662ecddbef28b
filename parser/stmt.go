package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// parseSourceFile parses the whole line: at most one statement, then EOF.
func parseSourceFile(p *parser) *ast.SourceFile {
	file := &ast.SourceFile{Pos: ast.Span{Start: 0, End: len(p.input)}}
	if p.curToken.Type == lexer.TokEOF {
		return file
	}

	file.Expr = parseExpr(p, bpDefault)
	p.expect(lexer.TokEOF)

	return file
}
