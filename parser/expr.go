package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

func parseExpr(p *parser, bp bindingPower) ast.Node {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		p.unexpected()
	}
	left := nudFn(p)

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn, exists := p.ledLookupTable[p.curToken.Type]
		if !exists {
			p.unexpected()
		}
		left = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
	}

	return left
}

func parsePrimaryExpr(p *parser) ast.Node {
	tok := p.curToken
	span := ast.Span{Start: tok.Start(), End: tok.End()}
	switch tok.Type {
	case lexer.TokNumber:
		p.nextToken()
		return &ast.Number{Pos: span}
	case lexer.TokIdentifier:
		p.nextToken()
		return &ast.Identifier{Pos: span}
	default:
		p.unexpected()
		return nil
	}
}

func parseGroupingExpr(p *parser) ast.Node {
	open := p.expect(lexer.TokParenLeft)
	p.nextToken()
	// Assignments are statements, keep them out of parentheses.
	expr := parseExpr(p, bpAssignment)
	closing := p.expect(lexer.TokParenRight)
	p.nextToken()

	return &ast.ParenExpr{
		Expr: expr,
		Pos:  ast.Span{Start: open.Start(), End: closing.End()},
	}
}

func parsePrefixExpr(p *parser) ast.Node {
	operator := p.curToken
	p.nextToken()
	expr := parseExpr(p, bpUnary)

	return &ast.UnaryExpr{
		Op:   ast.OperatorFromToken(operator.Type),
		Expr: expr,
		Pos:  ast.Span{Start: operator.Start(), End: expr.Span().End},
	}
}

func parseBinaryExpr(p *parser, left ast.Node, bp bindingPower) ast.Node {
	operator := p.curToken
	p.nextToken()
	right := parseExpr(p, bp)

	return &ast.BinaryExpr{
		Lhs: left,
		Op:  ast.OperatorFromToken(operator.Type),
		Rhs: right,
		Pos: ast.Span{Start: left.Span().Start, End: right.Span().End},
	}
}

func parseAssignmentExpr(p *parser, left ast.Node, bp bindingPower) ast.Node {
	operator := p.curToken
	assignee, ok := left.(*ast.Identifier)
	if !ok {
		p.errorf(operator, "cannot assign to %s", left.Kind())
	}
	p.nextToken()
	right := parseExpr(p, bp)

	return &ast.Assignment{
		Lhs: assignee,
		Rhs: right,
		Pos: ast.Span{Start: assignee.Pos.Start, End: right.Span().End},
	}
}
