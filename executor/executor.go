// Package executor evaluates calculator syntax trees.
package executor

import (
	"fmt"
	"math"
	"strconv"

	"go.creack.net/gocalc/ast"
)

// Evaluate reduces node to a number. source is the line node was parsed from.
// env holds the variables; it is nil for the basic grammar, which has neither
// identifiers nor assignments.
//
// Floating point domain issues are not errors: 1/0 is +Inf, 0/0 is NaN.
// Node kinds or operators the grammar cannot produce panic.
func Evaluate(node ast.Node, source string, env *Env) (float64, error) {
	switch n := node.(type) {
	case *ast.SourceFile:
		if n.Expr == nil {
			return 0, ErrNoExpression
		}
		return Evaluate(n.Expr, source, env)
	case *ast.UnaryExpr:
		return evaluateUnaryExpr(n, source, env)
	case *ast.ParenExpr:
		return Evaluate(n.Expr, source, env)
	case *ast.BinaryExpr:
		return evaluateBinaryExpr(n, source, env)
	case *ast.Assignment:
		return evaluateAssignment(n, source, env)
	case *ast.Number:
		return evaluateNumber(n, source)
	case *ast.Identifier:
		return evaluateIdentifier(n, source, env)
	default:
		panic(fmt.Errorf("unsupported node type %T", n))
	}
}

func evaluateUnaryExpr(n *ast.UnaryExpr, source string, env *Env) (float64, error) {
	expr, err := Evaluate(n.Expr, source, env)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case ast.OpAdd:
		return expr, nil
	case ast.OpSub:
		return -expr, nil
	default:
		panic(fmt.Errorf("unsupported unary operator %q", n.Op))
	}
}

func evaluateBinaryExpr(n *ast.BinaryExpr, source string, env *Env) (float64, error) {
	// Left first.
	lhs, err := Evaluate(n.Lhs, source, env)
	if err != nil {
		return 0, err
	}
	rhs, err := Evaluate(n.Rhs, source, env)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case ast.OpAdd:
		return lhs + rhs, nil
	case ast.OpSub:
		return lhs - rhs, nil
	case ast.OpMul:
		return lhs * rhs, nil
	case ast.OpDiv:
		return lhs / rhs, nil
	case ast.OpPow:
		return math.Pow(lhs, rhs), nil
	default:
		panic(fmt.Errorf("unsupported binary operator %q", n.Op))
	}
}

func evaluateAssignment(n *ast.Assignment, source string, env *Env) (float64, error) {
	if env == nil {
		panic(fmt.Errorf("assignment %q without environment", n.Span().Text(source)))
	}
	name := n.Lhs.Span().Text(source)
	value, err := Evaluate(n.Rhs, source, env)
	if err != nil {
		return 0, err
	}
	env.Set(name, value)
	return value, nil
}

func evaluateNumber(n *ast.Number, source string) (float64, error) {
	text := n.Span().Text(source)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseNumberError{Text: text, Err: err}
	}
	return value, nil
}

func evaluateIdentifier(n *ast.Identifier, source string, env *Env) (float64, error) {
	name := n.Span().Text(source)
	if env == nil {
		panic(fmt.Errorf("identifier %q without environment", name))
	}
	value, ok := env.Get(name)
	if !ok {
		return 0, &UndefinedVariableError{Name: name}
	}
	return value, nil
}
