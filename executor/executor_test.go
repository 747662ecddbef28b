package executor_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/executor"
	"go.creack.net/gocalc/parser"
)

// eval parses and evaluates a single line.
func eval(t *testing.T, input string, env *executor.Env) (float64, error) {
	t.Helper()
	mode := parser.ModeBasic
	if env != nil {
		mode = parser.ModeVariables
	}
	file, err := parser.Parse(input, mode)
	if err != nil {
		return 0, err
	}
	return executor.Evaluate(file, input, env)
}

type testCase struct {
	name  string
	input string
	want  float64
}

func TestEvaluateBasic(t *testing.T) {
	tests := []testCase{
		{name: "add", input: "1+2", want: 3},
		{name: "power then add", input: "2**3+1", want: 9},
		{name: "parenthesized power", input: "2**(3+1)", want: 16},
		{name: "mul then div", input: "2*4/8", want: 1},
		{name: "div then mul", input: "2/4*8", want: 4},
		{name: "sub left assoc", input: "10-4-3", want: 3},
		{name: "precedence", input: "1+2*3", want: 7},
		{name: "parentheses", input: "(1+2)*3", want: 9},
		{name: "nested parentheses", input: "((((7))))", want: 7},
		{name: "unary minus", input: "-5", want: -5},
		{name: "unary plus", input: "+5", want: 5},
		{name: "double negation", input: "--5", want: 5},
		{name: "unary binds tighter than power", input: "-2**2", want: 4},
		{name: "power left assoc", input: "2**3**2", want: 64},
		{name: "negative exponent", input: "2**-1", want: 0.5},
		{name: "fractional exponent", input: "9**0.5", want: 3},
		{name: "decimal", input: "1.5*2", want: 3},
		{name: "comments", input: "{a} 1 {b} + {c} 2 {d}", want: 3},
		{name: "spaces", input: "  6 /  3 ", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateIEEE(t *testing.T) {
	got, err := eval(t, "1/0", nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1), "1/0 = %v", got)

	got, err = eval(t, "-1/0", nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1), "-1/0 = %v", got)

	got, err = eval(t, "0/0", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "0/0 = %v", got)

	got, err = eval(t, "(0-8)**(1/3)", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "(0-8)**(1/3) = %v", got)

	got, err = eval(t, "1/0*0", nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "1/0*0 = %v", got)
}

func TestEvaluateParseError(t *testing.T) {
	_, err := eval(t, "2+", nil)
	require.Error(t, err)
	var perr *parser.ParseTreeError
	assert.True(t, errors.As(err, &perr), "unexpected error type %T", err)
}

func TestEvaluateNoExpression(t *testing.T) {
	_, err := eval(t, "  {empty}  ", nil)
	assert.ErrorIs(t, err, executor.ErrNoExpression)
}

func TestEvaluateNumberOutOfRange(t *testing.T) {
	input := "1" + strings.Repeat("0", 400)
	_, err := eval(t, input, nil)
	require.Error(t, err)

	var nerr *executor.ParseNumberError
	require.True(t, errors.As(err, &nerr), "unexpected error type %T", err)
	assert.Equal(t, input, nerr.Text)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestEvaluateMalformedNumber(t *testing.T) {
	// The grammar never produces this, build the node by hand.
	const source = "1.2.3"
	node := &ast.Number{Pos: ast.Span{Start: 0, End: len(source)}}

	_, err := executor.Evaluate(node, source, nil)
	var nerr *executor.ParseNumberError
	require.True(t, errors.As(err, &nerr), "unexpected error type %T", err)
	assert.Equal(t, "1.2.3", nerr.Text)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestEvaluateVariables(t *testing.T) {
	env := executor.NewEnv()

	got, err := eval(t, "x=2**3+1", env)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	got, err = eval(t, "x*x", env)
	require.NoError(t, err)
	assert.Equal(t, 81.0, got)

	got, err = eval(t, "y = -x / 3", env)
	require.NoError(t, err)
	assert.Equal(t, -3.0, got)

	assert.Equal(t, []string{"x", "y"}, env.Names())
	assert.Equal(t, 2, env.Len())
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	env := executor.NewEnv()

	_, err := eval(t, "z+1", env)
	var uerr *executor.UndefinedVariableError
	require.True(t, errors.As(err, &uerr), "unexpected error type %T", err)
	assert.Equal(t, "z", uerr.Name)

	_, err = eval(t, "z=4", env)
	require.NoError(t, err)

	got, err := eval(t, "z+1", env)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestEvaluateReassignment(t *testing.T) {
	env := executor.NewEnv()
	for _, input := range []string{"a=1", "a=a+1", "a=a*10"} {
		_, err := eval(t, input, env)
		require.NoError(t, err, input)
	}
	v, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, 20.0, v)
	assert.Equal(t, 1, env.Len())
}

func TestEvaluateAssignmentIdempotent(t *testing.T) {
	env := executor.NewEnv()
	for range 2 {
		got, err := eval(t, "x=5", env)
		require.NoError(t, err)
		assert.Equal(t, 5.0, got)

		v, ok := env.Get("x")
		require.True(t, ok)
		assert.Equal(t, 5.0, v)
	}
}

func TestEvaluateFailedAssignmentDoesNotBind(t *testing.T) {
	env := executor.NewEnv()
	_, err := eval(t, "x=undefined+1", env)
	var uerr *executor.UndefinedVariableError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "undefined", uerr.Name)

	_, ok := env.Get("x")
	assert.False(t, ok)
}

func TestEvaluatePure(t *testing.T) {
	const input = "(a - 3) ** 2 / a"
	env := executor.NewEnv()
	env.Set("a", 7)

	file, err := parser.Parse(input, parser.ModeVariables)
	require.NoError(t, err)

	first, err := executor.Evaluate(file, input, env)
	require.NoError(t, err)
	second, err := executor.Evaluate(file, input, env)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.InDelta(t, 16.0/7, first, 1e-12)
}

func TestEvaluateUnaryProperties(t *testing.T) {
	for _, expr := range []string{"3", "2**0.5", "(1-4)*2", "1/3"} {
		t.Run(expr, func(t *testing.T) {
			base, err := eval(t, expr, nil)
			require.NoError(t, err)

			neg, err := eval(t, "-("+expr+")", nil)
			require.NoError(t, err)
			assert.Equal(t, -base, neg)

			pos, err := eval(t, "+("+expr+")", nil)
			require.NoError(t, err)
			assert.Equal(t, base, pos)
		})
	}
}

func TestEvaluateProgrammingErrors(t *testing.T) {
	const source = "1+2"
	one := &ast.Number{Pos: ast.Span{Start: 0, End: 1}}
	two := &ast.Number{Pos: ast.Span{Start: 2, End: 3}}

	assert.Panics(t, func() {
		_, _ = executor.Evaluate(&ast.BinaryExpr{Lhs: one, Op: ast.OpInvalid, Rhs: two}, source, nil)
	}, "unknown binary operator")
	assert.Panics(t, func() {
		_, _ = executor.Evaluate(&ast.UnaryExpr{Op: ast.OpMul, Expr: one}, source, nil)
	}, "unknown unary operator")
	assert.Panics(t, func() {
		_, _ = executor.Evaluate(nil, source, nil)
	}, "nil node")
	assert.Panics(t, func() {
		_, _ = executor.Evaluate(&ast.Identifier{Pos: ast.Span{Start: 0, End: 1}}, "x", nil)
	}, "identifier without env")
	assert.Panics(t, func() {
		_, _ = executor.Evaluate(&ast.Assignment{
			Lhs: &ast.Identifier{Pos: ast.Span{Start: 0, End: 1}},
			Rhs: &ast.Number{Pos: ast.Span{Start: 2, End: 3}},
		}, "x=1", nil)
	}, "assignment without env")
}
