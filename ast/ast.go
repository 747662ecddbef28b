package ast

import "fmt"

// Structure following the calculator grammar:
//
//	source_file            : statement?
//	statement              : assignment | expression
//	assignment             : identifier '=' expression
//	expression             : identifier | number | unary_expression
//	                       | binary_expression | parentheses_expression
//	parentheses_expression : '(' expression ')'
//	unary_expression       : ('+' | '-') expression
//	binary_expression      : expression ('+' | '-' | '*' | '/' | '**') expression

// Kind is the tag of a syntax node.
type Kind int

const (
	KindSourceFile Kind = iota
	KindNumber
	KindIdentifier
	KindUnaryExpression
	KindBinaryExpression
	KindParenthesesExpression
	KindAssignment
)

var kindStrings = [...]string{
	KindSourceFile:            "source_file",
	KindNumber:                "number",
	KindIdentifier:            "identifier",
	KindUnaryExpression:       "unary_expression",
	KindBinaryExpression:      "binary_expression",
	KindParenthesesExpression: "parentheses_expression",
	KindAssignment:            "assignment",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindStrings[k]
}

// Span is a half-open byte range [Start, End) in the source line.
type Span struct {
	Start int
	End   int
}

// Text returns the source text covered by the span.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

// Node is one element of a parsed line. The set of implementations is closed.
type Node interface {
	Kind() Kind
	Span() Span
	Dump() string
	node()
}

// SourceFile is the root of a parsed line. Expr is nil for a blank line.
type SourceFile struct {
	Expr Node // Assignment or expression.
	Pos  Span
}

func (*SourceFile) node()        {}
func (*SourceFile) Kind() Kind   { return KindSourceFile }
func (n *SourceFile) Span() Span { return n.Pos }

func (n *SourceFile) Dump() string {
	if n.Expr == nil {
		return "(source_file)"
	}
	return fmt.Sprintf("(source_file %s)", n.Expr.Dump())
}

// Number is a numeric literal. Its value is its source text.
type Number struct {
	Pos Span
}

func (*Number) node()        {}
func (*Number) Kind() Kind   { return KindNumber }
func (n *Number) Span() Span { return n.Pos }
func (*Number) Dump() string { return "(number)" }

// Identifier is a variable name. Its name is its source text.
type Identifier struct {
	Pos Span
}

func (*Identifier) node()        {}
func (*Identifier) Kind() Kind   { return KindIdentifier }
func (n *Identifier) Span() Span { return n.Pos }
func (*Identifier) Dump() string { return "(identifier)" }

type UnaryExpr struct {
	Op   Operator // OpAdd or OpSub.
	Expr Node
	Pos  Span
}

func (*UnaryExpr) node()        {}
func (*UnaryExpr) Kind() Kind   { return KindUnaryExpression }
func (n *UnaryExpr) Span() Span { return n.Pos }

func (n *UnaryExpr) Dump() string {
	return fmt.Sprintf("(unary_expression op: %q expr: %s)", n.Op, n.Expr.Dump())
}

type BinaryExpr struct {
	Lhs Node
	Op  Operator
	Rhs Node
	Pos Span
}

func (*BinaryExpr) node()        {}
func (*BinaryExpr) Kind() Kind   { return KindBinaryExpression }
func (n *BinaryExpr) Span() Span { return n.Pos }

func (n *BinaryExpr) Dump() string {
	return fmt.Sprintf("(binary_expression lhs: %s op: %q rhs: %s)", n.Lhs.Dump(), n.Op, n.Rhs.Dump())
}

// ParenExpr only groups; precedence is already resolved by the parser.
type ParenExpr struct {
	Expr Node
	Pos  Span
}

func (*ParenExpr) node()        {}
func (*ParenExpr) Kind() Kind   { return KindParenthesesExpression }
func (n *ParenExpr) Span() Span { return n.Pos }

func (n *ParenExpr) Dump() string {
	return fmt.Sprintf("(parentheses_expression expr: %s)", n.Expr.Dump())
}

// Assignment binds the value of Rhs to the name of Lhs.
type Assignment struct {
	Lhs *Identifier
	Rhs Node
	Pos Span
}

func (*Assignment) node()        {}
func (*Assignment) Kind() Kind   { return KindAssignment }
func (n *Assignment) Span() Span { return n.Pos }

func (n *Assignment) Dump() string {
	return fmt.Sprintf("(assignment lhs: %s rhs: %s)", n.Lhs.Dump(), n.Rhs.Dump())
}

// Field returns the child of n playing the given role ("lhs", "rhs", "expr"),
// or nil if n has no such child. Operators are not nodes, they are kept in
// the Op field of their expression.
func Field(n Node, role string) Node {
	switch n := n.(type) {
	case *UnaryExpr:
		if role == "expr" {
			return n.Expr
		}
	case *ParenExpr:
		if role == "expr" {
			return n.Expr
		}
	case *BinaryExpr:
		switch role {
		case "lhs":
			return n.Lhs
		case "rhs":
			return n.Rhs
		}
	case *Assignment:
		switch role {
		case "lhs":
			return n.Lhs
		case "rhs":
			return n.Rhs
		}
	}
	return nil
}

// Children returns the node children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *SourceFile:
		if n.Expr == nil {
			return nil
		}
		return []Node{n.Expr}
	case *UnaryExpr:
		return []Node{n.Expr}
	case *ParenExpr:
		return []Node{n.Expr}
	case *BinaryExpr:
		return []Node{n.Lhs, n.Rhs}
	case *Assignment:
		return []Node{n.Lhs, n.Rhs}
	}
	return nil
}

// Child returns the i-th node child of n, or nil if out of range.
func Child(n Node, i int) Node {
	children := Children(n)
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}
