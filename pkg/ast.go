package arith

import "strconv"

// Expr is an immutable expression tree node. Trees are built bottom-up by
// the parser and never mutated afterwards.
type Expr interface{}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"

	// BinaryExponent has no lexer token and no grammar production; nodes
	// using it can only be built directly.
	BinaryExponent BinaryOp = "^"
)

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
}

type UnaryOp string

const (
	UnaryNegative UnaryOp = "-"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr
}

type LiteralExpr struct {
	Value float64
}

// Render produces a fully parenthesised form of the expression, making the
// parsed precedence explicit, e.g. "(2) + ((3) * (4))".
func Render(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *UnaryExpr:
		return string(e.Operation) + "(" + Render(e.Operand) + ")"
	case *BinaryExpr:
		return "(" + Render(e.Op1) + ") " + string(e.Operation) + " (" + Render(e.Op2) + ")"
	default:
		panic("unknown expression node")
	}
}
