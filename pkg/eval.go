package arith

import "math"

// Evaluate computes the value of an expression tree. The first failing
// subexpression aborts the whole evaluation.
func Evaluate(expr Expr) (float64, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *UnaryExpr:
		return evaluateUnary(e)
	case *BinaryExpr:
		return evaluateBinary(e)
	default:
		panic("unknown expression node")
	}
}

func evaluateUnary(expr *UnaryExpr) (float64, error) {
	v, err := Evaluate(expr.Operand)
	if err != nil {
		return 0, err
	}

	switch expr.Operation {
	case UnaryNegative:
		return checkRange(-v)
	default:
		panic("unexpected unary op: " + string(expr.Operation))
	}
}

func evaluateBinary(expr *BinaryExpr) (float64, error) {
	if expr.Operation == BinaryDivision {
		// The divisor is checked before the dividend is evaluated
		divisor, err := Evaluate(expr.Op2)
		if err != nil {
			return 0, err
		}

		if divisor == 0 {
			return 0, ErrDivisionByZero
		}

		dividend, err := Evaluate(expr.Op1)
		if err != nil {
			return 0, err
		}

		return checkRange(dividend / divisor)
	}

	v1, err := Evaluate(expr.Op1)
	if err != nil {
		return 0, err
	}

	v2, err := Evaluate(expr.Op2)
	if err != nil {
		return 0, err
	}

	switch expr.Operation {
	case BinaryAddition:
		return checkRange(v1 + v2)
	case BinarySubtraction:
		return checkRange(v1 - v2)
	case BinaryMultiplication:
		return checkRange(v1 * v2)
	case BinaryExponent:
		return checkRange(math.Pow(v1, v2))
	default:
		panic("unexpected binary op: " + string(expr.Operation))
	}
}

// checkRange guards every computed result against leaving the finite
// float64 range. NaN is not an error and passes through.
func checkRange(v float64) (float64, error) {
	if math.IsInf(v, 1) {
		return 0, ErrOverflow
	}

	if math.IsInf(v, -1) {
		return 0, ErrUnderflow
	}

	return v, nil
}
