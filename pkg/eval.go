package aurora

import (
	"fmt"
	"math"
)

type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// DomainError reports an operation applied outside its mathematical domain,
// such as the square root of a negative number.
type DomainError struct {
	Op string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("'%s' is undefined for this operand", e.Op)
}

// Eval walks the tree bottom-up and reduces it to a single value. It only
// accepts trees produced by a successful parse; the dispatch over operators
// and builtin names is exhaustive for those, and anything else is an
// internal invariant violation.
func Eval(expr Expr) (float64, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *UnaryExpr:
		operand, err := Eval(e.Operand)
		if err != nil {
			return 0, err
		}

		return evalUnary(e.Operation, operand)
	case *BinaryExpr:
		lhs, err := Eval(e.Op1)
		if err != nil {
			return 0, err
		}

		rhs, err := Eval(e.Op2)
		if err != nil {
			return 0, err
		}

		return evalBinary(e.Operation, lhs, rhs)
	case *CallExpr:
		arg, err := Eval(e.Arg)
		if err != nil {
			return 0, err
		}

		return evalCall(e.Name, arg)
	}

	panic(fmt.Sprintf("eval: unhandled node %T", expr))
}

func evalUnary(op UnaryOp, operand float64) (float64, error) {
	switch op {
	case UnaryNegative:
		return -operand, nil
	case UnaryPositive:
		return operand, nil
	}

	panic(fmt.Sprintf("eval: unhandled unary operator %q", op))
}

func evalBinary(op BinaryOp, lhs, rhs float64) (float64, error) {
	switch op {
	case BinaryAddition:
		return lhs + rhs, nil
	case BinarySubtraction:
		return lhs - rhs, nil
	case BinaryMultiplication:
		return lhs * rhs, nil
	case BinaryDivision:
		if rhs == 0 {
			return 0, &DivisionByZeroError{}
		}

		return lhs / rhs, nil
	case BinaryModulo:
		if rhs == 0 {
			return 0, &DivisionByZeroError{}
		}

		return math.Mod(lhs, rhs), nil
	case BinaryFloorDivision:
		if rhs == 0 {
			return 0, &DivisionByZeroError{}
		}

		return math.Floor(lhs / rhs), nil
	case BinaryPower:
		res := math.Pow(lhs, rhs)
		if math.IsNaN(res) && !math.IsNaN(lhs) && !math.IsNaN(rhs) {
			// Negative base with a fractional exponent. Overflow to
			// infinity passes through unchanged.
			return 0, &DomainError{Op: string(op)}
		}

		return res, nil
	}

	panic(fmt.Sprintf("eval: unhandled binary operator %q", op))
}

func evalCall(name string, arg float64) (float64, error) {
	switch name {
	case "sqrt":
		if arg < 0 {
			return 0, &DomainError{Op: name}
		}

		return math.Sqrt(arg), nil
	case "sin":
		return math.Sin(arg), nil
	case "cos":
		return math.Cos(arg), nil
	case "tan":
		return math.Tan(arg), nil
	case "log": // Natural logarithm; log10 covers base 10
		if arg <= 0 {
			return 0, &DomainError{Op: name}
		}

		return math.Log(arg), nil
	case "log10":
		if arg <= 0 {
			return 0, &DomainError{Op: name}
		}

		return math.Log10(arg), nil
	case "abs":
		return math.Abs(arg), nil
	case "round":
		return math.Round(arg), nil
	}

	panic(fmt.Sprintf("eval: unhandled builtin %q", name))
}
