package aurora

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser(t *testing.T) {
	cases := []struct {
		data   []Token
		expect Expr
	}{
		{
			[]Token{
				{TokenNumber, "2", 0},
				{TokenPlus, "+", 1},
				{TokenNumber, "3", 2},
				{TokenStar, "*", 3},
				{TokenNumber, "4", 4},
			},
			&BinaryExpr{
				Operation: BinaryAddition,
				Op1:       &LiteralExpr{2},
				Op2: &BinaryExpr{
					Operation: BinaryMultiplication,
					Op1:       &LiteralExpr{3},
					Op2:       &LiteralExpr{4},
				},
			},
		},
		{
			[]Token{
				{TokenOpenParentheses, "(", 0},
				{TokenNumber, "1", 1},
				{TokenPlus, "+", 2},
				{TokenNumber, "3", 3},
				{TokenCloseParentheses, ")", 4},
				{TokenStar, "*", 5},
				{TokenNumber, "2", 6},
			},
			&BinaryExpr{
				Operation: BinaryMultiplication,
				Op1: &BinaryExpr{
					Operation: BinaryAddition,
					Op1:       &LiteralExpr{1},
					Op2:       &LiteralExpr{3},
				},
				Op2: &LiteralExpr{2},
			},
		},
		{
			// Chained additive operands nest to the left
			[]Token{
				{TokenNumber, "1", 0},
				{TokenMinus, "-", 1},
				{TokenNumber, "3", 2},
				{TokenPlus, "+", 3},
				{TokenNumber, "1", 4},
			},
			&BinaryExpr{
				Operation: BinaryAddition,
				Op1: &BinaryExpr{
					Operation: BinarySubtraction,
					Op1:       &LiteralExpr{1},
					Op2:       &LiteralExpr{3},
				},
				Op2: &LiteralExpr{1},
			},
		},
		{
			// Power chains nest to the right
			[]Token{
				{TokenNumber, "2", 0},
				{TokenCaret, "^", 1},
				{TokenNumber, "3", 2},
				{TokenCaret, "^", 3},
				{TokenNumber, "2", 4},
			},
			&BinaryExpr{
				Operation: BinaryPower,
				Op1:       &LiteralExpr{2},
				Op2: &BinaryExpr{
					Operation: BinaryPower,
					Op1:       &LiteralExpr{3},
					Op2:       &LiteralExpr{2},
				},
			},
		},
		{
			// A leading sign stays outside the power chain
			[]Token{
				{TokenMinus, "-", 0},
				{TokenNumber, "2", 1},
				{TokenCaret, "^", 2},
				{TokenNumber, "2", 3},
			},
			&UnaryExpr{
				Operation: UnaryNegative,
				Operand: &BinaryExpr{
					Operation: BinaryPower,
					Op1:       &LiteralExpr{2},
					Op2:       &LiteralExpr{2},
				},
			},
		},
		{
			// A signed exponent is legal
			[]Token{
				{TokenNumber, "2", 0},
				{TokenCaret, "^", 1},
				{TokenMinus, "-", 2},
				{TokenNumber, "3", 3},
			},
			&BinaryExpr{
				Operation: BinaryPower,
				Op1:       &LiteralExpr{2},
				Op2: &UnaryExpr{
					Operation: UnaryNegative,
					Operand:   &LiteralExpr{3},
				},
			},
		},
		{
			[]Token{
				{TokenNumber, "7", 0},
				{TokenFloorDiv, "//", 1},
				{TokenNumber, "2", 3},
				{TokenPercent, "%", 4},
				{TokenNumber, "3", 5},
			},
			&BinaryExpr{
				Operation: BinaryModulo,
				Op1: &BinaryExpr{
					Operation: BinaryFloorDivision,
					Op1:       &LiteralExpr{7},
					Op2:       &LiteralExpr{2},
				},
				Op2: &LiteralExpr{3},
			},
		},
		{
			[]Token{
				{TokenIdentifier, "sqrt", 0},
				{TokenOpenParentheses, "(", 4},
				{TokenNumber, "2", 5},
				{TokenPlus, "+", 6},
				{TokenNumber, "2", 7},
				{TokenCloseParentheses, ")", 8},
			},
			&CallExpr{
				Name: "sqrt",
				Arg: &BinaryExpr{
					Operation: BinaryAddition,
					Op1:       &LiteralExpr{2},
					Op2:       &LiteralExpr{2},
				},
			},
		},
		{
			[]Token{
				{TokenIdentifier, "pi", 0},
			},
			&LiteralExpr{math.Pi},
		},
		{
			[]Token{
				{TokenPlus, "+", 0},
				{TokenNumber, "5", 1},
			},
			&UnaryExpr{
				Operation: UnaryPositive,
				Operand:   &LiteralExpr{5},
			},
		},
		{
			[]Token{
				{TokenMinus, "-", 0},
				{TokenMinus, "-", 1},
				{TokenNumber, "2", 2},
			},
			&UnaryExpr{
				Operation: UnaryNegative,
				Operand: &UnaryExpr{
					Operation: UnaryNegative,
					Operand:   &LiteralExpr{2},
				},
			},
		},
	}

	for _, c := range cases {
		p := NewParser(NewTokenScanner(c.data))

		got, err := p.Run()
		assert.NoError(t, err)
		assert.Equal(t, c.expect, got)
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		data []Token
		err  error
	}{
		{
			[]Token{
				{TokenIdentifier, "foo", 0},
				{TokenOpenParentheses, "(", 3},
				{TokenNumber, "1", 4},
				{TokenCloseParentheses, ")", 5},
			},
			&UnknownFunctionError{Name: "foo"},
		},
		{
			[]Token{
				{TokenIdentifier, "bar", 0},
			},
			&UnknownFunctionError{Name: "bar"},
		},
		{
			// A constant is not callable
			[]Token{
				{TokenIdentifier, "pi", 0},
				{TokenOpenParentheses, "(", 2},
				{TokenNumber, "2", 3},
				{TokenCloseParentheses, ")", 4},
			},
			&UnknownFunctionError{Name: "pi"},
		},
		{
			[]Token{
				{TokenNumber, "2", 0},
				{TokenPlus, "+", 1},
				{TokenOpenParentheses, "(", 2},
				{TokenNumber, "3", 3},
				{TokenStar, "*", 4},
				{TokenNumber, "4", 5},
			},
			&UnbalancedParensError{Pos: 2},
		},
		{
			[]Token{
				{TokenCloseParentheses, ")", 0},
			},
			&UnbalancedParensError{Pos: 0},
		},
		{
			[]Token{
				{TokenNumber, "1", 0},
				{TokenNumber, "2", 2},
			},
			&TrailingInputError{Pos: 2},
		},
		{
			nil,
			&UnexpectedEndError{},
		},
		{
			[]Token{
				{TokenNumber, "2", 0},
				{TokenPlus, "+", 1},
			},
			&UnexpectedEndError{},
		},
		{
			[]Token{
				{TokenNumber, "2", 0},
				{TokenPlus, "+", 1},
				{TokenStar, "*", 2},
				{TokenNumber, "3", 3},
			},
			&UnexpectedTokenError{Pos: 2, Value: "*"},
		},
	}

	for _, c := range cases {
		p := NewParser(NewTokenScanner(c.data))

		got, err := p.Run()
		assert.Nil(t, got)
		assert.Equal(t, c.err, err)
	}
}
