package aurora

import (
	"fmt"
	"strconv"
)

// UnknownFunctionError reports an identifier that names neither a builtin
// function nor a constant.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function or constant '%s'", e.Name)
}

type UnbalancedParensError struct {
	Pos int
}

func (e *UnbalancedParensError) Error() string {
	return fmt.Sprintf("unbalanced parentheses at position %d", e.Pos)
}

// TrailingInputError reports tokens left over after a complete expression.
type TrailingInputError struct {
	Pos int
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("unexpected trailing input at position %d", e.Pos)
}

// UnexpectedEndError reports input that ends where an operand is expected.
type UnexpectedEndError struct{}

func (e *UnexpectedEndError) Error() string {
	return "unexpected end of expression"
}

// UnexpectedTokenError reports a token that fits no production, such as an
// operator where an operand is expected.
type UnexpectedTokenError struct {
	Pos   int
	Value string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected '%s' at position %d", e.Value, e.Pos)
}

// Parser builds an expression tree from a token sequence. Precedence,
// lowest to highest: additive, multiplicative, unary sign, power, primary.
// The power operator is right-associative and binds tighter than a leading
// sign, so -2^2 is -(2^2); the exponent position recurses through the unary
// level, so 2^-3 parses as well.
type Parser struct {
	tokenizer Tokenizer
	buf       *Token
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{
		tokenizer: tokenizer,
	}
}

// Run parses a single expression and requires the whole token sequence to be
// consumed by it.
func (p *Parser) Run() (Expr, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Typ != TokenEOF {
		return nil, &TrailingInputError{Pos: tok.Pos}
	}

	return expr, nil
}

func (p *Parser) peek() Token {
	if p.buf == nil {
		temp := p.tokenizer.Get()
		p.buf = &temp
	}

	return *p.buf
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Typ != TokenEOF && tok.Typ != TokenError {
		p.buf = nil
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) consume(typ TokenType) bool {
	if !p.check(typ) {
		return false
	}

	p.next()

	return true
}

func (p *Parser) expr() (Expr, error) {
	return p.additiveExpr()
}

func (p *Parser) additiveExpr() (Expr, error) {
	lhs, err := p.multiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.Typ != TokenPlus && tok.Typ != TokenMinus {
			return lhs, nil
		}

		p.next()

		rhs, err := p.multiplicativeExpr()
		if err != nil {
			return nil, err
		}

		// Chained operands (for example 1 - 3 + 1) nest to the left
		lhs = &BinaryExpr{
			Operation: BinaryOp(tok.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}
}

func (p *Parser) multiplicativeExpr() (Expr, error) {
	lhs, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		switch tok.Typ {
		case TokenStar, TokenSlash, TokenPercent, TokenFloorDiv:
		default:
			return lhs, nil
		}

		p.next()

		rhs, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: BinaryOp(tok.Value),
			Op1:       lhs,
			Op2:       rhs,
		}
	}
}

func (p *Parser) unaryExpr() (Expr, error) {
	if tok := p.peek(); tok.Typ == TokenMinus || tok.Typ == TokenPlus {
		p.next()

		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operation: UnaryOp(tok.Value),
			Operand:   operand,
		}, nil
	}

	return p.powerExpr()
}

func (p *Parser) powerExpr() (Expr, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenCaret) {
		return base, nil
	}

	p.next()

	// Right-associative: 2^3^2 is 2^(3^2). Recursing through the unary
	// level keeps a signed exponent legal.
	exp, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	return &BinaryExpr{
		Operation: BinaryPower,
		Op1:       base,
		Op2:       exp,
	}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenOpenParentheses:
		return p.parenthesisedExpr()
	case TokenIdentifier:
		return p.identifier()
	case TokenNumber:
		return p.literal()
	case TokenCloseParentheses:
		return nil, &UnbalancedParensError{Pos: tok.Pos}
	case TokenEOF:
		return nil, &UnexpectedEndError{}
	default:
		p.next()
		return nil, &UnexpectedTokenError{Pos: tok.Pos, Value: tok.Value}
	}
}

func (p *Parser) parenthesisedExpr() (Expr, error) {
	open := p.next() // (

	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	if !p.consume(TokenCloseParentheses) {
		return nil, &UnbalancedParensError{Pos: open.Pos}
	}

	return expr, nil
}

func (p *Parser) identifier() (Expr, error) {
	tok := p.next()

	if !p.check(TokenOpenParentheses) {
		if val, ok := constantTable[tok.Value]; ok {
			return &LiteralExpr{Value: val}, nil
		}

		return nil, &UnknownFunctionError{Name: tok.Value}
	}

	if !isBuiltin(tok.Value) {
		return nil, &UnknownFunctionError{Name: tok.Value}
	}

	arg, err := p.parenthesisedExpr()
	if err != nil {
		return nil, err
	}

	return &CallExpr{
		Name: tok.Value,
		Arg:  arg,
	}, nil
}

func (p *Parser) literal() (Expr, error) {
	tok := p.next()

	val, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		// The lexer's number grammar is a strict subset of ParseFloat's,
		// so this only fires on hand-built token sequences
		return nil, &UnexpectedTokenError{Pos: tok.Pos, Value: tok.Value}
	}

	return &LiteralExpr{Value: val}, nil
}
