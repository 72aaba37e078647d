package aurora

// Expr is an expression tree node. A tree is built bottom-up by the parser
// and never mutated afterwards; each node exclusively owns its children.
type Expr interface{}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
	BinaryModulo         BinaryOp = "%"
	BinaryFloorDivision  BinaryOp = "//"
	BinaryPower          BinaryOp = "^"
)

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
}

type UnaryOp string

const (
	UnaryNegative UnaryOp = "-"
	UnaryPositive UnaryOp = "+"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr
}

type LiteralExpr struct {
	Value float64
}

// CallExpr is a call to one of the builtin functions. The parser guarantees
// the name is in the builtin table.
type CallExpr struct {
	Name string
	Arg  Expr
}
