package aurora

import (
	"io"
	"strings"
)

// Evaluator evaluates calculator expressions. It holds no state between
// calls and is safe for concurrent use; every call owns its own token
// sequence and tree.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Evaluate(expr string) (float64, error) {
	return e.EvaluateReader(strings.NewReader(expr))
}

func (e *Evaluator) EvaluateReader(reader io.Reader) (float64, error) {
	lexer := NewLexer(reader)

	tokens, err := lexer.RunBlocking()
	if err != nil {
		return 0, err
	}

	parser := NewParser(NewTokenScanner(tokens))

	expr, err := parser.Run()
	if err != nil {
		return 0, err
	}

	return Eval(expr)
}
