package aurora

import "math"

// The function and constant tables are fixed per release. Every name the
// grammar accepts is listed here; the parser rejects anything else, so the
// evaluator's dispatch never sees an unknown name.

var builtinTable = map[string]bool{
	"sqrt":  true,
	"sin":   true,
	"cos":   true,
	"tan":   true,
	"log":   true,
	"log10": true,
	"abs":   true,
	"round": true,
}

var constantTable = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func isBuiltin(name string) bool {
	return builtinTable[name]
}
