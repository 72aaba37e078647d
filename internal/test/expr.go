package test

import (
	"math/rand"
	"strings"
)

const validAtoms = "1;2;3;42;0.25;3.5;.5;7.;pi;e;sqrt(2);sin(1);cos(0);log(10);abs(3);(1+2)"
const validOperators = "+;-;*;/;%;//;^;×;÷"

// GetRandomExpr builds a lexically valid expression with the given number of
// operands, alternating atoms and operators.
func GetRandomExpr(size int) string {
	atoms := strings.Split(validAtoms, ";")
	operators := strings.Split(validOperators, ";")

	var sb strings.Builder
	sb.WriteString(atoms[rand.Intn(len(atoms))])

	for i := 1; i < size; i++ {
		sb.WriteString(" ")
		sb.WriteString(operators[rand.Intn(len(operators))])
		sb.WriteString(" ")
		sb.WriteString(atoms[rand.Intn(len(atoms))])
	}

	return sb.String()
}

// GetRandomPrintable returns a string of random printable ASCII characters,
// most of which is not a valid expression.
func GetRandomPrintable(size int) string {
	var sb strings.Builder
	for i := 0; i < size; i++ {
		sb.WriteByte(byte(' ' + rand.Intn(95)))
	}

	return sb.String()
}
