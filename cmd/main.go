package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sanity-io/litter"
	"go.aurora.dev/pkg"
)

var (
	dumpTokens = flag.Bool("tokens", false, "print the token stream instead of evaluating")
	dumpTree   = flag.Bool("ast", false, "print the parsed tree instead of evaluating")
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: aurora [-tokens] [-ast] expression")
		os.Exit(2)
	}

	expr := strings.Join(flag.Args(), " ")

	if *dumpTokens || *dumpTree {
		if err := dump(expr); err != nil {
			fmt.Fprintln(os.Stderr, message(err))
			os.Exit(1)
		}

		return
	}

	result, err := aurora.NewEvaluator().Evaluate(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		os.Exit(1)
	}

	fmt.Println(formatResult(result))
}

func dump(expr string) error {
	lexer := aurora.NewLexer(strings.NewReader(expr))

	tokens, err := lexer.RunBlocking()
	if err != nil {
		return err
	}

	if *dumpTokens {
		for _, tok := range tokens {
			fmt.Printf("%s %q\n", tok.Typ, tok.Value)
		}
	}

	if *dumpTree {
		tree, err := aurora.NewParser(aurora.NewTokenScanner(tokens)).Run()
		if err != nil {
			return err
		}

		litter.Dump(tree)
	}

	return nil
}

// message maps each error kind to the text a calculator display would show.
func message(err error) string {
	switch e := err.(type) {
	case *aurora.LexError:
		return "Invalid input: " + e.Error()
	case *aurora.UnknownFunctionError:
		return "Unknown function: " + e.Name
	case *aurora.DivisionByZeroError:
		return "Division by zero"
	case *aurora.DomainError:
		return "Math error: " + e.Error()
	default:
		return "Error: " + err.Error()
	}
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
