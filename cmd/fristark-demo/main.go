// Command fristark-demo proves and verifies a single low-degree claim end
// to end, printing the round count and the verification result. It exists as a runnable sanity
// check of the library, not as a general-purpose CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/fristark/fristark/internal/fristark/field"
	"github.com/fristark/fristark/internal/fristark/logging"
	"github.com/fristark/fristark/internal/fristark/poly"
	"github.com/fristark/fristark/pkg/fristark"
)

func main() {
	logging.SetLevel(zerolog.InfoLevel)

	const (
		domainLength        = 64
		expansionFactor     = 4
		numColinearityTests = 4
	)

	stark, err := fristark.NewStark(domainLength, expansionFactor, numColinearityTests)
	if err != nil {
		fatal("building FRI configuration", err)
	}

	f := stark.Field()
	p := cubicPolynomial(f)
	codeword := p.EvaluateDomain(stark.Config().EvalDomain())

	proof, err := stark.Prove(codeword)
	if err != nil {
		fatal("proving", err)
	}
	fmt.Printf("proved a codeword of length %d over %d rounds\n", domainLength, stark.Config().NumRounds())

	ok, err := stark.Verify(proof)
	if err != nil {
		fatal("verifying", err)
	}
	if !ok {
		fatal("verifying", fmt.Errorf("proof was rejected"))
	}
	fmt.Println("proof accepted")
}

func fatal(step string, err error) {
	fmt.Fprintf(os.Stderr, "fristark-demo: %s: %v\n", step, err)
	os.Exit(1)
}

// cubicPolynomial returns f(x) = x^3 + 2x^2 + 3x + 4, the scenario used
// throughout the library's own tests.
func cubicPolynomial(fld *field.Field) *poly.UniPoly {
	return poly.New(fld, []*field.FieldElement{
		fld.NewElementFromInt64(4),
		fld.NewElementFromInt64(3),
		fld.NewElementFromInt64(2),
		fld.NewElementFromInt64(1),
	})
}
