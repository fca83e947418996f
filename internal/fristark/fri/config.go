// Package fri implements the commit-fold-query FRI protocol: the prover's
// round scheduling, domain folding, and index sampling, and the verifier's
// symmetric replay including colinearity checks and Merkle path
// verification. This is the part of the stack where correctness depends on
// exact ordering of Fiat-Shamir challenges between prover and verifier.
package fri

import (
	"errors"
	"fmt"

	"github.com/fristark/fristark/internal/fristark/field"
)

// ErrInvalidConfig is returned by NewConfig when the domain length,
// expansion factor, or colinearity test count are inconsistent.
var ErrInvalidConfig = errors.New("fri: invalid configuration")

// Config is the FRI parameterization shared by the prover and verifier:
// the coset (offset, omega), the initial domain length, the code's
// expansion factor, and how many colinearity tests to run per round.
type Config struct {
	Field               *field.Field
	Offset              *field.FieldElement
	Omega               *field.FieldElement
	DomainLength        int
	ExpansionFactor     int
	NumColinearityTests int
}

// NewConfig validates and constructs a Config.
func NewConfig(f *field.Field, offset, omega *field.FieldElement, domainLength, expansionFactor, numColinearityTests int) (*Config, error) {
	if domainLength <= 0 || domainLength&(domainLength-1) != 0 {
		return nil, fmt.Errorf("%w: domain length %d must be a positive power of two", ErrInvalidConfig, domainLength)
	}
	if expansionFactor <= 0 || expansionFactor&(expansionFactor-1) != 0 {
		return nil, fmt.Errorf("%w: expansion factor %d must be a positive power of two", ErrInvalidConfig, expansionFactor)
	}
	if numColinearityTests <= 0 {
		return nil, fmt.Errorf("%w: num colinearity tests must be positive", ErrInvalidConfig)
	}
	if offset.IsZero() {
		return nil, fmt.Errorf("%w: offset must not be zero", ErrInvalidConfig)
	}
	return &Config{
		Field:               f,
		Offset:              offset,
		Omega:               omega,
		DomainLength:        domainLength,
		ExpansionFactor:     expansionFactor,
		NumColinearityTests: numColinearityTests,
	}, nil
}

// DefaultConfig builds a Config over the Goldilocks field for the given
// domain length, with expansion factor 4 and 16 colinearity tests, a
// reasonable default security/size tradeoff matching common FRI
// configurations in the wild.
func DefaultConfig(domainLength int) (*Config, error) {
	f := field.NewGoldilocks()
	omega, err := f.PrimitiveNthRoot(uint64(domainLength))
	if err != nil {
		return nil, fmt.Errorf("fri: default config: %w", err)
	}
	offset := f.NewElementFromInt64(7)
	return NewConfig(f, offset, omega, domainLength, 4, 16)
}

// NumRounds returns the number of FRI rounds: the count of r >= 0 such
// that domainLength/2^r > expansionFactor and
// 4*numColinearityTests < domainLength/2^r (2 for 64, 4, 4).
func (c *Config) NumRounds() int {
	codewordLength := c.DomainLength
	rounds := 0
	for codewordLength > c.ExpansionFactor && 4*c.NumColinearityTests < codewordLength {
		codewordLength /= 2
		rounds++
	}
	return rounds
}

// EvalDomain returns the coset {offset * omega^i : i in [0, DomainLength)}.
func (c *Config) EvalDomain() []*field.FieldElement {
	domain := make([]*field.FieldElement, c.DomainLength)
	power := c.Field.One()
	for i := range domain {
		domain[i] = c.Offset.Mul(power)
		power = power.Mul(c.Omega)
	}
	return domain
}
