package fri

import (
	"bytes"
	"fmt"

	"github.com/fristark/fristark/internal/fristark/field"
	"github.com/fristark/fristark/internal/fristark/logging"
	"github.com/fristark/fristark/internal/fristark/merkle"
	"github.com/fristark/fristark/internal/fristark/poly"
	"github.com/fristark/fristark/internal/fristark/transcript"
)

// IndexValue pairs a domain index with the codeword value the first-round
// colinearity test observed there; Verify collects these for a caller that
// cross-checks them against an out-of-domain (DEEP) consistency argument.
type IndexValue struct {
	Index int
	Value *field.FieldElement
}

// Verify replays the FRI transcript, deriving identical Fiat-Shamir
// challenges to the prover and checking every colinearity test and Merkle
// opening. A protocol-level malformation (bad root, failed colinearity,
// excessive final degree) makes Verify return (_, false, nil); a
// transcript-structure error (premature end of stream) is fatal and
// returned as err, since it indicates a malformed proof object rather than
// a failed check.
func (c *Config) Verify(ps *transcript.ProofStream) ([]IndexValue, bool, error) {
	rounds := c.NumRounds()

	roots := make([][]byte, rounds)
	alphas := make([]*field.FieldElement, rounds)
	for r := 0; r < rounds; r++ {
		root, err := ps.PullBytes()
		if err != nil {
			return nil, false, fmt.Errorf("fri: verify: pulling root %d: %w", r, err)
		}
		roots[r] = root
		alphas[r] = c.Field.Sample(ps.VerifierFiatShamir(32))
	}

	lastCodeword, err := ps.PullVector()
	if err != nil {
		return nil, false, fmt.Errorf("fri: verify: pulling last codeword: %w", err)
	}

	lastRoot := merkle.Commit(elementsToBytes(lastCodeword))
	if !bytes.Equal(lastRoot, roots[rounds-1]) {
		logging.Logger.Debug().Msg("fri: verify: last codeword does not match its committed root")
		return nil, false, nil
	}

	lastOmega := c.Omega.Pow(uint64(1) << uint(rounds-1))
	lastOffset := c.Offset.Pow(uint64(1) << uint(rounds-1))

	inv, err := lastOmega.Inv()
	if err != nil {
		return nil, false, fmt.Errorf("fri: verify: last-round omega not invertible: %w", err)
	}
	if !lastOmega.Pow(uint64(len(lastCodeword)-1)).Equal(inv) {
		logging.Logger.Debug().Msg("fri: verify: last-round omega has the wrong order")
		return nil, false, nil
	}

	lastDomain := make([]*field.FieldElement, len(lastCodeword))
	power := c.Field.One()
	for i := range lastDomain {
		lastDomain[i] = lastOffset.Mul(power)
		power = power.Mul(lastOmega)
	}

	lastPoly, err := poly.InterpolateDomain(c.Field, lastDomain, lastCodeword)
	if err != nil {
		logging.Logger.Debug().Err(err).Msg("fri: verify: last codeword does not interpolate")
		return nil, false, nil
	}
	reevaluated := lastPoly.EvaluateDomain(lastDomain)
	for i := range reevaluated {
		if !reevaluated[i].Equal(lastCodeword[i]) {
			return nil, false, nil
		}
	}
	degreeBound := len(lastCodeword)/c.ExpansionFactor - 1
	if lastPoly.Degree() > degreeBound {
		logging.Logger.Debug().Int("degree", lastPoly.Degree()).Int("bound", degreeBound).Msg("fri: verify: final polynomial degree too high")
		return nil, false, nil
	}

	topIndices, err := sampleIndices(
		ps.VerifierFiatShamir(32),
		c.DomainLength/2,
		len(lastCodeword),
		c.NumColinearityTests,
	)
	if err != nil {
		return nil, false, fmt.Errorf("fri: verify: sampling top indices: %w", err)
	}

	var points []IndexValue
	indices := append([]int(nil), topIndices...)
	omega := c.Omega
	offset := c.Offset

	for r := 0; r < rounds-1; r++ {
		n := c.DomainLength >> uint(r+1)
		cIndices := make([]int, len(indices))
		aIndices := make([]int, len(indices))
		bIndices := make([]int, len(indices))
		for j, idx := range indices {
			cIndices[j] = idx % n
			aIndices[j] = cIndices[j]
			bIndices[j] = cIndices[j] + n
		}

		triples := make([][3]*field.FieldElement, c.NumColinearityTests)
		for s := 0; s < c.NumColinearityTests; s++ {
			triple, err := ps.PullTriple()
			if err != nil {
				return nil, false, fmt.Errorf("fri: verify: pulling triple round %d test %d: %w", r, s, err)
			}
			triples[s] = triple

			if r == 0 {
				points = append(points,
					IndexValue{Index: aIndices[s], Value: triple[0]},
					IndexValue{Index: bIndices[s], Value: triple[1]},
				)
			}

			ax := offset.Mul(omega.Pow(uint64(aIndices[s])))
			bx := offset.Mul(omega.Pow(uint64(bIndices[s])))
			cx := alphas[r]
			ok := poly.TestColinearity(
				poly.Point{X: ax, Y: triple[0]},
				poly.Point{X: bx, Y: triple[1]},
				poly.Point{X: cx, Y: triple[2]},
			)
			if !ok {
				logging.Logger.Debug().Int("round", r).Int("test", s).Msg("fri: verify: colinearity check failed")
				return nil, false, nil
			}
		}

		for s := 0; s < c.NumColinearityTests; s++ {
			pathA, err := ps.PullMerklePath()
			if err != nil {
				return nil, false, fmt.Errorf("fri: verify: pulling path a round %d test %d: %w", r, s, err)
			}
			pathB, err := ps.PullMerklePath()
			if err != nil {
				return nil, false, fmt.Errorf("fri: verify: pulling path b round %d test %d: %w", r, s, err)
			}
			pathC, err := ps.PullMerklePath()
			if err != nil {
				return nil, false, fmt.Errorf("fri: verify: pulling path c round %d test %d: %w", r, s, err)
			}

			ay, by, cy := triples[s][0], triples[s][1], triples[s][2]
			if !merkle.Verify(roots[r], aIndices[s], pathA, ay.Bytes()) {
				return nil, false, nil
			}
			if !merkle.Verify(roots[r], bIndices[s], pathB, by.Bytes()) {
				return nil, false, nil
			}
			if !merkle.Verify(roots[r+1], cIndices[s], pathC, cy.Bytes()) {
				return nil, false, nil
			}
		}

		indices = cIndices
		omega = omega.Mul(omega)
		offset = offset.Mul(offset)
	}

	return points, true, nil
}
