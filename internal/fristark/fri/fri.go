package fri

import (
	"fmt"

	"github.com/fristark/fristark/internal/fristark/field"
	"github.com/fristark/fristark/internal/fristark/logging"
	"github.com/fristark/fristark/internal/fristark/merkle"
	"github.com/fristark/fristark/internal/fristark/transcript"
)

func elementsToBytes(vec []*field.FieldElement) [][]byte {
	out := make([][]byte, len(vec))
	for i, e := range vec {
		out[i] = e.Bytes()
	}
	return out
}

// Prove runs the FRI commit-fold-query protocol over codeword, writing
// Merkle roots and query openings into ps, and returns the top-level query
// indices (used by a caller that also needs to check DEEP/out-of-domain
// consistency against the same indices).
func (c *Config) Prove(codeword []*field.FieldElement, ps *transcript.ProofStream) ([]int, error) {
	if len(codeword) != c.DomainLength {
		return nil, fmt.Errorf("fri: codeword length %d != domain length %d", len(codeword), c.DomainLength)
	}

	codewords, err := c.commit(codeword, ps)
	if err != nil {
		return nil, err
	}

	topIndices, err := sampleIndices(
		ps.ProverFiatShamir(32),
		len(codewords[1]),
		len(codewords[len(codewords)-1]),
		c.NumColinearityTests,
	)
	if err != nil {
		return nil, err
	}

	indices := append([]int(nil), topIndices...)
	for i := 0; i < len(codewords)-1; i++ {
		half := len(codewords[i]) / 2
		for j := range indices {
			indices[j] = indices[j] % half
		}
		c.query(codewords[i], codewords[i+1], indices, ps)
	}

	return topIndices, nil
}

// commit runs the folding rounds, committing each intermediate codeword to
// the transcript and returning the full sequence (including the final,
// unfolded small codeword) for the query phase to index into.
func (c *Config) commit(codeword []*field.FieldElement, ps *transcript.ProofStream) ([][]*field.FieldElement, error) {
	rounds := c.NumRounds()
	codewords := make([][]*field.FieldElement, 0, rounds)

	omega := c.Omega
	offset := c.Offset
	current := codeword

	for r := 0; r < rounds; r++ {
		root := merkle.Commit(elementsToBytes(current))
		ps.PushBytes(root)
		logging.Logger.Debug().Int("round", r).Int("codeword_len", len(current)).Msg("fri: committed round")

		if r == rounds-1 {
			break
		}

		alpha := c.Field.Sample(ps.ProverFiatShamir(32))
		codewords = append(codewords, current)
		current = fold(current, offset, omega, alpha, c.Field)

		omega = omega.Mul(omega)
		offset = offset.Mul(offset)
	}

	codewords = append(codewords, current)
	ps.PushVector(current)
	return codewords, nil
}

// fold applies the FRI folding formula:
//
//	new[i] = (1/2) * ( (1 + alpha/(offset*omega^i)) * c[i]
//	                 + (1 - alpha/(offset*omega^i)) * c[n/2+i] )
func fold(c []*field.FieldElement, offset, omega, alpha *field.FieldElement, f *field.Field) []*field.FieldElement {
	n := len(c)
	half := n / 2
	two := f.NewElementFromInt64(2)
	twoInv, err := two.Inv()
	if err != nil {
		panic("fri: 2 is not invertible in this field")
	}
	one := f.One()

	next := make([]*field.FieldElement, half)
	omegaPow := f.One()
	for i := 0; i < half; i++ {
		denom := offset.Mul(omegaPow)
		ratio, err := alpha.Div(denom)
		if err != nil {
			panic(fmt.Sprintf("fri: fold: %v", err))
		}
		termA := one.Add(ratio).Mul(c[i])
		termB := one.Sub(ratio).Mul(c[half+i])
		next[i] = termA.Add(termB).Mul(twoInv)
		omegaPow = omegaPow.Mul(omega)
	}
	return next
}

// query pushes the colinearity triples and Merkle openings for one folding
// round and returns a_indices ++ b_indices, the positions opened in current.
func (c *Config) query(current, next []*field.FieldElement, indices []int, ps *transcript.ProofStream) []int {
	half := len(current) / 2
	aIndices := make([]int, len(indices))
	bIndices := make([]int, len(indices))

	for s, idx := range indices {
		aIndices[s] = idx
		bIndices[s] = idx + half
		ps.PushTriple(current[aIndices[s]], current[bIndices[s]], next[idx])
	}

	currentBytes := elementsToBytes(current)
	nextBytes := elementsToBytes(next)
	for s, idx := range indices {
		pathA, _ := merkle.Open(aIndices[s], currentBytes)
		pathB, _ := merkle.Open(bIndices[s], currentBytes)
		pathC, _ := merkle.Open(idx, nextBytes)
		ps.PushMerklePath(pathA)
		ps.PushMerklePath(pathB)
		ps.PushMerklePath(pathC)
	}

	return append(aIndices, bIndices...)
}
