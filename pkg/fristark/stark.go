package fristark

import (
	"github.com/fristark/fristark/internal/fristark/field"
	"github.com/fristark/fristark/internal/fristark/fri"
	"github.com/fristark/fristark/internal/fristark/transcript"
)

// Stark bundles an FRI configuration with the field it operates over,
// giving callers a single entry point instead of wiring the internal
// packages together themselves.
type Stark struct {
	config *fri.Config
}

// NewStark builds a Stark over the Goldilocks field for the given domain
// length, expansion factor, and colinearity test count.
func NewStark(domainLength, expansionFactor, numColinearityTests int) (*Stark, error) {
	f := field.NewGoldilocks()
	omega, err := f.PrimitiveNthRoot(uint64(domainLength))
	if err != nil {
		return nil, newError(ErrInvalidConfig, "deriving domain generator", err)
	}
	offset := f.NewElementFromInt64(7)
	cfg, err := fri.NewConfig(f, offset, omega, domainLength, expansionFactor, numColinearityTests)
	if err != nil {
		return nil, newError(ErrInvalidConfig, "building FRI configuration", err)
	}
	return &Stark{config: cfg}, nil
}

// Config exposes the underlying FRI configuration, e.g. so a caller can
// build a codeword over the matching evaluation domain.
func (s *Stark) Config() *fri.Config {
	return s.config
}

// Field returns the prime field this Stark operates over.
func (s *Stark) Field() *field.Field {
	return s.config.Field
}

// Proof is an opaque, self-contained FRI transcript: the sequence of
// round commitments, sampled challenges (implicitly, via Fiat-Shamir), and
// query openings a verifier needs to replay the protocol.
type Proof struct {
	stream     *transcript.ProofStream
	topIndices []int
	domainSize int
	expFactor  int
	numQueries int
}

// Prove runs the FRI commit-fold-query protocol over codeword and returns
// the resulting proof. codeword must have exactly Config().DomainLength
// evaluations, typically a polynomial of bounded degree evaluated over
// Config().EvalDomain().
func (s *Stark) Prove(codeword []*field.FieldElement) (*Proof, error) {
	ps := transcript.New()
	topIndices, err := s.config.Prove(codeword, ps)
	if err != nil {
		return nil, newError(ErrProofGeneration, "running FRI prover", err)
	}
	return &Proof{
		stream:     ps,
		topIndices: topIndices,
		domainSize: s.config.DomainLength,
		expFactor:  s.config.ExpansionFactor,
		numQueries: s.config.NumColinearityTests,
	}, nil
}

// Verify replays proof against the Stark's configuration. A rejected but
// well-formed proof is reported as (false, nil); a malformed transcript
// (wrong push/pull order, premature end of stream) is reported as an
// error, since that indicates the proof object itself is broken rather
// than merely failing the low-degree test.
func (s *Stark) Verify(proof *Proof) (bool, error) {
	if proof.domainSize != s.config.DomainLength ||
		proof.expFactor != s.config.ExpansionFactor ||
		proof.numQueries != s.config.NumColinearityTests {
		return false, newError(ErrInvalidInput, "proof was generated under a different configuration", nil)
	}
	proof.stream.Rewind()
	_, ok, err := s.config.Verify(proof.stream)
	if err != nil {
		return false, newError(ErrProofVerification, "replaying FRI transcript", err)
	}
	return ok, nil
}

// TopQueryIndices returns the top-level domain indices the prover sampled,
// for a caller layering an out-of-domain (DEEP) consistency check on top
// of this FRI proof.
func (p *Proof) TopQueryIndices() []int {
	return append([]int(nil), p.topIndices...)
}
