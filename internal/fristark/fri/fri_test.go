package fri

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fristark/fristark/internal/fristark/field"
	"github.com/fristark/fristark/internal/fristark/poly"
	"github.com/fristark/fristark/internal/fristark/transcript"
)

func cubicCodeword(t *testing.T, c *Config) []*field.FieldElement {
	t.Helper()
	f := c.Field
	p := poly.New(f, []*field.FieldElement{
		f.NewElementFromInt64(4),
		f.NewElementFromInt64(3),
		f.NewElementFromInt64(2),
		f.NewElementFromInt64(1),
	})
	return p.EvaluateDomain(c.EvalDomain())
}

func TestProveThenVerifyAcceptsAGenuineLowDegreeCodeword(t *testing.T) {
	c, err := DefaultConfigWithParams(64, 4, 4)
	require.NoError(t, err)

	ps := transcript.New()
	_, err = c.Prove(cubicCodeword(t, c), ps)
	require.NoError(t, err)

	ps.Rewind()
	points, ok, err := c.Verify(ps)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, points)
}

func TestVerifyRejectsASingleFlippedCodewordEntry(t *testing.T) {
	c, err := DefaultConfigWithParams(64, 4, 4)
	require.NoError(t, err)

	codeword := cubicCodeword(t, c)
	codeword[3] = codeword[3].Add(c.Field.One())

	ps := transcript.New()
	_, err = c.Prove(codeword, ps)
	require.NoError(t, err)

	ps.Rewind()
	_, ok, err := c.Verify(ps)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifierFiatShamirAtFullCursorMatchesProverFiatShamir(t *testing.T) {
	c, err := DefaultConfigWithParams(64, 4, 4)
	require.NoError(t, err)

	ps := transcript.New()
	_, err = c.Prove(cubicCodeword(t, c), ps)
	require.NoError(t, err)

	proverDigest := ps.ProverFiatShamir(32)

	ps.Rewind()
	_, ok, err := c.Verify(ps)
	require.NoError(t, err)
	require.True(t, ok)
	// After a full, successful Verify the cursor sits at the end of the
	// stream, so hashing the verifier-observed prefix must reproduce
	// exactly the digest the prover derived over the whole transcript.
	require.Equal(t, ps.Len(), ps.Cursor())
	require.Equal(t, proverDigest, ps.VerifierFiatShamir(32))
}

func TestTwoIndependentProvingRunsProduceByteIdenticalTranscripts(t *testing.T) {
	c, err := DefaultConfigWithParams(64, 4, 4)
	require.NoError(t, err)

	ps1 := transcript.New()
	_, err = c.Prove(cubicCodeword(t, c), ps1)
	require.NoError(t, err)

	ps2 := transcript.New()
	_, err = c.Prove(cubicCodeword(t, c), ps2)
	require.NoError(t, err)

	require.Equal(t, ps1.Serialize(), ps2.Serialize())
}

func TestNumRoundsMatchesTheSpecLoop(t *testing.T) {
	c, err := DefaultConfigWithParams(64, 4, 4)
	require.NoError(t, err)
	// 64 -> 32 -> 16, stop: 4*4=16 is not < 16.
	require.Equal(t, 2, c.NumRounds())

	c2, err := DefaultConfigWithParams(128, 4, 4)
	require.NoError(t, err)
	// 128 -> 64 -> 32 -> 16, stop.
	require.Equal(t, 3, c2.NumRounds())
}

// DefaultConfigWithParams mirrors DefaultConfig but lets tests pick the
// expansion factor and colinearity test count instead of the hardcoded
// production defaults.
func DefaultConfigWithParams(domainLength, expansionFactor, numColinearityTests int) (*Config, error) {
	f := field.NewGoldilocks()
	omega, err := f.PrimitiveNthRoot(uint64(domainLength))
	if err != nil {
		return nil, err
	}
	offset := f.NewElementFromInt64(7)
	return NewConfig(f, offset, omega, domainLength, expansionFactor, numColinearityTests)
}
