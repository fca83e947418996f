package fristark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fristark/fristark/internal/fristark/field"
	"github.com/fristark/fristark/internal/fristark/poly"
)

func cubicCodeword(t *testing.T, s *Stark) []*field.FieldElement {
	t.Helper()
	f := s.Field()
	// f(x) = x^3 + 2x^2 + 3x + 4
	p := poly.New(f, []*field.FieldElement{
		f.NewElementFromInt64(4),
		f.NewElementFromInt64(3),
		f.NewElementFromInt64(2),
		f.NewElementFromInt64(1),
	})
	return p.EvaluateDomain(s.Config().EvalDomain())
}

func TestAcceptsAProofOfADegreeThreePolynomial(t *testing.T) {
	s, err := NewStark(64, 4, 4)
	require.NoError(t, err)

	proof, err := s.Prove(cubicCodeword(t, s))
	require.NoError(t, err)

	ok, err := s.Verify(proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRejectsAProofOverAMutatedCodeword(t *testing.T) {
	s, err := NewStark(64, 4, 4)
	require.NoError(t, err)

	codeword := cubicCodeword(t, s)
	codeword[0] = codeword[0].Add(s.Field().One())

	proof, err := s.Prove(codeword)
	require.NoError(t, err)

	ok, err := s.Verify(proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRejectsAProofGeneratedUnderADifferentConfiguration(t *testing.T) {
	s1, err := NewStark(64, 4, 4)
	require.NoError(t, err)
	s2, err := NewStark(128, 4, 4)
	require.NoError(t, err)

	proof, err := s1.Prove(cubicCodeword(t, s1))
	require.NoError(t, err)

	_, err = s2.Verify(proof)
	require.Error(t, err)
}

func TestAcceptsDegreeAtTheBoundary(t *testing.T) {
	s, err := NewStark(128, 4, 4)
	require.NoError(t, err)
	f := s.Field()

	// degree 128/4 - 1 = 31, the largest degree this configuration accepts.
	coeffs := make([]*field.FieldElement, 32)
	for i := range coeffs {
		coeffs[i] = f.NewElementFromInt64(int64(i + 1))
	}
	p := poly.New(f, coeffs)
	codeword := p.EvaluateDomain(s.Config().EvalDomain())

	proof, err := s.Prove(codeword)
	require.NoError(t, err)
	ok, err := s.Verify(proof)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRejectsDegreeAboveTheBoundary(t *testing.T) {
	s, err := NewStark(128, 4, 4)
	require.NoError(t, err)
	f := s.Field()

	// degree 64 is far above the 31-degree bound this configuration enforces.
	coeffs := make([]*field.FieldElement, 65)
	for i := range coeffs {
		coeffs[i] = f.NewElementFromInt64(int64(i + 1))
	}
	p := poly.New(f, coeffs)
	codeword := p.EvaluateDomain(s.Config().EvalDomain())

	proof, err := s.Prove(codeword)
	require.NoError(t, err)
	ok, err := s.Verify(proof)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyingTwiceIsIdempotent(t *testing.T) {
	s, err := NewStark(64, 4, 4)
	require.NoError(t, err)

	proof, err := s.Prove(cubicCodeword(t, s))
	require.NoError(t, err)

	ok1, err := s.Verify(proof)
	require.NoError(t, err)
	ok2, err := s.Verify(proof)
	require.NoError(t, err)
	require.Equal(t, ok1, ok2)
	require.True(t, ok1)
}

func TestNewStarkRejectsNonPowerOfTwoDomain(t *testing.T) {
	_, err := NewStark(100, 4, 4)
	require.Error(t, err)
	var ferr *FRIError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, ErrInvalidConfig, ferr.Code)
}
