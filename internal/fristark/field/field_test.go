package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fristark/fristark/internal/fristark/field"
)

func TestInverseIsMultiplicativeIdentity(t *testing.T) {
	f := field.NewGoldilocks()
	samples := []uint64{1, 2, 3, 17, 257, 65537, 123456789, 18446744069414584320}
	for _, v := range samples {
		e := f.NewElementFromUint64(v)
		inv, err := e.Inv()
		require.NoError(t, err)
		require.True(t, e.Mul(inv).IsOne())
	}
}

func TestInverseOfZeroFails(t *testing.T) {
	f := field.NewGoldilocks()
	_, err := f.Zero().Inv()
	require.ErrorIs(t, err, field.ErrNotInvertible)
}

func TestPrimitiveNthRoot(t *testing.T) {
	f := field.NewGoldilocks()
	for _, n := range []uint64{2, 4, 8, 64, 1024} {
		root, err := f.PrimitiveNthRoot(n)
		require.NoError(t, err)
		require.True(t, root.Pow(n).IsOne(), "root^n should be 1")
		require.False(t, root.Pow(n/2).IsOne(), "root^(n/2) should not be 1")
	}
}

func TestPrimitiveNthRootRejectsNonPowerOfTwo(t *testing.T) {
	f := field.NewGoldilocks()
	_, err := f.PrimitiveNthRoot(3)
	require.ErrorIs(t, err, field.ErrUnsupportedOrder)
}

func TestPrimitiveNthRootRejectsExcessiveOrder(t *testing.T) {
	f := field.NewGoldilocks()
	_, err := f.PrimitiveNthRoot(uint64(1) << 33)
	require.ErrorIs(t, err, field.ErrUnsupportedOrder)
}

func TestPowEdgeCases(t *testing.T) {
	f := field.NewGoldilocks()
	require.True(t, f.NewElementFromUint64(42).Pow(0).IsOne())
	require.True(t, f.Zero().Pow(5).IsZero())
}

func TestSampleIsDeterministic(t *testing.T) {
	f := field.NewGoldilocks()
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	a := f.Sample(b)
	c := f.Sample(b)
	require.True(t, a.Equal(c))
}

func TestArithmeticReducedInRange(t *testing.T) {
	f := field.NewGoldilocks()
	p := f.Modulus()
	a := f.NewElement(new(big.Int).Sub(p, big.NewInt(1)))
	b := f.NewElementFromUint64(2)
	sum := a.Add(b)
	require.True(t, sum.Big().Cmp(p) < 0)
	require.True(t, sum.Big().Sign() >= 0)
}

func TestBytesRoundTrip(t *testing.T) {
	f := field.NewGoldilocks()
	e := f.NewElementFromUint64(123456789)
	got := f.ElementFromCanonicalBytes(e.Bytes())
	require.True(t, e.Equal(got))
}
