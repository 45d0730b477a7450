package twoadic

import (
	"testing"

	"github.com/consensys/fft"
	"github.com/stretchr/testify/require"
)

// squareTimes returns x^(2^k).
func squareTimes[E any](field fft.Field[E], x E, k uint64) E {
	for i := uint64(0); i < k; i++ {
		x = field.Mul(x, x)
	}
	return x
}

// checkPrimitiveRoot asserts that w has exact multiplicative order 2^order:
// w^(2^order) = 1 and w^(2^(order-1)) ≠ 1.
func checkPrimitiveRoot[E any](t *testing.T, field fft.Field[E], w E, order uint64) {
	t.Helper()
	assert := require.New(t)

	assert.True(field.Equal(squareTimes(field, w, order), field.One()),
		"root of order %d must satisfy ω^(2^%d) = 1", order, order)
	if order > 0 {
		assert.False(field.Equal(squareTimes(field, w, order-1), field.One()),
			"root of order %d must be primitive", order)
	}
}

func TestGoldilocksRootOfUnity(t *testing.T) {
	field := Goldilocks{}
	for _, order := range []uint64{0, 1, 2, 8, 16, GoldilocksTwoAdicity} {
		w, err := field.RootOfUnity(order)
		require.NoError(t, err)
		checkPrimitiveRoot(t, field, w, order)
	}

	_, err := field.RootOfUnity(GoldilocksTwoAdicity + 1)
	require.ErrorIs(t, err, ErrOrderTooLarge)
}

func TestBabyBearRootOfUnity(t *testing.T) {
	field := BabyBear{}
	for _, order := range []uint64{0, 1, 2, 8, 16, BabyBearTwoAdicity} {
		w, err := field.RootOfUnity(order)
		require.NoError(t, err)
		checkPrimitiveRoot(t, field, w, order)
	}

	_, err := field.RootOfUnity(BabyBearTwoAdicity + 1)
	require.ErrorIs(t, err, ErrOrderTooLarge)
}

func TestBN254RootOfUnity(t *testing.T) {
	field := BN254{}
	for _, order := range []uint64{0, 1, 2, 8, 16} {
		w, err := field.RootOfUnity(order)
		require.NoError(t, err)
		checkPrimitiveRoot(t, field, w, order)
	}

	_, err := field.RootOfUnity(BN254TwoAdicity + 1)
	require.ErrorIs(t, err, ErrOrderTooLarge)
}
