// Package polynomial provides coefficient-form polynomials over a two-adic
// field and their evaluation on roots-of-unity domains.
package polynomial

import (
	"fmt"
	"math/bits"

	"github.com/consensys/fft"
)

// Polynomial holds coefficients, lowest degree first.
type Polynomial[E any] []E

// Eval evaluates p at x using Horner's method.
func (p Polynomial[E]) Eval(field fft.Field[E], x E) E {
	res := field.Zero()
	for i := len(p) - 1; i >= 0; i-- {
		res = field.Add(field.Mul(res, x), p[i])
	}
	return res
}

// Evaluate returns the values of p on the roots-of-unity domain of size
// len(p), in natural order: out[i] = p(ω^i). len(p) must be a power of two.
// p is left untouched.
func Evaluate[E any](field fft.TwoAdicField[E], p Polynomial[E]) ([]E, error) {
	n := len(p)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d coefficients", fft.ErrInvalidLength, n)
	}
	order := uint64(bits.TrailingZeros(uint(n)))

	twiddles, err := fft.NewTwiddles[E](field, order, fft.BitReversed)
	if err != nil {
		return nil, err
	}

	values := make([]E, n)
	copy(values, p)
	if err := fft.FFTNR(field, values, twiddles); err != nil {
		return nil, err
	}
	fft.BitReverse(values)

	return values, nil
}
