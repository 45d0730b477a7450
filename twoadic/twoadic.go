// Package twoadic provides fft.TwoAdicField implementations backed by
// gnark-crypto arithmetic, for fields commonly used in proving systems.
package twoadic

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	bn254fft "github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// ErrOrderTooLarge is returned by RootOfUnity when the requested order
// exceeds the two-adicity of the field.
var ErrOrderTooLarge = errors.New("field has no primitive root of unity for this order")

// BN254 implements field arithmetic over the scalar field of the BN254
// curve, the field gnark's Groth16 and PLONK backends run their FFTs on.
type BN254 struct{}

// BN254TwoAdicity is the largest k such that 2^k divides r-1, r the modulus
// of the BN254 scalar field.
const BN254TwoAdicity = 28

func (BN254) Add(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Add(&x, &y)
	return z
}

func (BN254) Sub(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&x, &y)
	return z
}

func (BN254) Mul(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&x, &y)
	return z
}

func (BN254) Equal(x, y fr.Element) bool {
	return x.Equal(&y)
}

func (BN254) Zero() fr.Element {
	return fr.Element{}
}

func (BN254) One() fr.Element {
	var z fr.Element
	z.SetOne()
	return z
}

// RootOfUnity returns a primitive 2^order-th root of unity of the scalar
// field, taken from the generator of the corresponding fft domain.
func (BN254) RootOfUnity(order uint64) (fr.Element, error) {
	if order > BN254TwoAdicity {
		return fr.Element{}, fmt.Errorf("%w: order %d, two-adicity %d", ErrOrderTooLarge, order, BN254TwoAdicity)
	}
	domain := bn254fft.NewDomain(1 << order)
	return domain.Generator, nil
}
