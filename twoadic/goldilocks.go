package twoadic

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Goldilocks implements field arithmetic over F_p, p = 2^64 - 2^32 + 1.
// p-1 = 2^32·(2^32-1), so the field supports domains up to 2^32.
type Goldilocks struct{}

const GoldilocksTwoAdicity = 32

// 7 generates the multiplicative group of the Goldilocks field.
const goldilocksGenerator = 7

func (Goldilocks) Add(x, y goldilocks.Element) goldilocks.Element {
	var z goldilocks.Element
	z.Add(&x, &y)
	return z
}

func (Goldilocks) Sub(x, y goldilocks.Element) goldilocks.Element {
	var z goldilocks.Element
	z.Sub(&x, &y)
	return z
}

func (Goldilocks) Mul(x, y goldilocks.Element) goldilocks.Element {
	var z goldilocks.Element
	z.Mul(&x, &y)
	return z
}

func (Goldilocks) Equal(x, y goldilocks.Element) bool {
	return x.Equal(&y)
}

func (Goldilocks) Zero() goldilocks.Element {
	return goldilocks.Element{}
}

func (Goldilocks) One() goldilocks.Element {
	var z goldilocks.Element
	z.SetOne()
	return z
}

// RootOfUnity returns g^((p-1)/2^order) for the multiplicative generator g,
// a primitive 2^order-th root of unity.
func (Goldilocks) RootOfUnity(order uint64) (goldilocks.Element, error) {
	if order > GoldilocksTwoAdicity {
		return goldilocks.Element{}, fmt.Errorf("%w: order %d, two-adicity %d", ErrOrderTooLarge, order, GoldilocksTwoAdicity)
	}

	var g goldilocks.Element
	g.SetUint64(goldilocksGenerator)

	exp := new(big.Int).Sub(goldilocks.Modulus(), big.NewInt(1))
	exp.Rsh(exp, uint(order))

	var w goldilocks.Element
	w.Exp(g, exp)
	return w, nil
}
