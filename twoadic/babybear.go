package twoadic

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/field/babybear"
)

// BabyBear implements field arithmetic over F_p, p = 2^31 - 2^27 + 1, a
// small field favored by hash-based proving systems.
type BabyBear struct{}

const BabyBearTwoAdicity = 27

// 31 generates the multiplicative group of the BabyBear field.
const babyBearGenerator = 31

func (BabyBear) Add(x, y babybear.Element) babybear.Element {
	var z babybear.Element
	z.Add(&x, &y)
	return z
}

func (BabyBear) Sub(x, y babybear.Element) babybear.Element {
	var z babybear.Element
	z.Sub(&x, &y)
	return z
}

func (BabyBear) Mul(x, y babybear.Element) babybear.Element {
	var z babybear.Element
	z.Mul(&x, &y)
	return z
}

func (BabyBear) Equal(x, y babybear.Element) bool {
	return x.Equal(&y)
}

func (BabyBear) Zero() babybear.Element {
	return babybear.Element{}
}

func (BabyBear) One() babybear.Element {
	var z babybear.Element
	z.SetOne()
	return z
}

// RootOfUnity returns g^((p-1)/2^order) for the multiplicative generator g,
// a primitive 2^order-th root of unity.
func (BabyBear) RootOfUnity(order uint64) (babybear.Element, error) {
	if order > BabyBearTwoAdicity {
		return babybear.Element{}, fmt.Errorf("%w: order %d, two-adicity %d", ErrOrderTooLarge, order, BabyBearTwoAdicity)
	}

	var g babybear.Element
	g.SetUint64(babyBearGenerator)

	exp := new(big.Int).Sub(babybear.Modulus(), big.NewInt(1))
	exp.Rsh(exp, uint(order))

	var w babybear.Element
	w.Exp(g, exp)
	return w, nil
}
