package fft

// Field wraps the arithmetic of a finite field over elements of type E.
// Implementations are pure capabilities: stateless, total and deterministic.
// Equality is exact.
type Field[E any] interface {
	Add(x, y E) E
	Sub(x, y E) E
	Mul(x, y E) E
	Equal(x, y E) bool
	Zero() E
	One() E
}

// TwoAdicField is a Field whose multiplicative group order is divisible by a
// large power of two, so that it contains primitive 2^k-th roots of unity for
// FFT domains.
type TwoAdicField[E any] interface {
	Field[E]

	// RootOfUnity returns a primitive 2^order-th root of unity, or an error
	// if order exceeds the two-adicity of the field.
	RootOfUnity(order uint64) (E, error)
}
