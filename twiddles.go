package fft

import (
	"time"

	"github.com/consensys/fft/logger"
)

// Ordering describes the arrangement of a twiddle factor table.
type Ordering uint8

const (
	// Natural ordering: Factors[i] = ω^i for the primitive root ω of the
	// domain. Required by FFTRN.
	Natural Ordering = iota

	// BitReversed ordering: Factors[i] holds the root power whose exponent is
	// the bit-reversal of i. Required by FFTNR.
	BitReversed
)

func (o Ordering) String() string {
	switch o {
	case Natural:
		return "natural"
	case BitReversed:
		return "bit-reversed"
	default:
		return "unknown"
	}
}

// Twiddles is a read-only table of precomputed twiddle factors for a domain
// of size 2·len(Factors), tagged with its ordering.
//
// The tag exists because a table in the wrong ordering is indistinguishable
// from a correct one by shape: feeding it to the wrong transform variant
// would silently yield well-typed, mathematically wrong output. The
// transforms check the tag and fail fast instead.
//
// A table is never mutated by the transforms and may be shared across
// concurrent calls operating on distinct inputs.
type Twiddles[E any] struct {
	Ordering Ordering
	Factors  []E
}

// NewTwiddles precomputes the 2^(order-1) twiddle factors of a domain of size
// 2^order, arranged per the requested ordering. order 0 yields an empty
// table, valid for size-1 transforms.
func NewTwiddles[E any](field TwoAdicField[E], order uint64, ordering Ordering) (*Twiddles[E], error) {
	start := time.Now()

	w, err := field.RootOfUnity(order)
	if err != nil {
		return nil, err
	}

	count := 0
	if order > 0 {
		count = 1 << (order - 1)
	}
	factors := make([]E, count)
	if count > 0 {
		factors[0] = field.One()
		for i := 1; i < count; i++ {
			factors[i] = field.Mul(factors[i-1], w)
		}
		if ordering == BitReversed {
			BitReverse(factors)
		}
	}

	log := logger.Logger()
	log.Debug().Uint64("order", order).Stringer("ordering", ordering).Dur("took", time.Since(start)).Msg("twiddle factors precomputed")

	return &Twiddles[E]{Ordering: ordering, Factors: factors}, nil
}

// RootPowers returns the first size powers ω^0, ω^1, … of the primitive
// 2^order-th root of unity ω, in natural order.
func RootPowers[E any](field TwoAdicField[E], order uint64, size int) ([]E, error) {
	w, err := field.RootOfUnity(order)
	if err != nil {
		return nil, err
	}

	powers := make([]E, size)
	if size > 0 {
		powers[0] = field.One()
	}
	for i := 1; i < size; i++ {
		powers[i] = field.Mul(powers[i-1], w)
	}
	return powers, nil
}
