/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fft

import (
	"fmt"

	"github.com/consensys/fft/internal/debug"
)

// FFTNR computes the discrete Fourier transform of input and stores the
// result in input, in bit-reversed order.
//
// len(input) must be a power of 2, and twiddles must be a BitReversed table
// for a domain of that size; a subsequent BitReverse yields the natural-order
// transform. Precondition failures are reported before any mutation, so on a
// non-nil error input is untouched.
func FFTNR[E any](field Field[E], input []E, twiddles *Twiddles[E]) error {
	if err := checkPreconditions(len(input), twiddles, BitReversed); err != nil {
		return err
	}

	// split input in groups, starting with 1 and doubling the group count at
	// each stage. every group shares a single twiddle factor, addressed
	// directly by the group index; that flat lookup is what the bit-reversed
	// table ordering buys.
	groupCount := 1
	groupSize := len(input)

	for groupCount < len(input) {
		debug.Assert(groupCount*groupSize == len(input))
		half := groupSize / 2

		for group := 0; group < groupCount; group++ {
			first := group * groupSize
			mid := first + half
			w := twiddles.Factors[group]

			for i := first; i < mid; i++ {
				Butterfly(field, &input[i], &input[i+half], w)
			}
		}
		groupCount *= 2
		groupSize /= 2
	}
	return nil
}

// FFTRN computes the discrete Fourier transform of input and stores the
// result in input, in natural order.
//
// input must already be in bit-reversed order (run BitReverse on naturally
// ordered coefficients first), len(input) must be a power of 2, and twiddles
// must be a Natural table for a domain of that size. Precondition failures
// are reported before any mutation.
func FFTRN[E any](field Field[E], input []E, twiddles *Twiddles[E]) error {
	if err := checkPreconditions(len(input), twiddles, Natural); err != nil {
		return err
	}

	// same stage structure as FFTNR, but butterflies of a group are strided
	// across the slice instead of packed, and the group's twiddle factor sits
	// at group*groupSize/2 in the natural table.
	groupCount := 1
	groupSize := len(input)

	for groupCount < len(input) {
		debug.Assert(groupCount*groupSize == len(input))
		stepToNext := 2 * groupCount
		stepToLast := stepToNext * (groupSize/2 - 1)

		for group := 0; group < groupCount; group++ {
			w := twiddles.Factors[group*groupSize/2]

			for i := group; i <= group+stepToLast; i += stepToNext {
				Butterfly(field, &input[i], &input[i+groupCount], w)
			}
		}
		groupCount *= 2
		groupSize /= 2
	}
	return nil
}

func checkPreconditions[E any](n int, twiddles *Twiddles[E], want Ordering) error {
	if n == 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	if len(twiddles.Factors) != n/2 {
		return fmt.Errorf("%w: got %d factors for input of size %d", ErrTwiddleLengthMismatch, len(twiddles.Factors), n)
	}
	if twiddles.Ordering != want {
		return fmt.Errorf("%w: table is %s, transform needs %s", ErrOrderingMismatch, twiddles.Ordering, want)
	}
	return nil
}
