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

import "math/bits"

// BitReverse applies the bit-reversal permutation to a: element i and element
// rev(i) are swapped, where rev reverses the log2(len(a)) low bits of i.
// The permutation is its own inverse.
// len(a) must be a power of 2 (as in every single function in this file)
func BitReverse[E any](a []E) {
	l := uint64(len(a))
	n := uint64(64 - bits.TrailingZeros64(l))

	for i := uint64(0); i < l; i++ {
		irev := bits.Reverse64(i) >> n
		if irev > i {
			a[i], a[irev] = a[irev], a[i]
		}
	}
}

// reverse returns x with its n low bits reversed.
func reverse(x, n int) int {
	return int(bits.Reverse64(uint64(x)) >> (64 - uint(n)))
}
