// Package fft provides in-place, iterative radix-2 FFT kernels over two-adic
// finite fields, the evaluate/interpolate workhorse of polynomial commitment
// schemes and related proving systems.
//
// Two decimation-in-time variants are exposed:
//   - FFTNR: naturally ordered input, bit-reversed output, bit-reversed twiddles
//   - FFTRN: bit-reversed input, naturally ordered output, natural twiddles
//
// Composing either variant with BitReverse yields the other variant's external
// contract. A twiddle table in the wrong ordering produces well-typed garbage,
// so tables carry an Ordering tag and both transforms reject a mismatch before
// touching the input.
//
// Field arithmetic is a capability: the kernels are generic over any type
// implementing Field, with gnark-crypto backed implementations in the twoadic
// subpackage.
//
// There is no inverse transform; callers needing one can run the dual variant
// on inverse-root twiddles and scale by 1/n themselves.
package fft

import "github.com/blang/semver/v4"

// Version of the fft library
var Version = semver.MustParse("0.1.0")
