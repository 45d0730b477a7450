package fft

import "errors"

// ErrInvalidLength is returned when an input length is zero or not a power of
// two. It is reported before any in-place mutation takes place.
var ErrInvalidLength = errors.New("input length must be a nonzero power of two")

// ErrTwiddleLengthMismatch is returned when a twiddle table does not hold
// exactly half as many factors as the input has elements.
var ErrTwiddleLengthMismatch = errors.New("twiddle factor count must be half the input length")

// ErrOrderingMismatch is returned when a twiddle table is tagged with the
// wrong ordering for the requested transform variant.
var ErrOrderingMismatch = errors.New("twiddle ordering does not match transform variant")
