//go:build !debug

// Package debug holds assertions and the debug build flag shared across fft
// packages.
package debug

// Debug is true when the binary is built with the debug tag.
const Debug = false

// Assert does nothing if the debug build tag is not provided.
func Assert(condition bool, message ...string) {}
