package fft

// Butterfly executes the atomic operation of the FFT:
//
//	a, b = a + w·b, a - w·b
//
// writing both results back in place. A transform of size n performs
// n/2·log2(n) butterflies, the dominant cost of the algorithm.
func Butterfly[E any](field Field[E], a, b *E, w E) {
	wb := field.Mul(w, *b)
	*a, *b = field.Add(*a, wb), field.Sub(*a, wb)
}
