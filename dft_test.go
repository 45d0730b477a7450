package fft

import "math/bits"

// naiveDFT evaluates the DFT matrix directly:
//
//	out[row] = Σ_col in[col]·ω^((row·col) mod n)
//
// with ω the primitive n-th root of unity. O(n²); test oracle only.
func naiveDFT[E any](field TwoAdicField[E], input []E) ([]E, error) {
	n := len(input)
	order := uint64(bits.TrailingZeros(uint(n)))

	powers, err := RootPowers(field, order, n)
	if err != nil {
		return nil, err
	}

	output := make([]E, n)
	for row := 0; row < n; row++ {
		sum := field.Zero()
		for col := 0; col < n; col++ {
			sum = field.Add(sum, field.Mul(input[col], powers[(row*col)%n]))
		}
		output[row] = sum
	}
	return output, nil
}

func elementsEqual[E any](field Field[E], a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !field.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
