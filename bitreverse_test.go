package fft

import (
	"slices"
	"testing"

	"github.com/consensys/gnark-crypto/field/goldilocks"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func TestReverse(t *testing.T) {
	got := [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	want := [8]int{0, 4, 2, 6, 1, 5, 3, 7}

	for i := range got {
		got[i] = reverse(got[i], 3)
	}

	if got != want {
		t.Error("expected:", want, "received:", got)
	}
}

func TestBitReverse(t *testing.T) {
	var got [8]goldilocks.Element
	for i := range got {
		got[i].SetUint64(uint64(i + 1))
	}

	BitReverse(got[:])

	var want [8]goldilocks.Element
	for i, v := range []uint64{1, 5, 3, 7, 2, 6, 4, 8} {
		want[i].SetUint64(v)
	}

	if got != want {
		t.Error("expected:", want, "received:", got)
	}
}

func TestBitReverseInvolution(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("bitReverse(bitReverse(v)) == v", prop.ForAll(
		func(v []goldilocks.Element) bool {
			result := slices.Clone(v)
			BitReverse(result)
			BitReverse(result)
			return slices.Equal(v, result)
		},
		genGoldilocksVec(8),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
