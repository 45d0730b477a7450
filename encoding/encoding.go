// Package encoding offers (de)serialization APIs for precomputed twiddle
// tables, so provers can cache domain setup across runs.
//
// It uses CBOR and encodes the table ordering ahead of the factors: a reader
// expecting one transform variant rejects a table cached for the other one
// instead of consuming it silently.
package encoding

import (
	"io"
	"os"

	"github.com/consensys/fft"
	"github.com/fxamacker/cbor/v2"
)

// Write serializes a twiddle table into a file
func Write[E any](path string, t *fft.Twiddles[E]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, t)
}

// Read reads and deserializes a twiddle table from a file
// provided table must be a pointer
func Read[E any](path string, into *fft.Twiddles[E], expectedOrdering fft.Ordering) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Deserialize(f, into, expectedOrdering)
}

// Serialize a twiddle table into the provided writer
// encodes the ordering tag in the first bytes
func Serialize[E any](writer io.Writer, t *fft.Twiddles[E]) error {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	encoder := em.NewEncoder(writer)

	// encode the ordering in the first bytes
	if err := encoder.Encode(t.Ordering); err != nil {
		return err
	}

	// encode the factors
	return encoder.Encode(t.Factors)
}

// Deserialize reads bytes from reader and reconstructs a twiddle table into
// the provided pointer. It returns fft.ErrOrderingMismatch, before decoding
// any factor, if the encoded ordering differs from expectedOrdering.
func Deserialize[E any](reader io.Reader, into *fft.Twiddles[E], expectedOrdering fft.Ordering) error {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return err
	}
	decoder := dm.NewDecoder(reader)

	// decode the ordering tag, and ensure it matches
	var ordering fft.Ordering
	if err := decoder.Decode(&ordering); err != nil {
		return err
	}
	if ordering != expectedOrdering {
		return fft.ErrOrderingMismatch
	}

	into.Ordering = ordering
	return decoder.Decode(&into.Factors)
}

// PeekOrdering reads the first bytes of the file and returns the ordering
// tag of the encoded table
func PeekOrdering(path string) (fft.Ordering, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return 0, err
	}
	decoder := dm.NewDecoder(f)

	var ordering fft.Ordering
	if err := decoder.Decode(&ordering); err != nil {
		return 0, err
	}
	return ordering, nil
}
