// Package sampling implements deterministic sampling of random bytes and
// bounded integers, used to draw reproducible problem-parameter grids in
// property tests.
package sampling

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate a shared sequence of random bytes from a key, using the hash
// function blake2b.
// WARNING: KeyedPRNG should NOT be called by multiple threads. If that occurs,
// the generated sequence will not be deterministic.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with NewKeyedPRNG to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}

// RandInt returns a value uniformly distributed in [min, max] read from the
// given PRNG.
func RandInt(prng PRNG, min, max int) int {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	span := uint64(max - min + 1)
	return min + int(binary.LittleEndian.Uint64(b)%span)
}
