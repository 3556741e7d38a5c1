package sampling

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG is a deterministic byte stream: the blake2b XOF keyed with a
// user key. Two instances built from the same key read the same bytes,
// which makes reproducible test vectors (e.g. polynomial coefficients)
// independent of the platform and of math/rand.
//
// Reads are serialized, but the split of the stream between concurrent
// readers is not deterministic.
type KeyedPRNG struct {
	mu  sync.Mutex
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a KeyedPRNG from a key of at most 64 bytes.
// A nil key is the empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}
	return &KeyedPRNG{key: append([]byte{}, key...), xof: xof}, nil
}

// Key returns a copy of the key of the stream.
func (prng *KeyedPRNG) Key() []byte {
	return append([]byte{}, prng.key...)
}

// Read fills p with the next len(p) bytes of the stream.
func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	return prng.xof.Read(p)
}

// Reset rewinds the stream to its first byte.
func (prng *KeyedPRNG) Reset() {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	prng.xof.Reset()
}
