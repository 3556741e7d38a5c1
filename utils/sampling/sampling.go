// Package sampling implements sampling of bytes and floating point values,
// either from a secure source or from a deterministic keyed stream.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// RandUint64 return a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max.
func RandFloat64(min, max float64) float64 {
	return uint64ToFloat64(RandUint64(), min, max)
}

// UniformFloatSampler draws float64 values uniformly in [min, max) from a
// byte source. With a [KeyedPRNG] the drawn sequence is deterministic.
type UniformFloatSampler struct {
	source   io.Reader
	min, max float64
	buff     [8]byte
}

// NewUniformFloatSampler creates a new UniformFloatSampler reading from source.
func NewUniformFloatSampler(source io.Reader, min, max float64) (*UniformFloatSampler, error) {
	if source == nil {
		return nil, fmt.Errorf("cannot NewUniformFloatSampler: source is nil")
	}
	if !(min < max) {
		return nil, fmt.Errorf("cannot NewUniformFloatSampler: invalid range [%v, %v)", min, max)
	}
	return &UniformFloatSampler{source: source, min: min, max: max}, nil
}

// Float64 returns the next value of the stream.
func (s *UniformFloatSampler) Float64() (f float64, err error) {
	if _, err = io.ReadFull(s.source, s.buff[:]); err != nil {
		return 0, fmt.Errorf("cannot Float64: %w", err)
	}
	return uint64ToFloat64(binary.LittleEndian.Uint64(s.buff[:]), s.min, s.max), nil
}

// Read fills out with the next len(out) values of the stream.
func (s *UniformFloatSampler) Read(out []float64) (err error) {
	for i := range out {
		if out[i], err = s.Float64(); err != nil {
			return
		}
	}
	return
}

func uint64ToFloat64(x uint64, min, max float64) float64 {
	// top 53 bits, so that f is in [0, 1)
	f := float64(x>>11) / (1 << 53)
	return min + f*(max-min)
}
