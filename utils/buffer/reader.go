package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64 reads a float64 from r into c.
func ReadFloat64(r Reader, c *float64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = math.Float64frombits(u)

	return n, nil
}

// ReadFloat64Slice reads len(c) float64 from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {

	if len(c) == 0 {
		return
	}

	var slice []byte

	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if buffered == 0 {
		return 0, fmt.Errorf("cannot ReadFloat64Slice: reader has no buffered float64")
	}

	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
		}

		return r.Discard(N << 3)
	}

	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
	}

	var inc int
	if inc, err = r.Discard(buffered << 3); err != nil {
		return n + inc, err
	}

	n += inc

	if inc, err = ReadFloat64Slice(r, c[buffered:]); err != nil {
		return n + inc, err
	}

	return n + inc, nil
}

// ReadFloat64Vector reads a vector written by WriteFloat64Vector.
// The returned slice reuses the capacity of c when possible.
// maxLen bounds the accepted length prefix.
func ReadFloat64Vector(r Reader, c []float64, maxLen int) (v []float64, n int, err error) {

	var size uint64
	var inc int
	if inc, err = ReadUint64(r, &size); err != nil {
		return c, inc, fmt.Errorf("cannot ReadFloat64Vector: %w", err)
	}

	n += inc

	if size > uint64(maxLen) {
		return c, n, fmt.Errorf("cannot ReadFloat64Vector: length %d exceeds %d", size, maxLen)
	}

	if cap(c) < int(size) {
		c = make([]float64, size)
	}

	v = c[:size]

	if inc, err = ReadFloat64Slice(r, v); err != nil {
		return v, n + inc, fmt.Errorf("cannot ReadFloat64Vector: %w", err)
	}

	return v, n + inc, nil
}
