package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes a uint64 c into w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64 writes the IEEE 754 bits of c into w.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteFloat64Slice writes a slice of float64 into w, without length prefix.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	// Remaining available space in the internal buffer
	available := w.Available() >> 3

	if available == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		available = w.Available() >> 3

		if available == 0 {
			return 0, fmt.Errorf("cannot WriteFloat64Slice: available buffer/8 is zero even after flush")
		}
	}

	if available > len(c) {
		available = len(c)
	}

	buf := w.AvailableBuffer()[:available<<3]
	for i := 0; i < available; i++ {
		binary.LittleEndian.PutUint64(buf[i<<3:], math.Float64bits(c[i]))
	}

	var inc int
	if inc, err = w.Write(buf); err != nil {
		return int64(inc), err
	}

	n = int64(inc)

	if available == len(c) {
		return
	}

	if err = w.Flush(); err != nil {
		return n, err
	}

	var inc64 int64
	inc64, err = WriteFloat64Slice(w, c[available:])

	return n + inc64, err
}

// WriteFloat64Vector writes len(c) as a uint64 followed by c.
func WriteFloat64Vector(w Writer, c []float64) (n int64, err error) {

	var inc int64
	if inc, err = WriteUint64(w, uint64(len(c))); err != nil {
		return inc, fmt.Errorf("cannot WriteFloat64Vector: %w", err)
	}

	n += inc

	if inc, err = WriteFloat64Slice(w, c); err != nil {
		return n + inc, fmt.Errorf("cannot WriteFloat64Vector: %w", err)
	}

	return n + inc, nil
}
