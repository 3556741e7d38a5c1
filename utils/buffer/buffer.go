// Package buffer implements methods for writing and reading fixed-width
// values to and from io.Writer and io.Reader that expose their internal buffers.
package buffer

import (
	"io"
)

// Writer is an interface for writers that expose their internal
// buffers.
// This interface is notably implemented by the bufio.Writer type
// (see https://pkg.go.dev/bufio#Writer) and by the Buffer type.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an interface for readers that expose their internal
// buffers.
// This interface is notably implemented by the bufio.Reader type
// (see https://pkg.go.dev/bufio#Reader) and by the Buffer type.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// minGrow is the smallest number of bytes Flush leaves available.
const minGrow = 64

// Buffer is an in-memory Writer and Reader.
// Written bytes are appended to a backing slice that grows on demand,
// and reads consume them from the front.
type Buffer struct {
	buf []byte
	off int
}

// NewBuffer creates a new Buffer reading from p.
// Writes are appended after the content of p.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{buf: p}
}

// NewBufferSize creates a new empty Buffer with size bytes of capacity.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Write appends p to b.
func (b *Buffer) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Flush has nothing to write out. When fewer than 64 bytes are available,
// it grows the backing slice so that the next call to AvailableBuffer has room.
func (b *Buffer) Flush() (err error) {
	if b.Available() < minGrow {
		grow := cap(b.buf)
		if grow < minGrow {
			grow = minGrow
		}
		buf := make([]byte, len(b.buf), len(b.buf)+grow)
		copy(buf, b.buf)
		b.buf = buf
	}
	return nil
}

// AvailableBuffer returns an empty buffer with b.Available() capacity, to be
// appended to and passed to a Write call. The buffer is only valid until the
// next write operation on b.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[len(b.buf):]
}

// Available returns the number of bytes that can be written without
// reallocating the backing slice.
func (b *Buffer) Available() int {
	return cap(b.buf) - len(b.buf)
}

// Bytes returns the written bytes, including those already read.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Reset empties b and keeps its capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}

// Read reads len(p) bytes into p.
// It returns io.EOF if fewer than len(p) bytes were unread.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.off:])
	b.off += n
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the number of unread bytes.
func (b *Buffer) Size() int {
	return len(b.buf) - b.off
}

// Peek returns the next n unread bytes without consuming them.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.buf[b.off:], io.EOF
	}
	return b.buf[b.off : b.off+n], nil
}

// Discard consumes the next n unread bytes.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if remain := b.Size(); n > remain {
		b.off = len(b.buf)
		return remain, io.EOF
	}
	b.off += n
	return n, nil
}
