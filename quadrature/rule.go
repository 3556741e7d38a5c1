package quadrature

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/gausslegendre/utils/buffer"
)

// Rule is a quadrature rule: an ordered node set on [A, B] and its
// index-aligned weight set. A reference rule lives on [-1, 1].
// Rules are treated as immutable: operations on a Rule return a new Rule.
type Rule struct {
	Order   int
	A, B    float64
	Nodes   []float64
	Weights []float64
}

// IsReference returns true if the rule is defined on [-1, 1].
func (r Rule) IsReference() bool {
	return r.A == -1 && r.B == 1
}

// CopyNew returns a deep copy of the object.
func (r Rule) CopyNew() *Rule {
	return &Rule{
		Order:   r.Order,
		A:       r.A,
		B:       r.B,
		Nodes:   append([]float64{}, r.Nodes...),
		Weights: append([]float64{}, r.Weights...),
	}
}

// Equal performs a deep equal.
func (r Rule) Equal(other *Rule) bool {
	return other != nil && cmp.Equal(r, *other)
}

// BinarySize returns the serialized size of the object in bytes.
func (r Rule) BinarySize() int {
	return 8 + 16 + 8 + 8*len(r.Nodes) + 8 + 8*len(r.Weights)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (r Rule) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint64(w, uint64(r.Order)); err != nil {
			return n + inc, fmt.Errorf("cannot WriteTo: order: %w", err)
		}

		n += inc

		for _, c := range []float64{r.A, r.B} {
			if inc, err = buffer.WriteFloat64(w, c); err != nil {
				return n + inc, fmt.Errorf("cannot WriteTo: interval: %w", err)
			}
			n += inc
		}

		if inc, err = buffer.WriteFloat64Vector(w, r.Nodes); err != nil {
			return n + inc, fmt.Errorf("cannot WriteTo: nodes: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloat64Vector(w, r.Weights); err != nil {
			return n + inc, fmt.Errorf("cannot WriteTo: weights: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return r.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (r *Rule) ReadFrom(rd io.Reader) (n int64, err error) {

	switch rd := rd.(type) {
	case buffer.Reader:

		var inc int

		var order uint64
		if inc, err = buffer.ReadUint64(rd, &order); err != nil {
			return n + int64(inc), fmt.Errorf("cannot ReadFrom: order: %w", err)
		}

		n += int64(inc)

		if order < 1 || order > MaxOrder {
			return n, fmt.Errorf("cannot ReadFrom: %w: order must be in [1, %d] but is %d", ErrInvalidParameter, MaxOrder, order)
		}

		r.Order = int(order)

		for _, c := range []*float64{&r.A, &r.B} {
			if inc, err = buffer.ReadFloat64(rd, c); err != nil {
				return n + int64(inc), fmt.Errorf("cannot ReadFrom: interval: %w", err)
			}
			n += int64(inc)
		}

		if r.Nodes, inc, err = buffer.ReadFloat64Vector(rd, r.Nodes, MaxOrder); err != nil {
			return n + int64(inc), fmt.Errorf("cannot ReadFrom: nodes: %w", err)
		}

		n += int64(inc)

		if r.Weights, inc, err = buffer.ReadFloat64Vector(rd, r.Weights, MaxOrder); err != nil {
			return n + int64(inc), fmt.Errorf("cannot ReadFrom: weights: %w", err)
		}

		n += int64(inc)

		if len(r.Nodes) != r.Order || len(r.Weights) != r.Order {
			return n, fmt.Errorf("cannot ReadFrom: %w: order %d but %d nodes and %d weights", ErrInvalidParameter, r.Order, len(r.Nodes), len(r.Weights))
		}

		return n, nil

	default:
		return r.ReadFrom(bufio.NewReader(rd))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (r Rule) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(r.BinarySize())
	_, err = r.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (r *Rule) UnmarshalBinary(p []byte) (err error) {
	_, err = r.ReadFrom(buffer.NewBuffer(p))
	return
}

// Digest returns the 32-byte BLAKE3 hash of the binary form of the rule.
// Two rules have the same digest if and only if they are bit-identical.
func (r Rule) Digest() (digest []byte, err error) {
	hasher := blake3.New()
	if _, err = r.WriteTo(hasher); err != nil {
		return nil, fmt.Errorf("cannot Digest: %w", err)
	}
	return hasher.Sum(nil), nil
}
