package quadrature

import (
	"fmt"
	"math"
)

// ScaleToInterval maps a rule given on [-1, 1] onto [a, b]:
//
//	x' = (b-a)/2 * x + (b+a)/2
//	w' = (b-a)/2 * w
//
// It returns new slices and leaves its inputs untouched.
// a == b yields all-zero weights. a > b yields negative weights, so that
// the integral from a to b is minus the integral from b to a.
func ScaleToInterval(a, b float64, nodes, weights []float64) (x, w []float64, err error) {

	if !isFinite(a) || !isFinite(b) {
		return nil, nil, fmt.Errorf("cannot ScaleToInterval: %w: bounds must be finite but are [%v, %v]", ErrInvalidParameter, a, b)
	}

	if len(nodes) != len(weights) {
		return nil, nil, fmt.Errorf("cannot ScaleToInterval: %w: %d nodes but %d weights", ErrInvalidParameter, len(nodes), len(weights))
	}

	// Halves before adding, so that the full float64 range does not overflow.
	scale := 0.5*b - 0.5*a
	shift := 0.5*b + 0.5*a

	x = make([]float64, len(nodes))
	w = make([]float64, len(weights))

	for i := range nodes {
		x[i] = scale*nodes[i] + shift
		w[i] = scale * weights[i]
	}

	return
}

// Scale returns a new rule mapping the reference rule r onto [a, b].
// See ScaleToInterval.
func (r Rule) Scale(a, b float64) (*Rule, error) {

	if !r.IsReference() {
		return nil, fmt.Errorf("cannot Scale: %w: rule is defined on [%v, %v] instead of [-1, 1]", ErrInvalidParameter, r.A, r.B)
	}

	x, w, err := ScaleToInterval(a, b, r.Nodes, r.Weights)
	if err != nil {
		return nil, fmt.Errorf("cannot Scale: %w", err)
	}

	return &Rule{
		Order:   r.Order,
		A:       a,
		B:       b,
		Nodes:   x,
		Weights: w,
	}, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
