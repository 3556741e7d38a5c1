package bignum

import (
	"math/big"
)

// Interval is a struct storing the domain of a quadrature rule.
// Nodes: the number of points of the rule.
// [A, B]: the domain of integration.
type Interval struct {
	Nodes int
	A, B  big.Float
}

// NewInterval returns the Interval [a, b] with the given number of nodes,
// with A and B stored with prec bits of precision.
func NewInterval(a, b float64, nodes int, prec uint) Interval {
	return Interval{
		Nodes: nodes,
		A:     *NewFloat(a, prec),
		B:     *NewFloat(b, prec),
	}
}

// Affine returns the coefficients of the map x -> scale * x + shift
// sending [-1, 1] onto [A, B], that is scale = (B-A)/2 and shift = (B+A)/2.
func (inter Interval) Affine() (scale, shift *big.Float) {
	prec := inter.A.Prec()
	half := NewFloat(0.5, prec)
	scale = new(big.Float).SetPrec(prec).Sub(&inter.B, &inter.A)
	scale.Mul(scale, half)
	shift = new(big.Float).SetPrec(prec).Add(&inter.B, &inter.A)
	shift.Mul(shift, half)
	return
}
