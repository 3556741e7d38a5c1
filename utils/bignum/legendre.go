package bignum

import (
	"math/big"
)

// seedBits is the number of correct bits assumed for a float64 seed.
const seedBits = 48

// GaussLegendre refines the float64 roots of the Legendre polynomial P_n,
// with n = len(seed), to prec bits and returns them along with their
// Gauss-Legendre weights w = 2 / ((1 - x^2) P_n'(x)^2) on [-1, 1].
//
// Each Newton sweep doubles the number of correct bits, so the number of
// sweeps is fixed by prec: the seed must already be a converged float64 rule.
// nodes[i] and weights[i] are index-aligned with seed[i].
func GaussLegendre(seed []float64, prec uint) (nodes, weights []*big.Float) {

	n := len(seed)

	nodes = make([]*big.Float, n)
	weights = make([]*big.Float, n)

	sweeps := NewtonSweeps(prec)

	one := NewFloat(1, prec)
	two := NewFloat(2, prec)

	dx := new(big.Float).SetPrec(prec)

	for i := range seed {

		x := NewFloat(seed[i], prec)

		for j := 0; j < sweeps; j++ {
			p, dp := LegendreEval(x, n)
			dx.Quo(p, dp)
			x.Sub(x, dx)
		}

		_, dp := LegendreEval(x, n)

		w := new(big.Float).SetPrec(prec).Mul(x, x)
		w.Sub(one, w)
		w.Mul(w, dp)
		w.Mul(w, dp)
		w.Quo(two, w)

		nodes[i] = x
		weights[i] = w
	}

	return
}

// NewtonSweeps returns the number of Newton sweeps needed to bring a float64
// root to prec bits, plus one guard sweep.
func NewtonSweeps(prec uint) (sweeps int) {
	sweeps = 1
	for bits := uint(seedBits); bits < prec; bits <<= 1 {
		sweeps++
	}
	return
}
