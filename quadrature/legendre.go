package quadrature

import (
	"fmt"
	"math"

	"github.com/tuneinsight/gausslegendre/utils"
)

// ComputeNodesWeights returns the nodes and weights of the Gauss-Legendre rule
// of the given order on [-1, 1], with the default tolerance and iteration bound.
// Nodes are sorted in increasing order and weights[i] is the weight of nodes[i].
func ComputeNodesWeights(order int) (nodes, weights []float64, err error) {

	var params Parameters
	if params, err = NewParametersFromLiteral(ParametersLiteral{Order: order}); err != nil {
		return nil, nil, fmt.Errorf("cannot ComputeNodesWeights: %w", err)
	}

	var rule *Rule
	if rule, err = NewRule(params); err != nil {
		return nil, nil, fmt.Errorf("cannot ComputeNodesWeights: %w", err)
	}

	return rule.Nodes, rule.Weights, nil
}

// NewRule generates the Gauss-Legendre rule on the reference interval [-1, 1].
func NewRule(params Parameters) (rule *Rule, err error) {

	var nodes, weights []float64
	if nodes, weights, err = gaussLegendre(params.order, params.tolerance, params.maxIterations); err != nil {
		return nil, fmt.Errorf("cannot NewRule: %w", err)
	}

	return &Rule{
		Order:   params.order,
		A:       -1,
		B:       1,
		Nodes:   nodes,
		Weights: weights,
	}, nil
}

// gaussLegendre seeds the N roots of P_N with the asymptotic approximation
//
//	x_k = cos(pi * a_k + 1/(8 N^2 tan(a_k))), a_k = (4k+3)/(4N+2)
//
// and refines them all together by Newton's method until the largest step
// is at most tol. The weights are w_k = 2 / ((1 - x_k^2) P_N'(x_k)^2).
func gaussLegendre(n int, tol float64, maxIterations int) (x, w []float64, err error) {

	N := float64(n)

	x = make([]float64, n)
	for k := range x {
		a := float64(4*k+3) / (4*N + 2)
		x[k] = math.Cos(math.Pi*a + 1/(8*N*N*math.Tan(a)))
	}

	delta := math.Inf(1)

	var sweeps int
	for sweeps = 0; sweeps < maxIterations && !(delta <= tol); sweeps++ {

		delta = 0

		for i, xi := range x {

			p, dp := legendre(xi, n)

			dx := p / dp
			x[i] = xi - dx

			// NaN is sticky so that a diverging node can never pass the check
			if d := math.Abs(dx); d > delta || math.IsNaN(d) {
				delta = d
			}
		}
	}

	if !(delta <= tol) {
		return nil, nil, fmt.Errorf("%w: order %d, last step %g after %d sweeps (tolerance %g)", ErrNonConvergence, n, delta, sweeps, tol)
	}

	w = make([]float64, n)
	for i, xi := range x {
		_, dp := legendre(xi, n)
		w[i] = 2 / ((1 - xi*xi) * dp * dp)
	}

	// The seed enumerates the roots from the largest to the smallest.
	utils.ReverseSliceInPlace(x)
	utils.ReverseSliceInPlace(w)

	return
}

// legendre returns P_n(x) and P_n'(x) for x in (-1, 1).
func legendre(x float64, n int) (p, dp float64) {

	p0, p1 := 1.0, x

	for k := 1; k < n; k++ {
		K := float64(k)
		p0, p1 = p1, ((2*K+1)*x*p1-K*p0)/(K+1)
	}

	return p1, float64(n) * (p0 - x*p1) / (1 - x*x)
}
