/*
Package quadrature implements Gauss-Legendre quadrature of one-dimensional functions.

A Gauss-Legendre rule of order N samples the integrand at the N roots of the
Legendre polynomial P_N and is exact for polynomials of degree up to 2N-1.
Rules are first generated on the reference interval [-1, 1] by a Newton
iteration on P_N, then affinely rescaled to the target interval [a, b].
*/
package quadrature

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the default bound on the largest Newton step
	// below which the node iteration is considered converged.
	DefaultTolerance = 1e-15

	// DefaultMaxIterations is the default maximum number of Newton sweeps.
	DefaultMaxIterations = 100

	// MaxOrder is the largest supported order. It also bounds the size of
	// the rules accepted by Rule.ReadFrom.
	MaxOrder = 4096
)

// ParametersLiteral is a literal representation of the parameters of a
// Gauss-Legendre rule. Zero values of Tolerance and MaxIterations are
// replaced by DefaultTolerance and DefaultMaxIterations.
type ParametersLiteral struct {
	Order         int
	Tolerance     float64
	MaxIterations int
}

// Parameters is a validated set of parameters of a Gauss-Legendre rule.
type Parameters struct {
	order         int
	tolerance     float64
	maxIterations int
}

// NewParametersFromLiteral instantiates a set of Parameters from a
// ParametersLiteral. It returns an error wrapping
// ErrInvalidParameter if the order is not in [1, MaxOrder], or if
// the tolerance or the iteration bound is not positive.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.Order < 1 || pl.Order > MaxOrder {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: order must be in [1, %d] but is %d", ErrInvalidParameter, MaxOrder, pl.Order)
	}

	if pl.Tolerance == 0 {
		pl.Tolerance = DefaultTolerance
	}

	if !(pl.Tolerance > 0) || math.IsInf(pl.Tolerance, 1) {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: tolerance must be positive and finite but is %v", ErrInvalidParameter, pl.Tolerance)
	}

	if pl.MaxIterations == 0 {
		pl.MaxIterations = DefaultMaxIterations
	}

	if pl.MaxIterations < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: max iterations must be positive but is %d", ErrInvalidParameter, pl.MaxIterations)
	}

	return Parameters{
		order:         pl.Order,
		tolerance:     pl.Tolerance,
		maxIterations: pl.MaxIterations,
	}, nil
}

// Order returns the number of nodes of the rule.
func (p Parameters) Order() int {
	return p.order
}

// Tolerance returns the convergence threshold of the Newton iteration.
func (p Parameters) Tolerance() float64 {
	return p.tolerance
}

// MaxIterations returns the maximum number of Newton sweeps.
func (p Parameters) MaxIterations() int {
	return p.maxIterations
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Order:         p.order,
		Tolerance:     p.tolerance,
		MaxIterations: p.maxIterations,
	}
}

// PolynomialDegree returns the largest degree 2N-1 integrated exactly.
func (p Parameters) PolynomialDegree() int {
	return 2*p.order - 1
}
