package quadrature

import (
	"errors"
)

var (
	// ErrInvalidParameter is returned when an argument is outside of its domain,
	// for example an order smaller than one or a non-finite interval bound.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNonConvergence is returned when the Newton iteration on the Legendre
	// polynomial does not reach the tolerance within the allowed sweeps.
	ErrNonConvergence = errors.New("newton iteration did not converge")
)
