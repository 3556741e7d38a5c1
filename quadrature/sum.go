package quadrature

import (
	"fmt"
)

// Integrand is implemented by integrands carrying their own evaluation,
// such as integrand.Function.
type Integrand interface {
	Eval(x float64) (y float64, err error)
}

// Sum returns sum w_i * f(x_i) over the nodes and weights of the rule.
// f.(type) can be either :
//   - func(float64) float64
//   - func(float64) (float64, error)
//   - func([]float64) []float64, applied once on a copy of the nodes
//   - Integrand
//
// An error returned by f is returned as is, and no partial sum is returned.
func (r Rule) Sum(f interface{}) (sum float64, err error) {

	switch f := f.(type) {
	case func(x float64) (y float64):

		for i, x := range r.Nodes {
			sum += r.Weights[i] * f(x)
		}

	case func(x float64) (y float64, err error):

		var y float64
		for i, x := range r.Nodes {
			if y, err = f(x); err != nil {
				return 0, err
			}
			sum += r.Weights[i] * y
		}

	case func(x []float64) (y []float64):

		y := f(append([]float64{}, r.Nodes...))

		if len(y) != len(r.Nodes) {
			return 0, fmt.Errorf("cannot Sum: %w: vectorized integrand returned %d values for %d nodes", ErrInvalidParameter, len(y), len(r.Nodes))
		}

		for i := range y {
			sum += r.Weights[i] * y[i]
		}

	case Integrand:

		var y float64
		for i, x := range r.Nodes {
			if y, err = f.Eval(x); err != nil {
				return 0, err
			}
			sum += r.Weights[i] * y
		}

	default:
		return 0, fmt.Errorf("cannot Sum: %w: invalid f.(type): valid types are func(float64) float64, func(float64) (float64, error), func([]float64) []float64 or Integrand but is %T", ErrInvalidParameter, f)
	}

	return
}
