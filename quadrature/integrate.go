package quadrature

import (
	"fmt"
	"math/big"
)

// Integrate approximates the integral of f over [a, b] with the
// Gauss-Legendre rule of the given order.
// See Rule.Sum for the accepted types of f. Errors returned by f are
// returned as is.
func Integrate(a, b float64, order int, f interface{}) (float64, error) {

	params, err := NewParametersFromLiteral(ParametersLiteral{Order: order})
	if err != nil {
		return 0, fmt.Errorf("cannot Integrate: %w", err)
	}

	ref, err := NewRule(params)
	if err != nil {
		return 0, fmt.Errorf("cannot Integrate: %w", err)
	}

	return integrate(ref, a, b, f)
}

func integrate(ref *Rule, a, b float64, f interface{}) (float64, error) {

	rule, err := ref.Scale(a, b)
	if err != nil {
		return 0, fmt.Errorf("cannot Integrate: %w", err)
	}

	return rule.Sum(f)
}

// IntegrateBig is the arbitrary precision counterpart of Integrate: the rule
// is refined to prec bits and f is evaluated on *big.Float.
// See BigRule.Sum for the accepted types of f.
func IntegrateBig(a, b *big.Float, order int, prec uint, f interface{}) (*big.Float, error) {

	params, err := NewParametersFromLiteral(ParametersLiteral{Order: order})
	if err != nil {
		return nil, fmt.Errorf("cannot IntegrateBig: %w", err)
	}

	ref, err := NewBigRule(params, prec)
	if err != nil {
		return nil, fmt.Errorf("cannot IntegrateBig: %w", err)
	}

	rule, err := ref.Scale(a, b)
	if err != nil {
		return nil, fmt.Errorf("cannot IntegrateBig: %w", err)
	}

	return rule.Sum(f)
}
