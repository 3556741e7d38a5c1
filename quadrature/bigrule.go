package quadrature

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/gausslegendre/utils/bignum"
)

// MinPrec is the smallest precision, in bits, accepted by NewBigRule.
const MinPrec = 53

// BigIntegrand is implemented by integrands with an arbitrary precision
// evaluation, such as integrand.Function.
type BigIntegrand interface {
	EvalBig(x *big.Float) (y *big.Float, err error)
}

// BigRule is the arbitrary precision counterpart of Rule.
// The embedded Interval stores the order of the rule and its domain [A, B];
// the precision of the rule is the precision of A.
type BigRule struct {
	bignum.Interval
	Nodes   []*big.Float
	Weights []*big.Float
}

// NewBigRule generates the Gauss-Legendre rule on [-1, 1] with prec bits of
// precision. The float64 rule is computed first and its nodes are then
// polished by bignum.GaussLegendre.
func NewBigRule(params Parameters, prec uint) (rule *BigRule, err error) {

	if prec < MinPrec {
		return nil, fmt.Errorf("cannot NewBigRule: %w: precision must be at least %d bits but is %d", ErrInvalidParameter, MinPrec, prec)
	}

	var seed *Rule
	if seed, err = NewRule(params); err != nil {
		return nil, fmt.Errorf("cannot NewBigRule: %w", err)
	}

	nodes, weights := bignum.GaussLegendre(seed.Nodes, prec)

	return &BigRule{
		Interval: bignum.NewInterval(-1, 1, params.order, prec),
		Nodes:    nodes,
		Weights:  weights,
	}, nil
}

// Prec returns the precision of the rule in bits.
func (r *BigRule) Prec() uint {
	return r.A.Prec()
}

// Order returns the number of nodes of the rule.
func (r *BigRule) Order() int {
	return r.Interval.Nodes
}

// IsReference returns true if the rule is defined on [-1, 1].
func (r *BigRule) IsReference() bool {
	return r.A.Cmp(big.NewFloat(-1)) == 0 && r.B.Cmp(big.NewFloat(1)) == 0
}

// Float64 rounds the rule to a float64 Rule.
func (r *BigRule) Float64() *Rule {

	rule := &Rule{
		Order:   r.Order(),
		Nodes:   make([]float64, len(r.Nodes)),
		Weights: make([]float64, len(r.Weights)),
	}

	rule.A, _ = r.A.Float64()
	rule.B, _ = r.B.Float64()

	for i := range r.Nodes {
		rule.Nodes[i], _ = r.Nodes[i].Float64()
		rule.Weights[i], _ = r.Weights[i].Float64()
	}

	return rule
}

// Scale returns a new rule mapping the reference rule r onto [a, b],
// with x' = (b-a)/2 * x + (b+a)/2 and w' = (b-a)/2 * w.
func (r *BigRule) Scale(a, b *big.Float) (*BigRule, error) {

	if !r.IsReference() {
		return nil, fmt.Errorf("cannot Scale: %w: rule is not defined on [-1, 1]", ErrInvalidParameter)
	}

	if a == nil || b == nil || a.IsInf() || b.IsInf() {
		return nil, fmt.Errorf("cannot Scale: %w: bounds must be finite", ErrInvalidParameter)
	}

	prec := r.Prec()

	inter := bignum.Interval{Nodes: r.Order()}
	inter.A.SetPrec(prec).Set(a)
	inter.B.SetPrec(prec).Set(b)

	scale, shift := inter.Affine()

	nodes := make([]*big.Float, len(r.Nodes))
	weights := make([]*big.Float, len(r.Weights))

	for i := range r.Nodes {
		nodes[i] = new(big.Float).SetPrec(prec).Mul(scale, r.Nodes[i])
		nodes[i].Add(nodes[i], shift)
		weights[i] = new(big.Float).SetPrec(prec).Mul(scale, r.Weights[i])
	}

	return &BigRule{
		Interval: inter,
		Nodes:    nodes,
		Weights:  weights,
	}, nil
}

// Sum returns sum w_i * f(x_i) with the precision of the rule.
// f.(type) can be either :
//   - func(*big.Float) *big.Float
//   - func(*big.Float) (*big.Float, error)
//   - BigIntegrand
//
// f receives a copy of each node. An error returned by f is returned as is.
func (r *BigRule) Sum(f interface{}) (sum *big.Float, err error) {

	var g func(x *big.Float) (*big.Float, error)

	switch f := f.(type) {
	case func(x *big.Float) (y *big.Float):
		g = func(x *big.Float) (*big.Float, error) {
			return f(x), nil
		}
	case func(x *big.Float) (y *big.Float, err error):
		g = f
	case BigIntegrand:
		g = f.EvalBig
	default:
		return nil, fmt.Errorf("cannot Sum: %w: invalid f.(type): valid types are func(*big.Float) *big.Float, func(*big.Float) (*big.Float, error) or BigIntegrand but is %T", ErrInvalidParameter, f)
	}

	prec := r.Prec()

	sum = new(big.Float).SetPrec(prec)
	tmp := new(big.Float).SetPrec(prec)

	var y *big.Float
	for i := range r.Nodes {
		if y, err = g(new(big.Float).Set(r.Nodes[i])); err != nil {
			return nil, err
		}
		tmp.Mul(r.Weights[i], y)
		sum.Add(sum, tmp)
	}

	return
}
