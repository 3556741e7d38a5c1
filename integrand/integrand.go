// Package integrand provides a registry of named scalar integrands, each with
// a float64 and an arbitrary precision evaluation and, where one is known, a
// closed-form antiderivative.
package integrand

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/gausslegendre/utils"
	"github.com/tuneinsight/gausslegendre/utils/bignum"
)

// ErrDomain is returned when an integrand is evaluated outside of its domain.
var ErrDomain = errors.New("point outside of the integrand domain")

// ErrUnknown is returned by Lookup for unregistered names.
var ErrUnknown = errors.New("unknown integrand")

// Function is a named integrand.
type Function struct {
	Name string

	// F is the float64 evaluation. It returns ErrDomain outside of the domain.
	F func(x float64) (float64, error)

	// Big is the arbitrary precision evaluation, carried out with the
	// precision of x.
	Big func(x *big.Float) (*big.Float, error)

	// Antiderivative is a closed-form primitive, or nil if none is registered.
	Antiderivative func(x float64) float64
}

// Eval evaluates the function at x.
func (f Function) Eval(x float64) (float64, error) {
	return f.F(x)
}

// EvalBig evaluates the function at x with the precision of x.
func (f Function) EvalBig(x *big.Float) (*big.Float, error) {
	if f.Big == nil {
		return nil, fmt.Errorf("integrand %q has no arbitrary precision evaluation", f.Name)
	}
	return f.Big(x)
}

// Exact returns the integral of f over [a, b] from its antiderivative.
// The second return value is false if f has no registered antiderivative.
func (f Function) Exact(a, b float64) (float64, bool) {
	if f.Antiderivative == nil {
		return 0, false
	}
	return f.Antiderivative(b) - f.Antiderivative(a), true
}

// Sample is the bundled example integrand f(x) = x^6 - x^2 sin(2x).
const Sample = "sample"

var functions = map[string]Function{}

func init() {

	register(Function{
		Name: Sample,
		F: func(x float64) (float64, error) {
			return math.Pow(x, 6) - x*x*math.Sin(2*x), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			prec := x.Prec()
			x2 := new(big.Float).SetPrec(prec).Mul(x, x)
			y := bignum.MonomialEval(x, monomial(6, prec))
			s := bignum.Sin(new(big.Float).SetPrec(prec).Mul(x, bignum.NewFloat(2, prec)))
			s.Mul(s, x2)
			return y.Sub(y, s), nil
		},
		// x^7/7 + x^2 cos(2x)/2 - x sin(2x)/2 - cos(2x)/4
		Antiderivative: func(x float64) float64 {
			s, c := math.Sincos(2 * x)
			return math.Pow(x, 7)/7 + x*x*c/2 - x*s/2 - c/4
		},
	})

	register(Function{
		Name: "x^6",
		F: func(x float64) (float64, error) {
			return math.Pow(x, 6), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			return bignum.MonomialEval(x, monomial(6, x.Prec())), nil
		},
		Antiderivative: func(x float64) float64 {
			return math.Pow(x, 7) / 7
		},
	})

	register(Function{
		Name: "one",
		F: func(x float64) (float64, error) {
			return 1, nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			return bignum.NewFloat(1, x.Prec()), nil
		},
		Antiderivative: func(x float64) float64 {
			return x
		},
	})

	register(Function{
		Name: "exp(x)",
		F: func(x float64) (float64, error) {
			return math.Exp(x), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			return bignum.Exp(x), nil
		},
		Antiderivative: math.Exp,
	})

	register(Function{
		Name: "log(x)",
		F: func(x float64) (float64, error) {
			if x <= 0 {
				return 0, fmt.Errorf("log(%v): %w", x, ErrDomain)
			}
			return math.Log(x), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			if x.Sign() <= 0 {
				return nil, fmt.Errorf("log(%v): %w", x, ErrDomain)
			}
			return bignum.Log(x), nil
		},
		Antiderivative: func(x float64) float64 {
			return x*math.Log(x) - x
		},
	})

	register(Function{
		Name: "tanh(x)",
		F: func(x float64) (float64, error) {
			return math.Tanh(x), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			return bignum.TanH(x), nil
		},
		Antiderivative: func(x float64) float64 {
			return math.Log(math.Cosh(x))
		},
	})

	register(Function{
		Name: "sinh(x)",
		F: func(x float64) (float64, error) {
			return math.Sinh(x), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			return bignum.SinH(x), nil
		},
		Antiderivative: math.Cosh,
	})

	register(Function{
		Name: "1/(1+x^2)",
		F: func(x float64) (float64, error) {
			return 1 / (1 + x*x), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			prec := x.Prec()
			y := new(big.Float).SetPrec(prec).Mul(x, x)
			y.Add(y, bignum.NewFloat(1, prec))
			return y.Quo(bignum.NewFloat(1, prec), y), nil
		},
		Antiderivative: math.Atan,
	})

	register(Function{
		Name: "sqrt(x)",
		F: func(x float64) (float64, error) {
			if x < 0 {
				return 0, fmt.Errorf("sqrt(%v): %w", x, ErrDomain)
			}
			return math.Sqrt(x), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			if x.Sign() < 0 {
				return nil, fmt.Errorf("sqrt(%v): %w", x, ErrDomain)
			}
			return new(big.Float).SetPrec(x.Prec()).Sqrt(x), nil
		},
		Antiderivative: func(x float64) float64 {
			return 2 * math.Pow(x, 1.5) / 3
		},
	})

	register(Function{
		Name: "x^2.5",
		F: func(x float64) (float64, error) {
			if x < 0 {
				return 0, fmt.Errorf("x^2.5 at %v: %w", x, ErrDomain)
			}
			return math.Pow(x, 2.5), nil
		},
		Big: func(x *big.Float) (*big.Float, error) {
			switch x.Sign() {
			case -1:
				return nil, fmt.Errorf("x^2.5 at %v: %w", x, ErrDomain)
			case 0:
				return new(big.Float).SetPrec(x.Prec()), nil
			}
			return bignum.Pow(x, bignum.NewFloat(2.5, x.Prec())), nil
		},
		Antiderivative: func(x float64) float64 {
			return math.Pow(x, 3.5) / 3.5
		},
	})
}

func register(f Function) {
	if _, ok := functions[f.Name]; ok {
		panic(fmt.Errorf("integrand %q registered twice", f.Name))
	}
	functions[f.Name] = f
}

// monomial returns the coefficients of x^d.
func monomial(d int, prec uint) (poly []*big.Float) {
	poly = make([]*big.Float, d+1)
	for i := range poly {
		poly[i] = bignum.NewFloat(0, prec)
	}
	poly[d].SetInt64(1)
	return
}

// Lookup returns the registered integrand with the given name.
func Lookup(name string) (Function, error) {
	f, ok := functions[name]
	if !ok {
		return Function{}, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f, nil
}

// Names returns the sorted names of the registered integrands.
func Names() []string {
	return utils.GetSortedKeys(functions)
}
