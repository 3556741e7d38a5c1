// Package bignum implements arbitrary precision arithmetic helpers on top of math/big,
// including the high-precision refinement of Gauss-Legendre rules.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// guardBits is the number of extra bits carried by the series evaluations.
const guardBits = 32

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, float64 or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float).SetPrec(prec)

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case float64:
		y.SetFloat64(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, float64 or *big.Float but is %T", x))
	}

	return
}

// Cos returns cos(x) with the precision of x.
func Cos(x *big.Float) (cosx *big.Float) {
	_, cosx = sinCos(x)
	return
}

// Sin returns sin(x) with the precision of x.
func Sin(x *big.Float) (sinx *big.Float) {
	sinx, _ = sinCos(x)
	return
}

// sinCos reduces x modulo 2*Pi and sums the Taylor series of sin and cos
// together, until the terms fall below 2^-(prec+guardBits).
func sinCos(x *big.Float) (sinx, cosx *big.Float) {

	prec := x.Prec()
	wp := prec + guardBits

	twoPi := Pi(wp)
	twoPi.Mul(twoPi, NewFloat(2, wp))

	r := new(big.Float).SetPrec(wp).Set(x)

	k, _ := new(big.Float).SetPrec(wp).Quo(r, twoPi).Int(nil)
	if k.Sign() != 0 {
		r.Sub(r, new(big.Float).SetPrec(wp).Mul(twoPi, new(big.Float).SetInt(k)))
	}

	eps := new(big.Float).SetMantExp(NewFloat(1, wp), -int(wp))

	sinx = new(big.Float).SetPrec(wp)
	cosx = new(big.Float).SetPrec(wp)

	term := NewFloat(1, wp)
	abs := new(big.Float).SetPrec(wp)

	// term = r^n / n!, added with the sign pattern +cos, +sin, -cos, -sin
	for n := 0; ; n++ {

		switch n & 3 {
		case 0:
			cosx.Add(cosx, term)
		case 1:
			sinx.Add(sinx, term)
		case 2:
			cosx.Sub(cosx, term)
		case 3:
			sinx.Sub(sinx, term)
		}

		term.Mul(term, r)
		term.Quo(term, NewFloat(n+1, wp))

		if n > 1 && abs.Abs(term).Cmp(eps) < 0 {
			break
		}
	}

	return sinx.SetPrec(prec), cosx.SetPrec(prec)
}

// Log return ln(x) with 2^precisions bits.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with 2^precisions bits.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// SinH returns (e^x - e^-x)/2 with the precision of x.
func SinH(x *big.Float) (sinh *big.Float) {
	prec := x.Prec()
	ex := Exp(x)
	sinh = new(big.Float).SetPrec(prec).Quo(NewFloat(1, prec), ex)
	sinh.Sub(ex, sinh)
	return sinh.Quo(sinh, NewFloat(2, prec))
}

// TanH returns (e^2x - 1)/(e^2x + 1) with the precision of x.
func TanH(x *big.Float) (tanh *big.Float) {
	prec := x.Prec()
	e2x := Exp(new(big.Float).SetPrec(prec).Add(x, x))
	den := new(big.Float).SetPrec(prec).Add(e2x, NewFloat(1, prec))
	tanh = e2x.Sub(e2x, NewFloat(1, prec))
	return tanh.Quo(tanh, den)
}
