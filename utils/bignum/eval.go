package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i].
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {
	n := len(poly) - 1
	y = new(big.Float).SetPrec(x.Prec())
	if n < 0 {
		return
	}
	y.Set(poly[n])
	for i := n - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}
	return
}

// LegendreEval evaluates the Legendre polynomial P_n and its derivative at x
// with the three-term recurrence
//
//	P_0 = 1, P_1 = x, P_{k+1} = ((2k+1) x P_k - k P_{k-1}) / (k+1)
//
// and P_n'(x) = n (P_{n-1}(x) - x P_n(x)) / (1 - x^2).
// x must lie strictly inside (-1, 1) and n must be at least 1.
func LegendreEval(x *big.Float, n int) (p, dp *big.Float) {

	prec := x.Prec()

	p0 := NewFloat(1, prec)
	p1 := new(big.Float).SetPrec(prec).Set(x)

	u := new(big.Float).SetPrec(prec)

	for k := 1; k < n; k++ {
		p2 := new(big.Float).SetPrec(prec).Mul(x, p1)
		p2.Mul(p2, NewFloat(2*k+1, prec))
		u.Mul(NewFloat(k, prec), p0)
		p2.Sub(p2, u)
		p2.Quo(p2, NewFloat(k+1, prec))
		p0, p1 = p1, p2
	}

	dp = new(big.Float).SetPrec(prec).Mul(x, p1)
	dp.Sub(p0, dp)
	dp.Mul(dp, NewFloat(n, prec))

	u.Mul(x, x)
	u.Sub(NewFloat(1, prec), u)
	dp.Quo(dp, u)

	return p1, dp
}
