package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)
	testFunc1("SinH", 1.4142135623730951, math.Sinh, SinH, 1e-15, t)
	testFunc1("TanH", 1.4142135623730951, math.Tanh, TanH, 1e-15, t)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53), NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}

func TestMonomialEval(t *testing.T) {
	prec := uint(128)

	// 1 - 2x + 3x^2 at x = 1.5 is 4.75
	poly := []*big.Float{NewFloat(1, prec), NewFloat(-2, prec), NewFloat(3, prec)}
	y, _ := MonomialEval(NewFloat(1.5, prec), poly).Float64()
	require.Equal(t, 4.75, y)

	y, _ = MonomialEval(NewFloat(1.5, prec), poly[:1]).Float64()
	require.Equal(t, 1.0, y)

	y, _ = MonomialEval(NewFloat(1.5, prec), nil).Float64()
	require.Equal(t, 0.0, y)
}

func TestInterval(t *testing.T) {
	inter := NewInterval(1, 3, 7, 128)
	require.Equal(t, 7, inter.Nodes)
	scale, shift := inter.Affine()
	s, _ := scale.Float64()
	c, _ := shift.Float64()
	require.Equal(t, 1.0, s)
	require.Equal(t, 2.0, c)
}

func TestSinCos(t *testing.T) {

	t.Run("RangeReduction", func(t *testing.T) {
		for _, x := range []float64{-100, -7.5, 0, 3.141592653589793, 42} {
			s, _ := Sin(NewFloat(x, 256)).Float64()
			c, _ := Cos(NewFloat(x, 256)).Float64()
			require.InDelta(t, math.Sin(x), s, 1e-15)
			require.InDelta(t, math.Cos(x), c, 1e-15)
		}
	})

	t.Run("Pythagoras/Prec=512", func(t *testing.T) {
		prec := uint(512)
		x := NewFloat(2.75, prec)
		s, c := Sin(x), Cos(x)
		s.Mul(s, s)
		c.Mul(c, c)
		s.Add(s, c)
		s.Sub(s, NewFloat(1, prec))
		d, _ := s.Float64()
		require.InDelta(t, 0, d, 1e-150)
		require.Equal(t, prec, c.Prec())
	})
}
