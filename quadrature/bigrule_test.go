package quadrature

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/gausslegendre/integrand"
	"github.com/tuneinsight/gausslegendre/utils/bignum"
)

func TestBigRule(t *testing.T) {

	prec := uint(128)

	params, err := NewParametersFromLiteral(ParametersLiteral{Order: 7})
	require.NoError(t, err)

	ref, err := NewBigRule(params, prec)
	require.NoError(t, err)

	t.Run("Reference", func(t *testing.T) {
		require.True(t, ref.IsReference())
		require.Equal(t, 7, ref.Order())
		require.Equal(t, prec, ref.Prec())

		sum := bignum.NewFloat(0, prec)
		for _, w := range ref.Weights {
			sum.Add(sum, w)
		}
		sum.Sub(sum, bignum.NewFloat(2, prec))
		d, _ := sum.Float64()
		require.InDelta(t, 0, d, 1e-35)
	})

	t.Run("Float64", func(t *testing.T) {
		rule := ref.Float64()
		float := newTestRule(t, 7)
		require.Equal(t, float.Order, rule.Order)
		require.True(t, rule.IsReference())
		for i := range rule.Nodes {
			require.InDelta(t, float.Nodes[i], rule.Nodes[i], 1e-15)
			require.InDelta(t, float.Weights[i], rule.Weights[i], 1e-15)
		}
	})

	t.Run("Monomial/x^6", func(t *testing.T) {
		f, err := integrand.Lookup("x^6")
		require.NoError(t, err)

		scaled, err := ref.Scale(bignum.NewFloat(1, prec), bignum.NewFloat(3, prec))
		require.NoError(t, err)
		require.False(t, scaled.IsReference())

		got, err := scaled.Sum(f)
		require.NoError(t, err)

		exact := bignum.NewFloat(2186, prec)
		exact.Quo(exact, bignum.NewFloat(7, prec))

		d, _ := new(big.Float).Sub(got, exact).Float64()
		require.InDelta(t, 0, d, 1e-30)
	})

	t.Run("Sample", func(t *testing.T) {
		f, err := integrand.Lookup(integrand.Sample)
		require.NoError(t, err)

		got, err := IntegrateBig(bignum.NewFloat(1, prec), bignum.NewFloat(3, prec), 7, prec, f)
		require.NoError(t, err)

		want, err := Integrate(1, 3, 7, f)
		require.NoError(t, err)

		gotf, _ := got.Float64()
		require.InDelta(t, want, gotf, 1e-9)
	})

	t.Run("IntegrandError", func(t *testing.T) {
		f, err := integrand.Lookup("log(x)")
		require.NoError(t, err)
		_, err = IntegrateBig(bignum.NewFloat(-1, prec), bignum.NewFloat(1, prec), 4, prec, f)
		require.True(t, errors.Is(err, integrand.ErrDomain))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := NewBigRule(params, 32)
		require.True(t, errors.Is(err, ErrInvalidParameter))

		_, err = ref.Sum(func(x float64) float64 { return x })
		require.True(t, errors.Is(err, ErrInvalidParameter))

		scaled, err := ref.Scale(bignum.NewFloat(0, prec), bignum.NewFloat(1, prec))
		require.NoError(t, err)
		_, err = scaled.Scale(bignum.NewFloat(0, prec), bignum.NewFloat(2, prec))
		require.True(t, errors.Is(err, ErrInvalidParameter))

		_, err = IntegrateBig(bignum.NewFloat(0, prec), bignum.NewFloat(1, prec), -2, prec, identityBig)
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})
}

func identityBig(x *big.Float) *big.Float {
	return x
}
