package quadrature

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/gausslegendre/integrand"
	"github.com/tuneinsight/gausslegendre/utils/sampling"
)

func newTestRule(t *testing.T, order int) *Rule {
	params, err := NewParametersFromLiteral(ParametersLiteral{Order: order})
	require.NoError(t, err)
	rule, err := NewRule(params)
	require.NoError(t, err)
	return rule
}

func TestScaleToInterval(t *testing.T) {

	nodes, weights, err := ComputeNodesWeights(7)
	require.NoError(t, err)

	t.Run("Identity", func(t *testing.T) {
		x, w, err := ScaleToInterval(-1, 1, nodes, weights)
		require.NoError(t, err)
		require.Equal(t, nodes, x)
		require.Equal(t, weights, w)
	})

	t.Run("WeightsSumToLength", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			a := sampling.RandFloat64(-10, 10)
			b := sampling.RandFloat64(-10, 10)
			_, w, err := ScaleToInterval(a, b, nodes, weights)
			require.NoError(t, err)
			var sum float64
			for _, wi := range w {
				sum += wi
			}
			require.InDelta(t, b-a, sum, 1e-12)
		}
	})

	t.Run("NodesInsideInterval", func(t *testing.T) {
		x, _, err := ScaleToInterval(1, 3, nodes, weights)
		require.NoError(t, err)
		for _, xi := range x {
			require.Greater(t, xi, 1.0)
			require.Less(t, xi, 3.0)
		}
	})

	t.Run("Degenerate", func(t *testing.T) {
		x, w, err := ScaleToInterval(2, 2, nodes, weights)
		require.NoError(t, err)
		for i := range w {
			require.Equal(t, 0.0, w[i])
			require.Equal(t, 2.0, x[i])
		}
	})

	t.Run("InputsUntouched", func(t *testing.T) {
		n0 := append([]float64{}, nodes...)
		w0 := append([]float64{}, weights...)
		_, _, err := ScaleToInterval(-4, 9, nodes, weights)
		require.NoError(t, err)
		require.Equal(t, n0, nodes)
		require.Equal(t, w0, weights)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, _, err := ScaleToInterval(math.NaN(), 1, nodes, weights)
		require.True(t, errors.Is(err, ErrInvalidParameter))
		_, _, err = ScaleToInterval(0, math.Inf(1), nodes, weights)
		require.True(t, errors.Is(err, ErrInvalidParameter))
		_, _, err = ScaleToInterval(0, 1, nodes, weights[1:])
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("Rule/Scale", func(t *testing.T) {
		rule := newTestRule(t, 7)
		scaled, err := rule.Scale(1, 3)
		require.NoError(t, err)
		require.Equal(t, 1.0, scaled.A)
		require.Equal(t, 3.0, scaled.B)
		require.False(t, scaled.IsReference())
		require.True(t, rule.IsReference())

		_, err = scaled.Scale(0, 1)
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})
}

func TestIntegrate(t *testing.T) {

	t.Run("Monomial/x^6", func(t *testing.T) {
		got, err := Integrate(1, 3, 7, func(x float64) float64 { return math.Pow(x, 6) })
		require.NoError(t, err)
		require.InDelta(t, 2186.0/7, got, 1e-9)
	})

	t.Run("Constant", func(t *testing.T) {
		got, err := Integrate(0, 1, 7, func(x float64) float64 { return 1.0 })
		require.NoError(t, err)
		require.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("Sample", func(t *testing.T) {
		f, err := integrand.Lookup(integrand.Sample)
		require.NoError(t, err)
		exact, ok := f.Exact(1, 3)
		require.True(t, ok)
		got, err := Integrate(1, 3, 7, f)
		require.NoError(t, err)
		require.InDelta(t, exact, got, 1e-6)
	})

	t.Run("Registry", func(t *testing.T) {
		for _, name := range integrand.Names() {
			f, err := integrand.Lookup(name)
			require.NoError(t, err)
			exact, ok := f.Exact(0.5, 2)
			if !ok {
				continue
			}
			got, err := Integrate(0.5, 2, 32, f)
			require.NoError(t, err, name)
			require.InDelta(t, exact, got, 1e-8, name)
		}
	})

	t.Run("ReversedBounds", func(t *testing.T) {
		f := func(x float64) float64 { return math.Exp(x) }
		forward, err := Integrate(1, 3, 9, f)
		require.NoError(t, err)
		backward, err := Integrate(3, 1, 9, f)
		require.NoError(t, err)
		require.InDelta(t, -forward, backward, 1e-12*math.Abs(forward))
	})

	t.Run("EmptyInterval", func(t *testing.T) {
		got, err := Integrate(2, 2, 5, func(x float64) float64 { return x * x })
		require.NoError(t, err)
		require.Equal(t, 0.0, got)
	})

	t.Run("Vectorized", func(t *testing.T) {
		f := func(x []float64) []float64 {
			y := make([]float64, len(x))
			for i := range x {
				y[i] = x[i] * x[i]
			}
			return y
		}
		got, err := Integrate(0, 3, 4, f)
		require.NoError(t, err)
		require.InDelta(t, 9.0, got, 1e-12)

		short := func(x []float64) []float64 { return x[1:] }
		_, err = Integrate(0, 3, 4, short)
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("Vectorized/NodesNotAliased", func(t *testing.T) {
		rule := newTestRule(t, 5)
		nodes := append([]float64{}, rule.Nodes...)
		_, err := rule.Sum(func(x []float64) []float64 {
			for i := range x {
				x[i] = 0
			}
			return x
		})
		require.NoError(t, err)
		require.Equal(t, nodes, rule.Nodes)
	})

	t.Run("IntegrandError/Verbatim", func(t *testing.T) {
		errBoom := errors.New("boom")
		calls := 0
		_, err := Integrate(0, 1, 7, func(x float64) (float64, error) {
			calls++
			if calls == 3 {
				return 0, errBoom
			}
			return x, nil
		})
		require.Equal(t, errBoom, err)
		require.Equal(t, 3, calls)
	})

	t.Run("IntegrandError/Domain", func(t *testing.T) {
		f, err := integrand.Lookup("log(x)")
		require.NoError(t, err)
		_, err = Integrate(-1, 1, 4, f)
		require.True(t, errors.Is(err, integrand.ErrDomain))
		require.False(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("InvalidIntegrand", func(t *testing.T) {
		_, err := Integrate(0, 1, 3, func(x int) int { return x })
		require.True(t, errors.Is(err, ErrInvalidParameter))
		_, err = Integrate(0, 1, 3, nil)
		require.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("InvalidOrder", func(t *testing.T) {
		got, err := Integrate(0, 1, 0, func(x float64) float64 { return x })
		require.True(t, errors.Is(err, ErrInvalidParameter))
		require.False(t, math.IsNaN(got))
	})
}

func TestRuleSerialization(t *testing.T) {

	rule, err := newTestRule(t, 9).Scale(1, 3)
	require.NoError(t, err)

	t.Run("MarshalBinary/UnmarshalBinary", func(t *testing.T) {
		data, err := rule.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, rule.BinarySize())

		other := new(Rule)
		require.NoError(t, other.UnmarshalBinary(data))
		require.True(t, rule.Equal(other))
		require.True(t, cmp.Equal(rule, other))
	})

	t.Run("WriteTo/ReadFrom", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := rule.WriteTo(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(rule.BinarySize()), n)

		other := new(Rule)
		_, err = other.ReadFrom(&buf)
		require.NoError(t, err)
		require.True(t, rule.Equal(other))
	})

	t.Run("UnmarshalBinary/Invalid", func(t *testing.T) {
		data, err := rule.MarshalBinary()
		require.NoError(t, err)

		// order set to zero
		corrupted := append([]byte{}, data...)
		copy(corrupted[:8], make([]byte, 8))
		require.True(t, errors.Is(new(Rule).UnmarshalBinary(corrupted), ErrInvalidParameter))

		// truncated weights
		require.Error(t, new(Rule).UnmarshalBinary(data[:len(data)-8]))

		// order does not match the vector lengths
		mismatch := append([]byte{}, data...)
		mismatch[0] = 3
		require.True(t, errors.Is(new(Rule).UnmarshalBinary(mismatch), ErrInvalidParameter))
	})

	t.Run("Digest", func(t *testing.T) {
		d0, err := rule.Digest()
		require.NoError(t, err)
		require.Len(t, d0, 32)

		d1, err := rule.CopyNew().Digest()
		require.NoError(t, err)
		require.Equal(t, d0, d1)

		other := rule.CopyNew()
		other.Weights[0] = math.Nextafter(other.Weights[0], 1)
		d2, err := other.Digest()
		require.NoError(t, err)
		require.NotEqual(t, d0, d2)
		require.False(t, rule.Equal(other))
	})

	t.Run("Digest/Deterministic", func(t *testing.T) {
		d0, err := newTestRule(t, 16).Digest()
		require.NoError(t, err)
		d1, err := newTestRule(t, 16).Digest()
		require.NoError(t, err)
		require.Equal(t, d0, d1)
	})

	t.Run("CopyNew", func(t *testing.T) {
		cpy := rule.CopyNew()
		cpy.Nodes[0] = 0
		require.NotEqual(t, rule.Nodes[0], cpy.Nodes[0])
	})
}
