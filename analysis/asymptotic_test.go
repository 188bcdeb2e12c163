package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/conduit/vector"
)

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{0.01}, Linspace(0.01, 1, 1))

	xs := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)

	xs = Linspace(0.01, 1, 50)
	require.Len(t, xs, 50)
	assert.Equal(t, 0.01, xs[0])
	assert.Equal(t, 1.0, xs[49])
}

func TestGradient(t *testing.T) {
	got, err := Gradient(DefaultResolution)
	require.NoError(t, err)
	require.Len(t, got.Phi, DefaultResolution)
	require.Len(t, got.Multiplicative, DefaultResolution)
	require.Len(t, got.Additive, DefaultResolution)
	assert.Equal(t, FixedHigh, got.TauFixed)
	assert.Equal(t, FixedHigh, got.RhoFixed)

	assert.InDelta(t, 0.01*0.81, got.Multiplicative[0], 1e-12)
	assert.InDelta(t, (0.01+1.8)/3, got.Additive[0], 1e-12)
	assert.InDelta(t, 0.81, got.Multiplicative[DefaultResolution-1], 1e-12)
	for i := 1; i < len(got.Phi); i++ {
		assert.Greater(t, got.Multiplicative[i], got.Multiplicative[i-1])
	}

	single, err := Gradient(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01}, single.Phi)

	_, err = Gradient(0)
	assert.ErrorIs(t, err, vector.ErrInvalidArgument)
}

func TestCriticalThreshold(t *testing.T) {
	got := CriticalThreshold(0.01, FixedHigh)
	assert.InDelta(t, 0.01/0.81, got.Phi, 1e-12)
	assert.Equal(t, got.Phi, got.Tau)
	assert.Equal(t, got.Phi, got.Rho)
	assert.Equal(t, 0.01, got.Epsilon)
	assert.Contains(t, got.Interpretation, "0.0123")

	zero := CriticalThreshold(0.01, 0)
	assert.True(t, math.IsInf(zero.Phi, 1))
}

func TestGradientComparison(t *testing.T) {
	for _, variable := range []string{"phi", "tau", "rho"} {
		t.Run(variable, func(t *testing.T) {
			got, err := GradientComparison(variable)
			require.NoError(t, err)
			assert.Equal(t, variable, got.Variable)
			require.Len(t, got.Range, ComparisonResolution)
			require.Len(t, got.Densities, ComparisonResolution)
			assert.Equal(t, 0.0, got.Densities[0])
			assert.InDelta(t, 0.729, got.Densities[89], 0.002)
			assert.InDelta(t, 0.81, got.Densities[ComparisonResolution-1], 1e-12)
		})
	}

	_, err := GradientComparison("entropy")
	require.ErrorIs(t, err, vector.ErrInvalidArgument)
	var argErr *vector.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "variable", argErr.Argument)
}
