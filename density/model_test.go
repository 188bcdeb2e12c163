package density

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/conduit/vector"
)

func TestOriginal_IsProductAndEntropyInvariant(t *testing.T) {
	grid := []float64{0, 0.1, 0.33, 0.5, 0.77, 1}
	for _, phi := range grid {
		for _, tau := range grid {
			for _, rho := range grid {
				want := phi * tau * rho
				for _, h := range grid {
					got, err := Original(phi, tau, rho, h)
					require.NoError(t, err)
					assert.Equal(t, want, got)
				}
			}
		}
	}
}

func TestModels_CoincideAtZeroEntropy(t *testing.T) {
	cmp, err := Compare(0.9, 0.8, 0.7, 0)
	require.NoError(t, err)
	base := 0.9 * 0.8 * 0.7
	for _, m := range Models {
		assert.Equal(t, base, cmp[m.Name], m.Name)
	}
	assert.Equal(t, base, cmp.BaseDensity())
}

func TestModels_VanishAtFullEntropy(t *testing.T) {
	cmp, err := Compare(0.9, 0.8, 0.7, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cmp[ModelEntropyLinear])
	assert.Equal(t, 0.0, cmp[ModelEntropyQuadratic])
	assert.Equal(t, 0.0, cmp[ModelEntropySqrt])
	assert.Equal(t, 0.9*0.8*0.7, cmp[ModelOriginal])
	assert.Equal(t, 1.0, cmp.Entropy())
}

func TestModels_NotUniformlyOrdered(t *testing.T) {
	// At moderate entropy quadratic > linear > sqrt.
	cmp, err := Compare(1, 1, 1, 0.25)
	require.NoError(t, err)
	assert.Greater(t, cmp[ModelEntropyQuadratic], cmp[ModelEntropyLinear])
	assert.Greater(t, cmp[ModelEntropyLinear], cmp[ModelEntropySqrt])

	// Beyond entropy 1 the quadratic factor clamps to zero first.
	lin, _ := EntropyLinear(1, 1, 1, 1.2)
	quad, _ := EntropyQuadratic(1, 1, 1, 1.2)
	assert.Equal(t, 0.0, lin)
	assert.Equal(t, 0.0, quad)
}

func TestEntropySqrt_NegativeEntropy(t *testing.T) {
	_, err := EntropySqrt(0.5, 0.5, 0.5, -0.01)
	require.Error(t, err)
	assert.True(t, errors.Is(err, vector.ErrOutOfRange))

	_, err = Compare(0.5, 0.5, 0.5, -0.01)
	assert.Error(t, err)

	_, err = EntropySqrt(0.5, 0.5, 0.5, math.NaN())
	assert.Error(t, err)
}
