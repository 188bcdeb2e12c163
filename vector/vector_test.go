package vector

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	grid := []float64{0, 0.05, 0.25, 0.5, 0.9, 1}
	for _, phi := range grid {
		for _, tau := range grid {
			for _, rho := range grid {
				for _, h := range grid {
					v, err := Encode(phi, tau, rho, h)
					require.NoError(t, err)
					assert.Equal(t, [4]float64{phi, tau, rho, h}, v.Coordinates())
					assert.Equal(t, 0.0, v[Latent1])
					assert.Equal(t, 0.0, v[Latent2])
				}
			}
		}
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		in         [4]float64
		coordinate string
	}{
		{"phi negative", [4]float64{-0.1, 0.5, 0.5, 0.5}, "phi"},
		{"tau above one", [4]float64{0.5, 1.01, 0.5, 0.5}, "tau"},
		{"rho NaN", [4]float64{0.5, 0.5, math.NaN(), 0.5}, "rho"},
		{"entropy above one", [4]float64{0.5, 0.5, 0.5, 2}, "entropy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))
			var re *RangeError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.coordinate, re.Coordinate)
		})
	}
}

func TestDensity(t *testing.T) {
	phi, tau, rho := 0.9, 0.9, 0.9
	assert.Equal(t, phi*tau*rho, Density(phi, tau, rho))
	assert.Equal(t, 0.0, Density(0, 1, 1))
	phi, tau, rho = 0.95, 0.9, 0.95
	v := MustEncode(phi, tau, rho, 0.1)
	assert.Equal(t, phi*tau*rho, v.Density())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3))
	assert.Equal(t, 1.0, Clamp(7))
	assert.Equal(t, 0.3, Clamp(0.3))
	assert.Equal(t, 0.0, Clamp(math.NaN()))
	assert.Equal(t, 1.0, Clamp(math.Inf(1)))
	assert.Equal(t, 0.0, Clamp(math.Inf(-1)))
}

func TestMustEncode_Panics(t *testing.T) {
	assert.Panics(t, func() { MustEncode(2, 0, 0, 0) })
}
