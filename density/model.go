package density

import (
	"math"

	"github.com/viant/conduit/vector"
)

// Model names, in the order Recommend evaluates them.
const (
	ModelOriginal         = "original"
	ModelEntropyLinear    = "entropy_linear"
	ModelEntropyQuadratic = "entropy_quadratic"
	ModelEntropySqrt      = "entropy_sqrt"

	keyBaseDensity  = "base_density"
	keyEntropyValue = "entropy_value"
)

// Model computes a density from the four licensed coordinates.
type Model func(phi, tau, rho, entropy float64) (float64, error)

// Named pairs a model with its label.
type Named struct {
	Name  string
	Model Model
}

// Models lists the four models in evaluation order.
var Models = []Named{
	{ModelOriginal, Original},
	{ModelEntropyLinear, EntropyLinear},
	{ModelEntropyQuadratic, EntropyQuadratic},
	{ModelEntropySqrt, EntropySqrt},
}

// Original is phi*tau*rho; entropy is ignored.
func Original(phi, tau, rho, _ float64) (float64, error) {
	return vector.Density(phi, tau, rho), nil
}

// EntropyLinear is phi*tau*rho*max(0, 1-H).
func EntropyLinear(phi, tau, rho, entropy float64) (float64, error) {
	return vector.Density(phi, tau, rho) * math.Max(0, 1-entropy), nil
}

// EntropyQuadratic is phi*tau*rho*max(0, 1-H^2): forgiving at moderate
// entropy, harsh near 1.
func EntropyQuadratic(phi, tau, rho, entropy float64) (float64, error) {
	return vector.Density(phi, tau, rho) * math.Max(0, 1-entropy*entropy), nil
}

// EntropySqrt is phi*tau*rho*max(0, 1-sqrt(H)). Negative entropy is rejected.
func EntropySqrt(phi, tau, rho, entropy float64) (float64, error) {
	if entropy < 0 || math.IsNaN(entropy) {
		return 0, &vector.RangeError{Coordinate: "entropy", Value: entropy}
	}
	return vector.Density(phi, tau, rho) * math.Max(0, 1-math.Sqrt(entropy)), nil
}

// Comparison is a labeled mapping of every model's output plus the base
// product and the entropy it was evaluated at.
type Comparison map[string]float64

// Compare evaluates every model at the given coordinates.
func Compare(phi, tau, rho, entropy float64) (Comparison, error) {
	out := make(Comparison, len(Models)+2)
	for _, m := range Models {
		v, err := m.Model(phi, tau, rho, entropy)
		if err != nil {
			return nil, err
		}
		out[m.Name] = v
	}
	out[keyBaseDensity] = vector.Density(phi, tau, rho)
	out[keyEntropyValue] = entropy
	return out, nil
}

// BaseDensity returns the unmodulated product.
func (c Comparison) BaseDensity() float64 { return c[keyBaseDensity] }

// Entropy returns the entropy the comparison was evaluated at.
func (c Comparison) Entropy() float64 { return c[keyEntropyValue] }
