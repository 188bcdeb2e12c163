package analysis

import (
	"fmt"
	"math"

	"github.com/viant/conduit/vector"
)

const (
	// FixedHigh is the value held by the non-swept coordinates.
	FixedHigh = 0.9
	// ComparisonResolution is the sample count of GradientComparison.
	ComparisonResolution = 100
	// DefaultResolution is the sample count used by Gradient callers that do
	// not choose one.
	DefaultResolution = 50

	gradientStart = 0.01
	gradientEnd   = 1.0
)

// Multiplicative is phi*tau*rho: density vanishes as any coordinate does.
func Multiplicative(phi, tau, rho float64) float64 {
	return vector.Density(phi, tau, rho)
}

// Additive is the mean (phi+tau+rho)/3, the null hypothesis.
func Additive(phi, tau, rho float64) float64 {
	return (phi + tau + rho) / 3
}

// Linspace returns n evenly spaced samples over [start, end]. For n == 1 it
// returns [start].
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}

// GradientResult holds parallel multiplicative and additive densities for a
// phi sweep.
type GradientResult struct {
	Phi            []float64
	Multiplicative []float64
	Additive       []float64
	TauFixed       float64
	RhoFixed       float64
}

// Gradient sweeps phi over [0.01, 1] with tau and rho fixed at 0.9.
func Gradient(resolution int) (*GradientResult, error) {
	if resolution < 1 {
		return nil, &vector.InvalidArgumentError{Argument: "resolution", Value: resolution, Reason: "must be positive"}
	}
	phis := Linspace(gradientStart, gradientEnd, resolution)
	out := &GradientResult{
		Phi:            phis,
		Multiplicative: make([]float64, len(phis)),
		Additive:       make([]float64, len(phis)),
		TauFixed:       FixedHigh,
		RhoFixed:       FixedHigh,
	}
	for i, phi := range phis {
		out.Multiplicative[i] = Multiplicative(phi, FixedHigh, FixedHigh)
		out.Additive[i] = Additive(phi, FixedHigh, FixedHigh)
	}
	return out, nil
}

// Thresholds are the per-coordinate values below which density falls under
// Epsilon while the other two coordinates are held at the fixed value.
type Thresholds struct {
	Phi            float64
	Tau            float64
	Rho            float64
	Epsilon        float64
	Interpretation string
}

// CriticalThreshold solves epsilon = x * fixedHigh^2 for each coordinate. The
// formula is symmetric, so all three thresholds are equal. A zero fixedHigh
// yields +Inf.
func CriticalThreshold(epsilon, fixedHigh float64) Thresholds {
	denom := fixedHigh * fixedHigh
	x := math.Inf(1)
	if denom != 0 {
		x = epsilon / denom
	}
	return Thresholds{
		Phi:     x,
		Tau:     x,
		Rho:     x,
		Epsilon: epsilon,
		Interpretation: fmt.Sprintf("below φ=%.4f (with τ=ρ=%v), density < %v (effectively zero)",
			x, fixedHigh, epsilon),
	}
}

// Sweep is a single-coordinate density sweep.
type Sweep struct {
	Variable  string
	Range     []float64
	Densities []float64
}

// GradientComparison sweeps the named coordinate ("phi", "tau" or "rho")
// over [0, 1] with the other two held at 0.9.
func GradientComparison(variable string) (*Sweep, error) {
	var at func(x float64) float64
	switch variable {
	case "phi":
		at = func(x float64) float64 { return Multiplicative(x, FixedHigh, FixedHigh) }
	case "tau":
		at = func(x float64) float64 { return Multiplicative(FixedHigh, x, FixedHigh) }
	case "rho":
		at = func(x float64) float64 { return Multiplicative(FixedHigh, FixedHigh, x) }
	default:
		return nil, &vector.InvalidArgumentError{Argument: "variable", Value: variable, Reason: "want phi, tau or rho"}
	}
	xs := Linspace(0, 1, ComparisonResolution)
	out := &Sweep{Variable: variable, Range: xs, Densities: make([]float64, len(xs))}
	for i, x := range xs {
		out.Densities[i] = at(x)
	}
	return out, nil
}
