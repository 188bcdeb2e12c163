package density

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrCaseNotFound is returned by Recommend when a required case is missing.
	ErrCaseNotFound = errors.New("density: case not found")
	// ErrNoSeparation is returned by Recommend when every model scores the
	// high-density case at zero.
	ErrNoSeparation = errors.New("density: no model separates the cases")
)

// Markers identifying the high- and low-density cases in a result set.
const (
	HighDensityMarker = "Flow"
	LowDensityMarker  = "Panic"
)

// Case is a named point at which the models are evaluated.
type Case struct {
	Name    string
	Phi     float64
	Tau     float64
	Rho     float64
	Entropy float64
}

// CaseResult holds the model comparison for one case.
type CaseResult struct {
	State      string
	Params     string
	Comparison Comparison
}

// EntropyCases returns the canonical cases used to judge how models treat
// high-entropy states.
func EntropyCases() []Case {
	return []Case{
		{"Flow State (low entropy)", 0.95, 0.9, 0.95, 0.1},
		{"Panic Attack (high entropy)", 0.7, 0.1, 0.2, 0.95},
		{"Healthy Awake (moderate entropy)", 0.9, 0.9, 0.9, 0.1},
		{"Psychedelic (high integration, high entropy)", 0.9, 0.8, 0.9, 0.8},
		{"Deep Meditation (very low entropy)", 0.85, 0.95, 0.8, 0.05},
	}
}

// EvaluateCases compares every model on each case.
func EvaluateCases(cases []Case) ([]CaseResult, error) {
	out := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		cmp, err := Compare(c.Phi, c.Tau, c.Rho, c.Entropy)
		if err != nil {
			return nil, fmt.Errorf("density: case %q: %w", c.Name, err)
		}
		out = append(out, CaseResult{
			State:      c.Name,
			Params:     fmt.Sprintf("φ=%v, τ=%v, ρ=%v, H=%v", c.Phi, c.Tau, c.Rho, c.Entropy),
			Comparison: cmp,
		})
	}
	return out, nil
}

// Recommend picks the model that best separates the high-density case from
// the low-density case, maximizing high/low. A zero denominator scores +Inf
// unless the numerator is also zero, which scores 1. Ties keep the earlier
// model. When every ratio is zero no model is chosen and ErrNoSeparation is
// returned.
func Recommend(results []CaseResult) (string, float64, error) {
	high, err := findCase(results, HighDensityMarker)
	if err != nil {
		return "", 0, err
	}
	low, err := findCase(results, LowDensityMarker)
	if err != nil {
		return "", 0, err
	}
	best, bestRatio := "", 0.0
	for _, m := range Models {
		if r := ratio(high.Comparison[m.Name], low.Comparison[m.Name]); r > bestRatio {
			best, bestRatio = m.Name, r
		}
	}
	if best == "" {
		return "", 0, ErrNoSeparation
	}
	return best, bestRatio, nil
}

func ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	if num > 0 {
		return math.Inf(1)
	}
	return 1
}

func findCase(results []CaseResult, marker string) (*CaseResult, error) {
	for i := range results {
		if strings.Contains(results[i].State, marker) {
			return &results[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no state containing %q", ErrCaseNotFound, marker)
}
