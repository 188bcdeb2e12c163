package analysis

// Expected density band of a hypothesis case.
const (
	ExpectZero     = "zero"
	ExpectNearZero = "near_zero"
	ExpectVeryHigh = "very_high"
	ExpectModerate = "moderate"
)

// HypothesisCase is one state checked against the multiplicative hypothesis.
type HypothesisCase struct {
	Name                  string
	Phi, Tau, Rho         float64
	Expected              string
	MultiplicativeDensity float64
	AdditiveDensity       float64
	Matches               bool
}

// Hypothesis reports whether the multiplicative form explains every case.
type Hypothesis struct {
	Cases     []HypothesisCase
	Supported bool
}

// MultiplicativeHypothesis evaluates the canonical cases: near-zero
// integration or binding must give near-zero density, which only the
// multiplicative form satisfies.
func MultiplicativeHypothesis() Hypothesis {
	cases := []HypothesisCase{
		{Name: "Deep Anesthesia", Phi: 0.1, Tau: 0.05, Rho: 0.05, Expected: ExpectNearZero},
		{Name: "Flow State", Phi: 0.95, Tau: 0.9, Rho: 0.95, Expected: ExpectVeryHigh},
		{Name: "Zero Integration (No Perspective)", Phi: 0, Tau: 1, Rho: 1, Expected: ExpectZero},
		{Name: "Zero Binding (No Perspective)", Phi: 1, Tau: 1, Rho: 0, Expected: ExpectZero},
		{Name: "Partial Integration", Phi: 0.5, Tau: 0.9, Rho: 0.9, Expected: ExpectModerate},
	}
	supported := true
	for i := range cases {
		c := &cases[i]
		c.MultiplicativeDensity = Multiplicative(c.Phi, c.Tau, c.Rho)
		c.AdditiveDensity = Additive(c.Phi, c.Tau, c.Rho)
		c.Matches = matches(c.MultiplicativeDensity, c.Expected)
		supported = supported && c.Matches
	}
	return Hypothesis{Cases: cases, Supported: supported}
}

func matches(d float64, expected string) bool {
	switch expected {
	case ExpectZero, ExpectNearZero:
		return d < 0.01
	case ExpectVeryHigh:
		return d > 0.7
	case ExpectModerate:
		return d > 0.3 && d < 0.6
	}
	return false
}
