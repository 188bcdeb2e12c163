package operator

import "github.com/viant/conduit/vector"

// shift returns a copy of v with coordinate i moved by delta and clamped.
func shift(v vector.Vector, i int, delta float64) vector.Vector {
	out := v
	out[i] = vector.Clamp(out[i] + delta)
	return out
}

// PerturbBinding modulates re-entrant binding (rho) by magnitude.
func PerturbBinding(v vector.Vector, magnitude float64) vector.Vector {
	return shift(v, vector.Rho, magnitude)
}

// FractureIntegration reduces structural integration (phi); a positive
// magnitude lowers phi.
func FractureIntegration(v vector.Vector, magnitude float64) vector.Vector {
	return shift(v, vector.Phi, -magnitude)
}

// StretchTemporalDepth modulates temporal depth (tau) by magnitude.
func StretchTemporalDepth(v vector.Vector, magnitude float64) vector.Vector {
	return shift(v, vector.Tau, magnitude)
}

// InjectEntropy raises entropy by magnitude.
func InjectEntropy(v vector.Vector, magnitude float64) vector.Vector {
	return shift(v, vector.Entropy, magnitude)
}
