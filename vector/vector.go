package vector

import "math"

// Dimension is the length of an encoded state vector.
const Dimension = 6

// Indexed is the number of leading coordinates used for distance.
const Indexed = 4

// Coordinate indexes into a Vector.
const (
	Phi = iota
	Tau
	Rho
	Entropy
	Latent1
	Latent2
)

// Names of the four licensed coordinates, in vector order.
var coordinateNames = [Indexed]string{"phi", "tau", "rho", "entropy"}

// Vector is a structural state: integration (phi), temporal depth (tau),
// re-entrant binding (rho), entropy, and two reserved latent slots. It is a
// value type; operators return new vectors instead of mutating.
type Vector [Dimension]float64

// Encode packs the four coordinates into a Vector. Each input must lie in
// [0, 1]; the latent coordinates are zero.
func Encode(phi, tau, rho, entropy float64) (Vector, error) {
	in := [4]float64{phi, tau, rho, entropy}
	for i, v := range in {
		if !InRange(v) {
			return Vector{}, &RangeError{Coordinate: coordinateNames[i], Value: v}
		}
	}
	return Vector{phi, tau, rho, entropy, 0, 0}, nil
}

// MustEncode is like Encode but panics on invalid input. It is meant for
// literal coordinates known to be valid.
func MustEncode(phi, tau, rho, entropy float64) Vector {
	v, err := Encode(phi, tau, rho, entropy)
	if err != nil {
		panic(err)
	}
	return v
}

// Density returns phi*tau*rho.
func Density(phi, tau, rho float64) float64 {
	return phi * tau * rho
}

// InRange reports whether v lies in [0, 1]. NaN is out of range.
func InRange(v float64) bool {
	return v >= 0 && v <= 1
}

// Clamp limits v to [0, 1]. NaN maps to 0.
func Clamp(v float64) float64 {
	switch {
	case v < 0, math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func (v Vector) Phi() float64     { return v[Phi] }
func (v Vector) Tau() float64     { return v[Tau] }
func (v Vector) Rho() float64     { return v[Rho] }
func (v Vector) Entropy() float64 { return v[Entropy] }

// Density returns the multiplicative density of the vector.
func (v Vector) Density() float64 {
	return Density(v[Phi], v[Tau], v[Rho])
}

// Coordinates returns the four licensed coordinates.
func (v Vector) Coordinates() [4]float64 {
	return [4]float64{v[Phi], v[Tau], v[Rho], v[Entropy]}
}

// Embedding returns the coordinate subset the store indexes on.
func (v Vector) Embedding() []float32 {
	return []float32{float32(v[Phi]), float32(v[Tau]), float32(v[Rho]), float32(v[Entropy])}
}

// Valid reports whether all four licensed coordinates lie in [0, 1].
func (v Vector) Valid() bool {
	for i := 0; i < 4; i++ {
		if !InRange(v[i]) {
			return false
		}
	}
	return true
}

// CoordinateName returns the name of the coordinate at index i, or "" for the
// latent slots.
func CoordinateName(i int) string {
	if i < 0 || i >= len(coordinateNames) {
		return ""
	}
	return coordinateNames[i]
}
