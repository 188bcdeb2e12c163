package operator

import (
	"fmt"

	"github.com/viant/conduit/vector"
)

// bifurcationFactor is the share of phi each branch keeps after a split.
const bifurcationFactor = 0.6

// Result is the output of an operator: one or more vectors and an optional
// description of the modeled regime. The first vector is the designated
// continuation for iterated application.
type Result struct {
	Vectors     []vector.Vector
	Description string
}

// Vector returns the designated continuation vector.
func (r Result) Vector() vector.Vector {
	if len(r.Vectors) == 0 {
		return vector.Vector{}
	}
	return r.Vectors[0]
}

func scale(v float64, factor float64) float64 {
	return vector.Clamp(v * factor)
}

// Progression models a regime where temporal depth decays fastest: tau drops
// by up to 90%, phi by 50%, rho by 30%, and entropy rises by up to 0.4.
func Progression(v vector.Vector, p float64) Result {
	out := v
	out[vector.Tau] = scale(out[vector.Tau], 1-p*0.9)
	out[vector.Phi] = scale(out[vector.Phi], 1-p*0.5)
	out[vector.Rho] = scale(out[vector.Rho], 1-p*0.3)
	out[vector.Entropy] = vector.Clamp(out[vector.Entropy] + p*0.4)
	return Result{
		Vectors:     []vector.Vector{out},
		Description: fmt.Sprintf("progression %.1f: temporal depth eroded, present-moment binding retained", p),
	}
}

// Bifurcation splits one state into two lower-integration states; each keeps
// 60% of phi while tau and rho are preserved.
func Bifurcation(v vector.Vector) Result {
	left, right := v, v
	left[vector.Phi] = scale(v[vector.Phi], bifurcationFactor)
	right[vector.Phi] = scale(v[vector.Phi], bifurcationFactor)
	return Result{
		Vectors:     []vector.Vector{left, right},
		Description: "bifurcation: one state becomes two, each with lower integration than the whole",
	}
}

// DepthGradient moves all four coordinates toward zero as depth increases:
// rho collapses first, then entropy, tau and phi.
func DepthGradient(v vector.Vector, depth float64) Result {
	out := v
	out[vector.Rho] = scale(out[vector.Rho], 1-depth)
	out[vector.Tau] = scale(out[vector.Tau], 1-depth*0.8)
	out[vector.Phi] = scale(out[vector.Phi], 1-depth*0.7)
	out[vector.Entropy] = scale(out[vector.Entropy], 1-depth*0.9)
	return Result{
		Vectors:     []vector.Vector{out},
		Description: fmt.Sprintf("depth %.2f: binding collapsed, density approaches zero asymptotically", depth),
	}
}

// Identity returns v unchanged: internal coordinates are preserved even when
// the state is externally unobservable.
func Identity(v vector.Vector) Result {
	return Result{
		Vectors:     []vector.Vector{v},
		Description: "identity: topology intact, only the output interface is severed",
	}
}

// FlowInduction raises phi, tau and rho and suppresses entropy.
func FlowInduction(v vector.Vector, intensity float64) Result {
	out := v
	out[vector.Phi] = vector.Clamp(out[vector.Phi] + intensity*0.3)
	out[vector.Tau] = vector.Clamp(out[vector.Tau] + intensity*0.2)
	out[vector.Rho] = vector.Clamp(out[vector.Rho] + intensity*0.25)
	out[vector.Entropy] = vector.Clamp(out[vector.Entropy] - intensity*0.6)
	return Result{
		Vectors:     []vector.Vector{out},
		Description: fmt.Sprintf("flow (intensity %.2f): high density, extended temporal binding, low entropy", intensity),
	}
}

// PanicInduction collapses tau and rho, lowers phi and spikes entropy.
func PanicInduction(v vector.Vector, severity float64) Result {
	out := v
	out[vector.Phi] = vector.Clamp(out[vector.Phi] - severity*0.3)
	out[vector.Tau] = vector.Clamp(out[vector.Tau] - severity*0.8)
	out[vector.Rho] = vector.Clamp(out[vector.Rho] - severity*0.7)
	out[vector.Entropy] = vector.Clamp(out[vector.Entropy] + severity*0.9)
	return Result{
		Vectors:     []vector.Vector{out},
		Description: fmt.Sprintf("panic (severity %.2f): high entropy, collapsed temporal depth, weakened binding", severity),
	}
}
