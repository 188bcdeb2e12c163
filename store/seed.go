package store

import (
	"context"
	"fmt"
)

// Anchor is a seed state definition.
type Anchor struct {
	Name          string
	Phi, Tau, Rho float64
	Entropy       float64
	Description   string
}

// Anchors returns the liminal cases that bound the space.
func Anchors() []Anchor {
	return []Anchor{
		{Name: "Healthy Awake", Phi: 0.9, Tau: 0.9, Rho: 0.9, Entropy: 0.1, Description: "Baseline integrated consciousness"},
		{Name: "Deep Anesthesia", Phi: 0.1, Tau: 0.05, Rho: 0.05, Entropy: 0.0, Description: "Near-zero consciousness"},
		{Name: "Panic Attack", Phi: 0.7, Tau: 0.1, Rho: 0.2, Entropy: 0.95, Description: "High entropy, low temporal depth, weak binding"},
		{Name: "Flow State", Phi: 0.95, Tau: 0.9, Rho: 0.95, Entropy: 0.1, Description: "Maximum integration and binding, low noise"},
		{Name: "Dissociation", Phi: 0.4, Tau: 0.6, Rho: 0.3, Entropy: 0.5, Description: "Fractured integration, moderate binding"},
		{Name: "Deep Meditation", Phi: 0.85, Tau: 0.95, Rho: 0.8, Entropy: 0.05, Description: "High temporal depth, very low entropy"},
	}
}

// AnchorByName returns the named seed state.
func AnchorByName(name string) (Anchor, bool) {
	for _, a := range Anchors() {
		if a.Name == name {
			return a, true
		}
	}
	return Anchor{}, false
}

// SeedDefaults loads the anchors into an empty store and returns how many
// states were inserted. A non-empty store is left untouched.
func SeedDefaults(ctx context.Context, s Store) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	anchors := Anchors()
	for i, a := range anchors {
		if _, err := s.Seed(ctx, a.Name, a.Phi, a.Tau, a.Rho, a.Entropy, a.Description); err != nil {
			return i, fmt.Errorf("store: seed %q: %w", a.Name, err)
		}
	}
	return len(anchors), nil
}
