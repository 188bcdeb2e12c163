package store

import (
	"context"

	"github.com/viant/conduit/vector"
)

// Metadata keys recorded for every stored state.
const (
	MetaPhi     = "phi"
	MetaTau     = "tau"
	MetaRho     = "rho"
	MetaEntropy = "entropy"
	MetaDensity = "density"
)

// State is a stored, labelled vector.
type State struct {
	ID          string
	Name        string
	Vector      vector.Vector
	Metadata    map[string]float64
	Description string
}

// Neighbor is a query match, ordered by ascending Distance.
type Neighbor struct {
	Name        string
	Distance    float64
	Metadata    map[string]float64
	Description string
}

// Store is a persistent collection of states answering kNN queries.
type Store interface {
	// Seed validates the coordinates, computes metadata and inserts a new
	// state. Duplicate names are accepted.
	Seed(ctx context.Context, name string, phi, tau, rho, entropy float64, description string) (*State, error)

	// Count returns the number of stored states.
	Count(ctx context.Context) (int, error)

	// QueryVector returns up to k stored states nearest to v over the indexed
	// coordinates. k <= 0 yields an empty result.
	QueryVector(ctx context.Context, v vector.Vector, k int) ([]Neighbor, error)

	// FindNeighbors encodes the coordinates and delegates to QueryVector.
	FindNeighbors(ctx context.Context, phi, tau, rho, entropy float64, k int) ([]Neighbor, error)
}

// NewState encodes the coordinates and builds a State with its metadata.
func NewState(id, name string, phi, tau, rho, entropy float64, description string) (*State, error) {
	v, err := vector.Encode(phi, tau, rho, entropy)
	if err != nil {
		return nil, err
	}
	return &State{
		ID:          id,
		Name:        name,
		Vector:      v,
		Metadata:    metadataOf(v),
		Description: description,
	}, nil
}

func metadataOf(v vector.Vector) map[string]float64 {
	return map[string]float64{
		MetaPhi:     v.Phi(),
		MetaTau:     v.Tau(),
		MetaRho:     v.Rho(),
		MetaEntropy: v.Entropy(),
		MetaDensity: v.Density(),
	}
}

func neighborOf(s *State, distance float64) Neighbor {
	meta := make(map[string]float64, len(s.Metadata))
	for k, v := range s.Metadata {
		meta[k] = v
	}
	return Neighbor{Name: s.Name, Distance: distance, Metadata: meta, Description: s.Description}
}

func findNeighbors(ctx context.Context, s Store, phi, tau, rho, entropy float64, k int) ([]Neighbor, error) {
	v, err := vector.Encode(phi, tau, rho, entropy)
	if err != nil {
		return nil, err
	}
	return s.QueryVector(ctx, v, k)
}
