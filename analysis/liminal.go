package analysis

import (
	"context"
	"sort"

	"github.com/viant/conduit/store"
)

// Midpoint coordinates and fan-out of the liminal-state survey.
const (
	liminalMidpoint = 0.5
	liminalK        = 20
)

// LiminalState is a stored state with its density and distance from the
// midpoint of the space.
type LiminalState struct {
	Name                 string
	Phi, Tau, Rho        float64
	Entropy              float64
	Density              float64
	DistanceFromMidpoint float64
}

// LiminalSummary ranks stored states by density.
type LiminalSummary struct {
	States  []LiminalState
	Highest *LiminalState
	Lowest  *LiminalState
	Range   [2]float64
}

// Querier is the subset of the store the survey needs.
type Querier interface {
	FindNeighbors(ctx context.Context, phi, tau, rho, entropy float64, k int) ([]store.Neighbor, error)
}

// LiminalStates fetches stored states around the midpoint and sorts them by
// stored density, highest first. Entries without a density are skipped.
func LiminalStates(ctx context.Context, q Querier) (*LiminalSummary, error) {
	neighbors, err := q.FindNeighbors(ctx, liminalMidpoint, liminalMidpoint, liminalMidpoint, liminalMidpoint, liminalK)
	if err != nil {
		return nil, err
	}
	out := &LiminalSummary{}
	for _, n := range neighbors {
		density, ok := n.Metadata[store.MetaDensity]
		if !ok {
			continue
		}
		out.States = append(out.States, LiminalState{
			Name:                 n.Name,
			Phi:                  n.Metadata[store.MetaPhi],
			Tau:                  n.Metadata[store.MetaTau],
			Rho:                  n.Metadata[store.MetaRho],
			Entropy:              n.Metadata[store.MetaEntropy],
			Density:              density,
			DistanceFromMidpoint: n.Distance,
		})
	}
	sort.SliceStable(out.States, func(i, j int) bool { return out.States[i].Density > out.States[j].Density })
	if len(out.States) > 0 {
		out.Highest = &out.States[0]
		out.Lowest = &out.States[len(out.States)-1]
		out.Range = [2]float64{out.Lowest.Density, out.Highest.Density}
	}
	return out, nil
}
