package trajectory

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/viant/conduit/operator"
	"github.com/viant/conduit/vector"
)

// Step records the state after one application of the operator.
type Step struct {
	Step    int
	Vector  vector.Vector
	Phi     float64
	Tau     float64
	Rho     float64
	Entropy float64
	Density float64
}

// Trajectory is the ordered list of steps of one run.
type Trajectory []Step

// Final returns the last recorded vector.
func (t Trajectory) Final() vector.Vector {
	if len(t) == 0 {
		return vector.Vector{}
	}
	return t[len(t)-1].Vector
}

// Densities returns the per-step densities.
func (t Trajectory) Densities() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s.Density
	}
	return out
}

// Simulate applies op to initial steps times. Parametric operators receive
// progress step/(steps-1) (0 when steps is 1); fixed operators are called
// without it. When an operator yields several vectors, the first continues
// the iteration.
func Simulate(initial vector.Vector, op operator.Operator, steps int) (Trajectory, error) {
	if steps <= 0 {
		return nil, &vector.InvalidArgumentError{Argument: "steps", Value: steps, Reason: "must be positive"}
	}
	if op.Apply == nil {
		return nil, &vector.InvalidArgumentError{Argument: "operator", Value: op.Name, Reason: "no apply function"}
	}
	out := make(Trajectory, 0, steps)
	current := initial
	for step := 0; step < steps; step++ {
		progress := 0.0
		if steps > 1 {
			progress = float64(step) / float64(steps-1)
		}
		current = op.Call(current, progress).Vector()
		out = append(out, Step{
			Step:    step,
			Vector:  current,
			Phi:     current.Phi(),
			Tau:     current.Tau(),
			Rho:     current.Rho(),
			Entropy: current.Entropy(),
			Density: current.Density(),
		})
	}
	return out, nil
}

// Run describes one independent simulation.
type Run struct {
	Initial  vector.Vector
	Operator operator.Operator
	Steps    int
}

// SimulateAll runs every simulation concurrently and returns the
// trajectories in input order. The first failure cancels the remaining runs.
func SimulateAll(ctx context.Context, runs []Run) ([]Trajectory, error) {
	out := make([]Trajectory, len(runs))
	g, ctx := errgroup.WithContext(ctx)
	for i, run := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := Simulate(run.Initial, run.Operator, run.Steps)
			if err != nil {
				return err
			}
			out[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
