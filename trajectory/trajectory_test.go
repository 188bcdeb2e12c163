package trajectory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/viant/conduit/operator"
	"github.com/viant/conduit/vector"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func lookup(t *testing.T, name string) operator.Operator {
	t.Helper()
	op, err := operator.Default().Lookup(name)
	require.NoError(t, err)
	return op
}

func TestSimulate_ProgressSchedule(t *testing.T) {
	var seen []float64
	probe := operator.Operator{
		Name:  "probe",
		Arity: operator.Parametric,
		Apply: func(v vector.Vector, p float64) operator.Result {
			seen = append(seen, p)
			return operator.Result{Vectors: []vector.Vector{v}}
		},
	}
	_, err := Simulate(vector.MustEncode(0.5, 0.5, 0.5, 0.5), probe, 5)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{0, 0.25, 0.5, 0.75, 1}, seen); diff != "" {
		t.Fatalf("progress schedule mismatch (-want +got):\n%s", diff)
	}

	seen = nil
	_, err = Simulate(vector.MustEncode(0.5, 0.5, 0.5, 0.5), probe, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, seen)
}

func TestSimulate_RecordsDensity(t *testing.T) {
	healthy := vector.MustEncode(0.9, 0.9, 0.9, 0.1)
	traj, err := Simulate(healthy, lookup(t, operator.NameDepthGradient), 10)
	require.NoError(t, err)
	require.Len(t, traj, 10)
	for i, s := range traj {
		assert.Equal(t, i, s.Step)
		assert.Equal(t, s.Phi*s.Tau*s.Rho, s.Density)
		assert.Equal(t, s.Vector.Phi(), s.Phi)
		assert.True(t, s.Vector.Valid())
	}
	assert.Equal(t, healthy, traj[0].Vector, "progress 0 leaves the state unchanged")
	assert.Equal(t, 0.0, traj.Final().Rho())
	assert.Len(t, traj.Densities(), 10)
}

func TestSimulate_FixedOperatorFollowsFirstBranch(t *testing.T) {
	v := vector.MustEncode(1, 0.8, 0.7, 0.2)
	traj, err := Simulate(v, lookup(t, operator.NameBifurcation), 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, traj[0].Phi, 1e-12)
	assert.InDelta(t, 0.36, traj[1].Phi, 1e-12)
	assert.InDelta(t, 0.216, traj[2].Phi, 1e-12)
	assert.Equal(t, 0.8, traj[2].Tau)
}

func TestSimulate_InvalidSteps(t *testing.T) {
	for _, steps := range []int{0, -3} {
		_, err := Simulate(vector.Vector{}, lookup(t, operator.NameIdentity), steps)
		require.Error(t, err)
		assert.True(t, errors.Is(err, vector.ErrInvalidArgument))
	}
}

func TestSimulateAll(t *testing.T) {
	healthy := vector.MustEncode(0.9, 0.9, 0.9, 0.1)
	runs := []Run{
		{Initial: healthy, Operator: lookup(t, operator.NameProgression), Steps: 10},
		{Initial: healthy, Operator: lookup(t, operator.NamePanicInduction), Steps: 5},
		{Initial: healthy, Operator: lookup(t, operator.NameIdentity), Steps: 2},
	}
	out, err := SimulateAll(context.Background(), runs)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, run := range runs {
		want, err := Simulate(run.Initial, run.Operator, run.Steps)
		require.NoError(t, err)
		assert.Equal(t, want, out[i])
	}

	runs = append(runs, Run{Initial: healthy, Operator: lookup(t, operator.NameIdentity), Steps: 0})
	_, err = SimulateAll(context.Background(), runs)
	assert.True(t, errors.Is(err, vector.ErrInvalidArgument))
}
