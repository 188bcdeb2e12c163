package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/viant/conduit/operator"
	"github.com/viant/conduit/store"
	"github.com/viant/conduit/trajectory"
	"github.com/viant/conduit/vector"
)

var simulateFlags struct {
	operator string
	steps    int
	from     string
	all      bool
}

// simulateCmd iterates an operator from a starting state.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an operator trajectory and report where it ends",
	Long: `Applies an operator repeatedly, starting from --from (default: the
Healthy Awake anchor). Parametric operators receive the progress of the run
in [0, 1]. With --all every registered operator runs concurrently.

Example:
  conduit simulate --operator depth-gradient --steps 10 --from "0.9 0.9 0.9 0.1"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		steps, err := resolveSteps(simulateFlags.steps, cfg.Simulation.Steps)
		if err != nil {
			return err
		}
		start, err := startVector(simulateFlags.from)
		if err != nil {
			return err
		}
		s, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		out := cmd.OutOrStdout()
		if simulateFlags.all {
			return simulateAll(ctx, out, s, start, steps)
		}
		op, err := operator.Default().Lookup(simulateFlags.operator)
		if err != nil {
			return err
		}
		return simulateOne(ctx, out, s, start, op, steps, cfg.Query.Neighbors)
	},
}

func startVector(from string) (vector.Vector, error) {
	if from == "" {
		a, _ := store.AnchorByName("Healthy Awake")
		return vector.Encode(a.Phi, a.Tau, a.Rho, a.Entropy)
	}
	c, err := parseState(from)
	if err != nil {
		return vector.Vector{}, err
	}
	return vector.Encode(c[0], c[1], c[2], c[3])
}

// resolveSteps falls back to def only when the flag was left at zero.
func resolveSteps(flag, def int) (int, error) {
	switch {
	case flag < 0:
		return 0, &vector.InvalidArgumentError{Argument: "steps", Value: flag, Reason: "must be positive"}
	case flag == 0:
		return def, nil
	}
	return flag, nil
}

func simulateOne(ctx context.Context, out io.Writer, s store.Store, start vector.Vector, op operator.Operator, steps, k int) error {
	traj, err := trajectory.Simulate(start, op, steps)
	if err != nil {
		return err
	}
	heading(out, fmt.Sprintf("TRAJECTORY: %s (%s, %d steps)", op.Name, op.Arity, steps))
	t := newTable("step", "φ", "τ", "ρ", "H", "density")
	for _, st := range traj {
		t.Row(strconv.Itoa(st.Step), f4(st.Phi), f4(st.Tau), f4(st.Rho), f4(st.Entropy), f4(st.Density))
	}
	fmt.Fprintln(out, t)
	fmt.Fprintln(out)

	ns, err := s.QueryVector(ctx, traj.Final(), k)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Final state is geometrically closest to:")
	printNeighbors(out, ns)
	return nil
}

func simulateAll(ctx context.Context, out io.Writer, s store.Store, start vector.Vector, steps int) error {
	reg := operator.Default()
	var runs []trajectory.Run
	for _, name := range reg.Names() {
		op, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		runs = append(runs, trajectory.Run{Initial: start, Operator: op, Steps: steps})
	}
	trajs, err := trajectory.SimulateAll(ctx, runs)
	if err != nil {
		return err
	}
	heading(out, fmt.Sprintf("ALL OPERATORS (%d steps)", steps))
	t := newTable("operator", "arity", "final density", "nearest")
	for i, traj := range trajs {
		ns, err := s.QueryVector(ctx, traj.Final(), 1)
		if err != nil {
			return err
		}
		nearest := "-"
		if len(ns) > 0 {
			nearest = fmt.Sprintf("%s (%.4f)", ns[0].Name, ns[0].Distance)
		}
		t.Row(runs[i].Operator.Name, runs[i].Operator.Arity.String(), f4(traj.Final().Density()), nearest)
	}
	fmt.Fprintln(out, t)
	return nil
}

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List registered operators",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := operator.Default()
		t := newTable("name", "arity")
		for _, name := range reg.Names() {
			op, err := reg.Lookup(name)
			if err != nil {
				return err
			}
			t.Row(op.Name, op.Arity.String())
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateFlags.operator, "operator", "o", operator.NameDepthGradient, "Operator name (see 'conduit operators')")
	simulateCmd.Flags().IntVarP(&simulateFlags.steps, "steps", "n", 0, "Number of steps (default from config)")
	simulateCmd.Flags().StringVar(&simulateFlags.from, "from", "", `Starting state "φ τ ρ H"`)
	simulateCmd.Flags().BoolVar(&simulateFlags.all, "all", false, "Run every operator concurrently")
}
