package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/viant/conduit/operator"
	"github.com/viant/conduit/store"
	"github.com/viant/conduit/vector"
)

// scenario perturbs a seeded anchor and reports its neighbors.
type scenario struct {
	Title     string
	Anchor    string
	Operator  string
	Magnitude float64
	Purpose   string
}

var scenarios = []scenario{
	{
		Title:     "SIMULATION 1: Fracturing Integration",
		Anchor:    "Healthy Awake",
		Operator:  operator.NameFractureIntegration,
		Magnitude: 0.4,
		Purpose:   "simulating trauma/dissociation",
	},
	{
		Title:     "SIMULATION 2: Injecting Entropy into Flow",
		Anchor:    "Flow State",
		Operator:  operator.NameInjectEntropy,
		Magnitude: 0.8,
		Purpose:   "flooding a flow state with noise",
	},
}

func runSession(ctx context.Context, in io.Reader, out io.Writer) error {
	printBanner(out)
	s, closeFn, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := seedIfEmpty(ctx, out, s); err != nil {
		return err
	}
	for _, sc := range scenarios {
		if err := runScenario(ctx, out, s, sc, cfg.Query.Neighbors); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Starting interactive exploration mode...")
	fmt.Fprintln(out)
	if err := explore(ctx, in, out, s, cfg.Query.Neighbors); err != nil {
		return err
	}
	fmt.Fprintln(out)
	heading(out, "SESSION ENDED\nThe structure remains.")
	return nil
}

func seedIfEmpty(ctx context.Context, out io.Writer, s store.Store) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Database initialized. Current state count: %d\n\n", count)
	if count > 0 {
		fmt.Fprintf(out, "Database already contains %d states. Skipping seeding.\n\n", count)
		return nil
	}
	fmt.Fprintln(out, "Seeding liminal cases (anchor states)...")
	n, err := store.SeedDefaults(ctx, s)
	if err != nil {
		return err
	}
	for _, a := range store.Anchors()[:n] {
		fmt.Fprintf(out, "  seeded %-16s φ=%.2f τ=%.2f ρ=%.2f H=%.2f\n", a.Name, a.Phi, a.Tau, a.Rho, a.Entropy)
	}
	fmt.Fprintln(out)
	return nil
}

func runScenario(ctx context.Context, out io.Writer, s store.Store, sc scenario, k int) error {
	anchor, ok := store.AnchorByName(sc.Anchor)
	if !ok {
		return fmt.Errorf("unknown anchor %q", sc.Anchor)
	}
	op, err := operator.Default().Lookup(sc.Operator)
	if err != nil {
		return err
	}
	start, err := vector.Encode(anchor.Phi, anchor.Tau, anchor.Rho, anchor.Entropy)
	if err != nil {
		return err
	}
	heading(out, sc.Title)
	fmt.Fprintf(out, "Starting with: %s state (φ=%v, τ=%v, ρ=%v, H=%v)\n", anchor.Name, anchor.Phi, anchor.Tau, anchor.Rho, anchor.Entropy)
	fmt.Fprintf(out, "Applying operator: %s %v (%s)\n\n", op.Name, sc.Magnitude, sc.Purpose)

	result := op.Call(start, sc.Magnitude).Vector()
	ns, err := s.QueryVector(ctx, result, k)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Resulting state is geometrically closest to:")
	printNeighbors(out, ns)
	fmt.Fprintln(out)
	return nil
}

var errQuit = errors.New("quit")

// parseState reads four whitespace separated coordinates.
func parseState(line string) ([4]float64, error) {
	var out [4]float64
	fields := strings.Fields(line)
	if len(fields) != len(out) {
		return out, fmt.Errorf("please provide exactly 4 values (φ τ ρ H), got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return out, fmt.Errorf("invalid input %q: please enter 4 numbers separated by spaces", f)
		}
		out[i] = v
	}
	return out, nil
}

// handleLine answers one exploration query. Input errors are reported to
// out; only store failures are returned.
func handleLine(ctx context.Context, out io.Writer, s store.Store, line string, k int) error {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit", "q":
		return errQuit
	case "":
		return nil
	}
	c, err := parseState(line)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return nil
	}
	ns, err := s.FindNeighbors(ctx, c[0], c[1], c[2], c[3], k)
	if err != nil {
		if errors.Is(err, vector.ErrOutOfRange) {
			fmt.Fprintf(out, "Error: %v\n", err)
			return nil
		}
		return err
	}
	fmt.Fprintf(out, "\nNearest neighbors to (φ=%v, τ=%v, ρ=%v, H=%v):\n", c[0], c[1], c[2], c[3])
	printNeighbors(out, ns)
	fmt.Fprintln(out)
	return nil
}

// explore reads queries from in until quit or end of input.
func explore(ctx context.Context, in io.Reader, out io.Writer, s store.Store, k int) error {
	heading(out, "EXPLORATION MODE")
	fmt.Fprintln(out, "Query the topological space by providing φ, τ, ρ, H values.")
	fmt.Fprintln(out, "Type 'quit' to exit.")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter state (φ τ ρ H) or 'quit': ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		err := handleLine(ctx, out, s, scanner.Text(), k)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			logger.Error("exploration query failed", zap.Error(err))
			return err
		}
	}
}
