package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/viant/conduit/store"
)

var seedState struct {
	name        string
	description string
	coords      string
}

// seedCmd seeds the anchors, or one custom state with --name.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the anchor states into an empty store, or add one state",
	Long: `Without flags, loads the six liminal anchor states when the store is
empty. With --name and --state, inserts a single custom state.

Example:
  conduit seed --name Drowsy --state "0.6 0.5 0.7 0.3"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		s, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if seedState.name == "" {
			return seedIfEmpty(ctx, out, s)
		}
		c, err := parseState(seedState.coords)
		if err != nil {
			return err
		}
		st, err := s.Seed(ctx, seedState.name, c[0], c[1], c[2], c[3], seedState.description)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "seeded %s (%s) density=%.4f\n", st.Name, st.ID, st.Metadata[store.MetaDensity])
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored states in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		states, err := s.States(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, st := range states {
			fmt.Fprintf(out, "%-20s φ=%.2f τ=%.2f ρ=%.2f H=%.2f density=%.4f  %s\n",
				st.Name, st.Vector.Phi(), st.Vector.Tau(), st.Vector.Rho(), st.Vector.Entropy(),
				st.Metadata[store.MetaDensity], st.Description)
		}
		fmt.Fprintf(out, "%d states\n", len(states))
		return nil
	},
}

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild and persist the neighbor index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		n, err := s.Reindex(ctx)
		if err != nil {
			return err
		}
		logger.Info("reindexed", zap.String("index", string(s.Kind())), zap.Int("states", n))
		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d states (%s)\n", n, s.Kind())
		return nil
	},
}

var queryCmd = &cobra.Command{
	Use:   "query φ τ ρ H",
	Short: "Report the stored states nearest to a point",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		c, err := parseState(joinArgs(args))
		if err != nil {
			return err
		}
		ns, err := s.FindNeighbors(ctx, c[0], c[1], c[2], c[3], cfg.Query.Neighbors)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Nearest neighbors to (φ=%v, τ=%v, ρ=%v, H=%v):\n", c[0], c[1], c[2], c[3])
		printNeighbors(out, ns)
		return nil
	},
}

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive neighbor queries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		return explore(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), s, cfg.Query.Neighbors)
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedState.name, "name", "", "Name of a custom state")
	seedCmd.Flags().StringVar(&seedState.description, "description", "", "Description of the custom state")
	seedCmd.Flags().StringVar(&seedState.coords, "state", "", `Coordinates "φ τ ρ H" of the custom state`)
	seedCmd.MarkFlagsRequiredTogether("name", "state")
}
