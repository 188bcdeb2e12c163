package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/viant/conduit/analysis"
	"github.com/viant/conduit/density"
)

// analyzeCmd reports the asymptotic behaviour of the density product.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Asymptotic analysis of the multiplicative density",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		if err := printAnalysis(out, cfg.Analysis.Resolution, cfg.Analysis.Epsilon); err != nil {
			return err
		}
		s, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		return printLiminal(ctx, out, s)
	},
}

func printAnalysis(out io.Writer, resolution int, epsilon float64) error {
	heading(out, "MULTIPLICATIVE HYPOTHESIS")
	h := analysis.MultiplicativeHypothesis()
	t := newTable("case", "φ", "τ", "ρ", "expected", "multiplicative", "additive", "match")
	for _, c := range h.Cases {
		t.Row(c.Name, f4(c.Phi), f4(c.Tau), f4(c.Rho), c.Expected, f4(c.MultiplicativeDensity), f4(c.AdditiveDensity), fmt.Sprint(c.Matches))
	}
	fmt.Fprintln(out, t)
	if h.Supported {
		note(out, "Multiplicative formula explains every case.")
	} else {
		note(out, "Multiplicative formula fails at least one case.")
	}
	fmt.Fprintln(out)

	heading(out, "CRITICAL THRESHOLD")
	th := analysis.CriticalThreshold(epsilon, analysis.FixedHigh)
	fmt.Fprintf(out, "φ < %.4f, τ < %.4f, ρ < %.4f\n", th.Phi, th.Tau, th.Rho)
	note(out, "%s", th.Interpretation)
	fmt.Fprintln(out)

	heading(out, "DENSITY GRADIENT")
	g, err := analysis.Gradient(resolution)
	if err != nil {
		return err
	}
	gt := newTable("φ", "multiplicative", "additive")
	stride := len(g.Phi) / 10
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(g.Phi); i += stride {
		gt.Row(f4(g.Phi[i]), f4(g.Multiplicative[i]), f4(g.Additive[i]))
	}
	fmt.Fprintln(out, gt)
	note(out, "τ=%.1f ρ=%.1f held fixed", g.TauFixed, g.RhoFixed)
	fmt.Fprintln(out)

	heading(out, "GRADIENT COMPARISON")
	ct := newTable("value", "vary φ", "vary τ", "vary ρ")
	sweeps := make([]*analysis.Sweep, 0, 3)
	for _, variable := range []string{"phi", "tau", "rho"} {
		sw, err := analysis.GradientComparison(variable)
		if err != nil {
			return err
		}
		sweeps = append(sweeps, sw)
	}
	for i := 0; i < analysis.ComparisonResolution; i += analysis.ComparisonResolution / 10 {
		ct.Row(f4(sweeps[0].Range[i]), f4(sweeps[0].Densities[i]), f4(sweeps[1].Densities[i]), f4(sweeps[2].Densities[i]))
	}
	fmt.Fprintln(out, ct)
	fmt.Fprintln(out)
	return nil
}

func printLiminal(ctx context.Context, out io.Writer, q analysis.Querier) error {
	heading(out, "LIMINAL STATES")
	sum, err := analysis.LiminalStates(ctx, q)
	if err != nil {
		return err
	}
	if len(sum.States) == 0 {
		fmt.Fprintln(out, "  (no stored states; run 'conduit seed')")
		return nil
	}
	t := newTable("state", "density", "distance from midpoint")
	for _, st := range sum.States {
		t.Row(st.Name, f4(st.Density), f4(st.DistanceFromMidpoint))
	}
	fmt.Fprintln(out, t)
	fmt.Fprintf(out, "Highest: %s (%.4f)\n", sum.Highest.Name, sum.Highest.Density)
	fmt.Fprintf(out, "Lowest:  %s (%.4f)\n", sum.Lowest.Name, sum.Lowest.Density)
	return nil
}

var densityFlags struct {
	state string
}

// densityCmd compares the density models.
var densityCmd = &cobra.Command{
	Use:   "density",
	Short: "Compare entropy-aware density models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if densityFlags.state != "" {
			c, err := parseState(densityFlags.state)
			if err != nil {
				return err
			}
			return printComparison(out, density.Case{Name: "custom", Phi: c[0], Tau: c[1], Rho: c[2], Entropy: c[3]})
		}
		return printModels(out, density.EntropyCases())
	},
}

func printComparison(out io.Writer, c density.Case) error {
	cmp, err := density.Compare(c.Phi, c.Tau, c.Rho, c.Entropy)
	if err != nil {
		return err
	}
	t := newTable("model", "density")
	for _, m := range density.Models {
		t.Row(m.Name, f4(cmp[m.Name]))
	}
	fmt.Fprintln(out, t)
	note(out, "base density %.4f at entropy %.2f", cmp.BaseDensity(), cmp.Entropy())
	return nil
}

func printModels(out io.Writer, cases []density.Case) error {
	results, err := density.EvaluateCases(cases)
	if err != nil {
		return err
	}
	heading(out, "DENSITY MODEL COMPARISON")
	headers := []string{"state"}
	for _, m := range density.Models {
		headers = append(headers, m.Name)
	}
	t := newTable(headers...)
	for _, r := range results {
		row := []string{r.State}
		for _, m := range density.Models {
			row = append(row, f4(r.Comparison[m.Name]))
		}
		t.Row(row...)
	}
	fmt.Fprintln(out, t)
	fmt.Fprintln(out)

	best, ratio, err := density.Recommend(results)
	if errors.Is(err, density.ErrNoSeparation) {
		fmt.Fprintln(out, "No model separates the flow and panic cases.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Recommended model: %s (flow/panic ratio %.2f)\n", best, ratio)
	return nil
}

func init() {
	densityCmd.Flags().StringVar(&densityFlags.state, "state", "", `Compare models at one state "φ τ ρ H"`)
}
