package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regnet/digraph"
	"github.com/katalvlaran/regnet/parameter"
	"github.com/katalvlaran/regnet/phase"
)

// Output formats of the domaingraph command.
const (
	formatDOT       = "dot"
	formatAdjacency = "adjacency"
	formatSummary   = "summary"
)

func (a *app) newDomainGraphCmd() *cobra.Command {
	var (
		format    string
		annotate  bool
		baseSpace bool
		from      int
	)
	cmd := &cobra.Command{
		Use:   "domaingraph PARAM.yaml",
		Short: "Build the domain graph of a parameter point",
		Long: `Reads a parameter document:

  network: "x : ~x"
  labelling: [2, 1, 1]
  orders: [[0, 1]]

and prints its state transition graph. Self-repressing nodes extend the
phase space unless --base-space is set. --annotate lists every recurrent
region as a fixed point (FP), full cycle (FC) or cross component (XC).
--from DOMAIN reports what a trajectory starting in DOMAIN can reach.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			netOpts, err := a.cfg.NetworkOptions(a.logger, a.metrics)
			if err != nil {
				return err
			}
			p, err := parameter.Load(args[0], netOpts...)
			if err != nil {
				return err
			}
			opts := a.cfg.PhaseOptions(a.logger, a.metrics)
			if baseSpace {
				opts = append(opts, phase.WithBaseSpace())
			}
			dg, err := phase.New(p, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case formatDOT:
				_, err = fmt.Fprint(out, dg.Graphviz())
			case formatAdjacency:
				_, err = fmt.Fprintln(out, dg.Digraph())
			case formatSummary:
				err = writeSummary(out, dg)
			default:
				return fmt.Errorf("unknown format %q (valid: %s, %s, %s)", format, formatDOT, formatAdjacency, formatSummary)
			}
			if err != nil {
				return err
			}
			if annotate {
				if err := writeAnnotations(out, dg); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("from") {
				return writeReachable(cmd, dg, from)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatSummary, "Output format: dot, adjacency or summary")
	cmd.Flags().BoolVar(&annotate, "annotate", false, "List recurrent regions with their annotation")
	cmd.Flags().BoolVar(&baseSpace, "base-space", false, "Ignore self repression and stay in the base phase space")
	cmd.Flags().IntVar(&from, "from", 0, "Report the domains and recurrent regions reachable from this domain")

	return cmd
}

func writeSummary(w io.Writer, dg *phase.DomainGraph) error {
	names := dg.Network().Names()
	var repressors []string
	for _, d := range dg.SelfRepressors() {
		repressors = append(repressors, names[d])
	}
	_, err := fmt.Fprintf(w,
		"domains: %d (base %d)\nextended: %t\nself repressors: %v\nnon-regular: %d\ninconsistencies: %d\nedges: %d\n",
		dg.Size(), dg.BaseSize(), dg.Extended(), repressors, dg.NonRegular(), dg.Inconsistencies(), dg.Digraph().EdgeCount())
	return err
}

func writeAnnotations(w io.Writer, dg *phase.DomainGraph) error {
	for _, region := range digraph.Recurrent(dg.Digraph()) {
		a, err := dg.Annotate(region)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%v %s\n", region, a); err != nil {
			return err
		}
	}

	return nil
}

// writeReachable lists the recurrent regions a trajectory from start can
// enter, each with a shortest path into it.
func writeReachable(cmd *cobra.Command, dg *phase.DomainGraph, start int) error {
	res, err := digraph.BFS(dg.Digraph(), start, digraph.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "reachable from %d: %d domains\n", start, len(res.Order)); err != nil {
		return err
	}
	for _, region := range digraph.Recurrent(dg.Digraph()) {
		closest := -1
		for _, v := range region {
			if res.Reached(v) && (closest < 0 || res.Depth[v] < res.Depth[closest]) {
				closest = v
			}
		}
		if closest < 0 {
			continue
		}
		if _, err := fmt.Fprintf(out, "  %v via %v\n", region, res.PathTo(closest)); err != nil {
			return err
		}
	}

	return nil
}
