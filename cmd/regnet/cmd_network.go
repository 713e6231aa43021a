package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/regnet/network"
)

func (a *app) newParseCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "parse SPEC",
		Short: "Print a specification in canonical form",
		Long: `Parses SPEC and prints every node with its terms in canonical order.
With --json the network is printed as [name, [[inputs]...], [outputs]]
triples instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.loadNetwork(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !asJSON {
				_, err = fmt.Fprint(cmd.OutOrStdout(), net.Canonical())
				return err
			}
			data, err := json.Marshal(net)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the JSON summary")

	return cmd
}

func (a *app) newGraphvizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graphviz SPEC",
		Short: "Render a network in DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := a.loadNetwork(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), net.Graphviz(a.cfg.Theme()...))
			return err
		},
	}
}

// loadNetwork parses inline text or reads a specification file.
func (a *app) loadNetwork(ctx context.Context, spec string) (*network.Network, error) {
	opts, err := a.cfg.NetworkOptions(a.logger, a.metrics)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(spec, ":") {
		return network.Load(spec, opts...)
	}
	return network.ParseContext(ctx, spec, opts...)
}
