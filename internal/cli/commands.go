// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wayfind/internal/facility"
	"github.com/katalvlaran/wayfind/internal/server"
	"github.com/katalvlaran/wayfind/scenario"
)

// congestionFlags mirrors the simulator controls applied before a query.
type congestionFlags struct {
	multiplier float64
	randomize  bool
}

func (f *congestionFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.multiplier, "multiplier", 1, "global congestion multiplier")
	cmd.Flags().BoolVar(&f.randomize, "randomize", false, "apply random congestion before routing")
}

func (f *congestionFlags) apply(s *facility.Session) error {
	if f.multiplier != 1 {
		if _, err := s.SetMultiplier(f.multiplier); err != nil {
			return err
		}
	}
	if f.randomize {
		return s.Randomize()
	}
	return nil
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		avoid []string
		cf    congestionFlags
	)

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the cheapest route between two nodes",
		Long: `Computes the cheapest route at current effective weights. With --avoid the
listed edge types are penalized rather than forbidden, so a route is still
returned when no alternative exists.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := parseTypes(avoid)
			if err != nil {
				return err
			}
			if err := cf.apply(a.session); err != nil {
				return err
			}

			r := a.session.Route(args[0], args[1], types)
			printRoute(cmd.OutOrStdout(), args[0], args[1], r)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "edge types to avoid (normal, stairs, elevator)")
	cf.register(cmd)

	return cmd
}

func printRoute(w io.Writer, from, to string, r facility.Route) {
	if !r.Found {
		fmt.Fprintf(w, "no route from %s to %s\n", from, to)
		return
	}
	fmt.Fprintf(w, "cost: %g\n", r.Cost)
	fmt.Fprintf(w, "path: %s\n", strings.Join(r.Path, " -> "))
	for i, l := range r.Legs {
		fmt.Fprintf(w, "  %2d. %s -> %s  %-8s %g\n", i+1, l.From, l.To, l.Type, l.Cost)
	}
}

func newPathsCmd(a *app) *cobra.Command {
	var (
		k     int
		avoid []string
		cf    congestionFlags
	)

	cmd := &cobra.Command{
		Use:   "paths FROM TO",
		Short: "List the k cheapest loopless routes",
		Long: `Enumerates up to k loopless routes in ascending cost. Edge types given with
--avoid are never used; fewer than k routes are printed when the venue does
not admit more.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := parseTypes(avoid)
			if err != nil {
				return err
			}
			if err := cf.apply(a.session); err != nil {
				return err
			}

			routes, err := a.session.Routes(args[0], args[1], k, types)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(routes) == 0 {
				fmt.Fprintf(w, "no route from %s to %s\n", args[0], args[1])
				return nil
			}
			for i, r := range routes {
				fmt.Fprintf(w, "%d. %g  %s\n", i+1, r.Cost, strings.Join(r.Path, " -> "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "count", "k", 0, "number of routes (0 = routing.default_k)")
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "edge types to exclude (normal, stairs, elevator)")
	cf.register(cmd)

	return cmd
}

func newReachCmd(a *app) *cobra.Command {
	var avoid []string

	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List the nodes reachable from a node",
		Long: `Lists every node reachable from FROM with its hop count, nearest first.
Edge types given with --avoid are never used, so "--avoid stairs" shows what
a visitor who cannot take stairs can get to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := parseTypes(avoid)
			if err != nil {
				return err
			}
			hops, err := a.session.Reachable(args[0], types)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, h := range hops {
				fmt.Fprintf(w, "%3d  %s\n", h.Hops, h.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "edge types to exclude (normal, stairs, elevator)")

	return cmd
}

func newFloorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "floors",
		Short: "List floors and the nodes on each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, f := range a.session.Floors() {
				floor := f
				nodes := a.session.Nodes(&floor)
				ids := make([]string, 0, len(nodes))
				for _, n := range nodes {
					ids = append(ids, n.ID)
				}
				fmt.Fprintf(w, "floor %d (%d): %s\n", f, len(ids), strings.Join(ids, ", "))
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var (
		out  string
		base bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the venue as a scenario document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []scenario.SaveOption
			if base {
				opts = append(opts, scenario.WithBaseWeights())
			}
			if out == "" || out == "-" {
				return a.session.Export(cmd.OutOrStdout(), opts...)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := a.session.Export(f, opts...); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&base, "base", false, "emit base weights instead of current weights")

	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}
			return server.New(cfg, a.session, a.logger).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
