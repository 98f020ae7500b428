package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/erdos888/cover"
	"github.com/katalvlaran/erdos888/fsf"
	"github.com/katalvlaran/erdos888/hypergraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listEdges  bool
	dedupEdges bool
)

// fsfCmd solves a single bound
var fsfCmd = &cobra.Command{
	Use:   "fsf <n>",
	Short: "Compute f_sf(n) and print the minimum cover",
	Args:  cobra.ExactArgs(1),
	RunE:  runFSf,
}

func runFSf(cmd *cobra.Command, args []string) error {
	ns, err := parseInts(args)
	if err != nil {
		return err
	}
	var opts []cover.Option
	if timeLimit > 0 {
		opts = append(opts, cover.WithTimeLimit(timeLimit))
	}

	res, err := fsf.ComputeFSf(ns[0], opts...)
	optimal := true
	if errors.Is(err, cover.ErrTimeLimit) {
		logger.Warn("Time limit reached; cover is not proven minimum", zap.Int64("n", ns[0]))
		optimal = false
	} else if err != nil {
		return err
	}
	logger.Debug("Hypergraph built",
		zap.Int64("n", res.N),
		zap.Int("pairs", res.Stats.Pairs),
		zap.Int("buckets", res.Stats.Buckets),
		zap.Int("candidates", res.Stats.Candidates),
		zap.Int("nodes", res.Nodes))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "n       = %d\n", res.N)
	fmt.Fprintf(out, "Q(n)    = %d\n", res.Q())
	fmt.Fprintf(out, "f_sf(n) = %d\n", res.FSf)
	fmt.Fprintf(out, "density = %.4f\n", res.Density())
	fmt.Fprintf(out, "#edges  = %d\n", len(res.Edges))
	fmt.Fprintf(out, "optimal = %t\n", optimal)
	fmt.Fprintf(out, "cover   = %v\n", res.Cover)

	if listEdges {
		edges := res.Edges
		if dedupEdges {
			h := hypergraph.Hypergraph{Vertices: res.Vertices, Edges: res.Edges}
			edges = h.Dedup().Edges
		}
		for _, e := range edges {
			fmt.Fprintln(out, e)
		}
	}
	return nil
}
