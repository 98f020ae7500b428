package main

import (
	"fmt"

	"github.com/katalvlaran/erdos888/admissible"
	"github.com/spf13/cobra"
)

// checkCmd tests admissibility of an explicit set
var checkCmd = &cobra.Command{
	Use:   "check <a> <b> ...",
	Short: "Check whether a set satisfies the admissibility condition",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := parseInts(args)
		if err != nil {
			return err
		}
		v, found, err := admissible.FindViolation(set)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !found {
			fmt.Fprintln(out, "admissible: true")
			return nil
		}
		fmt.Fprintln(out, "admissible: false")
		fmt.Fprintf(out, "violation:  %v (repeated=%t)\n", v.Quad, v.Repeated)
		return nil
	},
}

// fixCmd searches a rescaling for four kernels
var fixCmd = &cobra.Command{
	Use:   "fix <n> <k1> <k2> <k3> <k4>",
	Short: "Search a square rescaling within n that balances four kernels",
	Args:  cobra.ExactArgs(1 + admissible.Arity),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := parseInts(args)
		if err != nil {
			return err
		}
		ok, fixed, err := admissible.CheckFixingOpportunity(vals[0], vals[1:])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fixable: %t\n", ok)
		if ok {
			fmt.Fprintf(out, "fixed:   %v\n", fixed)
		}
		return nil
	},
}
