package main

import (
	"github.com/katalvlaran/erdos888/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd prints the Theorem-3 transcript
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the Theorem-3 counterexample A = {3, 5, 126, 210}",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := report.Theorem3(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logger.Debug("Theorem 3 verified",
			zap.Bool("admissibleA", t.A.Admissible),
			zap.Bool("admissibleK", t.K.Admissible),
			zap.Bool("fixable", t.Fixable))
		return nil
	},
}
