// Command erdos888 surveys the square-free admissibility problem: it prints
// the f_sf(n) table, the Theorem-3 verification transcript, and single-bound
// or single-set diagnostics.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "erdos888",
	Short: "Square-free admissibility survey (Erdős problem 888)",
	Long: `erdos888 builds the hypergraph of bad quadruples over the square-free
integers up to n and solves its minimum vertex cover exactly, giving
f_sf(n), the size of the largest admissible subset.

Run "erdos888 table" for the survey and "erdos888 verify" for the
Theorem-3 counterexample.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML survey config")

	tableCmd.Flags().IntVar(&edgeSample, "sample", -1, "edges probed for a fix (default from config)")
	tableCmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "per-bound solver budget (0 = unlimited)")
	fsfCmd.Flags().BoolVar(&listEdges, "edges", false, "list every hyperedge")
	fsfCmd.Flags().BoolVar(&dedupEdges, "dedup", false, "drop repeated hyperedges before listing")
	fsfCmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "solver budget (0 = unlimited)")

	rootCmd.AddCommand(tableCmd, verifyCmd, fsfCmd, checkCmd, fixCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseInts converts positional arguments to int64 values.
func parseInts(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}
