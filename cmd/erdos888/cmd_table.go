package main

import (
	"time"

	"github.com/katalvlaran/erdos888/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	edgeSample int
	timeLimit  time.Duration
)

// tableCmd prints the f_sf(n) survey
var tableCmd = &cobra.Command{
	Use:   "table [n...]",
	Short: "Print n, Q(n), f_sf(n), density, #edges and fixability",
	Long: `Computes f_sf(n) for every bound and prints one table row per bound.
Bounds given as arguments replace the configured list. Rows whose solve hit
--time-limit are marked with '*' (the cover is then only an upper bound).`,
	RunE: runTable,
}

func loadConfig() (report.Config, error) {
	if configPath == "" {
		return report.DefaultConfig(), nil
	}
	logger.Debug("Loading config", zap.String("path", configPath))
	return report.LoadConfig(configPath)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		if cfg.Bounds, err = parseInts(args); err != nil {
			return err
		}
	}
	if edgeSample >= 0 {
		cfg.EdgeSample = edgeSample
	}
	if timeLimit > 0 {
		cfg.TimeLimit = timeLimit
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = report.WriteHeader(out); err != nil {
		return err
	}
	var werr error
	_, err = report.Rows(cfg, func(r report.Row) {
		logger.Debug("Row computed",
			zap.Int64("n", r.N),
			zap.Int("edges", r.Edges),
			zap.Int("cover", len(r.Cover)),
			zap.Bool("optimal", r.Optimal))
		if !r.Optimal {
			logger.Warn("Time limit reached; cover is not proven minimum", zap.Int64("n", r.N))
		}
		if werr == nil {
			werr = report.WriteRow(out, r)
		}
	})
	if err != nil {
		return err
	}
	return werr
}
