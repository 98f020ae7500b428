package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/erdos888/admissible"
	"github.com/katalvlaran/erdos888/cover"
	"github.com/katalvlaran/erdos888/fsf"
)

// Row summarizes one bound.
type Row struct {
	N       int64
	Q       int
	FSf     int
	Density float64
	Edges   int
	Fixable bool
	Cover   []int64
	Optimal bool
}

// BuildRow computes f_sf(n) and probes the first sample edges for a fix.
// A time-limited solve that expires yields Optimal=false rather than an error.
func BuildRow(n int64, sample int, opts ...cover.Option) (Row, error) {
	res, err := fsf.ComputeFSf(n, opts...)
	optimal := true
	if err != nil {
		if res.Cover == nil {
			return Row{}, err
		}
		optimal = false
	}

	fixable, err := AnyFixable(n, res, sample)
	if err != nil {
		return Row{}, err
	}

	return Row{
		N:       n,
		Q:       res.Q(),
		FSf:     res.FSf,
		Density: res.Density(),
		Edges:   len(res.Edges),
		Fixable: fixable,
		Cover:   res.Cover,
		Optimal: optimal,
	}, nil
}

// AnyFixable reports whether one of the first sample edges of res admits a
// fixing rescaling within n.
func AnyFixable(n int64, res fsf.Result, sample int) (bool, error) {
	edges := res.Edges
	if sample < len(edges) {
		edges = edges[:sample]
	}
	for _, e := range edges {
		ok, _, err := admissible.CheckFixingOpportunity(n, e[:])
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	return false, nil
}

// Rows builds one Row per configured bound, in order. onRow, if non-nil, is
// called after each row completes.
func Rows(cfg Config, onRow func(Row)) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var opts []cover.Option
	if cfg.TimeLimit > 0 {
		opts = append(opts, cover.WithTimeLimit(cfg.TimeLimit))
	}

	rows := make([]Row, 0, len(cfg.Bounds))
	for _, n := range cfg.Bounds {
		r, err := BuildRow(n, cfg.EdgeSample, opts...)
		if err != nil {
			return rows, err
		}
		rows = append(rows, r)
		if onRow != nil {
			onRow(r)
		}
	}

	return rows, nil
}

// WriteHeader prints the table header and rule.
func WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%6s | %6s | %7s | %8s | %7s | %7s\n%s\n",
		"n", "Q(n)", "f_sf(n)", "density", "#edges", "fixable", strings.Repeat("-", 65))

	return err
}

// WriteRow prints one table line. Non-optimal rows are flagged with '*'.
func WriteRow(w io.Writer, r Row) error {
	mark := ""
	if !r.Optimal {
		mark = " *"
	}
	_, err := fmt.Fprintf(w, "%6d | %6d | %7d | %8.4f | %7d | %7t%s\n",
		r.N, r.Q, r.FSf, r.Density, r.Edges, r.Fixable, mark)

	return err
}

// Table prints the header followed by every row.
func Table(w io.Writer, rows []Row) error {
	if err := WriteHeader(w); err != nil {
		return err
	}
	for _, r := range rows {
		if err := WriteRow(w, r); err != nil {
			return err
		}
	}

	return nil
}
