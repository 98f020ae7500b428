// Package fsf composes the hypergraph builder and the cover solver into
// f_sf(n), the size of the largest admissible subset of the square-free
// integers in [1, n].
//
//	f_sf(n) = |V(n)| − |minimum vertex cover of the bad-quadruple hypergraph|
//
// Every call recomputes from scratch and shares no state, so independent
// bounds may be evaluated from separate goroutines.
package fsf

import (
	"github.com/katalvlaran/erdos888/cover"
	"github.com/katalvlaran/erdos888/hypergraph"
)

// Result holds one f_sf(n) evaluation.
type Result struct {
	N        int64
	FSf      int
	Vertices []int64           // V(n), ascending
	Edges    []hypergraph.Edge // construction order, repeats included
	Cover    []int64           // minimum cover, ascending
	Nodes    int               // search nodes visited by the solver
	Stats    hypergraph.Stats
}

// Q returns |V(n)|, the number of square-free integers up to n.
func (r Result) Q() int { return len(r.Vertices) }

// Density returns f_sf(n) / n.
func (r Result) Density() float64 {
	if r.N == 0 {
		return 0
	}

	return float64(r.FSf) / float64(r.N)
}

// ComputeFSf builds the hypergraph for n and solves its minimum vertex cover.
//
// Errors: those of hypergraph.Build and cover.MinVertexCover. When a time
// limit expires the partial Result (non-optimal cover) is returned together
// with cover.ErrTimeLimit.
func ComputeFSf(n int64, opts ...cover.Option) (Result, error) {
	h, err := hypergraph.Build(n)
	if err != nil {
		return Result{}, err
	}

	res, err := cover.MinVertexCover(h.Vertices, h.Edges, opts...)
	if err != nil && res.Cover == nil {
		return Result{}, err
	}

	return Result{
		N:        n,
		FSf:      h.Order() - res.Size,
		Vertices: h.Vertices,
		Edges:    h.Edges,
		Cover:    res.Cover,
		Nodes:    res.Nodes,
		Stats:    h.Stats,
	}, err
}
