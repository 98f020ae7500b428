package hypergraph

import "errors"

// ErrNonPositive indicates a bound below 1.
var ErrNonPositive = errors.New("hypergraph: bound must be positive")

// Edge is a hyperedge: four distinct vertices sorted ascending.
type Edge [4]int64

// Contains reports whether v is one of the edge's endpoints.
func (e Edge) Contains(v int64) bool {
	return e[0] == v || e[1] == v || e[2] == v || e[3] == v
}

// Balanced reports whether the outer and inner products agree (a·d = b·c).
func (e Edge) Balanced() bool {
	return e[0]*e[3] == e[1]*e[2]
}

// Stats records construction counters.
type Stats struct {
	Pairs      int // unordered vertex pairs grouped by core
	Buckets    int // distinct core values
	Candidates int // pair-of-pairs joined inside buckets
}

// Hypergraph is an immutable (V, E) instance for one bound.
type Hypergraph struct {
	Bound    int64
	Vertices []int64
	Edges    []Edge
	Stats    Stats
}

// Order returns |V|.
func (h *Hypergraph) Order() int { return len(h.Vertices) }

// Size returns |E| including repeated edges.
func (h *Hypergraph) Size() int { return len(h.Edges) }

// Degrees counts, for every vertex, the edges it appears in.
// Vertices with no incident edge are present with degree 0.
func (h *Hypergraph) Degrees() map[int64]int {
	deg := make(map[int64]int, len(h.Vertices))
	for _, v := range h.Vertices {
		deg[v] = 0
	}
	for _, e := range h.Edges {
		for _, v := range e {
			deg[v]++
		}
	}

	return deg
}

// Dedup returns a copy whose edge list keeps only the first occurrence of
// each quadruple. Vertices and Stats are shared with h.
func (h *Hypergraph) Dedup() *Hypergraph {
	seen := make(map[Edge]struct{}, len(h.Edges))
	edges := make([]Edge, 0, len(h.Edges)/3+1)
	for _, e := range h.Edges {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		edges = append(edges, e)
	}

	return &Hypergraph{Bound: h.Bound, Vertices: h.Vertices, Edges: edges, Stats: h.Stats}
}
