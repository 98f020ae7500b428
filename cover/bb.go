package cover

import (
	"slices"
	"time"

	"github.com/katalvlaran/erdos888/hypergraph"
	"github.com/pkg/errors"
)

// bbEngine holds all search data for one MinVertexCover call.
// Vertices are addressed by their index in the caller's vertex list.
type bbEngine struct {
	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline checks counter
	timedOut    bool

	// Instance (dense): edges[i] holds vertex indices sorted for branching.
	vertices []int64
	edges    [][4]int
	deg      []int

	// Current search state
	inCover []bool
	stack   []int // vertices of the partial cover, in insertion order

	// Incumbent (UB)
	best  []int
	nodes int
}

// deadlineCheck performs a rare deadline test (every 4096 node events).
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// initIndex maps every edge endpoint to its vertex index.
func (e *bbEngine) initIndex(vertices []int64, edges []hypergraph.Edge) error {
	idx := make(map[int64]int, len(vertices))
	for i, v := range vertices {
		if _, dup := idx[v]; dup {
			return errors.Wrapf(ErrDuplicateVertex, "vertex %d", v)
		}
		idx[v] = i
	}

	e.vertices = vertices
	e.edges = make([][4]int, len(edges))
	var (
		i, j int
		ok   bool
	)
	for i = range edges {
		for j = 0; j < 4; j++ {
			if e.edges[i][j], ok = idx[edges[i][j]]; !ok {
				return errors.Wrapf(ErrUnknownVertex, "edge %v endpoint %d", edges[i], edges[i][j])
			}
		}
	}

	return nil
}

// buildBranchOrder counts degrees over all edges, then reorders every edge's
// endpoints by descending degree. The sort is stable, so equal-degree
// endpoints keep their ascending order from the sorted edge.
func (e *bbEngine) buildBranchOrder() {
	e.deg = make([]int, len(e.vertices))
	var i, j int
	for i = range e.edges {
		for j = 0; j < 4; j++ {
			e.deg[e.edges[i][j]]++
		}
	}
	for i = range e.edges {
		slices.SortStableFunc(e.edges[i][:], func(a, b int) int {
			return e.deg[b] - e.deg[a]
		})
	}
}

// covered reports whether edge i has an endpoint in the partial cover.
func (e *bbEngine) covered(i int) bool {
	ed := &e.edges[i]

	return e.inCover[ed[0]] || e.inCover[ed[1]] || e.inCover[ed[2]] || e.inCover[ed[3]]
}

// recordUB commits the partial cover as the new incumbent.
func (e *bbEngine) recordUB() {
	e.best = append(e.best[:0], e.stack...)
}

// dfs performs the core search from edge cursor next.
func (e *bbEngine) dfs(next int) {
	if e.timedOut {
		return
	}
	if e.deadlineCheck() {
		e.timedOut = true
		return
	}
	e.nodes++

	// Prune: this branch cannot beat the incumbent.
	if len(e.stack) >= len(e.best) {
		return
	}

	i := next
	for i < len(e.edges) && e.covered(i) {
		i++
	}
	if i == len(e.edges) {
		e.recordUB()
		return
	}

	for _, v := range e.edges[i] {
		e.inCover[v] = true
		e.stack = append(e.stack, v)
		e.dfs(i + 1)
		e.stack = e.stack[:len(e.stack)-1]
		e.inCover[v] = false
	}
}

// result converts the incumbent into sorted vertex values.
func (e *bbEngine) result() Result {
	c := make([]int64, len(e.best))
	for i, v := range e.best {
		c[i] = e.vertices[v]
	}
	slices.Sort(c)

	return Result{Cover: c, Size: len(c), Nodes: e.nodes, Optimal: !e.timedOut}
}

// MinVertexCover returns a minimum set of vertices hitting every edge.
//
// Contracts:
//   - vertices holds distinct values; every edge endpoint is among them.
//   - Neither input is mutated. Repeated edges are allowed.
//   - With no edges the cover is empty and no search runs.
//
// Errors:
//   - ErrDuplicateVertex, ErrUnknownVertex for malformed inputs.
//   - ErrBadTimeLimit for a negative budget.
//   - ErrTimeLimit when a positive budget expires; the Result then carries
//     the best cover found so far with Optimal=false.
func MinVertexCover(vertices []int64, edges []hypergraph.Edge, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.TimeLimit < 0 {
		return Result{}, ErrBadTimeLimit
	}

	var e bbEngine
	if err := e.initIndex(vertices, edges); err != nil {
		return Result{}, err
	}
	if len(edges) == 0 {
		return Result{Cover: []int64{}, Optimal: true}, nil
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}
	e.buildBranchOrder()

	// Trivial upper bound: every vertex.
	e.best = make([]int, len(vertices), len(vertices)+1)
	for i := range e.best {
		e.best[i] = i
	}
	e.inCover = make([]bool, len(vertices))
	e.stack = make([]int, 0, len(vertices))

	e.dfs(0)

	res := e.result()
	if e.timedOut {
		return res, ErrTimeLimit
	}

	return res, nil
}
