package hypergraph

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/katalvlaran/erdos888/numtheory"
	"github.com/pkg/errors"
)

// pair is an unordered vertex pair stored as (lo, hi).
type pair struct{ lo, hi int64 }

// bucket collects the pairs sharing one core value.
type bucket struct{ pairs []pair }

// Build constructs the hypergraph of V(n).
//
// Steps:
//  1. V ← SquareFreeSieve(n).
//  2. For i<j, append (vᵢ, vⱼ) to the bucket of core(vᵢ, vⱼ); buckets are
//     kept in first-seen order.
//  3. For each bucket with ≥ 2 pairs and every p<q in it: if the four
//     endpoints are distinct, sort them and keep the quadruple when
//     a·d ≠ b·c.
//
// Contract: n in [1, numtheory.MaxBound].
//
// Errors: ErrNonPositive for n < 1; numtheory errors for out-of-range n.
func Build(n int64) (*Hypergraph, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrNonPositive, "bound %d", n)
	}
	vs, err := numtheory.SquareFreeSieve(n)
	if err != nil {
		return nil, err
	}

	h := &Hypergraph{Bound: n, Vertices: vs}
	groups, err := groupByCore(vs, &h.Stats)
	if err != nil {
		return nil, err
	}
	h.Edges = joinBuckets(groups, &h.Stats)

	return h, nil
}

// groupByCore fills an insertion-ordered core → bucket multimap.
func groupByCore(vs []int64, st *Stats) (*linkedhashmap.Map, error) {
	var (
		groups = linkedhashmap.New()
		i, j   int
		k      int64
		err    error
	)
	for i = 0; i < len(vs); i++ {
		for j = i + 1; j < len(vs); j++ {
			if k, err = numtheory.Core(vs[i], vs[j]); err != nil {
				return nil, err
			}
			st.Pairs++
			if b, ok := groups.Get(k); ok {
				bk := b.(*bucket)
				bk.pairs = append(bk.pairs, pair{vs[i], vs[j]})
				continue
			}
			groups.Put(k, &bucket{pairs: []pair{{vs[i], vs[j]}}})
		}
	}
	st.Buckets = groups.Size()

	return groups, nil
}

// joinBuckets emits the unbalanced quadruples formed inside each bucket.
func joinBuckets(groups *linkedhashmap.Map, st *Stats) []Edge {
	var (
		edges []Edge
		p, q  int
		e     Edge
		ok    bool
	)
	it := groups.Iterator()
	for it.Next() {
		ps := it.Value().(*bucket).pairs
		if len(ps) < 2 {
			continue
		}
		for p = 0; p < len(ps); p++ {
			for q = p + 1; q < len(ps); q++ {
				st.Candidates++
				if e, ok = quad(ps[p], ps[q]); ok && !e.Balanced() {
					edges = append(edges, e)
				}
			}
		}
	}

	return edges
}

// quad merges two pairs into a sorted Edge; ok is false if they share an endpoint.
func quad(x, y pair) (Edge, bool) {
	if x.lo == y.lo || x.lo == y.hi || x.hi == y.lo || x.hi == y.hi {
		return Edge{}, false
	}
	e := Edge{x.lo, x.hi, y.lo, y.hi}
	var i, j int
	for i = 1; i < len(e); i++ {
		for j = i; j > 0 && e[j-1] > e[j]; j-- {
			e[j-1], e[j] = e[j], e[j-1]
		}
	}

	return e, true
}
