package cover

import "github.com/katalvlaran/erdos888/hypergraph"

// IsCover reports whether every edge has at least one endpoint in c.
func IsCover(c []int64, edges []hypergraph.Edge) bool {
	return len(Uncovered(c, edges)) == 0
}

// Uncovered returns the edges with no endpoint in c, in input order.
func Uncovered(c []int64, edges []hypergraph.Edge) []hypergraph.Edge {
	in := make(map[int64]struct{}, len(c))
	for _, v := range c {
		in[v] = struct{}{}
	}

	var out []hypergraph.Edge
	for _, e := range edges {
		hit := false
		for _, v := range e {
			if _, ok := in[v]; ok {
				hit = true
				break
			}
		}
		if !hit {
			out = append(out, e)
		}
	}

	return out
}
