// Package hypergraph builds the "bad quadruple" hypergraph over the
// square-free integers up to a bound n.
//
// Vertices are V(n), the square-free values in [1, n] in increasing order.
// A hyperedge is a sorted quadruple a<b<c<d of vertices whose product is a
// perfect square while a·d ≠ b·c; any admissible subset of V(n) must miss at
// least one vertex of every hyperedge, so the largest admissible subset is
// the complement of a minimum vertex cover (see package cover).
//
// Construction:
//
//	For square-free values, a·b·c·d is a square iff core(a,b) = core(c,d).
//	Build groups every pair (vᵢ, vⱼ), i<j, by its core into an ordered
//	multimap (first-seen key order, pairs in generation order), then joins
//	every two pairs inside a bucket. A square quadruple is reachable from
//	each of its three pairings, so the raw edge list carries repeats across
//	buckets; Dedup removes them when a caller needs distinct edges.
//
// Complexity:
//   - Time:   O(|V|² + Σ_k |bucket_k|²)
//   - Memory: O(|V|² + |E|)
package hypergraph
