// Package report renders the f_sf(n) survey table and the Theorem-3
// verification transcript on top of packages fsf and admissible.
//
// A Row summarizes one bound:
//
//	n | Q(n) | f_sf(n) | density | #edges | fixable
//
// where fixable tells whether any of the first EdgeSample hyperedges can be
// repaired by square rescaling within n. Bounds and knobs come from Config,
// optionally loaded from YAML:
//
//	bounds: [65, 100, 150, 200, 210, 300, 500, 750, 1000]
//	edge_sample: 100
//	time_limit: 30s
package report
