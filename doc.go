// Package erdos888 is a computational companion to Erdős problem 888 restricted
// to square-free integers: how large can a subset A ⊆ {square-free m ≤ n} be
// if every a<b<c<d in A with a·b·c·d a perfect square satisfies a·d = b·c?
//
// 🚀 What is f_sf(n)?
//
//	The largest admissible subset size. Bad quadruples (square product,
//	a·d ≠ b·c) form a 4-uniform hypergraph on V(n); removing a minimum
//	vertex cover leaves a largest admissible subset, so
//	f_sf(n) = |V(n)| − |min cover|.
//
// Under the hood, everything is organized under small subpackages:
//
//	numtheory/  — square-free sieve, kernel, core a·b/gcd², exact square test
//	admissible/ — admissibility predicate and square-rescaling fix search
//	hypergraph/ — bad-quadruple hypergraph over V(n), grouped by core
//	cover/      — exact Branch-and-Bound minimum vertex cover
//	fsf/        — ComputeFSf: builder + solver
//	report/     — survey table, Theorem-3 transcript, YAML config
//	cmd/erdos888 — CLI
//
// Quick example:
//
//	res, err := fsf.ComputeFSf(100)
//	// res.FSf == 55, res.Q() == 61, len(res.Cover) == 6
//
//	go install github.com/katalvlaran/erdos888/cmd/erdos888@latest
package erdos888
