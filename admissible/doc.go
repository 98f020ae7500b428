// Package admissible decides the Erdős-888 admissibility condition on finite
// integer sets and searches for rescalings that repair a violating quadruple.
//
// A set A is admissible when every 4-element subset a<b<c<d whose product
// is a perfect square also satisfies the cross-product equality a·d = b·c.
// Because A is a set, quadruples with repeated elements cannot appear in a
// plain 4-combination scan; the degenerate shapes (x,x,x,y) and (x,y,y,y)
// are checked separately for every pair x<y.
//
// Fixing opportunities:
//
//	Given four square-free kernels k₁<…<k₄ and a bound n, scaling each
//	kernel by a square sᵢ² (kᵢ·sᵢ² ≤ n) keeps the product a square. The
//	search walks all scale tuples lexicographically, skipping the identity
//	tuple, and reports the first rescaled set satisfying a·d = b·c.
//
// Both operations are pure: no logging, no shared state, sentinel errors on
// invalid input (see errors.go).
//
// Complexity:
//   - CheckAdmissible:        O(|A|⁴) quadruples + O(|A|²) pairs
//   - CheckFixingOpportunity: O(∏ sᵢ) with sᵢ ≤ √(n/kᵢ)
package admissible
