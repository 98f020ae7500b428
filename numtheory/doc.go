// Package numtheory provides the integer primitives behind the square-free
// admissibility search: a square-free sieve, the square-free kernel, the
// core reduction a·b/gcd(a,b)² and an exact perfect-square test.
//
// 🚀 What is a square-free number?
//
//	An integer m ≥ 1 is square-free when no prime appears twice in its
//	factorization (1, 2, 3, 5, 6, 7, 10, …). Every m factors uniquely as
//	m = kernel·s² only when m is itself square-free times a square; the
//	kernel used here is the product of the distinct primes of m.
//
// ✨ Key features:
//   - SquareFreeSieve: all square-free values in [1, n], ascending
//   - SquareFreeKernel: rad(m), the largest square-free divisor of m
//   - Core: a·b / gcd(a,b)², square-free for square-free a, b
//   - IsPerfectSquare: exact, integer-only (no float rounding at n⁴)
//   - MulChecked: overflow-checked products for 4-fold predicates
//
// Range:
//
//	All values are int64. Predicates downstream multiply up to four
//	values ≤ n, so MaxBound (55108) is the largest bound with n⁴ < 2⁶³.
//	Entry points that form such products reject larger inputs with
//	ErrOutOfRange rather than silently overflowing.
//
// Complexity:
//
//   - SquareFreeSieve:  O(n log log n) marking + O(n) scan
//   - SquareFreeKernel: O(√m) trial division
//   - Core, GCD:        O(log min(a,b))
//   - IsPerfectSquare:  O(1)
package numtheory
