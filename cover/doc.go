// Package cover computes exact minimum vertex covers of 4-uniform hypergraphs
// by depth-first Branch-and-Bound.
//
// A vertex cover C ⊆ V hits every hyperedge. For the square-free
// admissibility hypergraph the complement V∖C of a minimum cover is a largest
// admissible subset, so f_sf(n) = |V| − |C|.
//
// Search (succinct):
//  1. Incumbent (UB) starts as all of V.
//  2. DFS over partial covers. A node whose size is already ≥ |UB| is pruned
//     before anything else is done.
//  3. Scan edges in construction order from the current cursor for the first
//     edge with no endpoint in the partial cover. None left → new incumbent.
//  4. Branch on that edge's four endpoints in descending total degree
//     (computed once over E; ties keep ascending vertex order) and resume
//     the scan after it.
//  5. Soft time limit: rare deadline checks (every 4096 nodes) keep overhead
//     negligible. On expiry the incumbent is returned with ErrTimeLimit.
//
// Every branch tries every vertex able to cover the chosen edge, and pruning
// only drops nodes that cannot beat the incumbent, so the result is optimal
// when the search runs to completion.
//
// Complexity:
//   - Worst case O(4^|C*|·|E|) where C* is the optimum; exact search.
//   - Memory: O(|V| + |E|) for the dense index, degrees and search stack.
//
// Ties between minimum covers are resolved by traversal order; callers should
// rely on the size and the covering property only.
package cover
