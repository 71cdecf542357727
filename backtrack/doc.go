// Package backtrack implements the deterministic Knight's Tour engine:
// exhaustive depth-first search with backtracking, ordered at every step by
// Warnsdorff's rule — try first the move whose destination keeps the fewest
// onward options.
//
// Determinism is a contract, not an accident:
//
//   - Moves of equal mobility keep the canonical offset order (stable sort),
//     so there is exactly one search tree per (n, start).
//   - No randomness anywhere; identical inputs reproduce identical paths
//     AND identical RecursiveCalls/BacktrackCount counters.
//
// The search honors a soft wall-clock deadline and an optional context,
// checked at a bounded interval inside the recursion. A stop surfaces
// within a few steps' latency and yields the partial path of the active
// branch with Success=false — timeouts and exhausted searches are
// represented outcomes, never errors.
//
// Complexity: worst case exponential; Warnsdorff ordering empirically
// collapses it to near-linear on boards up to ~12×12. No polynomial
// guarantee is claimed. WithOrdering(OrderCanonical) disables the
// heuristic for baseline comparisons — pure exhaustive backtracking in
// fixed offset order.
package backtrack
