// Package walk implements the non-backtracking baseline walks: the knight
// moves forward until the board is covered or it hits the first dead end,
// and never retracts a move.
//
// The two classic baselines differ in exactly one decision, so the package
// exposes one walk routine parameterized by a Policy with a single
// Choose(validMoves) method:
//
//   - NewRandomPolicy(seed) — uniform choice among the legal moves;
//     seed==0 draws fresh entropy so repeats differ, a non-zero seed
//     replays one walk exactly.
//   - FirstPolicy — always the first legal move in canonical offset order;
//     fully deterministic.
//
// The walks exist to quantify, by comparison, the value added by
// Warnsdorff ordering and backtracking in package backtrack: on the same
// (n, start) they typically strand the knight well short of full coverage.
//
// Success is reported only on full coverage; a dead end yields the partial
// path with Success=false — a represented outcome, not an error.
package walk
