// Package solver is the unified entry point of knightour: pick a Strategy,
// hand over board size, start square and a time budget, and receive one
// SolveResult shape regardless of which engine ran.
//
// Strategies map to the engines like so:
//
//	Backtracking            → backtrack.Solve (deterministic, exhaustive)
//	RandomWalk, OrderedWalk → walk.Run with the matching Policy
//	CulturalTier1..4        → cultural.Evolve at the matching tier
//
// The dispatcher validates configuration before any search state is
// allocated, then maps the engine's own statistics into SolveResult.Stats;
// fields that do not apply to the chosen engine stay at their zero value.
// Coverage is always |path|/n².
package solver
