// Package cultural implements the population-based Knight's Tour engine: a
// genetic algorithm layered with a Cultural Algorithm "belief space" that
// accumulates knowledge about successful board transitions across
// generations and feeds it back into variation and repair.
//
// Encoding: a chromosome is a fixed-length sequence of n²−1 symbols, each a
// knight-direction index 0–7 into the canonical offset table. The codec
// decodes symbols into a concrete path, repairing illegal or repeated
// choices with an escalating policy; emitted paths are always legal and
// duplicate-free.
//
// Four escalating tiers share one driver and differ only in composable
// policies (fitness, mutation, crossover, repair):
//
//	TierSimple    — coverage/legality fitness, uniform gene mutation.
//	TierEnhanced  — mobility-aware fitness and repair, anti-repeat
//	                mutation, diversity-adjusted selection.
//	TierCultural  — after a warm-up, mutation and crossover consult the
//	                belief space (suggested transitions, elite archive)
//	                and repair weighs per-square difficulty.
//	TierAdvanced  — richest fitness (legal-run and low-mobility bonuses,
//	                completion bonus), stagnation-adaptive mutation,
//	                periodic bounded local search on the elite.
//
// The belief space is constructed per run and owned by the driver — never
// a package-level singleton — so comparative runs cannot interfere. All
// randomness flows through one seeded RNG; a fixed seed reproduces the
// exact fitness trajectory.
//
// The engine is explicitly best-effort: exhausting the generation budget
// or the soft deadline returns the best individual found with
// Success=false unless it covers the whole board. Partial coverage is a
// represented outcome, never an error.
package cultural
