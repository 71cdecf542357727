// Package knightour is an in-memory toolkit for solving the Knight's Tour
// problem: visiting every square of an n×n board exactly once by knight
// moves, or covering as much of the board as possible when no full tour
// is reachable from the chosen start.
//
// 🐴 What is knightour?
//
//	A small, deterministic-by-default library that brings together:
//		• Board geometry: bounds, the 8 knight offsets, mobility (degree) counting
//		• Baseline walks: random-order and fixed-order non-backtracking runs
//		• Deterministic search: backtracking ordered by Warnsdorff's rule
//		• Evolutionary search: a four-tier Cultural Algorithm with a belief space
//		• A unified dispatcher returning one SolveResult shape for every engine
//
// ✨ Why choose knightour?
//
//   - Reproducible – fixed seeds and fixed tie-breaks; identical inputs
//     yield identical outputs, counters included
//   - Honest partial results – timeouts and dead ends are represented
//     outcomes (success flag + coverage), never errors
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject your own move-selection policy into the walks,
//     or hook OnProgress for live reporting
//
// Everything is organized under five subpackages:
//
//	board/     — Square, Board, knight offsets, incremental mobility tracking
//	walk/      — non-backtracking baseline walks with a pluggable Policy
//	backtrack/ — exhaustive search guided by Warnsdorff's heuristic
//	cultural/  — genetic algorithm + belief space, four escalating tiers
//	solver/    — the single entry point routing a Strategy to its engine
//
// Quick start:
//
//	res, err := solver.Solve(6, board.Square{Row: 0, Col: 0},
//	    solver.WithStrategy(solver.Backtracking))
//	if err != nil { ... }
//	fmt.Println(res.Success, res.Stats.Coverage)
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/knightour
package knightour
