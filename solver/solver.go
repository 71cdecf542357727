// Package solver - unified dispatcher for the Knight's Tour engines.
//
// Solve is the canonical entry point: it validates the configuration
// (fail-fast, before any search state exists), routes the chosen Strategy
// to its engine, and folds the engine's result into one SolveResult shape.
package solver

import (
	"github.com/katalvlaran/knightour/backtrack"
	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/cultural"
	"github.com/katalvlaran/knightour/walk"
)

// Solve runs one Knight's Tour search on an n×n board from start.
//
// Errors (all pre-search): board.ErrBoardSize, board.ErrStartOutOfBounds,
// ErrUnknownStrategy, and cultural.ErrBadOptions for inconsistent
// evolutionary overrides. Timeouts and partial coverage are represented in
// the result, never as errors.
func Solve(n int, start board.Square, opts ...Option) (SolveResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b, err := board.New(n)
	if err != nil {
		return SolveResult{}, err
	}
	if err = b.ValidateStart(start); err != nil {
		return SolveResult{}, err
	}

	switch o.Strategy {
	case Backtracking:
		return runBacktracking(b, start, o)
	case RandomWalk, OrderedWalk:
		return runWalk(b, start, o)
	case CulturalTier1, CulturalTier2, CulturalTier3, CulturalTier4:
		return runCultural(b, start, o)
	default:
		return SolveResult{}, ErrUnknownStrategy
	}
}

func runBacktracking(b board.Board, start board.Square, o Options) (SolveResult, error) {
	res, err := backtrack.Solve(b, start,
		backtrack.WithTimeLimit(o.TimeLimit),
		backtrack.WithContext(o.Ctx),
		backtrack.WithOnProgress(o.OnProgress),
	)
	if err != nil {
		return SolveResult{}, err
	}

	return SolveResult{
		Success:  res.Success,
		Path:     res.Path,
		Strategy: o.Strategy,
		Stats: Stats{
			ExecutionTime:  res.Stats.Duration,
			Coverage:       res.Stats.Coverage,
			TimedOut:       res.Stats.TimedOut,
			RecursiveCalls: res.Stats.RecursiveCalls,
			BacktrackCount: res.Stats.BacktrackCount,
		},
	}, nil
}

func runWalk(b board.Board, start board.Square, o Options) (SolveResult, error) {
	var policy walk.Policy = walk.FirstPolicy{}
	if o.Strategy == RandomWalk {
		policy = walk.NewRandomPolicy(o.Seed)
	}

	res, err := walk.Run(b, start, policy,
		walk.WithTimeLimit(o.TimeLimit),
		walk.WithContext(o.Ctx),
		walk.WithOnProgress(o.OnProgress),
	)
	if err != nil {
		return SolveResult{}, err
	}

	return SolveResult{
		Success:  res.Success,
		Path:     res.Path,
		Strategy: o.Strategy,
		Stats: Stats{
			ExecutionTime: res.Stats.Duration,
			Coverage:      res.Stats.Coverage,
			TimedOut:      res.Stats.TimedOut,
		},
	}, nil
}

func runCultural(b board.Board, start board.Square, o Options) (SolveResult, error) {
	tier, _ := o.Strategy.tier()

	// Tier default first, then dispatcher-level knobs, then caller
	// overrides — last writer wins.
	culturalOpts := append([]cultural.Option{
		cultural.WithTier(tier),
		cultural.WithTimeLimit(o.TimeLimit),
		cultural.WithContext(o.Ctx),
		cultural.WithSeed(o.Seed),
		cultural.WithOnProgress(o.OnProgress),
	}, o.Cultural...)

	res, err := cultural.Evolve(b, start, culturalOpts...)
	if err != nil {
		return SolveResult{}, err
	}

	return SolveResult{
		Success:  res.Success,
		Path:     res.Path,
		Strategy: o.Strategy,
		Stats: Stats{
			ExecutionTime:  res.Stats.Duration,
			Coverage:       res.Stats.Coverage,
			TimedOut:       res.Stats.TimedOut,
			GenerationsRun: res.Stats.Generations,
			BestFitness:    res.Stats.BestFitness,
		},
	}, nil
}
