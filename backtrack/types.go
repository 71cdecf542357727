// Package backtrack - options, result types and defaults for the
// deterministic engine.
package backtrack

import (
	"context"
	"time"

	"github.com/katalvlaran/knightour/board"
)

// DefaultTimeLimit is the soft wall-clock budget applied when callers do
// not override it.
const DefaultTimeLimit = 60 * time.Second

// MoveOrdering selects how candidate moves are ranked during descent.
type MoveOrdering int

const (
	// OrderWarnsdorff ranks candidates ascending by onward mobility —
	// the default, and the reason large boards solve in near-linear time.
	OrderWarnsdorff MoveOrdering = iota
	// OrderCanonical keeps the fixed offset-table order: pure exhaustive
	// backtracking, useful as a baseline for measuring the heuristic's
	// value. Expect exponential blowup beyond small boards.
	OrderCanonical
)

// Options configures one backtracking run.
//
// TimeLimit  – soft wall-clock budget; 0 disables the deadline.
// Ctx        – external cancellation; polled together with the deadline.
// OnProgress – optional hook (percentComplete, message), fired every few
// forward moves on the deepest branch so far.
// Ordering   – candidate ranking; OrderWarnsdorff unless overridden.
type Options struct {
	TimeLimit  time.Duration
	Ctx        context.Context
	OnProgress func(percent float64, msg string)
	Ordering   MoveOrdering
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithTimeLimit sets the soft wall-clock budget. Non-positive disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithContext sets a custom context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnProgress registers a progress hook.
func WithOnProgress(fn func(percent float64, msg string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}

// WithOrdering selects the candidate ranking for the descent.
func WithOrdering(ord MoveOrdering) Option {
	return func(o *Options) { o.Ordering = ord }
}

// DefaultOptions returns the engine defaults:
//   - TimeLimit:  DefaultTimeLimit (60s)
//   - Ctx:        context.Background()
//   - OnProgress: nil (no reporting)
//   - Ordering:   OrderWarnsdorff
func DefaultOptions() Options {
	return Options{
		TimeLimit:  DefaultTimeLimit,
		Ctx:        context.Background(),
		OnProgress: nil,
		Ordering:   OrderWarnsdorff,
	}
}

// Stats carries the deterministic engine's counters. For one (n, start)
// these are as reproducible as the path itself.
type Stats struct {
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Coverage is |path| / n², always in [0,1].
	Coverage float64
	// RecursiveCalls counts descents into the search tree.
	RecursiveCalls int
	// BacktrackCount counts exhausted squares that were unwound.
	BacktrackCount int
	// ForwardMoves counts squares pushed onto the path, the start included.
	ForwardMoves int
	// TimedOut reports whether the deadline or context aborted the search.
	TimedOut bool
}

// Result is the outcome of one run. Success means a full tour; otherwise
// Path holds the best partial path (the active branch on timeout, the
// deepest branch reached when the search exhausted).
type Result struct {
	Success bool
	Path    board.Path
	Stats   Stats
}
