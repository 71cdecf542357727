// Package solver - strategy routing types, options and sentinel errors.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/cultural"
)

// Sentinel errors for the dispatcher.
var (
	// ErrUnknownStrategy indicates a Strategy outside the routing table.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")
)

// DefaultTimeLimit is the soft wall-clock budget applied when callers do
// not override it.
const DefaultTimeLimit = 60 * time.Second

// Strategy selects the engine family (and tier, for the evolutionary one).
type Strategy int

const (
	// Backtracking runs the deterministic Warnsdorff-ordered search.
	Backtracking Strategy = iota
	// RandomWalk runs the shuffled non-backtracking baseline.
	RandomWalk
	// OrderedWalk runs the fixed-offset-order non-backtracking baseline.
	OrderedWalk
	// CulturalTier1..CulturalTier4 run the evolutionary engine at the
	// matching sophistication tier.
	CulturalTier1
	CulturalTier2
	CulturalTier3
	CulturalTier4
)

// String returns the strategy name for logs and reports.
func (s Strategy) String() string {
	switch s {
	case Backtracking:
		return "backtracking"
	case RandomWalk:
		return "random-walk"
	case OrderedWalk:
		return "ordered-walk"
	case CulturalTier1:
		return "cultural-1"
	case CulturalTier2:
		return "cultural-2"
	case CulturalTier3:
		return "cultural-3"
	case CulturalTier4:
		return "cultural-4"
	default:
		return "unknown"
	}
}

// tier maps an evolutionary strategy to its cultural.Tier; ok=false for
// non-evolutionary strategies.
func (s Strategy) tier() (cultural.Tier, bool) {
	switch s {
	case CulturalTier1:
		return cultural.TierSimple, true
	case CulturalTier2:
		return cultural.TierEnhanced, true
	case CulturalTier3:
		return cultural.TierCultural, true
	case CulturalTier4:
		return cultural.TierAdvanced, true
	default:
		return 0, false
	}
}

// Options configures one Solve call.
type Options struct {
	// Strategy selects the engine; default Backtracking.
	Strategy Strategy
	// TimeLimit is the soft wall-clock budget; 0 disables the deadline.
	TimeLimit time.Duration
	// Seed drives the stochastic engines; ignored by deterministic ones.
	Seed int64
	// Ctx allows external cancellation, polled cooperatively.
	Ctx context.Context
	// OnProgress is an optional hook (percentComplete, message).
	OnProgress func(percent float64, msg string)
	// Cultural overrides evolutionary parameters beyond the tier default;
	// nil keeps the tier's DefaultOptions.
	Cultural []cultural.Option
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy selects the engine to run.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithTimeLimit sets the soft wall-clock budget. Non-positive disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithSeed fixes the RNG seed of the stochastic engines.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
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

// WithCulturalOptions appends extra overrides for the evolutionary engine
// (applied after the tier default, so they win).
func WithCulturalOptions(opts ...cultural.Option) Option {
	return func(o *Options) { o.Cultural = append(o.Cultural, opts...) }
}

// DefaultOptions returns the dispatcher defaults: Backtracking strategy,
// DefaultTimeLimit, background context, no hook.
func DefaultOptions() Options {
	return Options{
		Strategy:   Backtracking,
		TimeLimit:  DefaultTimeLimit,
		Ctx:        context.Background(),
		OnProgress: nil,
	}
}

// Stats is the engine-agnostic statistics block. ExecutionTime and
// Coverage are always set; the remaining fields belong to one engine
// family and are zero for the others.
type Stats struct {
	// ExecutionTime is the wall-clock duration of the solve.
	ExecutionTime time.Duration
	// Coverage is |path| / n², always in [0,1].
	Coverage float64
	// TimedOut reports whether the deadline or context stopped the engine.
	TimedOut bool

	// RecursiveCalls and BacktrackCount: deterministic engine only.
	RecursiveCalls int
	BacktrackCount int

	// GenerationsRun and BestFitness: evolutionary engine only.
	GenerationsRun int
	BestFitness    float64
}

// SolveResult is the unified outcome: Success only on a full tour, Path
// the best (possibly partial) visit sequence, Stats per above.
type SolveResult struct {
	Success  bool
	Path     board.Path
	Strategy Strategy
	Stats    Stats
}
