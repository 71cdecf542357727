// Package walk - types, options and sentinel errors for the baseline walks.
package walk

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/knightour/board"
)

// Sentinel errors for walk execution.
var (
	// ErrNilPolicy is returned when Run receives a nil move-selection policy.
	ErrNilPolicy = errors.New("walk: move-selection policy is nil")
)

// Policy selects the next move of a walk. It is the single decision point
// distinguishing the baselines: Run handles enumeration, visit tracking and
// termination; Choose only picks among the already-legal candidates.
//
// Contract: valid is non-empty and listed in canonical offset order;
// Choose must return one of its elements.
type Policy interface {
	Choose(valid []board.Square) board.Square
}

// FirstPolicy takes the first legal move in canonical offset order.
// Deterministic: identical (n, start) always reproduces the same walk.
type FirstPolicy struct{}

// Choose returns valid[0].
func (FirstPolicy) Choose(valid []board.Square) board.Square {
	return valid[0]
}

// RandomPolicy picks uniformly among the legal moves using a seeded RNG.
// A fixed non-zero seed replays the same walk; seed==0 draws fresh entropy,
// so repeated runs genuinely differ — this baseline measures unguided luck.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy returns a RandomPolicy. seed==0 seeds from the wall clock
// (non-deterministic across runs); any other seed is used verbatim.
func NewRandomPolicy(seed int64) *RandomPolicy {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &RandomPolicy{rng: rand.New(rand.NewSource(seed))}
}

// Choose returns a uniformly random element of valid.
func (p *RandomPolicy) Choose(valid []board.Square) board.Square {
	return valid[p.rng.Intn(len(valid))]
}

// Options configures a walk run.
//
// TimeLimit  – soft wall-clock budget; 0 disables the deadline.
// Ctx        – external cancellation; checked once per step.
// OnProgress – optional hook (percentComplete, message), fired every few moves.
type Options struct {
	TimeLimit  time.Duration
	Ctx        context.Context
	OnProgress func(percent float64, msg string)
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// WithTimeLimit sets the soft wall-clock budget. Non-positive disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.TimeLimit = d
		}
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

// DefaultOptions returns the walk defaults: no time limit,
// context.Background(), no progress hook.
func DefaultOptions() Options {
	return Options{
		TimeLimit:  0,
		Ctx:        context.Background(),
		OnProgress: nil,
	}
}

// Stats summarizes one walk run.
type Stats struct {
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Coverage is |path| / n², always in [0,1].
	Coverage float64
	// TotalMoves counts squares entered, the start included.
	TotalMoves int
	// DeadEnd reports whether the walk stopped with no legal move left.
	DeadEnd bool
	// TimedOut reports whether the deadline or context stopped the walk.
	TimedOut bool
}

// Result is the outcome of one walk: Success only on full coverage,
// otherwise the partial path reached before the first dead end.
type Result struct {
	Success bool
	Path    board.Path
	Stats   Stats
}
