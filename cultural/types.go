// Package cultural - tiers, options, result types and sentinel errors for
// the evolutionary engine.
package cultural

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/knightour/board"
)

// Sentinel errors for the evolutionary engine.
var (
	// ErrBadOptions indicates an inconsistent Options combination
	// (population < 2, generations < 1, rates outside [0,1], …).
	ErrBadOptions = errors.New("cultural: invalid options")
	// ErrUnknownTier indicates a Tier outside TierSimple..TierAdvanced.
	ErrUnknownTier = errors.New("cultural: unknown tier")
)

// Tier selects the sophistication level of the evolutionary machinery.
type Tier int

const (
	// TierSimple is the plain GA: coverage/legality fitness, uniform mutation.
	TierSimple Tier = iota + 1
	// TierEnhanced adds mobility rewards, anti-repeat mutation and a
	// diversity bonus in selection.
	TierEnhanced
	// TierCultural activates the belief space after a warm-up: guided
	// mutation, elite-injected crossover, difficulty-weighted repair.
	TierCultural
	// TierAdvanced adds the richest fitness, stagnation-adaptive mutation
	// and periodic bounded local search on the elite.
	TierAdvanced
)

// String returns the tier name for logs and progress messages.
func (t Tier) String() string {
	switch t {
	case TierSimple:
		return "simple"
	case TierEnhanced:
		return "enhanced"
	case TierCultural:
		return "cultural"
	case TierAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Chromosome is a fixed-length gene sequence; each gene is a knight
// direction 0–7 indexing board.MoveOffsets. Length is n²−1: one symbol per
// move of a full tour.
type Chromosome []uint8

// Clone returns an independent copy of c.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)

	return out
}

// Individual is one population member: genes, the decoded path, and the
// scalar fitness. repairs records gene indices the codec had to repair —
// the "bad moves" diagnostic consumed by local search.
type Individual struct {
	Genes   Chromosome
	Path    board.Path
	Fitness float64

	repairs []int
}

// Population is the fixed-size generation, replaced wholesale each cycle
// except for the elite carry-over.
type Population []Individual

// Default parameter values. TierAdvanced overrides a few of them (see
// DefaultOptions).
const (
	DefaultPopulationSize      = 100
	DefaultGenerations         = 200
	DefaultMutationRate        = 0.3
	DefaultTournamentSize      = 3
	DefaultElitismFrac         = 0.10
	DefaultWarmupGenerations   = 20
	DefaultLocalSearchEvery    = 10
	DefaultLocalSearchAttempts = 5
	DefaultDiversityWeight     = 0.05
	DefaultEliteArchiveSize    = 15
	DefaultTimeLimit           = 60 * time.Second

	advancedPopulationSize      = 150
	advancedGenerations         = 300
	advancedLocalSearchEvery    = 5
	advancedLocalSearchAttempts = 10
)

// Options configures one evolutionary run. Build with DefaultOptions and
// functional Option overrides; Evolve validates the final combination.
type Options struct {
	// Tier selects the policy bundle (fitness/mutation/crossover/repair).
	Tier Tier
	// PopulationSize is the number of individuals per generation (≥2).
	PopulationSize int
	// Generations is the generation budget (≥1).
	Generations int
	// MutationRate is the per-individual mutation probability in [0,1];
	// TierAdvanced scales it up under stagnation.
	MutationRate float64
	// TournamentSize is the selection sample size (≥1).
	TournamentSize int
	// ElitismFrac is the fraction of the population carried unchanged
	// into the next generation, in [0,1).
	ElitismFrac float64
	// Seed drives all stochastic choices; 0 substitutes a fixed default
	// so the zero value is still reproducible.
	Seed int64
	// TimeLimit is the soft wall-clock budget; 0 disables the deadline.
	TimeLimit time.Duration
	// Ctx allows external cancellation, polled once per generation.
	Ctx context.Context
	// OnProgress is an optional hook (percentComplete, message).
	OnProgress func(percent float64, msg string)
	// WarmupGenerations delays belief-space guidance until the counters
	// carry signal.
	WarmupGenerations int
	// LocalSearchEvery is the generation period of the elite local search
	// (TierAdvanced).
	LocalSearchEvery int
	// LocalSearchAttempts bounds the swap/reversal attempts per local search.
	LocalSearchAttempts int
	// DiversityWeight scales the selection diversity bonus (tiers ≥2).
	DiversityWeight float64
	// EliteArchiveSize bounds the belief-space elite archive.
	EliteArchiveSize int
}

// Option is a functional option for configuring Evolve.
type Option func(*Options)

// WithTier selects the sophistication tier and resets every
// tier-dependent default (population size, generations, local-search
// cadence). Apply it before other overrides.
func WithTier(t Tier) Option {
	return func(o *Options) {
		*o = DefaultOptions(t)
	}
}

// WithPopulationSize overrides the population size.
func WithPopulationSize(n int) Option {
	return func(o *Options) { o.PopulationSize = n }
}

// WithGenerations overrides the generation budget.
func WithGenerations(n int) Option {
	return func(o *Options) { o.Generations = n }
}

// WithMutationRate overrides the base mutation probability.
func WithMutationRate(r float64) Option {
	return func(o *Options) { o.MutationRate = r }
}

// WithSeed fixes the RNG seed for reproducible trajectories.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTimeLimit sets the soft wall-clock budget. Non-positive disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
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

// DefaultOptions returns the defaults for tier t. TierAdvanced runs a
// larger population for more generations and searches locally more often,
// matching its role as the strongest best-effort configuration.
func DefaultOptions(t Tier) Options {
	o := Options{
		Tier:                t,
		PopulationSize:      DefaultPopulationSize,
		Generations:         DefaultGenerations,
		MutationRate:        DefaultMutationRate,
		TournamentSize:      DefaultTournamentSize,
		ElitismFrac:         DefaultElitismFrac,
		Seed:                0,
		TimeLimit:           DefaultTimeLimit,
		Ctx:                 context.Background(),
		OnProgress:          nil,
		WarmupGenerations:   DefaultWarmupGenerations,
		LocalSearchEvery:    DefaultLocalSearchEvery,
		LocalSearchAttempts: DefaultLocalSearchAttempts,
		DiversityWeight:     DefaultDiversityWeight,
		EliteArchiveSize:    DefaultEliteArchiveSize,
	}
	if t == TierAdvanced {
		o.PopulationSize = advancedPopulationSize
		o.Generations = advancedGenerations
		o.LocalSearchEvery = advancedLocalSearchEvery
		o.LocalSearchAttempts = advancedLocalSearchAttempts
	}

	return o
}

// validate rejects inconsistent option combinations with ErrBadOptions.
func (o Options) validate() error {
	if o.Tier < TierSimple || o.Tier > TierAdvanced {
		return ErrUnknownTier
	}
	switch {
	case o.PopulationSize < 2,
		o.Generations < 1,
		o.MutationRate < 0 || o.MutationRate > 1,
		o.TournamentSize < 1,
		o.ElitismFrac < 0 || o.ElitismFrac >= 1,
		o.WarmupGenerations < 0,
		o.LocalSearchEvery < 1,
		o.LocalSearchAttempts < 0,
		o.DiversityWeight < 0,
		o.EliteArchiveSize < 1,
		o.TimeLimit < 0:
		return ErrBadOptions
	}

	return nil
}

// Stats summarizes one evolutionary run.
type Stats struct {
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Coverage is |path| / n² of the best individual, always in [0,1].
	Coverage float64
	// Generations is the number of generations actually evaluated.
	Generations int
	// BestFitness is the best fitness ever observed.
	BestFitness float64
	// TimedOut reports whether the deadline or context stopped the run.
	TimedOut bool
	// Crossovers and Mutations count applied genetic operations.
	Crossovers int
	Mutations  int
	// LocalSearches counts elite local-search invocations.
	LocalSearches int
	// StagnationPeak is the highest stagnation counter reached.
	StagnationPeak int
}

// Result is the outcome of one run: the best-ever decoded path, Success
// only when it covers the whole board.
type Result struct {
	Success bool
	Path    board.Path
	Stats   Stats
}
